package si

import (
	"math"
	"testing"
)

func assertFloatEqual(t *testing.T, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Fatalf("got %v, want %v (tolerance %v)", got, want, tol)
	}
}

func TestInternUnitReturnsSamePointer(t *testing.T) {
	PopulateLibrary()
	m1, ok := LookupUnit("m")
	if !ok {
		t.Fatal("m not found in library")
	}
	m2, ok := LookupUnit("m")
	if !ok {
		t.Fatal("m not found in library")
	}
	if m1 != m2 {
		t.Fatalf("LookupUnit(%q) returned distinct pointers across calls", "m")
	}
}

func TestScaleToCoherentSIForNamedUnit(t *testing.T) {
	PopulateLibrary()
	km, ok := LookupUnit(CleanExpression("km"))
	if !ok {
		t.Fatal("km not found")
	}
	assertFloatEqual(t, km.ScaleToCoherentSI(), 1000, 1e-9)

	ft, ok := LookupUnit("ft")
	if !ok {
		t.Fatal("ft not found")
	}
	assertFloatEqual(t, ft.ScaleToCoherentSI(), 0.3048, 1e-9)
}

func TestScaleToCoherentSIForKilogramBase(t *testing.T) {
	PopulateLibrary()
	kg, ok := LookupUnit("kg")
	if !ok {
		t.Fatal("kg not found")
	}
	assertFloatEqual(t, kg.ScaleToCoherentSI(), 1, 1e-12)

	g, ok := LookupUnit("g")
	if !ok {
		t.Fatal("g not found")
	}
	assertFloatEqual(t, g.ScaleToCoherentSI(), 1e-3, 1e-15)
}

func TestEquivalentComparesScaleNotSymbol(t *testing.T) {
	PopulateLibrary()
	m, _ := LookupUnit("m")
	km, _ := LookupUnit(CleanExpression("km"))
	if Equivalent(m, km) {
		t.Fatalf("m and km should not be Equivalent (different scale)")
	}
	if !Equivalent(m, m) {
		t.Fatalf("m should be Equivalent to itself")
	}
}

func TestConversionFactorRejectsIncompatibleDimensionality(t *testing.T) {
	PopulateLibrary()
	m, _ := LookupUnit("m")
	s, _ := LookupUnit("s")
	if _, err := ConversionFactor(m, s); err == nil {
		t.Fatalf("ConversionFactor(m, s) = nil error, want IncompatibleDimensionality")
	}
}

func TestConversionFactorMetersToFeet(t *testing.T) {
	PopulateLibrary()
	m, _ := LookupUnit("m")
	ft, _ := LookupUnit("ft")
	factor, err := ConversionFactor(m, ft)
	if err != nil {
		t.Fatal(err)
	}
	assertFloatEqual(t, factor, 1/0.3048, 1e-9)
}

func TestMultiplyUnitsReducesOverlap(t *testing.T) {
	PopulateLibrary()
	m, _ := LookupUnit("m")
	perMeter, _, err := DivideUnits(dimensionlessUnit(), m)
	if err != nil {
		t.Fatal(err)
	}
	result, mult, err := MultiplyUnits(m, perMeter)
	if err != nil {
		t.Fatal(err)
	}
	if !result.dimensionality.IsDimensionlessAndNotDerived() {
		t.Fatalf("m * (1/m) did not reduce to dimensionless, got dimensionality %q", result.dimensionality.Symbol())
	}
	assertFloatEqual(t, mult, 1, 1e-12)
}

func TestMultiplyUnitsCombinesPrefixPerDimension(t *testing.T) {
	PopulateLibrary()
	a, ok := LookupUnit("A")
	if !ok {
		t.Fatal("A not found")
	}
	kg, ok := LookupUnit("kg")
	if !ok {
		t.Fatal("kg not found")
	}
	result, _ := MultiplyUnitsWithoutReducing(a, kg)
	if got, want := result.Symbol(), "kg·A"; got != want {
		t.Fatalf("A*kg symbol = %q, want %q (mass slot must read kg's own prefix, not current's)", got, want)
	}
}

func TestPowerUnitNegativeExponent(t *testing.T) {
	PopulateLibrary()
	m, _ := LookupUnit("m")
	inv, mult, err := PowerUnit(m, -1)
	if err != nil {
		t.Fatal(err)
	}
	assertFloatEqual(t, mult, 1, 1e-12)
	if !inv.dimensionality.IsDimensionless() {
		t.Fatalf("m^-1 reported not reduced-dimensionless relative to itself")
	}
}

func TestNthRootUnitRejectsFractional(t *testing.T) {
	PopulateLibrary()
	m, _ := LookupUnit("m")
	if _, err := NthRootUnit(m, 2); err == nil {
		t.Fatalf("NthRootUnit(m, 2) = nil error, want FractionalExponent")
	}
}

func TestNthRootUnitOfArea(t *testing.T) {
	PopulateLibrary()
	m, _ := LookupUnit("m")
	area, _, err := MultiplyUnits(m, m)
	if err != nil {
		t.Fatal(err)
	}
	root, err := NthRootUnit(area, 2)
	if err != nil {
		t.Fatal(err)
	}
	if !HasSameReduced(root.dimensionality, m.dimensionality) {
		t.Fatalf("sqrt(m^2) dimensionality did not reduce to length")
	}
}

func TestReduceUnitPicksShortestSymbol(t *testing.T) {
	PopulateLibrary()
	n, _ := LookupUnit("N")
	reduced, mult := ReduceUnit(n)
	if reduced != n {
		t.Fatalf("ReduceUnit(N) changed the unit unexpectedly to %q", reduced.Symbol())
	}
	assertFloatEqual(t, mult, 1, 1e-12)
}
