package si

import "testing"

func TestScalarAddConvertsUnits(t *testing.T) {
	PopulateLibrary()
	m, _ := LookupUnit("m")
	km, _ := LookupUnit(CleanExpression("km"))
	a := NewScalar(500, m)
	b := NewScalar(1, km)
	sum, err := a.Add(b)
	if err != nil {
		t.Fatal(err)
	}
	assertFloatEqual(t, sum.Value(), 1500, 1e-9)
	if sum.Unit() != m {
		t.Fatalf("Add result unit = %v, want a's unit", sum.Unit())
	}
}

func TestScalarAddRejectsIncompatibleDimensionality(t *testing.T) {
	PopulateLibrary()
	m, _ := LookupUnit("m")
	s, _ := LookupUnit("s")
	a := NewScalar(1, m)
	b := NewScalar(1, s)
	if _, err := a.Add(b); err == nil {
		t.Fatalf("Add across incompatible dimensionality did not error")
	}
}

func TestScalarMultiplyCombinesUnits(t *testing.T) {
	PopulateLibrary()
	m, _ := LookupUnit("m")
	s, _ := LookupUnit("s")
	speed := NewScalar(10, m)
	perSecond, _, err := DivideUnits(dimensionlessUnit(), s)
	if err != nil {
		t.Fatal(err)
	}
	rate := NewScalar(2, perSecond)
	result, err := speed.Multiply(rate)
	if err != nil {
		t.Fatal(err)
	}
	assertFloatEqual(t, result.Value(), 20, 1e-9)
}

func TestScalarDivideByZeroValue(t *testing.T) {
	PopulateLibrary()
	m, _ := LookupUnit("m")
	a := NewScalar(1, m)
	zero := NewScalar(0, m)
	if _, err := a.Divide(zero); err == nil {
		t.Fatalf("Divide by zero-valued scalar did not error")
	}
}

func TestScalarPowerAndNthRoot(t *testing.T) {
	PopulateLibrary()
	m, _ := LookupUnit("m")
	side := NewScalar(3, m)
	area, err := side.Power(2)
	if err != nil {
		t.Fatal(err)
	}
	assertFloatEqual(t, area.Value(), 9, 1e-9)

	back, err := area.NthRoot(2)
	if err != nil {
		t.Fatal(err)
	}
	assertFloatEqual(t, back.Value(), 3, 1e-9)
}

func TestScalarConvertToAndEquals(t *testing.T) {
	PopulateLibrary()
	m, _ := LookupUnit("m")
	ft, _ := LookupUnit("ft")
	oneMeter := NewScalar(1, m)
	converted, err := oneMeter.ConvertTo(ft)
	if err != nil {
		t.Fatal(err)
	}
	assertFloatEqual(t, converted.Value(), 1/0.3048, 1e-9)

	if !oneMeter.Equals(converted) {
		t.Fatalf("1 m should Equals its own ft-converted value")
	}
}

func TestScalarComplexValue(t *testing.T) {
	PopulateLibrary()
	m, _ := LookupUnit("m")
	c := NewComplexScalar(complex(3, 4), m)
	if real(c.ComplexValue()) != 3 || imag(c.ComplexValue()) != 4 {
		t.Fatalf("ComplexValue() = %v, want 3+4i", c.ComplexValue())
	}
}
