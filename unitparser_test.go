package si

import "testing"

func TestParseUnitDirectLibraryHit(t *testing.T) {
	PopulateLibrary()
	u, mult, err := ParseUnit("N")
	if err != nil {
		t.Fatal(err)
	}
	if mult != 1 {
		t.Fatalf("ParseUnit(N) mult = %v, want 1", mult)
	}
	if u.RootSymbol() != "N" {
		t.Fatalf("ParseUnit(N) root symbol = %q, want %q", u.RootSymbol(), "N")
	}
}

func TestParseUnitGrammarMultiplyDivide(t *testing.T) {
	PopulateLibrary()
	u, _, err := ParseUnit("kg*m/s^2")
	if err != nil {
		t.Fatal(err)
	}
	force, err := ForQuantity("force")
	if err != nil {
		t.Fatal(err)
	}
	if !HasSameReduced(u.Dimensionality(), force) {
		t.Fatalf("kg*m/s^2 did not reduce to force's dimensionality")
	}
}

func TestParseUnitParenthesizedPower(t *testing.T) {
	PopulateLibrary()
	u, _, err := ParseUnit("(kg*m)^-2")
	if err != nil {
		t.Fatal(err)
	}
	m, _ := LookupUnit("m")
	kg, _ := LookupUnit("kg")
	area, _, err := MultiplyUnits(kg, m)
	if err != nil {
		t.Fatal(err)
	}
	want, _, err := PowerUnit(area, -2)
	if err != nil {
		t.Fatal(err)
	}
	if !HasSameReduced(u.Dimensionality(), want.Dimensionality()) {
		t.Fatalf("1/(kg*m)^2 did not match (kg*m)^-2's dimensionality")
	}
}

func TestParseUnitRejectsUnknownSymbol(t *testing.T) {
	PopulateLibrary()
	if _, _, err := ParseUnit("notaunit"); err == nil {
		t.Fatalf("ParseUnit(notaunit) = nil error, want UnknownSymbol")
	}
}

func TestParseUnitRejectsTrailingGarbage(t *testing.T) {
	PopulateLibrary()
	if _, _, err := ParseUnit("m m"); err == nil {
		t.Fatalf("ParseUnit(%q) = nil error, want syntax error", "m m")
	}
}

func TestCoherentBaseUnitsArePrefixable(t *testing.T) {
	PopulateLibrary()
	if _, ok := LookupUnit(CleanExpression("km")); !ok {
		t.Fatal("km not found: coherent length base unit must be statically prefixable")
	}
	u, _, err := ParseUnit("mA")
	if err != nil {
		t.Fatal(err)
	}
	assertFloatEqual(t, u.ScaleToCoherentSI(), 1e-3, 1e-12)
}

func TestResolveUnitSymbolSynthesizesOnDemandPrefix(t *testing.T) {
	PopulateLibrary()
	u, _, err := ParseUnit("ZN")
	if err != nil {
		t.Fatal(err)
	}
	if u.RootSymbol() != "N" {
		t.Fatalf("ZN root symbol = %q, want %q", u.RootSymbol(), "N")
	}
	if ratio := u.ScaleToCoherentSI() / 1e21; ratio < 0.999999 || ratio > 1.000001 {
		t.Fatalf("ZN.ScaleToCoherentSI() = %v, want ~1e21", u.ScaleToCoherentSI())
	}
}

func TestParseUnitRejectsInvalidCharacter(t *testing.T) {
	PopulateLibrary()
	if _, _, err := ParseUnit("m@2"); err == nil {
		t.Fatalf("ParseUnit(m@2) = nil error, want a syntax error for the unlexable '@'")
	}
}

func TestMustParseUnitPanicsOnError(t *testing.T) {
	PopulateLibrary()
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("MustParseUnit(notaunit) did not panic")
		}
	}()
	MustParseUnit("notaunit")
}
