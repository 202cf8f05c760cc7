package si

import (
	"encoding/json"
	"testing"
)

func TestUnitJSONRoundTripSimpleUnit(t *testing.T) {
	PopulateLibrary()
	m, _ := LookupUnit("m")

	data, err := json.Marshal(m)
	if err != nil {
		t.Fatal(err)
	}

	got, err := UnmarshalUnitJSON(data)
	if err != nil {
		t.Fatal(err)
	}
	if got != m {
		t.Fatalf("UnmarshalUnitJSON round trip = %v, want same interned pointer %v", got, m)
	}
}

func TestUnitJSONRoundTripNamedRootUnit(t *testing.T) {
	PopulateLibrary()
	n, _ := LookupUnit("N")

	data, err := json.Marshal(n)
	if err != nil {
		t.Fatal(err)
	}

	got, err := UnmarshalUnitJSON(data)
	if err != nil {
		t.Fatal(err)
	}
	if got.RootSymbol() != "N" {
		t.Fatalf("UnmarshalUnitJSON(N) root symbol = %q, want %q", got.RootSymbol(), "N")
	}
	if got.ScaleToCoherentSI() != n.ScaleToCoherentSI() {
		t.Fatalf("UnmarshalUnitJSON(N) scale = %v, want %v", got.ScaleToCoherentSI(), n.ScaleToCoherentSI())
	}
}

func TestUnitJSONRoundTripDerivedUnit(t *testing.T) {
	PopulateLibrary()
	km, _ := LookupUnit(CleanExpression("km"))

	data, err := json.Marshal(km)
	if err != nil {
		t.Fatal(err)
	}

	got, err := UnmarshalUnitJSON(data)
	if err != nil {
		t.Fatal(err)
	}
	if got != km {
		t.Fatalf("UnmarshalUnitJSON(km) round trip = %v, want same interned pointer %v", got, km)
	}
	assertFloatEqual(t, got.ScaleToCoherentSI(), 1000, 1e-9)
}

func TestUnitJSONPreservesDimensionalityExponents(t *testing.T) {
	PopulateLibrary()
	m, _ := LookupUnit("m")
	area, _, err := PowerUnit(m, 2)
	if err != nil {
		t.Fatal(err)
	}

	data, err := json.Marshal(area)
	if err != nil {
		t.Fatal(err)
	}

	got, err := UnmarshalUnitJSON(data)
	if err != nil {
		t.Fatal(err)
	}
	if !HasSameReduced(got.Dimensionality(), area.Dimensionality()) {
		t.Fatalf("UnmarshalUnitJSON(area) dimensionality mismatch: got %v, want %v", got.Dimensionality(), area.Dimensionality())
	}
}

func TestUnitJSONRejectsInvalidPayload(t *testing.T) {
	if _, err := UnmarshalUnitJSON([]byte("not json")); err == nil {
		t.Fatalf("UnmarshalUnitJSON(garbage) = nil error, want decode error")
	}
}
