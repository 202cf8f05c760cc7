package si

import "testing"

func TestInternDimensionalityReturnsSamePointer(t *testing.T) {
	a := internDimensionality([numBaseDimensions]int8{dimLength: 1}, [numBaseDimensions]int8{})
	b := internDimensionality([numBaseDimensions]int8{dimLength: 1}, [numBaseDimensions]int8{})
	if a != b {
		t.Fatalf("internDimensionality returned distinct pointers for equal exponent tuples")
	}
}

func TestForQuantityUnknown(t *testing.T) {
	if _, err := ForQuantity("not-a-real-quantity"); err == nil {
		t.Fatalf("ForQuantity(unknown) = nil error, want UnknownQuantity")
	}
}

func TestIsDimensionless(t *testing.T) {
	force, err := ForQuantity("force")
	if err != nil {
		t.Fatal(err)
	}
	if force.IsDimensionless() {
		t.Fatalf("force dimensionality reported dimensionless")
	}

	ratio, err := ForQuantity("lengthratio")
	if err != nil {
		t.Fatal(err)
	}
	if !ratio.IsDimensionless() {
		t.Fatalf("lengthratio (L/L) reported not dimensionless")
	}
	if ratio.IsDimensionlessAndNotDerived() {
		t.Fatalf("lengthratio (L/L) reported dimensionless-and-not-derived")
	}

	dimless, err := ForQuantity("dimensionless")
	if err != nil {
		t.Fatal(err)
	}
	if !dimless.IsDimensionlessAndNotDerived() {
		t.Fatalf("dimensionless quantity reported derived")
	}
}

func TestMultiplyDivideDimensionalityRoundTrip(t *testing.T) {
	length, _ := ForQuantity("length")
	time, _ := ForQuantity("time")

	velocity := DivideDimensionality(length, time)
	backToLength := MultiplyDimensionality(velocity, time)

	if !HasSameReduced(backToLength, length) {
		t.Fatalf("(length/time)*time did not reduce back to length")
	}
}

func TestPowerDimensionalityNegativeExponent(t *testing.T) {
	length, _ := ForQuantity("length")
	inv := PowerDimensionality(length, -1)
	wavenumber, _ := ForQuantity("wavenumber")
	if !HasSameReduced(inv, wavenumber) {
		t.Fatalf("length^-1 did not match wavenumber's reduced dimensionality")
	}
}

func TestNthRootDimensionalityRejectsFractional(t *testing.T) {
	length, _ := ForQuantity("length")
	if _, err := NthRootDimensionality(length, 2); err == nil {
		t.Fatalf("NthRootDimensionality(length, 2) = nil error, want FractionalExponent")
	}
}

func TestNthRootDimensionalityExact(t *testing.T) {
	area, _ := ForQuantity("area")
	root, err := NthRootDimensionality(area, 2)
	if err != nil {
		t.Fatal(err)
	}
	length, _ := ForQuantity("length")
	if !HasSameReduced(root, length) {
		t.Fatalf("sqrt(area) did not match length's reduced dimensionality")
	}
}

func TestSymbolRendersNumeratorAndDenominator(t *testing.T) {
	force, _ := ForQuantity("force")
	if got, want := force.Symbol(), "L·M/T^2"; got != want {
		t.Fatalf("force.Symbol() = %q, want %q", got, want)
	}
}
