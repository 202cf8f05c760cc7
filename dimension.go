package si

import (
	"strconv"
	"strings"
	"sync"

	"golang.org/x/text/cases"
)

var quantityNameFold = cases.Fold()

// baseDimension indexes the seven SI base dimensions in the fixed
// canonical order used throughout the package.
type baseDimension int

const (
	dimLength baseDimension = iota
	dimMass
	dimTime
	dimCurrent
	dimTemperature
	dimAmount
	dimLuminousIntensity
	numBaseDimensions
)

var baseDimensionLetter = [numBaseDimensions]string{
	dimLength:            "L",
	dimMass:              "M",
	dimTime:              "T",
	dimCurrent:           "I",
	dimTemperature:       "ϴ",
	dimAmount:            "N",
	dimLuminousIntensity: "J",
}

// Dimensionality is an immutable 7-tuple of (numerator, denominator)
// exponent pairs over the SI base dimensions. Every Dimensionality in
// circulation is interned: two Dimensionality values describe the same
// algebraic quantity iff they are the same pointer.
type Dimensionality struct {
	num [numBaseDimensions]int8
	den [numBaseDimensions]int8

	symbol string
}

var (
	dimensionalityRegistryMu sync.Mutex
	dimensionalityRegistry   = map[[2 * numBaseDimensions]int8]*Dimensionality{}

	dimensionlessUnderived *Dimensionality
)

func init() {
	dimensionlessUnderived = internDimensionality([numBaseDimensions]int8{}, [numBaseDimensions]int8{})
}

func dimensionalityKey(num, den [numBaseDimensions]int8) [2 * numBaseDimensions]int8 {
	var key [2 * numBaseDimensions]int8
	copy(key[:numBaseDimensions], num[:])
	copy(key[numBaseDimensions:], den[:])
	return key
}

// internDimensionality returns the canonical, shared instance for the
// given raw exponent tuples, constructing it on first use.
func internDimensionality(num, den [numBaseDimensions]int8) *Dimensionality {
	key := dimensionalityKey(num, den)

	dimensionalityRegistryMu.Lock()
	defer dimensionalityRegistryMu.Unlock()

	if d, ok := dimensionalityRegistry[key]; ok {
		return d
	}
	d := &Dimensionality{num: num, den: den}
	d.symbol = buildDimensionalitySymbol(num, den)
	dimensionalityRegistry[key] = d
	return d
}

// DimensionlessUnderived is the interned instance with every raw
// component zero — the identity for Multiply/Divide.
func DimensionlessUnderived() *Dimensionality { return dimensionlessUnderived }

// ForQuantity returns the interned Dimensionality registered for a
// predefined quantity name (e.g. "force"), failing with UnknownQuantity
// if the name is not registered.
func ForQuantity(name string) (*Dimensionality, error) {
	ensureQuantitiesPopulated()
	d, ok := quantityDimensionality[quantityNameFold.String(name)]
	if !ok {
		return nil, unknownQuantityError(name)
	}
	return d, nil
}

// IsDimensionless reports whether every reduced exponent (num_i - den_i)
// is zero.
func (d *Dimensionality) IsDimensionless() bool {
	for i := 0; i < int(numBaseDimensions); i++ {
		if d.num[i] != d.den[i] {
			return false
		}
	}
	return true
}

// IsDimensionlessAndNotDerived reports whether every raw component is
// zero, i.e. the dimensionality carries no residual numerator/denominator
// structure at all.
func (d *Dimensionality) IsDimensionlessAndNotDerived() bool {
	for i := 0; i < int(numBaseDimensions); i++ {
		if d.num[i] != 0 || d.den[i] != 0 {
			return false
		}
	}
	return true
}

// HasSameReduced reports whether a and b agree on every reduced exponent
// (num_i - den_i), regardless of how each side arrived there.
func HasSameReduced(a, b *Dimensionality) bool {
	for i := 0; i < int(numBaseDimensions); i++ {
		if a.num[i]-a.den[i] != b.num[i]-b.den[i] {
			return false
		}
	}
	return true
}

// MultiplyDimensionality combines a and b without reduction: raw
// exponents stack.
func MultiplyDimensionality(a, b *Dimensionality) *Dimensionality {
	var num, den [numBaseDimensions]int8
	for i := 0; i < int(numBaseDimensions); i++ {
		num[i] = a.num[i] + b.num[i]
		den[i] = a.den[i] + b.den[i]
	}
	return internDimensionality(num, den)
}

// DivideDimensionality combines a and b without reduction: b's numerator
// becomes denominator contribution and vice versa.
func DivideDimensionality(a, b *Dimensionality) *Dimensionality {
	var num, den [numBaseDimensions]int8
	for i := 0; i < int(numBaseDimensions); i++ {
		num[i] = a.num[i] + b.den[i]
		den[i] = a.den[i] + b.num[i]
	}
	return internDimensionality(num, den)
}

// PowerDimensionality raises d to an integer power n without reduction.
// n may be negative (the result's numerator/denominator swap roles).
func PowerDimensionality(d *Dimensionality, n int) *Dimensionality {
	if n == 0 {
		return dimensionlessUnderived
	}
	var num, den [numBaseDimensions]int8
	if n > 0 {
		for i := 0; i < int(numBaseDimensions); i++ {
			num[i] = d.num[i] * int8(n)
			den[i] = d.den[i] * int8(n)
		}
	} else {
		m := -n
		for i := 0; i < int(numBaseDimensions); i++ {
			num[i] = d.den[i] * int8(m)
			den[i] = d.num[i] * int8(m)
		}
	}
	return internDimensionality(num, den)
}

// NthRootDimensionality divides every raw exponent of d by n. Each
// component must be evenly divisible by n, otherwise it fails with
// FractionalExponent.
func NthRootDimensionality(d *Dimensionality, n int) (*Dimensionality, error) {
	if n == 0 {
		return nil, fractionalExponentError("cannot take the 0th root of a dimensionality")
	}
	var num, den [numBaseDimensions]int8
	for i := 0; i < int(numBaseDimensions); i++ {
		if d.num[i]%int8(n) != 0 || d.den[i]%int8(n) != 0 {
			return nil, fractionalExponentError("dimensionality exponents are not divisible by %d", n)
		}
		num[i] = d.num[i] / int8(n)
		den[i] = d.den[i] / int8(n)
	}
	return internDimensionality(num, den), nil
}

// ReduceDimensionality collapses numerator/denominator overlap: the
// minimum of (num_i, den_i) is subtracted from both sides.
func ReduceDimensionality(d *Dimensionality) *Dimensionality {
	var num, den [numBaseDimensions]int8
	for i := 0; i < int(numBaseDimensions); i++ {
		m := d.num[i]
		if d.den[i] < m {
			m = d.den[i]
		}
		num[i] = d.num[i] - m
		den[i] = d.den[i] - m
	}
	return internDimensionality(num, den)
}

// Symbol returns the canonical textual form of d, e.g. "L·M/T^2".
func (d *Dimensionality) Symbol() string { return d.symbol }

func buildDimensionalitySymbol(num, den [numBaseDimensions]int8) string {
	var numParts, denParts []string
	for i := 0; i < int(numBaseDimensions); i++ {
		if num[i] > 0 {
			numParts = append(numParts, exponentTerm(baseDimensionLetter[i], int(num[i])))
		}
		if den[i] > 0 {
			denParts = append(denParts, exponentTerm(baseDimensionLetter[i], int(den[i])))
		}
	}
	if len(numParts) == 0 && len(denParts) == 0 {
		return " "
	}
	numStr := "1"
	if len(numParts) > 0 {
		numStr = strings.Join(numParts, "·")
	}
	if len(denParts) == 0 {
		return numStr
	}
	denStr := strings.Join(denParts, "·")
	if len(denParts) > 1 {
		denStr = "(" + denStr + ")"
	}
	return numStr + "/" + denStr
}

func exponentTerm(letter string, exp int) string {
	if exp == 1 {
		return letter
	}
	return letter + "^" + strconv.Itoa(exp)
}
