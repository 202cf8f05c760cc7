package si

import (
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Unit is the immutable, interned record the rest of the package builds
// on: a Dimensionality decorated with per-base-dimension SI prefixes,
// and an optional named root (for special SI units like newton and all
// non-SI units like pound).
type Unit struct {
	dimensionality *Dimensionality

	numPrefix [numBaseDimensions]Prefix
	denPrefix [numBaseDimensions]Prefix

	rootName          string
	rootPluralName    string
	rootSymbol        string
	rootSymbolPrefix  Prefix
	allowsSIPrefix    bool
	isSpecialSISymbol bool

	// scaleToCoherentSI is the stored multiplicative factor for named
	// (non-coherent-SI) units; unused when rootSymbol == "".
	scaleToCoherentSI float64

	symbol string
	key    string
}

// Dimensionality returns the unit's dimensionality.
func (u *Unit) Dimensionality() *Dimensionality { return u.dimensionality }

// Symbol returns the unit's canonical textual symbol.
func (u *Unit) Symbol() string { return u.symbol }

// Key returns the unit's canonical library key (its symbol passed
// through the Expression Cleaner).
func (u *Unit) Key() string { return u.key }

// RootSymbol returns the named root symbol, or "" if the unit has none.
func (u *Unit) RootSymbol() string { return u.rootSymbol }

// AllowsSIPrefix reports whether the library synthesizes prefixed
// variants of this root on demand.
func (u *Unit) AllowsSIPrefix() bool { return u.allowsSIPrefix }

// IsSpecialSISymbol reports whether u is a coherent SI named unit
// (newton, joule, pascal, hertz, …).
func (u *Unit) IsSpecialSISymbol() bool { return u.isSpecialSISymbol }

// internUnit builds the canonical symbol and key for the given fields,
// looks the key up in the library, and returns the existing instance if
// present — otherwise it registers and returns the fresh one. This is
// the sole construction path for every Unit in circulation.
func internUnit(dimensionality *Dimensionality, numPrefix, denPrefix [numBaseDimensions]Prefix,
	rootName, rootPluralName, rootSymbol string, rootSymbolPrefix Prefix,
	allowsSIPrefix, isSpecialSISymbol bool, scale float64) *Unit {

	u := &Unit{
		dimensionality:    dimensionality,
		numPrefix:         numPrefix,
		denPrefix:         denPrefix,
		rootName:          rootName,
		rootPluralName:    rootPluralName,
		rootSymbol:        rootSymbol,
		rootSymbolPrefix:  rootSymbolPrefix,
		allowsSIPrefix:    allowsSIPrefix,
		isSpecialSISymbol: isSpecialSISymbol,
		scaleToCoherentSI: scale,
	}
	if rootSymbol == "" {
		u.isSpecialSISymbol = false
		u.rootSymbolPrefix = Base
		u.scaleToCoherentSI = 1
	}
	u.symbol = buildUnitSymbol(u)
	u.key = CleanExpression(u.symbol)

	if existing, ok := lookupInternedUnit(u.key); ok {
		return existing
	}
	registerInternedUnit(u)
	return u
}

// ScaleToCoherentSI returns the multiplicative factor that converts a
// value expressed in u to the coherent SI unit of the same reduced
// dimensionality.
func (u *Unit) ScaleToCoherentSI() float64 {
	if u.rootSymbol == "" {
		return u.coherentPrefixScale()
	}
	if u.isSpecialSISymbol {
		return math.Pow(10, float64(u.rootSymbolPrefix.Exponent()))
	}
	return u.scaleToCoherentSI * math.Pow(10, float64(u.rootSymbolPrefix.Exponent()))
}

// coherentPrefixScale computes 10^(sum of per-dimension prefix
// contributions), with mass prefixes measured relative to kilo since the
// coherent SI base unit of mass is the kilogram, not the gram.
func (u *Unit) coherentPrefixScale() float64 {
	d := u.dimensionality
	exp := 0
	for i := 0; i < int(numBaseDimensions); i++ {
		numExp := int(d.num[i])
		denExp := int(d.den[i])
		numPrefixExp := u.numPrefix[i].Exponent()
		denPrefixExp := u.denPrefix[i].Exponent()
		if baseDimension(i) == dimMass {
			if numExp > 0 {
				numPrefixExp -= Kilo.Exponent()
			}
			if denExp > 0 {
				denPrefixExp -= Kilo.Exponent()
			}
		}
		exp += numPrefixExp*numExp - denPrefixExp*denExp
	}
	return math.Pow(10, float64(exp))
}

// Equivalent reports whether u and v describe the same physical
// quantity at the same scale: equal dimensionalities and numerically
// equal ScaleToCoherentSI.
func Equivalent(u, v *Unit) bool {
	if u.dimensionality != v.dimensionality {
		return false
	}
	return floats.EqualWithinAbsOrRel(u.ScaleToCoherentSI(), v.ScaleToCoherentSI(), 1e-12, 1e-9)
}

// unitsEqual reports full field equality, stricter than Equivalent.
func unitsEqual(u, v *Unit) bool {
	return u == v
}

// ConversionFactor returns the multiplier that converts a value in from
// into a value in to. It fails with IncompatibleDimensionality unless
// from and to share a reduced dimensionality.
func ConversionFactor(from, to *Unit) (float64, error) {
	if !HasSameReduced(from.dimensionality, to.dimensionality) {
		return 0, incompatibleDimensionalityError("cannot convert %q to %q: incompatible dimensionality", from.symbol, to.symbol)
	}
	return from.ScaleToCoherentSI() / to.ScaleToCoherentSI(), nil
}

// MultiplyUnits computes u*v, reducing the resulting dimensionality and
// returning the external multiplier needed to keep the numeric value
// correct (1 unless an operand's scale is not carried by the result's
// prefixes, as when a named non-SI root meets a rootless unit, or the
// reduction merged differently-scaled factors).
func MultiplyUnits(u, v *Unit) (*Unit, float64, error) {
	result, mult := multiplyWithoutReducing(u, v)
	return reduceWithMultiplier(result, mult)
}

// MultiplyUnitsWithoutReducing computes u*v without collapsing
// numerator/denominator overlap.
func MultiplyUnitsWithoutReducing(u, v *Unit) (*Unit, float64) {
	return multiplyWithoutReducing(u, v)
}

func multiplyWithoutReducing(u, v *Unit) (*Unit, float64) {
	if u.dimensionality.IsDimensionlessAndNotDerived() && u.rootSymbol == "" {
		return v, 1
	}
	if v.dimensionality.IsDimensionlessAndNotDerived() && v.rootSymbol == "" {
		return u, 1
	}

	newDim := MultiplyDimensionality(u.dimensionality, v.dimensionality)

	if u.rootSymbol != "" && v.rootSymbol != "" {
		return compositeUnit(newDim, u, v, "·"), 1
	}

	numPrefix, denPrefix := combinePrefixesForOp(u, v, newDim, true)
	result := internUnit(newDim, numPrefix, denPrefix, "", "", "", Base, false, false, 1)
	mult := u.ScaleToCoherentSI() * v.ScaleToCoherentSI() / result.ScaleToCoherentSI()
	return result, mult
}

// DivideUnits computes u/v, reducing the result.
func DivideUnits(u, v *Unit) (*Unit, float64, error) {
	result, mult := divideWithoutReducing(u, v)
	return reduceWithMultiplier(result, mult)
}

// DivideUnitsWithoutReducing computes u/v without collapsing
// numerator/denominator overlap.
func DivideUnitsWithoutReducing(u, v *Unit) (*Unit, float64) {
	return divideWithoutReducing(u, v)
}

func divideWithoutReducing(u, v *Unit) (*Unit, float64) {
	if v.dimensionality.IsDimensionlessAndNotDerived() && v.rootSymbol == "" {
		return u, 1
	}

	newDim := DivideDimensionality(u.dimensionality, v.dimensionality)

	if u.rootSymbol != "" && v.rootSymbol != "" {
		return compositeUnit(newDim, u, v, "/"), 1
	}

	numPrefix, denPrefix := combinePrefixesForOp(u, v, newDim, false)
	result := internUnit(newDim, numPrefix, denPrefix, "", "", "", Base, false, false, 1)
	mult := u.ScaleToCoherentSI() / v.ScaleToCoherentSI() / result.ScaleToCoherentSI()
	return result, mult
}

func compositeUnit(newDim *Dimensionality, u, v *Unit, op string) *Unit {
	scale := u.ScaleToCoherentSI()
	if op == "·" {
		scale *= v.ScaleToCoherentSI()
	} else {
		scale /= v.ScaleToCoherentSI()
	}
	symbol := u.rootSymbol + op + v.rootSymbol
	return internUnit(newDim, [numBaseDimensions]Prefix{}, [numBaseDimensions]Prefix{},
		symbol, symbol, symbol, Base, false, false, scale)
}

// combinePrefixesForOp derives, for each base dimension of the result,
// a weighted average of the operand prefixes (weighted by each
// operand's exponent contribution along that dimension), clamped to the
// nearest representable SI prefix.
func combinePrefixesForOp(u, v *Unit, result *Dimensionality, multiply bool) (num, den [numBaseDimensions]Prefix) {
	for i := 0; i < int(numBaseDimensions); i++ {
		num[i] = weightedPrefix(
			u.numPrefix[i], int(u.dimensionality.num[i]),
			weightSourcePrefix(v, i, multiply, true), weightSourceExp(v, i, multiply, true),
		)
		den[i] = weightedPrefix(
			u.denPrefix[i], int(u.dimensionality.den[i]),
			weightSourcePrefix(v, i, multiply, false), weightSourceExp(v, i, multiply, false),
		)
	}
	return num, den
}

func weightSourcePrefix(v *Unit, i int, multiply, numerator bool) Prefix {
	if numerator == multiply {
		return v.numPrefix[i]
	}
	return v.denPrefix[i]
}

func weightSourceExp(v *Unit, i int, multiply, numerator bool) int {
	if numerator == multiply {
		return int(v.dimensionality.num[i])
	}
	return int(v.dimensionality.den[i])
}

func weightedPrefix(pa Prefix, wa int, pb Prefix, wb int) Prefix {
	if wa+wb == 0 {
		return Base
	}
	weighted := (pa.Exponent()*wa + pb.Exponent()*wb) / (wa + wb)
	return NearestPrefix(weighted)
}

func dimensionlessUnit() *Unit {
	var num, den [numBaseDimensions]Prefix
	return internUnit(dimensionlessUnderived, num, den, "", "", "", Base, false, false, 1)
}

// PowerUnit raises u to an integer power n, reducing the result. n may
// be negative; PowerUnit(u, 0) returns the dimensionless-underived unit.
func PowerUnit(u *Unit, n int) (*Unit, float64, error) {
	if n == 0 {
		return dimensionlessUnit(), 1, nil
	}

	abs := n
	base := u
	baseMult := 1.0
	if abs < 0 {
		abs = -abs
		one := dimensionlessUnit()
		var err error
		base, baseMult, err = DivideUnits(one, u)
		if err != nil {
			return nil, 0, err
		}
	}

	result := base
	mult := baseMult
	for i := 1; i < abs; i++ {
		next, stepMult, err := MultiplyUnits(result, base)
		if err != nil {
			return nil, 0, err
		}
		result = next
		mult *= stepMult * baseMult
	}
	return result, mult, nil
}

// NthRootUnit takes the nth root of u's dimensionality and the
// corresponding root of its scale factor. Fails with FractionalExponent
// if the dimensionality is not evenly divisible by n.
func NthRootUnit(u *Unit, n int) (*Unit, error) {
	newDim, err := NthRootDimensionality(u.dimensionality, n)
	if err != nil {
		return nil, err
	}
	var num, den [numBaseDimensions]Prefix
	for i := 0; i < int(numBaseDimensions); i++ {
		num[i] = u.numPrefix[i]
		den[i] = u.denPrefix[i]
	}
	scale := math.Pow(u.scaleToCoherentSI, 1/float64(n))
	return internUnit(newDim, num, den, "", "", "", Base, false, false, scale), nil
}

// ReduceUnit returns the library instance sharing u's reduced
// dimensionality whose canonical symbol is shortest, breaking ties by
// lexicographic symbol compare. The returned multiplier converts a value
// in u to the same value (numerically) expressed in the result.
func ReduceUnit(u *Unit) (*Unit, float64) {
	candidates := unitsForReducedDimensionality(u.dimensionality)
	if len(candidates) == 0 {
		return u, 1
	}
	best := candidates[0]
	for _, c := range candidates[1:] {
		if len(c.symbol) < len(best.symbol) || (len(c.symbol) == len(best.symbol) && c.symbol < best.symbol) {
			best = c
		}
	}
	if best == u {
		return u, 1
	}
	mult := u.ScaleToCoherentSI() / best.ScaleToCoherentSI()
	return best, mult
}

func reduceWithMultiplier(u *Unit, externalMult float64) (*Unit, float64, error) {
	reduced := ReduceDimensionality(u.dimensionality)
	if reduced == u.dimensionality {
		return u, externalMult, nil
	}
	candidates := unitsForReducedDimensionality(reduced)
	var target *Unit
	for _, c := range candidates {
		if target == nil || len(c.symbol) < len(target.symbol) || (len(c.symbol) == len(target.symbol) && c.symbol < target.symbol) {
			target = c
		}
	}
	if target == nil {
		var num, den [numBaseDimensions]Prefix
		target = internUnit(reduced, num, den, "", "", "", Base, false, false, 1)
	}
	totalMult := externalMult * u.ScaleToCoherentSI() / target.ScaleToCoherentSI()
	return target, totalMult, nil
}

// buildUnitSymbol assembles the canonical symbol: a named root wins
// outright; failing that, a single base dimension with exponent 1
// collapses to "prefix+letter" (cm, km); otherwise numerator/denominator
// factors are joined with "·" and the denominator parenthesized when it
// has more than one factor.
func buildUnitSymbol(u *Unit) string {
	if u.rootSymbol != "" {
		return u.rootSymbolPrefix.String() + u.rootSymbol
	}

	d := u.dimensionality
	var numFactors, denFactors []string
	nonZero := 0
	var onlyIdx int
	var onlyIsNum bool

	for i := 0; i < int(numBaseDimensions); i++ {
		if d.num[i] > 0 {
			nonZero++
			onlyIdx, onlyIsNum = i, true
		}
		if d.den[i] > 0 {
			nonZero++
			onlyIdx, onlyIsNum = i, false
		}
	}

	if nonZero == 1 {
		letter := strings.ToLower(baseDimensionLetter[onlyIdx])
		symbolLetter := baseSymbolLetter(baseDimension(onlyIdx))
		if onlyIsNum && d.num[onlyIdx] == 1 {
			return u.numPrefix[onlyIdx].String() + symbolLetter
		}
		if !onlyIsNum && d.den[onlyIdx] == 1 {
			return "1/" + u.denPrefix[onlyIdx].String() + symbolLetter
		}
		_ = letter
	}

	for i := 0; i < int(numBaseDimensions); i++ {
		if d.num[i] > 0 {
			numFactors = append(numFactors, exponentTerm(u.numPrefix[i].String()+baseSymbolLetter(baseDimension(i)), int(d.num[i])))
		}
		if d.den[i] > 0 {
			denFactors = append(denFactors, exponentTerm(u.denPrefix[i].String()+baseSymbolLetter(baseDimension(i)), int(d.den[i])))
		}
	}

	if len(numFactors) == 0 && len(denFactors) == 0 {
		return " "
	}
	numStr := "1"
	if len(numFactors) > 0 {
		numStr = strings.Join(numFactors, "·")
	}
	if len(denFactors) == 0 {
		return numStr
	}
	denStr := strings.Join(denFactors, "·")
	if len(denFactors) > 1 {
		denStr = "(" + denStr + ")"
	}
	return numStr + "/" + denStr
}

func baseSymbolLetter(b baseDimension) string {
	switch b {
	case dimLength:
		return "m"
	case dimMass:
		return "g"
	case dimTime:
		return "s"
	case dimCurrent:
		return "A"
	case dimTemperature:
		return "K"
	case dimAmount:
		return "mol"
	case dimLuminousIntensity:
		return "cd"
	default:
		return "?"
	}
}
