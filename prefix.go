package si

import (
	"math/big"
	"sort"
)

// Prefix is one of the 21 SI prefixes, indexed by decimal exponent.
type Prefix int

const (
	// Base is 1 or 1E0
	Base Prefix = iota
	// Yotta is 1E24
	Yotta
	// Zetta is 1E21
	Zetta
	// Exa is 1E18
	Exa
	// Peta is 1E15
	Peta
	// Tera is 1E12
	Tera
	// Giga is 1E9
	Giga
	// Mega is 1E6
	Mega
	// Kilo is 1E3
	Kilo
	// Hecto is 1E2
	Hecto
	// Deca is 1E1
	Deca
	// Deci is 1E-1
	Deci
	// Centi is 1E-2
	Centi
	// Milli is 1E-3
	Milli
	// Micro is 1E-6
	Micro
	// Nano is 1E-9
	Nano
	// Pico is 1E-12
	Pico
	// Femto is 1E-15
	Femto
	// Atto is 1E-18
	Atto
	// Zepto is 1E-21
	Zepto
	// Yocto is 1E-24
	Yocto
)

// exponent gives the decimal exponent represented by each prefix.
var prefixExponent = map[Prefix]int{
	Base: 0, Yotta: 24, Zetta: 21, Exa: 18, Peta: 15, Tera: 12, Giga: 9,
	Mega: 6, Kilo: 3, Hecto: 2, Deca: 1, Deci: -1, Centi: -2, Milli: -3,
	Micro: -6, Nano: -9, Pico: -12, Femto: -15, Atto: -18, Zepto: -21, Yocto: -24,
}

var exponentPrefix map[int]Prefix
var orderedExponents []int

func init() {
	exponentPrefix = make(map[int]Prefix, len(prefixExponent))
	for p, e := range prefixExponent {
		exponentPrefix[e] = p
		orderedExponents = append(orderedExponents, e)
	}
	sort.Ints(orderedExponents)
}

func (prefix Prefix) String() string {
	switch prefix {
	case Yotta:
		return "Y"
	case Zetta:
		return "Z"
	case Exa:
		return "E"
	case Peta:
		return "P"
	case Tera:
		return "T"
	case Giga:
		return "G"
	case Mega:
		return "M"
	case Kilo:
		return "k"
	case Hecto:
		return "h"
	case Deca:
		return "da"
	case Deci:
		return "d"
	case Centi:
		return "c"
	case Milli:
		return "m"
	case Micro:
		return "µ"
	case Nano:
		return "n"
	case Pico:
		return "p"
	case Femto:
		return "f"
	case Atto:
		return "a"
	case Zepto:
		return "z"
	case Yocto:
		return "y"
	default:
		return ""
	}
}

// Exponent returns the decimal exponent the prefix represents, e.g.
// Kilo.Exponent() == 3.
func (prefix Prefix) Exponent() int { return prefixExponent[prefix] }

// PrefixForExponent looks up the prefix for an exact decimal exponent,
// reporting false if none of the 21 prefixes matches.
func PrefixForExponent(exp int) (Prefix, bool) {
	p, ok := exponentPrefix[exp]
	return p, ok
}

// PrefixForSymbol resolves a single- or double-letter SI prefix symbol
// (e.g. "k", "da", "µ", "u", "mc") to its Prefix, reporting false if the
// symbol is not one of the 21 recognized prefixes.
func PrefixForSymbol(symbol string) (Prefix, bool) {
	switch symbol {
	case "":
		return Base, true
	case "Y":
		return Yotta, true
	case "Z":
		return Zetta, true
	case "E":
		return Exa, true
	case "P":
		return Peta, true
	case "T":
		return Tera, true
	case "G":
		return Giga, true
	case "M":
		return Mega, true
	case "k":
		return Kilo, true
	case "h":
		return Hecto, true
	case "da":
		return Deca, true
	case "d":
		return Deci, true
	case "c":
		return Centi, true
	case "m":
		return Milli, true
	case "µ", "μ", "u", "mc":
		return Micro, true
	case "n":
		return Nano, true
	case "p":
		return Pico, true
	case "f":
		return Femto, true
	case "a":
		return Atto, true
	case "z":
		return Zepto, true
	case "y":
		return Yocto, true
	default:
		return 0, false
	}
}

// NearestPrefix clamps a computed (possibly non-representable) decimal
// exponent to the nearest one of the 21 valid SI prefixes, matching the
// original's "find closest prefix" clamping behavior used when deriving
// a weighted-average prefix during Unit multiply/divide.
func NearestPrefix(exp int) Prefix {
	if p, ok := exponentPrefix[exp]; ok {
		return p
	}
	best := orderedExponents[0]
	bestDist := abs(exp - best)
	for _, e := range orderedExponents[1:] {
		if d := abs(exp - e); d < bestDist {
			best = e
			bestDist = d
		}
	}
	return exponentPrefix[best]
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Factor returns the multiplication factor 10^exp for a prefix as a
// math/big value, used to seed the fixed prefix table before any use
// site drops to float64. The value is computed at big.Float's 53-bit
// precision, so negative powers of ten and 10^23 and above are rounded.
func (prefix Prefix) Factor() (*big.Float, error) {
	exp, ok := prefixExponent[prefix]
	if !ok {
		return nil, unknownSymbolError(prefix.String())
	}
	return bigPow10(exp), nil
}

// Factor64 returns the same factor as Factor, rounded to float64 for
// use in scale computations.
func (prefix Prefix) Factor64() float64 {
	f, err := prefix.Factor()
	if err != nil {
		return 1
	}
	v, _ := f.Float64()
	return v
}

func bigPow10(exp int) *big.Float {
	ten := big.NewFloat(10)
	result := big.NewFloat(1)
	n := exp
	if n < 0 {
		n = -n
	}
	for i := 0; i < n; i++ {
		result.Mul(result, ten)
	}
	if exp < 0 {
		result = new(big.Float).Quo(big.NewFloat(1), result)
	}
	return result
}
