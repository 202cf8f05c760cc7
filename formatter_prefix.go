package si

import (
	"math"
	"strconv"
)

// FormatWithAutoPrefix renders s choosing whichever SI prefix brings its
// displayed magnitude closest to [1, 1000) — "1.5 km" rather than "1500 m"
// — without altering s's underlying unit or value. Units with a named root
// that does not allow SI prefixing, or a non-trivial compound symbol, are
// rendered as-is via FormatScalar.
func FormatWithAutoPrefix(s *Scalar, opts FormatOptions) string {
	u := s.unit
	root, exp := u.rootSymbol, 0
	if root == "" {
		// A coherent base unit such as m, kg or s, possibly prefixed (km).
		for b := 0; b < int(numBaseDimensions); b++ {
			letter := baseSymbolLetter(baseDimension(b))
			if u.dimensionality.num[b] == 1 && u.symbol == u.numPrefix[b].String()+letter {
				root, exp = letter, u.numPrefix[b].Exponent()
			}
		}
	} else if !u.allowsSIPrefix {
		root = ""
	}
	if root == "" || imag(s.value) != 0 {
		return FormatScalar(s, opts)
	}

	prefix, scaled := autoPrefix(real(s.value) * math.Pow(10, float64(exp)))
	return strconv.FormatFloat(scaled, 'g', -1, 64) + " " + prefix.String() + root
}

// autoPrefix picks the prefix whose decade is nearest to the value's own
// decade, rounded down to the nearest multiple of 3 so the common
// engineering prefixes (k, M, G, m, µ, n, ...) are favored over h/da/d/c.
func autoPrefix(value float64) (Prefix, float64) {
	av := math.Abs(value)
	if av == 0 {
		return Base, 0
	}
	exp := int(math.Floor(math.Log10(av)/3)) * 3
	prefix := NearestPrefix(exp)
	factor := prefix.Factor64()
	if factor == 0 {
		return Base, value
	}
	return prefix, value / factor
}
