package si

// Convenience constructors for the most common physical quantities,
// each returning a Scalar in the coherent SI unit for its dimensionality.
// These shortcut LookupUnit + NewScalar for call sites that don't need a
// parsed expression.

func mustLibraryUnit(expr string) *Unit {
	u, ok := LookupUnit(CleanExpression(expr))
	if !ok {
		panic("si: no library unit for " + expr) // programmer error: expr must name a coherent library unit
	}
	return u
}

func Seconds(n float64) *Scalar { return NewScalar(n, mustLibraryUnit("s")) }
func Minutes(n float64) *Scalar { return NewScalar(n*60, mustLibraryUnit("s")) }
func Hours(n float64) *Scalar   { return NewScalar(n*3600, mustLibraryUnit("s")) }
func Milliseconds(n float64) *Scalar { return NewScalar(n/1000, mustLibraryUnit("s")) }

func Meters(n float64) *Scalar     { return NewScalar(n, mustLibraryUnit("m")) }
func Kilometers(n float64) *Scalar { return NewScalar(n*1000, mustLibraryUnit("m")) }

func Kilograms(n float64) *Scalar { return NewScalar(n, mustLibraryUnit("kg")) }
func Grams(n float64) *Scalar     { return NewScalar(n/1000, mustLibraryUnit("kg")) }

// Celsius converts a Celsius reading to a kelvin-valued Scalar. Celsius is
// an affine, not linear, offset from kelvin, so it is handled here rather
// than via a library-registered scale factor.
func Celsius(n float64) *Scalar { return NewScalar(n+273.15, mustLibraryUnit("K")) }

func Watts(n float64) *Scalar   { return NewScalar(n, mustLibraryUnit("W")) }
func Volts(n float64) *Scalar   { return NewScalar(n, mustLibraryUnit("V")) }
func Amperes(n float64) *Scalar { return NewScalar(n, mustLibraryUnit("A")) }
func Newtons(n float64) *Scalar { return NewScalar(n, mustLibraryUnit("N")) }
func Pascals(n float64) *Scalar { return NewScalar(n, mustLibraryUnit("Pa")) }
func Joules(n float64) *Scalar  { return NewScalar(n, mustLibraryUnit("J")) }
func Hertzs(n float64) *Scalar  { return NewScalar(n, mustLibraryUnit("Hz")) }
