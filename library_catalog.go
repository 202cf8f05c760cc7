package si

// This file performs the leaves-first population described by the
// spec: coherent SI base units, special SI units, their prefixed
// variants, non-SI units, and convenience combinations. Scale constants
// for the non-SI catalog are taken from the original C library's
// registration calls (pound, inch, calorie, bar, electronvolt, the
// pressure and power families, and the US/imperial gallon split).

var prefixableRoots []*Unit

// allowsPrefixRoots indexes every allows-SI-prefix root by its bare
// root symbol, letting the Unit Parser synthesize prefixed instances on
// demand for symbols the leaves-first population didn't pre-generate.
var allowsPrefixRoots = map[string]*Unit{}

// baseUnitByDimension indexes the seven coherent base units by their
// dimension, for registerPrefixedBaseVariants below.
var baseUnitByDimension = map[baseDimension]*Unit{}

func zeroPrefixes() (num, den [numBaseDimensions]Prefix) { return }

func newBaseDimensionality(b baseDimension) *Dimensionality {
	var num [numBaseDimensions]int8
	num[b] = 1
	var den [numBaseDimensions]int8
	return internDimensionality(num, den)
}

func coherentBaseUnit(b baseDimension, quantity string) *Unit {
	num, den := zeroPrefixes()
	prefix := Base
	if b == dimMass {
		prefix = Kilo
	}
	num[b] = prefix
	u := internUnit(newBaseDimensionality(b), num, den, "", "", "", Base, false, false, 1)
	RegisterUnitForQuantity(quantity, u)
	baseUnitByDimension[b] = u
	return u
}

func registerCoherentSIBaseUnits() {
	coherentBaseUnit(dimLength, "length")
	coherentBaseUnit(dimMass, "mass")
	coherentBaseUnit(dimTime, "time")
	coherentBaseUnit(dimCurrent, "current")
	coherentBaseUnit(dimTemperature, "temperature")
	coherentBaseUnit(dimAmount, "amount")
	coherentBaseUnit(dimLuminousIntensity, "luminousintensity")
}

// registerPrefixedBaseVariants synthesizes the 20 non-base prefixed
// instances (km, ms, mA, …) for the six coherent base dimensions whose
// symbol isn't already reached through a named root's prefixing; mass
// is excluded because its base unit is already kilo-prefixed and its
// prefix family is carried by the gram entry in registerNonSIUnits.
func registerPrefixedBaseVariants() {
	for b := baseDimension(0); b < numBaseDimensions; b++ {
		if b == dimMass {
			continue
		}
		root, ok := baseUnitByDimension[b]
		if !ok {
			continue
		}
		for exp, prefix := range exponentPrefix {
			if exp == 0 {
				continue
			}
			num, den := zeroPrefixes()
			num[b] = prefix
			internUnit(root.dimensionality, num, den, "", "", "", Base, false, false, 1)
		}
	}
}

// specialSIUnit registers a coherent-SI named unit (newton, joule, …)
// built from a quantity's Dimensionality, marking it eligible for the
// 20 prefixed variants synthesized in registerPrefixedVariants.
func specialSIUnit(quantity, name, plural, symbol string) *Unit {
	d, err := ForQuantity(quantity)
	if err != nil {
		panic(err) // programmer error: quantity must already be registered
	}
	num, den := zeroPrefixes()
	u := internUnit(d, num, den, name, plural, symbol, Base, true, true, 1)
	RegisterUnitForQuantity(quantity, u)
	prefixableRoots = append(prefixableRoots, u)
	allowsPrefixRoots[symbol] = u
	return u
}

func registerSpecialSIUnits() {
	specialSIUnit("force", "newton", "newtons", "N")
	specialSIUnit("energy", "joule", "joules", "J")
	specialSIUnit("power", "watt", "watts", "W")
	specialSIUnit("pressure", "pascal", "pascals", "Pa")
	specialSIUnit("frequency", "hertz", "hertz", "Hz")
	specialSIUnit("charge", "coulomb", "coulombs", "C")
	specialSIUnit("voltage", "volt", "volts", "V")
	specialSIUnit("resistance", "ohm", "ohms", "Ω")
	specialSIUnit("capacitance", "farad", "farads", "F")
	specialSIUnit("inductance", "henry", "henries", "H")
	specialSIUnit("magneticflux", "weber", "webers", "Wb")
	specialSIUnit("magneticfluxdensity", "tesla", "teslas", "T")
	specialSIUnit("catalyticactivity", "katal", "katals", "kat")
	specialSIUnit("luminousflux", "lumen", "lumens", "lm")
	specialSIUnit("illuminance", "lux", "lux", "lx")
}

// registerPrefixedVariants synthesizes the 20 non-base prefixed
// instances (kN, mN, …) for every root registered with allowsSIPrefix.
func registerPrefixedVariants() {
	roots := prefixableRoots
	for _, root := range roots {
		for exp, prefix := range exponentPrefix {
			if exp == 0 {
				continue
			}
			num, den := zeroPrefixes()
			internUnit(root.dimensionality, num, den, root.rootName, root.rootPluralName, root.rootSymbol, prefix, false, root.isSpecialSISymbol, root.scaleToCoherentSI)
		}
	}
}

// nonSIUnit registers a named, non-coherent unit with a literal scale
// factor (value in coherent SI per one unit of the new root).
func nonSIUnit(quantity, name, plural, symbol string, scale float64, allowsPrefix bool) *Unit {
	d, err := ForQuantity(quantity)
	if err != nil {
		panic(err)
	}
	num, den := zeroPrefixes()
	u := internUnit(d, num, den, name, plural, symbol, Base, allowsPrefix, false, scale)
	RegisterUnitForQuantity(quantity, u)
	if allowsPrefix {
		prefixableRoots = append(prefixableRoots, u)
		allowsPrefixRoots[symbol] = u
	}
	return u
}

func registerNonSIUnits() {
	// Length
	nonSIUnit("length", "inch", "inches", "in", 0.0254, false)
	nonSIUnit("length", "foot", "feet", "ft", 0.3048, false)
	nonSIUnit("length", "yard", "yards", "yd", 0.9144, false)
	nonSIUnit("length", "mile", "miles", "mi", 1609.344, false)
	nonSIUnit("length", "angstrom", "angstroms", "Å", 1e-10, false)

	// Mass
	nonSIUnit("mass", "gram", "grams", "g", 1e-3, true)
	nonSIUnit("mass", "pound", "pounds", "lb", 0.45359237, false)
	nonSIUnit("mass", "ounce", "ounces", "oz", 0.45359237/16, false)
	nonSIUnit("mass", "metricton", "metric tons", "t", 1000, false)
	nonSIUnit("mass", "atomicmassunit", "atomic mass units", "u", 1.66053906660e-27, false)

	// Time
	nonSIUnit("time", "minute", "minutes", "min", 60, false)
	nonSIUnit("time", "hour", "hours", "h", 3600, false)
	nonSIUnit("time", "day", "days", "d", 86400, false)
	nonSIUnit("time", "year", "years", "yr", 365.25*86400, false)

	// Volume
	nonSIUnit("volume", "liter", "liters", "L", 1e-3, true)

	// Area
	nonSIUnit("area", "barn", "barns", "b", 1e-28, true)
	nonSIUnit("area", "acre", "acres", "ac", 4046.8564224, false)
	nonSIUnit("area", "hectare", "hectares", "ha", 1e4, false)

	// Energy
	nonSIUnit("energy", "calorie", "calories", "cal", 4.1868, true)
	nonSIUnit("energy", "electronvolt", "electronvolts", "eV", 1.602176634e-19, true)
	nonSIUnit("energy", "britishthermalunit", "British thermal units", "Btu", 1055.05585257348, false)
	nonSIUnit("energy", "erg", "ergs", "erg", 1e-7, false)

	// Power
	nonSIUnit("power", "horsepower", "horsepower", "hp", 745.699872, false)

	// Pressure
	nonSIUnit("pressure", "bar", "bars", "bar", 1e5, true)
	nonSIUnit("pressure", "atmosphere", "atmospheres", "atm", 1.01325e5, false)
	nonSIUnit("pressure", "torr", "torr", "Torr", 1.01325e5/760, false)
	nonSIUnit("pressure", "millimeterofmercury", "millimeters of mercury", "mmHg", 133.322, false)
	nonSIUnit("pressure", "poundforcepersquareinch", "pounds force per square inch", "psi", 6894.75729, false)

	// Temperature offsets (Celsius/Fahrenheit are affine, not linear, and
	// are intentionally handled by Scalar-level conversion, not a scale
	// factor here; only the coherent kelvin root is a library unit).

	// Magnetic moment: isotope magnetic dipole moments are tabulated in
	// nuclear magnetons, not coherent SI. Spelled "muN" rather than the
	// conventional µN glyph: µ is also the micro-prefix symbol, and N
	// already allows SI prefixing (specialSIUnit), so "µN" is already
	// taken as micro-newton's interned key.
	nonSIUnit("magneticmoment", "nuclearmagneton", "nuclear magnetons", "muN", nuclearMagneton, false)
}

func registerConvenienceCombinations() {
	// Pressure gradient: Pa/m.
	pa, _ := LookupUnit(CleanExpression("Pa"))
	m, _ := LookupUnit(CleanExpression("m"))
	if pa != nil && m != nil {
		if grad, _, err := DivideUnits(pa, m); err == nil {
			RegisterUnitForQuantity("pressuregradient", grad)
		}
	}

	// Volumetric flow rate: m^3/s, built from the coherent length unit.
	if m != nil {
		if area, _, err := MultiplyUnits(m, m); err == nil {
			if vol, _, err := MultiplyUnits(area, m); err == nil {
				RegisterUnitForQuantity("volume", vol)
				s, _ := LookupUnit(CleanExpression("s"))
				if s != nil {
					if flow, _, err := DivideUnits(vol, s); err == nil {
						RegisterUnitForQuantity("volumetricflowrate", flow)
					}
				}
			}
		}
	}
}

// registerVolumeFamily materializes the US-customary or imperial
// gal/qt/pt/cup family under the unlabeled symbols, keeping the other
// family available under a "US"/"imp" labeled alias.
func registerVolumeFamily(imperial bool) {
	type liquidUnit struct {
		name, plural, symbol string
		usScale              float64
		impScale             float64
	}
	units := []liquidUnit{
		{"gallon", "gallons", "gal", 0.003785411784, 0.00454609},
		{"quart", "quarts", "qt", 0.003785411784 / 4, 0.00454609 / 4},
		{"pint", "pints", "pt", 0.003785411784 / 8, 0.00454609 / 8},
		{"cup", "cups", "cup", 0.003785411784 / 16, 0.00454609 / 16*1.041666666666667},
		{"fluidounce", "fluid ounces", "floz", 0.003785411784 / 128, 0.00454609 / 160},
	}
	for _, lu := range units {
		primary, secondary := lu.usScale, lu.impScale
		secondarySuffix := "imp"
		if imperial {
			primary, secondary = lu.impScale, lu.usScale
			secondarySuffix = "US"
		}
		nonSIUnit("volume", lu.name, lu.plural, lu.symbol, primary, false)
		nonSIUnit("volume", lu.name+secondarySuffix, lu.plural+" ("+secondarySuffix+")", lu.symbol+secondarySuffix, secondary, false)
	}
}
