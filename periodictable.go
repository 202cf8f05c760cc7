package si

import (
	"math"
	"sync"

	"golang.org/x/text/cases"
)

var isotopeSymbolFold = cases.Fold()

// isotopeRecord holds the raw physical constants the periodic table
// exposes per isotope, keyed by lowercased symbol (e.g. "1h", "12c").
// Values follow the original library's unit choices: mass in g/mol,
// half-life and mean lifetime in seconds, quadrupole moment in barn,
// magnetic dipole moment in nuclear magnetons, abundance and spin
// dimensionless.
type isotopeRecord struct {
	atomicMass               float64
	isotopeMass               float64
	stable                    bool
	halfLifeSeconds           float64
	naturalAbundance          float64
	nuclearSpin               float64
	electricQuadrupoleMoment  float64
	magneticDipoleMoment      float64
	radioactive               bool
}

const (
	// reducedPlanckConstant (hbar) in J·s.
	reducedPlanckConstant = 1.054571817e-34
	// nuclearMagneton in J/T.
	nuclearMagneton = 5.0507837461e-27
)

var (
	periodicTableOnce sync.Once
	isotopeTable      map[string]isotopeRecord
	elementUncertainty map[string]float64
)

func ensurePeriodicTablePopulated() {
	periodicTableOnce.Do(func() {
		isotopeTable = map[string]isotopeRecord{
			"1h": {
				atomicMass: 1.00794, isotopeMass: 1.00782503207, stable: true,
				naturalAbundance: 0.999885, nuclearSpin: 0.5,
				electricQuadrupoleMoment: 0, magneticDipoleMoment: 2.792847356,
			},
			"2h": {
				atomicMass: 1.00794, isotopeMass: 2.0141017778, stable: true,
				naturalAbundance: 0.000115, nuclearSpin: 1,
				electricQuadrupoleMoment: 0.00286, magneticDipoleMoment: 0.857438230,
			},
			"12c": {
				atomicMass: 12.0107, isotopeMass: 12.0, stable: true,
				naturalAbundance: 0.9893, nuclearSpin: 0,
			},
			"13c": {
				atomicMass: 12.0107, isotopeMass: 13.00335483507, stable: true,
				naturalAbundance: 0.0107, nuclearSpin: 0.5,
				magneticDipoleMoment: 0.7024118,
			},
			"14n": {
				atomicMass: 14.0067, isotopeMass: 14.0030740048, stable: true,
				naturalAbundance: 0.99636, nuclearSpin: 1,
				electricQuadrupoleMoment: 0.02044, magneticDipoleMoment: 0.40376100,
			},
			"16o": {
				atomicMass: 15.9994, isotopeMass: 15.99491461956, stable: true,
				naturalAbundance: 0.99757, nuclearSpin: 0,
			},
			"14c": {
				atomicMass: 12.0107, isotopeMass: 14.0032419884, stable: false,
				radioactive: true, halfLifeSeconds: 5730 * 365.25 * 86400,
				naturalAbundance: 0, nuclearSpin: 0,
			},
			"3h": {
				atomicMass: 1.00794, isotopeMass: 3.0160492777, stable: false,
				radioactive: true, halfLifeSeconds: 12.32 * 365.25 * 86400,
				naturalAbundance: 0, nuclearSpin: 0.5, magneticDipoleMoment: 2.978962448,
			},
			"23na": {
				atomicMass: 22.98976928, isotopeMass: 22.9897692809, stable: true,
				naturalAbundance: 1, nuclearSpin: 1.5,
				electricQuadrupoleMoment: 0.104, magneticDipoleMoment: 2.2174980,
			},
			"31p": {
				atomicMass: 30.973762, isotopeMass: 30.97376163, stable: true,
				naturalAbundance: 1, nuclearSpin: 0.5, magneticDipoleMoment: 1.13160,
			},
		}

		elementUncertainty = map[string]float64{
			"h": 0.00007, "c": 0.0008, "n": 0.0002, "o": 0.0003,
			"na": 0.00002, "p": 0.000002,
		}
	})
}

func isotopeKey(symbol string) string { return isotopeSymbolFold.String(symbol) }

func lookupIsotope(symbol string) (isotopeRecord, error) {
	ensurePeriodicTablePopulated()
	rec, ok := isotopeTable[isotopeKey(symbol)]
	if !ok {
		return isotopeRecord{}, unknownSymbolError(symbol)
	}
	return rec, nil
}

// AtomicWeight returns the atomic/molar mass recorded for an isotope
// symbol such as "1H", in g/mol. The table is keyed by isotope only; a
// bare element symbol such as "H" is not found and returns an error.
func AtomicWeight(symbol string) (float64, error) {
	rec, err := lookupIsotope(symbol)
	if err != nil {
		return 0, err
	}
	return rec.atomicMass, nil
}

// AtomicWeightUncertainty returns the standard atomic weight's
// published uncertainty for an element symbol (supplemented from the
// original's broader periodic-table coverage; not available per
// isotope).
func AtomicWeightUncertainty(elementSymbol string) (float64, error) {
	ensurePeriodicTablePopulated()
	u, ok := elementUncertainty[isotopeKey(elementSymbol)]
	if !ok {
		return 0, unknownSymbolError(elementSymbol)
	}
	return u, nil
}

// IsotopeMass returns an isotope's exact mass, in g/mol.
func IsotopeMass(symbol string) (float64, error) {
	rec, err := lookupIsotope(symbol)
	if err != nil {
		return 0, err
	}
	return rec.isotopeMass, nil
}

// IsotopeIsStable reports whether an isotope is stable.
func IsotopeIsStable(symbol string) (bool, error) {
	rec, err := lookupIsotope(symbol)
	if err != nil {
		return false, err
	}
	return rec.stable, nil
}

// IsRadioactive reports whether an isotope is radioactive — the
// complement of IsotopeIsStable for the isotopes the table tracks a
// half-life for (supplemented from the original's per-element predicate).
func IsRadioactive(symbol string) (bool, error) {
	rec, err := lookupIsotope(symbol)
	if err != nil {
		return false, err
	}
	return rec.radioactive, nil
}

// IsotopeHalfLife returns an isotope's half-life in seconds. Stable
// isotopes return +Inf.
func IsotopeHalfLife(symbol string) (float64, error) {
	rec, err := lookupIsotope(symbol)
	if err != nil {
		return 0, err
	}
	if rec.stable {
		return math.Inf(1), nil
	}
	return rec.halfLifeSeconds, nil
}

// IsotopeMeanLifetime returns an isotope's mean lifetime in seconds,
// tau = halfLife / ln(2).
func IsotopeMeanLifetime(symbol string) (float64, error) {
	halfLife, err := IsotopeHalfLife(symbol)
	if err != nil {
		return 0, err
	}
	if math.IsInf(halfLife, 1) {
		return math.Inf(1), nil
	}
	return halfLife / math.Ln2, nil
}

// IsotopeNaturalAbundance returns an isotope's natural abundance as a
// dimensionless fraction.
func IsotopeNaturalAbundance(symbol string) (float64, error) {
	rec, err := lookupIsotope(symbol)
	if err != nil {
		return 0, err
	}
	return rec.naturalAbundance, nil
}

// IsotopeNuclearSpin returns an isotope's dimensionless nuclear spin
// quantum number I.
func IsotopeNuclearSpin(symbol string) (float64, error) {
	rec, err := lookupIsotope(symbol)
	if err != nil {
		return 0, err
	}
	return rec.nuclearSpin, nil
}

// IsotopeElectricQuadrupoleMoment returns an isotope's electric
// quadrupole moment in barn.
func IsotopeElectricQuadrupoleMoment(symbol string) (float64, error) {
	rec, err := lookupIsotope(symbol)
	if err != nil {
		return 0, err
	}
	return rec.electricQuadrupoleMoment, nil
}

// IsotopeMagneticDipoleMoment returns an isotope's magnetic dipole
// moment in nuclear magnetons.
func IsotopeMagneticDipoleMoment(symbol string) (float64, error) {
	rec, err := lookupIsotope(symbol)
	if err != nil {
		return 0, err
	}
	return rec.magneticDipoleMoment, nil
}

// IsotopeGyromagneticRatio computes gamma = µ/(ħ·I) in rad/(s·T), where
// µ is the magnetic dipole moment in J/T (converted from nuclear
// magnetons) and I is the nuclear spin.
func IsotopeGyromagneticRatio(symbol string) (float64, error) {
	rec, err := lookupIsotope(symbol)
	if err != nil {
		return 0, err
	}
	if rec.nuclearSpin == 0 {
		return 0, nil
	}
	muJoulePerTesla := rec.magneticDipoleMoment * nuclearMagneton
	return muJoulePerTesla / (reducedPlanckConstant * rec.nuclearSpin), nil
}

// NMRFrequency returns gamma/(2*pi) in MHz/T, the frequency an NMR
// spectrometer reports for the isotope's gyromagnetic ratio.
func NMRFrequency(symbol string) (float64, error) {
	gamma, err := IsotopeGyromagneticRatio(symbol)
	if err != nil {
		return 0, err
	}
	return gamma / (2 * math.Pi) / 1e6, nil
}
