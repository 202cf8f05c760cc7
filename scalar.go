package si

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/floats"
)

// Scalar is a numeric value — real or complex — bound to a Unit.
type Scalar struct {
	value complex128
	unit  *Unit
}

// NewScalar creates a Scalar from a real value and a Unit.
func NewScalar(value float64, unit *Unit) *Scalar {
	return &Scalar{value: complex(value, 0), unit: unit}
}

// NewComplexScalar creates a Scalar from a complex value and a Unit.
func NewComplexScalar(value complex128, unit *Unit) *Scalar {
	return &Scalar{value: value, unit: unit}
}

// Value returns the real part of the scalar's numeric value.
func (s *Scalar) Value() float64 { return real(s.value) }

// ComplexValue returns the full complex numeric value.
func (s *Scalar) ComplexValue() complex128 { return s.value }

// Unit returns the scalar's bound unit.
func (s *Scalar) Unit() *Unit { return s.unit }

// MultiplyByConstant scales s by a dimensionless real constant, leaving
// its unit unchanged.
func (s *Scalar) MultiplyByConstant(k float64) *Scalar {
	return &Scalar{value: s.value * complex(k, 0), unit: s.unit}
}

// Add requires s and v to share a Dimensionality; it converts v into s's
// unit before summing.
func (s *Scalar) Add(v *Scalar) (*Scalar, error) {
	factor, err := ConversionFactor(v.unit, s.unit)
	if err != nil {
		return nil, err
	}
	return &Scalar{value: s.value + v.value*complex(factor, 0), unit: s.unit}, nil
}

// Sub is Add's inverse.
func (s *Scalar) Sub(v *Scalar) (*Scalar, error) {
	factor, err := ConversionFactor(v.unit, s.unit)
	if err != nil {
		return nil, err
	}
	return &Scalar{value: s.value - v.value*complex(factor, 0), unit: s.unit}, nil
}

// Multiply combines s and v's units via Unit algebra and their numeric
// values directly.
func (s *Scalar) Multiply(v *Scalar) (*Scalar, error) {
	u, mult, err := MultiplyUnits(s.unit, v.unit)
	if err != nil {
		return nil, err
	}
	return &Scalar{value: s.value * v.value * complex(mult, 0), unit: u}, nil
}

// Divide combines s and v's units via Unit algebra and divides their
// numeric values. Fails with DivisionByZero when v's value is zero.
func (s *Scalar) Divide(v *Scalar) (*Scalar, error) {
	if v.value == 0 {
		return nil, divisionByZeroError()
	}
	u, mult, err := DivideUnits(s.unit, v.unit)
	if err != nil {
		return nil, err
	}
	return &Scalar{value: s.value / v.value * complex(mult, 0), unit: u}, nil
}

// Power raises s to an integer power, applying the same power to its
// unit.
func (s *Scalar) Power(n int) (*Scalar, error) {
	u, mult, err := PowerUnit(s.unit, n)
	if err != nil {
		return nil, err
	}
	return &Scalar{value: cmplx.Pow(s.value, complex(float64(n), 0)) * complex(mult, 0), unit: u}, nil
}

// NthRoot takes the nth root of s's value and unit together.
func (s *Scalar) NthRoot(n int) (*Scalar, error) {
	u, err := NthRootUnit(s.unit, n)
	if err != nil {
		return nil, err
	}
	root := cmplx.Pow(s.value, complex(1/float64(n), 0))
	return &Scalar{value: root, unit: u}, nil
}

// Reduce returns s with its unit replaced by the shortest-symbol unit
// sharing its reduced dimensionality, with the numeric value rescaled to
// match.
func (s *Scalar) Reduce() *Scalar {
	u, mult := ReduceUnit(s.unit)
	return &Scalar{value: s.value * complex(mult, 0), unit: u}
}

// ConvertTo rescales s into target, failing with IncompatibleDimensionality
// unless the two units share a reduced dimensionality.
func (s *Scalar) ConvertTo(target *Unit) (*Scalar, error) {
	factor, err := ConversionFactor(s.unit, target)
	if err != nil {
		return nil, err
	}
	return &Scalar{value: s.value * complex(factor, 0), unit: target}, nil
}

// Equals compares two scalars for numeric equality within tolerance
// after converting v into s's unit.
func (s *Scalar) Equals(v *Scalar) bool {
	conv, err := v.ConvertTo(s.unit)
	if err != nil {
		return false
	}
	if imag(s.value) != 0 || imag(conv.value) != 0 {
		return cmplx.Abs(s.value-conv.value) < 1e-9*math.Max(1, cmplx.Abs(s.value))
	}
	return floats.EqualWithinAbsOrRel(real(s.value), real(conv.value), 1e-12, 1e-9)
}
