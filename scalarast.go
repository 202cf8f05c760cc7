package si

import (
	"math"
	"math/cmplx"
)

// scalarNode is one node of a parsed scalar expression's syntax tree.
type scalarNode interface {
	eval() (*Scalar, error)
}

type numberNode struct {
	value complex128
	unit  *Unit // nil means dimensionless
}

func (n *numberNode) eval() (*Scalar, error) {
	u := n.unit
	if u == nil {
		u = dimensionlessUnit()
	}
	return NewComplexScalar(n.value, u), nil
}

type binaryScalarNode struct {
	op          byte // '+', '-', '*', '/', '^'
	left, right scalarNode
}

func (n *binaryScalarNode) eval() (*Scalar, error) {
	l, err := n.left.eval()
	if err != nil {
		return nil, err
	}
	r, err := n.right.eval()
	if err != nil {
		return nil, err
	}
	switch n.op {
	case '+':
		return l.Add(r)
	case '-':
		return l.Sub(r)
	case '*':
		return l.Multiply(r)
	case '/':
		return l.Divide(r)
	case '^':
		if imag(r.value) != 0 || real(r.value) != math.Trunc(real(r.value)) {
			return nil, fractionalExponentError("scalar exponent %v is not an integer", r.value)
		}
		return l.Power(int(real(r.value)))
	default:
		return nil, syntaxError(-1, "unknown operator %q", string(n.op))
	}
}

type unaryMinusNode struct {
	operand scalarNode
}

func (n *unaryMinusNode) eval() (*Scalar, error) {
	v, err := n.operand.eval()
	if err != nil {
		return nil, err
	}
	return v.MultiplyByConstant(-1), nil
}

type mathFuncNode struct {
	name string
	arg  scalarNode
	pos  int
}

func (n *mathFuncNode) eval() (*Scalar, error) {
	arg, err := n.arg.eval()
	if err != nil {
		return nil, err
	}
	fn, ok := scalarMathFunctions[n.name]
	if !ok {
		return nil, unknownSymbolError(n.name)
	}
	return fn(arg)
}

type constantFuncNode struct {
	name   string
	symbol string
	pos    int
}

func (n *constantFuncNode) eval() (*Scalar, error) {
	fn, ok := scalarConstantFunctions[n.name]
	if !ok {
		return nil, unknownSymbolError(n.name)
	}
	return fn(n.symbol)
}

type convertNode struct {
	operand  scalarNode
	unitExpr string
}

func (n *convertNode) eval() (*Scalar, error) {
	v, err := n.operand.eval()
	if err != nil {
		return nil, err
	}
	u, mult, err := ParseUnit(n.unitExpr)
	if err != nil {
		return nil, err
	}
	converted, err := v.ConvertTo(u)
	if err != nil {
		return nil, err
	}
	if mult != 1 {
		converted = converted.MultiplyByConstant(1 / mult)
	}
	if imag(converted.value) == 0 {
		converted.value = complex(real(converted.value), 0)
	}
	return converted, nil
}

func requireDimensionless(s *Scalar, fn string) error {
	if !s.unit.dimensionality.IsDimensionless() {
		return incompatibleDimensionalityError("%s requires a dimensionless argument, got %q", fn, s.unit.Symbol())
	}
	return nil
}

var scalarMathFunctions = map[string]func(*Scalar) (*Scalar, error){
	"sqrt": func(s *Scalar) (*Scalar, error) { return s.NthRoot(2) },
	"cbrt": func(s *Scalar) (*Scalar, error) { return s.NthRoot(3) },
	"qtrt": func(s *Scalar) (*Scalar, error) { return s.NthRoot(4) },
	"exp": func(s *Scalar) (*Scalar, error) {
		if err := requireDimensionless(s, "exp"); err != nil {
			return nil, err
		}
		return NewComplexScalar(cmplx.Exp(s.value), dimensionlessUnit()), nil
	},
	"ln": func(s *Scalar) (*Scalar, error) {
		if err := requireDimensionless(s, "ln"); err != nil {
			return nil, err
		}
		return NewComplexScalar(cmplx.Log(s.value), dimensionlessUnit()), nil
	},
	"log": func(s *Scalar) (*Scalar, error) {
		if err := requireDimensionless(s, "log"); err != nil {
			return nil, err
		}
		return NewComplexScalar(cmplx.Log10(s.value), dimensionlessUnit()), nil
	},
	"erf": func(s *Scalar) (*Scalar, error) {
		if err := requireDimensionless(s, "erf"); err != nil {
			return nil, err
		}
		return NewScalar(math.Erf(real(s.value)), dimensionlessUnit()), nil
	},
	"erfc": func(s *Scalar) (*Scalar, error) {
		if err := requireDimensionless(s, "erfc"); err != nil {
			return nil, err
		}
		return NewScalar(math.Erfc(real(s.value)), dimensionlessUnit()), nil
	},
	"sin":   trigFunc("sin", cmplx.Sin),
	"cos":   trigFunc("cos", cmplx.Cos),
	"tan":   trigFunc("tan", cmplx.Tan),
	"asin":  trigFunc("asin", cmplx.Asin),
	"acos":  trigFunc("acos", cmplx.Acos),
	"atan":  trigFunc("atan", cmplx.Atan),
	"sinh":  trigFunc("sinh", cmplx.Sinh),
	"cosh":  trigFunc("cosh", cmplx.Cosh),
	"tanh":  trigFunc("tanh", cmplx.Tanh),
	"asinh": trigFunc("asinh", cmplx.Asinh),
	"acosh": trigFunc("acosh", cmplx.Acosh),
	"atanh": trigFunc("atanh", cmplx.Atanh),
	"conj": func(s *Scalar) (*Scalar, error) {
		return NewComplexScalar(cmplx.Conj(s.value), s.unit), nil
	},
	"creal": func(s *Scalar) (*Scalar, error) {
		return NewScalar(real(s.value), s.unit), nil
	},
	"cimag": func(s *Scalar) (*Scalar, error) {
		return NewScalar(imag(s.value), s.unit), nil
	},
	"carg": func(s *Scalar) (*Scalar, error) {
		return NewScalar(cmplx.Phase(s.value), dimensionlessUnit()), nil
	},
	"cabs": func(s *Scalar) (*Scalar, error) {
		return NewScalar(cmplx.Abs(s.value), s.unit), nil
	},
	"reduce": func(s *Scalar) (*Scalar, error) { return s.Reduce(), nil },
}

func trigFunc(name string, f func(complex128) complex128) func(*Scalar) (*Scalar, error) {
	return func(s *Scalar) (*Scalar, error) {
		if err := requireDimensionless(s, name); err != nil {
			return nil, err
		}
		return NewComplexScalar(f(s.value), dimensionlessUnit()), nil
	}
}

var scalarConstantFunctions = map[string]func(string) (*Scalar, error){
	"aw": func(sym string) (*Scalar, error) {
		v, err := AtomicWeight(sym)
		if err != nil {
			return nil, err
		}
		return NewScalar(v, molarMassUnit()), nil
	},
	"fw": func(sym string) (*Scalar, error) {
		v, err := AtomicWeight(sym)
		if err != nil {
			return nil, err
		}
		return NewScalar(v, molarMassUnit()), nil
	},
	"abundance": func(sym string) (*Scalar, error) {
		v, err := IsotopeNaturalAbundance(sym)
		if err != nil {
			return nil, err
		}
		return NewScalar(v, dimensionlessUnit()), nil
	},
	"spin": func(sym string) (*Scalar, error) {
		v, err := IsotopeNuclearSpin(sym)
		if err != nil {
			return nil, err
		}
		return NewScalar(v, dimensionlessUnit()), nil
	},
	"halflife": func(sym string) (*Scalar, error) {
		v, err := IsotopeHalfLife(sym)
		if err != nil {
			return nil, err
		}
		u, _ := LookupUnit(CleanExpression("s"))
		return NewScalar(v, u), nil
	},
	"gyromag": func(sym string) (*Scalar, error) {
		v, err := IsotopeGyromagneticRatio(sym)
		if err != nil {
			return nil, err
		}
		return NewScalar(v, gyromagneticRatioUnit()), nil
	},
	"mu": func(sym string) (*Scalar, error) {
		v, err := IsotopeMagneticDipoleMoment(sym)
		if err != nil {
			return nil, err
		}
		return NewScalar(v, nuclearMagnetonUnit()), nil
	},
	"q": func(sym string) (*Scalar, error) {
		v, err := IsotopeElectricQuadrupoleMoment(sym)
		if err != nil {
			return nil, err
		}
		u, _ := LookupUnit(CleanExpression("b"))
		return NewScalar(v, u), nil
	},
	"nmr": func(sym string) (*Scalar, error) {
		v, err := NMRFrequency(sym)
		if err != nil {
			return nil, err
		}
		return NewScalar(v, nmrFrequencyUnit()), nil
	},
}

func molarMassUnit() *Unit {
	g, _ := LookupUnit(CleanExpression("g"))
	mol, _ := LookupUnit(CleanExpression("mol"))
	if g == nil || mol == nil {
		return dimensionlessUnit()
	}
	u, _, err := DivideUnits(g, mol)
	if err != nil {
		return dimensionlessUnit()
	}
	return u
}

func gyromagneticRatioUnit() *Unit {
	s, _ := LookupUnit(CleanExpression("s"))
	t, _ := LookupUnit(CleanExpression("T"))
	if s == nil || t == nil {
		return dimensionlessUnit()
	}
	denom, _, err := MultiplyUnits(s, t)
	if err != nil {
		return dimensionlessUnit()
	}
	one := dimensionlessUnit()
	u, _, err := DivideUnits(one, denom)
	if err != nil {
		return dimensionlessUnit()
	}
	return u
}

func nuclearMagnetonUnit() *Unit {
	u, ok := LookupUnit(CleanExpression("muN"))
	if !ok {
		return dimensionlessUnit()
	}
	return u
}

func nmrFrequencyUnit() *Unit {
	mhz, ok := LookupUnit(CleanExpression("MHz"))
	if !ok {
		return dimensionlessUnit()
	}
	t, ok := LookupUnit(CleanExpression("T"))
	if !ok {
		return dimensionlessUnit()
	}
	u, _, err := DivideUnits(mhz, t)
	if err != nil {
		return dimensionlessUnit()
	}
	return u
}
