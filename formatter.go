package si

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatOptions configures how a Unit's canonical symbol is rendered for
// display. It is independent of the canonical key used for interning and
// equality: two units with different FormatOptions output still compare
// equal and intern to the same instance.
type FormatOptions struct {
	// MultSymbol joins numerator/denominator factors (default "·").
	MultSymbol string
	// DivSymbol separates numerator from denominator (default "/").
	DivSymbol string
	// ExponentFmt formats a factor's exponent (default "^%d").
	ExponentFmt string
	// UseParens wraps a multi-factor denominator in parentheses (default true).
	UseParens bool
}

// DefaultFormatOptions returns the options used by Unit.Symbol.
func DefaultFormatOptions() FormatOptions {
	return FormatOptions{
		MultSymbol:  "·",
		DivSymbol:   "/",
		ExponentFmt: "^%d",
		UseParens:   true,
	}
}

// Format renders u's canonical symbol under custom operator glyphs and
// exponent format, re-parsing its interned term list rather than walking a
// separate AST — the interned Symbol() is already the source of truth.
func Format(u *Unit, opts FormatOptions) string {
	num, den, err := parseTermList(u.symbol)
	if err != nil {
		return u.symbol
	}
	numStr := formatTerms(num, opts)
	if numStr == "" {
		numStr = "1"
	}
	if len(den) == 0 {
		return numStr
	}
	denStr := formatTerms(den, opts)
	if len(den) > 1 && opts.UseParens {
		denStr = "(" + denStr + ")"
	}
	return numStr + opts.DivSymbol + denStr
}

func formatTerms(terms []unitTerm, opts FormatOptions) string {
	parts := make([]string, len(terms))
	for i, t := range terms {
		if t.power == 1 {
			parts[i] = t.symbol
		} else {
			parts[i] = t.symbol + fmt.Sprintf(opts.ExponentFmt, t.power)
		}
	}
	return strings.Join(parts, opts.MultSymbol)
}

// FormatScalar renders a Scalar's numeric value and unit symbol together,
// e.g. "3.2 mL" or "1-2i V".
func FormatScalar(s *Scalar, opts FormatOptions) string {
	sym := Format(s.unit, opts)
	re, im := real(s.value), imag(s.value)
	var numStr string
	if im != 0 {
		numStr = strconv.FormatFloat(re, 'g', -1, 64) + formatImag(im)
	} else {
		numStr = strconv.FormatFloat(re, 'g', -1, 64)
	}
	if sym == "1" || sym == "" {
		return numStr
	}
	return numStr + " " + sym
}

func formatImag(im float64) string {
	sign := "+"
	if im < 0 {
		sign = "-"
		im = -im
	}
	return sign + strconv.FormatFloat(im, 'g', -1, 64) + "i"
}
