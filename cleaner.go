package si

import (
	"sort"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// unitTerm is a single (symbol, power) factor of a unit expression, the
// common currency of the Expression Cleaner.
type unitTerm struct {
	symbol string
	power  int
}

var (
	multiplyGlyphs = []string{"×", "⋅", "∙", "•"}
	divideGlyphs   = []string{"÷", "∕", "⁄"}

	superscriptDigits = map[rune]rune{
		'⁰': '0', '¹': '1', '²': '2', '³': '3', '⁴': '4',
		'⁵': '5', '⁶': '6', '⁷': '7', '⁸': '8', '⁹': '9',
	}
)

// normalizeUnicode folds the Unicode operator and glyph variants the
// grammar accepts down to the canonical ASCII set: × ⋅ ∙ • → *,
// ÷ ∕ ⁄ → /, superscript digits (with an optional leading superscript
// minus) → ^n or ^-n, and Greek μ (U+03BC) → the micro sign µ (U+00B5).
// An ASCII "u" is not rewritten.
func normalizeUnicode(s string) string {
	s = norm.NFC.String(s)
	for _, g := range multiplyGlyphs {
		s = strings.ReplaceAll(s, g, "*")
	}
	for _, g := range divideGlyphs {
		s = strings.ReplaceAll(s, g, "/")
	}
	s = strings.ReplaceAll(s, "·", "*")
	s = strings.ReplaceAll(s, "μ", "µ")

	var b strings.Builder
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r == '⁻' && i+1 < len(runes) {
			if _, ok := superscriptDigits[runes[i+1]]; ok {
				b.WriteString("^-")
				continue
			}
		}
		if digit, ok := superscriptDigits[r]; ok {
			prev := rune(0)
			if i > 0 {
				prev = runes[i-1]
			}
			if _, inRun := superscriptDigits[prev]; !inRun && prev != '^' && prev != '⁻' {
				b.WriteByte('^')
			}
			b.WriteRune(digit)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// parseTermList parses a cleaned, normalized expression's numerator and
// denominator term lists without resolving symbols against the library
// — this is the purely syntactic half of the grammar; the Unit Parser
// does symbol resolution on top of it.
func parseTermList(s string) (numerator, denominator []unitTerm, err error) {
	s = normalizeUnicode(s)
	s = strings.TrimSpace(s)
	if s == "" || s == "1" {
		return nil, nil, nil
	}

	p := &termListParser{input: []rune(s)}
	num, den, err := p.parseExpr()
	if err != nil {
		return nil, nil, err
	}
	if p.pos != len(p.input) {
		return nil, nil, syntaxError(p.pos, "unexpected trailing input")
	}
	return num, den, nil
}

type termListParser struct {
	input []rune
	pos   int
}

func (p *termListParser) peek() rune {
	if p.pos >= len(p.input) {
		return 0
	}
	return p.input[p.pos]
}

func (p *termListParser) skipSpace() {
	for p.pos < len(p.input) && unicode.IsSpace(p.input[p.pos]) {
		p.pos++
	}
}

func (p *termListParser) parseExpr() (num, den []unitTerm, err error) {
	n, d, err := p.parseTerm()
	if err != nil {
		return nil, nil, err
	}
	num = append(num, n...)
	den = append(den, d...)
	for {
		p.skipSpace()
		switch p.peek() {
		case '*':
			p.pos++
			p.skipSpace()
			n, d, err := p.parseTerm()
			if err != nil {
				return nil, nil, err
			}
			num = append(num, n...)
			den = append(den, d...)
		case '/':
			p.pos++
			p.skipSpace()
			n, d, err := p.parseTerm()
			if err != nil {
				return nil, nil, err
			}
			// only the term directly after a '/' flips sides, so a/b/c
			// means a/(b*c) while a/b*c keeps c in the numerator.
			num = append(num, d...)
			den = append(den, n...)
		default:
			return num, den, nil
		}
	}
}

func (p *termListParser) parseTerm() (num, den []unitTerm, err error) {
	p.skipSpace()
	if p.peek() == '(' {
		p.pos++
		n, d, err := p.parseExpr()
		if err != nil {
			return nil, nil, err
		}
		p.skipSpace()
		if p.peek() != ')' {
			return nil, nil, syntaxError(p.pos, "expected ')'")
		}
		p.pos++
		power, err := p.parsePower()
		if err != nil {
			return nil, nil, err
		}
		if power == 1 {
			return n, d, nil
		}
		return applyGroupPower(n, power), applyGroupPower(d, power), nil
	}

	start := p.pos
	for p.pos < len(p.input) && isSymbolRune(p.input[p.pos]) {
		p.pos++
	}
	if p.pos == start {
		return nil, nil, syntaxError(p.pos, "expected unit symbol")
	}
	symbol := string(p.input[start:p.pos])
	power, err := p.parsePower()
	if err != nil {
		return nil, nil, err
	}
	if symbol == "1" {
		// "1" is the empty-numerator placeholder ("1/s"), not a unit.
		return nil, nil, nil
	}
	if power >= 0 {
		return []unitTerm{{symbol, power}}, nil, nil
	}
	return nil, []unitTerm{{symbol, -power}}, nil
}

func (p *termListParser) parsePower() (int, error) {
	p.skipSpace()
	if p.peek() != '^' {
		return 1, nil
	}
	p.pos++
	start := p.pos
	if p.peek() == '-' || p.peek() == '+' {
		p.pos++
	}
	digitsStart := p.pos
	for p.pos < len(p.input) && p.input[p.pos] >= '0' && p.input[p.pos] <= '9' {
		p.pos++
	}
	if p.pos == digitsStart {
		return 0, syntaxError(p.pos, "expected integer exponent")
	}
	n, err := strconv.Atoi(string(p.input[start:p.pos]))
	if err != nil {
		return 0, syntaxError(start, "invalid exponent")
	}
	return n, nil
}

func applyGroupPower(terms []unitTerm, power int) []unitTerm {
	out := make([]unitTerm, len(terms))
	for i, t := range terms {
		out[i] = unitTerm{t.symbol, t.power * power}
	}
	return out
}

func isSymbolRune(r rune) bool {
	if unicode.IsSpace(r) || r == '*' || r == '/' || r == '^' || r == '(' || r == ')' {
		return false
	}
	return true
}

func mergeTerms(terms []unitTerm) []unitTerm {
	byName := map[string]int{}
	var order []string
	for _, t := range terms {
		if _, ok := byName[t.symbol]; !ok {
			order = append(order, t.symbol)
		}
		byName[t.symbol] += t.power
	}
	out := make([]unitTerm, 0, len(order))
	for _, s := range order {
		if byName[s] != 0 {
			out = append(out, unitTerm{s, byName[s]})
		}
	}
	return out
}

// migrateNegatives moves any negative-power numerator term to the
// denominator (with positive power), per the spec's cleaning rule.
func migrateNegatives(num, den []unitTerm) (newNum, newDen []unitTerm) {
	for _, t := range num {
		if t.power < 0 {
			den = append(den, unitTerm{t.symbol, -t.power})
		} else if t.power > 0 {
			newNum = append(newNum, t)
		}
	}
	for _, t := range den {
		if t.power < 0 {
			newNum = append(newNum, unitTerm{t.symbol, -t.power})
		} else if t.power > 0 {
			newDen = append(newDen, t)
		}
	}
	return newNum, newDen
}

func sortTerms(terms []unitTerm) {
	sort.Slice(terms, func(i, j int) bool { return terms[i].symbol < terms[j].symbol })
}

func formatTermList(num, den []unitTerm) string {
	if len(num) == 0 && len(den) == 0 {
		return " "
	}
	numStr := "1"
	if len(num) > 0 {
		numStr = joinTerms(num)
	}
	if len(den) == 0 {
		return numStr
	}
	denStr := joinTerms(den)
	if len(den) > 1 {
		denStr = "(" + denStr + ")"
	}
	return numStr + "/" + denStr
}

func joinTerms(terms []unitTerm) string {
	parts := make([]string, len(terms))
	for i, t := range terms {
		parts[i] = exponentTerm(t.symbol, t.power)
	}
	return strings.Join(parts, "·")
}

// CleanExpression parses a unit expression and returns its "cleaned"
// canonical form: equal-symbol terms merged, negative numerator powers
// migrated to the denominator, each side sorted lexicographically — but
// without cross-cancelling symbols shared between numerator and
// denominator. Clean is a fixed point: CleanExpression(CleanExpression(x)) == CleanExpression(x).
func CleanExpression(s string) string {
	num, den, err := parseTermList(s)
	if err != nil {
		// Fall back to the trimmed original rather than the empty-term
		// sentinel " " — that sentinel is also the dimensionless unit's
		// own key, and aliasing onto it would make a malformed
		// expression silently resolve to dimensionless instead of
		// surfacing as a lookup miss.
		return strings.TrimSpace(normalizeUnicode(s))
	}
	num, den = migrateNegatives(mergeTerms(num), mergeTerms(den))
	sortTerms(num)
	sortTerms(den)
	return formatTermList(num, den)
}

// CleanAndReduceExpression produces the cleaned form and additionally
// cancels any symbol appearing on both sides by subtracting the smaller
// power from each.
func CleanAndReduceExpression(s string) string {
	num, den, err := parseTermList(s)
	if err != nil {
		// Fall back to the trimmed original rather than the empty-term
		// sentinel " " — that sentinel is also the dimensionless unit's
		// own key, and aliasing onto it would make a malformed
		// expression silently resolve to dimensionless instead of
		// surfacing as a lookup miss.
		return strings.TrimSpace(normalizeUnicode(s))
	}
	num, den = migrateNegatives(mergeTerms(num), mergeTerms(den))

	denPower := map[string]int{}
	for _, t := range den {
		denPower[t.symbol] = t.power
	}
	var newNum []unitTerm
	for _, t := range num {
		if dp, ok := denPower[t.symbol]; ok {
			m := t.power
			if dp < m {
				m = dp
			}
			if t.power-m > 0 {
				newNum = append(newNum, unitTerm{t.symbol, t.power - m})
			}
			denPower[t.symbol] = dp - m
		} else {
			newNum = append(newNum, t)
		}
	}
	var newDen []unitTerm
	for _, t := range den {
		if p, ok := denPower[t.symbol]; ok && p > 0 {
			newDen = append(newDen, unitTerm{t.symbol, p})
		}
	}
	sortTerms(newNum)
	sortTerms(newDen)
	return formatTermList(newNum, newDen)
}

// UnitsEquivalentExpressions compares two unit-expression strings for
// algebraic equivalence: a verbatim string-equality shortcut first (the
// common case), then a fallback comparing cleaned-and-reduced keys —
// grounded on the original library's key-comparison optimization.
func UnitsEquivalentExpressions(a, b string) bool {
	if a == b {
		return true
	}
	return CleanAndReduceExpression(a) == CleanAndReduceExpression(b)
}
