package si

import "testing"

func TestNormalizeUnicodeFoldsGlyphs(t *testing.T) {
	cases := map[string]string{
		"kg×m÷s²": "kg*m/s^2",
		"m⋅s⁻¹":   "m*s^-1",
		"μs":      "µs",
	}
	for in, want := range cases {
		if got := normalizeUnicode(in); got != want {
			t.Errorf("normalizeUnicode(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestParseTermListBasic(t *testing.T) {
	num, den, err := parseTermList("kg*m/s^2")
	if err != nil {
		t.Fatal(err)
	}
	if len(num) != 2 || len(den) != 1 {
		t.Fatalf("parseTermList: got num=%v den=%v", num, den)
	}
	if den[0].symbol != "s" || den[0].power != 2 {
		t.Errorf("denominator term = %+v, want {s 2}", den[0])
	}
}

func TestParseTermListNegativePowerGoesToDenominator(t *testing.T) {
	num, den, err := parseTermList("m*s^-1")
	if err != nil {
		t.Fatal(err)
	}
	if len(num) != 1 || num[0].symbol != "m" {
		t.Fatalf("numerator = %v, want [{m 1}]", num)
	}
	if len(den) != 1 || den[0].symbol != "s" || den[0].power != 1 {
		t.Fatalf("denominator = %v, want [{s 1}]", den)
	}
}

func TestParseTermListRightAssociativeDivision(t *testing.T) {
	// a/b/c means a/(b*c): both b and c land in the denominator.
	num, den, err := parseTermList("kg/m/s")
	if err != nil {
		t.Fatal(err)
	}
	if len(num) != 1 || num[0].symbol != "kg" {
		t.Fatalf("numerator = %v, want [{kg 1}]", num)
	}
	if len(den) != 2 {
		t.Fatalf("denominator = %v, want 2 terms", den)
	}
}

func TestParseTermListGroupedPower(t *testing.T) {
	num, den, err := parseTermList("1/(kg*m)^2")
	if err != nil {
		t.Fatal(err)
	}
	if len(num) != 0 {
		t.Fatalf("numerator = %v, want empty", num)
	}
	if len(den) != 2 || den[0].power != 2 || den[1].power != 2 {
		t.Fatalf("denominator = %v, want two power-2 terms", den)
	}
}

func TestParseTermListRejectsGarbage(t *testing.T) {
	if _, _, err := parseTermList("kg*"); err == nil {
		t.Fatalf("parseTermList(%q) = nil error, want syntax error", "kg*")
	}
	if _, _, err := parseTermList("kg^"); err == nil {
		t.Fatalf("parseTermList(%q) = nil error, want syntax error", "kg^")
	}
}

func TestCleanExpressionMergesAndSorts(t *testing.T) {
	got := CleanExpression("m*kg*m/s^2")
	want := "kg·m^2/s^2"
	if got != want {
		t.Errorf("CleanExpression = %q, want %q", got, want)
	}
}

func TestCleanExpressionIsFixedPoint(t *testing.T) {
	once := CleanExpression("m*kg/s^2/s")
	twice := CleanExpression(once)
	if once != twice {
		t.Errorf("CleanExpression not idempotent: %q then %q", once, twice)
	}
}

func TestCleanExpressionDoesNotCancelCrossSide(t *testing.T) {
	got := CleanExpression("m/m")
	if got != "m/m" {
		t.Errorf("CleanExpression(%q) = %q, want %q (no cross-cancellation)", "m/m", got, "m/m")
	}
}

func TestCleanAndReduceExpressionCancels(t *testing.T) {
	got := CleanAndReduceExpression("m/m")
	if got != " " {
		t.Errorf("CleanAndReduceExpression(%q) = %q, want %q", "m/m", got, " ")
	}

	got = CleanAndReduceExpression("m^2/m")
	if got != "m" {
		t.Errorf("CleanAndReduceExpression(%q) = %q, want %q", "m^2/m", got, "m")
	}
}

func TestUnitsEquivalentExpressions(t *testing.T) {
	if !UnitsEquivalentExpressions("kg*m/s^2", "m*kg/s^2") {
		t.Errorf("expected kg*m/s^2 and m*kg/s^2 to be equivalent")
	}
	if UnitsEquivalentExpressions("kg*m/s^2", "kg*m/s^3") {
		t.Errorf("did not expect kg*m/s^2 and kg*m/s^3 to be equivalent")
	}
}
