package si

import "testing"

func TestPrefixExponentRoundTrip(t *testing.T) {
	cases := []struct {
		prefix Prefix
		exp    int
		symbol string
	}{
		{Kilo, 3, "k"},
		{Mega, 6, "M"},
		{Milli, -3, "m"},
		{Micro, -6, "µ"},
		{Base, 0, ""},
	}
	for _, c := range cases {
		if got := c.prefix.Exponent(); got != c.exp {
			t.Errorf("%v.Exponent() = %d, want %d", c.prefix, got, c.exp)
		}
		if got := c.prefix.String(); got != c.symbol {
			t.Errorf("%v.String() = %q, want %q", c.prefix, got, c.symbol)
		}
		p, ok := PrefixForExponent(c.exp)
		if !ok || p != c.prefix {
			t.Errorf("PrefixForExponent(%d) = (%v, %v), want (%v, true)", c.exp, p, ok, c.prefix)
		}
	}
}

func TestPrefixForSymbolMicroAliases(t *testing.T) {
	for _, s := range []string{"µ", "μ", "u", "mc"} {
		p, ok := PrefixForSymbol(s)
		if !ok || p != Micro {
			t.Errorf("PrefixForSymbol(%q) = (%v, %v), want (Micro, true)", s, p, ok)
		}
	}
}

func TestPrefixForSymbolUnknown(t *testing.T) {
	if _, ok := PrefixForSymbol("xyz"); ok {
		t.Fatalf("PrefixForSymbol(%q) reported ok, want false", "xyz")
	}
}

func TestNearestPrefixClampsToValidDecade(t *testing.T) {
	cases := []struct {
		exp  int
		want Prefix
	}{
		{3, Kilo},
		{4, Kilo},   // clamps toward 3, nearer than 6
		{5, Mega},   // nearer 6 than 3
		{0, Base},
		{-4, Milli}, // nearer -3 than -6
	}
	for _, c := range cases {
		if got := NearestPrefix(c.exp); got != c.want {
			t.Errorf("NearestPrefix(%d) = %v, want %v", c.exp, got, c.want)
		}
	}
}

func TestFactorMatchesFactor64(t *testing.T) {
	big, err := Kilo.Factor()
	if err != nil {
		t.Fatal(err)
	}
	f, _ := big.Float64()
	if f != 1000 {
		t.Errorf("Kilo.Factor() = %v, want 1000", f)
	}
	if Kilo.Factor64() != 1000 {
		t.Errorf("Kilo.Factor64() = %v, want 1000", Kilo.Factor64())
	}
	if Micro.Factor64() != 1e-6 {
		t.Errorf("Micro.Factor64() = %v, want 1e-6", Micro.Factor64())
	}
}
