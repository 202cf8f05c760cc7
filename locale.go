package si

import (
	"os"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

// localeDefaultIsImperialVolume reports whether the host locale's
// currency is pounds sterling (GBP) — the spec's rule for selecting
// imperial over US customary volume units by default. Locale is read
// from the standard POSIX environment variables since Go has no
// portable OS-locale API; language.Parse/currency.FromTag do the actual
// currency derivation via golang.org/x/text.
func localeDefaultIsImperialVolume() bool {
	tag := detectLocaleTag()
	unit, ok := currency.FromTag(tag)
	if !ok {
		return false
	}
	return unit.String() == "GBP"
}

func detectLocaleTag() language.Tag {
	for _, env := range []string{"LC_ALL", "LC_MONETARY", "LANG"} {
		v := os.Getenv(env)
		if v == "" {
			continue
		}
		v = strings.SplitN(v, ".", 2)[0]
		v = strings.ReplaceAll(v, "_", "-")
		if tag, err := language.Parse(v); err == nil {
			return tag
		}
	}
	return language.AmericanEnglish
}
