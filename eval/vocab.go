package eval

import (
	"slices"
	"strings"

	"github.com/signadot/yflow/format"
)

var (
	trueValues11  = []string{"true", "on", "+", "yes", "y"}
	falseValues11 = []string{"false", "off", "-", "no", "n"}
	trueValues    = []string{"true"}
	falseValues   = []string{"false"}
	nullValues    = []string{"null", "~"}
)

func TrueValues(v format.Version) []string {
	if v.Is11() {
		return trueValues11
	}
	return trueValues
}

func FalseValues(v format.Version) []string {
	if v.Is11() {
		return falseValues11
	}
	return falseValues
}

// IsTrue reports whether s, in any case, is in the true vocabulary of v.
func IsTrue(v format.Version, s string) bool {
	return slices.Contains(TrueValues(v), strings.ToLower(s))
}

func IsFalse(v format.Version, s string) bool {
	return slices.Contains(FalseValues(v), strings.ToLower(s))
}

// IsNullWord reports whether s is null in any case, or ~.
func IsNullWord(s string) bool {
	return slices.Contains(nullValues, strings.ToLower(s))
}
