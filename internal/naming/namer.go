package naming

import (
	"fmt"
	"strconv"
	"strings"

	"bleprofile/internal/domain"
)

// Resolve returns base unchanged when no existing profile name starts with
// it, and base-NN otherwise. Matching is case-sensitive and byte-literal.
// The result does not depend on the order of existing.
func Resolve(base string, existing []domain.Profile) string {
	prefixed := false
	maxIndex := 0

	for _, p := range existing {
		if !strings.HasPrefix(p.Name, base) {
			continue
		}
		prefixed = true

		if p.Name == base {
			maxIndex = max(maxIndex, 1)
			continue
		}
		if index, ok := suffixIndex(p.Name, base); ok {
			maxIndex = max(maxIndex, index)
		}
	}

	if !prefixed {
		return base
	}
	return fmt.Sprintf("%s-%02d", base, maxIndex+1)
}

// suffixIndex parses name as base-<ASCII digits>. Runs too large for int
// are rejected.
func suffixIndex(name, base string) (int, bool) {
	digits, ok := strings.CutPrefix(name, base+"-")
	if !ok || digits == "" {
		return 0, false
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}
	return n, true
}
