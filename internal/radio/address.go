package radio

import (
	"fmt"
	"strconv"
	"strings"

	"bleprofile/internal/domain"
)

// ParseAddress parses a device address written as a MAC ("A4:C1:38:00:00:01",
// dashes also accepted) or as bare hexadecimal ("A4C138000001").
func ParseAddress(s string) (domain.Address, error) {
	hex := strings.NewReplacer(":", "", "-", "").Replace(strings.TrimSpace(s))
	if hex == "" || len(hex) > 16 {
		return 0, fmt.Errorf("invalid device address %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid device address %q: %w", s, err)
	}
	return domain.Address(v), nil
}
