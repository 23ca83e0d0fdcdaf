package regmap

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseHex parses a base-16 register value. Surrounding whitespace and a
// leading 0x/0X are accepted; the digits themselves may be of either case.
func ParseHex(s string) (uint64, error) {
	digits := strings.TrimSpace(s)
	if strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X") {
		digits = digits[2:]
	}
	if digits == "" {
		return 0, fmt.Errorf("%w: %q", ErrBadHex, s)
	}
	v, err := strconv.ParseUint(digits, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadHex, s)
	}
	return v, nil
}

// FormatHex renders v as lower-case hex without prefix or padding.
func FormatHex(v uint64) string {
	return strconv.FormatUint(v, 16)
}
