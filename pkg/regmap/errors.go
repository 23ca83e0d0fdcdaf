package regmap

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedLine is matched by every *ParseError.
	ErrMalformedLine = errors.New("regmap: malformed line")

	// ErrBadHex reports a value that is not a base-16 number.
	ErrBadHex = errors.New("regmap: invalid hex value")

	// ErrUnknownRegister reports a register name that is not in the table.
	ErrUnknownRegister = errors.New("regmap: unknown register")

	// ErrUnknownBit reports a bit name that is not defined for its register.
	ErrUnknownBit = errors.New("regmap: unknown register bit")

	// ErrBadPath reports a bit path that is not of the form REG.BIT.
	ErrBadPath = errors.New("regmap: invalid bit path")

	// ErrBadBitValue reports a bit value other than 0 or 1.
	ErrBadBitValue = errors.New("regmap: bit value must be 0 or 1")

	// ErrMissingRegister is matched by every *MissingRegisterError.
	ErrMissingRegister = errors.New("regmap: register missing from dump")
)

// ParseError describes a dump line that is not of the form "<key>: <value>".
type ParseError struct {
	Line int    // 1-based line number within the input
	Text string // the offending line, trimmed
	Err  error  // underlying grammar error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("regmap: line %d: malformed line %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrMalformedLine) hold for any ParseError.
func (e *ParseError) Is(target error) bool { return target == ErrMalformedLine }

// MissingRegisterError reports a register (or one of its bits) that is present
// in the first of two compared dumps but absent from the second.
type MissingRegisterError struct {
	Register string
	Bit      string // empty when the whole register is missing
}

func (e *MissingRegisterError) Error() string {
	if e.Bit != "" {
		return fmt.Sprintf("regmap: bit %s.%s missing from second dump", e.Register, e.Bit)
	}
	return fmt.Sprintf("regmap: register %s missing from second dump", e.Register)
}

func (e *MissingRegisterError) Is(target error) bool { return target == ErrMissingRegister }
