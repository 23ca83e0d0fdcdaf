// Package regdev provides access to a regmap debugfs register file.
//
// Reading the file yields the whole dump; writing "<register> <value>" to it
// asks the kernel to update that one register. Device abstracts that pair of
// operations so the real file and an in-memory simulator are interchangeable.
package regdev

import (
	"errors"
	"fmt"
	"strings"

	"github.com/OpenTraceLab/regtool/pkg/regmap"
)

// DefaultPath is the CPCAP regmap on the mapphone SPI bus.
const DefaultPath = "/sys/kernel/debug/regmap/spi0.0/registers"

// Info describes a register device.
type Info struct {
	Name      string
	Path      string
	Simulated bool
}

// Device abstracts a regmap debugfs register file.
type Device interface {
	Info() Info
	// ReadDump returns the whole register listing verbatim.
	ReadDump() ([]byte, error)
	// WriteRegister updates a single register to value.
	WriteRegister(id string, value uint64) error
	// WriteRaw updates a single register with a value that is already
	// formatted, e.g. taken verbatim from a saved dump.
	WriteRaw(id, value string) error
}

// ErrBadWrite reports a write request that cannot be expressed as a single
// "<register> <value>" line.
var ErrBadWrite = errors.New("regdev: invalid register write")

// FormatWrite renders the single line a regmap debugfs file accepts as a
// register update request.
func FormatWrite(id, value string) (string, error) {
	if err := validateToken(id); err != nil {
		return "", fmt.Errorf("%w: register %q: %v", ErrBadWrite, id, err)
	}
	if err := validateToken(value); err != nil {
		return "", fmt.Errorf("%w: value %q: %v", ErrBadWrite, value, err)
	}
	return id + " " + value, nil
}

func validateToken(s string) error {
	if s == "" {
		return errors.New("empty")
	}
	if strings.ContainsAny(s, " \t\r\n:") {
		return errors.New("contains whitespace or colon")
	}
	return nil
}

func formatValue(value uint64) string {
	return regmap.FormatHex(value)
}
