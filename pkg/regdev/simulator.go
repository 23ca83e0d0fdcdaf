package regdev

import (
	"bytes"
	"fmt"
	"os"
	"sync"

	"github.com/OpenTraceLab/regtool/pkg/regmap"
)

// WriteOp captures one register write request for inspection within tests.
type WriteOp struct {
	ID    string
	Value string
}

// WriteHook lets tests inject failures or observe writes before they are
// applied. Returning an error rejects the write.
type WriteHook func(op WriteOp) error

// SimDevice is an in-memory register file. Writes are interpreted the way the
// regmap debugfs driver does: as an update of the named register, leaving
// every other line untouched. Values keep the zero-padded width of the value
// they replace.
type SimDevice struct {
	InfoData Info

	// Strict rejects writes to registers that are not already in the dump.
	Strict bool

	// Path, when set, receives the updated dump after every applied write.
	Path string

	OnWrite WriteHook

	mu     sync.Mutex
	dump   *regmap.Dump
	writes []WriteOp
}

// NewSimDevice constructs a simulator serving dump. The dump is owned by the
// simulator from then on.
func NewSimDevice(dump *regmap.Dump) *SimDevice {
	if dump == nil {
		dump = regmap.NewDump()
	}
	return &SimDevice{
		InfoData: Info{Name: "simulator", Simulated: true},
		dump:     dump,
	}
}

// NewSimDeviceFromFile loads a saved dump and persists applied writes back to
// the same file, so a sequence of processes sees a consistent device.
func NewSimDeviceFromFile(path string) (*SimDevice, error) {
	parser, err := regmap.NewParser()
	if err != nil {
		return nil, err
	}
	dump, err := parser.ParseFile(path)
	if err != nil {
		return nil, fmt.Errorf("regdev: load simulator dump: %w", err)
	}
	sim := NewSimDevice(dump)
	sim.InfoData.Path = path
	sim.Path = path
	return sim, nil
}

// Writes returns a copy of every applied write, oldest first.
func (s *SimDevice) Writes() []WriteOp {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]WriteOp(nil), s.writes...)
}

// Value returns the current raw value of a register.
func (s *SimDevice) Value(id string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dump.Value(id)
}

func (s *SimDevice) Info() Info {
	return s.InfoData
}

func (s *SimDevice) ReadDump() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var buf bytes.Buffer
	if _, err := s.dump.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *SimDevice) WriteRegister(id string, value uint64) error {
	return s.WriteRaw(id, formatValue(value))
}

func (s *SimDevice) WriteRaw(id, value string) error {
	if _, err := FormatWrite(id, value); err != nil {
		return err
	}
	v, err := regmap.ParseHex(value)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBadWrite, err)
	}

	op := WriteOp{ID: id, Value: value}
	if s.OnWrite != nil {
		if err := s.OnWrite(op); err != nil {
			return err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	width := 0
	old, ok := s.dump.Value(id)
	if ok {
		width = len(old)
	} else if s.Strict {
		return fmt.Errorf("%w: register %s not present", ErrBadWrite, id)
	}
	s.dump.Set(id, fmt.Sprintf("%0*x", width, v))
	s.writes = append(s.writes, op)

	if s.Path != "" {
		var buf bytes.Buffer
		if _, err := s.dump.WriteTo(&buf); err != nil {
			return err
		}
		if err := os.WriteFile(s.Path, buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("regdev: persist simulator dump: %w", err)
		}
	}
	return nil
}
