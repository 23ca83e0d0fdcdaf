package regmap

import (
	"fmt"
	"maps"
	"sort"
	"strings"
)

// MaxBit is the highest bit offset a register may define.
const MaxBit = 63

// Register describes one hardware register.
type Register struct {
	ID   string          // address token as it appears in the dump, e.g. "081c"
	Name string          // human readable name, e.g. "RXOA"
	Bits map[string]uint // bit name -> bit offset; read-only once in a Table
}

// Bit returns the offset of the named bit.
func (r Register) Bit(name string) (uint, bool) {
	pos, ok := r.Bits[name]
	return pos, ok
}

// BitNames returns the register's bit names ordered by offset, ties broken
// by name.
func (r Register) BitNames() []string {
	names := make([]string, 0, len(r.Bits))
	for name := range r.Bits {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		pi, pj := r.Bits[names[i]], r.Bits[names[j]]
		if pi != pj {
			return pi < pj
		}
		return names[i] < names[j]
	})
	return names
}

// Table is an immutable set of register descriptions indexed both by address
// and by name.
type Table struct {
	regs   []Register
	byID   map[string]int
	byName map[string]int
}

// NewTable builds a table from regs, preserving their order. IDs are
// lower-cased. Duplicate IDs or names and bit offsets above MaxBit are
// rejected. The bit maps are copied so later changes by the caller do not
// reach the table.
func NewTable(regs ...Register) (*Table, error) {
	t := &Table{
		regs:   make([]Register, 0, len(regs)),
		byID:   make(map[string]int, len(regs)),
		byName: make(map[string]int, len(regs)),
	}
	for _, r := range regs {
		id := normalizeKey(r.ID)
		if id == "" || r.Name == "" {
			return nil, fmt.Errorf("regmap: register %q/%q needs both an ID and a name", r.ID, r.Name)
		}
		if _, dup := t.byID[id]; dup {
			return nil, fmt.Errorf("regmap: duplicate register ID %s", id)
		}
		if _, dup := t.byName[r.Name]; dup {
			return nil, fmt.Errorf("regmap: duplicate register name %s", r.Name)
		}
		for name, pos := range r.Bits {
			if pos > MaxBit {
				return nil, fmt.Errorf("regmap: %s.%s: bit offset %d exceeds %d", r.Name, name, pos, MaxBit)
			}
		}
		bits := maps.Clone(r.Bits)
		if bits == nil {
			bits = map[string]uint{}
		}
		t.byID[id] = len(t.regs)
		t.byName[r.Name] = len(t.regs)
		t.regs = append(t.regs, Register{ID: id, Name: r.Name, Bits: bits})
	}
	return t, nil
}

// MustTable is like NewTable but panics on error. It is meant for
// package-level tables.
func MustTable(regs ...Register) *Table {
	t, err := NewTable(regs...)
	if err != nil {
		panic(err)
	}
	return t
}

// Len returns the number of registers.
func (t *Table) Len() int { return len(t.regs) }

// Registers returns the registers in declaration order.
func (t *Table) Registers() []Register {
	return append([]Register(nil), t.regs...)
}

// ByID looks a register up by its dump address.
func (t *Table) ByID(id string) (Register, bool) {
	i, ok := t.byID[normalizeKey(id)]
	if !ok {
		return Register{}, false
	}
	return t.regs[i], true
}

// ByName looks a register up by its human readable name.
func (t *Table) ByName(name string) (Register, bool) {
	i, ok := t.byName[name]
	if !ok {
		return Register{}, false
	}
	return t.regs[i], true
}

// ResolveBit validates a register/bit name pair and returns the register and
// the bit offset. The register is checked first, so an unknown register is
// reported as ErrUnknownRegister whatever the bit name.
func (t *Table) ResolveBit(reg, bit string) (Register, uint, error) {
	r, ok := t.ByName(reg)
	if !ok {
		return Register{}, 0, fmt.Errorf("%w: %s", ErrUnknownRegister, reg)
	}
	pos, ok := r.Bit(bit)
	if !ok {
		return Register{}, 0, fmt.Errorf("%w: %s.%s", ErrUnknownBit, reg, bit)
	}
	return r, pos, nil
}

// ResolvePath is ResolveBit for a "REG.BIT" path.
func (t *Table) ResolvePath(path string) (Register, uint, error) {
	reg, bit, err := ParsePath(path)
	if err != nil {
		return Register{}, 0, err
	}
	return t.ResolveBit(reg, bit)
}

// ParsePath splits "REG.BIT" into its two halves.
func ParsePath(path string) (reg, bit string, err error) {
	parts := strings.Split(path, ".")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("%w: %q (want REGISTER.BIT)", ErrBadPath, path)
	}
	return parts[0], parts[1], nil
}
