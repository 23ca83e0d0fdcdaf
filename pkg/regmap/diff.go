package regmap

import (
	"fmt"
	"sort"
)

// MissingPolicy selects what Compare does with a register that is decoded in
// the first dump but not in the second.
type MissingPolicy int

const (
	// MissingFail aborts the comparison with a *MissingRegisterError.
	MissingFail MissingPolicy = iota
	// MissingSkip leaves the register out and reports it as skipped.
	MissingSkip
)

func (p MissingPolicy) String() string {
	switch p {
	case MissingFail:
		return "fail"
	case MissingSkip:
		return "skip"
	default:
		return fmt.Sprintf("MissingPolicy(%d)", int(p))
	}
}

// Difference is a single bit that differs between two decoded dumps.
type Difference struct {
	Register string
	Bit      string
	A, B     uint8
}

func (d Difference) String() string {
	return fmt.Sprintf("Difference in %s.%s: %d != %d", d.Register, d.Bit, d.A, d.B)
}

// Compare reports every bit of a that has a different value in b. Registers
// are visited in table order (then by name for registers the table does not
// describe) and bits in offset order, so the result is deterministic.
//
// Registers, or bits, present in a but not in b are handled according to
// policy; under MissingSkip their names are returned in skipped.
func Compare(a, b Decoded, t *Table, policy MissingPolicy) (diffs []Difference, skipped []string, err error) {
	for _, name := range registerOrder(a, t) {
		bfA := a[name]
		bfB, ok := b[name]
		if !ok {
			if policy == MissingSkip {
				skipped = append(skipped, name)
				continue
			}
			return nil, nil, &MissingRegisterError{Register: name}
		}
		reg, _ := t.ByName(name)
		for _, bit := range bitOrder(reg, bfA) {
			vB, ok := bfB[bit]
			if !ok {
				if policy == MissingSkip {
					skipped = append(skipped, name+"."+bit)
					continue
				}
				return nil, nil, &MissingRegisterError{Register: name, Bit: bit}
			}
			if vA := bfA[bit]; vA != vB {
				diffs = append(diffs, Difference{Register: name, Bit: bit, A: vA, B: vB})
			}
		}
	}
	return diffs, skipped, nil
}

func registerOrder(d Decoded, t *Table) []string {
	names := make([]string, 0, len(d))
	seen := make(map[string]bool, len(d))
	if t != nil {
		for _, r := range t.regs {
			if _, ok := d[r.Name]; ok {
				names = append(names, r.Name)
				seen[r.Name] = true
			}
		}
	}
	var rest []string
	for name := range d {
		if !seen[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	return append(names, rest...)
}

func bitOrder(r Register, bf Bitfield) []string {
	names := make([]string, 0, len(bf))
	for _, name := range r.BitNames() {
		if _, ok := bf[name]; ok {
			names = append(names, name)
		}
	}
	var rest []string
	for name := range bf {
		if _, ok := r.Bits[name]; !ok {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	return append(names, rest...)
}
