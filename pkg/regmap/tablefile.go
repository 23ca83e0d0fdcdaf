package regmap

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
)

var tableParser = participle.MustBuild[tableFile](
	participle.Lexer(TableLexer),
	participle.Elide("Comment", "Whitespace"),
)

// ParseTable reads a register table description. The filename is only used
// in error positions.
func ParseTable(filename string, r io.Reader) (*Table, error) {
	file, err := tableParser.Parse(filename, r)
	if err != nil {
		return nil, fmt.Errorf("regmap: parse table: %w", err)
	}

	regs := make([]Register, 0, len(file.Registers))
	for _, tr := range file.Registers {
		reg := Register{ID: tr.ID, Name: tr.Name, Bits: make(map[string]uint, len(tr.Bits))}
		for _, b := range tr.Bits {
			pos, err := parseOffset(b.Offset)
			if err != nil {
				return nil, fmt.Errorf("regmap: %s: %s.%s: %w", b.Pos, tr.Name, b.Name, err)
			}
			if _, dup := reg.Bits[b.Name]; dup {
				return nil, fmt.Errorf("regmap: %s: %s.%s: duplicate bit", b.Pos, tr.Name, b.Name)
			}
			reg.Bits[b.Name] = pos
		}
		regs = append(regs, reg)
	}

	t, err := NewTable(regs...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return t, nil
}

// parseOffset accepts decimal offsets, or hex ones with a 0x prefix.
func parseOffset(s string) (uint, error) {
	var (
		v   uint64
		err error
	)
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		v, err = strconv.ParseUint(s[2:], 16, 8)
	} else {
		v, err = strconv.ParseUint(s, 10, 8)
	}
	if err != nil || v > MaxBit {
		return 0, fmt.Errorf("bit offset %q out of range 0..%d", s, MaxBit)
	}
	return uint(v), nil
}

// LoadTableFile parses the table file at path.
func LoadTableFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("regmap: failed to open table: %w", err)
	}
	defer f.Close()

	return ParseTable(path, f)
}

// WriteTable renders t in the format read by ParseTable.
func WriteTable(w io.Writer, t *Table) error {
	for i, r := range t.regs {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if len(r.Bits) == 0 {
			if _, err := fmt.Fprintf(w, "register %s %s {}\n", r.ID, r.Name); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(w, "register %s %s {\n", r.ID, r.Name); err != nil {
			return err
		}
		for _, name := range r.BitNames() {
			if _, err := fmt.Fprintf(w, "\t%s = %d\n", name, r.Bits[name]); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, "}"); err != nil {
			return err
		}
	}
	return nil
}
