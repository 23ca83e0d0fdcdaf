package regctl

import (
	"fmt"
	"io"
	"sort"

	"github.com/OpenTraceLab/regtool/pkg/regmap"
)

// Dump copies the device contents verbatim to w.
func (c *Controller) Dump(w io.Writer) error {
	data, err := c.dev.ReadDump()
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// Info decodes the live device.
func (c *Controller) Info() (regmap.Decoded, error) {
	_, decoded, err := c.decodeLive()
	return decoded, err
}

// Report is the result of comparing two dumps.
type Report struct {
	Differences []regmap.Difference
	Skipped     []string // registers (or REG.BIT) missing from the second dump
}

// Compare decodes both dumps and reports every bit of the first that differs
// in the second.
func (c *Controller) Compare(r1, r2 io.Reader) (*Report, error) {
	_, d1, err := c.decode(r1)
	if err != nil {
		return nil, fmt.Errorf("regctl: first dump: %w", err)
	}
	_, d2, err := c.decode(r2)
	if err != nil {
		return nil, fmt.Errorf("regctl: second dump: %w", err)
	}
	diffs, skipped, err := regmap.Compare(d1, d2, c.table, c.policy)
	if err != nil {
		return nil, err
	}
	return &Report{Differences: diffs, Skipped: skipped}, nil
}

// RestoreAction is one register written back by Restore.
type RestoreAction struct {
	ID          string
	Name        string
	Value       string // raw text from the snapshot
	Differences []regmap.Difference
}

// Restore writes back, one register per write, every register whose decoded
// bits in snapshot differ from the live device. Differences and
// "Restoring: <id> <value>" lines are printed to the controller output as
// they are found. The registers skipped under MissingSkip are returned
// alongside the actions.
func (c *Controller) Restore(snapshot io.Reader) ([]RestoreAction, []string, error) {
	snapDump, snap, err := c.decode(snapshot)
	if err != nil {
		return nil, nil, fmt.Errorf("regctl: snapshot: %w", err)
	}
	_, live, err := c.decodeLive()
	if err != nil {
		return nil, nil, err
	}

	diffs, skipped, err := regmap.Compare(snap, live, c.table, c.policy)
	if err != nil {
		return nil, nil, err
	}

	var actions []RestoreAction
	for i := 0; i < len(diffs); {
		name := diffs[i].Register
		j := i
		for j < len(diffs) && diffs[j].Register == name {
			fmt.Fprintln(c.out, diffs[j].String())
			j++
		}

		reg, ok := c.table.ByName(name)
		if !ok {
			return actions, skipped, fmt.Errorf("%w: %s", regmap.ErrUnknownRegister, name)
		}
		value, ok := snapDump.Value(reg.ID)
		if !ok {
			return actions, skipped, fmt.Errorf("regctl: snapshot has no raw value for %s", reg.ID)
		}

		fmt.Fprintf(c.out, "Restoring: %s %s\n", reg.ID, value)
		if err := c.write(reg.ID, value); err != nil {
			return actions, skipped, fmt.Errorf("regctl: restore %s: %w", name, err)
		}
		actions = append(actions, RestoreAction{
			ID:          reg.ID,
			Name:        name,
			Value:       value,
			Differences: diffs[i:j],
		})
		i = j
	}
	return actions, skipped, nil
}

// Get returns the live value of the bit named by path ("REG.BIT").
func (c *Controller) Get(path string) (uint8, error) {
	reg, _, err := c.table.ResolvePath(path)
	if err != nil {
		return 0, err
	}
	_, bit, _ := regmap.ParsePath(path)

	_, decoded, err := c.decodeLive()
	if err != nil {
		return 0, err
	}
	bf, ok := decoded[reg.Name]
	if !ok {
		return 0, fmt.Errorf("%w: %s (%s)", ErrNotInDump, reg.Name, reg.ID)
	}
	return bf[bit], nil
}

// Set drives the bit named by path to v. Nothing is written when the bit
// already holds v; changed reports whether a write was issued.
func (c *Controller) Set(path string, v uint8) (changed bool, err error) {
	if v > 1 {
		return false, fmt.Errorf("%w: got %d", regmap.ErrBadBitValue, v)
	}
	reg, pos, err := c.table.ResolvePath(path)
	if err != nil {
		return false, err
	}
	_, bit, _ := regmap.ParsePath(path)

	dump, decoded, err := c.decodeLive()
	if err != nil {
		return false, err
	}
	bf, ok := decoded[reg.Name]
	if !ok {
		return false, fmt.Errorf("%w: %s (%s)", ErrNotInDump, reg.Name, reg.ID)
	}
	if bf[bit] == v {
		return false, nil
	}

	raw, _ := dump.Value(reg.ID)
	current, err := regmap.ParseHex(raw)
	if err != nil {
		return false, fmt.Errorf("regctl: register %s: %w", reg.Name, err)
	}

	fmt.Fprintln(c.out, "have to change value")
	next, err := regmap.WithBit(current, pos, v)
	if err != nil {
		return false, err
	}
	if err := c.write(reg.ID, regmap.FormatHex(next)); err != nil {
		return false, fmt.Errorf("regctl: set %s: %w", path, err)
	}
	return true, nil
}

// List returns the register table in declaration order.
func (c *Controller) List() []regmap.Register {
	return c.table.Registers()
}

// RouteRegister is the register the audio route presets are written to.
const RouteRegister = "RXOA"

// Routes maps audio route names to the RXOA output amplifier presets used for
// call audio on mapphone devices.
var Routes = map[string]uint64{
	"handset": 0x0001, // earpiece
	"speaker": 0x0002, // right loudspeaker
	"headset": 0x0260, // headphone L/R plus charge pump
}

// RouteNames returns the known route names, sorted.
func RouteNames() []string {
	names := make([]string, 0, len(Routes))
	for name := range Routes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Route writes the preset for the named audio route in a single register
// write.
func (c *Controller) Route(name string) error {
	value, ok := Routes[name]
	if !ok {
		return fmt.Errorf("%w: %q (want one of %v)", ErrUnknownRoute, name, RouteNames())
	}
	reg, ok := c.table.ByName(RouteRegister)
	if !ok {
		return fmt.Errorf("%w: %s", regmap.ErrUnknownRegister, RouteRegister)
	}
	fmt.Fprintf(c.out, "Routing %s: %s %04x\n", name, reg.ID, value)
	if err := c.write(reg.ID, regmap.FormatHex(value)); err != nil {
		return fmt.Errorf("regctl: route %s: %w", name, err)
	}
	return nil
}
