// Package regctl implements the register tool operations (dump, info, cmp,
// restore, get, set, list and route) on top of a regdev.Device and a
// regmap.Table.
package regctl

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/OpenTraceLab/regtool/pkg/regdev"
	"github.com/OpenTraceLab/regtool/pkg/regmap"
)

var (
	// ErrNotInDump reports a register that the table knows but the live
	// device did not list.
	ErrNotInDump = errors.New("regctl: register not present in device dump")

	// ErrUnknownRoute reports a route name without a preset.
	ErrUnknownRoute = errors.New("regctl: unknown audio route")
)

// Option configures a Controller.
type Option func(*Controller)

// WithLogger traces device reads and writes to l.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) { c.log = l }
}

// WithOutput sets where progress lines ("have to change value",
// "Restoring: ...") are printed.
func WithOutput(w io.Writer) Option {
	return func(c *Controller) { c.out = w }
}

// WithMissingPolicy selects how cmp and restore treat registers missing from
// the second dump.
func WithMissingPolicy(p regmap.MissingPolicy) Option {
	return func(c *Controller) { c.policy = p }
}

// WithDryRun reports writes without performing them.
func WithDryRun(dryRun bool) Option {
	return func(c *Controller) { c.dryRun = dryRun }
}

// Controller runs register operations against one device.
type Controller struct {
	dev    regdev.Device
	table  *regmap.Table
	parser *regmap.Parser

	log    *log.Logger
	out    io.Writer
	policy regmap.MissingPolicy
	dryRun bool
}

// NewController creates a controller for dev. A nil table selects the
// built-in CPCAP table.
func NewController(dev regdev.Device, table *regmap.Table, opts ...Option) (*Controller, error) {
	if dev == nil {
		return nil, fmt.Errorf("regctl: nil device")
	}
	if table == nil {
		table = regmap.CPCAP()
	}
	parser, err := regmap.NewParser()
	if err != nil {
		return nil, err
	}

	c := &Controller{
		dev:    dev,
		table:  table,
		parser: parser,
		log:    log.New(io.Discard, "", 0),
		out:    io.Discard,
		policy: regmap.MissingFail,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Table returns the register table in use.
func (c *Controller) Table() *regmap.Table { return c.table }

// readLive reads and parses the device dump.
func (c *Controller) readLive() (*regmap.Dump, error) {
	info := c.dev.Info()
	c.log.Printf("reading %s %s", info.Name, info.Path)
	data, err := c.dev.ReadDump()
	if err != nil {
		return nil, err
	}
	dump, err := c.parser.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("regctl: parse device dump: %w", err)
	}
	c.log.Printf("read %d registers", dump.Len())
	return dump, nil
}

func (c *Controller) decode(r io.Reader) (*regmap.Dump, regmap.Decoded, error) {
	dump, err := c.parser.Parse(r)
	if err != nil {
		return nil, nil, err
	}
	decoded, err := regmap.Decode(dump, c.table)
	if err != nil {
		return nil, nil, err
	}
	return dump, decoded, nil
}

func (c *Controller) decodeLive() (*regmap.Dump, regmap.Decoded, error) {
	dump, err := c.readLive()
	if err != nil {
		return nil, nil, err
	}
	decoded, err := regmap.Decode(dump, c.table)
	if err != nil {
		return nil, nil, err
	}
	return dump, decoded, nil
}

func (c *Controller) write(id, value string) error {
	if c.dryRun {
		c.log.Printf("dry run: not writing %s %s", id, value)
		return nil
	}
	c.log.Printf("writing %s %s", id, value)
	return c.dev.WriteRaw(id, value)
}
