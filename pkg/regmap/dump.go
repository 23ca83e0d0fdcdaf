package regmap

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Entry is a single register line of a dump, kept as text.
type Entry struct {
	Key   string
	Value string
	Line  int // source line of the last assignment, 0 if set programmatically
}

// Dump is the as-read mapping of register key to raw text value. Entries keep
// the order of first appearance; a repeated key keeps its first position and
// takes the last value. Keys are matched case-insensitively.
type Dump struct {
	entries []Entry
	index   map[string]int
}

// NewDump returns an empty dump.
func NewDump() *Dump {
	return &Dump{index: make(map[string]int)}
}

// Set assigns value to key, appending a new entry if key is not present.
func (d *Dump) Set(key, value string) {
	d.set(Entry{Key: key, Value: value})
}

func (d *Dump) set(e Entry) {
	k := normalizeKey(e.Key)
	if i, ok := d.index[k]; ok {
		d.entries[i].Value = e.Value
		d.entries[i].Line = e.Line
		return
	}
	d.index[k] = len(d.entries)
	d.entries = append(d.entries, e)
}

// Value returns the raw text value recorded for key.
func (d *Dump) Value(key string) (string, bool) {
	i, ok := d.index[normalizeKey(key)]
	if !ok {
		return "", false
	}
	return d.entries[i].Value, true
}

// Entries returns a copy of the entries in order of first appearance.
func (d *Dump) Entries() []Entry {
	return append([]Entry(nil), d.entries...)
}

// Len returns the number of distinct keys.
func (d *Dump) Len() int { return len(d.entries) }

// WriteTo renders the dump in the debugfs "<key>: <value>" format.
func (d *Dump) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var n int64
	for _, e := range d.entries {
		m, err := fmt.Fprintf(bw, "%s: %s\n", e.Key, e.Value)
		n += int64(m)
		if err != nil {
			return n, err
		}
	}
	return n, bw.Flush()
}

func normalizeKey(k string) string {
	return strings.ToLower(strings.TrimSpace(k))
}
