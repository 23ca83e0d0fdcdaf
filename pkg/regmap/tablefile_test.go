package regmap

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleTable = `
# CPCAP output amplifiers, trimmed
register 081c RXOA {
	A1_EAR_EN    = 0
	A2_LDSP_R_EN = 1
	HS_L_EN      = 6  # left headphone
	ST_HS_CP_EN  = 0x9
}

register 0x1 CODEC_REG1 { MUTE = 0 POWER = 2 }
register 0830 RXLL {}
`

func TestParseTable(t *testing.T) {
	table, err := ParseTable("sample.regs", strings.NewReader(sampleTable))
	require.NoError(t, err)

	require.Equal(t, 3, table.Len())

	rxoa, ok := table.ByID("081C")
	require.True(t, ok)
	assert.Equal(t, map[string]uint{
		"A1_EAR_EN":    0,
		"A2_LDSP_R_EN": 1,
		"HS_L_EN":      6,
		"ST_HS_CP_EN":  9,
	}, rxoa.Bits)

	reg1, ok := table.ByName("CODEC_REG1")
	require.True(t, ok)
	assert.Equal(t, "0x1", reg1.ID)
	assert.Equal(t, []string{"MUTE", "POWER"}, reg1.BitNames())

	rxll, ok := table.ByName("RXLL")
	require.True(t, ok)
	assert.Empty(t, rxll.Bits)
}

func TestParseTableErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"missing brace", "register 0800 A { X = 1"},
		{"missing name", "register 0800 { X = 1 }"},
		{"offset not a number", "register 0800 A { X = Y }"},
		{"offset too large", "register 0800 A { X = 64 }"},
		{"duplicate bit", "register 0800 A { X = 1 X = 2 }"},
		{"duplicate register", "register 0800 A {}\nregister 0800 B {}"},
		{"stray token", "bits 0800 A {}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseTable("bad.regs", strings.NewReader(tt.input)); err == nil {
				t.Fatalf("expected error for %q", tt.input)
			}
		})
	}
}

func TestWriteTableRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, CPCAP()))

	path := filepath.Join(t.TempDir(), "cpcap.regs")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	loaded, err := LoadTableFile(path)
	require.NoError(t, err)
	assert.Equal(t, CPCAP().Registers(), loaded.Registers())

	_, err = LoadTableFile(filepath.Join(t.TempDir(), "missing.regs"))
	assert.Error(t, err)
}
