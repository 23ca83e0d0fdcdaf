package regmap

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// DumpLexer tokenises a single "<key>: <value>" line of a regmap dump.
// Keys and values are arbitrary runs of non-space, non-colon characters so
// that address formats other than plain hex survive the parse.
var DumpLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
	{Name: "Colon", Pattern: `:`},
	{Name: "Word", Pattern: `[^\s:]+`},
})

// TableLexer tokenises register table files.
//
//	# CPCAP RX output amplifiers
//	register 081c RXOA {
//	    A1_EAR_EN = 0
//	    HS_L_EN   = 6
//	}
var TableLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "Whitespace", Pattern: `\s+`},

	// Keywords (must come before Word)
	{Name: "KwRegister", Pattern: `\bregister\b`},

	{Name: "LBrace", Pattern: `\{`},
	{Name: "RBrace", Pattern: `\}`},
	{Name: "Assign", Pattern: `=`},

	// Addresses, names and bit offsets
	{Name: "Word", Pattern: `[A-Za-z0-9_]+`},
})
