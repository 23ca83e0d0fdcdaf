package regmap

import "github.com/alecthomas/participle/v2/lexer"

// dumpLine is one non-blank line of a dump.
// Example: 081c: 0260
type dumpLine struct {
	Key   string `@Word Colon`
	Value string `@Word`
}

// tableFile is a complete register table file.
type tableFile struct {
	Registers []*tableRegister `@@*`
}

// tableRegister declares one register and its bits.
// Example: register 081c RXOA { HS_L_EN = 6 }
type tableRegister struct {
	Pos lexer.Position

	ID   string      `KwRegister @Word`
	Name string      `@Word`
	Bits []*tableBit `LBrace @@* RBrace`
}

// tableBit declares a single bit of a register.
// Example: HS_L_EN = 6
type tableBit struct {
	Pos lexer.Position

	Name   string `@Word Assign`
	Offset string `@Word`
}
