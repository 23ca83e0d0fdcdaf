// Package regmap decodes the text register dumps exposed by the Linux regmap
// debugfs interface into named bitfields.
//
// A dump is a sequence of "<register>: <hex value>" lines as found in
// /sys/kernel/debug/regmap/<device>/registers. Registers are identified by the
// address token of the dump and described by a Table that maps each address
// to a human readable name and a set of single-bit fields.
//
// # Overview
//
// The package provides:
//   - Parser: a participle grammar for dump lines, producing a Dump
//   - Table: an immutable register/bit description, indexed by address and name
//   - Decode: expansion of a Dump into register -> bit -> 0/1
//   - WithBit: re-encoding of a single bit into a raw register value
//   - Compare: bit-level differences between two decoded dumps
//   - ParseTable: a small text format for loading tables at runtime
//
// # Usage
//
//	parser, err := regmap.NewParser()
//	dump, err := parser.ParseFile("/sys/kernel/debug/regmap/spi0.0/registers")
//	decoded, err := regmap.Decode(dump, regmap.CPCAP())
//	fmt.Println(decoded["RXOA"]["HS_L_EN"])
//
// # Hex values
//
// All values cross the package boundary through ParseHex and FormatHex.
// ParseHex accepts an optional 0x prefix; FormatHex never emits one and never
// pads, which is what the debugfs write handler expects.
package regmap
