package regmap

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/participle/v2"
)

// Parser reads regmap dumps.
type Parser struct {
	parser *participle.Parser[dumpLine]
}

// NewParser creates a new dump parser instance.
func NewParser() (*Parser, error) {
	parser, err := participle.Build[dumpLine](
		participle.Lexer(DumpLexer),
		participle.Elide("Whitespace"),
	)
	if err != nil {
		return nil, fmt.Errorf("regmap: failed to build parser: %w", err)
	}

	return &Parser{parser: parser}, nil
}

// ParseLine splits one non-blank line into its key and value. The line must
// contain exactly one colon with a token on either side.
func (p *Parser) ParseLine(line string) (key, value string, err error) {
	l, err := p.parser.ParseString("", strings.TrimSpace(line))
	if err != nil {
		return "", "", err
	}
	return l.Key, l.Value, nil
}

// Parse reads a dump from r. Blank lines are skipped; any other line that is
// not a "<key>: <value>" pair fails the whole parse with a *ParseError.
func (p *Parser) Parse(r io.Reader) (*Dump, error) {
	dump := NewDump()
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		key, value, err := p.ParseLine(text)
		if err != nil {
			return nil, &ParseError{Line: lineNo, Text: text, Err: err}
		}
		dump.set(Entry{Key: key, Value: value, Line: lineNo})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("regmap: read dump: %w", err)
	}
	return dump, nil
}

// ParseString parses a dump held in memory.
func (p *Parser) ParseString(input string) (*Dump, error) {
	return p.Parse(strings.NewReader(input))
}

// ParseFile parses the dump stored at filename.
func (p *Parser) ParseFile(filename string) (*Dump, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("regmap: failed to open file: %w", err)
	}
	defer file.Close()

	dump, err := p.Parse(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return dump, nil
}
