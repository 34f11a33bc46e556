package parser

import (
	"strings"

	"github.com/leapstack-labs/sqlparser/pkg/core"
	"github.com/leapstack-labs/sqlparser/pkg/token"
)

// Data type parsing for CAST, :: and column definitions.
//
// Grammar:
//
//	data_type     → type_name ["(" type_arg ("," type_arg)* ")"] [suffix] ("[" "]")*
//	type_name     → word ("." word)* | DOUBLE PRECISION | (CHARACTER | CHAR) VARYING
//	type_arg      → NUMBER | STRING | MAX
//	suffix        → UNSIGNED | (WITH | WITHOUT) TIME ZONE
//
// Array suffixes are unavailable in dialects that quote identifiers with
// brackets: the lexer reads "[]" there as an empty quoted identifier.

// typeSecondWords maps the first word of two-word type names to the
// second word they accept.
var typeSecondWords = map[string]string{
	"DOUBLE":    "PRECISION",
	"CHARACTER": "VARYING",
	"CHAR":      "VARYING",
}

// parseDataType parses a type name with optional parameters.
func (p *Parser) parseDataType() (*core.DataType, error) {
	name, err := p.parseTypeName()
	if err != nil {
		return nil, err
	}
	typ := &core.DataType{Name: name}

	// Type parameters like VARCHAR(255), DECIMAL(10, 2) or ENUM('a', 'b')
	if p.match(token.LPAREN) {
		for {
			arg, err := p.parseTypeArg()
			if err != nil {
				return nil, err
			}
			typ.Args = append(typ.Args, arg)
			if !p.match(token.COMMA) {
				break
			}
		}
		if err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
	}

	switch {
	case p.matchWord("UNSIGNED"):
		typ.Suffix = "UNSIGNED"
	case (p.check(token.WITH) || p.checkWord("WITHOUT")) && p.checkPeek(token.TIME):
		prefix := strings.ToUpper(p.token.Literal)
		p.nextToken() // consume WITH/WITHOUT
		p.nextToken() // consume TIME
		if err := p.expectWord("ZONE"); err != nil {
			return nil, err
		}
		typ.Suffix = prefix + " TIME ZONE"
	}

	for p.check(token.LBRACKET) && p.checkPeek(token.RBRACKET) {
		p.nextToken()
		p.nextToken()
		typ.ArrayDims++
	}

	return typ, nil
}

// parseTypeName parses the canonical name of a type.
func (p *Parser) parseTypeName() (string, error) {
	var parts []string
	for {
		switch {
		case p.token.Kind() == token.KindQuotedIdent:
			parts = append(parts, core.Ident{Value: p.token.Literal, Quote: p.token.Quote}.String())
		case isWord(p.token):
			parts = append(parts, strings.ToUpper(p.token.Literal))
		default:
			return "", p.errorf(ErrUnexpectedToken, "data type", p.token)
		}
		p.nextToken()

		if !p.check(token.DOT) {
			break
		}
		p.nextToken() // consume DOT
	}

	name := strings.Join(parts, ".")
	if second, ok := typeSecondWords[name]; ok && p.matchWord(second) {
		name += " " + second
	}
	return name, nil
}

// parseTypeArg parses one type parameter.
func (p *Parser) parseTypeArg() (string, error) {
	switch {
	case p.check(token.NUMBER):
		arg := p.token.Literal
		p.nextToken()
		return arg, nil
	case p.check(token.STRING):
		arg := "'" + strings.ReplaceAll(p.token.Literal, "'", "''") + "'"
		p.nextToken()
		return arg, nil
	case p.matchWord("MAX"):
		return "MAX", nil
	}
	return "", p.errorf(ErrUnexpectedToken, "type parameter", p.token)
}
