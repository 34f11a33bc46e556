// Package astjson serializes AST nodes as JSON or YAML.
//
// Nodes are converted into a tagged tree first: every struct becomes a map
// holding its Go type name under "node" plus its non-empty fields in
// snake_case. Identifiers and object names are written as SQL text and
// enumerations by name, so the tree reads like the query it came from.
//
//	stmt, _ := parser.Parse("SELECT a FROM t", d)
//	out, _ := astjson.Marshal(astjson.JSON, []core.Stmt{stmt}, astjson.Options{})
package astjson

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"unicode"

	"github.com/leapstack-labs/sqlparser/pkg/core"
	"github.com/leapstack-labs/sqlparser/pkg/token"
	"gopkg.in/yaml.v3"
)

// Format is an output encoding.
type Format string

// Supported formats.
const (
	JSON Format = "json"
	YAML Format = "yaml"
)

// ErrUnknownFormat is returned for a format other than json or yaml.
var ErrUnknownFormat = errors.New("unknown output format")

// ParseFormat resolves a format name case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case JSON, YAML:
		return f, nil
	}
	return "", fmt.Errorf("%w %q (want json or yaml)", ErrUnknownFormat, s)
}

// Options controls tree construction.
type Options struct {
	// Spans adds a "span" entry ("line:col-line:col") to nodes that carry
	// source positions.
	Spans bool
}

var (
	identType      = reflect.TypeOf(core.Ident{})
	objectNameType = reflect.TypeOf(core.ObjectName{})
	nodeInfoType   = reflect.TypeOf(core.NodeInfo{})
	tokenTypeType  = reflect.TypeOf(token.TokenType(0))
	stringerType   = reflect.TypeOf((*fmt.Stringer)(nil)).Elem()
)

// Tree converts v, typically a statement or expression, into maps, slices
// and scalars ready for any encoder.
func Tree(v any, opts Options) any {
	return opts.convert(reflect.ValueOf(v))
}

// Trees converts each statement.
func Trees(stmts []core.Stmt, opts Options) []any {
	out := make([]any, len(stmts))
	for i, stmt := range stmts {
		out[i] = Tree(stmt, opts)
	}
	return out
}

func (o Options) convert(v reflect.Value) any {
	if !v.IsValid() {
		return nil
	}

	switch v.Type() {
	case identType:
		return v.Interface().(core.Ident).String()
	case objectNameType:
		return v.Interface().(core.ObjectName).String()
	case tokenTypeType:
		return v.Interface().(token.TokenType).String()
	}

	switch v.Kind() {
	case reflect.Interface, reflect.Pointer:
		if v.IsNil() {
			return nil
		}
		return o.convert(v.Elem())
	case reflect.Struct:
		return o.convertStruct(v)
	case reflect.Slice:
		if v.Len() == 0 {
			return nil
		}
		items := make([]any, v.Len())
		for i := range items {
			items[i] = o.convert(v.Index(i))
		}
		return items
	case reflect.Int, reflect.Int32, reflect.Int64:
		if v.Type().Implements(stringerType) {
			return v.Interface().(fmt.Stringer).String()
		}
		return v.Int()
	case reflect.String:
		return v.String()
	case reflect.Bool:
		return v.Bool()
	}
	return fmt.Sprint(v.Interface())
}

func (o Options) convertStruct(v reflect.Value) map[string]any {
	t := v.Type()
	out := map[string]any{"node": t.Name()}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		fv := v.Field(i)

		if field.Type == nodeInfoType {
			if o.Spans {
				span := fv.Interface().(core.NodeInfo).Span
				if span.Start.IsValid() {
					out["span"] = span.Start.String() + "-" + span.End.String()
				}
			}
			continue
		}
		if !field.IsExported() || omit(fv) {
			continue
		}
		out[snakeCase(field.Name)] = o.convert(fv)
	}
	return out
}

// omit reports whether a field carries no information. Enumerations are
// always kept since their zero value is meaningful.
func omit(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Interface, reflect.Pointer, reflect.Slice:
		return v.IsNil() || (v.Kind() == reflect.Slice && v.Len() == 0)
	case reflect.Bool:
		return !v.Bool()
	case reflect.String:
		return v.Len() == 0
	case reflect.Int, reflect.Int32, reflect.Int64:
		return v.Int() == 0 && !v.Type().Implements(stringerType)
	}
	return false
}

// snakeCase converts a field name: OrReplace becomes or_replace and an
// upper-case run stays one word (CTEs becomes ctes).
func snakeCase(s string) string {
	var b strings.Builder
	prevLower := false
	for _, r := range s {
		if unicode.IsUpper(r) {
			if prevLower {
				b.WriteByte('_')
			}
			r = unicode.ToLower(r)
			prevLower = false
		} else {
			prevLower = true
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Marshal encodes the statements as a list in the given format.
func Marshal(format Format, stmts []core.Stmt, opts Options) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, format, stmts, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Encode writes the statements to w in the given format.
func Encode(w io.Writer, format Format, stmts []core.Stmt, opts Options) error {
	trees := Trees(stmts, opts)
	switch format {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(trees)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(trees); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("%w %q", ErrUnknownFormat, format)
}
