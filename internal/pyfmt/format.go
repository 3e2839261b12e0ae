// Package pyfmt renders combinations with Python-like format strings.
//
// Fields reference values by position: "{0}-{1.upper()}". Literal braces are
// doubled: "{{" and "}}".
package pyfmt

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

var methods = mapset.NewSet("lower()", "upper()", "quote()")

type Format struct {
	Input string
	// List of either literal or field, in order.
	Sections []any
	Fields   []*Field
}

func (f Format) IsStatic() bool {
	return len(f.Fields) == 0
}

// Width returns the minimum number of values required to render f.
func (f Format) Width() (width int) {
	for _, field := range f.Fields {
		width = max(width, field.Index+1)
	}
	return
}

type Field struct {
	Index  int
	Method string
}

func Parse(f string) (format Format, err error) {
	err = format.Parse(f)
	return
}

func (f *Format) Parse(s string) error {
	f.Input = s
	var (
		end     = len(s)
		inField = false
		next    byte
		start   int
	)

	for i := 0; i < end; { // Loops sections in s.
		start = i
		if inField {
			loc := strings.IndexByte(s[i:], '}')
			if loc == -1 {
				return errors.New("end of string before end of field")
			}
			i += loc // Move before }
			field, err := parseField(s[start:i])
			if err != nil {
				return fmt.Errorf("{%s}: %w", s[start:i], err)
			}
			f.Sections = append(f.Sections, field)
			f.Fields = append(f.Fields, field)
			i++ // Move after }
			inField = false
			continue
		}

		loc := strings.IndexByte(s[i:], '{')
		if loc == -1 {
			i = end
		} else {
			// a{0} OR a{{0
			//  ^       ^
			i += loc
			if i < end-1 {
				next = s[i+1]
			} else {
				next = 0
			}
			if next == '{' {
				// Keep first { in literal, skip the second one.
				i++
			} else {
				inField = true
			}
		}
		if i > start { // Avoid empty literal.
			f.Sections = append(f.Sections, strings.ReplaceAll(s[start:i], "}}", "}"))
		}
		i++ // Move after {, literal or escape.
	}
	if inField {
		return errors.New("unexpected end of format")
	}
	return nil
}

func parseField(s string) (*Field, error) {
	name, method, _ := strings.Cut(s, ".")
	index, err := strconv.Atoi(name)
	if err != nil || index < 0 {
		return nil, fmt.Errorf("bad index '%s'", name)
	}
	if method != "" && !methods.Contains(method) {
		return nil, fmt.Errorf("unknown method '%s'", method)
	}
	return &Field{Index: index, Method: method}, nil
}

// Append renders values at the end of dst.
//
// Panics if values has less than Width() items.
func (f Format) Append(dst []byte, values []string) []byte {
	for _, item := range f.Sections {
		literal, ok := item.(string)
		if ok {
			dst = append(dst, literal...)
			continue
		}
		field := item.(*Field)
		v := values[field.Index]
		switch field.Method {
		case "lower()":
			v = strings.ToLower(v)
		case "upper()":
			v = strings.ToUpper(v)
		case "quote()":
			dst = strconv.AppendQuote(dst, v)
			continue
		}
		dst = append(dst, v...)
	}
	return dst
}

func (f Format) Format(values []string) string {
	return string(f.Append(nil, values))
}

func (f Format) String() string {
	return f.Input
}
