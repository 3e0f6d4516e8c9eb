package json

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/0xalexb/tanu-cfg/config/document"

	"github.com/tidwall/gjson"
)

// ErrEmptyData is returned when the input data is empty.
var ErrEmptyData = errors.New("empty data")

// ErrInvalidJSON is returned when the input is not well-formed JSON.
var ErrInvalidJSON = errors.New("invalid json")

// ErrInvalidUTF8 is returned when the input is not valid UTF-8. It matches ErrInvalidJSON as well.
var ErrInvalidUTF8 = fmt.Errorf("%w: ill-formed UTF-8", ErrInvalidJSON)

//nolint:gochecknoglobals // constant byte sequence.
var byteOrderMark = []byte{0xef, 0xbb, 0xbf}

// Parser implements config.Parser for JSON data.
type Parser struct{}

// NewParser creates a new JSON parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse validates data and converts it into a document tree.
// A leading UTF-8 byte order mark is skipped.
func (p *Parser) Parse(data []byte) (*document.Node, error) {
	data = bytes.TrimPrefix(data, byteOrderMark)

	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyData
	}

	if !utf8.Valid(data) {
		return nil, ErrInvalidUTF8
	}

	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidJSON
	}

	return convert(gjson.ParseBytes(data))
}

func convert(result gjson.Result) (*document.Node, error) {
	switch {
	case result.IsObject():
		return convertObject(result)
	case result.IsArray():
		return convertArray(result)
	}

	switch result.Type {
	case gjson.Null:
		return document.Scalar(document.Null()), nil
	case gjson.True:
		return document.Scalar(document.Bool(true)), nil
	case gjson.False:
		return document.Scalar(document.Bool(false)), nil
	case gjson.String:
		return document.Scalar(document.String(result.Str)), nil
	case gjson.Number:
		value, err := number(result.Raw)
		if err != nil {
			return nil, err
		}

		return document.Scalar(value), nil
	default:
		return nil, fmt.Errorf("%w: unexpected value %q", ErrInvalidJSON, result.Raw)
	}
}

func convertObject(result gjson.Result) (*document.Node, error) {
	node := document.NewObject()

	var err error

	result.ForEach(func(key, value gjson.Result) bool {
		child, convErr := convert(value)
		if convErr != nil {
			err = convErr

			return false
		}

		node.Set(key.String(), child)

		return true
	})

	if err != nil {
		return nil, err
	}

	return node, nil
}

func convertArray(result gjson.Result) (*document.Node, error) {
	node := document.NewArray()

	var err error

	result.ForEach(func(_, value gjson.Result) bool {
		child, convErr := convert(value)
		if convErr != nil {
			err = convErr

			return false
		}

		node.Append(child)

		return true
	})

	if err != nil {
		return nil, err
	}

	return node, nil
}

// number keeps the literal's kind: a fraction or exponent makes a double,
// anything else is an integer. Integers outside int64 fall back to double.
func number(raw string) (document.Value, error) {
	raw = strings.TrimSpace(raw)

	if !strings.ContainsAny(raw, ".eE") {
		i, err := strconv.ParseInt(raw, 10, 64)
		if err == nil {
			return document.Integer(i), nil
		}
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return document.Value{}, fmt.Errorf("number %q: %w", raw, err)
	}

	return document.Double(f), nil
}
