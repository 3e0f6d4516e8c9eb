package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/0xalexb/tanu-cfg/config/document"

	"github.com/goccy/go-yaml"
)

// ErrEmptyData is returned when the input data is empty.
var ErrEmptyData = errors.New("empty data")

// ErrUnsupportedValue is returned when a decoded value has no document equivalent.
var ErrUnsupportedValue = errors.New("unsupported value")

// Parser implements config.Parser interface for YAML data.
// Mappings are decoded with goccy/go-yaml ordered maps so member order survives.
type Parser struct{}

// NewParser creates a new YAML parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse parses YAML data into a document tree.
func (p *Parser) Parse(data []byte) (*document.Node, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyData
	}

	var decoded any

	err := yaml.UnmarshalWithOptions(data, &decoded, yaml.UseOrderedMap())
	if err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	return convert(decoded)
}

//nolint:cyclop // one case per decoded Go type.
func convert(value any) (*document.Node, error) {
	switch typed := value.(type) {
	case nil:
		return document.Scalar(document.Null()), nil
	case bool:
		return document.Scalar(document.Bool(typed)), nil
	case string:
		return document.Scalar(document.String(typed)), nil
	case int:
		return document.Scalar(document.Integer(int64(typed))), nil
	case int64:
		return document.Scalar(document.Integer(typed)), nil
	case uint64:
		if typed > math.MaxInt64 {
			return document.Scalar(document.Double(float64(typed))), nil
		}

		return document.Scalar(document.Integer(int64(typed))), nil
	case float32:
		return document.Scalar(document.Double(float64(typed))), nil
	case float64:
		return document.Scalar(document.Double(typed)), nil
	case time.Time:
		return document.Scalar(document.String(typed.Format(time.RFC3339Nano))), nil
	case yaml.MapSlice:
		return convertMapSlice(typed)
	case map[string]any:
		return convertMap(typed)
	case []any:
		return convertSequence(typed)
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedValue, value)
	}
}

func convertMapSlice(items yaml.MapSlice) (*document.Node, error) {
	node := document.NewObject()

	for _, item := range items {
		child, err := convert(item.Value)
		if err != nil {
			return nil, err
		}

		node.Set(fmt.Sprint(item.Key), child)
	}

	return node, nil
}

func convertMap(members map[string]any) (*document.Node, error) {
	names := make([]string, 0, len(members))
	for name := range members {
		names = append(names, name)
	}

	sort.Strings(names)

	node := document.NewObject()

	for _, name := range names {
		child, err := convert(members[name])
		if err != nil {
			return nil, err
		}

		node.Set(name, child)
	}

	return node, nil
}

func convertSequence(items []any) (*document.Node, error) {
	node := document.NewArray()

	for _, item := range items {
		child, err := convert(item)
		if err != nil {
			return nil, err
		}

		node.Append(child)
	}

	return node, nil
}
