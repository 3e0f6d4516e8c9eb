package yaml

import (
	"testing"

	"github.com/0xalexb/tanu-cfg/config/document"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_Parse_Document(t *testing.T) {
	t.Parallel()

	parser := NewParser()

	data := []byte(`
id: 32
version: 1.28
name: tako
tags:
  - neko
  - cat
  - pokora
detail:
  lang: c++
  lang-version: 10
offset: -3
enabled: true
missing: ~
`)

	root, err := parser.Parse(data)
	require.NoError(t, err)

	view := document.Flatten(root)

	assert.Equal(t, document.Integer(32), view["/id"])
	assert.Equal(t, document.Double(1.28), view["/version"])
	assert.Equal(t, document.String("tako"), view["/name"])
	assert.Equal(t, document.String("neko"), view["/tags/0"])
	assert.Equal(t, document.String("pokora"), view["/tags/2"])
	assert.Equal(t, document.String("c++"), view["/detail/lang"])
	assert.Equal(t, document.Integer(10), view["/detail/lang-version"])
	assert.Equal(t, document.Integer(-3), view["/offset"])
	assert.Equal(t, document.Bool(true), view["/enabled"])
	assert.Equal(t, document.Null(), view["/missing"])
}

func TestParser_Parse_KeepsMemberOrder(t *testing.T) {
	t.Parallel()

	data := []byte(`
zeta: 1
alpha:
  inner: x
`)

	root, err := NewParser().Parse(data)
	require.NoError(t, err)

	members := root.Members()
	require.Len(t, members, 2)
	assert.Equal(t, "zeta", members[0].Name)
	assert.Equal(t, "alpha", members[1].Name)
}

func TestParser_Parse_FlowSequenceOfMappings(t *testing.T) {
	t.Parallel()

	data := []byte(`
servers:
  - host: a.example.com
    port: 80
  - host: b.example.com
    port: 8080
`)

	root, err := NewParser().Parse(data)
	require.NoError(t, err)

	view := document.Flatten(root)

	assert.Equal(t, document.String("b.example.com"), view["/servers/1/host"])
	assert.Equal(t, document.Integer(8080), view["/servers/1/port"])
}

func TestParser_Parse_EmptyData(t *testing.T) {
	t.Parallel()

	parser := NewParser()

	root, err := parser.Parse([]byte{})

	require.ErrorIs(t, err, ErrEmptyData)
	assert.Nil(t, root)
	assert.Contains(t, err.Error(), "empty data")
}

func TestParser_Parse_InvalidYAML(t *testing.T) {
	t.Parallel()

	parser := NewParser()

	data := []byte(`
invalid: yaml: content: [
`)

	root, err := parser.Parse(data)

	require.Error(t, err)
	assert.Nil(t, root)
}

func TestConvert(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		input    any
		expected document.Value
	}{
		{"nil", nil, document.Null()},
		{"int", 5, document.Integer(5)},
		{"int64", int64(-5), document.Integer(-5)},
		{"uint64", uint64(7), document.Integer(7)},
		{"huge uint64", uint64(1 << 63), document.Double(float64(uint64(1 << 63)))},
		{"float32", float32(0.5), document.Double(0.5)},
		{"float64", 2.5, document.Double(2.5)},
		{"string", "x", document.String("x")},
		{"bool", false, document.Bool(false)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			node, err := convert(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, node.Value())
		})
	}
}

func TestConvert_UnsupportedValue(t *testing.T) {
	t.Parallel()

	_, err := convert(struct{}{})

	require.ErrorIs(t, err, ErrUnsupportedValue)
}

func TestConvert_PlainMapIsSorted(t *testing.T) {
	t.Parallel()

	node, err := convert(map[string]any{"b": 1, "a": "x"})
	require.NoError(t, err)

	assert.Equal(t, `{"a":"x","b":1}`, node.String())
}
