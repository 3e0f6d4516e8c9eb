package json

import (
	"testing"

	"github.com/0xalexb/tanu-cfg/config/document"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_Parse_Document(t *testing.T) {
	t.Parallel()

	parser := NewParser()

	data := []byte(`{
  "id": 32,
  "version": 1.28,
  "name": "tako",
  "tags": ["neko", "cat", "pokora"],
  "detail": {"lang": "c++", "lang-version": 10, "lang-patch": 0.2864},
  "enabled": true,
  "extra": null
}`)

	root, err := parser.Parse(data)
	require.NoError(t, err)
	require.Equal(t, document.KindObject, root.Kind())

	view := document.Flatten(root)

	assert.Equal(t, document.Integer(32), view["/id"])
	assert.Equal(t, document.Double(1.28), view["/version"])
	assert.Equal(t, document.String("tako"), view["/name"])
	assert.Equal(t, document.String("pokora"), view["/tags/2"])
	assert.Equal(t, document.Integer(10), view["/detail/lang-version"])
	assert.Equal(t, document.Double(0.2864), view["/detail/lang-patch"])
	assert.Equal(t, document.Bool(true), view["/enabled"])
	assert.Equal(t, document.Null(), view["/extra"])
}

func TestParser_Parse_KeepsMemberOrder(t *testing.T) {
	t.Parallel()

	root, err := NewParser().Parse([]byte(`{"z":1,"a":[1.5,"x"],"m":{}}`))
	require.NoError(t, err)

	assert.Equal(t, `{"z":1,"a":[1.5,"x"],"m":{}}`, root.String())
}

func TestParser_Parse_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		data     string
		expected error
	}{
		{"empty", "", ErrEmptyData},
		{"whitespace only", " \n\t", ErrEmptyData},
		{"truncated object", `{"id": 32`, ErrInvalidJSON},
		{"trailing comma", `{"id": 32,}`, ErrInvalidJSON},
		{"bare word", `tako`, ErrInvalidJSON},
		{"ill-formed utf-8 in string", "{\"s\":\"\xff\xfe\"}", ErrInvalidUTF8},
		{"ill-formed utf-8 in key", "{\"\xc3\":1}", ErrInvalidJSON},
		{"byte order mark only", "\xef\xbb\xbf", ErrEmptyData},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			root, err := NewParser().Parse([]byte(tc.data))

			require.ErrorIs(t, err, tc.expected)
			assert.Nil(t, root)
		})
	}
}

func TestNumber(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		raw      string
		expected document.Value
	}{
		{"0", document.Integer(0)},
		{"-42", document.Integer(-42)},
		{"10.0", document.Double(10)},
		{"1e3", document.Double(1000)},
		{"2E-2", document.Double(0.02)},
		{"9223372036854775808", document.Double(9223372036854775808)},
		{"18446744073709551615", document.Double(18446744073709551615)},
		{"-9223372036854775808", document.Integer(-9223372036854775808)},
	}

	for _, tc := range testCases {
		t.Run(tc.raw, func(t *testing.T) {
			t.Parallel()

			value, err := number(tc.raw)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, value)
		})
	}
}

func TestParser_Parse_ScalarRoot(t *testing.T) {
	t.Parallel()

	root, err := NewParser().Parse([]byte(` 7 `))
	require.NoError(t, err)

	assert.Equal(t, document.Integer(7), root.Value())
}

func TestParser_Parse_SkipsByteOrderMark(t *testing.T) {
	t.Parallel()

	root, err := NewParser().Parse([]byte("\ufeff{\"id\":1}"))
	require.NoError(t, err)

	assert.Equal(t, document.Integer(1), document.Flatten(root)["/id"])
}

func TestParser_Parse_KeepsValidMultibyteStrings(t *testing.T) {
	t.Parallel()

	root, err := NewParser().Parse([]byte(`{"name":"たこ","emoji":"\ud83d\udc19"}`))
	require.NoError(t, err)

	view := document.Flatten(root)
	assert.Equal(t, document.String("たこ"), view["/name"])
	assert.Equal(t, document.String("🐙"), view["/emoji"])
}

func TestParser_Parse_InvalidUTF8IsInvalidJSON(t *testing.T) {
	t.Parallel()

	_, err := NewParser().Parse([]byte("{\"s\":\"\xff\xfe\"}"))

	require.ErrorIs(t, err, ErrInvalidUTF8)
	require.ErrorIs(t, err, ErrInvalidJSON)
}
