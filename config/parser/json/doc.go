// Package json provides a JSON parser implementation for the config package.
//
// The parser uses github.com/tidwall/gjson to validate the input and walk it
// into a document tree. Number literals keep their kind: "10" becomes an
// integer and "10.0" or "1e1" a double.
//
// Usage:
//
//	parser := json.NewParser()
//	root, err := parser.Parse(data)
package json
