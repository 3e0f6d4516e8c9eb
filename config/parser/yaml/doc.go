// Package yaml provides a YAML parser implementation for the config package.
//
// This package uses github.com/goccy/go-yaml to decode the input with ordered
// maps and converts the result into the same document tree the JSON parser
// produces, so YAML files are queried with the same leaf paths:
//
//	detail:
//	  lang: c++        -> /detail/lang
//	tags: [neko, cat]  -> /tags/0, /tags/1
//
// Usage:
//
//	parser := yaml.NewParser()
//	root, err := parser.Parse(data)
package yaml
