// Package document holds the in-memory form of a parsed configuration file.
//
// A Node tree keeps objects, arrays and scalar leaves exactly as the parser
// produced them, with integers and doubles kept apart. Flatten derives a View,
// a flat map from leaf path to scalar value:
//
//	{"id":32,"tags":["neko","cat"],"detail":{"lang":"c++"}}
//
//	/id           -> 32
//	/tags/0       -> "neko"
//	/tags/1       -> "cat"
//	/detail/lang  -> "c++"
//
// Member names containing "~" or "/" are escaped as "~0" and "~1".
package document
