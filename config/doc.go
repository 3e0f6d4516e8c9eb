// Package config provides typed, path-addressed access to a configuration file.
//
// A Location resolves files under <root>/<group>/<app>, where root usually
// comes from the TANULIB_CONF_DIR environment variable. Config.Load parses
// one file and flattens it into leaf paths; the getters then read values by
// slash-delimited key and check their kind:
//
//	cfg, err := config.NewFromEnv("cpptanu", "sample")
//	if err != nil {
//	    return err
//	}
//	if err := cfg.Load("sample.json"); err != nil {
//	    return err
//	}
//	id, err := cfg.GetInt("id")              // same as "/id"
//	lang, err := cfg.GetString("detail/lang")
//	tags, err := cfg.GetStringVec("tags")    // reads /tags/0, /tags/1, ...
//
// # Extension points
//
//   - Parser: turns bytes into a document tree (config/parser/json, config/parser/yaml)
//   - DataFetcher: reads raw bytes (config/fetcher/file by default, see WithFetcher)
//
// Files ending in .yaml or .yml use the YAML parser, everything else is JSON,
// unless WithParser forces one.
//
// # Errors
//
// Every failure is an *Error whose Kind is one of NotLoaded, FileNotFound,
// ParseFailed, KeyNotFound, TypeMismatch or RootDirectoryUnset. Each kind
// matches its sentinel with errors.Is:
//
//	_, err := cfg.GetString("id")
//	errors.Is(err, config.ErrTypeMismatch) // true
//	err.Error()                            // "/id's value is not string"
//
// Integers and doubles are distinct: GetDouble on 10 and GetInt on 10.0 both
// fail with TypeMismatch. Array getters report the base key, not the index,
// in their errors.
package config
