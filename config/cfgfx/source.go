// Package cfgfx provides an Fx module that loads a configuration file into the DI container.
package cfgfx

import "errors"

// ErrEmptyName is returned when the module name is empty.
var ErrEmptyName = errors.New("module name must not be empty")

// ErrEmptyFile is returned when the source names no file.
var ErrEmptyFile = errors.New("file name must not be empty")

// Source describes which configuration file a module loads.
// An empty Root is read from TANULIB_CONF_DIR when the module starts.
type Source struct {
	Root  string
	Group string
	App   string
	File  string
}

// Validate validates the Source.
func (s *Source) Validate() error {
	if s.File == "" {
		return ErrEmptyFile
	}

	return nil
}

// Option defines a function type for configuring a Source.
type Option func(*Source)

// WithRoot sets the root directory instead of reading it from the environment.
func WithRoot(root string) Option {
	return func(s *Source) {
		s.Root = root
	}
}

// WithNamespace sets the group and application names.
func WithNamespace(group, app string) Option {
	return func(s *Source) {
		s.Group = group
		s.App = app
	}
}

// WithFile sets the configuration file name.
func WithFile(name string) Option {
	return func(s *Source) {
		s.File = name
	}
}
