package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/0xalexb/tanu-cfg/config/document"
	filefetcher "github.com/0xalexb/tanu-cfg/config/fetcher/file"
	jsonparser "github.com/0xalexb/tanu-cfg/config/parser/json"
	yamlparser "github.com/0xalexb/tanu-cfg/config/parser/yaml"
)

// Parser turns raw configuration bytes into a document tree.
// See config/parser/json and config/parser/yaml.
type Parser interface {
	Parse(data []byte) (*document.Node, error)
}

// DataFetcher defines an interface for reading configuration data.
type DataFetcher interface {
	Fetch() ([]byte, error)
}

// FetcherFunc opens the DataFetcher for a resolved configuration path.
// An error matching fs.ErrNotExist is reported as FileNotFound.
type FetcherFunc func(path string) (DataFetcher, error)

// Options holds the optional collaborators of a Config.
type Options struct {
	Logger  *slog.Logger
	Parser  Parser
	Fetcher FetcherFunc
}

// Option defines a function type for applying configuration options.
type Option func(*Options)

// WithLogger sets the logger used to report loads. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(opts *Options) {
		opts.Logger = logger
	}
}

// WithParser forces a parser for every file regardless of its extension.
func WithParser(parser Parser) Option {
	return func(opts *Options) {
		opts.Parser = parser
	}
}

// WithFetcher replaces the file fetcher used by Load. Defaults to config/fetcher/file.
func WithFetcher(fetcher FetcherFunc) Option {
	return func(opts *Options) {
		opts.Fetcher = fetcher
	}
}

func fileFetcher(path string) (DataFetcher, error) {
	return filefetcher.NewFetcher(path)()
}

// generation is one successfully loaded file. It is never modified after Load publishes it.
type generation struct {
	path     string
	document *document.Node
	view     document.View
}

// Config gives typed, path-addressed access to a loaded configuration file.
//
// Load replaces the document and its flattened view together; a failed Load
// keeps the previous generation. Getters read a single generation, so a Load
// running concurrently with a getter is safe.
type Config struct {
	location Location
	logger   *slog.Logger
	parser   Parser
	fetcher  FetcherFunc

	mu      sync.RWMutex
	current *generation
}

// New creates a Config that resolves files with location.
func New(location Location, opts ...Option) *Config {
	var options Options

	for _, apply := range opts {
		apply(&options)
	}

	logger := options.Logger
	if logger == nil {
		logger = slog.Default()
	}

	fetcher := options.Fetcher
	if fetcher == nil {
		fetcher = fileFetcher
	}

	return &Config{
		location: location,
		logger:   logger,
		parser:   options.Parser,
		fetcher:  fetcher,
	}
}

// NewFromEnv creates a Config rooted at the directory named by RootDirEnvVar.
func NewFromEnv(group, app string, opts ...Option) (*Config, error) {
	location, err := LocationFromEnv(group, app)
	if err != nil {
		return nil, err
	}

	return New(location, opts...), nil
}

// Location returns the location the Config resolves files with.
func (c *Config) Location() Location {
	return c.location
}

// Load reads and parses fileName from the location directory.
func (c *Config) Load(fileName string) error {
	if c.location.root == "" {
		return errRootDirectoryUnset(nil)
	}

	path := c.location.Path(fileName)

	next, err := c.build(path)
	if err != nil {
		c.logger.Warn("configuration load failed", slog.String("path", path), slog.Any("error", err))

		return err
	}

	c.mu.Lock()
	c.current = next
	c.mu.Unlock()

	c.logger.Debug("configuration loaded", slog.String("path", path), slog.Int("leaves", len(next.view)))

	return nil
}

func (c *Config) build(path string) (*generation, error) {
	fetcher, err := c.fetcher(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errFileNotFound(path)
		}

		return nil, errParseFailed(path, err)
	}

	data, err := fetcher.Fetch()
	if err != nil {
		return nil, errParseFailed(path, err)
	}

	root, err := c.parserFor(path).Parse(data)
	if err != nil {
		return nil, errParseFailed(path, err)
	}

	return &generation{
		path:     path,
		document: root,
		view:     document.Flatten(root),
	}, nil
}

func (c *Config) parserFor(path string) Parser {
	if c.parser != nil {
		return c.parser
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yamlparser.NewParser()
	default:
		return jsonparser.NewParser()
	}
}

func (c *Config) snapshot() *generation {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.current
}

// NormalizeKey prefixes key with "/" unless it already starts with one.
func NormalizeKey(key string) string {
	if strings.HasPrefix(key, document.Separator) {
		return key
	}

	return document.Separator + key
}

// GetInt returns the integer at key.
func (c *Config) GetInt(key string) (int, error) {
	return scalar(c, key, document.KindInteger, func(v document.Value) int {
		i, _ := v.AsInt()

		return int(i)
	})
}

// GetString returns the string at key.
func (c *Config) GetString(key string) (string, error) {
	return scalar(c, key, document.KindString, func(v document.Value) string {
		s, _ := v.AsString()

		return s
	})
}

// GetDouble returns the floating-point number at key. Integer leaves are rejected.
func (c *Config) GetDouble(key string) (float64, error) {
	return scalar(c, key, document.KindDouble, func(v document.Value) float64 {
		f, _ := v.AsDouble()

		return f
	})
}

// GetBool returns the boolean at key.
func (c *Config) GetBool(key string) (bool, error) {
	return scalar(c, key, document.KindBool, func(v document.Value) bool {
		b, _ := v.AsBool()

		return b
	})
}

// GetIntVec returns the integers at key/0, key/1, ... up to the first missing index.
func (c *Config) GetIntVec(key string) ([]int, error) {
	return vector(c, key, document.KindInteger, func(v document.Value) int {
		i, _ := v.AsInt()

		return int(i)
	})
}

// GetStringVec returns the strings at key/0, key/1, ... up to the first missing index.
func (c *Config) GetStringVec(key string) ([]string, error) {
	return vector(c, key, document.KindString, func(v document.Value) string {
		s, _ := v.AsString()

		return s
	})
}

// GetDoubleVec returns the doubles at key/0, key/1, ... up to the first missing index.
func (c *Config) GetDoubleVec(key string) ([]float64, error) {
	return vector(c, key, document.KindDouble, func(v document.Value) float64 {
		f, _ := v.AsDouble()

		return f
	})
}

func scalar[T any](c *Config, key string, kind document.Kind, extract func(document.Value) T) (T, error) {
	var zero T

	gen := c.snapshot()
	if gen == nil {
		return zero, errNotLoaded()
	}

	key = NormalizeKey(key)

	value, ok := gen.view[key]
	if !ok {
		return zero, errKeyNotFound(key)
	}

	if value.Kind() != kind {
		return zero, errTypeMismatch(key, kind)
	}

	return extract(value), nil
}

// vector enumerates base/0, base/1, ... and stops at the first missing
// index, so a hole truncates the result.
func vector[T any](c *Config, key string, kind document.Kind, extract func(document.Value) T) ([]T, error) {
	gen := c.snapshot()
	if gen == nil {
		return nil, errNotLoaded()
	}

	base := NormalizeKey(key)

	var result []T

	for idx := 0; ; idx++ {
		value, ok := gen.view[base+document.Separator+strconv.Itoa(idx)]
		if !ok {
			break
		}

		if value.Kind() != kind {
			return nil, errTypeMismatch(base, kind)
		}

		result = append(result, extract(value))
	}

	if len(result) == 0 {
		return nil, errKeyNotFound(base)
	}

	return result, nil
}

// Has reports whether key has a leaf in the loaded view.
func (c *Config) Has(key string) bool {
	gen := c.snapshot()
	if gen == nil {
		return false
	}

	_, ok := gen.view[NormalizeKey(key)]

	return ok
}

// Keys returns the sorted leaf paths of the loaded view, or nil before the first Load.
func (c *Config) Keys() []string {
	gen := c.snapshot()
	if gen == nil {
		return nil
	}

	return gen.view.Keys()
}

// Path returns the file path of the last successful Load, or "" before it.
func (c *Config) Path() string {
	gen := c.snapshot()
	if gen == nil {
		return ""
	}

	return gen.path
}

// DumpDocument returns the loaded document as compact JSON.
// The boolean is false when nothing is loaded.
func (c *Config) DumpDocument() (string, bool) {
	gen := c.snapshot()
	if gen == nil {
		return "", false
	}

	return gen.document.String(), true
}

// DumpFlattenedView returns the flattened view as compact JSON with sorted keys.
// The boolean is false when nothing is loaded.
func (c *Config) DumpFlattenedView() (string, bool) {
	gen := c.snapshot()
	if gen == nil {
		return "", false
	}

	return gen.view.String(), true
}
