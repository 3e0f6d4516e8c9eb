package config

import (
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// RootDirEnvVar names the environment variable holding the configuration root directory.
const RootDirEnvVar = "TANULIB_CONF_DIR"

type rootEnv struct {
	Dir string `env:"TANULIB_CONF_DIR,required,notEmpty"`
}

// Location resolves configuration files under <root>/<group>/<app>.
// It never touches the filesystem.
type Location struct {
	root  string
	group string
	app   string
}

// NewLocation creates a Location. An empty root fails with RootDirectoryUnset.
func NewLocation(root, group, app string) (Location, error) {
	if root == "" {
		return Location{}, errRootDirectoryUnset(nil)
	}

	return Location{root: root, group: group, app: app}, nil
}

// LocationFromEnv reads the root directory from RootDirEnvVar once and creates a Location.
func LocationFromEnv(group, app string) (Location, error) {
	root, err := RootFromEnv()
	if err != nil {
		return Location{}, err
	}

	return NewLocation(root, group, app)
}

// RootFromEnv returns the value of RootDirEnvVar from the process environment.
func RootFromEnv() (string, error) {
	return rootFromEnvironment(nil)
}

// rootFromEnvironment reads the root from environ, or from the process
// environment when environ is nil.
func rootFromEnvironment(environ map[string]string) (string, error) {
	var cfg rootEnv

	err := env.ParseWithOptions(&cfg, env.Options{Environment: environ})
	if err != nil {
		return "", errRootDirectoryUnset(err)
	}

	return cfg.Dir, nil
}

// Root returns the configuration root directory.
func (l Location) Root() string {
	return l.root
}

// Group returns the group name.
func (l Location) Group() string {
	return l.group
}

// App returns the application name.
func (l Location) App() string {
	return l.app
}

// Dir returns <root>/<group>/<app>.
func (l Location) Dir() string {
	return filepath.Join(l.root, l.group, l.app)
}

// Path returns the full path of fileName inside Dir.
func (l Location) Path(fileName string) string {
	return filepath.Join(l.Dir(), fileName)
}
