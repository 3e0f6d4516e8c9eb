package cfgfx

import (
	"fmt"
	"log/slog"

	"github.com/0xalexb/tanu-cfg/config"

	"go.uber.org/fx"
)

// NewModule creates an Fx module that provides a loaded *config.Config.
// The name is used as both the module name and the DI named tag for Source and *config.Config.
// If any options are passed, the module supplies Source from those options.
// Otherwise, Source must be provided externally under the same name.
// The file is loaded during start-up, so a missing or malformed file fails the app.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule(name string, opts ...Option) fx.Option {
	if name == "" {
		return fx.Error(ErrEmptyName)
	}

	var source Source

	for _, apply := range opts {
		apply(&source)
	}

	tag := fmt.Sprintf(`name:"%s"`, name)

	var moduleOpts []fx.Option

	if len(opts) > 0 {
		moduleOpts = append(moduleOpts, fx.Supply(fx.Annotate(source, fx.ResultTags(tag))))
	}

	moduleOpts = append(moduleOpts,
		fx.Provide(fx.Annotate(
			func(src Source, logger *slog.Logger) (*config.Config, error) {
				return load(name, src, logger)
			},
			fx.ParamTags(tag, `optional:"true"`),
			fx.ResultTags(tag),
		)),
		fx.Invoke(fx.Annotate(
			func(*config.Config) {},
			fx.ParamTags(tag),
		)),
	)

	return fx.Module(name, moduleOpts...)
}

func load(name string, src Source, logger *slog.Logger) (*config.Config, error) {
	err := src.Validate()
	if err != nil {
		return nil, fmt.Errorf("config %q: %w", name, err)
	}

	var options []config.Option
	if logger != nil {
		options = append(options, config.WithLogger(logger.With(slog.String("config", name))))
	}

	root := src.Root
	if root == "" {
		root, err = config.RootFromEnv()
		if err != nil {
			return nil, fmt.Errorf("config %q: %w", name, err)
		}
	}

	location, err := config.NewLocation(root, src.Group, src.App)
	if err != nil {
		return nil, fmt.Errorf("config %q: %w", name, err)
	}

	cfg := config.New(location, options...)

	err = cfg.Load(src.File)
	if err != nil {
		return nil, fmt.Errorf("config %q: %w", name, err)
	}

	return cfg, nil
}
