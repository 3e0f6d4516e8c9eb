package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	tanucfg "github.com/0xalexb/tanu-cfg"
	"github.com/0xalexb/tanu-cfg/config"
	"github.com/0xalexb/tanu-cfg/config/cfgfx"
	"github.com/0xalexb/tanu-cfg/logging"

	"github.com/tidwall/pretty"
	"github.com/urfave/cli/v3"
	"go.uber.org/fx"
)

const configName = "cli"

var errMissingKey = errors.New("missing KEY argument")

var errUnknownType = errors.New("unknown value type")

func newRootCommand(out, errOut io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "tanucfg",
		Usage:     "typed access to configuration files",
		UsageText: "tanucfg [global options] dump|get|version [options]",
		Writer:    out,
		ErrWriter: errOut,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "debug, info, warn or error (default from TANUCFG_LOG_LEVEL, else warn)",
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "json or text (default from TANUCFG_LOG_FORMAT, else json)",
			},
		},
		Commands: []*cli.Command{
			dumpCommand(),
			getCommand(),
			versionCommand(),
		},
	}
}

func sourceFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "root",
			Usage: "configuration root directory (default from " + config.RootDirEnvVar + ")",
		},
		&cli.StringFlag{
			Name:     "group",
			Aliases:  []string{"g"},
			Usage:    "group name",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "app",
			Aliases:  []string{"a"},
			Usage:    "application name",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "file",
			Aliases:  []string{"f"},
			Usage:    "configuration file name",
			Required: true,
		},
	}
}

func dumpCommand() *cli.Command {
	return &cli.Command{
		Name:      "dump",
		Usage:     "print the loaded document or its flattened view",
		UsageText: "tanucfg dump -g GROUP -a APP -f FILE [--flat] [--pretty]",
		Flags: append(sourceFlags(),
			&cli.BoolFlag{
				Name:  "flat",
				Usage: "print the flattened leaf-path view",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "indent the JSON output",
			},
		),
		Action: dumpCommandAction,
	}
}

func dumpCommandAction(_ context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	dump := cfg.DumpDocument
	if cmd.Bool("flat") {
		dump = cfg.DumpFlattenedView
	}

	text, ok := dump()
	if !ok {
		text = "NA"
	} else if cmd.Bool("pretty") {
		text = string(pretty.Pretty([]byte(text)))
	}

	_, err = fmt.Fprintln(cmd.Root().Writer, text)

	return err
}

func getCommand() *cli.Command {
	return &cli.Command{
		Name:      "get",
		Usage:     "print a single typed value",
		UsageText: "tanucfg get -g GROUP -a APP -f FILE [-t TYPE] KEY",
		Flags: append(sourceFlags(),
			&cli.StringFlag{
				Name:    "type",
				Aliases: []string{"t"},
				Usage:   "int, string, double, bool, int-vec, string-vec or double-vec",
				Value:   "string",
			},
		),
		Action: getCommandAction,
	}
}

func getCommandAction(_ context.Context, cmd *cli.Command) error {
	key := cmd.Args().First()
	if key == "" {
		return errMissingKey
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	lines, err := lookup(cfg, cmd.String("type"), key)
	if err != nil {
		return err
	}

	for _, line := range lines {
		_, err = fmt.Fprintln(cmd.Root().Writer, line)
		if err != nil {
			return err
		}
	}

	return nil
}

// lookup renders the value at key as output lines, one per vector element.
func lookup(cfg *config.Config, valueType, key string) ([]string, error) {
	switch valueType {
	case "int":
		v, err := cfg.GetInt(key)

		return []string{strconv.Itoa(v)}, err
	case "string":
		v, err := cfg.GetString(key)

		return []string{v}, err
	case "double":
		v, err := cfg.GetDouble(key)

		return []string{formatDouble(v)}, err
	case "bool":
		v, err := cfg.GetBool(key)

		return []string{strconv.FormatBool(v)}, err
	case "int-vec":
		v, err := cfg.GetIntVec(key)

		return mapLines(v, strconv.Itoa), err
	case "string-vec":
		v, err := cfg.GetStringVec(key)

		return v, err
	case "double-vec":
		v, err := cfg.GetDoubleVec(key)

		return mapLines(v, formatDouble), err
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownType, valueType)
	}
}

func mapLines[T any](values []T, format func(T) string) []string {
	lines := make([]string, 0, len(values))
	for _, v := range values {
		lines = append(lines, format(v))
	}

	return lines
}

func formatDouble(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func versionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "print version information",
		Action: func(_ context.Context, cmd *cli.Command) error {
			_, err := fmt.Fprintln(cmd.Root().Writer, "tanucfg", tanucfg.VersionString())

			return err
		},
	}
}

// loadConfig builds an App holding the requested file and returns the loaded configuration.
func loadConfig(cmd *cli.Command) (*config.Config, error) {
	loggerConfig, err := logging.ConfigFromEnv()
	if err != nil {
		return nil, err
	}

	if cmd.IsSet("log-level") || loggerConfig.Level == "" {
		loggerConfig.Level = cmd.String("log-level")
	}

	if loggerConfig.Level == "" {
		loggerConfig.Level = "warn"
	}

	if cmd.IsSet("log-format") {
		loggerConfig.Format = cmd.String("log-format")
	}

	var cfg *config.Config

	app := tanucfg.NewApp(
		tanucfg.WithLogLevel(loggerConfig.Level),
		tanucfg.WithLogFormat(loggerConfig.Format),
		tanucfg.WithLogOutput(cmd.Root().ErrWriter),
		tanucfg.WithConfig(configName,
			cfgfx.WithRoot(cmd.String("root")),
			cfgfx.WithNamespace(cmd.String("group"), cmd.String("app")),
			cfgfx.WithFile(cmd.String("file")),
		),
		tanucfg.WithModules(fx.Invoke(fx.Annotate(func(c *config.Config) {
			cfg = c
		}, fx.ParamTags(fmt.Sprintf(`name:"%s"`, configName))))),
	)

	err = app.Start()
	if err != nil {
		return nil, err
	}

	err = app.Stop()
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
