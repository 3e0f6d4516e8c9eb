package tanucfg_test

import (
	"bytes"
	"testing"

	tanucfg "github.com/0xalexb/tanu-cfg"
	"github.com/0xalexb/tanu-cfg/config/cfgfx"

	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

func TestWithLogLevel(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		level string
	}{
		{"debug level", "debug"},
		{"error level", "error"},
		{"empty level", ""},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			var opts tanucfg.Options

			tanucfg.WithLogLevel(testCase.level)(&opts)

			require.Equal(t, testCase.level, opts.LogLevel)
		})
	}
}

func TestWithLogFormatAndOutput(t *testing.T) {
	t.Parallel()

	var (
		opts tanucfg.Options
		buf  bytes.Buffer
	)

	tanucfg.WithLogFormat("text")(&opts)
	tanucfg.WithLogOutput(&buf)(&opts)

	require.Equal(t, "text", opts.LogFormat)
	require.Same(t, &buf, opts.LogOutput)
}

func TestWithModules(t *testing.T) {
	t.Parallel()

	var opts tanucfg.Options

	tanucfg.WithModules(fx.Module("test1"))(&opts)
	require.Len(t, opts.Modules, 1)

	tanucfg.WithModules(fx.Module("test2"), fx.Module("test3"))(&opts)
	require.Len(t, opts.Modules, 3)
}

func TestWithConfig_AddsModule(t *testing.T) {
	t.Parallel()

	var opts tanucfg.Options

	tanucfg.WithConfig("primary", cfgfx.WithFile("app.json"))(&opts)
	tanucfg.WithConfig("secondary", cfgfx.WithFile("other.json"))(&opts)

	require.Len(t, opts.Modules, 2)
}
