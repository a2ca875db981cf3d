package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/specialistvlad/stepliteral/internal/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	out := &bytes.Buffer{}
	cfg, shouldExit, err := Parse([]string{"steps/"}, out)

	require.NoError(t, err)
	require.False(t, shouldExit)
	assert.Equal(t, &app.Config{
		StepPath:    "steps/",
		Target:      "bash",
		Prefix:      "snakemake",
		LogFormat:   "text",
		LogLevel:    "warn",
		WorkerCount: 4,
	}, cfg)
	assert.Empty(t, out.String())
}

func TestParse_Flags(t *testing.T) {
	args := []string{"-t", "Julia", "-step", "align", "-prefix", "sm", "-log-format", "JSON", "-log-level", "debug", "-workers", "8", "main.hcl"}
	cfg, shouldExit, err := Parse(args, &bytes.Buffer{})

	require.NoError(t, err)
	require.False(t, shouldExit)
	assert.Equal(t, "julia", cfg.Target)
	assert.Equal(t, "align", cfg.StepName)
	assert.Equal(t, "sm", cfg.Prefix)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 8, cfg.WorkerCount)
	assert.Equal(t, "main.hcl", cfg.StepPath)
}

func TestParse_ShouldExit(t *testing.T) {
	for name, args := range map[string][]string{
		"help":    {"-h"},
		"no path": {},
	} {
		t.Run(name, func(t *testing.T) {
			out := &bytes.Buffer{}
			cfg, shouldExit, err := Parse(args, out)

			require.NoError(t, err)
			assert.True(t, shouldExit)
			assert.Nil(t, cfg)
			assert.Contains(t, out.String(), "Usage:")
		})
	}
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name    string
		args    []string
		wantMsg string
	}{
		{"unknown flag", []string{"-nope", "x"}, "flag provided but not defined"},
		{"two paths", []string{"a", "b"}, "expected a single STEP_PATH"},
		{"bad target", []string{"-target", "perl", "x"}, `unknown target "perl"`},
		{"bad log format", []string{"-log-format", "xml", "x"}, "invalid log-format"},
		{"bad log level", []string{"-log-level", "loud", "x"}, "invalid log-level"},
		{"no workers", []string{"-workers", "0", "x"}, "WorkerCount"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := Parse(tc.args, &bytes.Buffer{})

			var exitErr *ExitError
			require.True(t, errors.As(err, &exitErr), "expected ExitError, got %v", err)
			assert.Equal(t, 2, exitErr.Code)
			assert.Contains(t, exitErr.Message, tc.wantMsg)
		})
	}
}
