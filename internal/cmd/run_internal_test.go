// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/aibor/invfs/internal/exitcode"
	"github.com/aibor/invfs/internal/loadsize"
	"github.com/aibor/invfs/internal/resolver"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFS(t *testing.T) afero.Fs {
	t.Helper()

	fsys := afero.NewMemMapFs()
	writeFiles(t, fsys, map[string][]byte{
		"/lib/native.rb": []byte("puts 1"),
		"/u2/baz.rb":     []byte("puts 'baz'"),
		"/gems/bundle.zip": zipArchive(t, map[string]string{
			"foo.rb":     "puts 'foo'",
			"lib/bar.rb": "puts 'bar'",
		}),
		"/gems/broken.zip": []byte("PK\x03\x04broken"),
	})

	return fsys
}

func TestRun(t *testing.T) {
	tests := []struct {
		name           string
		args           []string
		expectedOutput string
		expectedErr    error
	}{
		{
			name:           "archive",
			args:           []string{"-path=/lib:/gems/bundle.zip", "foo"},
			expectedOutput: "foo\t/gems/bundle.zip\tfoo.rb\t10\n",
		},
		{
			name:           "native",
			args:           []string{"-path=/lib:/gems/bundle.zip", "native"},
			expectedOutput: "native\t/lib\tnative.rb\t6\n",
		},
		{
			name:           "union",
			args:           []string{"-union=/u1,/u2", "baz"},
			expectedOutput: "baz\tunion(</u1>, </u2>)\tbaz.rb\t10\n",
		},
		{
			name:           "multiple in order",
			args:           []string{"-path=/gems/bundle.zip", "-jobs=1", "lib/bar", "foo"},
			expectedOutput: "lib/bar\t/gems/bundle.zip\tlib/bar.rb\t10\nfoo\t/gems/bundle.zip\tfoo.rb\t10\n",
		},
		{
			name:           "relative",
			args:           []string{"-path=/gems/bundle.zip", "-relative", "/gems/bundle.zip/lib/bar.rb"},
			expectedOutput: "/gems/bundle.zip/lib/bar.rb\t/gems/bundle.zip\tlib/bar.rb\t10\n",
		},
		{
			name:           "cat",
			args:           []string{"-path=/gems/bundle.zip", "-cat", "foo", "lib/bar"},
			expectedOutput: "puts 'foo'puts 'bar'",
		},
		{
			name:           "warm with broken archive",
			args:           []string{"-path=/gems/broken.zip:/gems/bundle.zip", "-warm", "foo"},
			expectedOutput: "foo\t/gems/bundle.zip\tfoo.rb\t10\n",
		},
		{
			name:           "missing",
			args:           []string{"-path=/gems/bundle.zip", "foo", "missing"},
			expectedOutput: "foo\t/gems/bundle.zip\tfoo.rb\t10\n",
			expectedErr:    exitcode.NotFound,
		},
		{
			name:        "empty search path",
			args:        []string{"foo"},
			expectedErr: exitcode.NotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags := newFlags(io.Discard)
			require.NoError(t, flags.ParseArgs(tt.args))

			var stdout bytes.Buffer

			err := run(context.Background(), flags, testFS(t), &stdout)
			require.ErrorIs(t, err, tt.expectedErr)

			assert.Equal(t, tt.expectedOutput, stdout.String())
		})
	}
}

func TestRunRequire(t *testing.T) {
	flags := newFlags(io.Discard)
	require.NoError(t, flags.ParseArgs([]string{
		"-path=/lib:/gems/bundle.zip",
		"-require",
		"foo",
		"lib/bar",
		"foo",
		"native",
	}))

	var stdout bytes.Buffer

	err := run(context.Background(), flags, testFS(t), &stdout)
	require.NoError(t, err)

	expected := "eval\t/gems/bundle.zip/foo.rb\t10\n" +
		"eval\t/gems/bundle.zip/lib/bar.rb\t10\n" +
		"native\tnative\n"
	assert.Equal(t, expected, stdout.String())
}

func TestRunLoadSizeLimit(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFiles(t, fsys, map[string][]byte{
		"/gems/large.zip": zipArchive(t, map[string]string{
			"large.rb": string(make([]byte, loadsize.Min+1)),
		}),
	})

	flags := newFlags(io.Discard)
	require.NoError(t, flags.ParseArgs([]string{"-path=/gems/large.zip", "-maxLoadSize=1", "large"}))

	err := run(context.Background(), flags, fsys, io.Discard)
	require.ErrorIs(t, err, exitcode.NotFound)
}

func TestRunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	flags := newFlags(io.Discard)
	require.NoError(t, flags.ParseArgs([]string{"-path=/gems/bundle.zip", "foo"}))

	err := run(ctx, flags, testFS(t), io.Discard)
	require.ErrorIs(t, err, context.Canceled)
}

func TestHandleParseArgsError(t *testing.T) {
	tests := []struct {
		name             string
		err              error
		expectedExitCode int
	}{
		{
			name: "help",
			err:  &ParseArgsError{msg: "flag parse", err: ErrHelp},
		},
		{
			name:             "parse args error",
			err:              &ParseArgsError{msg: "no names given"},
			expectedExitCode: -1,
		},
		{
			name:             "other error",
			err:              assert.AnError,
			expectedExitCode: -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			captureLogs(t)
			assert.Equal(t, tt.expectedExitCode, handleParseArgsError(tt.err))
		})
	}
}

func TestHandleRunError(t *testing.T) {
	tests := []struct {
		name             string
		err              error
		expectedExitCode int
		expectedOutput   string
	}{
		{
			name:             "not found",
			err:              exitcode.NotFound,
			expectedExitCode: 1,
		},
		{
			name:             "other error",
			err:              fmt.Errorf("resolve foo: %w", assert.AnError),
			expectedExitCode: -1,
			expectedOutput:   "level=ERROR msg=\"resolve foo: " + assert.AnError.Error() + "\"\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := captureLogs(t)

			assert.Equal(t, tt.expectedExitCode, handleRunError(tt.err))
			assert.Equal(t, tt.expectedOutput, output.String())
		})
	}
}

// captureLogs installs the command's logger writing into the returned
// buffer and restores the previous logger on cleanup.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()

	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	var output bytes.Buffer

	setupLogging(&output, false)

	return &output
}

func TestRunCommand(t *testing.T) {
	unsetEnv(t, ArgsEnvVar, PathEnvVar, loadsize.EnvVar)

	dir := t.TempDir()
	bundle := filepath.Join(dir, "bundle.zip")
	require.NoError(t, os.WriteFile(bundle, zipArchive(t, map[string]string{
		"foo.rb": "puts 'foo'",
	}), 0o600))

	t.Setenv(PathEnvVar, bundle)

	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	tests := []struct {
		name             string
		args             []string
		expectedExitCode int
		expectedStdout   string
	}{
		{
			name:           "found",
			args:           []string{"foo"},
			expectedStdout: "foo\t" + bundle + "\tfoo.rb\t10\n",
		},
		{
			name:             "not found",
			args:             []string{"missing"},
			expectedExitCode: 1,
		},
		{
			name: "help",
			args: []string{"-help"},
		},
		{
			name:             "no names",
			expectedExitCode: -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer

			cfg := IO{
				Stdin:  &bytes.Buffer{},
				Stdout: &stdout,
				Stderr: &stderr,
			}

			exitCode := Run(context.Background(), tt.args, cfg)
			assert.Equal(t, tt.expectedExitCode, exitCode, stderr.String())
			assert.Equal(t, tt.expectedStdout, stdout.String())
		})
	}
}

func TestLookupFound(t *testing.T) {
	assert.True(t, (&lookup{}).found())
	assert.True(t, (&lookup{err: fmt.Errorf("%w: /lib/json.rb", resolver.ErrNativeFilesystem)}).found())
	assert.False(t, (&lookup{err: fmt.Errorf("%w: json", resolver.ErrNotFound)}).found())
}
