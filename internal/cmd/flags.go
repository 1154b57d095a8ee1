// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"flag"
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/aibor/invfs/internal/loadsize"
)

const (
	name = "invfs"

	jobsDefault = 4
	jobsMin     = 1
	jobsMax     = 64

	usageMessage = `Usage of 'invfs':
    invfs [flags...] name...

Resolves library names in the search path and prints for each match:
	name<TAB>label<TAB>path<TAB>size

Search path entries are directories, archives (zip, cpio, gzip, zstd or lz4
compressed cpio) and unions of directories:
	invfs -path /usr/lib/ruby:/opt/gems/bundle.zip -union ./lib,./vendor json

With -require, the names are loaded in order instead and a line is printed
for each file loaded:
	eval<TAB>path<TAB>size
	ext<TAB>name<TAB>size
	native<TAB>name

The default search path is read from environment variable INVFS_PATH, the
load size limit from INVFS_MAX_LOADSIZE.

All invfs flags can also be provided via environment variable INVFS_ARGS:
	INVFS_ARGS="-debug -warm" invfs json

All invfs flags can also be provided via file ./.invfs-args, with one
argument per line.
`
)

type flags struct {
	flagSet *flag.FlagSet

	searchPath  searchPathList
	defaultPath searchPathList
	unions      unionList
	maxLoadSize loadsize.Value
	jobs        int
	relative    bool
	cat         bool
	warm        bool
	require     bool
	debug       bool
	version     bool

	names []string
}

func newFlags(output io.Writer) *flags {
	flags := &flags{
		jobs: jobsDefault,
	}

	flags.initFlagset(output)

	return flags
}

// applyEnv sets the defaults read from the environment. It returns the error
// of an invalid size limit, in which case the default limit is used.
func (f *flags) applyEnv(lookup func(string) (string, bool)) error {
	if list, exists := lookup(PathEnvVar); exists {
		_ = f.defaultPath.Set(list)
	}

	size, err := loadsize.FromEnv(lookup)
	f.maxLoadSize = loadsize.Value(size)

	return err //nolint:wrapcheck
}

func (f *flags) ParseArgs(args []string) error {
	err := f.flagSet.Parse(args)
	if err != nil {
		return &ParseArgsError{msg: "flag parse", err: err}
	}

	// With version flag, just print the version and exit. Using [ErrHelp]
	// the main binary is supposed to return with a non error exit code.
	if f.version {
		err := f.printVersionInformation()
		return &ParseArgsError{msg: "version requested", err: err}
	}

	if !f.isSet("path") {
		f.searchPath = f.defaultPath
	}

	f.names = f.flagSet.Args()
	if len(f.names) == 0 {
		return f.fail("no names given", ErrNoNames)
	}

	return nil
}

func (f *flags) initFlagset(output io.Writer) {
	flagSet := flag.NewFlagSet(name, flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = f.usage

	flagSet.Var(
		&f.searchPath,
		"path",
		"search path list, separated by \":\". Flag may be used more than "+
			"once. Empty value clears the list. (default from "+PathEnvVar+")",
	)

	flagSet.Var(
		&f.unions,
		"union",
		"comma separated directories added as single union entry after "+
			"the search path. Flag may be used more than once.",
	)

	flagSet.Var(
		&f.maxLoadSize,
		"maxLoadSize",
		"size limit for loadable files, like 512k or 4MiB, clamped into "+
			"[256KiB, 64MiB]",
	)

	flagSet.Var(
		&boundedIntValue{
			value: &f.jobs,
			min:   jobsMin,
			max:   jobsMax,
		},
		"jobs",
		"number of names resolved concurrently",
	)

	flagSet.BoolVar(
		&f.relative,
		"relative",
		f.relative,
		"resolve names relative to the file systems' labels, without "+
			"extension fallback",
	)

	flagSet.BoolVar(
		&f.cat,
		"cat",
		f.cat,
		"write the content of the found files instead of the table",
	)

	flagSet.BoolVar(
		&f.warm,
		"warm",
		f.warm,
		"open all search path entries before resolving",
	)

	flagSet.BoolVar(
		&f.require,
		"require",
		f.require,
		"load the names in order and print each file loaded instead of "+
			"the table, names not found are handed over as native",
	)

	flagSet.BoolVar(
		&f.debug,
		"debug",
		f.debug,
		"enable debug output",
	)

	flagSet.BoolVar(
		&f.version,
		"version",
		f.version,
		"show version and exit",
	)

	f.flagSet = flagSet
}

func (f *flags) isSet(flagName string) bool {
	set := false

	f.flagSet.Visit(func(fl *flag.Flag) {
		if fl.Name == flagName {
			set = true
		}
	})

	return set
}

// fail fails like flag does. It prints the error first and then usage.
func (f *flags) fail(msg string, err error) error {
	err = &ParseArgsError{msg: msg, err: err}
	fmt.Fprintln(f.flagSet.Output(), err.Error())

	f.flagSet.Usage()

	return err
}

func (f *flags) printVersionInformation() error {
	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return ErrReadBuildInfo
	}

	fmt.Fprintf(f.flagSet.Output(), "Version: %s\n", buildInfo.Main.Version)

	return ErrHelp
}

func (f *flags) usage() {
	fmt.Fprint(f.flagSet.Output(), usageMessage)
	fmt.Fprintln(f.flagSet.Output(), "\nFlags:")
	f.flagSet.PrintDefaults()
}

func parseArgs(args []string, output io.Writer) (*flags, error) {
	flags := newFlags(output)

	err := flags.applyEnv(os.LookupEnv)
	if err != nil {
		fmt.Fprintf(output, "ignoring %s: %v\n", loadsize.EnvVar, err)
	}

	err = flags.ParseArgs(args)
	if err != nil {
		return nil, err
	}

	return flags, nil
}
