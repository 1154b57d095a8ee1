// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"strings"

	"github.com/aibor/invfs/internal/resolver"
)

// searchPathList collects search path lists. Each value may itself be a list
// separated by [resolver.SearchPathSeparator]. An empty value clears the list.
type searchPathList []string

func (l *searchPathList) String() string {
	return strings.Join(*l, resolver.SearchPathSeparator)
}

func (l *searchPathList) Set(s string) error {
	if s == "" {
		*l = nil
		return nil
	}

	for path := range strings.SplitSeq(s, resolver.SearchPathSeparator) {
		if path != "" {
			*l = append(*l, path)
		}
	}

	return nil
}

// unionList collects union directory sets. Each value is a comma separated
// list of directories forming one union.
type unionList [][]string

func (l *unionList) String() string {
	unions := make([]string, 0, len(*l))
	for _, dirs := range *l {
		unions = append(unions, strings.Join(dirs, ","))
	}

	return strings.Join(unions, " ")
}

func (l *unionList) Set(s string) error {
	var dirs []string

	for dir := range strings.SplitSeq(s, ",") {
		if dir != "" {
			dirs = append(dirs, dir)
		}
	}

	if len(dirs) == 0 {
		return &ParseArgsError{msg: "union without directories"}
	}

	*l = append(*l, dirs)

	return nil
}
