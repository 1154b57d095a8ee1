// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package archive

import (
	"path"
	"slices"
	"strings"
)

const symlinkDepth = 10

type node struct {
	data   []byte
	target string
	link   bool
}

// index is an in-memory lookup table of regular files and symbolic links by
// their cleaned name.
type index map[string]node

func (i index) addFile(name string, data []byte) {
	i[clean(name)] = node{data: data}
}

func (i index) addLink(name, target string) {
	i[clean(name)] = node{target: target, link: true}
}

// file returns the regular file node for the given name. Symbolic links are
// followed, also for intermediate path components.
func (i index) file(name string) (node, error) {
	n, err := i.resolve(clean(name), symlinkDepth)
	if err != nil {
		return node{}, err
	}

	if n.link {
		return node{}, ErrNotFound
	}

	return n, nil
}

func (i index) resolve(name string, depth uint) (node, error) {
	parts := strings.Split(name, "/")

	for idx := range parts {
		prefix := strings.Join(parts[:idx+1], "/")
		last := idx == len(parts)-1

		n, exists := i[prefix]
		if !exists {
			if last {
				return node{}, ErrNotFound
			}

			continue
		}

		if !n.link {
			if last {
				return n, nil
			}

			continue
		}

		if depth == 0 {
			return node{}, ErrSymlinkTooDeep
		}

		target := n.target
		if !path.IsAbs(target) {
			target = path.Join(path.Dir(prefix), target)
		}

		rest := strings.Join(parts[idx+1:], "/")

		return i.resolve(clean(path.Join(target, rest)), depth-1)
	}

	return node{}, ErrNotFound
}

func (i index) names() []string {
	names := make([]string, 0, len(i))

	for name, n := range i {
		if !n.link {
			names = append(names, name)
		}
	}

	slices.Sort(names)

	return names
}

// clean converts archive member names and lookup names into the same
// canonical form: slash separated, without leading "/" or "./".
func clean(name string) string {
	name = path.Clean("/" + name)
	return strings.TrimPrefix(name, "/")
}
