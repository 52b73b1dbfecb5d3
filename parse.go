// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//  http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

package devcfg

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/go-devcfg/devcfg/filesystem"
)

// Parse reads a configuration from r. Unreadable input is an error; input
// that yields no entries is not, and produces an empty store.
//
// Input is processed line by line. Blank lines, and comment lines whose
// first non-blank character is ';' or '#', are ignored. A line beginning
// with '[' is a section header: "[name]" opens the named section, with the
// name between the brackets taken verbatim. A header missing its closing
// bracket, or with an empty name, is skipped, and is never read as a
// key/value pair. Any other line containing '=' is split at the first
// occurrence into a key and a value, both trimmed of surrounding
// whitespace, and added to the most recently opened section, or to
// [DefaultSection] if no header has been seen yet. Lines with no '=' are
// skipped. Comments are recognized only as whole lines; a ';' or '#'
// after the '=' is part of the value.
func Parse(r io.Reader) (*Store, error) {
	c := New()
	name := DefaultSection
	scanner := bufio.NewScanner(r)
	for first := true; scanner.Scan(); first = false {
		line := scanner.Text()
		if first {
			line = strings.TrimPrefix(line, "\uFEFF")
		}
		line = strings.TrimSpace(line)
		switch {
		case line == "":
		case line[0] == ';' || line[0] == '#':
		case line[0] == '[':
			if last := len(line) - 1; line[last] == ']' {
				if n := line[1:last]; n != "" {
					name = n
				}
			}
		default:
			key, value, ok := strings.Cut(line, "=")
			if !ok {
				continue
			}
			c.Set(name, strings.TrimSpace(key), strings.TrimSpace(value))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("devcfg: parse: %w", err)
	}
	return c, nil
}

// Open reads and parses the configuration file at path. A missing or
// unreadable file is an error. The optional fs argument replaces the
// filesystem implementation, primarily for testing; at most one is honored.
func Open(path string, fs ...filesystem.Filesystem) (*Store, error) {
	f, err := pickFS(fs).Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}
