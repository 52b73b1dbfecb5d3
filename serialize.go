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
	"fmt"
	"io"

	"github.com/go-devcfg/devcfg/filesystem"
)

// WriteTo writes the store to w in its canonical textual form,
// implementing [io.WriterTo]. Each section is written as a "[name]" header
// line, one "key=value" line per entry, and a trailing blank line, in store
// order. Entries of [DefaultSection], if any, appear under its literal
// header at whatever position the section holds in the store.
//
// Names, keys, and values are written verbatim. Content the parser would
// not read back the same way, such as keys containing '=', names containing
// brackets, or embedded line breaks, does not survive a round trip.
func (c *Store) WriteTo(w io.Writer) (int64, error) {
	var n int64
	for _, s := range c.sections {
		nn, err := fmt.Fprintf(w, "[%s]\n", s.name)
		n += int64(nn)
		if err != nil {
			return n, err
		}
		for _, e := range s.entries {
			nn, err := fmt.Fprintf(w, "%s=%s\n", e.key, e.value)
			n += int64(nn)
			if err != nil {
				return n, err
			}
		}
		nn, err = io.WriteString(w, "\n")
		n += int64(nn)
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

// Save writes the store to the file at path. The write is atomic: the
// store is serialized to a temporary file in the same directory, flushed to
// stable storage, and renamed into place, so a failure part way through
// cannot leave a truncated configuration behind. On failure the temporary
// file is removed and the previous file at path, if any, is untouched.
//
// The optional fs argument replaces the filesystem implementation,
// primarily for testing; at most one is honored.
func (c *Store) Save(path string, fs ...filesystem.Filesystem) error {
	return atomicWriteFile(pickFS(fs), path, func(f filesystem.File) error {
		_, err := c.WriteTo(f)
		return err
	})
}
