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
	"sort"

	"github.com/go-devcfg/devcfg/collate"
)

// SortEntries sorts the entries of every section by key, leaving the order
// of the sections themselves unchanged. Keys are compared with cmp, which
// reports a negative number when a sorts before b, zero when the two are
// equivalent, and a positive number otherwise. The sort is stable. A nil
// cmp sorts keys in the Unicode collation order of [collate.CompareString].
//
// Sorting counts as a mutation: open iterators are invalidated even when
// every entry was already in place.
func (c *Store) SortEntries(cmp func(a, b string) int) {
	if cmp == nil {
		cmp = collate.CompareString
	}
	c.gen++
	for _, s := range c.sections {
		entries := s.entries
		sort.SliceStable(entries, func(i, j int) bool {
			return cmp(entries[i].key, entries[j].key) < 0
		})
	}
}
