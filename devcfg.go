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

// entry is a single key/value pair. The value is held verbatim as text;
// typed interpretation happens in the accessor layer.
type entry struct {
	key   string
	value string
}

// section is a named group of entries, in insertion order.
type section struct {
	name    string
	entries []entry
}

// find returns a pointer to the entry for key, or nil if the key is not
// present.
func (s *section) find(key string) *entry {
	for i := range s.entries {
		if s.entries[i].key == key {
			return &s.entries[i]
		}
	}
	return nil
}

// Store is an in-memory collection of configuration sections, each holding
// key/value string pairs. Sections, and the entries within them, preserve
// insertion order. A section exists only while it holds at least one entry:
// removing the last entry of a section removes the section itself.
//
// A Store is not safe for concurrent use.
type Store struct {
	sections []*section
	// gen is incremented by every mutation, invalidating any open
	// [SectionIter].
	gen uint64
}

// New returns an empty store.
func New() *Store {
	return &Store{}
}

// Clone returns a deep copy of the store. The copy shares no state with the
// original, and iterators open on the original are unaffected.
func (c *Store) Clone() *Store {
	clone := &Store{sections: make([]*section, 0, len(c.sections))}
	for _, s := range c.sections {
		clone.sections = append(clone.sections, &section{
			name:    s.name,
			entries: append([]entry(nil), s.entries...),
		})
	}
	return clone
}

// Len returns the number of sections in the store.
func (c *Store) Len() int {
	return len(c.sections)
}

// HasSection returns true if the store contains the named section.
func (c *Store) HasSection(section string) bool {
	return c.findSection(section) != nil
}

// HasKey returns true if the named section contains key.
func (c *Store) HasKey(section, key string) bool {
	s := c.findSection(section)
	return s != nil && s.find(key) != nil
}

// Get returns the raw value stored for key in the named section. The second
// return value reports whether the key was present.
func (c *Store) Get(section, key string) (string, bool) {
	s := c.findSection(section)
	if s == nil {
		return "", false
	}
	e := s.find(key)
	if e == nil {
		return "", false
	}
	return e.value, true
}

// Set stores value for key in the named section, creating the section if
// necessary. An existing value for the key is replaced in place, preserving
// the entry's position within the section.
func (c *Store) Set(section, key, value string) {
	c.gen++
	s := c.getOrCreate(section)
	if e := s.find(key); e != nil {
		e.value = value
		return
	}
	s.entries = append(s.entries, entry{key: key, value: value})
}

// RemoveKey deletes key from the named section, reporting whether the key
// was present. Removing the last key of a section removes the section with
// it.
func (c *Store) RemoveKey(section, key string) bool {
	s := c.findSection(section)
	if s == nil {
		return false
	}
	for i := range s.entries {
		if s.entries[i].key != key {
			continue
		}
		c.gen++
		s.entries = append(s.entries[:i], s.entries[i+1:]...)
		if len(s.entries) == 0 {
			c.drop(s)
		}
		return true
	}
	return false
}

// RemoveSection deletes the named section and every key in it, reporting
// whether the section was present.
func (c *Store) RemoveSection(section string) bool {
	s := c.findSection(section)
	if s == nil {
		return false
	}
	c.gen++
	c.drop(s)
	return true
}

// Map returns a copy of the store's contents as nested maps, keyed by
// section name and then by key. The result is a snapshot: it shares no
// state with the store, and insertion order is not preserved.
func (c *Store) Map() map[string]map[string]string {
	m := make(map[string]map[string]string, len(c.sections))
	for _, s := range c.sections {
		sec := make(map[string]string, len(s.entries))
		for _, e := range s.entries {
			sec[e.key] = e.value
		}
		m[s.name] = sec
	}
	return m
}

// findSection returns the named section, or nil.
func (c *Store) findSection(name string) *section {
	for _, s := range c.sections {
		if s.name == name {
			return s
		}
	}
	return nil
}

// getOrCreate returns the named section, creating and appending it if it
// does not yet exist.
func (c *Store) getOrCreate(name string) *section {
	if s := c.findSection(name); s != nil {
		return s
	}
	s := &section{name: name}
	c.sections = append(c.sections, s)
	return s
}

// drop removes the section record from the store.
func (c *Store) drop(target *section) {
	for i, s := range c.sections {
		if s == target {
			c.sections = append(c.sections[:i], c.sections[i+1:]...)
			return
		}
	}
}
