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

// SectionIter iterates over the sections of a [Store] in store order. The
// zero value is not usable; obtain a SectionIter from [Store.Sections].
//
// An open iterator is invalidated by any mutation of the store. Once
// invalidated, [SectionIter.Next] returns false and [SectionIter.Err]
// returns [ErrStoreMutated].
type SectionIter struct {
	store *Store
	gen   uint64
	// i indexes the current section. It is -1 before the first call to
	// Next, and len(store.sections) after the final one.
	i   int
	err error
}

// Sections returns an iterator over the store's sections.
func (c *Store) Sections() *SectionIter {
	return &SectionIter{
		store: c,
		gen:   c.gen,
		i:     -1,
	}
}

// Next advances the iterator to the next section. It returns false when
// iteration is complete, or when the store has been modified since the
// iterator was obtained; [SectionIter.Err] distinguishes the two.
func (it *SectionIter) Next() bool {
	if it.err != nil {
		return false
	}
	if it.gen != it.store.gen {
		it.err = ErrStoreMutated
		return false
	}
	if it.i >= len(it.store.sections)-1 {
		it.i = len(it.store.sections)
		return false
	}
	it.i++
	return true
}

// Name returns the name of the current section. It panics if called before
// the first call to [SectionIter.Next], or after Next has returned false.
func (it *SectionIter) Name() string {
	if it.i < 0 {
		panic("devcfg: Name called before Next")
	}
	if it.err != nil || it.gen != it.store.gen || it.i >= len(it.store.sections) {
		panic("devcfg: Name called on exhausted or invalidated iterator")
	}
	return it.store.sections[it.i].name
}

// Err returns the error, if any, that invalidated the iterator. It returns
// nil when iteration ended by normal exhaustion.
func (it *SectionIter) Err() error {
	return it.err
}
