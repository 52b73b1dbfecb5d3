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

// Package devcfg provides an in-memory store for device configuration,
// organized as named sections of key/value string pairs, together with a
// parser and serializer for a line-oriented, INI-style file format:
//
//	; a comment
//	# also a comment
//	[SectionName]
//	key=value
//
// Key/value pairs appearing before the first section header are filed under
// [DefaultSection]. A repeated section header reopens the existing section,
// and a key repeated within a section keeps only the value seen last. Lines
// that are neither blank, comments, section headers, nor key/value pairs are
// skipped. Comments and original formatting are not preserved across a
// load-then-save cycle; saving always produces the canonical form.
//
// All values are stored as strings. Typed access, falling back to a
// caller-supplied default on absent or unparsable values, is provided by
// accessors such as [Store.GetBool] and [Store.GetInt].
//
// A Store is not safe for concurrent use. Callers sharing a Store across
// goroutines must provide their own locking.
package devcfg
