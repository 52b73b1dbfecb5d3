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

// Package filesystem provides an abstraction around a filesystem, covering
// just the operations needed to read and atomically replace configuration
// files.
package filesystem

import (
	"io"
	"os"
)

// Filesystem is a filesystem implementation.
type Filesystem interface {
	Open(name string) (File, error)
	TempFile(dir, pattern string) (File, error)
	Rename(oldpath, newpath string) error
	Remove(name string) error
}

// File represents an open file.
type File interface {
	io.Reader
	io.Writer
	io.Closer
	Name() string
	Sync() error
}

type defaultFS struct{}

var _ Filesystem = &defaultFS{}

var _ File = &os.File{}

func (fs *defaultFS) Open(name string) (File, error) {
	return os.Open(name)
}

func (fs *defaultFS) TempFile(dir, pattern string) (File, error) {
	return os.CreateTemp(dir, pattern)
}

func (fs *defaultFS) Rename(oldpath, newpath string) error {
	return os.Rename(oldpath, newpath)
}

func (fs *defaultFS) Remove(name string) error {
	return os.Remove(name)
}

// Default returns the default filesystem implementation, backed by package
// [os].
func Default() Filesystem {
	return &defaultFS{}
}
