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
	"io"

	"github.com/go-devcfg/devcfg/filesystem"
)

// ReadChecksum returns the contents of the checksum file at path, verbatim.
// The checksum is an opaque string maintained alongside a configuration
// file by the caller; no hashing or verification is performed here.
func ReadChecksum(path string, fs ...filesystem.Filesystem) (string, error) {
	f, err := pickFS(fs).Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	b, err := io.ReadAll(f)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// SaveChecksum writes checksum to the file at path, atomically, in the same
// manner as [Store.Save].
func SaveChecksum(checksum, path string, fs ...filesystem.Filesystem) error {
	return atomicWriteFile(pickFS(fs), path, func(f filesystem.File) error {
		_, err := io.WriteString(f, checksum)
		return err
	})
}
