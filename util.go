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
	"path/filepath"

	"github.com/go-devcfg/devcfg/filesystem"
)

// pickFS returns the first non-nil filesystem in fs, or the default
// filesystem.
func pickFS(fs []filesystem.Filesystem) filesystem.Filesystem {
	if len(fs) > 0 && fs[0] != nil {
		return fs[0]
	}
	return filesystem.Default()
}

// atomicWriteFile writes a file by calling write on a temp file in path's
// directory, syncing it, and renaming it into place. The temp file is
// removed if any step fails.
func atomicWriteFile(vfs filesystem.Filesystem, path string, write func(filesystem.File) error) (err error) {
	f, err := vfs.TempFile(filepath.Dir(path), ".tmp."+filepath.Base(path)+"-")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = vfs.Remove(f.Name())
		}
	}()
	if err = write(f); err != nil {
		_ = f.Close()
		return err
	}
	if err = f.Sync(); err != nil {
		_ = f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	return vfs.Rename(f.Name(), path)
}
