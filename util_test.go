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
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"gitlab.com/flimzy/testy"

	"github.com/go-devcfg/devcfg/filesystem"
)

// failFile wraps a real file, failing selected operations.
type failFile struct {
	filesystem.File
	writeErr error
	syncErr  error
	closeErr error
}

func (f *failFile) Write(p []byte) (int, error) {
	if f.writeErr != nil {
		return 0, f.writeErr
	}
	return f.File.Write(p)
}

func (f *failFile) Sync() error {
	if f.syncErr != nil {
		return f.syncErr
	}
	return f.File.Sync()
}

func (f *failFile) Close() error {
	if f.closeErr != nil {
		_ = f.File.Close()
		return f.closeErr
	}
	return f.File.Close()
}

func TestAtomicWriteFile(t *testing.T) {
	type tt struct {
		fs      filesystem.Filesystem
		path    string
		content string
		err     string
	}

	failTempFile := func(t *testing.T, ff func(*os.File) *failFile) (string, filesystem.Filesystem) {
		t.Helper()
		dir := t.TempDir()
		return filepath.Join(dir, "out.conf"), &filesystem.MockFS{
			TempFileFunc: func(_, pattern string) (filesystem.File, error) {
				f, err := os.CreateTemp(dir, pattern)
				if err != nil {
					return nil, err
				}
				return ff(f), nil
			},
			RemoveFunc: os.Remove,
		}
	}

	tests := testy.NewTable()
	tests.Add("success", func(t *testing.T) interface{} {
		return tt{
			fs:      filesystem.Default(),
			path:    filepath.Join(t.TempDir(), "out.conf"),
			content: "payload",
		}
	})
	tests.Add("tempfile failure", tt{
		fs: &filesystem.MockFS{
			TempFileFunc: func(_, _ string) (filesystem.File, error) {
				return nil, errors.New("tempfile failure")
			},
		},
		path: "ignored/out.conf",
		err:  "tempfile failure",
	})
	tests.Add("write failure", func(t *testing.T) interface{} {
		path, vfs := failTempFile(t, func(f *os.File) *failFile {
			return &failFile{File: f, writeErr: errors.New("write failure")}
		})
		return tt{fs: vfs, path: path, content: "payload", err: "write failure"}
	})
	tests.Add("sync failure", func(t *testing.T) interface{} {
		path, vfs := failTempFile(t, func(f *os.File) *failFile {
			return &failFile{File: f, syncErr: errors.New("sync failure")}
		})
		return tt{fs: vfs, path: path, content: "payload", err: "sync failure"}
	})
	tests.Add("close failure", func(t *testing.T) interface{} {
		path, vfs := failTempFile(t, func(f *os.File) *failFile {
			return &failFile{File: f, closeErr: errors.New("close failure")}
		})
		return tt{fs: vfs, path: path, content: "payload", err: "close failure"}
	})
	tests.Add("rename failure", func(t *testing.T) interface{} {
		dir := t.TempDir()
		return tt{
			fs: &filesystem.MockFS{
				TempFileFunc: func(_, pattern string) (filesystem.File, error) {
					return os.CreateTemp(dir, pattern)
				},
				RenameFunc: func(_, _ string) error {
					return errors.New("rename failure")
				},
				RemoveFunc: os.Remove,
			},
			path:    filepath.Join(dir, "out.conf"),
			content: "payload",
			err:     "rename failure",
		}
	})

	tests.Run(t, func(t *testing.T, tt tt) {
		err := atomicWriteFile(tt.fs, tt.path, func(f filesystem.File) error {
			_, err := io.WriteString(f, tt.content)
			return err
		})
		leftovers, globErr := filepath.Glob(filepath.Join(filepath.Dir(tt.path), ".tmp.*"))
		if globErr != nil {
			t.Fatal(globErr)
		}
		if len(leftovers) > 0 {
			t.Errorf("Temp files left behind: %v", leftovers)
		}
		if !testy.ErrorMatches(tt.err, err) {
			t.Errorf("Unexpected error: %s", err)
		}
		if err != nil {
			return
		}
		content, readErr := os.ReadFile(tt.path)
		if readErr != nil {
			t.Fatal(readErr)
		}
		if d := testy.DiffText(tt.content, string(content)); d != nil {
			t.Error(d)
		}
	})
}

func TestPickFS(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		if got := pickFS(nil); got == nil {
			t.Error("pickFS returned nil")
		}
	})
	t.Run("nil entry", func(t *testing.T) {
		if got := pickFS([]filesystem.Filesystem{nil}); got == nil {
			t.Error("pickFS returned nil")
		}
	})
	t.Run("custom", func(t *testing.T) {
		vfs := &filesystem.MockFS{}
		if got := pickFS([]filesystem.Filesystem{vfs}); got != vfs {
			t.Errorf("Unexpected filesystem: %T", got)
		}
	})
}
