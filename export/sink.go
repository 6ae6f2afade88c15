// This file is part of tmdsgen.
//
// tmdsgen is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// tmdsgen is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with tmdsgen.  If not, see <https://www.gnu.org/licenses/>.

package export

import (
	"archive/tar"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/klauspost/compress/zstd"

	"github.com/jetsetilly/tmdsgen/curated"
)

// Sink is the destination for artefacts.
type Sink interface {
	// Write the words as a little-endian file with the specified name
	Write(name string, words []uint32) error

	// Close the sink. No more writes are possible after Close()
	Close() error
}

// Bytes returns the words as a little-endian byte slice.
func Bytes(words []uint32) []byte {
	b := make([]byte, 0, len(words)*4)
	for _, w := range words {
		b = binary.LittleEndian.AppendUint32(b, w)
	}
	return b
}

// Words is the inverse of Bytes(). The length of the byte slice must be a
// multiple of four.
func Words(b []byte) ([]uint32, error) {
	if len(b)%4 != 0 {
		return nil, curated.Errorf(curated.InvalidInput, fmt.Sprintf("export: %d bytes is not a whole number of words", len(b)))
	}
	w := make([]uint32, 0, len(b)/4)
	for i := 0; i < len(b); i += 4 {
		w = append(w, binary.LittleEndian.Uint32(b[i:]))
	}
	return w, nil
}

// checkName makes sure the name of an artefact is a plain file name.
func checkName(name string) error {
	if name == "" || name != filepath.Base(name) || strings.ContainsAny(name, `/\`) {
		return curated.Errorf(curated.InvalidInput, fmt.Sprintf("export: %q is not a file name", name))
	}
	return nil
}

// Dir writes each artefact to a separate file in a directory.
type Dir struct {
	path string
}

// NewDir creates the directory if it does not exist.
func NewDir(path string) (*Dir, error) {
	if err := os.MkdirAll(path, 0755); err != nil {
		return nil, curated.Errorf("export: %v", err)
	}
	return &Dir{path: path}, nil
}

// Write implements the Sink interface.
func (d *Dir) Write(name string, words []uint32) error {
	if err := checkName(name); err != nil {
		return err
	}
	err := os.WriteFile(filepath.Join(d.path, name), Bytes(words), 0644)
	if err != nil {
		return curated.Errorf("export: %v", err)
	}
	return nil
}

// Close implements the Sink interface.
func (d *Dir) Close() error {
	return nil
}

// Bundle writes every artefact to a single tar archive compressed with zstd.
type Bundle struct {
	enc *zstd.Encoder
	tw  *tar.Writer

	// the modification time of every file in the archive
	modTime time.Time
}

// NewBundle creates a bundle that writes to w. The bundle must be closed for
// the archive to be complete. Closing the bundle does not close w.
func NewBundle(w io.Writer) (*Bundle, error) {
	enc, err := zstd.NewWriter(w, zstd.WithEncoderConcurrency(runtime.NumCPU()))
	if err != nil {
		return nil, curated.Errorf("export: %v", err)
	}

	return &Bundle{
		enc:     enc,
		tw:      tar.NewWriter(enc),
		modTime: time.Now(),
	}, nil
}

// Write implements the Sink interface.
func (b *Bundle) Write(name string, words []uint32) error {
	if err := checkName(name); err != nil {
		return err
	}

	data := Bytes(words)
	hdr := &tar.Header{
		Name:    name,
		Mode:    0644,
		Size:    int64(len(data)),
		ModTime: b.modTime,
	}
	if err := b.tw.WriteHeader(hdr); err != nil {
		return curated.Errorf("export: %v", err)
	}
	if _, err := b.tw.Write(data); err != nil {
		return curated.Errorf("export: %v", err)
	}
	return nil
}

// Close implements the Sink interface.
func (b *Bundle) Close() error {
	err := b.tw.Close()
	if cerr := b.enc.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return curated.Errorf("export: %v", err)
	}
	return nil
}

// File is an artefact read back from a bundle.
type File struct {
	Name  string
	Words []uint32
}

// ReadBundle returns every artefact in a bundle in the order they were written.
func ReadBundle(r io.Reader) ([]File, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, curated.Errorf("export: %v", err)
	}
	defer dec.Close()

	var files []File

	tr := tar.NewReader(dec)
	for {
		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, curated.Errorf("export: %v", err)
		}

		if hdr.Size < 0 || hdr.Size > MaxTableBytes {
			return nil, curated.Errorf(curated.InvalidInput, fmt.Sprintf("export: %s: %d bytes is larger than any table", hdr.Name, hdr.Size))
		}

		data, err := io.ReadAll(tr)
		if err != nil {
			return nil, curated.Errorf("export: %v", err)
		}

		w, err := Words(data)
		if err != nil {
			return nil, curated.Errorf("export: %s: %v", hdr.Name, err)
		}

		files = append(files, File{Name: hdr.Name, Words: w})
	}

	return files, nil
}
