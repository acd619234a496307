package filesystem

import (
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// checksumChunk is the read size used when hashing pack files
const checksumChunk = 128 * md5.BlockSize

// PackStore implements ports.PackStore in a directory
type PackStore struct {
	dir string
}

// NewPackStore creates a store writing into dir ("" means the working directory)
func NewPackStore(dir string) *PackStore {
	if dir == "" {
		dir = "."
	}
	return &PackStore{dir: ExpandHome(dir)}
}

// Path returns the location of a pack file
func (s *PackStore) Path(name string) string {
	return filepath.Join(s.dir, name)
}

// Checksum returns the hex md5 of a pack file, streamed in fixed-size chunks
func (s *PackStore) Checksum(name string) (string, bool, error) {
	f, err := os.Open(s.Path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to open %s: %w", name, err)
	}
	defer f.Close()

	h := md5.New()
	buf := make([]byte, checksumChunk)
	for {
		n, err := f.Read(buf)
		h.Write(buf[:n])
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", true, fmt.Errorf("failed to hash %s: %w", name, err)
		}
	}
	return hex.EncodeToString(h.Sum(nil)), true, nil
}

// Remove deletes a pack file
func (s *PackStore) Remove(name string) error {
	return os.Remove(s.Path(name))
}

// Write creates a pack file with the given content
func (s *PackStore) Write(name string, content []byte) error {
	return os.WriteFile(s.Path(name), content, 0644)
}
