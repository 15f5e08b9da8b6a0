package storage

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

const partSuffix = ".part"

// Storage is the flat output directory. A file that exists under its final
// name is considered done; in-progress writes live under a ".part" name.
type Storage struct {
	dir string
}

func NewStorage(dir string) (*Storage, error) {
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return nil, errors.Wrap(err, "create output directory")
	}
	return &Storage{dir: dir}, nil
}

func (s *Storage) Dir() string {
	return s.dir
}

func (s *Storage) Path(name string) string {
	return filepath.Join(s.dir, name)
}

func checkName(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return errors.Errorf("invalid file name %q", name)
	}
	return nil
}

func (s *Storage) Exists(name string) bool {
	if checkName(name) != nil {
		return false
	}
	_, err := os.Stat(s.Path(name))
	return err == nil
}

// PendingFile is written under a temporary name and only appears under its
// final name after Commit.
type PendingFile struct {
	file  *os.File
	final string
}

func (s *Storage) Create(name string) (*PendingFile, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}
	final := s.Path(name)
	file, err := os.Create(final + partSuffix)
	if err != nil {
		return nil, errors.Wrap(err, "create file")
	}
	return &PendingFile{file: file, final: final}, nil
}

func (f *PendingFile) Write(p []byte) (int, error) {
	return f.file.Write(p)
}

func (f *PendingFile) Commit() error {
	if err := f.file.Close(); err != nil {
		_ = os.Remove(f.file.Name())
		return errors.Wrap(err, "close file")
	}
	if err := os.Rename(f.file.Name(), f.final); err != nil {
		_ = os.Remove(f.file.Name())
		return errors.Wrap(err, "move file into place")
	}
	return nil
}

// Abort discards everything written so far.
func (f *PendingFile) Abort() {
	_ = f.file.Close()
	_ = os.Remove(f.file.Name())
}

func (s *Storage) SaveText(name string, text string) error {
	f, err := s.Create(name)
	if err != nil {
		return err
	}
	if _, err = f.Write([]byte(text)); err != nil {
		f.Abort()
		return errors.Wrap(err, "write file")
	}
	return f.Commit()
}
