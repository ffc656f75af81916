package records

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

func Load(path string) ([]Property, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var props []Property
	err = json.Unmarshal(contents, &props)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return props, nil
}

// Save writes the whole collection to path, replacing any previous contents.
// The file is written beside its destination and renamed into place so an
// interrupted write never leaves a truncated checkpoint behind.
func Save(path string, props []Property) error {
	if props == nil {
		props = []Property{}
	}
	serialized, err := json.MarshalIndent(props, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	err = os.MkdirAll(dir, 0755)
	if err != nil {
		return fmt.Errorf("could not create output dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	_, err = tmp.Write(append(serialized, '\n'))
	if err != nil {
		tmp.Close()
		return err
	}
	err = tmp.Close()
	if err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// File is a checkpoint bound to a single path.
type File struct {
	Path string
}

func NewFile(path string) File {
	return File{Path: path}
}

func (f File) Save(props []Property) error {
	return Save(f.Path, props)
}

func (f File) Load() ([]Property, error) {
	return Load(f.Path)
}
