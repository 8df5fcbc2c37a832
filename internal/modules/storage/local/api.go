package local

import (
	"os"
	"path/filepath"
)

// Save writes data to path, creating the parent directory if it does
// not exist. An existing file is overwritten.
func Save(data []byte, path string) error {
	dir := filepath.Dir(path)
	err := os.MkdirAll(dir, 0770)
	if err != nil {
		return err
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	defer file.Close()
	_, err = file.Write(data)
	if err != nil {
		return err
	}
	return nil
}
