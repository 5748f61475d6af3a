package llmdutil

import (
	"os"
	"path/filepath"
)

// FindWDFile walks up from the current working directory looking for a file
// or directory named name, returning its FileInfo and full path. Used by
// cmd/llmdc to locate an implicit config file (e.g. ".llmdc.yaml") without
// requiring an explicit --config flag.
func FindWDFile(name string) (os.FileInfo, string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return nil, "", err
	}
	for {
		full := filepath.Join(dir, name)
		if fi, err := os.Stat(full); err == nil {
			return fi, full, nil
		} else if !os.IsNotExist(err) {
			return nil, "", err
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, "", os.ErrNotExist
		}
		dir = parent
	}
}
