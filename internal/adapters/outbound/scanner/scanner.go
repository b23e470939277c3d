// Package scanner walks a project tree and collects the script files the
// gate governs.
package scanner

import (
	"os"
	"path/filepath"

	"github.com/nugate/nugate/internal/domain"
)

var skipDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
	"vendor":       true,
	"dist":         true,
	"target":       true,
	".nugate":      true,
}

// FileScanner walks the filesystem for governed scripts.
type FileScanner struct{}

func New() *FileScanner {
	return &FileScanner{}
}

// Scan returns the governed script files under projectPath, as paths
// relative to the (absolute) root, in walk order.
func (s *FileScanner) Scan(projectPath string, cfg domain.GateConfig) ([]string, string, error) {
	absPath, err := filepath.Abs(projectPath)
	if err != nil {
		return nil, "", err
	}

	var files []string
	err = filepath.WalkDir(absPath, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if skipDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if !cfg.Governs(path) {
			return nil
		}
		relPath, _ := filepath.Rel(absPath, path)
		files = append(files, relPath)
		return nil
	})
	if err != nil {
		return nil, "", err
	}

	return files, absPath, nil
}
