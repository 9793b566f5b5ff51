package ingest

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// FileInfo describes a discovered input file.
type FileInfo struct {
	Path    string
	Name    string
	Size    int64
	ModTime time.Time
}

// Discovery finds pipeline input files under a base path.
type Discovery struct {
	basePath string
}

// NewDiscovery creates a file discovery instance.
func NewDiscovery(basePath string) *Discovery {
	return &Discovery{basePath: basePath}
}

// tabularExtensions are the input formats the boundary decodes.
var tabularExtensions = map[string]struct{}{
	".xlsx": {},
	".xls":  {},
	".csv":  {},
}

// FindTabularFiles finds all supported input files in the directory,
// sorted by modification time, oldest first.
func (d *Discovery) FindTabularFiles(dir string) ([]FileInfo, error) {
	fullPath := dir
	if !filepath.IsAbs(dir) {
		fullPath = filepath.Join(d.basePath, dir)
	}

	entries, err := os.ReadDir(fullPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", fullPath, err)
	}

	var files []FileInfo
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if _, ok := tabularExtensions[ext]; !ok {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		files = append(files, FileInfo{
			Path:    filepath.Join(fullPath, name),
			Name:    name,
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].ModTime.Before(files[j].ModTime)
	})

	return files, nil
}
