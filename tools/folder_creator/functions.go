package folder_creator

import (
	"fmt"
	"os"
	"path/filepath"
)

// Result is one folder the batch produced or found already in place.
type Result struct {
	Path    string
	Existed bool
}

// FolderName joins prefix, the zero-padded index and suffix with
// underscores, "test_0001_batch" style.
func FolderName(prefix string, index, padding int, suffix string) string {
	return fmt.Sprintf("%s_%0*d_%s", prefix, padding, index, suffix)
}

// CreateFolders makes count numbered folders under parent, creating
// parent itself first when missing. A folder already in place is kept
// and reported with Existed set; a file squatting on a wanted name
// stops the batch.
func CreateFolders(parent string, count int, prefix, suffix string, padding, start int) ([]Result, error) {
	if err := os.MkdirAll(parent, 0o755); err != nil {
		return nil, fmt.Errorf("create parent folder: %w", err)
	}

	results := make([]Result, 0, count)
	for i := 0; i < count; i++ {
		name := FolderName(prefix, start+i, padding, suffix)
		path := filepath.Join(parent, name)

		if info, err := os.Stat(path); err == nil {
			if !info.IsDir() {
				return results, fmt.Errorf("%s exists and is not a folder", name)
			}
			results = append(results, Result{Path: path, Existed: true})
			continue
		}
		if err := os.Mkdir(path, 0o755); err != nil {
			return results, fmt.Errorf("create %s: %w", name, err)
		}
		results = append(results, Result{Path: path})
	}
	return results, nil
}
