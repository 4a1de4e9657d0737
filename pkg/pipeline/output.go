package pipeline

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/doctran/archdiag/pkg/catalog"
)

// OutputPath returns where an entry's artifact of the given format is
// written: <root>/<entry dir>/<name>.<format>, or <root>/<name>.<format>
// when flat is set.
func OutputPath(root string, e catalog.Entry, format string, flat bool) string {
	if flat {
		return filepath.Join(root, e.Name+"."+format)
	}
	return filepath.Join(root, filepath.FromSlash(e.Path())+"."+format)
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
