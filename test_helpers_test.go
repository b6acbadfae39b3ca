package polint

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// writeCatalog writes a single .po fixture into a fresh temp dir and
// returns its path.
func writeCatalog(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

// writeCatalogDir writes n catalogs into one temp dir. Every third
// catalog carries a renamed option so runs over the dir produce a mix
// of clean and flagged results.
func writeCatalogDir(t *testing.T, n int) (string, []string) {
	t.Helper()
	dir := t.TempDir()
	paths := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		var content string
		if i%3 == 0 {
			content = fmt.Sprintf("msgid \"catalog %d: see --help\"\nmsgstr \"Katalog %d: siehe --hilfe\"\n", i, i)
		} else {
			content = fmt.Sprintf("msgid \"catalog %d: see --help\"\nmsgstr \"Katalog %d: siehe --help\"\n", i, i)
		}
		path := filepath.Join(dir, fmt.Sprintf("cat%03d.po", i))
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("write fixture: %v", err)
		}
		paths = append(paths, path)
	}
	return dir, paths
}
