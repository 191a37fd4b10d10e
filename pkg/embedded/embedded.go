// Package embedded gives other packages access to the data files embedded by
// the main package.
//
// //go:embed can only reach files below the declaring package, so the
// embed.FS lives in the root embed.go and is handed over through Init.
// Tests can pass any fs.FS (for example fstest.MapFS or os.DirFS).
package embedded

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

var (
	dataFS      fs.FS
	initialized bool
)

// Init installs the data filesystem. Call it at the start of main, before
// loading any configuration.
func Init(data fs.FS) {
	dataFS = data
	initialized = true
}

// IsInitialized reports whether Init has been called.
func IsInitialized() bool {
	return initialized
}

// normalize converts the path to the slash-separated form fs.FS expects.
func normalize(path string) (string, error) {
	path = filepath.ToSlash(path)
	path = strings.TrimPrefix(path, "./")
	if !strings.HasPrefix(path, "data/") {
		return "", fmt.Errorf("unknown resource path prefix: %s (must start with 'data/')", path)
	}
	return path, nil
}

// ReadFile reads a file from the embedded data directory.
// The path must start with "data/".
func ReadFile(path string) ([]byte, error) {
	if !initialized {
		return nil, fmt.Errorf("embedded package not initialized, call Init() first")
	}
	p, err := normalize(path)
	if err != nil {
		return nil, err
	}
	return fs.ReadFile(dataFS, p)
}

// Exists reports whether the file is present in the embedded data directory.
func Exists(path string) bool {
	if !initialized {
		return false
	}
	p, err := normalize(path)
	if err != nil {
		return false
	}
	_, err = fs.Stat(dataFS, p)
	return err == nil
}

// Glob matches files in the embedded data directory.
func Glob(pattern string) ([]string, error) {
	if !initialized {
		return nil, fmt.Errorf("embedded package not initialized, call Init() first")
	}
	p, err := normalize(pattern)
	if err != nil {
		return nil, err
	}
	return fs.Glob(dataFS, p)
}

// reset clears the package state; tests only.
func reset() {
	dataFS = nil
	initialized = false
}
