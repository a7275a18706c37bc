// Package filex prepares the on-disk locations used by the console: the
// cookie state database and the TUI log file.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
)

const dirPerm = 0o770

// EnsureParentDir creates the directory that will hold file, including
// missing parents. A bare file name lives in the working directory and
// needs nothing.
func EnsureParentDir(file string) error {
	dir := filepath.Dir(file)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return nil
}
