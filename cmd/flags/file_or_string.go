package flags

import (
	"fmt"
	"os"
	"strings"
)

// FileOrString is a flag value holding either a path to a file or the
// contents inline, with "\n" standing for newlines.
type FileOrString string

func (f FileOrString) Bytes() ([]byte, error) {
	value := string(f)

	stat, err := os.Stat(value)
	if err != nil {
		return []byte(strings.ReplaceAll(value, "\\n", "\n")), nil
	}

	if stat.IsDir() {
		return nil, fmt.Errorf("path '%s' is a directory, not a file", value)
	}

	return os.ReadFile(value)
}
