// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package datajs

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

var (
	// ErrFileNotFound means the target data file does not exist.
	ErrFileNotFound = errors.New("data file not found")

	// ErrBlockNotFound means the data file has no declaration with the
	// expected name. Patch never falls back to appending.
	ErrBlockNotFound = errors.New("publications block not found")
)

// FindBlock locates the first `const <name> = [` declaration in content and
// returns the byte span through its first `];` terminator. Terminators inside
// string literals, line comments and block comments are not counted.
func FindBlock(content, name string) (start, end int, ok bool) {
	marker := "const " + name + " = ["
	start = strings.Index(content, marker)
	if start < 0 {
		return 0, 0, false
	}

	i := start + len(marker)
	for i < len(content) {
		switch c := content[i]; c {
		case '"', '\'', '`':
			i = skipString(content, i)
			continue
		case '/':
			if strings.HasPrefix(content[i:], "//") {
				nl := strings.IndexByte(content[i:], '\n')
				if nl < 0 {
					return 0, 0, false
				}
				i += nl + 1
				continue
			}
			if strings.HasPrefix(content[i:], "/*") {
				closing := strings.Index(content[i+2:], "*/")
				if closing < 0 {
					return 0, 0, false
				}
				i += 2 + closing + 2
				continue
			}
		case ']':
			if i+1 < len(content) && content[i+1] == ';' {
				return start, i + 2, true
			}
		}
		i++
	}
	return 0, 0, false
}

// skipString returns the index just past the string literal opening at i.
// An unterminated literal runs to the end of content.
func skipString(content string, i int) int {
	quote := content[i]
	for i++; i < len(content); i++ {
		switch content[i] {
		case '\\':
			i++
		case quote:
			return i + 1
		}
	}
	return len(content)
}

// ReadBlock returns the current declaration block of the file at path.
func ReadBlock(path, name string) (string, error) {
	content, _, err := readTarget(path)
	if err != nil {
		return "", err
	}
	start, end, ok := FindBlock(content, name)
	if !ok {
		return "", fmt.Errorf("%w: %q in %s", ErrBlockNotFound, "const "+name, path)
	}
	return content[start:end], nil
}

// Patch replaces the first declaration block named name in the file at path
// with block and writes the file back in place. Content outside the block is
// left untouched. When no block exists the file is not modified.
func Patch(path, name, block string) error {
	content, mode, err := readTarget(path)
	if err != nil {
		return err
	}

	start, end, ok := FindBlock(content, name)
	if !ok {
		return fmt.Errorf("%w: %q in %s", ErrBlockNotFound, "const "+name, path)
	}

	updated := content[:start] + block + content[end:]
	if err := os.WriteFile(path, []byte(updated), mode); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func readTarget(path string) (string, os.FileMode, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", 0, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return "", 0, fmt.Errorf("checking %s: %w", path, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", 0, fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), info.Mode().Perm(), nil
}
