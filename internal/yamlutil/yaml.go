// Package yamlutil wraps YAML parsing to isolate the external dependency.
// This allows swapping the underlying YAML library without modifying callers.
package yamlutil

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
)

// MaxInputSize limits YAML input to prevent memory exhaustion (default 1MB).
var MaxInputSize = 1 << 20

// frontMatterFence opens and closes a front matter block.
const frontMatterFence = "---"

var (
	ErrNilData        = errors.New("yamlutil: nil or empty data")
	ErrNilDestination = errors.New("yamlutil: nil destination pointer")
	ErrInputTooLarge  = errors.New("yamlutil: input exceeds maximum size")
)

func validateInput(data []byte, v any) error {
	if len(data) == 0 {
		return ErrNilData
	}
	if len(data) > MaxInputSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxInputSize)
	}
	if v == nil {
		return ErrNilDestination
	}
	return nil
}

func Unmarshal(data []byte, v any) error {
	if err := validateInput(data, v); err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}

// UnmarshalStrict rejects unknown fields in the input.
func UnmarshalStrict(data []byte, v any) error {
	if err := validateInput(data, v); err != nil {
		return err
	}
	if err := yaml.UnmarshalWithOptions(data, v, yaml.Strict()); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}

// SplitFrontMatter separates a leading "---" fenced YAML block from the
// document body. Content must use \n line endings.
// ok is false when content has no complete front matter block, in which
// case body is content unchanged.
func SplitFrontMatter(content string) (front, body string, ok bool) {
	rest, found := strings.CutPrefix(content, frontMatterFence+"\n")
	if !found {
		return "", content, false
	}

	// Closing fence directly after the opening one: empty front matter
	if after, found := strings.CutPrefix(rest, frontMatterFence); found && (after == "" || after[0] == '\n') {
		return "", strings.TrimPrefix(after, "\n"), true
	}

	idx := strings.Index(rest, "\n"+frontMatterFence)
	for idx != -1 {
		end := idx + 1 + len(frontMatterFence)
		if end == len(rest) || rest[end] == '\n' {
			return rest[:idx+1], strings.TrimPrefix(rest[end:], "\n"), true
		}
		next := strings.Index(rest[end:], "\n"+frontMatterFence)
		if next == -1 {
			break
		}
		idx = end + next
	}

	return "", content, false
}
