package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alan/pr-showcase/internal/contrib"
)

// ParseRefArgs parses pull request references given on the command line
func ParseRefArgs(args []string) ([]contrib.Ref, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("at least one pull request reference is required")
	}

	refs := make([]contrib.Ref, 0, len(args))
	for _, arg := range args {
		ref, err := contrib.ParseRef(arg)
		if err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	return refs, nil
}

// ValidateDistinctPaths rejects an output path that points at the input document
func ValidateDistinctPaths(input, output string) error {
	in, err := filepath.Abs(input)
	if err != nil {
		return fmt.Errorf("failed to resolve input path: %w", err)
	}
	out, err := filepath.Abs(output)
	if err != nil {
		return fmt.Errorf("failed to resolve output path: %w", err)
	}
	if in == out {
		return fmt.Errorf("output path %s must differ from input path", output)
	}
	return nil
}

// WriteDocument writes a full document in one go
func WriteDocument(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil { //nolint:gosec // Output is a public markdown document
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// ReadDocument reads a full document
func ReadDocument(path string) (string, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Path is from command-line flag
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}
