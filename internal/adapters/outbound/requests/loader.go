package requests

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/respdiff/respdiff/internal/domain"
)

// FileLoader implements domain.DescriptorLoader for JSON request files.
// Each file holds a JSON array of descriptor objects.
type FileLoader struct{}

// New creates a FileLoader.
func New() *FileLoader { return &FileLoader{} }

// Load reads and validates every file in order. Nothing is returned unless
// all entries of all files are valid.
func (l *FileLoader) Load(paths ...string) ([]domain.Descriptor, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("no request files given")
	}

	var all []domain.Descriptor
	for _, path := range paths {
		descriptors, err := loadFile(path)
		if err != nil {
			return nil, err
		}
		all = append(all, descriptors...)
	}
	return all, nil
}

func loadFile(path string) ([]domain.Descriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading requests from %s: %w", path, err)
	}

	var descriptors []domain.Descriptor
	if err := json.Unmarshal(data, &descriptors); err != nil {
		return nil, fmt.Errorf("decoding JSON from %s: %w", path, err)
	}

	for i, d := range descriptors {
		if err := d.Validate(path, i); err != nil {
			return nil, err
		}
	}
	return descriptors, nil
}

// SplitPaths turns a comma-separated list into file paths, dropping blanks.
func SplitPaths(list string) []string {
	var out []string
	for _, p := range strings.Split(list, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
