package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rfagen/boston-concerts/internal/event"
)

// Storage writes the aggregated feed to a JSON file.
type Storage struct {
	path string
}

// New creates a Storage targeting the given file path, creating parent
// directories as needed.
func New(path string) (*Storage, error) {
	// Expand ~ to home directory
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		path = filepath.Join(home, path[2:])
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating output directory: %w", err)
		}
	}

	return &Storage{
		path: path,
	}, nil
}

// Path returns the resolved output path.
func (s *Storage) Path() string {
	return s.path
}

// WriteFeed serializes the event list as a single JSON array.
func (s *Storage) WriteFeed(events []event.Event) error {
	data, err := json.Marshal(events)
	if err != nil {
		return fmt.Errorf("encoding feed: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("writing feed: %w", err)
	}

	return nil
}
