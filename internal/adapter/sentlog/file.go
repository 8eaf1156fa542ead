package sentlog

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"leetcode-digest/internal/domain/model"
	"leetcode-digest/internal/domain/ports"
)

// FileStore keeps sent titles in a newline-delimited, append-only text file.
// Duplicate lines are harmless; dedup happens at selection time.
type FileStore struct {
	path string
}

var _ ports.SentStore = (*FileStore)(nil)

// NewFileStore creates a store backed by path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load returns every non-blank trimmed line. A missing file is created empty.
func (s *FileStore) Load(_ context.Context) (model.SentTitles, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		created, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("create sent log: %w", err)
		}
		if err := created.Close(); err != nil {
			return nil, fmt.Errorf("close sent log: %w", err)
		}
		return model.SentTitles{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open sent log: %w", err)
	}
	defer f.Close()

	titles := model.SentTitles{}
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			titles[line] = struct{}{}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read sent log: %w", err)
	}
	return titles, nil
}

// Append writes one title per line, skipping blank titles. Whitespace runs
// inside a title are folded to single spaces so it reloads as the same key.
func (s *FileStore) Append(_ context.Context, titles []string) error {
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open sent log: %w", err)
	}

	w := bufio.NewWriter(f)
	for _, title := range titles {
		title = strings.Join(strings.Fields(title), " ")
		if title == "" {
			continue
		}
		if _, err := w.WriteString(title + "\n"); err != nil {
			f.Close()
			return fmt.Errorf("write sent log: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("flush sent log: %w", err)
	}
	return f.Close()
}
