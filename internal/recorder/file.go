package recorder

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"github.com/atinyakov/go-submission-handler/internal/models"
)

// FileRecorder appends submissions to a JSON Lines file.
type FileRecorder struct {
	mu     sync.Mutex
	file   *os.File
	logger *zap.Logger
}

// NewFileRecorder opens (or creates) the journal at p, creating parent
// directories as needed.
func NewFileRecorder(p string, logger *zap.Logger) (*FileRecorder, error) {
	if err := os.MkdirAll(filepath.Dir(p), 0770); err != nil {
		return nil, fmt.Errorf("create journal directory: %w", err)
	}

	file, err := os.OpenFile(p, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0660)
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}

	logger.Info("submission journal opened", zap.String("path", p))

	return &FileRecorder{
		file:   file,
		logger: logger,
	}, nil
}

// Record appends s as a single line.
func (r *FileRecorder) Record(_ context.Context, s models.Submission) error {
	b, err := json.Marshal(s)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	_, err = r.file.Write(append(b, '\n'))
	return err
}

// ReadAll returns every submission stored in the journal.
func (r *FileRecorder) ReadAll() ([]models.Submission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := r.file.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	// Lines are as long as the largest accepted body, so decode the
	// stream instead of scanning it line by line.
	var submissions []models.Submission
	dec := json.NewDecoder(r.file)
	for dec.More() {
		var s models.Submission
		if err := dec.Decode(&s); err != nil {
			return nil, fmt.Errorf("failed to parse journal entry %d: %w", len(submissions)+1, err)
		}
		submissions = append(submissions, s)
	}

	return submissions, nil
}

// Close closes the underlying file.
func (r *FileRecorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.file.Close()
}
