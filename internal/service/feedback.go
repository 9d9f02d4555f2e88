package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FeedbackRecord is one user correction to a classification result.
type FeedbackRecord struct {
	ImageName      string  `json:"image_name"`
	CorrectLabel   string  `json:"correct_label"`
	PredictedLabel string  `json:"predicted_label"`
	Confidence     float64 `json:"confidence"`
}

// FeedbackLog is an unbounded append-only log backed by a JSON array file.
// Writes are serialized through a mutex and land via temp-file rename, so a
// crashed write never truncates the log. Repeated identical feedback
// produces repeated entries; there is no deduplication.
type FeedbackLog struct {
	path string
	mu   sync.Mutex
}

func NewFeedbackLog(path string) *FeedbackLog {
	return &FeedbackLog{path: path}
}

// Append adds one record to the log.
func (l *FeedbackLog) Append(ctx context.Context, record FeedbackRecord) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	records, err := l.read()
	if err != nil {
		return err
	}

	records = append(records, record)

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode feedback log: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return fmt.Errorf("failed to create feedback directory: %w", err)
	}

	tmp := l.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write feedback log: %w", err)
	}
	if err := os.Rename(tmp, l.path); err != nil {
		return fmt.Errorf("failed to replace feedback log: %w", err)
	}

	return nil
}

// Entries returns every recorded correction, oldest first.
func (l *FeedbackLog) Entries() ([]FeedbackRecord, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.read()
}

func (l *FeedbackLog) read() ([]FeedbackRecord, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []FeedbackRecord{}, nil
		}
		return nil, fmt.Errorf("failed to read feedback log: %w", err)
	}

	var records []FeedbackRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse feedback log: %w", err)
	}
	return records, nil
}
