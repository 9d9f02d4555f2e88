package service_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bhojanbuddy/backend/internal/service"
)

func TestFeedbackAppend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feedback.json")
	log := service.NewFeedbackLog(path)

	record := service.FeedbackRecord{
		ImageName:      "upload.jpg",
		CorrectLabel:   "idli",
		PredictedLabel: "samosa",
		Confidence:     0.82,
	}
	require.NoError(t, log.Append(context.Background(), record))

	entries, err := log.Entries()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, record, entries[0])

	// The file on disk is a plain JSON array.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var raw []map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "idli", raw[0]["correct_label"])
}

func TestFeedbackAppendKeepsDuplicates(t *testing.T) {
	log := service.NewFeedbackLog(filepath.Join(t.TempDir(), "feedback.json"))

	record := service.FeedbackRecord{
		ImageName:      "upload.jpg",
		CorrectLabel:   "idli",
		PredictedLabel: "samosa",
		Confidence:     0.82,
	}
	require.NoError(t, log.Append(context.Background(), record))
	require.NoError(t, log.Append(context.Background(), record))

	entries, err := log.Entries()
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestFeedbackMissingFileIsEmpty(t *testing.T) {
	log := service.NewFeedbackLog(filepath.Join(t.TempDir(), "feedback.json"))

	entries, err := log.Entries()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestFeedbackCreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "feedback.json")
	log := service.NewFeedbackLog(path)

	require.NoError(t, log.Append(context.Background(), service.FeedbackRecord{
		ImageName:      "a.jpg",
		CorrectLabel:   "dosa",
		PredictedLabel: "idli",
		Confidence:     0.5,
	}))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}
