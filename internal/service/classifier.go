package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

// Candidate is one classification candidate.
type Candidate struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
}

// Classifier identifies a food item from image bytes. Implementations return
// one candidate per known label, in label-index order.
type Classifier interface {
	Classify(ctx context.Context, image []byte) ([]Candidate, error)
}

// HTTPClassifier talks to the external inference service. The service
// receives the image as a multipart upload and answers with a score per
// label; labels come from the label map loaded at startup.
type HTTPClassifier struct {
	url    string
	labels []string
	client *http.Client
}

func NewHTTPClassifier(url string, labels []string) *HTTPClassifier {
	return &HTTPClassifier{
		url:    url,
		labels: labels,
		client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

type classifierResponse struct {
	Scores []float64 `json:"scores"`
}

func (c *HTTPClassifier) Classify(ctx context.Context, image []byte) ([]Candidate, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("image", "image")
	if err != nil {
		return nil, fmt.Errorf("failed to build request body: %w", err)
	}
	if _, err := part.Write(image); err != nil {
		return nil, fmt.Errorf("failed to build request body: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to build request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, &buf)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach classifier: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read classifier response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("classifier returned status %d: %s", resp.StatusCode, string(body))
	}

	var result classifierResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to decode classifier response: %w", err)
	}
	if len(result.Scores) != len(c.labels) {
		return nil, fmt.Errorf("classifier returned %d scores for %d labels", len(result.Scores), len(c.labels))
	}

	candidates := make([]Candidate, len(c.labels))
	for i, label := range c.labels {
		candidates[i] = Candidate{Label: label, Confidence: result.Scores[i]}
	}

	return candidates, nil
}
