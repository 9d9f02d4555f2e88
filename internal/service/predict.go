package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sort"
)

// ConfidenceThreshold is the fixed cutoff above which a classification is
// accepted without user disambiguation. It is not per-request tunable.
const ConfidenceThreshold = 0.7

// topCandidateCount is how many options an uncertain response offers.
const topCandidateCount = 3

// Classification statuses.
const (
	StatusConfident = "confident"
	StatusUncertain = "uncertain"
)

var ErrNoCandidates = errors.New("classifier returned no candidates")

// PredictResult is the outcome of one classification request. Options is
// populated only for uncertain results; the label, confidence and nutrition
// fields only for confident ones.
type PredictResult struct {
	Status         string
	Options        []Candidate
	PredictedLabel string
	Confidence     float64
	Nutrition      NutritionFacts
}

// PredictService runs the classification-confidence flow: classify, pick the
// top candidates, gate on the threshold, look up nutrition facts.
type PredictService struct {
	classifier Classifier
	catalog    *NutritionCatalog
	uploads    ImageStore
}

func NewPredictService(classifier Classifier, catalog *NutritionCatalog, uploads ImageStore) *PredictService {
	return &PredictService{
		classifier: classifier,
		catalog:    catalog,
		uploads:    uploads,
	}
}

// Predict stores the uploaded image (it feeds later feedback and retraining),
// then classifies it. If the best confidence is strictly below the threshold
// the result is uncertain and carries the top options with no nutrition
// lookup; otherwise it is confident and carries the catalog facts for the
// top label, which resolve to an empty object for unknown labels.
func (s *PredictService) Predict(ctx context.Context, filename string, image []byte) (*PredictResult, error) {
	if s.uploads != nil {
		if _, err := s.uploads.Save(ctx, filename, bytes.NewReader(image)); err != nil {
			return nil, fmt.Errorf("failed to store uploaded image: %w", err)
		}
	}

	candidates, err := s.classifier.Classify(ctx, image)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, ErrNoCandidates
	}

	top := topCandidates(candidates, topCandidateCount)

	if top[0].Confidence < ConfidenceThreshold {
		return &PredictResult{
			Status:  StatusUncertain,
			Options: top,
		}, nil
	}

	best := top[0]
	return &PredictResult{
		Status:         StatusConfident,
		PredictedLabel: best.Label,
		Confidence:     best.Confidence,
		Nutrition:      s.catalog.Lookup(best.Label),
	}, nil
}

// topCandidates picks the k highest-confidence candidates. The sort is
// stable, so ties keep their original label-index order.
func topCandidates(candidates []Candidate, k int) []Candidate {
	top := make([]Candidate, len(candidates))
	copy(top, candidates)

	sort.SliceStable(top, func(i, j int) bool {
		return top[i].Confidence > top[j].Confidence
	})

	if len(top) > k {
		top = top[:k]
	}
	return top
}
