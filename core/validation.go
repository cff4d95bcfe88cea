// Copyright 2025 Elysia Education
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package core

import (
	"fmt"
	"time"
)

// MinAnalyzableTextLength is the minimum raw text length (in bytes) a
// document must have before the pipeline attempts an analysis.
const MinAnalyzableTextLength = 50

// ValidateDocument validates a Document according to domain rules.
//
// Validation rules:
//   - RawText must not be empty
//   - Status must be a valid DocumentStatus
//   - SubmittedAt must not be in the future
//
// NOT validated (populated by the pipeline):
//   - CompletedAt (zero until the run completes)
//   - ErrorMessage / ErrorSample (set only on failed runs)
//   - ID (0 is valid from database sequences)
func ValidateDocument(doc *Document) error {
	if doc == nil {
		return fmt.Errorf("%w: document is nil", ErrInvalidDocument)
	}

	if doc.RawText == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, ErrEmptyText)
	}

	if err := ValidateStatus(doc.Status); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	if !IsValidTimestamp(doc.SubmittedAt) {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, ErrInvalidTimestamp)
	}

	return nil
}

// ValidateAnalysis validates an Analysis according to domain rules.
//
// Validation rules:
//   - DocumentId must be set
//   - OverallScore must be within [0,10]
//   - every CompetencyScore must be within [0,10]
//
// NOT validated:
//   - RetrievedContext (empty on a fresh store is normal)
//   - ID (0 is valid from database sequences)
func ValidateAnalysis(analysis *Analysis) error {
	if analysis == nil {
		return fmt.Errorf("%w: analysis is nil", ErrInvalidAnalysis)
	}

	if analysis.DocumentId == 0 {
		return fmt.Errorf("%w: document id required", ErrInvalidAnalysis)
	}

	if analysis.OverallScore < 0 || analysis.OverallScore > 10 {
		return fmt.Errorf("%w: overall: %w", ErrInvalidAnalysis, ErrScoreOutOfRange)
	}

	for _, cs := range analysis.CompetencyScores {
		if cs.Score < 0 || cs.Score > 10 {
			return fmt.Errorf("%w: %s: %w", ErrInvalidAnalysis, cs.Name, ErrScoreOutOfRange)
		}
	}

	return nil
}

// ValidateCorpusExample validates a CorpusExample according to domain rules.
func ValidateCorpusExample(example *CorpusExample) error {
	if example == nil {
		return fmt.Errorf("%w: example is nil", ErrInvalidCorpusExample)
	}

	if example.Text == "" {
		return fmt.Errorf("%w: %w", ErrInvalidCorpusExample, ErrEmptyText)
	}

	switch example.Category {
	case CategoryExemplary, CategoryCommon, CategoryProblematic:
	default:
		return fmt.Errorf("%w: %w: %q", ErrInvalidCorpusExample, ErrInvalidCategory, example.Category)
	}

	if example.QualityLevel < 0 || example.QualityLevel > 10 {
		return fmt.Errorf("%w: %w", ErrInvalidCorpusExample, ErrScoreOutOfRange)
	}

	return nil
}

// ValidateStatus validates that a DocumentStatus has a valid value.
func ValidateStatus(status DocumentStatus) error {
	switch status {
	case StatusPending, StatusProcessing, StatusCompleted, StatusError:
		return nil
	default:
		return fmt.Errorf("%w: value %d", ErrInvalidStatus, status)
	}
}

// IsValidTimestamp checks if a timestamp is valid (not in the future).
func IsValidTimestamp(ts time.Time) bool {
	return !ts.After(time.Now())
}
