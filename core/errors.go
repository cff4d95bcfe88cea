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

import "errors"

// Domain validation errors
var (
	// ErrInvalidDocument indicates a Document failed validation.
	ErrInvalidDocument = errors.New("invalid document")

	// ErrInvalidAnalysis indicates an Analysis failed validation.
	ErrInvalidAnalysis = errors.New("invalid analysis")

	// ErrInvalidCorpusExample indicates a CorpusExample failed validation.
	ErrInvalidCorpusExample = errors.New("invalid corpus example")

	// ErrEmptyText indicates the RawText field is empty.
	ErrEmptyText = errors.New("text cannot be empty")

	// ErrTextTooShort indicates the text is below the analyzable minimum.
	ErrTextTooShort = errors.New("text too short for analysis")

	// ErrInvalidStatus indicates an invalid DocumentStatus value.
	ErrInvalidStatus = errors.New("invalid document status")

	// ErrInvalidTransition indicates an illegal status transition.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrScoreOutOfRange indicates a score outside the [0,10] range.
	ErrScoreOutOfRange = errors.New("score must be between 0 and 10")

	// ErrInvalidCategory indicates an unknown corpus example category.
	ErrInvalidCategory = errors.New("invalid corpus category")

	// ErrInvalidTimestamp indicates a timestamp is in the future.
	ErrInvalidTimestamp = errors.New("timestamp cannot be in the future")
)
