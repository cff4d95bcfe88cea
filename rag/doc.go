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


// Package rag implements retrieval-augmented context gathering for essay
// analysis.
//
// Three collaborators build the retrieval context for a scoring run:
//
//   - EmbeddingService turns essay text into a stored vector, degrading to
//     a zero vector when the embedding provider is unavailable so the
//     pipeline never blocks on embedding failures.
//   - SimilarityIndex ranks stored embeddings against a query vector. It
//     prefers the storage backend's native search capability and falls
//     back to an exhaustive cosine scan when the backend lacks one.
//   - Enricher assembles the final context bundle: similar graded essays,
//     exemplary corpus essays, and deduplicated recommendations.
//
// Enrichment is strictly best-effort. Every failure inside this package
// degrades to a smaller (possibly empty) context bundle rather than an
// error, because a missing context must never fail an analysis run.
package rag
