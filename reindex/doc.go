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


// Package reindex rebuilds the embedding index for all stored documents.
//
// Reindexing is needed after switching embedding models, since vectors
// from different models are not comparable. The Reindexer walks every
// document in batches, generates fresh embeddings, normalizes them to
// unit length, and upserts them over the old vectors.
//
// Progress is checkpointed per batch, so an interrupted run resumes from
// the last completed batch instead of starting over.
package reindex
