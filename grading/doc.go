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


// Package grading orchestrates essay analysis runs.
//
// The Pipeline owns the document lifecycle: a submitted document moves
// from pending to processing and ends in completed or error. Runs are
// dispatched to a worker pool and bounded by a run timeout; callers poll
// document status rather than waiting on the run.
//
// Inside a run the pipeline embeds the text, gathers retrieval context,
// calls the scoring service, and assembles the persisted analysis. The
// Assemble function is the deterministic core of that last step: whatever
// the scoring service returned (including nothing), it produces a complete
// analysis, substituting the default rubric and marking the result
// Degraded when it had to.
package grading
