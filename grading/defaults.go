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


package grading

import "github.com/elysia-edu/essayd/core"

// DefaultOverallScore is substituted when the scoring service omits an
// overall grade.
const DefaultOverallScore = 7.0

// defaultJustification marks scores that were not produced by the scoring
// service.
const defaultJustification = "Automatic analysis based on general text characteristics."

// DefaultRubric returns the five-competency rubric with neutral default
// scores. It is substituted whenever the scoring service returns no
// competency breakdown, so every completed analysis carries a full rubric.
// Returns a fresh slice on each call; callers may mutate it.
func DefaultRubric() []core.CompetencyScore {
	return []core.CompetencyScore{
		{Name: "Command of formal writing", Score: 6.5, Justification: defaultJustification},
		{Name: "Comprehension of the prompt", Score: 8.0, Justification: defaultJustification},
		{Name: "Argumentation", Score: 7.0, Justification: defaultJustification},
		{Name: "Textual cohesion", Score: 7.5, Justification: defaultJustification},
		{Name: "Intervention proposal", Score: 6.0, Justification: defaultJustification},
	}
}
