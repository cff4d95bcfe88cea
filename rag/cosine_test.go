package rag

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float32
		expected float32
	}{
		{name: "identical", a: []float32{1, 2, 3}, b: []float32{1, 2, 3}, expected: 1},
		{name: "orthogonal", a: []float32{1, 0}, b: []float32{0, 1}, expected: 0},
		{name: "opposite", a: []float32{1, 0}, b: []float32{-1, 0}, expected: -1},
		{name: "zero vector", a: []float32{0, 0, 0}, b: []float32{1, 2, 3}, expected: 0},
		{name: "both zero", a: []float32{0, 0}, b: []float32{0, 0}, expected: 0},
		{name: "length mismatch", a: []float32{1, 2}, b: []float32{1, 2, 3}, expected: 0},
		{name: "empty", a: nil, b: nil, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, CosineSimilarity(tt.a, tt.b), 1e-6)
		})
	}
}

func TestCosineSimilarityScaleInvariant(t *testing.T) {
	a := []float32{0.3, 0.7, 0.1}
	scaled := []float32{0.6, 1.4, 0.2}

	assert.InDelta(t, 1.0, CosineSimilarity(a, scaled), 1e-6,
		"cosine similarity should ignore magnitude")
}
