// Code generated by musgen-go. DO NOT EDIT.

package core

import (
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"
)

var (
	slice0MOheJrTQ8mKtVOCQy4QAgΞΞ = ord.NewSliceSer[string](ord.String)
	slice8zqXfIU5ak0yg41prΣFy5wΞΞ = ord.NewSliceSer[int32](varint.Int32)
	sliceV3go6lUksVculfoNyYQfWQΞΞ = ord.NewSliceSer[float32](varint.Float32)
	slicedm41ffdld5xZPjFnto3quQΞΞ = ord.NewSliceSer[GrammarIssue](GrammarIssueMUS)
	slicesNE8vUxLutbVΔl1Ei6tefwΞΞ = ord.NewSliceSer[CompetencyScore](CompetencyScoreMUS)
	sliceΔ1O9w08jp3nA1vXkDmsU1AΞΞ = ord.NewSliceSer[RetrievedContext](RetrievedContextMUS)
)

var IDMUS = iDMUS{}

type iDMUS struct{}

func (s iDMUS) Marshal(v ID, bs []byte) (n int) {
	return varint.Uint64.Marshal(uint64(v), bs)
}

func (s iDMUS) Unmarshal(bs []byte) (v ID, n int, err error) {
	tmp, n, err := varint.Uint64.Unmarshal(bs)
	if err != nil {
		return
	}
	v = ID(tmp)
	return
}

func (s iDMUS) Size(v ID) (size int) {
	return varint.Uint64.Size(uint64(v))
}

func (s iDMUS) Skip(bs []byte) (n int, err error) {
	return varint.Uint64.Skip(bs)
}

var DocumentStatusMUS = documentStatusMUS{}

type documentStatusMUS struct{}

func (s documentStatusMUS) Marshal(v DocumentStatus, bs []byte) (n int) {
	return varint.Int.Marshal(int(v), bs)
}

func (s documentStatusMUS) Unmarshal(bs []byte) (v DocumentStatus, n int, err error) {
	tmp, n, err := varint.Int.Unmarshal(bs)
	if err != nil {
		return
	}
	v = DocumentStatus(tmp)
	return
}

func (s documentStatusMUS) Size(v DocumentStatus) (size int) {
	return varint.Int.Size(int(v))
}

func (s documentStatusMUS) Skip(bs []byte) (n int, err error) {
	return varint.Int.Skip(bs)
}

var DocumentMetadataMUS = documentMetadataMUS{}

type documentMetadataMUS struct{}

func (s documentMetadataMUS) Marshal(v DocumentMetadata, bs []byte) (n int) {
	n = ord.String.Marshal(v.SourceType, bs)
	return n + varint.Int64.Marshal(v.SizeBytes, bs[n:])
}

func (s documentMetadataMUS) Unmarshal(bs []byte) (v DocumentMetadata, n int, err error) {
	v.SourceType, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.SizeBytes, n1, err = varint.Int64.Unmarshal(bs[n:])
	n += n1
	return
}

func (s documentMetadataMUS) Size(v DocumentMetadata) (size int) {
	size = ord.String.Size(v.SourceType)
	return size + varint.Int64.Size(v.SizeBytes)
}

func (s documentMetadataMUS) Skip(bs []byte) (n int, err error) {
	n, err = ord.String.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = varint.Int64.Skip(bs[n:])
	n += n1
	return
}

var DocumentMUS = documentMUS{}

type documentMUS struct{}

func (s documentMUS) Marshal(v Document, bs []byte) (n int) {
	n = IDMUS.Marshal(v.Id, bs)
	n += IDMUS.Marshal(v.OwnerId, bs[n:])
	n += ord.String.Marshal(v.Title, bs[n:])
	n += DocumentStatusMUS.Marshal(v.Status, bs[n:])
	n += raw.TimeUnixMicro.Marshal(v.SubmittedAt, bs[n:])
	n += raw.TimeUnixMicro.Marshal(v.CompletedAt, bs[n:])
	n += ord.String.Marshal(v.RawText, bs[n:])
	n += ord.String.Marshal(v.ErrorMessage, bs[n:])
	n += ord.String.Marshal(v.ErrorSample, bs[n:])
	return n + DocumentMetadataMUS.Marshal(v.Metadata, bs[n:])
}

func (s documentMUS) Unmarshal(bs []byte) (v Document, n int, err error) {
	v.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.OwnerId, n1, err = IDMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Title, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Status, n1, err = DocumentStatusMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.SubmittedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.CompletedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.RawText, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.ErrorMessage, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.ErrorSample, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Metadata, n1, err = DocumentMetadataMUS.Unmarshal(bs[n:])
	n += n1
	return
}

func (s documentMUS) Size(v Document) (size int) {
	size = IDMUS.Size(v.Id)
	size += IDMUS.Size(v.OwnerId)
	size += ord.String.Size(v.Title)
	size += DocumentStatusMUS.Size(v.Status)
	size += raw.TimeUnixMicro.Size(v.SubmittedAt)
	size += raw.TimeUnixMicro.Size(v.CompletedAt)
	size += ord.String.Size(v.RawText)
	size += ord.String.Size(v.ErrorMessage)
	size += ord.String.Size(v.ErrorSample)
	return size + DocumentMetadataMUS.Size(v.Metadata)
}

func (s documentMUS) Skip(bs []byte) (n int, err error) {
	n, err = IDMUS.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = IDMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = DocumentStatusMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = DocumentMetadataMUS.Skip(bs[n:])
	n += n1
	return
}

var EmbeddingMUS = embeddingMUS{}

type embeddingMUS struct{}

func (s embeddingMUS) Marshal(v Embedding, bs []byte) (n int) {
	n = IDMUS.Marshal(v.Id, bs)
	n += IDMUS.Marshal(v.DocumentId, bs[n:])
	n += sliceV3go6lUksVculfoNyYQfWQΞΞ.Marshal(v.Vector, bs[n:])
	n += ord.String.Marshal(v.Snippet, bs[n:])
	n += ord.String.Marshal(v.ModelName, bs[n:])
	return n + raw.TimeUnixMicro.Marshal(v.CreatedAt, bs[n:])
}

func (s embeddingMUS) Unmarshal(bs []byte) (v Embedding, n int, err error) {
	v.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.DocumentId, n1, err = IDMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Vector, n1, err = sliceV3go6lUksVculfoNyYQfWQΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Snippet, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.ModelName, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.CreatedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	return
}

func (s embeddingMUS) Size(v Embedding) (size int) {
	size = IDMUS.Size(v.Id)
	size += IDMUS.Size(v.DocumentId)
	size += sliceV3go6lUksVculfoNyYQfWQΞΞ.Size(v.Vector)
	size += ord.String.Size(v.Snippet)
	size += ord.String.Size(v.ModelName)
	return size + raw.TimeUnixMicro.Size(v.CreatedAt)
}

func (s embeddingMUS) Skip(bs []byte) (n int, err error) {
	n, err = IDMUS.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = IDMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = sliceV3go6lUksVculfoNyYQfWQΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	return
}

var CompetencyScoreMUS = competencyScoreMUS{}

type competencyScoreMUS struct{}

func (s competencyScoreMUS) Marshal(v CompetencyScore, bs []byte) (n int) {
	n = ord.String.Marshal(v.Name, bs)
	n += varint.Float64.Marshal(v.Score, bs[n:])
	n += ord.String.Marshal(v.Justification, bs[n:])
	n += slice0MOheJrTQ8mKtVOCQy4QAgΞΞ.Marshal(v.Strengths, bs[n:])
	return n + slice0MOheJrTQ8mKtVOCQy4QAgΞΞ.Marshal(v.Improvements, bs[n:])
}

func (s competencyScoreMUS) Unmarshal(bs []byte) (v CompetencyScore, n int, err error) {
	v.Name, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Score, n1, err = varint.Float64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Justification, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Strengths, n1, err = slice0MOheJrTQ8mKtVOCQy4QAgΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Improvements, n1, err = slice0MOheJrTQ8mKtVOCQy4QAgΞΞ.Unmarshal(bs[n:])
	n += n1
	return
}

func (s competencyScoreMUS) Size(v CompetencyScore) (size int) {
	size = ord.String.Size(v.Name)
	size += varint.Float64.Size(v.Score)
	size += ord.String.Size(v.Justification)
	size += slice0MOheJrTQ8mKtVOCQy4QAgΞΞ.Size(v.Strengths)
	return size + slice0MOheJrTQ8mKtVOCQy4QAgΞΞ.Size(v.Improvements)
}

func (s competencyScoreMUS) Skip(bs []byte) (n int, err error) {
	n, err = ord.String.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = varint.Float64.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = slice0MOheJrTQ8mKtVOCQy4QAgΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = slice0MOheJrTQ8mKtVOCQy4QAgΞΞ.Skip(bs[n:])
	n += n1
	return
}

var GrammarIssueMUS = grammarIssueMUS{}

type grammarIssueMUS struct{}

func (s grammarIssueMUS) Marshal(v GrammarIssue, bs []byte) (n int) {
	n = ord.String.Marshal(v.Kind, bs)
	n += ord.String.Marshal(v.OriginalSpan, bs[n:])
	n += ord.String.Marshal(v.Suggestion, bs[n:])
	n += ord.String.Marshal(v.Explanation, bs[n:])
	return n + slice8zqXfIU5ak0yg41prΣFy5wΞΞ.Marshal(v.Position, bs[n:])
}

func (s grammarIssueMUS) Unmarshal(bs []byte) (v GrammarIssue, n int, err error) {
	v.Kind, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.OriginalSpan, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Suggestion, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Explanation, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Position, n1, err = slice8zqXfIU5ak0yg41prΣFy5wΞΞ.Unmarshal(bs[n:])
	n += n1
	return
}

func (s grammarIssueMUS) Size(v GrammarIssue) (size int) {
	size = ord.String.Size(v.Kind)
	size += ord.String.Size(v.OriginalSpan)
	size += ord.String.Size(v.Suggestion)
	size += ord.String.Size(v.Explanation)
	return size + slice8zqXfIU5ak0yg41prΣFy5wΞΞ.Size(v.Position)
}

func (s grammarIssueMUS) Skip(bs []byte) (n int, err error) {
	n, err = ord.String.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = slice8zqXfIU5ak0yg41prΣFy5wΞΞ.Skip(bs[n:])
	n += n1
	return
}

var RetrievedContextMUS = retrievedContextMUS{}

type retrievedContextMUS struct{}

func (s retrievedContextMUS) Marshal(v RetrievedContext, bs []byte) (n int) {
	n = varint.Float64.Marshal(v.SummaryScore, bs)
	n += ord.String.Marshal(v.SummaryText, bs[n:])
	return n + slice0MOheJrTQ8mKtVOCQy4QAgΞΞ.Marshal(v.TopRecommendations, bs[n:])
}

func (s retrievedContextMUS) Unmarshal(bs []byte) (v RetrievedContext, n int, err error) {
	v.SummaryScore, n, err = varint.Float64.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.SummaryText, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.TopRecommendations, n1, err = slice0MOheJrTQ8mKtVOCQy4QAgΞΞ.Unmarshal(bs[n:])
	n += n1
	return
}

func (s retrievedContextMUS) Size(v RetrievedContext) (size int) {
	size = varint.Float64.Size(v.SummaryScore)
	size += ord.String.Size(v.SummaryText)
	return size + slice0MOheJrTQ8mKtVOCQy4QAgΞΞ.Size(v.TopRecommendations)
}

func (s retrievedContextMUS) Skip(bs []byte) (n int, err error) {
	n, err = varint.Float64.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = slice0MOheJrTQ8mKtVOCQy4QAgΞΞ.Skip(bs[n:])
	n += n1
	return
}

var AnalysisMUS = analysisMUS{}

type analysisMUS struct{}

func (s analysisMUS) Marshal(v Analysis, bs []byte) (n int) {
	n = IDMUS.Marshal(v.Id, bs)
	n += IDMUS.Marshal(v.DocumentId, bs[n:])
	n += IDMUS.Marshal(v.OwnerId, bs[n:])
	n += varint.Float64.Marshal(v.OverallScore, bs[n:])
	n += slicesNE8vUxLutbVΔl1Ei6tefwΞΞ.Marshal(v.CompetencyScores, bs[n:])
	n += ord.String.Marshal(v.StructuralSummary, bs[n:])
	n += ord.String.Marshal(v.CohesionSummary, bs[n:])
	n += ord.String.Marshal(v.VocabularySummary, bs[n:])
	n += ord.String.Marshal(v.ArgumentativeSummary, bs[n:])
	n += slicedm41ffdld5xZPjFnto3quQΞΞ.Marshal(v.GrammarIssues, bs[n:])
	n += slice0MOheJrTQ8mKtVOCQy4QAgΞΞ.Marshal(v.Recommendations, bs[n:])
	n += slice0MOheJrTQ8mKtVOCQy4QAgΞΞ.Marshal(v.Strengths, bs[n:])
	n += sliceΔ1O9w08jp3nA1vXkDmsU1AΞΞ.Marshal(v.RetrievedContext, bs[n:])
	n += ord.Bool.Marshal(v.Degraded, bs[n:])
	n += raw.TimeUnixMicro.Marshal(v.CreatedAt, bs[n:])
	return n + varint.Int64.Marshal(v.ProcessingTimeMs, bs[n:])
}

func (s analysisMUS) Unmarshal(bs []byte) (v Analysis, n int, err error) {
	v.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.DocumentId, n1, err = IDMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.OwnerId, n1, err = IDMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.OverallScore, n1, err = varint.Float64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.CompetencyScores, n1, err = slicesNE8vUxLutbVΔl1Ei6tefwΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.StructuralSummary, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.CohesionSummary, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.VocabularySummary, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.ArgumentativeSummary, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.GrammarIssues, n1, err = slicedm41ffdld5xZPjFnto3quQΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Recommendations, n1, err = slice0MOheJrTQ8mKtVOCQy4QAgΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Strengths, n1, err = slice0MOheJrTQ8mKtVOCQy4QAgΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.RetrievedContext, n1, err = sliceΔ1O9w08jp3nA1vXkDmsU1AΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Degraded, n1, err = ord.Bool.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.CreatedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.ProcessingTimeMs, n1, err = varint.Int64.Unmarshal(bs[n:])
	n += n1
	return
}

func (s analysisMUS) Size(v Analysis) (size int) {
	size = IDMUS.Size(v.Id)
	size += IDMUS.Size(v.DocumentId)
	size += IDMUS.Size(v.OwnerId)
	size += varint.Float64.Size(v.OverallScore)
	size += slicesNE8vUxLutbVΔl1Ei6tefwΞΞ.Size(v.CompetencyScores)
	size += ord.String.Size(v.StructuralSummary)
	size += ord.String.Size(v.CohesionSummary)
	size += ord.String.Size(v.VocabularySummary)
	size += ord.String.Size(v.ArgumentativeSummary)
	size += slicedm41ffdld5xZPjFnto3quQΞΞ.Size(v.GrammarIssues)
	size += slice0MOheJrTQ8mKtVOCQy4QAgΞΞ.Size(v.Recommendations)
	size += slice0MOheJrTQ8mKtVOCQy4QAgΞΞ.Size(v.Strengths)
	size += sliceΔ1O9w08jp3nA1vXkDmsU1AΞΞ.Size(v.RetrievedContext)
	size += ord.Bool.Size(v.Degraded)
	size += raw.TimeUnixMicro.Size(v.CreatedAt)
	return size + varint.Int64.Size(v.ProcessingTimeMs)
}

func (s analysisMUS) Skip(bs []byte) (n int, err error) {
	n, err = IDMUS.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = IDMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = IDMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Float64.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = slicesNE8vUxLutbVΔl1Ei6tefwΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = slicedm41ffdld5xZPjFnto3quQΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = slice0MOheJrTQ8mKtVOCQy4QAgΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = slice0MOheJrTQ8mKtVOCQy4QAgΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = sliceΔ1O9w08jp3nA1vXkDmsU1AΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.Bool.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Int64.Skip(bs[n:])
	n += n1
	return
}

var CorpusExampleMUS = corpusExampleMUS{}

type corpusExampleMUS struct{}

func (s corpusExampleMUS) Marshal(v CorpusExample, bs []byte) (n int) {
	n = IDMUS.Marshal(v.Id, bs)
	n += ord.String.Marshal(v.Title, bs[n:])
	n += ord.String.Marshal(v.Text, bs[n:])
	n += IDMUS.Marshal(v.AnalysisId, bs[n:])
	n += ord.String.Marshal(v.Category, bs[n:])
	n += slice0MOheJrTQ8mKtVOCQy4QAgΞΞ.Marshal(v.Themes, bs[n:])
	n += varint.Float64.Marshal(v.QualityLevel, bs[n:])
	n += sliceV3go6lUksVculfoNyYQfWQΞΞ.Marshal(v.Vector, bs[n:])
	return n + raw.TimeUnixMicro.Marshal(v.AddedAt, bs[n:])
}

func (s corpusExampleMUS) Unmarshal(bs []byte) (v CorpusExample, n int, err error) {
	v.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Title, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Text, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.AnalysisId, n1, err = IDMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Category, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Themes, n1, err = slice0MOheJrTQ8mKtVOCQy4QAgΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.QualityLevel, n1, err = varint.Float64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Vector, n1, err = sliceV3go6lUksVculfoNyYQfWQΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.AddedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	return
}

func (s corpusExampleMUS) Size(v CorpusExample) (size int) {
	size = IDMUS.Size(v.Id)
	size += ord.String.Size(v.Title)
	size += ord.String.Size(v.Text)
	size += IDMUS.Size(v.AnalysisId)
	size += ord.String.Size(v.Category)
	size += slice0MOheJrTQ8mKtVOCQy4QAgΞΞ.Size(v.Themes)
	size += varint.Float64.Size(v.QualityLevel)
	size += sliceV3go6lUksVculfoNyYQfWQΞΞ.Size(v.Vector)
	return size + raw.TimeUnixMicro.Size(v.AddedAt)
}

func (s corpusExampleMUS) Skip(bs []byte) (n int, err error) {
	n, err = IDMUS.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = IDMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = slice0MOheJrTQ8mKtVOCQy4QAgΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Float64.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = sliceV3go6lUksVculfoNyYQfWQΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	return
}

var CheckpointMUS = checkpointMUS{}

type checkpointMUS struct{}

func (s checkpointMUS) Marshal(v Checkpoint, bs []byte) (n int) {
	n = ord.String.Marshal(v.ProcessorType, bs)
	n += IDMUS.Marshal(v.LastDocumentId, bs[n:])
	return n + raw.TimeUnixMicro.Marshal(v.UpdatedAt, bs[n:])
}

func (s checkpointMUS) Unmarshal(bs []byte) (v Checkpoint, n int, err error) {
	v.ProcessorType, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.LastDocumentId, n1, err = IDMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.UpdatedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	return
}

func (s checkpointMUS) Size(v Checkpoint) (size int) {
	size = ord.String.Size(v.ProcessorType)
	size += IDMUS.Size(v.LastDocumentId)
	return size + raw.TimeUnixMicro.Size(v.UpdatedAt)
}

func (s checkpointMUS) Skip(bs []byte) (n int, err error) {
	n, err = ord.String.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = IDMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	return
}
