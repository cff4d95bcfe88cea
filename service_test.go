package essayd

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elysia-edu/essayd/ai/mock"
	"github.com/elysia-edu/essayd/core"
	"github.com/elysia-edu/essayd/grading"
)

const testEssay = "This essay argues that public libraries remain essential civic infrastructure in the digital age, offering access, community, and guidance that no search engine replaces."

func newTestService(t *testing.T) *Service {
	t.Helper()

	svc, err := NewService("",
		WithInMemoryStorage(),
		WithProvider(mock.NewMockProvider()),
		WithPipelineOptions(grading.WithPoolSize(1)),
	)
	require.NoError(t, err)
	t.Cleanup(func() { svc.Close() })
	return svc
}

func waitForStatus(t *testing.T, svc *Service, id core.ID, want core.DocumentStatus) {
	t.Helper()
	assert.Eventually(t, func() bool {
		status, err := svc.Status(context.Background(), id)
		return err == nil && status == want
	}, 5*time.Second, 10*time.Millisecond, "document %d should reach %s", id, want)
}

func TestNewService(t *testing.T) {
	t.Run("create with persistent storage", func(t *testing.T) {
		svc, err := NewService(t.TempDir(), WithProvider(mock.NewMockProvider()))
		require.NoError(t, err)
		require.NotNil(t, svc)
		defer svc.Close()

		assert.NotNil(t, svc.DocumentRepository())
		assert.NotNil(t, svc.AnalysisRepository())
		assert.NotNil(t, svc.CorpusRepository())
	})

	t.Run("in-memory ignores path", func(t *testing.T) {
		svc, err := NewService("", WithInMemoryStorage(), WithProvider(mock.NewMockProvider()))
		require.NoError(t, err)
		require.NoError(t, svc.Close())
	})
}

func TestService_SubmitAndAnalysis(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	doc, err := svc.Submit(ctx, 1, "Libraries", testEssay)
	require.NoError(t, err)
	require.NotZero(t, doc.Id)
	assert.Equal(t, "text", doc.Metadata.SourceType)

	waitForStatus(t, svc, doc.Id, core.StatusCompleted)

	analysis, err := svc.Analysis(ctx, doc.Id)
	require.NoError(t, err)
	assert.Equal(t, doc.Id, analysis.DocumentId)
	assert.NotEmpty(t, analysis.CompetencyScores)
}

func TestService_AnalysisNotReady(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	// Store a pending document directly so no run is queued
	added, err := svc.DocumentRepository().AddDocuments(ctx, &core.Document{
		OwnerId: 1,
		Title:   "Pending",
		Status:  core.StatusPending,
		RawText: testEssay,
	})
	require.NoError(t, err)

	_, err = svc.Analysis(ctx, added[0].Id)
	assert.ErrorIs(t, err, ErrAnalysisNotReady)
}

func TestService_AnalysisAfterFailedRun(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	doc, err := svc.Submit(ctx, 1, "Too short", "way too short")
	require.NoError(t, err)

	waitForStatus(t, svc, doc.Id, core.StatusError)

	_, err = svc.Analysis(ctx, doc.Id)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "too short")
}

func TestService_SubmitFile(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	doc, err := svc.SubmitFile(ctx, 1, "Upload", []byte(testEssay), "essay.txt", "text/plain")
	require.NoError(t, err)
	assert.Equal(t, "file", doc.Metadata.SourceType)
	assert.Equal(t, int64(len(testEssay)), doc.Metadata.SizeBytes)

	waitForStatus(t, svc, doc.Id, core.StatusCompleted)
}

func TestService_SubmitFileUnsupportedFormat(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.SubmitFile(context.Background(), 1, "Upload", []byte{0x25, 0x50, 0x44, 0x46}, "essay.pdf", "application/pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "extraction")
}

func TestService_Reanalyze(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	doc, err := svc.Submit(ctx, 1, "Libraries", testEssay)
	require.NoError(t, err)
	waitForStatus(t, svc, doc.Id, core.StatusCompleted)

	first, err := svc.Analysis(ctx, doc.Id)
	require.NoError(t, err)

	require.NoError(t, svc.Reanalyze(ctx, doc.Id))
	waitForStatus(t, svc, doc.Id, core.StatusCompleted)

	second, err := svc.Analysis(ctx, doc.Id)
	require.NoError(t, err)
	assert.Equal(t, first.Id, second.Id, "re-analysis overwrites in place")
}

func TestService_SeedCorpus(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	added, err := svc.SeedCorpus(ctx, &core.CorpusExample{
		Title:        "Model essay",
		Text:         testEssay,
		Category:     core.CategoryExemplary,
		QualityLevel: 9.0,
	})
	require.NoError(t, err)
	require.Len(t, added, 1)
	assert.NotEmpty(t, added[0].Vector, "seeding embeds examples without a vector")

	found, err := svc.CorpusRepository().FindExampleByCategoryAndTitle(ctx, core.CategoryExemplary, "Model essay")
	require.NoError(t, err)
	assert.Equal(t, added[0].Id, found.Id)
}

func TestService_NewReindexer(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	doc, err := svc.Submit(ctx, 1, "Libraries", testEssay)
	require.NoError(t, err)
	waitForStatus(t, svc, doc.Id, core.StatusCompleted)

	var buf bytes.Buffer
	reindexer, err := svc.NewReindexer(nil, &buf)
	require.NoError(t, err)

	require.NoError(t, reindexer.Run(ctx))
	assert.Contains(t, buf.String(), "complete")
}
