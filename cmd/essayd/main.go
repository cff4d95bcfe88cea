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


package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	essayd "github.com/elysia-edu/essayd"
	"github.com/elysia-edu/essayd/ai"
	"github.com/elysia-edu/essayd/core"
	"github.com/elysia-edu/essayd/reindex"
)

func main() {
	app := &cli.App{
		Name:  "essayd",
		Usage: "Asynchronous essay analysis with retrieval-enriched scoring",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "analyze",
				Usage:  "Submit an essay file and wait for its analysis",
				Action: analyzeCommand,
				Flags: append(serviceFlags(),
					&cli.StringFlag{
						Name:     "file",
						Aliases:  []string{"f"},
						Usage:    "Path to the essay file (.txt or .md)",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "title",
						Usage: "Essay title (defaults to the file name)",
					},
					&cli.Uint64Flag{
						Name:  "owner",
						Usage: "Owner ID to record on the document",
						Value: 1,
					},
					&cli.DurationFlag{
						Name:  "poll-interval",
						Usage: "How often to poll for completion",
						Value: 500 * time.Millisecond,
					},
					&cli.DurationFlag{
						Name:  "wait-timeout",
						Usage: "Give up waiting after this long",
						Value: 30 * time.Minute,
					},
				),
			},
			{
				Name:      "status",
				Usage:     "Show the lifecycle status of a document",
				Action:    statusCommand,
				ArgsUsage: "DOCUMENT_ID",
				Flags:     serviceFlags(),
			},
			{
				Name:      "show",
				Usage:     "Print the persisted analysis of a completed document",
				Action:    showCommand,
				ArgsUsage: "DOCUMENT_ID",
				Flags:     serviceFlags(),
			},
			{
				Name:   "seed-corpus",
				Usage:  "Add a curated reference essay to the retrieval corpus",
				Action: seedCorpusCommand,
				Flags: append(serviceFlags(),
					&cli.StringFlag{
						Name:     "file",
						Aliases:  []string{"f"},
						Usage:    "Path to the example essay file",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "title",
						Usage:    "Example title",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "category",
						Usage: "Example category (exemplary, common, problematic)",
						Value: core.CategoryExemplary,
					},
					&cli.Float64Flag{
						Name:  "quality",
						Usage: "Quality level in [0,10]",
						Value: 8.0,
					},
					&cli.StringSliceFlag{
						Name:  "theme",
						Usage: "Theme tag (repeatable)",
					},
				),
			},
			{
				Name:   "reindex",
				Usage:  "Regenerate embeddings for all documents after a model change",
				Action: reindexCommand,
				Flags: append(serviceFlags(),
					&cli.IntFlag{
						Name:  "batch-size",
						Usage: "Number of documents to process in each batch",
						Value: 100,
					},
					&cli.IntFlag{
						Name:  "report-interval",
						Usage: "Report progress every N documents",
						Value: 100,
					},
					&cli.IntFlag{
						Name:  "max-retries",
						Usage: "Maximum retry attempts for failed operations",
						Value: 3,
					},
					&cli.DurationFlag{
						Name:  "retry-delay",
						Usage: "Base delay for exponential backoff",
						Value: 1 * time.Second,
					},
				),
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// serviceFlags are shared by every command that opens the service.
func serviceFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "db",
			Aliases:  []string{"d"},
			Usage:    "Path to BadgerDB database directory",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "host",
			Usage: "OpenAI-compatible service host URL for embedding and scoring",
			Value: "http://localhost:11434/v1",
		},
		&cli.StringFlag{
			Name:  "embedding-model",
			Usage: "Embedding model name",
			Value: "text-embedding-3-small",
		},
		&cli.StringFlag{
			Name:  "scoring-model",
			Usage: "Scoring model name",
			Value: "gpt-4o-mini",
		},
		&cli.IntFlag{
			Name:  "embedding-dimension",
			Usage: "Fixed embedding vector dimension",
			Value: 1536,
		},
	}
}

func openService(c *cli.Context) (*essayd.Service, error) {
	aiConfig := ai.NewConfig(
		ai.WithHost(c.String("host")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
		ai.WithScoringModel(c.String("scoring-model")),
		ai.WithEmbeddingDimension(c.Int("embedding-dimension")),
	)
	if err := aiConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid AI configuration: %w", err)
	}

	svc, err := essayd.NewService(c.String("db"), essayd.WithAIConfig(aiConfig))
	if err != nil {
		return nil, fmt.Errorf("failed to open service: %w", err)
	}
	return svc, nil
}

func documentIDArg(c *cli.Context) (core.ID, error) {
	if c.NArg() != 1 {
		return 0, fmt.Errorf("expected exactly one DOCUMENT_ID argument")
	}
	id, err := strconv.ParseUint(c.Args().First(), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid document id %q: %w", c.Args().First(), err)
	}
	return core.ID(id), nil
}

func analyzeCommand(c *cli.Context) error {
	ctx := context.Background()

	path := c.String("file")
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read essay file: %w", err)
	}

	title := c.String("title")
	if title == "" {
		title = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	svc, err := openService(c)
	if err != nil {
		return err
	}
	defer svc.Close()

	doc, err := svc.SubmitFile(ctx, core.ID(c.Uint64("owner")), title, content, filepath.Base(path), "")
	if err != nil {
		return fmt.Errorf("submission failed: %w", err)
	}

	fmt.Printf("Submitted document %d (%q), waiting for analysis...\n", doc.Id, title)

	deadline := time.Now().Add(c.Duration("wait-timeout"))
	for {
		status, err := svc.Status(ctx, doc.Id)
		if err != nil {
			return err
		}
		if status.Terminal() {
			break
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("timed out waiting for document %d (still %s)", doc.Id, status)
		}
		time.Sleep(c.Duration("poll-interval"))
	}

	analysis, err := svc.Analysis(ctx, doc.Id)
	if err != nil {
		return err
	}

	printAnalysis(analysis)
	return nil
}

func statusCommand(c *cli.Context) error {
	id, err := documentIDArg(c)
	if err != nil {
		return err
	}

	svc, err := openService(c)
	if err != nil {
		return err
	}
	defer svc.Close()

	doc, err := svc.Document(context.Background(), id)
	if err != nil {
		return err
	}

	fmt.Printf("Document %d (%q): %s\n", doc.Id, doc.Title, doc.Status)
	fmt.Printf("  Submitted: %s\n", doc.SubmittedAt.Format(time.RFC3339))
	if !doc.CompletedAt.IsZero() {
		fmt.Printf("  Finished:  %s\n", doc.CompletedAt.Format(time.RFC3339))
	}
	if doc.ErrorMessage != "" {
		fmt.Printf("  Error:     %s\n", doc.ErrorMessage)
	}
	return nil
}

func showCommand(c *cli.Context) error {
	id, err := documentIDArg(c)
	if err != nil {
		return err
	}

	svc, err := openService(c)
	if err != nil {
		return err
	}
	defer svc.Close()

	analysis, err := svc.Analysis(context.Background(), id)
	if err != nil {
		return err
	}

	printAnalysis(analysis)
	return nil
}

func seedCorpusCommand(c *cli.Context) error {
	content, err := os.ReadFile(c.String("file"))
	if err != nil {
		return fmt.Errorf("failed to read example file: %w", err)
	}

	svc, err := openService(c)
	if err != nil {
		return err
	}
	defer svc.Close()

	example := &core.CorpusExample{
		Title:        c.String("title"),
		Text:         string(content),
		Category:     c.String("category"),
		Themes:       c.StringSlice("theme"),
		QualityLevel: c.Float64("quality"),
	}
	if err := core.ValidateCorpusExample(example); err != nil {
		return err
	}

	added, err := svc.SeedCorpus(context.Background(), example)
	if err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}

	fmt.Printf("Added corpus example %d (%s, %q)\n", added[0].Id, added[0].Category, added[0].Title)
	return nil
}

func reindexCommand(c *cli.Context) error {
	config := &reindex.Config{
		BatchSize:      c.Int("batch-size"),
		ReportInterval: c.Int("report-interval"),
		MaxRetries:     c.Int("max-retries"),
		RetryDelay:     c.Duration("retry-delay"),
	}

	if config.BatchSize <= 0 {
		return fmt.Errorf("batch-size must be greater than 0")
	}
	if config.ReportInterval <= 0 {
		return fmt.Errorf("report-interval must be greater than 0")
	}
	if config.MaxRetries <= 0 {
		return fmt.Errorf("max-retries must be greater than 0")
	}

	svc, err := openService(c)
	if err != nil {
		return err
	}
	defer svc.Close()

	reindexer, err := svc.NewReindexer(config, os.Stderr)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Database: %s\n", c.String("db"))
	fmt.Fprintf(os.Stderr, "Embedding host: %s\n", c.String("host"))
	fmt.Fprintf(os.Stderr, "Embedding model: %s\n", c.String("embedding-model"))
	fmt.Fprintln(os.Stderr)

	if err := reindexer.Run(context.Background()); err != nil {
		return fmt.Errorf("reindexing failed: %w", err)
	}
	return nil
}

func printAnalysis(a *core.Analysis) {
	fmt.Printf("Analysis %d for document %d\n", a.Id, a.DocumentId)
	fmt.Printf("Overall score: %.1f\n", a.OverallScore)
	if a.Degraded {
		fmt.Println("NOTE: result is degraded (defaults substituted for provider output)")
	}

	fmt.Println("\nCompetencies:")
	for _, cs := range a.CompetencyScores {
		fmt.Printf("  %-28s %.1f  %s\n", cs.Name, cs.Score, cs.Justification)
	}

	for _, section := range []struct{ name, text string }{
		{"Structure", a.StructuralSummary},
		{"Cohesion", a.CohesionSummary},
		{"Vocabulary", a.VocabularySummary},
		{"Argumentation", a.ArgumentativeSummary},
	} {
		if section.text != "" {
			fmt.Printf("\n%s: %s\n", section.name, section.text)
		}
	}

	if len(a.GrammarIssues) > 0 {
		fmt.Println("\nGrammar issues:")
		for _, issue := range a.GrammarIssues {
			fmt.Printf("  [%s] %q -> %q", issue.Kind, issue.OriginalSpan, issue.Suggestion)
			if issue.Explanation != "" {
				fmt.Printf(" (%s)", issue.Explanation)
			}
			fmt.Println()
		}
	}

	if len(a.Strengths) > 0 {
		fmt.Println("\nStrengths:")
		for _, s := range a.Strengths {
			fmt.Printf("  - %s\n", s)
		}
	}

	if len(a.Recommendations) > 0 {
		fmt.Println("\nRecommendations:")
		for _, r := range a.Recommendations {
			fmt.Printf("  - %s\n", r)
		}
	}

	if len(a.RetrievedContext) > 0 {
		fmt.Println("\nRetrieved context:")
		for _, rc := range a.RetrievedContext {
			fmt.Printf("  - score %.1f: %s\n", rc.SummaryScore, rc.SummaryText)
		}
	}

	fmt.Printf("\nProcessed in %dms\n", a.ProcessingTimeMs)
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
