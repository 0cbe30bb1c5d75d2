package rag

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"spacescope/pkg/logger"
	"strings"

	"go.uber.org/zap"
)

const (
	introSource = "intro.txt"
	introText   = "SpaceScope is a dashboard for tracking space missions, solar weather, and orbital dynamics. " +
		"It integrates NASA and SpaceX APIs."
)

// Document is one indexed text file.
type Document struct {
	// Source is the file name, reported back with answers.
	Source string
	// Text is the trimmed file content.
	Text string

	terms map[string]struct{}
}

// LoadCorpus reads every non-empty .txt file of dir in name order. A missing
// directory is created. When no document is found the intro document is
// written to dir and returned so the engine always has something to index.
func LoadCorpus(ctx context.Context, dir string) ([]Document, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil { //nolint: mnd
		return nil, fmt.Errorf("could not create corpus directory: %w", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("could not list corpus directory: %w", err)
	}

	var docs []Document
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".txt" {
			continue
		}

		b, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("could not read %s: %w", e.Name(), err)
		}
		text := strings.TrimSpace(string(b))
		if text == "" {
			continue
		}
		docs = append(docs, newDocument(e.Name(), text))
	}

	if len(docs) == 0 {
		logger.Warn(ctx, "no RAG documents found, seeding the intro document", zap.String("dir", dir))
		if err := os.WriteFile(filepath.Join(dir, introSource), []byte(introText), 0o644); err != nil { //nolint: gosec, mnd
			logger.Warn(ctx, "could not write the intro document", zap.Error(err))
		}
		docs = append(docs, newDocument(introSource, introText))
	}

	logger.Info(ctx, "loaded RAG documents", zap.Int("count", len(docs)))

	return docs, nil
}

func newDocument(source, text string) Document {
	return Document{Source: source, Text: text, terms: terms(text)}
}
