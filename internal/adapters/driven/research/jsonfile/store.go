// Package jsonfile loads research artifacts from the JSON files the
// external fetchers write. The pipeline treats these files as read-only
// inputs; this adapter only decodes them.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/edukit-labs/coursegen-cli/internal/core/domain"
	"github.com/edukit-labs/coursegen-cli/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.ResearchStore = (*Store)(nil)

// Store reads research artifacts from JSON files on disk. Refs are
// file paths; an empty ref means that side was not requested.
type Store struct{}

// NewStore creates a file-based research store.
func NewStore() *Store {
	return &Store{}
}

// LoadWeb reads a web research artifact from the given path.
func (s *Store) LoadWeb(ctx context.Context, ref string) (*domain.WebResearch, error) {
	if ref == "" {
		return nil, nil
	}

	var research domain.WebResearch
	if err := decodeFile(ctx, ref, &research); err != nil {
		return nil, fmt.Errorf("load web research: %w", err)
	}
	return &research, nil
}

// LoadVideo reads a video transcript artifact from the given path.
func (s *Store) LoadVideo(ctx context.Context, ref string) (*domain.VideoResearch, error) {
	if ref == "" {
		return nil, nil
	}

	var research domain.VideoResearch
	if err := decodeFile(ctx, ref, &research); err != nil {
		return nil, fmt.Errorf("load video research: %w", err)
	}
	return &research, nil
}

func decodeFile(ctx context.Context, path string, v any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%s: %w", path, domain.ErrNotFound)
		}
		return err
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}
