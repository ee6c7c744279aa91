package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/blankpage/internal/core/domain"
	"github.com/custodia-labs/blankpage/internal/core/ports/driven"
	"github.com/custodia-labs/blankpage/internal/logger"
)

// LoadWorkspace reads the persisted collection and active id and builds a
// Workspace from them.
//
// Missing or malformed values count as absent: the workspace starts with
// a single empty document. Only storage failures are returned.
func LoadWorkspace(ctx context.Context, kv driven.KeyValueStore, opts ...WorkspaceOption) (*Workspace, error) {
	logger.Section("Load Workspace")

	docs, err := loadDocuments(ctx, kv)
	if err != nil {
		return nil, err
	}

	activeID, err := loadActiveID(ctx, kv)
	if err != nil {
		return nil, err
	}

	ws := NewWorkspace(docs, activeID, opts...)
	logger.Debug("Loaded %d documents, active %s", ws.Len(), ws.ActiveID())
	return ws, nil
}

func loadDocuments(ctx context.Context, kv driven.KeyValueStore) ([]domain.Document, error) {
	raw, ok, err := kv.Get(ctx, domain.KeyDocuments)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", domain.KeyDocuments, err)
	}
	if !ok {
		logger.Debug("No persisted documents")
		return nil, nil
	}

	docs, err := DecodeDocuments(raw)
	if err != nil {
		logger.Debug("Ignoring malformed documents: %v", err)
		return nil, nil
	}
	return docs, nil
}

func loadActiveID(ctx context.Context, kv driven.KeyValueStore) (string, error) {
	raw, ok, err := kv.Get(ctx, domain.KeyActiveDocumentID)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", domain.KeyActiveDocumentID, err)
	}
	if !ok {
		return "", nil
	}

	id, err := DecodeActiveID(raw)
	if err != nil {
		logger.Debug("Ignoring malformed active id: %v", err)
		return "", nil
	}
	return id, nil
}
