package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/momorit/mein-formularprojekt/internal/entity"
)

// DualStore implements the redundant-write policy: the remote upload is
// attempted first when configured, and the local write always happens
// afterwards, independent of the remote outcome. Local writes are cheap;
// the remote may be slow or unavailable long-term.
type DualStore struct {
	local  *LocalStore
	remote RemoteStore // nil when no credentials are configured
	now    func() time.Time
}

func NewDualStore(local *LocalStore, remote RemoteStore) *DualStore {
	return &DualStore{
		local:  local,
		remote: remote,
		now:    time.Now,
	}
}

// Persist stamps the document, writes it to both backends and reports
// which of them succeeded. An error is returned only when neither backend
// accepted the document.
func (s *DualStore) Persist(ctx context.Context, prefix string, doc map[string]any) (*entity.StorageResult, error) {
	now := s.now()
	result := &entity.StorageResult{
		Filename: Filename(prefix, now),
	}

	content, err := json.MarshalIndent(Stamp(doc, now), "", "  ")
	if err != nil {
		return result, fmt.Errorf("serialize document: %w", err)
	}

	if s.remote != nil {
		id, url, err := s.remote.Upload(ctx, result.Filename, content)
		if err != nil {
			ctxzap.Warn(ctx, "remote upload failed, keeping local copy only",
				zap.String("filename", result.Filename),
				zap.Error(err),
			)
		} else {
			result.StoredRemotely = true
			result.RemoteID = id
			result.RemoteURL = url
		}
	}

	path, err := s.local.Write(result.Filename, content)
	if err != nil {
		ctxzap.Error(ctx, "local write failed",
			zap.String("filename", result.Filename),
			zap.Error(err),
		)
	} else {
		result.StoredLocally = true
		result.LocalPath = path
	}

	if !result.Succeeded() {
		return result, entity.ErrStorageFailed
	}

	ctxzap.Info(ctx, "document persisted",
		zap.String("filename", result.Filename),
		zap.Bool("local", result.StoredLocally),
		zap.Bool("remote", result.StoredRemotely),
	)
	return result, nil
}
