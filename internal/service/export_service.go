package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/remastershadhi/api/internal/client"
	"github.com/remastershadhi/api/internal/metrics"
	"github.com/remastershadhi/api/internal/model"
)

const defaultLinkExpiry = 24 * time.Hour

// ExportService turns lyrics into the downloadable text artifact.
type ExportService struct {
	storage    client.StorageClient
	linkExpiry time.Duration
}

// NewExportService creates a new export service. storage may be nil, in which
// case links are mocked.
func NewExportService(storage client.StorageClient, linkExpiry time.Duration) *ExportService {
	if linkExpiry <= 0 {
		linkExpiry = defaultLinkExpiry
	}
	return &ExportService{
		storage:    storage,
		linkExpiry: linkExpiry,
	}
}

// Artifact returns the file body for a direct download.
func (s *ExportService) Artifact(req *model.ExportRequest) []byte {
	metrics.ExportsTotal.WithLabelValues("download", metrics.OutcomeSuccess).Inc()
	return artifactBody(req)
}

// artifactBody is the lyrics, byte for byte.
func artifactBody(req *model.ExportRequest) []byte {
	return []byte(req.Lyrics)
}

// CreateLink stores the artifact and returns a temporary download link.
func (s *ExportService) CreateLink(ctx context.Context, req *model.ExportRequest) (*model.ExportLinkResponse, error) {
	body := artifactBody(req)
	exportID := uuid.New().String()
	key := fmt.Sprintf("exports/%s/%s", exportID, model.ExportFilename)

	// Use mock response if storage is not configured
	if s.storage == nil {
		metrics.ExportsTotal.WithLabelValues("link", metrics.OutcomeMock).Inc()
		return s.createLinkMock(key, int64(len(body))), nil
	}

	err := s.storage.Upload(ctx, key, bytes.NewReader(body), int64(len(body)), model.ExportContentType, model.ExportFilename)
	if err != nil {
		metrics.ExportsTotal.WithLabelValues("link", metrics.OutcomeError).Inc()
		return nil, fmt.Errorf("export upload failed: %w", err)
	}

	url, err := s.storage.GetSignedURL(ctx, key, s.linkExpiry)
	if err != nil {
		metrics.ExportsTotal.WithLabelValues("link", metrics.OutcomeError).Inc()
		// Nothing can reach the object without a link.
		_ = s.storage.Delete(ctx, key)
		return nil, fmt.Errorf("export link failed: %w", err)
	}

	metrics.ExportsTotal.WithLabelValues("link", metrics.OutcomeSuccess).Inc()
	return &model.ExportLinkResponse{
		FileURL:   url,
		Size:      int64(len(body)),
		ExpiresAt: time.Now().Add(s.linkExpiry),
	}, nil
}

func (s *ExportService) createLinkMock(key string, size int64) *model.ExportLinkResponse {
	return &model.ExportLinkResponse{
		FileURL:   fmt.Sprintf("https://cdn.remastershadhi.app/%s", key),
		Size:      size,
		ExpiresAt: time.Now().Add(s.linkExpiry),
	}
}
