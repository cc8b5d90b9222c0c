package service

import (
	"context"
	"fmt"
	"io"
	"path"
	"time"

	"github.com/google/uuid"

	"github.com/MTomala-IT/storeapi/internal/logger"
	"github.com/MTomala-IT/storeapi/internal/model"
)

// maxLinkExpiry is the longest lifetime object storage accepts for a presigned link.
const maxLinkExpiry = 7 * 24 * time.Hour

type Upload struct {
	storage model.Storage
	logger  *logger.Logger
}

func NewUpload(storage model.Storage, logger *logger.Logger) *Upload {
	return &Upload{storage: storage, logger: logger}
}

// UploadFile stores the file under a fresh key and returns a download link.
func (s *Upload) UploadFile(ctx context.Context, user model.User, filename string, reader io.Reader, size int64, contentType string) (string, error) {
	key := fmt.Sprintf("uploads/%d/%s/%s", user.ID, uuid.NewString(), path.Base(filename))

	log := s.logger.Ctx(ctx)
	log.Debug("Upload service: uploading file", "key", key, "size", size)

	if err := s.storage.Upload(ctx, key, reader, size, contentType); err != nil {
		log.Error("Upload service: failed to upload file", "key", key, "error", err.Error())
		return "", fmt.Errorf("failed to upload to storage: %w", err)
	}

	url, err := s.storage.URL(ctx, key, maxLinkExpiry)
	if err != nil {
		log.Error("Upload service: failed to get file url", "key", key, "error", err.Error())
		if delErr := s.storage.Delete(ctx, key); delErr != nil {
			log.Warn("Upload service: failed to remove orphaned file", "key", key, "error", delErr.Error())
		}
		return "", fmt.Errorf("failed to get file url: %w", err)
	}

	return url, nil
}
