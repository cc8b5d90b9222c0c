package handler

import (
	"context"
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/MTomala-IT/storeapi/internal/logger"
	"github.com/MTomala-IT/storeapi/internal/model"
)

const uploadFormField = "file"

// UploadService stores an uploaded file and returns a link to it.
type UploadService interface {
	UploadFile(ctx context.Context, user model.User, filename string, reader io.Reader, size int64, contentType string) (string, error)
}

// Upload handles multipart file uploads.
type Upload struct {
	uploadService  UploadService
	contextManager model.ContextManager
	logger         *logger.Logger
}

func NewUpload(uploadService UploadService, contextManager model.ContextManager, logger *logger.Logger) *Upload {
	return &Upload{uploadService: uploadService, contextManager: contextManager, logger: logger}
}

// Upload stores the "file" form field and responds with its URL.
func (h *Upload) Upload(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, ok := h.contextManager.GetUserFromContext(ctx)
	if !ok {
		return model.NewInvalidCredentialsError("Not authenticated")
	}

	fileHeader, err := c.FormFile(uploadFormField)
	if err != nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "file: cannot be blank.")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "There was an error uploading the file")
	}
	defer file.Close()

	contentType := fileHeader.Header.Get(fiber.HeaderContentType)
	if contentType == "" {
		contentType = fiber.MIMEOctetStream
	}

	url, err := h.uploadService.UploadFile(ctx, user, fileHeader.Filename, file, fileHeader.Size, contentType)
	if err != nil {
		return err
	}

	h.logger.Ctx(ctx).Info("Upload handler: file uploaded",
		"user_id", user.ID,
		"filename", fileHeader.Filename,
		"size", fileHeader.Size)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"detail":   "Successfully uploaded " + fileHeader.Filename,
		"file_url": url,
	})
}
