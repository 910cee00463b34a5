package uploads

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/hbomb79/Videomania/internal/api/httperr"
	"github.com/hbomb79/Videomania/internal/blob"
	"github.com/hbomb79/Videomania/internal/ingest"
	"github.com/hbomb79/Videomania/internal/metadata"
	"github.com/hbomb79/Videomania/pkg/logger"
	"github.com/labstack/echo/v4"
)

var log = logger.Get("UploadsController")

type (
	UploadRequest struct {
		Title       string `form:"title" validate:"required"`
		Description string `form:"description"`
		UserID      string `form:"userId"`
	}

	UploadResponse struct {
		Success  bool   `json:"success"`
		Message  string `json:"message"`
		VideoID  string `json:"videoId"`
		BlobName string `json:"blobName"`
	}

	UploadURLRequest struct {
		FileName string `json:"fileName" validate:"required"`
	}

	UploadURLResponse struct {
		SasURI    string `json:"sasUri"`
		BlobName  string `json:"blobName"`
		ExpiresIn int    `json:"expiresIn"`
	}

	Store interface {
		AddVideo(ctx context.Context, video *metadata.Video) error
	}

	BlobStore interface {
		Upload(ctx context.Context, container string, blobName string, body io.Reader, contentType string) error
		IssueSignedURL(ctx context.Context, container string, blobName string, permission blob.Permission, validFor time.Duration) (string, error)
	}

	Config struct {
		VideosContainer   string
		MaxUploadBytes    int64
		DefaultUserID     string
		AllowFLV          bool
		UploadURLValidity time.Duration
	}

	Controller struct {
		store    Store
		blobs    BlobStore
		validate *validator.Validate
		config   Config
	}
)

func New(validate *validator.Validate, config Config, store Store, blobs BlobStore) *Controller {
	return &Controller{store: store, blobs: blobs, validate: validate, config: config}
}

func (controller *Controller) SetRoutes(eg *echo.Group) {
	eg.POST("/getuploadSas", controller.upload)
	eg.POST("/uploads/sas", controller.issueUploadURL)
}

// upload accepts a multipart video upload, stores the file in the videos
// container and records a new Video referencing it. Ingestion of the video
// is triggered asynchronously by the object store.
func (controller *Controller) upload(ec echo.Context) error {
	var request UploadRequest
	if err := ec.Bind(&request); err != nil {
		return httperr.BadRequest(fmt.Sprintf("Invalid body: %s", err.Error()))
	}

	request.Title = strings.TrimSpace(request.Title)
	if err := controller.validate.Struct(request); err != nil {
		return httperr.BadRequest("Title is required")
	}

	fileHeader, err := ec.FormFile("file")
	if err != nil || fileHeader.Size == 0 {
		return httperr.BadRequest("Video file is required")
	}

	if fileHeader.Size > controller.config.MaxUploadBytes {
		log.Warnf("Rejecting upload of %s: %d bytes exceeds limit\n", fileHeader.Filename, fileHeader.Size)
		return httperr.BadRequest(fmt.Sprintf("File size exceeds %dMB limit", controller.config.MaxUploadBytes/(1024*1024)))
	}

	if !ingest.AllowedExtension(fileHeader.Filename, false) {
		return httperr.BadRequest("Invalid file type. Allowed: MP4, WebM, AVI, MOV, MKV")
	}

	blobName := generateBlobName(fileHeader.Filename)
	if err := controller.uploadFile(ec.Request().Context(), fileHeader, blobName); err != nil {
		return httperr.Internal("Upload failed", err)
	}

	video := &metadata.Video{
		ID:          uuid.NewString(),
		UserID:      controller.userID(request.UserID),
		Title:       request.Title,
		Description: optionalTrimmed(request.Description),
		URL:         blobName,
		UploadedAt:  time.Now().UTC(),
	}
	if err := controller.store.AddVideo(ec.Request().Context(), video); err != nil {
		return httperr.Internal("Upload failed", err)
	}

	log.Emit(logger.NEW, "Video %s uploaded as %s (%d bytes)\n", video.ID, blobName, fileHeader.Size)
	return ec.JSON(http.StatusOK, UploadResponse{
		Success:  true,
		Message:  fmt.Sprintf("Video '%s' uploaded successfully!", video.Title),
		VideoID:  video.ID,
		BlobName: blobName,
	})
}

// issueUploadURL returns a signed URL which allows the client to upload
// the file named directly to the videos container.
func (controller *Controller) issueUploadURL(ec echo.Context) error {
	var request UploadURLRequest
	if err := ec.Bind(&request); err != nil {
		return httperr.BadRequest(fmt.Sprintf("Invalid body: %s", err.Error()))
	}

	request.FileName = strings.TrimSpace(request.FileName)
	if err := controller.validate.Struct(request); err != nil {
		return httperr.BadRequest("FileName is required")
	}

	if !ingest.AllowedExtension(request.FileName, controller.config.AllowFLV) {
		allowed := "MP4, WebM, AVI, MOV, MKV"
		if controller.config.AllowFLV {
			allowed += ", FLV"
		}
		return httperr.BadRequest("Invalid file type. Allowed: " + allowed)
	}

	blobName := generateBlobName(request.FileName)
	validity := controller.config.UploadURLValidity
	url, err := controller.blobs.IssueSignedURL(ec.Request().Context(), controller.config.VideosContainer, blobName, blob.PermissionWriteCreate, validity)
	if err != nil {
		return httperr.Internal("Failed to generate upload URL", err)
	}

	return ec.JSON(http.StatusOK, UploadURLResponse{SasURI: url, BlobName: blobName, ExpiresIn: int(validity.Seconds())})
}

func (controller *Controller) uploadFile(ctx context.Context, fileHeader *multipart.FileHeader, blobName string) error {
	file, err := fileHeader.Open()
	if err != nil {
		return err
	}
	defer file.Close()

	contentType := fileHeader.Header.Get(echo.HeaderContentType)
	if contentType == "" {
		contentType = echo.MIMEOctetStream
	}

	return controller.blobs.Upload(ctx, controller.config.VideosContainer, blobName, file, contentType)
}

func (controller *Controller) userID(requested string) string {
	if id := strings.TrimSpace(requested); id != "" {
		return id
	}

	return controller.config.DefaultUserID
}

// generateBlobName prefixes the base name of the file given with a
// random UUID, so that uploads of the same file never collide.
func generateBlobName(fileName string) string {
	return fmt.Sprintf("%s_%s", uuid.NewString(), filepath.Base(fileName))
}

func optionalTrimmed(value string) *string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}

	return &trimmed
}
