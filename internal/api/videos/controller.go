package videos

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/hbomb79/Videomania/internal/api/httperr"
	"github.com/hbomb79/Videomania/internal/blob"
	"github.com/hbomb79/Videomania/internal/metadata"
	"github.com/hbomb79/Videomania/pkg/logger"
	"github.com/labstack/echo/v4"
)

var log = logger.Get("VideosController")

type (
	// VideoDetail is the response for a single video. The URL fields hold
	// signed read URLs, and are omitted if they could not be issued.
	VideoDetail struct {
		*metadata.Video
		VideoURL        string              `json:"videoUrl,omitempty"`
		ThumbnailURL    string              `json:"thumbnailUrl,omitempty"`
		ResizedVideoURL string              `json:"resizedVideoUrl,omitempty"`
		Comments        []*metadata.Comment `json:"comments"`
	}

	DeleteResponse struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		VideoID string `json:"videoId"`
	}

	Store interface {
		ListVideos(ctx context.Context) ([]*metadata.Video, error)
		FindVideoByID(ctx context.Context, videoID string) (*metadata.Video, error)
		DeleteVideo(ctx context.Context, videoID string, userID string) error
		ListComments(ctx context.Context, videoID string) ([]*metadata.Comment, error)
		DeleteComment(ctx context.Context, commentID string, videoID string) error
	}

	BlobStore interface {
		Delete(ctx context.Context, container string, blobName string) error
		IssueSignedURL(ctx context.Context, container string, blobName string, permission blob.Permission, validFor time.Duration) (string, error)
	}

	Config struct {
		VideosContainer     string
		ThumbnailsContainer string
		ProcessedContainer  string
		ReadURLValidity     time.Duration
	}

	Controller struct {
		store  Store
		blobs  BlobStore
		config Config
	}
)

func New(config Config, store Store, blobs BlobStore) *Controller {
	return &Controller{store: store, blobs: blobs, config: config}
}

func (controller *Controller) SetRoutes(eg *echo.Group) {
	eg.GET("/videos", controller.list)
	eg.GET("/videos/:videoId", controller.get)
	eg.DELETE("/videos/:videoId", controller.delete)
}

func (controller *Controller) list(ec echo.Context) error {
	videos, err := controller.store.ListVideos(ec.Request().Context())
	if err != nil {
		return httperr.Internal("Failed to list videos", err)
	}

	return ec.JSON(http.StatusOK, videos)
}

func (controller *Controller) get(ec echo.Context) error {
	ctx := ec.Request().Context()
	video, err := controller.findVideo(ctx, ec.Param("videoId"))
	if err != nil {
		return err
	}

	comments, err := controller.store.ListComments(ctx, video.ID)
	if err != nil {
		return httperr.Internal("Failed to fetch video comments", err)
	}

	detail := &VideoDetail{Video: video, Comments: comments}
	detail.VideoURL = controller.readURL(ctx, controller.config.VideosContainer, video.URL)
	if p := video.Processing; p != nil {
		detail.ThumbnailURL = controller.readURL(ctx, controller.config.ThumbnailsContainer, p.ThumbnailURL)
		detail.ResizedVideoURL = controller.readURL(ctx, controller.config.ProcessedContainer, p.ResizedVideoURL)
	}

	return ec.JSON(http.StatusOK, detail)
}

// delete removes a video along with everything that belongs to it. Comments
// are deleted first, one at a time, and a failure to delete any of them does
// not stop the others. The source blob is deleted next, and a failure there
// is only logged. The video record is deleted last, and only a failure to
// delete it fails the request.
func (controller *Controller) delete(ec echo.Context) error {
	ctx := ec.Request().Context()
	video, err := controller.findVideo(ctx, ec.Param("videoId"))
	if err != nil {
		return err
	}

	log.Emit(logger.REMOVE, "Deleting video %s (%q) owned by %s\n", video.ID, video.Title, video.UserID)
	controller.deleteComments(ctx, video.ID)

	if video.URL != "" {
		blobName := blob.NormalizeBlobName(video.URL)
		if err := controller.blobs.Delete(ctx, controller.config.VideosContainer, blobName); err != nil {
			log.Warnf("Failed to delete blob %s for video %s, continuing with record deletion: %v\n", blobName, video.ID, err)
		}
	}

	if err := controller.store.DeleteVideo(ctx, video.ID, video.UserID); err != nil {
		if errors.Is(err, metadata.ErrNotFound) {
			log.Errorf("Video %s vanished before it could be deleted: %v\n", video.ID, err)
			return httperr.Internal("Video found in query but not found during deletion. Database may be inconsistent.", nil)
		}
		return httperr.Internal("Error deleting video", err)
	}

	log.Emit(logger.SUCCESS, "Video %s deleted\n", video.ID)
	return ec.JSON(http.StatusOK, DeleteResponse{Success: true, Message: "Video deleted successfully", VideoID: video.ID})
}

func (controller *Controller) deleteComments(ctx context.Context, videoID string) {
	comments, err := controller.store.ListComments(ctx, videoID)
	if err != nil {
		log.Warnf("Failed to fetch comments of video %s, continuing with deletion: %v\n", videoID, err)
		return
	}

	for _, comment := range comments {
		if comment == nil || comment.ID == "" {
			continue
		}

		if err := controller.store.DeleteComment(ctx, comment.ID, comment.VideoID); err != nil {
			log.Warnf("Failed to delete comment %s of video %s: %v\n", comment.ID, videoID, err)
		}
	}
}

func (controller *Controller) findVideo(ctx context.Context, videoID string) (*metadata.Video, error) {
	videoID = strings.TrimSpace(videoID)
	if videoID == "" {
		return nil, httperr.BadRequest("Video ID is required")
	}

	video, err := controller.store.FindVideoByID(ctx, videoID)
	if err != nil {
		if errors.Is(err, metadata.ErrNotFound) {
			return nil, httperr.NotFound("Video not found")
		}
		return nil, httperr.Internal("Failed to fetch video", err)
	}

	return video, nil
}

// readURL issues a signed read URL for the blob given. Failures are logged
// and yield an empty URL, so that the rest of the detail view is still served.
func (controller *Controller) readURL(ctx context.Context, container string, stored string) string {
	if stored == "" {
		return ""
	}

	blobName := blob.NormalizeBlobName(stored)
	url, err := controller.blobs.IssueSignedURL(ctx, container, blobName, blob.PermissionRead, controller.config.ReadURLValidity)
	if err != nil {
		log.Warnf("Failed to issue read URL for %s/%s: %v\n", container, blobName, err)
		return ""
	}

	return url
}
