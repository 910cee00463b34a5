package comments

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/hbomb79/Videomania/internal/api/httperr"
	"github.com/hbomb79/Videomania/internal/metadata"
	"github.com/hbomb79/Videomania/pkg/logger"
	"github.com/labstack/echo/v4"
)

var log = logger.Get("CommentsController")

type (
	AddRequest struct {
		VideoID     string  `json:"videoId" validate:"required"`
		CommentText string  `json:"CommentText" validate:"required"`
		UserID      *string `json:"userId"`
	}

	AddResponse struct {
		Success   bool   `json:"success"`
		Message   string `json:"message"`
		CommentID string `json:"commentId"`
		VideoID   string `json:"videoId"`
	}

	DeleteResponse struct {
		Success   bool   `json:"success"`
		Message   string `json:"message"`
		CommentID string `json:"commentId"`
		VideoID   string `json:"videoId"`
	}

	Store interface {
		FindVideoByID(ctx context.Context, videoID string) (*metadata.Video, error)
		AddComment(ctx context.Context, comment *metadata.Comment) error
		ListComments(ctx context.Context, videoID string) ([]*metadata.Comment, error)
		DeleteComment(ctx context.Context, commentID string, videoID string) error
	}

	Controller struct {
		store    Store
		validate *validator.Validate
	}
)

func New(validate *validator.Validate, store Store) *Controller {
	return &Controller{store: store, validate: validate}
}

func (controller *Controller) SetRoutes(eg *echo.Group) {
	eg.POST("/comments/add", controller.add)
	eg.DELETE("/comments/:commentId", controller.delete)
	eg.GET("/videos/:videoId/comments", controller.list)
}

func (controller *Controller) add(ec echo.Context) error {
	var request AddRequest
	if err := ec.Bind(&request); err != nil {
		return httperr.BadRequest(fmt.Sprintf("Invalid body: %s", err.Error()))
	}

	request.VideoID = strings.TrimSpace(request.VideoID)
	request.CommentText = strings.TrimSpace(request.CommentText)
	if err := controller.validate.Struct(request); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) && validationErrs[0].Field() == "VideoID" {
			return httperr.BadRequest("Video ID is required")
		}
		return httperr.BadRequest("Comment text cannot be empty")
	}

	ctx := ec.Request().Context()
	if err := controller.requireVideo(ctx, request.VideoID); err != nil {
		return err
	}

	comment := &metadata.Comment{
		ID:        uuid.NewString(),
		VideoID:   request.VideoID,
		UserID:    metadata.AnonymousUserID,
		Text:      request.CommentText,
		CreatedAt: time.Now().UTC(),
	}
	if request.UserID != nil && strings.TrimSpace(*request.UserID) != "" {
		comment.UserID = strings.TrimSpace(*request.UserID)
	}

	if err := controller.store.AddComment(ctx, comment); err != nil {
		return httperr.Internal("Error adding comment", err)
	}

	log.Emit(logger.NEW, "Comment %s added to video %s\n", comment.ID, comment.VideoID)
	return ec.JSON(http.StatusOK, AddResponse{Success: true, Message: "Comment added successfully", CommentID: comment.ID, VideoID: comment.VideoID})
}

// delete removes a single comment. The owning video's ID must be provided as
// the 'videoId' query parameter, as comments are partitioned by video.
func (controller *Controller) delete(ec echo.Context) error {
	commentID := strings.TrimSpace(ec.Param("commentId"))
	if commentID == "" {
		return httperr.BadRequest("Comment ID is required")
	}

	videoID := strings.TrimSpace(ec.QueryParam("videoId"))
	if videoID == "" {
		return httperr.BadRequest("Video ID is required (partition key)")
	}

	ctx := ec.Request().Context()
	if err := controller.requireVideo(ctx, videoID); err != nil {
		return err
	}

	if err := controller.store.DeleteComment(ctx, commentID, videoID); err != nil {
		if errors.Is(err, metadata.ErrNotFound) {
			return httperr.NotFound("Comment not found")
		}
		return httperr.Internal("Error deleting comment", err)
	}

	log.Emit(logger.REMOVE, "Comment %s deleted from video %s\n", commentID, videoID)
	return ec.JSON(http.StatusOK, DeleteResponse{Success: true, Message: "Comment deleted successfully", CommentID: commentID, VideoID: videoID})
}

func (controller *Controller) list(ec echo.Context) error {
	videoID := strings.TrimSpace(ec.Param("videoId"))
	ctx := ec.Request().Context()
	if err := controller.requireVideo(ctx, videoID); err != nil {
		return err
	}

	comments, err := controller.store.ListComments(ctx, videoID)
	if err != nil {
		return httperr.Internal("Failed to list comments", err)
	}

	return ec.JSON(http.StatusOK, comments)
}

func (controller *Controller) requireVideo(ctx context.Context, videoID string) error {
	if videoID == "" {
		return httperr.BadRequest("Video ID is required")
	}

	if _, err := controller.store.FindVideoByID(ctx, videoID); err != nil {
		if errors.Is(err, metadata.ErrNotFound) {
			return httperr.NotFound("Video not found")
		}
		return httperr.Internal("Failed to fetch video", err)
	}

	return nil
}
