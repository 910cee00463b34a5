package videos_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/hbomb79/Videomania/internal/api/httperr"
	"github.com/hbomb79/Videomania/internal/api/videos"
	"github.com/hbomb79/Videomania/internal/api/videos/mocks"
	"github.com/hbomb79/Videomania/internal/blob"
	"github.com/hbomb79/Videomania/internal/metadata"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testConfig = videos.Config{
	VideosContainer:     "videos",
	ThumbnailsContainer: "thumbnails",
	ProcessedContainer:  "processed",
	ReadURLValidity:     24 * time.Hour,
}

func newServer(store videos.Store, blobs videos.BlobStore) *echo.Echo {
	ec := echo.New()
	ec.HTTPErrorHandler = httperr.GetHTTPErrorHandler()
	videos.New(testConfig, store, blobs).SetRoutes(ec.Group("/api"))
	return ec
}

func serve(ec *echo.Echo, method string, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	ec.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) httperr.ErrorResponse {
	var response httperr.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	return response
}

func testVideo() *metadata.Video {
	return &metadata.Video{
		ID:         "video-1",
		UserID:     "alice",
		Title:      "Cat",
		URL:        "https://blobs.example/videos/abc_cat.mp4?sig=old",
		UploadedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestList(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockStore(t)
	store.EXPECT().ListVideos(mock.Anything).Return([]*metadata.Video{testVideo()}, nil).Once()

	rec := serve(newServer(store, mocks.NewMockBlobStore(t)), http.MethodGet, "/api/videos")
	require.Equal(t, http.StatusOK, rec.Code)

	var listed []*metadata.Video
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, "video-1", listed[0].ID)
}

func TestGet_IncludesSignedURLsAndComments(t *testing.T) {
	t.Parallel()

	video := testVideo()
	video.Processing = &metadata.Processing{
		Processed:       true,
		ThumbnailURL:    "abc_thumbnail.jpg",
		ResizedVideoURL: "abc_resized.mp4",
		Status:          metadata.StatusCompleted,
	}

	store := mocks.NewMockStore(t)
	store.EXPECT().FindVideoByID(mock.Anything, "video-1").Return(video, nil).Once()
	store.EXPECT().ListComments(mock.Anything, "video-1").Return([]*metadata.Comment{{ID: "c1", VideoID: "video-1", Text: "nice"}}, nil).Once()

	blobs := mocks.NewMockBlobStore(t)
	blobs.EXPECT().IssueSignedURL(mock.Anything, "videos", "abc_cat.mp4", blob.PermissionRead, 24*time.Hour).Return("signed-video", nil).Once()
	blobs.EXPECT().IssueSignedURL(mock.Anything, "thumbnails", "abc_thumbnail.jpg", blob.PermissionRead, 24*time.Hour).Return("", assert.AnError).Once()
	blobs.EXPECT().IssueSignedURL(mock.Anything, "processed", "abc_resized.mp4", blob.PermissionRead, 24*time.Hour).Return("signed-resized", nil).Once()

	rec := serve(newServer(store, blobs), http.MethodGet, "/api/videos/video-1")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var detail videos.VideoDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
	assert.Equal(t, "video-1", detail.ID)
	assert.Equal(t, "signed-video", detail.VideoURL)
	assert.Empty(t, detail.ThumbnailURL, "failure to sign one URL must not fail the request")
	assert.Equal(t, "signed-resized", detail.ResizedVideoURL)
	require.Len(t, detail.Comments, 1)
	assert.Equal(t, "nice", detail.Comments[0].Text)
}

func TestGet_NotFound(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockStore(t)
	store.EXPECT().FindVideoByID(mock.Anything, "missing").Return(nil, metadata.ErrVideoNotFound).Once()

	rec := serve(newServer(store, mocks.NewMockBlobStore(t)), http.MethodGet, "/api/videos/missing")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, httperr.ErrorResponse{Success: false, Error: "Video not found", Code: "NOT_FOUND"}, decodeError(t, rec))
}

func TestDelete_CascadeContinuesPastFailures(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockStore(t)
	store.EXPECT().FindVideoByID(mock.Anything, "video-1").Return(testVideo(), nil).Once()
	store.EXPECT().ListComments(mock.Anything, "video-1").Return([]*metadata.Comment{
		{ID: "c1", VideoID: "video-1"},
		{ID: "c2", VideoID: "video-1"},
	}, nil).Once()
	store.EXPECT().DeleteComment(mock.Anything, "c1", "video-1").Return(assert.AnError).Once()
	store.EXPECT().DeleteComment(mock.Anything, "c2", "video-1").Return(nil).Once()
	store.EXPECT().DeleteVideo(mock.Anything, "video-1", "alice").Return(nil).Once()

	blobs := mocks.NewMockBlobStore(t)
	blobs.EXPECT().Delete(mock.Anything, "videos", "abc_cat.mp4").Return(assert.AnError).Once()

	rec := serve(newServer(store, blobs), http.MethodDelete, "/api/videos/video-1")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var response videos.DeleteResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.True(t, response.Success)
	assert.Equal(t, "video-1", response.VideoID)
}

func TestDelete_CommentListFailureStillDeletesVideo(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockStore(t)
	store.EXPECT().FindVideoByID(mock.Anything, "video-1").Return(testVideo(), nil).Once()
	store.EXPECT().ListComments(mock.Anything, "video-1").Return(nil, assert.AnError).Once()
	store.EXPECT().DeleteVideo(mock.Anything, "video-1", "alice").Return(nil).Once()

	blobs := mocks.NewMockBlobStore(t)
	blobs.EXPECT().Delete(mock.Anything, "videos", "abc_cat.mp4").Return(nil).Once()

	rec := serve(newServer(store, blobs), http.MethodDelete, "/api/videos/video-1")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	store.AssertNotCalled(t, "DeleteComment", mock.Anything, mock.Anything, mock.Anything)
}

func TestDelete_RecordVanishedIsInconsistent(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockStore(t)
	store.EXPECT().FindVideoByID(mock.Anything, "video-1").Return(testVideo(), nil).Once()
	store.EXPECT().ListComments(mock.Anything, "video-1").Return(nil, nil).Once()
	store.EXPECT().DeleteVideo(mock.Anything, "video-1", "alice").Return(metadata.ErrVideoNotFound).Once()

	blobs := mocks.NewMockBlobStore(t)
	blobs.EXPECT().Delete(mock.Anything, "videos", "abc_cat.mp4").Return(nil).Once()

	rec := serve(newServer(store, blobs), http.MethodDelete, "/api/videos/video-1")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Video found in query but not found during deletion. Database may be inconsistent.", decodeError(t, rec).Error)
}

func TestDelete_UnknownVideo(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockStore(t)
	store.EXPECT().FindVideoByID(mock.Anything, "missing").Return(nil, metadata.ErrVideoNotFound).Once()

	rec := serve(newServer(store, mocks.NewMockBlobStore(t)), http.MethodDelete, "/api/videos/missing")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
