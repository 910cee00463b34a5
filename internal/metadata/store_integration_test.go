//go:build integration

package metadata_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/hbomb79/Videomania/internal/metadata"
	"github.com/hbomb79/Videomania/tests/helpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *metadata.Store {
	return metadata.NewStore(helpers.NewTestDatabase(t))
}

func seedVideo(t *testing.T, store *metadata.Store, userID string) *metadata.Video {
	video := &metadata.Video{
		ID:         uuid.NewString(),
		UserID:     userID,
		Title:      "Cat",
		URL:        uuid.NewString() + "_cat.mp4",
		UploadedAt: time.Now().UTC().Truncate(time.Millisecond),
	}
	require.NoError(t, store.AddVideo(context.Background(), video))
	return video
}

func seedComment(t *testing.T, store *metadata.Store, videoID string, createdAt time.Time) *metadata.Comment {
	comment := &metadata.Comment{
		ID:        uuid.NewString(),
		VideoID:   videoID,
		UserID:    metadata.AnonymousUserID,
		Text:      "nice cat",
		CreatedAt: createdAt.UTC().Truncate(time.Millisecond),
	}
	require.NoError(t, store.AddComment(context.Background(), comment))
	return comment
}

func TestStore_VideoRoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := newStore(t)

	video := seedVideo(t, store, "TestUser")

	fetched, err := store.GetVideo(ctx, video.ID, "TestUser")
	require.NoError(t, err)
	assert.Equal(t, video.Title, fetched.Title)
	assert.Equal(t, video.URL, fetched.URL)
	assert.Nil(t, fetched.Processing, "processing must be absent until ingest has run")

	byBlob, err := store.FindVideoByBlobName(ctx, video.URL)
	require.NoError(t, err)
	assert.Equal(t, video.ID, byBlob.ID)

	byID, err := store.FindVideoByID(ctx, video.ID)
	require.NoError(t, err)
	assert.Equal(t, "TestUser", byID.UserID)

	_, err = store.FindVideoByBlobName(ctx, "missing.mp4")
	assert.ErrorIs(t, err, metadata.ErrVideoNotFound)
	assert.ErrorIs(t, err, metadata.ErrNotFound)
}

func TestStore_VideoPartitionKeyMismatch(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := newStore(t)

	video := seedVideo(t, store, "TestUser")

	_, err := store.GetVideo(ctx, video.ID, "SomeoneElse")
	assert.ErrorIs(t, err, metadata.ErrVideoNotFound)

	err = store.DeleteVideo(ctx, video.ID, "SomeoneElse")
	assert.ErrorIs(t, err, metadata.ErrVideoNotFound)

	_, err = store.GetVideo(ctx, video.ID, "TestUser")
	assert.NoError(t, err, "video must survive a delete using the wrong partition key")

	require.NoError(t, store.DeleteVideo(ctx, video.ID, "TestUser"))
	_, err = store.GetVideo(ctx, video.ID, "TestUser")
	assert.ErrorIs(t, err, metadata.ErrVideoNotFound)
}

func TestStore_CommentPartitionKeyMismatch(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := newStore(t)

	video := seedVideo(t, store, "TestUser")
	comment := seedComment(t, store, video.ID, time.Now())

	// The comments own ID is not it's partition key
	err := store.DeleteComment(ctx, comment.ID, comment.ID)
	assert.ErrorIs(t, err, metadata.ErrCommentNotFound)

	comments, err := store.ListComments(ctx, video.ID)
	require.NoError(t, err)
	assert.Len(t, comments, 1)

	require.NoError(t, store.DeleteComment(ctx, comment.ID, video.ID))
	comments, err = store.ListComments(ctx, video.ID)
	require.NoError(t, err)
	assert.Empty(t, comments)
}

func TestStore_ListCommentsOrdering(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := newStore(t)

	video := seedVideo(t, store, "TestUser")
	other := seedVideo(t, store, "TestUser")
	now := time.Now()
	second := seedComment(t, store, video.ID, now)
	first := seedComment(t, store, video.ID, now.Add(-time.Minute))
	seedComment(t, store, other.ID, now)

	comments, err := store.ListComments(ctx, video.ID)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, first.ID, comments[0].ID)
	assert.Equal(t, second.ID, comments[1].ID)
}

func TestStore_UpdateVideoProcessing(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := newStore(t)

	video := seedVideo(t, store, "TestUser")
	processed := true
	thumb := "cat_thumbnail.jpg"
	status := metadata.StatusPartial
	processedAt := time.Now().UTC().Truncate(time.Millisecond)

	updated, err := store.UpdateVideoProcessing(ctx, video.ID, "TestUser", metadata.ProcessingPatch{
		Processed:    &processed,
		ProcessedAt:  &processedAt,
		ThumbnailURL: &thumb,
		Metadata:     &metadata.TechnicalMetadata{Width: 1920, Height: 1080, AudioCodec: "Unknown"},
		Status:       &status,
	})
	require.NoError(t, err)
	assert.Equal(t, thumb, updated.Processing.ThumbnailURL)

	fetched, err := store.GetVideo(ctx, video.ID, "TestUser")
	require.NoError(t, err)
	if assert.NotNil(t, fetched.Processing) {
		assert.True(t, fetched.Processing.Processed)
		assert.True(t, processedAt.Equal(fetched.Processing.ProcessedAt))
		assert.Equal(t, thumb, fetched.Processing.ThumbnailURL)
		assert.Empty(t, fetched.Processing.ResizedVideoURL)
		assert.Equal(t, 1920, fetched.Processing.Metadata.Width)
		assert.Equal(t, metadata.StatusPartial, fetched.Processing.Status)
	}

	_, err = store.UpdateVideoProcessing(ctx, video.ID, "SomeoneElse", metadata.ProcessingPatch{Status: &status})
	assert.ErrorIs(t, err, metadata.ErrVideoNotFound)
}

func TestStore_ListVideosNewestFirst(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := newStore(t)

	older := &metadata.Video{ID: uuid.NewString(), UserID: "TestUser", Title: "Old", URL: "old.mp4", UploadedAt: time.Now().Add(-time.Hour)}
	newer := &metadata.Video{ID: uuid.NewString(), UserID: "TestUser", Title: "New", URL: "new.mp4", UploadedAt: time.Now()}
	require.NoError(t, store.AddVideo(ctx, older))
	require.NoError(t, store.AddVideo(ctx, newer))

	videos, err := store.ListVideos(ctx)
	require.NoError(t, err)
	require.Len(t, videos, 2)
	assert.Equal(t, "New", videos[0].Title)
	assert.Equal(t, "Old", videos[1].Title)
}

func TestStore_Users(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := newStore(t)

	require.NoError(t, store.AddUser(ctx, &metadata.User{ID: "TestUser", Name: "Test", Email: "test@example.com"}))

	user, err := store.GetUser(ctx, "TestUser")
	require.NoError(t, err)
	assert.Equal(t, "test@example.com", user.Email)

	_, err = store.GetUser(ctx, "Nobody")
	assert.ErrorIs(t, err, metadata.ErrUserNotFound)
}
