package metadata

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/hbomb79/Videomania/internal/database"
	"github.com/hbomb79/Videomania/pkg/logger"
	"github.com/jmoiron/sqlx"
)

var (
	ErrUserNotFound    = fmt.Errorf("user %w", ErrNotFound)
	ErrVideoNotFound   = fmt.Errorf("video %w", ErrNotFound)
	ErrCommentNotFound = fmt.Errorf("comment %w", ErrNotFound)

	log = logger.Get("MetadataStore")
)

// Store is the metadata store client. It exposes the three document
// collections (users, videos and comments) directly, along with convenience
// wrappers for the access patterns the API and ingest workflow rely on.
//
// Partition keys: users are partitioned by their own ID, videos by the owning
// user ID, and comments by the ID of the video they belong to.
type Store struct {
	db       database.Manager
	Users    Collection[User]
	Videos   Collection[videoModel]
	Comments Collection[Comment]
}

func NewStore(db database.Manager) *Store {
	return &Store{
		db:       db,
		Users:    newCollection[User]("users", "id", "id", "name", "email"),
		Videos:   newCollection[videoModel]("videos", "user_id", "id", "user_id", "title", "description", "url", "uploaded_at", "processing"),
		Comments: newCollection[Comment]("comments", "video_id", "id", "video_id", "user_id", "text", "created_at"),
	}
}

func (store *Store) conn() database.Queryable { return store.db.GetSqlxDb() }

func (store *Store) AddUser(ctx context.Context, user *User) error {
	return store.Users.Add(ctx, store.conn(), user)
}

func (store *Store) GetUser(ctx context.Context, userID string) (*User, error) {
	user, err := store.Users.Get(ctx, store.conn(), userID, userID)
	return user, mapNotFound(err, ErrUserNotFound)
}

func (store *Store) AddVideo(ctx context.Context, video *Video) error {
	model, err := videoToModel(video)
	if err != nil {
		return err
	}

	return store.Videos.Add(ctx, store.conn(), model)
}

// GetVideo fetches the video using both it's ID and partition key (the owning
// user ID).
func (store *Store) GetVideo(ctx context.Context, videoID string, userID string) (*Video, error) {
	model, err := store.Videos.Get(ctx, store.conn(), videoID, userID)
	if err != nil {
		return nil, mapNotFound(err, ErrVideoNotFound)
	}

	return modelToVideo(model)
}

// ListVideos returns all videos, newest first.
func (store *Store) ListVideos(ctx context.Context) ([]*Video, error) {
	return store.queryVideos(ctx, nil)
}

// FindVideoByID finds a video using only it's ID. As the partition key is not
// known, this is a query across every partition rather than a point read; callers
// which need the partition key (e.g. to delete the video) should use this first.
func (store *Store) FindVideoByID(ctx context.Context, videoID string) (*Video, error) {
	return store.findOneVideo(ctx, squirrel.Eq{"id": videoID})
}

// FindVideoByBlobName finds the video whose url field holds the blob name given.
func (store *Store) FindVideoByBlobName(ctx context.Context, blobName string) (*Video, error) {
	return store.findOneVideo(ctx, squirrel.Eq{"url": blobName})
}

// DeleteVideo deletes the video with the ID and partition key given. ErrVideoNotFound
// is returned if the video does not exist (or exists under a different partition).
func (store *Store) DeleteVideo(ctx context.Context, videoID string, userID string) error {
	return mapNotFound(store.Videos.Delete(ctx, store.conn(), videoID, userID), ErrVideoNotFound)
}

// UpdateVideoProcessing merges the patch provided in to the processing sub-document
// of the video. The full video is read (and locked), patched, and written back inside
// of a single transaction.
func (store *Store) UpdateVideoProcessing(ctx context.Context, videoID string, userID string, patch ProcessingPatch) (*Video, error) {
	var updated *Video
	err := store.db.WrapTx(ctx, func(tx *sqlx.Tx) error {
		model, err := store.Videos.GetForUpdate(ctx, tx, videoID, userID)
		if err != nil {
			return mapNotFound(err, ErrVideoNotFound)
		}

		video, err := modelToVideo(model)
		if err != nil {
			return err
		}
		patch.Apply(video)

		processing, err := processingColumn(video.Processing)
		if err != nil {
			return err
		}

		query, args, err := psql.Update(store.Videos.Name()).
			Set("processing", processing).
			Where(squirrel.Eq{"id": videoID, "user_id": userID}).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to construct video processing update: %w", err)
		}

		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("failed to update video processing for %s: %w", videoID, err)
		}

		updated = video
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Emit(logger.SUCCESS, "Video processing metadata saved for %s\n", videoID)
	return updated, nil
}

func (store *Store) AddComment(ctx context.Context, comment *Comment) error {
	return store.Comments.Add(ctx, store.conn(), comment)
}

// ListComments returns the comments for the video given, oldest first.
func (store *Store) ListComments(ctx context.Context, videoID string) ([]*Comment, error) {
	results, err := store.Comments.Query(ctx, store.conn(), squirrel.Eq{"video_id": videoID}, "created_at ASC")
	if err != nil {
		return nil, err
	}

	out := make([]*Comment, len(results))
	for i := range results {
		out[i] = &results[i]
	}

	return out, nil
}

// DeleteComment deletes a comment. The partition key for a comment is the ID of the
// video it belongs to - NOT the comments own ID. ErrCommentNotFound is returned if
// the comment does not exist under that video.
func (store *Store) DeleteComment(ctx context.Context, commentID string, videoID string) error {
	return mapNotFound(store.Comments.Delete(ctx, store.conn(), commentID, videoID), ErrCommentNotFound)
}

func (store *Store) queryVideos(ctx context.Context, filter squirrel.Sqlizer) ([]*Video, error) {
	models, err := store.Videos.Query(ctx, store.conn(), filter, "uploaded_at DESC")
	if err != nil {
		return nil, err
	}

	out := make([]*Video, len(models))
	for i := range models {
		video, err := modelToVideo(&models[i])
		if err != nil {
			return nil, err
		}
		out[i] = video
	}

	return out, nil
}

func (store *Store) findOneVideo(ctx context.Context, filter squirrel.Sqlizer) (*Video, error) {
	videos, err := store.queryVideos(ctx, filter)
	if err != nil {
		return nil, err
	}

	if len(videos) == 0 {
		return nil, ErrVideoNotFound
	}

	return videos[0], nil
}

func mapNotFound(err error, target error) error {
	if errors.Is(err, ErrNotFound) {
		return target
	}

	return err
}
