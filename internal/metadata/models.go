package metadata

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx/types"
)

const (
	// AnonymousUserID is the author recorded against comments
	// which were submitted without a user ID.
	AnonymousUserID = "Anonymous"

	StatusCompleted = "completed"
	StatusPartial   = "partial"
)

type (
	User struct {
		ID    string `db:"id" json:"id"`
		Name  string `db:"name" json:"name"`
		Email string `db:"email" json:"email"`
	}

	// Video is the public representation of a video document. URL holds the
	// blob name of the uploaded source video (not a fully qualified URL).
	// Processing is nil until the ingest workflow has persisted its results.
	Video struct {
		ID          string      `json:"id"`
		UserID      string      `json:"userId"`
		Title       string      `json:"title"`
		Description *string     `json:"description,omitempty"`
		URL         string      `json:"url"`
		UploadedAt  time.Time   `json:"uploadedAt"`
		Processing  *Processing `json:"processing,omitempty"`
	}

	Processing struct {
		Processed       bool               `json:"processed"`
		ProcessedAt     time.Time          `json:"processedAt"`
		ThumbnailURL    string             `json:"thumbnailUrl"`
		ResizedVideoURL string             `json:"resizedVideoUrl"`
		Metadata        *TechnicalMetadata `json:"metadata,omitempty"`
		Status          string             `json:"status"`
	}

	TechnicalMetadata struct {
		Duration   float64 `json:"duration"`
		Width      int     `json:"width"`
		Height     int     `json:"height"`
		VideoCodec string  `json:"videoCodec"`
		AudioCodec string  `json:"audioCodec"`
		FrameRate  float64 `json:"frameRate"`
		BitRate    int64   `json:"bitRate"`
	}

	Comment struct {
		ID        string    `db:"id" json:"id"`
		VideoID   string    `db:"video_id" json:"videoId"`
		UserID    string    `db:"user_id" json:"userId"`
		Text      string    `db:"text" json:"text"`
		CreatedAt time.Time `db:"created_at" json:"createdAt"`
	}

	// videoModel is the row representation of a video. The processing
	// sub-document is stored as (nullable) JSONB.
	videoModel struct {
		ID          string             `db:"id"`
		UserID      string             `db:"user_id"`
		Title       string             `db:"title"`
		Description *string            `db:"description"`
		URL         string             `db:"url"`
		UploadedAt  time.Time          `db:"uploaded_at"`
		Processing  types.NullJSONText `db:"processing"`
	}
)

func processingColumn(processing *Processing) (types.NullJSONText, error) {
	if processing == nil {
		return types.NullJSONText{}, nil
	}

	raw, err := json.Marshal(processing)
	if err != nil {
		return types.NullJSONText{}, fmt.Errorf("failed to marshal video processing: %w", err)
	}

	return types.NullJSONText{JSONText: types.JSONText(raw), Valid: true}, nil
}

func videoToModel(v *Video) (*videoModel, error) {
	processing, err := processingColumn(v.Processing)
	if err != nil {
		return nil, err
	}

	return &videoModel{
		ID:          v.ID,
		UserID:      v.UserID,
		Title:       v.Title,
		Description: v.Description,
		URL:         v.URL,
		UploadedAt:  v.UploadedAt,
		Processing:  processing,
	}, nil
}

func modelToVideo(m *videoModel) (*Video, error) {
	var processing *Processing
	if m.Processing.Valid {
		processing = &Processing{}
		if err := m.Processing.Unmarshal(processing); err != nil {
			return nil, fmt.Errorf("failed to unmarshal processing of video %s: %w", m.ID, err)
		}
	}

	return &Video{
		ID:          m.ID,
		UserID:      m.UserID,
		Title:       m.Title,
		Description: m.Description,
		URL:         m.URL,
		UploadedAt:  m.UploadedAt,
		Processing:  processing,
	}, nil
}
