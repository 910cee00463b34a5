package ingest

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type (
	// BlobEvent is delivered by an event source when a new blob is created
	// in a watched container.
	BlobEvent struct {
		Container string `json:"container"`
		BlobName  string `json:"blob_name"`
		Size      int64  `json:"size"`
		Source    string `json:"source"`

		// Ack is called exactly once with the result of the ingestion, allowing
		// the source to apply it's redelivery policy. It may be nil.
		Ack func(error) `json:"-"`
	}

	IngestItemState int

	// IngestItem is the services record of a single blob event, from the time it is
	// submitted until it is ingested successfully (at which point it is dropped).
	IngestItem struct {
		ID        uuid.UUID       `json:"id"`
		Event     BlobEvent       `json:"event"`
		State     IngestItemState `json:"state"`
		Stage     State           `json:"stage"`
		VideoID   string          `json:"video_id,omitempty"`
		Error     string          `json:"error,omitempty"`
		CreatedAt time.Time       `json:"created_at"`
	}
)

const (
	IDLE IngestItemState = iota
	INGESTING
	TROUBLED
	COMPLETE
)

func (state IngestItemState) String() string {
	switch state {
	case IDLE:
		return "IDLE"
	case INGESTING:
		return "INGESTING"
	case TROUBLED:
		return "TROUBLED"
	case COMPLETE:
		return "COMPLETE"
	}

	return fmt.Sprintf("UNKNOWN[%d]", state)
}

func (state IngestItemState) MarshalText() ([]byte, error) {
	return []byte(state.String()), nil
}

func (event BlobEvent) String() string {
	return fmt.Sprintf("%s/%s", event.Container, event.BlobName)
}

func (event BlobEvent) ack(err error) {
	if event.Ack != nil {
		event.Ack(err)
	}
}

func (item *IngestItem) String() string {
	return fmt.Sprintf("IngestItem{ID=%s Blob=%s State=%s Stage=%s}", item.ID, item.Event, item.State, item.Stage)
}
