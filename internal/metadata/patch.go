package metadata

import "time"

// ProcessingPatch is a typed partial update of a videos processing
// sub-document. Nil fields are left untouched when the patch is applied.
type ProcessingPatch struct {
	Processed       *bool
	ProcessedAt     *time.Time
	ThumbnailURL    *string
	ResizedVideoURL *string
	Metadata        *TechnicalMetadata
	Status          *string
}

// Apply merges the patch in to the video provided, creating the
// processing sub-document if the video does not have one yet.
func (patch ProcessingPatch) Apply(video *Video) {
	if video.Processing == nil {
		video.Processing = &Processing{}
	}

	p := video.Processing
	if patch.Processed != nil {
		p.Processed = *patch.Processed
	}
	if patch.ProcessedAt != nil {
		p.ProcessedAt = *patch.ProcessedAt
	}
	if patch.ThumbnailURL != nil {
		p.ThumbnailURL = *patch.ThumbnailURL
	}
	if patch.ResizedVideoURL != nil {
		p.ResizedVideoURL = *patch.ResizedVideoURL
	}
	if patch.Metadata != nil {
		meta := *patch.Metadata
		p.Metadata = &meta
	}
	if patch.Status != nil {
		p.Status = *patch.Status
	}
}
