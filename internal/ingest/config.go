package ingest

import "time"

// Config contains configuration options that allow customization
// of how Videomania detects and processes newly uploaded videos.
type Config struct {
	// Controls the number of workers that can perform ingestions. Reducing
	// to 1 means one ingestion at a time. Each ingestion runs two ffmpeg
	// commands, so this should not exceed the number of available cores.
	IngestionParallelism int `yaml:"parallelism" env:"INGEST_PARALLELISM" env-default:"1"`

	// Some upload paths historically accepted FLV files. When enabled, FLV
	// blobs are ingested alongside the standard video extensions.
	AllowFLV bool `yaml:"allow_flv" env:"INGEST_ALLOW_FLV" env-default:"true"`

	// Items which fail ingestion are retained (for inspection via the API)
	// up to this limit, after which the oldest troubled items are dropped.
	RetainTroubled int `yaml:"retain_troubled" env:"INGEST_RETAIN_TROUBLED" env-default:"50"`

	// The polling source lists the videos container on an interval and
	// submits any blobs it has not seen before.
	PollEnabled bool `yaml:"poll_enabled" env:"INGEST_POLL_ENABLED" env-default:"false"`
	PollSeconds int  `yaml:"poll_seconds" env:"INGEST_POLL_SECONDS" env-default:"30"`
	MaxAttempts int  `yaml:"max_attempts" env:"INGEST_MAX_ATTEMPTS" env-default:"3"`

	// The AMQP source consumes object-created notifications published by
	// the object store. Leaving the URL empty disables the source.
	AMQPURL      string `yaml:"amqp_url" env:"INGEST_AMQP_URL"`
	AMQPQueue    string `yaml:"amqp_queue" env:"INGEST_AMQP_QUEUE" env-default:"videomania.blob-created"`
	AMQPPrefetch int    `yaml:"amqp_prefetch" env:"INGEST_AMQP_PREFETCH" env-default:"1"`
}

func (config *Config) PollInterval() time.Duration {
	if config.PollSeconds <= 0 {
		return 30 * time.Second
	}

	return time.Duration(config.PollSeconds) * time.Second
}

// Targets describes where the workflow reads source videos from and writes
// derived artifacts to, as well as the parameters of each derivation.
type Targets struct {
	VideosContainer     string
	ThumbnailsContainer string
	ProcessedContainer  string

	ThumbnailAtSeconds int
	ResizeWidth        int
	ResizeHeight       int
}
