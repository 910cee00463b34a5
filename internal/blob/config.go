package blob

import "time"

const (
	defaultUploadURLValidity = 30 * time.Minute
	defaultReadURLValidity   = 24 * time.Hour
)

// Config contains the connection settings for the object store, as well
// as the names of the containers (buckets) Videomania stores it's data in.
type Config struct {
	// Endpoint overrides the default AWS endpoint resolution, and should be
	// set when targeting an S3 compatible gateway such as MinIO.
	Endpoint        string `yaml:"endpoint" env:"BLOB_ENDPOINT"`
	Region          string `yaml:"region" env:"BLOB_REGION" env-default:"us-east-1"`
	AccessKeyID     string `yaml:"access_key_id" env:"BLOB_ACCESS_KEY_ID"`
	SecretAccessKey string `yaml:"secret_access_key" env:"BLOB_SECRET_ACCESS_KEY"`
	UsePathStyle    bool   `yaml:"use_path_style" env:"BLOB_USE_PATH_STYLE" env-default:"false"`

	VideosContainer     string `yaml:"videos_container" env:"BLOB_VIDEOS_CONTAINER" env-default:"videos"`
	ThumbnailsContainer string `yaml:"thumbnails_container" env:"BLOB_THUMBNAILS_CONTAINER" env-default:"thumbnails"`
	ProcessedContainer  string `yaml:"processed_container" env:"BLOB_PROCESSED_CONTAINER" env-default:"processed-videos"`

	UploadURLValidityMinutes int `yaml:"upload_url_validity_minutes" env:"BLOB_UPLOAD_URL_VALIDITY_MINUTES" env-default:"30"`
	ReadURLValidityHours     int `yaml:"read_url_validity_hours" env:"BLOB_READ_URL_VALIDITY_HOURS" env-default:"24"`
}

// Containers returns the name of every container Videomania requires.
func (config *Config) Containers() []string {
	return []string{config.VideosContainer, config.ThumbnailsContainer, config.ProcessedContainer}
}

func (config *Config) UploadURLValidity() time.Duration {
	if config.UploadURLValidityMinutes <= 0 {
		return defaultUploadURLValidity
	}

	return time.Duration(config.UploadURLValidityMinutes) * time.Minute
}

func (config *Config) ReadURLValidity() time.Duration {
	if config.ReadURLValidityHours <= 0 {
		return defaultReadURLValidity
	}

	return time.Duration(config.ReadURLValidityHours) * time.Hour
}
