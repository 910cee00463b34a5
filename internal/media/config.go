package media

import (
	"os"
	"path/filepath"
	"time"
)

type Config struct {
	FfmpegBinPath  string `yaml:"ffmpeg_bin_path" env:"FFMPEG_BIN_PATH" env-default:"ffmpeg"`
	FfprobeBinPath string `yaml:"ffprobe_bin_path" env:"FFPROBE_BIN_PATH" env-default:"ffprobe"`

	// TempDir is where staged source videos and derived artifacts are written
	// while an ingestion is in progress. Defaults to a 'videomania' directory
	// inside of the OS temp dir.
	TempDir string `yaml:"temp_dir" env:"MEDIA_TEMP_DIR"`

	ThumbnailAtSeconds   int `yaml:"thumbnail_at_seconds" env:"THUMBNAIL_AT_SECONDS" env-default:"1"`
	ThumbnailMaxWidth    int `yaml:"thumbnail_max_width" env:"THUMBNAIL_MAX_WIDTH" env-default:"640"`
	ThumbnailMaxHeight   int `yaml:"thumbnail_max_height" env:"THUMBNAIL_MAX_HEIGHT" env-default:"360"`
	ThumbnailJPEGQuality int `yaml:"thumbnail_jpeg_quality" env:"THUMBNAIL_JPEG_QUALITY" env-default:"85"`

	ResizeWidth  int `yaml:"resize_width" env:"RESIZE_WIDTH" env-default:"1280"`
	ResizeHeight int `yaml:"resize_height" env:"RESIZE_HEIGHT" env-default:"720"`

	// The janitor sweeps the temp dir on this (cron) schedule, removing any
	// files older than TempMaxAgeMinutes. Files are only left behind when
	// the process exits mid-ingest; files of an in-flight ingest are skipped.
	TempSweepSchedule string `yaml:"temp_sweep_schedule" env:"TEMP_SWEEP_SCHEDULE" env-default:"@every 30m"`
	TempMaxAgeMinutes int    `yaml:"temp_max_age_minutes" env:"TEMP_MAX_AGE_MINUTES" env-default:"120"`
}

func (config *Config) ResolvedTempDir() string {
	if config.TempDir != "" {
		return config.TempDir
	}

	return filepath.Join(os.TempDir(), "videomania")
}

func (config *Config) TempMaxAge() time.Duration {
	return time.Duration(config.TempMaxAgeMinutes) * time.Minute
}
