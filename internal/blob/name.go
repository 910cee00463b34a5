package blob

import "strings"

// NormalizeBlobName returns the bare blob name for a value stored against a
// video. Depending on where it was written, the stored value may be the blob
// name itself, or a full (possibly signed) URL to the blob. Any query string
// is removed, followed by everything up to and including the last '/'.
func NormalizeBlobName(stored string) string {
	name, _, _ := strings.Cut(stored, "?")
	if idx := strings.LastIndexByte(name, '/'); idx >= 0 {
		name = name[idx+1:]
	}

	return name
}
