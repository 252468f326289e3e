// Package constants holds shared domain-level constant values.
package constants

// Supported pub/sub providers.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// MaxImageSizeBytes is the upper bound on an uploaded product image.
const MaxImageSizeBytes = 5 * 1024 * 1024

// Accepted image content types.
const (
	ImageTypeJPEG = "image/jpeg"
	ImageTypePNG  = "image/png"
	ImageTypeGIF  = "image/gif"
)
