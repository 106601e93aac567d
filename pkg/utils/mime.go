package utils

import "strings"

const imagePrefix = "image/"

var imageExtensions = map[string]string{
	"image/avif":    ".avif",
	"image/bmp":     ".bmp",
	"image/gif":     ".gif",
	"image/heic":    ".heic",
	"image/jpeg":    ".jpg",
	"image/png":     ".png",
	"image/svg+xml": ".svg",
	"image/tiff":    ".tif",
	"image/webp":    ".webp",
	"image/x-icon":  ".ico",
}

// BaseMimeType strips parameters such as "; charset=utf-8" and lowercases.
func BaseMimeType(mimeType string) string {
	return strings.ToLower(strings.TrimSpace(strings.Split(mimeType, ";")[0]))
}

// IsImage reports whether the declared content type is an image type.
func IsImage(mimeType string) bool {
	return strings.HasPrefix(BaseMimeType(mimeType), imagePrefix)
}

// GetExtensionFromMimeType returns a common file extension for an image
// MIME type, or ".bin" when none is known.
func GetExtensionFromMimeType(mimeType string) string {
	if ext, ok := imageExtensions[BaseMimeType(mimeType)]; ok {
		return ext
	}

	return ".bin"
}
