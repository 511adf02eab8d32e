package utils

import (
	"mime"
	"path/filepath"
	"strings"
)

var imageTypes = []string{
	"image/jpeg",
	"image/jpg",
	"image/png",
	"image/gif",
	"image/webp",
	"image/bmp",
	"image/tiff",
}

// IsValidImageType checks if content type is a valid image type
func IsValidImageType(contentType string) bool {
	ct := strings.ToLower(contentType)
	for _, validType := range imageTypes {
		if strings.Contains(ct, validType) {
			return true
		}
	}
	return false
}

// ContentTypeByPath guesses a content type from the file extension only.
func ContentTypeByPath(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case "":
		return ""
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".webp":
		return "image/webp"
	case ".tif", ".tiff":
		return "image/tiff"
	case ".bmp":
		return "image/bmp"
	}
	return mime.TypeByExtension(ext)
}

// LooksLikeImage reports whether path has an image file extension. The file
// is not opened.
func LooksLikeImage(path string) bool {
	return IsValidImageType(ContentTypeByPath(path))
}
