package security

import (
	"bytes"
	"path/filepath"
	"strings"
)

// FileValidationResult contains the result of file validation
type FileValidationResult struct {
	Valid        bool
	Extension    string
	DetectedMIME string
	Error        string
}

// Magic byte prefixes per allowed image extension
var magicBytes = map[string][][]byte{
	".jpg":  {{0xFF, 0xD8, 0xFF}},
	".jpeg": {{0xFF, 0xD8, 0xFF}},
	".png":  {{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}},
	".gif":  {{0x47, 0x49, 0x46, 0x38, 0x37, 0x61}, {0x47, 0x49, 0x46, 0x38, 0x39, 0x61}},
	".webp": {{0x52, 0x49, 0x46, 0x46}},
}

var imageMIMETypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// ValidateImage checks an upload in three layers: extension whitelist,
// magic bytes matching the extension, and an image/* MIME type.
// application/octet-stream is always rejected.
func ValidateImage(filename string, data []byte, detectedMIME string) FileValidationResult {
	result := FileValidationResult{DetectedMIME: detectedMIME}

	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		result.Error = "file has no extension"
		return result
	}
	result.Extension = ext

	signatures, ok := magicBytes[ext]
	if !ok {
		result.Error = "file extension not allowed: " + ext
		return result
	}

	if !hasPrefix(data, signatures) {
		result.Error = "file content does not match extension"
		return result
	}
	if ext == ".webp" && (len(data) < 12 || !bytes.Equal(data[8:12], []byte("WEBP"))) {
		result.Error = "file content does not match extension"
		return result
	}

	if !imageMIMETypes[detectedMIME] {
		result.Error = "only image files are allowed"
		return result
	}

	result.Valid = true
	return result
}

func hasPrefix(data []byte, signatures [][]byte) bool {
	for _, sig := range signatures {
		if bytes.HasPrefix(data, sig) {
			return true
		}
	}
	return false
}

// AllowedImageExtensions lists the accepted extensions for error messages
func AllowedImageExtensions() []string {
	return []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}
}
