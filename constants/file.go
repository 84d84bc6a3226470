package constants

import (
	"mime"
	"strings"
)

// Document formats the extractor understands.
const (
	PDF = "PDF"
)

const (
	MediaTypePDF         = "application/pdf"
	MediaTypeOctetStream = "application/octet-stream"
)

// AllowedExtensions holds the file extensions accepted on upload.
var AllowedExtensions = map[string]struct{}{
	"pdf": {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// NormalizeMediaType strips parameters ("; charset=...") and lowercases.
func NormalizeMediaType(mt string) string {
	if parsed, _, err := mime.ParseMediaType(mt); err == nil {
		return parsed
	}
	return strings.ToLower(strings.TrimSpace(strings.Split(mt, ";")[0]))
}

// MapMediaTypeToFormat returns the document format for a media type, or "" if unsupported.
func MapMediaTypeToFormat(mt string) string {
	switch NormalizeMediaType(mt) {
	case MediaTypePDF, "application/x-pdf":
		return PDF
	default:
		return ""
	}
}

// MapExtToFormat returns the document format for a file extension, or "" if unsupported.
func MapExtToFormat(ext string) string {
	if _, ok := AllowedExtensions[NormalizeExt(ext)]; !ok {
		return ""
	}
	return PDF
}
