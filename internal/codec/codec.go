package codec

import (
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"strings"

	"notesgraph/internal/domain"
)

// Importer interface for reading datasets from various formats
type Importer interface {
	Parse(r io.Reader) (*domain.Dataset, error)
	Format() string
}

// Exporter interface for writing datasets to various formats
type Exporter interface {
	Export(ds *domain.Dataset, w io.Writer) error
	Format() string
}

// Codec both imports and exports
type Codec interface {
	Importer
	Exporter
}

// ForFormat returns the codec registered for a format name
func ForFormat(format string) (Codec, error) {
	switch strings.ToLower(format) {
	case "", "json":
		return NewJSONCodec(), nil
	case "yaml", "yml":
		return NewYAMLCodec(), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// ForPath picks a codec from a file extension, defaulting to JSON
func ForPath(path string) Codec {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return NewYAMLCodec()
	default:
		return NewJSONCodec()
	}
}

// ForContentType picks a codec from an HTTP Content-Type, falling back to
// the URL path's extension and then to JSON
func ForContentType(contentType, path string) Codec {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err == nil {
		switch mediaType {
		case "application/json", "text/json":
			return NewJSONCodec()
		case "application/yaml", "application/x-yaml", "text/yaml", "text/x-yaml":
			return NewYAMLCodec()
		}
	}
	return ForPath(path)
}
