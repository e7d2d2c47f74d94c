package recording

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Metadata identifies a stored recording without loading its events.
type Metadata struct {
	ID        string
	Name      string
	FilePath  string
	CreatedAt time.Time
}

// LoadMetadata reads the header fields of a .wwrec file.
//
// The loader is strict about the fields it returns: id, name and createdAt
// must be present and createdAt must parse as RFC 3339. A version field is
// optional; when present it must match FormatVersion. Unknown fields are
// ignored.
func LoadMetadata(path string) (*Metadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to read recording file: %w", err)
	}

	var doc struct {
		Version   int `json:"version"`
		Recording *struct {
			ID        string `json:"id"`
			Name      string `json:"name"`
			CreatedAt string `json:"createdAt"`
		} `json:"recording"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformed, path, err)
	}

	// A zero version means the field was absent, which old files are
	// allowed to be.
	if doc.Version != 0 && doc.Version != FormatVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, doc.Version)
	}
	if doc.Recording == nil {
		return nil, fmt.Errorf("%w: %s", ErrMissingRecording, path)
	}
	if doc.Recording.ID == "" {
		return nil, fmt.Errorf("%w: id", ErrMissingField)
	}
	if doc.Recording.Name == "" {
		return nil, fmt.Errorf("%w: name", ErrMissingField)
	}
	if doc.Recording.CreatedAt == "" {
		return nil, fmt.Errorf("%w: createdAt", ErrMissingField)
	}

	createdAt, err := time.Parse(time.RFC3339, doc.Recording.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid createdAt %q", ErrMalformed, doc.Recording.CreatedAt)
	}

	return &Metadata{
		ID:        doc.Recording.ID,
		Name:      doc.Recording.Name,
		FilePath:  path,
		CreatedAt: createdAt,
	}, nil
}

// LoadDocument reads a complete .wwrec file, events included. Documents
// written by old builds with a "steps" array load the same as current ones.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to read recording file: %w", err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformed, path, err)
	}
	if doc.Version != 0 && doc.Version != FormatVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, doc.Version)
	}
	return &doc, nil
}
