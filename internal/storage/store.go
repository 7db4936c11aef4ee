// Package storage persists collected study documents. Every document is
// written as a timestamp-named JSON file; a remote upload to a Google
// Drive folder is attempted when credentials are configured, and a local
// write happens regardless of the remote outcome.
package storage

import (
	"context"
	"fmt"
	"time"
)

// studyMetadata is stamped into every persisted document, matching the
// layout the study analysis scripts expect.
var studyMetadata = map[string]string{
	"project":     "FormularIQ - LLM-gestützte Formularbearbeitung",
	"institution": "HAW Hamburg",
	"researcher":  "Moritz Treu",
	"version":     "2.0.0",
}

// Filename builds the timestamped document name for a prefix. Names are
// unique under single-threaded request handling; sub-second collisions
// with an identical prefix are an accepted risk.
func Filename(prefix string, t time.Time) string {
	return fmt.Sprintf("%s_%s.json", prefix, t.Format("20060102_150405"))
}

// Stamp adds the timestamp and study metadata block to a document.
func Stamp(doc map[string]any, t time.Time) map[string]any {
	doc["timestamp"] = t.Format(time.RFC3339)
	doc["study_metadata"] = studyMetadata
	return doc
}

// RemoteStore uploads a named JSON document into the well-known study
// folder, creating the folder if it does not exist yet.
type RemoteStore interface {
	Upload(ctx context.Context, filename string, content []byte) (id, url string, err error)
}
