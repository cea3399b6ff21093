package snarf

import (
	"context"
	"regexp"
)

// Record holds the metadata extracted from one saved legacy page. Field
// names match the fixture format expected by the new site's importer.
type Record struct {
	Title           string           `json:"title"`
	Abstract        string           `json:"abstract"`
	ExplanatoryText string           `json:"explanatory_text"`
	Names           []string         `json:"names"`
	Journal         string           `json:"journal,omitempty"`
	ArticleURL      string           `json:"article_url,omitempty"`
	PaperID         string           `json:"legacyid,omitempty"`
	Coders          map[string]Coder `json:"coders"`
	LegacyID        string           `json:"legacy_id"`
}

// Coder describes a reviewer/annotator associated with a paper.
type Coder struct {
	Affiliation string `json:"affiliation,omitempty"`
	Country     string `json:"country,omitempty"`
}

// Validate returns an error if the record contains invalid fields.
func (r *Record) Validate() error {
	if r.LegacyID == "" {
		return Errorf(EINVALID, "record legacy ID required")
	}
	return nil
}

var legacyIDRE = regexp.MustCompile(`\d+`)

// LegacyID returns the first run of digits in a file path, which is the
// legacy site's numeric identifier embedded in the saved file's name
// (e.g. "site.do?siteId=62" → "62"). Returns "" if the path contains
// no digits.
func LegacyID(path string) string {
	return legacyIDRE.FindString(path)
}

// Extractor extracts a metadata record from a saved legacy page.
type Extractor interface {
	// ExtractFile parses the file at path and returns its record.
	// A path with no derivable legacy ID returns (nil, nil): the file is
	// skipped but still occupies a slot in the output sequence.
	ExtractFile(ctx context.Context, path string) (*Record, error)
}

// NameLister lists the author names found in a saved legacy page.
type NameLister interface {
	// AuthorNames parses the file at path and returns the author names in
	// document order, whitespace-collapsed. Unlike ExtractFile it does not
	// require a legacy ID in the path.
	AuthorNames(ctx context.Context, path string) ([]string, error)
}

// RecordWriter writes an ordered sequence of records to storage.
type RecordWriter interface {
	// WriteRecords serializes records in order. Nil entries stand in for
	// files with no derivable legacy ID and serialize as empty objects.
	WriteRecords(ctx context.Context, records []*Record) error
}
