// Package goquery implements metadata extraction from saved legacy pages
// using the goquery HTML parsing and CSS selection library.
package goquery

import (
	"context"
	"os"
	"regexp"

	"github.com/PuerkitoBio/goquery"
	"github.com/companionsite/snarf"
)

// Ensure Extractor implements the domain interfaces at compile time.
var (
	_ snarf.Extractor  = (*Extractor)(nil)
	_ snarf.NameLister = (*Extractor)(nil)
)

// paperAnchorRE matches internal abstract anchors like "#abstract-paper-62"
// and captures the numeric paper id.
var paperAnchorRE = regexp.MustCompile(`abstract-paper-(\d+)`)

// Extractor extracts metadata records from saved legacy pages.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractFile parses the file at path and returns its metadata record.
// A path with no digit run has no derivable legacy ID and returns (nil, nil).
// An unreadable or unparsable file is fatal; missing page elements are not.
func (e *Extractor) ExtractFile(ctx context.Context, path string) (*snarf.Record, error) {
	legacyID := snarf.LegacyID(path)
	if legacyID == "" {
		return nil, nil
	}

	doc, err := parseFile(path)
	if err != nil {
		return nil, err
	}

	rec := &snarf.Record{
		LegacyID: legacyID,
		Names:    authorNames(doc),
		Coders:   make(map[string]snarf.Coder),
	}

	// The importer takes the title verbatim; every other text field is
	// whitespace-collapsed.
	rec.Title = doc.Find("title").First().Text()
	rec.Abstract = snarf.CleanText(doc.Find("div#abstract-paper-" + legacyID + " > div.middle-abstract-paper").First().Text())
	rec.ExplanatoryText = snarf.CleanText(doc.Find("#top-resume-code").First().Text())

	extractJournal(doc, rec)
	extractCoders(doc, rec)

	return rec, nil
}

// AuthorNames parses the file at path and returns the author names in
// document order. It does not require a legacy ID in the path.
func (e *Extractor) AuthorNames(ctx context.Context, path string) ([]string, error) {
	doc, err := parseFile(path)
	if err != nil {
		return nil, err
	}
	return authorNames(doc), nil
}

// parseFile reads and parses a saved page. Parse errors and read errors are
// fatal to the whole run, so they carry application error codes for the CLI.
func parseFile(path string) (*goquery.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, snarf.Errorf(snarf.ENOTFOUND, "file %q not found", path)
		}
		return nil, snarf.Errorf(snarf.EINTERNAL, "failed to read %q: %v", path, err)
	}
	defer f.Close()

	doc, err := goquery.NewDocumentFromReader(f)
	if err != nil {
		return nil, snarf.Errorf(snarf.EINVALID, "failed to parse HTML in %q: %v", path, err)
	}
	return doc, nil
}

// authorNames collects the direct child spans of the author-names container.
func authorNames(doc *goquery.Document) []string {
	names := []string{}
	doc.Find("div#author-names > span").Each(func(_ int, sel *goquery.Selection) {
		names = append(names, snarf.CleanText(sel.Text()))
	})
	return names
}

// extractJournal fills the journal name and link fields from the first span
// of the journal container. When a span holds several anchors of the same
// kind, the last one wins for both the paper id and the article URL.
func extractJournal(doc *goquery.Document, rec *snarf.Record) {
	span := doc.Find("div#journal > span").First()
	if span.Length() == 0 {
		return
	}
	rec.Journal = snarf.CleanText(span.Text())

	span.Find("a").Each(func(_ int, a *goquery.Selection) {
		href, ok := a.Attr("href")
		if !ok {
			return
		}
		if m := paperAnchorRE.FindStringSubmatch(href); m != nil {
			rec.PaperID = m[1]
		} else {
			rec.ArticleURL = href
		}
	})
}

// extractCoders scans the fixed-width float divs that hold coder cards in
// the legacy slides markup. Blocks without a name paragraph are skipped;
// for duplicate names the first occurrence wins and later blocks are
// ignored entirely, even if they carry different affiliation or country.
func extractCoders(doc *goquery.Document, rec *snarf.Record) {
	doc.Find(`div[style="width: 180px; float: left;"]`).Each(func(_ int, div *goquery.Selection) {
		nameSel := div.Find("p.name").First()
		if nameSel.Length() == 0 {
			return
		}
		name := snarf.CleanText(nameSel.Text())
		if _, ok := rec.Coders[name]; ok {
			return
		}

		var coder snarf.Coder
		if aff := div.Find("p.affiliation").First(); aff.Length() > 0 {
			coder.Affiliation = snarf.CleanText(aff.Text())
		}
		if country := div.Find("p.country").First(); country.Length() > 0 {
			coder.Country = snarf.CleanText(country.Text())
		}
		rec.Coders[name] = coder
	})
}
