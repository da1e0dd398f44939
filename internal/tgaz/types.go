// Package tgaz provides a client for the Temporal Gazetteer (TGAZ) at
// tgaz.fudan.edu.cn, covering faceted place-name search and per-place detail
// lookup.
//
// The search endpoint does not paginate, so pagination is applied locally
// over the fetched match list. Detail payloads pass through untouched; in
// particular the free-text "source note" field is sometimes a malformed JSON
// fragment embedded as a string and is deliberately never re-parsed.
package tgaz

// Year bounds of the covered Chinese corpus. The upstream does not enforce
// them and neither do we; they are documented for callers.
const (
	CorpusYearMin = -222
	CorpusYearMax = 1911
)

// GazetteerQuery is a faceted place-name search. Only provided facets are
// sent; pagination happens client-side after the fetch.
type GazetteerQuery struct {
	Name        string
	Year        *int
	FeatureType string // e.g. "xian", "zhou", "cun zhen"
	Parent      string // immediate parent jurisdiction
	Start       int
	ListLength  int
}
