// Package cbdb provides a client for the China Biographical Database (CBDB)
// API at input.cbdb.fas.harvard.edu. It covers the place-listing endpoint and
// the place-person query endpoint.
//
// Successful responses are returned as the decoded JSON payload, untouched:
// the upstream owns its data model and downstream LLM callers consume the
// fields directly.
package cbdb

// Match modes for place-name lookups.
const (
	MatchExact = 0
	MatchFuzzy = 1
)

// Place-role types accepted by the place-person query. The vocabulary is
// fixed by the upstream service.
const (
	PlaceTypeIndividual    = "individual"    // person's origin (籍贯)
	PlaceTypeEntry         = "entry"         // entry into service (入仕)
	PlaceTypeOfficePosting = "officePosting" // official postings (职官)
)

// Date filter types for the place-person query.
const (
	DateTypeDynasty = "dynasty"
	DateTypeYear    = "year"
)

// PlaceQuery is a place-name lookup against the place-listing endpoint.
// Optional time bounds are omitted from the request when nil; everything
// else is always sent.
type PlaceQuery struct {
	Name       string
	Accurate   int // MatchExact or MatchFuzzy
	StartTime  *int
	EndTime    *int
	Start      int
	ListLength int
}

// PlacePersonFilter selects people associated with a set of locations and
// place-role types. The whole filter is JSON-encoded into the single
// RequestPayload query parameter. Unset optional fields are serialized as
// explicit nulls: the upstream expects every key to be present, which is why
// the pointer fields carry no omitempty.
type PlacePersonFilter struct {
	PeoplePlace   []int    `json:"peoplePlace"`
	PlaceType     []string `json:"placeType"`
	UseDate       int      `json:"useDate"`
	DateType      *string  `json:"dateType"`
	DateStartTime *int     `json:"dateStartTime"`
	DateEndTime   *int     `json:"dateEndTime"`
	DynStart      *int     `json:"dynStart"`
	DynEnd        *int     `json:"dynEnd"`
	UseXy         int      `json:"useXy"`
	Start         int      `json:"start"`
	List          int      `json:"list"`
}
