package tgaz

// SearchPlacenamesArgs contains parameters for the gazetteer search tool.
type SearchPlacenamesArgs struct {
	Name        string `json:"name" jsonschema:"required" jsonschema_description:"Place name to search for. Chinese, Pinyin, Tibetan, and Russian are supported"`
	Year        *int   `json:"year,omitempty" jsonschema_description:"Year-of-existence filter (covered corpus roughly -222 to 1911)"`
	FeatureType string `json:"feature_type,omitempty" jsonschema_description:"Feature type of the placename, e.g. 'xian', 'zhou', 'cun zhen'"`
	Parent      string `json:"parent,omitempty" jsonschema_description:"Immediate parent jurisdiction of the place"`
	Start       int    `json:"start,omitempty" jsonschema_description:"Pagination start index (default 1)"`
	ListLength  int    `json:"list_length,omitempty" jsonschema_description:"Number of results per page (default 10)"`
}

// query applies defaults and converts the tool arguments to a
// GazetteerQuery.
func (a SearchPlacenamesArgs) query() GazetteerQuery {
	q := GazetteerQuery{
		Name:        a.Name,
		Year:        a.Year,
		FeatureType: a.FeatureType,
		Parent:      a.Parent,
		Start:       a.Start,
		ListLength:  a.ListLength,
	}
	if q.Start == 0 {
		q.Start = 1
	}
	if q.ListLength == 0 {
		q.ListLength = 10
	}
	return q
}

// GetPlaceArgs contains parameters for the place detail tool.
type GetPlaceArgs struct {
	PlaceID string `json:"place_id" jsonschema:"required" jsonschema_description:"Place identifier, with or without the hvd_ source prefix (e.g. 'hvd_80547' or '80547')"`
}
