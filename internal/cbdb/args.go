package cbdb

// SearchPlacesArgs contains parameters for the place search tool. The field
// names mirror the upstream parameter names so existing callers keep
// working.
type SearchPlacesArgs struct {
	Name       string `json:"name" jsonschema:"required" jsonschema_description:"Place name to search for, in English or Chinese"`
	Accurate   *int   `json:"accurate,omitempty" jsonschema_description:"Matching mode: 0 for exact match, 1 for fuzzy match (default 1)"`
	StartTime  *int   `json:"startTime,omitempty" jsonschema_description:"Start time filter for location lifespan"`
	EndTime    *int   `json:"endTime,omitempty" jsonschema_description:"End time filter for location lifespan"`
	Start      int    `json:"start,omitempty" jsonschema_description:"Pagination start index (default 1)"`
	ListLength int    `json:"list_length,omitempty" jsonschema_description:"Number of results per page (default 10)"`
}

// query applies defaults and converts the tool arguments to a PlaceQuery.
func (a SearchPlacesArgs) query() PlaceQuery {
	q := PlaceQuery{
		Name:       a.Name,
		Accurate:   MatchFuzzy,
		StartTime:  a.StartTime,
		EndTime:    a.EndTime,
		Start:      a.Start,
		ListLength: a.ListLength,
	}
	if a.Accurate != nil {
		q.Accurate = *a.Accurate
	}
	if q.Start == 0 {
		q.Start = 1
	}
	if q.ListLength == 0 {
		q.ListLength = 10
	}
	return q
}

// QueryPeopleByPlaceArgs contains parameters for the place-person query tool.
type QueryPeopleByPlaceArgs struct {
	PeoplePlace   []int    `json:"people_place" jsonschema:"required" jsonschema_description:"List of CBDB location IDs to search for"`
	PlaceType     []string `json:"place_type" jsonschema:"required" jsonschema_description:"Place-role types to filter by: individual (origin), entry (entry into service), officePosting (official positions)"`
	UseDate       int      `json:"use_date,omitempty" jsonschema_description:"Whether to filter by date: 1 yes, 0 no (default 0)"`
	DateType      *string  `json:"date_type,omitempty" jsonschema_description:"Date filter type: dynasty or year"`
	DateStartTime *int     `json:"date_start_time,omitempty" jsonschema_description:"Start year for filtering"`
	DateEndTime   *int     `json:"date_end_time,omitempty" jsonschema_description:"End year for filtering"`
	DynStart      *int     `json:"dyn_start,omitempty" jsonschema_description:"Start dynasty code for filtering"`
	DynEnd        *int     `json:"dyn_end,omitempty" jsonschema_description:"End dynasty code for filtering"`
	UseXy         int      `json:"use_xy,omitempty" jsonschema_description:"Whether to include geographic coordinates: 1 yes, 0 no (default 0)"`
	Start         int      `json:"start,omitempty" jsonschema_description:"Pagination start index (default 1)"`
	ListLength    int      `json:"list_length,omitempty" jsonschema_description:"Number of results per page (default 50)"`
}

// filter applies defaults and converts the tool arguments to a
// PlacePersonFilter. Unset optionals stay nil and serialize as nulls.
func (a QueryPeopleByPlaceArgs) filter() PlacePersonFilter {
	f := PlacePersonFilter{
		PeoplePlace:   a.PeoplePlace,
		PlaceType:     a.PlaceType,
		UseDate:       a.UseDate,
		DateType:      a.DateType,
		DateStartTime: a.DateStartTime,
		DateEndTime:   a.DateEndTime,
		DynStart:      a.DynStart,
		DynEnd:        a.DynEnd,
		UseXy:         a.UseXy,
		Start:         a.Start,
		List:          a.ListLength,
	}
	if f.Start == 0 {
		f.Start = 1
	}
	if f.List == 0 {
		f.List = 50
	}
	return f
}
