package tools

// AllTools contains all tool specifications for the China Places MCP server.
// Tool descriptions follow a structured format for LLM tool selection:
// USE WHEN / NOT FOR / PARAMETERS / RETURNS.
var AllTools = []ToolSpec{
	// ==========================================================================
	// CBDB (China Biographical Database)
	// ==========================================================================
	{
		Name:     "cbdb_search_places",
		Method:   "SearchPlaces",
		Title:    "Search CBDB Places",
		Category: "search",
		Source:   "cbdb",
		Description: `Search the China Biographical Database (CBDB) for historical places by name.

USE WHEN: User asks for CBDB location IDs, "find the place 廣州 in CBDB", or needs place IDs to feed into the people-by-place query.

NOT FOR: Gazetteer lookups with year or feature-type facets (use tgaz_search_placenames). Not for finding people (use cbdb_query_people_by_place).

PARAMETERS:
- name: Place name in English or Chinese (required)
- accurate: 0 exact match, 1 fuzzy match (default 1)
- startTime / endTime: Optional bounds on the location's lifespan
- start: Pagination start index (default 1)
- list_length: Results per page (default 10)

RETURNS: The CBDB response: total, start, end, and a data list of places with pId, pName, pNameChn, and related fields. Pagination is server-side.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "cbdb_query_people_by_place",
		Method:   "QueryPeopleByPlace",
		Title:    "Query CBDB People by Place",
		Category: "search",
		Source:   "cbdb",
		Description: `Find people in CBDB associated with specific locations and place-role types.

USE WHEN: User asks "who came from location X", "officials posted in Y", or wants people filtered by dynasty or year range for a set of CBDB place IDs.

NOT FOR: Finding the place IDs themselves (use cbdb_search_places first).

PARAMETERS:
- people_place: CBDB location IDs (required)
- place_type: Role types, any of: individual (origin), entry (entry into service), officePosting (official positions) (required)
- use_date: 1 to enable date filtering (default 0)
- date_type: "dynasty" or "year"
- date_start_time / date_end_time: Year range bounds
- dyn_start / dyn_end: Dynasty code range bounds
- use_xy: 1 to include geographic coordinates (default 0)
- start: Pagination start index (default 1)
- list_length: Results per page (default 50)

RETURNS: The CBDB response: total, start, end, and a data list of people with PersonID, Name, NameChn, PlaceType, and related fields.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},

	// ==========================================================================
	// TGAZ (Temporal Gazetteer)
	// ==========================================================================
	{
		Name:     "tgaz_search_placenames",
		Method:   "SearchPlacenames",
		Title:    "Search Historical Placenames",
		Category: "search",
		Source:   "tgaz",
		Description: `Faceted search of the Temporal Gazetteer (TGAZ) for historical Chinese placenames.

USE WHEN: User asks about historical place names with a year ("places named 龍 around 800 CE"), a feature type ('xian', 'zhou'), or a parent jurisdiction. Names may be Chinese, Pinyin, Tibetan, or Russian.

NOT FOR: CBDB place IDs (use cbdb_search_places). Not for full detail of a known place (use tgaz_get_place).

PARAMETERS:
- name: Place name (required)
- year: Year-of-existence filter, roughly -222 to 1911 for the covered corpus
- feature_type: Placename class, e.g. 'xian', 'zhou', 'cun zhen'
- parent: Immediate parent jurisdiction
- start: Pagination start index (default 1)
- list_length: Results per page (default 10)

RETURNS: The TGAZ response with the placenames list paginated locally (the upstream returns all matches at once), the displayed-result count, and a pagination summary {start, end, total_pages}.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "tgaz_get_place",
		Method:   "GetPlace",
		Title:    "Get Place Details",
		Category: "read",
		Source:   "tgaz",
		Description: `Retrieve the full TGAZ detail record for one historical place by identifier.

USE WHEN: User has a place ID (e.g. 'hvd_80547' from a search result URI) and wants spellings, temporal span, spatial data, or historical context.

NOT FOR: Finding places by name (use tgaz_search_placenames).

PARAMETERS:
- place_id: Place identifier; the hvd_ source prefix is added when missing (required)

RETURNS: The place record as TGAZ serves it: spellings, feature type, temporal and spatial data, historical context, data source, and the free-text source note (passed through verbatim).`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
}
