package cbdb

import "context"

// MCP tool wrapper methods. They validate the typed tool arguments, apply
// defaults, and delegate to the client. The successful result is the
// upstream payload as-is.

// SearchPlacesMCP is the MCP wrapper for SearchPlaces.
func (c *Client) SearchPlacesMCP(ctx context.Context, args SearchPlacesArgs) (map[string]any, error) {
	q := args.query()

	if err := ValidateName(q.Name); err != nil {
		return nil, err
	}
	if err := ValidateAccurate(q.Accurate); err != nil {
		return nil, err
	}
	if err := ValidatePagination(q.Start, q.ListLength); err != nil {
		return nil, err
	}

	return c.SearchPlaces(ctx, q)
}

// QueryPeopleByPlaceMCP is the MCP wrapper for QueryPeopleByPlace.
func (c *Client) QueryPeopleByPlaceMCP(ctx context.Context, args QueryPeopleByPlaceArgs) (map[string]any, error) {
	f := args.filter()

	if err := ValidatePeoplePlaces(f.PeoplePlace); err != nil {
		return nil, err
	}
	if err := ValidatePlaceTypes(f.PlaceType); err != nil {
		return nil, err
	}
	if err := ValidateDateFilter(f.UseDate, f.DateType); err != nil {
		return nil, err
	}
	if err := ValidatePagination(f.Start, f.List); err != nil {
		return nil, err
	}

	return c.QueryPeopleByPlace(ctx, f)
}
