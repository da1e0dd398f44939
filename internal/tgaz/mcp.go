package tgaz

import "context"

// MCP tool wrapper methods.

// SearchPlacenamesMCP is the MCP wrapper for SearchPlacenames.
func (c *Client) SearchPlacenamesMCP(ctx context.Context, args SearchPlacenamesArgs) (map[string]any, error) {
	q := args.query()

	if err := ValidateName(q.Name); err != nil {
		return nil, err
	}
	if err := ValidatePagination(q.Start, q.ListLength); err != nil {
		return nil, err
	}

	return c.SearchPlacenames(ctx, q)
}

// GetPlaceMCP is the MCP wrapper for GetPlace.
func (c *Client) GetPlaceMCP(ctx context.Context, args GetPlaceArgs) (map[string]any, error) {
	if err := ValidatePlaceID(args.PlaceID); err != nil {
		return nil, err
	}
	return c.GetPlace(ctx, args.PlaceID)
}
