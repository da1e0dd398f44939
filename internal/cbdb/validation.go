package cbdb

import (
	"fmt"

	"github.com/chinahist/places-mcp-server/internal/apierr"
)

// MaxNameLength is the maximum accepted place-name query length.
const MaxNameLength = 500

// MaxListLength caps the requested page size.
const MaxListLength = 500

// ValidateName validates a place-name query.
func ValidateName(name string) error {
	if name == "" {
		return apierr.NewValidationError("name", "", "place name is required")
	}
	if len(name) > MaxNameLength {
		return apierr.NewValidationError("name", "",
			fmt.Sprintf("place name exceeds maximum length of %d characters", MaxNameLength))
	}
	return nil
}

// ValidateAccurate validates the match-accuracy flag.
func ValidateAccurate(accurate int) error {
	if accurate != MatchExact && accurate != MatchFuzzy {
		return apierr.NewValidationError("accurate", fmt.Sprintf("%d", accurate),
			"must be 0 (exact) or 1 (fuzzy)")
	}
	return nil
}

// ValidatePagination validates a pagination cursor.
func ValidatePagination(start, listLength int) error {
	if start < 1 {
		return apierr.NewValidationError("start", fmt.Sprintf("%d", start),
			"pagination start must be at least 1")
	}
	if listLength < 1 || listLength > MaxListLength {
		return apierr.NewValidationError("list_length", fmt.Sprintf("%d", listLength),
			fmt.Sprintf("page size must be between 1 and %d", MaxListLength))
	}
	return nil
}

// ValidatePlaceTypes validates the place-role type tags against the fixed
// upstream vocabulary.
func ValidatePlaceTypes(types []string) error {
	if len(types) == 0 {
		return apierr.NewValidationError("place_type", "", "at least one place type is required")
	}
	for _, t := range types {
		switch t {
		case PlaceTypeIndividual, PlaceTypeEntry, PlaceTypeOfficePosting:
		default:
			return apierr.NewValidationError("place_type", t,
				"must be one of: individual, entry, officePosting")
		}
	}
	return nil
}

// ValidatePeoplePlaces validates the location identifier list.
func ValidatePeoplePlaces(ids []int) error {
	if len(ids) == 0 {
		return apierr.NewValidationError("people_place", "", "at least one location ID is required")
	}
	for _, id := range ids {
		if id <= 0 {
			return apierr.NewValidationError("people_place", fmt.Sprintf("%d", id),
				"location IDs must be positive integers")
		}
	}
	return nil
}

// ValidateDateFilter validates the optional date-filtering selectors.
func ValidateDateFilter(useDate int, dateType *string) error {
	if useDate != 0 && useDate != 1 {
		return apierr.NewValidationError("use_date", fmt.Sprintf("%d", useDate),
			"must be 0 (no date filter) or 1 (filter by date)")
	}
	if dateType != nil {
		switch *dateType {
		case DateTypeDynasty, DateTypeYear:
		default:
			return apierr.NewValidationError("date_type", *dateType,
				"must be \"dynasty\" or \"year\"")
		}
	}
	return nil
}
