package tgaz

import (
	"fmt"

	"github.com/chinahist/places-mcp-server/internal/apierr"
)

// MaxNameLength is the maximum accepted place-name query length.
const MaxNameLength = 500

// MaxListLength caps the requested page size.
const MaxListLength = 500

// ValidateName validates a place-name query. Names may be in any script the
// gazetteer covers (Chinese, Pinyin, Tibetan, Russian, ...), so only
// presence and length are checked.
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

// ValidatePagination validates a client-side pagination cursor.
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

// ValidatePlaceID validates a place identifier for the detail lookup.
// The source prefix is optional; normalization adds it.
func ValidatePlaceID(id string) error {
	if id == "" {
		return apierr.NewValidationError("place_id", "", "place ID is required")
	}
	return nil
}
