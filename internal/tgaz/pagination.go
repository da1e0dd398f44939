package tgaz

import "strconv"

// Paginate applies client-side pagination to a search payload, in place.
// The upstream returns the full match list; this slices it to the window
// [start-1, start-1+listLength), rewrites the displayed-count field as the
// slice length in text form, and attaches a pagination summary. Payloads
// without a non-empty placename list are left alone.
func Paginate(payload map[string]any, start, listLength int) {
	raw, ok := payload["placenames"]
	if !ok {
		return
	}
	names, ok := raw.([]any)
	if !ok || len(names) == 0 {
		return
	}

	total := len(names)
	page := []any{}
	if start <= total {
		end := start - 1 + listLength
		if end > total {
			end = total
		}
		page = names[start-1 : end]
	}

	// The ending index is clamped to the full count; an empty window
	// reports its own start.
	endIndex := start
	if len(page) > 0 {
		endIndex = start + len(page) - 1
		if endIndex > total {
			endIndex = total
		}
	}

	payload["placenames"] = page
	payload["count of displayed results"] = strconv.Itoa(len(page))
	payload["pagination"] = map[string]any{
		"start":       start,
		"end":         endIndex,
		"total_pages": (total + listLength - 1) / listLength,
	}
}
