package setlists

import "streamdesk-backend/internal/fixtures"

// Reorder lays items out in the order of ids and renumbers positions from 1.
// Ids with no matching item are echoed as bare entries so the result mirrors the request.
func Reorder(setlistID string, items []fixtures.SetlistItem, ids []string) []fixtures.SetlistItem {
	byID := make(map[string]fixtures.SetlistItem, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}
	out := make([]fixtures.SetlistItem, 0, len(ids))
	for i, id := range ids {
		item, ok := byID[id]
		if !ok {
			item = fixtures.SetlistItem{ID: id, SetlistID: setlistID}
		}
		item.Position = i + 1
		out = append(out, item)
	}
	return out
}
