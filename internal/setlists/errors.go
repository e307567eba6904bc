package setlists

import "streamdesk-backend/internal/shared/fault"

var (
	ErrSetlistNotFound = fault.NewNotFound("setlist_not_found", "Setlist not found")
	ErrItemNotFound    = fault.NewNotFound("setlist_item_not_found", "Setlist item not found")
)
