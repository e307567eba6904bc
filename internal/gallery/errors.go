package gallery

import "streamdesk-backend/internal/shared/fault"

var (
	ErrItemNotFound  = fault.NewNotFound("gallery_item_not_found", "Gallery item not found")
	ErrGroupNotFound = fault.NewNotFound("gallery_group_not_found", "Gallery group not found")
)
