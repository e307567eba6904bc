package setlists

type createSetlistRequest struct {
	Title      string `json:"title" binding:"required"`
	StreamDate string `json:"streamDate"`
	Notes      string `json:"notes"`
}

type updateSetlistRequest struct {
	Title      *string `json:"title"`
	StreamDate *string `json:"streamDate"`
	Notes      *string `json:"notes"`
}

type createItemRequest struct {
	Title       string `json:"title" binding:"required"`
	Artist      string `json:"artist"`
	DurationSec int    `json:"durationSec" binding:"gte=0"`
}

type updateItemRequest struct {
	Title       *string `json:"title"`
	Artist      *string `json:"artist"`
	DurationSec *int    `json:"durationSec" binding:"omitempty,gte=0"`
}

type reorderRequest struct {
	ItemIDs []string `json:"itemIds" binding:"required,min=1"`
}

type deletedResponse struct {
	ID string `json:"id"`
}
