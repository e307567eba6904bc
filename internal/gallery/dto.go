package gallery

type createItemRequest struct {
	Title    string   `json:"title" binding:"required"`
	ImageURL string   `json:"imageUrl" binding:"required"`
	GroupID  string   `json:"groupId"`
	Tags     []string `json:"tags"`
}

type updateItemRequest struct {
	Title    *string  `json:"title"`
	ImageURL *string  `json:"imageUrl"`
	GroupID  *string  `json:"groupId"`
	Tags     []string `json:"tags"`
}

type createGroupRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type updateGroupRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

type deletedResponse struct {
	ID string `json:"id"`
}
