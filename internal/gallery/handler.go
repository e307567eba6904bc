package gallery

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"streamdesk-backend/internal/fixtures"
	"streamdesk-backend/internal/shared/server/request"
	"streamdesk-backend/internal/shared/server/respond"
)

// Handler serves gallery items and gallery groups from fixtures.
type Handler struct {
	Items  func() []fixtures.GalleryItem
	Groups func() []fixtures.GalleryGroup
	Now    func() time.Time
	NewID  func() string
}

// NewHandler constructs a Handler over the given datasets.
func NewHandler(items func() []fixtures.GalleryItem, groups func() []fixtures.GalleryGroup) *Handler {
	return &Handler{
		Items:  items,
		Groups: groups,
		Now:    time.Now,
		NewID:  uuid.NewString,
	}
}

// RegisterRoutes attaches gallery routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/gallery", h.listItems)
	rg.POST("/gallery", h.createItem)
	rg.GET("/gallery/:id", h.getItem)
	rg.PUT("/gallery/:id", h.updateItem)
	rg.DELETE("/gallery/:id", h.deleteItem)

	rg.GET("/gallery-groups", h.listGroups)
	rg.POST("/gallery-groups", h.createGroup)
	rg.GET("/gallery-groups/:id", h.getGroup)
	rg.PUT("/gallery-groups/:id", h.updateGroup)
	rg.DELETE("/gallery-groups/:id", h.deleteGroup)
}

func (h *Handler) listItems(c *gin.Context) {
	items := h.Items()
	groupID := c.Query("groupId")
	if groupID == "" {
		respond.OK(c, items)
		return
	}
	filtered := make([]fixtures.GalleryItem, 0, len(items))
	for _, item := range items {
		if item.GroupID == groupID {
			filtered = append(filtered, item)
		}
	}
	respond.OK(c, filtered)
}

func (h *Handler) createItem(c *gin.Context) {
	var req createItemRequest
	if err := request.BindJSON(c, &req); err != nil {
		respond.Fail(c, err)
		return
	}
	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}
	respond.Created(c, fixtures.GalleryItem{
		ID:        h.NewID(),
		Title:     req.Title,
		ImageURL:  req.ImageURL,
		GroupID:   req.GroupID,
		Tags:      tags,
		CreatedAt: h.Now().UTC(),
	})
}

func (h *Handler) getItem(c *gin.Context) {
	item, ok := h.findItem(c.Param("id"))
	if !ok {
		respond.Fail(c, ErrItemNotFound)
		return
	}
	respond.OK(c, item)
}

func (h *Handler) updateItem(c *gin.Context) {
	item, ok := h.findItem(c.Param("id"))
	if !ok {
		respond.Fail(c, ErrItemNotFound)
		return
	}
	var req updateItemRequest
	if err := request.BindJSON(c, &req); err != nil {
		respond.Fail(c, err)
		return
	}
	if req.Title != nil {
		item.Title = *req.Title
	}
	if req.ImageURL != nil {
		item.ImageURL = *req.ImageURL
	}
	if req.GroupID != nil {
		item.GroupID = *req.GroupID
	}
	if req.Tags != nil {
		item.Tags = req.Tags
	}
	now := h.Now().UTC()
	item.UpdatedAt = &now
	respond.OK(c, item)
}

func (h *Handler) deleteItem(c *gin.Context) {
	item, ok := h.findItem(c.Param("id"))
	if !ok {
		respond.Fail(c, ErrItemNotFound)
		return
	}
	respond.OK(c, deletedResponse{ID: item.ID})
}

func (h *Handler) findItem(id string) (fixtures.GalleryItem, bool) {
	for _, item := range h.Items() {
		if item.ID == id {
			return item, true
		}
	}
	return fixtures.GalleryItem{}, false
}

func (h *Handler) listGroups(c *gin.Context) {
	respond.OK(c, h.Groups())
}

func (h *Handler) createGroup(c *gin.Context) {
	var req createGroupRequest
	if err := request.BindJSON(c, &req); err != nil {
		respond.Fail(c, err)
		return
	}
	respond.Created(c, fixtures.GalleryGroup{
		ID:          h.NewID(),
		Name:        req.Name,
		Description: req.Description,
		CreatedAt:   h.Now().UTC(),
	})
}

func (h *Handler) getGroup(c *gin.Context) {
	group, ok := h.findGroup(c.Param("id"))
	if !ok {
		respond.Fail(c, ErrGroupNotFound)
		return
	}
	respond.OK(c, group)
}

func (h *Handler) updateGroup(c *gin.Context) {
	group, ok := h.findGroup(c.Param("id"))
	if !ok {
		respond.Fail(c, ErrGroupNotFound)
		return
	}
	var req updateGroupRequest
	if err := request.BindJSON(c, &req); err != nil {
		respond.Fail(c, err)
		return
	}
	if req.Name != nil {
		group.Name = *req.Name
	}
	if req.Description != nil {
		group.Description = *req.Description
	}
	now := h.Now().UTC()
	group.UpdatedAt = &now
	respond.OK(c, group)
}

func (h *Handler) deleteGroup(c *gin.Context) {
	group, ok := h.findGroup(c.Param("id"))
	if !ok {
		respond.Fail(c, ErrGroupNotFound)
		return
	}
	respond.OK(c, deletedResponse{ID: group.ID})
}

func (h *Handler) findGroup(id string) (fixtures.GalleryGroup, bool) {
	for _, group := range h.Groups() {
		if group.ID == id {
			return group, true
		}
	}
	return fixtures.GalleryGroup{}, false
}
