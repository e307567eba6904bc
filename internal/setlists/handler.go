package setlists

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"streamdesk-backend/internal/fixtures"
	"streamdesk-backend/internal/shared/server/request"
	"streamdesk-backend/internal/shared/server/respond"
)

// Handler serves setlists and their items from fixtures.
type Handler struct {
	Setlists func() []fixtures.Setlist
	Now      func() time.Time
	NewID    func() string
}

// NewHandler constructs a Handler over the given dataset.
func NewHandler(setlists func() []fixtures.Setlist) *Handler {
	return &Handler{
		Setlists: setlists,
		Now:      time.Now,
		NewID:    uuid.NewString,
	}
}

// RegisterRoutes attaches setlist routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/setlists", h.list)
	rg.POST("/setlists", h.create)
	rg.GET("/setlists/:id", h.get)
	rg.PUT("/setlists/:id", h.update)
	rg.DELETE("/setlists/:id", h.remove)

	rg.GET("/setlists/:id/items", h.listItems)
	rg.POST("/setlists/:id/items", h.createItem)
	rg.PUT("/setlists/:id/items/:itemId", h.updateItem)
	rg.DELETE("/setlists/:id/items/:itemId", h.deleteItem)
	rg.POST("/setlists/:id/reorder", h.reorder)
}

func (h *Handler) list(c *gin.Context) {
	respond.OK(c, h.Setlists())
}

func (h *Handler) create(c *gin.Context) {
	var req createSetlistRequest
	if err := request.BindJSON(c, &req); err != nil {
		respond.Fail(c, err)
		return
	}
	respond.Created(c, fixtures.Setlist{
		ID:         h.NewID(),
		Title:      req.Title,
		StreamDate: req.StreamDate,
		Notes:      req.Notes,
		Items:      []fixtures.SetlistItem{},
		CreatedAt:  h.Now().UTC(),
	})
}

func (h *Handler) get(c *gin.Context) {
	setlist, ok := h.find(c.Param("id"))
	if !ok {
		respond.Fail(c, ErrSetlistNotFound)
		return
	}
	respond.OK(c, setlist)
}

func (h *Handler) update(c *gin.Context) {
	setlist, ok := h.find(c.Param("id"))
	if !ok {
		respond.Fail(c, ErrSetlistNotFound)
		return
	}
	var req updateSetlistRequest
	if err := request.BindJSON(c, &req); err != nil {
		respond.Fail(c, err)
		return
	}
	if req.Title != nil {
		setlist.Title = *req.Title
	}
	if req.StreamDate != nil {
		setlist.StreamDate = *req.StreamDate
	}
	if req.Notes != nil {
		setlist.Notes = *req.Notes
	}
	now := h.Now().UTC()
	setlist.UpdatedAt = &now
	respond.OK(c, setlist)
}

func (h *Handler) remove(c *gin.Context) {
	setlist, ok := h.find(c.Param("id"))
	if !ok {
		respond.Fail(c, ErrSetlistNotFound)
		return
	}
	respond.OK(c, deletedResponse{ID: setlist.ID})
}

func (h *Handler) listItems(c *gin.Context) {
	setlist, ok := h.find(c.Param("id"))
	if !ok {
		respond.Fail(c, ErrSetlistNotFound)
		return
	}
	respond.OK(c, setlist.Items)
}

func (h *Handler) createItem(c *gin.Context) {
	setlist, ok := h.find(c.Param("id"))
	if !ok {
		respond.Fail(c, ErrSetlistNotFound)
		return
	}
	var req createItemRequest
	if err := request.BindJSON(c, &req); err != nil {
		respond.Fail(c, err)
		return
	}
	respond.Created(c, fixtures.SetlistItem{
		ID:          h.NewID(),
		SetlistID:   setlist.ID,
		Title:       req.Title,
		Artist:      req.Artist,
		DurationSec: req.DurationSec,
		Position:    len(setlist.Items) + 1,
	})
}

func (h *Handler) updateItem(c *gin.Context) {
	item, ok := h.findItem(c)
	if !ok {
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
	if req.Artist != nil {
		item.Artist = *req.Artist
	}
	if req.DurationSec != nil {
		item.DurationSec = *req.DurationSec
	}
	respond.OK(c, item)
}

func (h *Handler) deleteItem(c *gin.Context) {
	item, ok := h.findItem(c)
	if !ok {
		return
	}
	respond.OK(c, deletedResponse{ID: item.ID})
}

func (h *Handler) reorder(c *gin.Context) {
	setlist, ok := h.find(c.Param("id"))
	if !ok {
		respond.Fail(c, ErrSetlistNotFound)
		return
	}
	var req reorderRequest
	if err := request.BindJSON(c, &req); err != nil {
		respond.Fail(c, err)
		return
	}
	respond.OK(c, Reorder(setlist.ID, setlist.Items, req.ItemIDs))
}

func (h *Handler) find(id string) (fixtures.Setlist, bool) {
	for _, s := range h.Setlists() {
		if s.ID == id {
			return s, true
		}
	}
	return fixtures.Setlist{}, false
}

// findItem resolves :id and :itemId, writing the 404 itself when either is unknown.
func (h *Handler) findItem(c *gin.Context) (fixtures.SetlistItem, bool) {
	setlist, ok := h.find(c.Param("id"))
	if !ok {
		respond.Fail(c, ErrSetlistNotFound)
		return fixtures.SetlistItem{}, false
	}
	itemID := c.Param("itemId")
	for _, item := range setlist.Items {
		if item.ID == itemID {
			return item, true
		}
	}
	respond.Fail(c, ErrItemNotFound)
	return fixtures.SetlistItem{}, false
}
