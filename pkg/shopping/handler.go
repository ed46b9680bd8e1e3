package shopping

import (
	"context"
	"net/http"

	"github.com/ws-vt/technik-manager/internal/handler"

	"github.com/ws-vt/technik-manager/pkg/model"

	"github.com/gin-gonic/gin"
)

func NewHandler(shoppingService shoppingService) Handler {
	return Handler{
		shoppingService: shoppingService,
	}
}

type Handler struct {
	shoppingService shoppingService
}

type shoppingService interface {
	FindAll(ctx context.Context, sortBy SortOption) ([]*model.ShoppingItem, error)
	Create(ctx context.Context, name string, price *float64, link *string, priority int, user *model.User) (*model.ShoppingItem, error)
	Update(ctx context.Context, id uint, name string, price *float64, link *string, priority int) (*model.ShoppingItem, error)
	Delete(ctx context.Context, id uint) error
	FindNotes(ctx context.Context, itemId uint) ([]*model.ShoppingNote, error)
	CreateNote(ctx context.Context, itemId uint, content string, user *model.User) (*model.ShoppingNote, error)
	DeleteNote(ctx context.Context, id uint, user *model.User) error
}

// FindAll shopping items
func (h Handler) FindAll(c *gin.Context) {
	// swagger:route GET /shopping-items listShoppingItems
	//
	// List shopping items
	//
	// List all shopping items. The sortBy query parameter picks one of date-newest, date-oldest,
	// priority, price-lowest and price-highest; ordering happens in the store.
	//
	// security:
	//   oauth2:
	//
	// responses:
	//   200: []ShoppingItem
	//   401: Error
	sortBy := SortOption(c.DefaultQuery("sortBy", string(SortDateNewest)))

	items, err := h.shoppingService.FindAll(c.Request.Context(), sortBy)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, items)
}

type ItemRequest struct {
	Name     string   `json:"name" binding:"required"`
	Price    *float64 `json:"price" binding:"omitempty,gte=0"`
	Link     *string  `json:"link"`
	Priority *int     `json:"priority" binding:"required,gte=0,lte=2"`
}

// Create shopping item
func (h Handler) Create(c *gin.Context) {
	// swagger:route POST /shopping-items createShoppingItem
	//
	// Create shopping item
	//
	// Put an item on the shared shopping list
	//
	// security:
	//   oauth2:
	//
	// responses:
	//   201: ShoppingItem
	//   400: Error
	//   401: Error
	//   415: Error
	var request ItemRequest

	if err := handler.DataBinder(c, &request); err != nil {
		_ = c.Error(err)
		return
	}

	user, err := handler.GetUserFromContext(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	item, err := h.shoppingService.Create(c.Request.Context(), request.Name, request.Price, request.Link, *request.Priority, user)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, item)
}

// Update shopping item
func (h Handler) Update(c *gin.Context) {
	// swagger:route PUT /shopping-items/{id} updateShoppingItem
	//
	// Update shopping item
	//
	// Update name, price, link and priority of a shopping item
	//
	// security:
	//   oauth2:
	//
	// responses:
	//   200: ShoppingItem
	//   400: Error
	//   401: Error
	//   404: Error
	//   415: Error
	id, ok := handler.GetPathParameter(c, "id")
	if !ok {
		return
	}

	var request ItemRequest
	if err := handler.DataBinder(c, &request); err != nil {
		_ = c.Error(err)
		return
	}

	item, err := h.shoppingService.Update(c.Request.Context(), id, request.Name, request.Price, request.Link, *request.Priority)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, item)
}

// Delete shopping item
func (h Handler) Delete(c *gin.Context) {
	// swagger:route DELETE /shopping-items/{id} deleteShoppingItem
	//
	// Delete shopping item
	//
	// Delete a shopping item by its id
	//
	// security:
	//   oauth2:
	//
	// responses:
	//   202:
	//   401: Error
	//   404: Error
	id, ok := handler.GetPathParameter(c, "id")
	if !ok {
		return
	}

	err := h.shoppingService.Delete(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.Status(http.StatusAccepted)
}

// FindNotes of a shopping item
func (h Handler) FindNotes(c *gin.Context) {
	// swagger:route GET /shopping-items/{id}/notes listShoppingNotes
	//
	// List shopping notes
	//
	// List the notes of a shopping item, newest first
	//
	// security:
	//   oauth2:
	//
	// responses:
	//   200: []ShoppingNote
	//   401: Error
	//   404: Error
	id, ok := handler.GetPathParameter(c, "id")
	if !ok {
		return
	}

	notes, err := h.shoppingService.FindNotes(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, notes)
}

type CreateNoteRequest struct {
	Content string `json:"content" binding:"required"`
}

// CreateNote on a shopping item
func (h Handler) CreateNote(c *gin.Context) {
	// swagger:route POST /shopping-items/{id}/notes createShoppingNote
	//
	// Create shopping note
	//
	// Attach a note to a shopping item, stamped with the current user
	//
	// security:
	//   oauth2:
	//
	// responses:
	//   201: ShoppingNote
	//   400: Error
	//   401: Error
	//   404: Error
	//   415: Error
	id, ok := handler.GetPathParameter(c, "id")
	if !ok {
		return
	}

	var request CreateNoteRequest
	if err := handler.DataBinder(c, &request); err != nil {
		_ = c.Error(err)
		return
	}

	user, err := handler.GetUserFromContext(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	note, err := h.shoppingService.CreateNote(c.Request.Context(), id, request.Content, user)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, note)
}

// DeleteNote of a shopping item
func (h Handler) DeleteNote(c *gin.Context) {
	// swagger:route DELETE /shopping-items/{id}/notes/{noteId} deleteShoppingNote
	//
	// Delete shopping note
	//
	// Delete a note. Only the author of a note can delete it.
	//
	// security:
	//   oauth2:
	//
	// responses:
	//   202:
	//   401: Error
	//   403: Error
	//   404: Error
	noteId, ok := handler.GetPathParameter(c, "noteId")
	if !ok {
		return
	}

	user, err := handler.GetUserFromContext(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	err = h.shoppingService.DeleteNote(c.Request.Context(), noteId, user)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.Status(http.StatusAccepted)
}
