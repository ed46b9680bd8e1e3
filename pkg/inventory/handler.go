package inventory

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/ws-vt/technik-manager/internal/errdef"
	"github.com/ws-vt/technik-manager/internal/handler"

	"github.com/ws-vt/technik-manager/pkg/model"

	"github.com/gin-gonic/gin"
)

func NewHandler(defaultMarkingPrefix string, inventoryService inventoryService) Handler {
	return Handler{
		defaultMarkingPrefix: defaultMarkingPrefix,
		inventoryService:     inventoryService,
	}
}

type Handler struct {
	defaultMarkingPrefix string
	inventoryService     inventoryService
}

type inventoryService interface {
	FindAll(ctx context.Context, filter Filter) ([]*model.InventoryItem, error)
	NextAvailable(ctx context.Context, prefix string) (string, error)
	Exists(ctx context.Context, marking string, excludeId uint) (bool, error)
	Create(ctx context.Context, fields ItemFields, count int, user *model.User) ([]*model.InventoryItem, error)
	Update(ctx context.Context, id uint, fields ItemFields) (*model.InventoryItem, error)
	Delete(ctx context.Context, id uint) error
}

// ItemResponse is the wire shape of an inventory item. It differs from the stored shape in that
// the TÜV flag is only present for categories where it applies.
// swagger:model
type ItemResponse struct {
	ID           uint      `json:"id"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
	Name         *string   `json:"name,omitempty"`
	Category     string    `json:"category"`
	CableType    *string   `json:"cableType,omitempty"`
	CableLength  *float64  `json:"cableLength,omitempty"`
	HasDMX       *bool     `json:"hasDmx,omitempty"`
	IsFunctional bool      `json:"isFunctional"`
	HasTUV       *bool     `json:"hasTuv,omitempty"`
	Marking      string    `json:"marking"`
	Location     string    `json:"location"`
	CreatedBy    string    `json:"createdBy"`
}

func toResponse(item *model.InventoryItem) ItemResponse {
	hasTUV := item.HasTUV
	if !item.TUVApplies() {
		hasTUV = nil
	}

	return ItemResponse{
		ID:           item.ID,
		CreatedAt:    item.CreatedAt,
		UpdatedAt:    item.UpdatedAt,
		Name:         item.Name,
		Category:     item.Category,
		CableType:    item.CableType,
		CableLength:  item.CableLength,
		HasDMX:       item.HasDMX,
		IsFunctional: item.IsFunctional,
		HasTUV:       hasTUV,
		Marking:      item.Marking,
		Location:     item.Location,
		CreatedBy:    item.CreatedBy,
	}
}

func toResponses(items []*model.InventoryItem) []ItemResponse {
	responses := make([]ItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, toResponse(item))
	}
	return responses
}

// FindAll inventory items
func (h Handler) FindAll(c *gin.Context) {
	// swagger:route GET /inventory listInventory
	//
	// List inventory
	//
	// List inventory items. Category filters, the defective and withoutTuv filters and the search
	// query compose conjunctively; sortBy is one of marking, category and date.
	//
	// security:
	//   oauth2:
	//
	// responses:
	//   200: []ItemResponse
	//   401: Error
	filter := Filter{
		Search:         c.Query("search"),
		Categories:     c.QueryArray("category"),
		OnlyDefective:  c.Query("defective") == "true",
		OnlyWithoutTUV: c.Query("withoutTuv") == "true",
		SortBy:         SortOption(c.DefaultQuery("sortBy", string(SortMarking))),
	}

	items, err := h.inventoryService.FindAll(c.Request.Context(), filter)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, toResponses(items))
}

type NextMarkingResponse struct {
	Marking string `json:"marking"`
}

// NextMarking returns the next free marking
func (h Handler) NextMarking(c *gin.Context) {
	// swagger:route GET /inventory/next-marking nextMarking
	//
	// Next free marking
	//
	// Return the next available marking for a prefix. Without a prefix parameter the configured
	// default prefix is used.
	//
	// security:
	//   oauth2:
	//
	// responses:
	//   200: NextMarkingResponse
	//   401: Error
	prefix := c.DefaultQuery("prefix", h.defaultMarkingPrefix)

	marking, err := h.inventoryService.NextAvailable(c.Request.Context(), prefix)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, NextMarkingResponse{Marking: marking})
}

type MarkingExistsResponse struct {
	Exists bool `json:"exists"`
}

// MarkingExists checks a marking
func (h Handler) MarkingExists(c *gin.Context) {
	// swagger:route GET /inventory/marking-exists markingExists
	//
	// Check a marking
	//
	// Advisory check whether a marking is already taken, used while the operator types. The
	// optional excludeId parameter leaves one item out of the check when editing. The check is
	// repeated right before any write, this endpoint is for feedback only.
	//
	// security:
	//   oauth2:
	//
	// responses:
	//   200: MarkingExistsResponse
	//   400: Error
	//   401: Error
	marking := c.Query("marking")
	if marking == "" {
		_ = c.Error(errdef.NewBadRequest("marking query parameter is required"))
		return
	}

	var excludeId uint
	if excludeIdParam := c.Query("excludeId"); excludeIdParam != "" {
		id, err := strconv.ParseUint(excludeIdParam, 10, 32)
		if err != nil {
			_ = c.Error(errdef.NewBadRequest("error parsing excludeId: %v", err))
			return
		}
		excludeId = uint(id)
	}

	exists, err := h.inventoryService.Exists(c.Request.Context(), marking, excludeId)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, MarkingExistsResponse{Exists: exists})
}

type ItemRequest struct {
	Name         *string  `json:"name"`
	Category     string   `json:"category" binding:"required"`
	CableType    *string  `json:"cableType" binding:"omitempty,oneOf=Schuko DMX XLR Sonstige"`
	CableLength  *float64 `json:"cableLength" binding:"omitempty,gte=0"`
	HasDMX       bool     `json:"hasDmx"`
	IsFunctional *bool    `json:"isFunctional"`
	HasTUV       bool     `json:"hasTuv"`
	Marking      string   `json:"marking" binding:"required"`
	Location     string   `json:"location" binding:"required"`
}

func (r ItemRequest) fields() ItemFields {
	isFunctional := true
	if r.IsFunctional != nil {
		isFunctional = *r.IsFunctional
	}

	return ItemFields{
		Name:         r.Name,
		Category:     r.Category,
		CableType:    r.CableType,
		CableLength:  r.CableLength,
		HasDMX:       r.HasDMX,
		IsFunctional: isFunctional,
		HasTUV:       r.HasTUV,
		Marking:      r.Marking,
		Location:     r.Location,
	}
}

type CreateItemRequest struct {
	ItemRequest
	Count int `json:"count" binding:"omitempty,gte=1,lte=100"`
}

// Create inventory items
func (h Handler) Create(c *gin.Context) {
	// swagger:route POST /inventory createInventoryItems
	//
	// Create inventory items
	//
	// Create one or more items. With count greater than one, markings are allocated sequentially
	// starting at the given marking, skipping numbers that are taken. All items are stored in one
	// batch that either fully succeeds or fully fails.
	//
	// security:
	//   oauth2:
	//
	// responses:
	//   201: []ItemResponse
	//   400: Error
	//   401: Error
	//   403: Error
	//   409: Error
	//   415: Error
	var request CreateItemRequest

	if err := handler.DataBinder(c, &request); err != nil {
		_ = c.Error(err)
		return
	}

	user, err := handler.GetUserFromContext(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	count := request.Count
	if count == 0 {
		count = 1
	}

	items, err := h.inventoryService.Create(c.Request.Context(), request.fields(), count, user)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, toResponses(items))
}

// Update inventory item
func (h Handler) Update(c *gin.Context) {
	// swagger:route PUT /inventory/{id} updateInventoryItem
	//
	// Update inventory item
	//
	// Update an item. A changed marking is checked against all other items.
	//
	// security:
	//   oauth2:
	//
	// responses:
	//   200: ItemResponse
	//   400: Error
	//   401: Error
	//   403: Error
	//   404: Error
	//   409: Error
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

	item, err := h.inventoryService.Update(c.Request.Context(), id, request.fields())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, toResponse(item))
}

// Delete inventory item
func (h Handler) Delete(c *gin.Context) {
	// swagger:route DELETE /inventory/{id} deleteInventoryItem
	//
	// Delete inventory item
	//
	// Delete an item by its id
	//
	// security:
	//   oauth2:
	//
	// responses:
	//   202:
	//   401: Error
	//   403: Error
	//   404: Error
	id, ok := handler.GetPathParameter(c, "id")
	if !ok {
		return
	}

	err := h.inventoryService.Delete(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.Status(http.StatusAccepted)
}
