package event

import (
	"context"
	"net/http"
	"time"

	"github.com/ws-vt/technik-manager/internal/handler"

	"github.com/ws-vt/technik-manager/pkg/model"

	"github.com/gin-gonic/gin"
)

func NewHandler(eventService eventService) Handler {
	return Handler{
		eventService: eventService,
	}
}

type Handler struct {
	eventService eventService
}

type eventService interface {
	FindAll(ctx context.Context) ([]*model.Event, error)
	Create(ctx context.Context, name string, date time.Time, location string, mainContact *string, contactInfo *string) (*model.Event, error)
	AssignResponsibilities(ctx context.Context, id uint, contactPersons []string) error
	Delete(ctx context.Context, id uint) error
	FindNotes(ctx context.Context, eventId uint) ([]*model.EventNote, error)
	CreateNote(ctx context.Context, eventId uint, content string, user *model.User) (*model.EventNote, error)
	DeleteNote(ctx context.Context, id uint, user *model.User) error
}

// FindAll events
func (h Handler) FindAll(c *gin.Context) {
	// swagger:route GET /events listEvents
	//
	// List events
	//
	// List all events, ordered by date
	//
	// security:
	//   oauth2:
	//
	// responses:
	//   200: []Event
	//   401: Error
	events, err := h.eventService.FindAll(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, events)
}

type CreateEventRequest struct {
	Name        string    `json:"name" binding:"required"`
	Date        time.Time `json:"date" binding:"required"`
	Location    string    `json:"location" binding:"required"`
	MainContact *string   `json:"mainContact"`
	ContactInfo *string   `json:"contactInfo"`
}

// Create event
func (h Handler) Create(c *gin.Context) {
	// swagger:route POST /events createEvent
	//
	// Create event
	//
	// Create an event. The contact person list always starts out empty.
	//
	// security:
	//   oauth2:
	//
	// responses:
	//   201: Event
	//   400: Error
	//   401: Error
	//   403: Error
	//   415: Error
	var request CreateEventRequest

	if err := handler.DataBinder(c, &request); err != nil {
		_ = c.Error(err)
		return
	}

	event, err := h.eventService.Create(c.Request.Context(), request.Name, request.Date, request.Location, request.MainContact, request.ContactInfo)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, event)
}

type AssignResponsibilitiesRequest struct {
	ContactPersons []string `json:"contactPersons"`
}

// AssignResponsibilities of an event
func (h Handler) AssignResponsibilities(c *gin.Context) {
	// swagger:route PUT /events/{id}/responsibilities assignResponsibilities
	//
	// Assign responsibilities
	//
	// Replace the contact person list of an event. The list is replaced as a whole, not merged.
	//
	// security:
	//   oauth2:
	//
	// responses:
	//   200:
	//   400: Error
	//   401: Error
	//   403: Error
	//   404: Error
	//   415: Error
	id, ok := handler.GetPathParameter(c, "id")
	if !ok {
		return
	}

	var request AssignResponsibilitiesRequest
	if err := handler.DataBinder(c, &request); err != nil {
		_ = c.Error(err)
		return
	}

	err := h.eventService.AssignResponsibilities(c.Request.Context(), id, request.ContactPersons)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.Status(http.StatusOK)
}

// Delete event
func (h Handler) Delete(c *gin.Context) {
	// swagger:route DELETE /events/{id} deleteEvent
	//
	// Delete event
	//
	// Delete an event by its id
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

	err := h.eventService.Delete(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.Status(http.StatusAccepted)
}

// FindNotes of an event
func (h Handler) FindNotes(c *gin.Context) {
	// swagger:route GET /events/{id}/notes listEventNotes
	//
	// List event notes
	//
	// List the notes of an event, newest first
	//
	// security:
	//   oauth2:
	//
	// responses:
	//   200: []EventNote
	//   401: Error
	//   404: Error
	id, ok := handler.GetPathParameter(c, "id")
	if !ok {
		return
	}

	notes, err := h.eventService.FindNotes(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, notes)
}

type CreateNoteRequest struct {
	Content string `json:"content" binding:"required"`
}

// CreateNote on an event
func (h Handler) CreateNote(c *gin.Context) {
	// swagger:route POST /events/{id}/notes createEventNote
	//
	// Create event note
	//
	// Attach a note to an event, stamped with the current user
	//
	// security:
	//   oauth2:
	//
	// responses:
	//   201: EventNote
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

	note, err := h.eventService.CreateNote(c.Request.Context(), id, request.Content, user)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, note)
}

// DeleteNote of an event
func (h Handler) DeleteNote(c *gin.Context) {
	// swagger:route DELETE /events/{id}/notes/{noteId} deleteEventNote
	//
	// Delete event note
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

	err = h.eventService.DeleteNote(c.Request.Context(), noteId, user)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.Status(http.StatusAccepted)
}
