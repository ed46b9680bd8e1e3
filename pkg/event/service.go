package event

import (
	"context"
	"time"

	"github.com/ws-vt/technik-manager/internal/errdef"

	"github.com/ws-vt/technik-manager/pkg/model"

	"github.com/lib/pq"
)

type eventRepository interface {
	findAll(ctx context.Context) ([]*model.Event, error)
	findById(ctx context.Context, id uint) (*model.Event, error)
	create(ctx context.Context, event *model.Event) error
	updateContactPersons(ctx context.Context, id uint, contactPersons pq.StringArray) error
	delete(ctx context.Context, id uint) error
	findNotes(ctx context.Context, eventId uint) ([]*model.EventNote, error)
	findNoteById(ctx context.Context, id uint) (*model.EventNote, error)
	createNote(ctx context.Context, note *model.EventNote) error
	deleteNote(ctx context.Context, id uint) error
}

func NewService(repository eventRepository) *Service {
	return &Service{
		repository: repository,
	}
}

type Service struct {
	repository eventRepository
}

func (s Service) FindAll(ctx context.Context) ([]*model.Event, error) {
	return s.repository.findAll(ctx)
}

// Create stores a new event. The contact person list always starts out empty, whatever the caller
// sends; people are assigned later through AssignResponsibilities.
func (s Service) Create(ctx context.Context, name string, date time.Time, location string, mainContact *string, contactInfo *string) (*model.Event, error) {
	event := &model.Event{
		Name:           name,
		Date:           date,
		Location:       location,
		ContactPersons: pq.StringArray{},
		MainContact:    mainContact,
		ContactInfo:    contactInfo,
	}

	err := s.repository.create(ctx, event)
	if err != nil {
		return nil, err
	}

	return event, nil
}

// AssignResponsibilities replaces the event's contact person list with contactPersons, in the
// given order.
func (s Service) AssignResponsibilities(ctx context.Context, id uint, contactPersons []string) error {
	if contactPersons == nil {
		contactPersons = []string{}
	}
	return s.repository.updateContactPersons(ctx, id, pq.StringArray(contactPersons))
}

func (s Service) Delete(ctx context.Context, id uint) error {
	return s.repository.delete(ctx, id)
}

func (s Service) FindNotes(ctx context.Context, eventId uint) ([]*model.EventNote, error) {
	if _, err := s.repository.findById(ctx, eventId); err != nil {
		return nil, err
	}
	return s.repository.findNotes(ctx, eventId)
}

func (s Service) CreateNote(ctx context.Context, eventId uint, content string, user *model.User) (*model.EventNote, error) {
	if _, err := s.repository.findById(ctx, eventId); err != nil {
		return nil, err
	}

	note := &model.EventNote{
		EventID:   eventId,
		Content:   content,
		CreatedBy: user.Username,
	}

	err := s.repository.createNote(ctx, note)
	if err != nil {
		return nil, err
	}

	return note, nil
}

// DeleteNote removes a note. Only the author can delete their note.
func (s Service) DeleteNote(ctx context.Context, id uint, user *model.User) error {
	note, err := s.repository.findNoteById(ctx, id)
	if err != nil {
		return err
	}

	if note.CreatedBy != user.Username {
		return errdef.NewForbidden("only the author can delete a note")
	}

	return s.repository.deleteNote(ctx, id)
}
