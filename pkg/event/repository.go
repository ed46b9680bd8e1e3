package event

import (
	"context"
	"errors"
	"fmt"

	"github.com/ws-vt/technik-manager/internal/errdef"

	"github.com/ws-vt/technik-manager/pkg/model"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

//goland:noinspection GoExportedFuncWithUnexportedType
func NewRepository(db *gorm.DB) *repository {
	return &repository{db}
}

type repository struct {
	db *gorm.DB
}

func (r repository) findAll(ctx context.Context) ([]*model.Event, error) {
	var events []*model.Event

	err := r.db.
		WithContext(ctx).
		Order("date").
		Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find all events: %v", err)
	}

	return events, nil
}

func (r repository) findById(ctx context.Context, id uint) (*model.Event, error) {
	var event *model.Event
	err := r.db.WithContext(ctx).First(&event, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errdef.NewNotFound("failed to find event with id %d", id)
	}
	return event, err
}

func (r repository) create(ctx context.Context, event *model.Event) error {
	err := r.db.WithContext(ctx).Create(&event).Error
	if err != nil {
		return fmt.Errorf("failed to create event: %v", err)
	}
	return nil
}

// updateContactPersons replaces the whole list. Assignments are never merged with what was there.
func (r repository) updateContactPersons(ctx context.Context, id uint, contactPersons pq.StringArray) error {
	db := r.db.
		WithContext(ctx).
		Model(&model.Event{}).
		Where("id = ?", id).
		Update("contact_persons", contactPersons)
	if db.Error != nil {
		return fmt.Errorf("failed to update contact persons of event with id %d: %v", id, db.Error)
	} else if db.RowsAffected < 1 {
		return errdef.NewNotFound("failed to find event with id %d", id)
	}
	return nil
}

func (r repository) delete(ctx context.Context, id uint) error {
	db := r.db.WithContext(ctx).Delete(&model.Event{}, id)
	if db.Error != nil {
		return fmt.Errorf("failed to delete event with id %d: %v", id, db.Error)
	} else if db.RowsAffected < 1 {
		return errdef.NewNotFound("failed to find event with id %d", id)
	}
	return nil
}

func (r repository) findNotes(ctx context.Context, eventId uint) ([]*model.EventNote, error) {
	var notes []*model.EventNote

	err := r.db.
		WithContext(ctx).
		Where("event_id = ?", eventId).
		Order("created_at desc").
		Find(&notes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find notes of event with id %d: %v", eventId, err)
	}

	return notes, nil
}

func (r repository) findNoteById(ctx context.Context, id uint) (*model.EventNote, error) {
	var note *model.EventNote
	err := r.db.WithContext(ctx).First(&note, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errdef.NewNotFound("failed to find note with id %d", id)
	}
	return note, err
}

func (r repository) createNote(ctx context.Context, note *model.EventNote) error {
	err := r.db.WithContext(ctx).Create(&note).Error
	if err != nil {
		return fmt.Errorf("failed to create note: %v", err)
	}
	return nil
}

func (r repository) deleteNote(ctx context.Context, id uint) error {
	db := r.db.WithContext(ctx).Delete(&model.EventNote{}, id)
	if db.Error != nil {
		return fmt.Errorf("failed to delete note with id %d: %v", id, db.Error)
	} else if db.RowsAffected < 1 {
		return errdef.NewNotFound("failed to find note with id %d", id)
	}
	return nil
}
