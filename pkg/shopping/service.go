package shopping

import (
	"context"

	"github.com/ws-vt/technik-manager/internal/errdef"

	"github.com/ws-vt/technik-manager/pkg/model"
)

type shoppingRepository interface {
	findAll(ctx context.Context, sortBy SortOption) ([]*model.ShoppingItem, error)
	findById(ctx context.Context, id uint) (*model.ShoppingItem, error)
	create(ctx context.Context, item *model.ShoppingItem) error
	update(ctx context.Context, item *model.ShoppingItem) error
	delete(ctx context.Context, id uint) error
	findNotes(ctx context.Context, itemId uint) ([]*model.ShoppingNote, error)
	findNoteById(ctx context.Context, id uint) (*model.ShoppingNote, error)
	createNote(ctx context.Context, note *model.ShoppingNote) error
	deleteNote(ctx context.Context, id uint) error
}

func NewService(repository shoppingRepository) *Service {
	return &Service{
		repository: repository,
	}
}

type Service struct {
	repository shoppingRepository
}

func (s Service) FindAll(ctx context.Context, sortBy SortOption) ([]*model.ShoppingItem, error) {
	return s.repository.findAll(ctx, sortBy)
}

func (s Service) Create(ctx context.Context, name string, price *float64, link *string, priority int, user *model.User) (*model.ShoppingItem, error) {
	item := &model.ShoppingItem{
		Name:      name,
		Price:     price,
		Link:      link,
		Priority:  priority,
		CreatedBy: user.Username,
	}

	err := s.repository.create(ctx, item)
	if err != nil {
		return nil, err
	}

	return item, nil
}

// Update changes the editable fields of an item: name, price, link and priority. Creator and
// creation time are untouched.
func (s Service) Update(ctx context.Context, id uint, name string, price *float64, link *string, priority int) (*model.ShoppingItem, error) {
	item, err := s.repository.findById(ctx, id)
	if err != nil {
		return nil, err
	}

	item.Name = name
	item.Price = price
	item.Link = link
	item.Priority = priority

	err = s.repository.update(ctx, item)
	if err != nil {
		return nil, err
	}

	return item, nil
}

func (s Service) Delete(ctx context.Context, id uint) error {
	return s.repository.delete(ctx, id)
}

func (s Service) FindNotes(ctx context.Context, itemId uint) ([]*model.ShoppingNote, error) {
	if _, err := s.repository.findById(ctx, itemId); err != nil {
		return nil, err
	}
	return s.repository.findNotes(ctx, itemId)
}

func (s Service) CreateNote(ctx context.Context, itemId uint, content string, user *model.User) (*model.ShoppingNote, error) {
	if _, err := s.repository.findById(ctx, itemId); err != nil {
		return nil, err
	}

	note := &model.ShoppingNote{
		ShoppingItemID: itemId,
		Content:        content,
		CreatedBy:      user.Username,
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
