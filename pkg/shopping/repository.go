package shopping

import (
	"context"
	"errors"
	"fmt"

	"github.com/ws-vt/technik-manager/internal/errdef"

	"github.com/ws-vt/technik-manager/pkg/model"

	"gorm.io/gorm"
)

// SortOption selects the store-side ordering of the shopping list.
type SortOption string

const (
	SortDateNewest   SortOption = "date-newest"
	SortDateOldest   SortOption = "date-oldest"
	SortPriority     SortOption = "priority"
	SortPriceLowest  SortOption = "price-lowest"
	SortPriceHighest SortOption = "price-highest"
)

// orderExpressions returns the order keys for a sort mode in (primary, secondary) sequence.
// Ordering is delegated to the store, the repository only constructs the keys. Unknown modes fall
// back to newest first.
func orderExpressions(sortBy SortOption) []string {
	switch sortBy {
	case SortDateOldest:
		return []string{"created_at asc"}
	case SortPriority:
		return []string{"priority desc", "created_at desc"}
	case SortPriceLowest:
		return []string{"price asc nulls last", "created_at desc"}
	case SortPriceHighest:
		return []string{"price desc nulls last", "created_at desc"}
	default:
		return []string{"created_at desc"}
	}
}

//goland:noinspection GoExportedFuncWithUnexportedType
func NewRepository(db *gorm.DB) *repository {
	return &repository{db}
}

type repository struct {
	db *gorm.DB
}

func (r repository) findAll(ctx context.Context, sortBy SortOption) ([]*model.ShoppingItem, error) {
	var items []*model.ShoppingItem

	db := r.db.WithContext(ctx)
	for _, order := range orderExpressions(sortBy) {
		db = db.Order(order)
	}

	err := db.Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find all shopping items: %v", err)
	}

	return items, nil
}

func (r repository) findById(ctx context.Context, id uint) (*model.ShoppingItem, error) {
	var item *model.ShoppingItem
	err := r.db.WithContext(ctx).First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errdef.NewNotFound("failed to find shopping item with id %d", id)
	}
	return item, err
}

func (r repository) create(ctx context.Context, item *model.ShoppingItem) error {
	err := r.db.WithContext(ctx).Create(&item).Error
	if err != nil {
		return fmt.Errorf("failed to create shopping item: %v", err)
	}
	return nil
}

func (r repository) update(ctx context.Context, item *model.ShoppingItem) error {
	err := r.db.
		WithContext(ctx).
		Model(&item).
		Select("Name", "Price", "Link", "Priority").
		Updates(*item).Error
	if err != nil {
		return fmt.Errorf("failed to update shopping item with id %d: %v", item.ID, err)
	}
	return nil
}

func (r repository) delete(ctx context.Context, id uint) error {
	db := r.db.WithContext(ctx).Delete(&model.ShoppingItem{}, id)
	if db.Error != nil {
		return fmt.Errorf("failed to delete shopping item with id %d: %v", id, db.Error)
	} else if db.RowsAffected < 1 {
		return errdef.NewNotFound("failed to find shopping item with id %d", id)
	}
	return nil
}

func (r repository) findNotes(ctx context.Context, itemId uint) ([]*model.ShoppingNote, error) {
	var notes []*model.ShoppingNote

	err := r.db.
		WithContext(ctx).
		Where("shopping_item_id = ?", itemId).
		Order("created_at desc").
		Find(&notes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find notes of shopping item with id %d: %v", itemId, err)
	}

	return notes, nil
}

func (r repository) findNoteById(ctx context.Context, id uint) (*model.ShoppingNote, error) {
	var note *model.ShoppingNote
	err := r.db.WithContext(ctx).First(&note, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errdef.NewNotFound("failed to find note with id %d", id)
	}
	return note, err
}

func (r repository) createNote(ctx context.Context, note *model.ShoppingNote) error {
	err := r.db.WithContext(ctx).Create(&note).Error
	if err != nil {
		return fmt.Errorf("failed to create note: %v", err)
	}
	return nil
}

func (r repository) deleteNote(ctx context.Context, id uint) error {
	db := r.db.WithContext(ctx).Delete(&model.ShoppingNote{}, id)
	if db.Error != nil {
		return fmt.Errorf("failed to delete note with id %d: %v", id, db.Error)
	} else if db.RowsAffected < 1 {
		return errdef.NewNotFound("failed to find note with id %d", id)
	}
	return nil
}
