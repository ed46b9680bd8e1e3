package inventory

import (
	"context"
	"errors"
	"fmt"

	"github.com/ws-vt/technik-manager/internal/errdef"

	"github.com/ws-vt/technik-manager/pkg/model"

	"gorm.io/gorm"
)

//goland:noinspection GoExportedFuncWithUnexportedType
func NewRepository(db *gorm.DB) *repository {
	return &repository{db}
}

type repository struct {
	db *gorm.DB
}

func (r repository) findAll(ctx context.Context) ([]*model.InventoryItem, error) {
	var items []*model.InventoryItem

	err := r.db.
		WithContext(ctx).
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find all inventory items: %v", err)
	}

	return items, nil
}

func (r repository) findById(ctx context.Context, id uint) (*model.InventoryItem, error) {
	var item *model.InventoryItem
	err := r.db.WithContext(ctx).First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errdef.NewNotFound("failed to find inventory item with id %d", id)
	}
	return item, err
}

// createBatch inserts all items as one multi-row insert. It either fully succeeds or fully fails,
// there is no partial-insert recovery.
func (r repository) createBatch(ctx context.Context, items []*model.InventoryItem) error {
	err := r.db.WithContext(ctx).Create(&items).Error
	if err != nil {
		return fmt.Errorf("failed to create inventory items: %v", err)
	}
	return nil
}

func (r repository) update(ctx context.Context, item *model.InventoryItem) error {
	err := r.db.
		WithContext(ctx).
		Model(&item).
		Select("Name", "Category", "CableType", "CableLength", "HasDMX", "IsFunctional", "HasTUV", "Marking", "Location").
		Updates(*item).Error
	if err != nil {
		return fmt.Errorf("failed to update inventory item with id %d: %v", item.ID, err)
	}
	return nil
}

func (r repository) delete(ctx context.Context, id uint) error {
	db := r.db.WithContext(ctx).Delete(&model.InventoryItem{}, id)
	if db.Error != nil {
		return fmt.Errorf("failed to delete inventory item with id %d: %v", id, db.Error)
	} else if db.RowsAffected < 1 {
		return errdef.NewNotFound("failed to find inventory item with id %d", id)
	}
	return nil
}

// markingExists reports whether any item other than excludeId carries exactly this marking.
// excludeId 0 excludes nothing.
func (r repository) markingExists(ctx context.Context, marking string, excludeId uint) (bool, error) {
	var count int64
	db := r.db.
		WithContext(ctx).
		Model(&model.InventoryItem{}).
		Where("marking = ?", marking)
	if excludeId != 0 {
		db = db.Where("id <> ?", excludeId)
	}

	err := db.Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check marking %q: %v", marking, err)
	}

	return count > 0, nil
}

func (r repository) findMarkingsByPrefix(ctx context.Context, prefix string) ([]string, error) {
	var markings []string

	err := r.db.
		WithContext(ctx).
		Model(&model.InventoryItem{}).
		Where("marking ILIKE ?", prefix+"%").
		Pluck("marking", &markings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find markings with prefix %q: %v", prefix, err)
	}

	return markings, nil
}
