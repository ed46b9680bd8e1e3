package inventory

import (
	"context"
	"slices"
	"strconv"

	"github.com/ws-vt/technik-manager/internal/errdef"

	"github.com/ws-vt/technik-manager/pkg/model"
)

type inventoryRepository interface {
	findAll(ctx context.Context) ([]*model.InventoryItem, error)
	findById(ctx context.Context, id uint) (*model.InventoryItem, error)
	createBatch(ctx context.Context, items []*model.InventoryItem) error
	update(ctx context.Context, item *model.InventoryItem) error
	delete(ctx context.Context, id uint) error
	markingExists(ctx context.Context, marking string, excludeId uint) (bool, error)
	findMarkingsByPrefix(ctx context.Context, prefix string) ([]string, error)
}

func NewService(repository inventoryRepository) *Service {
	return &Service{
		repository: repository,
	}
}

type Service struct {
	repository inventoryRepository
}

// FindAll loads the whole inventory and runs the filter pipeline over it.
func (s Service) FindAll(ctx context.Context, filter Filter) ([]*model.InventoryItem, error) {
	items, err := s.repository.findAll(ctx)
	if err != nil {
		return nil, err
	}
	return Apply(items, filter), nil
}

// NextAvailable returns prefix followed by the highest trailing number in use plus one, or
// prefix followed by "1" when no marking with that prefix exists.
func (s Service) NextAvailable(ctx context.Context, prefix string) (string, error) {
	markings, err := s.repository.findMarkingsByPrefix(ctx, prefix)
	if err != nil {
		return "", err
	}
	return nextMarking(markings, prefix), nil
}

// Exists reports whether a marking is taken by any item other than excludeId.
func (s Service) Exists(ctx context.Context, marking string, excludeId uint) (bool, error) {
	return s.repository.markingExists(ctx, marking, excludeId)
}

// ItemFields carries the operator-entered fields of an inventory item.
type ItemFields struct {
	Name         *string
	Category     string
	CableType    *string
	CableLength  *float64
	HasDMX       bool
	IsFunctional bool
	HasTUV       bool
	Marking      string
	Location     string
}

// Create validates fields and stores count items with sequential markings starting at
// fields.Marking, as one multi-row insert. The marking uniqueness check runs right before the
// insert; there is no store constraint and no locking, so two concurrent creates can still race
// each other.
func (s Service) Create(ctx context.Context, fields ItemFields, count int, user *model.User) ([]*model.InventoryItem, error) {
	if err := validateFields(fields); err != nil {
		return nil, err
	}

	if count < 1 {
		count = 1
	}

	exists, err := s.repository.markingExists(ctx, fields.Marking, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errdef.NewDuplicated("marking %q already exists", fields.Marking)
	}

	markings, err := s.allocateMarkings(ctx, fields.Marking, count)
	if err != nil {
		return nil, err
	}

	items := make([]*model.InventoryItem, 0, count)
	for _, marking := range markings {
		item := newItem(fields, user)
		item.Marking = marking
		items = append(items, item)
	}

	err = s.repository.createBatch(ctx, items)
	if err != nil {
		return nil, err
	}

	return items, nil
}

// allocateMarkings produces count markings starting at start, sequential where possible. When an
// increment collides with a stored marking, the numeric tail is re-resolved via the next-available
// scan and incrementing continues from there, so gaps are skipped around collisions. The order of
// the result is the insertion order.
func (s Service) allocateMarkings(ctx context.Context, start string, count int) ([]string, error) {
	base, number, ok := splitMarking(start)
	if !ok {
		base, number = start, 1
	}

	markings := make([]string, 0, count)
	markings = append(markings, start)

	current := number
	for i := 1; i < count; i++ {
		current++
		candidate := markingFor(base, current)

		exists, err := s.repository.markingExists(ctx, candidate, 0)
		if err != nil {
			return nil, err
		}
		if exists {
			next, err := s.NextAvailable(ctx, base)
			if err != nil {
				return nil, err
			}
			_, current, _ = splitMarking(next)
			candidate = next
		}

		markings = append(markings, candidate)
	}

	return markings, nil
}

// Update validates fields and replaces the stored item. The marking collision check excludes the
// item itself and only runs when the marking actually changed.
func (s Service) Update(ctx context.Context, id uint, fields ItemFields) (*model.InventoryItem, error) {
	if err := validateFields(fields); err != nil {
		return nil, err
	}

	item, err := s.repository.findById(ctx, id)
	if err != nil {
		return nil, err
	}

	if fields.Marking != item.Marking {
		exists, err := s.repository.markingExists(ctx, fields.Marking, id)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, errdef.NewDuplicated("marking %q already exists", fields.Marking)
		}
	}

	updated := newItem(fields, nil)
	updated.ID = item.ID
	updated.CreatedAt = item.CreatedAt
	updated.CreatedBy = item.CreatedBy
	updated.Marking = fields.Marking

	err = s.repository.update(ctx, updated)
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (s Service) Delete(ctx context.Context, id uint) error {
	return s.repository.delete(ctx, id)
}

func validateFields(fields ItemFields) error {
	if !slices.Contains(model.Categories, fields.Category) {
		return errdef.NewBadRequest("category %q is not a valid category", fields.Category)
	}
	if fields.Category != model.CategoryKabel && (fields.Name == nil || *fields.Name == "") {
		return errdef.NewBadRequest("name is required for category %q", fields.Category)
	}
	if fields.Category == model.CategoryKabel && (fields.CableType == nil || *fields.CableType == "") {
		return errdef.NewBadRequest("cable type is required for category %q", model.CategoryKabel)
	}
	if !slices.Contains(model.Locations, fields.Location) {
		return errdef.NewBadRequest("location %q is not a valid location", fields.Location)
	}
	if fields.Marking == "" {
		return errdef.NewBadRequest("marking is required")
	}
	return nil
}

// newItem maps fields onto an item, clearing the fields the category doesn't support. Cable type
// and length are only stored for cables, the DMX flag only for the lighting categories. The TÜV
// flag is stored as entered; whether it is presented is decided per category at read time.
func newItem(fields ItemFields, user *model.User) *model.InventoryItem {
	hasTUV := fields.HasTUV
	item := &model.InventoryItem{
		Name:         fields.Name,
		Category:     fields.Category,
		IsFunctional: fields.IsFunctional,
		HasTUV:       &hasTUV,
		Marking:      fields.Marking,
		Location:     fields.Location,
	}

	if user != nil {
		item.CreatedBy = user.Username
	}

	if item.CableFieldsApply() {
		item.CableType = fields.CableType
		item.CableLength = fields.CableLength
	}
	if item.DMXApplies() {
		hasDMX := fields.HasDMX
		item.HasDMX = &hasDMX
	}

	return item
}

func markingFor(base string, number int) string {
	return base + strconv.Itoa(number)
}
