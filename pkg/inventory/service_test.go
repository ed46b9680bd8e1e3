package inventory

import (
	"context"
	"testing"

	"github.com/ws-vt/technik-manager/internal/errdef"
	"github.com/ws-vt/technik-manager/pkg/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestService_Create_AllocatesSequentialMarkings(t *testing.T) {
	repository := &mockInventoryRepository{}
	repository.
		On("markingExists", mock.Anything, "WS VT 5", uint(0)).
		Return(false, nil)
	repository.
		On("markingExists", mock.Anything, "WS VT 6", uint(0)).
		Return(false, nil)
	repository.
		On("markingExists", mock.Anything, "WS VT 7", uint(0)).
		Return(false, nil)
	repository.
		On("createBatch", mock.Anything, mock.Anything).
		Return(nil)
	service := NewService(repository)

	items, err := service.Create(context.Background(), validFields("WS VT 5"), 3, &model.User{Username: "michel"})

	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "WS VT 5", items[0].Marking)
	assert.Equal(t, "WS VT 6", items[1].Marking)
	assert.Equal(t, "WS VT 7", items[2].Marking)
	assert.Equal(t, "michel", items[0].CreatedBy)
	repository.AssertExpectations(t)
}

func TestService_Create_SkipsTakenMarkings(t *testing.T) {
	repository := &mockInventoryRepository{}
	repository.
		On("markingExists", mock.Anything, "WS VT 5", uint(0)).
		Return(false, nil)
	repository.
		On("markingExists", mock.Anything, "WS VT 6", uint(0)).
		Return(true, nil)
	repository.
		On("findMarkingsByPrefix", mock.Anything, "WS VT ").
		Return([]string{"WS VT 6"}, nil)
	repository.
		On("markingExists", mock.Anything, "WS VT 8", uint(0)).
		Return(false, nil)
	repository.
		On("createBatch", mock.Anything, mock.Anything).
		Return(nil)
	service := NewService(repository)

	items, err := service.Create(context.Background(), validFields("WS VT 5"), 3, nil)

	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "WS VT 5", items[0].Marking)
	assert.Equal(t, "WS VT 7", items[1].Marking)
	assert.Equal(t, "WS VT 8", items[2].Marking)
	repository.AssertExpectations(t)
}

func TestService_Create_RejectsTakenStartMarking(t *testing.T) {
	repository := &mockInventoryRepository{}
	repository.
		On("markingExists", mock.Anything, "WS VT 5", uint(0)).
		Return(true, nil)
	service := NewService(repository)

	items, err := service.Create(context.Background(), validFields("WS VT 5"), 1, nil)

	require.Nil(t, items)
	require.Error(t, err)
	assert.True(t, errdef.IsDuplicated(err))
	repository.AssertExpectations(t)
}

func TestService_Create_RejectsUnknownCategory(t *testing.T) {
	fields := validFields("WS VT 1")
	fields.Category = "Mischpulte"
	service := NewService(&mockInventoryRepository{})

	_, err := service.Create(context.Background(), fields, 1, nil)

	require.Error(t, err)
	assert.True(t, errdef.IsBadRequest(err))
}

func TestService_Create_RequiresNameUnlessCable(t *testing.T) {
	fields := validFields("WS VT 1")
	fields.Name = nil
	service := NewService(&mockInventoryRepository{})

	_, err := service.Create(context.Background(), fields, 1, nil)

	require.Error(t, err)
	assert.True(t, errdef.IsBadRequest(err))
}

func TestService_Create_RequiresCableTypeForCables(t *testing.T) {
	fields := validFields("WS VT 1")
	fields.Category = model.CategoryKabel
	fields.Name = nil
	fields.CableType = nil
	service := NewService(&mockInventoryRepository{})

	_, err := service.Create(context.Background(), fields, 1, nil)

	require.Error(t, err)
	assert.True(t, errdef.IsBadRequest(err))
}

func TestService_Create_ClearsInactiveFields(t *testing.T) {
	repository := &mockInventoryRepository{}
	repository.
		On("markingExists", mock.Anything, "WS VT 1", uint(0)).
		Return(false, nil)
	repository.
		On("createBatch", mock.Anything, mock.Anything).
		Return(nil)
	cableType := "Schuko"
	length := 25.0
	fields := validFields("WS VT 1")
	fields.CableType = &cableType
	fields.CableLength = &length
	fields.HasDMX = true
	service := NewService(repository)

	items, err := service.Create(context.Background(), fields, 1, nil)

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Nil(t, items[0].CableType)
	assert.Nil(t, items[0].CableLength)
	assert.Nil(t, items[0].HasDMX)
}

func TestService_Update_ChecksMarkingOnlyWhenChanged(t *testing.T) {
	repository := &mockInventoryRepository{}
	repository.
		On("findById", mock.Anything, uint(7)).
		Return(&model.InventoryItem{ID: 7, Marking: "WS VT 7", CreatedBy: "ben"}, nil)
	repository.
		On("update", mock.Anything, mock.Anything).
		Return(nil)
	service := NewService(repository)

	item, err := service.Update(context.Background(), 7, validFields("WS VT 7"))

	require.NoError(t, err)
	assert.Equal(t, uint(7), item.ID)
	assert.Equal(t, "ben", item.CreatedBy)
	repository.AssertExpectations(t)
	repository.AssertNotCalled(t, "markingExists", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Update_RejectsMarkingTakenByOtherItem(t *testing.T) {
	repository := &mockInventoryRepository{}
	repository.
		On("findById", mock.Anything, uint(7)).
		Return(&model.InventoryItem{ID: 7, Marking: "WS VT 7"}, nil)
	repository.
		On("markingExists", mock.Anything, "WS VT 8", uint(7)).
		Return(true, nil)
	service := NewService(repository)

	_, err := service.Update(context.Background(), 7, validFields("WS VT 8"))

	require.Error(t, err)
	assert.True(t, errdef.IsDuplicated(err))
	repository.AssertExpectations(t)
}

func TestService_NextAvailable(t *testing.T) {
	repository := &mockInventoryRepository{}
	repository.
		On("findMarkingsByPrefix", mock.Anything, "WS VT ").
		Return([]string{"WS VT 3", "WS VT 7", "WS VT x"}, nil)
	service := NewService(repository)

	marking, err := service.NextAvailable(context.Background(), "WS VT ")

	require.NoError(t, err)
	assert.Equal(t, "WS VT 8", marking)
}

func validFields(marking string) ItemFields {
	name := "Par 64"
	return ItemFields{
		Name:         &name,
		Category:     model.CategorySonstiges,
		IsFunctional: true,
		Marking:      marking,
		Location:     "Keller",
	}
}

type mockInventoryRepository struct{ mock.Mock }

func (m *mockInventoryRepository) findAll(ctx context.Context) ([]*model.InventoryItem, error) {
	called := m.Called(ctx)
	return called.Get(0).([]*model.InventoryItem), called.Error(1)
}

func (m *mockInventoryRepository) findById(ctx context.Context, id uint) (*model.InventoryItem, error) {
	called := m.Called(ctx, id)
	return called.Get(0).(*model.InventoryItem), called.Error(1)
}

func (m *mockInventoryRepository) createBatch(ctx context.Context, items []*model.InventoryItem) error {
	called := m.Called(ctx, items)
	return called.Error(0)
}

func (m *mockInventoryRepository) update(ctx context.Context, item *model.InventoryItem) error {
	called := m.Called(ctx, item)
	return called.Error(0)
}

func (m *mockInventoryRepository) delete(ctx context.Context, id uint) error {
	called := m.Called(ctx, id)
	return called.Error(0)
}

func (m *mockInventoryRepository) markingExists(ctx context.Context, marking string, excludeId uint) (bool, error) {
	called := m.Called(ctx, marking, excludeId)
	return called.Bool(0), called.Error(1)
}

func (m *mockInventoryRepository) findMarkingsByPrefix(ctx context.Context, prefix string) ([]string, error) {
	called := m.Called(ctx, prefix)
	return called.Get(0).([]string), called.Error(1)
}
