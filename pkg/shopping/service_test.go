package shopping

import (
	"context"
	"testing"
	"time"

	"github.com/ws-vt/technik-manager/internal/errdef"
	"github.com/ws-vt/technik-manager/pkg/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestService_Update_KeepsCreatorAndCreationTime(t *testing.T) {
	createdAt := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	repository := &mockShoppingRepository{}
	repository.
		On("findById", mock.Anything, uint(5)).
		Return(&model.ShoppingItem{ID: 5, Name: "Gaffa", Priority: 1, CreatedAt: createdAt, CreatedBy: "ben"}, nil)
	repository.
		On("update", mock.Anything, mock.Anything).
		Return(nil)
	service := NewService(repository)

	price := 12.5
	item, err := service.Update(context.Background(), 5, "Gaffa schwarz", &price, nil, 2)

	require.NoError(t, err)
	assert.Equal(t, "Gaffa schwarz", item.Name)
	assert.Equal(t, 2, item.Priority)
	assert.Equal(t, "ben", item.CreatedBy)
	assert.Equal(t, createdAt, item.CreatedAt)
	repository.AssertExpectations(t)
}

func TestService_DeleteNote_OnlyAuthor(t *testing.T) {
	repository := &mockShoppingRepository{}
	repository.
		On("findNoteById", mock.Anything, uint(9)).
		Return(&model.ShoppingNote{ID: 9, CreatedBy: "ben"}, nil)
	service := NewService(repository)

	err := service.DeleteNote(context.Background(), 9, &model.User{Username: "michel"})

	require.Error(t, err)
	assert.True(t, errdef.IsForbidden(err))
	repository.AssertNotCalled(t, "deleteNote", mock.Anything, mock.Anything)
}

type mockShoppingRepository struct{ mock.Mock }

func (m *mockShoppingRepository) findAll(ctx context.Context, sortBy SortOption) ([]*model.ShoppingItem, error) {
	called := m.Called(ctx, sortBy)
	return called.Get(0).([]*model.ShoppingItem), called.Error(1)
}

func (m *mockShoppingRepository) findById(ctx context.Context, id uint) (*model.ShoppingItem, error) {
	called := m.Called(ctx, id)
	return called.Get(0).(*model.ShoppingItem), called.Error(1)
}

func (m *mockShoppingRepository) create(ctx context.Context, item *model.ShoppingItem) error {
	called := m.Called(ctx, item)
	return called.Error(0)
}

func (m *mockShoppingRepository) update(ctx context.Context, item *model.ShoppingItem) error {
	called := m.Called(ctx, item)
	return called.Error(0)
}

func (m *mockShoppingRepository) delete(ctx context.Context, id uint) error {
	called := m.Called(ctx, id)
	return called.Error(0)
}

func (m *mockShoppingRepository) findNotes(ctx context.Context, itemId uint) ([]*model.ShoppingNote, error) {
	called := m.Called(ctx, itemId)
	return called.Get(0).([]*model.ShoppingNote), called.Error(1)
}

func (m *mockShoppingRepository) findNoteById(ctx context.Context, id uint) (*model.ShoppingNote, error) {
	called := m.Called(ctx, id)
	return called.Get(0).(*model.ShoppingNote), called.Error(1)
}

func (m *mockShoppingRepository) createNote(ctx context.Context, note *model.ShoppingNote) error {
	called := m.Called(ctx, note)
	return called.Error(0)
}

func (m *mockShoppingRepository) deleteNote(ctx context.Context, id uint) error {
	called := m.Called(ctx, id)
	return called.Error(0)
}
