package user

import (
	"context"
	"errors"

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

func (r repository) create(ctx context.Context, u *model.User) error {
	err := r.db.WithContext(ctx).Create(&u).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errdef.NewDuplicated("user %q already exists", u.Username)
	}

	return err
}

// findByUsernameAndPassword is the login lookup. It matches both columns at once so zero rows and
// a wrong password are indistinguishable to the caller. The password is compared as stored.
func (r repository) findByUsernameAndPassword(ctx context.Context, username string, password string) (*model.User, error) {
	var u *model.User
	err := r.db.
		WithContext(ctx).
		Where("username = ? AND password = ?", username, password).
		First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errdef.NewUnauthorized("invalid credentials")
	}
	return u, err
}

func (r repository) findById(ctx context.Context, id uint) (*model.User, error) {
	var u *model.User
	err := r.db.
		WithContext(ctx).
		First(&u, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errdef.NewNotFound("failed to find user with id %d", id)
	}
	return u, err
}

func (r repository) findByUsername(ctx context.Context, username string) (*model.User, error) {
	var u *model.User
	err := r.db.
		WithContext(ctx).
		Where("username = ?", username).
		First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errdef.NewNotFound("failed to find user with username %q", username)
	}
	return u, err
}
