package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	dto "time-management.com/time-management/internal/data_models"
	apperrors "time-management.com/time-management/internal/errors"
	model "time-management.com/time-management/internal/models"
	repository "time-management.com/time-management/internal/repositories"
)

// UserService is the identity directory. It implements UserDirectory
// for the lifecycle engine and backs the admin user endpoints.
type UserService struct {
	repo *repository.UserRepository
}

func NewUserService(repo *repository.UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) ResolveByEmail(ctx context.Context, email string) (*model.User, error) {
	return s.repo.FindByEmail(ctx, email)
}

func (s *UserService) ResolveByID(ctx context.Context, id string) (*model.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *UserService) ListUsers(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperrors.ErrDependencyUnavailable
	}

	responses := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, toUserResponse(&u))
	}
	return responses, nil
}

func (s *UserService) GetUser(ctx context.Context, id string) (*dto.UserResponse, error) {
	user, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrUserNotFound
	}
	if err != nil {
		return nil, apperrors.ErrDependencyUnavailable
	}

	resp := toUserResponse(user)
	return &resp, nil
}

// DeleteUser removes the account only. Tasks referencing the user keep
// their identifier; projections render the gone identity as an empty
// email.
func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.ErrDependencyUnavailable
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return apperrors.ErrDependencyUnavailable
	}
	return nil
}

func toUserResponse(u *model.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
