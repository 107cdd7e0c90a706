package services

import (
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"
)

type UserService interface {
	GetProfile(userID string) (*dto.UserProfile, error)
	UpdateDisplayName(user *models.User, displayName string) (*dto.UserProfile, error)
}

type UserServiceImpl struct {
	repo repositories.UserRepository
}

func NewUserService(repo repositories.UserRepository) UserService {
	return &UserServiceImpl{repo: repo}
}

func (s *UserServiceImpl) GetProfile(userID string) (*dto.UserProfile, error) {
	user, err := s.repo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return toProfile(user), nil
}

func (s *UserServiceImpl) UpdateDisplayName(user *models.User, displayName string) (*dto.UserProfile, error) {
	user.DisplayName = displayName
	if err := s.repo.Update(user); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return toProfile(user), nil
}
