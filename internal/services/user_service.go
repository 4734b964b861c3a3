package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"back_office/internal/models"
	"back_office/internal/query"
	"back_office/internal/repository"
	"back_office/internal/validation"
)

type UserService interface {
	List(ctx context.Context, p query.Pagination) (*models.Page[models.User], error)
	Get(ctx context.Context, id uuid.UUID) (*models.User, error)
	Create(ctx context.Context, req validation.CreateUserRequest) (*models.User, error)
	Update(ctx context.Context, id uuid.UUID, req validation.UpdateUserRequest) (*models.User, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type userService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) List(ctx context.Context, p query.Pagination) (*models.Page[models.User], error) {
	users, count, err := s.repo.List(p)
	if err != nil {
		return nil, err
	}
	return &models.Page[models.User]{Data: users, Count: count}, nil
}

func (s *userService) Get(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		return nil, translateNotFound(err, "user")
	}
	return user, nil
}

func (s *userService) Create(ctx context.Context, req validation.CreateUserRequest) (*models.User, error) {
	if _, err := s.repo.GetByEmail(req.Email); err == nil {
		return nil, conflict("email")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        req.Email,
		FullName:     req.FullName,
		PasswordHash: string(hash),
		IsActive:     true,
		IsSuperuser:  req.IsSuperuser,
	}
	if err := s.repo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) Update(ctx context.Context, id uuid.UUID, req validation.UpdateUserRequest) (*models.User, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		return nil, translateNotFound(err, "user")
	}

	if req.Email != nil && *req.Email != user.Email {
		if _, err := s.repo.GetByEmail(*req.Email); err == nil {
			return nil, conflict("email")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		user.Email = *req.Email
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}

	if err := s.repo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) Deactivate(ctx context.Context, id uuid.UUID) error {
	user, err := s.repo.GetByID(id)
	if err != nil {
		return translateNotFound(err, "user")
	}
	user.IsActive = false
	return s.repo.Update(user)
}
