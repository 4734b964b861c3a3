package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"back_office/internal/cache"
	"back_office/internal/models"
	"back_office/internal/query"
	"back_office/internal/repository"
	"back_office/internal/validation"
)

const entityCustomers = "customers"

type CustomerService interface {
	List(ctx context.Context, filter query.CustomerFilter) (*models.Page[models.Customer], error)
	Get(ctx context.Context, id uuid.UUID) (*models.Customer, error)
	Create(ctx context.Context, req validation.CreateCustomerRequest) (*models.Customer, error)
	Update(ctx context.Context, id uuid.UUID, req validation.UpdateCustomerRequest) (*models.Customer, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type customerService struct {
	repo  repository.CustomerRepository
	cache *cache.Client
}

func NewCustomerService(repo repository.CustomerRepository, cacheClient *cache.Client) CustomerService {
	return &customerService{repo: repo, cache: cacheClient}
}

func (s *customerService) List(ctx context.Context, filter query.CustomerFilter) (*models.Page[models.Customer], error) {
	key := cache.ListKey(entityCustomers, filter.Encode())
	var page models.Page[models.Customer]
	if s.cache.GetJSON(ctx, key, &page) {
		return &page, nil
	}

	customers, count, err := s.repo.List(filter)
	if err != nil {
		return nil, err
	}
	page = models.Page[models.Customer]{Data: customers, Count: count}
	s.cache.SetJSON(ctx, entityCustomers, key, page)
	return &page, nil
}

func (s *customerService) Get(ctx context.Context, id uuid.UUID) (*models.Customer, error) {
	key := cache.ItemKey(entityCustomers, id.String())
	var cached models.Customer
	if s.cache.GetJSON(ctx, key, &cached) {
		return &cached, nil
	}

	customer, err := s.repo.GetByID(id)
	if err != nil {
		return nil, translateNotFound(err, "customer")
	}
	s.cache.SetJSON(ctx, entityCustomers, key, customer)
	return customer, nil
}

func (s *customerService) Create(ctx context.Context, req validation.CreateCustomerRequest) (*models.Customer, error) {
	if _, err := s.repo.GetByPhone(req.Phone); err == nil {
		return nil, conflict("phone number")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	customer := &models.Customer{
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Address: req.Address,
	}
	if err := s.repo.Create(customer); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, entityCustomers)
	return customer, nil
}

func (s *customerService) Update(ctx context.Context, id uuid.UUID, req validation.UpdateCustomerRequest) (*models.Customer, error) {
	customer, err := s.repo.GetByID(id)
	if err != nil {
		return nil, translateNotFound(err, "customer")
	}

	if req.Phone != nil && *req.Phone != customer.Phone {
		if _, err := s.repo.GetByPhone(*req.Phone); err == nil {
			return nil, conflict("phone number")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		customer.Phone = *req.Phone
	}
	if req.Name != nil {
		customer.Name = *req.Name
	}
	if req.Email != nil {
		customer.Email = *req.Email
	}
	if req.Address != nil {
		customer.Address = *req.Address
	}

	if err := s.repo.Update(customer); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, entityCustomers)
	return customer, nil
}

func (s *customerService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return translateNotFound(err, "customer")
	}
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, entityCustomers)
	return nil
}
