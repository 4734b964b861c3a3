package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"back_office/internal/cache"
	"back_office/internal/models"
	"back_office/internal/policy"
	"back_office/internal/query"
	"back_office/internal/repository"
	"back_office/internal/validation"
	"back_office/pkg/webhook"
)

const entityOrders = "orders"

type OrderService interface {
	List(ctx context.Context, filter query.OrderFilter) (*models.Page[models.Order], error)
	Get(ctx context.Context, id uuid.UUID) (*models.Order, error)
	Create(ctx context.Context, req validation.CreateOrderRequest, createdBy *uuid.UUID) (*models.Order, error)
	Update(ctx context.Context, id uuid.UUID, req validation.UpdateOrderRequest, updatedBy *uuid.UUID) (*models.Order, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type orderService struct {
	db       *gorm.DB
	repo     repository.OrderRepository
	cache    *cache.Client
	notifier *webhook.Notifier
}

func NewOrderService(db *gorm.DB, repo repository.OrderRepository, cacheClient *cache.Client, notifier *webhook.Notifier) OrderService {
	return &orderService{db: db, repo: repo, cache: cacheClient, notifier: notifier}
}

func (s *orderService) List(ctx context.Context, filter query.OrderFilter) (*models.Page[models.Order], error) {
	key := cache.ListKey(entityOrders, filter.Encode())
	var page models.Page[models.Order]
	if s.cache.GetJSON(ctx, key, &page) {
		return &page, nil
	}

	orders, count, err := s.repo.List(filter)
	if err != nil {
		return nil, err
	}
	page = models.Page[models.Order]{Data: orders, Count: count}
	s.cache.SetJSON(ctx, entityOrders, key, page)
	return &page, nil
}

func (s *orderService) Get(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	key := cache.ItemKey(entityOrders, id.String())
	var cached models.Order
	if s.cache.GetJSON(ctx, key, &cached) {
		return &cached, nil
	}

	order, err := s.repo.GetByID(id)
	if err != nil {
		return nil, translateNotFound(err, "order")
	}
	s.cache.SetJSON(ctx, entityOrders, key, order)
	return order, nil
}

func (s *orderService) Create(ctx context.Context, req validation.CreateOrderRequest, createdBy *uuid.UUID) (*models.Order, error) {
	status := policy.Normalize(models.OrderStatus(req.Status))
	paymentStatus := models.PaymentStatus(req.PaymentStatus)
	if paymentStatus == "" {
		paymentStatus = models.PaymentUnpaid
	}
	paymentMethod := req.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = "cash"
	}

	var order *models.Order
	deducted := false
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var customer models.Customer
		if err := tx.First(&customer, "id = ?", req.CustomerID).Error; err != nil {
			return translateNotFound(err, "customer")
		}
		if req.AssignedTo != nil {
			var user models.User
			if err := tx.First(&user, "id = ?", *req.AssignedTo).Error; err != nil {
				return translateNotFound(err, "assigned user")
			}
		}

		// lines without a product are dropped, never priced
		items := make([]models.OrderItem, 0, len(req.Items))
		for _, line := range req.Items {
			if line.ProductID == nil {
				continue
			}
			var product models.Product
			if err := tx.First(&product, "id = ?", *line.ProductID).Error; err != nil {
				return translateNotFound(err, "product")
			}
			productID := product.ID
			items = append(items, models.OrderItem{
				ProductID:      &productID,
				ProductName:    product.Name,
				SKU:            product.SKU,
				ThumbnailImage: product.ThumbnailImage,
				Quantity:       line.Quantity,
				UnitPrice:      product.Price,
				TotalPrice:     product.Price * float64(line.Quantity),
			})
		}
		if len(items) == 0 {
			return invalid("order items required")
		}

		subtotal := computeSubtotal(items)
		grandTotal, err := computeGrandTotal(subtotal, req.DiscountTotal, req.TaxTotal, req.ShippingFee)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		lastNumber, err := repository.NewOrderRepository(tx).LastOrderNumber(orderNumberPrefix(now))
		if err != nil {
			return err
		}

		order = &models.Order{
			OrderNumber:     nextOrderNumber(orderNumberPrefix(now), lastNumber),
			CustomerID:      req.CustomerID,
			Status:          status,
			PaymentStatus:   paymentStatus,
			PaymentMethod:   paymentMethod,
			AssignedTo:      req.AssignedTo,
			ShippingAddress: req.ShippingAddress,
			BillingAddress:  req.BillingAddress,
			Notes:           req.Notes,
			Subtotal:        subtotal,
			DiscountTotal:   req.DiscountTotal,
			TaxTotal:        req.TaxTotal,
			ShippingFee:     req.ShippingFee,
			GrandTotal:      grandTotal,
			CreatedBy:       createdBy,
			Items:           items,
		}
		if err := tx.Create(order).Error; err != nil {
			return err
		}

		if requiresInventoryDeduction(status) {
			deducted = true
			return deductInventoryForOrder(tx, order, createdBy)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, deducted)
	s.notifier.Notify(webhook.Event{
		Type:        "order.created",
		OrderID:     order.ID.String(),
		OrderNumber: order.OrderNumber,
		Status:      string(order.Status),
	})
	return order, nil
}

func (s *orderService) Update(ctx context.Context, id uuid.UUID, req validation.UpdateOrderRequest, updatedBy *uuid.UUID) (*models.Order, error) {
	var order *models.Order
	stockTouched := false
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current models.Order
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Preload("Items").
			First(&current, "id = ?", id).Error
		if err != nil {
			return translateNotFound(err, "order")
		}

		now := time.Now().UTC()
		previousStatus := policy.Normalize(current.Status)
		targetStatus := previousStatus

		if req.Status != nil {
			targetStatus = policy.Normalize(models.OrderStatus(*req.Status))
			if !policy.CanTransition(previousStatus, targetStatus) {
				return invalid("status transition not allowed")
			}
			if targetStatus != previousStatus {
				switch targetStatus {
				case models.OrderConfirmed:
					current.ConfirmedAt = &now
				case models.OrderPaid:
					current.PaidAt = &now
				case models.OrderFulfilled:
					current.FulfilledAt = &now
				case models.OrderCancelled:
					current.CancelledAt = &now
				}
			}
			current.Status = targetStatus
		}

		if req.AssignedTo != nil {
			var user models.User
			if err := tx.First(&user, "id = ?", *req.AssignedTo).Error; err != nil {
				return translateNotFound(err, "assigned user")
			}
			current.AssignedTo = req.AssignedTo
		}
		if req.PaymentStatus != nil {
			current.PaymentStatus = models.PaymentStatus(*req.PaymentStatus)
		}
		if req.PaymentMethod != nil {
			current.PaymentMethod = *req.PaymentMethod
		}
		if req.ShippingAddress != nil {
			current.ShippingAddress = *req.ShippingAddress
		}
		if req.BillingAddress != nil {
			current.BillingAddress = *req.BillingAddress
		}
		if req.Notes != nil {
			current.Notes = *req.Notes
		}
		if req.DiscountTotal != nil {
			current.DiscountTotal = *req.DiscountTotal
		}
		if req.TaxTotal != nil {
			current.TaxTotal = *req.TaxTotal
		}
		if req.ShippingFee != nil {
			current.ShippingFee = *req.ShippingFee
		}

		current.Subtotal = computeSubtotal(current.Items)
		grandTotal, err := computeGrandTotal(current.Subtotal, current.DiscountTotal, current.TaxTotal, current.ShippingFee)
		if err != nil {
			return err
		}
		current.GrandTotal = grandTotal
		current.UpdatedBy = updatedBy

		if err := tx.Omit(clause.Associations).Save(&current).Error; err != nil {
			return err
		}

		needsBefore := requiresInventoryDeduction(previousStatus)
		needsAfter := requiresInventoryDeduction(targetStatus)
		if !needsBefore && needsAfter {
			stockTouched = true
			if err := deductInventoryForOrder(tx, &current, updatedBy); err != nil {
				return err
			}
		} else if needsBefore && !needsAfter {
			stockTouched = true
			if err := restoreInventoryForOrder(tx, &current, updatedBy); err != nil {
				return err
			}
		}

		order = &current
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, stockTouched)
	s.notifier.Notify(webhook.Event{
		Type:        "order.updated",
		OrderID:     order.ID.String(),
		OrderNumber: order.OrderNumber,
		Status:      string(order.Status),
	})
	return order, nil
}

func (s *orderService) Delete(ctx context.Context, id uuid.UUID) error {
	var deleted models.Order
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var order models.Order
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Preload("Items").
			First(&order, "id = ?", id).Error
		if err != nil {
			return translateNotFound(err, "order")
		}
		if !policy.CanDelete(order.Status) {
			return invalid("only draft orders can be deleted")
		}

		if err := restoreInventoryForOrder(tx, &order, nil); err != nil {
			return err
		}
		if err := tx.Delete(&models.OrderItem{}, "order_id = ?", order.ID).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.Order{}, "id = ?", order.ID).Error; err != nil {
			return err
		}
		deleted = order
		return nil
	})
	if err != nil {
		return err
	}

	s.invalidate(ctx, true)
	s.notifier.Notify(webhook.Event{
		Type:        "order.deleted",
		OrderID:     deleted.ID.String(),
		OrderNumber: deleted.OrderNumber,
		Status:      string(deleted.Status),
	})
	return nil
}

func (s *orderService) invalidate(ctx context.Context, stockTouched bool) {
	if stockTouched {
		s.cache.Invalidate(ctx, entityOrders, entityProducts, entityInventory)
		return
	}
	s.cache.Invalidate(ctx, entityOrders)
}
