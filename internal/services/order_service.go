package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"restaurant_backend/internal/models"
	"restaurant_backend/internal/repositories"
)

// --- Custom Service Errors for orders ---
var (
	ErrOrderNotFound        = errors.New("order not found")
	ErrMenuItemsNotFound    = errors.New("one or more menu items not found")
	ErrInvalidOrderStatus   = errors.New("invalid order status")
	ErrInvalidPaymentStatus = errors.New("invalid payment status")
	ErrOrderNotCancellable  = errors.New("cannot cancel an order that is ready or delivered")
)

// Order status constants.
const (
	OrderStatusPending   = "pending"
	OrderStatusPreparing = "preparing"
	OrderStatusReady     = "ready"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// Order types.
const (
	OrderTypeDelivery = "delivery"
	OrderTypePickup   = "pickup"
)

// Payment statuses. Stored flag only, no payment processing happens here.
const (
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
	PaymentStatusFailed  = "failed"
)

// --- Order DTOs ---

// CreateOrderItemRequest is one requested line. Any caller-supplied price is
// deliberately absent from this struct: unit prices are always resolved from
// the stored menu.
type CreateOrderItemRequest struct {
	MenuItemID int64 `json:"menu_item_id" binding:"required"`
	Quantity   int   `json:"quantity" binding:"required"`
}

type CreateOrderRequest struct {
	Items     []CreateOrderItemRequest `json:"items" binding:"required"`
	OrderType string                   `json:"order_type" binding:"required"`
	Address   *string                  `json:"address"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type UpdatePaymentStatusRequest struct {
	PaymentStatus string `json:"payment_status" binding:"required"`
}

// --- OrderService Interface ---
type OrderService interface {
	CreateOrder(req CreateOrderRequest) (*models.Order, error)
	GetOrders(filters models.OrderFilters) ([]models.Order, int, error)
	GetOrderByID(orderID int64) (*models.Order, error)
	UpdateOrderStatus(orderID int64, req UpdateOrderStatusRequest) (*models.Order, error)
	UpdatePaymentStatus(orderID int64, req UpdatePaymentStatusRequest) (*models.Order, error)
	CancelOrder(orderID int64) (*models.Order, error)
	DeleteOrder(orderID int64) error
}

// --- orderService Implementation ---
type orderService struct {
	orderRepo repositories.OrderRepository
	menuRepo  repositories.MenuRepository
	db        *sql.DB
}

// NewOrderService creates a new instance of OrderService.
func NewOrderService(or repositories.OrderRepository, mr repositories.MenuRepository, db *sql.DB) OrderService {
	return &orderService{
		orderRepo: or,
		menuRepo:  mr,
		db:        db,
	}
}

// CreateOrder validates the cart, snapshots current menu prices and persists
// the order. Prices are read before the insert and not locked; a concurrent
// price change between read and insert wins silently.
func (s *orderService) CreateOrder(req CreateOrderRequest) (*models.Order, error) {
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("%w: order must contain at least one item", ErrValidation)
	}
	if req.OrderType != OrderTypeDelivery && req.OrderType != OrderTypePickup {
		return nil, fmt.Errorf("%w: order type must be delivery or pickup", ErrValidation)
	}
	if req.OrderType == OrderTypeDelivery && (req.Address == nil || strings.TrimSpace(*req.Address) == "") {
		return nil, fmt.Errorf("%w: delivery address is required", ErrValidation)
	}

	distinctIDs := make([]int64, 0, len(req.Items))
	seen := make(map[int64]struct{}, len(req.Items))
	for _, itemReq := range req.Items {
		if itemReq.Quantity < 1 {
			return nil, fmt.Errorf("%w: quantity for item ID %d must be at least 1", ErrValidation, itemReq.MenuItemID)
		}
		if _, ok := seen[itemReq.MenuItemID]; !ok {
			seen[itemReq.MenuItemID] = struct{}{}
			distinctIDs = append(distinctIDs, itemReq.MenuItemID)
		}
	}

	menuItems, err := s.menuRepo.GetMenuItemsByIDs(distinctIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve menu items: %w", err)
	}
	if len(menuItems) != len(distinctIDs) {
		return nil, ErrMenuItemsNotFound
	}

	priceByID := make(map[int64]float64, len(menuItems))
	for _, item := range menuItems {
		priceByID[item.ID] = item.Price
	}

	var totalPrice float64
	orderItems := make([]models.OrderItem, 0, len(req.Items))
	for _, itemReq := range req.Items {
		unitPrice := priceByID[itemReq.MenuItemID]
		totalPrice += unitPrice * float64(itemReq.Quantity)
		orderItems = append(orderItems, models.OrderItem{
			MenuItemID: itemReq.MenuItemID,
			Quantity:   itemReq.Quantity,
			UnitPrice:  unitPrice,
		})
	}

	order := models.Order{
		OrderType:     req.OrderType,
		Address:       req.Address,
		Status:        OrderStatusPending,
		PaymentStatus: PaymentStatusPending,
		TotalPrice:    totalPrice,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to start database transaction: %w", err)
	}
	defer tx.Rollback()

	createdOrderID, err := s.orderRepo.CreateOrder(tx, &order)
	if err != nil {
		return nil, fmt.Errorf("failed to create order record: %w", err)
	}

	for _, itemModel := range orderItems {
		itemModel.OrderID = createdOrderID
		if _, err := s.orderRepo.CreateOrderItem(tx, &itemModel); err != nil {
			return nil, fmt.Errorf("failed to create order item (menu_item_id: %d): %w", itemModel.MenuItemID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit order transaction: %w", err)
	}

	return s.GetOrderByID(createdOrderID)
}

func (s *orderService) GetOrders(filters models.OrderFilters) ([]models.Order, int, error) {
	if filters.Page <= 0 {
		filters.Page = 1
	}
	if filters.Limit <= 0 {
		filters.Limit = 10
	}

	orders, totalCount, err := s.orderRepo.GetOrders(filters)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get orders: %w", err)
	}
	return orders, totalCount, nil
}

func (s *orderService) GetOrderByID(orderID int64) (*models.Order, error) {
	order, err := s.orderRepo.GetOrderByID(orderID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order by ID: %w", err)
	}

	items, err := s.orderRepo.GetOrderItemsByOrderID(orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get order items for order %d: %w", orderID, err)
	}
	order.Items = items
	return order, nil
}

// UpdateOrderStatus sets any valid status regardless of the current one.
// The transition table is deliberately flat; callers are already gated by
// auth before reaching this point.
func (s *orderService) UpdateOrderStatus(orderID int64, req UpdateOrderStatusRequest) (*models.Order, error) {
	if !isValidOrderStatus(req.Status) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidOrderStatus, req.Status)
	}

	err := s.orderRepo.UpdateOrderStatus(s.db, orderID, req.Status, time.Now())
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}
	return s.GetOrderByID(orderID)
}

func (s *orderService) UpdatePaymentStatus(orderID int64, req UpdatePaymentStatusRequest) (*models.Order, error) {
	switch req.PaymentStatus {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusFailed:
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidPaymentStatus, req.PaymentStatus)
	}

	err := s.orderRepo.UpdatePaymentStatus(s.db, orderID, req.PaymentStatus, time.Now())
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to update payment status: %w", err)
	}
	return s.GetOrderByID(orderID)
}

// CancelOrder refuses to cancel orders that are already ready or delivered.
// Cancelling from pending, preparing or an already-cancelled state succeeds
// idempotently.
func (s *orderService) CancelOrder(orderID int64) (*models.Order, error) {
	order, err := s.orderRepo.GetOrderByID(orderID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to fetch order for cancellation: %w", err)
	}

	if order.Status == OrderStatusReady || order.Status == OrderStatusDelivered {
		return nil, ErrOrderNotCancellable
	}

	err = s.orderRepo.UpdateOrderStatus(s.db, orderID, OrderStatusCancelled, time.Now())
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to cancel order: %w", err)
	}
	return s.GetOrderByID(orderID)
}

func (s *orderService) DeleteOrder(orderID int64) error {
	_, err := s.orderRepo.DeleteOrder(s.db, orderID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrOrderNotFound
		}
		return fmt.Errorf("failed to delete order: %w", err)
	}
	return nil
}

func isValidOrderStatus(status string) bool {
	switch status {
	case OrderStatusPending, OrderStatusPreparing, OrderStatusReady, OrderStatusDelivered, OrderStatusCancelled:
		return true
	default:
		return false
	}
}
