package service

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"streetkart/internal/model"
	"streetkart/internal/repository"
)

// TaxRate is the flat sales tax applied to every order subtotal.
const TaxRate = 0.0875

// orderService implements OrderService.
type orderService struct {
	orderRepo    repository.OrderRepository
	cartRepo     repository.CartRepository
	itemRepo     repository.ItemRepository
	merchantRepo repository.MerchantRepository
	onChange     ChangeHook
	logger       zerolog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(
	orderRepo repository.OrderRepository,
	cartRepo repository.CartRepository,
	itemRepo repository.ItemRepository,
	merchantRepo repository.MerchantRepository,
	onChange ChangeHook,
	logger zerolog.Logger,
) OrderService {
	return &orderService{
		orderRepo:    orderRepo,
		cartRepo:     cartRepo,
		itemRepo:     itemRepo,
		merchantRepo: merchantRepo,
		onChange:     onChange,
		logger:       logger.With().Str("service", "order").Logger(),
	}
}

// CreateOrder snapshots the active cart into an immutable order: copies
// every line by value, computes totals, bumps the sold counters on the
// referenced items and clears the cart, all within this call.
func (s *orderService) CreateOrder(req model.OrderRequest) model.OrderResult {
	cart := s.cartRepo.Get()
	if cart == nil || len(cart.Items) == 0 {
		s.logger.Warn().Msg("order rejected, cart is empty")
		return model.OrderResult{Success: false, Message: "Cart is empty"}
	}

	merchant := s.merchantRepo.Get(cart.MerchantID)
	if merchant == nil {
		s.logger.Warn().
			Str("merchant_id", cart.MerchantID).
			Msg("order rejected, merchant not found")
		return model.OrderResult{Success: false, Message: "Merchant not found"}
	}

	items := make([]model.OrderItem, len(cart.Items))
	for i, line := range cart.Items {
		unit := line.BasePrice
		for _, opt := range line.SelectedOptions {
			unit += opt.PriceDelta
		}
		items[i] = model.OrderItem{
			ItemID:          line.ItemID,
			Name:            line.Name,
			UnitPrice:       unit,
			SelectedOptions: append([]model.SelectedOption(nil), line.SelectedOptions...),
			Quantity:        line.Quantity,
			Notes:           line.Notes,
			LineTotal:       line.LineTotal,
		}
	}

	subtotal := cart.Subtotal
	tax := subtotal * TaxRate
	deliveryFee := 0.0
	if req.DeliveryType == model.DeliveryTypeDelivery {
		deliveryFee = merchant.DeliveryFee
	}
	total := subtotal + tax + deliveryFee + req.Tip - req.Discount

	order := model.Order{
		ID:            uuid.New(),
		OrderNumber:   s.orderRepo.NextOrderNumber(),
		UserID:        req.UserID,
		MerchantID:    merchant.ID,
		MerchantName:  merchant.Name,
		Items:         items,
		Subtotal:      subtotal,
		Tax:           tax,
		DeliveryFee:   deliveryFee,
		Tip:           req.Tip,
		Discount:      req.Discount,
		Total:         total,
		DeliveryType:  req.DeliveryType,
		Address:       req.Address,
		Status:        model.StatusPending,
		PaymentStatus: model.PaymentPending,
		CreatedAt:     time.Now(),
	}

	// Sales counters move in the same logical transaction as the order.
	for _, line := range items {
		item := s.itemRepo.Get(line.ItemID)
		if item == nil {
			continue
		}
		item.UnitsSold += line.Quantity
		item.Revenue += line.LineTotal
		s.itemRepo.Save(*item)
	}

	s.orderRepo.Save(order)
	s.cartRepo.Clear()

	s.logger.Info().
		Str("order_id", order.ID.String()).
		Str("order_number", order.OrderNumber).
		Float64("total", order.Total).
		Msg("order created")
	s.onChange.fire()

	return model.OrderResult{Success: true, Order: &order}
}

// GetOrder retrieves an order by ID. Returns nil when absent.
func (s *orderService) GetOrder(id uuid.UUID) *model.Order {
	return s.orderRepo.Get(id)
}

// ListOrders returns every order, newest first.
func (s *orderService) ListOrders() []model.Order {
	orders := s.orderRepo.All()
	sortOrdersNewestFirst(orders)
	return orders
}

// ListOrdersByStatus returns orders in the given fulfilment status,
// newest first.
func (s *orderService) ListOrdersByStatus(status model.OrderStatus) []model.Order {
	var out []model.Order
	for _, order := range s.orderRepo.All() {
		if order.Status == status {
			out = append(out, order)
		}
	}
	sortOrdersNewestFirst(out)
	return out
}

// ListOrdersForUser returns a user's orders, newest first.
func (s *orderService) ListOrdersForUser(userID string) []model.Order {
	var out []model.Order
	for _, order := range s.orderRepo.All() {
		if order.UserID == userID {
			out = append(out, order)
		}
	}
	sortOrdersNewestFirst(out)
	return out
}

// UpdateOrderStatus advances an order one step along its fulfilment
// flow. Cancellation and refund go through their dedicated operations.
func (s *orderService) UpdateOrderStatus(id uuid.UUID, status model.OrderStatus) error {
	order := s.orderRepo.Get(id)
	if order == nil {
		return model.ErrOrderNotFound
	}

	if nextStatus(order.Status, order.DeliveryType) != status {
		s.logger.Warn().
			Str("order_id", id.String()).
			Str("from", string(order.Status)).
			Str("to", string(status)).
			Msg("status transition rejected")
		return model.ErrBadTransition
	}

	now := time.Now()
	order.Status = status
	switch status {
	case model.StatusConfirmed:
		order.ConfirmedAt = &now
	case model.StatusDelivered, model.StatusCompleted:
		order.CompletedAt = &now
	}

	s.orderRepo.Save(*order)
	s.logger.Info().
		Str("order_id", id.String()).
		Str("status", string(status)).
		Msg("order status updated")
	s.onChange.fire()
	return nil
}

// UpdatePaymentStatus moves the payment lifecycle independently of
// fulfilment.
func (s *orderService) UpdatePaymentStatus(id uuid.UUID, status model.PaymentStatus) error {
	order := s.orderRepo.Get(id)
	if order == nil {
		return model.ErrOrderNotFound
	}

	order.PaymentStatus = status
	s.orderRepo.Save(*order)
	s.logger.Info().
		Str("order_id", id.String()).
		Str("payment_status", string(status)).
		Msg("payment status updated")
	s.onChange.fire()
	return nil
}

// CancelOrder moves an order to cancelled. This is the only transition
// carrying mandatory metadata: the reason must be non-empty.
func (s *orderService) CancelOrder(id uuid.UUID, reason string) error {
	if strings.TrimSpace(reason) == "" {
		return model.ErrReasonRequired
	}

	order := s.orderRepo.Get(id)
	if order == nil {
		return model.ErrOrderNotFound
	}
	if order.Status.IsTerminal() {
		return model.ErrBadTransition
	}

	now := time.Now()
	order.Status = model.StatusCancelled
	order.CancelReason = reason
	order.CancelledAt = &now

	s.orderRepo.Save(*order)
	s.logger.Info().
		Str("order_id", id.String()).
		Str("reason", reason).
		Msg("order cancelled")
	s.onChange.fire()
	return nil
}

// RefundOrder sets payment status and fulfilment status to refunded as
// one compound action, so the two fields cannot drift.
func (s *orderService) RefundOrder(id uuid.UUID) error {
	order := s.orderRepo.Get(id)
	if order == nil {
		return model.ErrOrderNotFound
	}
	if order.Status == model.StatusRefunded || order.Status == model.StatusCancelled {
		return model.ErrBadTransition
	}

	order.Status = model.StatusRefunded
	order.PaymentStatus = model.PaymentRefunded

	s.orderRepo.Save(*order)
	s.logger.Info().Str("order_id", id.String()).Msg("order refunded")
	s.onChange.fire()
	return nil
}

// nextStatus returns the only legal forward transition from the given
// status for the given fulfilment flow.
func nextStatus(current model.OrderStatus, deliveryType model.DeliveryType) model.OrderStatus {
	switch current {
	case model.StatusPending:
		return model.StatusConfirmed
	case model.StatusConfirmed:
		return model.StatusPreparing
	case model.StatusPreparing:
		return model.StatusReady
	case model.StatusReady:
		if deliveryType == model.DeliveryTypePickup {
			return model.StatusCompleted
		}
		return model.StatusOutForDelivery
	case model.StatusOutForDelivery:
		return model.StatusDelivered
	}
	return ""
}

func sortOrdersNewestFirst(orders []model.Order) {
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
}
