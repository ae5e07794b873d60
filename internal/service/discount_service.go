package service

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"streetkart/internal/model"
	"streetkart/internal/repository"
)

// discountService implements DiscountService.
type discountService struct {
	discountRepo repository.DiscountRepository
	onChange     ChangeHook
	logger       zerolog.Logger
}

// NewDiscountService creates a new discount service.
func NewDiscountService(
	discountRepo repository.DiscountRepository,
	onChange ChangeHook,
	logger zerolog.Logger,
) DiscountService {
	return &discountService{
		discountRepo: discountRepo,
		onChange:     onChange,
		logger:       logger.With().Str("service", "discount").Logger(),
	}
}

// AddDiscount inserts a discount.
func (s *discountService) AddDiscount(d model.Discount) {
	s.discountRepo.Save(d)
	s.logger.Info().Str("discount_id", d.ID).Str("code", d.Code).Msg("discount added")
	s.onChange.fire()
}

// DeleteDiscount removes a discount. Unknown IDs are a no-op.
func (s *discountService) DeleteDiscount(id string) {
	if s.discountRepo.Get(id) == nil {
		s.logger.Debug().Str("discount_id", id).Msg("delete skipped, discount not found")
		return
	}

	s.discountRepo.Delete(id)
	s.logger.Info().Str("discount_id", id).Msg("discount deleted")
	s.onChange.fire()
}

// GetDiscount retrieves a discount by ID. Returns nil when absent.
func (s *discountService) GetDiscount(id string) *model.Discount {
	return s.discountRepo.Get(id)
}

// ListDiscounts returns every discount.
func (s *discountService) ListDiscounts() []model.Discount {
	return s.discountRepo.All()
}

// SetDiscountActive toggles a discount on or off. Unknown IDs are a
// no-op.
func (s *discountService) SetDiscountActive(id string, active bool) {
	d := s.discountRepo.Get(id)
	if d == nil {
		return
	}

	d.IsActive = active
	s.discountRepo.Save(*d)
	s.logger.Info().Str("discount_id", id).Bool("active", active).Msg("discount toggled")
	s.onChange.fire()
}

// ApplyDiscount validates a code against an order subtotal. The rules
// run in order and short-circuit on the first failure; every failure is
// a structured result, never an error. A successful application burns
// exactly one use.
func (s *discountService) ApplyDiscount(code string, orderSubtotal float64) model.DiscountResult {
	d := s.discountRepo.GetByCode(code)
	if d == nil {
		s.logger.Debug().Str("code", code).Msg("discount code not found")
		return model.DiscountResult{Valid: false, Discount: 0, Message: "Invalid discount code"}
	}

	if !d.IsActive {
		return model.DiscountResult{Valid: false, Discount: 0, Message: "This discount is no longer active"}
	}

	now := time.Now()
	if d.StartDate != nil && now.Before(*d.StartDate) {
		return model.DiscountResult{Valid: false, Discount: 0, Message: "This discount is not active yet"}
	}
	if d.EndDate != nil && now.After(*d.EndDate) {
		return model.DiscountResult{Valid: false, Discount: 0, Message: "This discount has expired"}
	}

	if d.UsageLimit > 0 && d.UsageCount >= d.UsageLimit {
		return model.DiscountResult{Valid: false, Discount: 0, Message: "This discount has reached its usage limit"}
	}

	if d.MinOrderAmount > 0 && orderSubtotal < d.MinOrderAmount {
		return model.DiscountResult{
			Valid:    false,
			Discount: 0,
			Message:  fmt.Sprintf("Minimum order of $%.2f required", d.MinOrderAmount),
		}
	}

	amount := d.Value
	if d.Type == model.DiscountPercentage {
		amount = orderSubtotal * d.Value / 100
		if d.MaxDiscount > 0 && amount > d.MaxDiscount {
			amount = d.MaxDiscount
		}
	}

	d.UsageCount++
	s.discountRepo.Save(*d)

	s.logger.Info().
		Str("code", d.Code).
		Float64("amount", amount).
		Int("usage_count", d.UsageCount).
		Msg("discount applied")
	s.onChange.fire()

	return model.DiscountResult{
		Valid:    true,
		Discount: amount,
		Message:  fmt.Sprintf("Discount applied: -$%.2f", amount),
	}
}
