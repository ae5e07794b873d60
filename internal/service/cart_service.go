package service

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"streetkart/internal/model"
	"streetkart/internal/repository"
)

// cartService implements CartService.
type cartService struct {
	cartRepo repository.CartRepository
	itemRepo repository.ItemRepository
	onChange ChangeHook
	logger   zerolog.Logger
}

// NewCartService creates a new cart service.
func NewCartService(
	cartRepo repository.CartRepository,
	itemRepo repository.ItemRepository,
	onChange ChangeHook,
	logger zerolog.Logger,
) CartService {
	return &cartService{
		cartRepo: cartRepo,
		itemRepo: itemRepo,
		onChange: onChange,
		logger:   logger.With().Str("service", "cart").Logger(),
	}
}

// AddToCart adds an item line to the cart. The cart is created lazily
// on the first add and stays pinned to that item's merchant; adding from
// a different merchant fails without touching the existing cart.
func (s *cartService) AddToCart(itemID string, quantity int, picks []model.OptionPick, notes string) model.CartResult {
	item := s.itemRepo.Get(itemID)
	if item == nil {
		s.logger.Warn().Str("item_id", itemID).Msg("add to cart rejected, item not found")
		return model.CartResult{Success: false, Message: "Item not found"}
	}

	if quantity <= 0 {
		quantity = 1
	}

	cart := s.cartRepo.Get()
	if cart != nil && cart.MerchantID != item.MerchantID {
		s.logger.Warn().
			Str("cart_merchant", cart.MerchantID).
			Str("item_merchant", item.MerchantID).
			Msg("add to cart rejected, cart pinned to another merchant")
		return model.CartResult{
			Success: false,
			Message: "Your cart contains items from another merchant",
		}
	}

	if cart == nil {
		cart = &model.Cart{MerchantID: item.MerchantID}
	}

	selected := resolveOptions(item, picks)
	line := model.CartItem{
		ID:              uuid.New(),
		ItemID:          item.ID,
		Name:            item.Name,
		BasePrice:       item.Price,
		SelectedOptions: selected,
		Quantity:        quantity,
		Notes:           notes,
	}
	line.LineTotal = lineTotal(line)
	cart.Items = append(cart.Items, line)
	cart.Subtotal = cartSubtotal(cart)

	s.cartRepo.Put(*cart)
	s.logger.Info().
		Str("item_id", item.ID).
		Int("quantity", quantity).
		Float64("line_total", line.LineTotal).
		Msg("item added to cart")
	s.onChange.fire()

	return model.CartResult{Success: true, Cart: s.cartRepo.Get()}
}

// UpdateCartItem applies a partial patch to a cart line. A resulting
// quantity of zero or less removes the line. Unknown lines are a no-op.
func (s *cartService) UpdateCartItem(lineID uuid.UUID, patch model.CartItemPatch) {
	cart := s.cartRepo.Get()
	if cart == nil {
		return
	}

	idx := -1
	for i := range cart.Items {
		if cart.Items[i].ID == lineID {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.logger.Debug().Str("line_id", lineID.String()).Msg("update skipped, cart line not found")
		return
	}

	line := &cart.Items[idx]
	if patch.Quantity != nil {
		if *patch.Quantity <= 0 {
			s.dropLine(cart, idx)
			return
		}
		line.Quantity = *patch.Quantity
	}
	if patch.Notes != nil {
		line.Notes = *patch.Notes
	}
	if patch.SelectedOptions != nil {
		// Re-resolve against the current catalogue entry; the snapshotted
		// base price is kept.
		if item := s.itemRepo.Get(line.ItemID); item != nil {
			line.SelectedOptions = resolveOptions(item, *patch.SelectedOptions)
		}
	}

	line.LineTotal = lineTotal(*line)
	cart.Subtotal = cartSubtotal(cart)
	s.cartRepo.Put(*cart)
	s.logger.Info().Str("line_id", lineID.String()).Msg("cart line updated")
	s.onChange.fire()
}

// RemoveFromCart drops a cart line; removing the last line discards the
// whole cart. Unknown lines are a no-op.
func (s *cartService) RemoveFromCart(lineID uuid.UUID) {
	cart := s.cartRepo.Get()
	if cart == nil {
		return
	}

	for i := range cart.Items {
		if cart.Items[i].ID == lineID {
			s.dropLine(cart, i)
			return
		}
	}

	s.logger.Debug().Str("line_id", lineID.String()).Msg("remove skipped, cart line not found")
}

// GetCart returns the active cart, or nil when no cart exists.
func (s *cartService) GetCart() *model.Cart {
	return s.cartRepo.Get()
}

// GetCartTotal returns the cart subtotal and summed quantities.
func (s *cartService) GetCartTotal() model.CartTotal {
	cart := s.cartRepo.Get()
	if cart == nil {
		return model.CartTotal{}
	}

	count := 0
	for _, line := range cart.Items {
		count += line.Quantity
	}
	return model.CartTotal{Subtotal: cart.Subtotal, ItemCount: count}
}

// ClearCart discards the active cart.
func (s *cartService) ClearCart() {
	s.cartRepo.Clear()
	s.logger.Info().Msg("cart cleared")
	s.onChange.fire()
}

// dropLine removes one line and discards the cart when it was the last
// one. There is no empty-cart state.
func (s *cartService) dropLine(cart *model.Cart, idx int) {
	cart.Items = append(cart.Items[:idx], cart.Items[idx+1:]...)
	if len(cart.Items) == 0 {
		s.cartRepo.Clear()
		s.logger.Info().Msg("last line removed, cart discarded")
	} else {
		cart.Subtotal = cartSubtotal(cart)
		s.cartRepo.Put(*cart)
		s.logger.Info().Int("lines", len(cart.Items)).Msg("cart line removed")
	}
	s.onChange.fire()
}

// lineTotal computes (basePrice + option deltas) × quantity.
func lineTotal(line model.CartItem) float64 {
	unit := line.BasePrice
	for _, opt := range line.SelectedOptions {
		unit += opt.PriceDelta
	}
	return unit * float64(line.Quantity)
}

// cartSubtotal sums line totals.
func cartSubtotal(cart *model.Cart) float64 {
	total := 0.0
	for _, line := range cart.Items {
		total += line.LineTotal
	}
	return total
}

// resolveOptions turns caller picks into selections captured by value.
// Picks are applied in order: a single group keeps only the latest pick,
// a capped multiple group evicts its oldest selection when full. Unknown
// or unavailable choices are skipped.
func resolveOptions(item *model.MerchantItem, picks []model.OptionPick) []model.SelectedOption {
	if len(picks) == 0 {
		return nil
	}

	perGroup := make(map[string][]model.SelectedOption)
	var groupOrder []string

	for _, pick := range picks {
		group, choice := findChoice(item, pick)
		if group == nil || choice == nil || !choice.IsAvailable {
			continue
		}

		sel := model.SelectedOption{
			GroupID:    group.ID,
			GroupName:  group.Name,
			ChoiceID:   choice.ID,
			ChoiceName: choice.Name,
			PriceDelta: choice.PriceDelta,
		}

		current, seen := perGroup[group.ID]
		if !seen {
			groupOrder = append(groupOrder, group.ID)
		}

		if group.SelectionType == model.SelectionSingle {
			perGroup[group.ID] = []model.SelectedOption{sel}
			continue
		}

		current = append(current, sel)
		if group.MaxSelect > 0 && len(current) > group.MaxSelect {
			current = current[len(current)-group.MaxSelect:]
		}
		perGroup[group.ID] = current
	}

	var out []model.SelectedOption
	for _, groupID := range groupOrder {
		out = append(out, perGroup[groupID]...)
	}
	return out
}

// findChoice locates a pick's group and choice on the item.
func findChoice(item *model.MerchantItem, pick model.OptionPick) (*model.OptionGroup, *model.Choice) {
	for gi := range item.Options {
		group := &item.Options[gi]
		if group.ID != pick.GroupID {
			continue
		}
		for ci := range group.Choices {
			if group.Choices[ci].ID == pick.ChoiceID {
				return group, &group.Choices[ci]
			}
		}
		return group, nil
	}
	return nil, nil
}
