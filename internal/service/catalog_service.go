package service

import (
	"sort"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"streetkart/internal/model"
	"streetkart/internal/repository"
)

// catalogService implements CatalogService.
type catalogService struct {
	merchantRepo repository.MerchantRepository
	itemRepo     repository.ItemRepository
	collator     *collate.Collator
	onChange     ChangeHook
	logger       zerolog.Logger
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(
	merchantRepo repository.MerchantRepository,
	itemRepo repository.ItemRepository,
	onChange ChangeHook,
	logger zerolog.Logger,
) CatalogService {
	return &catalogService{
		merchantRepo: merchantRepo,
		itemRepo:     itemRepo,
		collator:     collate.New(language.English, collate.IgnoreCase),
		onChange:     onChange,
		logger:       logger.With().Str("service", "catalog").Logger(),
	}
}

// AddMerchant inserts a merchant into the catalogue.
func (s *catalogService) AddMerchant(m model.Merchant) {
	s.merchantRepo.Save(m)
	s.logger.Info().Str("merchant_id", m.ID).Str("name", m.Name).Msg("merchant added")
	s.onChange.fire()
}

// UpdateMerchant applies a partial patch to a merchant. Unknown IDs are
// a no-op.
func (s *catalogService) UpdateMerchant(id string, patch model.MerchantPatch) {
	m := s.merchantRepo.Get(id)
	if m == nil {
		s.logger.Debug().Str("merchant_id", id).Msg("update skipped, merchant not found")
		return
	}

	applyMerchantPatch(m, patch)
	s.merchantRepo.Save(*m)
	s.logger.Info().Str("merchant_id", id).Msg("merchant updated")
	s.onChange.fire()
}

// DeleteMerchant removes a merchant and every item it owns.
func (s *catalogService) DeleteMerchant(id string) {
	if s.merchantRepo.Get(id) == nil {
		s.logger.Debug().Str("merchant_id", id).Msg("delete skipped, merchant not found")
		return
	}

	s.itemRepo.DeleteByMerchant(id)
	s.merchantRepo.Delete(id)
	s.logger.Info().Str("merchant_id", id).Msg("merchant deleted with items")
	s.onChange.fire()
}

// GetMerchant retrieves a merchant by ID. Returns nil when absent.
func (s *catalogService) GetMerchant(id string) *model.Merchant {
	return s.merchantRepo.Get(id)
}

// QueryMerchants returns active merchants matching the filter, sorted
// by name. Inactive merchants never appear in results.
func (s *catalogService) QueryMerchants(filter model.MerchantFilter) []model.Merchant {
	var out []model.Merchant
	for _, m := range s.merchantRepo.All() {
		if !m.IsActive {
			continue
		}
		if filter.Category != "" && m.Category != filter.Category {
			continue
		}
		if filter.OpenOnly && !m.IsOpen {
			continue
		}
		if filter.MinRating > 0 && m.Rating < filter.MinRating {
			continue
		}
		if filter.Delivery && !m.SupportsDelivery {
			continue
		}
		if filter.Search != "" && !matchesSearch(filter.Search, m.Name, m.Description) {
			continue
		}
		out = append(out, m)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return s.collator.CompareString(out[i].Name, out[j].Name) < 0
	})

	s.logger.Debug().Int("count", len(out)).Msg("merchants queried")
	return out
}

// AddItem inserts an item into the catalogue.
func (s *catalogService) AddItem(item model.MerchantItem) {
	s.itemRepo.Save(item)
	s.logger.Info().
		Str("item_id", item.ID).
		Str("merchant_id", item.MerchantID).
		Msg("item added")
	s.onChange.fire()
}

// UpdateItem applies a partial patch to an item. Unknown IDs are a no-op.
func (s *catalogService) UpdateItem(id string, patch model.ItemPatch) {
	item := s.itemRepo.Get(id)
	if item == nil {
		s.logger.Debug().Str("item_id", id).Msg("update skipped, item not found")
		return
	}

	applyItemPatch(item, patch)
	s.itemRepo.Save(*item)
	s.logger.Info().Str("item_id", id).Msg("item updated")
	s.onChange.fire()
}

// DeleteItem removes an item. Unknown IDs are a no-op.
func (s *catalogService) DeleteItem(id string) {
	if s.itemRepo.Get(id) == nil {
		s.logger.Debug().Str("item_id", id).Msg("delete skipped, item not found")
		return
	}

	s.itemRepo.Delete(id)
	s.logger.Info().Str("item_id", id).Msg("item deleted")
	s.onChange.fire()
}

// GetItem retrieves an item by ID. Returns nil when absent.
func (s *catalogService) GetItem(id string) *model.MerchantItem {
	return s.itemRepo.Get(id)
}

// QueryItems returns items matching the filter, ordered by the filter's
// sort key. Name sorting is locale-aware.
func (s *catalogService) QueryItems(filter model.ItemFilter) []model.MerchantItem {
	var out []model.MerchantItem
	for _, item := range s.itemRepo.All() {
		if filter.MerchantID != "" && item.MerchantID != filter.MerchantID {
			continue
		}
		if filter.Category != "" && item.Category != filter.Category {
			continue
		}
		if filter.AvailableOnly && !item.IsAvailable {
			continue
		}
		if filter.FeaturedOnly && !item.IsFeatured {
			continue
		}
		if filter.Search != "" && !matchesSearch(filter.Search, item.Name, item.Description) {
			continue
		}
		out = append(out, item)
	}

	s.sortItems(out, filter.SortBy, filter.Descending)

	s.logger.Debug().
		Int("count", len(out)).
		Str("sort_by", string(filter.SortBy)).
		Msg("items queried")
	return out
}

// BulkUpdateItems applies one patch to every listed item. The set is
// treated as a single unit; unknown IDs are skipped.
func (s *catalogService) BulkUpdateItems(ids []string, patch model.ItemPatch) {
	updated := 0
	for _, id := range ids {
		item := s.itemRepo.Get(id)
		if item == nil {
			continue
		}
		applyItemPatch(item, patch)
		s.itemRepo.Save(*item)
		updated++
	}

	s.logger.Info().
		Int("requested", len(ids)).
		Int("updated", updated).
		Msg("bulk item update applied")
	s.onChange.fire()
}

// BulkDeleteItems removes every listed item as a single unit.
func (s *catalogService) BulkDeleteItems(ids []string) {
	for _, id := range ids {
		s.itemRepo.Delete(id)
	}

	s.logger.Info().Int("count", len(ids)).Msg("bulk item delete applied")
	s.onChange.fire()
}

// sortItems orders items in place by the given key.
func (s *catalogService) sortItems(items []model.MerchantItem, key model.ItemSortKey, desc bool) {
	less := func(i, j int) bool { return items[i].SortOrder < items[j].SortOrder }

	switch key {
	case model.ItemSortName:
		less = func(i, j int) bool {
			return s.collator.CompareString(items[i].Name, items[j].Name) < 0
		}
	case model.ItemSortPrice:
		less = func(i, j int) bool { return items[i].Price < items[j].Price }
	case model.ItemSortUnitsSold:
		less = func(i, j int) bool { return items[i].UnitsSold < items[j].UnitsSold }
	}

	if desc {
		orig := less
		less = func(i, j int) bool { return orig(j, i) }
	}

	sort.SliceStable(items, less)
}

// matchesSearch reports whether the query is a case-insensitive
// substring of name or description.
func matchesSearch(query string, name, description string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(name), q) ||
		strings.Contains(strings.ToLower(description), q)
}

func applyMerchantPatch(m *model.Merchant, p model.MerchantPatch) {
	if p.Name != nil {
		m.Name = *p.Name
	}
	if p.Description != nil {
		m.Description = *p.Description
	}
	if p.Category != nil {
		m.Category = *p.Category
	}
	if p.OpeningTime != nil {
		m.OpeningTime = *p.OpeningTime
	}
	if p.ClosingTime != nil {
		m.ClosingTime = *p.ClosingTime
	}
	if p.Rating != nil {
		m.Rating = *p.Rating
	}
	if p.ReviewCount != nil {
		m.ReviewCount = *p.ReviewCount
	}
	if p.DeliveryFee != nil {
		m.DeliveryFee = *p.DeliveryFee
	}
	if p.MinOrderAmount != nil {
		m.MinOrderAmount = *p.MinOrderAmount
	}
	if p.DeliveryMinutes != nil {
		m.DeliveryMinutes = *p.DeliveryMinutes
	}
	if p.SupportsDelivery != nil {
		m.SupportsDelivery = *p.SupportsDelivery
	}
	if p.SupportsPickup != nil {
		m.SupportsPickup = *p.SupportsPickup
	}
	if p.IsActive != nil {
		m.IsActive = *p.IsActive
	}
	if p.IsOpen != nil {
		m.IsOpen = *p.IsOpen
	}
}

func applyItemPatch(item *model.MerchantItem, p model.ItemPatch) {
	if p.Name != nil {
		item.Name = *p.Name
	}
	if p.Description != nil {
		item.Description = *p.Description
	}
	if p.Price != nil {
		item.Price = *p.Price
	}
	if p.Category != nil {
		item.Category = *p.Category
	}
	if p.IsAvailable != nil {
		item.IsAvailable = *p.IsAvailable
	}
	if p.IsFeatured != nil {
		item.IsFeatured = *p.IsFeatured
	}
	if p.SortOrder != nil {
		item.SortOrder = *p.SortOrder
	}
	if p.Options != nil {
		item.Options = *p.Options
	}
}
