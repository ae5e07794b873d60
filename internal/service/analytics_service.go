package service

import (
	"sort"
	"time"

	"github.com/rs/zerolog"

	"streetkart/internal/model"
	"streetkart/internal/repository"
)

// DefaultAnalyticsWindow is the trailing window used when the caller
// passes zero.
const DefaultAnalyticsWindow = 30 * 24 * time.Hour

// analyticsService implements AnalyticsService. It only reads.
type analyticsService struct {
	orderRepo    repository.OrderRepository
	itemRepo     repository.ItemRepository
	merchantRepo repository.MerchantRepository
	logger       zerolog.Logger
}

// NewAnalyticsService creates a new analytics service.
func NewAnalyticsService(
	orderRepo repository.OrderRepository,
	itemRepo repository.ItemRepository,
	merchantRepo repository.MerchantRepository,
	logger zerolog.Logger,
) AnalyticsService {
	return &analyticsService{
		orderRepo:    orderRepo,
		itemRepo:     itemRepo,
		merchantRepo: merchantRepo,
		logger:       logger.With().Str("service", "analytics").Logger(),
	}
}

// Dashboard computes statistics over paid orders in the trailing window.
// Top items rank by lifetime sold counters, not the window; the revenue
// figures are windowed.
func (s *analyticsService) Dashboard(window time.Duration, topN int) model.DashboardStats {
	if window <= 0 {
		window = DefaultAnalyticsWindow
	}
	if topN <= 0 {
		topN = 5
	}

	end := time.Now()
	start := end.Add(-window)

	stats := model.DashboardStats{
		WindowStart: start,
		WindowEnd:   end,
	}

	byMerchant := make(map[string]*model.MerchantSales)
	byDay := make(map[string]*model.DailyRevenue)

	for _, order := range s.orderRepo.All() {
		if order.PaymentStatus != model.PaymentPaid {
			continue
		}
		if order.CreatedAt.Before(start) || order.CreatedAt.After(end) {
			continue
		}

		stats.OrderCount++
		stats.GMV += order.Total
		stats.NetSales += order.Subtotal
		stats.Taxes += order.Tax
		stats.DeliveryFees += order.DeliveryFee

		ms, ok := byMerchant[order.MerchantID]
		if !ok {
			name := order.MerchantName
			if name == "" {
				if m := s.merchantRepo.Get(order.MerchantID); m != nil {
					name = m.Name
				}
			}
			ms = &model.MerchantSales{
				MerchantID:   order.MerchantID,
				MerchantName: name,
			}
			byMerchant[order.MerchantID] = ms
		}
		ms.OrderCount++
		ms.Revenue += order.Total

		day := order.CreatedAt.Format("2006-01-02")
		dr, ok := byDay[day]
		if !ok {
			dr = &model.DailyRevenue{Date: day}
			byDay[day] = dr
		}
		dr.OrderCount++
		dr.Revenue += order.Total
	}

	for _, ms := range byMerchant {
		stats.TopMerchants = append(stats.TopMerchants, *ms)
	}
	sort.SliceStable(stats.TopMerchants, func(i, j int) bool {
		return stats.TopMerchants[i].Revenue > stats.TopMerchants[j].Revenue
	})
	if len(stats.TopMerchants) > topN {
		stats.TopMerchants = stats.TopMerchants[:topN]
	}

	items := s.itemRepo.All()
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].UnitsSold > items[j].UnitsSold
	})
	for _, item := range items {
		if len(stats.TopItems) == topN {
			break
		}
		if item.UnitsSold == 0 {
			continue
		}
		stats.TopItems = append(stats.TopItems, model.ItemSales{
			ItemID:    item.ID,
			Name:      item.Name,
			UnitsSold: item.UnitsSold,
			Revenue:   item.Revenue,
		})
	}

	for _, dr := range byDay {
		stats.Daily = append(stats.Daily, *dr)
	}
	sort.SliceStable(stats.Daily, func(i, j int) bool {
		return stats.Daily[i].Date < stats.Daily[j].Date
	})

	s.logger.Debug().
		Int("orders", stats.OrderCount).
		Float64("gmv", stats.GMV).
		Msg("dashboard computed")
	return stats
}
