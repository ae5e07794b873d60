package model

import "time"

// MerchantSales is one row of the merchant revenue leaderboard.
type MerchantSales struct {
	MerchantID   string  `json:"merchantId"`
	MerchantName string  `json:"merchantName"`
	OrderCount   int     `json:"orderCount"`
	Revenue      float64 `json:"revenue"`
}

// ItemSales is one row of the top-selling items list. Counters are
// lifetime values, not windowed.
type ItemSales struct {
	ItemID    string  `json:"itemId"`
	Name      string  `json:"name"`
	UnitsSold int     `json:"unitsSold"`
	Revenue   float64 `json:"revenue"`
}

// DailyRevenue is one calendar-day bucket of the revenue time series.
type DailyRevenue struct {
	Date       string  `json:"date"` // "2006-01-02"
	OrderCount int     `json:"orderCount"`
	Revenue    float64 `json:"revenue"`
}

// DashboardStats is the read-side aggregate over paid orders in a
// trailing window.
type DashboardStats struct {
	WindowStart  time.Time       `json:"windowStart"`
	WindowEnd    time.Time       `json:"windowEnd"`
	OrderCount   int             `json:"orderCount"`
	GMV          float64         `json:"gmv"`      // gross merchandise value: sum of paid order totals
	NetSales     float64         `json:"netSales"` // order subtotals, before tax, fees and tips
	Taxes        float64         `json:"taxes"`
	DeliveryFees float64         `json:"deliveryFees"`
	TopMerchants []MerchantSales `json:"topMerchants"`
	TopItems     []ItemSales     `json:"topItems"`
	Daily        []DailyRevenue  `json:"daily"`
}
