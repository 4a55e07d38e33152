package dto

import "github.com/shopspring/decimal"

type RecordScanRequest struct {
	StoreID    uint  `json:"store_id" validate:"required"`
	SectionID  *uint `json:"section_id"`
	CustomerID *uint `json:"customer_id"`
}

type ScanSummary struct {
	TotalScans         int64 `json:"total_scans"`
	ScanDays           int64 `json:"scan_days"`
	UniqueVisitors     int64 `json:"unique_visitors"`
	AuthenticatedScans int64 `json:"authenticated_scans"`
}

type SectionScanCount struct {
	SectionID   uint   `json:"section_id"`
	SectionName string `json:"section_name"`
	ScanCount   int64  `json:"scan_count"`
}

// HourlyScanCount covers only hours that saw at least one scan; the consumer
// zero-fills the remaining hours for display.
type HourlyScanCount struct {
	Hour      int   `json:"hour"`
	ScanCount int64 `json:"scan_count"`
}

type SalesSummary struct {
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	TotalOrders   int64           `json:"total_orders"`
	AvgOrderValue decimal.Decimal `json:"avg_order_value"`
}

type DailySalesPoint struct {
	Date          string          `json:"date"`
	TotalSales    decimal.Decimal `json:"total_sales"`
	TotalOrders   int             `json:"total_orders"`
	AvgOrderValue decimal.Decimal `json:"avg_order_value"`
}

type FeedbackSummary struct {
	Count         int64   `json:"count"`
	AverageRating float64 `json:"average_rating"`
	Positive      int64   `json:"positive"`
	Negative      int64   `json:"negative"`
}

type Dashboard struct {
	Scans    ScanSummary        `json:"scans"`
	Sections []SectionScanCount `json:"sections"`
	Hourly   []HourlyScanCount  `json:"hourly"`
	Sales    SalesSummary       `json:"sales"`
	// most recent 30 days, newest first
	DailyTrend []DailySalesPoint `json:"daily_trend"`
	// revenue divided by scan count, as a percentage; not a true
	// scan-to-purchase ratio
	ConversionRate float64         `json:"conversion_rate"`
	Feedback       FeedbackSummary `json:"feedback"`
}

type SalesDataRequest struct {
	Date          string          `json:"date" validate:"required,datetime=2006-01-02"`
	TotalSales    decimal.Decimal `json:"total_sales" validate:"required"`
	TotalOrders   int             `json:"total_orders"`
	AvgOrderValue decimal.Decimal `json:"avg_order_value"`
}
