package repository

import (
	"context"
	"fmt"
	"shopease-api/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ScanSummaryRow is the one-row scan aggregate for a store and date range.
type ScanSummaryRow struct {
	TotalScans         int64
	ScanDays           int64
	UniqueVisitors     int64
	AuthenticatedScans int64
}

type SectionCountRow struct {
	SectionID   uint
	SectionName string
	ScanCount   int64
}

type HourlyCountRow struct {
	Hour      int
	ScanCount int64
}

type SalesSummaryRow struct {
	TotalRevenue  decimal.Decimal
	TotalOrders   int64
	AvgOrderValue decimal.Decimal
}

type FeedbackSummaryRow struct {
	Count         int64
	AverageRating float64
	Positive      int64
	Negative      int64
}

// AnalyticsRepository holds the dashboard aggregation queries. Date ranges
// are inclusive and compared on the DATE() of the underlying column.
type AnalyticsRepository interface {
	ScanSummary(ctx context.Context, storeID uint, dr DateRange) (*ScanSummaryRow, error)
	SectionBreakdown(ctx context.Context, storeID uint, dr DateRange) ([]*SectionCountRow, error)
	HourlyDistribution(ctx context.Context, storeID uint, dr DateRange) ([]*HourlyCountRow, error)
	SalesSummary(ctx context.Context, storeID uint, dr DateRange) (*SalesSummaryRow, error)
	DailyTrend(ctx context.Context, storeID uint, dr DateRange, limit int) ([]*model.SalesDataRow, error)
	FeedbackSummary(ctx context.Context, storeID uint, dr DateRange) (*FeedbackSummaryRow, error)
}

type analyticsRepoImpl struct {
	db *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) AnalyticsRepository {
	return &analyticsRepoImpl{
		db: db,
	}
}

func applyDateFilter(q *gorm.DB, column string, dr DateRange) *gorm.DB {
	if dr.Start != "" {
		q = q.Where(fmt.Sprintf("DATE(%s) >= ?", column), dr.Start)
	}
	if dr.End != "" {
		q = q.Where(fmt.Sprintf("DATE(%s) <= ?", column), dr.End)
	}
	return q
}

func (r *analyticsRepoImpl) ScanSummary(ctx context.Context, storeID uint, dr DateRange) (*ScanSummaryRow, error) {
	var row ScanSummaryRow
	q := r.db.WithContext(ctx).
		Model(&model.QRScan{}).
		Select(`COUNT(*) AS total_scans,
			COUNT(DISTINCT DATE(scan_time)) AS scan_days,
			COUNT(DISTINCT ip_address) AS unique_visitors,
			COUNT(DISTINCT customer_id) AS authenticated_scans`).
		Where("store_id = ?", storeID)
	q = applyDateFilter(q, "scan_time", dr)

	if err := q.Scan(&row).Error; err != nil {
		return nil, err
	}

	return &row, nil
}

// SectionBreakdown keeps zero-scan sections in the result: the date filter
// lives in the join condition so the LEFT JOIN is not collapsed into an
// inner join.
func (r *analyticsRepoImpl) SectionBreakdown(ctx context.Context, storeID uint, dr DateRange) ([]*SectionCountRow, error) {
	join := "LEFT JOIN qr_scans ON qr_scans.section_id = store_sections.id"
	args := []interface{}{}
	if dr.Start != "" {
		join += " AND DATE(qr_scans.scan_time) >= ?"
		args = append(args, dr.Start)
	}
	if dr.End != "" {
		join += " AND DATE(qr_scans.scan_time) <= ?"
		args = append(args, dr.End)
	}

	var rows []*SectionCountRow
	err := r.db.WithContext(ctx).
		Table("store_sections").
		Select(`store_sections.id AS section_id,
			store_sections.name AS section_name,
			COUNT(qr_scans.id) AS scan_count`).
		Joins(join, args...).
		Where("store_sections.store_id = ?", storeID).
		Group("store_sections.id, store_sections.name").
		Order("scan_count DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return rows, nil
}

// HourlyDistribution omits hours with no scans; the consumer zero-fills.
func (r *analyticsRepoImpl) HourlyDistribution(ctx context.Context, storeID uint, dr DateRange) ([]*HourlyCountRow, error) {
	hourExpr := "HOUR(scan_time)"
	if r.db.Dialector.Name() == "sqlite" {
		hourExpr = "CAST(strftime('%H', scan_time) AS INTEGER)"
	}

	q := r.db.WithContext(ctx).
		Model(&model.QRScan{}).
		Select(hourExpr+" AS hour, COUNT(*) AS scan_count").
		Where("store_id = ?", storeID)
	q = applyDateFilter(q, "scan_time", dr)

	var rows []*HourlyCountRow
	err := q.Group(hourExpr).
		Order("hour ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return rows, nil
}

func (r *analyticsRepoImpl) SalesSummary(ctx context.Context, storeID uint, dr DateRange) (*SalesSummaryRow, error) {
	var row SalesSummaryRow
	q := r.db.WithContext(ctx).
		Model(&model.SalesDataRow{}).
		Select(`COALESCE(SUM(total_sales), 0) AS total_revenue,
			COALESCE(SUM(total_orders), 0) AS total_orders,
			COALESCE(AVG(avg_order_value), 0) AS avg_order_value`).
		Where("store_id = ?", storeID)
	q = applyDateFilter(q, "date", dr)

	if err := q.Scan(&row).Error; err != nil {
		return nil, err
	}

	return &row, nil
}

func (r *analyticsRepoImpl) DailyTrend(ctx context.Context, storeID uint, dr DateRange, limit int) ([]*model.SalesDataRow, error) {
	q := r.db.WithContext(ctx).
		Where("store_id = ?", storeID)
	q = applyDateFilter(q, "date", dr)

	var rows []*model.SalesDataRow
	err := q.Order("date DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	return rows, nil
}

func (r *analyticsRepoImpl) FeedbackSummary(ctx context.Context, storeID uint, dr DateRange) (*FeedbackSummaryRow, error) {
	var row FeedbackSummaryRow
	q := r.db.WithContext(ctx).
		Model(&model.Feedback{}).
		Select(`COUNT(*) AS count,
			COALESCE(AVG(overall_rating), 0) AS average_rating,
			COALESCE(SUM(CASE WHEN overall_rating >= 4 THEN 1 ELSE 0 END), 0) AS positive,
			COALESCE(SUM(CASE WHEN overall_rating <= 2 THEN 1 ELSE 0 END), 0) AS negative`).
		Where("store_id = ?", storeID)
	q = applyDateFilter(q, "created_at", dr)

	if err := q.Scan(&row).Error; err != nil {
		return nil, err
	}

	return &row, nil
}
