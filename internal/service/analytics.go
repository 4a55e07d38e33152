package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"shopease-api/internal/cache"
	"shopease-api/internal/dto"
	"shopease-api/internal/metrics"
	"shopease-api/internal/model"
	"shopease-api/internal/repository"
	"shopease-api/internal/spreadsheet"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	dailyTrendLimit   = 30
	dashboardCacheTTL = 60 * time.Second
)

type AnalyticsService interface {
	RecordScan(ctx context.Context, req *dto.RecordScanRequest, ip, userAgent string) (*model.QRScan, error)
	Dashboard(ctx context.Context, storeID uint, dr repository.DateRange) (*dto.Dashboard, error)
	ListScans(ctx context.Context, storeID uint, dr repository.DateRange) ([]*model.QRScan, error)
	ListSalesData(ctx context.Context, storeID uint, dr repository.DateRange) ([]*model.SalesDataRow, error)
	CreateSalesData(ctx context.Context, storeID uint, req *dto.SalesDataRequest) (*model.SalesDataRow, error)
	UploadSalesData(ctx context.Context, storeID uint, file io.Reader) (*dto.BatchResult, error)
}

type analyticsServiceImpl struct {
	storeRepo     repository.StoreRepository
	sectionRepo   repository.SectionRepository
	scanRepo      repository.ScanRepository
	salesDataRepo repository.SalesDataRepository
	analyticsRepo repository.AnalyticsRepository
	cache         *cache.Redis
	logger        *slog.Logger
	metrics       *metrics.Metrics
}

func NewAnalyticsService(
	storeRepo repository.StoreRepository,
	sectionRepo repository.SectionRepository,
	scanRepo repository.ScanRepository,
	salesDataRepo repository.SalesDataRepository,
	analyticsRepo repository.AnalyticsRepository,
	dashboardCache *cache.Redis,
	logger *slog.Logger,
	m *metrics.Metrics,
) AnalyticsService {
	return &analyticsServiceImpl{
		storeRepo:     storeRepo,
		sectionRepo:   sectionRepo,
		scanRepo:      scanRepo,
		salesDataRepo: salesDataRepo,
		analyticsRepo: analyticsRepo,
		cache:         dashboardCache,
		logger:        logger.With("component", "analytics"),
		metrics:       m,
	}
}

// RecordScan appends one immutable scan row. Every request is a distinct
// scan: there is no dedup, rate limiting or bot filtering on this path.
func (s *analyticsServiceImpl) RecordScan(ctx context.Context, req *dto.RecordScanRequest, ip, userAgent string) (*model.QRScan, error) {
	if _, err := s.storeRepo.FindByID(ctx, req.StoreID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find store: %w", err)
	}

	target := "store"
	if req.SectionID != nil {
		owned, err := s.sectionRepo.BelongsToStore(ctx, *req.SectionID, req.StoreID)
		if err != nil {
			return nil, fmt.Errorf("check section ownership: %w", err)
		}
		if !owned {
			return nil, ErrSectionMismatch
		}
		target = "section"
	}

	scan := &model.QRScan{
		StoreID:    req.StoreID,
		SectionID:  req.SectionID,
		CustomerID: req.CustomerID,
		IPAddress:  ip,
		UserAgent:  userAgent,
		ScanTime:   time.Now(),
	}
	if err := s.scanRepo.Insert(ctx, scan); err != nil {
		return nil, fmt.Errorf("insert scan: %w", err)
	}

	s.metrics.ScansRecorded.WithLabelValues(target).Inc()
	return scan, nil
}

func (s *analyticsServiceImpl) Dashboard(ctx context.Context, storeID uint, dr repository.DateRange) (*dto.Dashboard, error) {
	cacheKey := fmt.Sprintf("dashboard:%d:%s:%s", storeID, dr.Start, dr.End)

	var cached dto.Dashboard
	if hit, err := s.cache.GetJSON(ctx, cacheKey, &cached); err != nil {
		s.logger.Warn("dashboard cache read failed", "error", err)
	} else if hit {
		return &cached, nil
	}

	scans, err := s.analyticsRepo.ScanSummary(ctx, storeID, dr)
	if err != nil {
		return nil, fmt.Errorf("scan summary: %w", err)
	}

	sections, err := s.analyticsRepo.SectionBreakdown(ctx, storeID, dr)
	if err != nil {
		return nil, fmt.Errorf("section breakdown: %w", err)
	}

	hourly, err := s.analyticsRepo.HourlyDistribution(ctx, storeID, dr)
	if err != nil {
		return nil, fmt.Errorf("hourly distribution: %w", err)
	}

	sales, err := s.analyticsRepo.SalesSummary(ctx, storeID, dr)
	if err != nil {
		return nil, fmt.Errorf("sales summary: %w", err)
	}

	trend, err := s.analyticsRepo.DailyTrend(ctx, storeID, dr, dailyTrendLimit)
	if err != nil {
		return nil, fmt.Errorf("daily trend: %w", err)
	}

	feedback, err := s.analyticsRepo.FeedbackSummary(ctx, storeID, dr)
	if err != nil {
		return nil, fmt.Errorf("feedback summary: %w", err)
	}

	dashboard := &dto.Dashboard{
		Scans: dto.ScanSummary{
			TotalScans:         scans.TotalScans,
			ScanDays:           scans.ScanDays,
			UniqueVisitors:     scans.UniqueVisitors,
			AuthenticatedScans: scans.AuthenticatedScans,
		},
		Sections: make([]dto.SectionScanCount, len(sections)),
		Hourly:   make([]dto.HourlyScanCount, len(hourly)),
		Sales: dto.SalesSummary{
			TotalRevenue:  sales.TotalRevenue,
			TotalOrders:   sales.TotalOrders,
			AvgOrderValue: sales.AvgOrderValue,
		},
		DailyTrend:     make([]dto.DailySalesPoint, len(trend)),
		ConversionRate: ConversionRate(sales.TotalRevenue, scans.TotalScans),
		Feedback: dto.FeedbackSummary{
			Count:         feedback.Count,
			AverageRating: feedback.AverageRating,
			Positive:      feedback.Positive,
			Negative:      feedback.Negative,
		},
	}

	for i, sec := range sections {
		dashboard.Sections[i] = dto.SectionScanCount{
			SectionID:   sec.SectionID,
			SectionName: sec.SectionName,
			ScanCount:   sec.ScanCount,
		}
	}
	for i, h := range hourly {
		dashboard.Hourly[i] = dto.HourlyScanCount{Hour: h.Hour, ScanCount: h.ScanCount}
	}
	for i, row := range trend {
		dashboard.DailyTrend[i] = dto.DailySalesPoint{
			Date:          row.Date.Format(dateLayout),
			TotalSales:    row.TotalSales,
			TotalOrders:   row.TotalOrders,
			AvgOrderValue: row.AvgOrderValue,
		}
	}

	if err := s.cache.SetJSON(ctx, cacheKey, dashboard, dashboardCacheTTL); err != nil {
		s.logger.Warn("dashboard cache write failed", "error", err)
	}

	return dashboard, nil
}

func (s *analyticsServiceImpl) ListScans(ctx context.Context, storeID uint, dr repository.DateRange) ([]*model.QRScan, error) {
	return s.scanRepo.List(ctx, storeID, dr)
}

func (s *analyticsServiceImpl) ListSalesData(ctx context.Context, storeID uint, dr repository.DateRange) ([]*model.SalesDataRow, error) {
	return s.salesDataRepo.List(ctx, storeID, dr)
}

func (s *analyticsServiceImpl) CreateSalesData(ctx context.Context, storeID uint, req *dto.SalesDataRequest) (*model.SalesDataRow, error) {
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date: %w", err)
	}

	exists, err := s.salesDataRepo.ExistsForDate(ctx, storeID, req.Date)
	if err != nil {
		return nil, fmt.Errorf("check existing row: %w", err)
	}
	if exists {
		return nil, ErrDuplicateDate
	}

	row := &model.SalesDataRow{
		StoreID:       storeID,
		Date:          date,
		TotalSales:    req.TotalSales,
		TotalOrders:   req.TotalOrders,
		AvgOrderValue: req.AvgOrderValue,
	}
	if err := s.salesDataRepo.Create(ctx, row); err != nil {
		return nil, fmt.Errorf("create sales row: %w", err)
	}

	return row, nil
}

// UploadSalesData imports per-day sales rows from an xlsx workbook. Columns:
// Date, Total Sales, Total Orders (optional), Avg Order Value (optional).
// Rows commit independently: a rejected row is reported in the errors list
// and never blocks or rolls back the rest of the batch.
func (s *analyticsServiceImpl) UploadSalesData(ctx context.Context, storeID uint, file io.Reader) (*dto.BatchResult, error) {
	rows, err := spreadsheet.Rows(file)
	if err != nil {
		return nil, fmt.Errorf("parse spreadsheet: %w", err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("spreadsheet has no data rows")
	}

	result := &dto.BatchResult{Errors: []string{}}
	for i, row := range rows[1:] {
		rowNum := i + 2

		salesRow, err := s.salesRowFromCells(ctx, storeID, row)
		if err != nil {
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", rowNum, err))
			s.metrics.ImportRows.WithLabelValues("sales", "failed").Inc()
			continue
		}

		if err := s.salesDataRepo.Create(ctx, salesRow); err != nil {
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: insert failed: %v", rowNum, err))
			s.metrics.ImportRows.WithLabelValues("sales", "failed").Inc()
			continue
		}

		result.Imported++
		s.metrics.ImportRows.WithLabelValues("sales", "ok").Inc()
	}

	return result, nil
}

func (s *analyticsServiceImpl) salesRowFromCells(ctx context.Context, storeID uint, row []string) (*model.SalesDataRow, error) {
	cell := func(i int) string {
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}

	date, err := parseFlexibleDate(cell(0))
	if err != nil {
		return nil, fmt.Errorf("invalid date %q", cell(0))
	}

	totalSales, err := decimal.NewFromString(cell(1))
	if err != nil || totalSales.IsNegative() {
		return nil, fmt.Errorf("total sales must be a non-negative number")
	}

	exists, err := s.salesDataRepo.ExistsForDate(ctx, storeID, date.Format(dateLayout))
	if err != nil {
		return nil, fmt.Errorf("check existing row: %v", err)
	}
	if exists {
		return nil, fmt.Errorf("sales data already exists for %s", date.Format(dateLayout))
	}

	totalOrders := 0
	if v := cell(2); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("total orders must be a non-negative integer")
		}
		totalOrders = n
	}

	avgOrderValue := decimal.Zero
	if v := cell(3); v != "" {
		avgOrderValue, err = decimal.NewFromString(v)
		if err != nil {
			return nil, fmt.Errorf("avg order value must be a number")
		}
	} else if totalOrders > 0 {
		avgOrderValue = totalSales.Div(decimal.NewFromInt(int64(totalOrders))).Round(2)
	}

	return &model.SalesDataRow{
		StoreID:       storeID,
		Date:          date,
		TotalSales:    totalSales,
		TotalOrders:   totalOrders,
		AvgOrderValue: avgOrderValue,
	}, nil
}

// ConversionRate is revenue divided by scan count, expressed as a percentage
// and rounded to two decimals. It is a revenue-per-scan figure, not a true
// scan-to-purchase ratio; downstream dashboards depend on this exact
// arithmetic. Zero scans yields zero.
func ConversionRate(totalRevenue decimal.Decimal, totalScans int64) float64 {
	if totalScans == 0 {
		return 0
	}
	rate, _ := totalRevenue.
		Div(decimal.NewFromInt(totalScans)).
		Mul(decimal.NewFromInt(100)).
		Round(2).
		Float64()
	return rate
}
