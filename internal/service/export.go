package service

import (
	"bytes"
	"context"
	"fmt"
	"shopease-api/internal/repository"
	"shopease-api/internal/spreadsheet"
	"time"
)

// ExportRow is one flat record keyed by human-readable column headers. The
// JSON export returns these as-is; CSV encoding stays on the client.
type ExportRow map[string]interface{}

type ExportService interface {
	Export(ctx context.Context, storeID uint, exportType string, dr repository.DateRange) ([]ExportRow, error)
	SalesWorkbook(ctx context.Context, storeID uint, dr repository.DateRange) (*bytes.Buffer, string, error)
}

type exportServiceImpl struct {
	scanRepo      repository.ScanRepository
	sectionRepo   repository.SectionRepository
	salesDataRepo repository.SalesDataRepository
}

func NewExportService(
	scanRepo repository.ScanRepository,
	sectionRepo repository.SectionRepository,
	salesDataRepo repository.SalesDataRepository,
) ExportService {
	return &exportServiceImpl{
		scanRepo:      scanRepo,
		sectionRepo:   sectionRepo,
		salesDataRepo: salesDataRepo,
	}
}

// Export re-runs the underlying select for the requested type and reshapes
// rows into header-keyed objects.
func (s *exportServiceImpl) Export(ctx context.Context, storeID uint, exportType string, dr repository.DateRange) ([]ExportRow, error) {
	switch exportType {
	case "qr_scans":
		return s.exportScans(ctx, storeID, dr)
	case "sales":
		return s.exportSales(ctx, storeID, dr)
	default:
		return nil, fmt.Errorf("unknown export type %q", exportType)
	}
}

func (s *exportServiceImpl) exportScans(ctx context.Context, storeID uint, dr repository.DateRange) ([]ExportRow, error) {
	scans, err := s.scanRepo.List(ctx, storeID, dr)
	if err != nil {
		return nil, fmt.Errorf("list scans: %w", err)
	}

	sections, err := s.sectionRepo.ListByStore(ctx, storeID)
	if err != nil {
		return nil, fmt.Errorf("list sections: %w", err)
	}
	sectionName := make(map[uint]string, len(sections))
	for _, sec := range sections {
		sectionName[sec.ID] = sec.Name
	}

	rows := make([]ExportRow, len(scans))
	for i, scan := range scans {
		section := "Main Store"
		if scan.SectionID != nil {
			if name, ok := sectionName[*scan.SectionID]; ok {
				section = name
			}
		}

		customer := "Anonymous"
		if scan.CustomerID != nil {
			customer = fmt.Sprintf("Customer #%d", *scan.CustomerID)
		}

		rows[i] = ExportRow{
			"Scan Time":  scan.ScanTime.Format(time.RFC3339),
			"Section":    section,
			"Customer":   customer,
			"IP Address": scan.IPAddress,
			"User Agent": scan.UserAgent,
		}
	}

	return rows, nil
}

func (s *exportServiceImpl) exportSales(ctx context.Context, storeID uint, dr repository.DateRange) ([]ExportRow, error) {
	data, err := s.salesDataRepo.List(ctx, storeID, dr)
	if err != nil {
		return nil, fmt.Errorf("list sales data: %w", err)
	}

	rows := make([]ExportRow, len(data))
	for i, row := range data {
		rows[i] = ExportRow{
			"Date":            row.Date.Format(dateLayout),
			"Total Sales":     row.TotalSales,
			"Total Orders":    row.TotalOrders,
			"Avg Order Value": row.AvgOrderValue,
		}
	}

	return rows, nil
}

// SalesWorkbook builds a server-generated XLSX attachment. This is a
// deliberately separate implementation from the JSON export above.
func (s *exportServiceImpl) SalesWorkbook(ctx context.Context, storeID uint, dr repository.DateRange) (*bytes.Buffer, string, error) {
	data, err := s.salesDataRepo.List(ctx, storeID, dr)
	if err != nil {
		return nil, "", fmt.Errorf("list sales data: %w", err)
	}

	headers := []string{"Date", "Total Sales", "Total Orders", "Avg Order Value"}
	rows := make([][]interface{}, len(data))
	for i, row := range data {
		rows[i] = []interface{}{
			row.Date.Format(dateLayout),
			row.TotalSales.InexactFloat64(),
			row.TotalOrders,
			row.AvgOrderValue.InexactFloat64(),
		}
	}

	buf, err := spreadsheet.Write("Sales", headers, rows)
	if err != nil {
		return nil, "", fmt.Errorf("build workbook: %w", err)
	}

	filename := fmt.Sprintf("sales-export-%s.xlsx", time.Now().Format(dateLayout))
	return buf, filename, nil
}
