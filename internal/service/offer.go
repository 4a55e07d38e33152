package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"shopease-api/internal/dto"
	"shopease-api/internal/metrics"
	"shopease-api/internal/model"
	"shopease-api/internal/repository"
	"shopease-api/internal/spreadsheet"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

type OfferService interface {
	Create(ctx context.Context, storeID uint, req *dto.OfferRequest) (*model.Offer, error)
	Get(ctx context.Context, storeID, offerID uint) (*model.Offer, error)
	List(ctx context.Context, storeID uint, status model.OfferStatus) ([]*model.Offer, error)
	ListPublic(ctx context.Context, storeID uint, sectionID *uint) ([]*model.Offer, error)
	Update(ctx context.Context, storeID, offerID uint, req *dto.OfferRequest) (*model.Offer, error)
	Toggle(ctx context.Context, storeID, offerID uint) (*model.Offer, error)
	Delete(ctx context.Context, storeID, offerID uint) error
	BulkImport(ctx context.Context, storeID uint, file io.Reader) (*dto.BatchResult, error)
}

type offerServiceImpl struct {
	offerRepo   repository.OfferRepository
	sectionRepo repository.SectionRepository
	metrics     *metrics.Metrics
}

func NewOfferService(
	offerRepo repository.OfferRepository,
	sectionRepo repository.SectionRepository,
	m *metrics.Metrics,
) OfferService {
	return &offerServiceImpl{
		offerRepo:   offerRepo,
		sectionRepo: sectionRepo,
		metrics:     m,
	}
}

func (s *offerServiceImpl) Create(ctx context.Context, storeID uint, req *dto.OfferRequest) (*model.Offer, error) {
	offer, err := s.offerFromRequest(ctx, storeID, req)
	if err != nil {
		return nil, err
	}

	if err := s.offerRepo.Create(ctx, offer); err != nil {
		return nil, fmt.Errorf("create offer: %w", err)
	}

	return offer, nil
}

func (s *offerServiceImpl) Get(ctx context.Context, storeID, offerID uint) (*model.Offer, error) {
	return s.ownedOffer(ctx, storeID, offerID)
}

func (s *offerServiceImpl) List(ctx context.Context, storeID uint, status model.OfferStatus) ([]*model.Offer, error) {
	return s.offerRepo.ListByStore(ctx, storeID, status)
}

func (s *offerServiceImpl) ListPublic(ctx context.Context, storeID uint, sectionID *uint) ([]*model.Offer, error) {
	return s.offerRepo.ListPublic(ctx, storeID, sectionID, time.Now())
}

func (s *offerServiceImpl) Update(ctx context.Context, storeID, offerID uint, req *dto.OfferRequest) (*model.Offer, error) {
	if _, err := s.ownedOffer(ctx, storeID, offerID); err != nil {
		return nil, err
	}

	offer, err := s.offerFromRequest(ctx, storeID, req)
	if err != nil {
		return nil, err
	}
	offer.ID = offerID

	if err := s.offerRepo.Update(ctx, offer); err != nil {
		return nil, fmt.Errorf("update offer: %w", err)
	}

	return s.offerRepo.FindByID(ctx, offerID)
}

// Toggle flips an offer between active and inactive. Deleted offers stay
// deleted.
func (s *offerServiceImpl) Toggle(ctx context.Context, storeID, offerID uint) (*model.Offer, error) {
	offer, err := s.ownedOffer(ctx, storeID, offerID)
	if err != nil {
		return nil, err
	}

	var next model.OfferStatus
	switch offer.Status {
	case model.OfferActive:
		next = model.OfferInactive
	case model.OfferInactive:
		next = model.OfferActive
	default:
		return nil, ErrNotFound
	}

	if err := s.offerRepo.SetStatus(ctx, offerID, next); err != nil {
		return nil, fmt.Errorf("set offer status: %w", err)
	}

	offer.Status = next
	return offer, nil
}

// Delete is the canonical deactivation path: the offer moves to the deleted
// state and drops out of listings, but the row is kept.
func (s *offerServiceImpl) Delete(ctx context.Context, storeID, offerID uint) error {
	if _, err := s.ownedOffer(ctx, storeID, offerID); err != nil {
		return err
	}

	return s.offerRepo.SetStatus(ctx, offerID, model.OfferDeleted)
}

// BulkImport reads offers from an xlsx workbook. Columns: Title, Original
// Price, Discounted Price, Start Date, End Date, Section (optional, matched
// by name). Rows commit independently; failures are reported per row and
// never roll back earlier rows.
func (s *offerServiceImpl) BulkImport(ctx context.Context, storeID uint, file io.Reader) (*dto.BatchResult, error) {
	rows, err := spreadsheet.Rows(file)
	if err != nil {
		return nil, fmt.Errorf("parse spreadsheet: %w", err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("spreadsheet has no data rows")
	}

	sections, err := s.sectionRepo.ListByStore(ctx, storeID)
	if err != nil {
		return nil, fmt.Errorf("load sections: %w", err)
	}
	sectionByName := make(map[string]uint, len(sections))
	for _, sec := range sections {
		sectionByName[strings.ToLower(sec.Name)] = sec.ID
	}

	result := &dto.BatchResult{Errors: []string{}}
	for i, row := range rows[1:] {
		// spreadsheet row number: data index + header row + 1-indexing
		rowNum := i + 2

		offer, err := s.offerFromRow(storeID, row, sectionByName)
		if err != nil {
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", rowNum, err))
			s.metrics.ImportRows.WithLabelValues("offers", "failed").Inc()
			continue
		}

		if err := s.offerRepo.Create(ctx, offer); err != nil {
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: insert failed: %v", rowNum, err))
			s.metrics.ImportRows.WithLabelValues("offers", "failed").Inc()
			continue
		}

		result.Imported++
		s.metrics.ImportRows.WithLabelValues("offers", "ok").Inc()
	}

	return result, nil
}

func (s *offerServiceImpl) offerFromRow(storeID uint, row []string, sectionByName map[string]uint) (*model.Offer, error) {
	cell := func(i int) string {
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}

	title := cell(0)
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}

	origPrice, err := decimal.NewFromString(cell(1))
	if err != nil || origPrice.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("original price must be a positive number")
	}
	discPrice, err := decimal.NewFromString(cell(2))
	if err != nil || discPrice.IsNegative() || discPrice.GreaterThan(origPrice) {
		return nil, fmt.Errorf("discounted price must be between 0 and original price")
	}

	startDate, err := parseFlexibleDate(cell(3))
	if err != nil {
		return nil, fmt.Errorf("invalid start date %q", cell(3))
	}
	endDate, err := parseFlexibleDate(cell(4))
	if err != nil {
		return nil, fmt.Errorf("invalid end date %q", cell(4))
	}
	if endDate.Before(startDate) {
		return nil, fmt.Errorf("end date before start date")
	}

	var sectionID *uint
	if name := cell(5); name != "" {
		id, ok := sectionByName[strings.ToLower(name)]
		if !ok {
			return nil, fmt.Errorf("unknown section %q", name)
		}
		sectionID = &id
	}

	return &model.Offer{
		StoreID:         storeID,
		SectionID:       sectionID,
		Title:           title,
		OriginalPrice:   origPrice,
		DiscountedPrice: discPrice,
		DiscountPercent: discountPercent(origPrice, discPrice),
		StartDate:       startDate,
		EndDate:         endDate,
		Status:          model.OfferActive,
	}, nil
}

func (s *offerServiceImpl) offerFromRequest(ctx context.Context, storeID uint, req *dto.OfferRequest) (*model.Offer, error) {
	if req.OriginalPrice.LessThanOrEqual(decimal.Zero) ||
		req.DiscountedPrice.IsNegative() ||
		req.DiscountedPrice.GreaterThan(req.OriginalPrice) {
		return nil, ErrInvalidPrice
	}

	startDate, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("invalid start date: %w", err)
	}
	endDate, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("invalid end date: %w", err)
	}

	if req.SectionID != nil {
		owned, err := s.sectionRepo.BelongsToStore(ctx, *req.SectionID, storeID)
		if err != nil {
			return nil, fmt.Errorf("check section ownership: %w", err)
		}
		if !owned {
			return nil, ErrSectionMismatch
		}
	}

	return &model.Offer{
		StoreID:         storeID,
		SectionID:       req.SectionID,
		Title:           req.Title,
		Description:     req.Description,
		OriginalPrice:   req.OriginalPrice,
		DiscountedPrice: req.DiscountedPrice,
		DiscountPercent: discountPercent(req.OriginalPrice, req.DiscountedPrice),
		StartDate:       startDate,
		EndDate:         endDate,
		Status:          model.OfferActive,
	}, nil
}

func (s *offerServiceImpl) ownedOffer(ctx context.Context, storeID, offerID uint) (*model.Offer, error) {
	offer, err := s.offerRepo.FindByID(ctx, offerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find offer: %w", err)
	}
	if offer.StoreID != storeID {
		return nil, ErrForbidden
	}
	if offer.Status == model.OfferDeleted {
		return nil, ErrNotFound
	}

	return offer, nil
}

func discountPercent(original, discounted decimal.Decimal) decimal.Decimal {
	if original.IsZero() {
		return decimal.Zero
	}
	return original.Sub(discounted).
		Div(original).
		Mul(decimal.NewFromInt(100)).
		Round(2)
}

// parseFlexibleDate accepts the two date forms seen in uploaded sheets.
func parseFlexibleDate(value string) (time.Time, error) {
	for _, layout := range []string{dateLayout, "02/01/2006"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date %q", value)
}
