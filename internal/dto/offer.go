package dto

import "github.com/shopspring/decimal"

type CreateSectionRequest struct {
	Name string `json:"name" validate:"required,max=128"`
}

type SectionResponse struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	QRImage string `json:"qr_image,omitempty"`
}

type OfferRequest struct {
	SectionID       *uint           `json:"section_id"`
	Title           string          `json:"title" validate:"required,max=256"`
	Description     string          `json:"description"`
	OriginalPrice   decimal.Decimal `json:"original_price" validate:"required"`
	DiscountedPrice decimal.Decimal `json:"discounted_price" validate:"required"`
	StartDate       string          `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate         string          `json:"end_date" validate:"required,datetime=2006-01-02"`
}

type OfferResponse struct {
	ID              uint            `json:"id"`
	SectionID       *uint           `json:"section_id,omitempty"`
	Title           string          `json:"title"`
	Description     string          `json:"description,omitempty"`
	OriginalPrice   decimal.Decimal `json:"original_price"`
	DiscountedPrice decimal.Decimal `json:"discounted_price"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	StartDate       string          `json:"start_date"`
	EndDate         string          `json:"end_date"`
	Status          string          `json:"status"`
}

// BatchResult is the outcome of a row-tolerant bulk import. Each row commits
// independently: a failed row never rolls back the rows imported before it.
type BatchResult struct {
	Imported int      `json:"imported"`
	Failed   int      `json:"failed"`
	Errors   []string `json:"errors"`
}
