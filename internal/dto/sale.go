package dto

import "github.com/shopspring/decimal"

type SaleItemRequest struct {
	ProductName string          `json:"product_name" validate:"required,max=256"`
	Quantity    int32           `json:"quantity" validate:"required,gt=0"`
	UnitPrice   decimal.Decimal `json:"unit_price" validate:"required"`
}

type CreateSaleRequest struct {
	CustomerName  string             `json:"customer_name" validate:"max=128"`
	CustomerPhone string             `json:"customer_phone" validate:"max=20"`
	TotalAmount   decimal.Decimal    `json:"total_amount" validate:"required"`
	PaymentMethod string             `json:"payment_method" validate:"required,oneof=CASH CARD UPI"`
	Items         []*SaleItemRequest `json:"items" validate:"required,min=1,dive"`
}

type SaleResponse struct {
	ID            string          `json:"id"`
	CustomerName  string          `json:"customer_name,omitempty"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	PaymentMethod string          `json:"payment_method"`
	PaymentStatus string          `json:"payment_status"`
	SaleTime      string          `json:"sale_time"`
	Items         []SaleItemView  `json:"items,omitempty"`
}

type SaleItemView struct {
	ProductName string          `json:"product_name"`
	Quantity    int32           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

type FeedbackRequest struct {
	StoreID    uint  `json:"store_id" validate:"required"`
	CustomerID *uint `json:"customer_id"`

	OverallRating        int `json:"overall_rating" validate:"required,min=1,max=5"`
	ProductQualityRating int `json:"product_quality_rating" validate:"omitempty,min=1,max=5"`
	PricingRating        int `json:"pricing_rating" validate:"omitempty,min=1,max=5"`
	ServiceRating        int `json:"service_rating" validate:"omitempty,min=1,max=5"`
	CleanlinessRating    int `json:"cleanliness_rating" validate:"omitempty,min=1,max=5"`

	Comments string `json:"comments"`
}
