package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"shopease-api/internal/metrics"
	"shopease-api/internal/repository"

	qrcode "github.com/skip2/go-qrcode"
)

const qrImageSize = 256

type QRService interface {
	GenerateStoreQR(ctx context.Context, storeID uint) (string, error)
	GenerateSectionQR(ctx context.Context, storeID, sectionID uint) (string, error)
}

type qrServiceImpl struct {
	storeRepo   repository.StoreRepository
	sectionRepo repository.SectionRepository
	frontendURL string
	metrics     *metrics.Metrics
}

func NewQRService(
	storeRepo repository.StoreRepository,
	sectionRepo repository.SectionRepository,
	frontendURL string,
	m *metrics.Metrics,
) QRService {
	return &qrServiceImpl{
		storeRepo:   storeRepo,
		sectionRepo: sectionRepo,
		frontendURL: frontendURL,
		metrics:     m,
	}
}

// GenerateStoreQR renders the store's public URL as a QR PNG and persists it
// on the store row as a base64 data URL.
func (s *qrServiceImpl) GenerateStoreQR(ctx context.Context, storeID uint) (string, error) {
	target := fmt.Sprintf("%s/store/%d", s.frontendURL, storeID)

	dataURL, err := encodeQR(target)
	if err != nil {
		return "", err
	}

	if err := s.storeRepo.SaveQRImage(ctx, storeID, dataURL); err != nil {
		return "", fmt.Errorf("persist store qr: %w", err)
	}

	s.metrics.QRCodesGenerated.WithLabelValues("store").Inc()
	return dataURL, nil
}

func (s *qrServiceImpl) GenerateSectionQR(ctx context.Context, storeID, sectionID uint) (string, error) {
	owned, err := s.sectionRepo.BelongsToStore(ctx, sectionID, storeID)
	if err != nil {
		return "", fmt.Errorf("check section ownership: %w", err)
	}
	if !owned {
		return "", ErrForbidden
	}

	target := fmt.Sprintf("%s/store/%d/section/%d", s.frontendURL, storeID, sectionID)

	dataURL, err := encodeQR(target)
	if err != nil {
		return "", err
	}

	if err := s.sectionRepo.SaveQRImage(ctx, sectionID, dataURL); err != nil {
		return "", fmt.Errorf("persist section qr: %w", err)
	}

	s.metrics.QRCodesGenerated.WithLabelValues("section").Inc()
	return dataURL, nil
}

func encodeQR(target string) (string, error) {
	png, err := qrcode.Encode(target, qrcode.Medium, qrImageSize)
	if err != nil {
		return "", fmt.Errorf("encode qr: %w", err)
	}

	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
