package service

import (
	"context"
	"errors"
	"fmt"
	"shopease-api/internal/dto"
	"shopease-api/internal/model"
	"shopease-api/internal/repository"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterStoreRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
}

type authServiceImpl struct {
	storeRepo repository.StoreRepository
	jwtSecret []byte
	jwtExpiry time.Duration
}

func NewAuthService(storeRepo repository.StoreRepository, jwtSecret string, expiryHours int) AuthService {
	return &authServiceImpl{
		storeRepo: storeRepo,
		jwtSecret: []byte(jwtSecret),
		jwtExpiry: time.Duration(expiryHours) * time.Hour,
	}
}

func (s *authServiceImpl) Register(ctx context.Context, req *dto.RegisterStoreRequest) (*dto.AuthResponse, error) {
	_, err := s.storeRepo.FindByEmail(ctx, req.Email)
	if err == nil {
		return nil, ErrDuplicateEmail
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("lookup store by email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	store := &model.Store{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Address:      req.Address,
		Phone:        req.Phone,
	}
	if err := s.storeRepo.Create(ctx, store); err != nil {
		return nil, fmt.Errorf("create store: %w", err)
	}

	return s.authResponse(store)
}

func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	store, err := s.storeRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("lookup store by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(store.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.authResponse(store)
}

func (s *authServiceImpl) authResponse(store *model.Store) (*dto.AuthResponse, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"store_id": store.ID,
		"email":    store.Email,
		"iat":      now.Unix(),
		"exp":      now.Add(s.jwtExpiry).Unix(),
	})

	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	return &dto.AuthResponse{
		Token: signed,
		Store: dto.StoreResponse{
			ID:      store.ID,
			Name:    store.Name,
			Email:   store.Email,
			Address: store.Address,
			Phone:   store.Phone,
		},
	}, nil
}
