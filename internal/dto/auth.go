package dto

type RegisterStoreRequest struct {
	Name     string `json:"name" validate:"required,max=128"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Address  string `json:"address" validate:"max=256"`
	Phone    string `json:"phone" validate:"max=20"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Token string        `json:"token"`
	Store StoreResponse `json:"store"`
}

type StoreResponse struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	QRImage string `json:"qr_image,omitempty"`
}

type UpdateStoreRequest struct {
	Name    string `json:"name" validate:"required,max=128"`
	Address string `json:"address" validate:"max=256"`
	Phone   string `json:"phone" validate:"max=20"`
}

type CustomerRegisterRequest struct {
	Name  string `json:"name" validate:"max=128"`
	Email string `json:"email" validate:"omitempty,email"`
	Phone string `json:"phone" validate:"required,min=7,max=20"`
}

type VerifyOTPRequest struct {
	Phone string `json:"phone" validate:"required"`
	Code  string `json:"otp" validate:"required,len=6"`
}

type ResendOTPRequest struct {
	Phone string `json:"phone" validate:"required"`
}
