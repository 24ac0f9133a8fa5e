package transport

import "github.com/h0pler/whs2nd-secureshoppingmall/internal/models"

type RegisterRequest struct {
	Username    string  `json:"username"     validate:"required"`
	Password    string  `json:"password"     validate:"required"`
	Role        string  `json:"role"         validate:"required"`
	FullName    string  `json:"full_name"    validate:"required"`
	Address     *string `json:"address"`
	PaymentInfo *string `json:"payment_info"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type UpdateProfileRequest struct {
	Username    string `json:"username"     validate:"required"`
	FullName    string `json:"full_name"    validate:"required"`
	Address     string `json:"address"      validate:"required"`
	PaymentInfo string `json:"payment_info" validate:"required"`
}

type CreateProductRequest struct {
	Name         string  `json:"name"          validate:"required"`
	Category     string  `json:"category"      validate:"required"`
	Price        float64 `json:"price"`
	ThumbnailURL string  `json:"thumbnail_url" validate:"required"`
}

type UserResponse struct {
	Message string       `json:"message"`
	User    *models.User `json:"user"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
