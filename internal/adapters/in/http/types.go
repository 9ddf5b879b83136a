package http

import "time"

// Error is the JSON error envelope every failing response carries.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// RegisterRequest is the payload for POST /auth/register.
type RegisterRequest struct {
	Name     string `json:"name"`
	Lastname string `json:"lastname"`
	IDNumber string `json:"id_number"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
}

// LoginRequest is the payload for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse carries the bearer token issued on registration and login.
type AuthResponse struct {
	Token  string         `json:"token"`
	Client ClientResponse `json:"client"`
}

// ClientResponse is the account view embedded in auth responses.
type ClientResponse struct {
	ID       uint64 `json:"id"`
	Name     string `json:"name"`
	Lastname string `json:"lastname"`
	IDNumber string `json:"id_number"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

// ProfileResponse is the owner profile with an order-history summary.
type ProfileResponse struct {
	ID          uint64               `json:"id"`
	Name        string               `json:"name"`
	Lastname    string               `json:"lastname"`
	IDNumber    string               `json:"id_number"`
	Email       string               `json:"email"`
	Phone       string               `json:"phone"`
	TotalOrders int64                `json:"total_orders"`
	OrderCounts []OrderCountResponse `json:"order_counts"`
}

// OrderCountResponse is one status bucket in the profile summary.
type OrderCountResponse struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// UpdateProfileRequest is the payload for PUT /profile. Absent fields stay
// unchanged; the password is not editable here.
type UpdateProfileRequest struct {
	Name     *string `json:"name"`
	Lastname *string `json:"lastname"`
	IDNumber *string `json:"id_number"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
}

// CreateOrderRequest is the payload for POST /orders.
type CreateOrderRequest struct {
	SenderName         string `json:"sender_name"`
	SenderLastname     string `json:"sender_lastname"`
	SenderIDNumber     string `json:"sender_id_number"`
	SenderDepartment   string `json:"sender_department"`
	SenderMunicipality string `json:"sender_municipality"`
	SenderAddress      string `json:"sender_address"`
	SenderPhone        string `json:"sender_phone"`
	SenderEmail        string `json:"sender_email"`

	PackageType             string `json:"package_type"`
	DestinationDepartment   string `json:"destination_department"`
	DestinationMunicipality string `json:"destination_municipality"`
	RecipientName           string `json:"recipient_name"`
	DestinationAddress      string `json:"destination_address"`
}

// CreateOrderResponse acknowledges a new order with its tracking code.
type CreateOrderResponse struct {
	ID        uint64 `json:"id"`
	TrackCode string `json:"track_code"`
	Status    string `json:"status"`
}

// UpdateOrderRequest is the payload for PUT /orders/:id/update. Only these
// fields are editable; anything else in the body is ignored. Absent fields
// stay unchanged.
type UpdateOrderRequest struct {
	PackageType             *string `json:"package_type"`
	DestinationDepartment   *string `json:"destination_department"`
	DestinationMunicipality *string `json:"destination_municipality"`
	RecipientName           *string `json:"recipient_name"`
	DestinationAddress      *string `json:"destination_address"`
}

// ChangeStatusRequest is the payload for PUT /orders/:id/status.
type ChangeStatusRequest struct {
	Status string `json:"status"`
}

// OrderListItem is one row of GET /orders.
type OrderListItem struct {
	ID                      uint64    `json:"id"`
	TrackCode               string    `json:"track_code"`
	Status                  string    `json:"status"`
	PackageType             string    `json:"package_type"`
	RecipientName           string    `json:"recipient_name"`
	DestinationDepartment   string    `json:"destination_department"`
	DestinationMunicipality string    `json:"destination_municipality"`
	DestinationAddress      string    `json:"destination_address"`
	ClientName              string    `json:"client_name"`
	ClientEmail             string    `json:"client_email"`
	CreatedAt               time.Time `json:"created_at"`
}

// OrderDetailsResponse is the full order view for GET /orders/:id.
type OrderDetailsResponse struct {
	ID        uint64 `json:"id"`
	TrackCode string `json:"track_code"`
	Status    string `json:"status"`

	SenderName         string `json:"sender_name"`
	SenderLastname     string `json:"sender_lastname"`
	SenderPhone        string `json:"sender_phone"`
	SenderEmail        string `json:"sender_email"`
	SenderDepartment   string `json:"sender_department"`
	SenderMunicipality string `json:"sender_municipality"`
	SenderAddress      string `json:"sender_address"`

	PackageType             string    `json:"package_type"`
	RecipientName           string    `json:"recipient_name"`
	DestinationDepartment   string    `json:"destination_department"`
	DestinationMunicipality string    `json:"destination_municipality"`
	DestinationAddress      string    `json:"destination_address"`
	CreatedAt               time.Time `json:"created_at"`
}

// TrackingResponse is the public projection for GET /orders/track/:code.
type TrackingResponse struct {
	TrackCode               string    `json:"track_code"`
	Status                  string    `json:"status"`
	PackageType             string    `json:"package_type"`
	RecipientName           string    `json:"recipient_name"`
	DestinationDepartment   string    `json:"destination_department"`
	DestinationMunicipality string    `json:"destination_municipality"`
	DestinationAddress      string    `json:"destination_address"`
	CreatedAt               time.Time `json:"created_at"`
}

// StatusResponse is one registry entry for GET /statuses.
type StatusResponse struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}
