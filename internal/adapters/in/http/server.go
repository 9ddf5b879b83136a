// Package http exposes the REST API. Handlers translate JSON requests into
// commands and queries, and map application errors onto HTTP status codes.
package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"packtrack/internal/core/application/usecases/commands"
	"packtrack/internal/core/application/usecases/queries"
	"packtrack/internal/core/domain/model/client"
	"packtrack/internal/core/domain/model/order"
	"packtrack/internal/pkg/auth"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler         commands.CreateOrderCommandHandler
	updateOrderShipmentHandler commands.UpdateOrderShipmentCommandHandler
	cancelOrderHandler         commands.CancelOrderCommandHandler
	changeOrderStatusHandler   commands.ChangeOrderStatusCommandHandler
	deleteOrderHandler         commands.DeleteOrderCommandHandler
	registerClientHandler      commands.RegisterClientCommandHandler
	loginClientHandler         commands.LoginClientCommandHandler
	updateClientProfileHandler commands.UpdateClientProfileCommandHandler

	// Query handlers
	getClientOrdersHandler  queries.GetClientOrdersQueryHandler
	getOrderByIDHandler     queries.GetOrderByIDQueryHandler
	trackOrderByCodeHandler queries.TrackOrderByCodeQueryHandler
	getClientProfileHandler queries.GetClientProfileQueryHandler
	getOrderStatusesHandler queries.GetOrderStatusesQueryHandler

	tokens auth.TokenStrategy
	logger *slog.Logger
}

// Handlers bundles the use-case handlers the server dispatches to.
type Handlers struct {
	CreateOrder         commands.CreateOrderCommandHandler
	UpdateOrderShipment commands.UpdateOrderShipmentCommandHandler
	CancelOrder         commands.CancelOrderCommandHandler
	ChangeOrderStatus   commands.ChangeOrderStatusCommandHandler
	DeleteOrder         commands.DeleteOrderCommandHandler
	RegisterClient      commands.RegisterClientCommandHandler
	LoginClient         commands.LoginClientCommandHandler
	UpdateClientProfile commands.UpdateClientProfileCommandHandler

	GetClientOrders  queries.GetClientOrdersQueryHandler
	GetOrderByID     queries.GetOrderByIDQueryHandler
	TrackOrderByCode queries.TrackOrderByCodeQueryHandler
	GetClientProfile queries.GetClientProfileQueryHandler
	GetOrderStatuses queries.GetOrderStatusesQueryHandler
}

// NewServer creates an HTTP server dispatching to the given handlers.
func NewServer(handlers Handlers, tokens auth.TokenStrategy, logger *slog.Logger) *Server {
	return &Server{
		createOrderHandler:         handlers.CreateOrder,
		updateOrderShipmentHandler: handlers.UpdateOrderShipment,
		cancelOrderHandler:         handlers.CancelOrder,
		changeOrderStatusHandler:   handlers.ChangeOrderStatus,
		deleteOrderHandler:         handlers.DeleteOrder,
		registerClientHandler:      handlers.RegisterClient,
		loginClientHandler:         handlers.LoginClient,
		updateClientProfileHandler: handlers.UpdateClientProfile,
		getClientOrdersHandler:     handlers.GetClientOrders,
		getOrderByIDHandler:        handlers.GetOrderByID,
		trackOrderByCodeHandler:    handlers.TrackOrderByCode,
		getClientProfileHandler:    handlers.GetClientProfile,
		getOrderStatusesHandler:    handlers.GetOrderStatuses,
		tokens:                     tokens,
		logger:                     logger,
	}
}

// RegisterRoutes mounts the API under /api/v1 on the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/auth/register", s.Register)
	api.POST("/auth/login", s.Login)
	api.GET("/orders/track/:code", s.TrackOrder)
	api.GET("/statuses", s.GetStatuses)

	authed := api.Group("", BearerAuth(s.tokens))
	authed.GET("/profile", s.GetProfile)
	authed.PUT("/profile", s.UpdateProfile)
	authed.POST("/orders", s.CreateOrder)
	authed.GET("/orders", s.GetOrders)
	authed.GET("/orders/:id", s.GetOrder)
	authed.PUT("/orders/:id/status", s.ChangeOrderStatus)
	authed.PUT("/orders/:id/cancel", s.CancelOrder)
	authed.PUT("/orders/:id/update", s.UpdateOrder)
	authed.DELETE("/orders/:id", s.DeleteOrder)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Register handles POST /api/v1/auth/register.
func (s *Server) Register(ctx echo.Context) error {
	var req RegisterRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "malformed request body")
	}

	cmd, err := commands.NewRegisterClientCommand(
		req.Name, req.Lastname, req.IDNumber, req.Email, req.Password, req.Phone)
	if err != nil {
		return s.writeError(ctx, err)
	}

	account, err := s.registerClientHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	token, err := s.tokens.IssueToken(account.ID())
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, AuthResponse{
		Token:  token,
		Client: toClientResponse(account),
	})
}

// Login handles POST /api/v1/auth/login.
func (s *Server) Login(ctx echo.Context) error {
	var req LoginRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "malformed request body")
	}

	cmd, err := commands.NewLoginClientCommand(req.Email, req.Password)
	if err != nil {
		return s.writeError(ctx, err)
	}

	account, err := s.loginClientHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	token, err := s.tokens.IssueToken(account.ID())
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, AuthResponse{
		Token:  token,
		Client: toClientResponse(account),
	})
}

// GetProfile handles GET /api/v1/profile.
func (s *Server) GetProfile(ctx echo.Context) error {
	query, err := queries.NewGetClientProfileQuery(clientID(ctx))
	if err != nil {
		return s.writeError(ctx, err)
	}

	profile, err := s.getClientProfileHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toProfileResponse(profile))
}

// UpdateProfile handles PUT /api/v1/profile.
func (s *Server) UpdateProfile(ctx echo.Context) error {
	var req UpdateProfileRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "malformed request body")
	}

	patch := client.ProfilePatch{
		Name:     req.Name,
		Lastname: req.Lastname,
		IDNumber: req.IDNumber,
		Email:    req.Email,
		Phone:    req.Phone,
	}

	cmd, err := commands.NewUpdateClientProfileCommand(clientID(ctx), patch)
	if err != nil {
		return s.writeError(ctx, err)
	}

	account, err := s.updateClientProfileHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toClientResponse(account))
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "malformed request body")
	}

	packageType, err := order.ParsePackageType(req.PackageType)
	if err != nil {
		return s.writeError(ctx, err)
	}

	sender := order.Sender{
		Name:         req.SenderName,
		Lastname:     req.SenderLastname,
		IDNumber:     req.SenderIDNumber,
		Department:   req.SenderDepartment,
		Municipality: req.SenderMunicipality,
		Address:      req.SenderAddress,
		Phone:        req.SenderPhone,
		Email:        req.SenderEmail,
	}
	shipment := order.Shipment{
		PackageType:             packageType,
		DestinationDepartment:   req.DestinationDepartment,
		DestinationMunicipality: req.DestinationMunicipality,
		RecipientName:           req.RecipientName,
		DestinationAddress:      req.DestinationAddress,
	}

	cmd, err := commands.NewCreateOrderCommand(clientID(ctx), sender, shipment)
	if err != nil {
		return s.writeError(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{
		ID:        created.ID(),
		TrackCode: created.TrackCode().String(),
		Status:    created.Status().String(),
	})
}

// GetOrders handles GET /api/v1/orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	query, err := queries.NewGetClientOrdersQuery(clientID(ctx))
	if err != nil {
		return s.writeError(ctx, err)
	}

	rows, err := s.getClientOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	response := make([]OrderListItem, 0, len(rows))
	for _, row := range rows {
		response = append(response, OrderListItem{
			ID:                      row.ID,
			TrackCode:               row.TrackCode,
			Status:                  row.StatusName,
			PackageType:             row.PackageType,
			RecipientName:           row.RecipientName,
			DestinationDepartment:   row.DestinationDepartment,
			DestinationMunicipality: row.DestinationMunicipality,
			DestinationAddress:      row.DestinationAddress,
			ClientName:              row.ClientName,
			ClientEmail:             row.ClientEmail,
			CreatedAt:               row.CreatedAt,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := parseOrderID(ctx)
	if err != nil {
		return badRequest(ctx, "order id must be a positive integer")
	}

	query, err := queries.NewGetOrderByIDQuery(orderID, clientID(ctx))
	if err != nil {
		return s.writeError(ctx, err)
	}

	details, err := s.getOrderByIDHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderDetailsResponse(details))
}

// ChangeOrderStatus handles PUT /api/v1/orders/:id/status.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	orderID, err := parseOrderID(ctx)
	if err != nil {
		return badRequest(ctx, "order id must be a positive integer")
	}

	var req ChangeStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "malformed request body")
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, req.Status)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles PUT /api/v1/orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := parseOrderID(ctx)
	if err != nil {
		return badRequest(ctx, "order id must be a positive integer")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, clientID(ctx))
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateOrder handles PUT /api/v1/orders/:id/update.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	orderID, err := parseOrderID(ctx)
	if err != nil {
		return badRequest(ctx, "order id must be a positive integer")
	}

	var req UpdateOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "malformed request body")
	}

	patch := order.ShipmentPatch{
		PackageType:             req.PackageType,
		DestinationDepartment:   req.DestinationDepartment,
		DestinationMunicipality: req.DestinationMunicipality,
		RecipientName:           req.RecipientName,
		DestinationAddress:      req.DestinationAddress,
	}

	cmd, err := commands.NewUpdateOrderShipmentCommand(orderID, clientID(ctx), patch)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.updateOrderShipmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteOrder handles DELETE /api/v1/orders/:id.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	orderID, err := parseOrderID(ctx)
	if err != nil {
		return badRequest(ctx, "order id must be a positive integer")
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID, clientID(ctx))
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// TrackOrder handles GET /api/v1/orders/track/:code.
func (s *Server) TrackOrder(ctx echo.Context) error {
	query, err := queries.NewTrackOrderByCodeQuery(ctx.Param("code"))
	if err != nil {
		return s.writeError(ctx, err)
	}

	info, err := s.trackOrderByCodeHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, TrackingResponse{
		TrackCode:               info.TrackCode,
		Status:                  info.StatusName,
		PackageType:             info.PackageType,
		RecipientName:           info.RecipientName,
		DestinationDepartment:   info.DestinationDepartment,
		DestinationMunicipality: info.DestinationMunicipality,
		DestinationAddress:      info.DestinationAddress,
		CreatedAt:               info.CreatedAt,
	})
}

// GetStatuses handles GET /api/v1/statuses.
func (s *Server) GetStatuses(ctx echo.Context) error {
	statuses, err := s.getOrderStatusesHandler.Handle(
		ctx.Request().Context(), queries.NewGetOrderStatusesQuery())
	if err != nil {
		return s.writeError(ctx, err)
	}

	response := make([]StatusResponse, 0, len(statuses))
	for _, status := range statuses {
		response = append(response, StatusResponse{ID: status.ID, Name: status.Name})
	}

	return ctx.JSON(http.StatusOK, response)
}

func parseOrderID(ctx echo.Context) (uint64, error) {
	return strconv.ParseUint(ctx.Param("id"), 10, 64)
}

func toClientResponse(account *client.Client) ClientResponse {
	return ClientResponse{
		ID:       account.ID(),
		Name:     account.Name(),
		Lastname: account.Lastname(),
		IDNumber: account.IDNumber(),
		Email:    account.Email(),
		Phone:    account.Phone(),
	}
}

func toProfileResponse(profile queries.ClientProfile) ProfileResponse {
	counts := make([]OrderCountResponse, 0, len(profile.OrderCounts))
	for _, c := range profile.OrderCounts {
		counts = append(counts, OrderCountResponse{Status: c.StatusName, Count: c.Count})
	}

	return ProfileResponse{
		ID:          profile.ID,
		Name:        profile.Name,
		Lastname:    profile.Lastname,
		IDNumber:    profile.IDNumber,
		Email:       profile.Email,
		Phone:       profile.Phone,
		TotalOrders: profile.TotalOrders,
		OrderCounts: counts,
	}
}

func toOrderDetailsResponse(details queries.OrderDetails) OrderDetailsResponse {
	return OrderDetailsResponse{
		ID:                      details.ID,
		TrackCode:               details.TrackCode,
		Status:                  details.StatusName,
		SenderName:              details.SenderName,
		SenderLastname:          details.SenderLastname,
		SenderPhone:             details.SenderPhone,
		SenderEmail:             details.SenderEmail,
		SenderDepartment:        details.SenderDepartment,
		SenderMunicipality:      details.SenderMunicipality,
		SenderAddress:           details.SenderAddress,
		PackageType:             details.PackageType,
		RecipientName:           details.RecipientName,
		DestinationDepartment:   details.DestinationDepartment,
		DestinationMunicipality: details.DestinationMunicipality,
		DestinationAddress:      details.DestinationAddress,
		CreatedAt:               details.CreatedAt,
	}
}
