// Package http exposes the freight marketplace over a JSON REST API.
// Authentication happens upstream: handlers trust the identity headers set
// by the proxy and enforce domain-level authorization in the use cases.
package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/account"
	"freight/internal/core/domain/model/kernel"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createShipmentHandler  commands.CreateShipmentCommandHandler
	submitQuoteHandler     commands.SubmitQuoteCommandHandler
	acceptQuoteHandler     commands.AcceptQuoteCommandHandler
	rejectQuoteHandler     commands.RejectQuoteCommandHandler
	startTripHandler       commands.StartTripCommandHandler
	completeTripHandler    commands.CompleteTripCommandHandler
	cancelShipmentHandler  commands.CancelShipmentCommandHandler
	registerProfileHandler commands.RegisterProfileCommandHandler
	awaitProfileHandler    commands.AwaitProfileCommandHandler
	addVehicleHandler      commands.AddVehicleCommandHandler
	rateCarrierHandler     commands.RateCarrierCommandHandler

	getOpenShipmentsHandler     queries.GetOpenShipmentsQueryHandler
	getShipmentsByOwnerHandler  queries.GetShipmentsByOwnerQueryHandler
	getQuotesForShipmentHandler queries.GetQuotesForShipmentQueryHandler
	getQuotesByCarrierHandler   queries.GetQuotesByCarrierQueryHandler
	getShipmentHistoryHandler   queries.GetShipmentHistoryQueryHandler
	getFleetHandler             queries.GetFleetQueryHandler
	getCarrierScoreHandler      queries.GetCarrierScoreQueryHandler
}

// ServerDeps carries the use case handlers required by the server.
type ServerDeps struct {
	CreateShipment  commands.CreateShipmentCommandHandler
	SubmitQuote     commands.SubmitQuoteCommandHandler
	AcceptQuote     commands.AcceptQuoteCommandHandler
	RejectQuote     commands.RejectQuoteCommandHandler
	StartTrip       commands.StartTripCommandHandler
	CompleteTrip    commands.CompleteTripCommandHandler
	CancelShipment  commands.CancelShipmentCommandHandler
	RegisterProfile commands.RegisterProfileCommandHandler
	AwaitProfile    commands.AwaitProfileCommandHandler
	AddVehicle      commands.AddVehicleCommandHandler
	RateCarrier     commands.RateCarrierCommandHandler

	GetOpenShipments     queries.GetOpenShipmentsQueryHandler
	GetShipmentsByOwner  queries.GetShipmentsByOwnerQueryHandler
	GetQuotesForShipment queries.GetQuotesForShipmentQueryHandler
	GetQuotesByCarrier   queries.GetQuotesByCarrierQueryHandler
	GetShipmentHistory   queries.GetShipmentHistoryQueryHandler
	GetFleet             queries.GetFleetQueryHandler
	GetCarrierScore      queries.GetCarrierScoreQueryHandler
}

// NewServer creates an HTTP server wired to the given use case handlers.
func NewServer(deps ServerDeps) *Server {
	return &Server{
		createShipmentHandler:  deps.CreateShipment,
		submitQuoteHandler:     deps.SubmitQuote,
		acceptQuoteHandler:     deps.AcceptQuote,
		rejectQuoteHandler:     deps.RejectQuote,
		startTripHandler:       deps.StartTrip,
		completeTripHandler:    deps.CompleteTrip,
		cancelShipmentHandler:  deps.CancelShipment,
		registerProfileHandler: deps.RegisterProfile,
		awaitProfileHandler:    deps.AwaitProfile,
		addVehicleHandler:      deps.AddVehicle,
		rateCarrierHandler:     deps.RateCarrier,

		getOpenShipmentsHandler:     deps.GetOpenShipments,
		getShipmentsByOwnerHandler:  deps.GetShipmentsByOwner,
		getQuotesForShipmentHandler: deps.GetQuotesForShipment,
		getQuotesByCarrierHandler:   deps.GetQuotesByCarrier,
		getShipmentHistoryHandler:   deps.GetShipmentHistory,
		getFleetHandler:             deps.GetFleet,
		getCarrierScoreHandler:      deps.GetCarrierScore,
	}
}

// RegisterRoutes attaches all routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")

	api.POST("/shipments", s.CreateShipment)
	api.GET("/shipments/open", s.GetOpenShipments)
	api.GET("/shipments", s.GetMyShipments)
	api.POST("/shipments/:id/cancel", s.CancelShipment)
	api.POST("/shipments/:id/start", s.StartTrip)
	api.POST("/shipments/:id/complete", s.CompleteTrip)
	api.GET("/shipments/:id/history", s.GetShipmentHistory)
	api.GET("/shipments/:id/quotes", s.GetQuotesForShipment)

	api.POST("/quotes", s.SubmitQuote)
	api.POST("/quotes/:id/accept", s.AcceptQuote)
	api.POST("/quotes/:id/reject", s.RejectQuote)
	api.GET("/quotes", s.GetMyQuotes)

	api.POST("/profiles", s.RegisterProfile)
	api.GET("/profiles/me", s.AwaitProfile)

	api.POST("/vehicles", s.AddVehicle)
	api.GET("/vehicles", s.GetFleet)

	api.POST("/ratings", s.RateCarrier)
	api.GET("/carriers/:id/score", s.GetCarrierScore)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateShipment handles POST /api/v1/shipments.
func (s *Server) CreateShipment(ctx echo.Context) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return respondUnauthenticated(ctx)
	}

	var req CreateShipmentRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code: http.StatusBadRequest, Message: "invalid request body",
		})
	}

	shipmentID := kernel.NewUUID()
	cmd, err := commands.NewCreateShipmentCommand(
		shipmentID, principal.ID,
		req.OriginAddress, req.DestinationAddress,
		req.WeightKg, req.PickupAt,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd = cmd.WithPlaceIDs(req.OriginPlaceID, req.DestinationPlaceID)
	cmd = cmd.WithCargo(req.CargoType, req.Dimensions, req.VehicleType, req.BodyType, req.Observations)
	if cmd, err = cmd.WithStops(req.StopAddresses); err != nil {
		return respondError(ctx, err)
	}

	if err = s.createShipmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: shipmentID.String()})
}

// GetOpenShipments handles GET /api/v1/shipments/open.
func (s *Server) GetOpenShipments(ctx echo.Context) error {
	query := queries.NewGetOpenShipmentsQuery()

	shipments, err := s.getOpenShipmentsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]ShipmentSummary, 0, len(shipments))
	for _, row := range shipments {
		response = append(response, ShipmentSummary{
			ID:                 row.ID.String(),
			OwnerID:            row.OwnerID.String(),
			Status:             row.Status,
			OriginAddress:      row.OriginAddress,
			DestinationAddress: row.DestinationAddress,
			WeightKg:           row.WeightKg,
			PickupAt:           row.PickupAt,
			CargoType:          row.CargoType,
			VehicleType:        row.VehicleType,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetMyShipments handles GET /api/v1/shipments.
func (s *Server) GetMyShipments(ctx echo.Context) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return respondUnauthenticated(ctx)
	}

	query, err := queries.NewGetShipmentsByOwnerQuery(principal.ID)
	if err != nil {
		return respondError(ctx, err)
	}

	shipments, err := s.getShipmentsByOwnerHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]ShipmentSummary, 0, len(shipments))
	for _, row := range shipments {
		response = append(response, ShipmentSummary{
			ID:                 row.ID.String(),
			OwnerID:            principal.ID.String(),
			Status:             row.Status,
			OriginAddress:      row.OriginAddress,
			DestinationAddress: row.DestinationAddress,
			WeightKg:           row.WeightKg,
			PickupAt:           row.PickupAt,
			CargoType:          row.CargoType,
			VehicleType:        row.VehicleType,
			QuoteCount:         row.QuoteCount,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// CancelShipment handles POST /api/v1/shipments/:id/cancel.
func (s *Server) CancelShipment(ctx echo.Context) error {
	return s.handleTransition(ctx, func(shipmentID, actorID kernel.UUID) error {
		cmd, err := commands.NewCancelShipmentCommand(shipmentID, actorID)
		if err != nil {
			return err
		}
		return s.cancelShipmentHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// StartTrip handles POST /api/v1/shipments/:id/start.
func (s *Server) StartTrip(ctx echo.Context) error {
	return s.handleTransition(ctx, func(shipmentID, actorID kernel.UUID) error {
		cmd, err := commands.NewStartTripCommand(shipmentID, actorID)
		if err != nil {
			return err
		}
		return s.startTripHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// CompleteTrip handles POST /api/v1/shipments/:id/complete.
func (s *Server) CompleteTrip(ctx echo.Context) error {
	return s.handleTransition(ctx, func(shipmentID, actorID kernel.UUID) error {
		cmd, err := commands.NewCompleteTripCommand(shipmentID, actorID)
		if err != nil {
			return err
		}
		return s.completeTripHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// handleTransition runs one shipment lifecycle transition for the principal.
func (s *Server) handleTransition(ctx echo.Context, run func(shipmentID, actorID kernel.UUID) error) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return respondUnauthenticated(ctx)
	}

	shipmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	if err = run(shipmentID, principal.ID); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetShipmentHistory handles GET /api/v1/shipments/:id/history.
func (s *Server) GetShipmentHistory(ctx echo.Context) error {
	shipmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetShipmentHistoryQuery(shipmentID)
	if err != nil {
		return respondError(ctx, err)
	}

	entries, err := s.getShipmentHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]HistoryEntry, 0, len(entries))
	for _, row := range entries {
		entry := HistoryEntry{
			FromStatus: row.FromStatus,
			ToStatus:   row.ToStatus,
			Event:      row.Event,
			OccurredAt: row.OccurredAt,
		}
		if !row.ActorID.IsEmpty() {
			entry.ActorID = row.ActorID.String()
		}
		response = append(response, entry)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetQuotesForShipment handles GET /api/v1/shipments/:id/quotes.
func (s *Server) GetQuotesForShipment(ctx echo.Context) error {
	shipmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetQuotesForShipmentQuery(shipmentID)
	if err != nil {
		return respondError(ctx, err)
	}

	quotes, err := s.getQuotesForShipmentHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]QuoteSummary, 0, len(quotes))
	for _, row := range quotes {
		response = append(response, QuoteSummary{
			ID:          row.ID.String(),
			CarrierID:   row.CarrierID.String(),
			CarrierName: row.CarrierName,
			Amount:      row.Amount,
			Status:      row.Status,
			CreatedAt:   row.CreatedAt,
			ValidUntil:  row.ValidUntil,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// SubmitQuote handles POST /api/v1/quotes.
func (s *Server) SubmitQuote(ctx echo.Context) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return respondUnauthenticated(ctx)
	}

	var req SubmitQuoteRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code: http.StatusBadRequest, Message: "invalid request body",
		})
	}

	shipmentID, err := kernel.UUIDFromString(req.ShipmentID)
	if err != nil {
		return respondError(ctx, err)
	}

	quoteID := kernel.NewUUID()
	cmd, err := commands.NewSubmitQuoteCommand(quoteID, shipmentID, principal.ID, req.Amount)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.submitQuoteHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: quoteID.String()})
}

// AcceptQuote handles POST /api/v1/quotes/:id/accept.
func (s *Server) AcceptQuote(ctx echo.Context) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return respondUnauthenticated(ctx)
	}

	quoteID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAcceptQuoteCommand(quoteID, principal.ID)
	if err != nil {
		return respondError(ctx, err)
	}

	checkout, err := s.acceptQuoteHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, CheckoutResponse{
		Reference: checkout.Reference,
		URL:       checkout.URL,
	})
}

// RejectQuote handles POST /api/v1/quotes/:id/reject.
func (s *Server) RejectQuote(ctx echo.Context) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return respondUnauthenticated(ctx)
	}

	quoteID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewRejectQuoteCommand(quoteID, principal.ID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.rejectQuoteHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetMyQuotes handles GET /api/v1/quotes.
func (s *Server) GetMyQuotes(ctx echo.Context) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return respondUnauthenticated(ctx)
	}

	query, err := queries.NewGetQuotesByCarrierQuery(principal.ID)
	if err != nil {
		return respondError(ctx, err)
	}

	quotes, err := s.getQuotesByCarrierHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]QuoteSummary, 0, len(quotes))
	for _, row := range quotes {
		response = append(response, QuoteSummary{
			ID:         row.ID.String(),
			ShipmentID: row.ShipmentID.String(),
			Amount:     row.Amount,
			Status:     row.Status,
			ValidUntil: row.ValidUntil,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// RegisterProfile handles POST /api/v1/profiles.
func (s *Server) RegisterProfile(ctx echo.Context) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return respondUnauthenticated(ctx)
	}

	var req RegisterProfileRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code: http.StatusBadRequest, Message: "invalid request body",
		})
	}

	personType, err := account.PersonTypeFromString(req.PersonType)
	if err != nil {
		return respondError(ctx, err)
	}

	roles := make([]account.Role, 0, len(req.Roles))
	for _, raw := range req.Roles {
		role, roleErr := account.RoleFromString(raw)
		if roleErr != nil {
			return respondError(ctx, roleErr)
		}
		roles = append(roles, role)
	}

	cmd, err := commands.NewRegisterProfileCommand(
		principal.ID, req.DisplayName, personType, roles, req.Email, req.Phone)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.registerProfileHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: principal.ID.String()})
}

// AwaitProfile handles GET /api/v1/profiles/me. It blocks until the
// principal's profile row has materialized or the wait times out.
func (s *Server) AwaitProfile(ctx echo.Context) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return respondUnauthenticated(ctx)
	}

	cmd, err := commands.NewAwaitProfileCommand(principal.ID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.awaitProfileHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AddVehicle handles POST /api/v1/vehicles.
func (s *Server) AddVehicle(ctx echo.Context) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return respondUnauthenticated(ctx)
	}

	var req AddVehicleRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code: http.StatusBadRequest, Message: "invalid request body",
		})
	}

	vehicleID := kernel.NewUUID()
	cmd, err := commands.NewAddVehicleCommand(
		vehicleID, principal.ID, req.VehicleType, req.BodyType, req.Plate, req.CapacityKg)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.addVehicleHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: vehicleID.String()})
}

// GetFleet handles GET /api/v1/vehicles.
func (s *Server) GetFleet(ctx echo.Context) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return respondUnauthenticated(ctx)
	}

	query, err := queries.NewGetFleetQuery(principal.ID)
	if err != nil {
		return respondError(ctx, err)
	}

	vehicles, err := s.getFleetHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]VehicleSummary, 0, len(vehicles))
	for _, row := range vehicles {
		response = append(response, VehicleSummary{
			ID:          row.ID.String(),
			VehicleType: row.VehicleType,
			BodyType:    row.BodyType,
			Plate:       row.Plate,
			CapacityKg:  row.CapacityKg,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// RateCarrier handles POST /api/v1/ratings.
func (s *Server) RateCarrier(ctx echo.Context) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return respondUnauthenticated(ctx)
	}

	var req RateCarrierRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code: http.StatusBadRequest, Message: "invalid request body",
		})
	}

	shipmentID, err := kernel.UUIDFromString(req.ShipmentID)
	if err != nil {
		return respondError(ctx, err)
	}

	ratingID := kernel.NewUUID()
	cmd, err := commands.NewRateCarrierCommand(
		ratingID, shipmentID, principal.ID,
		req.Efficiency, req.Communication, req.VehicleCondition, req.Comment)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.rateCarrierHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: ratingID.String()})
}

// GetCarrierScore handles GET /api/v1/carriers/:id/score.
func (s *Server) GetCarrierScore(ctx echo.Context) error {
	carrierID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetCarrierScoreQuery(carrierID)
	if err != nil {
		return respondError(ctx, err)
	}

	score, err := s.getCarrierScoreHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, CarrierScoreResponse{
		CarrierID:        score.CarrierID.String(),
		RatingCount:      score.RatingCount,
		Efficiency:       score.Efficiency,
		Communication:    score.Communication,
		VehicleCondition: score.VehicleCondition,
		Overall:          score.Overall,
	})
}
