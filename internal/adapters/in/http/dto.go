package http

import "time"

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateShipmentRequest publishes a new freight request.
type CreateShipmentRequest struct {
	OriginAddress      string    `json:"origin_address"`
	OriginPlaceID      string    `json:"origin_place_id,omitempty"`
	DestinationAddress string    `json:"destination_address"`
	DestinationPlaceID string    `json:"destination_place_id,omitempty"`
	StopAddresses      []string  `json:"stop_addresses,omitempty"`
	WeightKg           float64   `json:"weight_kg"`
	PickupAt           time.Time `json:"pickup_at"`
	CargoType          string    `json:"cargo_type,omitempty"`
	Dimensions         string    `json:"dimensions,omitempty"`
	VehicleType        string    `json:"vehicle_type,omitempty"`
	BodyType           string    `json:"body_type,omitempty"`
	Observations       string    `json:"observations,omitempty"`
}

// CreatedResponse returns the identifier of a newly created resource.
type CreatedResponse struct {
	ID string `json:"id"`
}

// ShipmentSummary is one row of a shipment listing.
type ShipmentSummary struct {
	ID                 string    `json:"id"`
	OwnerID            string    `json:"owner_id"`
	Status             string    `json:"status"`
	OriginAddress      string    `json:"origin_address"`
	DestinationAddress string    `json:"destination_address"`
	WeightKg           float64   `json:"weight_kg"`
	PickupAt           time.Time `json:"pickup_at"`
	CargoType          string    `json:"cargo_type,omitempty"`
	VehicleType        string    `json:"vehicle_type,omitempty"`
	QuoteCount         int       `json:"quote_count,omitempty"`
}

// SubmitQuoteRequest places a carrier's offer on a shipment.
type SubmitQuoteRequest struct {
	ShipmentID string  `json:"shipment_id"`
	Amount     float64 `json:"amount"`
}

// QuoteSummary is one row of a quote listing.
type QuoteSummary struct {
	ID          string    `json:"id"`
	ShipmentID  string    `json:"shipment_id,omitempty"`
	CarrierID   string    `json:"carrier_id,omitempty"`
	CarrierName string    `json:"carrier_name,omitempty"`
	Amount      float64   `json:"amount"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at,omitempty"`
	ValidUntil  time.Time `json:"valid_until"`
}

// CheckoutResponse is returned when a quote is accepted.
type CheckoutResponse struct {
	Reference string `json:"reference"`
	URL       string `json:"url"`
}

// HistoryEntry is one transition log entry of a shipment.
type HistoryEntry struct {
	FromStatus string    `json:"from_status"`
	ToStatus   string    `json:"to_status"`
	Event      string    `json:"event"`
	ActorID    string    `json:"actor_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// RegisterProfileRequest creates a marketplace profile.
type RegisterProfileRequest struct {
	DisplayName string   `json:"display_name"`
	PersonType  string   `json:"person_type"`
	Roles       []string `json:"roles"`
	Email       string   `json:"email,omitempty"`
	Phone       string   `json:"phone,omitempty"`
}

// AddVehicleRequest registers a vehicle in the carrier's fleet.
type AddVehicleRequest struct {
	VehicleType string  `json:"vehicle_type"`
	BodyType    string  `json:"body_type,omitempty"`
	Plate       string  `json:"plate"`
	CapacityKg  float64 `json:"capacity_kg"`
}

// VehicleSummary is one row of a fleet listing.
type VehicleSummary struct {
	ID          string  `json:"id"`
	VehicleType string  `json:"vehicle_type"`
	BodyType    string  `json:"body_type,omitempty"`
	Plate       string  `json:"plate"`
	CapacityKg  float64 `json:"capacity_kg"`
}

// RateCarrierRequest evaluates the carrier of a completed shipment.
type RateCarrierRequest struct {
	ShipmentID       string `json:"shipment_id"`
	Efficiency       int    `json:"efficiency"`
	Communication    int    `json:"communication"`
	VehicleCondition int    `json:"vehicle_condition"`
	Comment          string `json:"comment,omitempty"`
}

// CarrierScoreResponse is a carrier's aggregated rating.
type CarrierScoreResponse struct {
	CarrierID        string  `json:"carrier_id"`
	RatingCount      int     `json:"rating_count"`
	Efficiency       float64 `json:"efficiency"`
	Communication    float64 `json:"communication"`
	VehicleCondition float64 `json:"vehicle_condition"`
	Overall          float64 `json:"overall"`
}
