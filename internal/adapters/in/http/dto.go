package http

import (
	"time"

	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/address"
	"marketplace/internal/core/domain/model/order"
)

// ErrorResponse is the uniform error body for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// PlaceOrderRequest is the body of POST /api/orders/place.
type PlaceOrderRequest struct {
	RestaurantID        int64              `json:"restaurantId"`
	DeliveryAddressID   int64              `json:"deliveryAddressId"`
	Items               []OrderLineRequest `json:"items"`
	PaymentMethod       string             `json:"paymentMethod"`
	SpecialInstructions string             `json:"specialInstructions,omitempty"`

	// CouponCode is accepted for API compatibility. Coupon resolution has no
	// collaborator yet, so the discount stays zero.
	CouponCode string `json:"couponCode,omitempty"`
}

// OrderLineRequest is one cart entry in a placement request.
type OrderLineRequest struct {
	MenuItemID   int64  `json:"menuItemId"`
	Quantity     int    `json:"quantity"`
	Instructions string `json:"instructions,omitempty"`
}

// RejectOrderRequest is the body of PUT /api/orders/:orderId/reject.
type RejectOrderRequest struct {
	Reason string `json:"reason"`
}

// UpdateStatusRequest is the body of PUT /api/orders/:orderId/status.
type UpdateStatusRequest struct {
	Status string `json:"status"`
	Notes  string `json:"notes,omitempty"`
}

// AddressRequest is the body of POST /api/addresses and
// PUT /api/addresses/:addressId.
type AddressRequest struct {
	Label     string   `json:"label"`
	Address   string   `json:"address"`
	Landmark  string   `json:"landmark,omitempty"`
	City      string   `json:"city"`
	State     string   `json:"state"`
	Pincode   string   `json:"pincode"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	IsDefault bool     `json:"isDefault,omitempty"`
}

// OrderItemResponse is one line item in an order response.
type OrderItemResponse struct {
	ID           int64  `json:"id"`
	MenuItemID   int64  `json:"menuItemId"`
	MenuItemName string `json:"menuItemName"`
	Quantity     int    `json:"quantity"`
	UnitPrice    string `json:"unitPrice"`
	LineTotal    string `json:"lineTotal"`
	Instructions string `json:"instructions,omitempty"`
}

// OrderHistoryResponse is one status-history entry in an order response.
type OrderHistoryResponse struct {
	Status    string    `json:"status"`
	ChangedBy string    `json:"changedBy"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// OrderResponse is the full order representation.
type OrderResponse struct {
	ID                    int64                  `json:"id"`
	OrderNumber           string                 `json:"orderNumber"`
	CustomerID            int64                  `json:"customerId"`
	RestaurantID          int64                  `json:"restaurantId"`
	DeliveryAddressID     int64                  `json:"deliveryAddressId"`
	DeliveryPartnerID     *int64                 `json:"deliveryPartnerId,omitempty"`
	Status                string                 `json:"status"`
	PaymentMethod         string                 `json:"paymentMethod"`
	PaymentStatus         string                 `json:"paymentStatus"`
	Subtotal              string                 `json:"subtotal"`
	DeliveryFee           string                 `json:"deliveryFee"`
	Tax                   string                 `json:"tax"`
	Discount              string                 `json:"discount"`
	FinalTotal            string                 `json:"finalTotal"`
	SpecialInstructions   string                 `json:"specialInstructions,omitempty"`
	EstimatedDeliveryTime *time.Time             `json:"estimatedDeliveryTime,omitempty"`
	CreatedAt             time.Time              `json:"createdAt"`
	UpdatedAt             time.Time              `json:"updatedAt"`
	Items                 []OrderItemResponse    `json:"items"`
	History               []OrderHistoryResponse `json:"statusHistory"`
}

// OrderSummaryResponse is one row of an order listing.
type OrderSummaryResponse struct {
	ID            int64     `json:"id"`
	OrderNumber   string    `json:"orderNumber"`
	CustomerID    int64     `json:"customerId"`
	RestaurantID  int64     `json:"restaurantId"`
	Status        string    `json:"status"`
	PaymentMethod string    `json:"paymentMethod"`
	PaymentStatus string    `json:"paymentStatus"`
	FinalTotal    string    `json:"finalTotal"`
	CreatedAt     time.Time `json:"createdAt"`
}

// AddressResponse is the saved-address representation.
type AddressResponse struct {
	ID        int64     `json:"id"`
	Label     string    `json:"label"`
	Address   string    `json:"address"`
	Landmark  string    `json:"landmark,omitempty"`
	City      string    `json:"city"`
	State     string    `json:"state"`
	Pincode   string    `json:"pincode"`
	Latitude  *float64  `json:"latitude,omitempty"`
	Longitude *float64  `json:"longitude,omitempty"`
	IsDefault bool      `json:"isDefault"`
	CreatedAt time.Time `json:"createdAt"`
}

func orderResponseFromAggregate(aggregate *order.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemResponse{
			ID:           item.ID(),
			MenuItemID:   item.MenuItemID(),
			MenuItemName: item.MenuItemName(),
			Quantity:     item.Quantity(),
			UnitPrice:    item.UnitPrice().String(),
			LineTotal:    item.LineTotal().String(),
			Instructions: item.Instructions(),
		})
	}

	history := make([]OrderHistoryResponse, 0, len(aggregate.History()))
	for _, entry := range aggregate.History() {
		history = append(history, OrderHistoryResponse{
			Status:    entry.Status().String(),
			ChangedBy: string(entry.ChangedBy()),
			Notes:     entry.Notes(),
			CreatedAt: entry.CreatedAt(),
		})
	}

	return OrderResponse{
		ID:                    aggregate.ID(),
		OrderNumber:           aggregate.OrderNumber().String(),
		CustomerID:            aggregate.CustomerID(),
		RestaurantID:          aggregate.RestaurantID(),
		DeliveryAddressID:     aggregate.DeliveryAddressID(),
		DeliveryPartnerID:     aggregate.DeliveryPartnerID(),
		Status:                aggregate.Status().String(),
		PaymentMethod:         aggregate.PaymentMethod().String(),
		PaymentStatus:         aggregate.PaymentStatus().String(),
		Subtotal:              aggregate.Totals().Subtotal.String(),
		DeliveryFee:           aggregate.Totals().DeliveryFee.String(),
		Tax:                   aggregate.Totals().Tax.String(),
		Discount:              aggregate.Totals().Discount.String(),
		FinalTotal:            aggregate.Totals().FinalTotal.String(),
		SpecialInstructions:   aggregate.SpecialInstructions(),
		EstimatedDeliveryTime: aggregate.EstimatedDeliveryTime(),
		CreatedAt:             aggregate.CreatedAt(),
		UpdatedAt:             aggregate.UpdatedAt(),
		Items:                 items,
		History:               history,
	}
}

func orderResponseFromQuery(resp *queries.GetOrderQueryResponse) OrderResponse {
	items := make([]OrderItemResponse, 0, len(resp.Items))
	for _, item := range resp.Items {
		items = append(items, OrderItemResponse{
			ID:           item.ID,
			MenuItemID:   item.MenuItemID,
			MenuItemName: item.MenuItemName,
			Quantity:     item.Quantity,
			UnitPrice:    item.UnitPrice.String(),
			LineTotal:    item.LineTotal.String(),
			Instructions: item.Instructions,
		})
	}

	history := make([]OrderHistoryResponse, 0, len(resp.History))
	for _, entry := range resp.History {
		history = append(history, OrderHistoryResponse{
			Status:    entry.Status.String(),
			ChangedBy: string(entry.ChangedBy),
			Notes:     entry.Notes,
			CreatedAt: entry.CreatedAt,
		})
	}

	return OrderResponse{
		ID:                    resp.ID,
		OrderNumber:           resp.OrderNumber,
		CustomerID:            resp.CustomerID,
		RestaurantID:          resp.RestaurantID,
		DeliveryAddressID:     resp.DeliveryAddressID,
		DeliveryPartnerID:     resp.DeliveryPartnerID,
		Status:                resp.Status.String(),
		PaymentMethod:         resp.PaymentMethod.String(),
		PaymentStatus:         resp.PaymentStatus.String(),
		Subtotal:              resp.Subtotal.String(),
		DeliveryFee:           resp.DeliveryFee.String(),
		Tax:                   resp.Tax.String(),
		Discount:              resp.Discount.String(),
		FinalTotal:            resp.FinalTotal.String(),
		SpecialInstructions:   resp.SpecialInstructions,
		EstimatedDeliveryTime: resp.EstimatedDeliveryTime,
		CreatedAt:             resp.CreatedAt,
		UpdatedAt:             resp.UpdatedAt,
		Items:                 items,
		History:               history,
	}
}

func orderSummariesFromQuery(rows []queries.OrderSummaryResponse) []OrderSummaryResponse {
	summaries := make([]OrderSummaryResponse, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, OrderSummaryResponse{
			ID:            row.ID,
			OrderNumber:   row.OrderNumber,
			CustomerID:    row.CustomerID,
			RestaurantID:  row.RestaurantID,
			Status:        row.Status.String(),
			PaymentMethod: row.PaymentMethod.String(),
			PaymentStatus: row.PaymentStatus.String(),
			FinalTotal:    row.FinalTotal.String(),
			CreatedAt:     row.CreatedAt,
		})
	}
	return summaries
}

func addressResponseFromAggregate(aggregate *address.Address) AddressResponse {
	details := aggregate.Details()
	return AddressResponse{
		ID:        aggregate.ID(),
		Label:     details.Label,
		Address:   details.Address,
		Landmark:  details.Landmark,
		City:      details.City,
		State:     details.State,
		Pincode:   details.Pincode,
		Latitude:  details.Latitude,
		Longitude: details.Longitude,
		IsDefault: aggregate.IsDefault(),
		CreatedAt: aggregate.CreatedAt(),
	}
}

func addressResponsesFromQuery(rows []queries.AddressResponse) []AddressResponse {
	addresses := make([]AddressResponse, 0, len(rows))
	for _, row := range rows {
		addresses = append(addresses, AddressResponse{
			ID:        row.ID,
			Label:     row.Label,
			Address:   row.Address,
			Landmark:  row.Landmark,
			City:      row.City,
			State:     row.State,
			Pincode:   row.Pincode,
			Latitude:  row.Latitude,
			Longitude: row.Longitude,
			IsDefault: row.IsDefault,
			CreatedAt: row.CreatedAt,
		})
	}
	return addresses
}

func detailsFromRequest(req AddressRequest) address.Details {
	return address.Details{
		Label:     req.Label,
		Address:   req.Address,
		Landmark:  req.Landmark,
		City:      req.City,
		State:     req.State,
		Pincode:   req.Pincode,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	}
}
