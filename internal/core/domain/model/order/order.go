package order

import (
	"errors"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// Totals is the monetary breakdown of an order. It is computed by the pricing
// calculator at placement and frozen on the aggregate; the final total is
// never client-supplied.
type Totals struct {
	Subtotal    kernel.Money
	DeliveryFee kernel.Money
	Tax         kernel.Money
	Discount    kernel.Money
	FinalTotal  kernel.Money
}

// Validate checks the breakdown's internal consistency:
// finalTotal = subtotal + deliveryFee + tax - discount.
func (t Totals) Validate() error {
	expected, err := t.Subtotal.Add(t.DeliveryFee).Add(t.Tax).Sub(t.Discount)
	if err != nil {
		return err
	}
	if !t.FinalTotal.IsEqual(expected) {
		return errs.NewValueIsInvalidErrorWithCause("totals",
			fmt.Errorf("final total %s does not equal %s", t.FinalTotal, expected))
	}
	return nil
}

// Order is the central aggregate of the marketplace: a customer's cart
// against one restaurant, priced and frozen at placement time, moving through
// the fulfilment state machine until delivered or cancelled.
//
// Order owns its line items and its status history; both live and die with
// the order and are persisted atomically with it. The delivery address is
// referenced, not copied. The delivery partner reference is nil until the
// assignment job pairs the order with a free partner.
//
// Invariants:
//   - the monetary breakdown is recomputed at placement, never client-supplied
//   - line items are immutable once written; quantity >= 1
//   - status never moves backward, and terminal states are final
//   - the history gains exactly one entry per transition, starting with the
//     initial PENDING entry, and is append-only
type Order struct {
	id                    int64
	orderNumber           kernel.OrderNumber
	customerID            int64
	restaurantID          int64
	deliveryAddressID     int64
	deliveryPartnerID     *int64
	items                 []Item
	totals                Totals
	status                Status
	paymentMethod         PaymentMethod
	paymentStatus         PaymentStatus
	specialInstructions   string
	estimatedDeliveryTime *time.Time
	createdAt             time.Time
	updatedAt             time.Time
	history               []HistoryEntry

	guard guard.ConstructorGuard
}

// NewOrder creates a freshly placed order in PENDING status with its initial
// SYSTEM history entry. All monetary amounts come pre-computed from the
// pricing calculator.
func NewOrder(
	orderNumber kernel.OrderNumber,
	customerID, restaurantID, deliveryAddressID int64,
	items []Item,
	totals Totals,
	paymentMethod PaymentMethod,
	specialInstructions string,
	estimatedDeliveryTime *time.Time,
) (*Order, error) {
	if err := errors.Join(
		orderNumber.Validate(),
		validateID("customerId", customerID),
		validateID("restaurantId", restaurantID),
		validateID("addressId", deliveryAddressID),
		totals.Validate(),
		paymentMethod.Validate(),
	); err != nil {
		return nil, err
	}

	if len(items) == 0 {
		return nil, errs.NewValueIsRequiredError("items")
	}

	initial, err := NewHistoryEntry(StatusPending, ChangedBySystem, "Order placed successfully")
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &Order{
		orderNumber:           orderNumber,
		customerID:            customerID,
		restaurantID:          restaurantID,
		deliveryAddressID:     deliveryAddressID,
		items:                 items,
		totals:                totals,
		status:                StatusPending,
		paymentMethod:         paymentMethod,
		paymentStatus:         PaymentPending,
		specialInstructions:   specialInstructions,
		estimatedDeliveryTime: estimatedDeliveryTime,
		createdAt:             now,
		updatedAt:             now,
		history:               []HistoryEntry{initial},
		guard:                 guard.NewConstructorGuard(),
	}, nil
}

// RestoreOrder reconstructs an order from persistence.
func RestoreOrder(
	id int64,
	orderNumber kernel.OrderNumber,
	customerID, restaurantID, deliveryAddressID int64,
	deliveryPartnerID *int64,
	items []Item,
	totals Totals,
	status Status,
	paymentMethod PaymentMethod,
	paymentStatus PaymentStatus,
	specialInstructions string,
	estimatedDeliveryTime *time.Time,
	createdAt, updatedAt time.Time,
	history []HistoryEntry,
) (*Order, error) {
	if err := errors.Join(
		validateID("orderId", id),
		orderNumber.Validate(),
		status.Validate(),
		paymentMethod.Validate(),
		paymentStatus.Validate(),
	); err != nil {
		return nil, err
	}

	return &Order{
		id:                    id,
		orderNumber:           orderNumber,
		customerID:            customerID,
		restaurantID:          restaurantID,
		deliveryAddressID:     deliveryAddressID,
		deliveryPartnerID:     deliveryPartnerID,
		items:                 items,
		totals:                totals,
		status:                status,
		paymentMethod:         paymentMethod,
		paymentStatus:         paymentStatus,
		specialInstructions:   specialInstructions,
		estimatedDeliveryTime: estimatedDeliveryTime,
		createdAt:             createdAt,
		updatedAt:             updatedAt,
		history:               history,
		guard:                 guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the order was created via NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// TransitionTo moves the order to next on behalf of changedBy, appending one
// history entry and bumping the update timestamp. The state machine rejects
// moves out of terminal states and backward moves; forward skips are allowed.
func (o *Order) TransitionTo(next Status, changedBy ChangedBy, notes string) error {
	if err := o.status.CanTransitionTo(next); err != nil {
		return err
	}

	entry, err := NewHistoryEntry(next, changedBy, notes)
	if err != nil {
		return err
	}

	o.status = next
	o.updatedAt = time.Now().UTC()
	o.history = append(o.history, entry)
	return nil
}

// AssignDeliveryPartner records the delivery partner (by user id) that will
// carry the order. Assignment is allowed once, and only while the order is
// still in flight.
func (o *Order) AssignDeliveryPartner(partnerUserID int64) error {
	if err := validateID("deliveryPartnerId", partnerUserID); err != nil {
		return err
	}
	if o.status.IsTerminal() {
		return errs.NewConflictError("delivery partner", string(o.status), "assigned")
	}
	if o.deliveryPartnerID != nil {
		return errs.NewConflictError("delivery partner", "assigned", "assigned")
	}

	o.deliveryPartnerID = &partnerUserID
	o.updatedAt = time.Now().UTC()
	return nil
}

// IsOwnedByCustomer reports whether the given user placed the order.
func (o *Order) IsOwnedByCustomer(userID int64) bool {
	return o.customerID == userID
}

// IsAssignedPartner reports whether the given user is the order's assigned
// delivery partner.
func (o *Order) IsAssignedPartner(userID int64) bool {
	return o.deliveryPartnerID != nil && *o.deliveryPartnerID == userID
}

// ID returns the numeric identifier, zero until persisted.
func (o *Order) ID() int64 { return o.id }

// SetID records the identifier generated by the persistence layer.
// Called by the repository once, right after the insert.
func (o *Order) SetID(id int64) { o.id = id }

// OrderNumber returns the human-readable order number.
func (o *Order) OrderNumber() kernel.OrderNumber { return o.orderNumber }

// CustomerID returns the owning customer's user id.
func (o *Order) CustomerID() int64 { return o.customerID }

// RestaurantID returns the restaurant the order was placed against.
func (o *Order) RestaurantID() int64 { return o.restaurantID }

// DeliveryAddressID returns the referenced delivery address.
func (o *Order) DeliveryAddressID() int64 { return o.deliveryAddressID }

// DeliveryPartnerID returns the assigned partner's user id, nil if unassigned.
func (o *Order) DeliveryPartnerID() *int64 { return o.deliveryPartnerID }

// Items returns a copy of the order's line items.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// Totals returns the frozen monetary breakdown.
func (o *Order) Totals() Totals { return o.totals }

// Status returns the current lifecycle state.
func (o *Order) Status() Status { return o.status }

// PaymentMethod returns the recorded payment method.
func (o *Order) PaymentMethod() PaymentMethod { return o.paymentMethod }

// PaymentStatus returns the recorded payment status.
func (o *Order) PaymentStatus() PaymentStatus { return o.paymentStatus }

// SpecialInstructions returns the optional order-level note.
func (o *Order) SpecialInstructions() string { return o.specialInstructions }

// EstimatedDeliveryTime returns the estimate computed at placement.
func (o *Order) EstimatedDeliveryTime() *time.Time { return o.estimatedDeliveryTime }

// CreatedAt returns the placement timestamp.
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// UpdatedAt returns the last mutation timestamp.
func (o *Order) UpdatedAt() time.Time { return o.updatedAt }

// History returns a copy of the append-only status trail, oldest first.
func (o *Order) History() []HistoryEntry {
	history := make([]HistoryEntry, len(o.history))
	copy(history, o.history)
	return history
}

func validateID(paramName string, id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(paramName,
			fmt.Errorf("%d is not a valid id", id))
	}
	return nil
}
