// Package orderrepo persists the order aggregate: the order row, its line
// items, and its status history. The three tables share the aggregate's
// transactional lifetime; items and history rows never change hands between
// orders.
package orderrepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order
// aggregates. Monetary amounts are stored as paise in bigint columns.
type OrderDTO struct {
	ID                    int64   `gorm:"primaryKey;autoIncrement"`
	OrderNumber           string  `gorm:"size:20;uniqueIndex"`
	CustomerID            int64   `gorm:"index"`
	RestaurantID          int64   `gorm:"index"`
	DeliveryAddressID     int64
	DeliveryPartnerID     *int64  `gorm:"index"`
	Status                string  `gorm:"size:32;index"`
	PaymentMethod         string  `gorm:"size:32"`
	PaymentStatus         string  `gorm:"size:32"`
	Subtotal              int64
	DeliveryFee           int64
	Tax                   int64
	Discount              int64
	FinalTotal            int64
	SpecialInstructions   string
	EstimatedDeliveryTime *time.Time
	CreatedAt             time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt             time.Time `gorm:"autoUpdateTime:false"`

	Items   []OrderItemDTO          `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	History []OrderStatusHistoryDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order rows.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one persisted line item with its frozen prices.
type OrderItemDTO struct {
	ID           int64 `gorm:"primaryKey;autoIncrement"`
	OrderID      int64 `gorm:"index"`
	MenuItemID   int64
	MenuItemName string
	Quantity     int
	UnitPrice    int64
	LineTotal    int64
	Instructions string
}

// TableName specifies the database table name for line items.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// OrderStatusHistoryDTO represents one persisted status-history entry.
type OrderStatusHistoryDTO struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	OrderID   int64  `gorm:"index"`
	Status    string `gorm:"size:32"`
	ChangedBy string `gorm:"size:32"`
	Notes     string
	CreatedAt time.Time `gorm:"autoCreateTime:false"`
}

// TableName specifies the database table name for history entries.
func (OrderStatusHistoryDTO) TableName() string {
	return "order_status_history"
}

// fromDomain converts an order aggregate to its database representation,
// including items and history rows that have not been persisted yet.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			ID:           item.ID(),
			OrderID:      aggregate.ID(),
			MenuItemID:   item.MenuItemID(),
			MenuItemName: item.MenuItemName(),
			Quantity:     item.Quantity(),
			UnitPrice:    item.UnitPrice().Paise(),
			LineTotal:    item.LineTotal().Paise(),
			Instructions: item.Instructions(),
		})
	}

	history := make([]OrderStatusHistoryDTO, 0, len(aggregate.History()))
	for _, entry := range aggregate.History() {
		history = append(history, OrderStatusHistoryDTO{
			ID:        entry.ID(),
			OrderID:   aggregate.ID(),
			Status:    string(entry.Status()),
			ChangedBy: string(entry.ChangedBy()),
			Notes:     entry.Notes(),
			CreatedAt: entry.CreatedAt(),
		})
	}

	return OrderDTO{
		ID:                    aggregate.ID(),
		OrderNumber:           aggregate.OrderNumber().String(),
		CustomerID:            aggregate.CustomerID(),
		RestaurantID:          aggregate.RestaurantID(),
		DeliveryAddressID:     aggregate.DeliveryAddressID(),
		DeliveryPartnerID:     aggregate.DeliveryPartnerID(),
		Status:                string(aggregate.Status()),
		PaymentMethod:         string(aggregate.PaymentMethod()),
		PaymentStatus:         string(aggregate.PaymentStatus()),
		Subtotal:              aggregate.Totals().Subtotal.Paise(),
		DeliveryFee:           aggregate.Totals().DeliveryFee.Paise(),
		Tax:                   aggregate.Totals().Tax.Paise(),
		Discount:              aggregate.Totals().Discount.Paise(),
		FinalTotal:            aggregate.Totals().FinalTotal.Paise(),
		SpecialInstructions:   aggregate.SpecialInstructions(),
		EstimatedDeliveryTime: aggregate.EstimatedDeliveryTime(),
		CreatedAt:             aggregate.CreatedAt(),
		UpdatedAt:             aggregate.UpdatedAt(),
		Items:                 items,
		History:               history,
	}
}

// toDomain converts a database DTO back to an order aggregate.
func toDomain(dto OrderDTO) (*order.Order, error) {
	orderNumber, err := kernel.OrderNumberFromString(dto.OrderNumber)
	if err != nil {
		return nil, err
	}

	totals, err := totalsFromDTO(dto)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		unitPrice, priceErr := kernel.NewMoneyFromPaise(itemDTO.UnitPrice)
		if priceErr != nil {
			return nil, priceErr
		}
		lineTotal, totalErr := kernel.NewMoneyFromPaise(itemDTO.LineTotal)
		if totalErr != nil {
			return nil, totalErr
		}

		item, itemErr := order.RestoreItem(itemDTO.ID, itemDTO.MenuItemID, itemDTO.MenuItemName,
			itemDTO.Quantity, unitPrice, lineTotal, itemDTO.Instructions)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	history := make([]order.HistoryEntry, 0, len(dto.History))
	for _, entryDTO := range dto.History {
		entry, entryErr := order.RestoreHistoryEntry(entryDTO.ID, order.Status(entryDTO.Status),
			order.ChangedBy(entryDTO.ChangedBy), entryDTO.Notes, entryDTO.CreatedAt)
		if entryErr != nil {
			return nil, entryErr
		}
		history = append(history, entry)
	}

	return order.RestoreOrder(
		dto.ID,
		orderNumber,
		dto.CustomerID,
		dto.RestaurantID,
		dto.DeliveryAddressID,
		dto.DeliveryPartnerID,
		items,
		totals,
		order.Status(dto.Status),
		order.PaymentMethod(dto.PaymentMethod),
		order.PaymentStatus(dto.PaymentStatus),
		dto.SpecialInstructions,
		dto.EstimatedDeliveryTime,
		dto.CreatedAt,
		dto.UpdatedAt,
		history,
	)
}

func totalsFromDTO(dto OrderDTO) (order.Totals, error) {
	subtotal, err := kernel.NewMoneyFromPaise(dto.Subtotal)
	if err != nil {
		return order.Totals{}, err
	}
	deliveryFee, err := kernel.NewMoneyFromPaise(dto.DeliveryFee)
	if err != nil {
		return order.Totals{}, err
	}
	tax, err := kernel.NewMoneyFromPaise(dto.Tax)
	if err != nil {
		return order.Totals{}, err
	}
	discount, err := kernel.NewMoneyFromPaise(dto.Discount)
	if err != nil {
		return order.Totals{}, err
	}
	finalTotal, err := kernel.NewMoneyFromPaise(dto.FinalTotal)
	if err != nil {
		return order.Totals{}, err
	}

	return order.Totals{
		Subtotal:    subtotal,
		DeliveryFee: deliveryFee,
		Tax:         tax,
		Discount:    discount,
		FinalTotal:  finalTotal,
	}, nil
}
