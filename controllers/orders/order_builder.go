package controllers

import (
	"errors"
	"fmt"

	"github.com/Mahesh61437/AquaticExoticaBackend/models"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	errEmptyItems   = errors.New("order must contain at least one item")
	errNoAddress    = errors.New("either shippingAddressId or an inline address is required")
	errBothAddress  = errors.New("provide shippingAddressId or an inline address, not both")
	errShippingCost = errors.New("shipping cost cannot be negative")
)

type orderItemRequest struct {
	ProductID string          `json:"productId"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

type inlineAddress struct {
	AddressLine1   string `json:"addressLine1"`
	AddressLine2   string `json:"addressLine2"`
	City           string `json:"city"`
	State          string `json:"state"`
	ZipCode        string `json:"zipCode"`
	Country        string `json:"country"`
	RecipientName  string `json:"recipientName"`
	RecipientPhone string `json:"recipientPhone"`
	IsDefault      bool   `json:"isDefault"`
}

type createOrderRequest struct {
	Items             []orderItemRequest `json:"items"`
	ShippingCost      decimal.Decimal    `json:"shippingCost"`
	ShippingAddressID string             `json:"shippingAddressId"`
	Address           *inlineAddress     `json:"address"`
}

// validateOrderRequest enforces the checkout preconditions before anything
// is written: non-empty items, sane quantities and prices, exactly one
// address source, and a complete inline address when that path is used.
func validateOrderRequest(req createOrderRequest) error {
	if len(req.Items) == 0 {
		return errEmptyItems
	}
	for i, item := range req.Items {
		if item.ProductID == "" {
			return fmt.Errorf("item %d: productId is required", i)
		}
		if item.Quantity < 1 {
			return fmt.Errorf("item %d: quantity must be at least 1", i)
		}
		if item.Price.Sign() <= 0 {
			return fmt.Errorf("item %d: price must be a positive amount", i)
		}
	}
	if req.ShippingCost.Sign() < 0 {
		return errShippingCost
	}
	if req.ShippingAddressID == "" && req.Address == nil {
		return errNoAddress
	}
	if req.ShippingAddressID != "" && req.Address != nil {
		return errBothAddress
	}
	if req.Address != nil {
		if req.Address.AddressLine1 == "" || req.Address.City == "" || req.Address.Country == "" {
			return errors.New("inline address requires addressLine1, city and country")
		}
	}
	return nil
}

// buildOrderItems turns the requested lines into snapshot items and returns
// the exact order total. The caller-supplied unit price is the canonical
// price source (price-locked checkout); products are still checked for
// existence and availability.
func buildOrderItems(items []orderItemRequest, products map[string]models.Product) ([]models.OrderItem, decimal.Decimal, error) {
	orderItems := make([]models.OrderItem, 0, len(items))
	total := decimal.Zero

	for _, item := range items {
		product, ok := products[item.ProductID]
		if !ok {
			return nil, decimal.Zero, fmt.Errorf("product %s not found", item.ProductID)
		}
		if !product.IsActive {
			return nil, decimal.Zero, fmt.Errorf("product %q is no longer available", product.Name)
		}
		if product.Stock < item.Quantity {
			return nil, decimal.Zero, fmt.Errorf("product %q has only %d in stock", product.Name, product.Stock)
		}

		lineTotal := item.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		orderItems = append(orderItems, models.OrderItem{
			ProductID:  product.ID,
			Name:       product.Name,
			Quantity:   item.Quantity,
			Price:      models.FormatMoney(item.Price),
			TotalPrice: models.FormatMoney(lineTotal),
		})
		total = total.Add(lineTotal)
	}

	return orderItems, total, nil
}

// newOrder assembles the order document. totalAmount and shippingCost are
// the only stored summands; the grand total is always derived from them.
func newOrder(userID, addressID primitive.ObjectID, items []models.OrderItem, total, shippingCost decimal.Decimal) models.Order {
	return models.Order{
		ID:                primitive.NewObjectID(),
		UserID:            userID,
		ShippingAddressID: addressID,
		Items:             items,
		TotalAmount:       models.FormatMoney(total),
		ShippingCost:      models.FormatMoney(shippingCost),
		Status:            models.OrderStatusPending,
	}
}
