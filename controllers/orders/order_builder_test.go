package controllers

import (
	"testing"

	"github.com/Mahesh61437/AquaticExoticaBackend/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func testProduct(id primitive.ObjectID, name string, stock int) models.Product {
	return models.Product{ID: id, Name: name, Price: "10.00", Stock: stock, IsActive: true}
}

func TestValidateOrderRequest(t *testing.T) {
	item := func(qty int, price string) orderItemRequest {
		return orderItemRequest{ProductID: primitive.NewObjectID().Hex(), Quantity: qty, Price: decimal.RequireFromString(price)}
	}
	validAddress := &inlineAddress{AddressLine1: "12 Reef Lane", City: "Chennai", Country: "India"}

	t.Run("empty item list", func(t *testing.T) {
		err := validateOrderRequest(createOrderRequest{Address: validAddress})
		assert.ErrorIs(t, err, errEmptyItems)
	})

	t.Run("quantity below one", func(t *testing.T) {
		err := validateOrderRequest(createOrderRequest{
			Items:   []orderItemRequest{item(0, "10.00")},
			Address: validAddress,
		})
		assert.ErrorContains(t, err, "quantity")
	})

	t.Run("non-positive price", func(t *testing.T) {
		err := validateOrderRequest(createOrderRequest{
			Items:   []orderItemRequest{item(1, "0.00")},
			Address: validAddress,
		})
		assert.ErrorContains(t, err, "price")
	})

	t.Run("negative shipping cost", func(t *testing.T) {
		err := validateOrderRequest(createOrderRequest{
			Items:        []orderItemRequest{item(1, "10.00")},
			ShippingCost: decimal.RequireFromString("-1.00"),
			Address:      validAddress,
		})
		assert.ErrorIs(t, err, errShippingCost)
	})

	t.Run("no address source", func(t *testing.T) {
		err := validateOrderRequest(createOrderRequest{
			Items: []orderItemRequest{item(1, "10.00")},
		})
		assert.ErrorIs(t, err, errNoAddress)
	})

	t.Run("both address sources", func(t *testing.T) {
		err := validateOrderRequest(createOrderRequest{
			Items:             []orderItemRequest{item(1, "10.00")},
			ShippingAddressID: primitive.NewObjectID().Hex(),
			Address:           validAddress,
		})
		assert.ErrorIs(t, err, errBothAddress)
	})

	t.Run("inline address missing city", func(t *testing.T) {
		err := validateOrderRequest(createOrderRequest{
			Items:   []orderItemRequest{item(1, "10.00")},
			Address: &inlineAddress{AddressLine1: "12 Reef Lane", Country: "India"},
		})
		assert.ErrorContains(t, err, "inline address")
	})

	t.Run("valid with existing address id", func(t *testing.T) {
		err := validateOrderRequest(createOrderRequest{
			Items:             []orderItemRequest{item(2, "19.99")},
			ShippingAddressID: primitive.NewObjectID().Hex(),
		})
		assert.NoError(t, err)
	})
}

func TestBuildOrderItemsTotals(t *testing.T) {
	p1 := primitive.NewObjectID()
	p2 := primitive.NewObjectID()
	p3 := primitive.NewObjectID()
	products := map[string]models.Product{
		p1.Hex(): testProduct(p1, "Neon Tetra", 100),
		p2.Hex(): testProduct(p2, "Driftwood", 10),
		p3.Hex(): testProduct(p3, "Air Pump", 3),
	}

	// 3 x 19.99 + 7 x 0.10 + 1 x 1249.50, values that drift under float math.
	items := []orderItemRequest{
		{ProductID: p1.Hex(), Quantity: 3, Price: dec(t, "19.99")},
		{ProductID: p2.Hex(), Quantity: 7, Price: dec(t, "0.10")},
		{ProductID: p3.Hex(), Quantity: 1, Price: dec(t, "1249.50")},
	}

	orderItems, total, err := buildOrderItems(items, products)
	require.NoError(t, err)
	require.Len(t, orderItems, 3)

	assert.Equal(t, "1310.17", models.FormatMoney(total))
	assert.Equal(t, "59.97", orderItems[0].TotalPrice)
	assert.Equal(t, "0.70", orderItems[1].TotalPrice)
	assert.Equal(t, "1249.50", orderItems[2].TotalPrice)

	// Snapshot fields come from the request price, not the live product price.
	assert.Equal(t, "19.99", orderItems[0].Price)
	assert.Equal(t, "Neon Tetra", orderItems[0].Name)
}

func TestBuildOrderItemsUnknownProduct(t *testing.T) {
	items := []orderItemRequest{
		{ProductID: primitive.NewObjectID().Hex(), Quantity: 1, Price: dec(t, "5.00")},
	}

	_, _, err := buildOrderItems(items, map[string]models.Product{})
	assert.ErrorContains(t, err, "not found")
}

func TestBuildOrderItemsInsufficientStock(t *testing.T) {
	id := primitive.NewObjectID()
	products := map[string]models.Product{id.Hex(): testProduct(id, "Betta", 2)}

	items := []orderItemRequest{{ProductID: id.Hex(), Quantity: 5, Price: dec(t, "8.50")}}
	_, _, err := buildOrderItems(items, products)
	assert.ErrorContains(t, err, "in stock")
}

func TestBuildOrderItemsInactiveProduct(t *testing.T) {
	id := primitive.NewObjectID()
	product := testProduct(id, "Discontinued Filter", 10)
	product.IsActive = false
	products := map[string]models.Product{id.Hex(): product}

	items := []orderItemRequest{{ProductID: id.Hex(), Quantity: 1, Price: dec(t, "8.50")}}
	_, _, err := buildOrderItems(items, products)
	assert.ErrorContains(t, err, "no longer available")
}

func TestNewOrderGrandTotalDerived(t *testing.T) {
	order := newOrder(primitive.NewObjectID(), primitive.NewObjectID(),
		[]models.OrderItem{}, dec(t, "1310.17"), dec(t, "49.00"))

	assert.Equal(t, "1310.17", order.TotalAmount)
	assert.Equal(t, "49.00", order.ShippingCost)
	assert.Equal(t, "1359.17", order.GrandTotal())
	assert.Equal(t, models.OrderStatusPending, order.Status)
}
