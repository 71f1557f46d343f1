package etl

import (
	"fmt"

	"github.com/nbshop/dumpmigrate/pkg/models"
	"github.com/nbshop/dumpmigrate/pkg/utils"
)

// Row mappers turn one decoded dump tuple into a typed row. The tuple
// order is the source table's column order; a wrong field count means
// the source schema moved, so it fails loudly instead of unpacking
// garbage.

func MapClient(fields []interface{}) (models.Client, error) {
	if len(fields) != 6 {
		return models.Client{}, fmt.Errorf("client row has %d fields, want 6", len(fields))
	}
	age, err := utils.ToInt(fields[3])
	if err != nil {
		return models.Client{}, fmt.Errorf("client age: %w", err)
	}
	return models.Client{
		ID:       utils.Stringify(fields[0]),
		Name:     utils.Stringify(fields[1]),
		Gender:   utils.Stringify(fields[2]),
		Age:      age,
		Username: utils.Stringify(fields[4]),
		Password: utils.Stringify(fields[5]),
	}, nil
}

func MapProduct(fields []interface{}) (models.Product, error) {
	if len(fields) != 6 {
		return models.Product{}, fmt.Errorf("product row has %d fields, want 6", len(fields))
	}
	priceMin, err := utils.ToFloat(fields[4])
	if err != nil {
		return models.Product{}, fmt.Errorf("product price_min: %w", err)
	}

	p := models.Product{
		ID:          utils.Stringify(fields[0]),
		OrderNo:     utils.Stringify(fields[1]),
		ProductName: utils.Stringify(fields[2]),
		PriceMin:    priceMin,
	}
	if fields[3] != nil {
		desc := utils.Stringify(fields[3])
		p.Description = &desc
	}
	if fields[5] != nil {
		priceMax, err := utils.ToFloat(fields[5])
		if err != nil {
			return models.Product{}, fmt.Errorf("product price_max: %w", err)
		}
		p.PriceMax = &priceMax
	}
	return p, nil
}

func MapPurchaseRecord(fields []interface{}) (models.PurchaseRecord, error) {
	if len(fields) != 6 {
		return models.PurchaseRecord{}, fmt.Errorf("purchase record row has %d fields, want 6", len(fields))
	}
	clientID, err := utils.ToInt(fields[1])
	if err != nil {
		return models.PurchaseRecord{}, fmt.Errorf("purchase record client_id: %w", err)
	}
	productID, err := utils.ToInt(fields[2])
	if err != nil {
		return models.PurchaseRecord{}, fmt.Errorf("purchase record product_id: %w", err)
	}
	orderDate, err := utils.ToDate(fields[3])
	if err != nil {
		return models.PurchaseRecord{}, fmt.Errorf("purchase record order_date: %w", err)
	}
	quantity, err := utils.ToInt(fields[4])
	if err != nil {
		return models.PurchaseRecord{}, fmt.Errorf("purchase record quantity: %w", err)
	}
	amount, err := utils.ToFloat(fields[5])
	if err != nil {
		return models.PurchaseRecord{}, fmt.Errorf("purchase record amount: %w", err)
	}
	return models.PurchaseRecord{
		ID:        utils.Stringify(fields[0]),
		ClientID:  clientID,
		ProductID: productID,
		OrderDate: orderDate,
		Quantity:  quantity,
		Amount:    amount,
	}, nil
}
