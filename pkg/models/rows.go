// Package models defines the typed rows produced by the dump mappers
// and the document shape handed to the store.
package models

import "time"

// Document is one store write: the document key plus the fields to
// merge. The identity is never part of Fields.
type Document struct {
	ID     string
	Fields map[string]interface{}
}

// Client mirrors the positional schema of the `client` dump table:
// (client_id, name, gender, age, username, password).
type Client struct {
	ID       string
	Name     string
	Gender   string
	Age      int
	Username string
	Password string
}

func (c Client) Doc() Document {
	return Document{
		ID: c.ID,
		Fields: map[string]interface{}{
			"name":     c.Name,
			"gender":   c.Gender,
			"age":      c.Age,
			"username": c.Username,
			"password": c.Password,
		},
	}
}

// Product mirrors the positional schema of the `product` dump table:
// (product_id, order_no, product_name, description, price_min, price_max).
// Description and PriceMax are nullable in the source.
type Product struct {
	ID          string
	OrderNo     string
	ProductName string
	Description *string
	PriceMin    float64
	PriceMax    *float64
}

func (p Product) Doc() Document {
	fields := map[string]interface{}{
		"order_no":     p.OrderNo,
		"product_name": p.ProductName,
		"description":  nil,
		"price_min":    p.PriceMin,
		"price_max":    nil,
	}
	if p.Description != nil {
		fields["description"] = *p.Description
	}
	if p.PriceMax != nil {
		fields["price_max"] = *p.PriceMax
	}
	return Document{ID: p.ID, Fields: fields}
}

// PurchaseRecord mirrors the positional schema of the
// `user_purchase_record` dump table:
// (record_id, client_id, product_id, order_date, quantity, amount).
type PurchaseRecord struct {
	ID        string
	ClientID  int
	ProductID int
	OrderDate time.Time
	Quantity  int
	Amount    float64
}

func (r PurchaseRecord) Doc() Document {
	return Document{
		ID: r.ID,
		Fields: map[string]interface{}{
			"client_id":  r.ClientID,
			"product_id": r.ProductID,
			"order_date": r.OrderDate,
			"quantity":   r.Quantity,
			"amount":     r.Amount,
		},
	}
}
