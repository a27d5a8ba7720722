package http

import (
	"customerorder/internal/core/domain/model/customer"
	"customerorder/internal/core/domain/model/order"
	"customerorder/internal/generated/servers"
)

func toCustomerResponse(c *customer.Customer) servers.Customer {
	return servers.Customer{
		Id:           c.ID().String(),
		FullName:     c.FullName(),
		EmailAddress: c.EmailAddress(),
		PhoneNumber:  c.PhoneNumber(),
		CreatedAt:    c.CreatedAt(),
		UpdatedAt:    c.UpdatedAt(),
	}
}

func toOrderResponse(o *order.Order) servers.Order {
	var status *servers.OrderStatus
	if o.Status().IsSet() {
		s := servers.OrderStatus(o.Status().String())
		status = &s
	}

	return servers.Order{
		Id:         o.ID().String(),
		Item:       o.Item(),
		Price:      o.Price(),
		CustomerId: o.CustomerID().String(),
		Status:     status,
		CreatedAt:  o.CreatedAt(),
		UpdatedAt:  o.UpdatedAt(),
	}
}
