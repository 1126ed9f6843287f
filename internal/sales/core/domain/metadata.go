package domain

import "time"

// Store is a filter option for the dashboard store selector.
type Store struct {
	ID     int64
	Name   string
	City   string
	State  string
	Active bool
	Own    bool
}

type ChannelType string

const (
	ChannelInStore  ChannelType = "P"
	ChannelDelivery ChannelType = "D"
)

type Channel struct {
	ID   int64
	Name string
	Type ChannelType
}

// Customer is a customer listing entry. LastPurchase is nil for customers
// without sales.
type Customer struct {
	ID           string
	Name         string
	Email        string
	Phone        string
	LastPurchase *time.Time
}
