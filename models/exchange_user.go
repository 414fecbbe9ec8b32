package models

import "time"

// ExchangeUser is an exchange account created through the admin gateway.
type ExchangeUser struct {
	UID       int64     `json:"uid"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}
