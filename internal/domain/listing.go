package domain

import "time"

type Listing struct {
	ID                int64
	OwnerID           int64
	Title             string
	Description       string
	Category          string
	Location          string
	Country           string
	NightlyPriceCents int64
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
