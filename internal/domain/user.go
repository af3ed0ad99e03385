package domain

import "time"

type User struct {
	ID        int64
	Username  string
	Email     string
	Phone     string
	CreatedAt time.Time
}
