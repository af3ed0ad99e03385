package domain

import "time"

type TransactionType string

const (
	TransactionCredit TransactionType = "CREDIT"
	TransactionDebit  TransactionType = "DEBIT"
)

type WalletTransaction struct {
	ID          int64
	Type        TransactionType
	AmountCents int64
	Description string
	CreatedAt   time.Time
}

type Wallet struct {
	ID           int64
	OwnerID      int64
	Coins        int64
	Transactions []WalletTransaction
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
