package repository

import (
	"context"
	"errors"

	"github.com/Domenick1991/staybooking/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// WalletRepository is read-only for now; the transaction ledger is owned
// by a separate payments service.
type WalletRepository interface {
	GetByOwner(ctx context.Context, ownerID int64) (*domain.Wallet, error)
}

type PGWalletRepository struct {
	db *pgxpool.Pool
}

func NewWalletRepository(db *pgxpool.Pool) WalletRepository {
	return &PGWalletRepository{db: db}
}

func (r *PGWalletRepository) GetByOwner(ctx context.Context, ownerID int64) (*domain.Wallet, error) {
	row := r.db.QueryRow(ctx, `SELECT id, owner_id, coins, created_at, updated_at FROM wallets WHERE owner_id=$1`, ownerID)
	var w domain.Wallet
	if err := row.Scan(&w.ID, &w.OwnerID, &w.Coins, &w.CreatedAt, &w.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrWalletNotFound
		}
		return nil, err
	}

	rows, err := r.db.Query(ctx, `SELECT id, type, amount_cents, description, created_at
		FROM wallet_transactions WHERE wallet_id=$1 ORDER BY created_at DESC`, w.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var t domain.WalletTransaction
		if err := rows.Scan(&t.ID, &t.Type, &t.AmountCents, &t.Description, &t.CreatedAt); err != nil {
			return nil, err
		}
		w.Transactions = append(w.Transactions, t)
	}
	return &w, rows.Err()
}

var _ WalletRepository = (*PGWalletRepository)(nil)
