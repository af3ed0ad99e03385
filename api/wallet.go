package api

import (
	"net/http"
	"time"

	"github.com/Domenick1991/staybooking/internal/repository"
	"github.com/gin-gonic/gin"
)

type WalletHandler struct {
	wallets repository.WalletRepository
}

type walletTransactionResponse struct {
	ID          int64  `json:"id"`
	Type        string `json:"type"`
	AmountCents int64  `json:"amount_cents"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at"`
}

type walletResponse struct {
	Coins        int64                       `json:"coins"`
	Transactions []walletTransactionResponse `json:"transactions"`
}

func NewWalletHandler(wallets repository.WalletRepository) *WalletHandler {
	return &WalletHandler{wallets: wallets}
}

func (h *WalletHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.get)
	router.POST("/withdraw", h.withdraw)
}

func (h *WalletHandler) get(c *gin.Context) {
	userID, ok := actingUser(c)
	if !ok {
		return
	}

	wallet, err := h.wallets.GetByOwner(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := walletResponse{
		Coins:        wallet.Coins,
		Transactions: make([]walletTransactionResponse, 0, len(wallet.Transactions)),
	}
	for _, t := range wallet.Transactions {
		resp.Transactions = append(resp.Transactions, walletTransactionResponse{
			ID:          t.ID,
			Type:        string(t.Type),
			AmountCents: t.AmountCents,
			Description: t.Description,
			CreatedAt:   t.CreatedAt.Format(time.RFC3339),
		})
	}
	c.JSON(http.StatusOK, resp)
}

// withdraw is a placeholder; the payouts flow lives in the payments
// service and is not wired up yet.
func (h *WalletHandler) withdraw(c *gin.Context) {
	if _, ok := actingUser(c); !ok {
		return
	}
	c.JSON(http.StatusNotImplemented, gin.H{"error": "withdraw feature coming soon"})
}
