package transaction

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetbadger/budgetbadger/internal/transaction"
)

type transactionResponse struct {
	ID        uuid.UUID            `json:"id"`
	Username  string               `json:"username"`
	Kind      transaction.Kind     `json:"kind"`
	Category  transaction.Category `json:"category"`
	Amount    decimal.Decimal      `json:"amount"`
	Date      time.Time            `json:"date"`
	Note      string               `json:"note,omitempty"`
	CreatedAt time.Time            `json:"created_at"`
}

func toResponse(tx *transaction.Transaction) transactionResponse {
	return transactionResponse{
		ID:        tx.ID,
		Username:  tx.Username,
		Kind:      tx.Kind,
		Category:  tx.Category,
		Amount:    tx.Amount,
		Date:      tx.Date,
		Note:      tx.Note,
		CreatedAt: tx.CreatedAt,
	}
}

func toResponseList(txs []*transaction.Transaction) []transactionResponse {
	resp := make([]transactionResponse, len(txs))
	for i, tx := range txs {
		resp[i] = toResponse(tx)
	}

	return resp
}
