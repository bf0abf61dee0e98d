package importcsv

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetbadger/budgetbadger/internal/achievement"
	"github.com/budgetbadger/budgetbadger/internal/importer"
	"github.com/budgetbadger/budgetbadger/internal/transaction"
)

const maxUploadSize = 10 << 20

type Handler struct {
	importSvc *importer.Service
	txSvc     *transaction.Service
	scoreSvc  *achievement.Service
}

func NewHandler(importSvc *importer.Service, txSvc *transaction.Service, scoreSvc *achievement.Service) *Handler {
	return &Handler{
		importSvc: importSvc,
		txSvc:     txSvc,
		scoreSvc:  scoreSvc,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.importCSV)
}

type transactionResponse struct {
	ID       uuid.UUID            `json:"id"`
	Kind     transaction.Kind     `json:"kind"`
	Category transaction.Category `json:"category"`
	Amount   decimal.Decimal      `json:"amount"`
	Date     time.Time            `json:"date"`
	Note     string               `json:"note,omitempty"`
}

type importSuccessResponse struct {
	Imported     int                   `json:"imported"`
	Transactions []transactionResponse `json:"transactions"`
}

func (h *Handler) importCSV(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	username := r.FormValue("username")
	if username == "" {
		http.Error(w, "username field is required", http.StatusBadRequest)
		return
	}

	format := importer.Format(r.FormValue("format"))
	if format == "" {
		format = importer.FormatStatement
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	params, err := h.importSvc.Import(format, username, file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	txs, err := h.txSvc.CreateBatch(r.Context(), params)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if _, err := h.scoreSvc.RecomputeUser(r.Context(), username); err != nil {
		slog.Warn("failed to recompute achievements", "username", username, "error", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toSuccessResponse(txs)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func toSuccessResponse(txs []*transaction.Transaction) importSuccessResponse {
	responses := make([]transactionResponse, 0, len(txs))
	for _, tx := range txs {
		responses = append(responses, transactionResponse{
			ID:       tx.ID,
			Kind:     tx.Kind,
			Category: tx.Category,
			Amount:   tx.Amount,
			Date:     tx.Date,
			Note:     tx.Note,
		})
	}

	return importSuccessResponse{
		Imported:     len(txs),
		Transactions: responses,
	}
}
