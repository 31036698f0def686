package transaction

import (
	"context"
	"fmt"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/atm-server/internal/logging"
	"github.com/carson-networks/atm-server/internal/service"
)

// ListPendingOutput is the Huma output for listing buffered records.
type ListPendingOutput struct {
	Body struct {
		Transactions []Transaction `json:"transactions" doc:"Records buffered for the next flush, in order"`
	}
}

type pendingLister interface {
	ListPending(ctx context.Context) ([]service.Transaction, error)
}

// ListPendingHandler handles GET /v1/transaction/pending.
type ListPendingHandler struct {
	TransactionService pendingLister
}

func NewListPendingHandler(svc pendingLister) *ListPendingHandler {
	return &ListPendingHandler{TransactionService: svc}
}

// Register registers the pending transactions endpoint with the Huma API.
func (h *ListPendingHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-pending-transactions",
		Method:      http.MethodGet,
		Path:        "/v1/transaction/pending",
		Summary:     "List pending transactions",
		Description: "Returns the current session's records that have not been flushed yet.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *ListPendingHandler) handle(ctx context.Context, _ *struct{}) (*ListPendingOutput, error) {
	logData := logging.GetLogData(ctx)

	pending, err := h.TransactionService.ListPending(ctx)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list pending transactions", err)
	}
	if logData != nil {
		logData.AddData("pendingCount", len(pending))
	}

	out := &ListPendingOutput{}
	out.Body.Transactions = make([]Transaction, len(pending))
	for i, tx := range pending {
		out.Body.Transactions[i] = Transaction{
			Line:          tx.Line,
			Code:          fmt.Sprintf("%02d", int(tx.Code)),
			Kind:          tx.Code.String(),
			HolderName:    tx.HolderName,
			AccountNumber: tx.AccountNumber.String(),
			Amount:        tx.Amount.StringFixed(2),
			Extra:         tx.Extra,
			Raw:           tx.Raw,
		}
	}
	return out, nil
}
