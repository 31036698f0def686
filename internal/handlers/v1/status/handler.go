package status

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/carson-networks/atm-server/internal/logging"
	"github.com/carson-networks/atm-server/internal/operator/actions"
)

const probeTimeout = 2 * time.Second

type processor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// Handler reports whether the operator worker is still taking actions.
type Handler struct {
	Operator processor
}

func NewHandler(op processor) Handler {
	return Handler{Operator: op}
}

type statusBody struct {
	Status  string `json:"status"`
	Pending int    `json:"pending"`
}

func (h *Handler) Handler(w http.ResponseWriter, req *http.Request, logData *logging.LogData) error {
	if req.Method != http.MethodGet {
		w.WriteHeader(http.StatusBadRequest)
		return errors.New("status: method not GET")
	}

	ctx, cancel := context.WithTimeout(req.Context(), probeTimeout)
	defer cancel()

	probe := &actions.ListPending{}
	stopTiming := logData.AddTiming("operatorProbeMs")
	err := h.Operator.Process(ctx, probe)
	stopTiming()
	if err != nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		return err
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	return json.NewEncoder(w).Encode(statusBody{Status: "ok", Pending: len(probe.Records)})
}
