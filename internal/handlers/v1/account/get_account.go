package account

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/atm-server/internal/bankerr"
	"github.com/carson-networks/atm-server/internal/service"
	"github.com/carson-networks/atm-server/internal/storage/account"
)

// GetAccountInput is the Huma input for reading one account.
type GetAccountInput struct {
	Number string `path:"number" maxLength:"5" doc:"Account number, with or without leading zeros"`
}

// GetAccountOutput is the Huma output for reading one account.
type GetAccountOutput struct {
	Body Account
}

type accountGetter interface {
	GetAccount(ctx context.Context, number account.Number) (*service.Account, error)
}

// GetAccountHandler handles GET /v1/account/{number}.
type GetAccountHandler struct {
	AccountService accountGetter
}

func NewGetAccountHandler(svc accountGetter) *GetAccountHandler {
	return &GetAccountHandler{AccountService: svc}
}

func (h *GetAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-account",
		Method:      http.MethodGet,
		Path:        "/v1/account/{number}",
		Summary:     "Get account",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *GetAccountHandler) handle(ctx context.Context, input *GetAccountInput) (*GetAccountOutput, error) {
	number, err := account.ParseNumber(input.Number)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid account number", err)
	}

	acc, err := h.AccountService.GetAccount(ctx, number)
	if errors.Is(err, bankerr.ErrNotFound) {
		return nil, huma.NewError(http.StatusNotFound, "account not found")
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to get account", err)
	}

	return &GetAccountOutput{Body: toAccount(*acc)}, nil
}
