package session

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/atm-server/internal/service"
)

// Totals are the running amounts a standard session has used against its caps.
type Totals struct {
	Withdraw string `json:"withdraw"`
	Transfer string `json:"transfer"`
	PayBill  string `json:"paybill"`
}

// Session is the API response model for the terminal's login state.
type Session struct {
	LoggedIn bool    `json:"loggedIn"`
	Role     string  `json:"role,omitempty" enum:"admin,standard"`
	User     string  `json:"user,omitempty"`
	Totals   *Totals `json:"totals,omitempty"`
}

type GetSessionOutput struct {
	Body Session
}

type sessionGetter interface {
	GetSession(ctx context.Context) (*service.Session, error)
}

// GetSessionHandler handles GET /v1/session.
type GetSessionHandler struct {
	AccountService sessionGetter
}

func NewGetSessionHandler(svc sessionGetter) *GetSessionHandler {
	return &GetSessionHandler{AccountService: svc}
}

func (h *GetSessionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-session",
		Method:      http.MethodGet,
		Path:        "/v1/session",
		Summary:     "Get session",
		Tags:        []string{"Session"},
	}, h.handle)
}

func (h *GetSessionHandler) handle(ctx context.Context, _ *struct{}) (*GetSessionOutput, error) {
	s, err := h.AccountService.GetSession(ctx)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to read session", err)
	}

	out := &GetSessionOutput{Body: Session{LoggedIn: s.LoggedIn}}
	if !s.LoggedIn {
		return out, nil
	}
	out.Body.Role = s.Role.String()
	out.Body.User = s.User
	out.Body.Totals = &Totals{
		Withdraw: s.Totals.Withdraw.StringFixed(2),
		Transfer: s.Totals.Transfer.StringFixed(2),
		PayBill:  s.Totals.PayBill.StringFixed(2),
	}
	return out, nil
}
