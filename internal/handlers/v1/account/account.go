package account

import (
	"github.com/carson-networks/atm-server/internal/service"
)

// Account is the API response model for an account.
type Account struct {
	Number     string `json:"number" doc:"Five-digit account number"`
	HolderName string `json:"holderName" doc:"Account holder name"`
	Balance    string `json:"balance" doc:"Decimal balance with two places"`
	Status     string `json:"status" enum:"active,disabled" doc:"Account status"`
	Plan       string `json:"plan" enum:"S,N" doc:"Plan letter: S=Student, N=Non-student"`
}

func toAccount(acc service.Account) Account {
	return Account{
		Number:     acc.Number.String(),
		HolderName: acc.HolderName,
		Balance:    acc.Balance.StringFixed(2),
		Status:     acc.Status.String(),
		Plan:       acc.Plan.Letter(),
	}
}
