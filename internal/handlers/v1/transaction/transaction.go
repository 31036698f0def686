package transaction

// Transaction is the API response model for a buffered transaction record.
type Transaction struct {
	Line          int    `json:"line" doc:"1-based position in the next flushed file"`
	Code          string `json:"code" doc:"Two-digit operation code"`
	Kind          string `json:"kind" doc:"Operation name"`
	HolderName    string `json:"holderName" doc:"Holder name as recorded"`
	AccountNumber string `json:"accountNumber" doc:"Five-digit account number"`
	Amount        string `json:"amount" doc:"Decimal amount with two places"`
	Extra         string `json:"extra,omitempty" doc:"Payee code, destination account or plan letter"`
	Raw           string `json:"raw" doc:"Fixed-width record as it will be written"`
}
