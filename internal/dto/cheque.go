package dto

// CreateChequeRequest is the payload for registering an issued cheque
type CreateChequeRequest struct {
	Number      string `json:"number" validate:"required,min=1,max=50"`
	Amount      string `json:"amount" validate:"required,money_amount"`
	Beneficiary string `json:"beneficiary" validate:"required,min=1,max=150"`
	IssueDate   string `json:"issue_date" validate:"required,calendar_date"`
}

// ChequeQuery filters the cheque register
type ChequeQuery struct {
	Status string `query:"status" validate:"omitempty,cheque_status"`
}
