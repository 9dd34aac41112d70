package dto

// CreateFundMovementRequest is the payload for recording a petty-cash movement
type CreateFundMovementRequest struct {
	Date        string `json:"date" validate:"required,calendar_date"`
	Kind        string `json:"kind" validate:"required,entry_kind"`
	Amount      string `json:"amount" validate:"required,money_amount"`
	Description string `json:"description" validate:"required,min=1,max=255"`
}
