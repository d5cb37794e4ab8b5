package requests

type CreateExpense struct {
	Description string  `json:"description" validate:"required"`
	Amount      float64 `json:"amount" validate:"gt=0"`
	Date        string  `json:"date" validate:"required"`
	AddedByID   *int64  `json:"addedById,omitempty"`
}

// UpdateExpense carries only the fields being changed.
type UpdateExpense struct {
	Description *string  `json:"description,omitempty" validate:"omitempty,min=1"`
	Amount      *float64 `json:"amount,omitempty" validate:"omitempty,gt=0"`
	Date        *string  `json:"date,omitempty" validate:"omitempty,min=1"`
	AddedByID   *int64   `json:"addedById,omitempty"`
}
