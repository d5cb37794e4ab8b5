package models

type Expense struct {
	ID          int64   `json:"id"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
	Approved    bool    `json:"approved"`
	AddedBy     *User   `json:"addedBy,omitempty"`
	AddedByID   *int64  `json:"addedById,omitempty"`
}
