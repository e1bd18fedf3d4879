package models

import "time"

// Operation tags accepted on calculation records.
const (
	OperationAdd      = "add"
	OperationSubtract = "subtract"
	OperationMultiply = "multiply"
	OperationDivide   = "divide"
)

type Calculation struct {
	ID        string
	UserID    string
	A         float64
	B         float64
	Operation string
	Result    float64
	CreatedAt time.Time
	UpdatedAt time.Time
}
