package domain

type Op string

const (
	OpLoad         Op = "load"
	OpAdd          Op = "add"
	OpRemove       Op = "remove"
	OpUpdateAmount Op = "update-amount"
	OpQuote        Op = "quote"
)

type Level string

const (
	LevelError Level = "error"
	LevelInfo  Level = "info"
)

// Notification is the single user-facing shape every cart failure is reduced to.
type Notification struct {
	CartID  string
	Op      Op
	Level   Level
	Message string
}
