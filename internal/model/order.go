package model

// Side distinguishes buy from sell orders.
type Side string

const (
	SideBuy  Side = "buy"
	SideSell Side = "sell"
)

// Mode selects the execution path.
type Mode string

const (
	ModePaper Mode = "paper"
	ModeLive  Mode = "live"
)

// Order is a single order request. Immutable once constructed; one Order is
// built per non-Hold recommendation.
type Order struct {
	Symbol string
	Side   Side
	Qty    int
	Price  float64
	Mode   Mode
}

// ExecutionResult is the normalized acknowledgement from the order router.
// The message is opaque and used for reporting only.
type ExecutionResult struct {
	Success bool
	Message string
}
