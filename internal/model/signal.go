package model

// Action is the discrete trade recommendation.
type Action string

const (
	ActionEnter Action = "ENTER"
	ActionExit  Action = "EXIT"
	ActionHold  Action = "HOLD"
)

// Recommendation is the output of the signal policy for a single bar.
// TakeProfit and StopLoss are set only for ActionEnter.
type Recommendation struct {
	Action     Action
	Price      float64 // reference close price, 0 for Hold
	TakeProfit float64
	StopLoss   float64
}
