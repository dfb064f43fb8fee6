package broker

import (
	"fmt"

	"TradeSentinel/internal/model"
)

// Router executes a recommendation as an order in either paper or live mode.
// Paper mode never performs a network call.
type Router struct {
	Mode model.Mode
	KIS  *KISClient
	Qty  int
}

// NewRouter creates a Router. The KIS client is only consulted in live mode.
func NewRouter(mode model.Mode, kis *KISClient, qty int) *Router {
	if qty <= 0 {
		qty = 1
	}
	return &Router{Mode: mode, KIS: kis, Qty: qty}
}

// Route builds one order from a non-Hold recommendation and executes it. The
// returned result is always populated; execution failures are reported, never
// raised.
func (r *Router) Route(rec model.Recommendation, symbol string) (model.Order, model.ExecutionResult) {
	side := model.SideBuy
	if rec.Action == model.ActionExit {
		side = model.SideSell
	}
	order := model.Order{
		Symbol: symbol,
		Side:   side,
		Qty:    r.Qty,
		Price:  rec.Price,
		Mode:   r.Mode,
	}

	if r.Mode != model.ModeLive {
		return order, model.ExecutionResult{
			Success: true,
			Message: fmt.Sprintf("[paper] %s order filled (simulated)", side),
		}
	}
	if r.KIS == nil {
		return order, model.ExecutionResult{Success: false, Message: "live mode without brokerage client"}
	}
	return order, r.KIS.PlaceOrder(order)
}
