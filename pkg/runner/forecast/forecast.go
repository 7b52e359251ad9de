package forecast

import (
	"context"

	"github.com/ycwu/lifedash/pkg/plan"
	"github.com/ycwu/lifedash/pkg/printers"
)

// Forecast prints the yearly planning views: the stress curve, the
// quarterly timeline and the emergency protocols.
type Forecast struct{}

func (f *Forecast) Do(ctx context.Context) error {
	pp := printers.PrettyPrint{}
	pp.Forecast(plan.Forecast)
	pp.Quarters(plan.Quarters)
	pp.Protocols(plan.Protocols)
	return nil
}
