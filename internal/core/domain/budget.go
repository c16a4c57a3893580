package domain

import "github.com/shopspring/decimal"

// SplitBudget divides budget across channels. When allocation holds a
// positive percentage for every channel, shares are proportional to those
// percentages renormalized over the given channels; otherwise the budget is
// split evenly. Amounts are rounded down to cents and the remainder goes to
// the first channel, so the parts always sum to budget. Repeated channels
// receive a single share.
func SplitBudget(budget decimal.Decimal, channels []Channel, allocation map[Channel]float64) map[Channel]decimal.Decimal {
	channels = UniqueChannels(channels)
	out := make(map[Channel]decimal.Decimal, len(channels))
	if len(channels) == 0 {
		return out
	}

	weights := make([]decimal.Decimal, len(channels))
	total := decimal.Zero
	useAllocation := len(allocation) > 0
	for i, c := range channels {
		pct, ok := allocation[c]
		if !ok || pct <= 0 {
			useAllocation = false
			break
		}
		weights[i] = decimal.NewFromFloat(pct)
		total = total.Add(weights[i])
	}
	if !useAllocation {
		total = decimal.NewFromInt(int64(len(channels)))
		for i := range weights {
			weights[i] = decimal.NewFromInt(1)
		}
	}

	assigned := decimal.Zero
	for i, c := range channels {
		share := budget.Mul(weights[i]).Div(total).RoundFloor(2)
		out[c] = share
		assigned = assigned.Add(share)
	}
	out[channels[0]] = out[channels[0]].Add(budget.Sub(assigned))
	return out
}
