package service

import (
	"fmt"
	"math"
	"strings"
	"time"

	"carrier-sales/internal/core/geo"
	loaddomain "carrier-sales/internal/features/loads/domain"
	"carrier-sales/internal/features/negotiation/domain"
)

const pickupLayout = "2006-01-02 15:04 UTC"

// evaluation is the per-field outcome plus the rate we would counter with.
type evaluation struct {
	fields      []domain.FieldResult
	counterRate *float64
}

// evaluate judges each asked field independently, in priority order.
func evaluate(load loaddomain.Load, asking domain.Asking, policy domain.Policy, now time.Time) evaluation {
	var ev evaluation

	if asking.RadiusMiles != nil {
		ev.fields = append(ev.fields, judgeRadius(load, *asking.RadiusMiles, policy))
	}
	if asking.PickupDateTime != nil {
		ev.fields = append(ev.fields, judgePickup(load, *asking.PickupDateTime, policy))
	}
	if asking.PickupWindowHours != nil {
		ev.fields = append(ev.fields, judgeWindow(load, *asking.PickupWindowHours, policy, now))
	}
	if asking.Rate != nil {
		res, counter := judgeRate(load, *asking.Rate, policy)
		ev.fields = append(ev.fields, res)
		ev.counterRate = counter
	}

	return ev
}

func judgeRadius(load loaddomain.Load, radius int, policy domain.Policy) domain.FieldResult {
	res := domain.FieldResult{Field: domain.FieldRadius}
	limit := float64(radius)

	switch miles := float64(load.Miles); {
	case miles <= limit:
		res.Verdict = domain.VerdictAccept
		res.Message = fmt.Sprintf("Haul of %d mi is within your %d-mile limit", load.Miles, radius)
	case miles <= limit*policy.RadiusTolerance:
		res.Verdict = domain.VerdictCounter
		res.Message = fmt.Sprintf("Haul is %d mi, %d mi over your %d-mile limit; would you run it?",
			load.Miles, load.Miles-radius, radius)
	default:
		res.Verdict = domain.VerdictReject
		res.Message = fmt.Sprintf("Haul of %d mi is too far beyond your %d-mile limit", load.Miles, radius)
	}
	return res
}

func judgePickup(load loaddomain.Load, asked time.Time, policy domain.Policy) domain.FieldResult {
	res := domain.FieldResult{Field: domain.FieldPickupDateTime}
	diff := math.Abs(load.PickupDateTime.Sub(asked).Hours())
	scheduled := load.PickupDateTime.UTC().Format(pickupLayout)

	switch {
	case diff <= policy.PickupAcceptHours:
		res.Verdict = domain.VerdictAccept
		res.Message = fmt.Sprintf("Scheduled pickup %s is within %.1fh of your requested time", scheduled, diff)
	case diff <= policy.PickupCounterHours:
		res.Verdict = domain.VerdictCounter
		res.Message = fmt.Sprintf("Pickup is scheduled for %s, %.1fh from your requested time; can you make that work?", scheduled, diff)
	default:
		res.Verdict = domain.VerdictReject
		res.Message = fmt.Sprintf("Pickup is scheduled for %s, %.1fh from your requested time", scheduled, diff)
	}
	return res
}

func judgeWindow(load loaddomain.Load, window float64, policy domain.Policy, now time.Time) domain.FieldResult {
	res := domain.FieldResult{Field: domain.FieldPickupWindow}
	until := load.PickupDateTime.Sub(now).Hours()

	switch {
	case until < 0:
		res.Verdict = domain.VerdictReject
		res.Message = fmt.Sprintf("Pickup time %s has already passed", load.PickupDateTime.UTC().Format(pickupLayout))
	case until <= window:
		res.Verdict = domain.VerdictAccept
		res.Message = fmt.Sprintf("Pickup in %.1fh fits your %g-hour window", until, window)
	case until <= window*policy.WindowCounterMultiplier:
		res.Verdict = domain.VerdictCounter
		res.Message = fmt.Sprintf("Pickup is in %.1fh, outside your %g-hour window; could you stretch it?", until, window)
	default:
		res.Verdict = domain.VerdictReject
		res.Message = fmt.Sprintf("Pickup is in %.1fh, too far outside your %g-hour window", until, window)
	}
	return res
}

func judgeRate(load loaddomain.Load, asked float64, policy domain.Policy) (domain.FieldResult, *float64) {
	res := domain.FieldResult{Field: domain.FieldRate}
	ceiling := geo.Round(load.LoadboardRate*policy.RateCeilingPct, 2)
	rejectLine := geo.Round(load.LoadboardRate*policy.RateRejectMultiplier, 2)

	switch {
	case asked <= ceiling:
		res.Verdict = domain.VerdictAccept
		res.Message = fmt.Sprintf("Asking rate $%.2f works for this load", asked)
		return res, nil
	case asked <= rejectLine:
		res.Verdict = domain.VerdictCounter
		res.Message = fmt.Sprintf("Asking rate $%.2f is above what we can pay; we can offer $%.2f", asked, ceiling)
		return res, &ceiling
	default:
		res.Verdict = domain.VerdictReject
		res.Message = fmt.Sprintf("Asking rate $%.2f is too far above the posted $%.2f", asked, load.LoadboardRate)
		return res, nil
	}
}

// aggregate folds field outcomes into one verdict. Any reject wins; otherwise
// any counter wins; otherwise the highest-priority accept supplies the reason.
func aggregate(fields []domain.FieldResult) (domain.Verdict, string, []string) {
	var rejects, counters []string
	for _, f := range fields {
		switch f.Verdict {
		case domain.VerdictReject:
			rejects = append(rejects, f.Message)
		case domain.VerdictCounter:
			counters = append(counters, f.Message)
		}
	}

	if len(rejects) > 0 {
		return domain.VerdictReject, strings.Join(rejects, "; "), nil
	}
	if len(counters) > 0 {
		return domain.VerdictCounter, "", counters
	}

	reason := ""
	if len(fields) > 0 {
		reason = fields[0].Message
	}
	return domain.VerdictAccept, reason, nil
}
