package intelligence

import (
	"fmt"
	"math"
	"time"

	"adpilot/internal/core/domain"
)

// ModeInput is the SKU-level evidence the mode machine looks at.
type ModeInput struct {
	State       domain.ModeState
	AsOf        time.Time
	TotalBudget int64
	Impressions int64
	Confidence  float64
	ROAS        float64
}

// Transition is the outcome of one mode machine step.
type Transition struct {
	From      domain.Mode
	To        domain.Mode
	Next      domain.ModeState
	Threshold int64
	Reason    string
}

// Changed reports whether the mode flipped.
func (t Transition) Changed() bool { return t.From != t.To }

// Advance runs one step of the EXPLORE/EXPLOIT machine. The result depends
// only on its arguments.
//
// EXPLORE moves to EXPLOIT once impressions reached the budget-scaled
// threshold, the SKU explored long enough or is confident enough, and ROAS
// reached the exploit minimum. EXPLOIT returns to EXPLORE after
// RegressionCycles consecutive cycles with ROAS below RegressionROAS.
func Advance(in ModeInput, s Settings) Transition {
	state := in.State
	if state.Mode == "" {
		state.Mode = domain.ModeExplore
	}
	t := Transition{
		From:      state.Mode,
		To:        state.Mode,
		Next:      state,
		Threshold: s.ImpressionThresholdFor(in.TotalBudget),
	}

	switch state.Mode {
	case domain.ModeExplore:
		t.Next.RegressionStreak = 0
		elapsed := in.AsOf.Sub(state.EnteredAt)
		switch {
		case in.Impressions < t.Threshold:
			t.Reason = fmt.Sprintf("impressions %d below threshold %d", in.Impressions, t.Threshold)
		case elapsed < s.MinExploreDuration && in.Confidence < s.ExploitConfidence:
			t.Reason = fmt.Sprintf("explored %s with confidence %.2f", elapsed.Truncate(time.Hour), in.Confidence)
		case in.ROAS < s.MinROASForExploit:
			t.Reason = fmt.Sprintf("roas %.2f below %.2f", in.ROAS, s.MinROASForExploit)
		default:
			t.To = domain.ModeExploit
			t.Next = domain.ModeState{Mode: domain.ModeExploit, EnteredAt: in.AsOf}
			t.Reason = fmt.Sprintf("exploit ready: impressions %d, confidence %.2f, roas %.2f", in.Impressions, in.Confidence, in.ROAS)
		}
	case domain.ModeExploit:
		if in.ROAS >= s.RegressionROAS {
			t.Next.RegressionStreak = 0
			t.Reason = fmt.Sprintf("roas %.2f holds", in.ROAS)
			break
		}
		t.Next.RegressionStreak++
		if t.Next.RegressionStreak >= s.RegressionCycles {
			t.To = domain.ModeExplore
			t.Next = domain.ModeState{Mode: domain.ModeExplore, EnteredAt: in.AsOf}
			t.Reason = fmt.Sprintf("roas below %.2f for %d cycles", s.RegressionROAS, s.RegressionCycles)
			break
		}
		t.Reason = fmt.Sprintf("roas %.2f below %.2f (%d/%d)", in.ROAS, s.RegressionROAS, t.Next.RegressionStreak, s.RegressionCycles)
	}
	return t
}

// Confidence scores how trustworthy the observed ROAS is, in [0, 1]. It
// grows with the number of data points up to minDataPoints and shrinks
// with the coefficient of variation of the series.
func Confidence(roas []float64, minDataPoints int) float64 {
	if len(roas) == 0 {
		return 0
	}
	var sum float64
	for _, v := range roas {
		sum += v
	}
	mean := sum / float64(len(roas))
	if mean <= 0 {
		return 0
	}
	var sq float64
	for _, v := range roas {
		sq += (v - mean) * (v - mean)
	}
	cv := math.Sqrt(sq/float64(len(roas))) / mean

	volume := 1.0
	if minDataPoints > 0 && len(roas) < minDataPoints {
		volume = float64(len(roas)) / float64(minDataPoints)
	}
	return volume / (1 + cv)
}
