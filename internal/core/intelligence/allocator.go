package intelligence

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"adpilot/internal/core/domain"
)

// CampaignInput is what the allocator knows about one campaign.
type CampaignInput struct {
	ID            string
	CurrentBudget int64
	Impressions   int64
	ROAS          float64
}

// AllocationInput is the allocator's complete input.
type AllocationInput struct {
	SKUID       string
	TotalBudget int64
	Mode        domain.Mode
	Campaigns   []CampaignInput
}

// Allocation maps campaign ids to budgets. Campaigns the total cannot fund
// at the per-campaign minimum are listed in Excluded and have no budget.
type Allocation struct {
	Budgets        map[string]int64
	Excluded       []string
	Lower          int64
	Cap            int64
	ExploreReserve int64
	// Recipient is the campaign that grew this cycle in EXPLOIT.
	Recipient string
}

// Sum returns the total allocated budget.
func (a Allocation) Sum() int64 {
	var sum int64
	for _, b := range a.Budgets {
		sum += b
	}
	return sum
}

// Bounds returns the per-campaign lower bound and cap for a total budget.
// The lower bound is the floor percentage rounded up to the minimum
// campaign budget.
func (s Settings) Bounds(total int64) (lower, upper int64) {
	lower = int64(math.Ceil(float64(total) * s.FloorPercent / 100))
	lower = max(lower, s.MinCampaignBudget)
	upper = int64(math.Floor(float64(total) * s.CapPercent / 100))
	return lower, upper
}

// Allocate splits in.TotalBudget across the campaigns according to the
// mode. Every funded campaign receives a budget within [lower, cap] and the
// sum never exceeds the total. A result breaking those guarantees is
// reported as *domain.AllocationInvariantError.
func Allocate(in AllocationInput, s Settings) (Allocation, error) {
	if in.TotalBudget <= 0 {
		return Allocation{}, fmt.Errorf("%w: total budget must be positive", domain.ErrValidation)
	}
	lower, upper := s.Bounds(in.TotalBudget)
	if lower > upper {
		return Allocation{}, fmt.Errorf("%w: minimum campaign budget %d exceeds cap %d", domain.ErrValidation, lower, upper)
	}

	out := Allocation{Budgets: make(map[string]int64, len(in.Campaigns)), Lower: lower, Cap: upper}
	if len(in.Campaigns) == 0 {
		return out, nil
	}

	funded, excluded := fundable(in, s, lower)
	out.Excluded = excluded

	switch in.Mode {
	case domain.ModeExploit:
		out.Recipient = allocateExploit(out.Budgets, funded, in.TotalBudget, lower, upper, s)
	default:
		out.ExploreReserve = allocateExplore(out.Budgets, funded, in.TotalBudget, lower, upper, s)
	}

	if err := out.Verify(in.SKUID, in.TotalBudget, len(funded)); err != nil {
		return Allocation{}, err
	}
	return out, nil
}

// Verify checks the allocation guarantees.
func (a Allocation) Verify(skuID string, total int64, funded int) error {
	if len(a.Budgets) != funded {
		return &domain.AllocationInvariantError{SKUID: skuID, Reason: fmt.Sprintf("%d budgets for %d funded campaigns", len(a.Budgets), funded)}
	}
	for id, b := range a.Budgets {
		if b < a.Lower || b > a.Cap {
			return &domain.AllocationInvariantError{SKUID: skuID, Reason: fmt.Sprintf("campaign %s budget %d outside [%d, %d]", id, b, a.Lower, a.Cap)}
		}
	}
	if sum := a.Sum(); sum > total {
		return &domain.AllocationInvariantError{SKUID: skuID, Reason: fmt.Sprintf("allocated %d exceeds total %d", sum, total)}
	}
	for _, id := range a.Excluded {
		if _, ok := a.Budgets[id]; ok {
			return &domain.AllocationInvariantError{SKUID: skuID, Reason: fmt.Sprintf("excluded campaign %s has a budget", id)}
		}
	}
	return nil
}

// fundable keeps as many campaigns as the total can fund at the lower bound.
// EXPLORE drops the lowest ROAS tested campaigns first, EXPLOIT the lowest
// ROAS campaigns.
func fundable(in AllocationInput, s Settings, lower int64) (funded []CampaignInput, excluded []string) {
	ranked := slices.Clone(in.Campaigns)
	slices.SortFunc(ranked, func(a, b CampaignInput) int {
		if in.Mode != domain.ModeExploit {
			au, bu := a.Impressions < s.UnderTestedImpressions, b.Impressions < s.UnderTestedImpressions
			if au != bu {
				if au {
					return -1
				}
				return 1
			}
		}
		return byROASDesc(a, b)
	})

	n := len(ranked)
	if lower > 0 {
		n = min(n, int(in.TotalBudget/lower))
	}
	for _, c := range ranked[n:] {
		excluded = append(excluded, c.ID)
	}
	return ranked[:n], excluded
}

func byROASDesc(a, b CampaignInput) int {
	if c := cmp.Compare(b.ROAS, a.ROAS); c != 0 {
		return c
	}
	return cmp.Compare(a.ID, b.ID)
}

// allocateExplore grants the explore reserve to under-tested campaigns,
// fewest impressions first, then splits the rest by ROAS. It returns the
// reserve actually granted.
func allocateExplore(budgets map[string]int64, funded []CampaignInput, total, lower, upper int64, s Settings) int64 {
	reserve := int64(math.Floor(float64(total) * s.ExplorePercent / 100))

	var under []CampaignInput
	for _, c := range funded {
		if c.Impressions < s.UnderTestedImpressions {
			under = append(under, c)
		}
	}
	slices.SortFunc(under, func(a, b CampaignInput) int {
		if c := cmp.Compare(a.Impressions, b.Impressions); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})

	var granted int64
	left := reserve
	waiting := len(funded)
	for _, c := range under {
		if left <= 0 {
			break
		}
		grant := max(min(left, upper), lower)
		// the campaigns still waiting must fit at the lower bound
		grant = min(grant, total-granted-lower*int64(waiting-1))
		if grant < lower {
			break
		}
		budgets[c.ID] = grant
		granted += grant
		left -= grant
		waiting--
	}

	var pool []CampaignInput
	for _, c := range funded {
		if _, ok := budgets[c.ID]; !ok {
			pool = append(pool, c)
		}
	}
	distribute(budgets, pool, total-granted, lower, upper)
	return granted
}

// distribute gives every campaign in pool the lower bound and splits the
// rest of amount in proportion to ROAS, never above upper. Campaigns with
// no positive ROAS share equally when nobody has one.
func distribute(budgets map[string]int64, pool []CampaignInput, amount, lower, upper int64) {
	if len(pool) == 0 {
		return
	}
	extra := make(map[string]float64, len(pool))
	left := float64(amount - lower*int64(len(pool)))
	room := float64(upper - lower)
	free := slices.Clone(pool)

	for left > 0 && len(free) > 0 {
		weights := make([]float64, len(free))
		var wsum float64
		for i, c := range free {
			weights[i] = math.Max(c.ROAS, 0)
			wsum += weights[i]
		}
		if wsum == 0 {
			for i := range weights {
				weights[i] = 1
			}
			wsum = float64(len(free))
		}

		var capped []CampaignInput
		var rest []CampaignInput
		for i, c := range free {
			if extra[c.ID]+left*weights[i]/wsum >= room {
				capped = append(capped, c)
			} else {
				rest = append(rest, c)
			}
		}
		if len(capped) == 0 {
			for i, c := range free {
				extra[c.ID] += left * weights[i] / wsum
			}
			break
		}
		for _, c := range capped {
			left -= room - extra[c.ID]
			extra[c.ID] = room
		}
		free = rest
	}

	for _, c := range pool {
		budgets[c.ID] = lower + int64(math.Floor(extra[c.ID]))
	}
}

// allocateExploit keeps current budgets within bounds and grows the single
// best campaign by at most one step, funded from unallocated headroom and
// then from lower ROAS donors. It returns the recipient id.
func allocateExploit(budgets map[string]int64, funded []CampaignInput, total, lower, upper int64, s Settings) string {
	var sum int64
	for _, c := range funded {
		b := min(max(c.CurrentBudget, lower), upper)
		budgets[c.ID] = b
		sum += b
	}

	// shrink the weakest campaigns first when the total no longer covers
	// their current budgets
	ascending := slices.Clone(funded)
	slices.SortFunc(ascending, func(a, b CampaignInput) int { return byROASDesc(b, a) })
	for _, c := range ascending {
		if sum <= total {
			break
		}
		cut := min(sum-total, budgets[c.ID]-lower)
		budgets[c.ID] -= cut
		sum -= cut
	}

	step := func(b int64) int64 { return int64(math.Floor(float64(b) * s.ExploitStepPercent / 100)) }

	descending := slices.Clone(funded)
	slices.SortFunc(descending, byROASDesc)
	for _, r := range descending {
		if r.ROAS <= 0 || budgets[r.ID] >= upper {
			continue
		}
		want := min(max(step(budgets[r.ID]), 1), upper-budgets[r.ID])

		got := min(want, total-sum)
		for _, d := range ascending {
			if got >= want {
				break
			}
			if d.ID == r.ID || d.ROAS >= r.ROAS {
				continue
			}
			give := min(step(budgets[d.ID]), budgets[d.ID]-lower, want-got)
			if give <= 0 {
				continue
			}
			budgets[d.ID] -= give
			got += give
		}
		if got <= 0 {
			continue
		}
		budgets[r.ID] += got
		return r.ID
	}
	return ""
}

// Material reports whether moving from current to next is worth a vendor
// call given the no-op tolerance.
func Material(current, next int64, tolerancePercent float64) bool {
	if current == next {
		return false
	}
	if current <= 0 {
		return true
	}
	diff := math.Abs(float64(next - current))
	return diff > float64(current)*tolerancePercent/100
}
