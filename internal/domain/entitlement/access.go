package entitlement

import "time"

// AccessPolicy is the domain service answering "does this user currently
// have access to this product" over the user's grants. All expiry is lazy:
// the policy only compares stored timestamps against the supplied instant.
type AccessPolicy struct {
	trialDuration       time.Duration
	maxConcurrentTrials int
}

// NewAccessPolicy creates an access policy. Zero values fall back to the
// package defaults (48h trial window, 2 concurrent trials).
func NewAccessPolicy(trialDuration time.Duration, maxConcurrentTrials int) *AccessPolicy {
	if trialDuration <= 0 {
		trialDuration = DefaultTrialDuration
	}
	if maxConcurrentTrials <= 0 {
		maxConcurrentTrials = DefaultMaxConcurrentTrials
	}
	return &AccessPolicy{
		trialDuration:       trialDuration,
		maxConcurrentTrials: maxConcurrentTrials,
	}
}

// TrialDuration returns the trial access window
func (p *AccessPolicy) TrialDuration() time.Duration {
	return p.trialDuration
}

// MaxConcurrentTrials returns the concurrent trial cap
func (p *AccessPolicy) MaxConcurrentTrials() int {
	return p.maxConcurrentTrials
}

// Decide evaluates access for one product over the user's grants for that
// product, in priority order: an admin-disabled grant short-circuits to no
// access; otherwise purchase dominates, then an in-window paid rental, then
// an in-window trial. A purchase therefore grants access even when a trial
// for the same product has long expired.
func (p *AccessPolicy) Decide(grants []*Entitlement, now time.Time) bool {
	for _, g := range grants {
		if !g.Enabled() {
			return false
		}
	}

	for _, g := range grants {
		if g.Acquisition() == AcquisitionPurchase && g.State(now, p.trialDuration) == StatePurchased {
			return true
		}
	}
	for _, g := range grants {
		if g.Acquisition() == AcquisitionRental && g.State(now, p.trialDuration) == StateRentalActive {
			return true
		}
	}
	for _, g := range grants {
		if g.Acquisition() == AcquisitionTrial && g.State(now, p.trialDuration) == StateTrialActive {
			return true
		}
	}
	return false
}

// CountActiveTrials counts the user's currently active trial grants across
// all products. Expired trials do not count; the slot is reclaimed the
// moment a trial window passes.
func (p *AccessPolicy) CountActiveTrials(grants []*Entitlement, now time.Time) int {
	count := 0
	for _, g := range grants {
		if g.Acquisition() == AcquisitionTrial && g.State(now, p.trialDuration) == StateTrialActive {
			count++
		}
	}
	return count
}

// RemainingTrialSlots returns how many more trials the user may activate
// right now, given all of the user's grants across the catalog.
func (p *AccessPolicy) RemainingTrialSlots(grants []*Entitlement, now time.Time) int {
	remaining := p.maxConcurrentTrials - p.CountActiveTrials(grants, now)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// CanActivateTrial checks the trial activation rules for a product against
// all of the user's grants: one trial per product per user for life, and at
// most maxConcurrentTrials simultaneously active trials across the catalog.
func (p *AccessPolicy) CanActivateTrial(grants []*Entitlement, productSlug string, now time.Time) error {
	for _, g := range grants {
		if g.Acquisition() == AcquisitionTrial && g.ProductSlug() == productSlug {
			// Lifetime rule: reactivation after expiry is forbidden too.
			return ErrTrialAlreadyUsed
		}
	}
	if p.CountActiveTrials(grants, now) >= p.maxConcurrentTrials {
		return ErrTrialLimitReached
	}
	return nil
}
