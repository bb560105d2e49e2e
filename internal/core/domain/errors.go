package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Error kinds reported by connectors and integrators.
var (
	ErrAuth         = errors.New("authentication failed")
	ErrRateLimited  = errors.New("rate limited")
	ErrTransient    = errors.New("transient failure")
	ErrValidation   = errors.New("validation failed")
	ErrNotSupported = errors.New("operation not supported")
)

var (
	ErrAllSourcesExhausted = errors.New("all sources exhausted")
	ErrAllocationInvariant = errors.New("allocation invariant violated")
	ErrStaleMetrics        = errors.New("stale metrics")
)

// VendorError is a failure returned by one connector or integrator. Kind is
// one of the error kinds above and is matched by errors.Is.
type VendorError struct {
	Kind       error
	Source     string
	Op         Operation
	StatusCode int
	// RetryAfter is the delay requested by the vendor, if any.
	RetryAfter time.Duration
	// Attempts is the number of calls made before giving up.
	Attempts int
	Err      error
}

func (e *VendorError) Error() string {
	var b strings.Builder
	b.WriteString(e.Source)
	if e.Op != "" {
		b.WriteString(" ")
		b.WriteString(string(e.Op))
	}
	b.WriteString(": ")
	b.WriteString(e.Kind.Error())
	if e.StatusCode != 0 {
		fmt.Fprintf(&b, " (status %d)", e.StatusCode)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *VendorError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// Retryable reports whether err is worth retrying against the same source.
func Retryable(err error) bool {
	return errors.Is(err, ErrRateLimited) || errors.Is(err, ErrTransient)
}

// Kind returns the error kind carried by err, or nil for unclassified errors.
func Kind(err error) error {
	for _, k := range []error{ErrAuth, ErrRateLimited, ErrTransient, ErrValidation, ErrNotSupported} {
		if errors.Is(err, k) {
			return k
		}
	}
	return nil
}

// AttemptOutcome is the typed result of asking one source to perform an
// operation.
type AttemptOutcome string

const (
	AttemptSucceeded AttemptOutcome = "succeeded"
	AttemptSkipped   AttemptOutcome = "skipped"
	AttemptFailed    AttemptOutcome = "failed"
)

// Attempt records one step of a fallback walk.
type Attempt struct {
	Source  string
	Outcome AttemptOutcome
	Err     error
}

func (a Attempt) String() string {
	if a.Err == nil {
		return a.Source + ": " + string(a.Outcome)
	}
	return a.Source + ": " + string(a.Outcome) + ": " + a.Err.Error()
}

// AllSourcesExhaustedError is returned when every candidate source of an
// operation was tried without success.
type AllSourcesExhaustedError struct {
	Op       Operation
	Platform Platform
	Attempts []Attempt
}

func (e *AllSourcesExhaustedError) Error() string {
	parts := make([]string, 0, len(e.Attempts))
	for _, a := range e.Attempts {
		parts = append(parts, a.String())
	}
	if len(parts) == 0 {
		return fmt.Sprintf("%s on %s: %s: no candidate sources", e.Op, e.Platform, ErrAllSourcesExhausted)
	}
	return fmt.Sprintf("%s on %s: %s: [%s]", e.Op, e.Platform, ErrAllSourcesExhausted, strings.Join(parts, "; "))
}

func (e *AllSourcesExhaustedError) Is(target error) bool { return target == ErrAllSourcesExhausted }

// AllocationInvariantError reports a budget allocation that broke one of the
// allocator's guarantees. It indicates a logic defect and is never clamped.
type AllocationInvariantError struct {
	SKUID  string
	Reason string
}

func (e *AllocationInvariantError) Error() string {
	if e.SKUID == "" {
		return fmt.Sprintf("%s: %s", ErrAllocationInvariant, e.Reason)
	}
	return fmt.Sprintf("sku %s: %s: %s", e.SKUID, ErrAllocationInvariant, e.Reason)
}

func (e *AllocationInvariantError) Is(target error) bool { return target == ErrAllocationInvariant }
