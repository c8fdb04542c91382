package leave

import (
	"errors"
	"fmt"
)

var (
	ErrRequestNotFound     = errors.New("leave request not found")
	ErrAlreadyProcessed    = errors.New("leave request already processed")
	ErrInsufficientBalance = errors.New("insufficient leave balance")
	ErrOverlappingRequest  = errors.New("overlapping leave request")
)

// OverlapError names the existing pending/approved request that intersects
// the submitted range. It matches ErrOverlappingRequest via errors.Is.
type OverlapError struct {
	Conflicting Request
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("overlaps existing %s leave from %s to %s",
		e.Conflicting.Type,
		e.Conflicting.FromDate.Format("2006-01-02"),
		e.Conflicting.ToDate.Format("2006-01-02"),
	)
}

func (e *OverlapError) Is(target error) bool {
	return target == ErrOverlappingRequest
}

// BalanceError reports available versus requested days for a balance-tracked
// type. It matches ErrInsufficientBalance via errors.Is.
type BalanceError struct {
	Type      Type
	Available int
	Requested int
}

func (e *BalanceError) Error() string {
	return fmt.Sprintf("insufficient %s leave balance: available %d, requested %d",
		e.Type, e.Available, e.Requested)
}

func (e *BalanceError) Is(target error) bool {
	return target == ErrInsufficientBalance
}
