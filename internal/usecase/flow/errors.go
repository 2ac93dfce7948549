package flow

import "care-booking/internal/pkg/errs"

var (
	ErrPrecondition     = errs.New("operation not allowed in current step")
	ErrPillarLocked     = errs.New("pillar already selected")
	ErrInvalidSelection = errs.New("invalid selection")
	ErrDraftNotFound    = errs.New("draft not found")
	ErrDraftConflict    = errs.New("draft changed by another request")
	ErrForbidden        = errs.New("draft belongs to another requester")
)
