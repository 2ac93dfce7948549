package draftstore

import (
	"care-booking/internal/domain/booking"
	"care-booking/internal/pkg/errs"
	"care-booking/internal/usecase/flow"
)

// checkRevision admits a save only on top of the revision the draft was
// loaded at. stored is -1 when nothing is stored under the id.
func checkRevision(draft *booking.Draft, stored int) error {
	switch {
	case stored < 0 && draft.Revision > 0:
		// committed, abandoned or expired since it was loaded
		return errs.Wrapf(flow.ErrDraftNotFound, "draft %s", draft.ID)
	case stored >= 0 && stored != draft.Revision:
		return errs.Wrapf(flow.ErrDraftConflict, "draft %s at revision %d, stored %d", draft.ID, draft.Revision, stored)
	}
	return nil
}
