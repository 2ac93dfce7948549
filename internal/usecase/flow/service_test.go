//go:build unit

package flow_test

import (
	"context"
	"errors"
	"testing"

	"care-booking/internal/domain/booking"
	"care-booking/internal/infra/memstore"
	"care-booking/internal/pkg/errs"
	"care-booking/internal/usecase/commands"
	"care-booking/internal/usecase/flow"
	"care-booking/tests/common/builder"
	flowmock "care-booking/tests/mock/flow"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errRedisDown = errors.New("dial tcp: connection refused")

func newServiceUnderTest(t *testing.T) (*machineFixture, *flowmock.MockDraftStore, flow.Service) {
	t.Helper()
	f := newMachineFixture(t)
	drafts := flowmock.NewMockDraftStore(gomock.NewController(t))
	return f, drafts, flow.NewService(f.factory, drafts, memstore.NewStore())
}

// =============================================================================
// Step Persistence Tests
// =============================================================================

func TestService_Apply(t *testing.T) {
	ctx := context.Background()

	t.Run("success: step result is saved and returned", func(t *testing.T) {
		_, drafts, svc := newServiceUnderTest(t)
		draft := builder.NewDraftBuilder().AtStep(booking.StepPillarSelection).Build()
		member := builder.Member(draft.Requester.UserID)

		drafts.EXPECT().Load(ctx, draft.ID).Return(draft, nil)
		drafts.EXPECT().Save(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, saved *booking.Draft) error {
			assert.Equal(t, booking.StepAssessmentOrChoice, saved.Step)
			assert.Equal(t, booking.PillarFinancialAssistance, saved.Pillar)
			return nil
		})

		actual, err := svc.SelectPillar(ctx, member, draft.ID, booking.PillarFinancialAssistance)
		require.NoError(t, err)
		assert.Equal(t, booking.StepAssessmentOrChoice, actual.Step)
	})

	t.Run("error: failed step is not saved", func(t *testing.T) {
		_, drafts, svc := newServiceUnderTest(t)
		draft := builder.NewDraftBuilder().AtStep(booking.StepDateTimeSelection).Build()

		drafts.EXPECT().Load(ctx, draft.ID).Return(draft, nil)
		drafts.EXPECT().Save(gomock.Any(), gomock.Any()).Times(0)

		_, err := svc.SelectPillar(ctx, builder.Member(draft.Requester.UserID), draft.ID, booking.PillarMentalHealth)
		require.ErrorIs(t, err, flow.ErrPrecondition)
	})

	t.Run("error: unknown draft", func(t *testing.T) {
		_, drafts, svc := newServiceUnderTest(t)
		id := uuid.New()
		drafts.EXPECT().Load(ctx, id).Return(nil, errs.Wrapf(flow.ErrDraftNotFound, "draft %s", id))

		_, err := svc.ChooseAssisted(ctx, builder.Member(uuid.New()), id)
		require.ErrorIs(t, err, flow.ErrDraftNotFound)
		assert.False(t, errs.Is(err, commands.ErrPersistenceFailure))
	})

	t.Run("error: store failure on load", func(t *testing.T) {
		_, drafts, svc := newServiceUnderTest(t)
		id := uuid.New()
		drafts.EXPECT().Load(ctx, id).Return(nil, errRedisDown)

		_, err := svc.Get(ctx, builder.Member(uuid.New()), id)
		assert.True(t, errs.Is(err, commands.ErrPersistenceFailure), err)
	})

	t.Run("error: store failure on save", func(t *testing.T) {
		_, drafts, svc := newServiceUnderTest(t)
		drafts.EXPECT().Save(ctx, gomock.Any()).Return(errRedisDown)

		_, err := svc.Start(ctx, builder.Member(uuid.New()))
		assert.True(t, errs.Is(err, commands.ErrPersistenceFailure), err)
	})

	t.Run("error: stale save keeps its own error", func(t *testing.T) {
		_, drafts, svc := newServiceUnderTest(t)
		draft := builder.NewDraftBuilder().Build()
		drafts.EXPECT().Load(ctx, draft.ID).Return(draft, nil)
		drafts.EXPECT().Save(ctx, gomock.Any()).Return(errs.Wrapf(flow.ErrDraftConflict, "draft %s", draft.ID))

		_, err := svc.Back(ctx, builder.Member(draft.Requester.UserID), draft.ID)
		require.ErrorIs(t, err, flow.ErrDraftConflict)
		assert.False(t, errs.Is(err, commands.ErrPersistenceFailure), err)
	})

	t.Run("error: another requester's draft", func(t *testing.T) {
		_, drafts, svc := newServiceUnderTest(t)
		draft := builder.NewDraftBuilder().Build()
		drafts.EXPECT().Load(ctx, draft.ID).Return(draft, nil)

		_, err := svc.Get(ctx, builder.Member(uuid.New()), draft.ID)
		require.ErrorIs(t, err, flow.ErrForbidden)
	})

	t.Run("error: specialists cannot drive member drafts", func(t *testing.T) {
		_, drafts, svc := newServiceUnderTest(t)
		draft := builder.NewDraftBuilder().Build()
		drafts.EXPECT().Load(ctx, draft.ID).Return(draft, nil)

		_, err := svc.Back(ctx, builder.Specialist(*draft.SpecialistID), draft.ID)
		require.ErrorIs(t, err, flow.ErrForbidden)
	})
}

func TestService_Start(t *testing.T) {
	ctx := context.Background()
	_, drafts, svc := newServiceUnderTest(t)
	member := builder.Member(uuid.New())
	drafts.EXPECT().Save(ctx, gomock.Any()).Return(nil)

	actual, err := svc.Start(ctx, member)
	require.NoError(t, err)
	assert.Equal(t, booking.StepPillarSelection, actual.Step)
	assert.Equal(t, member.ID(), actual.Requester.UserID)
	assert.Nil(t, actual.Requester.CompanyID)
	assert.NotEqual(t, uuid.Nil, actual.ID)
}

// =============================================================================
// Commit Tests
// =============================================================================

func TestService_Commit(t *testing.T) {
	ctx := context.Background()

	t.Run("success: draft is deleted after commit", func(t *testing.T) {
		f, drafts, svc := newServiceUnderTest(t)
		draft := builder.NewDraftBuilder().Build()
		committed := builder.NewBookingBuilder().BuildDomain()

		drafts.EXPECT().Load(ctx, draft.ID).Return(draft, nil)
		f.committer.EXPECT().Commit(ctx, gomock.Any()).Return(committed, nil)
		drafts.EXPECT().Delete(ctx, draft.ID).Return(nil)

		actual, err := svc.Commit(ctx, builder.Member(draft.Requester.UserID), draft.ID)
		require.NoError(t, err)
		assert.Same(t, committed, actual)
	})

	t.Run("success: delete failure does not fail the commit", func(t *testing.T) {
		f, drafts, svc := newServiceUnderTest(t)
		draft := builder.NewDraftBuilder().Build()

		drafts.EXPECT().Load(ctx, draft.ID).Return(draft, nil)
		f.committer.EXPECT().Commit(ctx, gomock.Any()).Return(builder.NewBookingBuilder().BuildDomain(), nil)
		drafts.EXPECT().Delete(ctx, draft.ID).Return(errRedisDown)

		actual, err := svc.Commit(ctx, builder.Member(draft.Requester.UserID), draft.ID)
		require.NoError(t, err)
		assert.NotNil(t, actual)
	})

	t.Run("error: rejected commit keeps the stored draft", func(t *testing.T) {
		f, drafts, svc := newServiceUnderTest(t)
		draft := builder.NewDraftBuilder().Build()

		drafts.EXPECT().Load(ctx, draft.ID).Return(draft, nil)
		f.committer.EXPECT().Commit(ctx, gomock.Any()).Return(nil, &commands.SlotUnavailableError{})
		drafts.EXPECT().Delete(gomock.Any(), gomock.Any()).Times(0)
		drafts.EXPECT().Save(gomock.Any(), gomock.Any()).Times(0)

		_, err := svc.Commit(ctx, builder.Member(draft.Requester.UserID), draft.ID)
		require.ErrorIs(t, err, commands.ErrSlotUnavailable)
	})
}

func TestService_Abandon(t *testing.T) {
	ctx := context.Background()
	_, drafts, svc := newServiceUnderTest(t)
	draft := builder.NewDraftBuilder().AtStep(booking.StepAssessment).Build()

	drafts.EXPECT().Load(ctx, draft.ID).Return(draft, nil)
	drafts.EXPECT().Delete(ctx, draft.ID).Return(nil)

	require.NoError(t, svc.Abandon(ctx, builder.Admin(), draft.ID))
}
