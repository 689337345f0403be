package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/iqoooow/TERRA-ACADEMY/internal/domain"
	"github.com/iqoooow/TERRA-ACADEMY/internal/events"
	apperrors "github.com/iqoooow/TERRA-ACADEMY/pkg/util"
)

func newModerationFixture() (*fakeUserRepo, *fakeDispatcher, *ModerationService) {
	repo := newFakeUserRepo()
	dispatcher := &fakeDispatcher{}
	return repo, dispatcher, NewModerationService(repo, dispatcher, zap.NewNop())
}

func seedPending(repo *fakeUserRepo, email string) *domain.User {
	return repo.add(&domain.User{
		Username: email,
		Email:    email,
		Phone:    "+998900000000",
		Role:     domain.RoleStudent,
		Status:   domain.StatusPending,
	})
}

func seedOwner(repo *fakeUserRepo) *domain.User {
	return repo.add(&domain.User{
		Username: "owner@x.com",
		Email:    "owner@x.com",
		Role:     domain.RoleOwner,
		Status:   domain.StatusApproved,
	})
}

func TestListPending_OwnerSeesPendingOnly(t *testing.T) {
	t.Parallel()

	repo, _, svc := newModerationFixture()
	owner := seedOwner(repo)
	first := seedPending(repo, "a@x.com")
	second := seedPending(repo, "b@x.com")

	pending, err := svc.ListPending(context.Background(), owner)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, first.ID, pending[0].ID)
	assert.Equal(t, second.ID, pending[1].ID)
}

func TestListPending_NonOwnerGetsEmptySlice(t *testing.T) {
	t.Parallel()

	repo, _, svc := newModerationFixture()
	seedPending(repo, "a@x.com")
	teacher := repo.add(&domain.User{
		Email:  "t@x.com",
		Role:   domain.RoleTeacher,
		Status: domain.StatusApproved,
	})

	pending, err := svc.ListPending(context.Background(), teacher)
	require.NoError(t, err, "permission failure is masked as no results")
	assert.Empty(t, pending)
	assert.NotNil(t, pending)
}

func TestDecide_Approve(t *testing.T) {
	t.Parallel()

	repo, dispatcher, svc := newModerationFixture()
	owner := seedOwner(repo)
	target := seedPending(repo, "a@x.com")

	decision, err := svc.Decide(context.Background(), owner, target.ID, ActionApprove, "")
	require.NoError(t, err)

	assert.Equal(t, domain.StatusApproved, decision.Status)
	assert.Equal(t, "User approved successfully.", decision.Detail)

	stored, err := repo.GetByID(context.Background(), target.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusApproved, stored.Status)

	require.Len(t, dispatcher.published, 1)
	event := dispatcher.published[0]
	assert.Equal(t, events.EventUserApproved, event.Type)
	assert.Equal(t, target.ID, event.UserID)
	assert.Equal(t, owner.ID, event.ActorID)
}

func TestDecide_RejectEchoesReason(t *testing.T) {
	t.Parallel()

	repo, dispatcher, svc := newModerationFixture()
	owner := seedOwner(repo)
	target := seedPending(repo, "b@x.com")

	decision, err := svc.Decide(context.Background(), owner, target.ID, ActionReject, "incomplete docs")
	require.NoError(t, err)

	assert.Equal(t, domain.StatusRejected, decision.Status)
	assert.Equal(t, "User rejected. Reason: incomplete docs", decision.Detail)

	require.Len(t, dispatcher.published, 1)
	payload, ok := dispatcher.published[0].Payload.(events.UserModeratedPayload)
	require.True(t, ok)
	assert.Equal(t, "incomplete docs", payload.Reason)
}

func TestDecide_NonOwnerForbidden(t *testing.T) {
	t.Parallel()

	repo, dispatcher, svc := newModerationFixture()
	target := seedPending(repo, "a@x.com")
	parent := repo.add(&domain.User{
		Email:  "p@x.com",
		Role:   domain.RoleParent,
		Status: domain.StatusApproved,
	})

	_, err := svc.Decide(context.Background(), parent, target.ID, ActionApprove, "")
	domainErr := apperrors.ToDomainError(err)
	require.NotNil(t, domainErr)
	assert.Equal(t, http.StatusForbidden, domainErr.HTTPStatus)
	assert.Empty(t, dispatcher.published)

	stored, err := repo.GetByID(context.Background(), target.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, stored.Status)
}

func TestDecide_UnknownUser(t *testing.T) {
	t.Parallel()

	repo, _, svc := newModerationFixture()
	owner := seedOwner(repo)

	_, err := svc.Decide(context.Background(), owner, 9999, ActionApprove, "")
	domainErr := apperrors.ToDomainError(err)
	require.NotNil(t, domainErr)
	assert.Equal(t, http.StatusNotFound, domainErr.HTTPStatus)
}

func TestDecide_InvalidAction(t *testing.T) {
	t.Parallel()

	repo, _, svc := newModerationFixture()
	owner := seedOwner(repo)
	target := seedPending(repo, "a@x.com")

	_, err := svc.Decide(context.Background(), owner, target.ID, "escalate", "")
	domainErr := apperrors.ToDomainError(err)
	require.NotNil(t, domainErr)
	assert.Equal(t, http.StatusBadRequest, domainErr.HTTPStatus)
}

func TestDecide_SecondDecisionFails(t *testing.T) {
	t.Parallel()

	repo, dispatcher, svc := newModerationFixture()
	owner := seedOwner(repo)
	target := seedPending(repo, "a@x.com")

	_, err := svc.Decide(context.Background(), owner, target.ID, ActionApprove, "")
	require.NoError(t, err)

	// Approved is terminal; the follow-up reject must not flip the status.
	_, err = svc.Decide(context.Background(), owner, target.ID, ActionReject, "changed my mind")
	domainErr := apperrors.ToDomainError(err)
	require.NotNil(t, domainErr)
	assert.Equal(t, "INVALID_STATE", domainErr.Code)
	assert.Equal(t, http.StatusConflict, domainErr.HTTPStatus)

	stored, err := repo.GetByID(context.Background(), target.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusApproved, stored.Status)
	assert.Len(t, dispatcher.published, 1, "only the winning decision is announced")
}

func TestDecide_PublishFailureDoesNotFailDecision(t *testing.T) {
	t.Parallel()

	repo, dispatcher, svc := newModerationFixture()
	dispatcher.publishErr = errors.New("queue unavailable")
	owner := seedOwner(repo)
	target := seedPending(repo, "a@x.com")

	decision, err := svc.Decide(context.Background(), owner, target.ID, ActionApprove, "")
	require.NoError(t, err, "notifier is best-effort")
	assert.Equal(t, domain.StatusApproved, decision.Status)
}
