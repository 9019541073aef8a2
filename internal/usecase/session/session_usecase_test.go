package session

import (
	"context"
	"testing"
	"time"

	"github.com/skillswap-app/skillswap-backend/internal/domain"
	"github.com/skillswap-app/skillswap-backend/internal/infrastructure/events"
	"github.com/skillswap-app/skillswap-backend/internal/repository"
	"github.com/skillswap-app/skillswap-backend/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	users    repository.UserRepository
	messages repository.MessageRepository
	recorder *events.Recorder
	uc       *SessionUseCase
}

// newFixture seeds two users that are already matched.
func newFixture(t *testing.T) *fixture {
	t.Helper()

	alice := &domain.User{
		ID: 1, Name: "Alice", Level: 1,
		Matches: []domain.Match{{UserID: 2, Status: domain.SwapNotStarted}},
	}
	bob := &domain.User{
		ID: 2, Name: "Bob", Level: 1,
		Matches: []domain.Match{{UserID: 1, Status: domain.SwapNotStarted}},
	}

	f := &fixture{
		users:    memory.NewUserStore([]*domain.User{alice, bob}),
		messages: memory.NewMessageStore(),
		recorder: events.NewRecorder(),
	}
	f.uc = NewSessionUseCase(f.users, f.messages, f.recorder)
	return f
}

var sessionDate = time.Date(2026, time.September, 12, 15, 30, 0, 0, time.UTC)

func TestProposeMirrorsPendingProposal(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	result, err := f.uc.Propose(ctx, 1, 2, sessionDate)
	require.NoError(t, err)
	require.NotNil(t, result.Proposal)
	assert.Nil(t, result.Superseded)

	alice, _ := f.users.GetByID(ctx, 1)
	bob, _ := f.users.GetByID(ctx, 2)
	for _, m := range []*domain.Match{alice.MatchWith(2), bob.MatchWith(1)} {
		require.NotNil(t, m.SessionProposal)
		assert.Equal(t, 1, m.SessionProposal.ProposerID)
		assert.True(t, m.SessionProposal.Date.Equal(sessionDate))
		assert.Equal(t, domain.ProposalPending, m.SessionProposal.Status)
		assert.Nil(t, m.ScheduledSession)
	}
}

func TestProposeEmitsSystemMessage(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.uc.Propose(ctx, 1, 2, sessionDate)
	require.NoError(t, err)

	emitted := f.recorder.Events()
	require.Len(t, emitted, 1)
	assert.Equal(t, domain.EventSessionProposed, emitted[0].Kind)
	assert.Equal(t, "Alice proposed a session on Sep 12, 2026, 3:30 PM", emitted[0].Text)

	history, err := f.messages.History(ctx, 1, 2)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.True(t, history[0].IsSystem)
	assert.Equal(t, emitted[0].Text, history[0].Text)
}

func TestProposeSupersedesPending(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.uc.Propose(ctx, 1, 2, sessionDate)
	require.NoError(t, err)

	later := sessionDate.Add(48 * time.Hour)
	result, err := f.uc.Propose(ctx, 2, 1, later)
	require.NoError(t, err)

	require.NotNil(t, result.Superseded)
	assert.Equal(t, 1, result.Superseded.ProposerID)
	assert.True(t, result.Superseded.Date.Equal(sessionDate))

	// Only the new proposal survives, on both views.
	alice, _ := f.users.GetByID(ctx, 1)
	bob, _ := f.users.GetByID(ctx, 2)
	for _, m := range []*domain.Match{alice.MatchWith(2), bob.MatchWith(1)} {
		require.NotNil(t, m.SessionProposal)
		assert.Equal(t, 2, m.SessionProposal.ProposerID)
		assert.True(t, m.SessionProposal.Date.Equal(later))
	}
}

func TestProposeClearsScheduledSession(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.uc.Propose(ctx, 1, 2, sessionDate)
	require.NoError(t, err)
	_, err = f.uc.Respond(ctx, 2, 1, domain.ProposalAccepted)
	require.NoError(t, err)

	// Re-negotiating replaces the confirmed slot with a fresh pending one.
	_, err = f.uc.Propose(ctx, 2, 1, sessionDate.Add(24*time.Hour))
	require.NoError(t, err)

	alice, _ := f.users.GetByID(ctx, 1)
	bob, _ := f.users.GetByID(ctx, 2)
	for _, m := range []*domain.Match{alice.MatchWith(2), bob.MatchWith(1)} {
		assert.Nil(t, m.ScheduledSession)
		require.NotNil(t, m.SessionProposal)
	}
}

func TestProposeWithoutMatch(t *testing.T) {
	f := newFixture(t)
	stranger := &domain.User{ID: 3, Name: "Carol", Level: 1}
	require.NoError(t, f.users.Create(context.Background(), stranger))

	_, err := f.uc.Propose(context.Background(), 1, 3, sessionDate)
	assert.ErrorIs(t, err, domain.ErrMatchNotFound)
}

func TestAcceptSchedulesBothViews(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.uc.Propose(ctx, 1, 2, sessionDate)
	require.NoError(t, err)

	result, err := f.uc.Respond(ctx, 2, 1, domain.ProposalAccepted)
	require.NoError(t, err)
	assert.Equal(t, OutcomeConfirmed, result.Outcome)
	require.NotNil(t, result.Event)
	assert.Equal(t, domain.EventSessionConfirmed, result.Event.Kind)
	assert.Equal(t, "Session confirmed for Sep 12, 2026, 3:30 PM", result.Event.Text)

	alice, _ := f.users.GetByID(ctx, 1)
	bob, _ := f.users.GetByID(ctx, 2)
	for _, m := range []*domain.Match{alice.MatchWith(2), bob.MatchWith(1)} {
		assert.Nil(t, m.SessionProposal)
		require.NotNil(t, m.ScheduledSession)
		assert.True(t, m.ScheduledSession.Equal(sessionDate))
	}
}

func TestDeclineClearsProposal(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.uc.Propose(ctx, 1, 2, sessionDate)
	require.NoError(t, err)

	result, err := f.uc.Respond(ctx, 2, 1, domain.ProposalDeclined)
	require.NoError(t, err)
	assert.Equal(t, OutcomeDeclined, result.Outcome)
	require.NotNil(t, result.Event)
	assert.Equal(t, domain.EventSessionDeclined, result.Event.Kind)
	assert.Equal(t, "Session proposal for Sep 12, 2026, 3:30 PM was declined", result.Event.Text)

	alice, _ := f.users.GetByID(ctx, 1)
	bob, _ := f.users.GetByID(ctx, 2)
	for _, m := range []*domain.Match{alice.MatchWith(2), bob.MatchWith(1)} {
		assert.Nil(t, m.SessionProposal)
		assert.Nil(t, m.ScheduledSession)
	}
}

func TestRespondWithoutPendingIsNoOp(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	result, err := f.uc.Respond(ctx, 2, 1, domain.ProposalAccepted)
	require.NoError(t, err)
	assert.Equal(t, OutcomeNoPending, result.Outcome)
	assert.Nil(t, result.Event)
	assert.Empty(t, f.recorder.Events())
}

func TestRespondRejectsUnknownAnswer(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Respond(context.Background(), 2, 1, domain.ProposalResponse("maybe"))
	assert.ErrorIs(t, err, domain.ErrInvalidResponse)
}

func TestExportRequiresScheduledSession(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.uc.ExportICS(ctx, 1, 2)
	assert.ErrorIs(t, err, domain.ErrNoScheduledSession)

	_, err = f.uc.Propose(ctx, 1, 2, sessionDate)
	require.NoError(t, err)
	// Pending only, still nothing confirmed.
	_, err = f.uc.ExportGoogleCalendarURL(ctx, 1, 2)
	assert.ErrorIs(t, err, domain.ErrNoScheduledSession)
}

func TestExportScheduledSession(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.uc.Propose(ctx, 1, 2, sessionDate)
	require.NoError(t, err)
	_, err = f.uc.Respond(ctx, 2, 1, domain.ProposalAccepted)
	require.NoError(t, err)

	ics, err := f.uc.ExportICS(ctx, 1, 2)
	require.NoError(t, err)
	assert.Contains(t, ics, "BEGIN:VCALENDAR")
	assert.Contains(t, ics, "SUMMARY:Skill Swap Session with Bob")
	assert.Contains(t, ics, "DTSTART:20260912T153000Z")

	url, err := f.uc.ExportGoogleCalendarURL(ctx, 1, 2)
	require.NoError(t, err)
	assert.Contains(t, url, "https://www.google.com/calendar/render")
	assert.Contains(t, url, "20260912T153000Z%2F20260912T163000Z")
}
