package session

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/skillswap-app/skillswap-backend/internal/calendar"
	"github.com/skillswap-app/skillswap-backend/internal/domain"
	"github.com/skillswap-app/skillswap-backend/internal/repository"
)

// Publisher delivers system message events to whatever transport the host
// wires in. Emission is unconditional; visibility is the publisher's concern.
type Publisher interface {
	Publish(ctx context.Context, event *domain.SystemMessageEvent) error
}

// SessionUseCase runs the propose/accept/decline negotiation on top of an
// existing match, and formats scheduled sessions for calendar export.
type SessionUseCase struct {
	userRepo    repository.UserRepository
	messageRepo repository.MessageRepository
	publisher   Publisher
}

func NewSessionUseCase(
	userRepo repository.UserRepository,
	messageRepo repository.MessageRepository,
	publisher Publisher,
) *SessionUseCase {
	return &SessionUseCase{
		userRepo:    userRepo,
		messageRepo: messageRepo,
		publisher:   publisher,
	}
}

// ProposeResult reports what happened to a proposal. Superseded is set when a
// previous pending proposal was displaced by this one.
type ProposeResult struct {
	Proposal   *domain.SessionProposal    `json:"proposal"`
	Superseded *domain.SessionProposal    `json:"superseded,omitempty"`
	Event      *domain.SystemMessageEvent `json:"event"`
}

// RespondOutcome classifies the result of answering a proposal.
type RespondOutcome string

const (
	OutcomeConfirmed RespondOutcome = "confirmed"
	OutcomeDeclined  RespondOutcome = "declined"
	// OutcomeNoPending means there was nothing to respond to; the call is a
	// no-op, not an error.
	OutcomeNoPending RespondOutcome = "no_pending_proposal"
)

type RespondResult struct {
	Outcome RespondOutcome             `json:"outcome"`
	Event   *domain.SystemMessageEvent `json:"event,omitempty"`
}

func formatSessionDate(t time.Time) string {
	return t.Format("Jan 2, 2006, 3:04 PM")
}

// Propose sets a pending session proposal on both views of the match and
// clears any previously scheduled session. An existing pending proposal is
// replaced and reported back as superseded rather than silently dropped.
func (uc *SessionUseCase) Propose(ctx context.Context, proposerID, partnerID int, date time.Time) (*ProposeResult, error) {
	proposal := &domain.SessionProposal{
		ProposerID: proposerID,
		Date:       date,
		Status:     domain.ProposalPending,
	}

	var (
		superseded   *domain.SessionProposal
		proposerName string
	)
	err := uc.userRepo.UpdatePair(ctx, proposerID, partnerID, func(proposer, partner *domain.User) error {
		pm := proposer.MatchWith(partner.ID)
		cm := partner.MatchWith(proposer.ID)
		if pm == nil || cm == nil {
			return domain.ErrMatchNotFound
		}

		if pm.SessionProposal != nil {
			old := *pm.SessionProposal
			superseded = &old
		}

		p1, p2 := *proposal, *proposal
		pm.SessionProposal = &p1
		cm.SessionProposal = &p2
		pm.ScheduledSession = nil
		cm.ScheduledSession = nil

		proposerName = proposer.Name
		return nil
	})
	if err != nil {
		return nil, err
	}

	text := fmt.Sprintf("%s proposed a session on %s", proposerName, formatSessionDate(date))
	event := uc.emit(ctx, domain.EventSessionProposed, proposerID, partnerID, text, date)

	return &ProposeResult{Proposal: proposal, Superseded: superseded, Event: event}, nil
}

// Respond answers the pending proposal with the partner. Accepting turns the
// proposal into a scheduled session on both views; declining just clears it.
// Responding when nothing is pending is a no-op.
func (uc *SessionUseCase) Respond(ctx context.Context, responderID, partnerID int, response domain.ProposalResponse) (*RespondResult, error) {
	if !response.Valid() {
		return nil, domain.ErrInvalidResponse
	}

	var (
		pending      bool
		proposalDate time.Time
	)
	err := uc.userRepo.UpdatePair(ctx, responderID, partnerID, func(responder, partner *domain.User) error {
		rm := responder.MatchWith(partner.ID)
		pm := partner.MatchWith(responder.ID)
		if rm == nil || pm == nil {
			return domain.ErrMatchNotFound
		}
		if rm.SessionProposal == nil {
			return nil
		}

		pending = true
		proposalDate = rm.SessionProposal.Date

		if response == domain.ProposalAccepted {
			d1, d2 := proposalDate, proposalDate
			rm.ScheduledSession = &d1
			pm.ScheduledSession = &d2
		}
		rm.SessionProposal = nil
		pm.SessionProposal = nil
		return nil
	})
	if err != nil {
		return nil, err
	}
	if !pending {
		return &RespondResult{Outcome: OutcomeNoPending}, nil
	}

	formatted := formatSessionDate(proposalDate)
	if response == domain.ProposalAccepted {
		text := fmt.Sprintf("Session confirmed for %s", formatted)
		event := uc.emit(ctx, domain.EventSessionConfirmed, responderID, partnerID, text, proposalDate)
		return &RespondResult{Outcome: OutcomeConfirmed, Event: event}, nil
	}

	text := fmt.Sprintf("Session proposal for %s was declined", formatted)
	event := uc.emit(ctx, domain.EventSessionDeclined, responderID, partnerID, text, proposalDate)
	return &RespondResult{Outcome: OutcomeDeclined, Event: event}, nil
}

// emit records the announcement in the pair's conversation log and hands it
// to the publisher. Delivery failures are logged, never propagated: the
// lifecycle change itself has already been applied.
func (uc *SessionUseCase) emit(ctx context.Context, kind string, senderID, receiverID int, text string, date time.Time) *domain.SystemMessageEvent {
	now := time.Now().UTC()
	event := &domain.SystemMessageEvent{
		ID:         uuid.NewString(),
		Kind:       kind,
		SenderID:   senderID,
		ReceiverID: receiverID,
		Text:       text,
		Date:       date,
		EmittedAt:  now,
	}

	msg := &domain.Message{
		ID:         event.ID,
		SenderID:   senderID,
		ReceiverID: receiverID,
		Text:       text,
		IsSystem:   true,
		SentAt:     now,
	}
	if err := uc.messageRepo.Append(ctx, msg); err != nil {
		fmt.Printf("Warning: failed to log system message: %v\n", err)
	}
	if uc.publisher != nil {
		if err := uc.publisher.Publish(ctx, event); err != nil {
			fmt.Printf("Warning: failed to publish system message event: %v\n", err)
		}
	}
	return event
}

// ExportICS renders the scheduled session with the partner as an ICS blob.
func (uc *SessionUseCase) ExportICS(ctx context.Context, currentUserID, partnerID int) (string, error) {
	event, err := uc.sessionEvent(ctx, currentUserID, partnerID)
	if err != nil {
		return "", err
	}
	return calendar.ICS(event), nil
}

// ExportGoogleCalendarURL renders the scheduled session as a prefilled
// Google Calendar link.
func (uc *SessionUseCase) ExportGoogleCalendarURL(ctx context.Context, currentUserID, partnerID int) (string, error) {
	event, err := uc.sessionEvent(ctx, currentUserID, partnerID)
	if err != nil {
		return "", err
	}
	return calendar.GoogleCalendarURL(event), nil
}

func (uc *SessionUseCase) sessionEvent(ctx context.Context, currentUserID, partnerID int) (calendar.Event, error) {
	user, err := uc.userRepo.GetByID(ctx, currentUserID)
	if err != nil {
		return calendar.Event{}, err
	}
	m := user.MatchWith(partnerID)
	if m == nil {
		return calendar.Event{}, domain.ErrMatchNotFound
	}
	if m.ScheduledSession == nil {
		return calendar.Event{}, domain.ErrNoScheduledSession
	}

	partnerName := fmt.Sprintf("user %d", partnerID)
	if partner, err := uc.userRepo.GetByID(ctx, partnerID); err == nil {
		partnerName = partner.Name
	}

	title := fmt.Sprintf("Skill Swap Session with %s", partnerName)
	description := fmt.Sprintf("Skill swap session between %s and %s", user.Name, partnerName)
	return calendar.SessionEvent(title, description, *m.ScheduledSession), nil
}
