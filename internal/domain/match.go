package domain

import "time"

// SwapStatus is the lifecycle state of a skill swap with one counterpart.
// It only ever moves forward: not-started -> in-progress -> completed.
type SwapStatus string

const (
	SwapNotStarted SwapStatus = "not-started"
	SwapInProgress SwapStatus = "in-progress"
	SwapCompleted  SwapStatus = "completed"
)

// Valid reports whether s is one of the known swap states.
func (s SwapStatus) Valid() bool {
	switch s {
	case SwapNotStarted, SwapInProgress, SwapCompleted:
		return true
	}
	return false
}

// CanAdvanceTo reports whether next is the direct successor of s.
// Skips, regressions and repeats are all invalid transitions.
func (s SwapStatus) CanAdvanceTo(next SwapStatus) bool {
	switch s {
	case SwapNotStarted:
		return next == SwapInProgress
	case SwapInProgress:
		return next == SwapCompleted
	}
	return false
}

const ProposalPending = "pending"

// SessionProposal is an unconfirmed candidate session date awaiting the
// counterpart's accept/decline.
type SessionProposal struct {
	ProposerID int       `json:"proposer_id"`
	Date       time.Time `json:"date"`
	Status     string    `json:"status"`
}

// Match is one user's directed view of a connection with a counterpart.
// Status, SessionProposal and ScheduledSession are mirrored with the
// counterpart's view of the same pair at all times; Rating is per-observer.
type Match struct {
	UserID           int              `json:"user_id"`
	Status           SwapStatus       `json:"status"`
	SessionProposal  *SessionProposal `json:"session_proposal,omitempty"`
	ScheduledSession *time.Time       `json:"scheduled_session,omitempty"`
	Rating           *int             `json:"rating,omitempty"`
}

// ProposalResponse is a counterpart's answer to a pending session proposal.
type ProposalResponse string

const (
	ProposalAccepted ProposalResponse = "accepted"
	ProposalDeclined ProposalResponse = "declined"
)

func (r ProposalResponse) Valid() bool {
	return r == ProposalAccepted || r == ProposalDeclined
}
