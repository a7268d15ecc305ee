package entities

import (
	"sort"
	"time"
)

// ApplicationStatus represents the lifecycle of a pawn application.
//
// Domain notes:
//   - The declaration order below is load-bearing: it is both the
//     collection sort order (triage queues first, terminal statuses last)
//     and the source of the legal-transition table. Keep them in one place
//     so the two cannot drift.
//   - APPROVED and REJECTED are terminal; no write is accepted against a
//     record in either of them.

type ApplicationStatus string

const (
	StatusUnderReview          ApplicationStatus = "UNDER_REVIEW"
	StatusAwaitingConfirmation ApplicationStatus = "AWAITING_CONFIRMATION"
	StatusApproved             ApplicationStatus = "APPROVED"
	StatusRejected             ApplicationStatus = "REJECTED"
)

// AllStatuses lists every status in lifecycle (and therefore sort) order.
var AllStatuses = []ApplicationStatus{
	StatusUnderReview,
	StatusAwaitingConfirmation,
	StatusApproved,
	StatusRejected,
}

// legalTransitions is derived from the same declaration order: a record
// under review can only be priced, a priced record can only be confirmed
// or declined.
var legalTransitions = map[ApplicationStatus][]ApplicationStatus{
	StatusUnderReview:          {StatusAwaitingConfirmation},
	StatusAwaitingConfirmation: {StatusApproved, StatusRejected},
}

// Rank returns the position of the status in the lifecycle order. Unknown
// statuses sort last so corrupt store data cannot jump a queue.
func (s ApplicationStatus) Rank() int {
	for i, st := range AllStatuses {
		if st == s {
			return i
		}
	}
	return len(AllStatuses)
}

func (s ApplicationStatus) Valid() bool {
	for _, st := range AllStatuses {
		if st == s {
			return true
		}
	}
	return false
}

// Terminal reports whether no further transition is defined from s.
func (s ApplicationStatus) Terminal() bool {
	return len(legalTransitions[s]) == 0
}

// CanTransitionTo reports whether moving from s to next is a legal
// lifecycle step.
func (s ApplicationStatus) CanTransitionTo(next ApplicationStatus) bool {
	for _, st := range legalTransitions[s] {
		if st == next {
			return true
		}
	}
	return false
}

// MaxAttachments bounds the number of photos per application.
const MaxAttachments = 5

// Categories an item can be submitted under.
var Categories = []string{
	"Clothing",
	"Electronics",
	"Furniture",
	"Jewelry",
	"Antiques",
	"Other",
}

func ValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

// PaymentMethods accepted at the confirmation step.
var PaymentMethods = []string{"cash", "card"}

func ValidPaymentMethod(method string) bool {
	for _, m := range PaymentMethods {
		if m == method {
			return true
		}
	}
	return false
}

// ContactDetails is the customer payout record captured on confirmation.
type ContactDetails struct {
	FullName      string `json:"full_name"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	PaymentMethod string `json:"payment_method"`
}

// Application is a customer's pawn-evaluation submission persisted in
// DynamoDB.
//
// Storage model:
//   - PK: id
//
// Immutability: id, user_id and submitted_at never change after creation;
// submitted_at is stamped by the repository at write time so ordering does
// not depend on client clocks. Price and admin comment are set together on
// pricing; contact details are set only on confirmation and never cleared.
type Application struct {
	ID           string            `json:"id"`
	UserID       string            `json:"user_id"`
	PhotoBase64  []string          `json:"photo_base64,omitempty"`
	Category     string            `json:"category"`
	Comment      string            `json:"comment"`
	SubmittedAt  time.Time         `json:"submitted_at"`
	Status       ApplicationStatus `json:"status"`
	Price        *float64          `json:"price,omitempty"`
	AdminComment *string           `json:"admin_comment,omitempty"`
	Contact      *ContactDetails   `json:"contact,omitempty"`
}

// SortApplications orders a collection snapshot by status (lifecycle
// order ascending) and then newest-first within each status group. Every
// snapshot handed to a consumer must already be in this order.
func SortApplications(apps []Application) {
	sort.SliceStable(apps, func(i, j int) bool {
		ri, rj := apps[i].Status.Rank(), apps[j].Status.Rank()
		if ri != rj {
			return ri < rj
		}
		if !apps[i].SubmittedAt.Equal(apps[j].SubmittedAt) {
			return apps[i].SubmittedAt.After(apps[j].SubmittedAt)
		}
		return apps[i].ID < apps[j].ID
	})
}
