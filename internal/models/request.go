package models

import "time"

// Request statuses. A request starts pending and moves through the lifecycle
// below; accepted copies become active loans which end returned or overdue.
const (
	RequestStatusPending  = "pending"
	RequestStatusAccepted = "accepted"
	RequestStatusDeclined = "declined"
	RequestStatusActive   = "active"
	RequestStatusOverdue  = "overdue"
	RequestStatusReturned = "returned"
)

// requestTransitions maps each status to the statuses it may move to.
// declined, overdue and returned are terminal.
var requestTransitions = map[string][]string{
	RequestStatusPending:  {RequestStatusAccepted, RequestStatusDeclined},
	RequestStatusAccepted: {RequestStatusActive},
	RequestStatusActive:   {RequestStatusOverdue, RequestStatusReturned},
}

// ValidRequestTransition reports whether a request may move from one status
// to another.
func ValidRequestTransition(from, to string) bool {
	for _, next := range requestTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Request is a borrow transaction between a lender and a borrower for a
// specific game. The borrower must differ from the lender.
type Request struct {
	ID             string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	LenderID       string    `json:"lenderId" gorm:"index;type:varchar(36)" validate:"required"`
	BorrowerID     string    `json:"borrowerId" gorm:"index;type:varchar(36)" validate:"required"`
	GameID         string    `json:"gameId" gorm:"type:varchar(36)" validate:"required"`
	Status         string    `json:"status"`
	StartDate      string    `json:"startDate"`
	EndDate        string    `json:"endDate"`
	MeetupLocation string    `json:"meetupLocation,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
