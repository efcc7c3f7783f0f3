package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// EntryType distinguishes incomes from expenses.
type EntryType string

const (
	TypeIncome  EntryType = "INCOME"
	TypeExpense EntryType = "EXPENSE"
)

// EntryStatus is the workflow state of an entry. New entries always start
// as PENDING; any transition between the three states is allowed.
type EntryStatus string

const (
	StatusPending   EntryStatus = "PENDING"
	StatusSettled   EntryStatus = "SETTLED"
	StatusCancelled EntryStatus = "CANCELLED"
)

func (t EntryType) String() string { return string(t) }

func (s EntryStatus) String() string { return string(s) }

// ParseEntryType validates a wire value against the closed enumeration.
func ParseEntryType(s string) (EntryType, error) {
	switch EntryType(s) {
	case TypeIncome, TypeExpense:
		return EntryType(s), nil
	}
	return "", fmt.Errorf("unknown entry type %q", s)
}

// ParseEntryStatus validates a wire value against the closed enumeration.
func ParseEntryStatus(s string) (EntryStatus, error) {
	switch EntryStatus(s) {
	case StatusPending, StatusSettled, StatusCancelled:
		return EntryStatus(s), nil
	}
	return "", fmt.Errorf("unknown entry status %q", s)
}

// Entry is a single financial movement (a "launch") attributed to a user
// in a given month and year. UserID is a reference, not an ownership link:
// deleting a user does not cascade into entries.
type Entry struct {
	ID               int64
	Description      string
	Month            int
	Year             int
	Value            decimal.Decimal
	UserID           int64
	Type             EntryType
	Status           EntryStatus
	RegistrationDate time.Time
}
