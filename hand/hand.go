// Package hand models a hand of banked ticket results and resolves its
// payout. A hand is an ordered, size-bounded buffer: order defines each
// ticket's "prior" and "next" neighbors for effect resolution.
package hand

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/goldrush-games/scratch-engine/catalog"
)

// MaxHandSize bounds how many tickets a player can bank before cashing out.
const MaxHandSize = 10

// ErrHandFull is returned when appending to a hand at MaxHandSize.
var ErrHandFull = errors.New("hand is full")

// Ticket is one resolved ticket banked into a hand.
type Ticket struct {
	LayoutID  string              `json:"layoutId"`
	PrizeID   string              `json:"prizeId"`
	Gold      int64               `json:"gold"`
	CreatedAt time.Time           `json:"createdAt"`
	Effect    *catalog.HandEffect `json:"effect,omitempty"`
}

// Hand collects tickets a player banked instead of cashing out. Created on
// the first banked ticket, grown by append, emptied on cash-out or discard.
type Hand struct {
	ID        string    `json:"id"`
	Tickets   []Ticket  `json:"tickets"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewHand() *Hand {
	return &Hand{
		ID:        uuid.NewString(),
		CreatedAt: time.Now(),
	}
}

// Add appends a ticket, preserving bank order.
func (h *Hand) Add(t Ticket) error {
	if len(h.Tickets) >= MaxHandSize {
		return ErrHandFull
	}
	h.Tickets = append(h.Tickets, t)
	return nil
}

// Clear empties the hand after a cash-out or explicit discard.
func (h *Hand) Clear() {
	h.Tickets = nil
}
