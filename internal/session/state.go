package session

import "fmt"

// State is the position of the checkout dialogue.
type State int

const (
	Browsing State = iota
	Ordering
	Modifying
	AwaitingConfirmation
	AwaitingPayment
	Finalized
)

var stateNames = map[State]string{
	Browsing:             "browsing",
	Ordering:             "ordering",
	Modifying:            "modifying",
	AwaitingConfirmation: "awaiting_confirmation",
	AwaitingPayment:      "awaiting_payment",
	Finalized:            "finalized",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// transitions lists the states reachable from each state.
var transitions = map[State][]State{
	Browsing:             {Ordering},
	Ordering:             {Modifying},
	Modifying:            {Ordering, AwaitingConfirmation},
	AwaitingConfirmation: {Modifying, AwaitingPayment},
	AwaitingPayment:      {Finalized},
}

// CanTransition reports whether the dialogue may move from one state to another.
func CanTransition(from, to State) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
