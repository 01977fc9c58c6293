package holdem

import "errors"

// ErrOutOfTurn is an error when a player acts out of turn
var ErrOutOfTurn = errors.New("it is not your turn")

// ErrActionsSuspended is an error when an action arrives while betting is
// closed pending an automatic street advance
var ErrActionsSuspended = errors.New("betting is suspended until the next street is dealt")

// ErrHandComplete is an error when a hand at shutdown is advanced again
var ErrHandComplete = errors.New("the hand is already complete")

// ErrNoHand is an error when a game has no hand in progress
var ErrNoHand = errors.New("no hand in progress")

// ErrPlayerNotFound is an error when a player with the provided ID cannot be found
var ErrPlayerNotFound = errors.New("player not found")

// ErrNoWaitingPlayer is an error when a full seat traversal finds nobody who
// can receive the turn. Indicates corrupted game state.
var ErrNoWaitingPlayer = errors.New("no waiting player found")

// ErrNoPivot is an error when a full seat traversal finds neither the pivot
// player nor a waiting player. Indicates corrupted game state.
var ErrNoPivot = errors.New("no pivot player found")

// ErrOverdraft is an error when an action would take a player's chips below
// zero. Callers must clamp amounts to the player's stack first.
var ErrOverdraft = errors.New("action exceeds the player's chips")

// ErrInvalidRaise is an error when a raise has a missing or non-positive amount
var ErrInvalidRaise = errors.New("raise amount must be positive")

// ErrNoEligiblePlayers is an error when settlement finds nobody left in the hand
var ErrNoEligiblePlayers = errors.New("no players are eligible for the pot")
