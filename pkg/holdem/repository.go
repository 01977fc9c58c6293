package holdem

import "github.com/google/uuid"

// Repository is the persistence collaborator the driving layer supplies.
// Implementations must load and save a game atomically between operations;
// the engine applies no retries and assumes a single writer per game.
type Repository interface {
	// Game loads a game with its players and current hand
	Game(id uuid.UUID) (*Game, error)
	// SaveGame persists the game
	SaveGame(g *Game) error
	// SaveWinners persists the settlement records for a completed hand
	SaveWinners(winners []*Winner) error
	// Winners returns the settlement records for a hand
	Winners(handID uuid.UUID) ([]*Winner, error)
}
