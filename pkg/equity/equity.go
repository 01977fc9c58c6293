// Package equity estimates each player's chance of winning a hand by Monte
// Carlo simulation: repeatedly completing the community cards at random and
// ranking every player's best hand.
package equity

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"runtime"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"holdem-engine/internal/rng"
	"holdem-engine/pkg/deck"
	"holdem-engine/pkg/poker"
)

// ErrNoPlayers is an error when there are no hole cards to simulate
var ErrNoPlayers = errors.New("at least one player's hole cards are required")

// DefaultIterations is the iteration count used when none is configured
const DefaultIterations = 10000

// Estimator runs win-probability simulations. It is read-only with respect
// to game state and safe for concurrent use.
type Estimator struct {
	// Iterations trades latency for variance; higher is tighter
	Iterations int
	// Workers caps the simulation goroutines; defaults to GOMAXPROCS
	Workers int
}

// WinProbabilities estimates each player's probability of winning, in percent.
// Tied simulations split the credit fractionally, so the probabilities sum to
// at most 100.
func (e *Estimator) WinProbabilities(ctx context.Context, holeCards map[uuid.UUID]deck.Hand, communityCards deck.Hand) (map[uuid.UUID]float64, error) {
	if len(holeCards) == 0 {
		return nil, ErrNoPlayers
	}

	iterations := e.Iterations
	if iterations <= 0 {
		iterations = DefaultIterations
	}

	workers := e.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > iterations {
		workers = iterations
	}

	// stable order so every worker indexes players the same way
	playerIDs := make([]uuid.UUID, 0, len(holeCards))
	for id := range holeCards {
		playerIDs = append(playerIDs, id)
	}

	known := make([]*deck.Card, 0, len(playerIDs)*2+len(communityCards))
	for _, id := range playerIDs {
		known = append(known, holeCards[id]...)
	}
	known = append(known, communityCards...)

	var mu sync.Mutex
	credit := make([]float64, len(playerIDs))

	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		share := iterations / workers
		if w < iterations%workers {
			share++
		}

		g.Go(func() error {
			r := rand.New(rand.NewSource(rng.Seed()))
			localCredit := make([]float64, len(playerIDs))

			for i := 0; i < share; i++ {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}

				if err := simulateOnce(r, playerIDs, holeCards, communityCards, known, localCredit); err != nil {
					return err
				}
			}

			mu.Lock()
			for i, c := range localCredit {
				credit[i] += c
			}
			mu.Unlock()

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	probabilities := make(map[uuid.UUID]float64, len(playerIDs))
	for i, id := range playerIDs {
		probabilities[id] = credit[i] * 100 / float64(iterations)
	}

	return probabilities, nil
}

// simulateOnce deals one random completion of the community cards and credits
// the winner (or splits the credit across a tie)
func simulateOnce(r *rand.Rand, playerIDs []uuid.UUID, holeCards map[uuid.UUID]deck.Hand, communityCards deck.Hand, known []*deck.Card, credit []float64) error {
	d := deck.NewFromDrawn(known)
	d.SetSeed(r.Int63())
	d.Shuffle()

	simCommunity := communityCards.Clone()
	for len(simCommunity) < 5 {
		card, err := d.Draw()
		if err != nil {
			return err
		}

		simCommunity.AddCard(card)
	}

	ranks := make([]*poker.HandRank, len(playerIDs))
	var best *poker.HandRank
	for i, id := range playerIDs {
		cards := make([]*deck.Card, 0, len(holeCards[id])+len(simCommunity))
		cards = append(cards, holeCards[id]...)
		cards = append(cards, simCommunity...)

		rank, err := poker.Evaluate(cards)
		if err != nil {
			return fmt.Errorf("could not evaluate simulated hand: %w", err)
		}

		ranks[i] = rank
		if rank.Compare(best) > 0 {
			best = rank
		}
	}

	winners := make([]int, 0, len(playerIDs))
	for i, rank := range ranks {
		if rank.Compare(best) == 0 {
			winners = append(winners, i)
		}
	}

	for _, i := range winners {
		credit[i] += 1 / float64(len(winners))
	}

	return nil
}
