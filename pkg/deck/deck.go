package deck

import (
	"errors"
	"math/rand"
	"sort"

	"holdem-engine/internal/rng"
)

// ErrEndOfDeck is an error when Draw() is attempted and there are no more cards
var ErrEndOfDeck = errors.New("end of deck reached")

// Deck represents a playing deck
//
// A deck is shuffled at construction. Reconstructing a deck mid-hand with
// NewFromDrawn reshuffles the remaining cards, so only the set of undealt
// cards is preserved across reconstructions, not their order.
type Deck struct {
	Cards []*Card `json:"cards"`
	seed  int64
	rng   *rand.Rand
}

// New returns a new, shuffled deck of 52 cards
func New() *Deck {
	return NewFromDrawn(nil)
}

// NewFromDrawn returns a shuffled deck built from the 52 cards minus the
// already-drawn cards
func NewFromDrawn(drawn []*Card) *Deck {
	d := &Deck{}
	d.SetSeed(rng.Seed())
	d.buildDeck(drawn)
	d.shuffle()

	return d
}

// SetSeed will set the seed
// This should only be used by tests; the seed is normally chosen at construction
func (d *Deck) SetSeed(seed int64) {
	d.seed = seed
	d.rng = rand.New(rand.NewSource(seed))
}

// GetSeed returns the seed used to shuffle the deck
func (d *Deck) GetSeed() int64 {
	return d.seed
}

func (d *Deck) buildDeck(drawn []*Card) {
	cards := make([]*Card, 0, 52)
	for _, suit := range Suits {
		for rank := 2; rank <= Ace; rank++ {
			card := &Card{
				Rank: rank,
				Suit: suit,
			}

			if containsCard(drawn, card) {
				continue
			}

			cards = append(cards, card)
		}
	}

	d.Cards = cards
}

// Shuffle will reshuffle the remaining cards
// The order after a shuffle is fully determined by the seed and the set of
// remaining cards, which keeps reconstruction reproducible under a fixed seed.
func (d *Deck) Shuffle() {
	d.shuffle()
}

func (d *Deck) shuffle() {
	sort.Slice(d.Cards, func(i, j int) bool {
		if d.Cards[i].Suit != d.Cards[j].Suit {
			return d.Cards[i].Suit < d.Cards[j].Suit
		}

		return d.Cards[i].Rank < d.Cards[j].Rank
	})

	for j := len(d.Cards) - 1; j > 0; j-- {
		i := d.rng.Intn(j + 1)

		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	}
}

// Draw will draw the next card
// If there are no more cards, an ErrEndOfDeck is returned along with a nil card.
func (d *Deck) Draw() (*Card, error) {
	if len(d.Cards) <= 0 {
		return nil, ErrEndOfDeck
	}

	card := d.Cards[0]
	d.Cards = d.Cards[1:]

	return card, nil
}

// CanDraw returns true if there are {want} cards left in the deck
func (d *Deck) CanDraw(want int) bool {
	return len(d.Cards) >= want
}

// CardsLeft returns the number of cards left in the deck
func (d *Deck) CardsLeft() int {
	return len(d.Cards)
}

// HasCard returns true if the card has not been drawn yet
func (d *Deck) HasCard(card *Card) bool {
	return containsCard(d.Cards, card)
}

func containsCard(cards []*Card, card *Card) bool {
	for _, c := range cards {
		if c.Equal(card) {
			return true
		}
	}

	return false
}
