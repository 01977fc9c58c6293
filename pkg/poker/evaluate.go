package poker

import (
	"errors"
	"sort"

	"holdem-engine/pkg/deck"
)

// ErrInsufficientCards is an error when fewer than five cards are evaluated
var ErrInsufficientCards = errors.New("at least five cards are required")

// Evaluate returns the best five-card HandRank the supplied cards can make.
// It accepts five to seven cards (hole cards plus community cards), scores
// every five-card combination, and keeps the maximum under HandRank.Compare.
func Evaluate(cards []*deck.Card) (*HandRank, error) {
	if len(cards) < 5 {
		return nil, ErrInsufficientCards
	}

	var best *HandRank
	combo := make([]*deck.Card, 5)
	eachCombination(cards, combo, 0, 0, func(c []*deck.Card) {
		rank := scoreFiveCards(c)
		if rank.Compare(best) > 0 {
			best = rank
		}
	})

	return best, nil
}

// eachCombination calls fn with every len(combo)-card combination of cards.
// fn must not retain the slice.
func eachCombination(cards, combo []*deck.Card, start, depth int, fn func([]*deck.Card)) {
	if depth == len(combo) {
		fn(combo)
		return
	}

	for i := start; i <= len(cards)-(len(combo)-depth); i++ {
		combo[depth] = cards[i]
		eachCombination(cards, combo, i+1, depth+1, fn)
	}
}

type rankGroup struct {
	rank  int
	count int
}

func scoreFiveCards(combo []*deck.Card) *HandRank {
	sorted := make([]*deck.Card, len(combo))
	copy(sorted, combo)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Rank > sorted[j].Rank
	})

	isFlush := true
	for _, card := range sorted {
		if card.Suit != sorted[0].Suit {
			isFlush = false
			break
		}
	}

	straightHigh, isStraight := straightHighCard(sorted)
	groups := groupByRank(sorted)

	switch {
	case isFlush && isStraight:
		if straightHigh == deck.Ace {
			return &HandRank{Category: RoyalFlush, Kickers: []int{straightHigh}}
		}

		return &HandRank{Category: StraightFlush, Kickers: []int{straightHigh}}
	case groups[0].count == 4:
		kicker := highestRankExcept(sorted, groups[0].rank)
		return &HandRank{Category: FourOfAKind, Kickers: []int{groups[0].rank, kicker}}
	case groups[0].count == 3 && groups[1].count >= 2:
		return &HandRank{Category: FullHouse, Kickers: []int{groups[0].rank, groups[1].rank}}
	case isFlush:
		return &HandRank{Category: Flush, Kickers: allRanks(sorted)}
	case isStraight:
		return &HandRank{Category: Straight, Kickers: []int{straightHigh}}
	case groups[0].count == 3:
		kickers := []int{groups[0].rank}
		kickers = append(kickers, ranksExcept(sorted, []int{groups[0].rank}, 2)...)
		return &HandRank{Category: ThreeOfAKind, Kickers: kickers}
	case groups[0].count == 2 && groups[1].count == 2:
		kicker := ranksExcept(sorted, []int{groups[0].rank, groups[1].rank}, 1)
		return &HandRank{Category: TwoPair, Kickers: []int{groups[0].rank, groups[1].rank, kicker[0]}}
	case groups[0].count == 2:
		kickers := []int{groups[0].rank}
		kickers = append(kickers, ranksExcept(sorted, []int{groups[0].rank}, 3)...)
		return &HandRank{Category: OnePair, Kickers: kickers}
	default:
		return &HandRank{Category: HighCard, Kickers: allRanks(sorted)}
	}
}

// straightHighCard returns the high card of a straight in a descending-sorted
// five-card combo. The wheel (A-2-3-4-5) counts as a straight with high card 5;
// that is the only pattern where an ace plays low.
func straightHighCard(sorted []*deck.Card) (int, bool) {
	ranks := distinctRanks(sorted)
	if len(ranks) < 5 {
		return 0, false
	}

	isSeq := true
	for i := 1; i < 5; i++ {
		if ranks[i] != ranks[0]-i {
			isSeq = false
			break
		}
	}

	if isSeq {
		return ranks[0], true
	}

	if ranks[0] == deck.Ace && ranks[1] == 5 && ranks[2] == 4 && ranks[3] == 3 && ranks[4] == 2 {
		return 5, true
	}

	return 0, false
}

// groupByRank returns rank groups sorted by count descending, then rank descending
func groupByRank(sorted []*deck.Card) []rankGroup {
	groups := make([]rankGroup, 0, len(sorted))
	for _, card := range sorted {
		found := false
		for i := range groups {
			if groups[i].rank == card.Rank {
				groups[i].count++
				found = true
				break
			}
		}

		if !found {
			groups = append(groups, rankGroup{rank: card.Rank, count: 1})
		}
	}

	sort.Slice(groups, func(i, j int) bool {
		if groups[i].count != groups[j].count {
			return groups[i].count > groups[j].count
		}

		return groups[i].rank > groups[j].rank
	})

	return groups
}

func allRanks(sorted []*deck.Card) []int {
	ranks := make([]int, len(sorted))
	for i, card := range sorted {
		ranks[i] = card.Rank
	}

	return ranks
}

func distinctRanks(sorted []*deck.Card) []int {
	ranks := make([]int, 0, len(sorted))
	for _, card := range sorted {
		if len(ranks) == 0 || ranks[len(ranks)-1] != card.Rank {
			ranks = append(ranks, card.Rank)
		}
	}

	return ranks
}

func highestRankExcept(sorted []*deck.Card, except int) int {
	for _, card := range sorted {
		if card.Rank != except {
			return card.Rank
		}
	}

	return 0
}

// ranksExcept returns up to n distinct ranks, highest first, skipping the
// excluded ranks
func ranksExcept(sorted []*deck.Card, except []int, n int) []int {
	ranks := make([]int, 0, n)

Outer:
	for _, card := range sorted {
		for _, ex := range except {
			if card.Rank == ex {
				continue Outer
			}
		}

		if len(ranks) > 0 && ranks[len(ranks)-1] == card.Rank {
			continue
		}

		ranks = append(ranks, card.Rank)
		if len(ranks) == n {
			break
		}
	}

	return ranks
}
