package deck

import (
	"errors"
	rand "math/rand/v2"
)

// ErrDeckExhausted is returned when drawing from an empty deck
var ErrDeckExhausted = errors.New("deck exhausted")

// Size is the number of cards in a standard deck
const Size = 52

// Deck represents a standard 52-card deck. Cards are drawn from random
// positions, so the deck never needs an explicit shuffle.
type Deck struct {
	cards []Card
	rng   *rand.Rand
}

// NewDeck creates a full deck drawing with the given random source
func NewDeck(rng *rand.Rand) *Deck {
	d := &Deck{
		cards: make([]Card, 0, Size),
		rng:   rng,
	}
	d.fill()
	return d
}

func (d *Deck) fill() {
	d.cards = d.cards[:0]
	for _, suit := range Suits {
		for rank := MinRank; rank <= MaxRank; rank++ {
			d.cards = append(d.cards, Card{Suit: suit, Rank: rank})
		}
	}
}

// Draw removes and returns a card from a random position
func (d *Deck) Draw() (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, ErrDeckExhausted
	}

	pos := d.rng.IntN(len(d.cards))
	card := d.cards[pos]
	last := len(d.cards) - 1
	d.cards[pos] = d.cards[last]
	d.cards = d.cards[:last]
	return card, nil
}

// DrawN draws n cards. On exhaustion the cards drawn so far are returned
// together with ErrDeckExhausted.
func (d *Deck) DrawN(n int) ([]Card, error) {
	cards := make([]Card, 0, n)
	for range n {
		card, err := d.Draw()
		if err != nil {
			return cards, err
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// Deal deals numCards to each of numHands hands, one card at a time in
// rotation as a dealer would.
func (d *Deck) Deal(numHands, numCards int) ([][]Card, error) {
	hands := make([][]Card, numHands)
	for i := range hands {
		hands[i] = make([]Card, 0, numCards)
	}

	for range numCards {
		for k := range hands {
			card, err := d.Draw()
			if err != nil {
				return nil, err
			}
			hands[k] = append(hands[k], card)
		}
	}
	return hands, nil
}

// CardsRemaining returns the number of cards left in the deck
func (d *Deck) CardsRemaining() int {
	return len(d.cards)
}

// Reset restores the deck to all 52 cards
func (d *Deck) Reset() {
	d.fill()
}
