package game

import "golang.org/x/exp/rand"

type CardType int

const (
	BombCard      CardType = iota // 0
	BlockadeCard                  // 1
	AirliftCard                   // 2
	DiplomacyCard                 // 3
)

var cardTypes = []CardType{BombCard, BlockadeCard, AirliftCard, DiplomacyCard}

func (c CardType) String() string {
	switch c {
	case BombCard:
		return "bomb"
	case BlockadeCard:
		return "blockade"
	case AirliftCard:
		return "airlift"
	case DiplomacyCard:
		return "diplomacy"
	default:
		return "unknown"
	}
}

// OrderKind returns the kind of order playing the card produces.
func (c CardType) OrderKind() OrderKind {
	switch c {
	case BombCard:
		return Bomb
	case BlockadeCard:
		return Blockade
	case AirliftCard:
		return Airlift
	case DiplomacyCard:
		return Negotiate
	default:
		return -1
	}
}

// Deck is a draw pile of cards. Played cards are not returned.
type Deck struct {
	cards []CardType
	rng   *rand.Rand
}

// NewDeck builds a deck holding copies of each card type, shuffled with rng.
func NewDeck(copies int, rng *rand.Rand) *Deck {
	d := &Deck{rng: rng}
	for i := 0; i < copies; i++ {
		d.cards = append(d.cards, cardTypes...)
	}
	rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
	return d
}

// Len returns the number of cards left.
func (d *Deck) Len() int {
	return len(d.cards)
}

// Draw takes the top card. It returns false once the deck is empty.
func (d *Deck) Draw() (CardType, bool) {
	if len(d.cards) == 0 {
		return 0, false
	}
	card := d.cards[0]
	d.cards = d.cards[1:]
	return card, true
}

// AwardCardIfEligible gives p one card if it conquered a territory this round.
func (gs *GameState) AwardCardIfEligible(p *Player) (CardType, bool) {
	defer func() { p.Conquered = false }()
	if !p.Conquered || gs.Deck == nil {
		return 0, false
	}
	card, ok := gs.Deck.Draw()
	if ok {
		p.Hand = append(p.Hand, card)
	}
	return card, ok
}
