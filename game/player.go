package game

import "warzone/utils"

// Strategy decides which territories a player defends and attacks and which orders it issues.
//
// IssueOrder adds at most one order to the player's queue per call and must eventually set
// p.Committed once the player has nothing left to do this round. A strategy that never commits
// is a programming error; the engine stops calling it after a bounded number of calls.
type Strategy interface {
	Name() string
	ToDefend(gs *GameState, p *Player) []int
	ToAttack(gs *GameState, p *Player) []int
	IssueOrder(gs *GameState, p *Player)
}

// Player is a participant in the game.
type Player struct {
	ID             int
	Name           string
	Reinforcements int              // Armies left to deploy
	Territories    map[int]struct{} // Owned territory IDs, maintained by GameState.SetOwner
	Orders         *OrdersList      // Orders issued this round
	Hand           []CardType       // Cards held
	Diplomacy      map[int]struct{} // Player IDs under truce for the current round
	Strategy       Strategy         // Decision policy
	Committed      bool             // Set by the strategy when done issuing this round
	Conquered      bool             // Whether a territory was conquered this round
}

// NewPlayer creates a player with empty holdings.
func NewPlayer(id int, name string, strategy Strategy) *Player {
	return &Player{
		ID:          id,
		Name:        name,
		Territories: make(map[int]struct{}),
		Orders:      NewOrdersList(),
		Diplomacy:   make(map[int]struct{}),
		Strategy:    strategy,
	}
}

// Owns reports whether the player owns the territory.
func (p *Player) Owns(territoryID int) bool {
	_, ok := p.Territories[territoryID]
	return ok
}

// OwnedIDs returns the owned territory IDs in ascending order.
func (p *Player) OwnedIDs() []int {
	return utils.SortedKeys(p.Territories)
}

// HasTruce reports whether the player negotiated with otherID this round.
func (p *Player) HasTruce(otherID int) bool {
	_, ok := p.Diplomacy[otherID]
	return ok
}

// AddTruce records a truce with otherID.
func (p *Player) AddTruce(otherID int) {
	p.Diplomacy[otherID] = struct{}{}
}

// ClearTruces forgets all truces.
func (p *Player) ClearTruces() {
	clear(p.Diplomacy)
}

// IssueOrder appends an order to the player's queue.
func (p *Player) IssueOrder(o Order) {
	p.Orders.Add(o)
}

// HasCard reports whether the player holds a card of the given type.
func (p *Player) HasCard(card CardType) bool {
	return utils.Contains(p.Hand, card)
}

// PlayCard spends a held card to issue the order it grants.
func (p *Player) PlayCard(card CardType, o Order) error {
	i := utils.FindIndex(p.Hand, card)
	if i < 0 {
		return ErrCardNotHeld
	}
	if card.OrderKind() != o.Kind {
		return ErrCardMismatch
	}
	p.Hand = utils.RemoveAt(p.Hand, i)
	p.IssueOrder(o)
	return nil
}

func (p *Player) String() string {
	return p.Name
}
