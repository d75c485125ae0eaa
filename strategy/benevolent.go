package strategy

import "warzone/game"

// Benevolent reinforces its weakest territories and never attacks.
type Benevolent struct{}

func (*Benevolent) Name() string { return "benevolent" }

// ToDefend returns owned territories weakest first.
func (*Benevolent) ToDefend(gs *game.GameState, p *game.Player) []int {
	return byArmies(gs, p.OwnedIDs(), false)
}

func (*Benevolent) ToAttack(*game.GameState, *game.Player) []int {
	return []int{}
}

// IssueOrder deploys half of the remaining pool to the currently weakest territory, airlifts
// from the strongest to the weakest when it holds the card, then makes one fortifying move.
func (b *Benevolent) IssueOrder(gs *game.GameState, p *game.Player) {
	owned := p.OwnedIDs()
	if len(owned) == 0 {
		p.Committed = true
		return
	}
	weakest := byMovable(gs, owned, false)[0]

	if p.Reinforcements > 0 {
		issue(gs, p, game.NewDeploy((p.Reinforcements+1)/2, weakest))
		return
	}

	if p.HasCard(game.AirliftCard) && len(owned) > 1 {
		strongest := byMovable(gs, owned, true)[0]
		if diff := gs.MovableArmies(strongest) - gs.MovableArmies(weakest); diff >= 2 {
			o := game.NewAirlift(diff/2, strongest, weakest)
			if err := p.PlayCard(game.AirliftCard, o); err == nil {
				reserve(gs, p, o)
				return
			}
		}
	}

	if !p.Orders.Contains(game.Advance) {
		var neighbors []int
		for _, adjID := range gs.Map.Territories[weakest].AdjacentIDs {
			if p.Owns(adjID) {
				neighbors = append(neighbors, adjID)
			}
		}
		if len(neighbors) > 0 {
			donor := byMovable(gs, neighbors, true)[0]
			if diff := gs.MovableArmies(donor) - gs.MovableArmies(weakest); diff >= 2 {
				issue(gs, p, game.NewAdvance(diff/2, donor, weakest))
				return
			}
		}
	}

	p.Committed = true
}
