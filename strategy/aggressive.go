package strategy

import "warzone/game"

// Aggressive concentrates everything on one hub territory and attacks from it.
type Aggressive struct{}

func (*Aggressive) Name() string { return "aggressive" }

// ToDefend returns owned territories strongest first.
func (*Aggressive) ToDefend(gs *game.GameState, p *game.Player) []int {
	return byArmies(gs, p.OwnedIDs(), true)
}

// ToAttack returns attackable territories weakest first.
func (*Aggressive) ToAttack(gs *game.GameState, p *game.Player) []int {
	return byArmies(gs, attackTargets(gs, p), false)
}

// IssueOrder deploys to the hub, spends a bomb card, attacks from the hub and then pulls
// neighboring armies into it, one order per call.
func (a *Aggressive) IssueOrder(gs *game.GameState, p *game.Player) {
	hub := a.hub(gs, p)
	if hub < 0 {
		p.Committed = true
		return
	}

	if p.Reinforcements > 0 {
		issue(gs, p, game.NewDeploy(p.Reinforcements, hub))
		return
	}

	if p.HasCard(game.BombCard) {
		if targets := byArmies(gs, attackTargets(gs, p), true); len(targets) > 0 && gs.Armies[targets[0]] > 1 {
			if err := p.PlayCard(game.BombCard, game.NewBomb(targets[0])); err == nil {
				return
			}
		}
	}

	if movable := gs.MovableArmies(hub); movable > 0 {
		if targets := byArmies(gs, attackable(gs, p, hub), false); len(targets) > 0 {
			issue(gs, p, game.NewAdvance(movable, hub, targets[0]))
			return
		}
	}

	for _, adjID := range gs.Map.Territories[hub].AdjacentIDs {
		if p.Owns(adjID) {
			if movable := gs.MovableArmies(adjID); movable > 0 {
				issue(gs, p, game.NewAdvance(movable, adjID, hub))
				return
			}
		}
	}

	p.Committed = true
}

// hub is the strongest owned territory bordering an attack target, or the strongest owned
// territory when nothing can be attacked. Returns -1 when p owns nothing.
func (a *Aggressive) hub(gs *game.GameState, p *game.Player) int {
	var frontier []int
	for _, id := range p.OwnedIDs() {
		if len(attackable(gs, p, id)) > 0 {
			frontier = append(frontier, id)
		}
	}
	if len(frontier) > 0 {
		return byArmies(gs, frontier, true)[0]
	}
	if defend := a.ToDefend(gs, p); len(defend) > 0 {
		return defend[0]
	}
	return -1
}
