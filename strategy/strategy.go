// Package strategy provides the built-in decision policies players can be given.
package strategy

import (
	"errors"
	"fmt"
	"sort"

	"warzone/game"
)

var ErrUnknownStrategy = errors.New("unknown strategy")

// Names lists the strategies New can build.
var Names = []string{"aggressive", "benevolent", "neutral"}

// New returns the built-in strategy registered under name.
func New(name string) (game.Strategy, error) {
	switch name {
	case "aggressive":
		return &Aggressive{}, nil
	case "benevolent":
		return &Benevolent{}, nil
	case "neutral":
		return &Neutral{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// issue reserves the armies an order will move and queues it.
func issue(gs *game.GameState, p *game.Player, o game.Order) {
	reserve(gs, p, o)
	p.IssueOrder(o)
}

func reserve(gs *game.GameState, p *game.Player, o game.Order) {
	switch o.Kind {
	case game.Deploy:
		p.Reinforcements = max(0, p.Reinforcements-o.Armies)
		gs.ReserveIncoming(o.Target, o.Armies)
	case game.Advance, game.Airlift:
		gs.ReserveOutgoing(o.Source, o.Armies)
		gs.ReserveIncoming(o.Target, o.Armies)
	}
}

// byArmies sorts territory IDs by current armies, ties broken by ascending ID.
func byArmies(gs *game.GameState, ids []int, descending bool) []int {
	sorted := append([]int(nil), ids...)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := gs.Armies[sorted[i]], gs.Armies[sorted[j]]
		if a == b {
			return sorted[i] < sorted[j]
		}
		if descending {
			return a > b
		}
		return a < b
	})
	return sorted
}

// byMovable sorts territory IDs by movable armies, ties broken by ascending ID.
func byMovable(gs *game.GameState, ids []int, descending bool) []int {
	sorted := append([]int(nil), ids...)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := gs.MovableArmies(sorted[i]), gs.MovableArmies(sorted[j])
		if a == b {
			return sorted[i] < sorted[j]
		}
		if descending {
			return a > b
		}
		return a < b
	})
	return sorted
}

// attackable returns the neighbors of id that p may attack: not owned and not under truce.
func attackable(gs *game.GameState, p *game.Player, id int) []int {
	var targets []int
	for _, adjID := range gs.EnemyNeighbors(p, id) {
		if !gs.IsProtectedFrom(p, adjID) {
			targets = append(targets, adjID)
		}
	}
	return targets
}

// attackTargets returns every territory p may attack from its holdings, without duplicates.
func attackTargets(gs *game.GameState, p *game.Player) []int {
	seen := make(map[int]bool)
	var targets []int
	for _, id := range p.OwnedIDs() {
		for _, target := range attackable(gs, p, id) {
			if !seen[target] {
				seen[target] = true
				targets = append(targets, target)
			}
		}
	}
	return targets
}
