package game

import "fmt"

// OrderKind identifies the variant of an order.
type OrderKind int

const (
	Deploy    OrderKind = iota // Place reinforcements on an owned territory
	Advance                    // Move or attack from an owned territory to an adjacent one
	Bomb                       // Halve the armies of an enemy territory
	Blockade                   // Double the armies of an owned territory and give it up
	Airlift                    // Move armies between any two territories
	Negotiate                  // Truce between two players for the rest of the round
)

func (k OrderKind) String() string {
	switch k {
	case Deploy:
		return "deploy"
	case Advance:
		return "advance"
	case Bomb:
		return "bomb"
	case Blockade:
		return "blockade"
	case Airlift:
		return "airlift"
	case Negotiate:
		return "negotiate"
	default:
		return "unknown"
	}
}

// Priority returns the execution class of the kind. Lower executes sooner.
func (k OrderKind) Priority() int {
	switch k {
	case Deploy:
		return 1
	case Airlift:
		return 2
	case Blockade:
		return 3
	default:
		return 4
	}
}

// Order is a one-shot command issued by a player. Which fields are meaningful depends on Kind:
//
//	Deploy:    Armies, Target
//	Advance:   Armies, Source, Target
//	Bomb:      Target
//	Blockade:  Target
//	Airlift:   Armies, Source, Target
//	Negotiate: Initiator, Recipient (player IDs)
type Order struct {
	Kind      OrderKind
	Armies    int
	Source    int
	Target    int
	Initiator int
	Recipient int

	// Offensive is recorded when an Advance is validated for execution: true iff the issuer did
	// not own the target at that moment.
	Offensive bool
}

func NewDeploy(armies, target int) Order {
	return Order{Kind: Deploy, Armies: armies, Source: -1, Target: target}
}

func NewAdvance(armies, source, target int) Order {
	return Order{Kind: Advance, Armies: armies, Source: source, Target: target}
}

func NewBomb(target int) Order {
	return Order{Kind: Bomb, Source: -1, Target: target}
}

func NewBlockade(territory int) Order {
	return Order{Kind: Blockade, Source: -1, Target: territory}
}

func NewAirlift(armies, source, target int) Order {
	return Order{Kind: Airlift, Armies: armies, Source: source, Target: target}
}

func NewNegotiate(initiator, recipient int) Order {
	return Order{Kind: Negotiate, Source: -1, Target: -1, Initiator: initiator, Recipient: recipient}
}

// Priority returns the execution class of the order.
func (o Order) Priority() int {
	return o.Kind.Priority()
}

// Validate reports whether the order can take effect for issuer p in the current state.
// It does not modify anything.
func (o Order) Validate(gs *GameState, p *Player) bool {
	ok, _ := o.check(gs, p)
	return ok
}

// check validates the order and, for an Advance, whether it is an attack.
func (o Order) check(gs *GameState, p *Player) (valid, offensive bool) {
	m := gs.Map
	switch o.Kind {
	case Deploy:
		return o.Armies >= 0 && m.Has(o.Target) && p.Owns(o.Target), false
	case Advance:
		if o.Armies < 0 || !m.Has(o.Source) || !m.Has(o.Target) || !p.Owns(o.Source) {
			return false, false
		}
		if !m.AreAdjacent(o.Source, o.Target) {
			return false, false
		}
		offensive = !p.Owns(o.Target)
		if offensive && gs.IsProtectedFrom(p, o.Target) {
			return false, offensive
		}
		return true, offensive
	case Bomb:
		return m.Has(o.Target) && !p.Owns(o.Target) && !gs.IsProtectedFrom(p, o.Target), false
	case Blockade:
		return m.Has(o.Target) && p.Owns(o.Target), false
	case Airlift:
		return o.Armies >= 0 && m.Has(o.Source) && m.Has(o.Target), false
	case Negotiate:
		return o.Initiator != o.Recipient, false
	default:
		return false, false
	}
}

// Execute validates the order and applies its effect. An invalid order is dropped silently:
// Execute reports whether the order took effect and never fails otherwise.
func (o *Order) Execute(gs *GameState, p *Player) bool {
	valid, offensive := o.check(gs, p)
	o.Offensive = offensive
	if !valid {
		o.release(gs)
		return false
	}

	switch o.Kind {
	case Deploy:
		gs.releaseIncoming(o.Target, o.Armies)
		gs.Armies[o.Target] += o.Armies
	case Advance:
		o.release(gs)
		moving := min(o.Armies, gs.Armies[o.Source])
		gs.Armies[o.Source] -= moving
		if !offensive {
			gs.Armies[o.Target] += moving
			break
		}
		result := ResolveCombat(moving, gs.Armies[o.Target])
		gs.Armies[o.Target] -= min(result.DefenderCasualties, gs.Armies[o.Target])
		if result.Conquered() {
			gs.Armies[o.Target] = result.SurvivingAttackers
			gs.SetOwner(o.Target, p.ID)
			p.Conquered = true
		} else {
			gs.Armies[o.Source] += result.SurvivingAttackers
		}
	case Bomb:
		gs.Armies[o.Target] /= 2
	case Blockade:
		gs.Armies[o.Target] *= 2
		gs.SetOwner(o.Target, Neutral)
	case Airlift:
		o.release(gs)
		moving := min(o.Armies, gs.Armies[o.Source])
		gs.Armies[o.Source] -= moving
		gs.Armies[o.Target] += moving
	case Negotiate:
		initiator := gs.PlayerByID(o.Initiator)
		if initiator == nil {
			initiator = p
		}
		initiator.AddTruce(o.Recipient)
		if recipient := gs.PlayerByID(o.Recipient); recipient != nil {
			recipient.AddTruce(initiator.ID)
		}
	}
	return true
}

// release returns any reservation the order holds on its territories.
func (o Order) release(gs *GameState) {
	switch o.Kind {
	case Deploy:
		if gs.Map.Has(o.Target) {
			gs.releaseIncoming(o.Target, o.Armies)
		}
	case Advance, Airlift:
		if gs.Map.Has(o.Source) {
			gs.releaseOutgoing(o.Source, o.Armies)
		}
		if gs.Map.Has(o.Target) {
			gs.releaseIncoming(o.Target, o.Armies)
		}
	}
}

func (o Order) String() string {
	switch o.Kind {
	case Deploy:
		return fmt.Sprintf("deploy %d -> %d", o.Armies, o.Target)
	case Advance:
		return fmt.Sprintf("advance %d %d -> %d", o.Armies, o.Source, o.Target)
	case Bomb:
		return fmt.Sprintf("bomb %d", o.Target)
	case Blockade:
		return fmt.Sprintf("blockade %d", o.Target)
	case Airlift:
		return fmt.Sprintf("airlift %d %d -> %d", o.Armies, o.Source, o.Target)
	case Negotiate:
		return fmt.Sprintf("negotiate %d <-> %d", o.Initiator, o.Recipient)
	default:
		return "unknown order"
	}
}
