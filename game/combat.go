package game

import "math"

const (
	// DefenderKillRate is the fraction of defending armies that destroy an attacker each.
	DefenderKillRate = 0.7
	// AttackerKillRate is the fraction of attacking armies that destroy a defender each.
	AttackerKillRate = 0.6
)

// CombatResult is the outcome of one attack.
type CombatResult struct {
	AttackerCasualties int
	DefenderCasualties int
	SurvivingAttackers int
	SurvivingDefenders int
}

// Conquered reports whether the defenders were wiped out.
func (r CombatResult) Conquered() bool {
	return r.SurvivingDefenders == 0
}

// ResolveCombat computes the deterministic outcome of attacking armies advancing against
// defending armies. Casualties are rounded half away from zero.
func ResolveCombat(attacking, defending int) CombatResult {
	attacking, defending = max(attacking, 0), max(defending, 0)
	r := CombatResult{
		AttackerCasualties: int(math.Round(float64(defending) * DefenderKillRate)),
		DefenderCasualties: int(math.Round(float64(attacking) * AttackerKillRate)),
	}
	r.SurvivingAttackers = max(attacking-r.AttackerCasualties, 0)
	r.SurvivingDefenders = max(defending-r.DefenderCasualties, 0)
	return r
}
