package game

// Evaluate scores p's position between -1 and 1 against its strongest opponent, tallying
// territories, armies, continent bonuses and the largest connected block of owned territories.
func Evaluate(gs *GameState, p *Player) float64 {
	opponent := strongestOpponent(gs, p)
	if opponent == nil {
		if len(p.Territories) > 0 {
			return 1
		}
		return 0
	}

	territoryScore := normalize(float64(len(p.Territories)), float64(len(opponent.Territories)))
	armyScore := normalize(float64(gs.totalArmies(p)), float64(gs.totalArmies(opponent)))
	bonusScore := normalize(float64(gs.ContinentBonus(p)), float64(gs.ContinentBonus(opponent)))
	connectivityScore := normalize(float64(gs.largestBlock(p)), float64(gs.largestBlock(opponent)))

	return (territoryScore + armyScore + bonusScore + connectivityScore) / 4
}

// Leader returns the player with the highest evaluation, or nil when nobody owns territory.
func Leader(gs *GameState) *Player {
	var leader *Player
	best := -2.0
	for _, p := range gs.ActivePlayers() {
		if score := Evaluate(gs, p); score > best {
			best = score
			leader = p
		}
	}
	return leader
}

func strongestOpponent(gs *GameState, p *Player) *Player {
	var opponent *Player
	for _, other := range gs.Players {
		if other.ID == p.ID || len(other.Territories) == 0 {
			continue
		}
		if opponent == nil || gs.totalArmies(other) > gs.totalArmies(opponent) {
			opponent = other
		}
	}
	return opponent
}

func (gs *GameState) totalArmies(p *Player) int {
	total := 0
	for id := range p.Territories {
		total += gs.Armies[id]
	}
	return total
}

// largestBlock returns the size of the largest connected group of territories owned by p.
func (gs *GameState) largestBlock(p *Player) int {
	visited := make(map[int]bool)
	largest := 0
	for _, id := range p.OwnedIDs() {
		if !visited[id] {
			largest = max(largest, gs.dfs(id, p.ID, visited))
		}
	}
	return largest
}

// dfs returns the size of the component of territories owned by owner containing start
func (gs *GameState) dfs(start, owner int, visited map[int]bool) int {
	if visited[start] {
		return 0
	}
	visited[start] = true

	size := 1
	for _, neighbor := range gs.Map.Territories[start].AdjacentIDs {
		if gs.Ownership[neighbor] == owner {
			size += gs.dfs(neighbor, owner, visited)
		}
	}
	return size
}

// normalize normalizes value relative to otherValue to a score between -1 and 1
func normalize(value float64, otherValue float64) float64 {
	total := value + otherValue
	if total == 0 {
		return 0
	}
	return (value - otherValue) / total
}
