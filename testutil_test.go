package main

// exampleBlueprints returns the two blueprints from the puzzle statement.
func exampleBlueprints() []Blueprint {
	return []Blueprint{
		NewBlueprint(1, [numResources]Recipe{
			Ore:      {4, 0, 0},
			Clay:     {2, 0, 0},
			Obsidian: {3, 14, 0},
			Geode:    {2, 0, 7},
		}),
		NewBlueprint(2, [numResources]Recipe{
			Ore:      {2, 0, 0},
			Clay:     {3, 0, 0},
			Obsidian: {3, 8, 0},
			Geode:    {3, 0, 12},
		}),
	}
}

// cheapBlueprints have low costs so geodes appear within a few minutes,
// which keeps the brute-force reference meaningful on short budgets.
func cheapBlueprints() []Blueprint {
	return []Blueprint{
		NewBlueprint(11, [numResources]Recipe{
			Ore:      {1, 0, 0},
			Clay:     {1, 0, 0},
			Obsidian: {1, 1, 0},
			Geode:    {1, 0, 1},
		}),
		NewBlueprint(12, [numResources]Recipe{
			Ore:      {2, 0, 0},
			Clay:     {2, 0, 0},
			Obsidian: {2, 3, 0},
			Geode:    {2, 0, 2},
		}),
		NewBlueprint(13, [numResources]Recipe{
			Ore:      {3, 0, 0},
			Clay:     {1, 0, 0},
			Obsidian: {1, 2, 0},
			Geode:    {1, 0, 3},
		}),
	}
}

// bruteForce is an unpruned reference search: every affordable robot or no
// robot at every minute, memoized on the full state.
func bruteForce(bp Blueprint, minutes uint32) uint32 {
	memo := make(map[State]uint32)
	var rec func(st State) uint32
	rec = func(st State) uint32 {
		if st.TimeLeft == 0 {
			return st.Resources[Geode]
		}
		if v, ok := memo[st]; ok {
			return v
		}

		wait := st
		wait.gather()
		wait.TimeLeft--
		best := rec(wait)

		for robot := Ore; robot <= Geode; robot++ {
			affordable := true
			for res, n := range bp.Costs[robot] {
				if st.Resources[res] < n {
					affordable = false
				}
			}
			if !affordable {
				continue
			}
			next := st
			next.gather()
			for res, n := range bp.Costs[robot] {
				next.Resources[res] -= n
			}
			next.Robots[robot]++
			next.TimeLeft--
			best = max(best, rec(next))
		}

		memo[st] = best
		return best
	}
	return rec(startState(minutes))
}
