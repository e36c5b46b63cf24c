package main

// NewBlueprint builds a blueprint and derives its MaxRobots table: for every
// spendable resource the largest single recipe requirement, since a factory
// can only build one robot per minute. Geode robots are never capped.
func NewBlueprint(id uint32, costs [numResources]Recipe) Blueprint {
	return Blueprint{
		ID:        id,
		Costs:     costs,
		MaxRobots: maxRobots(&costs),
	}
}

func maxRobots(costs *[numResources]Recipe) Amounts {
	m := Amounts{0, 0, 0, unbounded}
	for _, recipe := range costs {
		for res, n := range recipe {
			m[res] = max(m[res], n)
		}
	}
	return m
}
