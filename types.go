package main

import "math"

// Resource identifies both a resource kind and the robot that collects it.
type Resource int

const (
	Ore Resource = iota
	Clay
	Obsidian
	Geode
)

const numResources = 4

// resourceNone is returned by parseResource for unknown names.
const resourceNone Resource = -1

// unbounded marks a MaxRobots entry that the search never reaches.
const unbounded = math.MaxUint32

// buildOrder is the order robots are tried in; geode first finds good bounds early.
var buildOrder = [numResources]Resource{Geode, Obsidian, Clay, Ore}

func (r Resource) String() string {
	switch r {
	case Ore:
		return "ore"
	case Clay:
		return "clay"
	case Obsidian:
		return "obsidian"
	case Geode:
		return "geode"
	}
	return "unknown"
}

func parseResource(s string) Resource {
	switch s {
	case "ore", "Ore":
		return Ore
	case "clay", "Clay":
		return Clay
	case "obsidian", "Obsidian":
		return Obsidian
	case "geode", "Geode":
		return Geode
	}
	return resourceNone
}

// Amounts holds one counter per resource kind, indexed by Resource.
type Amounts [numResources]uint32

// Recipe is the ore/clay/obsidian cost of one robot. Geodes are never spent.
type Recipe [numResources - 1]uint32

// Blueprint describes the robot economy a search runs against.
type Blueprint struct {
	ID    uint32
	Costs [numResources]Recipe // indexed by the robot's Resource

	// MaxRobots caps robot counts per kind: no recipe can spend more than this
	// per minute. Computed by NewBlueprint.
	MaxRobots Amounts
}

// Cost returns how much of res one robot of kind robot needs.
func (b *Blueprint) Cost(robot, res Resource) uint32 {
	if res == Geode {
		return 0
	}
	return b.Costs[robot][res]
}

// State is one node of the search tree. It is copied, never shared.
type State struct {
	Robots    Amounts
	Resources Amounts
	TimeLeft  uint32
}

// robotSet is a set of robot kinds, indexed by Resource.
type robotSet [numResources]bool
