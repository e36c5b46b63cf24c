package main

import "time"

// ── Options / results ───────────────────────────────────────────────

// SearchOptions switches off individual pruning rules. Both rules are
// admissible, so turning one off changes how many nodes are visited but
// never the answer.
type SearchOptions struct {
	NoGeodeBound     bool
	NoObsidianCutoff bool
}

// SearchStats counts the work done by one search.
type SearchStats struct {
	Nodes          uint64 // recursive calls, including leaves
	GeodeBoundCuts uint64 // branches abandoned by the optimistic geode bound
	ObsidianCuts   uint64 // branches closed because no geode robot fits anymore
}

// SearchResult is the outcome of one blueprint search.
type SearchResult struct {
	Geodes  uint32
	Stats   SearchStats
	Elapsed time.Duration
}

// ── State transitions ───────────────────────────────────────────────

// startState is where every search begins: one ore robot, nothing else.
func startState(minutes uint32) State {
	return State{
		Robots:   Amounts{Ore: 1},
		TimeLeft: minutes,
	}
}

// canBuild reports whether robot is below its useful ceiling and affordable.
func (s *State) canBuild(bp *Blueprint, robot Resource) bool {
	if s.Robots[robot] >= bp.MaxRobots[robot] {
		return false
	}
	for res, n := range bp.Costs[robot] {
		if s.Resources[res] < n {
			return false
		}
	}
	return true
}

// gather credits one minute of production from every robot.
func (s *State) gather() {
	for res, n := range s.Robots {
		s.Resources[res] += n
	}
}

// build pays for robot and adds it. Callers check canBuild first.
func (s *State) build(bp *Blueprint, robot Resource) {
	for res, n := range bp.Costs[robot] {
		s.Resources[res] -= n
	}
	s.Robots[robot]++
}

// optimisticBest is an upper bound on res after t more minutes, assuming a
// new res robot could be built every minute from now on. Computed in 64 bits
// so long budgets cannot wrap.
func optimisticBest(s *State, res Resource, t uint32) uint64 {
	t64 := uint64(t)
	bonus := uint64(0)
	if t64 > 0 {
		bonus = t64 * (t64 - 1) / 2
	}
	return uint64(s.Resources[res]) + uint64(s.Robots[res])*t64 + bonus
}

// ── Search ──────────────────────────────────────────────────────────

// geodeRobotOutOfReach reports whether no geode robot can be paid for with at
// least two minutes left, even if an obsidian robot were built every minute.
func (s *searcher) geodeRobotOutOfReach(st *State) bool {
	t := st.TimeLeft
	return t >= 3 && optimisticBest(st, Obsidian, t-2) < uint64(s.bp.Cost(Geode, Obsidian))
}

type searcher struct {
	bp    *Blueprint
	opts  SearchOptions
	stats SearchStats
}

// Simulate returns the most geodes bp can open in the given number of minutes.
func Simulate(bp Blueprint, minutes uint32) uint32 {
	return SimulateWith(bp, minutes, SearchOptions{}).Geodes
}

// SimulateWith is Simulate with pruning switches and work statistics.
func SimulateWith(bp Blueprint, minutes uint32, opts SearchOptions) SearchResult {
	start := time.Now()
	s := searcher{bp: &bp, opts: opts}
	geodes := s.recurse(startState(minutes), robotSet{}, 0)
	return SearchResult{
		Geodes:  geodes,
		Stats:   s.stats,
		Elapsed: time.Since(start),
	}
}

// recurse explores every build decision from st. best is the best result
// found so far by earlier siblings; forbidden holds robot kinds that were
// affordable one minute ago but skipped, so waiting and then building them
// is not explored twice.
func (s *searcher) recurse(st State, forbidden robotSet, best uint32) uint32 {
	s.stats.Nodes++
	t := st.TimeLeft

	// A robot built now would not finish in time to open anything.
	if t <= 1 {
		return st.Resources[Geode] + st.Robots[Geode]
	}

	if !s.opts.NoGeodeBound && optimisticBest(&st, Geode, t) < uint64(best) {
		s.stats.GeodeBoundCuts++
		return 0
	}

	// A geode robot must be paid for with at least two minutes left to matter.
	if !s.opts.NoObsidianCutoff && s.geodeRobotOutOfReach(&st) {
		s.stats.ObsidianCuts++
		return st.Resources[Geode] + t*st.Robots[Geode]
	}

	var legal robotSet
	for _, robot := range buildOrder {
		if forbidden[robot] || !st.canBuild(s.bp, robot) {
			continue
		}
		legal[robot] = true
		next := st
		next.gather()
		next.build(s.bp, robot)
		next.TimeLeft--
		best = max(best, s.recurse(next, robotSet{}, best))
	}

	next := st
	next.gather()
	next.TimeLeft--
	return max(best, s.recurse(next, legal, best))
}
