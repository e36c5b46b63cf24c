package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedBlueprint is wrapped by every blueprint parse error.
var ErrMalformedBlueprint = errors.New("malformed blueprint")

// ParseBlueprints reads blueprints written as puzzle prose:
//
//	Blueprint 1: Each ore robot costs 4 ore. Each clay robot costs 2 ore.
//	Each obsidian robot costs 3 ore and 14 clay. Each geode robot costs 2 ore
//	and 7 obsidian.
//
// Line breaks are not significant, so one blueprint per line and the wrapped
// layout both work. Blueprints are returned in input order.
func ParseBlueprints(input string) ([]Blueprint, error) {
	p := &textParser{words: strings.Fields(input)}
	var out []Blueprint
	seen := make(map[uint32]bool)
	for !p.done() {
		bp, err := p.blueprint()
		if err != nil {
			return nil, err
		}
		if seen[bp.ID] {
			return nil, fmt.Errorf("%w: duplicate blueprint id %d", ErrMalformedBlueprint, bp.ID)
		}
		seen[bp.ID] = true
		out = append(out, bp)
	}
	return out, nil
}

type textParser struct {
	words []string
	pos   int
	id    uint32 // blueprint being parsed, for error messages
}

func (p *textParser) done() bool { return p.pos >= len(p.words) }

func (p *textParser) peek() string {
	if p.done() {
		return ""
	}
	return p.words[p.pos]
}

func (p *textParser) next() (string, error) {
	if p.done() {
		return "", p.errorf("unexpected end of input")
	}
	w := p.words[p.pos]
	p.pos++
	return w, nil
}

func (p *textParser) expect(want string) error {
	w, err := p.next()
	if err != nil {
		return err
	}
	if w != want {
		return p.errorf("expected %q, got %q", want, w)
	}
	return nil
}

func (p *textParser) errorf(format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	if p.id == 0 {
		return fmt.Errorf("%w: word %d: %s", ErrMalformedBlueprint, p.pos, msg)
	}
	return fmt.Errorf("%w: blueprint %d: %s", ErrMalformedBlueprint, p.id, msg)
}

func (p *textParser) number() (uint32, error) {
	w, err := p.next()
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseUint(w, 10, 32)
	if err != nil {
		return 0, p.errorf("bad number %q", w)
	}
	return uint32(n), nil
}

func (p *textParser) blueprint() (Blueprint, error) {
	p.id = 0
	if err := p.expect("Blueprint"); err != nil {
		return Blueprint{}, err
	}
	w, err := p.next()
	if err != nil {
		return Blueprint{}, err
	}
	id, err := strconv.ParseUint(strings.TrimSuffix(w, ":"), 10, 32)
	if err != nil || id == 0 {
		return Blueprint{}, p.errorf("bad blueprint id %q", w)
	}
	p.id = uint32(id)

	var costs [numResources]Recipe
	var have robotSet
	for p.peek() == "Each" {
		robot, recipe, err := p.recipe()
		if err != nil {
			return Blueprint{}, err
		}
		if have[robot] {
			return Blueprint{}, p.errorf("%s robot recipe given twice", robot)
		}
		have[robot] = true
		costs[robot] = recipe
	}
	for r, ok := range have {
		if !ok {
			return Blueprint{}, p.errorf("missing %s robot recipe", Resource(r))
		}
	}
	return NewBlueprint(p.id, costs), nil
}

// recipe parses "Each <kind> robot costs <n> <res> [and <n> <res>]...".
func (p *textParser) recipe() (Resource, Recipe, error) {
	var recipe Recipe
	if err := p.expect("Each"); err != nil {
		return 0, recipe, err
	}
	w, err := p.next()
	if err != nil {
		return 0, recipe, err
	}
	robot := parseResource(w)
	if robot == resourceNone {
		return 0, recipe, p.errorf("unknown robot kind %q", w)
	}
	if err := p.expect("robot"); err != nil {
		return 0, recipe, err
	}
	if err := p.expect("costs"); err != nil {
		return 0, recipe, err
	}

	var seen [len(recipe)]bool
	for {
		n, err := p.number()
		if err != nil {
			return 0, recipe, err
		}
		w, err := p.next()
		if err != nil {
			return 0, recipe, err
		}
		last := strings.HasSuffix(w, ".")
		res := parseResource(strings.TrimSuffix(w, "."))
		switch res {
		case resourceNone:
			return 0, recipe, p.errorf("unknown resource %q", w)
		case Geode:
			return 0, recipe, p.errorf("%s robot cannot cost geodes", robot)
		}
		if seen[res] {
			return 0, recipe, p.errorf("%s robot lists %s twice", robot, res)
		}
		seen[res] = true
		recipe[res] = n
		if last {
			return robot, recipe, nil
		}
		if err := p.expect("and"); err != nil {
			return 0, recipe, err
		}
	}
}
