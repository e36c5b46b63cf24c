package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// LoadBlueprints reads blueprints from path, or from stdin when path is "-".
// JSON input is detected by its first non-blank byte; anything else is
// parsed as puzzle prose.
func LoadBlueprints(path string) ([]Blueprint, error) {
	var raw []byte
	var err error
	if path == "-" {
		raw, err = io.ReadAll(os.Stdin)
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	bps, err := loadFromString(string(raw))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return bps, nil
}

func loadFromString(input string) ([]Blueprint, error) {
	trimmed := strings.TrimSpace(input)
	if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
		return parseBlueprintsJSON(trimmed)
	}
	return ParseBlueprints(input)
}

// parseBlueprintsJSON reads either a bare array of blueprints or an object
// with a "blueprints" array:
//
//	{"blueprints": [{"id": 1, "costs": {"ore": {"ore": 4}, "clay": {"ore": 2},
//	  "obsidian": {"ore": 3, "clay": 14}, "geode": {"ore": 2, "obsidian": 7}}}]}
func parseBlueprintsJSON(input string) ([]Blueprint, error) {
	if !gjson.Valid(input) {
		return nil, fmt.Errorf("%w: invalid JSON", ErrMalformedBlueprint)
	}
	list := gjson.Parse(input)
	if list.IsObject() {
		list = list.Get("blueprints")
		if !list.IsArray() {
			return nil, fmt.Errorf("%w: missing \"blueprints\" array", ErrMalformedBlueprint)
		}
	}

	var out []Blueprint
	var err error
	seen := make(map[uint32]bool)
	list.ForEach(func(_, v gjson.Result) bool {
		var bp Blueprint
		bp, err = parseBlueprintJSON(v)
		if err != nil {
			return false
		}
		if seen[bp.ID] {
			err = fmt.Errorf("%w: duplicate blueprint id %d", ErrMalformedBlueprint, bp.ID)
			return false
		}
		seen[bp.ID] = true
		out = append(out, bp)
		return true
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func parseBlueprintJSON(v gjson.Result) (Blueprint, error) {
	id := v.Get("id")
	bid, ok := jsonUint(id)
	if !ok || bid == 0 {
		return Blueprint{}, fmt.Errorf("%w: bad blueprint id %s", ErrMalformedBlueprint, id.Raw)
	}

	costs := v.Get("costs")
	if !costs.IsObject() {
		return Blueprint{}, fmt.Errorf("%w: blueprint %d: missing costs", ErrMalformedBlueprint, bid)
	}

	var recipes [numResources]Recipe
	var have robotSet
	var err error
	costs.ForEach(func(k, rv gjson.Result) bool {
		robot := parseResource(k.String())
		if robot == resourceNone {
			err = fmt.Errorf("%w: blueprint %d: unknown robot kind %q", ErrMalformedBlueprint, bid, k.String())
			return false
		}
		if have[robot] {
			err = fmt.Errorf("%w: blueprint %d: %s robot recipe given twice", ErrMalformedBlueprint, bid, robot)
			return false
		}
		have[robot] = true
		recipes[robot], err = readRecipe(rv)
		if err != nil {
			err = fmt.Errorf("%w: blueprint %d: %s robot: %v", ErrMalformedBlueprint, bid, robot, err)
			return false
		}
		return true
	})
	if err != nil {
		return Blueprint{}, err
	}
	for r, ok := range have {
		if !ok {
			return Blueprint{}, fmt.Errorf("%w: blueprint %d: missing %s robot recipe", ErrMalformedBlueprint, bid, Resource(r))
		}
	}
	return NewBlueprint(bid, recipes), nil
}

func readRecipe(v gjson.Result) (Recipe, error) {
	var r Recipe
	if !v.IsObject() {
		return r, fmt.Errorf("recipe must be an object")
	}
	var err error
	var seen [len(r)]bool
	v.ForEach(func(k, n gjson.Result) bool {
		res := parseResource(k.String())
		switch {
		case res == resourceNone:
			err = fmt.Errorf("unknown resource %q", k.String())
		case res == Geode:
			err = fmt.Errorf("cannot cost geodes")
		case seen[res]:
			err = fmt.Errorf("%s cost given twice", res)
		default:
			cost, ok := jsonUint(n)
			if !ok {
				err = fmt.Errorf("bad %s cost %s", res, n.Raw)
				return false
			}
			seen[res] = true
			r[res] = cost
			return true
		}
		return false
	})
	return r, err
}

// jsonUint accepts only plain non-negative integer literals that fit in 32
// bits. Fractions, exponents and quoted numbers are rejected.
func jsonUint(v gjson.Result) (uint32, bool) {
	if v.Type != gjson.Number {
		return 0, false
	}
	n, err := strconv.ParseUint(v.Raw, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint32(n), true
}
