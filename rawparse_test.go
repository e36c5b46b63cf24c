package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadBlueprintsFormats(t *testing.T) {
	for _, path := range []string{"testdata/example.txt", "testdata/example.json"} {
		t.Run(filepath.Base(path), func(t *testing.T) {
			bps, err := LoadBlueprints(path)
			require.NoError(t, err)
			require.Equal(t, exampleBlueprints(), bps)
		})
	}
}

func TestLoadBlueprintsMissingFile(t *testing.T) {
	_, err := LoadBlueprints(filepath.Join(t.TempDir(), "nope.txt"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadBlueprintsReportsPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.txt")
	require.NoError(t, os.WriteFile(path, []byte("Blueprint 1: Each ore robot"), 0o644))

	_, err := LoadBlueprints(path)
	require.ErrorIs(t, err, ErrMalformedBlueprint)
	assert.Contains(t, err.Error(), path)
}

func TestParseBlueprintsJSONArray(t *testing.T) {
	in := `[{"id": 4, "costs": {
		"ore": {"ore": 2}, "clay": {"ore": 3},
		"obsidian": {"ore": 3, "clay": 8}, "geode": {"ore": 3, "obsidian": 12}}}]`
	bps, err := loadFromString(in)
	require.NoError(t, err)
	require.Len(t, bps, 1)

	want := exampleBlueprints()[1]
	want.ID = 4
	assert.Equal(t, want, bps[0])
}

func TestParseBlueprintsJSONErrors(t *testing.T) {
	const recipes = `"ore": {"ore": 4}, "clay": {"ore": 2}, "obsidian": {"ore": 3, "clay": 14}`
	cases := map[string]string{
		"invalid json":     `{"blueprints": [`,
		"no array":         `{"items": []}`,
		"missing id":       `[{"costs": {` + recipes + `, "geode": {"ore": 2}}}]`,
		"zero id":          `[{"id": 0, "costs": {` + recipes + `, "geode": {"ore": 2}}}]`,
		"string id":        `[{"id": "1", "costs": {` + recipes + `, "geode": {"ore": 2}}}]`,
		"missing costs":    `[{"id": 1}]`,
		"missing recipe":   `[{"id": 1, "costs": {` + recipes + `}}]`,
		"unknown robot":    `[{"id": 1, "costs": {` + recipes + `, "gold": {"ore": 2}}}]`,
		"unknown resource": `[{"id": 1, "costs": {` + recipes + `, "geode": {"gold": 2}}}]`,
		"geode cost":       `[{"id": 1, "costs": {` + recipes + `, "geode": {"geode": 2}}}]`,
		"negative cost":    `[{"id": 1, "costs": {` + recipes + `, "geode": {"ore": -2}}}]`,
		"recipe scalar":    `[{"id": 1, "costs": {` + recipes + `, "geode": 2}}]`,
		"fractional id":    `[{"id": 1.7, "costs": {` + recipes + `, "geode": {"ore": 2}}}]`,
		"exponent id":      `[{"id": 1e1, "costs": {` + recipes + `, "geode": {"ore": 2}}}]`,
		"fractional cost":  `[{"id": 1, "costs": {` + recipes + `, "geode": {"ore": 4.9}}}]`,
		"oversized cost":   `[{"id": 1, "costs": {` + recipes + `, "geode": {"ore": 4294967296}}}]`,
		"repeated cost":    `[{"id": 1, "costs": {` + recipes + `, "geode": {"ore": 2, "ore": 9}}}]`,
		"duplicate recipe": `[{"id": 1, "costs": {` + recipes + `, "geode": {"ore": 2}, "clay": {"ore": 9}}}]`,
		"duplicate id": `[{"id": 1, "costs": {` + recipes + `, "geode": {"ore": 2}}},
			{"id": 1, "costs": {` + recipes + `, "geode": {"ore": 2}}}]`,
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := loadFromString(in)
			require.ErrorIs(t, err, ErrMalformedBlueprint)
		})
	}
}
