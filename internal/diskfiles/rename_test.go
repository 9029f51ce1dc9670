package diskfiles_test

import (
	"testing"

	"romshelf/internal/diskfiles"
)

func TestPlanRenamesOrderAndIndices(t *testing.T) {
	files := []string{"game.d64", "GAME_INTRO.prg", "game_2.d64"}
	plan := diskfiles.PlanRenames(files, "basename", diskfiles.ExtensionSet([]string{"d64", "prg"}))

	want := []diskfiles.Rename{
		{OldPath: "game.d64", NewName: "basename_d1.d64"},
		{OldPath: "game_2.d64", NewName: "basename_d2.d64"},
		{OldPath: "GAME_INTRO.prg", NewName: "basename_d3.prg"},
	}
	if len(plan) != len(want) {
		t.Fatalf("plan has %d entries, want %d", len(plan), len(want))
	}
	for i, entry := range want {
		if plan[i] != entry {
			t.Errorf("plan[%d] = %+v, want %+v", i, plan[i], entry)
		}
	}
}

func TestPlanRenamesSkipsUnrecognized(t *testing.T) {
	files := []string{"game.d64", "cover.png", "README.txt"}
	plan := diskfiles.PlanRenames(files, "game", diskfiles.ExtensionSet(diskfiles.DefaultExtensions))
	if len(plan) != 1 {
		t.Fatalf("plan has %d entries, want 1", len(plan))
	}
	if plan[0].OldPath != "game.d64" {
		t.Fatalf("plan[0] = %+v", plan[0])
	}
}

func TestPlanRenamesLowercasesExtension(t *testing.T) {
	plan := diskfiles.PlanRenames([]string{"SIDE_A.D64"}, "game", diskfiles.ExtensionSet([]string{"d64"}))
	if len(plan) != 1 || plan[0].NewName != "game_d1.d64" {
		t.Fatalf("plan = %+v", plan)
	}
}

func TestPlanRenamesDeterministic(t *testing.T) {
	shuffled := []string{"b.tap", "A.TAP", "c.tap", "a.d64"}
	reversed := []string{"a.d64", "c.tap", "A.TAP", "b.tap"}
	exts := diskfiles.ExtensionSet([]string{"tap", "d64"})

	first := diskfiles.PlanRenames(shuffled, "x", exts)
	second := diskfiles.PlanRenames(reversed, "x", exts)
	if len(first) != len(second) {
		t.Fatalf("plan lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("plans differ at %d: %+v vs %+v", i, first[i], second[i])
		}
	}
	if first[0].OldPath != "a.d64" || first[1].OldPath != "A.TAP" || first[2].OldPath != "b.tap" {
		t.Fatalf("unexpected order: %+v", first)
	}
}

func TestPlanRenamesEmptyInput(t *testing.T) {
	if plan := diskfiles.PlanRenames(nil, "x", diskfiles.ExtensionSet(diskfiles.DefaultExtensions)); len(plan) != 0 {
		t.Fatalf("expected empty plan, got %+v", plan)
	}
}

func TestExtensionSetNormalizes(t *testing.T) {
	set := diskfiles.ExtensionSet([]string{".D64", " tap ", "", "PRG"})
	for _, want := range []string{"d64", "tap", "prg"} {
		if _, ok := set[want]; !ok {
			t.Errorf("missing %q in %v", want, set)
		}
	}
	if len(set) != 3 {
		t.Fatalf("set has %d entries, want 3", len(set))
	}
}
