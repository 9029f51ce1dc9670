package organizer_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"romshelf/internal/config"
	"romshelf/internal/logging"
	"romshelf/internal/metadata"
	"romshelf/internal/organizer"
	"romshelf/internal/testsupport"
)

func writeGameArchive(t *testing.T, cfg *config.Config, archiveName, gameName, genre string, extra map[string]string, payload map[string]string) {
	t.Helper()
	entries := map[string]string{
		"VERSION.NFO": testsupport.Descriptor(gameName, genre, extra),
	}
	for name, content := range payload {
		entries[name] = content
	}
	testsupport.WriteZip(t, filepath.Join(cfg.Paths.SourceDir, archiveName), entries)
}

func TestRunPlacesGameFromDescriptor(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	writeGameArchive(t, cfg, "Last Ninja 2.zip", "Last Ninja 2", "Arcade - Fighting",
		map[string]string{"Language": "English"},
		map[string]string{"ninja.d64": "disk one", "ninja_b.d64": "disk two"})

	org := organizer.New(cfg, nil, logging.NewNop())
	report, err := org.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if report.Placed() != 1 || report.Failed() != 0 {
		t.Fatalf("summary: %s", report.Summary())
	}

	gameDir := filepath.Join(cfg.Paths.LibraryDir, "Arcade", "Fighting", "English", "Last Ninja 2")
	if _, err := os.Stat(gameDir); err != nil {
		t.Fatalf("game directory missing: %v", err)
	}
	for _, name := range []string{"Last Ninja 2_d1.d64", "Last Ninja 2_d2.d64", "VERSION.NFO"} {
		if _, err := os.Stat(filepath.Join(gameDir, name)); err != nil {
			t.Fatalf("expected %s in game directory: %v", name, err)
		}
	}
	// Copy mode keeps the source archive.
	if _, err := os.Stat(filepath.Join(cfg.Paths.SourceDir, "Last Ninja 2.zip")); err != nil {
		t.Fatalf("source archive should survive copy mode: %v", err)
	}
}

func TestRunCollisionGetsVersionSuffix(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithTemplate("{name}"))
	writeGameArchive(t, cfg, "a.zip", "Galaxian", "Arcade", nil, map[string]string{"g.d64": "x"})
	writeGameArchive(t, cfg, "b.zip", "Galaxian", "Arcade", nil, map[string]string{"g.d64": "y"})

	org := organizer.New(cfg, nil, logging.NewNop())
	report, err := org.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if report.Placed() != 2 {
		t.Fatalf("placed = %d, want 2", report.Placed())
	}
	if report.Collisions() != 1 {
		t.Fatalf("collisions = %d, want 1", report.Collisions())
	}
	if _, err := os.Stat(filepath.Join(cfg.Paths.LibraryDir, "Galaxian")); err != nil {
		t.Fatalf("base placement missing: %v", err)
	}
	if _, err := os.Stat(filepath.Join(cfg.Paths.LibraryDir, "Galaxian [v2]")); err != nil {
		t.Fatalf("versioned placement missing: %v", err)
	}
}

func TestRunArchiveWithTopLevelFolder(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithTemplate("{name}"))
	// Contents wrapped in a single folder, as GameBase archives commonly are.
	testsupport.WriteZip(t, filepath.Join(cfg.Paths.SourceDir, "galaxian.zip"), map[string]string{
		"Galaxian/VERSION.NFO": testsupport.Descriptor("Galaxian", "Arcade", nil),
		"Galaxian/g.d64":       "disk one",
	})

	report, err := organizer.New(cfg, nil, logging.NewNop()).Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if report.Placed() != 1 {
		t.Fatalf("summary: %s", report.Summary())
	}

	gameDir := filepath.Join(cfg.Paths.LibraryDir, "Galaxian")
	for _, name := range []string{"Galaxian_d1.d64", "VERSION.NFO"} {
		if _, err := os.Stat(filepath.Join(gameDir, name)); err != nil {
			t.Fatalf("expected %s directly in game directory: %v", name, err)
		}
	}
	// The wrapping folder must not be reproduced inside the destination.
	if _, err := os.Stat(filepath.Join(gameDir, "Galaxian")); !os.IsNotExist(err) {
		t.Fatal("game placed double-nested under its archive folder")
	}
}

func TestRunEnglishOnlyFilter(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	cfg.Organize.EnglishOnly = true
	writeGameArchive(t, cfg, "english.zip", "Uridium", "Arcade",
		map[string]string{"Language": "English"}, map[string]string{"u.d64": "x"})
	writeGameArchive(t, cfg, "german.zip", "Winzer", "Strategy",
		map[string]string{"Language": "German"}, map[string]string{"w.d64": "x"})
	writeGameArchive(t, cfg, "notext.zip", "Boulder Dash", "Arcade", nil,
		map[string]string{"b.d64": "x"})

	org := organizer.New(cfg, nil, logging.NewNop())
	report, err := org.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	// Without include_no_text the "(No Text)" default is excluded too.
	if report.Placed() != 1 || report.Skipped() != 2 {
		t.Fatalf("summary: %s", report.Summary())
	}

	cfg2 := testsupport.NewConfig(t)
	cfg2.Organize.EnglishOnly = true
	cfg2.Organize.IncludeNoText = true
	writeGameArchive(t, cfg2, "notext.zip", "Boulder Dash", "Arcade", nil,
		map[string]string{"b.d64": "x"})

	report2, err := organizer.New(cfg2, nil, logging.NewNop()).Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if report2.Placed() != 1 {
		t.Fatalf("include_no_text should admit the game: %s", report2.Summary())
	}
}

func TestRunCollapsePublishers(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithTemplate("{publisher}/{name}"))
	cfg.Organize.CollapsePublishers = true
	writeGameArchive(t, cfg, "g.zip", "Wizball", "Arcade",
		map[string]string{"Published": "1987 Ocean / Imagine"}, map[string]string{"w.d64": "x"})

	report, err := organizer.New(cfg, nil, logging.NewNop()).Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if report.Placed() != 1 {
		t.Fatalf("summary: %s", report.Summary())
	}
	if _, err := os.Stat(filepath.Join(cfg.Paths.LibraryDir, "Ocean", "Wizball")); err != nil {
		t.Fatalf("collapsed publisher directory missing: %v", err)
	}
}

func TestRunKeepZipped(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithTemplate("{name}"))
	cfg.Organize.KeepZipped = true
	writeGameArchive(t, cfg, "ik.zip", "IK+", "Sports", nil, map[string]string{"ik.d64": "x"})

	report, err := organizer.New(cfg, nil, logging.NewNop()).Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if report.Placed() != 1 {
		t.Fatalf("summary: %s", report.Summary())
	}
	target := filepath.Join(cfg.Paths.LibraryDir, "IK+", "IK+.zip")
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("zipped placement missing: %v", err)
	}
	if _, err := os.Stat(filepath.Join(cfg.Paths.LibraryDir, "IK+", "ik.d64")); err == nil {
		t.Fatal("keep_zipped must not extract the payload into the library")
	}
}

func TestRunMoveFilesRemovesSource(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithTemplate("{name}"))
	cfg.Organize.MoveFiles = true
	writeGameArchive(t, cfg, "p.zip", "Paradroid", "Arcade", nil, map[string]string{"p.d64": "x"})

	report, err := organizer.New(cfg, nil, logging.NewNop()).Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if report.Placed() != 1 {
		t.Fatalf("summary: %s", report.Summary())
	}
	if _, err := os.Stat(filepath.Join(cfg.Paths.SourceDir, "p.zip")); !os.IsNotExist(err) {
		t.Fatal("move mode should remove the source archive")
	}
}

func TestRunFilenameFallback(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithTemplate("{name}"))
	testsupport.WriteZip(t, filepath.Join(cfg.Paths.SourceDir, "Bruce Lee.zip"),
		map[string]string{"bruce.d64": "x"})

	report, err := organizer.New(cfg, nil, logging.NewNop()).Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if report.Placed() != 1 {
		t.Fatalf("summary: %s", report.Summary())
	}
	if report.Events[len(report.Events)-1].Source != metadata.SourceFilename {
		t.Fatalf("source = %s, want filename fallback", report.Events[len(report.Events)-1].Source)
	}
	if _, err := os.Stat(filepath.Join(cfg.Paths.LibraryDir, "Bruce Lee")); err != nil {
		t.Fatalf("fallback placement missing: %v", err)
	}
}

func TestPlanDoesNotTouchLibrary(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	writeGameArchive(t, cfg, "e.zip", "Elite", "Simulation",
		map[string]string{"Language": "English"}, map[string]string{"e.d64": "x"})

	report, err := organizer.New(cfg, nil, logging.NewNop()).Plan(context.Background())
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	if report.Placed() != 1 {
		t.Fatalf("summary: %s", report.Summary())
	}
	if !report.DryRun {
		t.Fatal("plan report should be marked dry-run")
	}
	if _, err := os.Stat(cfg.Paths.LibraryDir); !os.IsNotExist(err) {
		t.Fatal("plan must not create the library directory")
	}
}

func TestRunRecordsInGameDB(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithGameDB(), testsupport.WithTemplate("{name}"))
	store := testsupport.MustOpenStore(t, cfg)
	writeGameArchive(t, cfg, "u.zip", "Uridium", "Arcade",
		map[string]string{"Language": "English"}, map[string]string{"u.d64": "x"})

	report, err := organizer.New(cfg, store, logging.NewNop()).Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if report.Placed() != 1 {
		t.Fatalf("summary: %s", report.Summary())
	}

	ctx := context.Background()
	fields, found, err := store.Lookup(ctx, "u.zip")
	if err != nil || !found {
		t.Fatalf("descriptor fields should be cached: found=%v err=%v", found, err)
	}
	if fields[metadata.FieldName] != "Uridium" {
		t.Fatalf("cached name = %q", fields[metadata.FieldName])
	}

	history, err := store.History(ctx, 0)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("history length = %d, want 1", len(history))
	}
	if history[0].FinalPath != "Uridium" {
		t.Fatalf("history path = %q", history[0].FinalPath)
	}
}

func TestRunWritesOrganizationLog(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithTemplate("{name}"))
	writeGameArchive(t, cfg, "z.zip", "Zynaps", "Arcade", nil, map[string]string{"z.d64": "x"})

	report, err := organizer.New(cfg, nil, logging.NewNop()).Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	content, err := os.ReadFile(filepath.Join(cfg.Paths.LogDir, "organization_log.txt"))
	if err != nil {
		t.Fatalf("read organization log: %v", err)
	}
	text := string(content)
	if !strings.Contains(text, report.RunID) {
		t.Fatal("log missing run id")
	}
	if !strings.Contains(text, "placed   z.zip -> Zynaps") {
		t.Fatalf("log missing placement line:\n%s", text)
	}
}

func TestRunRejectsInvalidTemplate(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithTemplate("{bogus}"))
	if _, err := organizer.New(cfg, nil, logging.NewNop()).Run(context.Background()); err == nil {
		t.Fatal("expected configuration error for unknown placeholder")
	}
}

func TestRunBrokenArchiveIsIsolated(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithTemplate("{name}"))
	testsupport.WriteFile(t, filepath.Join(cfg.Paths.SourceDir, "broken.zip"), "not a zip")
	writeGameArchive(t, cfg, "good.zip", "Hawkeye", "Arcade", nil, map[string]string{"h.d64": "x"})

	report, err := organizer.New(cfg, nil, logging.NewNop()).Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if report.Failed() != 1 || report.Placed() != 1 {
		t.Fatalf("summary: %s", report.Summary())
	}
}
