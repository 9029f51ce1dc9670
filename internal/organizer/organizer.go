package organizer

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"romshelf/internal/archive"
	"romshelf/internal/collision"
	"romshelf/internal/config"
	"romshelf/internal/diskfiles"
	"romshelf/internal/fileutil"
	"romshelf/internal/gamedb"
	"romshelf/internal/logging"
	"romshelf/internal/metadata"
	"romshelf/internal/pathtemplate"
	"romshelf/internal/services"
	"romshelf/internal/textutil"
)

// lockFileName guards the library against concurrent runs.
const lockFileName = ".romshelf.lock"

// Organizer drives one batch: it walks the source archives, resolves metadata
// for each, expands the path template, settles collisions, and places games
// into the library.
type Organizer struct {
	cfg        *config.Config
	store      *gamedb.Store
	logger     *slog.Logger
	extensions map[string]struct{}
}

// New constructs an organizer. store may be nil when no metadata database is
// configured.
func New(cfg *config.Config, store *gamedb.Store, logger *slog.Logger) *Organizer {
	return &Organizer{
		cfg:        cfg,
		store:      store,
		logger:     logging.NewComponentLogger(logger, "organizer"),
		extensions: diskfiles.ExtensionSet(cfg.Organize.DiskExtensions),
	}
}

// Run executes a full batch, mutating the library.
func (o *Organizer) Run(ctx context.Context) (*Report, error) {
	return o.run(ctx, true)
}

// Plan executes the batch in dry-run mode: every archive is resolved and its
// destination computed, but nothing is written to the library.
func (o *Organizer) Plan(ctx context.Context) (*Report, error) {
	return o.run(ctx, false)
}

func (o *Organizer) run(ctx context.Context, apply bool) (*Report, error) {
	if err := pathtemplate.Check(o.cfg.Organize.Template); err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "organizing", "validate template", "Path template is invalid", err)
	}

	archives, err := listArchives(o.cfg.Paths.SourceDir)
	if err != nil {
		return nil, services.Wrap(services.ErrValidation, "organizing", "scan source", "Failed to scan source directory", err)
	}

	if apply {
		if err := o.cfg.EnsureDirectories(); err != nil {
			return nil, services.Wrap(services.ErrConfiguration, "organizing", "ensure directories", "Failed to create run directories", err)
		}
		lock := flock.New(filepath.Join(o.cfg.Paths.LibraryDir, lockFileName))
		locked, lockErr := lock.TryLock()
		if lockErr != nil {
			return nil, services.Wrap(services.ErrTransient, "organizing", "acquire library lock", "Failed to acquire library lock", lockErr)
		}
		if !locked {
			return nil, services.Wrap(services.ErrTransient, "organizing", "acquire library lock", "Another run is organizing this library", nil)
		}
		defer func() { _ = lock.Unlock() }()
	}

	runID := uuid.NewString()
	report := NewReport(runID, !apply)
	tree := collision.NewTree(o.cfg.Paths.LibraryDir)
	resolver := metadata.NewResolver(o.lookupFunc(), o.logger)

	o.logger.Info("starting batch",
		logging.String("run_id", runID),
		logging.Int("archives", len(archives)),
		logging.Bool("dry_run", !apply),
	)

	for _, archivePath := range archives {
		select {
		case <-ctx.Done():
			return report, ctx.Err()
		default:
		}
		o.processArchive(ctx, resolver, tree, report, archivePath, apply)
	}

	report.FinishedAt = time.Now()

	if apply {
		if err := o.writeRunLog(report); err != nil {
			o.logger.Warn("failed to write organization log", logging.Error(err))
		}
	}

	o.logger.Info("batch finished",
		logging.String("run_id", runID),
		logging.String("summary", report.Summary()),
		logging.Duration("elapsed", report.FinishedAt.Sub(report.StartedAt)),
	)
	return report, nil
}

func (o *Organizer) processArchive(ctx context.Context, resolver *metadata.Resolver, tree *collision.Tree, report *Report, archivePath string, apply bool) {
	key := filepath.Base(archivePath)

	extraction, cleanup, err := archive.ExtractZip(archivePath)
	if err != nil {
		o.logger.Warn("extraction failed", logging.String("archive", key), logging.Error(err))
		report.Append(Event{Kind: EventFailed, Archive: key, Detail: err.Error()})
		return
	}
	defer cleanup()

	resolution, err := resolver.Resolve(ctx, key, extraction.Root)
	if err != nil {
		o.logger.Warn("metadata resolution failed", logging.String("archive", key), logging.Error(err))
		report.Append(Event{Kind: EventFailed, Archive: key, Detail: err.Error()})
		return
	}
	if resolution.Warning != nil {
		report.Append(Event{Kind: EventWarning, Archive: key, Detail: resolution.Warning.Error()})
	}
	fields := resolution.Record.Fields

	// Archives often wrap their contents in a single top-level folder. The
	// descriptor's parent is the game folder; placing from there keeps the
	// library free of an extra nesting level. Without a descriptor the whole
	// extraction root is the game.
	gameRoot := extraction.Root
	payload := extraction.PayloadFiles
	if resolution.DescriptorPath != "" {
		gameRoot = filepath.Dir(resolution.DescriptorPath)
		if gameRoot != extraction.Root {
			payload = filesUnder(payload, gameRoot)
		}
	}

	if apply && o.store != nil && resolution.Source == metadata.SourceDescriptor {
		if err := o.store.Put(ctx, key, fields); err != nil {
			o.logger.Warn("failed to cache metadata", logging.String("archive", key), logging.Error(err))
		}
	}

	language := fields.Get(metadata.FieldLanguage)
	if !languageIncluded(language, o.cfg.Organize) {
		o.logger.Debug("skipped by language filter",
			logging.String("archive", key),
			logging.String("language", language),
		)
		report.Append(Event{Kind: EventSkipped, Archive: key, Detail: fmt.Sprintf("language %q excluded", language)})
		return
	}

	if o.cfg.Organize.CollapsePublishers {
		if publisher, ok := fields[metadata.FieldPublisher]; ok {
			fields[metadata.FieldPublisher] = collapsePublisher(publisher)
		}
	}

	name := textutil.SanitizeSegment(fields.Get(metadata.FieldName))
	rel, err := pathtemplate.Expand(o.cfg.Organize.Template, fields)
	if err != nil {
		report.Append(Event{Kind: EventFailed, Archive: key, GameName: name, Detail: err.Error()})
		return
	}
	if !pathtemplate.EndsWithName(o.cfg.Organize.Template) {
		rel = filepath.Join(rel, name)
	}

	finalRel, version := collision.Finalize(tree, rel)
	tree.Record(finalRel)
	if version > 1 {
		o.logger.Info("destination collision",
			logging.String("archive", key),
			logging.String("final_path", finalRel),
			logging.Int("version", version),
		)
	}

	if apply {
		if err := o.place(gameRoot, payload, archivePath, name, finalRel); err != nil {
			o.logger.Warn("placement failed", logging.String("archive", key), logging.Error(err))
			report.Append(Event{Kind: EventFailed, Archive: key, GameName: name, Detail: err.Error()})
			return
		}
		if o.cfg.Organize.MoveFiles && !o.cfg.Organize.KeepZipped {
			if err := os.Remove(archivePath); err != nil {
				o.logger.Warn("failed to remove source archive", logging.String("archive", key), logging.Error(err))
			}
		}
		if o.store != nil {
			if err := o.store.RecordPlacement(ctx, report.RunID, key, finalRel, version, string(resolution.Source)); err != nil {
				o.logger.Warn("failed to record placement", logging.String("archive", key), logging.Error(err))
			}
		}
	}

	o.logger.Info("game placed",
		logging.String("archive", key),
		logging.String("final_path", finalRel),
		logging.Int("version", version),
		logging.String("source", string(resolution.Source)),
	)
	report.Append(Event{
		Kind:      EventPlaced,
		Archive:   key,
		GameName:  name,
		FinalPath: finalRel,
		Version:   version,
		Source:    resolution.Source,
	})
}

// place writes one game into the library at finalRel. In keep_zipped mode the
// archive itself lands in the game directory; otherwise the game folder's
// payload is disk-renamed in the staging directory and the folder copied over.
func (o *Organizer) place(gameRoot string, payload []string, archivePath, name, finalRel string) error {
	destDir := filepath.Join(o.cfg.Paths.LibraryDir, finalRel)

	if o.cfg.Organize.KeepZipped {
		target := filepath.Join(destDir, name+".zip")
		if o.cfg.Organize.MoveFiles {
			return fileutil.MoveFile(archivePath, target)
		}
		return fileutil.CopyFile(archivePath, target)
	}

	for _, rename := range diskfiles.PlanRenames(payload, name, o.extensions) {
		target := filepath.Join(filepath.Dir(rename.OldPath), rename.NewName)
		if target == rename.OldPath {
			continue
		}
		if err := os.Rename(rename.OldPath, target); err != nil {
			return fmt.Errorf("rename disk file %s: %w", filepath.Base(rename.OldPath), err)
		}
	}
	return fileutil.CopyTree(gameRoot, destDir)
}

// filesUnder keeps the paths inside root.
func filesUnder(paths []string, root string) []string {
	prefix := root + string(filepath.Separator)
	kept := make([]string, 0, len(paths))
	for _, path := range paths {
		if strings.HasPrefix(path, prefix) {
			kept = append(kept, path)
		}
	}
	return kept
}

func (o *Organizer) lookupFunc() metadata.LookupFunc {
	if o.store == nil {
		return nil
	}
	return o.store.Lookup
}

// listArchives enumerates the zip archives directly inside dir, sorted
// case-insensitively for a deterministic processing order.
func listArchives(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var archives []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".zip") {
			archives = append(archives, filepath.Join(dir, entry.Name()))
		}
	}
	sort.SliceStable(archives, func(i, j int) bool {
		a, b := strings.ToLower(archives[i]), strings.ToLower(archives[j])
		if a != b {
			return a < b
		}
		return archives[i] < archives[j]
	})
	return archives, nil
}
