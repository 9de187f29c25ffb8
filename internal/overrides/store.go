// Package overrides loads content overrides from a file and keeps them
// current while the server runs.
//
// The file maps section names to key/value overrides:
//
//	pricing:
//	  plan2Price: "$999"
//	footer:
//	  logoText: Maestro
//
// YAML, TOML and JSON are accepted, chosen by file extension.
package overrides

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/maestrohq/landing/content"
)

// Snapshot is one loaded override file.
type Snapshot struct {
	Sections map[string]content.Override
	// Version increases with every successful load.
	Version  uint64
	LoadedAt time.Time
}

// Store holds the current Snapshot. Readers never block a reload.
type Store struct {
	path     string
	log      *zap.Logger
	known    map[string]content.Table
	debounce time.Duration

	current atomic.Pointer[Snapshot]
	version atomic.Uint64
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger. The default discards everything.
func WithLogger(log *zap.Logger) Option {
	return func(s *Store) { s.log = log }
}

// WithSections sets the default tables used to warn about unknown sections
// and keys.
func WithSections(known map[string]content.Table) Option {
	return func(s *Store) { s.known = known }
}

// WithDebounce sets how long the file must be quiet before a reload.
func WithDebounce(d time.Duration) Option {
	return func(s *Store) { s.debounce = d }
}

// New returns a Store for path with an empty snapshot. An empty path never
// loads anything.
func New(path string, options ...Option) *Store {
	s := &Store{
		path:     path,
		log:      zap.NewNop(),
		debounce: 200 * time.Millisecond,
	}
	for _, opt := range options {
		opt(s)
	}
	s.current.Store(&Snapshot{})
	return s
}

// Path returns the override file path.
func (s *Store) Path() string { return s.path }

// Section returns the override for name, nil when there is none. The result
// must not be modified.
func (s *Store) Section(name string) content.Override {
	return s.current.Load().Sections[name]
}

// Snapshot returns the current snapshot.
func (s *Store) Snapshot() *Snapshot {
	return s.current.Load()
}

// Load reads the file and replaces the snapshot. On error the previous
// snapshot stays in place.
func (s *Store) Load() error {
	if s.path == "" {
		return nil
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("failed to read overrides: %w", err)
	}
	sections, err := Decode(s.path, data)
	if err != nil {
		return err
	}
	s.warnUnknown(sections)
	snap := &Snapshot{
		Sections: sections,
		Version:  s.version.Add(1),
		LoadedAt: time.Now(),
	}
	s.current.Store(snap)
	s.log.Info("overrides loaded",
		zap.String("path", s.path),
		zap.Int("sections", len(sections)),
		zap.Uint64("version", snap.Version))
	return nil
}

func (s *Store) warnUnknown(sections map[string]content.Override) {
	if s.known == nil {
		return
	}
	names := make([]string, 0, len(sections))
	for name := range sections {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		t, ok := s.known[name]
		if !ok {
			s.log.Warn("override for unknown section ignored", zap.String("section", name))
			continue
		}
		if unknown := sections[name].Unknown(t); len(unknown) > 0 {
			s.log.Warn("unknown override keys ignored",
				zap.String("section", name),
				zap.Strings("keys", unknown))
		}
	}
}

// Watch reloads the file whenever it changes until ctx is done. The parent
// directory is watched so editors that replace the file are followed.
func (s *Store) Watch(ctx context.Context) error {
	if s.path == "" {
		return nil
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	target := filepath.Clean(s.path)
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(target), err)
	}
	s.log.Debug("watching overrides", zap.String("path", target))

	interval := s.debounce / 4
	if interval <= 0 {
		interval = time.Millisecond
	}
	tick := time.NewTicker(interval)
	defer tick.Stop()
	var changed time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target || !event.Has(fsnotify.Write|fsnotify.Create|fsnotify.Rename) {
				continue
			}
			s.log.Debug("overrides changed", zap.String("op", event.Op.String()))
			changed = time.Now()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.log.Error("watcher error", zap.Error(err))
		case <-tick.C:
			if changed.IsZero() || time.Since(changed) < s.debounce {
				continue
			}
			changed = time.Time{}
			if err := s.Load(); err != nil {
				s.log.Error("reload failed, keeping previous overrides", zap.Error(err))
			}
		}
	}
}
