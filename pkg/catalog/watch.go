package catalog

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/dd0wney/actorgraph/pkg/logging"
)

// Watch reloads the store whenever one of paths is written, created or
// renamed into place. Parent directories are watched so editors that
// replace files atomically are noticed. Bursts of events within the
// debounce window trigger a single reload. Watch blocks until ctx is done.
func (s *Store) Watch(ctx context.Context, paths ...string) error {
	if len(paths) == 0 {
		return errors.New("watch: no paths given")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	targets := make(map[string]bool, len(paths))
	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return fmt.Errorf("watch %s: %w", p, err)
		}
		targets[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
		s.logger.Debug("watching directory", logging.Path(dir))
	}

	debounce := time.NewTimer(time.Hour)
	debounce.Stop()
	defer debounce.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("stopping source watcher")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil || !targets[abs] {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			s.logger.Debug("source file changed",
				logging.Path(event.Name),
				logging.String("operation", event.Op.String()),
			)
			debounce.Reset(s.debounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.logger.Error("file watcher error", logging.Error(err))

		case <-debounce.C:
			if _, err := s.Reload(ctx); err != nil && ctx.Err() == nil {
				s.logger.Warn("reload after file change failed", logging.Error(err))
			}
		}
	}
}
