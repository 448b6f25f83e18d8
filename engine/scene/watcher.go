package scene

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"

	"github.com/spaghettifunk/gxmath/engine/core"
)

/**
 * @brief Reloads a scene file every time it is written and publishes the
 * result. The parent directory is watched so editors that replace the file
 * on save are still noticed.
 */
type Watcher struct {
	path     string
	fsnotify *fsnotify.Watcher
	scenes   chan *Scene
	errors   chan error
}

func NewWatcher(path string) (*Watcher, error) {
	absolute, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrapf(err, "watch %s", path)
	}

	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "create file watcher")
	}
	if err := fsWatch.Add(filepath.Dir(absolute)); err != nil {
		fsWatch.Close()
		return nil, errors.Wrapf(err, "watch %s", path)
	}

	return &Watcher{
		path:     absolute,
		fsnotify: fsWatch,
		scenes:   make(chan *Scene),
		errors:   make(chan error),
	}, nil
}

// Scenes delivers every successfully reloaded scene. Closed when Run returns.
func (w *Watcher) Scenes() <-chan *Scene {
	return w.scenes
}

// Errors delivers reload and watcher failures. Closed when Run returns.
func (w *Watcher) Errors() <-chan error {
	return w.errors
}

// Run blocks until ctx is cancelled or the underlying watcher fails to
// deliver events.
func (w *Watcher) Run(ctx context.Context) error {
	defer func() {
		w.fsnotify.Close()
		close(w.scenes)
		close(w.errors)
	}()

	for {
		select {
		case e, ok := <-w.fsnotify.Events:
			if !ok {
				return errors.New("file watcher closed")
			}
			if filepath.Clean(e.Name) != w.path {
				continue
			}
			if e.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			core.LogDebug("scene %s changed (%s)", w.path, e.Op)

			s, err := Load(w.path)
			if err != nil {
				w.publishError(ctx, err)
				continue
			}
			select {
			case w.scenes <- s:
			case <-ctx.Done():
				return nil
			}

		case err, ok := <-w.fsnotify.Errors:
			if !ok {
				return errors.New("file watcher closed")
			}
			core.LogError("scene watcher: %v", err)
			w.publishError(ctx, err)

		case <-ctx.Done():
			return nil
		}
	}
}

func (w *Watcher) publishError(ctx context.Context, err error) {
	select {
	case w.errors <- err:
	case <-ctx.Done():
	}
}
