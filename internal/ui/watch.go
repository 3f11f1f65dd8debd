package ui

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher reports changes to one stylesheet file. The parent directory is watched so that
// editors which save by rename are seen too.
type Watcher struct {
	fw      *fsnotify.Watcher
	name    string
	log     *zap.Logger
	changed chan struct{}
	done    chan struct{}
	wg      sync.WaitGroup
	once    sync.Once
}

// Watch starts watching path.
func Watch(path string, log *zap.Logger) (*Watcher, error) {
	if log == nil {
		log = zap.NewNop()
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("ui: %w", err)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("ui: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("ui: watch %s: %w", path, err)
	}
	w := &Watcher{
		fw:      fw,
		name:    abs,
		log:     log,
		changed: make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
	w.wg.Add(1)
	go w.loop()
	return w, nil
}

func (w *Watcher) loop() {
	defer w.wg.Done()
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.name || !ev.Has(fsnotify.Write|fsnotify.Create|fsnotify.Rename) {
				continue
			}
			select {
			case w.changed <- struct{}{}:
			default:
			}
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			w.log.Warn("stylesheet watch", zap.Error(err))
		}
	}
}

// Poll reports whether the file changed since the last Poll. It never blocks.
func (w *Watcher) Poll() bool {
	select {
	case <-w.changed:
		return true
	default:
		return false
	}
}

// Close stops the watcher and waits for its goroutine to exit.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.fw.Close()
		w.wg.Wait()
	})
	return err
}
