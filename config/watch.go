package config

import (
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const watchDebounce = 100 * time.Millisecond

// Watcher reloads a config file into a Store whenever the file
// changes. Parse failures keep the previous config.
type Watcher struct {
	watcher *fsnotify.Watcher
	closeCh chan struct{}
	once    sync.Once
}

// Watch starts watching the directory containing path and applies
// successful reloads of path to store.
func Watch(path string, store *Store) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// Watch the directory, not the file: editors often replace the
	// file on save, which drops a file-level watch.
	if err := fw.Add(filepath.Dir(path)); err != nil {
		_ = fw.Close()
		return nil, err
	}

	w := &Watcher{
		watcher: fw,
		closeCh: make(chan struct{}),
	}
	go w.run(path, store)
	return w, nil
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

func (w *Watcher) run(path string, store *Store) {
	var last time.Time
	abs := filepath.Clean(path)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			now := time.Now()
			if now.Sub(last) < watchDebounce {
				continue
			}
			last = now

			cfg, err := Load(path)
			if err != nil {
				log.Printf("config: reload %s: %v", path, err)
				continue
			}
			store.Set(cfg)
			log.Printf("config: reloaded %s", path)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("config: watch error: %v", err)
		case <-w.closeCh:
			return
		}
	}
}
