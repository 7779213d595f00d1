package mode

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Watch calls onReload with the result of LoadConfig whenever the file at
// path is written, created, renamed or removed. The parent directory is
// watched so that editors replacing the file are noticed. onReload runs on
// the watcher goroutine. stop is idempotent.
func Watch(path string, onReload func(Config, error)) (stop func() error, err error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating config watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	closeCh := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-closeCh:
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != abs || !relevant(ev) {
					continue
				}
				onReload(LoadConfig(abs))
			case werr, ok := <-w.Errors:
				if !ok {
					return
				}
				onReload(Config{}, fmt.Errorf("watching %s: %w", abs, werr))
			}
		}
	}()

	var once sync.Once
	stop = func() error {
		var cerr error
		once.Do(func() {
			close(closeCh)
			cerr = w.Close()
			wg.Wait()
		})
		return cerr
	}
	return stop, nil
}

func relevant(ev fsnotify.Event) bool {
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) || ev.Has(fsnotify.Remove)
}
