package canvasui

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// StyleWatcher reloads a TOML style file whenever it changes on disk.
// Reloaded styles arrive on Styles; the frame loop applies them with
// Runtime.SetStyle so the runtime itself stays single-goroutine.
//
//	w, err := canvasui.WatchStyle("style.toml")
//	...
//	select {
//	case s := <-w.Styles():
//	    rt.SetStyle(s)
//	default:
//	}
type StyleWatcher struct {
	watcher *fsnotify.Watcher
	path    string
	styles  chan Style
	errs    chan error
	done    chan struct{}
}

// WatchStyle starts watching path. The containing directory is watched so
// editors that replace the file on save are handled.
func WatchStyle(path string) (*StyleWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("watch style: %w", err)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch style: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch style: %w", err)
	}

	w := &StyleWatcher{
		watcher: fw,
		path:    abs,
		styles:  make(chan Style, 1),
		errs:    make(chan error, 1),
		done:    make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

// Styles delivers the latest successfully parsed style. Only the newest
// pending style is kept.
func (w *StyleWatcher) Styles() <-chan Style {
	return w.styles
}

// Errors delivers read/parse failures. Only the newest pending error is kept.
func (w *StyleWatcher) Errors() <-chan error {
	return w.errs
}

// Close stops watching. Styles and Errors are closed once the watch loop exits.
func (w *StyleWatcher) Close() error {
	err := w.watcher.Close()
	<-w.done
	return err
}

func (w *StyleWatcher) loop() {
	defer close(w.done)
	defer close(w.styles)
	defer close(w.errs)

	for {
		select {
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			s, err := LoadStyle(w.path)
			if err != nil {
				uiLogger.Debug("style reload failed", "path", w.path, "err", err)
				sendLatest(w.errs, err)
				continue
			}
			uiLogger.Debug("style reloaded", "path", w.path)
			sendLatest(w.styles, s)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			sendLatest(w.errs, err)
		}
	}
}

// sendLatest puts v on a 1-buffered channel, replacing any unread value.
func sendLatest[T any](ch chan T, v T) {
	for {
		select {
		case ch <- v:
			return
		default:
		}
		select {
		case <-ch:
		default:
		}
	}
}
