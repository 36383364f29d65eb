package state

import (
	"errors"
	"path/filepath"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
)

// settleDelay coalesces the burst of writes a single transaction produces.
const settleDelay = 150 * time.Millisecond

type StoreChangedMsg struct {
	File string
}

type StoreWatcherErrMsg struct {
	Err error
}

// StoreWatcher reports writes to the database file, including its WAL,
// made by this or any other process.
type StoreWatcher struct {
	watcher  *fsnotify.Watcher
	dir      string
	base     string
	done     chan struct{}
	once     sync.Once
	onChange func(string)
	onClose  func()
}

func NewStoreWatcher(dbPath string) (*StoreWatcher, error) {
	if strings.TrimSpace(dbPath) == "" {
		return nil, errors.New("database path cannot be empty")
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(dbPath)
	if err := w.Add(dir); err != nil {
		_ = w.Close()
		return nil, err
	}

	return &StoreWatcher{
		watcher: w,
		dir:     dir,
		base:    filepath.Base(dbPath),
		done:    make(chan struct{}),
	}, nil
}

// Start returns a command that blocks until the next change and reports it.
// Callers re-issue it after each message.
func (w *StoreWatcher) Start() tea.Cmd {
	if w == nil {
		return nil
	}

	return func() tea.Msg {
		for {
			select {
			case <-w.done:
				return nil
			case event, ok := <-w.watcher.Events:
				if !ok {
					return nil
				}
				if !w.isRelevant(event) {
					continue
				}

				name := filepath.Base(event.Name)
				w.settle()
				if w.onChange != nil {
					w.onChange(name)
				}
				return StoreChangedMsg{File: name}
			case err, ok := <-w.watcher.Errors:
				if !ok {
					return nil
				}
				if err != nil {
					return StoreWatcherErrMsg{Err: err}
				}
			}
		}
	}
}

// settle drains events until the directory has been quiet for settleDelay.
func (w *StoreWatcher) settle() {
	timer := time.NewTimer(settleDelay)
	defer timer.Stop()

	for {
		select {
		case <-w.done:
			return
		case <-timer.C:
			return
		case _, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !timer.Stop() {
				<-timer.C
			}
			timer.Reset(settleDelay)
		}
	}
}

func (w *StoreWatcher) Close() error {
	if w == nil {
		return nil
	}

	var closeErr error
	w.once.Do(func() {
		close(w.done)
		closeErr = w.watcher.Close()
		if w.onClose != nil {
			w.onClose()
		}
	})

	return closeErr
}

// OnChange registers a callback that receives the changed file name.
func (w *StoreWatcher) OnChange(fn func(string)) {
	if w == nil {
		return
	}
	w.onChange = fn
}

// OnClose registers a callback that is invoked exactly once when the watcher
// shuts down.
func (w *StoreWatcher) OnClose(fn func()) {
	if w == nil {
		return
	}
	w.onClose = fn
}

func (w *StoreWatcher) isRelevant(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}
	return strings.HasPrefix(filepath.Base(event.Name), w.base)
}
