package workspace

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Event reports a change found by a Watcher. Doc is nil when the file was
// removed.
type Event struct {
	Path string
	Doc  *Document
}

// Watcher polls the workspace root for changed expression files and
// re-evaluates them.
type Watcher struct {
	workspace    *Workspace
	stopCh       chan struct{}
	pollInterval time.Duration
	modTimes     map[string]time.Time
	onChange     func(Event)
}

func NewWatcher(w *Workspace, interval time.Duration, onChange func(Event)) *Watcher {
	if interval <= 0 {
		interval = time.Second
	}
	return &Watcher{
		workspace:    w,
		stopCh:       make(chan struct{}),
		pollInterval: interval,
		modTimes:     make(map[string]time.Time),
		onChange:     onChange,
	}
}

func (w *Watcher) Start() {
	go w.run()
}

func (w *Watcher) Stop() {
	close(w.stopCh)
}

func (w *Watcher) run() {
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	w.Scan()

	for {
		select {
		case <-w.stopCh:
			return
		case <-ticker.C:
			w.Scan()
		}
	}
}

// Scan performs a single poll. It is called by the watcher goroutine and
// must not be called concurrently with it.
func (w *Watcher) Scan() {
	currentFiles := make(map[string]bool)

	filepath.Walk(w.workspace.RootDir(), func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			if path != w.workspace.RootDir() && strings.HasPrefix(info.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !w.workspace.Matches(path) {
			return nil
		}

		currentFiles[path] = true

		lastMod, known := w.modTimes[path]
		if !known || info.ModTime().After(lastMod) {
			w.modTimes[path] = info.ModTime()
			doc, err := w.workspace.ScanFile(path)
			if err != nil {
				log.Warningf("read %s: %s", path, err)
				return nil
			}
			w.notify(Event{Path: path, Doc: doc})
		}
		return nil
	})

	for path := range w.modTimes {
		if !currentFiles[path] {
			delete(w.modTimes, path)
			w.workspace.RemoveFile(path)
			w.notify(Event{Path: path})
		}
	}
}

func (w *Watcher) notify(e Event) {
	if w.onChange != nil {
		w.onChange(e)
	}
}
