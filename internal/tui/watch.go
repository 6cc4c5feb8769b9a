package tui

import (
	"fmt"
	"path/filepath"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"

	"github.com/theirongolddev/flightpath/internal/config"
)

// ConfigWatcher reloads the config file whenever it changes on disk.
// The parent directory is watched so editors that replace the file on
// save are still seen.
type ConfigWatcher struct {
	path    string
	watcher *fsnotify.Watcher
	log     logrus.FieldLogger

	changed chan struct{}
	done    chan struct{}
	once    sync.Once
}

// NewConfigWatcher starts watching path.
func NewConfigWatcher(path string, log logrus.FieldLogger) (*ConfigWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(path)); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(path), err)
	}

	cw := &ConfigWatcher{
		path:    filepath.Clean(path),
		watcher: w,
		log:     log,
		changed: make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
	go cw.loop()
	return cw, nil
}

func (cw *ConfigWatcher) loop() {
	for {
		select {
		case ev, ok := <-cw.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != cw.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			cw.log.WithField("op", ev.Op.String()).Debug("config file changed")
			// coalesce bursts; the reload reads the latest contents
			select {
			case cw.changed <- struct{}{}:
			default:
			}
		case err, ok := <-cw.watcher.Errors:
			if !ok {
				return
			}
			cw.log.WithError(err).Warn("config watcher error")
		case <-cw.done:
			return
		}
	}
}

// Next returns a command that blocks until the next change and reloads.
func (cw *ConfigWatcher) Next() tea.Cmd {
	return func() tea.Msg {
		select {
		case <-cw.changed:
			cfg, err := config.LoadFile(cw.path)
			if err == nil {
				err = cfg.Validate()
			}
			return configReloadedMsg{cfg: cfg, err: err}
		case <-cw.done:
			return nil
		}
	}
}

// Close stops the watcher.
func (cw *ConfigWatcher) Close() error {
	var err error
	cw.once.Do(func() {
		close(cw.done)
		err = cw.watcher.Close()
	})
	return err
}
