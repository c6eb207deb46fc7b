// internal/app/app.go
package app

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"go-hexagons/internal/config"
	"go-hexagons/internal/event"
	"go-hexagons/internal/log"
	"go-hexagons/internal/viewer"
)

// Session is everything the window loop needs once startup succeeded.
type Session struct {
	Settings   *config.Settings
	Viewer     *viewer.Viewer
	Dispatcher *event.Dispatcher

	logCloser io.Closer
}

// Start reads settings from args, sets up logging and builds the first
// preset. Listeners are subscribed before the first grid is built, so they
// see its GridRebuilt event. On error nothing is left open.
func Start(args []string, listeners ...event.Listener) (*Session, error) {
	settings, err := config.Load(args)
	if err != nil {
		return nil, err
	}

	closer, err := log.Init(log.Options{
		Level:      settings.Log.Level,
		File:       settings.Log.File,
		MaxSizeMB:  settings.Log.MaxSizeMB,
		MaxBackups: settings.Log.MaxBackups,
		MaxAgeDays: settings.Log.MaxAgeDays,
	})
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}
	s := &Session{Settings: settings, logCloser: closer}
	log.Infof("hexviewer starting, presets from %s", settings.Presets)

	if err := s.build(listeners); err != nil {
		log.Errorf("startup: %v", err)
		s.Close()
		return nil, err
	}
	return s, nil
}

func (s *Session) build(listeners []event.Listener) error {
	load := func() ([]config.Preset, error) { return loadPresets(s.Settings.Presets) }
	presets, err := load()
	if err != nil {
		return fmt.Errorf("presets: %w", err)
	}
	log.Infof("loaded %d presets", len(presets))

	s.Dispatcher = event.NewDispatcher()
	for _, l := range listeners {
		s.Dispatcher.Subscribe(l, event.GridRebuilt, event.PresetSelected, event.PresetsReloaded, event.HoverChanged)
	}
	s.Dispatcher.Subscribe(event.ListenerFunc(func(e event.Event) {
		log.Debugf("event %s: %v", e.Type, e.Data)
	}), event.PresetSelected, event.PresetsReloaded, event.HoverChanged)

	s.Viewer, err = viewer.New(presets, load, s.Dispatcher, s.Settings.Window.Width, s.Settings.Window.Height)
	if err != nil {
		return fmt.Errorf("viewer: %w", err)
	}
	return nil
}

// Close flushes and closes the log file. It is safe to call twice.
func (s *Session) Close() error {
	if s.logCloser == nil {
		return nil
	}
	err := s.logCloser.Close()
	s.logCloser = nil
	return err
}

func loadPresets(path string) ([]config.Preset, error) {
	presets, err := config.LoadPresets(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Warnf("presets file %s not found, using built-in presets", path)
		return config.DefaultPresets(), nil
	}
	return presets, err
}
