package tray

import (
	"time"

	"crashbreak/internal/core/model"
	"crashbreak/internal/core/trigger"
	"crashbreak/internal/logger"
	"crashbreak/internal/ui/preferences"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnPreferences func()
	OnShowNow     func()
	OnQuit        func()
}

// Manager handles system tray state. All methods run on the UI goroutine.
type Manager struct {
	app       desktop.App
	store     *preferences.Store
	callbacks Callbacks
	nextFire  map[trigger.Lane]time.Time
}

// New creates a tray manager and installs its menu.
func New(app desktop.App, store *preferences.Store, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		store:     store,
		callbacks: callbacks,
		nextFire:  make(map[trigger.Lane]time.Time),
	}
	manager.Refresh()
	return manager
}

// SetNextFire records the next fire time of a lane. A zero time clears it.
func (manager *Manager) SetNextFire(lane trigger.Lane, next time.Time) {
	manager.nextFire[lane] = next
	manager.Refresh()
}

// Refresh rebuilds the menu from the current settings.
func (manager *Manager) Refresh() {
	if manager.app != nil {
		manager.app.SetSystemTrayMenu(manager.buildMenu())
	}
}

func (manager *Manager) buildMenu() *fyne.Menu {
	settings := manager.store.Settings()

	status := fyne.NewMenuItem(statusLine(settings, manager.nextFire[trigger.LaneMain]), nil)
	status.Disabled = true
	items := []*fyne.MenuItem{status}
	if line := lunchLine(settings, manager.nextFire[trigger.LaneLunch]); line != "" {
		lunch := fyne.NewMenuItem(line, nil)
		lunch.Disabled = true
		items = append(items, lunch)
	}

	items = append(items,
		fyne.NewMenuItemSeparator(),
		manager.toggle("Enabled", settings.Enabled, func(s *model.Settings) {
			s.Enabled = !s.Enabled
		}),
		manager.intervalMenu(settings),
		manager.styleMenu(settings),
		manager.toggle("Only on schedule", settings.Schedule.Enabled, func(s *model.Settings) {
			s.Schedule.Enabled = !s.Schedule.Enabled
		}),
		manager.toggle("Pause during calls", settings.SuppressDuringScreenShare, func(s *model.Settings) {
			s.SuppressDuringScreenShare = !s.SuppressDuringScreenShare
		}),
		manager.toggle("Lunch reminder", settings.Lunch.Enabled, func(s *model.Settings) {
			s.Lunch.Enabled = !s.Lunch.Enabled
		}),
		manager.toggle("Launch at login", settings.LaunchAtLogin, func(s *model.Settings) {
			s.LaunchAtLogin = !s.LaunchAtLogin
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Show crash screen now", func() {
			if manager.callbacks.OnShowNow != nil {
				manager.callbacks.OnShowNow()
			}
		}),
		fyne.NewMenuItem("Preferences…", func() {
			if manager.callbacks.OnPreferences != nil {
				manager.callbacks.OnPreferences()
			}
		}),
		fyne.NewMenuItemSeparator(),
	)

	quit := fyne.NewMenuItem("Quit", func() {
		if manager.callbacks.OnQuit != nil {
			manager.callbacks.OnQuit()
		}
	})
	quit.IsQuit = true
	items = append(items, quit)

	return fyne.NewMenu("CrashBreak", items...)
}

func (manager *Manager) intervalMenu(settings model.Settings) *fyne.MenuItem {
	children := make([]*fyne.MenuItem, 0, len(model.Presets())+2)
	for _, preset := range model.Presets() {
		id := preset.ID
		item := fyne.NewMenuItem(preset.Label, func() {
			manager.update(func(s *model.Settings) {
				s.Interval = id
				s.CustomIntervalEnabled = false
			})
		})
		item.Checked = !settings.CustomIntervalEnabled && settings.Interval == id
		children = append(children, item)
	}

	custom := fyne.NewMenuItem(customLabel(settings), func() {
		manager.update(func(s *model.Settings) {
			s.CustomIntervalEnabled = true
		})
	})
	custom.Checked = settings.CustomIntervalEnabled
	children = append(children, fyne.NewMenuItemSeparator(), custom)

	parent := fyne.NewMenuItem("Interval", nil)
	parent.ChildMenu = fyne.NewMenu("", children...)
	return parent
}

func (manager *Manager) styleMenu(settings model.Settings) *fyne.MenuItem {
	styles := append(model.Styles(), model.StyleRandom)
	children := make([]*fyne.MenuItem, 0, len(styles))
	for _, style := range styles {
		item := fyne.NewMenuItem(style.Label(), func() {
			manager.update(func(s *model.Settings) {
				s.Style = style
			})
		})
		item.Checked = settings.Style == style
		children = append(children, item)
	}

	parent := fyne.NewMenuItem("Style", nil)
	parent.ChildMenu = fyne.NewMenu("", children...)
	return parent
}

func (manager *Manager) toggle(label string, checked bool, flip func(*model.Settings)) *fyne.MenuItem {
	item := fyne.NewMenuItem(label, func() {
		manager.update(flip)
	})
	item.Checked = checked
	return item
}

func (manager *Manager) update(mutate func(*model.Settings)) {
	if err := manager.store.Update(mutate); err != nil {
		logger.Warn("tray update not saved", "err", err)
	}
}
