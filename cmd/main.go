package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"crashbreak/internal/core/model"
	"crashbreak/internal/core/trigger"
	"crashbreak/internal/logger"
	"crashbreak/internal/platform"
	"crashbreak/internal/storage"
	"crashbreak/internal/ui/overlay"
	"crashbreak/internal/ui/preferences"
	"crashbreak/internal/ui/tray"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
)

const (
	appName = "CrashBreak"
	appID   = "com.crashbreak.app"
)

var version = "dev"

// CLI is the command line surface. Every flag can also come from the
// environment or a .env file in the working directory.
type CLI struct {
	Version   kong.VersionFlag `help:"Print version and exit."`
	ConfigDir string           `help:"Directory holding settings.yaml and logs." env:"CRASHBREAK_CONFIG_DIR" type:"path"`
	Debug     bool             `help:"Log at debug level and mirror logs to stderr." env:"CRASHBREAK_DEBUG"`
	ShowNow   bool             `help:"Show the crash screen right after start-up."`
}

func main() {
	// godotenv.Load will not override existing env variables.
	_ = godotenv.Load()

	var cli CLI
	kong.Parse(&cli,
		kong.Name("crashbreak"),
		kong.Description("Menu bar eye-break reminder that pretends your computer crashed"),
		kong.UsageOnError(),
		kong.Vars{"version": version},
	)

	if err := run(cli); err != nil {
		fmt.Fprintf(os.Stderr, "crashbreak: %v\n", err)
		os.Exit(1)
	}
}

func run(cli CLI) error {
	configDir := cli.ConfigDir
	if configDir == "" {
		dir, err := platform.ConfigDir(appName)
		if err != nil {
			return err
		}
		configDir = dir
	}
	if err := logger.Init(logger.Config{Debug: cli.Debug, ConfigDir: configDir}); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	lock, err := platform.AcquireInstanceLock(appName)
	if err != nil {
		if errors.Is(err, platform.ErrAlreadyRunning) {
			logger.Info("another instance is running, exiting", "err", err)
			return nil
		}
		return err
	}
	defer func() {
		_ = lock.Release()
	}()

	settingsPath, err := storage.ResolveConfigPath(appName, configDir)
	if err != nil {
		return err
	}
	settings, err := storage.LoadSettings(settingsPath)
	if err != nil {
		logger.Warn("settings unreadable, using defaults", "path", settingsPath, "err", err)
	}
	store := preferences.NewStore(settings, func(updated model.Settings) error {
		return storage.SaveSettings(settingsPath, updated)
	})
	logger.Info("starting", "version", version, "settings", settingsPath)

	fyneApp := app.NewWithID(appID)
	fyneApp.SetIcon(theme.ErrorIcon())
	desktopApp, ok := fyneApp.(desktop.App)
	if !ok {
		return errors.New("system tray unsupported on this platform")
	}

	crashScreen := overlay.New(fyneApp)
	prefsWindow := preferences.New(fyneApp, store)

	mainLane := trigger.New(store.Settings(), func() {
		crashScreen.Show(overlay.KindBreak, store.Settings().Style)
	}, trigger.Config{})
	mainLane.SetAppsProvider(platform.NewRunningApps())
	lunchLane := trigger.NewLunch(store.Settings(), func() {
		crashScreen.Show(overlay.KindLunch, store.Settings().Style)
	}, nil)

	trayManager := tray.New(desktopApp, store, tray.Callbacks{
		OnPreferences: prefsWindow.Show,
		OnShowNow:     mainLane.TriggerNow,
		OnQuit:        fyneApp.Quit,
	})
	desktopApp.SetSystemTrayIcon(theme.ErrorIcon())

	loginItem, err := platform.NewLoginItem(appName)
	if err != nil {
		logger.Warn("launch at login unavailable", "err", err)
	}
	if loginItem != nil && settings.LaunchAtLogin {
		// Re-register so the entry follows a moved binary.
		if err := loginItem.Apply(true); err != nil {
			logger.Warn("refresh login item", "err", err)
		}
	}

	store.OnChange(func(previous, current model.Settings) {
		mainLane.UpdateSettings(current)
		lunchLane.UpdateSettings(current)
		if loginItem != nil && previous.LaunchAtLogin != current.LaunchAtLogin {
			if err := loginItem.Apply(current.LaunchAtLogin); err != nil {
				logger.Error("apply launch at login", "err", err)
			}
		}
		fyne.Do(trayManager.Refresh)
	})

	forward := func(event trigger.Event) {
		next, ok := nextFireFor(event)
		if !ok {
			return
		}
		fyne.Do(func() {
			trayManager.SetNextFire(event.Lane, next)
		})
	}
	go forwardEvents(mainLane.Subscribe(8), forward)
	go forwardEvents(lunchLane.Subscribe(8), forward)

	fyneApp.Lifecycle().SetOnStarted(func() {
		mainLane.Start()
		lunchLane.Start()
		if cli.ShowNow {
			mainLane.TriggerNow()
		}
	})

	fyneApp.Run()

	mainLane.Close()
	lunchLane.Close()
	logger.Info("stopped")
	return nil
}

func forwardEvents(events <-chan trigger.Event, apply func(trigger.Event)) {
	for event := range events {
		apply(event)
	}
}

// nextFireFor maps a lane event to the tray's next-fire display. Fired and
// skipped events are always followed by an armed or stopped event.
func nextFireFor(event trigger.Event) (time.Time, bool) {
	switch event.Type {
	case trigger.EventArmed:
		return event.NextFire, true
	case trigger.EventStopped:
		return time.Time{}, true
	default:
		return time.Time{}, false
	}
}
