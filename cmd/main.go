package main

import (
	"os"
	"time"

	"pomodoro/internal/core/session"
	"pomodoro/internal/core/tasks"
	"pomodoro/internal/core/ticker"
	"pomodoro/internal/logging"
	"pomodoro/internal/platform"
	"pomodoro/internal/storage"
	"pomodoro/internal/ui/preferences"
	"pomodoro/internal/ui/timerview"
	"pomodoro/internal/ui/tray"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
)

const appName = "Pomodoro"

func main() {
	logger := logging.New(os.Stderr)

	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		logger.Error("single instance", "err", err)
		return
	}
	defer func() {
		_ = guard.Release()
	}()

	configDir, err := platform.AppConfigDir(appName)
	if err != nil {
		logger.Error("resolve config dir", "err", err)
		return
	}
	store := storage.NewSettingsStore(configDir, logger)
	settings, err := store.Load()
	if err != nil {
		logger.Warn("load settings, using defaults", "err", err)
	}

	controller, err := session.New(settings.TimerConfig())
	if err != nil {
		logger.Error("create session controller", "err", err)
		return
	}
	taskList := tasks.NewList()
	driver := ticker.New(ticker.Config{
		Interval: session.TickInterval,
		Dispatch: fyne.Do,
	}, controller.Tick)

	fyneApp := app.NewWithID("com.pomodoro.timer")
	fyneApp.SetIcon(theme.HistoryIcon())

	prefsWindow := preferences.New(fyneApp, settings, func(updated preferences.Settings) error {
		if err := controller.Configure(updated.TimerConfig()); err != nil {
			logger.Warn("rejected settings", "err", err)
			return err
		}
		if err := store.Save(updated); err != nil {
			logger.Error("save settings", "err", err)
		}
		logger.Info("settings updated",
			"work", updated.Work, "short_break", updated.ShortBreak, "long_break", updated.LongBreak)
		return nil
	})

	toggle := func() {
		if controller.Running() {
			controller.Pause()
			return
		}
		controller.Start()
	}
	quit := func() {
		driver.Stop()
		fyneApp.Quit()
	}

	view := timerview.New(fyneApp, taskList, timerview.Commands{
		OnStart:       controller.Start,
		OnPause:       controller.Pause,
		OnReset:       controller.Reset,
		OnPreferences: prefsWindow.Show,
	}, logger)
	mainWindow := view.Window()
	mainWindow.SetMaster()

	var trayManager *tray.Manager
	if desktopApp, ok := fyneApp.(desktop.App); ok {
		trayManager = tray.New(desktopApp, tray.Callbacks{
			OnShow:        view.Show,
			OnToggleStart: toggle,
			OnReset:       controller.Reset,
			OnPreferences: prefsWindow.Show,
			OnQuit:        quit,
		})
		desktopApp.SetSystemTrayIcon(theme.HistoryIcon())
		mainWindow.SetCloseIntercept(mainWindow.Hide)
	} else {
		logger.Info("system tray unsupported on this platform")
	}

	controller.Subscribe(func(event session.Event) {
		if event.Snapshot.Running {
			driver.Start()
		} else {
			driver.Stop()
		}

		view.Render(event.Snapshot)
		if trayManager != nil {
			trayManager.Update(event.Snapshot)
		}

		switch event.Type {
		case session.EventPhaseChange:
			logger.Info("phase changed",
				"phase", event.Snapshot.Phase, "cycles", event.Snapshot.CompletedCycles,
				"at", event.At.Format(time.TimeOnly))
			view.Announce(event.Message)
			fyneApp.SendNotification(fyne.NewNotification("Pomodoro Timer", event.Message))
		case session.EventRunning:
			logger.Debug("running changed",
				"running", event.Snapshot.Running, "remaining", event.Snapshot.Clock())
		}
	})

	snapshot := controller.Snapshot()
	view.Render(snapshot)
	if trayManager != nil {
		trayManager.Update(snapshot)
	}

	view.Show()
	fyneApp.Run()
	driver.Stop()
}
