package preferences

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Window handles the preferences UI.
type Window struct {
	window     fyne.Window
	settings   Settings
	onSave     func(Settings) error
	work       *widget.Entry
	shortBreak *widget.Entry
	longBreak  *widget.Entry
}

// New creates a preferences window. onSave may reject the settings, in
// which case the window stays open and shows the error.
func New(app fyne.App, settings Settings, onSave func(Settings) error) *Window {
	window := app.NewWindow("Pomodoro Settings")

	work := widget.NewEntry()
	shortBreak := widget.NewEntry()
	longBreak := widget.NewEntry()

	form := container.NewVBox(
		widget.NewLabelWithStyle("Durations", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Pomodoro time"), work, widget.NewLabel("min (1-60)")),
		container.NewHBox(widget.NewLabel("Short break"), shortBreak, widget.NewLabel("min (1-30)")),
		container.NewHBox(widget.NewLabel("Long break"), longBreak, widget.NewLabel("min (1-60)")),
		widget.NewLabel("New durations apply when the next phase starts."),
	)

	saveButton := widget.NewButton("Save", nil)
	cancelButton := widget.NewButton("Cancel", nil)
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(380, 260))
	window.SetCloseIntercept(window.Hide)

	prefs := &Window{
		window:     window,
		onSave:     onSave,
		work:       work,
		shortBreak: shortBreak,
		longBreak:  longBreak,
	}
	prefs.UpdateSettings(settings)

	saveButton.OnTapped = prefs.handleSave
	cancelButton.OnTapped = func() {
		prefs.UpdateSettings(prefs.settings)
		window.Hide()
	}

	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	raw := settings.Raw()
	prefs.work.SetText(raw.Work)
	prefs.shortBreak.SetText(raw.ShortBreak)
	prefs.longBreak.SetText(raw.LongBreak)
}

func (prefs *Window) handleSave() {
	settings, err := RawSettings{
		Work:       prefs.work.Text,
		ShortBreak: prefs.shortBreak.Text,
		LongBreak:  prefs.longBreak.Text,
	}.Parse()
	if err == nil && prefs.onSave != nil {
		err = prefs.onSave(settings)
	}
	if err != nil {
		dialog.ShowError(err, prefs.window)
		return
	}

	prefs.settings = settings
	prefs.window.Hide()
}
