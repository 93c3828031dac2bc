package timerview

import (
	"fmt"
	"image/color"
	"log/slog"

	"pomodoro/internal/core/session"
	"pomodoro/internal/core/tasks"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/google/uuid"
)

// Commands are the timer actions the window can trigger.
type Commands struct {
	OnStart       func()
	OnPause       func()
	OnReset       func()
	OnPreferences func()
}

// Window is the main timer and to-do window.
type Window struct {
	window     fyne.Window
	commands   Commands
	list       *tasks.List
	logger     *slog.Logger
	items      []tasks.Task
	selected   map[uuid.UUID]bool
	clock      *canvas.Text
	phaseLabel *widget.Label
	cycles     *widget.Label
	summary    *widget.Label
	taskEntry  *widget.Entry
	taskList   *widget.List
}

// New builds the window. It does not show it.
func New(app fyne.App, list *tasks.List, commands Commands, logger *slog.Logger) *Window {
	view := &Window{
		window:   app.NewWindow("Pomodoro Timer"),
		commands: commands,
		list:     list,
		logger:   logger,
		selected: make(map[uuid.UUID]bool),
	}

	view.clock = canvas.NewText("--:--", color.NRGBA{R: 255, G: 87, B: 34, A: 255})
	view.clock.Alignment = fyne.TextAlignCenter
	view.clock.TextStyle = fyne.TextStyle{Monospace: true}
	view.clock.TextSize = 48

	view.phaseLabel = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	view.cycles = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{})
	view.summary = widget.NewLabel("")

	controls := container.NewHBox(
		layout.NewSpacer(),
		widget.NewButtonWithIcon("Start", theme.MediaPlayIcon(), invoke(&view.commands.OnStart)),
		widget.NewButtonWithIcon("Pause", theme.MediaPauseIcon(), invoke(&view.commands.OnPause)),
		widget.NewButtonWithIcon("Reset", theme.MediaReplayIcon(), invoke(&view.commands.OnReset)),
		widget.NewButtonWithIcon("", theme.SettingsIcon(), invoke(&view.commands.OnPreferences)),
		layout.NewSpacer(),
	)

	view.taskEntry = widget.NewEntry()
	view.taskEntry.SetPlaceHolder("New task")
	view.taskEntry.OnSubmitted = func(string) { view.addTask() }

	view.taskList = widget.NewList(
		func() int { return len(view.items) },
		func() fyne.CanvasObject {
			return container.NewHBox(widget.NewCheck("", nil), widget.NewLabel(""))
		},
		view.renderRow,
	)

	taskButtons := container.NewHBox(
		widget.NewButtonWithIcon("Complete Task", theme.ConfirmIcon(), view.completeSelected),
		widget.NewButtonWithIcon("Delete Task", theme.DeleteIcon(), view.deleteSelected),
		layout.NewSpacer(),
		view.summary,
	)

	header := container.NewVBox(
		view.phaseLabel,
		view.clock,
		view.cycles,
		controls,
		widget.NewSeparator(),
		container.NewBorder(nil, nil, nil, widget.NewButtonWithIcon("Add Task", theme.ContentAddIcon(), view.addTask), view.taskEntry),
	)

	view.window.SetContent(container.NewBorder(header, taskButtons, nil, nil, view.taskList))
	view.window.Resize(fyne.NewSize(480, 600))
	view.refreshTasks()

	return view
}

// Window returns the underlying fyne window.
func (view *Window) Window() fyne.Window {
	return view.window
}

// Show displays the window.
func (view *Window) Show() {
	view.window.Show()
	view.window.RequestFocus()
}

// Render updates the timer area from a controller snapshot.
func (view *Window) Render(snapshot session.Snapshot) {
	view.clock.Text = snapshot.Clock()
	view.clock.Refresh()
	view.phaseLabel.SetText(snapshot.Phase.Title())
	view.cycles.SetText(fmt.Sprintf("Completed cycles: %d", snapshot.CompletedCycles))
}

// Announce shows the one-shot phase change message.
func (view *Window) Announce(message string) {
	dialog.ShowInformation("Pomodoro Timer", message, view.window)
}

func (view *Window) renderRow(id widget.ListItemID, object fyne.CanvasObject) {
	if id < 0 || id >= len(view.items) {
		return
	}
	task := view.items[id]
	row := object.(*fyne.Container)
	check := row.Objects[0].(*widget.Check)
	label := row.Objects[1].(*widget.Label)

	check.OnChanged = nil
	check.SetChecked(view.selected[task.ID])
	check.OnChanged = func(checked bool) {
		if checked {
			view.selected[task.ID] = true
		} else {
			delete(view.selected, task.ID)
		}
	}

	label.TextStyle = fyne.TextStyle{Italic: task.Completed}
	label.SetText(task.Label())
}

func (view *Window) addTask() {
	task, ok := view.list.Add(view.taskEntry.Text)
	if !ok {
		return
	}
	view.logger.Debug("task added", "id", task.ID)
	view.taskEntry.SetText("")
	view.refreshTasks()
}

func (view *Window) completeSelected() {
	count := view.list.Complete(view.selectedIndices())
	view.logger.Debug("tasks completed", "count", count)
	view.clearSelection()
	view.refreshTasks()
}

func (view *Window) deleteSelected() {
	count := view.list.Delete(view.selectedIndices())
	view.logger.Debug("tasks deleted", "count", count)
	view.clearSelection()
	view.refreshTasks()
}

// selectedIndices resolves selected IDs against the list before mutation.
func (view *Window) selectedIndices() []int {
	indices := make([]int, 0, len(view.selected))
	for id := range view.selected {
		if index := view.list.IndexOf(id); index >= 0 {
			indices = append(indices, index)
		}
	}
	return indices
}

func (view *Window) clearSelection() {
	view.selected = make(map[uuid.UUID]bool)
}

func (view *Window) refreshTasks() {
	view.items = view.list.Tasks()
	view.summary.SetText(fmt.Sprintf("%d of %d done", view.list.CompletedCount(), view.list.Len()))
	view.taskList.Refresh()
}

func invoke(callback *func()) func() {
	return func() {
		if *callback != nil {
			(*callback)()
		}
	}
}
