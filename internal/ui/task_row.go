package ui

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/plymouth-manager/internal/model"
)

// TaskRow renders one online install task: title, status, throughput and a progress bar
type TaskRow struct {
	widget.BaseWidget

	task         *model.InstallTask
	localization *Localization

	titleLabel    *widget.Label
	statusLabel   *widget.Label
	speedLabel    *widget.Label
	percentLabel  *widget.Label
	progressBar   *widget.ProgressBar
	dismissBtn    *widget.Button
	onDismiss     func(taskID string)
	layoutContent *fyne.Container
}

// NewTaskRow creates a new task row widget
func NewTaskRow(task *model.InstallTask, localization *Localization) *TaskRow {
	if task == nil {
		task = &model.InstallTask{Status: model.TaskStatusPending}
	}

	tr := &TaskRow{
		task:         task,
		localization: localization,
	}
	tr.ExtendBaseWidget(tr)
	tr.createUI()
	tr.updateFromTask()
	return tr
}

// SetOnDismiss sets the callback fired when a finished task is dismissed
func (tr *TaskRow) SetOnDismiss(onDismiss func(taskID string)) {
	tr.onDismiss = onDismiss
}

// UpdateTask updates the row with new task data
func (tr *TaskRow) UpdateTask(task *model.InstallTask) {
	if task == nil {
		return
	}
	tr.task = task
	tr.updateFromTask()
	tr.Refresh()
}

func (tr *TaskRow) createUI() {
	tr.titleLabel = widget.NewLabel("")
	tr.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	tr.titleLabel.Truncation = fyne.TextTruncateEllipsis

	tr.statusLabel = widget.NewLabel("")
	tr.statusLabel.Alignment = fyne.TextAlignTrailing
	tr.speedLabel = widget.NewLabel("")
	tr.speedLabel.TextStyle = fyne.TextStyle{Monospace: true}
	tr.percentLabel = widget.NewLabel("")
	tr.percentLabel.Alignment = fyne.TextAlignTrailing

	tr.progressBar = widget.NewProgressBar()
	tr.progressBar.TextFormatter = func() string { return "" }

	tr.dismissBtn = widget.NewButton(tr.localization.GetText(KeyDismiss), func() {
		if tr.onDismiss != nil && tr.task != nil {
			tr.onDismiss(tr.task.ID)
		}
	})
	tr.dismissBtn.Importance = widget.LowImportance

	fixedWidth := func(w float32, obj fyne.CanvasObject) fyne.CanvasObject {
		spacer := canvas.NewRectangle(color.Transparent)
		spacer.SetMinSize(fyne.NewSize(w, obj.MinSize().Height))
		return container.NewStack(spacer, obj)
	}

	info := container.NewHBox(
		fixedWidth(SpeedLabelWidth, tr.speedLabel),
		fixedWidth(PercentLabelWidth, tr.percentLabel),
		fixedWidth(StatusLabelWidth, tr.statusLabel),
		tr.dismissBtn,
	)
	tr.layoutContent = container.NewVBox(
		container.NewBorder(nil, nil, nil, info, tr.titleLabel),
		tr.progressBar,
	)
}

// updateFromTask updates UI components based on task state
func (tr *TaskRow) updateFromTask() {
	task := tr.task
	title := task.GetDisplayTitle()
	if task.Status == model.TaskStatusError && task.LastError != "" {
		title += MiddleDotSeparator + task.LastError
	}
	tr.titleLabel.SetText(title)

	switch task.Status {
	case model.TaskStatusError:
		tr.statusLabel.Importance = widget.DangerImportance
		tr.statusLabel.SetText(IconError + " " + task.Status.String())
	case model.TaskStatusCompleted:
		tr.statusLabel.Importance = widget.SuccessImportance
		tr.statusLabel.SetText(IconCheck + " " + task.Status.String())
	case model.TaskStatusDownloading:
		tr.statusLabel.Importance = widget.HighImportance
		tr.statusLabel.SetText(IconDownload + " " + task.Status.String())
	case model.TaskStatusInstalling:
		tr.statusLabel.Importance = widget.HighImportance
		tr.statusLabel.SetText(task.Status.String())
	default:
		tr.statusLabel.Importance = widget.MediumImportance
		tr.statusLabel.SetText(IconPending + " " + task.Status.String())
	}

	percent := task.Percent
	if task.Status == model.TaskStatusCompleted {
		percent = 100
	}
	tr.progressBar.SetValue(float64(percent) / 100)
	tr.percentLabel.SetText(fmt.Sprintf(ProgressLabelFormat, percent))

	switch {
	case task.Status == model.TaskStatusDownloading && task.Speed != "":
		tr.speedLabel.SetText(task.Speed)
	case task.Status == model.TaskStatusDownloading:
		tr.speedLabel.SetText(DashPlaceholder)
	default:
		tr.speedLabel.SetText("")
	}

	if task.Status.IsFinished() {
		tr.dismissBtn.Enable()
	} else {
		tr.dismissBtn.Disable()
	}
}

// MinSize keeps rows readable in narrow windows
func (tr *TaskRow) MinSize() fyne.Size {
	tr.ExtendBaseWidget(tr)
	return tr.BaseWidget.MinSize().Max(fyne.NewSize(RowMinWidth, RowMinHeight))
}

// CreateRenderer creates the widget renderer
func (tr *TaskRow) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(tr.layoutContent)
}
