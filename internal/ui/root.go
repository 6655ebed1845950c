package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"pkt.systems/pslog"

	"github.com/ytget/plymouth-manager/internal/config"
	"github.com/ytget/plymouth-manager/internal/core"
	"github.com/ytget/plymouth-manager/internal/download"
	"github.com/ytget/plymouth-manager/internal/model"
	"github.com/ytget/plymouth-manager/internal/platform"
	"github.com/ytget/plymouth-manager/internal/themes"
)

// Tab indexes
const (
	TabInstalled = iota
	TabOnline
)

// RootUI represents the main UI structure
type RootUI struct {
	ctx          context.Context
	window       fyne.Window
	app          fyne.App
	svc          core.Services
	settings     *config.Settings
	localization *Localization

	tabs          *container.AppTabs
	currentLabel  *widget.Label
	installedList *widget.List
	importBtn     *widget.Button
	folderBtn     *widget.Button
	refreshBtn    *widget.Button
	searchEntry   *widget.Entry
	searchBtn     *widget.Button
	resultsList   *widget.List
	taskList      *widget.List

	// Owned by the UI goroutine
	themes     []model.Theme
	current    string
	results    []model.CatalogEntry
	tasks      []*model.InstallTask
	taskStatus map[string]model.TaskStatus

	// UI update debouncing
	lastUIUpdate  time.Time
	uiUpdateMutex sync.Mutex

	// Notification panel
	notificationContainer *fyne.Container
	notificationLabel     *widget.Label
	notificationSpinner   *widget.ProgressBarInfinite
}

// NewRootUI creates and initializes the main UI. Call Start to begin loading data.
func NewRootUI(ctx context.Context, window fyne.Window, app fyne.App, svc core.Services) *RootUI {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		ctx:          ctx,
		window:       window,
		app:          app,
		svc:          svc,
		settings:     settings,
		localization: localization,
		taskStatus:   make(map[string]model.TaskStatus),
	}

	window.SetTitle(localization.GetText(KeyAppTitle))
	ui.svc.Downloads.SetUpdateCallback(ui.onTaskUpdate)

	ui.setupUI()
	return ui
}

// Start loads installed themes, the optional local catalog and begins watching theme roots
func (ui *RootUI) Start() {
	ui.refreshThemes()

	if ui.svc.Config.Search.LocalIndex != "" {
		go func() {
			entries := ui.svc.Catalog.Local(ui.ctx)
			fyne.Do(func() { ui.setResults(entries) })
		}()
	}

	go func() {
		if err := themes.Watch(ui.ctx, ui.svc.Scanner.Roots(), ui.refreshThemes); err != nil {
			pslog.Ctx(ui.ctx).Debug("theme roots not watched", "error", err)
		}
	}()
}

func (ui *RootUI) setupUI() {
	ui.createMenu()

	// Notification panel (hidden by default)
	ui.notificationLabel = widget.NewLabel("")
	ui.notificationLabel.Truncation = fyne.TextTruncateEllipsis
	ui.notificationSpinner = widget.NewProgressBarInfinite()
	ui.notificationSpinner.Hide()
	ui.notificationContainer = container.NewBorder(nil, nil, ui.notificationSpinner, nil, ui.notificationLabel)
	ui.notificationContainer.Hide()

	ui.tabs = container.NewAppTabs(
		container.NewTabItemWithIcon(ui.localization.GetText(KeyTabInstalled), theme.ComputerIcon(), ui.createInstalledTab()),
		container.NewTabItemWithIcon(ui.localization.GetText(KeyTabOnline), theme.SearchIcon(), ui.createOnlineTab()),
	)

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	top := container.NewBorder(nil, nil, nil, settingsBtn, ui.notificationContainer)
	ui.window.SetContent(container.NewBorder(top, nil, nil, nil, ui.tabs))
}

func (ui *RootUI) createInstalledTab() fyne.CanvasObject {
	ui.currentLabel = widget.NewLabel("")
	ui.updateCurrentLabel()

	ui.importBtn = widget.NewButtonWithIcon(ui.localization.GetText(KeyImportZip), theme.ContentAddIcon(), ui.onImportClick)
	ui.folderBtn = widget.NewButtonWithIcon(ui.localization.GetText(KeyOpenFolder), theme.FolderOpenIcon(), func() {
		ui.onOpenFolder(ui.svc.Config.InstallRoot)
	})
	ui.refreshBtn = widget.NewButtonWithIcon("", theme.ViewRefreshIcon(), ui.refreshThemes)
	ui.refreshBtn.Importance = widget.LowImportance

	ui.installedList = widget.NewList(
		func() int { return len(ui.themes) },
		func() fyne.CanvasObject {
			row := NewThemeRow(ui.localization)
			row.SetCallbacks(ui.applyTheme, ui.onRemoveTheme, ui.onOpenFolder)
			return row
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if id >= len(ui.themes) {
				return
			}
			item := ui.themes[id]
			obj.(*ThemeRow).SetTheme(item, item.ID == ui.current, ui.svc.Installer.Owns(item))
		},
	)

	toolbar := container.NewBorder(nil, nil, ui.currentLabel, container.NewHBox(ui.importBtn, ui.folderBtn, ui.refreshBtn))
	return container.NewBorder(toolbar, nil, nil, nil, ui.installedList)
}

func (ui *RootUI) createOnlineTab() fyne.CanvasObject {
	ui.searchEntry = widget.NewEntry()
	ui.searchEntry.SetPlaceHolder(ui.localization.GetText(KeySearchPlaceholder))
	ui.searchEntry.SetText(ui.settings.GetLastSearchQuery())
	ui.searchEntry.OnSubmitted = func(string) { ui.onSearchClick() }

	ui.searchBtn = widget.NewButtonWithIcon(ui.localization.GetText(KeySearch), theme.SearchIcon(), ui.onSearchClick)

	ui.resultsList = widget.NewList(
		func() int { return len(ui.results) },
		func() fyne.CanvasObject {
			row := NewCatalogRow(ui.localization)
			row.SetOnInstall(ui.onInstallClick)
			return row
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if id >= len(ui.results) {
				return
			}
			obj.(*CatalogRow).SetEntry(ui.results[id])
		},
	)

	ui.taskList = widget.NewList(
		func() int { return len(ui.tasks) },
		func() fyne.CanvasObject {
			row := NewTaskRow(nil, ui.localization)
			row.SetOnDismiss(ui.onDismissTask)
			return row
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if id >= len(ui.tasks) {
				return
			}
			obj.(*TaskRow).UpdateTask(ui.tasks[id])
		},
	)

	searchRow := container.NewBorder(nil, nil, nil, ui.searchBtn, ui.searchEntry)
	split := container.NewVSplit(ui.resultsList, ui.taskList)
	split.SetOffset(0.65)
	return container.NewBorder(searchRow, nil, nil, nil, split)
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	importItem := fyne.NewMenuItem(ui.localization.GetText(KeyImportZip), ui.onImportClick)
	folderItem := fyne.NewMenuItem(ui.localization.GetText(KeyOpenFolder), func() {
		ui.onOpenFolder(ui.svc.Config.InstallRoot)
	})
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	available := ui.localization.GetAvailableLanguages()
	for _, code := range ui.localization.LanguageCodes() {
		langCode := code
		langItem := fyne.NewMenuItem(available[code], func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), importItem, folderItem, fyne.NewMenuItemSeparator(), settingsItem),
		languageMenu,
	))
}

func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	l := ui.localization
	ui.window.SetTitle(l.GetText(KeyAppTitle))
	ui.tabs.Items[TabInstalled].Text = l.GetText(KeyTabInstalled)
	ui.tabs.Items[TabOnline].Text = l.GetText(KeyTabOnline)
	ui.tabs.Refresh()
	ui.importBtn.SetText(l.GetText(KeyImportZip))
	ui.folderBtn.SetText(l.GetText(KeyOpenFolder))
	ui.searchBtn.SetText(l.GetText(KeySearch))
	ui.searchEntry.SetPlaceHolder(l.GetText(KeySearchPlaceholder))
	ui.updateCurrentLabel()
	ui.installedList.Refresh()
	ui.resultsList.Refresh()
	ui.taskList.Refresh()
	ui.createMenu()
}

// refreshThemes rescans theme roots off the UI goroutine
func (ui *RootUI) refreshThemes() {
	go func() {
		list := ui.svc.Scanner.ListContext(ui.ctx)
		current := ui.svc.Activator.Current()
		fyne.Do(func() { ui.setThemes(list, current) })
	}()
}

func (ui *RootUI) setThemes(list []model.Theme, current string) {
	ui.themes = list
	ui.current = current
	ui.updateCurrentLabel()
	ui.installedList.Refresh()
}

func (ui *RootUI) updateCurrentLabel() {
	name := ui.current
	if name == "" {
		name = ui.localization.GetText(KeyNoCurrentTheme)
	}
	ui.currentLabel.SetText(fmt.Sprintf("%s: %s", ui.localization.GetText(KeyCurrentTheme), name))
}

// applyTheme activates id with the user's policy preference
func (ui *RootUI) applyTheme(id string) {
	if id == "" {
		return
	}
	ui.showNotification(ui.localization.GetText(KeyApplying), true)
	activator := ui.svc.Activator.WithPolicy(ui.settings.ApplyPolicy())

	go func() {
		err := activator.Apply(ui.ctx, id)
		current := ui.svc.Activator.Current()
		fyne.Do(func() {
			ui.current = current
			ui.updateCurrentLabel()
			ui.installedList.Refresh()
			if err != nil {
				ui.showError(err)
				return
			}
			ui.showNotification(fmt.Sprintf("%s: %s", ui.localization.GetText(KeyThemeApplied), id), false)
		})
	}()
}

func (ui *RootUI) onRemoveTheme(id string) {
	dialog.ShowConfirm(ui.localization.GetText(KeyRemove), ui.localization.GetText(KeyConfirmRemove)+"\n\n"+id, func(ok bool) {
		if !ok {
			return
		}
		go func() {
			err := ui.svc.Installer.Remove(ui.ctx, id)
			fyne.Do(func() {
				if err != nil {
					ui.showError(err)
					return
				}
				ui.showNotification(fmt.Sprintf("%s: %s", ui.localization.GetText(KeyThemeRemoved), id), false)
				ui.refreshThemes()
			})
		}()
	}, ui.window)
}

func (ui *RootUI) onImportClick() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			ui.showError(err)
			return
		}
		if reader == nil {
			return
		}
		path := reader.URI().Path()
		reader.Close()
		ui.importArchive(path)
	}, ui.window)
	fd.SetFilter(storage.NewExtensionFileFilter(ImportExtensions))
	fd.Show()
}

func (ui *RootUI) importArchive(path string) {
	ui.showNotification(ui.localization.GetText(KeyInstalling), true)
	go func() {
		installed, err := ui.svc.Installer.ImportArchive(ui.ctx, path)
		fyne.Do(func() {
			if err != nil {
				ui.showError(err)
				return
			}
			ui.showNotification(fmt.Sprintf("%s: %s", ui.localization.GetText(KeyThemeInstalled), installed.ID), false)
			ui.refreshThemes()
			ui.tabs.SelectIndex(TabInstalled)
		})
	}()
}

func (ui *RootUI) onOpenFolder(dir string) {
	if err := platform.OpenDirInManager(dir); err != nil {
		pslog.Ctx(ui.ctx).Warn("open folder failed", "dir", dir, "error", err)
		ui.showNotification(ui.localization.GetText(KeyErrorOpeningDir)+": "+err.Error(), false)
	}
}

func (ui *RootUI) onSearchClick() {
	query := strings.TrimSpace(ui.searchEntry.Text)
	ui.settings.SetLastSearchQuery(query)
	ui.showNotification(ui.localization.GetText(KeySearching), true)
	ui.searchBtn.Disable()

	go func() {
		entries := ui.svc.Catalog.Search(ui.ctx, query)
		fyne.Do(func() {
			ui.searchBtn.Enable()
			ui.setResults(entries)
			if len(entries) == 0 {
				ui.showNotification(ui.localization.GetText(KeyNoResults), false)
				return
			}
			ui.hideNotification()
		})
	}()
}

func (ui *RootUI) setResults(entries []model.CatalogEntry) {
	ui.results = entries
	ui.resultsList.Refresh()
}

func (ui *RootUI) onInstallClick(entry model.CatalogEntry) {
	task, err := ui.svc.Downloads.AddTask(ui.ctx, entry)
	if err != nil {
		if errors.Is(err, download.ErrTaskExists) {
			ui.showNotification(ui.localization.GetText(KeyAlreadyInQueue), false)
			return
		}
		ui.showError(err)
		return
	}
	ui.upsertTask(task)
	ui.showNotification(fmt.Sprintf("%s: %s", ui.localization.GetText(KeyTaskAdded), task.GetDisplayTitle()), false)
}

func (ui *RootUI) onDismissTask(taskID string) {
	if err := ui.svc.Downloads.RemoveTask(taskID); err != nil {
		ui.showError(err)
		return
	}
	for i, t := range ui.tasks {
		if t.ID == taskID {
			ui.tasks = append(ui.tasks[:i], ui.tasks[i+1:]...)
			break
		}
	}
	delete(ui.taskStatus, taskID)
	ui.taskList.Refresh()
}

// onTaskUpdate handles task updates from the download service
func (ui *RootUI) onTaskUpdate(task *model.InstallTask) {
	fyne.Do(func() { ui.upsertTask(task) })
}

// upsertTask records a task snapshot and reacts to status transitions
func (ui *RootUI) upsertTask(task *model.InstallTask) {
	prev, known := ui.taskStatus[task.ID]
	ui.taskStatus[task.ID] = task.Status

	replaced := false
	for i, t := range ui.tasks {
		if t.ID == task.ID {
			ui.tasks[i] = task
			replaced = true
			break
		}
	}
	if !replaced {
		ui.tasks = append(ui.tasks, task)
	}

	statusChanged := !known || prev != task.Status
	if statusChanged && task.Status == model.TaskStatusCompleted {
		ui.onTaskCompleted(task)
	}
	if statusChanged && task.Status == model.TaskStatusError {
		pslog.Ctx(ui.ctx).Warn("install task failed", "task", task.ID, "error", task.LastError)
	}

	if statusChanged || ui.debounceElapsed() {
		ui.taskList.Refresh()
	}
}

// debounceElapsed limits progress-only refreshes to one per UIUpdateDebounce
func (ui *RootUI) debounceElapsed() bool {
	ui.uiUpdateMutex.Lock()
	defer ui.uiUpdateMutex.Unlock()

	now := time.Now()
	if now.Sub(ui.lastUIUpdate) < UIUpdateDebounce {
		return false
	}
	ui.lastUIUpdate = now
	return true
}

func (ui *RootUI) onTaskCompleted(task *model.InstallTask) {
	title := ui.localization.GetText(KeyThemeInstalled)
	ui.app.SendNotification(fyne.NewNotification(title, task.GetDisplayTitle()))
	ui.refreshThemes()

	if ui.settings.GetApplyAfterInstall() {
		ui.applyTheme(task.ThemeID)
		return
	}
	ui.showToastNotification(task)
}

// showToastNotification shows a short-lived popup offering to apply a fresh install
func (ui *RootUI) showToastNotification(task *model.InstallTask) {
	titleLabel := widget.NewLabel(ui.localization.GetText(KeyThemeInstalled))
	titleLabel.TextStyle = fyne.TextStyle{Bold: true}

	messageLabel := widget.NewLabel(task.GetDisplayTitle())
	messageLabel.Truncation = fyne.TextTruncateEllipsis

	var toast *widget.PopUp
	applyBtn := widget.NewButton(ui.localization.GetText(KeyApply), func() {
		toast.Hide()
		ui.applyTheme(task.ThemeID)
	})
	applyBtn.Importance = widget.HighImportance
	closeBtn := widget.NewButton(IconClose, func() { toast.Hide() })
	closeBtn.Importance = widget.LowImportance

	content := container.NewVBox(
		container.NewBorder(nil, nil, titleLabel, closeBtn),
		messageLabel,
		container.NewHBox(applyBtn),
	)
	toast = widget.NewPopUp(content, ui.window.Canvas())

	canvasSize := ui.window.Canvas().Size()
	toast.Resize(fyne.NewSize(ToastWidth, ToastHeight))
	toast.Move(fyne.NewPos(canvasSize.Width-ToastWidth-ToastMargin, ToastMargin))
	toast.Show()

	time.AfterFunc(ToastAutoHide, func() {
		fyne.Do(toast.Hide)
	})
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, ui.onSettingsSaved)
}

func (ui *RootUI) onSettingsSaved(changes SettingsChanges) {
	if changes.LanguageChanged {
		ui.localization.SetLanguage(ui.settings.GetLanguage())
		ui.refreshUITexts()
	}
	if !changes.BootDelayChanged {
		ui.showNotification(ui.localization.GetText(KeySettingsSaved), false)
		return
	}

	seconds := changes.BootDelay
	ui.showNotification(ui.localization.GetText(KeyBootDelay)+"…", true)
	go func() {
		err := ui.svc.BootDelay.Apply(ui.ctx, seconds)
		fyne.Do(func() {
			if err != nil {
				ui.showError(err)
				return
			}
			ui.settings.SetBootDelaySeconds(seconds)
			ui.showNotification(fmt.Sprintf("%s: "+BootDelayFormat, ui.localization.GetText(KeyBootDelaySaved), seconds), false)
		})
	}()
}

// showNotification displays a message in the notification panel.
// When spinning is true, a spinner is shown to indicate background activity.
func (ui *RootUI) showNotification(message string, spinning bool) {
	ui.notificationLabel.SetText(message)
	if spinning {
		ui.notificationSpinner.Show()
	} else {
		ui.notificationSpinner.Hide()
	}
	ui.notificationContainer.Show()
	ui.notificationContainer.Refresh()
}

// hideNotification hides the notification panel
func (ui *RootUI) hideNotification() {
	ui.notificationSpinner.Hide()
	ui.notificationContainer.Hide()
}

// showError reports err in the notification panel and, for privilege or
// command failures, in a dialog as well
func (ui *RootUI) showError(err error) {
	pslog.Ctx(ui.ctx).Warn("operation failed", "error", err)
	ui.showNotification(ui.localization.GetText(KeyOperationFailed)+": "+err.Error(), false)
	if errors.Is(err, model.ErrInstallationDenied) || errors.Is(err, model.ErrCommandFailed) {
		dialog.ShowError(err, ui.window)
	}
}
