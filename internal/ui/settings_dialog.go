package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/plymouth-manager/internal/config"
)

// SettingsChanges tells the caller which saved values need follow-up work
type SettingsChanges struct {
	BootDelay        int
	BootDelayChanged bool
	LanguageChanged  bool
}

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func(SettingsChanges)

	// UI components
	delaySlider    *widget.Slider
	delayLabel     *widget.Label
	lenientCheck   *widget.Check
	applyCheck     *widget.Check
	languageSelect *widget.Select
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func(SettingsChanges)) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// ShowSettingsDialog builds and shows the dialog in one call
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func(SettingsChanges)) {
	NewSettingsDialog(settings, localization, window, onSaved).Show()
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

func (sd *SettingsDialog) createUI() {
	l := sd.localization

	sd.delayLabel = widget.NewLabel("")
	sd.delaySlider = widget.NewSlider(config.MinBootDelaySeconds, config.MaxBootDelaySeconds)
	sd.delaySlider.Step = 1
	sd.delaySlider.OnChanged = func(v float64) {
		sd.delayLabel.SetText(fmt.Sprintf(BootDelayFormat, int(v)))
	}
	delayRow := container.NewBorder(nil, nil, nil, sd.delayLabel, sd.delaySlider)

	sd.lenientCheck = widget.NewCheck(l.GetText(KeyLenientApply), nil)
	sd.applyCheck = widget.NewCheck(l.GetText(KeyApplyAfterInstall), nil)

	languages := l.GetAvailableLanguages()
	sd.languageSelect = widget.NewSelect(l.LanguageCodes(), nil)
	sd.languageSelect.PlaceHolder = l.GetText(KeyLanguage)
	sd.languageSelect.OnChanged = func(code string) {
		if name, ok := languages[code]; ok {
			sd.languageSelect.PlaceHolder = name
		}
	}

	form := widget.NewForm(
		widget.NewFormItem(l.GetText(KeyBootDelay), delayRow),
		widget.NewFormItem("", sd.lenientCheck),
		widget.NewFormItem("", sd.applyCheck),
		widget.NewFormItem(l.GetText(KeyLanguage), sd.languageSelect),
	)

	sd.dialog = dialog.NewCustomConfirm(
		l.GetText(KeySettings),
		l.GetText(KeySave),
		l.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)
	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

func (sd *SettingsDialog) loadCurrentSettings() {
	sd.delaySlider.SetValue(float64(sd.settings.GetBootDelaySeconds()))
	sd.delayLabel.SetText(fmt.Sprintf(BootDelayFormat, sd.settings.GetBootDelaySeconds()))
	sd.lenientCheck.SetChecked(sd.settings.GetLenientApply())
	sd.applyCheck.SetChecked(sd.settings.GetApplyAfterInstall())
	sd.languageSelect.SetSelected(sd.localization.GetCurrentLanguage())
}

// onSave persists the form and reports what changed
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	var changes SettingsChanges

	// The boot delay preference is stored by the caller once the system file is written.
	changes.BootDelay = int(sd.delaySlider.Value)
	changes.BootDelayChanged = changes.BootDelay != sd.settings.GetBootDelaySeconds()

	sd.settings.SetLenientApply(sd.lenientCheck.Checked)
	sd.settings.SetApplyAfterInstall(sd.applyCheck.Checked)

	if lang := sd.languageSelect.Selected; lang != "" && lang != sd.localization.GetCurrentLanguage() {
		sd.settings.SetLanguage(lang)
		changes.LanguageChanged = true
	}

	if sd.onSaved != nil {
		sd.onSaved(changes)
	}
}
