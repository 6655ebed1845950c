package ui

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/plymouth-manager/internal/model"
)

// ThemeRow renders one installed theme with apply, remove and open-folder actions
type ThemeRow struct {
	widget.BaseWidget

	item         model.Theme
	current      bool
	localization *Localization

	nameLabel   *widget.Label
	detailLabel *widget.Label
	applyBtn    *widget.Button
	removeBtn   *widget.Button
	folderBtn   *widget.Button
	content     *fyne.Container

	onApply  func(id string)
	onRemove func(id string)
	onOpen   func(dir string)
}

// NewThemeRow creates an empty row; lists fill it through SetTheme
func NewThemeRow(localization *Localization) *ThemeRow {
	tr := &ThemeRow{localization: localization}
	tr.ExtendBaseWidget(tr)

	tr.nameLabel = widget.NewLabel("")
	tr.nameLabel.TextStyle = fyne.TextStyle{Bold: true}
	tr.nameLabel.Truncation = fyne.TextTruncateEllipsis
	tr.detailLabel = widget.NewLabel("")
	tr.detailLabel.Importance = widget.LowImportance
	tr.detailLabel.Truncation = fyne.TextTruncateEllipsis

	tr.applyBtn = widget.NewButtonWithIcon(localization.GetText(KeyApply), theme.ConfirmIcon(), func() {
		if tr.onApply != nil {
			tr.onApply(tr.item.ID)
		}
	})
	tr.removeBtn = widget.NewButtonWithIcon("", theme.DeleteIcon(), func() {
		if tr.onRemove != nil {
			tr.onRemove(tr.item.ID)
		}
	})
	tr.removeBtn.Importance = widget.DangerImportance
	tr.folderBtn = widget.NewButtonWithIcon("", theme.FolderOpenIcon(), func() {
		if tr.onOpen != nil {
			tr.onOpen(tr.item.Dir)
		}
	})
	tr.folderBtn.Importance = widget.LowImportance

	actions := container.NewHBox(tr.applyBtn, tr.folderBtn, tr.removeBtn)
	tr.content = container.NewBorder(nil, nil, nil, actions, container.NewVBox(tr.nameLabel, tr.detailLabel))
	return tr
}

// SetCallbacks sets the action callbacks
func (tr *ThemeRow) SetCallbacks(onApply, onRemove func(id string), onOpen func(dir string)) {
	tr.onApply = onApply
	tr.onRemove = onRemove
	tr.onOpen = onOpen
}

// SetTheme shows item; current marks the active splash, removable shows the
// remove action for bundles under the install root
func (tr *ThemeRow) SetTheme(item model.Theme, current, removable bool) {
	tr.item = item
	tr.current = current

	name := item.ID
	if current {
		name = IconCheck + " " + name
	}
	tr.nameLabel.SetText(name)
	tr.detailLabel.SetText(themeDetail(item, tr.localization))

	tr.applyBtn.SetText(tr.localization.GetText(KeyApply))
	if current || !item.HasDescriptor {
		tr.applyBtn.Disable()
	} else {
		tr.applyBtn.Enable()
	}
	if removable {
		tr.removeBtn.Show()
	} else {
		tr.removeBtn.Hide()
	}
	tr.Refresh()
}

// themeDetail builds the secondary line: bundle path plus any warnings
func themeDetail(item model.Theme, l *Localization) string {
	parts := []string{item.Dir}
	if !item.HasDescriptor {
		parts = append(parts, IconWarning+" "+l.GetText(KeyNoDescriptor))
	}
	if !item.HasGraphics {
		parts = append(parts, l.GetText(KeyNoGraphics))
	}
	return strings.Join(parts, MiddleDotSeparator)
}

// CreateRenderer creates the widget renderer
func (tr *ThemeRow) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(tr.content)
}
