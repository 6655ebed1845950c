package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/plymouth-manager/internal/model"
)

// CatalogRow renders one search result with an install action
type CatalogRow struct {
	widget.BaseWidget

	entry        model.CatalogEntry
	localization *Localization

	nameLabel  *widget.Label
	metaLabel  *widget.Label
	descLabel  *widget.Label
	installBtn *widget.Button
	content    *fyne.Container
	onInstall  func(model.CatalogEntry)
}

// NewCatalogRow creates an empty row; lists fill it through SetEntry
func NewCatalogRow(localization *Localization) *CatalogRow {
	cr := &CatalogRow{localization: localization}
	cr.ExtendBaseWidget(cr)

	cr.nameLabel = widget.NewLabel("")
	cr.nameLabel.TextStyle = fyne.TextStyle{Bold: true}
	cr.nameLabel.Truncation = fyne.TextTruncateEllipsis
	cr.metaLabel = widget.NewLabel("")
	cr.metaLabel.Importance = widget.LowImportance
	cr.descLabel = widget.NewLabel("")
	cr.descLabel.Truncation = fyne.TextTruncateEllipsis

	cr.installBtn = widget.NewButtonWithIcon(localization.GetText(KeyInstall), theme.DownloadIcon(), func() {
		if cr.onInstall != nil {
			cr.onInstall(cr.entry)
		}
	})
	cr.installBtn.Importance = widget.HighImportance

	header := container.NewBorder(nil, nil, nil, cr.metaLabel, cr.nameLabel)
	cr.content = container.NewBorder(nil, nil, nil, cr.installBtn, container.NewVBox(header, cr.descLabel))
	return cr
}

// SetOnInstall sets the install callback
func (cr *CatalogRow) SetOnInstall(onInstall func(model.CatalogEntry)) {
	cr.onInstall = onInstall
}

// SetEntry shows entry
func (cr *CatalogRow) SetEntry(entry model.CatalogEntry) {
	cr.entry = entry
	cr.nameLabel.SetText(entry.Name)
	cr.metaLabel.SetText(catalogMeta(entry))
	cr.descLabel.SetText(entry.Description)
	cr.installBtn.SetText(cr.localization.GetText(KeyInstall))
	cr.Refresh()
}

// catalogMeta formats "author · ★ stars"
func catalogMeta(entry model.CatalogEntry) string {
	if entry.Stars > 0 {
		return fmt.Sprintf("%s%s%s %d", entry.Author, MiddleDotSeparator, IconStar, entry.Stars)
	}
	return entry.Author
}

// CreateRenderer creates the widget renderer
func (cr *CatalogRow) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(cr.content)
}
