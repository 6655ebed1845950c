package ui

import "sort"

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyTabInstalled      = "tab_installed"
	KeyTabOnline         = "tab_online"
	KeyApply             = "apply"
	KeyRemove            = "remove"
	KeyImportZip         = "import_zip"
	KeyOpenFolder        = "open_folder"
	KeyRefresh           = "refresh"
	KeyCurrentTheme      = "current_theme"
	KeyNoCurrentTheme    = "no_current_theme"
	KeyNoDescriptor      = "no_descriptor"
	KeyNoGraphics        = "no_graphics"
	KeySearch            = "search"
	KeySearchPlaceholder = "search_placeholder"
	KeySearching         = "searching"
	KeyNoResults         = "no_results"
	KeyInstall           = "install"
	KeyDismiss           = "dismiss"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeyBootDelay         = "boot_delay"
	KeyLenientApply      = "lenient_apply"
	KeyApplyAfterInstall = "apply_after_install"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeySettingsSaved     = "settings_saved"
	KeyBootDelaySaved    = "boot_delay_saved"
	KeyThemeApplied      = "theme_applied"
	KeyThemeRemoved      = "theme_removed"
	KeyThemeInstalled    = "theme_installed"
	KeyConfirmRemove     = "confirm_remove"
	KeyApplying          = "applying"
	KeyInstalling        = "installing"
	KeyOperationFailed   = "operation_failed"
	KeyAlreadyInQueue    = "already_in_queue"
	KeyTaskAdded         = "task_added"
	KeyErrorOpeningDir   = "error_opening_dir"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language; unknown codes are ignored
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if text, found := l.texts["en"][key]; found {
		return text
	}

	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// LanguageCodes returns the available language codes in a stable order
func (l *Localization) LanguageCodes() []string {
	codes := make([]string, 0, len(l.texts))
	for code := range l.GetAvailableLanguages() {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "Plymouth Manager",
		KeyTabInstalled:      "Installed",
		KeyTabOnline:         "Online",
		KeyApply:             "Apply",
		KeyRemove:            "Remove",
		KeyImportZip:         "Import ZIP…",
		KeyOpenFolder:        "Open themes folder",
		KeyRefresh:           "Refresh",
		KeyCurrentTheme:      "Current theme",
		KeyNoCurrentTheme:    "none detected",
		KeyNoDescriptor:      "no descriptor",
		KeyNoGraphics:        "no images",
		KeySearch:            "Search",
		KeySearchPlaceholder: "Search boot splash themes",
		KeySearching:         "Searching…",
		KeyNoResults:         "No themes found",
		KeyInstall:           "Install",
		KeyDismiss:           "Dismiss",
		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeyBootDelay:         "Boot delay",
		KeyLenientApply:      "Keep going when an apply step fails",
		KeyApplyAfterInstall: "Apply themes right after an online install",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeySettingsSaved:     "Settings saved",
		KeyBootDelaySaved:    "Boot delay updated",
		KeyThemeApplied:      "Theme applied",
		KeyThemeRemoved:      "Theme removed",
		KeyThemeInstalled:    "Theme installed",
		KeyConfirmRemove:     "Remove this theme from the system?",
		KeyApplying:          "Applying theme and rebuilding initramfs…",
		KeyInstalling:        "Installing theme…",
		KeyOperationFailed:   "Operation failed",
		KeyAlreadyInQueue:    "Already in queue",
		KeyTaskAdded:         "Download started",
		KeyErrorOpeningDir:   "Error opening folder",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "Менеджер Plymouth",
		KeyTabInstalled:      "Установленные",
		KeyTabOnline:         "Онлайн",
		KeyApply:             "Применить",
		KeyRemove:            "Удалить",
		KeyImportZip:         "Импорт ZIP…",
		KeyOpenFolder:        "Открыть папку тем",
		KeyRefresh:           "Обновить",
		KeyCurrentTheme:      "Текущая тема",
		KeyNoCurrentTheme:    "не определена",
		KeyNoDescriptor:      "нет описания",
		KeyNoGraphics:        "нет изображений",
		KeySearch:            "Поиск",
		KeySearchPlaceholder: "Поиск тем загрузки",
		KeySearching:         "Поиск…",
		KeyNoResults:         "Темы не найдены",
		KeyInstall:           "Установить",
		KeyDismiss:           "Убрать",
		KeySettings:          "Настройки",
		KeyFile:              "Файл",
		KeyLanguage:          "Язык",
		KeyBootDelay:         "Задержка загрузки",
		KeyLenientApply:      "Продолжать при ошибке шага",
		KeyApplyAfterInstall: "Применять тему сразу после установки",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeySettingsSaved:     "Настройки сохранены",
		KeyBootDelaySaved:    "Задержка загрузки обновлена",
		KeyThemeApplied:      "Тема применена",
		KeyThemeRemoved:      "Тема удалена",
		KeyThemeInstalled:    "Тема установлена",
		KeyConfirmRemove:     "Удалить эту тему из системы?",
		KeyApplying:          "Применение темы и пересборка initramfs…",
		KeyInstalling:        "Установка темы…",
		KeyOperationFailed:   "Операция не удалась",
		KeyAlreadyInQueue:    "Уже в очереди",
		KeyTaskAdded:         "Загрузка начата",
		KeyErrorOpeningDir:   "Ошибка открытия папки",
	}

	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "Gerenciador Plymouth",
		KeyTabInstalled:      "Instalados",
		KeyTabOnline:         "Online",
		KeyApply:             "Aplicar",
		KeyRemove:            "Remover",
		KeyImportZip:         "Importar ZIP…",
		KeyOpenFolder:        "Abrir pasta de temas",
		KeyRefresh:           "Atualizar",
		KeyCurrentTheme:      "Tema atual",
		KeyNoCurrentTheme:    "nenhum detectado",
		KeyNoDescriptor:      "sem descritor",
		KeyNoGraphics:        "sem imagens",
		KeySearch:            "Buscar",
		KeySearchPlaceholder: "Buscar temas de inicialização",
		KeySearching:         "Buscando…",
		KeyNoResults:         "Nenhum tema encontrado",
		KeyInstall:           "Instalar",
		KeyDismiss:           "Dispensar",
		KeySettings:          "Configurações",
		KeyFile:              "Arquivo",
		KeyLanguage:          "Idioma",
		KeyBootDelay:         "Atraso de inicialização",
		KeyLenientApply:      "Continuar quando uma etapa falhar",
		KeyApplyAfterInstall: "Aplicar temas logo após instalar",
		KeySave:              "Salvar",
		KeyCancel:            "Cancelar",
		KeySettingsSaved:     "Configurações salvas",
		KeyBootDelaySaved:    "Atraso de inicialização atualizado",
		KeyThemeApplied:      "Tema aplicado",
		KeyThemeRemoved:      "Tema removido",
		KeyThemeInstalled:    "Tema instalado",
		KeyConfirmRemove:     "Remover este tema do sistema?",
		KeyApplying:          "Aplicando tema e recriando initramfs…",
		KeyInstalling:        "Instalando tema…",
		KeyOperationFailed:   "Falha na operação",
		KeyAlreadyInQueue:    "Já na fila",
		KeyTaskAdded:         "Download iniciado",
		KeyErrorOpeningDir:   "Erro ao abrir pasta",
	}
}
