package ui

import (
	"log"

	"github.com/jeandeaual/go-locale"
	"golang.org/x/text/language"

	"github.com/ytget/unbase64/internal/model"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Language codes
const (
	LangSystem  = "system"
	LangEnglish = "en"
	LangRussian = "ru"
	LangPortug  = "pt"
)

// Text keys for localization. Alert keys live in model so pure packages can raise them.
const (
	KeyAppTitle          = "app_title"
	KeyDecode            = "decode"
	KeyOpenFile          = "open_file"
	KeyCopy              = "copy"
	KeyDownload          = "download"
	KeyFullscreen        = "fullscreen"
	KeyToggleBackground  = "toggle_background"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyView              = "view"
	KeyQuit              = "quit"
	KeyLanguage          = "language"
	KeyDownloadDirectory = "download_directory"
	KeyFilenamePrefix    = "filename_prefix"
	KeyAutoReveal        = "auto_reveal"
	KeyDecodeDelay       = "decode_delay"
	KeyAlertDuration     = "alert_duration"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeyBrowse            = "browse"
	KeyEnterBase64       = "enter_base64"
	KeySettingsSaved     = "settings_saved"
	KeySavedTo           = "saved_to"
	KeySaveFailed        = "save_failed"
	KeyErrorOpeningFile  = "error_opening_file"
	KeyErrorReadingFile  = "error_reading_file"
	KeyPreviewFailed     = "preview_failed"
	KeyPDFDocument       = "pdf_document"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: LangEnglish,
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language. "system" follows the OS locale.
func (l *Localization) SetLanguage(lang string) {
	if lang == LangSystem {
		locales, err := systemLocales()
		if err != nil {
			log.Printf("Failed to detect system locale: %v", err)
		}
		lang = ResolveSystemLanguage(locales)
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// systemLocales is replaced in tests
var systemLocales = locale.GetLocales

var supportedTags = []language.Tag{language.English, language.Russian, language.Portuguese}
var supportedCodes = []string{LangEnglish, LangRussian, LangPortug}

// ResolveSystemLanguage picks the best supported language for the given BCP 47
// locales, falling back to English
func ResolveSystemLanguage(locales []string) string {
	tags := make([]language.Tag, 0, len(locales))
	for _, l := range locales {
		tag, err := language.Parse(l)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
	}
	if len(tags) == 0 {
		return LangEnglish
	}

	matcher := language.NewMatcher(supportedTags)
	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return LangEnglish
	}
	return supportedCodes[index]
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts[LangEnglish]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		LangEnglish: "English",
		LangRussian: "Русский",
		LangPortug:  "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts[LangEnglish] = map[string]string{
		KeyAppTitle:          "unBase64",
		KeyDecode:            "Decode",
		KeyOpenFile:          "Open file",
		KeyCopy:              "Copy",
		KeyDownload:          "Download",
		KeyFullscreen:        "Fullscreen",
		KeyToggleBackground:  "Toggle background",
		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyView:              "View",
		KeyQuit:              "Quit",
		KeyLanguage:          "Language",
		KeyDownloadDirectory: "Download Directory",
		KeyFilenamePrefix:    "File Name Prefix",
		KeyAutoReveal:        "Reveal saved files in folder",
		KeyDecodeDelay:       "Decode delay (ms)",
		KeyAlertDuration:     "Alert duration (s)",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeyBrowse:            "Browse",
		KeyEnterBase64:       "Paste Base64 text here",
		KeySettingsSaved:     "Settings saved successfully!",
		KeySavedTo:           "Saved to %s",
		KeySaveFailed:        "Could not save file: %v",
		KeyErrorOpeningFile:  "Error opening file",
		KeyErrorReadingFile:  "Could not read file: %v",
		KeyPreviewFailed:     "Could not open preview: %v",
		KeyPDFDocument:       "PDF document",

		model.NoticeEmptyInput:          "Please provide either Base64 text or upload a file.",
		model.NoticeInvalidBase64:       "Invalid Base64 input!",
		model.NoticePDFTooShort:         "PDF data is too short or corrupted.",
		model.NoticePDFURLTooLong:       "PDF URL is too long. You can download the PDF instead.",
		model.NoticePDFLoadFailed:       "PDF failed to load.",
		model.NoticePDFLoaded:           "PDF loaded successfully!",
		model.NoticeCopied:              "Decoded text copied to clipboard!",
		model.NoticeCopyFailed:          "Could not copy to clipboard.",
		model.NoticeDownloadUnsupported: "Download is only supported for HTML, image, and PDF content.",
		model.NoticeFullscreenOnly:      "Fullscreen view is only available for HTML, image, or PDF content.",
		model.LabelPreviewHTML:          "Preview HTML",
	}

	// Russian texts
	l.texts[LangRussian] = map[string]string{
		KeyAppTitle:          "unBase64",
		KeyDecode:            "Декодировать",
		KeyOpenFile:          "Открыть файл",
		KeyCopy:              "Копировать",
		KeyDownload:          "Скачать",
		KeyFullscreen:        "Во весь экран",
		KeyToggleBackground:  "Сменить фон",
		KeySettings:          "Настройки",
		KeyFile:              "Файл",
		KeyView:              "Вид",
		KeyQuit:              "Выход",
		KeyLanguage:          "Язык",
		KeyDownloadDirectory: "Папка загрузки",
		KeyFilenamePrefix:    "Префикс имени файла",
		KeyAutoReveal:        "Показывать сохранённые файлы в папке",
		KeyDecodeDelay:       "Задержка декодирования (мс)",
		KeyAlertDuration:     "Длительность уведомлений (с)",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeyBrowse:            "Обзор",
		KeyEnterBase64:       "Вставьте текст Base64",
		KeySettingsSaved:     "Настройки успешно сохранены!",
		KeySavedTo:           "Сохранено в %s",
		KeySaveFailed:        "Не удалось сохранить файл: %v",
		KeyErrorOpeningFile:  "Ошибка открытия файла",
		KeyErrorReadingFile:  "Не удалось прочитать файл: %v",
		KeyPreviewFailed:     "Не удалось открыть просмотр: %v",
		KeyPDFDocument:       "PDF документ",

		model.NoticeEmptyInput:          "Введите текст Base64 или загрузите файл.",
		model.NoticeInvalidBase64:       "Некорректные данные Base64!",
		model.NoticePDFTooShort:         "Данные PDF слишком короткие или повреждены.",
		model.NoticePDFURLTooLong:       "URL PDF слишком длинный. Вы можете скачать PDF.",
		model.NoticePDFLoadFailed:       "Не удалось загрузить PDF.",
		model.NoticePDFLoaded:           "PDF успешно загружен!",
		model.NoticeCopied:              "Декодированный текст скопирован в буфер обмена!",
		model.NoticeCopyFailed:          "Не удалось скопировать в буфер обмена.",
		model.NoticeDownloadUnsupported: "Скачивание доступно только для HTML, изображений и PDF.",
		model.NoticeFullscreenOnly:      "Полноэкранный режим доступен только для HTML, изображений и PDF.",
		model.LabelPreviewHTML:          "Просмотр HTML",
	}

	// Portuguese texts
	l.texts[LangPortug] = map[string]string{
		KeyAppTitle:          "unBase64",
		KeyDecode:            "Decodificar",
		KeyOpenFile:          "Abrir arquivo",
		KeyCopy:              "Copiar",
		KeyDownload:          "Baixar",
		KeyFullscreen:        "Tela cheia",
		KeyToggleBackground:  "Alternar fundo",
		KeySettings:          "Configurações",
		KeyFile:              "Arquivo",
		KeyView:              "Exibir",
		KeyQuit:              "Sair",
		KeyLanguage:          "Idioma",
		KeyDownloadDirectory: "Diretório de Download",
		KeyFilenamePrefix:    "Prefixo do Nome de Arquivo",
		KeyAutoReveal:        "Mostrar arquivos salvos na pasta",
		KeyDecodeDelay:       "Atraso de decodificação (ms)",
		KeyAlertDuration:     "Duração dos alertas (s)",
		KeySave:              "Salvar",
		KeyCancel:            "Cancelar",
		KeyBrowse:            "Navegar",
		KeyEnterBase64:       "Cole o texto Base64 aqui",
		KeySettingsSaved:     "Configurações salvas com sucesso!",
		KeySavedTo:           "Salvo em %s",
		KeySaveFailed:        "Não foi possível salvar o arquivo: %v",
		KeyErrorOpeningFile:  "Erro ao abrir arquivo",
		KeyErrorReadingFile:  "Não foi possível ler o arquivo: %v",
		KeyPreviewFailed:     "Não foi possível abrir a visualização: %v",
		KeyPDFDocument:       "Documento PDF",

		model.NoticeEmptyInput:          "Forneça texto Base64 ou envie um arquivo.",
		model.NoticeInvalidBase64:       "Entrada Base64 inválida!",
		model.NoticePDFTooShort:         "Os dados do PDF são muito curtos ou estão corrompidos.",
		model.NoticePDFURLTooLong:       "A URL do PDF é muito longa. Você pode baixar o PDF.",
		model.NoticePDFLoadFailed:       "Falha ao carregar o PDF.",
		model.NoticePDFLoaded:           "PDF carregado com sucesso!",
		model.NoticeCopied:              "Texto decodificado copiado para a área de transferência!",
		model.NoticeCopyFailed:          "Não foi possível copiar para a área de transferência.",
		model.NoticeDownloadUnsupported: "O download só é suportado para HTML, imagens e PDF.",
		model.NoticeFullscreenOnly:      "A tela cheia só está disponível para HTML, imagens ou PDF.",
		model.LabelPreviewHTML:          "Visualizar HTML",
	}
}
