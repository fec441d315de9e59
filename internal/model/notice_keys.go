package model

// Localization keys of the messages raised by the decode flow. The UI maps
// them to text; pure packages only deal in keys.
const (
	NoticeEmptyInput          = "notice_empty_input"
	NoticeInvalidBase64       = "notice_invalid_base64"
	NoticePDFTooShort         = "notice_pdf_too_short"
	NoticePDFURLTooLong       = "notice_pdf_url_too_long"
	NoticePDFLoadFailed       = "notice_pdf_load_failed"
	NoticePDFLoaded           = "notice_pdf_loaded"
	NoticeCopied              = "notice_copied"
	NoticeCopyFailed          = "notice_copy_failed"
	NoticeDownloadUnsupported = "notice_download_unsupported"
	NoticeFullscreenOnly      = "notice_fullscreen_only"

	LabelPreviewHTML = "label_preview_html"
)
