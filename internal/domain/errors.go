package domain

import "errors"

var (
	ErrUnsupportedDocumentType = errors.New("unsupported document type")
	ErrExtractionEmptyResponse = errors.New("extraction model returned no text")
	ErrExtractionParse         = errors.New("extraction response is not valid JSON")
	ErrExtractionService       = errors.New("extraction service failure")
	ErrUnsupportedFileType     = errors.New("unsupported file type")
	ErrFileTooLarge            = errors.New("file exceeds maximum allowed size")
	ErrMissingFile             = errors.New("file is required")
	ErrPreviewRender           = errors.New("preview rendering produced no pages")
)
