package domain

// DocumentType identifies one of the supported legal document categories.
type DocumentType string

const (
	DocumentTypeSale      DocumentType = "sale"
	DocumentTypeGift      DocumentType = "gift"
	DocumentTypeRental    DocumentType = "rental"
	DocumentTypeAuthority DocumentType = "authority"
)

// MatchStatus is the per-field comparison outcome.
type MatchStatus string

const (
	MatchStatusMatch    MatchStatus = "Match"
	MatchStatusMismatch MatchStatus = "Mismatch"
)

// Verdict is the overall document classification.
type Verdict string

const (
	VerdictOriginal Verdict = "Original"
	VerdictFake     Verdict = "Fake"
)

// NotFoundValue is the sentinel used for fields the model could not locate
// in the document. A missing extraction never surfaces as an absent key, so
// downstream comparison is total.
const NotFoundValue = "Not Found"

// FileType represents the allowed file types for upload.
type FileType string

const (
	FileTypePDF FileType = "pdf"
	FileTypeJPG FileType = "jpg"
	FileTypePNG FileType = "png"
)

// AllowedFileTypes maps FileType to its MIME content type.
var AllowedFileTypes = map[FileType]string{
	FileTypePDF: "application/pdf",
	FileTypeJPG: "image/jpeg",
	FileTypePNG: "image/png",
}

// AllowedContentTypes maps MIME content types back to FileType.
var AllowedContentTypes = map[string]FileType{
	"application/pdf": FileTypePDF,
	"image/jpeg":      FileTypeJPG,
	"image/png":       FileTypePNG,
}

// AllowedExtensions maps file extensions (without dot) to FileType.
var AllowedExtensions = map[string]FileType{
	"pdf":  FileTypePDF,
	"jpg":  FileTypeJPG,
	"jpeg": FileTypeJPG,
	"png":  FileTypePNG,
}
