package handler

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"docverify/internal/config"
	"docverify/internal/doctype"
	"docverify/internal/domain"
	"docverify/internal/port"
	"docverify/internal/report"
	"docverify/internal/verify"
)

// VerificationResponse is the HTTP payload for a completed verification:
// the result plus per-page preview URLs (presigned or inline data URIs).
type VerificationResponse struct {
	*domain.VerificationResult
	Previews []string `json:"previews"`
}

// VerificationHandler handles document verification requests.
type VerificationHandler struct {
	verifier verify.Service
	previews port.PreviewRenderer
	store    port.ObjectStorage // nil when the S3 preview store is disabled
	cfg      *config.Config
}

// NewVerificationHandler creates a VerificationHandler. store may be nil;
// previews are then returned inline as data URIs.
func NewVerificationHandler(verifier verify.Service, previews port.PreviewRenderer, store port.ObjectStorage, cfg *config.Config) *VerificationHandler {
	return &VerificationHandler{
		verifier: verifier,
		previews: previews,
		store:    store,
		cfg:      cfg,
	}
}

// Create handles POST /api/v1/verifications. The request is multipart form
// data with a "file" part, a "document_type" field, and the claim either as a
// "claim" JSON field or as individual form fields keyed by field name. An
// optional ?format=csv|xlsx query streams the comparison table as a download
// instead of returning JSON.
func (h *VerificationHandler) Create(c *gin.Context) {
	docType := c.PostForm("document_type")
	def, err := doctype.Resolve(docType)
	if err != nil {
		HandleError(c, err)
		return
	}

	fileBytes, contentType, err := h.readUpload(c)
	if err != nil {
		HandleError(c, err)
		return
	}

	claim, err := parseClaim(c, def)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_CLAIM", "claim field is not valid JSON")
		return
	}

	result, err := h.verifier.Verify(c.Request.Context(), verify.VerifyInput{
		FileBytes:    fileBytes,
		ContentType:  contentType,
		DocumentType: docType,
		Claim:        claim,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	switch format := c.Query("format"); format {
	case "csv":
		h.respondCSV(c, result)
		return
	case "xlsx":
		h.respondXLSX(c, result)
		return
	case "", "json":
	default:
		RespondError(c, http.StatusBadRequest, "INVALID_FORMAT", "format must be csv or xlsx")
		return
	}

	previewURLs, err := h.buildPreviews(c, result, fileBytes, contentType)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, VerificationResponse{
		VerificationResult: result,
		Previews:           previewURLs,
	})
}

// readUpload extracts and validates the uploaded file: presence, size cap,
// extension allow-list, and magic-byte content sniffing.
func (h *VerificationHandler) readUpload(c *gin.Context) ([]byte, string, error) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return nil, "", domain.ErrMissingFile
	}

	maxBytes := h.cfg.Upload.MaxFileSizeMB * 1024 * 1024
	if fileHeader.Size > maxBytes {
		return nil, "", fmt.Errorf("%w: %d bytes (limit %d MB)", domain.ErrFileTooLarge, fileHeader.Size, h.cfg.Upload.MaxFileSizeMB)
	}

	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(fileHeader.Filename)), ".")
	if _, ok := domain.AllowedExtensions[ext]; !ok {
		return nil, "", fmt.Errorf("%w: %q", domain.ErrUnsupportedFileType, ext)
	}

	f, err := fileHeader.Open()
	if err != nil {
		return nil, "", fmt.Errorf("opening upload: %w", err)
	}
	defer f.Close()

	fileBytes, err := io.ReadAll(io.LimitReader(f, maxBytes+1))
	if err != nil {
		return nil, "", fmt.Errorf("reading upload: %w", err)
	}
	if int64(len(fileBytes)) > maxBytes {
		return nil, "", fmt.Errorf("%w: limit %d MB", domain.ErrFileTooLarge, h.cfg.Upload.MaxFileSizeMB)
	}

	// Sniff the real content type; the multipart header is client-controlled.
	contentType := http.DetectContentType(fileBytes)
	if idx := strings.Index(contentType, ";"); idx != -1 {
		contentType = contentType[:idx]
	}
	if _, ok := domain.AllowedContentTypes[contentType]; !ok {
		return nil, "", fmt.Errorf("%w: detected %q", domain.ErrUnsupportedFileType, contentType)
	}

	return fileBytes, contentType, nil
}

// parseClaim reads the claim from a "claim" JSON form field, falling back to
// individual form fields keyed by the definition's field names.
func parseClaim(c *gin.Context, def *doctype.Definition) (domain.Claim, error) {
	if raw := c.PostForm("claim"); raw != "" {
		claim := domain.Claim{}
		if err := json.Unmarshal([]byte(raw), &claim); err != nil {
			return nil, err
		}
		return claim, nil
	}

	claim := domain.Claim{}
	for _, field := range def.Fields {
		if v := c.PostForm(field.Key); v != "" {
			claim[field.Key] = v
		}
	}
	return claim, nil
}

// buildPreviews renders per-page preview images and returns one URL per page.
// PDFs go through pdftoppm; images are their own single preview. With the S3
// store configured, pages are uploaded and presigned; otherwise they are
// inlined as data URIs.
func (h *VerificationHandler) buildPreviews(c *gin.Context, result *domain.VerificationResult, fileBytes []byte, contentType string) ([]string, error) {
	var pages [][]byte
	previewType := "image/png"

	if contentType == "application/pdf" {
		rendered, err := h.previews.RenderPreviews(c.Request.Context(), fileBytes)
		if err != nil {
			return nil, err
		}
		pages = rendered
	} else {
		pages = [][]byte{fileBytes}
		previewType = contentType
	}

	urls := make([]string, 0, len(pages))
	var uploadedKeys []string
	for i, page := range pages {
		if h.store != nil && h.cfg.S3.Enabled() {
			key := fmt.Sprintf("previews/%s/page-%d.png", result.VerificationID, i+1)
			if _, err := h.store.Upload(c.Request.Context(), port.UploadInput{
				Bucket:      h.cfg.S3.Bucket,
				Key:         key,
				Body:        bytes.NewReader(page),
				ContentType: previewType,
			}); err != nil {
				h.cleanupPreviews(c, uploadedKeys)
				return nil, fmt.Errorf("uploading preview page %d: %w", i+1, err)
			}
			uploadedKeys = append(uploadedKeys, key)
			url, err := h.store.GetPresignedURL(c.Request.Context(), h.cfg.S3.Bucket, key, h.cfg.S3.PresignExpiry)
			if err != nil {
				h.cleanupPreviews(c, uploadedKeys)
				return nil, fmt.Errorf("presigning preview page %d: %w", i+1, err)
			}
			urls = append(urls, url)
		} else {
			urls = append(urls, "data:"+previewType+";base64,"+base64.StdEncoding.EncodeToString(page))
		}
	}

	log.Printf("VerificationHandler.Create: verification %s: %d preview page(s)", result.VerificationID, len(urls))
	return urls, nil
}

// cleanupPreviews best-effort deletes preview pages already uploaded when a
// later page fails, so a failed request leaves no orphaned objects behind.
func (h *VerificationHandler) cleanupPreviews(c *gin.Context, keys []string) {
	for _, key := range keys {
		if err := h.store.Delete(c.Request.Context(), h.cfg.S3.Bucket, key); err != nil {
			log.Printf("VerificationHandler.cleanupPreviews: deleting %s: %v", key, err)
		}
	}
}

func (h *VerificationHandler) respondCSV(c *gin.Context, result *domain.VerificationResult) {
	filename := fmt.Sprintf("verification-%s.csv", result.VerificationID)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Status(http.StatusOK)

	if _, err := c.Writer.Write(report.BOM); err != nil {
		log.Printf("VerificationHandler.respondCSV: writing BOM: %v", err)
		return
	}
	w := report.NewWriter(c.Writer)
	if err := w.WriteHeader(); err != nil {
		log.Printf("VerificationHandler.respondCSV: writing header: %v", err)
		return
	}
	if err := w.WriteResult(result); err != nil {
		log.Printf("VerificationHandler.respondCSV: writing rows: %v", err)
		return
	}
	w.Flush()
	if err := w.Error(); err != nil {
		log.Printf("VerificationHandler.respondCSV: flush: %v", err)
	}
}

func (h *VerificationHandler) respondXLSX(c *gin.Context, result *domain.VerificationResult) {
	data, err := report.BuildXLSX(result)
	if err != nil {
		HandleError(c, err)
		return
	}
	filename := fmt.Sprintf("verification-%s.xlsx", result.VerificationID)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
