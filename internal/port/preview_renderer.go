package port

import "context"

// PreviewRenderer renders a PDF into per-page preview images. An empty
// result is a hard failure of the request, independent of extraction.
type PreviewRenderer interface {
	RenderPreviews(ctx context.Context, pdfBytes []byte) ([][]byte, error)
}
