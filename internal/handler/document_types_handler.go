package handler

import (
	"github.com/gin-gonic/gin"

	"docverify/internal/doctype"
)

// DocumentTypeInfo describes a supported document type for the listing endpoint.
type DocumentTypeInfo struct {
	Type   string              `json:"type"`
	Fields []DocumentTypeField `json:"fields"`
}

// DocumentTypeField is one comparable field of a document type.
type DocumentTypeField struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// DocumentTypesHandler serves the supported document-type catalog.
type DocumentTypesHandler struct{}

// NewDocumentTypesHandler creates a DocumentTypesHandler.
func NewDocumentTypesHandler() *DocumentTypesHandler {
	return &DocumentTypesHandler{}
}

// List handles GET /api/v1/document-types.
func (h *DocumentTypesHandler) List(c *gin.Context) {
	defs := doctype.All()
	out := make([]DocumentTypeInfo, 0, len(defs))
	for _, def := range defs {
		info := DocumentTypeInfo{Type: string(def.Type)}
		for _, f := range def.Fields {
			info.Fields = append(info.Fields, DocumentTypeField{Key: f.Key, Label: f.Label})
		}
		out = append(out, info)
	}
	RespondOK(c, out)
}
