package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"capstone-portal-backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// artifact kinds accepted by the upload endpoint, keyed to their storage
// prefix
var uploadKinds = map[string]string{
	"photo":        "photos",
	"proposal":     "proposals",
	"grand_design": "designs",
	"resume":       "resumes",
}

// UploadHandler handles artifact uploads to object storage
type UploadHandler struct {
	store storage.Store
}

// NewUploadHandler creates a new upload handler
func NewUploadHandler(store storage.Store) *UploadHandler {
	return &UploadHandler{
		store: store,
	}
}

// Upload handles POST /api/v1/uploads
// @Summary Upload an artifact
// @Description Upload a file (title photo, proposal, grand design or resume) and get its public URL back
// @Tags uploads
// @Accept mpfd
// @Produce json
// @Param kind formData string true "Artifact kind" Enums(photo, proposal, grand_design, resume)
// @Param file formData file true "File to upload"
// @Success 201 {object} map[string]string "Public URL of the stored file"
// @Failure 400 {object} map[string]interface{} "Missing file or unknown kind"
// @Failure 500 {object} map[string]interface{} "Upload failed"
// @Security BearerAuth
// @Router /api/v1/uploads [post]
func (h *UploadHandler) Upload(c *gin.Context) {
	prefix, ok := uploadKinds[c.PostForm("kind")]
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown artifact kind"})
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	tmp, err := os.CreateTemp("", "upload-*")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	tmpPath := tmp.Name()
	tmp.Close()
	defer os.Remove(tmpPath)

	if err := c.SaveUploadedFile(file, tmpPath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	key := prefix + "/" + uuid.New().String() + filepath.Ext(file.Filename)
	url, err := h.store.Put(c.Request.Context(), tmpPath, key)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"url": url})
}
