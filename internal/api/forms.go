package api

import (
	"context"
	"errors"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/terravita/terravita/backend/content-service/internal/models"
)

const (
	submitTimeout = 25 * time.Second
	maxResumeSize = 5 * 1024 * 1024
)

// Form submissions are fire-and-forget: validate locally, forward to the
// mail gateway, report success or a generic retryable failure. Nothing is
// persisted on failure.

// SubmitQuote handles POST /forms/quote
func (h *Handler) SubmitQuote(c *gin.Context) {
	var req models.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if req.ProductSlug != "" {
		if _, ok := h.Catalog().ProductBySlug(req.ProductSlug); !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown product"})
			return
		}
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), submitTimeout)
	defer cancel()

	if err := h.mailer.SendQuoteRequest(ctx, req); err != nil {
		log.Printf("[SubmitQuote] send failed: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Could not submit your request, please try again"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Request received"})
}

// SubmitSample handles POST /forms/sample. The category option list on the
// form comes from the catalog, so the chosen slug has to resolve.
func (h *Handler) SubmitSample(c *gin.Context) {
	var req models.SampleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if _, ok := h.Catalog().CategoryBySlug(req.CategorySlug); !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown category"})
		return
	}
	if req.ProductSlug != "" {
		if _, ok := h.Catalog().ProductBySlug(req.ProductSlug); !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown product"})
			return
		}
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), submitTimeout)
	defer cancel()

	if err := h.mailer.SendSampleRequest(ctx, req); err != nil {
		log.Printf("[SubmitSample] send failed: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Could not submit your request, please try again"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Request received"})
}

// SubmitCatalogue handles POST /forms/catalogue
func (h *Handler) SubmitCatalogue(c *gin.Context) {
	var req models.CatalogueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), submitTimeout)
	defer cancel()

	if err := h.mailer.SendCatalogueRequest(ctx, req); err != nil {
		log.Printf("[SubmitCatalogue] send failed: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Could not submit your request, please try again"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Request received", "download_url": "/docs/terravita-catalogue.pdf"})
}

// SubmitMeeting handles POST /forms/meeting
func (h *Handler) SubmitMeeting(c *gin.Context) {
	var req models.MeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), submitTimeout)
	defer cancel()

	if err := h.mailer.SendMeetingRequest(ctx, req); err != nil {
		log.Printf("[SubmitMeeting] send failed: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Could not submit your request, please try again"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Request received"})
}

// SubmitJobApplication handles POST /forms/job-application (multipart, with
// an optional resume file).
func (h *Handler) SubmitJobApplication(c *gin.Context) {
	var req models.JobApplication
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	job, ok := h.Catalog().JobBySlug(req.JobSlug)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown job opening"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), submitTimeout)
	defer cancel()

	resumeURL, err := h.storeResume(ctx, c, job.Slug)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.mailer.SendJobApplication(ctx, req, job.Title, resumeURL); err != nil {
		log.Printf("[SubmitJobApplication] send failed: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Could not submit your application, please try again"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Application received"})
}

// SubmitGeneralApplication handles POST /forms/general-application
func (h *Handler) SubmitGeneralApplication(c *gin.Context) {
	var req models.GeneralApplication
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), submitTimeout)
	defer cancel()

	resumeURL, err := h.storeResume(ctx, c, "general")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.mailer.SendGeneralApplication(ctx, req, resumeURL); err != nil {
		log.Printf("[SubmitGeneralApplication] send failed: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Could not submit your application, please try again"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Application received"})
}

var errResumeTooLarge = errors.New("Resume file must be 5MB or smaller")

var resumeTypes = map[string]bool{
	"application/pdf":          true,
	"application/msword":       true,
	"application/zip":          true, // docx
	"application/octet-stream": true,
}

// sniffResumeType checks the first bytes of the upload and rewinds the
// reader for the upload that follows.
func sniffResumeType(file multipart.File) (string, error) {
	buf := make([]byte, 512)
	n, err := file.Read(buf)
	if err != nil && err != io.EOF {
		return "", errors.New("Could not read resume file")
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return "", errors.New("Could not read resume file")
	}
	contentType := http.DetectContentType(buf[:n])
	if !resumeTypes[contentType] {
		return "", errors.New("Resume must be a PDF or Word document")
	}
	return contentType, nil
}

// storeResume uploads the optional "resume" form file. Uploading is best
// effort when S3 is not configured; a missing file is not an error.
func (h *Handler) storeResume(ctx context.Context, c *gin.Context, jobSlug string) (string, error) {
	fileHeader, err := c.FormFile("resume")
	if err != nil {
		return "", nil
	}
	if fileHeader.Size > maxResumeSize {
		return "", errResumeTooLarge
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Printf("[storeResume] open failed: %v", err)
		return "", nil
	}
	defer file.Close()

	contentType, err := sniffResumeType(file)
	if err != nil {
		return "", err
	}

	if !h.resumes.Enabled() {
		return "", nil
	}
	url, err := h.resumes.UploadResume(ctx, jobSlug, fileHeader.Filename, contentType, file)
	if err != nil {
		// The application still goes through; sales follows up for the file.
		log.Printf("[storeResume] upload failed: %v", err)
		return "", nil
	}
	return url, nil
}
