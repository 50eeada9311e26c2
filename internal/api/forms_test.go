package api

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestSubmitQuoteValidation(t *testing.T) {
	r := newTestRouter(t, testData())

	t.Run("missing fields", func(t *testing.T) {
		w := doJSON(r, "/api/v1/forms/quote", `{"name":"Ana"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("bad email", func(t *testing.T) {
		w := doJSON(r, "/api/v1/forms/quote", `{
			"name":"Ana Torres","email":"not-an-email","company":"Acme Labs",
			"message":"Please quote 500kg of turmeric extract.","accept_terms":true}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("terms not accepted", func(t *testing.T) {
		w := doJSON(r, "/api/v1/forms/quote", `{
			"name":"Ana Torres","email":"ana@acme.example","company":"Acme Labs",
			"message":"Please quote 500kg of turmeric extract.","accept_terms":false}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown product", func(t *testing.T) {
		w := doJSON(r, "/api/v1/forms/quote", `{
			"name":"Ana Torres","email":"ana@acme.example","company":"Acme Labs",
			"product_slug":"no-such-product",
			"message":"Please quote 500kg of turmeric extract.","accept_terms":true}`)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Unknown product")
	})

	t.Run("valid payload reaches the gateway", func(t *testing.T) {
		// The test mail gateway is unconfigured, so a payload that passes
		// validation fails at delivery with a retryable error.
		w := doJSON(r, "/api/v1/forms/quote", `{
			"name":"Ana Torres","email":"ana@acme.example","company":"Acme Labs",
			"product_slug":"turmeric-extract",
			"message":"Please quote 500kg of turmeric extract.","accept_terms":true}`)
		assert.Equal(t, http.StatusBadGateway, w.Code)
	})
}

func TestSubmitSampleValidation(t *testing.T) {
	r := newTestRouter(t, testData())

	t.Run("unknown category", func(t *testing.T) {
		w := doJSON(r, "/api/v1/forms/sample", `{
			"name":"Ana Torres","email":"ana@acme.example","company":"Acme Labs",
			"country":"Spain","category_slug":"no-such-category","accept_terms":true}`)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Unknown category")
	})

	t.Run("valid category reaches the gateway", func(t *testing.T) {
		w := doJSON(r, "/api/v1/forms/sample", `{
			"name":"Ana Torres","email":"ana@acme.example","company":"Acme Labs",
			"country":"Spain","category_slug":"herbal-extracts","accept_terms":true}`)
		assert.Equal(t, http.StatusBadGateway, w.Code)
	})
}

func TestSubmitCatalogueValidation(t *testing.T) {
	r := newTestRouter(t, testData())

	w := doJSON(r, "/api/v1/forms/catalogue", `{"name":"A"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, "/api/v1/forms/catalogue", `{
		"name":"Ana Torres","email":"ana@acme.example","accept_terms":true}`)
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestSubmitJobApplication(t *testing.T) {
	r := newTestRouter(t, testData())

	postForm := func(fields map[string]string) *httptest.ResponseRecorder {
		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		for k, v := range fields {
			require.NoError(t, mw.WriteField(k, v))
		}
		require.NoError(t, mw.Close())

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/forms/job-application", &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("missing fields", func(t *testing.T) {
		w := postForm(map[string]string{"name": "Ana Torres"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown job", func(t *testing.T) {
		w := postForm(map[string]string{
			"name": "Ana Torres", "email": "ana@acme.example",
			"job_slug": "cto", "accept_terms": "true",
		})
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Unknown job opening")
	})

	t.Run("valid application reaches the gateway", func(t *testing.T) {
		w := postForm(map[string]string{
			"name": "Ana Torres", "email": "ana@acme.example",
			"job_slug": "qa-specialist", "accept_terms": "true",
		})
		assert.Equal(t, http.StatusBadGateway, w.Code)
	})
}
