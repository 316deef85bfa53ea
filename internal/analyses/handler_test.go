package analyses

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"jobpowerup-backend/internal/llm"
)

type stubLLM struct {
	out   string
	err   error
	calls int
}

func (s *stubLLM) Complete(ctx context.Context, req llm.Request) (string, error) {
	s.calls++
	return s.out, s.err
}

func newTestRouter(client llm.Client) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler(NewService(client)).RegisterRoutes(r.Group("/api"))
	return r
}

func analyzeRequest(t *testing.T, jobDescription string) *http.Request {
	t.Helper()
	var doc bytes.Buffer
	zw := zip.NewWriter(&doc)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("create document.xml: %v", err)
	}
	xml := `<?xml version="1.0"?><w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body><w:p><w:r><w:t>Backend engineer, ten years of Go and distributed systems.</w:t></w:r></w:p></w:body></w:document>`
	if _, err := w.Write([]byte(xml)); err != nil {
		t.Fatalf("write document.xml: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("file", "resume.docx")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fw.Write(doc.Bytes()); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if jobDescription != "" {
		if err := mw.WriteField("jobDescription", jobDescription); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/analyze", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestAnalyzeReturnsImprovements(t *testing.T) {
	stub := &stubLLM{out: "- Add metrics to your top bullets.\n- Mirror the posting's keywords."}
	r := newTestRouter(stub)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, analyzeRequest(t, "Senior Go engineer at Acme."))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		Improvements string `json:"improvements"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !strings.Contains(resp.Improvements, "Add metrics") {
		t.Fatalf("missing improvements, got %q", resp.Improvements)
	}
	if stub.calls != 1 {
		t.Fatalf("expected a single completion, got %d", stub.calls)
	}
}

func TestAnalyzeMissingJobDescription(t *testing.T) {
	stub := &stubLLM{out: "unused"}
	r := newTestRouter(stub)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, analyzeRequest(t, ""))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
	if stub.calls != 0 {
		t.Fatalf("expected no completion, got %d", stub.calls)
	}
}

func TestAnalyzeNotMultipart(t *testing.T) {
	r := newTestRouter(&stubLLM{})

	req := httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader("jobDescription=x"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnsupportedMediaType {
		t.Fatalf("expected 415, got %d: %s", w.Code, w.Body.String())
	}
}

func TestAnalyzeEmptyCompletion(t *testing.T) {
	r := newTestRouter(&stubLLM{out: "   "})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, analyzeRequest(t, "Senior Go engineer."))

	if w.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d: %s", w.Code, w.Body.String())
	}
}

func TestAnalyzeUpstreamFailure(t *testing.T) {
	r := newTestRouter(&stubLLM{err: errors.New("model down")})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, analyzeRequest(t, "Senior Go engineer."))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d: %s", w.Code, w.Body.String())
	}
}
