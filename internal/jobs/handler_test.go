package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"jobpowerup-backend/internal/jobfetch"
	"jobpowerup-backend/internal/llm"
)

type stubFetcher struct {
	res jobfetch.Result
	err error
	url string
}

func (s *stubFetcher) Fetch(ctx context.Context, rawURL string) (jobfetch.Result, error) {
	s.url = rawURL
	return s.res, s.err
}

type stubLLM struct {
	out string
	err error
}

func (s *stubLLM) Complete(ctx context.Context, req llm.Request) (string, error) {
	return s.out, s.err
}

func newTestRouter(fetcher Fetcher, client llm.Client) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler(fetcher, NewService(client)).RegisterRoutes(r.Group("/api"))
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestFromLinkSuccess(t *testing.T) {
	fetcher := &stubFetcher{res: jobfetch.Result{Title: "Backend Engineer", Text: "We are hiring.", Via: jobfetch.ViaDirect}}
	r := newTestRouter(fetcher, &stubLLM{})

	w := postJSON(t, r, "/api/job-from-link", `{"url":"https://example.com/job"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		Title string `json:"title"`
		Text  string `json:"text"`
		Via   string `json:"via"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Title != "Backend Engineer" || resp.Via != "direct" {
		t.Fatalf("unexpected response %+v", resp)
	}
	if fetcher.url != "https://example.com/job" {
		t.Fatalf("fetcher got url %q", fetcher.url)
	}
}

func TestFromLinkOmitsEmptyTitle(t *testing.T) {
	fetcher := &stubFetcher{res: jobfetch.Result{Text: "posting", Via: jobfetch.ViaReaderProxy}}
	r := newTestRouter(fetcher, &stubLLM{})

	w := postJSON(t, r, "/api/job-from-link", `{"url":"https://example.com/job"}`)
	if strings.Contains(w.Body.String(), "title") {
		t.Fatalf("expected title omitted, got %s", w.Body.String())
	}
}

func TestFromLinkErrorMapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{jobfetch.ErrInvalidURL, http.StatusUnprocessableEntity},
		{jobfetch.ErrBlocked, http.StatusUnavailableForLegalReasons},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		r := newTestRouter(&stubFetcher{err: tc.err}, &stubLLM{})
		w := postJSON(t, r, "/api/job-from-link", `{"url":"https://example.com/job"}`)
		if w.Code != tc.want {
			t.Fatalf("err %v: expected %d, got %d", tc.err, tc.want, w.Code)
		}
	}
}

func TestFromLinkMissingURL(t *testing.T) {
	r := newTestRouter(&stubFetcher{}, &stubLLM{})
	w := postJSON(t, r, "/api/job-from-link", `{"url":"  "}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestFromLinkBlockedMentionsBookmarklet(t *testing.T) {
	r := newTestRouter(&stubFetcher{err: jobfetch.ErrBlocked}, &stubLLM{})
	w := postJSON(t, r, "/api/job-from-link", `{"url":"https://example.com/job"}`)
	if !strings.Contains(w.Body.String(), "bookmarklet") {
		t.Fatalf("expected bookmarklet hint, got %s", w.Body.String())
	}
}

func TestSummarizeJob(t *testing.T) {
	r := newTestRouter(&stubFetcher{}, &stubLLM{out: "Role: backend engineer. Stack: Go."})

	long := strings.Repeat("We are hiring a Go engineer. ", 5)
	w := postJSON(t, r, "/api/summarize-job", `{"text":`+jsonString(long)+`}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "backend engineer") {
		t.Fatalf("missing summary, got %s", w.Body.String())
	}
}

func TestSummarizeJobTooShort(t *testing.T) {
	r := newTestRouter(&stubFetcher{}, &stubLLM{out: "unused"})
	w := postJSON(t, r, "/api/summarize-job", `{"text":"short"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func jsonString(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}
