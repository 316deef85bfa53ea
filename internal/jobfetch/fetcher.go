package jobfetch

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	readability "github.com/go-shiori/go-readability"

	"jobpowerup-backend/internal/shared/metrics"
	"jobpowerup-backend/internal/shared/telemetry"
)

// Via values name the strategy that produced the text.
const (
	ViaDirect         = "direct"
	ViaDirectReferrer = "direct-with-referrer"
	ViaIndeedMobile   = "indeed-mobile-rewrite"
	ViaReaderProxy    = "reader-proxy"
)

const (
	defaultProxyBase = "https://r.jina.ai/"
	minBodyChars     = 200
	maxBodyChars     = 50000
	fetchTimeout     = 25 * time.Second
)

var (
	// ErrInvalidURL means the input is not an http(s) URL. No network call is made.
	ErrInvalidURL = errors.New("url must start with http or https")
	// ErrBlocked means every strategy was exhausted without usable text.
	ErrBlocked = errors.New("site is blocking automated access")
)

var browserHeaders = map[string]string{
	"User-Agent":         "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36",
	"Accept":             "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8",
	"Accept-Language":    "en-US,en;q=0.9",
	"Cache-Control":      "no-cache",
	"Pragma":             "no-cache",
	"Sec-CH-UA":          `"Chromium";v="124", "Not.A/Brand";v="24", "Google Chrome";v="124"`,
	"Sec-CH-UA-Mobile":   "?0",
	"Sec-CH-UA-Platform": `"Windows"`,
}

var botWallMarkers = []string{
	"just a moment",
	"cloudflare",
	"additional verification required",
	"ray id",
	"captcha",
}

// Result is a fetched-and-cleaned job posting.
type Result struct {
	Title string
	Text  string
	Via   string
}

// Summarizer normalizes noisy scraped text into a clean job description.
// A failing summarizer degrades to the raw text.
type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}

// Fetcher retrieves job-posting text with ordered fallback strategies.
type Fetcher struct {
	client     *resty.Client
	proxyBase  string
	Summarizer Summarizer
}

// New constructs a Fetcher with browser-like defaults.
func New() *Fetcher {
	client := resty.New().
		SetTimeout(fetchTimeout).
		SetRedirectPolicy(resty.FlexibleRedirectPolicy(10))
	return &Fetcher{
		client:    client,
		proxyBase: defaultProxyBase,
	}
}

// Fetch resolves rawURL to cleaned job text, trying the mobile rewrite,
// direct fetch (with referrer fallback on 403/406), readability extraction,
// and finally the reader proxy, short-circuiting on first success.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (Result, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return Result{}, ErrInvalidURL
	}
	metrics.IncJobImport()

	candidates := []string{}
	mobile := rewriteIndeedToMobile(u)
	if mobile != "" {
		candidates = append(candidates, mobile)
	}
	candidates = append(candidates, u.String())

	for _, candidate := range candidates {
		res, ok := f.tryDirect(ctx, candidate, candidate == mobile)
		if ok {
			return f.finish(ctx, res), nil
		}
		res, ok = f.tryReaderProxy(ctx, candidate)
		if ok {
			return f.finish(ctx, res), nil
		}
	}

	metrics.IncJobImportBlocked()
	return Result{}, ErrBlocked
}

func (f *Fetcher) tryDirect(ctx context.Context, candidate string, rewritten bool) (Result, bool) {
	via := ViaDirect
	if rewritten {
		via = ViaIndeedMobile
	}

	resp, err := f.client.R().SetContext(ctx).SetHeaders(browserHeaders).Get(candidate)
	if err != nil {
		telemetry.Warn("jobfetch.direct.failed", map[string]any{"url": candidate, "err": err.Error()})
		return Result{}, false
	}
	if resp.StatusCode() == 403 || resp.StatusCode() == 406 {
		headers := make(map[string]string, len(browserHeaders)+1)
		for k, v := range browserHeaders {
			headers[k] = v
		}
		headers["Referer"] = "https://www.google.com/"
		resp, err = f.client.R().SetContext(ctx).SetHeaders(headers).Get(candidate)
		if err != nil {
			telemetry.Warn("jobfetch.referrer.failed", map[string]any{"url": candidate, "err": err.Error()})
			return Result{}, false
		}
		if !rewritten {
			via = ViaDirectReferrer
		}
	}
	if !resp.IsSuccess() {
		return Result{}, false
	}

	html := resp.String()
	if html == "" || looksLikeBotWall(html) {
		return Result{}, false
	}

	parsed, err := url.Parse(candidate)
	if err != nil {
		return Result{}, false
	}
	article, err := readability.FromReader(strings.NewReader(html), parsed)
	if err != nil {
		return Result{}, false
	}

	title := strings.TrimSpace(article.Title)
	text := collapseWhitespace(article.TextContent)
	if len(text) < minBodyChars || looksLikeBotWall(text) {
		return Result{}, false
	}
	return Result{Title: title, Text: text, Via: via}, true
}

func (f *Fetcher) tryReaderProxy(ctx context.Context, candidate string) (Result, bool) {
	origin := strings.TrimPrefix(strings.TrimPrefix(candidate, "https://"), "http://")
	proxyURL := f.proxyBase + "http://" + origin

	resp, err := f.client.R().SetContext(ctx).Get(proxyURL)
	if err != nil {
		telemetry.Warn("jobfetch.proxy.failed", map[string]any{"url": candidate, "err": err.Error()})
		return Result{}, false
	}
	if !resp.IsSuccess() {
		return Result{}, false
	}

	md := resp.String()
	if looksLikeBotWall(md) {
		return Result{}, false
	}
	title, body := parseReaderMarkdown(md)
	if len(body) < minBodyChars {
		return Result{}, false
	}
	return Result{Title: title, Text: body, Via: ViaReaderProxy}, true
}

// finish clips the body and runs the optional summarizer pass. Summarizer
// failure keeps the raw extracted text.
func (f *Fetcher) finish(ctx context.Context, res Result) Result {
	if len(res.Text) > maxBodyChars {
		res.Text = res.Text[:maxBodyChars]
	}
	if f.Summarizer == nil {
		return res
	}
	summary, err := f.Summarizer.Summarize(ctx, res.Text)
	if err != nil || strings.TrimSpace(summary) == "" {
		if err != nil {
			telemetry.Warn("jobfetch.summarize.degraded", map[string]any{"via": res.Via, "err": err.Error()})
		}
		return res
	}
	res.Text = strings.TrimSpace(summary)
	return res
}

func rewriteIndeedToMobile(u *url.URL) string {
	host := strings.ToLower(u.Hostname())
	if !strings.HasSuffix(host, "indeed.com") {
		return ""
	}
	jk := u.Query().Get("jk")
	if jk == "" {
		jk = u.Query().Get("vjk")
	}
	if jk == "" {
		return ""
	}
	return fmt.Sprintf("https://www.indeed.com/m/basecamp/viewjob?jk=%s", url.QueryEscape(jk))
}

func looksLikeBotWall(s string) bool {
	hay := strings.ToLower(s)
	for _, marker := range botWallMarkers {
		if strings.Contains(hay, marker) {
			return true
		}
	}
	return false
}

var multiSpace = regexp.MustCompile(`\s{2,}`)

func collapseWhitespace(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	return strings.TrimSpace(multiSpace.ReplaceAllString(s, " "))
}
