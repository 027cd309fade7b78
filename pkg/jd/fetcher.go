package jd

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/PuerkitoBio/goquery"
	"github.com/pkg/errors"

	"github.com/nikogura/ats-scorer/pkg/document"
	"github.com/nikogura/ats-scorer/pkg/logger"
)

const fetchTimeout = 30 * time.Second

//nolint:gochecknoglobals // Static vocabulary
var boilerplateSelectors = []string{
	"script", "style", "noscript", "iframe", "svg",
	"header", "footer", "nav", "aside",
	"[role=navigation]", "[role=banner]", "[role=contentinfo]",
}

// ResolveWithContext turns a job-description argument into text. An http(s)
// URL is fetched under ctx, an existing file is extracted, anything else is
// taken as the job-description text itself. Fetches are logged through the
// logger carried by ctx, if any.
func ResolveWithContext(ctx context.Context, input string) (content string, err error) {
	parsedURL, urlErr := url.Parse(input)
	if urlErr == nil && (parsedURL.Scheme == "http" || parsedURL.Scheme == "https") {
		content, err = fetchFromURL(ctx, input)
		if err != nil {
			err = errors.Wrapf(err, "failed to fetch JD from URL: %s", input)
			return content, err
		}
		return content, err
	}

	if isFile(input) {
		content, err = fetchFromFile(input)
		if err != nil {
			err = errors.Wrapf(err, "failed to fetch JD from file: %s", input)
			return content, err
		}
		return content, err
	}

	content = strings.TrimSpace(input)
	if content == "" {
		err = errors.New("job description is empty")
		return content, err
	}

	return content, err
}

func isFile(input string) (ok bool) {
	if strings.ContainsRune(input, '\n') {
		return ok
	}
	info, statErr := os.Stat(input)
	ok = statErr == nil && info.Mode().IsRegular()
	return ok
}

// fetchFromFile extracts job description text from a pdf, docx or txt file.
func fetchFromFile(path string) (content string, err error) {
	content, err = document.ParseFile(path)
	if err != nil {
		return content, err
	}

	content = strings.TrimSpace(content)
	return content, err
}

// fetchFromURL retrieves a job posting and converts its main content to text.
func fetchFromURL(ctx context.Context, urlStr string) (content string, err error) {
	var req *http.Request
	req, err = http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		err = errors.Wrap(err, "failed to create HTTP request")
		return content, err
	}

	req.Header.Set("User-Agent", "ats-scorer/1.0")

	client := &http.Client{
		Timeout: fetchTimeout,
	}

	var resp *http.Response
	resp, err = client.Do(req)
	if err != nil {
		err = errors.Wrap(err, "HTTP request failed")
		return content, err
	}
	defer resp.Body.Close()

	logger.Ctx(ctx).Debug().
		Str("url", urlStr).
		Int("status", resp.StatusCode).
		Str("content_type", resp.Header.Get("Content-Type")).
		Msg("job description fetched")

	if resp.StatusCode != http.StatusOK {
		err = errors.Errorf("HTTP request failed with status: %d", resp.StatusCode)
		return content, err
	}

	var bodyBytes []byte
	bodyBytes, err = io.ReadAll(resp.Body)
	if err != nil {
		err = errors.Wrap(err, "failed to read response body")
		return content, err
	}

	content, err = htmlToText(string(bodyBytes))
	if err != nil {
		return content, err
	}

	if content == "" {
		err = errors.New("fetched content is empty after processing")
		return content, err
	}

	return content, err
}

// htmlToText drops page chrome and renders the main content as markdown,
// which keeps headings and bullet lists on their own lines.
func htmlToText(page string) (text string, err error) {
	var doc *goquery.Document
	doc, err = goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		err = errors.Wrap(err, "failed to parse HTML")
		return text, err
	}

	doc.Find(strings.Join(boilerplateSelectors, ", ")).Remove()

	sel := doc.Find("article, main, #content, .content").First()
	if sel.Length() == 0 {
		sel = doc.Find("body")
	}

	var inner string
	inner, err = goquery.OuterHtml(sel)
	if err != nil {
		err = errors.Wrap(err, "failed to render HTML")
		return text, err
	}

	text, err = htmltomarkdown.ConvertString(inner)
	if err != nil {
		err = errors.Wrap(err, "failed to convert HTML to text")
		return text, err
	}

	text = strings.TrimSpace(text)
	return text, err
}
