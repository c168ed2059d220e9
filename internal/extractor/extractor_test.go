package extractor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"NewsAggregator/internal/dates"
	"NewsAggregator/internal/domain"
)

const listingPage = `<!DOCTYPE html>
<html><body>
<ul>
<li class="News"><div class="desc"><h3><a href="/news/12345/first-item">اولین خبر</a></h3></div></li>
<li class="News"><div class="desc"><h3><a href="/news/12346/second-item">دومین خبر</a></h3></div></li>
</ul>
</body></html>`

const detailPage = `<!DOCTYPE html>
<html><head>
<meta property="og:title" content="تیتر خبر"/>
<meta name="description" content="خلاصه خبر"/>
<meta property="article:published_time" content="2025-07-01T15:06:48+03:30"/>
</head><body>
<div class="item-summary"><img src="/images/photo.jpg"/></div>
<div class="box tags"><ul>
<li><a>ایران</a></li>
<li><a>اقتصاد</a></li>
<li><a>ایران</a></li>
</ul></div>
</body></html>`

const detailNoTitle = `<!DOCTYPE html><html><head></head><body><p>empty</p></body></html>`

func testOutlet(baseURL string) Outlet {
	return Outlet{
		Slug:             "testwire",
		AgencyNameEn:     "Test Wire",
		BaseURL:          baseURL,
		ListSelector:     "li.News",
		ListLinkSelector: ".desc h3 a",
		Title: []Rule{
			{Selector: "h1.title"},
			{MetaProperty: "og:title"},
		},
		Summary: []Rule{
			{MetaName: "description"},
		},
		Image: []Rule{
			{Selector: ".item-summary img", Attr: "src"},
		},
		Tags: TagRules{
			Selector: ".box.tags ul li a",
			MetaName: "keywords",
		},
		Dates: []DateRule{
			{Kind: DateMetaProperty, Key: "article:published_time", Format: dates.ISO8601},
		},
		Categories: []Category{
			{Slug: "politics", Path: "/service/politics"},
		},
	}
}

func testServer(t *testing.T, pages map[string]string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page, ok := pages[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, page)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchLatest(t *testing.T) {
	srv := testServer(t, map[string]string{"/service/politics": listingPage})
	outlet := testOutlet(srv.URL)

	ex := New(srv.Client(), slog.Default())
	cand, err := ex.FetchLatest(context.Background(), outlet, "politics")
	if err != nil {
		t.Fatalf("FetchLatest: %v", err)
	}
	want := srv.URL + "/news/12345/first-item"
	if cand.URL != want {
		t.Fatalf("candidate URL = %q, want %q", cand.URL, want)
	}
}

func TestFetchLatestUnknownCategory(t *testing.T) {
	srv := testServer(t, nil)
	ex := New(srv.Client(), slog.Default())

	_, err := ex.FetchLatest(context.Background(), testOutlet(srv.URL), "science-tech")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFetchLatestEmptyListing(t *testing.T) {
	srv := testServer(t, map[string]string{"/service/politics": "<html><body></body></html>"})
	ex := New(srv.Client(), slog.Default())

	_, err := ex.FetchLatest(context.Background(), testOutlet(srv.URL), "politics")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFetchDetail(t *testing.T) {
	srv := testServer(t, map[string]string{"/news/12345/first-item": detailPage})
	outlet := testOutlet(srv.URL)

	ex := New(srv.Client(), slog.Default())
	raw, err := ex.FetchDetail(context.Background(), outlet, srv.URL+"/news/12345/first-item")
	if err != nil {
		t.Fatalf("FetchDetail: %v", err)
	}

	// og:title is the second rule; no h1.title exists, so the chain falls
	// through to the meta tag.
	if raw.Title != "تیتر خبر" {
		t.Errorf("title = %q", raw.Title)
	}
	if raw.Summary != "خلاصه خبر" {
		t.Errorf("summary = %q", raw.Summary)
	}
	if want := srv.URL + "/images/photo.jpg"; raw.ImageURL != want {
		t.Errorf("image = %q, want %q", raw.ImageURL, want)
	}
	if len(raw.Tags) != 2 || raw.Tags[0] != "ایران" || raw.Tags[1] != "اقتصاد" {
		t.Errorf("tags = %v, want deduplicated pair", raw.Tags)
	}
	if raw.DateApproximate {
		t.Error("date should come from article:published_time, not a fallback")
	}
	if got := raw.PublishedAt.UTC().Format("2006-01-02 15:04:05"); got != "2025-07-01 11:36:48" {
		t.Errorf("published at = %s", got)
	}
}

func TestFetchDetailNoTitle(t *testing.T) {
	srv := testServer(t, map[string]string{"/news/1/x": detailNoTitle})
	ex := New(srv.Client(), slog.Default())

	_, err := ex.FetchDetail(context.Background(), testOutlet(srv.URL), srv.URL+"/news/1/x")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFetchDetailMetaKeywordsFallback(t *testing.T) {
	page := `<html><head>
<meta property="og:title" content="t"/>
<meta name="keywords" content="یک, دو ,سه"/>
</head><body></body></html>`
	srv := testServer(t, map[string]string{"/news/2/y": page})
	ex := New(srv.Client(), slog.Default())

	raw, err := ex.FetchDetail(context.Background(), testOutlet(srv.URL), srv.URL+"/news/2/y")
	if err != nil {
		t.Fatalf("FetchDetail: %v", err)
	}
	if len(raw.Tags) != 3 || raw.Tags[1] != "دو" {
		t.Fatalf("tags = %v, want three trimmed keywords", raw.Tags)
	}
}

func TestFetchDetailDateFallsBackToNow(t *testing.T) {
	page := `<html><head><meta property="og:title" content="t"/></head><body></body></html>`
	srv := testServer(t, map[string]string{"/news/3/z": page})
	ex := New(srv.Client(), slog.Default())

	raw, err := ex.FetchDetail(context.Background(), testOutlet(srv.URL), srv.URL+"/news/3/z")
	if err != nil {
		t.Fatalf("FetchDetail: %v", err)
	}
	if !raw.DateApproximate {
		t.Fatal("missing date sources should mark the timestamp approximate")
	}
	if raw.PublishedAt.IsZero() {
		t.Fatal("approximate timestamp should still be set")
	}
}

func TestFetchDocumentBadStatus(t *testing.T) {
	srv := testServer(t, nil) // everything 404s
	ex := New(srv.Client(), slog.Default())

	_, err := ex.FetchDetail(context.Background(), testOutlet(srv.URL), srv.URL+"/missing")
	if err == nil {
		t.Fatal("expected an error for a 404 response")
	}
}

func TestResolveURL(t *testing.T) {
	cases := []struct {
		base, href, want string
	}{
		{"https://example.com", "/news/1", "https://example.com/news/1"},
		{"https://example.com/", "news/1", "https://example.com/news/1"},
		{"https://example.com", "https://cdn.example.com/a.jpg", "https://cdn.example.com/a.jpg"},
	}
	for _, c := range cases {
		if got := resolveURL(c.base, c.href); got != c.want {
			t.Errorf("resolveURL(%q, %q) = %q, want %q", c.base, c.href, got, c.want)
		}
	}
}
