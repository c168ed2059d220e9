package extractor

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"NewsAggregator/internal/dates"
	"NewsAggregator/internal/domain"
)

// Rule locates one article field in a detail page. Exactly one of the
// lookup fields is set; rules are tried in order until one yields text.
type Rule struct {
	MetaProperty string // <meta property=... content=...>
	MetaName     string // <meta name=... content=...>
	MetaItemprop string // <meta itemprop=... content=...>
	Selector     string // CSS selector; text content unless Attr is set
	Attr         string // attribute read from the Selector match
}

// TagRules describes where an outlet renders its keywords.
type TagRules struct {
	Selector     string // anchor list on the page, preferred
	MetaName     string // delimited keyword metadata fallback
	MetaProperty string // second metadata fallback (article:tag style)
	Separator    string // delimiter for metadata keywords, default ","
}

// DateKind selects the lookup mechanism of a DateRule.
type DateKind int

const (
	DateMetaProperty DateKind = iota
	DateMetaName
	DateMetaItemprop
	DateJSONLD
	DateSelectorText
	DateSelectorAttr
)

// DateRule binds one date source to the format its token is written in.
// Rules run in order; the first token that parses exactly wins.
type DateRule struct {
	Kind   DateKind
	Key    string // meta key or CSS selector, unused for JSON-LD
	Attr   string // attribute name for DateSelectorAttr
	Format dates.Format
}

// Category maps a canonical category slug to an outlet listing page.
type Category struct {
	Slug         string
	Path         string // joined to the outlet base URL
	ListSelector string // optional per-category override
}

// Outlet is the full configuration record for one news site. Outlets are
// data over one shared fetch+extract primitive; adding a site means adding
// a record, not code.
type Outlet struct {
	Slug             string // route key, e.g. "tasnim"
	AgencyNameEn     string // lookup key into the agencies table
	BaseURL          string
	ImageBaseURL     string // CDN base for relative image paths; BaseURL when empty
	ListSelector     string
	ListLinkSelector string // anchor inside a list item, default "a"
	Title            []Rule
	Summary          []Rule
	Content          []Rule
	Image            []Rule
	Tags             TagRules
	Dates            []DateRule
	Categories       []Category
}

// CategoryBySlug returns the outlet's listing config for a slug.
func (o Outlet) CategoryBySlug(slug string) (Category, bool) {
	for _, c := range o.Categories {
		if c.Slug == slug {
			return c, true
		}
	}
	return Category{}, false
}

// Extractor fetches listing and detail pages and applies outlet rules.
type Extractor struct {
	client     *http.Client
	normalizer *dates.Normalizer
	logger     *slog.Logger
}

// New wires an HTTP client; a nil client gets a 15 second timeout default.
func New(client *http.Client, logger *slog.Logger) *Extractor {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{
		client:     client,
		normalizer: dates.NewNormalizer(),
		logger:     logger,
	}
}

// FetchLatest loads a category listing page and returns the newest entry's
// absolute detail URL. Returns domain.ErrNotFound when no entry matches the
// outlet's list selector.
func (e *Extractor) FetchLatest(ctx context.Context, outlet Outlet, categorySlug string) (domain.Candidate, error) {
	cat, ok := outlet.CategoryBySlug(categorySlug)
	if !ok {
		return domain.Candidate{}, fmt.Errorf("outlet %s has no category %s: %w", outlet.Slug, categorySlug, domain.ErrNotFound)
	}

	doc, err := e.fetchDocument(ctx, resolveURL(outlet.BaseURL, cat.Path))
	if err != nil {
		return domain.Candidate{}, fmt.Errorf("listing %s/%s: %w", outlet.Slug, categorySlug, err)
	}

	listSelector := outlet.ListSelector
	if cat.ListSelector != "" {
		listSelector = cat.ListSelector
	}
	item := doc.Find(listSelector).First()
	if item.Length() == 0 {
		return domain.Candidate{}, fmt.Errorf("listing %s/%s: no entry matched %q: %w", outlet.Slug, categorySlug, listSelector, domain.ErrNotFound)
	}

	linkSelector := outlet.ListLinkSelector
	if linkSelector == "" {
		linkSelector = "a"
	}
	href, _ := item.Find(linkSelector).First().Attr("href")
	if href == "" {
		// The item itself may be the anchor (fararu style list links).
		if item.Is(linkSelector) {
			href, _ = item.Attr("href")
		}
	}
	if href == "" {
		return domain.Candidate{}, fmt.Errorf("listing %s/%s: entry has no link: %w", outlet.Slug, categorySlug, domain.ErrNotFound)
	}

	return domain.Candidate{URL: resolveURL(outlet.BaseURL, href)}, nil
}

// FetchDetail loads an article page and extracts the raw fields through the
// outlet's fallback chains.
func (e *Extractor) FetchDetail(ctx context.Context, outlet Outlet, link string) (domain.RawArticle, error) {
	doc, err := e.fetchDocument(ctx, link)
	if err != nil {
		return domain.RawArticle{}, fmt.Errorf("detail %s: %w", link, err)
	}

	title := extractField(doc, outlet.Title)
	if title == "" {
		return domain.RawArticle{}, fmt.Errorf("detail %s: no title matched: %w", link, domain.ErrNotFound)
	}

	image := extractField(doc, outlet.Image)
	if image != "" && !strings.HasPrefix(image, "http") {
		base := outlet.ImageBaseURL
		if base == "" {
			base = outlet.BaseURL
		}
		image = resolveURL(base, image)
	}

	normalized := e.extractDate(doc, outlet.Dates)
	if normalized.Approximate {
		e.logger.Debug("no publish date recovered, using scrape time", "url", link)
	}

	return domain.RawArticle{
		Title:           title,
		Summary:         extractField(doc, outlet.Summary),
		Content:         extractField(doc, outlet.Content),
		SourceURL:       link,
		ImageURL:        image,
		Tags:            extractTags(doc, outlet.Tags),
		PublishedAt:     normalized.At,
		PublishedJalali: normalized.Jalali,
		Relative:        normalized.Relative,
		DateApproximate: normalized.Approximate,
	}, nil
}

func (e *Extractor) fetchDocument(ctx context.Context, pageURL string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", "NewsAggregator/1.0")

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request document: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("outlet returned %s", resp.Status)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}

	return doc, nil
}

func (e *Extractor) extractDate(doc *goquery.Document, rules []DateRule) dates.Normalized {
	for _, rule := range rules {
		var token string
		switch rule.Kind {
		case DateMetaProperty:
			token = metaContent(doc, "property", rule.Key)
		case DateMetaName:
			token = metaContent(doc, "name", rule.Key)
		case DateMetaItemprop:
			token = metaContent(doc, "itemprop", rule.Key)
		case DateJSONLD:
			token = jsonLDDatePublished(doc)
		case DateSelectorText:
			token = strings.TrimSpace(doc.Find(rule.Key).First().Text())
		case DateSelectorAttr:
			token, _ = doc.Find(rule.Key).First().Attr(rule.Attr)
		}
		if token == "" {
			continue
		}
		if normalized := e.normalizer.Normalize(token, rule.Format); !normalized.Approximate {
			return normalized
		}
	}
	return e.normalizer.Normalize("", dates.None)
}

func extractField(doc *goquery.Document, rules []Rule) string {
	for _, rule := range rules {
		var value string
		switch {
		case rule.MetaProperty != "":
			value = metaContent(doc, "property", rule.MetaProperty)
		case rule.MetaName != "":
			value = metaContent(doc, "name", rule.MetaName)
		case rule.MetaItemprop != "":
			value = metaContent(doc, "itemprop", rule.MetaItemprop)
		case rule.Attr != "":
			value, _ = doc.Find(rule.Selector).First().Attr(rule.Attr)
		case rule.Selector != "":
			value = strings.TrimSpace(doc.Find(rule.Selector).First().Text())
		}
		if value = strings.TrimSpace(value); value != "" {
			return value
		}
	}
	return ""
}

func extractTags(doc *goquery.Document, rules TagRules) []string {
	var tags []string
	if rules.Selector != "" {
		doc.Find(rules.Selector).Each(func(_ int, sel *goquery.Selection) {
			if tag := strings.TrimSpace(sel.Text()); tag != "" {
				tags = append(tags, tag)
			}
		})
	}

	if len(tags) == 0 {
		var keywords string
		if rules.MetaName != "" {
			keywords = metaContent(doc, "name", rules.MetaName)
		}
		if keywords == "" && rules.MetaProperty != "" {
			keywords = metaContent(doc, "property", rules.MetaProperty)
		}
		if keywords != "" {
			sep := rules.Separator
			if sep == "" {
				sep = ","
			}
			for _, part := range strings.Split(keywords, sep) {
				if tag := strings.TrimSpace(part); tag != "" {
					tags = append(tags, tag)
				}
			}
		}
	}

	return dedupeTags(tags)
}

// dedupeTags removes exact duplicates preserving first-seen order.
func dedupeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := tags[:0]
	for _, tag := range tags {
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}

func metaContent(doc *goquery.Document, attr, key string) string {
	content, _ := doc.Find(fmt.Sprintf(`meta[%s=%q]`, attr, key)).First().Attr("content")
	return strings.TrimSpace(content)
}

func jsonLDDatePublished(doc *goquery.Document) string {
	var published string
	doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		var payload struct {
			DatePublished string `json:"datePublished"`
		}
		if err := json.Unmarshal([]byte(sel.Text()), &payload); err != nil {
			return true
		}
		if payload.DatePublished != "" {
			published = payload.DatePublished
			return false
		}
		return true
	})
	return published
}

// resolveURL joins a possibly relative href against the outlet base.
func resolveURL(base, href string) string {
	if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
		return href
	}
	base = strings.TrimSuffix(base, "/")
	if !strings.HasPrefix(href, "/") {
		href = "/" + href
	}
	return base + href
}
