package domain

import "time"

// Article is a persisted news item scraped from one of the outlets.
type Article struct {
	ID              int64
	Title           string
	Content         string
	Summary         string
	SourceURL       string
	ImageURL        string
	PublishedAt     time.Time
	DateApproximate bool
	AgencyID        int64
	IsActive        bool
	ScrapedAt       time.Time

	// Associations loaded by the repository after a save.
	Agency     *Agency
	Categories []Category
	Tags       []Tag
}

// Agency is a pre-seeded news outlet row; the pipeline only reads it.
type Agency struct {
	ID         int64
	Name       string
	NameEn     string
	WebsiteURL string
	Logo       string
	IsActive   bool
}

// Category is a pre-seeded section row looked up by slug.
type Category struct {
	ID       int64
	Name     string
	Slug     string
	ParentID *int64
	IsActive bool
}

// Tag is created on demand by the resolver; name is the natural key.
type Tag struct {
	ID          int64
	Name        string
	Description string
}

// RawArticle is what the extractor produces before resolution and
// persistence. Jalali and Relative are display strings and are never stored.
type RawArticle struct {
	Title           string
	Summary         string
	Content         string
	SourceURL       string
	ImageURL        string
	Tags            []string
	PublishedAt     time.Time
	PublishedJalali string
	Relative        string
	DateApproximate bool
}

// Candidate is the newest entry selected from a category listing page.
type Candidate struct {
	URL string
}
