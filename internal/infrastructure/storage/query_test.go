package storage

import (
	"strings"
	"testing"

	sq "github.com/Masterminds/squirrel"
)

// The repositories lean on squirrel for placeholder numbering; these tests
// pin the shapes the Postgres driver will receive.

func TestExistsQueryShape(t *testing.T) {
	query, args, err := psql.
		Select("1").
		From("articles").
		Where(sq.Eq{"source_url": "https://example.com/news/1"}).
		Limit(1).
		ToSql()
	if err != nil {
		t.Fatal(err)
	}
	if want := "SELECT 1 FROM articles WHERE source_url = $1 LIMIT 1"; query != want {
		t.Errorf("query = %q, want %q", query, want)
	}
	if len(args) != 1 {
		t.Errorf("args = %v", args)
	}
}

func TestLinkInsertUsesSequentialPlaceholders(t *testing.T) {
	builder := psql.Insert("article_tags").Columns("article_id", "tag_id")
	for _, id := range []int64{7, 8, 9} {
		builder = builder.Values(42, id)
	}
	query, args, err := builder.ToSql()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(query, "($1,$2),($3,$4),($5,$6)") {
		t.Errorf("unexpected multi-row insert: %q", query)
	}
	if len(args) != 6 {
		t.Errorf("args = %v", args)
	}
}

func TestArticleSelectJoinsAgency(t *testing.T) {
	query, _, err := articleSelect().ToSql()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(query, "JOIN agencies g ON g.id = a.agency_id") {
		t.Errorf("missing agency join: %q", query)
	}
}
