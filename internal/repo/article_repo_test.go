package repo

import (
	"context"
	"errors"
	"testing"

	"github.com/tbourn/go-news-backend/internal/domain"
)

func defaultFilter() ArticleFilter {
	return ArticleFilter{SortColumn: "articles.created_at", Direction: "DESC"}
}

func TestSortColumn_Whitelist(t *testing.T) {
	for _, key := range []string{"created_at", "topic", "article_id", "title", "votes", "author", "body", "comment_count"} {
		if _, ok := SortColumn(key); !ok {
			t.Fatalf("SortColumn(%q) rejected a permitted key", key)
		}
	}
	for _, key := range []string{"", "votes; DROP TABLE articles", "CREATED_AT", "random"} {
		if col, ok := SortColumn(key); ok {
			t.Fatalf("SortColumn(%q) = %q; want rejection", key, col)
		}
	}
}

func TestNormalizeOrder(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"asc", "ASC", true},
		{"ASC", "ASC", true},
		{"Desc", "DESC", true},
		{"DESC", "DESC", true},
		{"", "", false},
		{"sideways", "", false},
		{"ASC; --", "", false},
	}
	for _, tc := range cases {
		got, ok := NormalizeOrder(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("NormalizeOrder(%q) = (%q, %v); want (%q, %v)", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestListArticles_DefaultOrderNewestFirst(t *testing.T) {
	db := newSeededDB(t)

	rows, err := ListArticles(context.Background(), db, defaultFilter())
	if err != nil {
		t.Fatalf("ListArticles: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("len = %d; want 4", len(rows))
	}
	for i := 1; i < len(rows); i++ {
		if rows[i].CreatedAt.After(rows[i-1].CreatedAt) {
			t.Fatalf("rows[%d] newer than rows[%d]; want newest first", i, i-1)
		}
	}
	if rows[0].Title != "They're not exactly dogs, are they?" {
		t.Fatalf("rows[0].Title = %q; want the newest article", rows[0].Title)
	}
}

func TestListArticles_CommentCounts(t *testing.T) {
	db := newSeededDB(t)

	f := ArticleFilter{SortColumn: "articles.article_id", Direction: "ASC"}
	rows, err := ListArticles(context.Background(), db, f)
	if err != nil {
		t.Fatalf("ListArticles: %v", err)
	}

	want := []int64{2, 1, 0, 1} // comments per article, in id order
	if len(rows) != len(want) {
		t.Fatalf("len = %d; want %d", len(rows), len(want))
	}
	for i, w := range want {
		if rows[i].CommentCount == nil {
			t.Fatalf("rows[%d].CommentCount missing", i)
		}
		if *rows[i].CommentCount != w {
			t.Fatalf("rows[%d].CommentCount = %d; want %d", i, *rows[i].CommentCount, w)
		}
	}
}

func TestListArticles_SortByCommentCount(t *testing.T) {
	db := newSeededDB(t)

	f := ArticleFilter{SortColumn: "comment_count", Direction: "DESC"}
	rows, err := ListArticles(context.Background(), db, f)
	if err != nil {
		t.Fatalf("ListArticles: %v", err)
	}
	if len(rows) != 4 || rows[0].ArticleID != 1 {
		t.Fatalf("rows[0].ArticleID = %d; want 1 (most commented)", rows[0].ArticleID)
	}
}

func TestListArticles_TopicFilter(t *testing.T) {
	db := newSeededDB(t)

	f := defaultFilter()
	f.Topic = "coding"
	rows, err := ListArticles(context.Background(), db, f)
	if err != nil {
		t.Fatalf("ListArticles: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("len = %d; want 2", len(rows))
	}
	for _, r := range rows {
		if r.Topic != "coding" {
			t.Fatalf("row topic = %q; want coding", r.Topic)
		}
	}
}

func TestListArticles_AuthorFilter(t *testing.T) {
	db := newSeededDB(t)

	f := defaultFilter()
	f.Author = "icellusedkars"
	rows, err := ListArticles(context.Background(), db, f)
	if err != nil {
		t.Fatalf("ListArticles: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("len = %d; want 2", len(rows))
	}
	for _, r := range rows {
		if r.Author != "icellusedkars" {
			t.Fatalf("row author = %q; want icellusedkars", r.Author)
		}
	}
}

func TestListArticles_EmptyMatchIsNotAnError(t *testing.T) {
	db := newSeededDB(t)

	// "cooking" has one article; "lurker" authored none.
	f := defaultFilter()
	f.Author = "lurker"
	rows, err := ListArticles(context.Background(), db, f)
	if err != nil {
		t.Fatalf("ListArticles: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("len = %d; want 0", len(rows))
	}
}

func TestSearchArticlesByTitle(t *testing.T) {
	db := newSeededDB(t)

	rows, err := SearchArticlesByTitle(context.Background(), db, "dogs")
	if err != nil {
		t.Fatalf("SearchArticlesByTitle: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("len = %d; want 1", len(rows))
	}
	if rows[0].Title != "They're not exactly dogs, are they?" {
		t.Fatalf("Title = %q", rows[0].Title)
	}
	// Search rows carry no comment count.
	if rows[0].CommentCount != nil {
		t.Fatalf("CommentCount = %v; want nil on search rows", *rows[0].CommentCount)
	}

	none, err := SearchArticlesByTitle(context.Background(), db, "zzz-no-match")
	if err != nil {
		t.Fatalf("SearchArticlesByTitle: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("len = %d; want 0", len(none))
	}
}

func TestGetArticleByID(t *testing.T) {
	db := newSeededDB(t)

	a, err := GetArticleByID(context.Background(), db, 1)
	if err != nil {
		t.Fatalf("GetArticleByID: %v", err)
	}
	if a.Title != "Living in the shadow of a great man" || a.Votes != 100 {
		t.Fatalf("unexpected article: %+v", a)
	}

	if _, err := GetArticleByID(context.Background(), db, 9999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing id: err = %v; want ErrNotFound", err)
	}
}

func TestCountArticleComments(t *testing.T) {
	db := newSeededDB(t)

	n, err := CountArticleComments(context.Background(), db, 1)
	if err != nil {
		t.Fatalf("CountArticleComments: %v", err)
	}
	if n != 2 {
		t.Fatalf("count = %d; want 2", n)
	}

	n, err = CountArticleComments(context.Background(), db, 3)
	if err != nil {
		t.Fatalf("CountArticleComments: %v", err)
	}
	if n != 0 {
		t.Fatalf("count = %d; want 0", n)
	}
}

func TestIncrementArticleVotes(t *testing.T) {
	db := newSeededDB(t)

	a, err := IncrementArticleVotes(context.Background(), db, 1, 5)
	if err != nil {
		t.Fatalf("IncrementArticleVotes: %v", err)
	}
	if a.Votes != 105 {
		t.Fatalf("votes = %d; want 105", a.Votes)
	}

	a, err = IncrementArticleVotes(context.Background(), db, 1, -200)
	if err != nil {
		t.Fatalf("IncrementArticleVotes: %v", err)
	}
	if a.Votes != -95 {
		t.Fatalf("votes = %d; want -95 (negatives allowed)", a.Votes)
	}

	if _, err := IncrementArticleVotes(context.Background(), db, 9999, 1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing id: err = %v; want ErrNotFound", err)
	}
}

func TestDeleteArticle_CascadesToComments(t *testing.T) {
	db := newSeededDB(t)

	a, err := DeleteArticle(context.Background(), db, 1)
	if err != nil {
		t.Fatalf("DeleteArticle: %v", err)
	}
	if a.ArticleID != 1 {
		t.Fatalf("returned id = %d; want 1", a.ArticleID)
	}

	var n int64
	if err := db.Model(&domain.Comment{}).Where("article_id = ?", 1).Count(&n).Error; err != nil {
		t.Fatalf("count comments: %v", err)
	}
	if n != 0 {
		t.Fatalf("comments left after delete = %d; want 0", n)
	}

	if _, err := DeleteArticle(context.Background(), db, 1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second delete: err = %v; want ErrNotFound", err)
	}
}
