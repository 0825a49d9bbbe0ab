package services

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"testing"

	"github.com/tbourn/go-news-backend/internal/repo"
)

func TestCommentList(t *testing.T) {
	svc := &CommentService{DB: newTestDB(t)}

	rows, err := svc.ListForArticle(context.Background(), "1")
	if err != nil {
		t.Fatalf("ListForArticle: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("len = %d; want 2", len(rows))
	}
}

func TestCommentList_EmptyVersusMissingArticle(t *testing.T) {
	svc := &CommentService{DB: newTestDB(t)}

	// Article 3 exists but has no comments: empty success.
	rows, err := svc.ListForArticle(context.Background(), "3")
	if err != nil {
		t.Fatalf("ListForArticle: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("len = %d; want 0", len(rows))
	}

	// Article 9999 does not exist: not found.
	if _, err := svc.ListForArticle(context.Background(), "9999"); !errors.Is(err, ErrArticleNotFound) {
		t.Fatalf("missing article: err = %v; want ErrArticleNotFound", err)
	}

	// Malformed ids split the usual way.
	var numErr *strconv.NumError
	if _, err := svc.ListForArticle(context.Background(), "pigeon"); !errors.As(err, &numErr) {
		t.Fatalf("non-numeric id: err = %v; want *strconv.NumError", err)
	}
	if _, err := svc.ListForArticle(context.Background(), "-2"); !errors.Is(err, ErrBadRequest) {
		t.Fatalf("negative id: err = %v; want ErrBadRequest", err)
	}
}

func TestCommentCreate(t *testing.T) {
	svc := &CommentService{DB: newTestDB(t)}

	body := map[string]any{"username": "lurker", "body": "well said"}
	cm, err := svc.CreateForArticle(context.Background(), "3", body)
	if err != nil {
		t.Fatalf("CreateForArticle: %v", err)
	}
	if cm.Author != "lurker" || cm.Body != "well said" || cm.ArticleID != 3 {
		t.Fatalf("unexpected comment: %+v", cm)
	}
	if cm.Votes != 0 {
		t.Fatalf("votes = %d; want 0", cm.Votes)
	}
}

func TestCommentCreate_PayloadRejections(t *testing.T) {
	svc := &CommentService{DB: newTestDB(t)}

	cases := []map[string]any{
		{},                            // empty
		{"username": "lurker"},        // missing body
		{"body": "hi"},                // missing username
		{"username": "", "body": "x"}, // empty username
		{"username": "lurker", "body": ""},                         // empty body
		{"username": json.Number("1"), "body": "x"},                // wrong type
		{"username": "lurker", "body": "x", "votes": json.Number("1")}, // extra field
	}
	for i, body := range cases {
		if _, err := svc.CreateForArticle(context.Background(), "1", body); !errors.Is(err, ErrBadRequest) {
			t.Fatalf("case %d: err = %v; want ErrBadRequest", i, err)
		}
	}
}

func TestCommentCreate_IDCheckedBeforePayload(t *testing.T) {
	svc := &CommentService{DB: newTestDB(t)}

	var numErr *strconv.NumError
	if _, err := svc.CreateForArticle(context.Background(), "pigeon", map[string]any{}); !errors.As(err, &numErr) {
		t.Fatalf("err = %v; want *strconv.NumError (id wins)", err)
	}
}

func TestCommentCreate_MissingArticle(t *testing.T) {
	svc := &CommentService{DB: newTestDB(t)}

	body := map[string]any{"username": "lurker", "body": "hi"}
	if _, err := svc.CreateForArticle(context.Background(), "9999", body); !errors.Is(err, ErrArticleNotFound) {
		t.Fatalf("missing article: err = %v; want ErrArticleNotFound", err)
	}
}

func TestCommentCreate_UnknownAuthorPropagatesRawError(t *testing.T) {
	svc := &CommentService{DB: newTestDB(t)}

	body := map[string]any{"username": "ghost", "body": "boo"}
	_, err := svc.CreateForArticle(context.Background(), "1", body)
	if err == nil {
		t.Fatal("expected error for unknown author")
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		t.Fatalf("err = %v; want the raw store error, not an AppError", err)
	}
	if !repo.IsConstraintViolation(err) {
		t.Fatalf("IsConstraintViolation(%v) = false; want true", err)
	}
}

func TestCommentIncrementVotes(t *testing.T) {
	svc := &CommentService{DB: newTestDB(t)}

	body := map[string]any{"inc_votes": json.Number("-4")}
	cm, err := svc.IncrementVotes(context.Background(), "1", body)
	if err != nil {
		t.Fatalf("IncrementVotes: %v", err)
	}
	if cm.Votes != 12 { // seeded at 16
		t.Fatalf("votes = %d; want 12", cm.Votes)
	}

	if _, err := svc.IncrementVotes(context.Background(), "9999", body); !errors.Is(err, ErrCommentNotFound) {
		t.Fatalf("missing comment: err = %v; want ErrCommentNotFound", err)
	}
	if _, err := svc.IncrementVotes(context.Background(), "1", map[string]any{"inc_votes": "x"}); !errors.Is(err, ErrBadRequest) {
		t.Fatalf("bad payload: err = %v; want ErrBadRequest", err)
	}
}

func TestCommentDelete(t *testing.T) {
	svc := &CommentService{DB: newTestDB(t)}

	cm, err := svc.Delete(context.Background(), "4")
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if cm.CommentID != 4 {
		t.Fatalf("returned id = %d; want 4", cm.CommentID)
	}

	if _, err := svc.Delete(context.Background(), "4"); !errors.Is(err, ErrCommentNotFound) {
		t.Fatalf("second delete: err = %v; want ErrCommentNotFound", err)
	}
	var numErr *strconv.NumError
	if _, err := svc.Delete(context.Background(), "four"); !errors.As(err, &numErr) {
		t.Fatalf("non-numeric id: err = %v; want *strconv.NumError", err)
	}
}
