package repo

import (
	"context"
	"errors"
	"testing"
)

func TestListCommentsForArticle_OrderedByID(t *testing.T) {
	db := newSeededDB(t)

	rows, err := ListCommentsForArticle(context.Background(), db, 1)
	if err != nil {
		t.Fatalf("ListCommentsForArticle: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("len = %d; want 2", len(rows))
	}
	if rows[0].CommentID >= rows[1].CommentID {
		t.Fatalf("ids %d, %d not ascending", rows[0].CommentID, rows[1].CommentID)
	}

	none, err := ListCommentsForArticle(context.Background(), db, 3)
	if err != nil {
		t.Fatalf("ListCommentsForArticle: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("len = %d; want 0 for uncommented article", len(none))
	}
}

func TestCreateComment(t *testing.T) {
	db := newSeededDB(t)

	cm, err := CreateComment(context.Background(), db, 3, "lurker", "first!")
	if err != nil {
		t.Fatalf("CreateComment: %v", err)
	}
	if cm.CommentID == 0 {
		t.Fatal("CommentID not assigned")
	}
	if cm.Votes != 0 {
		t.Fatalf("votes = %d; want 0 for new comment", cm.Votes)
	}
	if cm.CreatedAt.IsZero() {
		t.Fatal("CreatedAt not assigned")
	}
}

func TestCreateComment_UnknownAuthorViolatesFK(t *testing.T) {
	db := newSeededDB(t)

	_, err := CreateComment(context.Background(), db, 1, "not_a_user", "hello")
	if err == nil {
		t.Fatal("expected foreign-key violation")
	}
	if !IsConstraintViolation(err) {
		t.Fatalf("IsConstraintViolation(%v) = false; want true", err)
	}
}

func TestIncrementCommentVotes(t *testing.T) {
	db := newSeededDB(t)

	before, err := GetCommentByID(context.Background(), db, 1)
	if err != nil {
		t.Fatalf("GetCommentByID: %v", err)
	}

	cm, err := IncrementCommentVotes(context.Background(), db, 1, -3)
	if err != nil {
		t.Fatalf("IncrementCommentVotes: %v", err)
	}
	if cm.Votes != before.Votes-3 {
		t.Fatalf("votes = %d; want %d", cm.Votes, before.Votes-3)
	}

	if _, err := IncrementCommentVotes(context.Background(), db, 9999, 1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing id: err = %v; want ErrNotFound", err)
	}
}

func TestDeleteComment(t *testing.T) {
	db := newSeededDB(t)

	cm, err := DeleteComment(context.Background(), db, 2)
	if err != nil {
		t.Fatalf("DeleteComment: %v", err)
	}
	if cm.CommentID != 2 {
		t.Fatalf("returned id = %d; want 2", cm.CommentID)
	}

	if _, err := GetCommentByID(context.Background(), db, 2); !errors.Is(err, ErrNotFound) {
		t.Fatalf("after delete: err = %v; want ErrNotFound", err)
	}
	if _, err := DeleteComment(context.Background(), db, 2); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second delete: err = %v; want ErrNotFound", err)
	}
}

func TestIsConstraintViolation_Classification(t *testing.T) {
	if IsConstraintViolation(nil) {
		t.Fatal("nil classified as violation")
	}
	cases := []struct {
		msg  string
		want bool
	}{
		{"FOREIGN KEY constraint failed", true},
		{"NOT NULL constraint failed: comments.body", true},
		{"ERROR: insert or update on table \"comments\" violates foreign key constraint (SQLSTATE 23503)", true},
		{"ERROR: null value in column \"body\" (SQLSTATE 23502)", true},
		{"near \")\": syntax error", true},
		{"record not found", false},
		{"connection refused", false},
	}
	for _, tc := range cases {
		if got := IsConstraintViolation(errors.New(tc.msg)); got != tc.want {
			t.Fatalf("IsConstraintViolation(%q) = %v; want %v", tc.msg, got, tc.want)
		}
	}
}
