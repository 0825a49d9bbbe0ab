package domain

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestTableNames(t *testing.T) {
	if got := (Topic{}).TableName(); got != "topics" {
		t.Fatalf("Topic table = %q", got)
	}
	if got := (User{}).TableName(); got != "users" {
		t.Fatalf("User table = %q", got)
	}
	if got := (Article{}).TableName(); got != "articles" {
		t.Fatalf("Article table = %q", got)
	}
	if got := (Comment{}).TableName(); got != "comments" {
		t.Fatalf("Comment table = %q", got)
	}
}

func TestUser_AvatarNullRoundTrip(t *testing.T) {
	// Nil pointer must serialize as an explicit null, not vanish: clients
	// rely on the key always being present on user payloads.
	b, err := json.Marshal(User{Username: "butter_bridge", Name: "jonny"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(b), `"avatar_url":null`) {
		t.Fatalf("expected explicit null avatar_url, got %s", b)
	}
}

func TestArticleSummary_CommentCountOmittedWhenNil(t *testing.T) {
	b, err := json.Marshal(ArticleSummary{Title: "t", Author: "a"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(b), "comment_count") {
		t.Fatalf("comment_count should be omitted on search rows, got %s", b)
	}

	n := int64(3)
	b, err = json.Marshal(ArticleSummary{Title: "t", CommentCount: &n})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(b), `"comment_count":3`) {
		t.Fatalf("expected comment_count on listing rows, got %s", b)
	}
}
