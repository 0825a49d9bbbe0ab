// Package domain defines the persistence models for topics, users, articles,
// and comments. These types are mapped with GORM and mirror the relational
// schema the API exposes: topics and users are keyed by natural identifiers,
// articles and comments by serial ids, with referential constraints between
// them.
package domain

import (
	"time"
)

// DefaultAvatarURL is persisted for users created without an avatar_url.
// It matches the column default so rows created through the API and rows
// created by raw SQL agree.
const DefaultAvatarURL = "https://robohash.org/honey?set=set1"

// Topic is a category articles belong to. Topics are created only by the
// seed/admin path; the public API reads them and references them from
// articles via the slug.
type Topic struct {
	Slug        string `json:"slug"        gorm:"type:varchar(40);primaryKey"`
	Description string `json:"description" gorm:"type:varchar(255);not null"`
}

// TableName returns the database table name for Topic.
func (Topic) TableName() string { return "topics" }

// User is an author of articles and comments, keyed by username.
//
// AvatarURL is a pointer so the column stays nullable at the schema level,
// but the create path never persists NULL: absent input is replaced with
// DefaultAvatarURL before insert.
type User struct {
	Username  string  `json:"username"   gorm:"type:varchar(50);primaryKey"`
	AvatarURL *string `json:"avatar_url" gorm:"type:varchar(255);default:'https://robohash.org/honey?set=set1'"`
	Name      string  `json:"name"       gorm:"type:varchar(100);not null"`
}

// TableName returns the database table name for User.
func (User) TableName() string { return "users" }

// Article is a piece of content under a topic, written by a user.
//
// Fields:
//   - ArticleID: serial primary key.
//   - Votes: running score mutated only by deltas (votes = votes + n).
//   - Topic / Author: foreign keys to topics.slug and users.username; both
//     must reference existing rows.
//   - CreatedAt: set at insertion time.
//
// The live comment count is never stored on the row; it is computed at read
// time (see ArticleSummary and the repo layer).
type Article struct {
	ArticleID int64     `json:"article_id" gorm:"primaryKey;autoIncrement"`
	Title     string    `json:"title"      gorm:"type:varchar(255);not null"`
	Body      string    `json:"body"       gorm:"type:text;not null"`
	Votes     int       `json:"votes"      gorm:"not null;default:0"`
	Topic     string    `json:"topic"      gorm:"type:varchar(40);not null;index"`
	Author    string    `json:"author"     gorm:"type:varchar(50);not null;index"`
	CreatedAt time.Time `json:"created_at"`

	TopicRef  Topic `json:"-" gorm:"foreignKey:Topic;references:Slug;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	AuthorRef User  `json:"-" gorm:"foreignKey:Author;references:Username;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`

	// The comments relation is declared from this owning side: a has-many is
	// unambiguous, so GORM emits the FK on comments referencing articles.
	// (Declaring it from Comment is ambiguous — ArticleID names a field on
	// both structs, so GORM guesses has-one and reverses the constraint.)
	Comments []Comment `json:"-" gorm:"foreignKey:ArticleID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for Article.
func (Article) TableName() string { return "articles" }

// Comment is a user-authored comment under an article. Comments are
// cascade-deleted when their article is removed.
type Comment struct {
	CommentID int64     `json:"comment_id" gorm:"primaryKey;autoIncrement"`
	Author    string    `json:"author"     gorm:"type:varchar(50);not null;index"`
	ArticleID int64     `json:"article_id" gorm:"not null;index"`
	Votes     int       `json:"votes"      gorm:"not null;default:0"`
	CreatedAt time.Time `json:"created_at"`
	Body      string    `json:"body"       gorm:"type:text;not null"`

	// The FK to articles is declared from the Article side (Article.Comments)
	// where the has-many relation is unambiguous; see that field's comment.
	AuthorRef User `json:"-" gorm:"foreignKey:Author;references:Username;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

// TableName returns the database table name for Comment.
func (Comment) TableName() string { return "comments" }

// ArticleSummary is the projection returned by the article listing. The
// filtered/sorted listing carries the live comment count; the title-search
// path returns rows without one, so CommentCount is a pointer and the JSON
// field disappears when it is nil.
type ArticleSummary struct {
	Author       string    `json:"author"`
	Title        string    `json:"title"`
	ArticleID    int64     `json:"article_id"`
	Topic        string    `json:"topic"`
	CreatedAt    time.Time `json:"created_at"`
	Votes        int       `json:"votes"`
	CommentCount *int64    `json:"comment_count,omitempty"`
}
