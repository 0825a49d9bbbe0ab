// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file seeds the development dataset. Topics have no
// creation endpoint, so the seed (or an operator) is the only way rows get
// into that table.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/tbourn/go-news-backend/internal/domain"
)

func strptr(s string) *string { return &s }

func seedTopics() []domain.Topic {
	return []domain.Topic{
		{Slug: "coding", Description: "Code is love, code is life"},
		{Slug: "cooking", Description: "Hey good looking, what you got cooking?"},
		{Slug: "football", Description: "FOOTIE!"},
	}
}

func seedUsers() []domain.User {
	return []domain.User{
		{Username: "butter_bridge", Name: "jonny", AvatarURL: strptr("https://www.healthytherapies.com/wp-content/uploads/2016/06/Lime3.jpg")},
		{Username: "icellusedkars", Name: "sam", AvatarURL: strptr("https://avatars2.githubusercontent.com/u/24604688?s=460&v=4")},
		{Username: "rogersop", Name: "paul", AvatarURL: strptr("https://avatars2.githubusercontent.com/u/24394918?s=400&v=4")},
		{Username: "lurker", Name: "doNothing", AvatarURL: strptr(domain.DefaultAvatarURL)},
	}
}

func seedArticles() []domain.Article {
	base := time.Date(2020, 7, 9, 20, 11, 0, 0, time.UTC)
	return []domain.Article{
		{Title: "Living in the shadow of a great man", Body: "I find this existence challenging", Votes: 100, Topic: "coding", Author: "butter_bridge", CreatedAt: base},
		{Title: "Sony Vaio; or, The Laptop", Body: "Call me Mitchell.", Topic: "coding", Author: "icellusedkars", CreatedAt: base.Add(24 * time.Hour)},
		{Title: "Eight pug gifs that remind me of mitch", Body: "some gifs", Topic: "cooking", Author: "icellusedkars", CreatedAt: base.Add(48 * time.Hour)},
		{Title: "They're not exactly dogs, are they?", Body: "Well? Think about it.", Topic: "football", Author: "butter_bridge", CreatedAt: base.Add(72 * time.Hour)},
	}
}

func seedComments() []domain.Comment {
	base := time.Date(2020, 10, 11, 15, 23, 0, 0, time.UTC)
	return []domain.Comment{
		{Author: "butter_bridge", ArticleID: 4, Votes: 16, Body: "This morning, I showered for nine minutes.", CreatedAt: base},
		{Author: "butter_bridge", ArticleID: 1, Votes: 14, Body: "The beautiful thing about treasure is that it exists.", CreatedAt: base.Add(time.Hour)},
		{Author: "icellusedkars", ArticleID: 1, Votes: 100, Body: "Replacing the quiet elegance of the dark suit and tie.", CreatedAt: base.Add(2 * time.Hour)},
		{Author: "rogersop", ArticleID: 2, Votes: -1, Body: "This is a bad article name", CreatedAt: base.Add(3 * time.Hour)},
	}
}

// Seed inserts the development dataset. It is a no-op when topics already
// exist, so it is safe to run on every startup.
func Seed(ctx context.Context, db *gorm.DB) error {
	var n int64
	if err := db.WithContext(ctx).Model(&domain.Topic{}).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		topics := seedTopics()
		if err := tx.Create(&topics).Error; err != nil {
			return err
		}
		users := seedUsers()
		if err := tx.Create(&users).Error; err != nil {
			return err
		}
		articles := seedArticles()
		if err := tx.Create(&articles).Error; err != nil {
			return err
		}
		comments := seedComments()
		return tx.Create(&comments).Error
	})
}
