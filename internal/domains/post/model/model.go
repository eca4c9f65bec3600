package model

import (
	"praxis/shared/model"
	"time"
)

const (
	TableName  = "posts"
	EntityName = "post"

	FieldID          = "id"
	FieldTitle       = "title"
	FieldSlug        = "slug"
	FieldExcerpt     = "excerpt"
	FieldBody        = "body"
	FieldCoverImage  = "cover_image"
	FieldPublished   = "published"
	FieldPublishedAt = "published_at"
)

type Post struct {
	ID          string     `db:"id"`
	Title       string     `db:"title"`
	Slug        string     `db:"slug"`
	Excerpt     string     `db:"excerpt"`
	Body        string     `db:"body"`
	CoverImage  string     `db:"cover_image"`
	Published   bool       `db:"published"`
	PublishedAt *time.Time `db:"published_at"`
	model.Metadata
}
