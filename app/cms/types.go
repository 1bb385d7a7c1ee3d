package cms

import (
	"github.com/ykarpov/cms-bridge/app/richtext"
)

// Raw records as returned by the content API. Optional fields decode to
// zero values; defaulting happens during normalization.

type Author struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	URL    string `json:"url"`
	Avatar string `json:"avatar"` // relative-or-absolute URL fragment
}

type Post struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Slug        string            `json:"slug"`
	Description string            `json:"description"`
	Content     richtext.Document `json:"content"`
	ContentHTML string            `json:"contentHtml"` // legacy posts only
	PublishedAt string            `json:"publishedAt"`
	ReadingTime string            `json:"readingTime"` // explicit override
	TocDepth    int               `json:"tocDepth"`
	Tags        []string          `json:"tags"`
	Authors     []Author          `json:"authors"`
	Thumbnail   string            `json:"thumbnail"`
	Image       string            `json:"image"`
	CreatedAt   string            `json:"createdAt"`
	UpdatedAt   string            `json:"updatedAt"`
	Status      string            `json:"_status"`
}

type postsResponse struct {
	Docs []Post `json:"docs"`
}
