package post

import (
	"context"
	"time"

	"github.com/ykarpov/cms-bridge/app/cms"
	"github.com/ykarpov/cms-bridge/app/markup"
)

type ContentClient interface {
	FetchPosts(ctx context.Context, q cms.Query) ([]cms.Post, error)
}

var _ ContentClient = (*cms.Client)(nil)

type Author struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	URL    string `json:"url"`
	Avatar string `json:"avatar"`
}

// Post is the normalized view model handed to the front end. Every optional
// field of the raw record has a defined default here: "" for strings, empty
// slices for lists. Consumers never need further null checks.
type Post struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Slug        string            `json:"slug"`
	Description string            `json:"description"`
	Content     string            `json:"content"`
	Date        string            `json:"date"`
	PublishedAt string            `json:"publishedAt"`
	ReadingTime string            `json:"readingTime"`
	Tags        []string          `json:"tags"`
	Authors     []Author          `json:"authors"`
	Thumbnail   string            `json:"thumbnail"`
	Image       string            `json:"image"`
	Toc         string            `json:"toc"`
	TocEntries  []markup.TocEntry `json:"tocEntries"`
	IsCMS       bool              `json:"isCMS"`
	Path        string            `json:"path"`
	CreatedAt   string            `json:"createdAt"`
	UpdatedAt   string            `json:"updatedAt"`

	// Parsed publish time, used as the sort key on the list path.
	publishTime time.Time
}

// PublishTime returns the parsed publish time backing the Date field. Zero
// when the record carried no parsable date.
func (p Post) PublishTime() time.Time {
	return p.publishTime
}

type ListOptions struct {
	Limit       int
	Tags        []string
	ExcludeSlug string
}
