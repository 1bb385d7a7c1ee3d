package post

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"

	"github.com/ykarpov/cms-bridge/app/cms"
	"github.com/ykarpov/cms-bridge/app/markup"
	"github.com/ykarpov/cms-bridge/app/richtext"
)

// Display dates follow the en-IN long-date convention ("5 August 2024").
// The format is fixed for output compatibility with the existing front end.
const displayDateLayout = "2 January 2006"

// Normalizer turns raw content API records into normalized posts. Its public
// operations are total: failures are logged and degrade to an absent or
// empty result, never an error.
type Normalizer struct {
	client    ContentClient
	converter *richtext.Converter
	origin    string
}

// NewNormalizer creates a Normalizer. origin is the content API origin used
// to resolve relative media references.
func NewNormalizer(client ContentClient, origin string) *Normalizer {
	return &Normalizer{
		client:    client,
		converter: richtext.NewConverter(),
		origin:    origin,
	}
}

// Get looks up a single post by slug. With preview set, drafts are preferred
// and the published record is attempted as a fallback when no draft exists.
// Returns nil when no matching record exists or retrieval fails.
func (n *Normalizer) Get(ctx context.Context, slug string, preview bool) *Post {
	var raw *cms.Post

	if preview {
		raw = n.fetchBySlug(ctx, slug, true)
	}

	if raw == nil {
		raw = n.fetchBySlug(ctx, slug, false)
	}

	if raw == nil {
		return nil
	}

	normalized, err := n.normalize(*raw, true)
	if err != nil {
		slog.Error("Failed to normalize post", "slug", slug, "error", err)
		return nil
	}

	return normalized
}

// List returns published posts, newest first, without the table-of-contents
// artifact. Malformed records are skipped, not fatal. Returns an empty slice
// on retrieval failure.
func (n *Normalizer) List(ctx context.Context, opts ListOptions) []Post {
	docs, err := n.client.FetchPosts(ctx, cms.Query{
		Depth:  2,
		Status: "published",
	})
	if err != nil {
		slog.Error("Content API request failed", "operation", "list_posts", "error", err)
		return []Post{}
	}

	posts := make([]Post, 0, len(docs))
	for _, raw := range docs {
		if opts.ExcludeSlug != "" && raw.Slug == opts.ExcludeSlug {
			continue
		}

		normalized, err := n.normalize(raw, false)
		if err != nil {
			slog.Error("Skipping malformed post", "slug", raw.Slug, "error", err)
			continue
		}

		posts = append(posts, *normalized)
	}

	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].publishTime.After(posts[j].publishTime)
	})

	if len(opts.Tags) > 0 {
		posts = filterByTags(posts, opts.Tags)
	}

	if opts.Limit > 0 && len(posts) > opts.Limit {
		posts = posts[:opts.Limit]
	}

	return posts
}

func (n *Normalizer) fetchBySlug(ctx context.Context, slug string, draft bool) *cms.Post {
	query := cms.Query{
		Limit: 1,
		Depth: 2,
		Draft: draft,
		Slug:  slug,
	}
	if !draft {
		query.Status = "published"
	}

	docs, err := n.client.FetchPosts(ctx, query)
	if err != nil {
		slog.Error("Content API request failed", "operation", "get_post", "slug", slug, "draft", draft, "error", err)
		return nil
	}

	if len(docs) == 0 {
		return nil
	}

	return &docs[0]
}

func (n *Normalizer) normalize(raw cms.Post, withToc bool) (*Post, error) {
	if raw.Slug == "" {
		return nil, fmt.Errorf("record %q has no slug", raw.ID)
	}

	content := n.converter.Run(raw.Content)
	if content == "" && raw.ContentHTML != "" {
		converted, err := htmltomarkdown.ConvertString(raw.ContentHTML)
		if err != nil {
			slog.Error("Failed to convert legacy HTML content", "slug", raw.Slug, "error", err)
		} else {
			content = converted
		}
	}

	publishTime := parsePublishTime(raw)

	normalized := &Post{
		ID:          raw.ID,
		Title:       raw.Title,
		Slug:        raw.Slug,
		Description: raw.Description,
		Content:     content,
		Date:        formatDisplayDate(publishTime),
		PublishedAt: raw.PublishedAt,
		ReadingTime: cmp.Or(raw.ReadingTime, markup.EstimateReadingTime(content)),
		Tags:        normalizeTags(raw.Tags),
		Authors:     n.normalizeAuthors(raw.Authors),
		Thumbnail:   n.resolveURL(raw.Thumbnail),
		Image:       n.resolveURL(raw.Image),
		TocEntries:  []markup.TocEntry{},
		IsCMS:       true,
		Path:        "/blog/" + raw.Slug,
		CreatedAt:   raw.CreatedAt,
		UpdatedAt:   raw.UpdatedAt,
		publishTime: publishTime,
	}

	if withToc {
		depth := raw.TocDepth
		if depth < 1 {
			depth = markup.DefaultTocDepth
		}

		fragment, entries := markup.Toc(content, depth)
		normalized.Toc = fragment
		if entries != nil {
			normalized.TocEntries = entries
		}
	}

	return normalized, nil
}

func (n *Normalizer) normalizeAuthors(authors []cms.Author) []Author {
	normalized := make([]Author, 0, len(authors))
	for _, author := range authors {
		normalized = append(normalized, Author{
			ID:     author.ID,
			Name:   author.Name,
			URL:    author.URL,
			Avatar: n.resolveURL(author.Avatar),
		})
	}
	return normalized
}

// resolveURL resolves a media reference to an absolute URL. Absent references
// stay empty, absolute ones pass through, relative ones are prefixed with
// the content API origin.
func (n *Normalizer) resolveURL(ref string) string {
	if ref == "" {
		return ""
	}

	if strings.Contains(ref, "http") {
		return ref
	}

	return n.origin + ref
}

func normalizeTags(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}

func filterByTags(posts []Post, tags []string) []Post {
	wanted := make(map[string]bool, len(tags))
	for _, tag := range tags {
		wanted[tag] = true
	}

	filtered := make([]Post, 0, len(posts))
	for _, p := range posts {
		for _, tag := range p.Tags {
			if wanted[tag] {
				filtered = append(filtered, p)
				break
			}
		}
	}

	return filtered
}

// parsePublishTime returns the record's publish time, falling back to its
// creation time. The zero time (no parsable date at all) sorts last.
func parsePublishTime(raw cms.Post) time.Time {
	for _, value := range []string{raw.PublishedAt, raw.CreatedAt} {
		if value == "" {
			continue
		}
		if t, err := time.Parse(time.RFC3339, value); err == nil {
			return t
		}
	}
	return time.Time{}
}

func formatDisplayDate(t time.Time) string {
	if t.IsZero() {
		t = time.Now()
	}
	return t.Format(displayDateLayout)
}
