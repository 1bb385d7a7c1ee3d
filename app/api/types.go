package api

import (
	"context"

	"github.com/ykarpov/cms-bridge/app/post"
	"github.com/ykarpov/cms-bridge/app/rss"
)

type NormalizerInterface interface {
	Get(ctx context.Context, slug string, preview bool) *post.Post
	List(ctx context.Context, opts post.ListOptions) []post.Post
}

var _ NormalizerInterface = (*post.Normalizer)(nil)

type GeneratorInterface interface {
	Run(posts []post.Post) (string, error)
}

var _ GeneratorInterface = (*rss.Generator)(nil)

type Handler struct {
	normalizer NormalizerInterface
	generator  GeneratorInterface
}
