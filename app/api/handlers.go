package api

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ykarpov/cms-bridge/app/cfg"
	"github.com/ykarpov/cms-bridge/app/post"
	"github.com/ykarpov/cms-bridge/app/rss"
)

func NewHandler(normalizer NormalizerInterface) *Handler {
	return &Handler{
		normalizer: normalizer,
		generator:  rss.NewGenerator(),
	}
}

func (h *Handler) GetPost(c *gin.Context) {
	slug := c.Param("slug")
	if slug == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing slug parameter"})
		return
	}

	preview := c.Query("preview") == "true"

	normalized := h.normalizer.Get(c.Request.Context(), slug, preview)
	if normalized == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	c.JSON(http.StatusOK, normalized)
}

func (h *Handler) ListPosts(c *gin.Context) {
	opts := post.ListOptions{
		ExcludeSlug: c.Query("exclude"),
	}

	if limitParam := c.Query("limit"); limitParam != "" {
		limit, err := strconv.Atoi(limitParam)
		if err != nil || limit < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit parameter"})
			return
		}
		opts.Limit = limit
	}

	if tagsParam := c.Query("tags"); tagsParam != "" {
		opts.Tags = strings.Split(tagsParam, ",")
	}

	posts := h.normalizer.List(c.Request.Context(), opts)

	c.JSON(http.StatusOK, posts)
}

func (h *Handler) GetFeed(c *gin.Context) {
	posts := h.normalizer.List(c.Request.Context(), post.ListOptions{})

	feed, err := h.generator.Run(posts)
	if err != nil {
		slog.Error("RSS generation error", "error", err)
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Header("Content-Type", "application/xml; charset=utf-8")
	c.Header("X-Feed-Items", strconv.Itoa(len(posts)))

	c.String(http.StatusOK, feed)
}

func (h *Handler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, map[string]interface{}{
		"timestamp": time.Now().In(time.Local).Format(time.RFC3339),
		"version":   cfg.Get().Version,
		"cms_url":   cfg.Get().CMSURL,
	})
}
