package rss

import (
	"bytes"
	"cmp"
	"encoding/xml"
	"fmt"
	"html"
	"time"

	"github.com/ykarpov/cms-bridge/app/cfg"
	"github.com/ykarpov/cms-bridge/app/post"
)

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

func (g *Generator) Run(posts []post.Post) (string, error) {
	var buf bytes.Buffer

	baseURL := cmp.Or(cfg.Get().BaseUrl, "http://localhost:"+cfg.Get().Port)

	buf.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	buf.WriteString("\n")
	buf.WriteString(`<rss version="2.0" xmlns:content="http://purl.org/rss/1.0/modules/content/" xmlns:atom="http://www.w3.org/2005/Atom">`)
	buf.WriteString("\n  <channel>\n")

	title := cfg.Get().SiteTitle
	g.writeElement(&buf, "title", title, 4)
	g.writeElement(&buf, "link", baseURL, 4)
	description := cfg.Get().SiteDescription
	if description == "" {
		description = fmt.Sprintf("Latest posts from %s", title)
	}
	g.writeElement(&buf, "description", description, 4)

	buf.WriteString(fmt.Sprintf("    <atom:link href=\"%s\" rel=\"self\" type=\"application/rss+xml\" />\n",
		html.EscapeString(baseURL+"/feed")))

	lastBuildDate := time.Now().In(time.Local)
	if len(posts) > 0 && !posts[0].PublishTime().IsZero() {
		lastBuildDate = posts[0].PublishTime()
	}

	g.writeElement(&buf, "lastBuildDate", lastBuildDate.Format(time.RFC1123Z), 4)
	g.writeElement(&buf, "generator", fmt.Sprintf("CMS-Bridge/%s", cfg.Get().Version), 4)

	for _, p := range posts {
		g.writeItem(&buf, baseURL, p)
	}

	buf.WriteString("  </channel>\n</rss>")

	return buf.String(), nil
}

func (g *Generator) writeItem(buf *bytes.Buffer, baseURL string, p post.Post) {
	buf.WriteString("    <item>\n")

	permalink := baseURL + p.Path
	buf.WriteString(`      <guid isPermaLink="true">`)
	xml.EscapeText(buf, []byte(permalink))
	buf.WriteString("</guid>\n")

	if p.Title != "" {
		g.writeElement(buf, "title", p.Title, 6)
	}

	g.writeElement(buf, "link", permalink, 6)
	g.writeElement(buf, "description", cmp.Or(p.Description, "No description available"), 6)

	if p.Content != "" && p.Content != p.Description {
		buf.WriteString("      <content:encoded><![CDATA[")
		buf.WriteString(p.Content)
		buf.WriteString("]]></content:encoded>\n")
	}

	if !p.PublishTime().IsZero() {
		g.writeElement(buf, "pubDate", p.PublishTime().Format(time.RFC1123Z), 6)
	}

	for _, author := range p.Authors {
		if author.Name != "" {
			g.writeElement(buf, "author", author.Name, 6)
		}
	}

	for _, tag := range p.Tags {
		if tag != "" {
			g.writeElement(buf, "category", tag, 6)
		}
	}

	buf.WriteString("    </item>\n")
}

func (g *Generator) writeElement(buf *bytes.Buffer, tag, content string, indent int) {
	if content == "" {
		return
	}

	for i := 0; i < indent; i++ {
		buf.WriteByte(' ')
	}

	buf.WriteString("<")
	buf.WriteString(tag)
	buf.WriteString(">")
	xml.EscapeText(buf, []byte(content))
	buf.WriteString("</")
	buf.WriteString(tag)
	buf.WriteString(">\n")
}
