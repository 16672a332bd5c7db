package mdx

import (
	"bytes"
	"math"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"go.abhg.dev/goldmark/frontmatter"
)

// FrontMatter is the YAML header written by the export transform for every
// MDX content file. Pages carry MenuOrder/ParentID/Path; posts carry
// ReadingTime; everything else is shared.
type FrontMatter struct {
	Title            string   `yaml:"title"`
	Permalink        string   `yaml:"permalink"`
	Date             string   `yaml:"date"`
	Updated          string   `yaml:"updated"`
	Type             string   `yaml:"type"`
	Status           string   `yaml:"status"`
	Excerpt          string   `yaml:"excerpt"`
	Categories       []string `yaml:"categories"`
	Tags             []string `yaml:"tags"`
	FeaturedImage    string   `yaml:"featuredImage"`
	FeaturedImageAlt string   `yaml:"featuredImageAlt"`
	AuthorID         int      `yaml:"authorId"`
	MenuOrder        int      `yaml:"menuOrder"`
	ParentID         int      `yaml:"parentId"`
	Path             string   `yaml:"path"`
	ReadingTime      int      `yaml:"readingTime"`
	CanonicalURL     string   `yaml:"canonicalUrl"`
}

func (fm *FrontMatter) Published() bool {
	return fm.Status == "" || fm.Status == "publish"
}

type Parser struct {
	md goldmark.Markdown
}

func NewParser() *Parser {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Footnote,
			extension.Typographer,
			&frontmatter.Extender{},
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			goldmarkhtml.WithXHTML(),
			// Export bodies are converted WordPress HTML, keep it as written.
			goldmarkhtml.WithUnsafe(),
		),
	)

	return &Parser{
		md: md,
	}
}

func (p *Parser) Parse(source []byte) ([]byte, error) {
	var buf bytes.Buffer
	err := p.md.Convert(source, &buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ParseDocument renders an MDX file and decodes its frontmatter header.
// A file without a header yields the zero FrontMatter.
func (p *Parser) ParseDocument(source []byte) ([]byte, FrontMatter, error) {
	context := parser.NewContext()
	var buf bytes.Buffer

	err := p.md.Convert(source, &buf, parser.WithContext(context))
	if err != nil {
		return nil, FrontMatter{}, err
	}

	var fm FrontMatter
	if data := frontmatter.Get(context); data != nil {
		if err := data.Decode(&fm); err != nil {
			return nil, FrontMatter{}, err
		}
	}

	return buf.Bytes(), fm, nil
}

// Metadata decodes only the frontmatter header without rendering the body.
// Used for listings where the HTML is not needed.
func (p *Parser) Metadata(source []byte) (FrontMatter, error) {
	context := parser.NewContext()
	p.md.Parser().Parse(text.NewReader(source), parser.WithContext(context))

	var fm FrontMatter
	if data := frontmatter.Get(context); data != nil {
		if err := data.Decode(&fm); err != nil {
			return FrontMatter{}, err
		}
	}
	return fm, nil
}

var tagPattern = regexp.MustCompile(`<[^>]+>`)

// EstimateReadingTime counts words in the stripped body at 200 wpm,
// minimum one minute.
func EstimateReadingTime(content string) int {
	words := len(strings.Fields(tagPattern.ReplaceAllString(content, "")))
	minutes := int(math.Round(float64(words) / 200.0))
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}
