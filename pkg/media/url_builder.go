package media

import (
	"fmt"
	"net/url"
	"strings"
)

// ImageFormat is a file format the dynamic media service can encode to.
type ImageFormat string

// Supported output formats.
const (
	FormatJPEG ImageFormat = "jpg"
	FormatPNG  ImageFormat = "png"
	FormatGIF  ImageFormat = "gif"
	FormatWebP ImageFormat = "webp"
)

// ImageURLBuilder constructs URLs to image resources hosted by the dynamic
// media service. Commonly used transformations can be chained; advanced
// transformations are applied through named templates configured server-side.
type ImageURLBuilder struct {
	media       Media
	video       bool
	protocol    string
	host        string
	format      ImageFormat
	seoFileName string
	query       []string
}

func newImageURLBuilder(m Media, video bool) *ImageURLBuilder {
	return &ImageURLBuilder{media: m, video: video, protocol: "https"}
}

// Protocol sets the URL protocol: "http", "https" or "//" for
// protocol-relative URLs.
func (b *ImageURLBuilder) Protocol(value string) *ImageURLBuilder {
	b.protocol = value
	return b
}

// Host overrides the hostname the SDK would otherwise resolve from its
// configuration.
func (b *ImageURLBuilder) Host(value string) *ImageURLBuilder {
	b.host = value
	return b
}

// Format converts the image to the given file format, appended to the URL
// as a file extension.
func (b *ImageURLBuilder) Format(value ImageFormat) *ImageURLBuilder {
	b.format = value
	return b
}

// SEOFileName appends a custom filename segment to improve SEO.
func (b *ImageURLBuilder) SEOFileName(value string) *ImageURLBuilder {
	b.seoFileName = value
	return b
}

// Template applies a named transformation template configured in the
// back-office.
func (b *ImageURLBuilder) Template(name string) *ImageURLBuilder {
	b.query = append(b.query, fmt.Sprintf("$%s$", url.QueryEscape(name)))
	return b
}

// Parameter appends an arbitrary query parameter, typically used to pass
// variables into templates.
func (b *ImageURLBuilder) Parameter(name, value string) *ImageURLBuilder {
	b.query = append(b.query, fmt.Sprintf("%s=%s", url.QueryEscape(name), url.QueryEscape(value)))
	return b
}

// Quality sets the compression level (0-100).
func (b *ImageURLBuilder) Quality(value int) *ImageURLBuilder {
	b.query = append(b.query, fmt.Sprintf("qlt=%d", value))
	return b
}

// Sharpen applies an unsharp mask.
func (b *ImageURLBuilder) Sharpen(radius, sigma, amount, threshold float64) *ImageURLBuilder {
	b.query = append(b.query, fmt.Sprintf("unsharp=%v,%v,%v,%v", radius, sigma, amount, threshold))
	return b
}

// Width resizes the image to the given width in pixels, preserving aspect
// ratio unless a height is also set.
func (b *ImageURLBuilder) Width(value int) *ImageURLBuilder {
	b.query = append(b.query, fmt.Sprintf("w=%d", value))
	return b
}

// Height resizes the image to the given height in pixels, preserving aspect
// ratio unless a width is also set.
func (b *ImageURLBuilder) Height(value int) *ImageURLBuilder {
	b.query = append(b.query, fmt.Sprintf("h=%d", value))
	return b
}

// Build returns the fully constructed URL with any transformations applied.
func (b *ImageURLBuilder) Build() string {
	secure := b.protocol == "//" || b.protocol == "https"

	var sb strings.Builder
	if b.protocol == "//" {
		sb.WriteString("//")
	} else {
		sb.WriteString(b.protocol)
		sb.WriteString("://")
	}

	host := b.host
	if host == "" {
		host = b.media.Host(secure)
	}
	sb.WriteString(host)

	if b.video {
		sb.WriteString("/v/")
	} else {
		sb.WriteString("/i/")
	}
	sb.WriteString(url.PathEscape(b.media.Endpoint))
	sb.WriteString("/")
	sb.WriteString(url.PathEscape(b.media.Name))

	if b.seoFileName != "" {
		sb.WriteString("/")
		sb.WriteString(url.PathEscape(b.seoFileName))
	}
	if b.format != "" {
		sb.WriteString(".")
		sb.WriteString(string(b.format))
	}
	if len(b.query) > 0 {
		sb.WriteString("?")
		sb.WriteString(strings.Join(b.query, "&"))
	}
	return sb.String()
}
