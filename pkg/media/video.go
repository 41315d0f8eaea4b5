package media

// Video is a video resource. Thumbnail URLs built from a Video support the
// same transformations as image URLs.
type Video struct {
	Media
}

// NewVideo decodes a video-link fragment into a Video.
func NewVideo(fragment map[string]any, cfg Config) (*Video, error) {
	m, err := decodeMedia(fragment, cfg)
	if err != nil {
		return nil, err
	}
	return &Video{Media: m}, nil
}

// Thumbnail returns a builder which constructs a video thumbnail URL:
//
//	video.Thumbnail().Width(500).Build()
func (v *Video) Thumbnail() *ImageURLBuilder {
	return newImageURLBuilder(v.Media, true)
}

// IsVideo reports whether the fragment node is a video-link.
func IsVideo(node any) bool {
	return FragmentSchema(node) == SchemaVideoLink
}
