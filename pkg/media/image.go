package media

// Image is an image resource with URL building helpers. URLs built from an
// Image take staging and branded hostname overrides into consideration.
type Image struct {
	Media
}

// NewImage decodes an image-link fragment into an Image.
func NewImage(fragment map[string]any, cfg Config) (*Image, error) {
	m, err := decodeMedia(fragment, cfg)
	if err != nil {
		return nil, err
	}
	return &Image{Media: m}, nil
}

// URL returns a builder which can be used to construct a URL to this image,
// with transformations such as resize and format applied:
//
//	image.URL().Width(500).Build()
func (i *Image) URL() *ImageURLBuilder {
	return newImageURLBuilder(i.Media, false)
}

// IsImage reports whether the fragment node is an image-link.
func IsImage(node any) bool {
	return FragmentSchema(node) == SchemaImageLink
}
