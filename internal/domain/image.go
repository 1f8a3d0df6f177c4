package domain

type ImageSource string

const (
	ImageInline      ImageSource = "inline"
	ImageNamed       ImageSource = "named"
	ImagePlaceholder ImageSource = "placeholder"
)

// Image is a resolved picture for a brand or drink. Exactly one of Data
// (inline) or Name (asset key) is set unless Source is placeholder.
type Image struct {
	Source ImageSource `json:"source"`
	Name   string      `json:"name,omitempty"`
	Data   []byte      `json:"-"`
}

// BrandImage resolves inline payload, then named reference, then placeholder.
func BrandImage(b Brand) Image {
	if b.HasImageData() {
		return Image{Source: ImageInline, Data: b.ImageData}
	}
	if b.ImageName != nil && *b.ImageName != "" {
		return Image{Source: ImageNamed, Name: *b.ImageName}
	}
	return Image{Source: ImagePlaceholder}
}

// DrinkImage prefers the drink's own named image and falls back to the
// owning brand's image.
func DrinkImage(d Drink, b Brand) Image {
	if d.ImageName != nil && *d.ImageName != "" {
		return Image{Source: ImageNamed, Name: *d.ImageName}
	}
	return BrandImage(b)
}
