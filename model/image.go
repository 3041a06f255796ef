package model

// Image is one of Image16x14, ImageFile16x14 or ImageData16x14. A nil
// Image means the entity has none.
type Image interface {
	isImage()
}

// Image16x14 is the obsolete inline bitmap reference.
type Image16x14 string

// ImageFile16x14 names an image file shipped with the document.
type ImageFile16x14 string

// ImageData16x14 is an inline hex encoded bitmap.
type ImageData16x14 HexBinary

func (Image16x14) isImage()     {}
func (ImageFile16x14) isImage() {}
func (ImageData16x14) isImage() {}
