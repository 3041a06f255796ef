package build

import (
	"fmt"

	"github.com/andaru/esi/esierr"
	"github.com/andaru/esi/model"
	"github.com/pkg/errors"
)

// ResolveImage returns the single image variant set on entity, nil if
// none is set, or an ambiguous-image-variant error if more than one is.
func ResolveImage(entity string, legacy, file, data *string) (model.Image, error) {
	var img model.Image
	n := 0
	if legacy != nil {
		img = model.Image16x14(*legacy)
		n++
	}
	if file != nil {
		img = model.ImageFile16x14(*file)
		n++
	}
	if data != nil {
		img = model.ImageData16x14(*data)
		n++
	}
	if n > 1 {
		return nil, errors.WithStack(esierr.AmbiguousImageVariant(entity,
			esierr.WithMessage(fmt.Sprintf("%d image variants present", n))))
	}
	return img, nil
}
