package texture

import (
	"fmt"
	"log"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"

	"github.com/sol-prog/OpenGL-101/internal/gpu"
)

// DepthError reports a bitmap whose pixel size has no upload path.
type DepthError struct {
	BPP int
}

func (e *DepthError) Error() string {
	return fmt.Sprintf("pixel size = %d, don't know how to process this case", e.BPP)
}

// Upload copies bm into the bound 2D texture, keeping the decoder's BGR(A)
// channel order, sets linear filtering and applies the selector's wrap mode.
// Only 24 and 32 bits per pixel are accepted; anything else fails before the
// texture is touched.
func Upload(g gpu.GL, bm *Bitmap, sel *Selector) error {
	var (
		internal int32
		format   uint32
	)
	switch bm.BPP {
	case 24:
		internal, format = gpu.RGB, gpu.BGR
	case 32:
		internal, format = gpu.RGBA, gpu.BGRA
	default:
		return &DepthError{BPP: bm.BPP}
	}

	g.TexImage2D(gpu.Texture2D, 0, internal, int32(bm.Width), int32(bm.Height), 0, format, gpu.UnsignedByte, bm.Pix)

	g.TexParameteri(gpu.Texture2D, gpu.TextureMinFilter, gpu.Linear)
	g.TexParameteri(gpu.Texture2D, gpu.TextureMagFilter, gpu.Linear)

	sel.Apply(g)
	return nil
}

// Load decodes the image at path and uploads it to the bound 2D texture.
func Load(g gpu.GL, path string, sel *Selector) error {
	bm, err := Decode(path)
	if err != nil {
		return err
	}
	if err := Upload(g, bm, sel); err != nil {
		return errors.Wrap(err, path)
	}
	log.Printf("loaded %s: %dx%d, %d bpp, %s", path, bm.Width, bm.Height, bm.BPP, humanize.Bytes(uint64(len(bm.Pix))))
	return nil
}
