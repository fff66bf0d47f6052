// Package texture loads images from disk into the bound 2D texture and
// manages its wrap mode.
package texture

import (
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/h2non/filetype"
	"github.com/h2non/filetype/types"
	"github.com/pkg/errors"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"golang.org/x/image/webp"
)

var (
	// ErrUnknownFormat is returned when neither the file content nor its
	// extension identify an image format that can be read.
	ErrUnknownFormat = errors.New("unrecognized image format")
	// ErrDecode is returned when a recognized image fails to decode.
	ErrDecode = errors.New("unable to decode image")
)

// headerLen is how much of a file filetype needs to see to match any type.
const headerLen = 262

var decoders = map[string]func(io.Reader) (image.Image, error){
	"jpg":  jpeg.Decode,
	"png":  png.Decode,
	"gif":  gif.Decode,
	"bmp":  bmp.Decode,
	"tif":  tiff.Decode,
	"webp": webp.Decode,
}

// Bitmap is a decoded image laid out for upload: rows run bottom-up, each
// padded to a multiple of four bytes, and channels are ordered blue, green,
// red (then alpha).
//
// Pix is only populated for 24 and 32 bits per pixel.
type Bitmap struct {
	Width, Height int
	BPP           int
	Pitch         int
	Pix           []byte
}

// Sniff identifies the format of the image at path from its content, and
// from its extension when the content is inconclusive.
func Sniff(path string) (types.Type, error) {
	f, err := os.Open(path)
	if err != nil {
		return types.Unknown, errors.Wrap(ErrUnknownFormat, err.Error())
	}
	defer f.Close()
	return sniff(f, path)
}

func sniff(r io.Reader, path string) (types.Type, error) {
	head := make([]byte, headerLen)
	n, err := io.ReadFull(r, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return types.Unknown, errors.Wrap(ErrUnknownFormat, err.Error())
	}

	kind, _ := filetype.Match(head[:n])
	if kind == types.Unknown {
		kind = fromExtension(path)
	}
	if _, ok := decoders[kind.Extension]; !ok {
		return types.Unknown, errors.Wrapf(ErrUnknownFormat, "%s (detected %q)", path, kind.Extension)
	}
	return kind, nil
}

func fromExtension(path string) types.Type {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch ext {
	case "jpeg", "jpe":
		ext = "jpg"
	case "tiff":
		ext = "tif"
	}
	return filetype.GetType(ext)
}

// Decode reads the image at path into a Bitmap.
func Decode(path string) (*Bitmap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(ErrUnknownFormat, err.Error())
	}
	defer f.Close()

	kind, err := sniff(f, path)
	if err != nil {
		return nil, err
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, errors.Wrap(ErrDecode, err.Error())
	}

	img, err := decoders[kind.Extension](f)
	if err != nil {
		return nil, errors.Wrapf(ErrDecode, "%s: %v", path, err)
	}
	return NewBitmap(img), nil
}

// depth reports the bits per pixel a decoded image carries natively.
func depth(img image.Image) int {
	switch m := img.(type) {
	case *image.Gray, *image.Paletted:
		return 8
	case *image.Gray16:
		return 16
	case *image.RGBA64:
		return 48
	case *image.NRGBA64:
		return 64
	case *image.YCbCr, *image.CMYK:
		return 24
	case *image.RGBA:
		if m.Opaque() {
			return 24
		}
		return 32
	case *image.NRGBA, *image.NYCbCrA:
		return 32
	case interface{ Opaque() bool }:
		if m.Opaque() {
			return 24
		}
	}
	return 32
}

// NewBitmap converts img into the bottom-up BGR(A) layout.
func NewBitmap(img image.Image) *Bitmap {
	b := img.Bounds()
	bm := &Bitmap{Width: b.Dx(), Height: b.Dy(), BPP: depth(img)}
	if bm.BPP != 24 && bm.BPP != 32 {
		return bm
	}

	channels := bm.BPP / 8
	bm.Pitch = (bm.Width*channels + 3) &^ 3
	bm.Pix = make([]byte, bm.Pitch*bm.Height)

	for y := 0; y < bm.Height; y++ {
		row := bm.Pix[(bm.Height-1-y)*bm.Pitch:]
		for x := 0; x < bm.Width; x++ {
			c := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			px := row[x*channels:]
			px[0], px[1], px[2] = c.B, c.G, c.R
			if channels == 4 {
				px[3] = c.A
			}
		}
	}
	return bm
}
