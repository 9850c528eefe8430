package split

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"image"
	"io"
	"net/http"
	"os"

	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/tiff"
)

var (
	// ErrInvalidFileType means the input is not a JPEG, PNG or TIFF file.
	ErrInvalidFileType = errors.New("unsupported file type (want JPEG, PNG or TIFF)")
	// ErrImageLoad means the input claimed a supported type but failed to decode.
	ErrImageLoad = errors.New("image could not be decoded")
)

// Content types accepted for splitting.
var allowedTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/tiff": true,
}

// Load sniffs the content type of r and decodes the image. The type check
// runs on the leading bytes before any decoding is attempted, so a file of
// the wrong type is rejected without touching the decoders.
func Load(r io.Reader) (image.Image, error) {
	br := bufio.NewReader(r)

	// DetectContentType wants up to 512 bytes; fewer is fine for a short file.
	head, err := br.Peek(512)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("%w: %v", ErrImageLoad, err)
	}
	if len(head) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrInvalidFileType)
	}

	contentType := http.DetectContentType(head)
	if isTIFF(head) {
		// DetectContentType follows the WHATWG sniff table, which has no
		// TIFF entry, so TIFF headers come back as application/octet-stream.
		contentType = "image/tiff"
	}
	if !allowedTypes[contentType] {
		return nil, fmt.Errorf("%w: got %s", ErrInvalidFileType, contentType)
	}

	img, _, err := image.Decode(br)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImageLoad, err)
	}
	return img, nil
}

// isTIFF reports whether head starts with a TIFF byte-order marker,
// little-endian "II*\x00" or big-endian "MM\x00*".
func isTIFF(head []byte) bool {
	return bytes.HasPrefix(head, []byte("II*\x00")) || bytes.HasPrefix(head, []byte("MM\x00*"))
}

// LoadFile opens and decodes the image at path.
func LoadFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()
	return Load(f)
}
