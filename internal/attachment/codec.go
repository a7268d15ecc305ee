// Package attachment converts item photos between raw image bytes and the
// Base64 text form stored inside application documents.
package attachment

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png" // accept PNG uploads; everything is stored as JPEG
	"strings"
)

// ErrCodec marks any encode failure: input that is not a decodable image,
// or an image whose encoded form exceeds the per-attachment bound.
var ErrCodec = errors.New("attachment codec")

const (
	// jpegQuality matches the compression applied by the mobile client
	// before upload, so photos end up at a comparable size.
	jpegQuality = 80

	// MaxEncodedLen bounds a single encoded attachment. Documents carry up
	// to five of these, so the cap keeps a full record comfortably inside
	// store item limits.
	MaxEncodedLen = 1 << 20
)

// Encode recompresses raw image bytes (JPEG or PNG) to JPEG at the fixed
// quality and returns the Base64 text form. The caller treats a failure
// as "drop this attachment", never as a reason to abort the submission.
func Encode(raw []byte) (string, error) {
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("%w: decode image: %v", ErrCodec, err)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return "", fmt.Errorf("%w: recompress: %v", ErrCodec, err)
	}

	encoded := base64.StdEncoding.EncodeToString(buf.Bytes())
	if len(encoded) > MaxEncodedLen {
		return "", fmt.Errorf("%w: encoded attachment exceeds %d bytes", ErrCodec, MaxEncodedLen)
	}
	return encoded, nil
}

// Decode is the best-effort inverse of Encode. It returns the JPEG bytes
// and true, or nil and false for any malformed input. It never fails with
// an error: a corrupt attachment must not block rendering of the others.
func Decode(text string) ([]byte, bool) {
	// Mobile encoders line-wrap their Base64 output; strip all whitespace
	// before decoding.
	compact := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\n', '\r', '\t':
			return -1
		}
		return r
	}, text)

	raw, err := base64.StdEncoding.DecodeString(compact)
	if err != nil {
		return nil, false
	}
	if _, _, err := image.Decode(bytes.NewReader(raw)); err != nil {
		return nil, false
	}
	return raw, true
}

// EncodeAll encodes a batch of photos, silently dropping the ones the
// codec rejects.
func EncodeAll(raws [][]byte) []string {
	out := make([]string, 0, len(raws))
	for _, raw := range raws {
		encoded, err := Encode(raw)
		if err != nil {
			continue
		}
		out = append(out, encoded)
	}
	return out
}

// DecodeAll decodes a batch of stored attachments, skipping corrupt ones.
func DecodeAll(texts []string) [][]byte {
	out := make([][]byte, 0, len(texts))
	for _, t := range texts {
		raw, ok := Decode(t)
		if !ok {
			continue
		}
		out = append(out, raw)
	}
	return out
}
