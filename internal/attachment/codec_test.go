package attachment

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 37), G: uint8(y * 53), B: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode test image: %v", err)
	}
	return buf.Bytes()
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	raw := pngBytes(t, 16, 12)

	encoded, err := Encode(raw)
	if err != nil {
		t.Fatalf("unexpected encode error: %v", err)
	}
	if encoded == "" {
		t.Fatalf("expected non-empty encoding")
	}

	decoded, ok := Decode(encoded)
	if !ok {
		t.Fatalf("decode of freshly encoded attachment failed")
	}

	img, err := jpeg.Decode(bytes.NewReader(decoded))
	if err != nil {
		t.Fatalf("decoded bytes are not a JPEG: %v", err)
	}
	if got := img.Bounds(); got.Dx() != 16 || got.Dy() != 12 {
		t.Fatalf("dimensions changed: %v", got)
	}
}

func TestEncode_RejectsNonImage(t *testing.T) {
	_, err := Encode([]byte("definitely not an image"))
	if !errors.Is(err, ErrCodec) {
		t.Fatalf("expected ErrCodec, got %v", err)
	}
}

func TestDecode_MalformedInputIsAbsent(t *testing.T) {
	cases := map[string]string{
		"not base64":       "!!!not-base64!!!",
		"base64 non-image": "aGVsbG8gd29ybGQ=",
		"empty":            "",
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			if raw, ok := Decode(input); ok || raw != nil {
				t.Fatalf("expected absent result for %q", input)
			}
		})
	}
}

func TestDecode_AcceptsLineWrappedBase64(t *testing.T) {
	raw := pngBytes(t, 8, 8)
	encoded, err := Encode(raw)
	if err != nil {
		t.Fatalf("unexpected encode error: %v", err)
	}

	// Android's Base64.DEFAULT inserts line breaks every 76 chars.
	wrapped := ""
	for i, r := range encoded {
		if i > 0 && i%76 == 0 {
			wrapped += "\n"
		}
		wrapped += string(r)
	}

	if _, ok := Decode(wrapped); !ok {
		t.Fatalf("line-wrapped encoding should decode")
	}
}

func TestEncodeAll_DropsOnlyFailures(t *testing.T) {
	good := pngBytes(t, 4, 4)
	out := EncodeAll([][]byte{good, []byte("garbage"), good})
	if len(out) != 2 {
		t.Fatalf("expected 2 survivors, got %d", len(out))
	}
}

func TestDecodeAll_SkipsCorruptEntries(t *testing.T) {
	encoded, err := Encode(pngBytes(t, 4, 4))
	if err != nil {
		t.Fatalf("unexpected encode error: %v", err)
	}
	out := DecodeAll([]string{encoded, "corrupt", encoded})
	if len(out) != 2 {
		t.Fatalf("expected 2 decoded attachments, got %d", len(out))
	}
}
