package tabconv

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// DecodeText converts raw input bytes into text. A UTF-8 byte order mark is
// removed and UTF-16 input with a byte order mark is transcoded to UTF-8.
// Anything else must already be valid UTF-8, otherwise ErrEncoding is
// returned.
func DecodeText(data []byte) (string, error) {
	if hasUTF16BOM(data) {
		dec := unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM).NewDecoder()
		out, _, err := transform.Bytes(dec, data)
		if err != nil {
			return "", fmt.Errorf("%w: invalid UTF-16 input: %v", ErrEncoding, err)
		}
		return string(out), nil
	}
	data = bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: input is not valid UTF-8 text", ErrEncoding)
	}
	return string(data), nil
}

func hasUTF16BOM(data []byte) bool {
	return len(data) >= 2 &&
		((data[0] == 0xFF && data[1] == 0xFE) || (data[0] == 0xFE && data[1] == 0xFF))
}
