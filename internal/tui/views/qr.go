package views

import (
	"strings"

	qrcode "github.com/skip2/go-qrcode"
)

// Indexed by top<<1 | bottom module.
var halfBlocks = [4]rune{' ', '▄', '▀', '█'}

// renderQR draws content as a QR code, packing two module rows into each
// line of half-block characters.
func renderQR(content string) (string, error) {
	qr, err := qrcode.New(content, qrcode.Low)
	if err != nil {
		return "", err
	}
	bitmap := qr.Bitmap()

	var sb strings.Builder
	for y := 0; y < len(bitmap); y += 2 {
		var below []bool
		if y+1 < len(bitmap) {
			below = bitmap[y+1]
		}
		sb.WriteString("  ")
		for x, top := range bitmap[y] {
			i := 0
			if top {
				i |= 2
			}
			if below != nil && below[x] {
				i |= 1
			}
			sb.WriteRune(halfBlocks[i])
		}
		sb.WriteByte('\n')
	}
	return sb.String(), nil
}
