package artifact

import "encoding/binary"

// ICO container constants for a single 32-bit image.
const (
	icoHeaderSize = 6
	icoEntrySize  = 16
	bmpHeaderSize = 40
	icoDataOffset = icoHeaderSize + icoEntrySize
)

// EncodeICO produces a minimal valid single-image ICO container: file
// header, one directory entry, a 40-byte bitmap sub-header, 32-bit BGRA
// pixels in bottom-up row order, and an all-zero 1-bit opacity mask
// (transparency is carried by the alpha channel). All multi-byte fields
// are little-endian.
//
// Two container conventions are load-bearing and must not be "fixed":
// the bitmap sub-header declares twice the real height (its row count
// includes the mask rows), and the directory entry's image byte length
// counts the sub-header plus pixels but not the mask. The directory
// entry carries the true height.
//
// PURE: output is byte-for-byte reproducible for identical dimensions.
func EncodeICO(width, height int) []byte {
	pixelBytes := width * height * 4
	maskBytes := (width*height + 7) / 8
	imageSize := bmpHeaderSize + pixelBytes

	buf := make([]byte, 0, icoDataOffset+imageSize+maskBytes)

	// File header: reserved, type (1 = icon), image count.
	buf = binary.LittleEndian.AppendUint16(buf, 0)
	buf = binary.LittleEndian.AppendUint16(buf, 1)
	buf = binary.LittleEndian.AppendUint16(buf, 1)

	// Directory entry.
	buf = append(buf, byte(width), byte(height), 0, 0)
	buf = binary.LittleEndian.AppendUint16(buf, 1)  // color planes
	buf = binary.LittleEndian.AppendUint16(buf, 32) // bits per pixel
	buf = binary.LittleEndian.AppendUint32(buf, uint32(imageSize))
	buf = binary.LittleEndian.AppendUint32(buf, icoDataOffset)

	// Bitmap sub-header.
	buf = binary.LittleEndian.AppendUint32(buf, bmpHeaderSize)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(width))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(height*2))
	buf = binary.LittleEndian.AppendUint16(buf, 1)  // color planes
	buf = binary.LittleEndian.AppendUint16(buf, 32) // bits per pixel
	buf = binary.LittleEndian.AppendUint32(buf, 0)  // compression
	buf = binary.LittleEndian.AppendUint32(buf, uint32(pixelBytes))
	buf = binary.LittleEndian.AppendUint32(buf, 0) // x pixels per meter
	buf = binary.LittleEndian.AppendUint32(buf, 0) // y pixels per meter
	buf = binary.LittleEndian.AppendUint32(buf, 0) // colors used
	buf = binary.LittleEndian.AppendUint32(buf, 0) // important colors

	// Pixels, bottom-up, BGRA. A blue square with a slight gradient.
	for y := height - 1; y >= 0; y-- {
		for x := 0; x < width; x++ {
			blue := byte(100 + (x*3)%50)
			green := byte(50 + (y*2)%30)
			buf = append(buf, blue, green, 30, 255)
		}
	}

	// Opacity mask, one bit per pixel, all zero.
	buf = append(buf, make([]byte, maskBytes)...)

	return buf
}
