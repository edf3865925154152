package artifact_test

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/cortexscaffold/cortexscaffold/domain/artifact"
)

func u16(data []byte, off int) uint16 {
	return binary.LittleEndian.Uint16(data[off : off+2])
}

func u32(data []byte, off int) uint32 {
	return binary.LittleEndian.Uint32(data[off : off+4])
}

func TestEncodeICOLength(t *testing.T) {
	ico := artifact.EncodeICO(16, 16)

	// header + directory entry + bitmap header + 16x16 BGRA + AND mask
	want := 6 + 16 + 40 + 16*16*4 + 32
	if len(ico) != want {
		t.Fatalf("len = %d, want %d", len(ico), want)
	}
}

func TestEncodeICOHeader(t *testing.T) {
	ico := artifact.EncodeICO(16, 16)

	if !bytes.Equal(ico[:6], []byte{0, 0, 1, 0, 1, 0}) {
		t.Errorf("header = %v, want reserved=0 type=1 count=1", ico[:6])
	}
}

func TestEncodeICODirectoryEntry(t *testing.T) {
	ico := artifact.EncodeICO(16, 16)

	if ico[6] != 16 || ico[7] != 16 {
		t.Errorf("dimensions = %dx%d, want 16x16", ico[6], ico[7])
	}
	if ico[8] != 0 || ico[9] != 0 {
		t.Errorf("palette/reserved = %d/%d, want 0/0", ico[8], ico[9])
	}
	if got := u16(ico, 10); got != 1 {
		t.Errorf("planes = %d, want 1", got)
	}
	if got := u16(ico, 12); got != 32 {
		t.Errorf("bit depth = %d, want 32", got)
	}
	// The recorded image size covers the bitmap header and pixels only,
	// not the AND mask.
	if got := u32(ico, 14); got != 40+16*16*4 {
		t.Errorf("image size = %d, want %d", got, 40+16*16*4)
	}
	if got := u32(ico, 18); got != 22 {
		t.Errorf("data offset = %d, want 22", got)
	}
}

func TestEncodeICOBitmapHeader(t *testing.T) {
	ico := artifact.EncodeICO(16, 16)

	if got := u32(ico, 22); got != 40 {
		t.Errorf("header size = %d, want 40", got)
	}
	if got := u32(ico, 26); got != 16 {
		t.Errorf("width = %d, want 16", got)
	}
	// Height counts the XOR and AND planes together.
	if got := u32(ico, 30); got != 32 {
		t.Errorf("height = %d, want 32", got)
	}
	if got := u16(ico, 34); got != 1 {
		t.Errorf("planes = %d, want 1", got)
	}
	if got := u16(ico, 36); got != 32 {
		t.Errorf("bit depth = %d, want 32", got)
	}
	if got := u32(ico, 38); got != 0 {
		t.Errorf("compression = %d, want 0", got)
	}
	if got := u32(ico, 42); got != 16*16*4 {
		t.Errorf("pixel bytes = %d, want %d", got, 16*16*4)
	}
	for off := 46; off < 62; off += 4 {
		if got := u32(ico, off); got != 0 {
			t.Errorf("header field at %d = %d, want 0", off, got)
		}
	}
}

func TestEncodeICOPixels(t *testing.T) {
	ico := artifact.EncodeICO(16, 16)

	// Rows are stored bottom-up, pixels as BGRA.
	pixel := func(x, y int) []byte {
		off := 62 + ((15-y)*16+x)*4
		return ico[off : off+4]
	}

	tests := []struct {
		x, y int
		want []byte
	}{
		{0, 15, []byte{100, 50, 30, 255}},
		{0, 7, []byte{100, 64, 30, 255}},
		{5, 7, []byte{115, 64, 30, 255}},
		{15, 0, []byte{145, 50, 30, 255}},
	}
	for _, tt := range tests {
		if got := pixel(tt.x, tt.y); !bytes.Equal(got, tt.want) {
			t.Errorf("pixel(%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestEncodeICOMask(t *testing.T) {
	ico := artifact.EncodeICO(16, 16)

	mask := ico[len(ico)-32:]
	for i, b := range mask {
		if b != 0 {
			t.Fatalf("mask byte %d = %d, want 0", i, b)
		}
	}
}

func TestEncodeICODeterministic(t *testing.T) {
	if !bytes.Equal(artifact.EncodeICO(16, 16), artifact.EncodeICO(16, 16)) {
		t.Error("repeated encodings differ")
	}
}
