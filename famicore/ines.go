// refs: https://www.nesdev.org/wiki/INES
package famicore

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"

	"github.com/edsrzf/mmap-go"
)

const iNESFileMagic = 0x1a53454e

// 16KiB (0x4000)
const PRG_BLOCK_SIZE = 16384

// 8KiB (0x2000)
const CHR_BLOCK_SIZE = 8192

type iNESFileHeader struct {
	Magic    uint32  // iNES magic number
	NumPRG   byte    // number of PRG-ROM banks (16KB each)
	NumCHR   byte    // number of CHR-ROM banks (8KB each)
	Control1 byte    // control bits
	Control2 byte    // control bits
	NumRAM   byte    // PRG-RAM size (x 8KB)
	_        [7]byte // unused padding
}

// LoadNESFile maps an iNES file (.nes) and decodes it into a Cartridge.
// The mapping is released before returning; PRG/CHR are copied out so the
// cartridge owns its storage.
func LoadNESFile(path string) (*Cartridge, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	data, err := mmap.Map(file, mmap.RDONLY, 0)
	if err != nil {
		return nil, err
	}
	defer data.Unmap()

	return DecodeNESImage(data)
}

// DecodeNESImage decodes a raw iNES image already held in memory.
func DecodeNESImage(data []byte) (*Cartridge, error) {
	header := iNESFileHeader{}
	if err := binary.Read(bytes.NewReader(data), binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedImage, err)
	}

	if header.Magic != iNESFileMagic {
		return nil, fmt.Errorf("%w: bad magic", ErrMalformedImage)
	}

	if header.Control2&0x0C == 0x08 {
		// NES 2.0 images carry extension fields this decoder ignores. The
		// iNES 1.0 subset is still valid, so decoding proceeds.
		logLoader.Warn("NES 2.0 image, reading iNES 1.0 fields only")
	}

	// mapper ID
	mapper1 := header.Control1 >> 4
	mapper2 := header.Control2 >> 4
	mapperID := mapper1 | mapper2<<4

	// mirroring type
	mirror1 := header.Control1 & 1
	mirror2 := (header.Control1 >> 3) & 1
	mirror := mirror1 | mirror2<<1
	if mirror2 != 0 {
		mirror = MIRROR_FOUR_SCREENS
	}

	// battery-backed RAM
	battery := header.Control1&2 != 0

	offset := 16
	// skip trainer if present (unused)
	if header.Control1&4 == 4 {
		offset += 512
	}

	prgSize := int(header.NumPRG) * PRG_BLOCK_SIZE
	chrSize := int(header.NumCHR) * CHR_BLOCK_SIZE
	if prgSize == 0 {
		return nil, fmt.Errorf("%w: no PRG banks", ErrMalformedImage)
	}
	if len(data) < offset+prgSize+chrSize {
		return nil, fmt.Errorf("%w: truncated image (%d bytes, need %d)",
			ErrMalformedImage, len(data), offset+prgSize+chrSize)
	}

	prg := make([]byte, prgSize)
	copy(prg, data[offset:])
	offset += prgSize

	chr := make([]byte, chrSize)
	copy(chr, data[offset:])

	cartridge := NewCartridge(prg, chr, mapperID, mirror, battery)

	logLoader.WithFields(logrusFields{
		"mapper":  mapperID,
		"prg":     header.NumPRG,
		"chr":     header.NumCHR,
		"mirror":  mirror,
		"battery": battery,
	}).Info("decoded iNES image")

	return cartridge, nil
}
