package famicore

// Nametable mirroring modes. Mappers may override the header value at
// runtime, so the PPU asks the mapper, not the cartridge.
const (
	MIRROR_HORIZONTAL = iota
	MIRROR_VERTICAL
	MIRROR_SINGLE_SCREEN_A
	MIRROR_SINGLE_SCREEN_B
	MIRROR_FOUR_SCREENS
)

// mirrorLookup maps (mode, logical nametable) to one of the physical
// nametables backing the 2KB of internal VRAM.
var mirrorLookup = [...][4]uint16{
	{0, 0, 1, 1},
	{0, 1, 0, 1},
	{0, 0, 0, 0},
	{1, 1, 1, 1},
	{0, 1, 2, 3},
}

// Cartridge holds the raw PRG/CHR storage plus the decoded header fields.
// PRG ROM is immutable after load; CHR may be RAM (when the image ships no
// CHR banks) and SRAM backs $6000-$7FFF for mappers that expose it.
type Cartridge struct {
	PRG      []byte
	CHR      []byte
	SRAM     []byte
	MapperID byte
	Mirror   byte
	Battery  bool

	chrRAM bool
}

// NewCartridge builds a cartridge from already-decoded header fields and raw
// bank data. An empty CHR sequence allocates 8KB of CHR RAM in its place.
func NewCartridge(prg, chr []byte, mapperID, mirror byte, battery bool) *Cartridge {
	chrRAM := false
	if len(chr) == 0 {
		chr = make([]byte, CHR_BLOCK_SIZE)
		chrRAM = true
	}
	return &Cartridge{
		PRG:      prg,
		CHR:      chr,
		SRAM:     make([]byte, 0x2000),
		MapperID: mapperID,
		Mirror:   mirror,
		Battery:  battery,
		chrRAM:   chrRAM,
	}
}

func (c *Cartridge) HasChrRAM() bool {
	return c.chrRAM
}
