// refs: https://www.nesdev.org/wiki/PPU_rendering
package famicore

import "image"

type PPU struct {
	console *Console

	Cycle    int    // 0-340
	ScanLine int    // 0-261, 0-239=visible, 240=post, 241-260=vblank, 261=pre
	Frame    uint64 // frame counter

	paletteData   [32]byte
	nametableData [2048]byte
	oamData       [256]byte
	front, back   *image.RGBA

	// PPU registers
	v uint16 // current vram address (15 bit)
	t uint16 // temporary vram address (15 bit)
	x byte   // fine x scroll (3 bit)
	w byte   // write toggle (1 bit)
	f byte   // even/odd frame flag (1 bit)

	// register holds the last value driven on the register bus; reads of
	// write-only registers return it (open bus).
	register byte

	// NMI flags
	nmiOccurred  bool
	nmiOutput    bool
	nmiPrevious  bool
	nmiDelay     byte
	nmiTriggered bool

	// background temporary variables
	nameTableByte      byte
	attributeTableByte byte
	lowTileByte        byte
	highTileByte       byte
	tileData           uint64

	// sprite temporary variables
	spriteCount      int
	spritePatterns   [8]uint32
	spritePositions  [8]byte
	spritePriorities [8]byte
	spriteIndexes    [8]byte

	// $2000 PPUCTRL
	flagNameTable       byte // 0: $2000; 1: $2400; 2: $2800; 3: $2C00
	flagIncrement       byte // 0: add 1; 1: add 32
	flagSpriteTable     byte // 0: $0000; 1: $1000; ignored in 8x16 mode
	flagBackgroundTable byte // 0: $0000; 1: $1000
	flagSpriteSize      byte // 0: 8x8; 1: 8x16
	flagMasterSlave     byte // 0: read EXT; 1: write EXT

	// $2001 PPUMASK
	flagGrayscale          byte // 0: color; 1: grayscale
	flagShowLeftBackground byte // 0: hide; 1: show
	flagShowLeftSprites    byte // 0: hide; 1: show
	flagShowBackground     byte // 0: hide; 1: show
	flagShowSprites        byte // 0: hide; 1: show
	flagRedTint            byte
	flagGreenTint          byte
	flagBlueTint           byte

	// $2002 PPUSTATUS
	flagSpriteZeroHit  byte
	flagSpriteOverflow byte

	// $2003 OAMADDR
	oamAddress byte

	// $2007 PPUDATA
	bufferedData byte // for buffered reads
}

func NewPPU(console *Console) *PPU {
	p := &PPU{console: console}
	p.front = image.NewRGBA(image.Rect(0, 0, 256, 240))
	p.back = image.NewRGBA(image.Rect(0, 0, 256, 240))
	p.Reset()
	return p
}

func (p *PPU) Reset() {
	p.Cycle = 340
	p.ScanLine = 240
	p.Frame = 0
	p.writeControl(0)
	p.writeMask(0)
	p.oamAddress = 0
}

func (p *PPU) Read(address uint16) byte {
	return p.console.Bus.ReadVRAM(address)
}

func (p *PPU) Write(address uint16, value byte) {
	p.console.Bus.WriteVRAM(address, value)
}

// frameCycle positions the current dot within the 262x341 frame grid, used
// by the MMC3's A12 edge filter.
func (p *PPU) frameCycle() uint32 {
	return uint32(p.ScanLine)*341 + uint32(p.Cycle)
}

// TakeNMI consumes the latched NMI edge, if any. The console transfers it to
// the CPU at the synchronization point after each instruction window.
func (p *PPU) TakeNMI() bool {
	if p.nmiTriggered {
		p.nmiTriggered = false
		return true
	}
	return false
}

func (p *PPU) readPalette(address uint16) byte {
	if address >= 16 && address%4 == 0 {
		address -= 16
	}
	return p.paletteData[address]
}

func (p *PPU) writePalette(address uint16, value byte) {
	if address >= 16 && address%4 == 0 {
		address -= 16
	}
	p.paletteData[address] = value
}

// ReadRegister services a CPU read of $2000-$2007. Write-only registers
// return the open-bus latch.
func (p *PPU) ReadRegister(address uint16) byte {
	switch address {
	case 0x2002:
		return p.readStatus()
	case 0x2004:
		return p.readOAMData()
	case 0x2007:
		return p.readData()
	}
	return p.register
}

func (p *PPU) WriteRegister(address uint16, value byte) {
	p.register = value
	switch address {
	case 0x2000:
		p.writeControl(value)
	case 0x2001:
		p.writeMask(value)
	case 0x2003:
		p.writeOAMAddress(value)
	case 0x2004:
		p.writeOAMData(value)
	case 0x2005:
		p.writeScroll(value)
	case 0x2006:
		p.writeAddress(value)
	case 0x2007:
		p.writeData(value)
	}
}

// $2000: PPUCTRL
func (p *PPU) writeControl(value byte) {
	p.flagNameTable = (value >> 0) & 3
	p.flagIncrement = (value >> 2) & 1
	p.flagSpriteTable = (value >> 3) & 1
	p.flagBackgroundTable = (value >> 4) & 1
	p.flagSpriteSize = (value >> 5) & 1
	p.flagMasterSlave = (value >> 6) & 1
	p.nmiOutput = (value>>7)&1 == 1
	p.nmiChange()
	p.t = (p.t & 0xF3FF) | ((uint16(value) & 0x03) << 10)
}

// controlValue reassembles the PPUCTRL flag bits. State serialization uses
// it so restoring control does not disturb t or the NMI edge detector the
// way a register write would.
func (p *PPU) controlValue() byte {
	var value byte
	value |= p.flagNameTable & 3
	value |= (p.flagIncrement & 1) << 2
	value |= (p.flagSpriteTable & 1) << 3
	value |= (p.flagBackgroundTable & 1) << 4
	value |= (p.flagSpriteSize & 1) << 5
	value |= (p.flagMasterSlave & 1) << 6
	if p.nmiOutput {
		value |= 1 << 7
	}
	return value
}

func (p *PPU) setControlValue(value byte) {
	p.flagNameTable = (value >> 0) & 3
	p.flagIncrement = (value >> 2) & 1
	p.flagSpriteTable = (value >> 3) & 1
	p.flagBackgroundTable = (value >> 4) & 1
	p.flagSpriteSize = (value >> 5) & 1
	p.flagMasterSlave = (value >> 6) & 1
	p.nmiOutput = (value>>7)&1 == 1
}

func (p *PPU) maskValue() byte {
	var value byte
	value |= p.flagGrayscale & 1
	value |= (p.flagShowLeftBackground & 1) << 1
	value |= (p.flagShowLeftSprites & 1) << 2
	value |= (p.flagShowBackground & 1) << 3
	value |= (p.flagShowSprites & 1) << 4
	value |= (p.flagRedTint & 1) << 5
	value |= (p.flagGreenTint & 1) << 6
	value |= (p.flagBlueTint & 1) << 7
	return value
}

// $2001: PPUMASK
func (p *PPU) writeMask(value byte) {
	p.flagGrayscale = (value >> 0) & 1
	p.flagShowLeftBackground = (value >> 1) & 1
	p.flagShowLeftSprites = (value >> 2) & 1
	p.flagShowBackground = (value >> 3) & 1
	p.flagShowSprites = (value >> 4) & 1
	p.flagRedTint = (value >> 5) & 1
	p.flagGreenTint = (value >> 6) & 1
	p.flagBlueTint = (value >> 7) & 1
}

// $2002: PPUSTATUS. Reading clears the vblank flag and the write toggle.
func (p *PPU) readStatus() byte {
	result := p.register & 0x1F
	result |= p.flagSpriteOverflow << 5
	result |= p.flagSpriteZeroHit << 6
	if p.nmiOccurred {
		result |= 1 << 7
	}
	p.nmiOccurred = false
	p.nmiChange()
	p.w = 0
	return result
}

// $2003: OAMADDR
func (p *PPU) writeOAMAddress(value byte) {
	p.oamAddress = value
}

// $2004: OAMDATA (read)
func (p *PPU) readOAMData() byte {
	return p.oamData[p.oamAddress]
}

// $2004: OAMDATA (write)
func (p *PPU) writeOAMData(value byte) {
	p.oamData[p.oamAddress] = value
	p.oamAddress++
}

// $2005: PPUSCROLL, double-write through the shared toggle
func (p *PPU) writeScroll(value byte) {
	if p.w == 0 {
		p.t = (p.t & 0xFFE0) | (uint16(value) >> 3)
		p.x = value & 0x07
		p.w = 1
	} else {
		p.t = (p.t & 0x8FFF) | ((uint16(value) & 0x07) << 12)
		p.t = (p.t & 0xFC1F) | ((uint16(value) & 0xF8) << 2)
		p.w = 0
	}
}

// $2006: PPUADDR, double-write through the shared toggle
func (p *PPU) writeAddress(value byte) {
	if p.w == 0 {
		p.t = (p.t & 0x80FF) | ((uint16(value) & 0x3F) << 8)
		p.w = 1
	} else {
		p.t = (p.t & 0xFF00) | uint16(value)
		p.v = p.t
		p.w = 0
		p.console.Mapper.NotifyPPUAddress(p.v & 0x3FFF)
	}
}

// $2007: PPUDATA (read), buffered below the palette range
func (p *PPU) readData() byte {
	value := p.Read(p.v)
	if p.v%0x4000 < 0x3F00 {
		buffered := p.bufferedData
		p.bufferedData = value
		value = buffered
	} else {
		p.bufferedData = p.Read(p.v - 0x1000)
	}
	if p.flagIncrement == 0 {
		p.v += 1
	} else {
		p.v += 32
	}
	return value
}

// $2007: PPUDATA (write)
func (p *PPU) writeData(value byte) {
	p.Write(p.v, value)
	if p.flagIncrement == 0 {
		p.v += 1
	} else {
		p.v += 32
	}
}

// NTSC Timing Helper Functions

func (p *PPU) incrementX() {
	if p.v&0x001F == 31 {
		p.v &= 0xFFE0
		p.v ^= 0x0400
	} else {
		p.v++
	}
}

func (p *PPU) incrementY() {
	if p.v&0x7000 != 0x7000 {
		p.v += 0x1000
	} else {
		p.v &= 0x8FFF
		y := (p.v & 0x03E0) >> 5
		switch y {
		case 29:
			y = 0
			p.v ^= 0x0800
		case 31:
			y = 0
		default:
			y++
		}
		p.v = (p.v & 0xFC1F) | (y << 5)
	}
}

func (p *PPU) copyX() {
	p.v = (p.v & 0xFBE0) | (p.t & 0x041F)
}

func (p *PPU) copyY() {
	p.v = (p.v & 0x841F) | (p.t & 0x7BE0)
}

func (p *PPU) nmiChange() {
	nmi := p.nmiOutput && p.nmiOccurred
	if nmi && !p.nmiPrevious {
		// delay the latch slightly so immediate $2002 reads behave
		p.nmiDelay = 15
	}
	p.nmiPrevious = nmi
}

func (p *PPU) setVerticalBlank() {
	p.front, p.back = p.back, p.front
	p.nmiOccurred = true
	p.nmiChange()
}

func (p *PPU) clearVerticalBlank() {
	p.nmiOccurred = false
	p.nmiChange()
}

func (p *PPU) fetchNameTableByte() {
	v := p.v
	address := 0x2000 | (v & 0x0FFF)
	p.nameTableByte = p.Read(address)
}

func (p *PPU) fetchAttributeTableByte() {
	v := p.v
	address := 0x23C0 | (v & 0x0C00) | ((v >> 4) & 0x38) | ((v >> 2) & 0x07)
	shift := ((v >> 4) & 4) | (v & 2)
	p.attributeTableByte = ((p.Read(address) >> shift) & 3) << 2
}

func (p *PPU) fetchLowTileByte() {
	fineY := (p.v >> 12) & 7
	table := p.flagBackgroundTable
	tile := p.nameTableByte
	address := 0x1000*uint16(table) + uint16(tile)*16 + fineY
	p.lowTileByte = p.Read(address)
}

func (p *PPU) fetchHighTileByte() {
	fineY := (p.v >> 12) & 7
	table := p.flagBackgroundTable
	tile := p.nameTableByte
	address := 0x1000*uint16(table) + uint16(tile)*16 + fineY
	p.highTileByte = p.Read(address + 8)
}

func (p *PPU) storeTileData() {
	var data uint32
	for i := 0; i < 8; i++ {
		a := p.attributeTableByte
		p1 := (p.lowTileByte & 0x80) >> 7
		p2 := (p.highTileByte & 0x80) >> 6
		p.lowTileByte <<= 1
		p.highTileByte <<= 1
		data <<= 4
		data |= uint32(a | p1 | p2)
	}
	p.tileData |= uint64(data)
}

func (p *PPU) fetchTileData() uint32 {
	return uint32(p.tileData >> 32)
}

func (p *PPU) backgroundPixel() byte {
	if p.flagShowBackground == 0 {
		return 0
	}
	data := p.fetchTileData() >> ((7 - p.x) * 4)
	return byte(data & 0x0F)
}

func (p *PPU) spritePixel() (byte, byte) {
	if p.flagShowSprites == 0 {
		return 0, 0
	}
	for i := 0; i < p.spriteCount; i++ {
		offset := (p.Cycle - 1) - int(p.spritePositions[i])
		if offset < 0 || offset > 7 {
			continue
		}
		offset = 7 - offset
		color := byte((p.spritePatterns[i] >> byte(offset*4)) & 0x0F)
		if color%4 == 0 {
			continue
		}
		return byte(i), color
	}
	return 0, 0
}

func (p *PPU) renderPixel() {
	x := p.Cycle - 1
	y := p.ScanLine
	background := p.backgroundPixel()
	i, sprite := p.spritePixel()
	if x < 8 && p.flagShowLeftBackground == 0 {
		background = 0
	}
	if x < 8 && p.flagShowLeftSprites == 0 {
		sprite = 0
	}
	b := background%4 != 0
	s := sprite%4 != 0
	var color byte
	switch {
	case !b && !s:
		color = 0
	case !b && s:
		color = sprite | 0x10
	case b && !s:
		color = background
	default:
		if p.spriteIndexes[i] == 0 && x < 255 {
			p.flagSpriteZeroHit = 1
		}
		if p.spritePriorities[i] == 0 {
			color = sprite | 0x10
		} else {
			color = background
		}
	}
	c := Palette[p.readPalette(uint16(color))%64]
	p.back.SetRGBA(x, y, c)
}

func (p *PPU) fetchSpritePattern(i, row int) uint32 {
	tile := p.oamData[i*4+1]
	attributes := p.oamData[i*4+2]
	var address uint16
	if p.flagSpriteSize == 0 {
		if attributes&0x80 == 0x80 {
			row = 7 - row
		}
		table := p.flagSpriteTable
		address = 0x1000*uint16(table) + uint16(tile)*16 + uint16(row)
	} else {
		if attributes&0x80 == 0x80 {
			row = 15 - row
		}
		table := tile & 1
		tile &= 0xFE
		if row > 7 {
			tile++
			row -= 8
		}
		address = 0x1000*uint16(table) + uint16(tile)*16 + uint16(row)
	}
	a := (attributes & 3) << 2
	lowTileByte := p.Read(address)
	highTileByte := p.Read(address + 8)
	var data uint32
	for j := 0; j < 8; j++ {
		var p1, p2 byte
		if attributes&0x40 == 0x40 {
			p1 = (lowTileByte & 1) << 0
			p2 = (highTileByte & 1) << 1
			lowTileByte >>= 1
			highTileByte >>= 1
		} else {
			p1 = (lowTileByte & 0x80) >> 7
			p2 = (highTileByte & 0x80) >> 6
			lowTileByte <<= 1
			highTileByte <<= 1
		}
		data <<= 4
		data |= uint32(a | p1 | p2)
	}
	return data
}

// evaluateSprites scans primary OAM for sprites covering the next scanline,
// copying the first eight matches in OAM order. Once eight are found the
// scan keeps going with the hardware's broken secondary pointer, which
// advances the byte index alongside the sprite index, so the overflow flag
// reproduces the real chip's false positives and negatives.
func (p *PPU) evaluateSprites() {
	var h int
	if p.flagSpriteSize == 0 {
		h = 8
	} else {
		h = 16
	}
	count := 0
	n := 0
	for ; n < 64; n++ {
		y := p.oamData[n*4+0]
		a := p.oamData[n*4+2]
		x := p.oamData[n*4+3]
		row := p.ScanLine - int(y)
		if row < 0 || row >= h {
			continue
		}
		p.spritePatterns[count] = p.fetchSpritePattern(n, row)
		p.spritePositions[count] = x
		p.spritePriorities[count] = (a >> 5) & 1
		p.spriteIndexes[count] = byte(n)
		count++
		if count == 8 {
			n++
			break
		}
	}
	p.spriteCount = count

	if count == 8 {
		m := 0
		for ; n < 64; n++ {
			y := p.oamData[n*4+m]
			row := p.ScanLine - int(y)
			if row >= 0 && row < h {
				p.flagSpriteOverflow = 1
				break
			}
			m = (m + 1) & 3
		}
	}
}

// tick updates Cycle, ScanLine and Frame counters, skipping the last dot of
// the pre-render line on odd frames when rendering is enabled.
func (p *PPU) tick() {
	if p.nmiDelay > 0 {
		p.nmiDelay--
		if p.nmiDelay == 0 && p.nmiOutput && p.nmiOccurred {
			p.nmiTriggered = true
		}
	}

	if p.flagShowBackground != 0 || p.flagShowSprites != 0 {
		if p.f == 1 && p.ScanLine == 261 && p.Cycle == 339 {
			p.Cycle = 0
			p.ScanLine = 0
			p.Frame++
			p.f ^= 1
			return
		}
	}
	p.Cycle++
	if p.Cycle > 340 {
		p.Cycle = 0
		p.ScanLine++
		if p.ScanLine > 261 {
			p.ScanLine = 0
			p.Frame++
			p.f ^= 1
		}
	}
}

// Step advances the state machine by one dot.
func (p *PPU) Step() {
	p.tick()

	renderingEnabled := p.flagShowBackground != 0 || p.flagShowSprites != 0
	preLine := p.ScanLine == 261
	visibleLine := p.ScanLine < 240
	renderLine := preLine || visibleLine
	preFetchCycle := p.Cycle >= 321 && p.Cycle <= 336
	visibleCycle := p.Cycle >= 1 && p.Cycle <= 256
	fetchCycle := preFetchCycle || visibleCycle

	// background logic
	if renderingEnabled {
		if visibleLine && visibleCycle {
			p.renderPixel()
		}
		if renderLine && fetchCycle {
			p.tileData <<= 4
			switch p.Cycle % 8 {
			case 1:
				p.fetchNameTableByte()
			case 3:
				p.fetchAttributeTableByte()
			case 5:
				p.fetchLowTileByte()
			case 7:
				p.fetchHighTileByte()
			case 0:
				p.storeTileData()
			}
		}
		if preLine && p.Cycle >= 280 && p.Cycle <= 304 {
			p.copyY()
		}
		if renderLine {
			if fetchCycle && p.Cycle%8 == 0 {
				p.incrementX()
			}
			if p.Cycle == 256 {
				p.incrementY()
			}
			if p.Cycle == 257 {
				p.copyX()
			}
		}
	}

	// sprite logic
	if renderingEnabled && p.Cycle == 257 {
		if visibleLine {
			p.evaluateSprites()
		} else {
			p.spriteCount = 0
		}
	}

	// vblank logic
	if p.ScanLine == 241 && p.Cycle == 1 {
		p.setVerticalBlank()
	}
	if preLine && p.Cycle == 1 {
		p.clearVerticalBlank()
		p.flagSpriteZeroHit = 0
		p.flagSpriteOverflow = 0
	}
}
