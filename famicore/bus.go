package famicore

// Bus routes every CPU and PPU address access. It owns the 2KB of internal
// work RAM and the open-bus latch; everything else is reached through the
// console's components.
type Bus struct {
	console *Console
	WRAM    [2048]byte

	// openBus remembers the last value driven on the CPU data bus so reads
	// of unmapped addresses return it instead of failing.
	openBus byte
}

func NewBus(console *Console) *Bus {
	return &Bus{console: console}
}

// Read resolves one CPU address. $0000-$1FFF mirrors the 2KB of work RAM,
// $2000-$3FFF mirrors the eight PPU registers, $4000-$401F holds APU and
// controller ports, and everything from $6000 up belongs to the mapper.
func (b *Bus) Read(address uint16) byte {
	var value byte
	switch {
	case address < 0x2000:
		value = b.WRAM[address&0x07FF]
	case address < 0x4000:
		value = b.console.PPU.ReadRegister(0x2000 + address%8)
	case address == 0x4015:
		value = b.console.APU.readStatus()
	case address == 0x4016:
		value = b.console.Controller1.Read() | b.openBus&0xE0
	case address == 0x4017:
		value = b.console.Controller2.Read() | b.openBus&0xE0
	case address < 0x6000:
		// write-only APU/expansion space
		value = b.openBus
	default:
		value = b.console.Mapper.ReadPRG(address)
	}
	b.openBus = value
	return value
}

func (b *Bus) Write(address uint16, value byte) {
	b.openBus = value
	switch {
	case address < 0x2000:
		b.WRAM[address&0x07FF] = value
	case address < 0x4000:
		b.console.PPU.WriteRegister(0x2000+address%8, value)
	case address < 0x4014:
		b.console.APU.writeRegister(address, value)
	case address == 0x4014:
		b.writeDMA(value)
	case address == 0x4015:
		b.console.APU.writeRegister(address, value)
	case address == 0x4016:
		b.console.Controller1.Write(value)
		b.console.Controller2.Write(value)
	case address == 0x4017:
		b.console.APU.writeRegister(address, value)
	case address < 0x6000:
		// write-only expansion space
	default:
		b.console.Mapper.WritePRG(address, value)
	}
}

// Peek reads one CPU address without side effects: no open-bus update, no
// controller shift, no PPU status clear. Debug accessors use it so
// inspecting state cannot perturb emulation.
func (b *Bus) Peek(address uint16) byte {
	switch {
	case address < 0x2000:
		return b.WRAM[address&0x07FF]
	case address >= 0x6000:
		return b.console.Mapper.ReadPRG(address)
	}
	return b.openBus
}

// writeDMA copies one 256-byte CPU page into OAM. The copy halts the CPU for
// 513 cycles, 514 when the write lands on an odd cycle.
func (b *Bus) writeDMA(value byte) {
	cpu := b.console.CPU
	ppu := b.console.PPU
	address := uint16(value) << 8
	for i := 0; i < 256; i++ {
		ppu.writeOAMData(b.Read(address))
		address++
	}
	cpu.stall += 513
	if cpu.Cycles%2 == 1 {
		cpu.stall++
	}
}

// ReadVRAM resolves one PPU address: pattern tables through the mapper,
// nametables in internal VRAM with cartridge-controlled mirroring, palette
// RAM above $3F00. The mapper observes every address for its A12/latch
// logic.
func (b *Bus) ReadVRAM(address uint16) byte {
	address %= 0x4000
	switch {
	case address < 0x2000:
		b.console.Mapper.NotifyPPUAddress(address)
		return b.console.Mapper.ReadCHR(address)
	case address < 0x3F00:
		mode := b.console.Mapper.Mirror()
		return b.console.PPU.nametableData[mirrorAddress(mode, address)%2048]
	default:
		return b.console.PPU.readPalette(address % 32)
	}
}

func (b *Bus) WriteVRAM(address uint16, value byte) {
	address %= 0x4000
	switch {
	case address < 0x2000:
		b.console.Mapper.NotifyPPUAddress(address)
		b.console.Mapper.WriteCHR(address, value)
	case address < 0x3F00:
		mode := b.console.Mapper.Mirror()
		b.console.PPU.nametableData[mirrorAddress(mode, address)%2048] = value
	default:
		b.console.PPU.writePalette(address%32, value)
	}
}

func mirrorAddress(mode byte, address uint16) uint16 {
	address = (address - 0x2000) % 0x1000
	table := address / 0x0400
	offset := address % 0x0400
	return mirrorLookup[mode][table]*0x0400 + offset
}
