// refs: https://www.nesdev.org/wiki/MMC3
package famicore

// a12Watcher detects rising edges on PPU address line 12, the signal the
// MMC3 derives its scanline clock from. A rise only counts after the line
// has been low for more than 10 PPU cycles, filtering the toggles inside a
// single tile fetch group.
type a12Watcher struct {
	lastCycle  uint32
	cyclesDown uint32
}

const ppuFrameCycles = 262 * 341

func (a *a12Watcher) rise(address uint16, frameCycle uint32) bool {
	rise := false

	if a.cyclesDown > 0 {
		if a.lastCycle > frameCycle {
			a.cyclesDown += (ppuFrameCycles - a.lastCycle) + frameCycle
		} else {
			a.cyclesDown += frameCycle - a.lastCycle
		}
	}

	if address&0x1000 == 0 {
		if a.cyclesDown == 0 {
			a.cyclesDown = 1
		}
	} else {
		if a.cyclesDown > 10 {
			rise = true
		}
		a.cyclesDown = 0
	}
	a.lastCycle = frameCycle

	return rise
}

// Mapper004 (MMC3): eight bank registers selected through $8000/$8001,
// PRG/CHR mode bits, and a scanline IRQ counter clocked by A12 rises.
type Mapper004 struct {
	*Cartridge
	console *Console

	register   byte
	registers  [8]byte
	prgMode    byte
	chrMode    byte
	prgOffsets [4]int
	chrOffsets [8]int
	mirror     byte

	watcher        a12Watcher
	irqReloadValue byte
	irqCounter     byte
	irqReload      bool
	irqEnabled     bool
	irqPending     bool
}

func NewMapper004(cartridge *Cartridge, console *Console) Mapper {
	m := &Mapper004{
		Cartridge: cartridge,
		console:   console,
		mirror:    cartridge.Mirror,
	}
	m.prgOffsets[0] = m.prgBankOffset(0)
	m.prgOffsets[1] = m.prgBankOffset(1)
	m.prgOffsets[2] = m.prgBankOffset(-2)
	m.prgOffsets[3] = m.prgBankOffset(-1)
	return m
}

func (m *Mapper004) ReadPRG(address uint16) byte {
	switch {
	case address >= 0x8000:
		address -= 0x8000
		bank := address / 0x2000
		offset := address % 0x2000
		return m.PRG[m.prgOffsets[bank]+int(offset)]
	case address >= 0x6000:
		return m.SRAM[address-0x6000]
	}
	return 0
}

func (m *Mapper004) WritePRG(address uint16, value byte) {
	switch {
	case address >= 0x8000:
		m.writeRegister(address, value)
	case address >= 0x6000:
		m.SRAM[address-0x6000] = value
	}
}

func (m *Mapper004) ReadCHR(address uint16) byte {
	bank := address / 0x0400
	offset := address % 0x0400
	return m.CHR[m.chrOffsets[bank]+int(offset)]
}

func (m *Mapper004) WriteCHR(address uint16, value byte) {
	if !m.HasChrRAM() {
		return
	}
	bank := address / 0x0400
	offset := address % 0x0400
	m.CHR[m.chrOffsets[bank]+int(offset)] = value
}

func (m *Mapper004) Mirror() byte {
	if m.Cartridge.Mirror == MIRROR_FOUR_SCREENS {
		return MIRROR_FOUR_SCREENS
	}
	return m.mirror
}

func (m *Mapper004) IRQPending() bool {
	return m.irqPending
}

func (m *Mapper004) ClearIRQ() {
	m.irqPending = false
}

// NotifyPPUAddress clocks the scanline counter on each filtered A12 rise:
// reload when the counter is zero or a reload is pending, decrement
// otherwise, and latch the IRQ when the counter lands on zero with the
// enable bit set.
func (m *Mapper004) NotifyPPUAddress(address uint16) {
	if !m.watcher.rise(address, m.console.PPU.frameCycle()) {
		return
	}
	if m.irqCounter == 0 || m.irqReload {
		m.irqCounter = m.irqReloadValue
	} else {
		m.irqCounter--
	}
	if m.irqCounter == 0 && m.irqEnabled {
		m.irqPending = true
	}
	m.irqReload = false
}

func (m *Mapper004) Step() {}

func (m *Mapper004) writeRegister(address uint16, value byte) {
	switch {
	case address <= 0x9FFF && address%2 == 0:
		m.writeBankSelect(value)
	case address <= 0x9FFF && address%2 == 1:
		m.writeBankData(value)
	case address <= 0xBFFF && address%2 == 0:
		m.writeMirror(value)
	case address <= 0xBFFF && address%2 == 1:
		// PRG RAM protect, not honored
	case address <= 0xDFFF && address%2 == 0:
		m.irqReloadValue = value
	case address <= 0xDFFF && address%2 == 1:
		m.irqCounter = 0
		m.irqReload = true
	case address <= 0xFFFF && address%2 == 0:
		m.irqEnabled = false
		m.irqPending = false
	case address <= 0xFFFF && address%2 == 1:
		m.irqEnabled = true
	}
}

func (m *Mapper004) writeBankSelect(value byte) {
	m.prgMode = (value >> 6) & 1
	m.chrMode = (value >> 7) & 1
	m.register = value & 7
	m.updateOffsets()
}

func (m *Mapper004) writeBankData(value byte) {
	m.registers[m.register] = value
	m.updateOffsets()
}

func (m *Mapper004) writeMirror(value byte) {
	switch value & 1 {
	case 0:
		m.mirror = MIRROR_VERTICAL
	case 1:
		m.mirror = MIRROR_HORIZONTAL
	}
}

// prgBankOffset works in the MMC3's 8KB units rather than the 16KB units of
// the shared helper.
func (m *Mapper004) prgBankOffset(index int) int {
	if index >= 0x80 {
		index -= 0x100
	}
	index %= len(m.PRG) / 0x2000
	offset := index * 0x2000
	if offset < 0 {
		offset += len(m.PRG)
	}
	return offset
}

func (m *Mapper004) chrBankOffset(index int) int {
	if index >= 0x80 {
		index -= 0x100
	}
	index %= len(m.CHR) / 0x0400
	offset := index * 0x0400
	if offset < 0 {
		offset += len(m.CHR)
	}
	return offset
}

func (m *Mapper004) updateOffsets() {
	switch m.prgMode {
	case 0:
		m.prgOffsets[0] = m.prgBankOffset(int(m.registers[6]))
		m.prgOffsets[1] = m.prgBankOffset(int(m.registers[7]))
		m.prgOffsets[2] = m.prgBankOffset(-2)
		m.prgOffsets[3] = m.prgBankOffset(-1)
	case 1:
		m.prgOffsets[0] = m.prgBankOffset(-2)
		m.prgOffsets[1] = m.prgBankOffset(int(m.registers[7]))
		m.prgOffsets[2] = m.prgBankOffset(int(m.registers[6]))
		m.prgOffsets[3] = m.prgBankOffset(-1)
	}
	switch m.chrMode {
	case 0:
		m.chrOffsets[0] = m.chrBankOffset(int(m.registers[0] & 0xFE))
		m.chrOffsets[1] = m.chrBankOffset(int(m.registers[0] | 0x01))
		m.chrOffsets[2] = m.chrBankOffset(int(m.registers[1] & 0xFE))
		m.chrOffsets[3] = m.chrBankOffset(int(m.registers[1] | 0x01))
		m.chrOffsets[4] = m.chrBankOffset(int(m.registers[2]))
		m.chrOffsets[5] = m.chrBankOffset(int(m.registers[3]))
		m.chrOffsets[6] = m.chrBankOffset(int(m.registers[4]))
		m.chrOffsets[7] = m.chrBankOffset(int(m.registers[5]))
	case 1:
		m.chrOffsets[0] = m.chrBankOffset(int(m.registers[2]))
		m.chrOffsets[1] = m.chrBankOffset(int(m.registers[3]))
		m.chrOffsets[2] = m.chrBankOffset(int(m.registers[4]))
		m.chrOffsets[3] = m.chrBankOffset(int(m.registers[5]))
		m.chrOffsets[4] = m.chrBankOffset(int(m.registers[0] & 0xFE))
		m.chrOffsets[5] = m.chrBankOffset(int(m.registers[0] | 0x01))
		m.chrOffsets[6] = m.chrBankOffset(int(m.registers[1] & 0xFE))
		m.chrOffsets[7] = m.chrBankOffset(int(m.registers[1] | 0x01))
	}
}
