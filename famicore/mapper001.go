// refs: https://www.nesdev.org/wiki/MMC1
package famicore

// Mapper001 (MMC1): registers are programmed through a serial shift
// register, one bit per write, committing on the fifth write. Covers
// mirroring control, two 4KB CHR windows and 16KB/32KB PRG modes.
type Mapper001 struct {
	*Cartridge
	shiftRegister byte
	control       byte
	prgMode       byte
	chrMode       byte
	prgBank       byte
	chrBank0      byte
	chrBank1      byte
	prgOffsets    [2]int
	chrOffsets    [2]int
	mirror        byte
}

func NewMapper001(cartridge *Cartridge) Mapper {
	m := &Mapper001{
		Cartridge:     cartridge,
		shiftRegister: 0x10,
		prgMode:       3,
		mirror:        cartridge.Mirror,
	}
	m.updateOffsets()
	return m
}

func (m *Mapper001) ReadPRG(address uint16) byte {
	switch {
	case address >= 0x8000:
		address -= 0x8000
		bank := address / 0x4000
		offset := address % 0x4000
		return m.PRG[m.prgOffsets[bank]+int(offset)]
	case address >= 0x6000:
		return m.SRAM[address-0x6000]
	}
	return 0
}

func (m *Mapper001) WritePRG(address uint16, value byte) {
	switch {
	case address >= 0x8000:
		m.loadRegister(address, value)
	case address >= 0x6000:
		m.SRAM[address-0x6000] = value
	}
}

func (m *Mapper001) ReadCHR(address uint16) byte {
	bank := address / 0x1000
	offset := address % 0x1000
	return m.CHR[m.chrOffsets[bank]+int(offset)]
}

func (m *Mapper001) WriteCHR(address uint16, value byte) {
	if !m.HasChrRAM() {
		return
	}
	bank := address / 0x1000
	offset := address % 0x1000
	m.CHR[m.chrOffsets[bank]+int(offset)] = value
}

func (m *Mapper001) Mirror() byte {
	return m.mirror
}

func (m *Mapper001) IRQPending() bool                { return false }
func (m *Mapper001) ClearIRQ()                       {}
func (m *Mapper001) NotifyPPUAddress(address uint16) {}
func (m *Mapper001) Step()                           {}

// loadRegister shifts one bit into the serial register. Bit 7 set resets the
// register and forces PRG mode 3; the fifth write commits to the register
// selected by the address.
func (m *Mapper001) loadRegister(address uint16, value byte) {
	if value&0x80 == 0x80 {
		m.shiftRegister = 0x10
		m.writeControl(m.control | 0x0C)
		m.updateOffsets()
		return
	}
	complete := m.shiftRegister&1 == 1
	m.shiftRegister >>= 1
	m.shiftRegister |= (value & 1) << 4
	if complete {
		m.writeRegister(address, m.shiftRegister)
		m.shiftRegister = 0x10
		m.updateOffsets()
	}
}

func (m *Mapper001) writeRegister(address uint16, value byte) {
	switch {
	case address <= 0x9FFF:
		m.writeControl(value)
	case address <= 0xBFFF:
		m.chrBank0 = value
	case address <= 0xDFFF:
		m.chrBank1 = value
	default:
		m.prgBank = value & 0x0F
	}
}

func (m *Mapper001) writeControl(value byte) {
	m.control = value
	m.chrMode = (value >> 4) & 1
	m.prgMode = (value >> 2) & 3
	switch value & 3 {
	case 0:
		m.mirror = MIRROR_SINGLE_SCREEN_A
	case 1:
		m.mirror = MIRROR_SINGLE_SCREEN_B
	case 2:
		m.mirror = MIRROR_VERTICAL
	case 3:
		m.mirror = MIRROR_HORIZONTAL
	}
}

func (m *Mapper001) chrBankOffset(index int) int {
	if index >= 0x80 {
		index -= 0x100
	}
	index %= len(m.CHR) / 0x1000
	offset := index * 0x1000
	if offset < 0 {
		offset += len(m.CHR)
	}
	return offset
}

func (m *Mapper001) updateOffsets() {
	switch m.prgMode {
	case 0, 1:
		m.prgOffsets[0] = prgBankOffset(m.Cartridge, int(m.prgBank&0xFE))
		m.prgOffsets[1] = prgBankOffset(m.Cartridge, int(m.prgBank|0x01))
	case 2:
		m.prgOffsets[0] = 0
		m.prgOffsets[1] = prgBankOffset(m.Cartridge, int(m.prgBank))
	case 3:
		m.prgOffsets[0] = prgBankOffset(m.Cartridge, int(m.prgBank))
		m.prgOffsets[1] = prgBankOffset(m.Cartridge, -1)
	}
	switch m.chrMode {
	case 0:
		m.chrOffsets[0] = m.chrBankOffset(int(m.chrBank0 & 0xFE))
		m.chrOffsets[1] = m.chrBankOffset(int(m.chrBank0 | 0x01))
	case 1:
		m.chrOffsets[0] = m.chrBankOffset(int(m.chrBank0))
		m.chrOffsets[1] = m.chrBankOffset(int(m.chrBank1))
	}
}
