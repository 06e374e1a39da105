// refs: https://www.nesdev.org/wiki/MMC2
package famicore

// Mapper009 (MMC2): one 8KB switchable PRG bank at $8000 over three fixed
// banks, and two 4KB CHR windows whose bank choice flips between an $FD and
// an $FE register when the PPU fetches the magic latch tiles. The latch
// updates after the fetch that triggered it.
type Mapper009 struct {
	*Cartridge
	prgBank  int
	prgFixed int

	chrFD [2]byte
	chrFE [2]byte
	latch [2]byte

	mirror byte
}

func NewMapper009(cartridge *Cartridge) Mapper {
	prgBanks := len(cartridge.PRG) / 0x2000
	return &Mapper009{
		Cartridge: cartridge,
		prgFixed:  prgBanks - 3,
		latch:     [2]byte{0xFD, 0xFD},
		mirror:    cartridge.Mirror,
	}
}

func (m *Mapper009) ReadPRG(address uint16) byte {
	switch {
	case address >= 0xA000:
		index := (m.prgFixed+int(address-0xA000)/0x2000)*0x2000 + int(address-0xA000)%0x2000
		return m.PRG[index]
	case address >= 0x8000:
		return m.PRG[m.prgBank*0x2000+int(address-0x8000)]
	case address >= 0x6000:
		return m.SRAM[address-0x6000]
	}
	return 0
}

func (m *Mapper009) WritePRG(address uint16, value byte) {
	switch {
	case address >= 0xF000:
		switch value & 1 {
		case 0:
			m.mirror = MIRROR_VERTICAL
		case 1:
			m.mirror = MIRROR_HORIZONTAL
		}
	case address >= 0xE000:
		m.chrFE[1] = value & 0x1F
	case address >= 0xD000:
		m.chrFD[1] = value & 0x1F
	case address >= 0xC000:
		m.chrFE[0] = value & 0x1F
	case address >= 0xB000:
		m.chrFD[0] = value & 0x1F
	case address >= 0xA000:
		m.prgBank = int(value&0x0F) % (len(m.PRG) / 0x2000)
	case address >= 0x6000:
		m.SRAM[address-0x6000] = value
	}
}

func (m *Mapper009) ReadCHR(address uint16) byte {
	window := address >> 12
	var bank byte
	if m.latch[window] == 0xFD {
		bank = m.chrFD[window]
	} else {
		bank = m.chrFE[window]
	}
	value := m.CHR[int(bank)*0x1000+int(address&0x0FFF)]

	switch {
	case address == 0x0FD8:
		m.latch[0] = 0xFD
	case address == 0x0FE8:
		m.latch[0] = 0xFE
	case address >= 0x1FD8 && address <= 0x1FDF:
		m.latch[1] = 0xFD
	case address >= 0x1FE8 && address <= 0x1FEF:
		m.latch[1] = 0xFE
	}
	return value
}

func (m *Mapper009) WriteCHR(address uint16, value byte) {
	if m.HasChrRAM() {
		m.CHR[address&0x1FFF] = value
	}
}

func (m *Mapper009) Mirror() byte {
	return m.mirror
}

func (m *Mapper009) IRQPending() bool                { return false }
func (m *Mapper009) ClearIRQ()                       {}
func (m *Mapper009) NotifyPPUAddress(address uint16) {}
func (m *Mapper009) Step()                           {}
