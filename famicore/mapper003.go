package famicore

// Mapper003 (CNROM): 8KB switchable CHR bank, PRG fixed.
type Mapper003 struct {
	*Cartridge
	chrBank int
	prgMask uint16
}

func NewMapper003(cartridge *Cartridge) Mapper {
	mask := uint16(0x7FFF)
	if len(cartridge.PRG) <= 0x4000 {
		mask = 0x3FFF
	}
	return &Mapper003{Cartridge: cartridge, prgMask: mask}
}

func (m *Mapper003) ReadPRG(address uint16) byte {
	switch {
	case address >= 0x8000:
		return m.PRG[address&m.prgMask]
	case address >= 0x6000:
		return m.SRAM[address-0x6000]
	}
	return 0
}

func (m *Mapper003) WritePRG(address uint16, value byte) {
	switch {
	case address >= 0x8000:
		m.chrBank = int(value) % (len(m.CHR) / 0x2000)
	case address >= 0x6000:
		m.SRAM[address-0x6000] = value
	}
}

func (m *Mapper003) ReadCHR(address uint16) byte {
	return m.CHR[m.chrBank*0x2000+int(address)]
}

func (m *Mapper003) WriteCHR(address uint16, value byte) {
	if m.HasChrRAM() {
		m.CHR[m.chrBank*0x2000+int(address)] = value
	}
}

func (m *Mapper003) Mirror() byte {
	return m.Cartridge.Mirror
}

func (m *Mapper003) IRQPending() bool                { return false }
func (m *Mapper003) ClearIRQ()                       {}
func (m *Mapper003) NotifyPPUAddress(address uint16) {}
func (m *Mapper003) Step()                           {}
