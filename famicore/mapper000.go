package famicore

// Mapper000 (NROM): fixed mapping, no banking. 16KB images mirror the single
// PRG bank at both $8000 and $C000.
type Mapper000 struct {
	*Cartridge
	prgMask uint16
}

func NewMapper000(cartridge *Cartridge) Mapper {
	mask := uint16(0x7FFF)
	if len(cartridge.PRG) <= 0x4000 {
		mask = 0x3FFF
	}
	return &Mapper000{Cartridge: cartridge, prgMask: mask}
}

func (m *Mapper000) ReadPRG(address uint16) byte {
	switch {
	case address >= 0x8000:
		return m.PRG[address&m.prgMask]
	case address >= 0x6000:
		return m.SRAM[address-0x6000]
	}
	return 0
}

func (m *Mapper000) WritePRG(address uint16, value byte) {
	if address >= 0x6000 && address < 0x8000 {
		m.SRAM[address-0x6000] = value
	}
}

func (m *Mapper000) ReadCHR(address uint16) byte {
	return m.CHR[address]
}

func (m *Mapper000) WriteCHR(address uint16, value byte) {
	if m.HasChrRAM() {
		m.CHR[address] = value
	}
}

func (m *Mapper000) Mirror() byte {
	return m.Cartridge.Mirror
}

func (m *Mapper000) IRQPending() bool                { return false }
func (m *Mapper000) ClearIRQ()                       {}
func (m *Mapper000) NotifyPPUAddress(address uint16) {}
func (m *Mapper000) Step()                           {}
