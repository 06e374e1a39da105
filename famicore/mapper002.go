package famicore

// Mapper002 (UxROM): 16KB switchable PRG bank at $8000, last bank fixed at
// $C000, CHR fixed.
type Mapper002 struct {
	*Cartridge
	prgBanks int
	prgBank1 int
	prgBank2 int
}

func NewMapper002(cartridge *Cartridge) Mapper {
	prgBanks := len(cartridge.PRG) / 0x4000
	return &Mapper002{
		Cartridge: cartridge,
		prgBanks:  prgBanks,
		prgBank1:  0,
		prgBank2:  prgBanks - 1,
	}
}

func (m *Mapper002) ReadPRG(address uint16) byte {
	switch {
	case address >= 0xC000:
		index := m.prgBank2*0x4000 + int(address-0xC000)
		return m.PRG[index]
	case address >= 0x8000:
		index := m.prgBank1*0x4000 + int(address-0x8000)
		return m.PRG[index]
	case address >= 0x6000:
		return m.SRAM[address-0x6000]
	}
	return 0
}

func (m *Mapper002) WritePRG(address uint16, value byte) {
	switch {
	case address >= 0x8000:
		m.prgBank1 = int(value) % m.prgBanks
	case address >= 0x6000:
		m.SRAM[address-0x6000] = value
	}
}

func (m *Mapper002) ReadCHR(address uint16) byte {
	return m.CHR[address]
}

func (m *Mapper002) WriteCHR(address uint16, value byte) {
	if m.HasChrRAM() {
		m.CHR[address] = value
	}
}

func (m *Mapper002) Mirror() byte {
	return m.Cartridge.Mirror
}

func (m *Mapper002) IRQPending() bool                { return false }
func (m *Mapper002) ClearIRQ()                       {}
func (m *Mapper002) NotifyPPUAddress(address uint16) {}
func (m *Mapper002) Step()                           {}
