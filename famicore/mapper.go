package famicore

import "fmt"

// Mapper is the cartridge banking/IRQ unit. ReadPRG/WritePRG cover the CPU
// view of cartridge space ($6000-$FFFF); ReadCHR/WriteCHR cover the PPU
// pattern-table space ($0000-$1FFF). Mirror may override the header value.
// NotifyPPUAddress is fed every PPU bus address so variants keyed off PPU
// activity (MMC3 A12 edges, MMC2 tile-fetch latches) can observe it. Step is
// clocked once per CPU cycle.
type Mapper interface {
	ReadPRG(address uint16) byte
	WritePRG(address uint16, value byte)
	ReadCHR(address uint16) byte
	WriteCHR(address uint16, value byte)
	Mirror() byte
	IRQPending() bool
	ClearIRQ()
	NotifyPPUAddress(address uint16)
	Step()
}

// NewMapper selects the banking strategy for the loaded cartridge. Unknown
// ids fail here, before any emulation starts.
func NewMapper(console *Console) (Mapper, error) {
	cartridge := console.Cartridge
	switch cartridge.MapperID {
	case 0:
		return NewMapper000(cartridge), nil
	case 1:
		return NewMapper001(cartridge), nil
	case 2:
		return NewMapper002(cartridge), nil
	case 3:
		return NewMapper003(cartridge), nil
	case 4:
		return NewMapper004(cartridge, console), nil
	case 9:
		return NewMapper009(cartridge), nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnsupportedMapper, cartridge.MapperID)
}

// prgBankOffset resolves a possibly-negative 16KB bank index into a byte
// offset, wrapping to the PRG size.
func prgBankOffset(cartridge *Cartridge, index int) int {
	if index >= 0x80 {
		index -= 0x100
	}
	index %= len(cartridge.PRG) / 0x4000
	offset := index * 0x4000
	if offset < 0 {
		offset += len(cartridge.PRG)
	}
	return offset
}
