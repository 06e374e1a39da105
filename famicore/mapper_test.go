package famicore

import (
	"errors"
	"testing"
)

// mapperConsole builds a console around a cartridge with the given mapper.
// Every 16KB PRG bank and 4KB CHR bank is filled with its own index so bank
// switches are observable.
func mapperConsole(t *testing.T, mapperID byte, prgBanks, chrBanks int) *Console {
	t.Helper()
	prg := make([]byte, prgBanks*0x4000)
	for i := range prg {
		prg[i] = byte(i / 0x4000)
	}
	// reset vector in the last bank
	prg[len(prg)-4] = 0x00
	prg[len(prg)-3] = 0x80
	chr := make([]byte, chrBanks*0x1000)
	for i := range chr {
		chr[i] = byte(i / 0x1000)
	}
	console, err := NewConsoleFromCartridge(NewCartridge(prg, chr, mapperID, MIRROR_VERTICAL, false))
	if err != nil {
		t.Fatal(err)
	}
	return console
}

func TestUnsupportedMapper(t *testing.T) {
	cartridge := testCartridge(nil)
	cartridge.MapperID = 7
	_, err := NewConsoleFromCartridge(cartridge)
	if !errors.Is(err, ErrUnsupportedMapper) {
		t.Errorf("got %v, want ErrUnsupportedMapper", err)
	}
}

func TestMapper000Mirroring(t *testing.T) {
	// 16KB PRG appears at both $8000 and $C000.
	console := mapperConsole(t, 0, 1, 2)
	m := console.Mapper

	if got, want := m.ReadPRG(0x8123), m.ReadPRG(0xC123); got != want {
		t.Errorf("16KB PRG not mirrored: $%02X != $%02X", got, want)
	}

	// SRAM lives at $6000.
	m.WritePRG(0x6010, 0x99)
	if got := m.ReadPRG(0x6010); got != 0x99 {
		t.Errorf("got $%02X, want $99", got)
	}
}

func TestMapper001SerialLoad(t *testing.T) {
	console := mapperConsole(t, 1, 8, 2)
	m := console.Mapper

	// Serially load control = $0C: PRG mode 3, 16KB switch at $8000 with
	// the last bank fixed at $C000.
	writeSerial := func(address uint16, value byte) {
		for i := 0; i < 5; i++ {
			m.WritePRG(address, value>>i)
		}
	}
	writeSerial(0x8000, 0x0C)
	writeSerial(0xE000, 3)

	if got := m.ReadPRG(0x8000); got != 3 {
		t.Errorf("switchable bank: got $%02X, want $03", got)
	}
	if got := m.ReadPRG(0xC000); got != 7 {
		t.Errorf("fixed bank: got $%02X, want $07", got)
	}
}

func TestMapper001ResetBit(t *testing.T) {
	console := mapperConsole(t, 1, 8, 2)
	m := console.Mapper

	// Two partial writes, then a reset: the next five writes must load
	// cleanly.
	m.WritePRG(0xE000, 1)
	m.WritePRG(0xE000, 0)
	m.WritePRG(0xE000, 0x80)
	for i := 0; i < 5; i++ {
		m.WritePRG(0xE000, 2>>i)
	}
	if got := m.ReadPRG(0x8000); got != 2 {
		t.Errorf("got bank $%02X, want $02", got)
	}
}

func TestMapper002BankSwitch(t *testing.T) {
	console := mapperConsole(t, 2, 4, 2)
	m := console.Mapper

	if got := m.ReadPRG(0xC000); got != 3 {
		t.Fatalf("fixed bank: got $%02X, want $03", got)
	}
	m.WritePRG(0x8000, 2)
	if got := m.ReadPRG(0x8000); got != 2 {
		t.Errorf("switchable bank: got $%02X, want $02", got)
	}
	if got := m.ReadPRG(0xC000); got != 3 {
		t.Errorf("fixed bank moved: got $%02X, want $03", got)
	}
}

func TestMapper003CHRSwitch(t *testing.T) {
	console := mapperConsole(t, 3, 2, 8) // four 8KB CHR banks
	m := console.Mapper

	if got := m.ReadCHR(0x0000); got != 0 {
		t.Fatalf("got $%02X, want $00", got)
	}
	m.WritePRG(0x8000, 2)
	if got := m.ReadCHR(0x0000); got != 4 {
		t.Errorf("after switch: got $%02X, want $04", got)
	}
}

func TestMapper004IRQ(t *testing.T) {
	console := mapperConsole(t, 4, 8, 8)
	m := console.Mapper
	ppu := console.PPU

	m.WritePRG(0xC000, 2) // reload value
	m.WritePRG(0xC001, 0) // force reload on next clock
	m.WritePRG(0xE001, 0) // enable IRQ

	// Emulate filtered A12 rises: hold the line low for more than 10 PPU
	// cycles, then fetch from the $1000 pattern table.
	clockA12 := func() {
		m.NotifyPPUAddress(0x0000)
		for i := 0; i < 20; i++ {
			ppu.Step()
		}
		m.NotifyPPUAddress(0x1000)
	}

	clockA12() // reload: counter = 2
	if m.IRQPending() {
		t.Fatal("IRQ fired on reload")
	}
	clockA12() // counter = 1
	if m.IRQPending() {
		t.Fatal("IRQ fired early")
	}
	clockA12() // counter = 0: IRQ
	if !m.IRQPending() {
		t.Fatal("IRQ not raised when the counter reached zero")
	}

	m.ClearIRQ()
	if m.IRQPending() {
		t.Error("ClearIRQ did not lower the line")
	}
}

func TestMapper004IRQDisable(t *testing.T) {
	console := mapperConsole(t, 4, 8, 8)
	m := console.Mapper
	ppu := console.PPU

	m.WritePRG(0xC000, 1)
	m.WritePRG(0xC001, 0)
	m.WritePRG(0xE000, 0) // IRQs disabled

	clockA12 := func() {
		m.NotifyPPUAddress(0x0000)
		for i := 0; i < 20; i++ {
			ppu.Step()
		}
		m.NotifyPPUAddress(0x1000)
	}
	for i := 0; i < 4; i++ {
		clockA12()
	}
	if m.IRQPending() {
		t.Error("IRQ raised while disabled")
	}
}

func TestMapper004A12Filter(t *testing.T) {
	console := mapperConsole(t, 4, 8, 8)
	m := console.Mapper

	m.WritePRG(0xC000, 1)
	m.WritePRG(0xC001, 0)
	m.WritePRG(0xE001, 0)

	// Rapid toggles with no PPU time in between stay below the 10-cycle
	// filter and must not clock the counter.
	for i := 0; i < 16; i++ {
		m.NotifyPPUAddress(0x0000)
		m.NotifyPPUAddress(0x1000)
	}
	if m.IRQPending() {
		t.Error("unfiltered A12 toggles clocked the IRQ counter")
	}
}

func TestMapper004BankSwitch(t *testing.T) {
	console := mapperConsole(t, 4, 8, 8)
	m := console.Mapper

	// Select R6 and point it at 8KB bank 4 (PRG fill marks 16KB banks, so
	// 8KB bank 4 carries marker 2).
	m.WritePRG(0x8000, 6)
	m.WritePRG(0x8001, 4)
	if got := m.ReadPRG(0x8000); got != 2 {
		t.Errorf("got marker $%02X, want $02", got)
	}

	// Last two 8KB banks stay fixed.
	if got := m.ReadPRG(0xE000); got != 7 {
		t.Errorf("fixed bank: got marker $%02X, want $07", got)
	}
}

func TestMapper009Latches(t *testing.T) {
	console := mapperConsole(t, 9, 8, 8)
	m := console.Mapper

	m.WritePRG(0xD000, 1) // $1000 window, $FD bank
	m.WritePRG(0xE000, 2) // $1000 window, $FE bank

	// Latch starts at $FD.
	if got := m.ReadCHR(0x1000); got != 1 {
		t.Fatalf("got bank marker $%02X, want $01", got)
	}

	// Reading a latch tile returns data from the current bank, then flips
	// the latch for subsequent fetches.
	if got := m.ReadCHR(0x1FE8); got != 1 {
		t.Errorf("latch fetch: got marker $%02X, want $01 (old bank)", got)
	}
	if got := m.ReadCHR(0x1000); got != 2 {
		t.Errorf("after latch flip: got marker $%02X, want $02", got)
	}

	// And back to $FD.
	m.ReadCHR(0x1FD8)
	if got := m.ReadCHR(0x1000); got != 1 {
		t.Errorf("after flip back: got marker $%02X, want $01", got)
	}
}

func TestMapper009FixedPRG(t *testing.T) {
	console := mapperConsole(t, 9, 8, 8) // sixteen 8KB PRG banks
	m := console.Mapper

	m.WritePRG(0xA000, 5)
	if got := m.ReadPRG(0x8000); got != 5/2 {
		t.Errorf("switchable bank: got marker $%02X, want $02", got)
	}
	// $A000 onward maps the last three 8KB banks.
	if got := m.ReadPRG(0xFFF0); got != 7 {
		t.Errorf("fixed tail: got marker $%02X, want $07", got)
	}
}

func TestMapperMirrorControl(t *testing.T) {
	console := mapperConsole(t, 1, 8, 2)
	m := console.Mapper

	// MMC1 control bits 0-1 select mirroring.
	writeSerial := func(address uint16, value byte) {
		for i := 0; i < 5; i++ {
			m.WritePRG(address, value>>i)
		}
	}
	writeSerial(0x8000, 0x03) // horizontal
	if got := m.Mirror(); got != MIRROR_HORIZONTAL {
		t.Errorf("got mirror %d, want horizontal", got)
	}
	writeSerial(0x8000, 0x02) // vertical
	if got := m.Mirror(); got != MIRROR_VERTICAL {
		t.Errorf("got mirror %d, want vertical", got)
	}
}
