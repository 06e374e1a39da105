package famicore

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSaveStateRoundTrip(t *testing.T) {
	program := []byte{
		0xA9, 0x1E, // LDA #$1E
		0x8D, 0x01, 0x20, // STA $2001: enable rendering
		0xE6, 0x10, // INC $10
		0x4C, 0x05, 0x80, // JMP back to the INC
	}
	cartridge := testCartridge(program)
	original, err := NewConsoleFromCartridge(cartridge)
	if err != nil {
		t.Fatal(err)
	}

	// Put some color in the palette so the frames are not uniform.
	original.PPU.WriteRegister(0x2006, 0x3F)
	original.PPU.WriteRegister(0x2006, 0x00)
	for _, v := range []byte{0x0F, 0x16, 0x2A, 0x12} {
		original.PPU.WriteRegister(0x2007, v)
	}
	for i := 0; i < 3; i++ {
		original.StepFrame()
	}

	var state bytes.Buffer
	if err := original.SaveState(&state); err != nil {
		t.Fatal(err)
	}

	restored, err := NewConsoleFromCartridge(testCartridge(program))
	if err != nil {
		t.Fatal(err)
	}
	if err := restored.LoadState(bytes.NewReader(state.Bytes())); err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(original.CPUSnapshot(), restored.CPUSnapshot()); diff != "" {
		t.Fatalf("CPU state mismatch (-original +restored):\n%s", diff)
	}

	// Running one more frame on both consoles must produce identical
	// framebuffers and identical CPU state.
	original.StepFrame()
	restored.StepFrame()

	if diff := cmp.Diff(original.CPUSnapshot(), restored.CPUSnapshot()); diff != "" {
		t.Errorf("CPU diverged after restore (-original +restored):\n%s", diff)
	}
	if !bytes.Equal(original.Buffer().Pix, restored.Buffer().Pix) {
		t.Error("framebuffers differ after restore")
	}
}

func TestSaveStateRAM(t *testing.T) {
	console := testConsole(t, nil)
	console.Bus.Write(0x0123, 0xAB)
	console.Mapper.WritePRG(0x6000, 0xCD) // SRAM

	var state bytes.Buffer
	if err := console.SaveState(&state); err != nil {
		t.Fatal(err)
	}

	restored := testConsole(t, nil)
	if err := restored.LoadState(&state); err != nil {
		t.Fatal(err)
	}
	if got := restored.Bus.Read(0x0123); got != 0xAB {
		t.Errorf("got RAM $%02X, want $AB", got)
	}
	if got := restored.Mapper.ReadPRG(0x6000); got != 0xCD {
		t.Errorf("got SRAM $%02X, want $CD", got)
	}
}

func TestSaveStateMapperBanks(t *testing.T) {
	original := mapperConsole(t, 1, 8, 2)
	m := original.Mapper
	writeSerial := func(address uint16, value byte) {
		for i := 0; i < 5; i++ {
			m.WritePRG(address, value>>i)
		}
	}
	writeSerial(0x8000, 0x0C)
	writeSerial(0xE000, 3)

	var state bytes.Buffer
	if err := original.SaveState(&state); err != nil {
		t.Fatal(err)
	}

	restored := mapperConsole(t, 1, 8, 2)
	if err := restored.LoadState(&state); err != nil {
		t.Fatal(err)
	}
	if got := restored.Mapper.ReadPRG(0x8000); got != 3 {
		t.Errorf("got bank marker $%02X, want $03; banking state lost", got)
	}
}

func TestSaveStateMapper001PowerOn(t *testing.T) {
	// A state saved before the game's first $8000+ write must restore the
	// power-on banking: last bank fixed at $C000, mirroring from the header.
	original := mapperConsole(t, 1, 8, 2)

	var state bytes.Buffer
	if err := original.SaveState(&state); err != nil {
		t.Fatal(err)
	}

	restored := mapperConsole(t, 1, 8, 2)
	if err := restored.LoadState(&state); err != nil {
		t.Fatal(err)
	}
	if got := restored.Mapper.ReadPRG(0xC000); got != 7 {
		t.Errorf("got bank marker $%02X at $C000, want $07 (fixed last bank)", got)
	}
	if got := restored.Mapper.Mirror(); got != MIRROR_VERTICAL {
		t.Errorf("got mirror %d, want %d (header value)", got, MIRROR_VERTICAL)
	}
}

func TestSaveStateChrRAM(t *testing.T) {
	console := testConsole(t, nil)
	console.Cartridge.CHR = make([]byte, 0x2000) // convert to CHR RAM
	console.Cartridge.chrRAM = true
	console.Mapper.WriteCHR(0x0042, 0x77)

	var state bytes.Buffer
	if err := console.SaveState(&state); err != nil {
		t.Fatal(err)
	}

	restored := testConsole(t, nil)
	restored.Cartridge.CHR = make([]byte, 0x2000)
	restored.Cartridge.chrRAM = true
	if err := restored.LoadState(&state); err != nil {
		t.Fatal(err)
	}
	if got := restored.Mapper.ReadCHR(0x0042); got != 0x77 {
		t.Errorf("got CHR $%02X, want $77", got)
	}
}

func TestLoadStateRejectsBadVersion(t *testing.T) {
	console := testConsole(t, nil)
	if err := console.LoadState(bytes.NewReader([]byte(`{"version": 99}`))); err == nil {
		t.Error("unknown version should fail")
	}
}

func TestLoadStateRejectsGarbage(t *testing.T) {
	console := testConsole(t, nil)
	if err := console.LoadState(bytes.NewReader([]byte("not json"))); err == nil {
		t.Error("garbage input should fail")
	}
}
