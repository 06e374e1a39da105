package famicore

import "testing"

func TestStepFrame(t *testing.T) {
	console := testConsole(t, nil)

	frame := console.PPU.Frame
	cycles := console.StepFrame()
	if console.PPU.Frame != frame+1 {
		t.Fatalf("got frame %d, want %d", console.PPU.Frame, frame+1)
	}

	// One NTSC frame is 89342 PPU dots, about 29780 CPU cycles.
	if cycles < 29700 || cycles > 29900 {
		t.Errorf("got %d CPU cycles per frame, want about 29780", cycles)
	}
}

func TestClockRatio(t *testing.T) {
	console := testConsole(t, nil)

	startCPU := console.CPU.Cycles
	startDots := uint64(console.PPU.ScanLine*341 + console.PPU.Cycle)
	frame := console.PPU.Frame

	for i := 0; i < 100; i++ {
		console.Step()
	}

	cpuDelta := console.CPU.Cycles - startCPU
	dots := uint64(console.PPU.ScanLine*341+console.PPU.Cycle) +
		uint64(console.PPU.Frame-frame)*89342 - startDots
	if dots != 3*cpuDelta {
		t.Errorf("got %d dots for %d CPU cycles, want exactly 3x", dots, cpuDelta)
	}
}

func TestBufferDimensions(t *testing.T) {
	console := testConsole(t, nil)
	console.StepFrame()

	bounds := console.Buffer().Bounds()
	if bounds.Dx() != 256 || bounds.Dy() != 240 {
		t.Errorf("got %dx%d, want 256x240", bounds.Dx(), bounds.Dy())
	}
}

func TestBackgroundRenderPixel(t *testing.T) {
	// With an all-zero nametable, pixel (0,0) falls on a transparent column
	// of tile 0, so the rendered color is the backdrop entry at $3F00.
	console := testConsole(t, nil)
	bus := console.Bus

	bus.Write(0x2006, 0x3F)
	bus.Write(0x2006, 0x00)
	bus.Write(0x2007, 0x16)
	bus.Write(0x2001, 0x0A) // background on, left column included

	console.StepFrame()
	console.StepFrame()

	want := Palette[0x16]
	if got := console.Buffer().RGBAAt(0, 0); got != want {
		t.Errorf("got %v at (0,0), want backdrop %v", got, want)
	}
}

func TestNMIDeliveredToCPU(t *testing.T) {
	// Program enables NMI output, then spins. The NMI vector points into
	// NOP-land at $A000.
	program := make([]byte, 0x8000)
	for i := range program {
		program[i] = 0xEA
	}
	copy(program, []byte{
		0xA9, 0x80, // LDA #$80
		0x8D, 0x00, 0x20, // STA $2000
	})
	program[0x7FFA] = 0x00 // NMI vector $A000
	program[0x7FFB] = 0xA0
	program[0x7FFC] = 0x00
	program[0x7FFD] = 0x80
	console, err := NewConsoleFromCartridge(NewCartridge(program, make([]byte, 0x2000), 0, MIRROR_HORIZONTAL, false))
	if err != nil {
		t.Fatal(err)
	}

	console.StepFrame()
	console.StepFrame()
	if pc := console.CPU.PC; pc < 0xA000 {
		t.Errorf("got PC = $%04X, want the NMI handler region at $A000+", pc)
	}
}

func TestStepSeconds(t *testing.T) {
	console := testConsole(t, nil)

	start := console.CPU.Cycles
	console.StepSeconds(0.1)
	elapsed := console.CPU.Cycles - start
	want := uint64(CPUFrequency / 10)
	if elapsed < want || elapsed > want+100 {
		t.Errorf("got %d cycles for 0.1s, want about %d", elapsed, want)
	}
}

func TestReadPageIsSideEffectFree(t *testing.T) {
	console := testConsole(t, nil)
	console.Bus.Write(0x0000, 0x12)
	console.Bus.Write(0x4020, 0x77) // sets the open bus latch

	page := console.ReadPage(0)
	if page[0] != 0x12 {
		t.Errorf("got $%02X, want $12", page[0])
	}
	if console.Bus.openBus != 0x77 {
		t.Error("debug read disturbed the open bus latch")
	}
}

func TestPPUDebugAccessors(t *testing.T) {
	console := testConsole(t, nil)
	p := console.PPU

	p.WriteRegister(0x2006, 0x20)
	p.WriteRegister(0x2006, 0x00)
	p.WriteRegister(0x2007, 0x5A)

	if got := console.PPUNametable(0); got[0] != 0x5A {
		t.Errorf("got nametable[0] = $%02X, want $5A", got[0])
	}

	p.WriteRegister(0x2006, 0x3F)
	p.WriteRegister(0x2006, 0x01)
	p.WriteRegister(0x2007, 0x2D)
	if got := console.PPUPalette(); got[1] != 0x2D {
		t.Errorf("got palette[1] = $%02X, want $2D", got[1])
	}
}
