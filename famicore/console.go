package famicore

import "image"

// Console owns one emulation session: CPU, PPU, APU, Bus, the cartridge and
// its mapper, and the two controller ports. All state transitions happen in
// a fixed single-threaded interleaving driven by Step.
type Console struct {
	CPU         *CPU
	APU         *APU
	PPU         *PPU
	Bus         *Bus
	Cartridge   *Cartridge
	Mapper      Mapper
	Controller1 *Controller
	Controller2 *Controller
}

// NewConsole loads a ROM image from disk and powers up a console around it.
func NewConsole(path string) (*Console, error) {
	cartridge, err := LoadNESFile(path)
	if err != nil {
		return nil, err
	}
	return NewConsoleFromCartridge(cartridge)
}

// NewConsoleFromCartridge powers up a console around an already-decoded
// cartridge. Fails with ErrUnsupportedMapper before any emulation starts if
// no banking strategy exists for the cartridge's mapper id.
func NewConsoleFromCartridge(cartridge *Cartridge) (*Console, error) {
	console := &Console{Cartridge: cartridge}
	console.Controller1 = NewController()
	console.Controller2 = NewController()
	console.Bus = NewBus(console)
	mapper, err := NewMapper(console)
	if err != nil {
		return nil, err
	}
	console.Mapper = mapper
	console.APU = NewAPU(console)
	console.PPU = NewPPU(console)
	console.CPU = NewCPU(console)
	return console, nil
}

// Reset presses the reset button: CPU vectors through $FFFC, PPU registers
// clear, APU channels are silenced. RAM keeps its contents.
func (c *Console) Reset() {
	c.CPU.Reset()
	c.PPU.Reset()
	c.APU.Reset()
}

// Step runs one CPU instruction, then 3x that many PPU dots and an equal
// number of APU and mapper cycles, then transfers any interrupt flags
// raised in that window to the CPU so it sees them at the next instruction
// boundary. Returns the CPU cycles consumed.
func (c *Console) Step() int {
	cpuCycles := c.CPU.Step()
	ppuCycles := cpuCycles * 3
	for i := 0; i < ppuCycles; i++ {
		c.PPU.Step()
	}
	for i := 0; i < cpuCycles; i++ {
		c.APU.Step()
		c.Mapper.Step()
	}
	c.syncInterrupts()
	return cpuCycles
}

// syncInterrupts is the single point where PPU/APU/mapper interrupt state
// becomes visible to the CPU. NMI is an edge, consumed once; the IRQ
// sources are levels held until their owner clears them.
func (c *Console) syncInterrupts() {
	if c.PPU.TakeNMI() {
		c.CPU.RequestNMI()
	}
	if c.Mapper.IRQPending() {
		c.CPU.SetIRQSource(IRQ_SOURCE_EXTERNAL)
	} else {
		c.CPU.ClearIRQSource(IRQ_SOURCE_EXTERNAL)
	}
	if c.APU.frameIRQ {
		c.CPU.SetIRQSource(IRQ_SOURCE_FRAME_COUNTER)
	} else {
		c.CPU.ClearIRQSource(IRQ_SOURCE_FRAME_COUNTER)
	}
	if c.APU.dmc.irqPending {
		c.CPU.SetIRQSource(IRQ_SOURCE_DMC)
	} else {
		c.CPU.ClearIRQSource(IRQ_SOURCE_DMC)
	}
}

// StepFrame advances emulation until the PPU completes the current frame.
func (c *Console) StepFrame() int {
	cpuCycles := 0
	frame := c.PPU.Frame
	for frame == c.PPU.Frame {
		cpuCycles += c.Step()
	}
	return cpuCycles
}

// StepSeconds advances emulation by a wall-clock duration worth of CPU
// cycles.
func (c *Console) StepSeconds(seconds float64) {
	cycles := int(CPUFrequency * seconds)
	for cycles > 0 {
		cycles -= c.Step()
	}
}

// Buffer returns the most recently completed framebuffer.
func (c *Console) Buffer() *image.RGBA {
	return c.PPU.front
}

func (c *Console) SetButtons1(buttons [8]bool) {
	c.Controller1.SetButtons(buttons)
}

func (c *Console) SetButtons2(buttons [8]bool) {
	c.Controller2.SetButtons(buttons)
}

func (c *Console) SetAudioChannel(channel chan float32) {
	c.APU.SetAudioChannel(channel)
}

func (c *Console) SetAudioSampleRate(sampleRate float64) {
	c.APU.SetSampleRate(sampleRate)
}

// CPUSnapshot is a read-only view of the CPU registers for debuggers.
type CPUSnapshot struct {
	PC     uint16
	SP     byte
	A      byte
	X      byte
	Y      byte
	Flags  byte
	Cycles uint64
}

func (c *Console) CPUSnapshot() CPUSnapshot {
	return CPUSnapshot{
		PC:     c.CPU.PC,
		SP:     c.CPU.SP,
		A:      c.CPU.A,
		X:      c.CPU.X,
		Y:      c.CPU.Y,
		Flags:  c.CPU.Flags(),
		Cycles: c.CPU.Cycles,
	}
}

// ReadPage copies one 256-byte page of CPU-visible memory without the side
// effects a real bus read would have.
func (c *Console) ReadPage(page byte) [256]byte {
	var out [256]byte
	base := uint16(page) << 8
	for i := 0; i < 256; i++ {
		out[i] = c.Bus.Peek(base + uint16(i))
	}
	return out
}

// PPUNametable copies one of the four logical nametables as currently
// mirrored.
func (c *Console) PPUNametable(i int) [1024]byte {
	var out [1024]byte
	mode := c.Mapper.Mirror()
	base := 0x2000 + uint16(i&3)*0x0400
	for j := 0; j < 1024; j++ {
		out[j] = c.PPU.nametableData[mirrorAddress(mode, base+uint16(j))%2048]
	}
	return out
}

// PPUPalette copies the 32 bytes of palette RAM.
func (c *Console) PPUPalette() [32]byte {
	return c.PPU.paletteData
}
