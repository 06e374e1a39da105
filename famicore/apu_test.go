package famicore

import "testing"

// stepAPUFrame runs the APU for roughly one 60Hz frame of CPU cycles, enough
// for a full 4-step sequencer pass.
func stepAPUFrame(a *APU) {
	for i := 0; i < CPUFrequency/60+100; i++ {
		a.Step()
	}
}

func TestLengthCounterClocking(t *testing.T) {
	apu := testConsole(t, nil).APU

	apu.writeRegister(0x4015, 0x01)
	apu.writeRegister(0x4000, 0x10) // constant volume, halt clear
	apu.writeRegister(0x4003, 0x08) // length index 1 -> 254

	if apu.pulse1.lengthValue != 254 {
		t.Fatalf("got length %d, want 254", apu.pulse1.lengthValue)
	}

	// One 4-step pass clocks the length counter twice.
	stepAPUFrame(apu)
	if got := apu.pulse1.lengthValue; got != 252 {
		t.Errorf("got length %d, want 252", got)
	}
}

func TestLengthCounterHalt(t *testing.T) {
	apu := testConsole(t, nil).APU

	apu.writeRegister(0x4015, 0x01)
	apu.writeRegister(0x4000, 0x70) // halt set
	apu.writeRegister(0x4003, 0x08)

	stepAPUFrame(apu)
	if got := apu.pulse1.lengthValue; got != 254 {
		t.Errorf("got length %d, want 254 (halted)", got)
	}
}

func TestResetSilencesChannels(t *testing.T) {
	console := testConsole(t, nil)
	apu := console.APU

	apu.writeRegister(0x4015, 0x01)
	apu.writeRegister(0x4003, 0x08)
	apu.writeRegister(0x4017, 0x40) // inhibit frame IRQs
	if apu.pulse1.lengthValue == 0 {
		t.Fatal("pulse 1 length not loaded")
	}

	console.Reset()
	if got := apu.readStatus(); got != 0 {
		t.Errorf("got status $%02X after reset, want $00", got)
	}
	if apu.frameIRQInhibit {
		t.Error("frame IRQ inhibit survived reset")
	}
	if apu.framePeriod != 4 || apu.frameValue != 0 {
		t.Errorf("got frame counter %d/%d, want 4-step at 0", apu.framePeriod, apu.frameValue)
	}
}

func TestChannelDisableZeroesLength(t *testing.T) {
	apu := testConsole(t, nil).APU

	apu.writeRegister(0x4015, 0x0F)
	apu.writeRegister(0x4003, 0x08)
	apu.writeRegister(0x400B, 0x08)
	if apu.readStatus()&0x05 != 0x05 {
		t.Fatal("pulse 1 and triangle should report active")
	}

	apu.writeRegister(0x4015, 0x00)
	if got := apu.readStatus() & 0x0F; got != 0 {
		t.Errorf("got status $%02X, want all channels silent", got)
	}
}

func TestFrameIRQ(t *testing.T) {
	apu := testConsole(t, nil).APU

	apu.writeRegister(0x4017, 0x00) // 4-step, IRQ enabled
	stepAPUFrame(apu)
	if !apu.frameIRQ {
		t.Fatal("frame IRQ not raised in 4-step mode")
	}

	// Reading $4015 reports and clears it.
	if apu.readStatus()&0x40 == 0 {
		t.Error("status should report the frame IRQ")
	}
	if apu.readStatus()&0x40 != 0 {
		t.Error("status read should clear the frame IRQ")
	}
}

func TestFrameIRQInhibit(t *testing.T) {
	apu := testConsole(t, nil).APU

	apu.writeRegister(0x4017, 0x40)
	stepAPUFrame(apu)
	if apu.frameIRQ {
		t.Error("frame IRQ raised despite inhibit bit")
	}
}

func TestFiveStepModeNoIRQ(t *testing.T) {
	apu := testConsole(t, nil).APU

	apu.writeRegister(0x4017, 0x80)
	stepAPUFrame(apu)
	stepAPUFrame(apu)
	if apu.frameIRQ {
		t.Error("frame IRQ raised in 5-step mode")
	}
}

func TestNoiseLFSR(t *testing.T) {
	apu := testConsole(t, nil).APU
	n := &apu.noise

	// Short mode off: feedback taps bits 0 and 1.
	n.shiftRegister = 1
	n.timerPeriod = 0
	n.timerValue = 0
	n.stepTimer()
	if n.shiftRegister != 0x4000 {
		t.Errorf("got $%04X, want $4000", n.shiftRegister)
	}
	n.timerValue = 0
	n.stepTimer()
	if n.shiftRegister != 0x2000 {
		t.Errorf("got $%04X, want $2000", n.shiftRegister)
	}

	// Short mode: feedback taps bits 0 and 6.
	n.mode = true
	n.shiftRegister = 1
	n.timerValue = 0
	n.stepTimer()
	if n.shiftRegister != 0x4000 {
		t.Errorf("short mode: got $%04X, want $4000", n.shiftRegister)
	}
}

func TestTriangleLinearCounter(t *testing.T) {
	apu := testConsole(t, nil).APU
	tri := &apu.triangle

	apu.writeRegister(0x4015, 0x04)
	apu.writeRegister(0x4008, 0x05) // linear counter reload 5, control clear
	apu.writeRegister(0x400B, 0x08) // sets reload flag and length

	apu.stepEnvelope() // reloads the linear counter
	if tri.counterValue != 5 {
		t.Fatalf("got linear counter %d, want 5", tri.counterValue)
	}
	apu.stepEnvelope() // control bit clear: reload flag dropped, now counts down
	if tri.counterValue != 4 {
		t.Errorf("got linear counter %d, want 4", tri.counterValue)
	}
}

func TestPulseSweepMute(t *testing.T) {
	apu := testConsole(t, nil).APU
	p := &apu.pulse1

	apu.writeRegister(0x4015, 0x01)
	apu.writeRegister(0x4000, 0x3F) // constant volume 15
	apu.writeRegister(0x4002, 0x04) // timer period 4: below 8, muted
	apu.writeRegister(0x4003, 0x08)

	if got := p.output(); got != 0 {
		t.Errorf("got output %d, want 0 for timer < 8", got)
	}

	apu.writeRegister(0x4002, 0x40) // period 64: audible range
	p.dutyMode = 2
	p.dutyValue = 2 // known high phase of the 50% duty waveform
	if got := p.output(); got == 0 {
		t.Error("expected nonzero output in audible range")
	}
}

func TestMixerOutputRange(t *testing.T) {
	apu := testConsole(t, nil).APU

	// Drive every channel to maximum DAC input and verify the non-linear
	// mix stays inside the normalized range.
	apu.pulse1.enabled = true
	apu.pulse2.enabled = true
	apu.triangle.enabled = true
	apu.noise.enabled = true
	apu.dmc.value = 127

	if out := apu.output(); out < 0 || out > 1 {
		t.Errorf("mixer output %f outside [0, 1]", out)
	}
	if pulseTable[30] <= pulseTable[15] {
		t.Error("pulse mixing table should be monotonic")
	}
	if tndTable[0] != 0 {
		t.Error("silent tnd input should mix to zero")
	}
}
