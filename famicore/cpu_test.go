package famicore

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCPUReset(t *testing.T) {
	console := testConsole(t, nil)
	cpu := console.CPU

	if cpu.PC != 0x8000 {
		t.Errorf("got PC = $%04X, want $8000", cpu.PC)
	}
	if cpu.SP != 0xFD {
		t.Errorf("got SP = $%02X, want $FD", cpu.SP)
	}
	if cpu.Flags() != 0x24 {
		t.Errorf("got P = $%02X, want $24", cpu.Flags())
	}
	if cpu.Cycles != 7 {
		t.Errorf("got cycles = %d, want 7", cpu.Cycles)
	}
}

func TestInstructionTiming(t *testing.T) {
	tests := []struct {
		name    string
		program []byte
		setup   int // instructions to execute before the measured one
		want    int
	}{
		{"LDA immediate", []byte{0xA9, 0x01}, 0, 2},
		{"LDA zeropage", []byte{0xA5, 0x10}, 0, 3},
		{"LDA absolute", []byte{0xAD, 0x00, 0x02}, 0, 4},
		{"LDA absolute,X no cross", []byte{0xA2, 0x01, 0xBD, 0xF0, 0x02}, 1, 4},
		{"LDA absolute,X page cross", []byte{0xA2, 0xFF, 0xBD, 0xF0, 0x02}, 1, 5},
		{"LDA (indirect),Y page cross", []byte{0xA9, 0x80, 0x85, 0x10, 0xA0, 0xFF, 0xB1, 0x10}, 3, 6},
		{"STA absolute,X never shortens", []byte{0xA2, 0x01, 0x9D, 0xF0, 0x02}, 1, 5},
		{"JSR", []byte{0x20, 0x10, 0x80}, 0, 6},
		{"RTS", []byte{0x20, 0x03, 0x80, 0x60}, 1, 6},
		{"INC absolute", []byte{0xEE, 0x00, 0x02}, 0, 6},
		{"NOP", []byte{0xEA}, 0, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cpu := testConsole(t, tt.program).CPU
			for i := 0; i < tt.setup; i++ {
				cpu.Step()
			}
			if got := cpu.Step(); got != tt.want {
				t.Errorf("got %d cycles, want %d", got, tt.want)
			}
		})
	}
}

func TestBranchTiming(t *testing.T) {
	// BEQ taken, same page: LDA #$00 sets Z, then BEQ +1.
	cpu := testConsole(t, []byte{0xA9, 0x00, 0xF0, 0x01}).CPU
	cpu.Step()
	if got := cpu.Step(); got != 3 {
		t.Errorf("taken branch: got %d cycles, want 3", got)
	}

	// BEQ not taken: LDA #$01 clears Z.
	cpu = testConsole(t, []byte{0xA9, 0x01, 0xF0, 0x01}).CPU
	cpu.Step()
	if got := cpu.Step(); got != 2 {
		t.Errorf("untaken branch: got %d cycles, want 2", got)
	}

	// BEQ taken across a page boundary. The branch sits at $80FC so the
	// target $810F lands on a different page than $80FE.
	program := make([]byte, 0x100)
	for i := range program {
		program[i] = 0xEA
	}
	program[0x00] = 0xA9 // LDA #$00
	program[0x01] = 0x00
	program[0x02] = 0x4C // JMP $80FC
	program[0x03] = 0xFC
	program[0x04] = 0x80
	program[0xFC] = 0xF0 // BEQ +$0F
	program[0xFD] = 0x0F
	cpu = testConsole(t, program).CPU
	cpu.Step() // LDA
	cpu.Step() // JMP
	if got := cpu.Step(); got != 4 {
		t.Errorf("page-crossing branch: got %d cycles, want 4", got)
	}
	if cpu.PC != 0x810F {
		t.Errorf("got PC = $%04X, want $810F", cpu.PC)
	}
}

func TestCycleAccumulation(t *testing.T) {
	// NOP-filled PRG: every step costs exactly 2 cycles.
	cpu := testConsole(t, nil).CPU
	const steps = 1000
	for i := 0; i < steps; i++ {
		if got := cpu.Step(); got != 2 {
			t.Fatalf("step %d: got %d cycles, want 2", i, got)
		}
	}
	if want := uint64(7 + 2*steps); cpu.Cycles != want {
		t.Errorf("got cycles = %d, want %d", cpu.Cycles, want)
	}
	if want := uint16(0x8000 + steps); cpu.PC != want {
		t.Errorf("got PC = $%04X, want $%04X", cpu.PC, want)
	}
}

func TestDeterministicExecution(t *testing.T) {
	program := []byte{
		0xA9, 0x13, // LDA #$13
		0x85, 0x10, // STA $10
		0xE6, 0x10, // INC $10
		0xA5, 0x10, // LDA $10
		0x4C, 0x00, 0x80, // JMP $8000
	}
	a := testConsole(t, program)
	b := testConsole(t, program)
	for i := 0; i < 500; i++ {
		a.Step()
		b.Step()
	}
	if diff := cmp.Diff(a.CPUSnapshot(), b.CPUSnapshot()); diff != "" {
		t.Errorf("runs diverged (-a +b):\n%s", diff)
	}
}

func TestStackAndSubroutines(t *testing.T) {
	program := []byte{
		0x20, 0x06, 0x80, // $8000: JSR $8006
		0xA9, 0x55, // $8003: LDA #$55
		0xEA,       // $8005: NOP
		0xA2, 0x42, // $8006: LDX #$42
		0x60, // $8008: RTS
	}
	cpu := testConsole(t, program).CPU
	cpu.Step() // JSR
	if cpu.PC != 0x8006 {
		t.Fatalf("after JSR: got PC = $%04X, want $8006", cpu.PC)
	}
	if cpu.SP != 0xFB {
		t.Errorf("after JSR: got SP = $%02X, want $FB", cpu.SP)
	}
	cpu.Step() // LDX
	cpu.Step() // RTS
	if cpu.PC != 0x8003 {
		t.Errorf("after RTS: got PC = $%04X, want $8003", cpu.PC)
	}
	cpu.Step() // LDA
	if cpu.A != 0x55 || cpu.X != 0x42 {
		t.Errorf("got A = $%02X X = $%02X, want $55 $42", cpu.A, cpu.X)
	}
}

func TestFlagArithmetic(t *testing.T) {
	tests := []struct {
		name    string
		program []byte
		steps   int
		check   func(t *testing.T, cpu *CPU)
	}{
		{
			"ADC carry and overflow",
			[]byte{0xA9, 0x7F, 0x69, 0x01}, // LDA #$7F; ADC #$01
			2,
			func(t *testing.T, cpu *CPU) {
				if cpu.A != 0x80 {
					t.Errorf("got A = $%02X, want $80", cpu.A)
				}
				if cpu.V != 1 || cpu.N != 1 || cpu.C != 0 {
					t.Errorf("got V=%d N=%d C=%d, want 1 1 0", cpu.V, cpu.N, cpu.C)
				}
			},
		},
		{
			"SBC borrow",
			[]byte{0x38, 0xA9, 0x00, 0xE9, 0x01}, // SEC; LDA #$00; SBC #$01
			3,
			func(t *testing.T, cpu *CPU) {
				if cpu.A != 0xFF {
					t.Errorf("got A = $%02X, want $FF", cpu.A)
				}
				if cpu.C != 0 {
					t.Errorf("got C=%d, want 0", cpu.C)
				}
			},
		},
		{
			"CMP equal",
			[]byte{0xA9, 0x40, 0xC9, 0x40}, // LDA #$40; CMP #$40
			2,
			func(t *testing.T, cpu *CPU) {
				if cpu.Z != 1 || cpu.C != 1 {
					t.Errorf("got Z=%d C=%d, want 1 1", cpu.Z, cpu.C)
				}
			},
		},
		{
			"ASL carry out",
			[]byte{0xA9, 0x81, 0x0A}, // LDA #$81; ASL A
			2,
			func(t *testing.T, cpu *CPU) {
				if cpu.A != 0x02 || cpu.C != 1 {
					t.Errorf("got A = $%02X C=%d, want $02 1", cpu.A, cpu.C)
				}
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cpu := testConsole(t, tt.program).CPU
			for i := 0; i < tt.steps; i++ {
				cpu.Step()
			}
			tt.check(t, cpu)
		})
	}
}

func TestUnofficialOpcodeIsTimedNop(t *testing.T) {
	// KIL (0x02) must not halt emulation: it consumes its documented cycles
	// and advances PC.
	cpu := testConsole(t, []byte{0x02, 0xA9, 0x77}).CPU
	if got := cpu.Step(); got != 2 {
		t.Errorf("got %d cycles, want 2", got)
	}
	if cpu.PC != 0x8001 {
		t.Errorf("got PC = $%04X, want $8001", cpu.PC)
	}
	cpu.Step()
	if cpu.A != 0x77 {
		t.Errorf("got A = $%02X, want $77", cpu.A)
	}
}

func TestIRQHandling(t *testing.T) {
	// IRQ vector -> $9000 handler. CLI first so the level is serviceable.
	program := make([]byte, 0x8000)
	for i := range program {
		program[i] = 0xEA
	}
	program[0] = 0x58 // CLI
	program[0x7FFC] = 0x00
	program[0x7FFD] = 0x80
	program[0x7FFE] = 0x00 // IRQ vector $9000
	program[0x7FFF] = 0x90
	console, err := NewConsoleFromCartridge(NewCartridge(program, make([]byte, 0x2000), 0, MIRROR_HORIZONTAL, false))
	if err != nil {
		t.Fatal(err)
	}
	cpu := console.CPU

	cpu.Step() // CLI
	cpu.SetIRQSource(IRQ_SOURCE_EXTERNAL)
	if got := cpu.Step(); got != 7+2 {
		t.Errorf("interrupt entry + NOP: got %d cycles, want 9", got)
	}
	if cpu.PC != 0x9001 {
		t.Errorf("got PC = $%04X, want $9001", cpu.PC)
	}
	if cpu.I != 1 {
		t.Error("I flag should be set inside the handler")
	}

	// I is set inside the handler, so no re-entry on the next step.
	cpu.ClearIRQSource(IRQ_SOURCE_EXTERNAL)
	cpu.Step()
	if cpu.PC != 0x9002 {
		t.Errorf("got PC = $%04X, want $9002", cpu.PC)
	}
}

func TestNMIHandling(t *testing.T) {
	program := make([]byte, 0x8000)
	for i := range program {
		program[i] = 0xEA
	}
	program[0x7FFA] = 0x00 // NMI vector $A000
	program[0x7FFB] = 0xA0
	program[0x7FFC] = 0x00
	program[0x7FFD] = 0x80
	console, err := NewConsoleFromCartridge(NewCartridge(program, make([]byte, 0x2000), 0, MIRROR_HORIZONTAL, false))
	if err != nil {
		t.Fatal(err)
	}
	cpu := console.CPU

	cpu.RequestNMI()
	cpu.Step()
	if cpu.PC != 0xA001 {
		t.Errorf("got PC = $%04X, want $A001", cpu.PC)
	}

	// Edge-triggered: a single request fires once.
	cpu.Step()
	if cpu.PC != 0xA002 {
		t.Errorf("got PC = $%04X, want $A002", cpu.PC)
	}
}
