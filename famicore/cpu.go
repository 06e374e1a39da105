// refs: https://www.nesdev.org/wiki/CPU
package famicore

import "fmt"

const CPUFrequency = 1789773

// interrupt vectors
const (
	NMI_VECTOR   = 0xFFFA
	RESET_VECTOR = 0xFFFC
	IRQ_VECTOR   = 0xFFFE
)

// IRQ sources. IRQ is level-based: a source holds its bit until it clears,
// and the CPU samples the combined level once per instruction boundary.
const (
	IRQ_SOURCE_EXTERNAL byte = 1 << iota
	IRQ_SOURCE_FRAME_COUNTER
	IRQ_SOURCE_DMC
)

type AddressingMode byte

const (
	modeAbsolute AddressingMode = iota + 1
	modeAbsoluteX
	modeAbsoluteY
	modeAccumulator
	modeImmediate
	modeImplied
	modeIndirectX
	modeIndirect
	modeIndirectY
	modeRelative
	modeZeroPage
	modeZeroPageX
	modeZeroPageY
)

type CPU struct {
	console *Console

	Cycles uint64 // total cycle counter
	PC     uint16 // program counter
	SP     byte   // stack pointer
	A      byte   // accumulator
	X      byte   // x register
	Y      byte   // y register
	C      byte   // carry flag
	Z      byte   // zero flag
	I      byte   // interrupt disable flag
	D      byte   // decimal mode flag
	B      byte   // break command flag
	U      byte   // unused flag, always set
	V      byte   // overflow flag
	N      byte   // negative flag

	irqSources byte
	nmiPending bool
	stall      int

	table       [256]CPUInstruction
	illegalSeen [256]bool
}

func NewCPU(console *Console) *CPU {
	c := &CPU{console: console}
	c.createTable()
	c.Reset()
	return c
}

// Reset loads the reset vector and sets the interrupt-disable flag. RAM is
// deliberately left untouched, mirroring real power-on behavior; a frontend
// wanting pristine RAM clears it itself.
func (c *CPU) Reset() {
	c.PC = c.Read16(RESET_VECTOR)
	c.SP = 0xFD
	c.SetFlags(0x24)
	c.Cycles = 7
}

func (c *CPU) Read(address uint16) byte {
	return c.console.Bus.Read(address)
}

func (c *CPU) Write(address uint16, value byte) {
	c.console.Bus.Write(address, value)
}

// Read16 reads two bytes little-endian.
func (c *CPU) Read16(address uint16) uint16 {
	lo := uint16(c.Read(address))
	hi := uint16(c.Read(address + 1))
	return hi<<8 | lo
}

// read16bug emulates the 6502 bug where the low byte of an indirect address
// wraps within the page instead of carrying into the high byte.
func (c *CPU) read16bug(address uint16) uint16 {
	a := address
	b := (a & 0xFF00) | uint16(byte(a)+1)
	lo := uint16(c.Read(a))
	hi := uint16(c.Read(b))
	return hi<<8 | lo
}

// RequestNMI latches an edge-triggered NMI, consumed by the next Step.
func (c *CPU) RequestNMI() {
	c.nmiPending = true
}

// SetIRQSource raises one level-held IRQ line.
func (c *CPU) SetIRQSource(source byte) {
	c.irqSources |= source
}

// ClearIRQSource lowers one level-held IRQ line.
func (c *CPU) ClearIRQSource(source byte) {
	c.irqSources &^= source
}

func pagesDiffer(a, b uint16) bool {
	return a&0xFF00 != b&0xFF00
}

// Step executes exactly one instruction, servicing any pending interrupt
// first, and returns the number of cycles consumed. DMA and DMC stalls
// raised while the instruction executes inflate its cycle count.
func (c *CPU) Step() int {
	cycles := c.Cycles

	if c.nmiPending {
		c.nmiPending = false
		c.serviceInterrupt(NMI_VECTOR)
	} else if c.irqSources != 0 && c.I == 0 {
		c.serviceInterrupt(IRQ_VECTOR)
	}

	opcode := c.Read(c.PC)
	inst := &c.table[opcode]
	address, pageCrossed := c.resolveAddress(inst.mode)

	c.PC += uint16(inst.size)
	c.Cycles += uint64(inst.cycles)
	if pageCrossed {
		c.Cycles += uint64(inst.pageCycles)
	}
	inst.fn(address, inst.mode)

	if c.stall > 0 {
		c.Cycles += uint64(c.stall)
		c.stall = 0
	}
	return int(c.Cycles - cycles)
}

// resolveAddress computes the effective operand address for the instruction
// at PC and reports whether an indexed mode crossed a page.
func (c *CPU) resolveAddress(mode AddressingMode) (uint16, bool) {
	switch mode {
	case modeAbsolute:
		return c.Read16(c.PC + 1), false
	case modeAbsoluteX:
		address := c.Read16(c.PC+1) + uint16(c.X)
		return address, pagesDiffer(address-uint16(c.X), address)
	case modeAbsoluteY:
		address := c.Read16(c.PC+1) + uint16(c.Y)
		return address, pagesDiffer(address-uint16(c.Y), address)
	case modeAccumulator:
		return 0, false
	case modeImmediate:
		return c.PC + 1, false
	case modeImplied:
		return 0, false
	case modeIndirectX:
		return c.read16bug(uint16(c.Read(c.PC+1) + c.X)), false
	case modeIndirect:
		return c.read16bug(c.Read16(c.PC + 1)), false
	case modeIndirectY:
		address := c.read16bug(uint16(c.Read(c.PC+1))) + uint16(c.Y)
		return address, pagesDiffer(address-uint16(c.Y), address)
	case modeRelative:
		offset := uint16(c.Read(c.PC + 1))
		if offset < 0x80 {
			return c.PC + 2 + offset, false
		}
		return c.PC + 2 + offset - 0x100, false
	case modeZeroPage:
		return uint16(c.Read(c.PC + 1)), false
	case modeZeroPageX:
		return uint16(c.Read(c.PC+1)+c.X) & 0xFF, false
	case modeZeroPageY:
		return uint16(c.Read(c.PC+1)+c.Y) & 0xFF, false
	}
	return 0, false
}

// serviceInterrupt pushes PC and flags (break clear, unused set) and jumps
// through the given vector. Costs 7 cycles like hardware.
func (c *CPU) serviceInterrupt(vector uint16) {
	c.push16(c.PC)
	c.push(c.Flags() &^ 0x10)
	c.PC = c.Read16(vector)
	c.I = 1
	c.Cycles += 7
}

// Flags packs the status register. The unused bit reads back set.
func (c *CPU) Flags() byte {
	var flags byte
	flags |= c.C << 0
	flags |= c.Z << 1
	flags |= c.I << 2
	flags |= c.D << 3
	flags |= c.B << 4
	flags |= c.U << 5
	flags |= c.V << 6
	flags |= c.N << 7
	return flags
}

func (c *CPU) SetFlags(flags byte) {
	c.C = (flags >> 0) & 1
	c.Z = (flags >> 1) & 1
	c.I = (flags >> 2) & 1
	c.D = (flags >> 3) & 1
	c.B = (flags >> 4) & 1
	c.U = 1
	c.V = (flags >> 6) & 1
	c.N = (flags >> 7) & 1
}

func (c *CPU) setZ(value byte) {
	if value == 0 {
		c.Z = 1
	} else {
		c.Z = 0
	}
}

func (c *CPU) setN(value byte) {
	if value&0x80 != 0 {
		c.N = 1
	} else {
		c.N = 0
	}
}

func (c *CPU) setZN(value byte) {
	c.setZ(value)
	c.setN(value)
}

func (c *CPU) compare(a, b byte) {
	c.setZN(a - b)
	if a >= b {
		c.C = 1
	} else {
		c.C = 0
	}
}

func (c *CPU) push(value byte) {
	c.Write(0x100|uint16(c.SP), value)
	c.SP--
}

func (c *CPU) pull() byte {
	c.SP++
	return c.Read(0x100 | uint16(c.SP))
}

func (c *CPU) push16(value uint16) {
	c.push(byte(value >> 8))
	c.push(byte(value))
}

func (c *CPU) pull16() uint16 {
	lo := uint16(c.pull())
	hi := uint16(c.pull())
	return hi<<8 | lo
}

// addBranchCycles adds the taken-branch penalty, one more if the target
// lands in a different page.
func (c *CPU) addBranchCycles(address uint16) {
	c.Cycles++
	if pagesDiffer(c.PC, address) {
		c.Cycles++
	}
}

// TraceLine renders the state at the current instruction boundary in the
// customary execution-log layout.
func (c *CPU) TraceLine() string {
	opcode := c.Read(c.PC)
	inst := &c.table[opcode]
	bytes := ""
	for i := byte(0); i < inst.size; i++ {
		bytes += fmt.Sprintf("%02X ", c.Read(c.PC+uint16(i)))
	}
	return fmt.Sprintf("%04X  %-9s %s A:%02X X:%02X Y:%02X P:%02X SP:%02X CYC:%d",
		c.PC, bytes, inst.name, c.A, c.X, c.Y, c.Flags(), c.SP, c.Cycles)
}

// ADC - Add with Carry
func (c *CPU) adc(address uint16, mode AddressingMode) {
	a := c.A
	b := c.Read(address)
	d := c.C
	c.A = a + b + d
	c.setZN(c.A)
	if int(a)+int(b)+int(d) > 0xFF {
		c.C = 1
	} else {
		c.C = 0
	}
	if (a^b)&0x80 == 0 && (a^c.A)&0x80 != 0 {
		c.V = 1
	} else {
		c.V = 0
	}
}

// AND - Logical AND
func (c *CPU) and(address uint16, mode AddressingMode) {
	c.A = c.A & c.Read(address)
	c.setZN(c.A)
}

// ASL - Arithmetic Shift Left
func (c *CPU) asl(address uint16, mode AddressingMode) {
	if mode == modeAccumulator {
		c.C = (c.A >> 7) & 1
		c.A <<= 1
		c.setZN(c.A)
	} else {
		value := c.Read(address)
		c.C = (value >> 7) & 1
		value <<= 1
		c.Write(address, value)
		c.setZN(value)
	}
}

// BCC - Branch if Carry Clear
func (c *CPU) bcc(address uint16, mode AddressingMode) {
	if c.C == 0 {
		c.addBranchCycles(address)
		c.PC = address
	}
}

// BCS - Branch if Carry Set
func (c *CPU) bcs(address uint16, mode AddressingMode) {
	if c.C != 0 {
		c.addBranchCycles(address)
		c.PC = address
	}
}

// BEQ - Branch if Equal
func (c *CPU) beq(address uint16, mode AddressingMode) {
	if c.Z != 0 {
		c.addBranchCycles(address)
		c.PC = address
	}
}

// BIT - Bit Test
func (c *CPU) bit(address uint16, mode AddressingMode) {
	value := c.Read(address)
	c.V = (value >> 6) & 1
	c.setZ(value & c.A)
	c.setN(value)
}

// BMI - Branch if Minus
func (c *CPU) bmi(address uint16, mode AddressingMode) {
	if c.N != 0 {
		c.addBranchCycles(address)
		c.PC = address
	}
}

// BNE - Branch if Not Equal
func (c *CPU) bne(address uint16, mode AddressingMode) {
	if c.Z == 0 {
		c.addBranchCycles(address)
		c.PC = address
	}
}

// BPL - Branch if Positive
func (c *CPU) bpl(address uint16, mode AddressingMode) {
	if c.N == 0 {
		c.addBranchCycles(address)
		c.PC = address
	}
}

// BRK - Force Interrupt
func (c *CPU) brk(address uint16, mode AddressingMode) {
	c.push16(c.PC)
	c.push(c.Flags() | 0x10)
	c.I = 1
	c.PC = c.Read16(IRQ_VECTOR)
}

// BVC - Branch if Overflow Clear
func (c *CPU) bvc(address uint16, mode AddressingMode) {
	if c.V == 0 {
		c.addBranchCycles(address)
		c.PC = address
	}
}

// BVS - Branch if Overflow Set
func (c *CPU) bvs(address uint16, mode AddressingMode) {
	if c.V != 0 {
		c.addBranchCycles(address)
		c.PC = address
	}
}

// CLC - Clear Carry Flag
func (c *CPU) clc(address uint16, mode AddressingMode) {
	c.C = 0
}

// CLD - Clear Decimal Mode
func (c *CPU) cld(address uint16, mode AddressingMode) {
	c.D = 0
}

// CLI - Clear Interrupt Disable
func (c *CPU) cli(address uint16, mode AddressingMode) {
	c.I = 0
}

// CLV - Clear Overflow Flag
func (c *CPU) clv(address uint16, mode AddressingMode) {
	c.V = 0
}

// CMP - Compare
func (c *CPU) cmp(address uint16, mode AddressingMode) {
	value := c.Read(address)
	c.compare(c.A, value)
}

// CPX - Compare X Register
func (c *CPU) cpx(address uint16, mode AddressingMode) {
	value := c.Read(address)
	c.compare(c.X, value)
}

// CPY - Compare Y Register
func (c *CPU) cpy(address uint16, mode AddressingMode) {
	value := c.Read(address)
	c.compare(c.Y, value)
}

// DEC - Decrement Memory
func (c *CPU) dec(address uint16, mode AddressingMode) {
	value := c.Read(address) - 1
	c.Write(address, value)
	c.setZN(value)
}

// DEX - Decrement X Register
func (c *CPU) dex(address uint16, mode AddressingMode) {
	c.X--
	c.setZN(c.X)
}

// DEY - Decrement Y Register
func (c *CPU) dey(address uint16, mode AddressingMode) {
	c.Y--
	c.setZN(c.Y)
}

// EOR - Exclusive OR
func (c *CPU) eor(address uint16, mode AddressingMode) {
	c.A = c.A ^ c.Read(address)
	c.setZN(c.A)
}

// INC - Increment Memory
func (c *CPU) inc(address uint16, mode AddressingMode) {
	value := c.Read(address) + 1
	c.Write(address, value)
	c.setZN(value)
}

// INX - Increment X Register
func (c *CPU) inx(address uint16, mode AddressingMode) {
	c.X++
	c.setZN(c.X)
}

// INY - Increment Y Register
func (c *CPU) iny(address uint16, mode AddressingMode) {
	c.Y++
	c.setZN(c.Y)
}

// JMP - Jump
func (c *CPU) jmp(address uint16, mode AddressingMode) {
	c.PC = address
}

// JSR - Jump to Subroutine
func (c *CPU) jsr(address uint16, mode AddressingMode) {
	c.push16(c.PC - 1)
	c.PC = address
}

// LDA - Load Accumulator
func (c *CPU) lda(address uint16, mode AddressingMode) {
	c.A = c.Read(address)
	c.setZN(c.A)
}

// LDX - Load X Register
func (c *CPU) ldx(address uint16, mode AddressingMode) {
	c.X = c.Read(address)
	c.setZN(c.X)
}

// LDY - Load Y Register
func (c *CPU) ldy(address uint16, mode AddressingMode) {
	c.Y = c.Read(address)
	c.setZN(c.Y)
}

// LSR - Logical Shift Right
func (c *CPU) lsr(address uint16, mode AddressingMode) {
	if mode == modeAccumulator {
		c.C = c.A & 1
		c.A >>= 1
		c.setZN(c.A)
	} else {
		value := c.Read(address)
		c.C = value & 1
		value >>= 1
		c.Write(address, value)
		c.setZN(value)
	}
}

// NOP - No Operation
func (c *CPU) nop(address uint16, mode AddressingMode) {
}

// ORA - Logical Inclusive OR
func (c *CPU) ora(address uint16, mode AddressingMode) {
	c.A = c.A | c.Read(address)
	c.setZN(c.A)
}

// PHA - Push Accumulator
func (c *CPU) pha(address uint16, mode AddressingMode) {
	c.push(c.A)
}

// PHP - Push Processor Status
func (c *CPU) php(address uint16, mode AddressingMode) {
	c.push(c.Flags() | 0x10)
}

// PLA - Pull Accumulator
func (c *CPU) pla(address uint16, mode AddressingMode) {
	c.A = c.pull()
	c.setZN(c.A)
}

// PLP - Pull Processor Status
func (c *CPU) plp(address uint16, mode AddressingMode) {
	c.SetFlags(c.pull()&0xEF | 0x20)
}

// ROL - Rotate Left
func (c *CPU) rol(address uint16, mode AddressingMode) {
	if mode == modeAccumulator {
		d := c.C
		c.C = (c.A >> 7) & 1
		c.A = c.A<<1 | d
		c.setZN(c.A)
	} else {
		d := c.C
		value := c.Read(address)
		c.C = (value >> 7) & 1
		value = value<<1 | d
		c.Write(address, value)
		c.setZN(value)
	}
}

// ROR - Rotate Right
func (c *CPU) ror(address uint16, mode AddressingMode) {
	if mode == modeAccumulator {
		d := c.C
		c.C = c.A & 1
		c.A = c.A>>1 | d<<7
		c.setZN(c.A)
	} else {
		d := c.C
		value := c.Read(address)
		c.C = value & 1
		value = value>>1 | d<<7
		c.Write(address, value)
		c.setZN(value)
	}
}

// RTI - Return from Interrupt
func (c *CPU) rti(address uint16, mode AddressingMode) {
	c.SetFlags(c.pull()&0xEF | 0x20)
	c.PC = c.pull16()
}

// RTS - Return from Subroutine
func (c *CPU) rts(address uint16, mode AddressingMode) {
	c.PC = c.pull16() + 1
}

// SBC - Subtract with Carry
func (c *CPU) sbc(address uint16, mode AddressingMode) {
	a := c.A
	b := c.Read(address)
	d := c.C
	c.A = a - b - (1 - d)
	c.setZN(c.A)
	if int(a)-int(b)-int(1-d) >= 0 {
		c.C = 1
	} else {
		c.C = 0
	}
	if (a^b)&0x80 != 0 && (a^c.A)&0x80 != 0 {
		c.V = 1
	} else {
		c.V = 0
	}
}

// SEC - Set Carry Flag
func (c *CPU) sec(address uint16, mode AddressingMode) {
	c.C = 1
}

// SED - Set Decimal Flag
func (c *CPU) sed(address uint16, mode AddressingMode) {
	c.D = 1
}

// SEI - Set Interrupt Disable
func (c *CPU) sei(address uint16, mode AddressingMode) {
	c.I = 1
}

// STA - Store Accumulator
func (c *CPU) sta(address uint16, mode AddressingMode) {
	c.Write(address, c.A)
}

// STX - Store X Register
func (c *CPU) stx(address uint16, mode AddressingMode) {
	c.Write(address, c.X)
}

// STY - Store Y Register
func (c *CPU) sty(address uint16, mode AddressingMode) {
	c.Write(address, c.Y)
}

// TAX - Transfer Accumulator to X
func (c *CPU) tax(address uint16, mode AddressingMode) {
	c.X = c.A
	c.setZN(c.X)
}

// TAY - Transfer Accumulator to Y
func (c *CPU) tay(address uint16, mode AddressingMode) {
	c.Y = c.A
	c.setZN(c.Y)
}

// TSX - Transfer Stack Pointer to X
func (c *CPU) tsx(address uint16, mode AddressingMode) {
	c.X = c.SP
	c.setZN(c.X)
}

// TXA - Transfer X to Accumulator
func (c *CPU) txa(address uint16, mode AddressingMode) {
	c.A = c.X
	c.setZN(c.A)
}

// TXS - Transfer X to Stack Pointer
func (c *CPU) txs(address uint16, mode AddressingMode) {
	c.SP = c.X
}

// TYA - Transfer Y to Accumulator
func (c *CPU) tya(address uint16, mode AddressingMode) {
	c.A = c.Y
	c.setZN(c.A)
}

// KIL has no documented behavior; it is logged once per opcode value and
// executed as a timed no-op so malformed ROM code cannot halt the engine.
func (c *CPU) kil(address uint16, mode AddressingMode) {
	opcode := c.Read(c.PC - 1)
	if !c.illegalSeen[opcode] {
		c.illegalSeen[opcode] = true
		logCPU.WithField("opcode", fmt.Sprintf("0x%02X", opcode)).
			Warnf("%s, treating as no-op", ErrUnimplementedOpcode)
	}
}

// remaining unofficial opcodes execute as timed no-ops
func (c *CPU) ahx(address uint16, mode AddressingMode) {}
func (c *CPU) alr(address uint16, mode AddressingMode) {}
func (c *CPU) anc(address uint16, mode AddressingMode) {}
func (c *CPU) arr(address uint16, mode AddressingMode) {}
func (c *CPU) axs(address uint16, mode AddressingMode) {}
func (c *CPU) dcp(address uint16, mode AddressingMode) {}
func (c *CPU) isc(address uint16, mode AddressingMode) {}
func (c *CPU) las(address uint16, mode AddressingMode) {}
func (c *CPU) lax(address uint16, mode AddressingMode) {}
func (c *CPU) rla(address uint16, mode AddressingMode) {}
func (c *CPU) rra(address uint16, mode AddressingMode) {}
func (c *CPU) sax(address uint16, mode AddressingMode) {}
func (c *CPU) shx(address uint16, mode AddressingMode) {}
func (c *CPU) shy(address uint16, mode AddressingMode) {}
func (c *CPU) slo(address uint16, mode AddressingMode) {}
func (c *CPU) sre(address uint16, mode AddressingMode) {}
func (c *CPU) tas(address uint16, mode AddressingMode) {}
func (c *CPU) xaa(address uint16, mode AddressingMode) {}
