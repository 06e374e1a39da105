package famicore

type CPUInstruction struct {
	opcode byte
	// mnemonic
	name string
	// addressing mode
	mode AddressingMode
	// size in bytes
	size byte
	// base cycle count, not including conditional cycles
	cycles byte
	// extra cycles when an indexed access crosses a page
	pageCycles byte
	// instruction function
	fn func(address uint16, mode AddressingMode)
}

// createTable builds the dispatch table. Unofficial opcodes carry their
// documented timing and execute as no-ops.
func (c *CPU) createTable() {
	c.table = [256]CPUInstruction{
		{opcode: 0x00, name: "BRK", mode: modeImplied, size: 1, cycles: 7, pageCycles: 0, fn: c.brk},
		{opcode: 0x01, name: "ORA", mode: modeIndirectX, size: 2, cycles: 6, pageCycles: 0, fn: c.ora},
		{opcode: 0x02, name: "KIL", mode: modeImplied, size: 1, cycles: 2, pageCycles: 0, fn: c.kil},
		{opcode: 0x03, name: "SLO", mode: modeIndirectX, size: 2, cycles: 8, pageCycles: 0, fn: c.slo},
		{opcode: 0x04, name: "NOP", mode: modeZeroPage, size: 2, cycles: 3, pageCycles: 0, fn: c.nop},
		{opcode: 0x05, name: "ORA", mode: modeZeroPage, size: 2, cycles: 3, pageCycles: 0, fn: c.ora},
		{opcode: 0x06, name: "ASL", mode: modeZeroPage, size: 2, cycles: 5, pageCycles: 0, fn: c.asl},
		{opcode: 0x07, name: "SLO", mode: modeZeroPage, size: 2, cycles: 5, pageCycles: 0, fn: c.slo},
		{opcode: 0x08, name: "PHP", mode: modeImplied, size: 1, cycles: 3, pageCycles: 0, fn: c.php},
		{opcode: 0x09, name: "ORA", mode: modeImmediate, size: 2, cycles: 2, pageCycles: 0, fn: c.ora},
		{opcode: 0x0A, name: "ASL", mode: modeAccumulator, size: 1, cycles: 2, pageCycles: 0, fn: c.asl},
		{opcode: 0x0B, name: "ANC", mode: modeImmediate, size: 2, cycles: 2, pageCycles: 0, fn: c.anc},
		{opcode: 0x0C, name: "NOP", mode: modeAbsolute, size: 3, cycles: 4, pageCycles: 0, fn: c.nop},
		{opcode: 0x0D, name: "ORA", mode: modeAbsolute, size: 3, cycles: 4, pageCycles: 0, fn: c.ora},
		{opcode: 0x0E, name: "ASL", mode: modeAbsolute, size: 3, cycles: 6, pageCycles: 0, fn: c.asl},
		{opcode: 0x0F, name: "SLO", mode: modeAbsolute, size: 3, cycles: 6, pageCycles: 0, fn: c.slo},
		{opcode: 0x10, name: "BPL", mode: modeRelative, size: 2, cycles: 2, pageCycles: 1, fn: c.bpl},
		{opcode: 0x11, name: "ORA", mode: modeIndirectY, size: 2, cycles: 5, pageCycles: 1, fn: c.ora},
		{opcode: 0x12, name: "KIL", mode: modeImplied, size: 1, cycles: 2, pageCycles: 0, fn: c.kil},
		{opcode: 0x13, name: "SLO", mode: modeIndirectY, size: 2, cycles: 8, pageCycles: 0, fn: c.slo},
		{opcode: 0x14, name: "NOP", mode: modeZeroPageX, size: 2, cycles: 4, pageCycles: 0, fn: c.nop},
		{opcode: 0x15, name: "ORA", mode: modeZeroPageX, size: 2, cycles: 4, pageCycles: 0, fn: c.ora},
		{opcode: 0x16, name: "ASL", mode: modeZeroPageX, size: 2, cycles: 6, pageCycles: 0, fn: c.asl},
		{opcode: 0x17, name: "SLO", mode: modeZeroPageX, size: 2, cycles: 6, pageCycles: 0, fn: c.slo},
		{opcode: 0x18, name: "CLC", mode: modeImplied, size: 1, cycles: 2, pageCycles: 0, fn: c.clc},
		{opcode: 0x19, name: "ORA", mode: modeAbsoluteY, size: 3, cycles: 4, pageCycles: 1, fn: c.ora},
		{opcode: 0x1A, name: "NOP", mode: modeImplied, size: 1, cycles: 2, pageCycles: 0, fn: c.nop},
		{opcode: 0x1B, name: "SLO", mode: modeAbsoluteY, size: 3, cycles: 7, pageCycles: 0, fn: c.slo},
		{opcode: 0x1C, name: "NOP", mode: modeAbsoluteX, size: 3, cycles: 4, pageCycles: 1, fn: c.nop},
		{opcode: 0x1D, name: "ORA", mode: modeAbsoluteX, size: 3, cycles: 4, pageCycles: 1, fn: c.ora},
		{opcode: 0x1E, name: "ASL", mode: modeAbsoluteX, size: 3, cycles: 7, pageCycles: 0, fn: c.asl},
		{opcode: 0x1F, name: "SLO", mode: modeAbsoluteX, size: 3, cycles: 7, pageCycles: 0, fn: c.slo},
		{opcode: 0x20, name: "JSR", mode: modeAbsolute, size: 3, cycles: 6, pageCycles: 0, fn: c.jsr},
		{opcode: 0x21, name: "AND", mode: modeIndirectX, size: 2, cycles: 6, pageCycles: 0, fn: c.and},
		{opcode: 0x22, name: "KIL", mode: modeImplied, size: 1, cycles: 2, pageCycles: 0, fn: c.kil},
		{opcode: 0x23, name: "RLA", mode: modeIndirectX, size: 2, cycles: 8, pageCycles: 0, fn: c.rla},
		{opcode: 0x24, name: "BIT", mode: modeZeroPage, size: 2, cycles: 3, pageCycles: 0, fn: c.bit},
		{opcode: 0x25, name: "AND", mode: modeZeroPage, size: 2, cycles: 3, pageCycles: 0, fn: c.and},
		{opcode: 0x26, name: "ROL", mode: modeZeroPage, size: 2, cycles: 5, pageCycles: 0, fn: c.rol},
		{opcode: 0x27, name: "RLA", mode: modeZeroPage, size: 2, cycles: 5, pageCycles: 0, fn: c.rla},
		{opcode: 0x28, name: "PLP", mode: modeImplied, size: 1, cycles: 4, pageCycles: 0, fn: c.plp},
		{opcode: 0x29, name: "AND", mode: modeImmediate, size: 2, cycles: 2, pageCycles: 0, fn: c.and},
		{opcode: 0x2A, name: "ROL", mode: modeAccumulator, size: 1, cycles: 2, pageCycles: 0, fn: c.rol},
		{opcode: 0x2B, name: "ANC", mode: modeImmediate, size: 2, cycles: 2, pageCycles: 0, fn: c.anc},
		{opcode: 0x2C, name: "BIT", mode: modeAbsolute, size: 3, cycles: 4, pageCycles: 0, fn: c.bit},
		{opcode: 0x2D, name: "AND", mode: modeAbsolute, size: 3, cycles: 4, pageCycles: 0, fn: c.and},
		{opcode: 0x2E, name: "ROL", mode: modeAbsolute, size: 3, cycles: 6, pageCycles: 0, fn: c.rol},
		{opcode: 0x2F, name: "RLA", mode: modeAbsolute, size: 3, cycles: 6, pageCycles: 0, fn: c.rla},
		{opcode: 0x30, name: "BMI", mode: modeRelative, size: 2, cycles: 2, pageCycles: 1, fn: c.bmi},
		{opcode: 0x31, name: "AND", mode: modeIndirectY, size: 2, cycles: 5, pageCycles: 1, fn: c.and},
		{opcode: 0x32, name: "KIL", mode: modeImplied, size: 1, cycles: 2, pageCycles: 0, fn: c.kil},
		{opcode: 0x33, name: "RLA", mode: modeIndirectY, size: 2, cycles: 8, pageCycles: 0, fn: c.rla},
		{opcode: 0x34, name: "NOP", mode: modeZeroPageX, size: 2, cycles: 4, pageCycles: 0, fn: c.nop},
		{opcode: 0x35, name: "AND", mode: modeZeroPageX, size: 2, cycles: 4, pageCycles: 0, fn: c.and},
		{opcode: 0x36, name: "ROL", mode: modeZeroPageX, size: 2, cycles: 6, pageCycles: 0, fn: c.rol},
		{opcode: 0x37, name: "RLA", mode: modeZeroPageX, size: 2, cycles: 6, pageCycles: 0, fn: c.rla},
		{opcode: 0x38, name: "SEC", mode: modeImplied, size: 1, cycles: 2, pageCycles: 0, fn: c.sec},
		{opcode: 0x39, name: "AND", mode: modeAbsoluteY, size: 3, cycles: 4, pageCycles: 1, fn: c.and},
		{opcode: 0x3A, name: "NOP", mode: modeImplied, size: 1, cycles: 2, pageCycles: 0, fn: c.nop},
		{opcode: 0x3B, name: "RLA", mode: modeAbsoluteY, size: 3, cycles: 7, pageCycles: 0, fn: c.rla},
		{opcode: 0x3C, name: "NOP", mode: modeAbsoluteX, size: 3, cycles: 4, pageCycles: 1, fn: c.nop},
		{opcode: 0x3D, name: "AND", mode: modeAbsoluteX, size: 3, cycles: 4, pageCycles: 1, fn: c.and},
		{opcode: 0x3E, name: "ROL", mode: modeAbsoluteX, size: 3, cycles: 7, pageCycles: 0, fn: c.rol},
		{opcode: 0x3F, name: "RLA", mode: modeAbsoluteX, size: 3, cycles: 7, pageCycles: 0, fn: c.rla},
		{opcode: 0x40, name: "RTI", mode: modeImplied, size: 1, cycles: 6, pageCycles: 0, fn: c.rti},
		{opcode: 0x41, name: "EOR", mode: modeIndirectX, size: 2, cycles: 6, pageCycles: 0, fn: c.eor},
		{opcode: 0x42, name: "KIL", mode: modeImplied, size: 1, cycles: 2, pageCycles: 0, fn: c.kil},
		{opcode: 0x43, name: "SRE", mode: modeIndirectX, size: 2, cycles: 8, pageCycles: 0, fn: c.sre},
		{opcode: 0x44, name: "NOP", mode: modeZeroPage, size: 2, cycles: 3, pageCycles: 0, fn: c.nop},
		{opcode: 0x45, name: "EOR", mode: modeZeroPage, size: 2, cycles: 3, pageCycles: 0, fn: c.eor},
		{opcode: 0x46, name: "LSR", mode: modeZeroPage, size: 2, cycles: 5, pageCycles: 0, fn: c.lsr},
		{opcode: 0x47, name: "SRE", mode: modeZeroPage, size: 2, cycles: 5, pageCycles: 0, fn: c.sre},
		{opcode: 0x48, name: "PHA", mode: modeImplied, size: 1, cycles: 3, pageCycles: 0, fn: c.pha},
		{opcode: 0x49, name: "EOR", mode: modeImmediate, size: 2, cycles: 2, pageCycles: 0, fn: c.eor},
		{opcode: 0x4A, name: "LSR", mode: modeAccumulator, size: 1, cycles: 2, pageCycles: 0, fn: c.lsr},
		{opcode: 0x4B, name: "ALR", mode: modeImmediate, size: 2, cycles: 2, pageCycles: 0, fn: c.alr},
		{opcode: 0x4C, name: "JMP", mode: modeAbsolute, size: 3, cycles: 3, pageCycles: 0, fn: c.jmp},
		{opcode: 0x4D, name: "EOR", mode: modeAbsolute, size: 3, cycles: 4, pageCycles: 0, fn: c.eor},
		{opcode: 0x4E, name: "LSR", mode: modeAbsolute, size: 3, cycles: 6, pageCycles: 0, fn: c.lsr},
		{opcode: 0x4F, name: "SRE", mode: modeAbsolute, size: 3, cycles: 6, pageCycles: 0, fn: c.sre},
		{opcode: 0x50, name: "BVC", mode: modeRelative, size: 2, cycles: 2, pageCycles: 1, fn: c.bvc},
		{opcode: 0x51, name: "EOR", mode: modeIndirectY, size: 2, cycles: 5, pageCycles: 1, fn: c.eor},
		{opcode: 0x52, name: "KIL", mode: modeImplied, size: 1, cycles: 2, pageCycles: 0, fn: c.kil},
		{opcode: 0x53, name: "SRE", mode: modeIndirectY, size: 2, cycles: 8, pageCycles: 0, fn: c.sre},
		{opcode: 0x54, name: "NOP", mode: modeZeroPageX, size: 2, cycles: 4, pageCycles: 0, fn: c.nop},
		{opcode: 0x55, name: "EOR", mode: modeZeroPageX, size: 2, cycles: 4, pageCycles: 0, fn: c.eor},
		{opcode: 0x56, name: "LSR", mode: modeZeroPageX, size: 2, cycles: 6, pageCycles: 0, fn: c.lsr},
		{opcode: 0x57, name: "SRE", mode: modeZeroPageX, size: 2, cycles: 6, pageCycles: 0, fn: c.sre},
		{opcode: 0x58, name: "CLI", mode: modeImplied, size: 1, cycles: 2, pageCycles: 0, fn: c.cli},
		{opcode: 0x59, name: "EOR", mode: modeAbsoluteY, size: 3, cycles: 4, pageCycles: 1, fn: c.eor},
		{opcode: 0x5A, name: "NOP", mode: modeImplied, size: 1, cycles: 2, pageCycles: 0, fn: c.nop},
		{opcode: 0x5B, name: "SRE", mode: modeAbsoluteY, size: 3, cycles: 7, pageCycles: 0, fn: c.sre},
		{opcode: 0x5C, name: "NOP", mode: modeAbsoluteX, size: 3, cycles: 4, pageCycles: 1, fn: c.nop},
		{opcode: 0x5D, name: "EOR", mode: modeAbsoluteX, size: 3, cycles: 4, pageCycles: 1, fn: c.eor},
		{opcode: 0x5E, name: "LSR", mode: modeAbsoluteX, size: 3, cycles: 7, pageCycles: 0, fn: c.lsr},
		{opcode: 0x5F, name: "SRE", mode: modeAbsoluteX, size: 3, cycles: 7, pageCycles: 0, fn: c.sre},
		{opcode: 0x60, name: "RTS", mode: modeImplied, size: 1, cycles: 6, pageCycles: 0, fn: c.rts},
		{opcode: 0x61, name: "ADC", mode: modeIndirectX, size: 2, cycles: 6, pageCycles: 0, fn: c.adc},
		{opcode: 0x62, name: "KIL", mode: modeImplied, size: 1, cycles: 2, pageCycles: 0, fn: c.kil},
		{opcode: 0x63, name: "RRA", mode: modeIndirectX, size: 2, cycles: 8, pageCycles: 0, fn: c.rra},
		{opcode: 0x64, name: "NOP", mode: modeZeroPage, size: 2, cycles: 3, pageCycles: 0, fn: c.nop},
		{opcode: 0x65, name: "ADC", mode: modeZeroPage, size: 2, cycles: 3, pageCycles: 0, fn: c.adc},
		{opcode: 0x66, name: "ROR", mode: modeZeroPage, size: 2, cycles: 5, pageCycles: 0, fn: c.ror},
		{opcode: 0x67, name: "RRA", mode: modeZeroPage, size: 2, cycles: 5, pageCycles: 0, fn: c.rra},
		{opcode: 0x68, name: "PLA", mode: modeImplied, size: 1, cycles: 4, pageCycles: 0, fn: c.pla},
		{opcode: 0x69, name: "ADC", mode: modeImmediate, size: 2, cycles: 2, pageCycles: 0, fn: c.adc},
		{opcode: 0x6A, name: "ROR", mode: modeAccumulator, size: 1, cycles: 2, pageCycles: 0, fn: c.ror},
		{opcode: 0x6B, name: "ARR", mode: modeImmediate, size: 2, cycles: 2, pageCycles: 0, fn: c.arr},
		{opcode: 0x6C, name: "JMP", mode: modeIndirect, size: 3, cycles: 5, pageCycles: 0, fn: c.jmp},
		{opcode: 0x6D, name: "ADC", mode: modeAbsolute, size: 3, cycles: 4, pageCycles: 0, fn: c.adc},
		{opcode: 0x6E, name: "ROR", mode: modeAbsolute, size: 3, cycles: 6, pageCycles: 0, fn: c.ror},
		{opcode: 0x6F, name: "RRA", mode: modeAbsolute, size: 3, cycles: 6, pageCycles: 0, fn: c.rra},
		{opcode: 0x70, name: "BVS", mode: modeRelative, size: 2, cycles: 2, pageCycles: 1, fn: c.bvs},
		{opcode: 0x71, name: "ADC", mode: modeIndirectY, size: 2, cycles: 5, pageCycles: 1, fn: c.adc},
		{opcode: 0x72, name: "KIL", mode: modeImplied, size: 1, cycles: 2, pageCycles: 0, fn: c.kil},
		{opcode: 0x73, name: "RRA", mode: modeIndirectY, size: 2, cycles: 8, pageCycles: 0, fn: c.rra},
		{opcode: 0x74, name: "NOP", mode: modeZeroPageX, size: 2, cycles: 4, pageCycles: 0, fn: c.nop},
		{opcode: 0x75, name: "ADC", mode: modeZeroPageX, size: 2, cycles: 4, pageCycles: 0, fn: c.adc},
		{opcode: 0x76, name: "ROR", mode: modeZeroPageX, size: 2, cycles: 6, pageCycles: 0, fn: c.ror},
		{opcode: 0x77, name: "RRA", mode: modeZeroPageX, size: 2, cycles: 6, pageCycles: 0, fn: c.rra},
		{opcode: 0x78, name: "SEI", mode: modeImplied, size: 1, cycles: 2, pageCycles: 0, fn: c.sei},
		{opcode: 0x79, name: "ADC", mode: modeAbsoluteY, size: 3, cycles: 4, pageCycles: 1, fn: c.adc},
		{opcode: 0x7A, name: "NOP", mode: modeImplied, size: 1, cycles: 2, pageCycles: 0, fn: c.nop},
		{opcode: 0x7B, name: "RRA", mode: modeAbsoluteY, size: 3, cycles: 7, pageCycles: 0, fn: c.rra},
		{opcode: 0x7C, name: "NOP", mode: modeAbsoluteX, size: 3, cycles: 4, pageCycles: 1, fn: c.nop},
		{opcode: 0x7D, name: "ADC", mode: modeAbsoluteX, size: 3, cycles: 4, pageCycles: 1, fn: c.adc},
		{opcode: 0x7E, name: "ROR", mode: modeAbsoluteX, size: 3, cycles: 7, pageCycles: 0, fn: c.ror},
		{opcode: 0x7F, name: "RRA", mode: modeAbsoluteX, size: 3, cycles: 7, pageCycles: 0, fn: c.rra},
		{opcode: 0x80, name: "NOP", mode: modeImmediate, size: 2, cycles: 2, pageCycles: 0, fn: c.nop},
		{opcode: 0x81, name: "STA", mode: modeIndirectX, size: 2, cycles: 6, pageCycles: 0, fn: c.sta},
		{opcode: 0x82, name: "NOP", mode: modeImmediate, size: 2, cycles: 2, pageCycles: 0, fn: c.nop},
		{opcode: 0x83, name: "SAX", mode: modeIndirectX, size: 2, cycles: 6, pageCycles: 0, fn: c.sax},
		{opcode: 0x84, name: "STY", mode: modeZeroPage, size: 2, cycles: 3, pageCycles: 0, fn: c.sty},
		{opcode: 0x85, name: "STA", mode: modeZeroPage, size: 2, cycles: 3, pageCycles: 0, fn: c.sta},
		{opcode: 0x86, name: "STX", mode: modeZeroPage, size: 2, cycles: 3, pageCycles: 0, fn: c.stx},
		{opcode: 0x87, name: "SAX", mode: modeZeroPage, size: 2, cycles: 3, pageCycles: 0, fn: c.sax},
		{opcode: 0x88, name: "DEY", mode: modeImplied, size: 1, cycles: 2, pageCycles: 0, fn: c.dey},
		{opcode: 0x89, name: "NOP", mode: modeImmediate, size: 2, cycles: 2, pageCycles: 0, fn: c.nop},
		{opcode: 0x8A, name: "TXA", mode: modeImplied, size: 1, cycles: 2, pageCycles: 0, fn: c.txa},
		{opcode: 0x8B, name: "XAA", mode: modeImmediate, size: 2, cycles: 2, pageCycles: 0, fn: c.xaa},
		{opcode: 0x8C, name: "STY", mode: modeAbsolute, size: 3, cycles: 4, pageCycles: 0, fn: c.sty},
		{opcode: 0x8D, name: "STA", mode: modeAbsolute, size: 3, cycles: 4, pageCycles: 0, fn: c.sta},
		{opcode: 0x8E, name: "STX", mode: modeAbsolute, size: 3, cycles: 4, pageCycles: 0, fn: c.stx},
		{opcode: 0x8F, name: "SAX", mode: modeAbsolute, size: 3, cycles: 4, pageCycles: 0, fn: c.sax},
		{opcode: 0x90, name: "BCC", mode: modeRelative, size: 2, cycles: 2, pageCycles: 1, fn: c.bcc},
		{opcode: 0x91, name: "STA", mode: modeIndirectY, size: 2, cycles: 6, pageCycles: 0, fn: c.sta},
		{opcode: 0x92, name: "KIL", mode: modeImplied, size: 1, cycles: 2, pageCycles: 0, fn: c.kil},
		{opcode: 0x93, name: "AHX", mode: modeIndirectY, size: 2, cycles: 6, pageCycles: 0, fn: c.ahx},
		{opcode: 0x94, name: "STY", mode: modeZeroPageX, size: 2, cycles: 4, pageCycles: 0, fn: c.sty},
		{opcode: 0x95, name: "STA", mode: modeZeroPageX, size: 2, cycles: 4, pageCycles: 0, fn: c.sta},
		{opcode: 0x96, name: "STX", mode: modeZeroPageY, size: 2, cycles: 4, pageCycles: 0, fn: c.stx},
		{opcode: 0x97, name: "SAX", mode: modeZeroPageY, size: 2, cycles: 4, pageCycles: 0, fn: c.sax},
		{opcode: 0x98, name: "TYA", mode: modeImplied, size: 1, cycles: 2, pageCycles: 0, fn: c.tya},
		{opcode: 0x99, name: "STA", mode: modeAbsoluteY, size: 3, cycles: 5, pageCycles: 0, fn: c.sta},
		{opcode: 0x9A, name: "TXS", mode: modeImplied, size: 1, cycles: 2, pageCycles: 0, fn: c.txs},
		{opcode: 0x9B, name: "TAS", mode: modeAbsoluteY, size: 3, cycles: 5, pageCycles: 0, fn: c.tas},
		{opcode: 0x9C, name: "SHY", mode: modeAbsoluteX, size: 3, cycles: 5, pageCycles: 0, fn: c.shy},
		{opcode: 0x9D, name: "STA", mode: modeAbsoluteX, size: 3, cycles: 5, pageCycles: 0, fn: c.sta},
		{opcode: 0x9E, name: "SHX", mode: modeAbsoluteY, size: 3, cycles: 5, pageCycles: 0, fn: c.shx},
		{opcode: 0x9F, name: "AHX", mode: modeAbsoluteY, size: 3, cycles: 5, pageCycles: 0, fn: c.ahx},
		{opcode: 0xA0, name: "LDY", mode: modeImmediate, size: 2, cycles: 2, pageCycles: 0, fn: c.ldy},
		{opcode: 0xA1, name: "LDA", mode: modeIndirectX, size: 2, cycles: 6, pageCycles: 0, fn: c.lda},
		{opcode: 0xA2, name: "LDX", mode: modeImmediate, size: 2, cycles: 2, pageCycles: 0, fn: c.ldx},
		{opcode: 0xA3, name: "LAX", mode: modeIndirectX, size: 2, cycles: 6, pageCycles: 0, fn: c.lax},
		{opcode: 0xA4, name: "LDY", mode: modeZeroPage, size: 2, cycles: 3, pageCycles: 0, fn: c.ldy},
		{opcode: 0xA5, name: "LDA", mode: modeZeroPage, size: 2, cycles: 3, pageCycles: 0, fn: c.lda},
		{opcode: 0xA6, name: "LDX", mode: modeZeroPage, size: 2, cycles: 3, pageCycles: 0, fn: c.ldx},
		{opcode: 0xA7, name: "LAX", mode: modeZeroPage, size: 2, cycles: 3, pageCycles: 0, fn: c.lax},
		{opcode: 0xA8, name: "TAY", mode: modeImplied, size: 1, cycles: 2, pageCycles: 0, fn: c.tay},
		{opcode: 0xA9, name: "LDA", mode: modeImmediate, size: 2, cycles: 2, pageCycles: 0, fn: c.lda},
		{opcode: 0xAA, name: "TAX", mode: modeImplied, size: 1, cycles: 2, pageCycles: 0, fn: c.tax},
		{opcode: 0xAB, name: "LAX", mode: modeImmediate, size: 2, cycles: 2, pageCycles: 0, fn: c.lax},
		{opcode: 0xAC, name: "LDY", mode: modeAbsolute, size: 3, cycles: 4, pageCycles: 0, fn: c.ldy},
		{opcode: 0xAD, name: "LDA", mode: modeAbsolute, size: 3, cycles: 4, pageCycles: 0, fn: c.lda},
		{opcode: 0xAE, name: "LDX", mode: modeAbsolute, size: 3, cycles: 4, pageCycles: 0, fn: c.ldx},
		{opcode: 0xAF, name: "LAX", mode: modeAbsolute, size: 3, cycles: 4, pageCycles: 0, fn: c.lax},
		{opcode: 0xB0, name: "BCS", mode: modeRelative, size: 2, cycles: 2, pageCycles: 1, fn: c.bcs},
		{opcode: 0xB1, name: "LDA", mode: modeIndirectY, size: 2, cycles: 5, pageCycles: 1, fn: c.lda},
		{opcode: 0xB2, name: "KIL", mode: modeImplied, size: 1, cycles: 2, pageCycles: 0, fn: c.kil},
		{opcode: 0xB3, name: "LAX", mode: modeIndirectY, size: 2, cycles: 5, pageCycles: 1, fn: c.lax},
		{opcode: 0xB4, name: "LDY", mode: modeZeroPageX, size: 2, cycles: 4, pageCycles: 0, fn: c.ldy},
		{opcode: 0xB5, name: "LDA", mode: modeZeroPageX, size: 2, cycles: 4, pageCycles: 0, fn: c.lda},
		{opcode: 0xB6, name: "LDX", mode: modeZeroPageY, size: 2, cycles: 4, pageCycles: 0, fn: c.ldx},
		{opcode: 0xB7, name: "LAX", mode: modeZeroPageY, size: 2, cycles: 4, pageCycles: 0, fn: c.lax},
		{opcode: 0xB8, name: "CLV", mode: modeImplied, size: 1, cycles: 2, pageCycles: 0, fn: c.clv},
		{opcode: 0xB9, name: "LDA", mode: modeAbsoluteY, size: 3, cycles: 4, pageCycles: 1, fn: c.lda},
		{opcode: 0xBA, name: "TSX", mode: modeImplied, size: 1, cycles: 2, pageCycles: 0, fn: c.tsx},
		{opcode: 0xBB, name: "LAS", mode: modeAbsoluteY, size: 3, cycles: 4, pageCycles: 1, fn: c.las},
		{opcode: 0xBC, name: "LDY", mode: modeAbsoluteX, size: 3, cycles: 4, pageCycles: 1, fn: c.ldy},
		{opcode: 0xBD, name: "LDA", mode: modeAbsoluteX, size: 3, cycles: 4, pageCycles: 1, fn: c.lda},
		{opcode: 0xBE, name: "LDX", mode: modeAbsoluteY, size: 3, cycles: 4, pageCycles: 1, fn: c.ldx},
		{opcode: 0xBF, name: "LAX", mode: modeAbsoluteY, size: 3, cycles: 4, pageCycles: 1, fn: c.lax},
		{opcode: 0xC0, name: "CPY", mode: modeImmediate, size: 2, cycles: 2, pageCycles: 0, fn: c.cpy},
		{opcode: 0xC1, name: "CMP", mode: modeIndirectX, size: 2, cycles: 6, pageCycles: 0, fn: c.cmp},
		{opcode: 0xC2, name: "NOP", mode: modeImmediate, size: 2, cycles: 2, pageCycles: 0, fn: c.nop},
		{opcode: 0xC3, name: "DCP", mode: modeIndirectX, size: 2, cycles: 8, pageCycles: 0, fn: c.dcp},
		{opcode: 0xC4, name: "CPY", mode: modeZeroPage, size: 2, cycles: 3, pageCycles: 0, fn: c.cpy},
		{opcode: 0xC5, name: "CMP", mode: modeZeroPage, size: 2, cycles: 3, pageCycles: 0, fn: c.cmp},
		{opcode: 0xC6, name: "DEC", mode: modeZeroPage, size: 2, cycles: 5, pageCycles: 0, fn: c.dec},
		{opcode: 0xC7, name: "DCP", mode: modeZeroPage, size: 2, cycles: 5, pageCycles: 0, fn: c.dcp},
		{opcode: 0xC8, name: "INY", mode: modeImplied, size: 1, cycles: 2, pageCycles: 0, fn: c.iny},
		{opcode: 0xC9, name: "CMP", mode: modeImmediate, size: 2, cycles: 2, pageCycles: 0, fn: c.cmp},
		{opcode: 0xCA, name: "DEX", mode: modeImplied, size: 1, cycles: 2, pageCycles: 0, fn: c.dex},
		{opcode: 0xCB, name: "AXS", mode: modeImmediate, size: 2, cycles: 2, pageCycles: 0, fn: c.axs},
		{opcode: 0xCC, name: "CPY", mode: modeAbsolute, size: 3, cycles: 4, pageCycles: 0, fn: c.cpy},
		{opcode: 0xCD, name: "CMP", mode: modeAbsolute, size: 3, cycles: 4, pageCycles: 0, fn: c.cmp},
		{opcode: 0xCE, name: "DEC", mode: modeAbsolute, size: 3, cycles: 6, pageCycles: 0, fn: c.dec},
		{opcode: 0xCF, name: "DCP", mode: modeAbsolute, size: 3, cycles: 6, pageCycles: 0, fn: c.dcp},
		{opcode: 0xD0, name: "BNE", mode: modeRelative, size: 2, cycles: 2, pageCycles: 1, fn: c.bne},
		{opcode: 0xD1, name: "CMP", mode: modeIndirectY, size: 2, cycles: 5, pageCycles: 1, fn: c.cmp},
		{opcode: 0xD2, name: "KIL", mode: modeImplied, size: 1, cycles: 2, pageCycles: 0, fn: c.kil},
		{opcode: 0xD3, name: "DCP", mode: modeIndirectY, size: 2, cycles: 8, pageCycles: 0, fn: c.dcp},
		{opcode: 0xD4, name: "NOP", mode: modeZeroPageX, size: 2, cycles: 4, pageCycles: 0, fn: c.nop},
		{opcode: 0xD5, name: "CMP", mode: modeZeroPageX, size: 2, cycles: 4, pageCycles: 0, fn: c.cmp},
		{opcode: 0xD6, name: "DEC", mode: modeZeroPageX, size: 2, cycles: 6, pageCycles: 0, fn: c.dec},
		{opcode: 0xD7, name: "DCP", mode: modeZeroPageX, size: 2, cycles: 6, pageCycles: 0, fn: c.dcp},
		{opcode: 0xD8, name: "CLD", mode: modeImplied, size: 1, cycles: 2, pageCycles: 0, fn: c.cld},
		{opcode: 0xD9, name: "CMP", mode: modeAbsoluteY, size: 3, cycles: 4, pageCycles: 1, fn: c.cmp},
		{opcode: 0xDA, name: "NOP", mode: modeImplied, size: 1, cycles: 2, pageCycles: 0, fn: c.nop},
		{opcode: 0xDB, name: "DCP", mode: modeAbsoluteY, size: 3, cycles: 7, pageCycles: 0, fn: c.dcp},
		{opcode: 0xDC, name: "NOP", mode: modeAbsoluteX, size: 3, cycles: 4, pageCycles: 1, fn: c.nop},
		{opcode: 0xDD, name: "CMP", mode: modeAbsoluteX, size: 3, cycles: 4, pageCycles: 1, fn: c.cmp},
		{opcode: 0xDE, name: "DEC", mode: modeAbsoluteX, size: 3, cycles: 7, pageCycles: 0, fn: c.dec},
		{opcode: 0xDF, name: "DCP", mode: modeAbsoluteX, size: 3, cycles: 7, pageCycles: 0, fn: c.dcp},
		{opcode: 0xE0, name: "CPX", mode: modeImmediate, size: 2, cycles: 2, pageCycles: 0, fn: c.cpx},
		{opcode: 0xE1, name: "SBC", mode: modeIndirectX, size: 2, cycles: 6, pageCycles: 0, fn: c.sbc},
		{opcode: 0xE2, name: "NOP", mode: modeImmediate, size: 2, cycles: 2, pageCycles: 0, fn: c.nop},
		{opcode: 0xE3, name: "ISC", mode: modeIndirectX, size: 2, cycles: 8, pageCycles: 0, fn: c.isc},
		{opcode: 0xE4, name: "CPX", mode: modeZeroPage, size: 2, cycles: 3, pageCycles: 0, fn: c.cpx},
		{opcode: 0xE5, name: "SBC", mode: modeZeroPage, size: 2, cycles: 3, pageCycles: 0, fn: c.sbc},
		{opcode: 0xE6, name: "INC", mode: modeZeroPage, size: 2, cycles: 5, pageCycles: 0, fn: c.inc},
		{opcode: 0xE7, name: "ISC", mode: modeZeroPage, size: 2, cycles: 5, pageCycles: 0, fn: c.isc},
		{opcode: 0xE8, name: "INX", mode: modeImplied, size: 1, cycles: 2, pageCycles: 0, fn: c.inx},
		{opcode: 0xE9, name: "SBC", mode: modeImmediate, size: 2, cycles: 2, pageCycles: 0, fn: c.sbc},
		{opcode: 0xEA, name: "NOP", mode: modeImplied, size: 1, cycles: 2, pageCycles: 0, fn: c.nop},
		{opcode: 0xEB, name: "SBC", mode: modeImmediate, size: 2, cycles: 2, pageCycles: 0, fn: c.sbc},
		{opcode: 0xEC, name: "CPX", mode: modeAbsolute, size: 3, cycles: 4, pageCycles: 0, fn: c.cpx},
		{opcode: 0xED, name: "SBC", mode: modeAbsolute, size: 3, cycles: 4, pageCycles: 0, fn: c.sbc},
		{opcode: 0xEE, name: "INC", mode: modeAbsolute, size: 3, cycles: 6, pageCycles: 0, fn: c.inc},
		{opcode: 0xEF, name: "ISC", mode: modeAbsolute, size: 3, cycles: 6, pageCycles: 0, fn: c.isc},
		{opcode: 0xF0, name: "BEQ", mode: modeRelative, size: 2, cycles: 2, pageCycles: 1, fn: c.beq},
		{opcode: 0xF1, name: "SBC", mode: modeIndirectY, size: 2, cycles: 5, pageCycles: 1, fn: c.sbc},
		{opcode: 0xF2, name: "KIL", mode: modeImplied, size: 1, cycles: 2, pageCycles: 0, fn: c.kil},
		{opcode: 0xF3, name: "ISC", mode: modeIndirectY, size: 2, cycles: 8, pageCycles: 0, fn: c.isc},
		{opcode: 0xF4, name: "NOP", mode: modeZeroPageX, size: 2, cycles: 4, pageCycles: 0, fn: c.nop},
		{opcode: 0xF5, name: "SBC", mode: modeZeroPageX, size: 2, cycles: 4, pageCycles: 0, fn: c.sbc},
		{opcode: 0xF6, name: "INC", mode: modeZeroPageX, size: 2, cycles: 6, pageCycles: 0, fn: c.inc},
		{opcode: 0xF7, name: "ISC", mode: modeZeroPageX, size: 2, cycles: 6, pageCycles: 0, fn: c.isc},
		{opcode: 0xF8, name: "SED", mode: modeImplied, size: 1, cycles: 2, pageCycles: 0, fn: c.sed},
		{opcode: 0xF9, name: "SBC", mode: modeAbsoluteY, size: 3, cycles: 4, pageCycles: 1, fn: c.sbc},
		{opcode: 0xFA, name: "NOP", mode: modeImplied, size: 1, cycles: 2, pageCycles: 0, fn: c.nop},
		{opcode: 0xFB, name: "ISC", mode: modeAbsoluteY, size: 3, cycles: 7, pageCycles: 0, fn: c.isc},
		{opcode: 0xFC, name: "NOP", mode: modeAbsoluteX, size: 3, cycles: 4, pageCycles: 1, fn: c.nop},
		{opcode: 0xFD, name: "SBC", mode: modeAbsoluteX, size: 3, cycles: 4, pageCycles: 1, fn: c.sbc},
		{opcode: 0xFE, name: "INC", mode: modeAbsoluteX, size: 3, cycles: 7, pageCycles: 0, fn: c.inc},
		{opcode: 0xFF, name: "ISC", mode: modeAbsoluteX, size: 3, cycles: 7, pageCycles: 0, fn: c.isc},
	}
}
