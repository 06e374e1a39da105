package famicore

import (
	"fmt"
	"io"

	"github.com/go-faster/jx"
)

const stateVersion = 1

// SaveState serializes the complete engine state as JSON: CPU registers,
// work RAM, PPU rendering state, APU channel state, mapper banking state
// and cartridge RAM. The stream is self-contained; restoring it into a
// console built from the same ROM resumes execution exactly.
func (c *Console) SaveState(w io.Writer) error {
	var e jx.Encoder
	e.Obj(func(e *jx.Encoder) {
		e.Field("version", func(e *jx.Encoder) { e.Int(stateVersion) })
		e.Field("cpu", func(e *jx.Encoder) { c.CPU.saveState(e) })
		e.Field("ram", func(e *jx.Encoder) { e.Base64(c.Bus.WRAM[:]) })
		e.Field("ppu", func(e *jx.Encoder) { c.PPU.saveState(e) })
		e.Field("apu", func(e *jx.Encoder) { c.APU.saveState(e) })
		e.Field("mapper", func(e *jx.Encoder) { c.Mapper.(stateful).saveState(e) })
		e.Field("sram", func(e *jx.Encoder) { e.Base64(c.Cartridge.SRAM) })
		if c.Cartridge.HasChrRAM() {
			e.Field("chrram", func(e *jx.Encoder) { e.Base64(c.Cartridge.CHR) })
		}
	})
	_, err := w.Write(e.Bytes())
	return err
}

// LoadState restores state serialized by SaveState.
func (c *Console) LoadState(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	d := jx.DecodeBytes(data)
	return d.Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "version":
			v, err := d.Int()
			if err != nil {
				return err
			}
			if v != stateVersion {
				return fmt.Errorf("unknown state version %d", v)
			}
			return nil
		case "cpu":
			return c.CPU.loadState(d)
		case "ram":
			return decodeBytes(d, c.Bus.WRAM[:])
		case "ppu":
			return c.PPU.loadState(d)
		case "apu":
			return c.APU.loadState(d)
		case "mapper":
			return c.Mapper.(stateful).loadState(d)
		case "sram":
			return decodeBytes(d, c.Cartridge.SRAM)
		case "chrram":
			return decodeBytes(d, c.Cartridge.CHR)
		default:
			return d.Skip()
		}
	})
}

// stateful is implemented by every mapper variant so banking state survives
// the round trip.
type stateful interface {
	saveState(e *jx.Encoder)
	loadState(d *jx.Decoder) error
}

func decodeBytes(d *jx.Decoder, dst []byte) error {
	data, err := d.Base64()
	if err != nil {
		return err
	}
	if len(data) != len(dst) {
		return fmt.Errorf("state length mismatch: %d != %d", len(data), len(dst))
	}
	copy(dst, data)
	return nil
}

func decodeByte(d *jx.Decoder, dst *byte) error {
	v, err := d.Int()
	*dst = byte(v)
	return err
}

func decodeInt(d *jx.Decoder, dst *int) error {
	v, err := d.Int()
	*dst = v
	return err
}

func decodeUint16(d *jx.Decoder, dst *uint16) error {
	v, err := d.Int()
	*dst = uint16(v)
	return err
}

func decodeBool(d *jx.Decoder, dst *bool) error {
	v, err := d.Bool()
	*dst = v
	return err
}

func (c *CPU) saveState(e *jx.Encoder) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("pc", func(e *jx.Encoder) { e.Int(int(c.PC)) })
		e.Field("sp", func(e *jx.Encoder) { e.Int(int(c.SP)) })
		e.Field("a", func(e *jx.Encoder) { e.Int(int(c.A)) })
		e.Field("x", func(e *jx.Encoder) { e.Int(int(c.X)) })
		e.Field("y", func(e *jx.Encoder) { e.Int(int(c.Y)) })
		e.Field("p", func(e *jx.Encoder) { e.Int(int(c.Flags())) })
		e.Field("cycles", func(e *jx.Encoder) { e.UInt64(c.Cycles) })
		e.Field("irq", func(e *jx.Encoder) { e.Int(int(c.irqSources)) })
		e.Field("nmi", func(e *jx.Encoder) { e.Bool(c.nmiPending) })
		e.Field("stall", func(e *jx.Encoder) { e.Int(c.stall) })
	})
}

func (c *CPU) loadState(d *jx.Decoder) error {
	return d.Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "pc":
			return decodeUint16(d, &c.PC)
		case "sp":
			return decodeByte(d, &c.SP)
		case "a":
			return decodeByte(d, &c.A)
		case "x":
			return decodeByte(d, &c.X)
		case "y":
			return decodeByte(d, &c.Y)
		case "p":
			var p byte
			if err := decodeByte(d, &p); err != nil {
				return err
			}
			c.SetFlags(p)
			return nil
		case "cycles":
			v, err := d.UInt64()
			c.Cycles = v
			return err
		case "irq":
			return decodeByte(d, &c.irqSources)
		case "nmi":
			return decodeBool(d, &c.nmiPending)
		case "stall":
			return decodeInt(d, &c.stall)
		default:
			return d.Skip()
		}
	})
}

func (p *PPU) saveState(e *jx.Encoder) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("cycle", func(e *jx.Encoder) { e.Int(p.Cycle) })
		e.Field("scanline", func(e *jx.Encoder) { e.Int(p.ScanLine) })
		e.Field("frame", func(e *jx.Encoder) { e.UInt64(p.Frame) })
		e.Field("palette", func(e *jx.Encoder) { e.Base64(p.paletteData[:]) })
		e.Field("nametable", func(e *jx.Encoder) { e.Base64(p.nametableData[:]) })
		e.Field("oam", func(e *jx.Encoder) { e.Base64(p.oamData[:]) })
		e.Field("v", func(e *jx.Encoder) { e.Int(int(p.v)) })
		e.Field("t", func(e *jx.Encoder) { e.Int(int(p.t)) })
		e.Field("x", func(e *jx.Encoder) { e.Int(int(p.x)) })
		e.Field("w", func(e *jx.Encoder) { e.Int(int(p.w)) })
		e.Field("f", func(e *jx.Encoder) { e.Int(int(p.f)) })
		e.Field("register", func(e *jx.Encoder) { e.Int(int(p.register)) })
		e.Field("nmiOccurred", func(e *jx.Encoder) { e.Bool(p.nmiOccurred) })
		e.Field("nmiOutput", func(e *jx.Encoder) { e.Bool(p.nmiOutput) })
		e.Field("nmiPrevious", func(e *jx.Encoder) { e.Bool(p.nmiPrevious) })
		e.Field("nmiDelay", func(e *jx.Encoder) { e.Int(int(p.nmiDelay)) })
		e.Field("nmiTriggered", func(e *jx.Encoder) { e.Bool(p.nmiTriggered) })
		e.Field("nameTableByte", func(e *jx.Encoder) { e.Int(int(p.nameTableByte)) })
		e.Field("attributeTableByte", func(e *jx.Encoder) { e.Int(int(p.attributeTableByte)) })
		e.Field("lowTileByte", func(e *jx.Encoder) { e.Int(int(p.lowTileByte)) })
		e.Field("highTileByte", func(e *jx.Encoder) { e.Int(int(p.highTileByte)) })
		e.Field("tileData", func(e *jx.Encoder) { e.UInt64(p.tileData) })
		e.Field("spriteCount", func(e *jx.Encoder) { e.Int(p.spriteCount) })
		e.Field("spritePatterns", func(e *jx.Encoder) {
			e.Arr(func(e *jx.Encoder) {
				for i := range p.spritePatterns {
					e.UInt32(p.spritePatterns[i])
				}
			})
		})
		e.Field("spritePositions", func(e *jx.Encoder) { e.Base64(p.spritePositions[:]) })
		e.Field("spritePriorities", func(e *jx.Encoder) { e.Base64(p.spritePriorities[:]) })
		e.Field("spriteIndexes", func(e *jx.Encoder) { e.Base64(p.spriteIndexes[:]) })
		e.Field("control", func(e *jx.Encoder) { e.Int(int(p.controlValue())) })
		e.Field("mask", func(e *jx.Encoder) { e.Int(int(p.maskValue())) })
		e.Field("spriteZeroHit", func(e *jx.Encoder) { e.Int(int(p.flagSpriteZeroHit)) })
		e.Field("spriteOverflow", func(e *jx.Encoder) { e.Int(int(p.flagSpriteOverflow)) })
		e.Field("oamAddress", func(e *jx.Encoder) { e.Int(int(p.oamAddress)) })
		e.Field("bufferedData", func(e *jx.Encoder) { e.Int(int(p.bufferedData)) })
	})
}

func (p *PPU) loadState(d *jx.Decoder) error {
	return d.Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "cycle":
			return decodeInt(d, &p.Cycle)
		case "scanline":
			return decodeInt(d, &p.ScanLine)
		case "frame":
			v, err := d.UInt64()
			p.Frame = v
			return err
		case "palette":
			return decodeBytes(d, p.paletteData[:])
		case "nametable":
			return decodeBytes(d, p.nametableData[:])
		case "oam":
			return decodeBytes(d, p.oamData[:])
		case "v":
			return decodeUint16(d, &p.v)
		case "t":
			return decodeUint16(d, &p.t)
		case "x":
			return decodeByte(d, &p.x)
		case "w":
			return decodeByte(d, &p.w)
		case "f":
			return decodeByte(d, &p.f)
		case "register":
			return decodeByte(d, &p.register)
		case "nmiOccurred":
			return decodeBool(d, &p.nmiOccurred)
		case "nmiOutput":
			return decodeBool(d, &p.nmiOutput)
		case "nmiPrevious":
			return decodeBool(d, &p.nmiPrevious)
		case "nmiDelay":
			return decodeByte(d, &p.nmiDelay)
		case "nmiTriggered":
			return decodeBool(d, &p.nmiTriggered)
		case "nameTableByte":
			return decodeByte(d, &p.nameTableByte)
		case "attributeTableByte":
			return decodeByte(d, &p.attributeTableByte)
		case "lowTileByte":
			return decodeByte(d, &p.lowTileByte)
		case "highTileByte":
			return decodeByte(d, &p.highTileByte)
		case "tileData":
			v, err := d.UInt64()
			p.tileData = v
			return err
		case "spriteCount":
			return decodeInt(d, &p.spriteCount)
		case "spritePatterns":
			i := 0
			return d.Arr(func(d *jx.Decoder) error {
				v, err := d.UInt32()
				if i < len(p.spritePatterns) {
					p.spritePatterns[i] = v
				}
				i++
				return err
			})
		case "spritePositions":
			return decodeBytes(d, p.spritePositions[:])
		case "spritePriorities":
			return decodeBytes(d, p.spritePriorities[:])
		case "spriteIndexes":
			return decodeBytes(d, p.spriteIndexes[:])
		case "control":
			var v byte
			if err := decodeByte(d, &v); err != nil {
				return err
			}
			p.setControlValue(v)
			return nil
		case "mask":
			var v byte
			if err := decodeByte(d, &v); err != nil {
				return err
			}
			p.writeMask(v)
			return nil
		case "spriteZeroHit":
			return decodeByte(d, &p.flagSpriteZeroHit)
		case "spriteOverflow":
			return decodeByte(d, &p.flagSpriteOverflow)
		case "oamAddress":
			return decodeByte(d, &p.oamAddress)
		case "bufferedData":
			return decodeByte(d, &p.bufferedData)
		default:
			return d.Skip()
		}
	})
}

func (a *APU) saveState(e *jx.Encoder) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("cycle", func(e *jx.Encoder) { e.UInt64(a.cycle) })
		e.Field("framePeriod", func(e *jx.Encoder) { e.Int(int(a.framePeriod)) })
		e.Field("frameValue", func(e *jx.Encoder) { e.Int(int(a.frameValue)) })
		e.Field("frameIRQInhibit", func(e *jx.Encoder) { e.Bool(a.frameIRQInhibit) })
		e.Field("frameIRQ", func(e *jx.Encoder) { e.Bool(a.frameIRQ) })
		e.Field("pulse1", func(e *jx.Encoder) { a.pulse1.saveState(e) })
		e.Field("pulse2", func(e *jx.Encoder) { a.pulse2.saveState(e) })
		e.Field("triangle", func(e *jx.Encoder) { a.triangle.saveState(e) })
		e.Field("noise", func(e *jx.Encoder) { a.noise.saveState(e) })
		e.Field("dmc", func(e *jx.Encoder) { a.dmc.saveState(e) })
	})
}

func (a *APU) loadState(d *jx.Decoder) error {
	return d.Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "cycle":
			v, err := d.UInt64()
			a.cycle = v
			return err
		case "framePeriod":
			return decodeByte(d, &a.framePeriod)
		case "frameValue":
			return decodeByte(d, &a.frameValue)
		case "frameIRQInhibit":
			return decodeBool(d, &a.frameIRQInhibit)
		case "frameIRQ":
			return decodeBool(d, &a.frameIRQ)
		case "pulse1":
			return a.pulse1.loadState(d)
		case "pulse2":
			return a.pulse2.loadState(d)
		case "triangle":
			return a.triangle.loadState(d)
		case "noise":
			return a.noise.loadState(d)
		case "dmc":
			return a.dmc.loadState(d)
		default:
			return d.Skip()
		}
	})
}

func (p *Pulse) saveState(e *jx.Encoder) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("enabled", func(e *jx.Encoder) { e.Bool(p.enabled) })
		e.Field("lengthEnabled", func(e *jx.Encoder) { e.Bool(p.lengthEnabled) })
		e.Field("lengthValue", func(e *jx.Encoder) { e.Int(int(p.lengthValue)) })
		e.Field("timerPeriod", func(e *jx.Encoder) { e.Int(int(p.timerPeriod)) })
		e.Field("timerValue", func(e *jx.Encoder) { e.Int(int(p.timerValue)) })
		e.Field("dutyMode", func(e *jx.Encoder) { e.Int(int(p.dutyMode)) })
		e.Field("dutyValue", func(e *jx.Encoder) { e.Int(int(p.dutyValue)) })
		e.Field("sweepReload", func(e *jx.Encoder) { e.Bool(p.sweepReload) })
		e.Field("sweepEnabled", func(e *jx.Encoder) { e.Bool(p.sweepEnabled) })
		e.Field("sweepNegate", func(e *jx.Encoder) { e.Bool(p.sweepNegate) })
		e.Field("sweepShift", func(e *jx.Encoder) { e.Int(int(p.sweepShift)) })
		e.Field("sweepPeriod", func(e *jx.Encoder) { e.Int(int(p.sweepPeriod)) })
		e.Field("sweepValue", func(e *jx.Encoder) { e.Int(int(p.sweepValue)) })
		e.Field("envelopeEnabled", func(e *jx.Encoder) { e.Bool(p.envelopeEnabled) })
		e.Field("envelopeLoop", func(e *jx.Encoder) { e.Bool(p.envelopeLoop) })
		e.Field("envelopeStart", func(e *jx.Encoder) { e.Bool(p.envelopeStart) })
		e.Field("envelopePeriod", func(e *jx.Encoder) { e.Int(int(p.envelopePeriod)) })
		e.Field("envelopeValue", func(e *jx.Encoder) { e.Int(int(p.envelopeValue)) })
		e.Field("envelopeVolume", func(e *jx.Encoder) { e.Int(int(p.envelopeVolume)) })
		e.Field("constantVolume", func(e *jx.Encoder) { e.Int(int(p.constantVolume)) })
	})
}

func (p *Pulse) loadState(d *jx.Decoder) error {
	return d.Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "enabled":
			return decodeBool(d, &p.enabled)
		case "lengthEnabled":
			return decodeBool(d, &p.lengthEnabled)
		case "lengthValue":
			return decodeByte(d, &p.lengthValue)
		case "timerPeriod":
			return decodeUint16(d, &p.timerPeriod)
		case "timerValue":
			return decodeUint16(d, &p.timerValue)
		case "dutyMode":
			return decodeByte(d, &p.dutyMode)
		case "dutyValue":
			return decodeByte(d, &p.dutyValue)
		case "sweepReload":
			return decodeBool(d, &p.sweepReload)
		case "sweepEnabled":
			return decodeBool(d, &p.sweepEnabled)
		case "sweepNegate":
			return decodeBool(d, &p.sweepNegate)
		case "sweepShift":
			return decodeByte(d, &p.sweepShift)
		case "sweepPeriod":
			return decodeByte(d, &p.sweepPeriod)
		case "sweepValue":
			return decodeByte(d, &p.sweepValue)
		case "envelopeEnabled":
			return decodeBool(d, &p.envelopeEnabled)
		case "envelopeLoop":
			return decodeBool(d, &p.envelopeLoop)
		case "envelopeStart":
			return decodeBool(d, &p.envelopeStart)
		case "envelopePeriod":
			return decodeByte(d, &p.envelopePeriod)
		case "envelopeValue":
			return decodeByte(d, &p.envelopeValue)
		case "envelopeVolume":
			return decodeByte(d, &p.envelopeVolume)
		case "constantVolume":
			return decodeByte(d, &p.constantVolume)
		default:
			return d.Skip()
		}
	})
}

func (t *Triangle) saveState(e *jx.Encoder) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("enabled", func(e *jx.Encoder) { e.Bool(t.enabled) })
		e.Field("lengthEnabled", func(e *jx.Encoder) { e.Bool(t.lengthEnabled) })
		e.Field("lengthValue", func(e *jx.Encoder) { e.Int(int(t.lengthValue)) })
		e.Field("timerPeriod", func(e *jx.Encoder) { e.Int(int(t.timerPeriod)) })
		e.Field("timerValue", func(e *jx.Encoder) { e.Int(int(t.timerValue)) })
		e.Field("dutyValue", func(e *jx.Encoder) { e.Int(int(t.dutyValue)) })
		e.Field("counterPeriod", func(e *jx.Encoder) { e.Int(int(t.counterPeriod)) })
		e.Field("counterValue", func(e *jx.Encoder) { e.Int(int(t.counterValue)) })
		e.Field("counterReload", func(e *jx.Encoder) { e.Bool(t.counterReload) })
	})
}

func (t *Triangle) loadState(d *jx.Decoder) error {
	return d.Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "enabled":
			return decodeBool(d, &t.enabled)
		case "lengthEnabled":
			return decodeBool(d, &t.lengthEnabled)
		case "lengthValue":
			return decodeByte(d, &t.lengthValue)
		case "timerPeriod":
			return decodeUint16(d, &t.timerPeriod)
		case "timerValue":
			return decodeUint16(d, &t.timerValue)
		case "dutyValue":
			return decodeByte(d, &t.dutyValue)
		case "counterPeriod":
			return decodeByte(d, &t.counterPeriod)
		case "counterValue":
			return decodeByte(d, &t.counterValue)
		case "counterReload":
			return decodeBool(d, &t.counterReload)
		default:
			return d.Skip()
		}
	})
}

func (n *Noise) saveState(e *jx.Encoder) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("enabled", func(e *jx.Encoder) { e.Bool(n.enabled) })
		e.Field("mode", func(e *jx.Encoder) { e.Bool(n.mode) })
		e.Field("shiftRegister", func(e *jx.Encoder) { e.Int(int(n.shiftRegister)) })
		e.Field("lengthEnabled", func(e *jx.Encoder) { e.Bool(n.lengthEnabled) })
		e.Field("lengthValue", func(e *jx.Encoder) { e.Int(int(n.lengthValue)) })
		e.Field("timerPeriod", func(e *jx.Encoder) { e.Int(int(n.timerPeriod)) })
		e.Field("timerValue", func(e *jx.Encoder) { e.Int(int(n.timerValue)) })
		e.Field("envelopeEnabled", func(e *jx.Encoder) { e.Bool(n.envelopeEnabled) })
		e.Field("envelopeLoop", func(e *jx.Encoder) { e.Bool(n.envelopeLoop) })
		e.Field("envelopeStart", func(e *jx.Encoder) { e.Bool(n.envelopeStart) })
		e.Field("envelopePeriod", func(e *jx.Encoder) { e.Int(int(n.envelopePeriod)) })
		e.Field("envelopeValue", func(e *jx.Encoder) { e.Int(int(n.envelopeValue)) })
		e.Field("envelopeVolume", func(e *jx.Encoder) { e.Int(int(n.envelopeVolume)) })
		e.Field("constantVolume", func(e *jx.Encoder) { e.Int(int(n.constantVolume)) })
	})
}

func (n *Noise) loadState(d *jx.Decoder) error {
	return d.Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "enabled":
			return decodeBool(d, &n.enabled)
		case "mode":
			return decodeBool(d, &n.mode)
		case "shiftRegister":
			return decodeUint16(d, &n.shiftRegister)
		case "lengthEnabled":
			return decodeBool(d, &n.lengthEnabled)
		case "lengthValue":
			return decodeByte(d, &n.lengthValue)
		case "timerPeriod":
			return decodeUint16(d, &n.timerPeriod)
		case "timerValue":
			return decodeUint16(d, &n.timerValue)
		case "envelopeEnabled":
			return decodeBool(d, &n.envelopeEnabled)
		case "envelopeLoop":
			return decodeBool(d, &n.envelopeLoop)
		case "envelopeStart":
			return decodeBool(d, &n.envelopeStart)
		case "envelopePeriod":
			return decodeByte(d, &n.envelopePeriod)
		case "envelopeValue":
			return decodeByte(d, &n.envelopeValue)
		case "envelopeVolume":
			return decodeByte(d, &n.envelopeVolume)
		case "constantVolume":
			return decodeByte(d, &n.constantVolume)
		default:
			return d.Skip()
		}
	})
}

func (dm *DMC) saveState(e *jx.Encoder) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("enabled", func(e *jx.Encoder) { e.Bool(dm.enabled) })
		e.Field("value", func(e *jx.Encoder) { e.Int(int(dm.value)) })
		e.Field("sampleAddress", func(e *jx.Encoder) { e.Int(int(dm.sampleAddress)) })
		e.Field("sampleLength", func(e *jx.Encoder) { e.Int(int(dm.sampleLength)) })
		e.Field("currentAddress", func(e *jx.Encoder) { e.Int(int(dm.currentAddress)) })
		e.Field("currentLength", func(e *jx.Encoder) { e.Int(int(dm.currentLength)) })
		e.Field("shiftRegister", func(e *jx.Encoder) { e.Int(int(dm.shiftRegister)) })
		e.Field("bitCount", func(e *jx.Encoder) { e.Int(int(dm.bitCount)) })
		e.Field("tickPeriod", func(e *jx.Encoder) { e.Int(int(dm.tickPeriod)) })
		e.Field("tickValue", func(e *jx.Encoder) { e.Int(int(dm.tickValue)) })
		e.Field("loop", func(e *jx.Encoder) { e.Bool(dm.loop) })
		e.Field("irqEnabled", func(e *jx.Encoder) { e.Bool(dm.irqEnabled) })
		e.Field("irqPending", func(e *jx.Encoder) { e.Bool(dm.irqPending) })
	})
}

func (dm *DMC) loadState(d *jx.Decoder) error {
	return d.Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "enabled":
			return decodeBool(d, &dm.enabled)
		case "value":
			return decodeByte(d, &dm.value)
		case "sampleAddress":
			return decodeUint16(d, &dm.sampleAddress)
		case "sampleLength":
			return decodeUint16(d, &dm.sampleLength)
		case "currentAddress":
			return decodeUint16(d, &dm.currentAddress)
		case "currentLength":
			return decodeUint16(d, &dm.currentLength)
		case "shiftRegister":
			return decodeByte(d, &dm.shiftRegister)
		case "bitCount":
			return decodeByte(d, &dm.bitCount)
		case "tickPeriod":
			return decodeByte(d, &dm.tickPeriod)
		case "tickValue":
			return decodeByte(d, &dm.tickValue)
		case "loop":
			return decodeBool(d, &dm.loop)
		case "irqEnabled":
			return decodeBool(d, &dm.irqEnabled)
		case "irqPending":
			return decodeBool(d, &dm.irqPending)
		default:
			return d.Skip()
		}
	})
}

func (m *Mapper000) saveState(e *jx.Encoder) {
	e.Obj(func(e *jx.Encoder) {})
}

func (m *Mapper000) loadState(d *jx.Decoder) error {
	return d.Obj(func(d *jx.Decoder, key string) error { return d.Skip() })
}

func (m *Mapper001) saveState(e *jx.Encoder) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("shiftRegister", func(e *jx.Encoder) { e.Int(int(m.shiftRegister)) })
		e.Field("control", func(e *jx.Encoder) { e.Int(int(m.control)) })
		e.Field("prgMode", func(e *jx.Encoder) { e.Int(int(m.prgMode)) })
		e.Field("chrMode", func(e *jx.Encoder) { e.Int(int(m.chrMode)) })
		e.Field("prgBank", func(e *jx.Encoder) { e.Int(int(m.prgBank)) })
		e.Field("chrBank0", func(e *jx.Encoder) { e.Int(int(m.chrBank0)) })
		e.Field("chrBank1", func(e *jx.Encoder) { e.Int(int(m.chrBank1)) })
		e.Field("mirror", func(e *jx.Encoder) { e.Int(int(m.mirror)) })
	})
}

func (m *Mapper001) loadState(d *jx.Decoder) error {
	err := d.Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "shiftRegister":
			return decodeByte(d, &m.shiftRegister)
		case "control":
			return decodeByte(d, &m.control)
		case "prgMode":
			return decodeByte(d, &m.prgMode)
		case "chrMode":
			return decodeByte(d, &m.chrMode)
		case "prgBank":
			return decodeByte(d, &m.prgBank)
		case "chrBank0":
			return decodeByte(d, &m.chrBank0)
		case "chrBank1":
			return decodeByte(d, &m.chrBank1)
		case "mirror":
			return decodeByte(d, &m.mirror)
		default:
			return d.Skip()
		}
	})
	if err != nil {
		return err
	}
	// mirror and the mode bits restore from their own fields; replaying
	// control here would clobber the power-on state.
	m.updateOffsets()
	return nil
}

func (m *Mapper002) saveState(e *jx.Encoder) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("prgBank", func(e *jx.Encoder) { e.Int(m.prgBank1) })
	})
}

func (m *Mapper002) loadState(d *jx.Decoder) error {
	return d.Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "prgBank":
			return decodeInt(d, &m.prgBank1)
		default:
			return d.Skip()
		}
	})
}

func (m *Mapper003) saveState(e *jx.Encoder) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("chrBank", func(e *jx.Encoder) { e.Int(m.chrBank) })
	})
}

func (m *Mapper003) loadState(d *jx.Decoder) error {
	return d.Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "chrBank":
			return decodeInt(d, &m.chrBank)
		default:
			return d.Skip()
		}
	})
}

func (m *Mapper004) saveState(e *jx.Encoder) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("register", func(e *jx.Encoder) { e.Int(int(m.register)) })
		e.Field("registers", func(e *jx.Encoder) { e.Base64(m.registers[:]) })
		e.Field("prgMode", func(e *jx.Encoder) { e.Int(int(m.prgMode)) })
		e.Field("chrMode", func(e *jx.Encoder) { e.Int(int(m.chrMode)) })
		e.Field("mirror", func(e *jx.Encoder) { e.Int(int(m.mirror)) })
		e.Field("irqReloadValue", func(e *jx.Encoder) { e.Int(int(m.irqReloadValue)) })
		e.Field("irqCounter", func(e *jx.Encoder) { e.Int(int(m.irqCounter)) })
		e.Field("irqReload", func(e *jx.Encoder) { e.Bool(m.irqReload) })
		e.Field("irqEnabled", func(e *jx.Encoder) { e.Bool(m.irqEnabled) })
		e.Field("irqPending", func(e *jx.Encoder) { e.Bool(m.irqPending) })
	})
}

func (m *Mapper004) loadState(d *jx.Decoder) error {
	err := d.Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "register":
			return decodeByte(d, &m.register)
		case "registers":
			return decodeBytes(d, m.registers[:])
		case "prgMode":
			return decodeByte(d, &m.prgMode)
		case "chrMode":
			return decodeByte(d, &m.chrMode)
		case "mirror":
			return decodeByte(d, &m.mirror)
		case "irqReloadValue":
			return decodeByte(d, &m.irqReloadValue)
		case "irqCounter":
			return decodeByte(d, &m.irqCounter)
		case "irqReload":
			return decodeBool(d, &m.irqReload)
		case "irqEnabled":
			return decodeBool(d, &m.irqEnabled)
		case "irqPending":
			return decodeBool(d, &m.irqPending)
		default:
			return d.Skip()
		}
	})
	if err != nil {
		return err
	}
	m.updateOffsets()
	return nil
}

func (m *Mapper009) saveState(e *jx.Encoder) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("prgBank", func(e *jx.Encoder) { e.Int(m.prgBank) })
		e.Field("chrFD", func(e *jx.Encoder) { e.Base64(m.chrFD[:]) })
		e.Field("chrFE", func(e *jx.Encoder) { e.Base64(m.chrFE[:]) })
		e.Field("latch", func(e *jx.Encoder) { e.Base64(m.latch[:]) })
		e.Field("mirror", func(e *jx.Encoder) { e.Int(int(m.mirror)) })
	})
}

func (m *Mapper009) loadState(d *jx.Decoder) error {
	return d.Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "prgBank":
			return decodeInt(d, &m.prgBank)
		case "chrFD":
			return decodeBytes(d, m.chrFD[:])
		case "chrFE":
			return decodeBytes(d, m.chrFE[:])
		case "latch":
			return decodeBytes(d, m.latch[:])
		case "mirror":
			return decodeByte(d, &m.mirror)
		default:
			return d.Skip()
		}
	})
}
