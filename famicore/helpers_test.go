package famicore

import (
	"testing"

	logrus "gopkg.in/Sirupsen/logrus.v0"
)

func init() {
	logrus.SetLevel(logrus.PanicLevel)
}

// testCartridge builds a mapper 0 cartridge with 32KB PRG and 8KB CHR ROM.
// program is copied to $8000 and the reset vector points at it; the rest of
// PRG is NOP filled.
func testCartridge(program []byte) *Cartridge {
	prg := make([]byte, 0x8000)
	for i := range prg {
		prg[i] = 0xEA // NOP
	}
	copy(prg, program)
	// reset vector -> $8000
	prg[0x7FFC] = 0x00
	prg[0x7FFD] = 0x80

	chr := make([]byte, 0x2000)
	for i := range chr {
		chr[i] = byte(i)
	}
	return NewCartridge(prg, chr, 0, MIRROR_HORIZONTAL, false)
}

func testConsole(t *testing.T, program []byte) *Console {
	t.Helper()
	console, err := NewConsoleFromCartridge(testCartridge(program))
	if err != nil {
		t.Fatal(err)
	}
	return console
}
