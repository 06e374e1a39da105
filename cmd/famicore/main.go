package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/alecthomas/kong"
	logrus "gopkg.in/Sirupsen/logrus.v0"

	"github.com/kaishuu0123/famicore/famicore"
	"github.com/kaishuu0123/famicore/internal/config"
)

const version = "0.1.0"

type (
	CLI struct {
		Run      Run      `cmd:"" help:"Run ROM in emulator. (default command)" default:"withargs"`
		RomInfos RomInfos `cmd:"" help:"Show ROM infos." name:"rom-infos"`
		Version  Version  `cmd:"" help:"Show famicore version."`

		Log string `help:"Log level: debug, info, warn or error." default:"warn" placeholder:"LEVEL"`
	}

	Run struct {
		RomPath string `arg:"" name:"/path/to/rom" help:"ROM file to run." type:"existingfile"`

		Scale   int      `help:"Window scale factor. Overrides the config file." default:"0"`
		NoAudio bool     `name:"no-audio" help:"Disable audio output."`
		Trace   *outfile `help:"Write CPU trace log." placeholder:"FILE|stdout|stderr"`
	}

	RomInfos struct {
		RomPath string `arg:"" name:"/path/to/rom" type:"existingfile"`
	}

	Version struct{}
)

func main() {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("famicore"),
		kong.Description("NES emulator. github.com/kaishuu0123/famicore"),
		kong.UsageOnError())
	if err != nil {
		panic(err)
	}

	ctx, err := parser.Parse(os.Args[1:])
	checkf(err, "failed to parse command line")

	level, err := logrus.ParseLevel(cli.Log)
	checkf(err, "invalid log level %q", cli.Log)
	famicore.SetLogLevel(level)

	switch ctx.Command() {
	case "version":
		fmt.Printf("famicore %s\n", version)
	case "rom-infos </path/to/rom>":
		checkf(printRomInfos(os.Stdout, cli.RomInfos.RomPath), "failed to read rom")
	default:
		checkf(runROM(cli.Run), "failed to run rom")
	}
}

func printRomInfos(w io.Writer, path string) error {
	cartridge, err := famicore.LoadNESFile(path)
	if err != nil {
		return err
	}

	mirror := map[byte]string{
		famicore.MIRROR_HORIZONTAL:      "horizontal",
		famicore.MIRROR_VERTICAL:        "vertical",
		famicore.MIRROR_SINGLE_SCREEN_A: "single screen A",
		famicore.MIRROR_SINGLE_SCREEN_B: "single screen B",
		famicore.MIRROR_FOUR_SCREENS:    "four screens",
	}[cartridge.Mirror]

	tw := tabwriter.NewWriter(w, 0, 8, 1, ' ', 0)
	fmt.Fprintf(tw, "file:\t%s\n", path)
	fmt.Fprintf(tw, "mapper:\t%d\n", cartridge.MapperID)
	fmt.Fprintf(tw, "prg-rom:\t%d KiB\n", len(cartridge.PRG)/1024)
	if cartridge.HasChrRAM() {
		fmt.Fprintf(tw, "chr-ram:\t%d KiB\n", len(cartridge.CHR)/1024)
	} else {
		fmt.Fprintf(tw, "chr-rom:\t%d KiB\n", len(cartridge.CHR)/1024)
	}
	fmt.Fprintf(tw, "mirroring:\t%s\n", mirror)
	fmt.Fprintf(tw, "battery:\t%t\n", cartridge.Battery)
	return tw.Flush()
}

func runROM(run Run) error {
	cfg := config.LoadOrDefault()
	if run.Scale > 0 {
		cfg.Video.Scale = run.Scale
	}
	if run.NoAudio {
		cfg.Audio.Disabled = true
	}

	console, err := famicore.NewConsole(run.RomPath)
	if err != nil {
		return err
	}

	var trace io.WriteCloser
	if run.Trace != nil {
		trace = run.Trace
		defer run.Trace.Close()
	}
	return runLoop(console, cfg, trace)
}

type outfile struct {
	w     io.Writer
	name  string
	close func() error
}

// Decode decodes FILE|stdout|stderr into an io.WriteCloser that writes to
// that file.
//
// Implements kong.MapperValue interface.
func (f *outfile) Decode(ctx *kong.DecodeContext) error {
	tok := ctx.Scan.Pop()
	f.name = tok.Value.(string)
	f.close = func() error { return nil }

	switch f.name {
	case "stdout":
		f.w = os.Stdout
	case "stderr":
		f.w = os.Stderr
	default:
		fd, err := os.Create(f.name)
		if err != nil {
			return err
		}
		f.w = fd
		f.close = fd.Close
	}
	return nil
}

func (f *outfile) String() string              { return f.name }
func (f *outfile) Write(p []byte) (int, error) { return f.w.Write(p) }
func (f *outfile) Close() error                { return f.close() }

func checkf(err error, format string, args ...any) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "fatal error:")
	fmt.Fprintf(os.Stderr, "\n\t%s: %s\n", fmt.Sprintf(format, args...), err)
	os.Exit(1)
}
