package main

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/gordonklaus/portaudio"
	"golang.org/x/image/draw"

	"github.com/kaishuu0123/famicore/famicore"
	"github.com/kaishuu0123/famicore/internal/audio"
	"github.com/kaishuu0123/famicore/internal/config"
)

const (
	SCREEN_WIDTH  = 256
	SCREEN_HEIGHT = 240
	padding       = 0.0
)

func init() {
	// audio runs on its own OS thread
	runtime.GOMAXPROCS(2)

	// OpenGL calls must stay on a single thread
	runtime.LockOSThread()
}

func runLoop(console *famicore.Console, cfg config.Config, trace io.Writer) error {
	if !cfg.Audio.Disabled {
		portaudio.Initialize()
		defer portaudio.Terminate()

		speaker := audio.NewAudio(cfg.Audio.Volume)
		if err := speaker.Start(); err != nil {
			return err
		}
		defer speaker.Stop()

		console.SetAudioChannel(speaker.Channel)
		console.SetAudioSampleRate(speaker.SampleRate)
	}

	if err := glfw.Init(); err != nil {
		return err
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	window, err := glfw.CreateWindow(
		SCREEN_WIDTH*cfg.Video.Scale, SCREEN_HEIGHT*cfg.Video.Scale,
		"famicore", nil, nil)
	if err != nil {
		return err
	}
	window.MakeContextCurrent()
	if cfg.Video.DisableVSync {
		glfw.SwapInterval(0)
	} else {
		glfw.SwapInterval(1)
	}

	if err := gl.Init(); err != nil {
		return err
	}
	gl.Enable(gl.TEXTURE_2D)

	texture := createTexture()
	keys1 := keyMapFor(cfg.Input.Player1)
	keys2 := keyMapFor(cfg.Input.Player2)

	screenshotHeld := false
	prev := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := now - prev
		prev = now
		if dt > 1 {
			dt = 0
		}

		pad1 := readKeyboard(window, keys1)
		joy := readJoystick(glfw.Joystick1)
		console.SetButtons1(combineButtons(pad1, joy))
		console.SetButtons2(readKeyboard(window, keys2))

		if trace != nil {
			stepSecondsTraced(console, dt, trace)
		} else {
			console.StepSeconds(dt)
		}

		if window.GetKey(glfw.KeyF12) == glfw.Press && !screenshotHeld {
			if err := saveScreenshot(console.Buffer(), cfg.Video.Scale); err != nil {
				fmt.Fprintln(os.Stderr, "screenshot failed:", err)
			}
		}
		screenshotHeld = window.GetKey(glfw.KeyF12) == glfw.Press

		gl.Clear(gl.COLOR_BUFFER_BIT)
		gl.BindTexture(gl.TEXTURE_2D, texture)
		setTexture(console)
		drawBuffer(window)
		gl.BindTexture(gl.TEXTURE_2D, 0)

		window.SwapBuffers()
		glfw.PollEvents()
	}
	return nil
}

// stepSecondsTraced mirrors Console.StepSeconds but writes one trace line
// per executed instruction.
func stepSecondsTraced(console *famicore.Console, seconds float64, trace io.Writer) {
	cycles := int(famicore.CPUFrequency * seconds)
	for cycles > 0 {
		io.WriteString(trace, console.CPU.TraceLine()+"\n")
		cycles -= console.Step()
	}
}

func createTexture() uint32 {
	var texture uint32
	gl.GenTextures(1, &texture)
	gl.BindTexture(gl.TEXTURE_2D, texture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return texture
}

func setTexture(console *famicore.Console) {
	buffer := console.Buffer()
	size := buffer.Rect.Size()
	gl.TexImage2D(
		gl.TEXTURE_2D, 0, gl.RGBA,
		int32(size.X), int32(size.Y),
		0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(buffer.Pix))
}

// drawBuffer renders the frame texture as a letterboxed quad filling as much
// of the window as the 256x240 aspect ratio allows.
func drawBuffer(window *glfw.Window) {
	w, h := window.GetFramebufferSize()
	s1 := float32(w) / SCREEN_WIDTH
	s2 := float32(h) / SCREEN_HEIGHT
	f := float32(1 - padding)
	var x, y float32
	if s1 >= s2 {
		x = f * s2 / s1
		y = f
	} else {
		x = f
		y = f * s1 / s2
	}
	gl.Begin(gl.QUADS)
	gl.TexCoord2f(0, 1)
	gl.Vertex2f(-x, -y)
	gl.TexCoord2f(1, 1)
	gl.Vertex2f(x, -y)
	gl.TexCoord2f(1, 0)
	gl.Vertex2f(x, y)
	gl.TexCoord2f(0, 0)
	gl.Vertex2f(-x, y)
	gl.End()
}

// saveScreenshot writes the current frame to the working directory, scaled
// with the same nearest-neighbor factor as the window.
func saveScreenshot(buffer *image.RGBA, scale int) error {
	scaled := image.NewRGBA(image.Rect(0, 0, SCREEN_WIDTH*scale, SCREEN_HEIGHT*scale))
	draw.NearestNeighbor.Scale(scaled, scaled.Bounds(), buffer, buffer.Bounds(), draw.Src, nil)

	name := fmt.Sprintf("famicore-%s.png", time.Now().Format("20060102-150405"))
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, scaled)
}

func readKeyboard(window *glfw.Window, keys [8]glfw.Key) [8]bool {
	var result [8]bool
	for i, key := range keys {
		result[i] = window.GetKey(key) == glfw.Press
	}
	return result
}

func readJoystick(joy glfw.Joystick) [8]bool {
	var result [8]bool
	if !joy.Present() {
		return result
	}
	axes := joy.GetAxes()
	buttons := joy.GetButtons()
	if len(buttons) < 8 || len(axes) < 2 {
		return result
	}
	result[famicore.ButtonA] = buttons[0] == 1
	result[famicore.ButtonB] = buttons[1] == 1
	result[famicore.ButtonSelect] = buttons[6] == 1
	result[famicore.ButtonStart] = buttons[7] == 1
	result[famicore.ButtonUp] = axes[1] < -0.5
	result[famicore.ButtonDown] = axes[1] > 0.5
	result[famicore.ButtonLeft] = axes[0] < -0.5
	result[famicore.ButtonRight] = axes[0] > 0.5
	return result
}

func combineButtons(a, b [8]bool) [8]bool {
	var result [8]bool
	for i := 0; i < 8; i++ {
		result[i] = a[i] || b[i]
	}
	return result
}

func keyMapFor(m config.KeyMap) [8]glfw.Key {
	var keys [8]glfw.Key
	keys[famicore.ButtonA] = keyByName(m.A)
	keys[famicore.ButtonB] = keyByName(m.B)
	keys[famicore.ButtonSelect] = keyByName(m.Select)
	keys[famicore.ButtonStart] = keyByName(m.Start)
	keys[famicore.ButtonUp] = keyByName(m.Up)
	keys[famicore.ButtonDown] = keyByName(m.Down)
	keys[famicore.ButtonLeft] = keyByName(m.Left)
	keys[famicore.ButtonRight] = keyByName(m.Right)
	return keys
}

var namedKeys = map[string]glfw.Key{
	"enter":       glfw.KeyEnter,
	"space":       glfw.KeySpace,
	"tab":         glfw.KeyTab,
	"left shift":  glfw.KeyLeftShift,
	"right shift": glfw.KeyRightShift,
	"left ctrl":   glfw.KeyLeftControl,
	"right ctrl":  glfw.KeyRightControl,
	"up":          glfw.KeyUp,
	"down":        glfw.KeyDown,
	"left":        glfw.KeyLeft,
	"right":       glfw.KeyRight,
}

// keyByName resolves a config key name: a single letter or digit maps to its
// key, anything else through the named key table. Unknown names map to
// KeyUnknown, which never reads as pressed.
func keyByName(name string) glfw.Key {
	if key, ok := namedKeys[name]; ok {
		return key
	}
	if len(name) == 1 {
		c := name[0]
		switch {
		case c >= 'a' && c <= 'z':
			return glfw.KeyA + glfw.Key(c-'a')
		case c >= 'A' && c <= 'Z':
			return glfw.KeyA + glfw.Key(c-'A')
		case c >= '0' && c <= '9':
			return glfw.Key0 + glfw.Key(c-'0')
		}
	}
	return glfw.KeyUnknown
}
