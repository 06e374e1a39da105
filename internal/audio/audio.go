package audio

import (
	"fmt"

	"github.com/gordonklaus/portaudio"
)

const CHANNEL_BUFFER_SIZE = 44100

// Audio drains the console's sample channel into a portaudio stream. The
// engine pushes samples without blocking, so the Callback only ever sees a
// bounded backlog.
type Audio struct {
	stream         *portaudio.Stream
	SampleRate     float64
	outputChannels int
	volume         float32
	Channel        chan float32
}

func NewAudio(volume float64) *Audio {
	return &Audio{
		volume:  float32(volume),
		Channel: make(chan float32, CHANNEL_BUFFER_SIZE),
	}
}

func (a *Audio) Start() error {
	host, err := portaudio.DefaultHostApi()
	if err != nil {
		return fmt.Errorf("no audio host api: %w", err)
	}
	parameters := portaudio.HighLatencyParameters(nil, host.DefaultOutputDevice)
	stream, err := portaudio.OpenStream(parameters, a.Callback)
	if err != nil {
		return fmt.Errorf("open stream: %w", err)
	}
	if err := stream.Start(); err != nil {
		return fmt.Errorf("start stream: %w", err)
	}
	a.stream = stream
	a.SampleRate = parameters.SampleRate
	a.outputChannels = parameters.Output.Channels
	return nil
}

func (a *Audio) Stop() error {
	return a.stream.Close()
}

// Callback fills the output buffer, duplicating each mono sample across the
// device's channels. Underruns play silence instead of stalling.
func (a *Audio) Callback(out []float32) {
	var output float32
	for i := range out {
		if i%a.outputChannels == 0 {
			select {
			case sample := <-a.Channel:
				output = sample * a.volume
			default:
				output = 0
			}
		}
		out[i] = output
	}
}
