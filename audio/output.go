package audio

import (
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// speakerOutput plays through the process-wide beep speaker
type speakerOutput struct{}

// NewSpeakerOutput returns an Output backed by the beep speaker
func NewSpeakerOutput() Output {
	return speakerOutput{}
}

func (speakerOutput) Init(rate beep.SampleRate, bufferSize int) error {
	return speaker.Init(rate, bufferSize)
}

func (speakerOutput) Play(s ...beep.Streamer) {
	speaker.Play(s...)
}

func (speakerOutput) Close() {
	speaker.Clear()
	speaker.Close()
}
