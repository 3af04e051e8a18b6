// Package telemetry streams live flight data to spectators over websockets.
package telemetry

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/vovakirdan/tui-lander/internal/core"
)

// Frame is one telemetry message on the wire.
type Frame struct {
	Game           string `msgpack:"game"`
	Seq            uint64 `msgpack:"seq"`
	core.Telemetry `msgpack:",inline"`
}

// Encode serializes a frame with msgpack.
func Encode(f Frame) ([]byte, error) {
	data, err := msgpack.Marshal(f)
	if err != nil {
		return nil, fmt.Errorf("telemetry: encode frame: %w", err)
	}
	return data, nil
}

// Decode parses a msgpack frame.
func Decode(data []byte) (Frame, error) {
	var f Frame
	if err := msgpack.Unmarshal(data, &f); err != nil {
		return Frame{}, fmt.Errorf("telemetry: decode frame: %w", err)
	}
	return f, nil
}
