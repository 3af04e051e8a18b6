package core

// Telemetry is a per-tick summary of a flight, published to spectators.
// Tags are for the msgpack encoder used by the telemetry hub.
type Telemetry struct {
	Tick     int     `msgpack:"tick"`
	Level    int     `msgpack:"level"`
	State    string  `msgpack:"state"`
	X        float64 `msgpack:"x"`
	Y        float64 `msgpack:"y"`
	VX       float64 `msgpack:"vx"`
	VY       float64 `msgpack:"vy"`
	Facing   float64 `msgpack:"facing"`
	Fuel     float64 `msgpack:"fuel"`
	Altitude float64 `msgpack:"altitude"`
	Score    int     `msgpack:"score"`
}

// TelemetrySource is implemented by games that can report telemetry.
type TelemetrySource interface {
	Telemetry() Telemetry
}
