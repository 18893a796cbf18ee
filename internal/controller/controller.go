// Package controller orchestrates the parse -> encode -> send -> record
// pipeline for the pixelbar LED groups and owns the last-sent color state.
package controller

import (
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/pixelbar/pixeld/internal/color"
	"github.com/pixelbar/pixeld/internal/protocol"
)

// Transport delivers an encoded frame to the physical device. A nil error
// means the frame is considered applied; there is no separate device-level
// acknowledgment.
type Transport interface {
	Send(frame []byte) error
}

// Recorder receives a notification for every confirmed send. Used for the
// send-history ledger; implementations must not block for long.
type Recorder interface {
	RecordSend(requestID, source string, gs color.GroupSet) error
}

// powerOnColor is what the controller hardware shows after power-up, and
// therefore the base state for partial updates before any send.
var powerOnColor = color.Color{R: 0xff, G: 0xff, B: 0xff, W: 0xff}

// Controller is the single owner of the serial transport. All sends are
// serialized through its mutex so frames never interleave on the wire.
type Controller struct {
	mu       sync.Mutex
	tr       Transport
	last     lastState
	recorder Recorder
}

// Option configures a Controller.
type Option func(*Controller)

// WithRecorder attaches a send-history recorder.
func WithRecorder(r Recorder) Option {
	return func(c *Controller) { c.recorder = r }
}

// New creates a Controller sending frames through tr.
func New(tr Transport, opts ...Option) *Controller {
	c := &Controller{tr: tr}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Apply parses 1 or 4 hex tokens, sends the resulting frame and records the
// new state. Validation failures are returned before any transport I/O. The
// source tag ends up in logs and the send history.
func (c *Controller) Apply(tokens []string, source string) (color.GroupSet, error) {
	gs, err := color.ParseGroups(tokens)
	if err != nil {
		return color.GroupSet{}, err
	}
	return c.send(gs, source)
}

// ApplyGroups sends an already-assembled GroupSet. Used by callers that
// build colors from structured input rather than hex tokens.
func (c *Controller) ApplyGroups(gs color.GroupSet, source string) (color.GroupSet, error) {
	return c.send(gs, source)
}

// ApplyPartial overrides individual groups of the current state and sends
// the result. Groups absent from overrides keep their last-sent color, or
// the hardware power-on color if nothing has been sent yet.
func (c *Controller) ApplyPartial(overrides map[int]string, source string) (color.GroupSet, error) {
	gs, ok := c.last.read()
	if !ok {
		for i := range gs {
			gs[i] = powerOnColor
		}
	}
	for i := 0; i < color.GroupCount; i++ {
		tok, ok := overrides[i]
		if !ok {
			continue
		}
		col, err := color.ParseHex(tok)
		if err != nil {
			return color.GroupSet{}, err
		}
		gs[i] = col
	}
	return c.send(gs, source)
}

// Current returns the last confirmed GroupSet, or false if no send has
// succeeded yet.
func (c *Controller) Current() (color.GroupSet, bool) {
	return c.last.read()
}

// send holds the controller lock across encode, transport write and state
// update so concurrent applies cannot interleave.
func (c *Controller) send(gs color.GroupSet, source string) (color.GroupSet, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	requestID := uuid.NewString()
	frame := protocol.Encode(gs)

	if err := c.tr.Send(frame); err != nil {
		log.Error().
			Err(err).
			Str("request_id", requestID).
			Str("source", source).
			Msg("Frame send failed")
		return color.GroupSet{}, &TransportError{Err: err}
	}

	c.last.write(gs)

	log.Debug().
		Str("request_id", requestID).
		Str("source", source).
		Str("colors", gs.String()).
		Msg("Frame sent")

	if c.recorder != nil {
		if err := c.recorder.RecordSend(requestID, source, gs); err != nil {
			// History is best-effort; the send itself already succeeded.
			log.Warn().Err(err).Str("request_id", requestID).Msg("Failed to record send")
		}
	}

	return gs, nil
}
