package jeebie

import (
	"github.com/ardenmill/dmgcore/jeebie/debug"
	"github.com/ardenmill/dmgcore/jeebie/input/action"
	"github.com/ardenmill/dmgcore/jeebie/timing"
	"github.com/ardenmill/dmgcore/jeebie/video"
)

// Emulator is the interface for all emulator implementations
type Emulator interface {
	RunUntilFrame() error
	GetCurrentFrame() *video.FrameBuffer
	HandleAction(act action.Action, pressed bool)
	ExtractDebugData() *debug.CompleteDebugData
	SetFrameLimiter(limiter timing.Limiter)
	ResetFrameTiming()
}

var _ Emulator = (*DMG)(nil)
