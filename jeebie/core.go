package jeebie

import (
	"fmt"
	"io"
	"io/ioutil"
	"log/slog"
	"os"
	"sync"

	"github.com/ardenmill/dmgcore/jeebie/addr"
	"github.com/ardenmill/dmgcore/jeebie/cpu"
	"github.com/ardenmill/dmgcore/jeebie/debug"
	"github.com/ardenmill/dmgcore/jeebie/input/action"
	"github.com/ardenmill/dmgcore/jeebie/memory"
	"github.com/ardenmill/dmgcore/jeebie/serial"
	"github.com/ardenmill/dmgcore/jeebie/timing"
	"github.com/ardenmill/dmgcore/jeebie/video"
)

// DebuggerState represents the current debugger mode
type DebuggerState int

const (
	DebuggerRunning   DebuggerState = iota // Normal execution
	DebuggerPaused                         // Paused, waiting for commands
	DebuggerStep                           // Execute one instruction then pause
	DebuggerStepFrame                      // Execute one frame then pause
)

// DMG is the root struct and entry point for running the emulation: it owns
// the CPU, PPU and memory bus and drives them in lockstep, one CPU step at a
// time, the way §4.8 of the orchestrator spec describes.
type DMG struct {
	cpu *cpu.CPU
	gpu *video.GPU
	mem *memory.MMU

	limiter           timing.Limiter
	breakpoints       *memory.Breakpoints
	traceInstructions bool
	serialOutFile     *os.File

	// Debugger state
	debuggerState    DebuggerState
	debuggerMutex    sync.RWMutex
	stepRequested    bool
	frameRequested   bool
	instructionCount uint64
	frameCount       uint64
	totalCycles      uint64
}

var _ Emulator = (*DMG)(nil)

func (e *DMG) init(mem *memory.MMU) {
	e.cpu = cpu.New(mem)
	e.gpu = video.NewGpu(mem)
	e.mem = mem
	e.limiter = timing.NewNoOpLimiter()

	mem.SetTimerSeed(0xABCC)
}

// New creates a new emulator instance
func New() *DMG {
	e := &DMG{}
	e.init(memory.NewWithCartridge(memory.NewCartridge()))

	return e
}

// NewWithFile creates a new emulator instance and loads the file specified into it.
// It also points the serial port at serial_out.dat in the working directory,
// matching the teacher's convention for capturing test ROM output.
func NewWithFile(path string) (*DMG, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}

	slog.Debug("Loaded ROM data", "size", len(data))

	e := &DMG{}
	e.init(memory.NewWithCartridge(memory.NewCartridgeWithData(data)))

	if f, err := os.Create(serialOutFileName); err != nil {
		slog.Warn("failed to open serial output file", "path", serialOutFileName, "error", err)
	} else {
		e.EnableSerialCapture(f)
		e.serialOutFile = f
	}

	return e, nil
}

// serialOutFileName is where shifted-out serial bytes are captured, matching
// the convention used by Blargg-style test ROMs to report pass/fail text.
const serialOutFileName = "serial_out.dat"

// Close releases resources held by the emulator, such as the serial
// output file opened by NewWithFile.
func (e *DMG) Close() error {
	if e.serialOutFile != nil {
		return e.serialOutFile.Close()
	}
	return nil
}

// RunUntilFrame advances the emulator until a full frame (70224 T-cycles)
// has been produced, honoring the debugger's pause/step/step-frame state and
// pacing the loop to wall-clock time via the attached frame limiter.
func (e *DMG) RunUntilFrame() error {
	e.debuggerMutex.RLock()
	state := e.debuggerState
	e.debuggerMutex.RUnlock()

	// Handle paused state - don't execute anything
	if state == DebuggerPaused {
		return nil
	}

	// Handle step instruction - execute one instruction then pause
	if state == DebuggerStep {
		e.debuggerMutex.Lock()
		if e.stepRequested {
			e.stepRequested = false
			e.debuggerMutex.Unlock()

			oldPC := e.cpu.GetPC()
			cycles := e.tickCPU()
			e.advancePeripherals(cycles)
			e.instructionCount++

			slog.Debug("Step executed", "pc", fmt.Sprintf("0x%04X", oldPC), "new_pc", fmt.Sprintf("0x%04X", e.cpu.GetPC()))

			e.SetDebuggerState(DebuggerPaused)

			if err := e.cpu.FatalError(); err != nil {
				return e.haltOnFatal(err)
			}
		} else {
			e.debuggerMutex.Unlock()
		}
		return nil
	}

	// Handle step frame - execute one frame then pause
	if state == DebuggerStepFrame {
		e.debuggerMutex.Lock()
		frameRequested := e.frameRequested
		if frameRequested {
			e.frameRequested = false
		}
		e.debuggerMutex.Unlock()

		if frameRequested {
			total := 0
			for total < timing.CyclesPerFrame {
				cycles := e.tickCPU()
				e.advancePeripherals(cycles)
				e.instructionCount++
				total += cycles

				if err := e.cpu.FatalError(); err != nil {
					return e.haltOnFatal(err)
				}
			}
			e.frameCount++
			e.limiter.WaitForNextFrame()
			slog.Debug("Frame step completed", "frame", e.frameCount, "instructions", e.instructionCount)
			e.SetDebuggerState(DebuggerPaused)
		}
		return nil
	}

	// Normal execution (DebuggerRunning)
	total := 0
	for total < timing.CyclesPerFrame {
		if e.breakpoints != nil && e.breakpoints.CheckPC(e.cpu.GetPC()) {
			e.SetDebuggerState(DebuggerPaused)
			slog.Info("Execute breakpoint hit", "pc", fmt.Sprintf("0x%04X", e.cpu.GetPC()))
			return nil
		}

		cycles := e.tickCPU()
		e.advancePeripherals(cycles)
		e.instructionCount++
		total += cycles

		if err := e.cpu.FatalError(); err != nil {
			return e.haltOnFatal(err)
		}
	}

	e.frameCount++
	e.limiter.WaitForNextFrame()
	if e.frameCount%60 == 0 {
		slog.Debug("Frame completed", "frame", e.frameCount, "pc", fmt.Sprintf("0x%04X", e.cpu.GetPC()))
	}
	return nil
}

// haltOnFatal stops the run loop after an illegal opcode, pausing the
// debugger state and reporting the failing PC. Recovery is only by reset.
func (e *DMG) haltOnFatal(err error) error {
	e.SetDebuggerState(DebuggerPaused)
	slog.Error("core halted", "pc", fmt.Sprintf("0x%04X", e.cpu.GetPC()), "err", err)
	return err
}

// tickCPU executes one instruction, logging its PC first when instruction
// tracing is enabled.
func (e *DMG) tickCPU() int {
	if e.traceInstructions {
		slog.Debug("instruction", "pc", fmt.Sprintf("0x%04X", e.cpu.GetPC()))
	}
	return e.cpu.Tick()
}

// advancePeripherals advances the PPU, timer, serial port and any in-flight
// OAM DMA transfer by the given number of T-cycles.
func (e *DMG) advancePeripherals(cycles int) {
	e.mem.Tick(cycles)
	e.gpu.Tick(cycles)
	e.mem.APU.Tick(cycles)
	e.totalCycles += uint64(cycles)
}

func (e *DMG) GetCurrentFrame() *video.FrameBuffer {
	return e.gpu.GetFrameBuffer()
}

func (e *DMG) HandleKeyPress(key memory.JoypadKey) {
	e.mem.HandleKeyPress(key)
}

func (e *DMG) HandleKeyRelease(key memory.JoypadKey) {
	e.mem.HandleKeyRelease(key)
}

// HandleAction routes a backend-reported action to the joypad (for Game Boy
// button actions) or to the emulator's own debugger controls.
func (e *DMG) HandleAction(act action.Action, pressed bool) {
	if key, ok := actionToJoypadKey(act); ok {
		if pressed {
			e.HandleKeyPress(key)
		} else {
			e.HandleKeyRelease(key)
		}
		return
	}

	if !pressed {
		return
	}

	switch act {
	case action.EmulatorPauseToggle:
		if e.GetDebuggerState() == DebuggerPaused {
			e.DebuggerResume()
		} else {
			e.DebuggerPause()
		}
	case action.EmulatorStepFrame:
		e.DebuggerStepFrame()
	case action.EmulatorStepInstruction:
		e.DebuggerStepInstruction()
	}
}

func actionToJoypadKey(act action.Action) (memory.JoypadKey, bool) {
	switch act {
	case action.GBButtonA:
		return memory.JoypadA, true
	case action.GBButtonB:
		return memory.JoypadB, true
	case action.GBButtonStart:
		return memory.JoypadStart, true
	case action.GBButtonSelect:
		return memory.JoypadSelect, true
	case action.GBDPadUp:
		return memory.JoypadUp, true
	case action.GBDPadDown:
		return memory.JoypadDown, true
	case action.GBDPadLeft:
		return memory.JoypadLeft, true
	case action.GBDPadRight:
		return memory.JoypadRight, true
	default:
		return 0, false
	}
}

func (e *DMG) GetCPU() *cpu.CPU {
	return e.cpu
}

func (e *DMG) GetMMU() *memory.MMU {
	return e.mem
}

// AttachBreakpoints wires an address-watch set into both the bus (for
// read/write watches) and the CPU (for execute watches consulted by the
// debugger loop), and into the orchestrator itself so RunUntilFrame can
// stop at an execute breakpoint mid-frame.
func (e *DMG) AttachBreakpoints(b *memory.Breakpoints) {
	e.breakpoints = b
	e.mem.AttachBreakpoints(b)
	e.cpu.AttachBreakpoints(b)
}

// GetBreakpoints returns the breakpoint set attached via AttachBreakpoints,
// or nil if none has been attached.
func (e *DMG) GetBreakpoints() *memory.Breakpoints {
	return e.breakpoints
}

// EnableSerialCapture replaces the default logging serial sink with one
// that also appends every shifted byte to w, e.g. a serial_out.dat file
// used to collect test ROM output.
func (e *DMG) EnableSerialCapture(w io.Writer) {
	sink := serial.NewFileSink(w, func() { e.mem.RequestInterrupt(addr.SerialInterrupt) })
	e.mem.AttachSerialPort(sink)
}

// SetFrameLimiter attaches the realtime pacing strategy used by RunUntilFrame;
// a nil limiter disables pacing entirely (turbo mode / headless benchmarking).
func (e *DMG) SetFrameLimiter(limiter timing.Limiter) {
	if limiter == nil {
		e.limiter = timing.NewNoOpLimiter()
		return
	}
	e.limiter = limiter
}

// SetInstructionTrace toggles per-instruction PC logging at debug level,
// for the CLI's --instructions flag.
func (e *DMG) SetInstructionTrace(enabled bool) {
	e.traceInstructions = enabled
}

// ResetFrameTiming resets the attached limiter's internal clock, useful after
// the emulator has been paused for a while (e.g. sitting at a debugger prompt).
func (e *DMG) ResetFrameTiming() {
	e.limiter.Reset()
}

// ExtractDebugData snapshots CPU, memory, OAM and VRAM state for the
// debugger and any backend debug overlay. Returns nil if the emulator
// hasn't been initialized (mem/cpu/gpu all nil, as in a zero-value DMG).
func (e *DMG) ExtractDebugData() *debug.CompleteDebugData {
	if e.mem == nil || e.cpu == nil {
		return nil
	}

	pc := e.cpu.GetPC()
	snapshotStart := pc
	if snapshotStart > 0xFF80 {
		snapshotStart = 0xFF80
	}
	snapshotSize := 128
	if uint32(snapshotStart)+uint32(snapshotSize) > 0x10000 {
		snapshotSize = 0x10000 - int(snapshotStart)
	}
	bytes := make([]uint8, snapshotSize)
	for i := 0; i < snapshotSize; i++ {
		bytes[i] = e.mem.Read(snapshotStart + uint16(i))
	}

	ly := int(e.mem.Read(addr.LY))
	spriteHeight := 8
	if e.mem.ReadRawBit(2, addr.LCDC) {
		spriteHeight = 16
	}

	return &debug.CompleteDebugData{
		OAM:  debug.ExtractOAMDataFromReader(e.mem, ly, spriteHeight),
		VRAM: debug.ExtractVRAMDataFromReader(e.mem),
		CPU: &debug.CPUState{
			A: e.cpu.GetA(), F: e.cpu.GetF(),
			B: e.cpu.GetB(), C: e.cpu.GetC(),
			D: e.cpu.GetD(), E: e.cpu.GetE(),
			H: e.cpu.GetH(), L: e.cpu.GetL(),
			SP: e.cpu.GetSP(), PC: pc,
			IME:    e.cpu.GetIME(),
			Cycles: e.totalCycles,
		},
		Memory: &debug.MemorySnapshot{
			StartAddr: snapshotStart,
			Bytes:     bytes,
		},
		DebuggerState:   e.toDebugState(),
		InterruptEnable: e.mem.Read(addr.IE),
		InterruptFlags:  e.mem.Read(addr.IF),
	}
}

func (e *DMG) toDebugState() debug.DebuggerState {
	switch e.GetDebuggerState() {
	case DebuggerPaused:
		return debug.DebuggerPaused
	case DebuggerStep:
		return debug.DebuggerStepInstruction
	case DebuggerStepFrame:
		return debug.DebuggerStepFrame
	default:
		return debug.DebuggerRunning
	}
}

// Debugger control methods
func (e *DMG) SetDebuggerState(state DebuggerState) {
	e.debuggerMutex.Lock()
	defer e.debuggerMutex.Unlock()
	e.debuggerState = state
	slog.Debug("Debugger state changed", "state", state)
}

func (e *DMG) GetDebuggerState() DebuggerState {
	e.debuggerMutex.RLock()
	defer e.debuggerMutex.RUnlock()
	return e.debuggerState
}

func (e *DMG) DebuggerPause() {
	e.SetDebuggerState(DebuggerPaused)
	slog.Info("Emulator paused")
}

func (e *DMG) DebuggerResume() {
	e.SetDebuggerState(DebuggerRunning)
	slog.Info("Emulator resumed")
}

func (e *DMG) DebuggerStepInstruction() {
	e.debuggerMutex.Lock()
	defer e.debuggerMutex.Unlock()
	e.stepRequested = true
	e.debuggerState = DebuggerStep
	slog.Info("Step instruction requested")
}

func (e *DMG) DebuggerStepFrame() {
	e.debuggerMutex.Lock()
	defer e.debuggerMutex.Unlock()
	e.frameRequested = true
	e.debuggerState = DebuggerStepFrame
	slog.Info("Step frame requested")
}

func (e *DMG) GetInstructionCount() uint64 {
	return e.instructionCount
}

func (e *DMG) GetFrameCount() uint64 {
	return e.frameCount
}

