// Package debugger implements a line-oriented REPL for inspecting and
// controlling a running emulator, in the spirit of a classic machine-level
// monitor: breakpoints, single-step, register/memory dumps, and raw VRAM/OAM
// inspection.
package debugger

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/ardenmill/dmgcore/jeebie"
	"github.com/ardenmill/dmgcore/jeebie/debug"
	"github.com/ardenmill/dmgcore/jeebie/disasm"
	"github.com/ardenmill/dmgcore/jeebie/memory"
)

const historyFileName = "history.txt"

// Debugger is a REPL bound to a single emulator instance. It owns the
// breakpoint registry independently of whatever the emulator was created
// with, attaching it on construction so both execute and memory watches are
// live from the first prompt.
type Debugger struct {
	dmg         *jeebie.DMG
	romPath     string
	breakpoints *memory.Breakpoints

	out io.Writer
	in  *bufio.Scanner

	historyFile *os.File
}

// New creates a debugger REPL wrapping dmg, which must have been created
// from romPath (used only to support the `reset` command).
func New(dmg *jeebie.DMG, romPath string, in io.Reader, out io.Writer) *Debugger {
	bps := memory.NewBreakpoints()
	dmg.AttachBreakpoints(bps)

	d := &Debugger{
		dmg:         dmg,
		romPath:     romPath,
		breakpoints: bps,
		out:         out,
		in:          bufio.NewScanner(in),
	}

	if f, err := os.OpenFile(historyFileName, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644); err != nil {
		slog.Warn("could not open debugger history file", "error", err)
	} else {
		d.historyFile = f
	}

	return d
}

// Close releases the debugger's history file handle and the emulator's
// serial output file.
func (d *Debugger) Close() error {
	if d.dmg != nil {
		d.dmg.Close()
	}
	if d.historyFile != nil {
		return d.historyFile.Close()
	}
	return nil
}

// Run starts the prompt loop, reading one line at a time until the user
// quits or stdin is closed (EOF).
func (d *Debugger) Run() error {
	fmt.Fprintln(d.out, "dmgcore debugger. Type 'exit' to quit.")

	for {
		fmt.Fprint(d.out, "(dmg) ")
		if !d.in.Scan() {
			return d.in.Err()
		}

		line := strings.TrimSpace(d.in.Text())
		if line == "" {
			continue
		}

		d.recordHistory(line)

		if d.dispatch(line) {
			return nil
		}
	}
}

func (d *Debugger) recordHistory(line string) {
	if d.historyFile == nil {
		return
	}
	if _, err := d.historyFile.WriteString(line + "\n"); err != nil {
		slog.Warn("failed to append debugger history", "error", err)
	}
}

// dispatch executes one command line and reports whether the REPL should
// exit.
func (d *Debugger) dispatch(line string) bool {
	fields := strings.Fields(line)
	cmd := fields[0]
	args := fields[1:]

	switch cmd {
	case "exit", "q", "quit":
		return true
	case "reset":
		d.cmdReset()
	case "state", "dump", "regs":
		d.cmdState()
	case "break", "b":
		d.cmdBreak(args)
	case "list", "bl":
		d.cmdListBreakpoints()
	case "clear", "bc":
		d.cmdClearBreakpoints(args)
	case "run", "g":
		d.cmdRun()
	case "step", "n":
		d.cmdStep()
	case "print", "p":
		d.cmdPrint(args)
	case "disassemble", "u":
		d.cmdDisassemble(args)
	case "header":
		d.cmdHeader()
	case "tilemap":
		d.cmdTilemap(args)
	case "tiles":
		d.cmdTiles(args)
	case "sprites":
		d.cmdSprites()
	default:
		fmt.Fprintf(d.out, "unknown command: %s\n", cmd)
	}

	return false
}

// parseAddr accepts decimal or 0x-prefixed hex, matching the REPL's address
// argument convention throughout.
func parseAddr(s string) (uint16, error) {
	v, err := strconv.ParseUint(s, 0, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid address %q: %w", s, err)
	}
	return uint16(v), nil
}

func parseInt(s string, def int) int {
	v, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return def
	}
	return int(v)
}

func (d *Debugger) cmdReset() {
	dmg, err := jeebie.NewWithFile(d.romPath)
	if err != nil {
		fmt.Fprintf(d.out, "reset failed: %v\n", err)
		return
	}
	if d.dmg != nil {
		d.dmg.Close()
	}
	d.dmg = dmg
	d.breakpoints = memory.NewBreakpoints()
	d.dmg.AttachBreakpoints(d.breakpoints)
	fmt.Fprintln(d.out, "emulator reset")
}

func (d *Debugger) cmdState() {
	data := d.dmg.ExtractDebugData()
	if data == nil || data.CPU == nil {
		fmt.Fprintln(d.out, "emulator not initialized")
		return
	}
	cpu := data.CPU
	fmt.Fprintf(d.out, "AF=%04X BC=%04X DE=%04X HL=%04X\n",
		uint16(cpu.A)<<8|uint16(cpu.F), uint16(cpu.B)<<8|uint16(cpu.C),
		uint16(cpu.D)<<8|uint16(cpu.E), uint16(cpu.H)<<8|uint16(cpu.L))
	fmt.Fprintf(d.out, "SP=%04X PC=%04X IME=%v\n", cpu.SP, cpu.PC, cpu.IME)
	fmt.Fprintf(d.out, "Flags=%s Cycles=%d\n", d.dmg.GetCPU().GetFlagString(), cpu.Cycles)
	fmt.Fprintf(d.out, "IE=%02X IF=%02X Frame=%d Instr=%d\n",
		data.InterruptEnable, data.InterruptFlags, d.dmg.GetFrameCount(), d.dmg.GetInstructionCount())
}

func accessKindFromString(s string) (memory.AccessKind, error) {
	var kind memory.AccessKind
	for _, c := range s {
		switch c {
		case 'r':
			kind |= memory.AccessRead
		case 'w':
			kind |= memory.AccessWrite
		case 'e':
			kind |= memory.AccessExecute
		default:
			return 0, fmt.Errorf("invalid access mode %q", s)
		}
	}
	if kind == 0 {
		return 0, fmt.Errorf("empty access mode")
	}
	return kind, nil
}

func (d *Debugger) cmdBreak(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(d.out, "usage: break <addr> [access] [len]")
		return
	}

	addr, err := parseAddr(args[0])
	if err != nil {
		fmt.Fprintln(d.out, err)
		return
	}

	kind := memory.AccessExecute
	if len(args) >= 2 {
		kind, err = accessKindFromString(args[1])
		if err != nil {
			fmt.Fprintln(d.out, err)
			return
		}
	}

	length := uint16(1)
	if len(args) >= 3 {
		length = uint16(parseInt(args[2], 1))
	}

	d.breakpoints.Add(addr, length, kind)
	fmt.Fprintf(d.out, "breakpoint set at 0x%04X\n", addr)
}

func (d *Debugger) cmdListBreakpoints() {
	points := d.breakpoints.List()
	if len(points) == 0 {
		fmt.Fprintln(d.out, "no breakpoints")
		return
	}
	for i, bp := range points {
		status := "enabled"
		if !bp.Enabled {
			status = "disabled"
		}
		fmt.Fprintf(d.out, "%d: 0x%04X len=%d kind=%d [%s]\n", i, bp.Address, bp.Length, bp.Kind, status)
	}
}

func (d *Debugger) cmdClearBreakpoints(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(d.out, "usage: clear <idx[,idx]...>")
		return
	}

	indices := strings.Split(args[0], ",")
	points := d.breakpoints.List()

	toRemove := make([]*memory.Breakpoint, 0, len(indices))
	for _, idxStr := range indices {
		idx := parseInt(strings.TrimSpace(idxStr), -1)
		if idx < 0 || idx >= len(points) {
			fmt.Fprintf(d.out, "index out of range: %s\n", idxStr)
			continue
		}
		toRemove = append(toRemove, points[idx])
	}

	for _, bp := range toRemove {
		d.breakpoints.Remove(bp)
	}
	fmt.Fprintf(d.out, "removed %d breakpoint(s)\n", len(toRemove))
}

// cmdRun resumes free execution until a breakpoint is hit or the user
// presses Ctrl-C, at which point control returns to the prompt.
func (d *Debugger) cmdRun() {
	d.dmg.DebuggerResume()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	defer signal.Stop(sigCh)

	for {
		select {
		case <-sigCh:
			d.dmg.DebuggerPause()
			fmt.Fprintln(d.out, "\ninterrupted")
			return
		default:
		}

		if err := d.dmg.RunUntilFrame(); err != nil {
			fmt.Fprintf(d.out, "run error: %v\n", err)
			return
		}

		if d.dmg.GetDebuggerState() == jeebie.DebuggerPaused {
			fmt.Fprintf(d.out, "stopped at PC=0x%04X\n", d.dmg.GetCPU().GetPC())
			return
		}
	}
}

// cmdStep executes exactly one instruction and prints the resulting PC.
func (d *Debugger) cmdStep() {
	d.dmg.DebuggerStepInstruction()
	if err := d.dmg.RunUntilFrame(); err != nil {
		fmt.Fprintf(d.out, "step error: %v\n", err)
		return
	}
	fmt.Fprintf(d.out, "PC=0x%04X\n", d.dmg.GetCPU().GetPC())
}

// cmdPrint dumps `len` bytes (default 64) starting at addr, 4 bytes per
// line with a hex and ASCII column.
func (d *Debugger) cmdPrint(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(d.out, "usage: print <addr> [len]")
		return
	}

	addr, err := parseAddr(args[0])
	if err != nil {
		fmt.Fprintln(d.out, err)
		return
	}

	length := 64
	if len(args) >= 2 {
		length = parseInt(args[1], 64)
	}

	mmu := d.dmg.GetMMU()
	for i := 0; i < length; i += 4 {
		lineAddr := addr + uint16(i)
		var hexPart strings.Builder
		var asciiPart strings.Builder
		for j := 0; j < 4 && i+j < length; j++ {
			b := mmu.Read(lineAddr + uint16(j))
			fmt.Fprintf(&hexPart, "%02X ", b)
			if b >= 0x20 && b < 0x7F {
				asciiPart.WriteByte(b)
			} else {
				asciiPart.WriteByte('.')
			}
		}
		fmt.Fprintf(d.out, "0x%04X: %-12s %s\n", lineAddr, hexPart.String(), asciiPart.String())
	}
}

// cmdDisassemble prints `count` instructions (default 10) starting at addr
// (default current PC), marking the current PC with a leading '>'.
func (d *Debugger) cmdDisassemble(args []string) {
	pc := d.dmg.GetCPU().GetPC()
	addr := pc
	count := 10

	if len(args) >= 1 {
		a, err := parseAddr(args[0])
		if err != nil {
			fmt.Fprintln(d.out, err)
			return
		}
		addr = a
	}
	if len(args) >= 2 {
		count = parseInt(args[1], 10)
	}

	mmu := d.dmg.GetMMU()
	lines := disasm.DisassembleRange(addr, count, mmu)
	for _, line := range lines {
		fmt.Fprintln(d.out, disasm.FormatDisassemblyLine(line, line.Address == pc))
	}
}

func (d *Debugger) cmdHeader() {
	cart := d.dmg.GetMMU().GetCartridge()
	if cart == nil {
		fmt.Fprintln(d.out, "no cartridge loaded")
		return
	}
	fmt.Fprintf(d.out, "Title: %s\n", cart.Title())
	fmt.Fprintf(d.out, "MBC: %s\n", cart.MBCType())
	fmt.Fprintf(d.out, "Battery: %v\n", cart.HasBattery())
	fmt.Fprintf(d.out, "ROM size: %d bytes\n", cart.ROMSize())
	fmt.Fprintf(d.out, "RAM size: %d bytes\n", cart.RAMSize())
	fmt.Fprintf(d.out, "Version: %d\n", cart.Version())
	fmt.Fprintf(d.out, "Header checksum: 0x%02X\n", cart.HeaderChecksum())
	fmt.Fprintf(d.out, "Global checksum: 0x%04X\n", cart.GlobalChecksum())
	fmt.Fprintf(d.out, "Supports SGB: %v\n", cart.SupportsSuperGameBoy())
	fmt.Fprintf(d.out, "Destination: %s\n", map[bool]string{true: "Japan", false: "Overseas"}[cart.IsJapanese()])
}

// cmdTilemap prints the 32x32 grid of raw tile indices for the background
// (map 0, 0x9800) or window (map 1, 0x9C00) tilemap.
func (d *Debugger) cmdTilemap(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(d.out, "usage: tilemap <0|1>")
		return
	}

	base := uint16(debug.BackgroundTilemapAddr)
	if args[0] == "1" {
		base = debug.WindowTilemapAddr
	} else if args[0] != "0" {
		fmt.Fprintln(d.out, "usage: tilemap <0|1>")
		return
	}

	mmu := d.dmg.GetMMU()
	for row := 0; row < 32; row++ {
		var line strings.Builder
		for col := 0; col < 32; col++ {
			tileIdx := mmu.Read(base + uint16(row*32+col))
			fmt.Fprintf(&line, "%02X ", tileIdx)
		}
		fmt.Fprintln(d.out, line.String())
	}
}

// cmdTiles renders a single tile as ASCII art, looked up by index in either
// the 0x8000 (unsigned) or 0x9000 (signed, background/window) addressing
// mode.
func (d *Debugger) cmdTiles(args []string) {
	if len(args) < 2 {
		fmt.Fprintln(d.out, "usage: tiles <idx> <8000|9000>")
		return
	}

	idx := parseInt(args[0], 0)

	var base uint16
	switch args[1] {
	case "8000":
		base = 0x8000 + uint16(idx)*16
	case "9000":
		base = uint16(int(0x9000) + idx*16)
	default:
		fmt.Fprintln(d.out, "addressing mode must be 8000 or 9000")
		return
	}

	mmu := d.dmg.GetMMU()

	for y := 0; y < 8; y++ {
		var line strings.Builder
		for x := 0; x < 8; x++ {
			low := mmu.Read(base + uint16(y*2))
			high := mmu.Read(base + uint16(y*2+1))
			bitIndex := 7 - uint(x)
			pixel := 0
			if (low>>bitIndex)&1 != 0 {
				pixel |= 1
			}
			if (high>>bitIndex)&1 != 0 {
				pixel |= 2
			}
			line.WriteByte(" .:#"[pixel])
		}
		fmt.Fprintln(d.out, line.String())
	}
}

// cmdSprites dumps all 40 OAM entries, regardless of current scanline.
func (d *Debugger) cmdSprites() {
	mmu := d.dmg.GetMMU()
	lcdc := mmu.Read(0xFF40)
	spriteHeight := 8
	if lcdc&0x04 != 0 {
		spriteHeight = 16
	}

	oam := debug.ExtractOAMDataFromReader(mmu, -1, spriteHeight)
	for _, s := range oam.Sprites {
		fmt.Fprintln(d.out, s.String())
	}
}
