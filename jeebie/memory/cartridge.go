package memory

import (
	"fmt"
	"log/slog"

	"github.com/ardenmill/dmgcore/jeebie/bit"
)

const titleLength = 16

const (
	entryPointAddress      = 0x100
	logoAddress            = 0x104
	titleAddress           = 0x134
	cgbFlagAddress         = 0x143
	newLicenseCodeAddress  = 0x144
	sgbFlagAddress         = 0x146
	cartridgeTypeAddress   = 0x147
	romSizeAddress         = 0x148
	ramSizeAddress         = 0x149
	destinationCodeAddress = 0x14A
	oldLicenseCodeAddress  = 0x14B
	versionNumberAddress   = 0x14C
	headerChecksumAddress  = 0x14D
	globalChecksumAddress  = 0x14E
)

// MBCType identifies which memory bank controller a cartridge's header
// declares. It's derived from the raw cartridgeType byte at 0x147.
type MBCType uint8

const (
	NoMBCType MBCType = iota
	MBC1Type
	MBC1MultiType
	MBC2Type
	MBC3Type
	MBC5Type
	MBCUnknownType
)

func (t MBCType) String() string {
	switch t {
	case NoMBCType:
		return "ROM ONLY"
	case MBC1Type:
		return "MBC1"
	case MBC1MultiType:
		return "MBC1 (multicart)"
	case MBC2Type:
		return "MBC2"
	case MBC3Type:
		return "MBC3"
	case MBC5Type:
		return "MBC5"
	default:
		return "unknown"
	}
}

// mbcTypeFromHeader maps the raw cartridge type byte to the MBC family
// this package knows how to drive, along with the battery/RTC/rumble
// flags packed into the same byte.
func mbcTypeFromHeader(cartType uint8) (mbcType MBCType, hasBattery, hasRTC, hasRumble bool) {
	switch cartType {
	case 0x00, 0x08, 0x09:
		return NoMBCType, cartType == 0x09, false, false
	case 0x01, 0x02, 0x03:
		return MBC1Type, cartType == 0x03, false, false
	case 0x05, 0x06:
		return MBC2Type, cartType == 0x06, false, false
	case 0x0F, 0x10, 0x11, 0x12, 0x13:
		hasBattery := cartType == 0x0F || cartType == 0x10 || cartType == 0x13
		hasRTC := cartType == 0x0F || cartType == 0x10
		return MBC3Type, hasBattery, hasRTC, false
	case 0x19, 0x1A, 0x1B, 0x1C, 0x1D, 0x1E:
		hasBattery := cartType == 0x1B || cartType == 0x1E
		hasRumble := cartType >= 0x1C
		return MBC5Type, hasBattery, false, hasRumble
	default:
		return MBCUnknownType, false, false, false
	}
}

// ramBankCountFromHeader translates the 0x149 RAM size code into a bank
// count, in 8KB banks. MBC2's built-in RAM isn't sized by this byte at all.
func ramBankCountFromHeader(mbcType MBCType, ramSizeCode uint8) uint8 {
	if mbcType == MBC2Type {
		return 1
	}
	switch ramSizeCode {
	case 0x00:
		return 0
	case 0x02:
		return 1
	case 0x03:
		return 4
	case 0x04:
		return 16
	case 0x05:
		return 8
	default:
		return 0
	}
}

// Cartridge holds a loaded ROM image together with its decoded header
// fields. It owns the raw ROM bytes; the selected MBC wraps this data
// to implement bank switching.
type Cartridge struct {
	data []uint8

	title           string
	manufacturer    string
	newLicenseeCode string
	oldLicenseeCode uint8
	supportsSGB     bool
	isJapanese      bool

	cartType       uint8
	mbcType        MBCType
	hasBattery     bool
	hasRTC         bool
	hasRumble      bool
	romSize        uint32
	ramSize        uint32
	ramBankCount   uint8
	version        uint8
	headerChecksum uint8
	globalChecksum uint16
}

// NewCartridge creates an empty cartridge, useful only for debugging purposes.
func NewCartridge() *Cartridge {
	return &Cartridge{
		data:    make([]byte, 0x10000),
		mbcType: NoMBCType,
	}
}

// NewCartridgeWithData parses a ROM image's header and initializes a
// Cartridge ready to be wrapped by the appropriate MBC. Checksum
// mismatches and unrecognized fields are logged, never fatal: plenty of
// homebrew and test ROMs ship with a zeroed header checksum.
func NewCartridgeWithData(bytes []byte) *Cartridge {
	cart := &Cartridge{
		data: make([]byte, len(bytes)),
	}
	copy(cart.data, bytes)

	if len(bytes) <= int(globalChecksumAddress)+1 {
		slog.Warn("cartridge image too small to contain a full header", "size", len(bytes))
		cart.mbcType = NoMBCType
		return cart
	}

	cart.title = decodeTitle(bytes[titleAddress : titleAddress+titleLength])
	cart.oldLicenseeCode = bytes[oldLicenseCodeAddress]
	if cart.oldLicenseeCode == 0x33 && len(bytes) > newLicenseCodeAddress+1 {
		cart.newLicenseeCode = string(bytes[newLicenseCodeAddress : newLicenseCodeAddress+2])
	}
	cart.supportsSGB = bytes[sgbFlagAddress] == 0x03
	cart.isJapanese = bytes[destinationCodeAddress] == 0x00
	cart.version = bytes[versionNumberAddress]

	cart.cartType = bytes[cartridgeTypeAddress]
	cart.mbcType, cart.hasBattery, cart.hasRTC, cart.hasRumble = mbcTypeFromHeader(cart.cartType)
	if cart.mbcType == MBCUnknownType {
		slog.Warn("unrecognized cartridge type, falling back to no MBC",
			"cartType", fmt.Sprintf("0x%02X", cart.cartType))
		cart.mbcType = NoMBCType
	}

	cart.romSize = (32 * 1024) << bytes[romSizeAddress]
	ramSizeCode := bytes[ramSizeAddress]
	cart.ramBankCount = ramBankCountFromHeader(cart.mbcType, ramSizeCode)
	if cart.mbcType == MBC2Type {
		cart.ramSize = 512
	} else {
		cart.ramSize = uint32(cart.ramBankCount) * 0x2000
	}

	cart.headerChecksum = bytes[headerChecksumAddress]
	if computed := computeHeaderChecksum(bytes); computed != cart.headerChecksum {
		slog.Warn("cartridge header checksum mismatch",
			"title", cart.title,
			"expected", fmt.Sprintf("0x%02X", cart.headerChecksum),
			"computed", fmt.Sprintf("0x%02X", computed))
	}

	cart.globalChecksum = bit.Combine(bytes[globalChecksumAddress], bytes[globalChecksumAddress+1])
	if computed := computeGlobalChecksum(bytes); computed != cart.globalChecksum {
		slog.Warn("cartridge global checksum mismatch",
			"title", cart.title,
			"expected", fmt.Sprintf("0x%04X", cart.globalChecksum),
			"computed", fmt.Sprintf("0x%04X", computed))
	}

	return cart
}

// decodeTitle trims the trailing NUL padding from the raw title bytes.
// Other bytes, including the manufacturer code/CGB flag bytes that share
// the title field on CGB carts, are kept as they are.
func decodeTitle(raw []byte) string {
	end := len(raw)
	for end > 0 && raw[end-1] == 0x00 {
		end--
	}
	return string(raw[:end])
}

func computeHeaderChecksum(rom []byte) uint8 {
	var x uint8
	for i := 0x134; i <= 0x14C; i++ {
		x = x - rom[i] - 1
	}
	return x
}

func computeGlobalChecksum(rom []byte) uint16 {
	var x uint16
	for i, b := range rom {
		if i == globalChecksumAddress || i == globalChecksumAddress+1 {
			continue
		}
		x += uint16(b)
	}
	return x
}

// Title returns the cartridge's decoded, trimmed title string.
func (c *Cartridge) Title() string { return c.title }

// MBCType reports which memory bank controller family this cartridge uses.
func (c *Cartridge) MBCType() MBCType { return c.mbcType }

// Version returns the mask ROM version number at 0x14C.
func (c *Cartridge) Version() uint8 { return c.version }

// HeaderChecksum returns the checksum byte stored in the header, regardless
// of whether it matched the computed value.
func (c *Cartridge) HeaderChecksum() uint8 { return c.headerChecksum }

// GlobalChecksum returns the 16-bit checksum stored in the header.
func (c *Cartridge) GlobalChecksum() uint16 { return c.globalChecksum }

// SupportsSuperGameBoy reports whether the SGB flag (0x146) is set.
func (c *Cartridge) SupportsSuperGameBoy() bool { return c.supportsSGB }

// IsJapanese reports the destination code (0x14A): true for 0x00 (Japan).
func (c *Cartridge) IsJapanese() bool { return c.isJapanese }

// ROMSize returns the decoded ROM size in bytes (0x148).
func (c *Cartridge) ROMSize() uint32 { return c.romSize }

// RAMSize returns the decoded external RAM size in bytes (0x149).
func (c *Cartridge) RAMSize() uint32 { return c.ramSize }

// HasBattery reports whether the cartridge type byte (0x147) declares
// battery-backed save RAM.
func (c *Cartridge) HasBattery() bool { return c.hasBattery }

// ReadByte reads a byte at the specified address. Does not check bounds, so the caller must make sure the
// address is valid for the cartridge.
func (c Cartridge) ReadByte(addr uint16) uint8 {
	return c.data[addr]
}

// WriteByte attempts a write to the specified address. Writing to a cartridge has sense if the cartridge
// has extra RAM or for some special operations, like switching ROM banks.
func (c Cartridge) WriteByte(addr uint16, value uint8) uint8 {
	return c.data[addr]
}
