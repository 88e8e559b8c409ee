// gpu_constants.go - Tegra GPU Register Definitions

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/TegraCore

License: GPLv3 or later
*/

/*
gpu_constants.go - Tegra GPU Register & Method Definitions

Register encodings shared by the whole GPU core: render target and depth
buffer format codes as they appear in hardware registers, command processor
(puller) method numbers, engine class IDs for subchannel binding, and
semaphore operation codes.

The GPU uses a method-based programming model: the command processor feeds
(method, argument, subchannel) triplets either to its own puller register
file or to the engine currently bound to the subchannel. Method numbers are
4-byte addressable, so documentation that lists byte offsets shows these
values multiplied by 4.

Reference: envytools (nvidia open documentation project) class headers for
FERMI_TWOD_A, MAXWELL_B and the GF100 puller.
*/

package tegracore

import "fmt"

// RenderTargetFormat is the color target format encoding used by the 3D
// engine's RT registers and the 2D engine's surface registers.
type RenderTargetFormat uint32

const (
	RT_FORMAT_NONE            RenderTargetFormat = 0x00
	RT_FORMAT_RGBA32_FLOAT    RenderTargetFormat = 0xC0
	RT_FORMAT_RGBA32_SINT     RenderTargetFormat = 0xC1
	RT_FORMAT_RGBA32_UINT     RenderTargetFormat = 0xC2
	RT_FORMAT_RGBA16_UNORM    RenderTargetFormat = 0xC6
	RT_FORMAT_RGBA16_SNORM    RenderTargetFormat = 0xC7
	RT_FORMAT_RGBA16_SINT     RenderTargetFormat = 0xC8
	RT_FORMAT_RGBA16_UINT     RenderTargetFormat = 0xC9
	RT_FORMAT_RGBA16_FLOAT    RenderTargetFormat = 0xCA
	RT_FORMAT_RG32_FLOAT      RenderTargetFormat = 0xCB
	RT_FORMAT_RG32_SINT       RenderTargetFormat = 0xCC
	RT_FORMAT_RG32_UINT       RenderTargetFormat = 0xCD
	RT_FORMAT_RGBX16_FLOAT    RenderTargetFormat = 0xCE
	RT_FORMAT_BGRA8_UNORM     RenderTargetFormat = 0xCF
	RT_FORMAT_BGRA8_SRGB      RenderTargetFormat = 0xD0
	RT_FORMAT_RGB10_A2_UNORM  RenderTargetFormat = 0xD1
	RT_FORMAT_RGBA8_UNORM     RenderTargetFormat = 0xD5
	RT_FORMAT_RGBA8_SRGB      RenderTargetFormat = 0xD6
	RT_FORMAT_RGBA8_SNORM     RenderTargetFormat = 0xD7
	RT_FORMAT_RGBA8_SINT      RenderTargetFormat = 0xD8
	RT_FORMAT_RGBA8_UINT      RenderTargetFormat = 0xD9
	RT_FORMAT_RG16_UNORM      RenderTargetFormat = 0xDA
	RT_FORMAT_RG16_SNORM      RenderTargetFormat = 0xDB
	RT_FORMAT_RG16_SINT       RenderTargetFormat = 0xDC
	RT_FORMAT_RG16_UINT       RenderTargetFormat = 0xDD
	RT_FORMAT_RG16_FLOAT      RenderTargetFormat = 0xDE
	RT_FORMAT_R11G11B10_FLOAT RenderTargetFormat = 0xE0
	RT_FORMAT_R32_SINT        RenderTargetFormat = 0xE3
	RT_FORMAT_R32_UINT        RenderTargetFormat = 0xE4
	RT_FORMAT_R32_FLOAT       RenderTargetFormat = 0xE5
	RT_FORMAT_B5G6R5_UNORM    RenderTargetFormat = 0xE8
	RT_FORMAT_BGR5A1_UNORM    RenderTargetFormat = 0xE9
	RT_FORMAT_RG8_UNORM       RenderTargetFormat = 0xEA
	RT_FORMAT_RG8_SNORM       RenderTargetFormat = 0xEB
	RT_FORMAT_R16_UNORM       RenderTargetFormat = 0xEE
	RT_FORMAT_R16_SNORM       RenderTargetFormat = 0xEF
	RT_FORMAT_R16_SINT        RenderTargetFormat = 0xF0
	RT_FORMAT_R16_UINT        RenderTargetFormat = 0xF1
	RT_FORMAT_R16_FLOAT       RenderTargetFormat = 0xF2
	RT_FORMAT_R8_UNORM        RenderTargetFormat = 0xF3
	RT_FORMAT_R8_SNORM        RenderTargetFormat = 0xF4
	RT_FORMAT_R8_SINT         RenderTargetFormat = 0xF5
	RT_FORMAT_R8_UINT         RenderTargetFormat = 0xF6
)

// DepthFormat is the depth/stencil buffer format encoding of the zeta
// registers.
type DepthFormat uint32

const (
	DEPTH_FORMAT_Z32_FLOAT        DepthFormat = 0x0A
	DEPTH_FORMAT_Z16_UNORM        DepthFormat = 0x13
	DEPTH_FORMAT_S8_Z24_UNORM     DepthFormat = 0x14
	DEPTH_FORMAT_Z24_X8_UNORM     DepthFormat = 0x15
	DEPTH_FORMAT_Z24_S8_UNORM     DepthFormat = 0x16
	DEPTH_FORMAT_Z24_C8_UNORM     DepthFormat = 0x18
	DEPTH_FORMAT_Z32_S8_X24_FLOAT DepthFormat = 0x19
)

// RenderTargetBytesPerPixel returns the byte size of one pixel of a render
// target format. An unknown format is a register decoder bug.
func RenderTargetBytesPerPixel(format RenderTargetFormat) uint32 {
	switch format {
	case RT_FORMAT_RGBA32_FLOAT, RT_FORMAT_RGBA32_SINT, RT_FORMAT_RGBA32_UINT:
		return 16
	case RT_FORMAT_RGBA16_UINT, RT_FORMAT_RGBA16_SINT, RT_FORMAT_RGBA16_UNORM,
		RT_FORMAT_RGBA16_SNORM, RT_FORMAT_RGBA16_FLOAT, RT_FORMAT_RGBX16_FLOAT,
		RT_FORMAT_RG32_FLOAT, RT_FORMAT_RG32_SINT, RT_FORMAT_RG32_UINT:
		return 8
	case RT_FORMAT_RGBA8_UNORM, RT_FORMAT_RGBA8_SNORM, RT_FORMAT_RGBA8_SRGB,
		RT_FORMAT_RGBA8_SINT, RT_FORMAT_RGBA8_UINT, RT_FORMAT_RGB10_A2_UNORM,
		RT_FORMAT_BGRA8_UNORM, RT_FORMAT_BGRA8_SRGB, RT_FORMAT_RG16_UNORM,
		RT_FORMAT_RG16_SNORM, RT_FORMAT_RG16_SINT, RT_FORMAT_RG16_UINT,
		RT_FORMAT_RG16_FLOAT, RT_FORMAT_R32_FLOAT, RT_FORMAT_R32_SINT,
		RT_FORMAT_R32_UINT, RT_FORMAT_R11G11B10_FLOAT:
		return 4
	case RT_FORMAT_B5G6R5_UNORM, RT_FORMAT_BGR5A1_UNORM, RT_FORMAT_R16_UNORM,
		RT_FORMAT_R16_SNORM, RT_FORMAT_R16_SINT, RT_FORMAT_R16_UINT,
		RT_FORMAT_R16_FLOAT, RT_FORMAT_RG8_UNORM, RT_FORMAT_RG8_SNORM:
		return 2
	case RT_FORMAT_R8_UNORM, RT_FORMAT_R8_SNORM, RT_FORMAT_R8_SINT, RT_FORMAT_R8_UINT:
		return 1
	default:
		panic(fmt.Sprintf("GPU: unimplemented render target format 0x%02X", uint32(format)))
	}
}

// DepthFormatBytesPerPixel returns the byte size of one pixel of a depth
// buffer format.
func DepthFormatBytesPerPixel(format DepthFormat) uint32 {
	switch format {
	case DEPTH_FORMAT_Z32_S8_X24_FLOAT:
		return 8
	case DEPTH_FORMAT_Z32_FLOAT, DEPTH_FORMAT_S8_Z24_UNORM, DEPTH_FORMAT_Z24_X8_UNORM,
		DEPTH_FORMAT_Z24_S8_UNORM, DEPTH_FORMAT_Z24_C8_UNORM:
		return 4
	case DEPTH_FORMAT_Z16_UNORM:
		return 2
	default:
		panic(fmt.Sprintf("GPU: unimplemented depth format 0x%02X", uint32(format)))
	}
}

// MemoryLayout selects between the two guest surface layouts.
type MemoryLayout uint32

const (
	MEMORY_LAYOUT_BLOCK_LINEAR MemoryLayout = 0 // tiled (GOB-based)
	MEMORY_LAYOUT_PITCH        MemoryLayout = 1 // row-major with explicit pitch
)

// EngineID identifies the engine class bound to a subchannel.
type EngineID uint32

const (
	ENGINE_FERMI_TWOD_A              EngineID = 0x902D // 2D copy/blit engine
	ENGINE_KEPLER_INLINE_TO_MEMORY_B EngineID = 0xA140
	ENGINE_MAXWELL_DMA_COPY_A        EngineID = 0xB0B5
	ENGINE_MAXWELL_B                 EngineID = 0xB197 // 3D engine
	ENGINE_KEPLER_COMPUTE_B          EngineID = 0xB1C0
)

// Puller methods handled by the GPU itself rather than a bound engine.
// Everything at or above PULLER_METHOD_LIMIT goes to the engine.
const (
	PULLER_BIND_OBJECT       = 0x00
	PULLER_NOP               = 0x02
	PULLER_SEMAPHORE_ADDR_HI = 0x04
	PULLER_SEMAPHORE_ADDR_LO = 0x05
	PULLER_SEMAPHORE_SEQ     = 0x06
	PULLER_SEMAPHORE_TRIGGER = 0x07
	PULLER_NOTIFY_INTR       = 0x08
	PULLER_WRCACHE_FLUSH     = 0x09
	PULLER_REF_CNT           = 0x14
	PULLER_SEMAPHORE_ACQUIRE = 0x1A
	PULLER_SEMAPHORE_RELEASE = 0x1B
	PULLER_FENCE_VALUE       = 0x1C
	PULLER_FENCE_ACTION      = 0x1D
	PULLER_YIELD             = 0x20
	PULLER_METHOD_LIMIT      = 0x40
	PULLER_REG_COUNT         = 0x40
)

// Semaphore trigger operations (low nibble of the trigger argument).
const (
	SEMAPHORE_OP_ACQUIRE_EQUAL  = 0x1
	SEMAPHORE_OP_WRITE_LONG     = 0x2
	SEMAPHORE_OP_ACQUIRE_GEQUAL = 0x4
	SEMAPHORE_OP_ACQUIRE_MASK   = 0x8
)

// Number of hardware syncpoints.
const NUM_SYNCPOINTS = 192

// Number of subchannels addressable by the command processor.
const NUM_SUBCHANNELS = 8
