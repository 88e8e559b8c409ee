// engine_maxwell3d.go - Maxwell 3D Engine Register File

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/TegraCore

License: GPLv3 or later
*/

/*
engine_maxwell3d.go - Maxwell 3D Engine Register File (MAXWELL_B)

Register interface of the 3D engine, modelled the way the Voodoo core
models its chip: a flat shadow register array written through CallMethod,
with typed decoders for the register groups the surface layer consumes.

Only the state the texture/surface path reads is decoded: the eight render
target slots and the zeta (depth/stencil) configuration. Everything else is
stored raw so later consumers can decode it without an engine change.

Register word offsets follow the MAXWELL_B class method numbering (method
numbers, not byte offsets).
*/

package tegracore

import "fmt"

const (
	MAXWELL3D_REG_COUNT = 0xE00

	// Render target slots: 8 slots of 16 words each.
	MAXWELL3D_RT_BASE   = 0x200
	MAXWELL3D_RT_STRIDE = 0x10
	MAXWELL3D_NUM_RT    = 8

	// Word offsets inside one render target slot.
	RT_ADDRESS_HIGH = 0x0
	RT_ADDRESS_LOW  = 0x1
	RT_WIDTH        = 0x2
	RT_HEIGHT       = 0x3
	RT_FORMAT       = 0x4
	RT_TILE_MODE    = 0x5
	RT_DEPTH        = 0x6
	RT_LAYER_STRIDE = 0x7
	RT_BASE_LAYER   = 0x8

	// Zeta (depth/stencil) registers.
	MAXWELL3D_ZETA_ADDRESS_HIGH = 0x3F8
	MAXWELL3D_ZETA_ADDRESS_LOW  = 0x3F9
	MAXWELL3D_ZETA_FORMAT       = 0x3FA
	MAXWELL3D_ZETA_TILE_MODE    = 0x3FB
	MAXWELL3D_ZETA_LAYER_STRIDE = 0x3FC

	MAXWELL3D_RT_CONTROL  = 0x487
	MAXWELL3D_ZETA_WIDTH  = 0x48A
	MAXWELL3D_ZETA_HEIGHT = 0x48B
	MAXWELL3D_ZETA_ENABLE = 0x54E

	// Texture descriptor pool registers.
	MAXWELL3D_TIC_ADDRESS_HIGH = 0x55D
	MAXWELL3D_TIC_ADDRESS_LOW  = 0x55E
	MAXWELL3D_TIC_LIMIT        = 0x55F
)

// TICEntrySize is the guest byte footprint of one texture descriptor.
const TICEntrySize = 32

// RenderTargetConfig is the decoded state of one render target slot.
type RenderTargetConfig struct {
	Address      GPUVAddr
	Width        uint32
	Height       uint32
	Format       RenderTargetFormat
	MemoryLayout MemoryLayout
	BlockWidth   uint32 // log2 GOBs in X
	BlockHeight  uint32 // log2 GOBs in Y
	BlockDepth   uint32 // log2 GOBs in Z
	Layers       uint32
	LayerStride  uint32
	BaseLayer    uint32
}

// ZetaConfig is the decoded depth/stencil target state.
type ZetaConfig struct {
	Enabled      bool
	Address      GPUVAddr
	Width        uint32
	Height       uint32
	Format       DepthFormat
	MemoryLayout MemoryLayout
	BlockWidth   uint32
	BlockHeight  uint32
	BlockDepth   uint32
}

// Maxwell3D is the 3D engine register file. Methods arrive through the GPU
// front-end's subchannel dispatch.
type Maxwell3D struct {
	regs [MAXWELL3D_REG_COUNT]uint32

	memoryManager *MemoryManager
	rasterizer    RasterizerInterface
}

func NewMaxwell3D(rasterizer RasterizerInterface, memoryManager *MemoryManager) *Maxwell3D {
	return &Maxwell3D{
		memoryManager: memoryManager,
		rasterizer:    rasterizer,
	}
}

// CallMethod writes one method argument into the shadow register file. An
// out-of-range method is a command stream corruption and faults.
func (m *Maxwell3D) CallMethod(call MethodCall) {
	if call.Method >= MAXWELL3D_REG_COUNT {
		panic(fmt.Sprintf("Maxwell3D: method 0x%04X out of range", call.Method))
	}
	m.regs[call.Method] = call.Argument
}

// Reg returns a raw shadow register value.
func (m *Maxwell3D) Reg(index uint32) uint32 {
	if index >= MAXWELL3D_REG_COUNT {
		panic(fmt.Sprintf("Maxwell3D: register 0x%04X out of range", index))
	}
	return m.regs[index]
}

func decodeTileMode(raw uint32) (MemoryLayout, uint32, uint32, uint32) {
	layout := MemoryLayout((raw >> 12) & 0x1)
	return layout, raw & 0xF, (raw >> 4) & 0xF, (raw >> 8) & 0xF
}

// RenderTarget decodes render target slot index from the register file.
func (m *Maxwell3D) RenderTarget(index int) RenderTargetConfig {
	if index < 0 || index >= MAXWELL3D_NUM_RT {
		panic(fmt.Sprintf("Maxwell3D: render target index %d out of range", index))
	}
	base := uint32(MAXWELL3D_RT_BASE + index*MAXWELL3D_RT_STRIDE)
	layout, bw, bh, bd := decodeTileMode(m.regs[base+RT_TILE_MODE])
	return RenderTargetConfig{
		Address:      GPUVAddr(m.regs[base+RT_ADDRESS_LOW]) | GPUVAddr(m.regs[base+RT_ADDRESS_HIGH])<<32,
		Width:        m.regs[base+RT_WIDTH],
		Height:       m.regs[base+RT_HEIGHT],
		Format:       RenderTargetFormat(m.regs[base+RT_FORMAT]),
		MemoryLayout: layout,
		BlockWidth:   bw,
		BlockHeight:  bh,
		BlockDepth:   bd,
		Layers:       m.regs[base+RT_DEPTH] & 0xFFFF,
		LayerStride:  m.regs[base+RT_LAYER_STRIDE],
		BaseLayer:    m.regs[base+RT_BASE_LAYER],
	}
}

// Zeta decodes the depth/stencil target state from the register file.
func (m *Maxwell3D) Zeta() ZetaConfig {
	layout, bw, bh, bd := decodeTileMode(m.regs[MAXWELL3D_ZETA_TILE_MODE])
	return ZetaConfig{
		Enabled: m.regs[MAXWELL3D_ZETA_ENABLE] != 0,
		Address: GPUVAddr(m.regs[MAXWELL3D_ZETA_ADDRESS_LOW]) |
			GPUVAddr(m.regs[MAXWELL3D_ZETA_ADDRESS_HIGH])<<32,
		Width:        m.regs[MAXWELL3D_ZETA_WIDTH],
		Height:       m.regs[MAXWELL3D_ZETA_HEIGHT],
		Format:       DepthFormat(m.regs[MAXWELL3D_ZETA_FORMAT]),
		MemoryLayout: layout,
		BlockWidth:   bw,
		BlockHeight:  bh,
		BlockDepth:   bd,
	}
}

// GetTICEntry fetches texture descriptor index from the guest TIC pool. An
// index past the pool limit is a command stream corruption and faults.
func (m *Maxwell3D) GetTICEntry(index uint32) TICEntry {
	if limit := m.regs[MAXWELL3D_TIC_LIMIT]; index > limit {
		panic(fmt.Sprintf("Maxwell3D: TIC index %d past pool limit %d", index, limit))
	}
	base := GPUVAddr(m.regs[MAXWELL3D_TIC_ADDRESS_LOW]) |
		GPUVAddr(m.regs[MAXWELL3D_TIC_ADDRESS_HIGH])<<32
	addr := base + GPUVAddr(index)*TICEntrySize
	var tic TICEntry
	for i := range tic.Raw {
		tic.Raw[i] = m.memoryManager.ReadU32(addr + GPUVAddr(i)*4)
	}
	return tic
}

// GetTextureInfo fetches the TIC for a sampler and bundles it with the
// sampler's reflection metadata.
func (m *Maxwell3D) GetTextureInfo(index uint32, entry SamplerEntry) FullTextureInfo {
	return FullTextureInfo{
		Index: index,
		TIC:   m.GetTICEntry(index),
		Entry: entry,
	}
}

// TextureParams builds the surface parameters of texture descriptor index as
// the given sampler sees it.
func (m *Maxwell3D) TextureParams(index uint32, entry SamplerEntry) SurfaceParams {
	info := m.GetTextureInfo(index, entry)
	return CreateSurfaceParamsForTexture(info.TIC, info.Entry)
}

// DepthBufferParams builds the surface parameters of the currently bound
// depth/stencil target.
func (m *Maxwell3D) DepthBufferParams() SurfaceParams {
	zeta := m.Zeta()
	return CreateSurfaceParamsForDepthBuffer(zeta.Width, zeta.Height, zeta.Format,
		zeta.BlockWidth, zeta.BlockHeight, zeta.BlockDepth, zeta.MemoryLayout)
}
