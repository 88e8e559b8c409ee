// surface_params.go - Surface Layout Model & Cache Identity

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/TegraCore

License: GPLv3 or later
*/

/*
surface_params.go - Surface Layout Model & Cache Identity

SurfaceParams captures everything that determines the memory layout and
format interpretation of one GPU surface: tiling mode and GOB stacking
exponents, dimensions, mip count, pixel format and shape. It is the key the
surface cache deduplicates host resources by, and the calculator every byte
offset and size in the texture path comes from.

Four construction paths exist, one per hardware register source:
  - CreateSurfaceParamsForTexture: TIC descriptor + sampler reflection
  - CreateSurfaceParamsForDepthBuffer: zeta registers
  - CreateSurfaceParamsForFramebuffer: a 3D engine render target slot
  - CreateSurfaceParamsForFermiCopySurface: a 2D engine surface descriptor

Guest sizes reproduce the hardware's block-linear arithmetic byte-for-byte:
rows are grouped into 512-byte GOBs (64 bytes x 8 rows), GOBs are stacked
into blocks of 2^n per axis, and each mip level shrinks its block exponents
as the level becomes too small for the base block (the nouveau driver's
auto block resizing rule). Host sizes are always tightly packed linear.

All methods are pure functions of the value; instances are immutable once
constructed and safe to share between goroutines.
*/

package tegracore

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
)

// SurfaceParams describes one surface's shape and encoding, independent of
// its contents. All fields take part in Hash and equality.
type SurfaceParams struct {
	IsTiled        bool
	SrgbConversion bool
	IsLayered      bool

	// Log2 GOB counts per axis of the block-linear layout. Meaningless when
	// IsTiled is false.
	BlockWidth  uint32
	BlockHeight uint32
	BlockDepth  uint32

	// Tile spacing multiplier used by 2D engine surfaces (1 = default).
	TileWidthSpacing uint32

	Width  uint32
	Height uint32
	Depth  uint32 // layer count when IsLayered

	// Row stride in bytes. Meaningful only when IsTiled is false.
	Pitch uint32

	// Height before render-target rounding, kept for exact size math.
	UnalignedHeight uint32

	NumLevels uint32

	PixelFormat   PixelFormat
	ComponentType ComponentType
	Type          SurfaceType
	Target        SurfaceTarget
}

// =============================================================================
// Factories
// =============================================================================

// CreateSurfaceParamsForTexture derives surface parameters from a TIC
// descriptor plus the sampler reflection entry that disambiguates arrayed,
// shadow and buffer accesses.
func CreateSurfaceParamsForTexture(tic TICEntry, entry SamplerEntry) SurfaceParams {
	var p SurfaceParams
	p.IsTiled = tic.IsTiled()
	p.SrgbConversion = tic.IsSrgbConversionEnabled()
	if p.IsTiled {
		p.BlockWidth = tic.BlockWidth()
		p.BlockHeight = tic.BlockHeight()
		p.BlockDepth = tic.BlockDepth()
	}
	p.TileWidthSpacing = 1
	if p.IsTiled {
		p.TileWidthSpacing = 1 << tic.TileWidthSpacing()
	}
	p.PixelFormat = PixelFormatFromTextureFormat(tic.Format(), tic.RType(), p.SrgbConversion)
	p.ComponentType = ComponentTypeFromTexture(tic.RType())
	p.Type = GetFormatType(p.PixelFormat)
	if entry.IsShadow && p.Type == SurfaceTypeColorTexture {
		// Shadow samplers compare against depth; promote color-typed views
		// of depth data back to the depth format.
		switch p.PixelFormat {
		case PixelFormatR16U, PixelFormatR16F:
			p.PixelFormat = PixelFormatZ16
		case PixelFormatR32F:
			p.PixelFormat = PixelFormatZ32F
		default:
			panic(fmt.Sprintf("SurfaceParams: shadow sampler over color format %d", p.PixelFormat))
		}
		p.Type = GetFormatType(p.PixelFormat)
	}

	if entry.IsBuffer || tic.IsBuffer() {
		p.Target = SurfaceTargetTextureBuffer
		p.Width = tic.Width()
		p.Height = 1
		p.Depth = 1
		p.Pitch = 0
		p.UnalignedHeight = 1
		p.NumLevels = 1
		p.IsLayered = false
		return p
	}

	p.Target = SurfaceTargetFromTextureType(entry.Type, entry.IsArray)
	p.Width = tic.Width()
	p.Height = tic.Height()
	p.Depth = tic.Depth()
	if p.Target == SurfaceTargetTextureCubemap || p.Target == SurfaceTargetTextureCubeArray {
		p.Depth *= 6
	}
	if !p.IsTiled {
		p.Pitch = tic.Pitch()
	}
	p.UnalignedHeight = tic.Height()
	p.NumLevels = tic.MaxMipLevel() + 1
	p.IsLayered = p.IsLayeredTarget()
	return p
}

// CreateSurfaceParamsForDepthBuffer builds the surface for the active
// depth/stencil target. The zeta registers carry the block exponents and
// layout directly, so they arrive here pre-decoded.
func CreateSurfaceParamsForDepthBuffer(zetaWidth, zetaHeight uint32, format DepthFormat,
	blockWidth, blockHeight, blockDepth uint32, layout MemoryLayout) SurfaceParams {
	var p SurfaceParams
	p.IsTiled = layout == MEMORY_LAYOUT_BLOCK_LINEAR
	p.SrgbConversion = false
	p.BlockWidth = min(blockWidth, MAX_BLOCK_EXPONENT)
	p.BlockHeight = min(blockHeight, MAX_BLOCK_EXPONENT)
	p.BlockDepth = min(blockDepth, MAX_BLOCK_EXPONENT)
	p.TileWidthSpacing = 1
	p.PixelFormat = PixelFormatFromDepthFormat(format)
	p.ComponentType = ComponentTypeFromDepthFormat(format)
	p.Type = GetFormatType(p.PixelFormat)
	p.Width = zetaWidth
	p.Height = zetaHeight
	p.Depth = 1
	p.Pitch = 0
	p.UnalignedHeight = zetaHeight
	p.NumLevels = 1
	p.Target = SurfaceTargetTexture2D
	p.IsLayered = false
	return p
}

// CreateSurfaceParamsForFramebuffer builds the surface for render target
// slot index from the 3D engine's current register state.
func CreateSurfaceParamsForFramebuffer(maxwell *Maxwell3D, index int) SurfaceParams {
	config := maxwell.RenderTarget(index)
	var p SurfaceParams
	p.IsTiled = config.MemoryLayout == MEMORY_LAYOUT_BLOCK_LINEAR
	p.SrgbConversion = config.Format == RT_FORMAT_RGBA8_SRGB || config.Format == RT_FORMAT_BGRA8_SRGB
	p.BlockWidth = config.BlockWidth
	p.BlockHeight = config.BlockHeight
	p.BlockDepth = config.BlockDepth
	p.TileWidthSpacing = 1
	p.PixelFormat = PixelFormatFromRenderTargetFormat(config.Format)
	p.ComponentType = ComponentTypeFromRenderTarget(config.Format)
	p.Type = GetFormatType(p.PixelFormat)
	if p.IsTiled {
		p.Pitch = 0
		p.Width = config.Width
	} else {
		// Pitch-linear render targets store the pitch in the width register.
		p.Pitch = config.Width
		p.Width = p.Pitch / p.GetBytesPerPixel()
	}
	p.Height = config.Height
	p.Depth = 1
	p.UnalignedHeight = config.Height
	p.NumLevels = 1
	p.Target = SurfaceTargetTexture2D
	p.IsLayered = false
	return p
}

// CreateSurfaceParamsForFermiCopySurface builds a surface purely from a 2D
// engine surface descriptor, which carries its own layout state independent
// of the 3D pipeline.
func CreateSurfaceParamsForFermiCopySurface(config Fermi2DSurface) SurfaceParams {
	var p SurfaceParams
	p.IsTiled = !config.Linear
	p.SrgbConversion = config.Format == RT_FORMAT_RGBA8_SRGB || config.Format == RT_FORMAT_BGRA8_SRGB
	if p.IsTiled {
		p.BlockWidth = min(config.BlockWidth, MAX_BLOCK_EXPONENT)
		p.BlockHeight = min(config.BlockHeight, MAX_BLOCK_EXPONENT)
		p.BlockDepth = min(config.BlockDepth, MAX_BLOCK_EXPONENT)
	}
	p.TileWidthSpacing = 1
	p.PixelFormat = PixelFormatFromRenderTargetFormat(config.Format)
	p.ComponentType = ComponentTypeFromRenderTarget(config.Format)
	p.Type = GetFormatType(p.PixelFormat)
	p.Width = config.Width
	p.Height = config.Height
	p.Depth = 1
	if !p.IsTiled {
		p.Pitch = config.Pitch
	}
	p.UnalignedHeight = config.Height
	p.NumLevels = 1
	p.Target = SurfaceTargetTexture2D
	p.IsLayered = false
	return p
}

// =============================================================================
// Identity
// =============================================================================

// Hash returns a deterministic digest of every field. Equal values always
// hash identically, so the result is safe as a cache key.
func (p SurfaceParams) Hash() uint64 {
	fields := [...]uint32{
		boolToU32(p.IsTiled),
		boolToU32(p.SrgbConversion),
		boolToU32(p.IsLayered),
		p.BlockWidth,
		p.BlockHeight,
		p.BlockDepth,
		p.TileWidthSpacing,
		p.Width,
		p.Height,
		p.Depth,
		p.Pitch,
		p.UnalignedHeight,
		p.NumLevels,
		uint32(p.PixelFormat),
		uint32(p.ComponentType),
		uint32(p.Type),
		uint32(p.Target),
	}
	h := fnv.New64a()
	var word [4]byte
	for _, f := range fields {
		binary.LittleEndian.PutUint32(word[:], f)
		h.Write(word[:])
	}
	return h.Sum64()
}

// Equal reports field-exact equality. SurfaceParams is comparable, so this
// is the == operator spelled as a method for use behind interfaces.
func (p SurfaceParams) Equal(rhs SurfaceParams) bool {
	return p == rhs
}

// =============================================================================
// Geometry
// =============================================================================

func (p SurfaceParams) checkLevel(level uint32) {
	if level >= p.NumLevels {
		panic(fmt.Sprintf("SurfaceParams: mip level %d out of range (num_levels=%d)",
			level, p.NumLevels))
	}
}

// GetMipWidth returns the width of the given mip level.
func (p SurfaceParams) GetMipWidth(level uint32) uint32 {
	p.checkLevel(level)
	return max(1, p.Width>>level)
}

// GetMipHeight returns the height of the given mip level.
func (p SurfaceParams) GetMipHeight(level uint32) uint32 {
	p.checkLevel(level)
	return max(1, p.Height>>level)
}

// GetMipDepth returns the depth of the given mip level. Layer counts do not
// shrink across the mip chain.
func (p SurfaceParams) GetMipDepth(level uint32) uint32 {
	p.checkLevel(level)
	if p.IsLayered {
		return p.Depth
	}
	return max(1, p.Depth>>level)
}

// GetMipBlockHeight returns the block height exponent of the given mip
// level. Mip levels shrink their GOB stacking as soon as the level no longer
// fills the base block, following the nouveau auto block resizing rule; a
// block never spans more rows than the level has.
func (p SurfaceParams) GetMipBlockHeight(level uint32) uint32 {
	if level == 0 {
		p.checkLevel(level)
		return p.BlockHeight
	}
	height := p.GetMipHeight(level)
	blockHeight := GetDefaultBlockHeight(p.PixelFormat)
	blocksInY := (height + blockHeight - 1) / blockHeight
	exp := log2Ceil(blocksInY)
	if exp > GOB_SIZE_Y_SHIFT {
		exp -= GOB_SIZE_Y_SHIFT // rows -> GOB rows
	} else {
		exp = 0
	}
	return min(exp, p.BlockHeight)
}

// GetMipBlockDepth returns the block depth exponent of the given mip level.
func (p SurfaceParams) GetMipBlockDepth(level uint32) uint32 {
	if level == 0 {
		p.checkLevel(level)
		return p.BlockDepth
	}
	if p.IsLayered {
		return 0
	}
	exp := min(log2Ceil(p.GetMipDepth(level)), MAX_BLOCK_EXPONENT)
	if exp == MAX_BLOCK_EXPONENT && p.GetMipBlockHeight(level) >= 2 {
		// The hardware halves depth stacking when the block is already tall.
		exp--
	}
	return min(exp, p.BlockDepth)
}

// GetGuestMipmapLevelOffset returns the byte offset of the given mip level
// within one layer of the guest (possibly tiled) representation.
func (p SurfaceParams) GetGuestMipmapLevelOffset(level uint32) uint64 {
	p.checkLevel(level)
	var offset uint64
	for i := uint32(0); i < level; i++ {
		offset += p.innerMipmapMemorySize(i, false, false)
	}
	return offset
}

// GetHostMipmapLevelOffset returns the byte offset of the given mip level
// within one layer of the linear host representation.
func (p SurfaceParams) GetHostMipmapLevelOffset(level uint32) uint64 {
	p.checkLevel(level)
	var offset uint64
	for i := uint32(0); i < level; i++ {
		offset += p.innerMipmapMemorySize(i, true, false)
	}
	return offset
}

// GetGuestMipmapSize returns the per-layer byte size of one mip level in
// guest memory, including tiling padding.
func (p SurfaceParams) GetGuestMipmapSize(level uint32) uint64 {
	p.checkLevel(level)
	return p.innerMipmapMemorySize(level, false, false)
}

// GetHostMipmapSize returns the per-layer byte size of one mip level in the
// linear host representation.
func (p SurfaceParams) GetHostMipmapSize(level uint32) uint64 {
	p.checkLevel(level)
	return p.innerMipmapMemorySize(level, true, false)
}

// GetGuestLayerSize returns the byte size of one layer's full mip chain in
// guest memory.
func (p SurfaceParams) GetGuestLayerSize() uint64 {
	var size uint64
	for level := uint32(0); level < p.NumLevels; level++ {
		size += p.innerMipmapMemorySize(level, false, false)
	}
	return size
}

// GetHostLayerSize returns the byte size of one layer from the given base
// level through the end of the mip chain, linear host layout.
func (p SurfaceParams) GetHostLayerSize(level uint32) uint64 {
	p.checkLevel(level)
	var size uint64
	for l := level; l < p.NumLevels; l++ {
		size += p.innerMipmapMemorySize(l, true, false)
	}
	return size
}

// GetGuestSizeInBytes returns the total guest footprint across all layers.
func (p SurfaceParams) GetGuestSizeInBytes() uint64 {
	return p.GetGuestLayerSize() * p.numLayers()
}

// GetHostSizeInBytes returns the total host footprint across all layers.
// ASTC formats are decoded in software and stored as RGBA8 on the host, so
// their host size is the uncompressed footprint.
func (p SurfaceParams) GetHostSizeInBytes() uint64 {
	if IsPixelFormatASTC(p.PixelFormat) {
		width := uint64(alignUp(p.Width, p.GetDefaultBlockWidth()))
		height := uint64(alignUp(p.Height, p.GetDefaultBlockHeight()))
		return width * height * uint64(p.Depth) * 4
	}
	return p.GetHostLayerSize(0) * p.numLayers()
}

// GetBlockAlignedWidth returns the width rounded up to the 64-byte GOB row
// granularity.
func (p SurfaceParams) GetBlockAlignedWidth() uint32 {
	return alignUp(p.Width, GOB_SIZE_X/p.GetBytesPerPixel())
}

// GetDefaultBlockWidth returns the compression block width of the format.
func (p SurfaceParams) GetDefaultBlockWidth() uint32 {
	return GetDefaultBlockWidth(p.PixelFormat)
}

// GetDefaultBlockHeight returns the compression block height of the format.
func (p SurfaceParams) GetDefaultBlockHeight() uint32 {
	return GetDefaultBlockHeight(p.PixelFormat)
}

// GetBitsPerPixel returns the format's bits per pixel (per block when
// compressed).
func (p SurfaceParams) GetBitsPerPixel() uint32 {
	return GetFormatBpp(p.PixelFormat)
}

// GetBytesPerPixel returns the format's bytes per pixel (per block when
// compressed).
func (p SurfaceParams) GetBytesPerPixel() uint32 {
	return GetFormatBpp(p.PixelFormat) / 8
}

// IsPixelFormatZeta reports whether the surface is a depth and/or stencil
// target.
func (p SurfaceParams) IsPixelFormatZeta() bool {
	return p.Type == SurfaceTypeDepth || p.Type == SurfaceTypeDepthStencil
}

// TargetName returns a short human-readable name of the surface shape.
func (p SurfaceParams) TargetName() string {
	switch p.Target {
	case SurfaceTargetTexture1D:
		return "1D"
	case SurfaceTargetTexture2D:
		return "2D"
	case SurfaceTargetTexture3D:
		return "3D"
	case SurfaceTargetTexture1DArray:
		return "1DArray"
	case SurfaceTargetTexture2DArray:
		return "2DArray"
	case SurfaceTargetTextureCubemap:
		return "Cube"
	case SurfaceTargetTextureCubeArray:
		return "CubeArray"
	case SurfaceTargetTextureBuffer:
		return "Buffer"
	default:
		return "Unknown"
	}
}

// innerMipmapMemorySize computes the byte size of one mip level inside one
// layer. asHost forces linear layout; uncompressed skips the conversion of
// texel dimensions to compression block counts.
func (p SurfaceParams) innerMipmapMemorySize(level uint32, asHost, uncompressed bool) uint64 {
	tiled := p.IsTiled && !asHost
	width := p.GetMipWidth(level)
	height := p.GetMipHeight(level)
	if !uncompressed {
		blockWidth := p.GetDefaultBlockWidth()
		blockHeight := p.GetDefaultBlockHeight()
		width = (width + blockWidth - 1) / blockWidth
		height = (height + blockHeight - 1) / blockHeight
	}
	depth := p.GetMipDepth(level)
	if p.IsLayered {
		depth = 1
	}
	bytesPerPixel := p.GetBytesPerPixel()
	if tiled {
		alignedWidth := alignBits(width*bytesPerPixel, GOB_SIZE_X_SHIFT)
		alignedHeight := alignBits(height, GOB_SIZE_Y_SHIFT+p.GetMipBlockHeight(level))
		alignedDepth := alignBits(depth, GOB_SIZE_Z_SHIFT+p.GetMipBlockDepth(level))
		return uint64(alignedWidth) * uint64(alignedHeight) * uint64(alignedDepth)
	}
	if !asHost && !p.IsTiled && p.Pitch != 0 && level == 0 {
		// Pitch-linear guest rows stride by the explicit pitch.
		return uint64(p.Pitch) * uint64(height) * uint64(depth)
	}
	return uint64(width) * uint64(bytesPerPixel) * uint64(height) * uint64(depth)
}

func (p SurfaceParams) numLayers() uint64 {
	if p.IsLayered {
		return uint64(p.Depth)
	}
	return 1
}

// IsLayeredTarget reports whether the target iterates layers, independent of
// the IsLayered field (which is derived from it at construction).
func (p SurfaceParams) IsLayeredTarget() bool {
	switch p.Target {
	case SurfaceTargetTexture1DArray, SurfaceTargetTexture2DArray,
		SurfaceTargetTextureCubemap, SurfaceTargetTextureCubeArray:
		return true
	default:
		return false
	}
}

func boolToU32(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}
