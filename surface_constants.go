// surface_constants.go - Surface format metadata and block-linear tiling constants

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/TegraCore

License: GPLv3 or later
*/

/*
surface_constants.go - Surface Format Metadata & Block-Linear Tiling Constants

Internal pixel format enumeration and the per-format metadata table used to
size surfaces: bits per pixel (per compression block for block-compressed
formats), default compression block dimensions, surface category and ASTC
membership. Also holds the GOB (Group Of Bytes) geometry constants of the
Maxwell block-linear address scheme.

A GOB is the atomic tiling unit of NVIDIA block-linear memory: 64 bytes wide
by 8 rows by 1 slice, 512 bytes total. Block-linear surfaces stack 2^n GOBs
per axis into larger blocks; the exponents live in SurfaceParams.

Reference: NVIDIA open-gpu-doc (manuals/volta/gv100/dev_mmu.ref.txt) and
envytools documentation of the Tegra block-linear format.
*/

package tegracore

import "fmt"

// GOB geometry. These are fixed by the hardware, not configurable.
const (
	GOB_SIZE_X = 64 // bytes per GOB row
	GOB_SIZE_Y = 8  // rows per GOB
	GOB_SIZE_Z = 1  // slices per GOB
	GOB_SIZE   = GOB_SIZE_X * GOB_SIZE_Y * GOB_SIZE_Z

	GOB_SIZE_X_SHIFT = 6
	GOB_SIZE_Y_SHIFT = 3
	GOB_SIZE_Z_SHIFT = 0
	GOB_SIZE_SHIFT   = GOB_SIZE_X_SHIFT + GOB_SIZE_Y_SHIFT + GOB_SIZE_Z_SHIFT
)

// Hardware limit on the block exponents (2^5 = 32 GOBs per axis).
const MAX_BLOCK_EXPONENT = 5

// PixelFormat is the internal, API-neutral surface format. Hardware register
// encodings (RenderTargetFormat, DepthFormat, TextureFormat) are converted to
// this enumeration before any layout math happens.
type PixelFormat uint32

const (
	PixelFormatABGR8U PixelFormat = iota
	PixelFormatABGR8S
	PixelFormatABGR8UI
	PixelFormatB5G6R5U
	PixelFormatA2B10G10R10U
	PixelFormatA1B5G5R5U
	PixelFormatR8U
	PixelFormatR8UI
	PixelFormatRGBA16F
	PixelFormatRGBA16U
	PixelFormatRGBA16UI
	PixelFormatR11FG11FB10F
	PixelFormatRGBA32UI
	PixelFormatDXT1
	PixelFormatDXT23
	PixelFormatDXT45
	PixelFormatDXN1
	PixelFormatDXN2UNORM
	PixelFormatDXN2SNORM
	PixelFormatBC7U
	PixelFormatBC6HUF16
	PixelFormatBC6HSF16
	PixelFormatASTC2D4X4
	PixelFormatBGRA8
	PixelFormatRGBA32F
	PixelFormatRG32F
	PixelFormatR32F
	PixelFormatR16F
	PixelFormatR16U
	PixelFormatR16S
	PixelFormatR16UI
	PixelFormatR16I
	PixelFormatRG16
	PixelFormatRG16F
	PixelFormatRG16UI
	PixelFormatRG16I
	PixelFormatRG16S
	PixelFormatRGB32F
	PixelFormatRGBA8SRGB
	PixelFormatRG8U
	PixelFormatRG8S
	PixelFormatRG32UI
	PixelFormatR32UI
	PixelFormatASTC2D8X8
	PixelFormatASTC2D8X5
	PixelFormatASTC2D5X4
	PixelFormatBGRA8SRGB
	PixelFormatDXT1SRGB
	PixelFormatDXT23SRGB
	PixelFormatDXT45SRGB
	PixelFormatBC7USRGB
	PixelFormatASTC2D4X4SRGB
	PixelFormatASTC2D8X8SRGB
	PixelFormatASTC2D8X5SRGB
	PixelFormatASTC2D5X4SRGB
	PixelFormatASTC2D5X5
	PixelFormatASTC2D5X5SRGB
	PixelFormatASTC2D10X8
	PixelFormatASTC2D10X8SRGB
	PixelFormatZ32F
	PixelFormatZ16
	PixelFormatZ24S8
	PixelFormatS8Z24
	PixelFormatZ32FS8

	PixelFormatMax
	PixelFormatInvalid PixelFormat = 0xFF
)

// SurfaceType is the broad surface category a pixel format belongs to.
type SurfaceType uint32

const (
	SurfaceTypeColorTexture SurfaceType = iota
	SurfaceTypeDepth
	SurfaceTypeDepthStencil
	SurfaceTypeInvalid
)

// ComponentType is the numeric interpretation of the surface's components.
type ComponentType uint32

const (
	ComponentTypeInvalid ComponentType = iota
	ComponentTypeSNorm
	ComponentTypeUNorm
	ComponentTypeSInt
	ComponentTypeUInt
	ComponentTypeFloat
)

// SurfaceTarget is the dimensionality/shape of the surface.
type SurfaceTarget uint32

const (
	SurfaceTargetTexture1D SurfaceTarget = iota
	SurfaceTargetTexture2D
	SurfaceTargetTexture3D
	SurfaceTargetTexture1DArray
	SurfaceTargetTexture2DArray
	SurfaceTargetTextureCubemap
	SurfaceTargetTextureCubeArray
	SurfaceTargetTextureBuffer
)

type pixelFormatInfo struct {
	bpp         uint32 // bits per pixel, or per compression block when blockWidth > 1
	blockWidth  uint32
	blockHeight uint32
	surfaceType SurfaceType
	isASTC      bool
}

var pixelFormatTable = [PixelFormatMax]pixelFormatInfo{
	PixelFormatABGR8U:         {32, 1, 1, SurfaceTypeColorTexture, false},
	PixelFormatABGR8S:         {32, 1, 1, SurfaceTypeColorTexture, false},
	PixelFormatABGR8UI:        {32, 1, 1, SurfaceTypeColorTexture, false},
	PixelFormatB5G6R5U:        {16, 1, 1, SurfaceTypeColorTexture, false},
	PixelFormatA2B10G10R10U:   {32, 1, 1, SurfaceTypeColorTexture, false},
	PixelFormatA1B5G5R5U:      {16, 1, 1, SurfaceTypeColorTexture, false},
	PixelFormatR8U:            {8, 1, 1, SurfaceTypeColorTexture, false},
	PixelFormatR8UI:           {8, 1, 1, SurfaceTypeColorTexture, false},
	PixelFormatRGBA16F:        {64, 1, 1, SurfaceTypeColorTexture, false},
	PixelFormatRGBA16U:        {64, 1, 1, SurfaceTypeColorTexture, false},
	PixelFormatRGBA16UI:       {64, 1, 1, SurfaceTypeColorTexture, false},
	PixelFormatR11FG11FB10F:   {32, 1, 1, SurfaceTypeColorTexture, false},
	PixelFormatRGBA32UI:       {128, 1, 1, SurfaceTypeColorTexture, false},
	PixelFormatDXT1:           {64, 4, 4, SurfaceTypeColorTexture, false},
	PixelFormatDXT23:          {128, 4, 4, SurfaceTypeColorTexture, false},
	PixelFormatDXT45:          {128, 4, 4, SurfaceTypeColorTexture, false},
	PixelFormatDXN1:           {64, 4, 4, SurfaceTypeColorTexture, false},
	PixelFormatDXN2UNORM:      {128, 4, 4, SurfaceTypeColorTexture, false},
	PixelFormatDXN2SNORM:      {128, 4, 4, SurfaceTypeColorTexture, false},
	PixelFormatBC7U:           {128, 4, 4, SurfaceTypeColorTexture, false},
	PixelFormatBC6HUF16:       {128, 4, 4, SurfaceTypeColorTexture, false},
	PixelFormatBC6HSF16:       {128, 4, 4, SurfaceTypeColorTexture, false},
	PixelFormatASTC2D4X4:      {128, 4, 4, SurfaceTypeColorTexture, true},
	PixelFormatBGRA8:          {32, 1, 1, SurfaceTypeColorTexture, false},
	PixelFormatRGBA32F:        {128, 1, 1, SurfaceTypeColorTexture, false},
	PixelFormatRG32F:          {64, 1, 1, SurfaceTypeColorTexture, false},
	PixelFormatR32F:           {32, 1, 1, SurfaceTypeColorTexture, false},
	PixelFormatR16F:           {16, 1, 1, SurfaceTypeColorTexture, false},
	PixelFormatR16U:           {16, 1, 1, SurfaceTypeColorTexture, false},
	PixelFormatR16S:           {16, 1, 1, SurfaceTypeColorTexture, false},
	PixelFormatR16UI:          {16, 1, 1, SurfaceTypeColorTexture, false},
	PixelFormatR16I:           {16, 1, 1, SurfaceTypeColorTexture, false},
	PixelFormatRG16:           {32, 1, 1, SurfaceTypeColorTexture, false},
	PixelFormatRG16F:          {32, 1, 1, SurfaceTypeColorTexture, false},
	PixelFormatRG16UI:         {32, 1, 1, SurfaceTypeColorTexture, false},
	PixelFormatRG16I:          {32, 1, 1, SurfaceTypeColorTexture, false},
	PixelFormatRG16S:          {32, 1, 1, SurfaceTypeColorTexture, false},
	PixelFormatRGB32F:         {96, 1, 1, SurfaceTypeColorTexture, false},
	PixelFormatRGBA8SRGB:      {32, 1, 1, SurfaceTypeColorTexture, false},
	PixelFormatRG8U:           {16, 1, 1, SurfaceTypeColorTexture, false},
	PixelFormatRG8S:           {16, 1, 1, SurfaceTypeColorTexture, false},
	PixelFormatRG32UI:         {64, 1, 1, SurfaceTypeColorTexture, false},
	PixelFormatR32UI:          {32, 1, 1, SurfaceTypeColorTexture, false},
	PixelFormatASTC2D8X8:      {128, 8, 8, SurfaceTypeColorTexture, true},
	PixelFormatASTC2D8X5:      {128, 8, 5, SurfaceTypeColorTexture, true},
	PixelFormatASTC2D5X4:      {128, 5, 4, SurfaceTypeColorTexture, true},
	PixelFormatBGRA8SRGB:      {32, 1, 1, SurfaceTypeColorTexture, false},
	PixelFormatDXT1SRGB:       {64, 4, 4, SurfaceTypeColorTexture, false},
	PixelFormatDXT23SRGB:      {128, 4, 4, SurfaceTypeColorTexture, false},
	PixelFormatDXT45SRGB:      {128, 4, 4, SurfaceTypeColorTexture, false},
	PixelFormatBC7USRGB:       {128, 4, 4, SurfaceTypeColorTexture, false},
	PixelFormatASTC2D4X4SRGB:  {128, 4, 4, SurfaceTypeColorTexture, true},
	PixelFormatASTC2D8X8SRGB:  {128, 8, 8, SurfaceTypeColorTexture, true},
	PixelFormatASTC2D8X5SRGB:  {128, 8, 5, SurfaceTypeColorTexture, true},
	PixelFormatASTC2D5X4SRGB:  {128, 5, 4, SurfaceTypeColorTexture, true},
	PixelFormatASTC2D5X5:      {128, 5, 5, SurfaceTypeColorTexture, true},
	PixelFormatASTC2D5X5SRGB:  {128, 5, 5, SurfaceTypeColorTexture, true},
	PixelFormatASTC2D10X8:     {128, 10, 8, SurfaceTypeColorTexture, true},
	PixelFormatASTC2D10X8SRGB: {128, 10, 8, SurfaceTypeColorTexture, true},
	PixelFormatZ32F:           {32, 1, 1, SurfaceTypeDepth, false},
	PixelFormatZ16:            {16, 1, 1, SurfaceTypeDepth, false},
	PixelFormatZ24S8:          {32, 1, 1, SurfaceTypeDepthStencil, false},
	PixelFormatS8Z24:          {32, 1, 1, SurfaceTypeDepthStencil, false},
	PixelFormatZ32FS8:         {64, 1, 1, SurfaceTypeDepthStencil, false},
}

func formatInfo(format PixelFormat) pixelFormatInfo {
	if format >= PixelFormatMax {
		panic(fmt.Sprintf("SurfaceFormat: unknown pixel format %d", format))
	}
	return pixelFormatTable[format]
}

// GetFormatBpp returns the bits per pixel of the format. For block-compressed
// formats this is the bit size of one compression block.
func GetFormatBpp(format PixelFormat) uint32 {
	return formatInfo(format).bpp
}

// GetDefaultBlockWidth returns the compression block width (1 if uncompressed).
func GetDefaultBlockWidth(format PixelFormat) uint32 {
	return formatInfo(format).blockWidth
}

// GetDefaultBlockHeight returns the compression block height (1 if uncompressed).
func GetDefaultBlockHeight(format PixelFormat) uint32 {
	return formatInfo(format).blockHeight
}

// GetFormatType returns the surface category of the format.
func GetFormatType(format PixelFormat) SurfaceType {
	return formatInfo(format).surfaceType
}

// IsPixelFormatASTC reports whether the format belongs to the ASTC family.
// ASTC has no native support on desktop GPUs, so host-side storage for these
// formats is decoded RGBA8 (see SurfaceParams.GetHostSizeInBytes).
func IsPixelFormatASTC(format PixelFormat) bool {
	return formatInfo(format).isASTC
}

// PixelFormatFromRenderTargetFormat converts a color render target register
// encoding to the internal format. Unknown encodings are a register decoder
// bug and fault immediately rather than producing a zero-sized surface.
func PixelFormatFromRenderTargetFormat(format RenderTargetFormat) PixelFormat {
	switch format {
	case RT_FORMAT_RGBA8_SRGB:
		return PixelFormatRGBA8SRGB
	case RT_FORMAT_BGRA8_SRGB:
		return PixelFormatBGRA8SRGB
	case RT_FORMAT_RGBA8_UNORM:
		return PixelFormatABGR8U
	case RT_FORMAT_RGBA8_SNORM:
		return PixelFormatABGR8S
	case RT_FORMAT_RGBA8_UINT:
		return PixelFormatABGR8UI
	case RT_FORMAT_BGRA8_UNORM:
		return PixelFormatBGRA8
	case RT_FORMAT_RGB10_A2_UNORM:
		return PixelFormatA2B10G10R10U
	case RT_FORMAT_RGBA16_FLOAT:
		return PixelFormatRGBA16F
	case RT_FORMAT_RGBA16_UNORM:
		return PixelFormatRGBA16U
	case RT_FORMAT_RGBA16_UINT:
		return PixelFormatRGBA16UI
	case RT_FORMAT_RGBA32_FLOAT:
		return PixelFormatRGBA32F
	case RT_FORMAT_RGBA32_UINT:
		return PixelFormatRGBA32UI
	case RT_FORMAT_RG32_FLOAT:
		return PixelFormatRG32F
	case RT_FORMAT_RG32_UINT:
		return PixelFormatRG32UI
	case RT_FORMAT_R11G11B10_FLOAT:
		return PixelFormatR11FG11FB10F
	case RT_FORMAT_B5G6R5_UNORM:
		return PixelFormatB5G6R5U
	case RT_FORMAT_BGR5A1_UNORM:
		return PixelFormatA1B5G5R5U
	case RT_FORMAT_RG16_FLOAT:
		return PixelFormatRG16F
	case RT_FORMAT_RG16_UNORM:
		return PixelFormatRG16
	case RT_FORMAT_RG16_SNORM:
		return PixelFormatRG16S
	case RT_FORMAT_RG16_UINT:
		return PixelFormatRG16UI
	case RT_FORMAT_RG16_SINT:
		return PixelFormatRG16I
	case RT_FORMAT_RG8_UNORM:
		return PixelFormatRG8U
	case RT_FORMAT_RG8_SNORM:
		return PixelFormatRG8S
	case RT_FORMAT_R16_FLOAT:
		return PixelFormatR16F
	case RT_FORMAT_R16_UNORM:
		return PixelFormatR16U
	case RT_FORMAT_R16_SNORM:
		return PixelFormatR16S
	case RT_FORMAT_R16_UINT:
		return PixelFormatR16UI
	case RT_FORMAT_R16_SINT:
		return PixelFormatR16I
	case RT_FORMAT_R32_FLOAT:
		return PixelFormatR32F
	case RT_FORMAT_R32_UINT:
		return PixelFormatR32UI
	case RT_FORMAT_R8_UNORM:
		return PixelFormatR8U
	case RT_FORMAT_R8_UINT:
		return PixelFormatR8UI
	default:
		panic(fmt.Sprintf("SurfaceFormat: unimplemented render target format 0x%02X", uint32(format)))
	}
}

// PixelFormatFromDepthFormat converts a depth/stencil register encoding to the
// internal format.
func PixelFormatFromDepthFormat(format DepthFormat) PixelFormat {
	switch format {
	case DEPTH_FORMAT_S8_Z24_UNORM:
		return PixelFormatS8Z24
	case DEPTH_FORMAT_Z24_S8_UNORM, DEPTH_FORMAT_Z24_X8_UNORM:
		return PixelFormatZ24S8
	case DEPTH_FORMAT_Z32_FLOAT:
		return PixelFormatZ32F
	case DEPTH_FORMAT_Z16_UNORM:
		return PixelFormatZ16
	case DEPTH_FORMAT_Z32_S8_X24_FLOAT:
		return PixelFormatZ32FS8
	default:
		panic(fmt.Sprintf("SurfaceFormat: unimplemented depth format 0x%02X", uint32(format)))
	}
}

// PixelFormatFromTextureFormat converts a TIC format plus its component type
// (the red channel type is representative) and sRGB flag to the internal
// format.
func PixelFormatFromTextureFormat(format TextureFormat, component TextureComponentType, isSrgb bool) PixelFormat {
	switch format {
	case TEX_FORMAT_A8R8G8B8:
		switch component {
		case TEX_COMPONENT_UNORM:
			if isSrgb {
				return PixelFormatRGBA8SRGB
			}
			return PixelFormatABGR8U
		case TEX_COMPONENT_SNORM:
			return PixelFormatABGR8S
		case TEX_COMPONENT_UINT:
			return PixelFormatABGR8UI
		}
	case TEX_FORMAT_B5G6R5:
		return PixelFormatB5G6R5U
	case TEX_FORMAT_A2B10G10R10:
		return PixelFormatA2B10G10R10U
	case TEX_FORMAT_A1B5G5R5:
		return PixelFormatA1B5G5R5U
	case TEX_FORMAT_R8:
		switch component {
		case TEX_COMPONENT_UNORM:
			return PixelFormatR8U
		case TEX_COMPONENT_UINT:
			return PixelFormatR8UI
		}
	case TEX_FORMAT_G8R8:
		switch component {
		case TEX_COMPONENT_UNORM:
			return PixelFormatRG8U
		case TEX_COMPONENT_SNORM:
			return PixelFormatRG8S
		}
	case TEX_FORMAT_R16_G16_B16_A16:
		switch component {
		case TEX_COMPONENT_UNORM:
			return PixelFormatRGBA16U
		case TEX_COMPONENT_FLOAT:
			return PixelFormatRGBA16F
		case TEX_COMPONENT_UINT:
			return PixelFormatRGBA16UI
		}
	case TEX_FORMAT_BF10GF11RF11:
		return PixelFormatR11FG11FB10F
	case TEX_FORMAT_R32_G32_B32_A32:
		switch component {
		case TEX_COMPONENT_FLOAT:
			return PixelFormatRGBA32F
		case TEX_COMPONENT_UINT:
			return PixelFormatRGBA32UI
		}
	case TEX_FORMAT_R32_G32_B32:
		return PixelFormatRGB32F
	case TEX_FORMAT_R32_G32:
		switch component {
		case TEX_COMPONENT_FLOAT:
			return PixelFormatRG32F
		case TEX_COMPONENT_UINT:
			return PixelFormatRG32UI
		}
	case TEX_FORMAT_R16_G16:
		switch component {
		case TEX_COMPONENT_FLOAT:
			return PixelFormatRG16F
		case TEX_COMPONENT_UNORM:
			return PixelFormatRG16
		case TEX_COMPONENT_SNORM:
			return PixelFormatRG16S
		case TEX_COMPONENT_UINT:
			return PixelFormatRG16UI
		case TEX_COMPONENT_SINT:
			return PixelFormatRG16I
		}
	case TEX_FORMAT_R16:
		switch component {
		case TEX_COMPONENT_FLOAT:
			return PixelFormatR16F
		case TEX_COMPONENT_UNORM:
			return PixelFormatR16U
		case TEX_COMPONENT_SNORM:
			return PixelFormatR16S
		case TEX_COMPONENT_UINT:
			return PixelFormatR16UI
		case TEX_COMPONENT_SINT:
			return PixelFormatR16I
		}
	case TEX_FORMAT_R32:
		switch component {
		case TEX_COMPONENT_FLOAT:
			return PixelFormatR32F
		case TEX_COMPONENT_UINT:
			return PixelFormatR32UI
		}
	case TEX_FORMAT_DXT1:
		if isSrgb {
			return PixelFormatDXT1SRGB
		}
		return PixelFormatDXT1
	case TEX_FORMAT_DXT23:
		if isSrgb {
			return PixelFormatDXT23SRGB
		}
		return PixelFormatDXT23
	case TEX_FORMAT_DXT45:
		if isSrgb {
			return PixelFormatDXT45SRGB
		}
		return PixelFormatDXT45
	case TEX_FORMAT_DXN1:
		return PixelFormatDXN1
	case TEX_FORMAT_DXN2:
		if component == TEX_COMPONENT_SNORM {
			return PixelFormatDXN2SNORM
		}
		return PixelFormatDXN2UNORM
	case TEX_FORMAT_BC7U:
		if isSrgb {
			return PixelFormatBC7USRGB
		}
		return PixelFormatBC7U
	case TEX_FORMAT_BC6H_UF16:
		return PixelFormatBC6HUF16
	case TEX_FORMAT_BC6H_SF16:
		return PixelFormatBC6HSF16
	case TEX_FORMAT_ASTC_2D_4X4:
		if isSrgb {
			return PixelFormatASTC2D4X4SRGB
		}
		return PixelFormatASTC2D4X4
	case TEX_FORMAT_ASTC_2D_5X4:
		if isSrgb {
			return PixelFormatASTC2D5X4SRGB
		}
		return PixelFormatASTC2D5X4
	case TEX_FORMAT_ASTC_2D_5X5:
		if isSrgb {
			return PixelFormatASTC2D5X5SRGB
		}
		return PixelFormatASTC2D5X5
	case TEX_FORMAT_ASTC_2D_8X5:
		if isSrgb {
			return PixelFormatASTC2D8X5SRGB
		}
		return PixelFormatASTC2D8X5
	case TEX_FORMAT_ASTC_2D_8X8:
		if isSrgb {
			return PixelFormatASTC2D8X8SRGB
		}
		return PixelFormatASTC2D8X8
	case TEX_FORMAT_ASTC_2D_10X8:
		if isSrgb {
			return PixelFormatASTC2D10X8SRGB
		}
		return PixelFormatASTC2D10X8
	case TEX_FORMAT_Z24S8:
		return PixelFormatZ24S8
	case TEX_FORMAT_S8Z24:
		return PixelFormatS8Z24
	case TEX_FORMAT_ZF32:
		return PixelFormatZ32F
	case TEX_FORMAT_ZF32_X24S8:
		return PixelFormatZ32FS8
	}
	panic(fmt.Sprintf("SurfaceFormat: unimplemented texture format 0x%02X component %d srgb %v",
		uint32(format), component, isSrgb))
}

// ComponentTypeFromTexture maps a TIC component type to the internal one.
func ComponentTypeFromTexture(component TextureComponentType) ComponentType {
	switch component {
	case TEX_COMPONENT_SNORM:
		return ComponentTypeSNorm
	case TEX_COMPONENT_UNORM, TEX_COMPONENT_SNORM_FORCE_FP16, TEX_COMPONENT_UNORM_FORCE_FP16:
		return ComponentTypeUNorm
	case TEX_COMPONENT_SINT:
		return ComponentTypeSInt
	case TEX_COMPONENT_UINT:
		return ComponentTypeUInt
	case TEX_COMPONENT_FLOAT:
		return ComponentTypeFloat
	default:
		panic(fmt.Sprintf("SurfaceFormat: unimplemented texture component type %d", component))
	}
}

// ComponentTypeFromRenderTarget maps a render target register encoding to the
// internal component type.
func ComponentTypeFromRenderTarget(format RenderTargetFormat) ComponentType {
	switch format {
	case RT_FORMAT_RGBA8_UNORM, RT_FORMAT_RGBA8_SRGB, RT_FORMAT_BGRA8_UNORM, RT_FORMAT_BGRA8_SRGB,
		RT_FORMAT_RGBA16_UNORM, RT_FORMAT_RGB10_A2_UNORM, RT_FORMAT_B5G6R5_UNORM,
		RT_FORMAT_BGR5A1_UNORM, RT_FORMAT_RG16_UNORM, RT_FORMAT_RG8_UNORM,
		RT_FORMAT_R16_UNORM, RT_FORMAT_R8_UNORM:
		return ComponentTypeUNorm
	case RT_FORMAT_RGBA8_SNORM, RT_FORMAT_RG16_SNORM, RT_FORMAT_RG8_SNORM, RT_FORMAT_R16_SNORM:
		return ComponentTypeSNorm
	case RT_FORMAT_RGBA32_FLOAT, RT_FORMAT_RGBX16_FLOAT, RT_FORMAT_RGBA16_FLOAT,
		RT_FORMAT_RG32_FLOAT, RT_FORMAT_RG16_FLOAT, RT_FORMAT_R11G11B10_FLOAT,
		RT_FORMAT_R32_FLOAT, RT_FORMAT_R16_FLOAT:
		return ComponentTypeFloat
	case RT_FORMAT_RGBA32_UINT, RT_FORMAT_RGBA16_UINT, RT_FORMAT_RG32_UINT, RT_FORMAT_RGBA8_UINT,
		RT_FORMAT_RG16_UINT, RT_FORMAT_R32_UINT, RT_FORMAT_R16_UINT, RT_FORMAT_R8_UINT:
		return ComponentTypeUInt
	case RT_FORMAT_RG16_SINT, RT_FORMAT_R16_SINT:
		return ComponentTypeSInt
	default:
		panic(fmt.Sprintf("SurfaceFormat: unimplemented render target component type 0x%02X", uint32(format)))
	}
}

// ComponentTypeFromDepthFormat maps a depth register encoding to the internal
// component type.
func ComponentTypeFromDepthFormat(format DepthFormat) ComponentType {
	switch format {
	case DEPTH_FORMAT_Z16_UNORM, DEPTH_FORMAT_S8_Z24_UNORM, DEPTH_FORMAT_Z24_X8_UNORM,
		DEPTH_FORMAT_Z24_S8_UNORM:
		return ComponentTypeUNorm
	case DEPTH_FORMAT_Z32_FLOAT, DEPTH_FORMAT_Z32_S8_X24_FLOAT:
		return ComponentTypeFloat
	default:
		panic(fmt.Sprintf("SurfaceFormat: unimplemented depth component type 0x%02X", uint32(format)))
	}
}

// SurfaceTargetFromTextureType resolves the surface shape from the sampler's
// texture type. The TIC alone is ambiguous for array targets, so isArray
// comes from shader reflection metadata.
func SurfaceTargetFromTextureType(textureType TextureType, isArray bool) SurfaceTarget {
	switch textureType {
	case TEXTURE_TYPE_1D:
		if isArray {
			return SurfaceTargetTexture1DArray
		}
		return SurfaceTargetTexture1D
	case TEXTURE_TYPE_2D, TEXTURE_TYPE_2D_NO_MIPMAP:
		if isArray {
			return SurfaceTargetTexture2DArray
		}
		return SurfaceTargetTexture2D
	case TEXTURE_TYPE_3D:
		return SurfaceTargetTexture3D
	case TEXTURE_TYPE_CUBEMAP:
		if isArray {
			return SurfaceTargetTextureCubeArray
		}
		return SurfaceTargetTextureCubemap
	case TEXTURE_TYPE_CUBE_ARRAY:
		return SurfaceTargetTextureCubeArray
	case TEXTURE_TYPE_1D_BUFFER:
		return SurfaceTargetTextureBuffer
	default:
		panic(fmt.Sprintf("SurfaceFormat: unimplemented texture type %d", textureType))
	}
}

// alignUp rounds value up to the next multiple of align. ASTC block widths
// and 64/bpp quotients are not powers of two, so no bit trick here.
func alignUp(value, align uint32) uint32 {
	return ((value + align - 1) / align) * align
}

// alignBits rounds value up to the next multiple of 1<<shift.
func alignBits(value, shift uint32) uint32 {
	return ((value + (1 << shift) - 1) >> shift) << shift
}

// log2Ceil returns ceil(log2(value)); log2Ceil(0) and log2Ceil(1) are 0.
func log2Ceil(value uint32) uint32 {
	if value <= 1 {
		return 0
	}
	var exp uint32
	for v := value - 1; v != 0; v >>= 1 {
		exp++
	}
	return exp
}
