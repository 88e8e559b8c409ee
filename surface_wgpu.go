// surface_wgpu.go - WebGPU Host Format Translation

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/TegraCore

License: GPLv3 or later
*/

/*
surface_wgpu.go - WebGPU Host Format Translation

Translates surface parameter identities into WebGPU enumerants for the
wgpu host path. WebGPU's format set is narrower than Vulkan's: packed
16-bit colour formats and three-component float formats have no
equivalent and map to TextureFormatUndefined, which callers treat as
"convert through RGBA8 on upload". The combined D24S8 guest formats map
to Depth24PlusStencil8.
*/

package tegracore

import (
	"github.com/cogentcore/webgpu/wgpu"
)

var wgpuFormatTable = map[PixelFormat]wgpu.TextureFormat{
	PixelFormatABGR8U:         wgpu.TextureFormatRGBA8Unorm,
	PixelFormatABGR8S:         wgpu.TextureFormatRGBA8Snorm,
	PixelFormatABGR8UI:        wgpu.TextureFormatRGBA8Uint,
	PixelFormatA2B10G10R10U:   wgpu.TextureFormatRGB10A2Unorm,
	PixelFormatR8U:            wgpu.TextureFormatR8Unorm,
	PixelFormatR8UI:           wgpu.TextureFormatR8Uint,
	PixelFormatRGBA16F:        wgpu.TextureFormatRGBA16Float,
	PixelFormatRGBA16UI:       wgpu.TextureFormatRGBA16Uint,
	PixelFormatR11FG11FB10F:   wgpu.TextureFormatRG11B10Ufloat,
	PixelFormatRGBA32UI:       wgpu.TextureFormatRGBA32Uint,
	PixelFormatDXT1:           wgpu.TextureFormatBC1RGBAUnorm,
	PixelFormatDXT23:          wgpu.TextureFormatBC2RGBAUnorm,
	PixelFormatDXT45:          wgpu.TextureFormatBC3RGBAUnorm,
	PixelFormatDXN1:           wgpu.TextureFormatBC4RUnorm,
	PixelFormatDXN2UNORM:      wgpu.TextureFormatBC5RGUnorm,
	PixelFormatDXN2SNORM:      wgpu.TextureFormatBC5RGSnorm,
	PixelFormatBC7U:           wgpu.TextureFormatBC7RGBAUnorm,
	PixelFormatBC6HUF16:       wgpu.TextureFormatBC6HRGBUfloat,
	PixelFormatBC6HSF16:       wgpu.TextureFormatBC6HRGBFloat,
	PixelFormatASTC2D4X4:      wgpu.TextureFormatASTC4x4Unorm,
	PixelFormatBGRA8:          wgpu.TextureFormatBGRA8Unorm,
	PixelFormatRGBA32F:        wgpu.TextureFormatRGBA32Float,
	PixelFormatRG32F:          wgpu.TextureFormatRG32Float,
	PixelFormatR32F:           wgpu.TextureFormatR32Float,
	PixelFormatR16F:           wgpu.TextureFormatR16Float,
	PixelFormatR16UI:          wgpu.TextureFormatR16Uint,
	PixelFormatR16I:           wgpu.TextureFormatR16Sint,
	PixelFormatRG16F:          wgpu.TextureFormatRG16Float,
	PixelFormatRG16UI:         wgpu.TextureFormatRG16Uint,
	PixelFormatRG16I:          wgpu.TextureFormatRG16Sint,
	PixelFormatRGBA8SRGB:      wgpu.TextureFormatRGBA8UnormSrgb,
	PixelFormatRG8U:           wgpu.TextureFormatRG8Unorm,
	PixelFormatRG8S:           wgpu.TextureFormatRG8Snorm,
	PixelFormatRG32UI:         wgpu.TextureFormatRG32Uint,
	PixelFormatR32UI:          wgpu.TextureFormatR32Uint,
	PixelFormatASTC2D8X8:      wgpu.TextureFormatASTC8x8Unorm,
	PixelFormatASTC2D8X5:      wgpu.TextureFormatASTC8x5Unorm,
	PixelFormatASTC2D5X4:      wgpu.TextureFormatASTC5x4Unorm,
	PixelFormatBGRA8SRGB:      wgpu.TextureFormatBGRA8UnormSrgb,
	PixelFormatDXT1SRGB:       wgpu.TextureFormatBC1RGBAUnormSrgb,
	PixelFormatDXT23SRGB:      wgpu.TextureFormatBC2RGBAUnormSrgb,
	PixelFormatDXT45SRGB:      wgpu.TextureFormatBC3RGBAUnormSrgb,
	PixelFormatBC7USRGB:       wgpu.TextureFormatBC7RGBAUnormSrgb,
	PixelFormatASTC2D4X4SRGB:  wgpu.TextureFormatASTC4x4UnormSrgb,
	PixelFormatASTC2D8X8SRGB:  wgpu.TextureFormatASTC8x8UnormSrgb,
	PixelFormatASTC2D8X5SRGB:  wgpu.TextureFormatASTC8x5UnormSrgb,
	PixelFormatASTC2D5X4SRGB:  wgpu.TextureFormatASTC5x4UnormSrgb,
	PixelFormatASTC2D5X5:      wgpu.TextureFormatASTC5x5Unorm,
	PixelFormatASTC2D5X5SRGB:  wgpu.TextureFormatASTC5x5UnormSrgb,
	PixelFormatASTC2D10X8:     wgpu.TextureFormatASTC10x8Unorm,
	PixelFormatASTC2D10X8SRGB: wgpu.TextureFormatASTC10x8UnormSrgb,
	PixelFormatZ32F:           wgpu.TextureFormatDepth32Float,
	PixelFormatZ16:            wgpu.TextureFormatDepth16Unorm,
	PixelFormatZ24S8:          wgpu.TextureFormatDepth24PlusStencil8,
	PixelFormatS8Z24:          wgpu.TextureFormatDepth24PlusStencil8,
	PixelFormatZ32FS8:         wgpu.TextureFormatDepth32FloatStencil8,
}

// WGPUFormat returns the wgpu texture format for a guest pixel format, or
// TextureFormatUndefined when the format has no WebGPU equivalent and must
// be converted on upload.
func WGPUFormat(format PixelFormat) wgpu.TextureFormat {
	if hostFormat, ok := wgpuFormatTable[format]; ok {
		return hostFormat
	}
	return wgpu.TextureFormatUndefined
}

// WGPUViewDimension returns the texture view dimension for a surface
// target. Buffer surfaces have no view dimension and report Undefined.
func WGPUViewDimension(target SurfaceTarget) wgpu.TextureViewDimension {
	switch target {
	case SurfaceTargetTexture1D, SurfaceTargetTexture1DArray:
		return wgpu.TextureViewDimension1D
	case SurfaceTargetTexture2D:
		return wgpu.TextureViewDimension2D
	case SurfaceTargetTexture3D:
		return wgpu.TextureViewDimension3D
	case SurfaceTargetTexture2DArray:
		return wgpu.TextureViewDimension2DArray
	case SurfaceTargetTextureCubemap:
		return wgpu.TextureViewDimensionCube
	case SurfaceTargetTextureCubeArray:
		return wgpu.TextureViewDimensionCubeArray
	default:
		return wgpu.TextureViewDimensionUndefined
	}
}
