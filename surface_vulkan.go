// surface_vulkan.go - Vulkan Host Format Translation

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/TegraCore

License: GPLv3 or later
*/

/*
surface_vulkan.go - Vulkan Host Format Translation

Translates surface parameter identities into Vulkan enumerants for the
Vulkan host path. Formats with no direct VkFormat equivalent (the ASTC
family on desktop drivers lacking the extension) are handled upstream by
the RGBA8 decode path, so the table itself maps ASTC to its native
compressed format and leaves the fallback decision to the caller.
*/

package tegracore

import (
	"fmt"

	vk "github.com/goki/vulkan"
)

var vulkanFormatTable = map[PixelFormat]vk.Format{
	PixelFormatABGR8U:         vk.FormatR8g8b8a8Unorm,
	PixelFormatABGR8S:         vk.FormatR8g8b8a8Snorm,
	PixelFormatABGR8UI:        vk.FormatR8g8b8a8Uint,
	PixelFormatB5G6R5U:        vk.FormatB5g6r5UnormPack16,
	PixelFormatA2B10G10R10U:   vk.FormatA2b10g10r10UnormPack32,
	PixelFormatA1B5G5R5U:      vk.FormatA1r5g5b5UnormPack16,
	PixelFormatR8U:            vk.FormatR8Unorm,
	PixelFormatR8UI:           vk.FormatR8Uint,
	PixelFormatRGBA16F:        vk.FormatR16g16b16a16Sfloat,
	PixelFormatRGBA16U:        vk.FormatR16g16b16a16Unorm,
	PixelFormatRGBA16UI:       vk.FormatR16g16b16a16Uint,
	PixelFormatR11FG11FB10F:   vk.FormatB10g11r11UfloatPack32,
	PixelFormatRGBA32UI:       vk.FormatR32g32b32a32Uint,
	PixelFormatDXT1:           vk.FormatBc1RgbaUnormBlock,
	PixelFormatDXT23:          vk.FormatBc2UnormBlock,
	PixelFormatDXT45:          vk.FormatBc3UnormBlock,
	PixelFormatDXN1:           vk.FormatBc4UnormBlock,
	PixelFormatDXN2UNORM:      vk.FormatBc5UnormBlock,
	PixelFormatDXN2SNORM:      vk.FormatBc5SnormBlock,
	PixelFormatBC7U:           vk.FormatBc7UnormBlock,
	PixelFormatBC6HUF16:       vk.FormatBc6hUfloatBlock,
	PixelFormatBC6HSF16:       vk.FormatBc6hSfloatBlock,
	PixelFormatASTC2D4X4:      vk.FormatAstc4x4UnormBlock,
	PixelFormatBGRA8:          vk.FormatB8g8r8a8Unorm,
	PixelFormatRGBA32F:        vk.FormatR32g32b32a32Sfloat,
	PixelFormatRG32F:          vk.FormatR32g32Sfloat,
	PixelFormatR32F:           vk.FormatR32Sfloat,
	PixelFormatR16F:           vk.FormatR16Sfloat,
	PixelFormatR16U:           vk.FormatR16Unorm,
	PixelFormatR16S:           vk.FormatR16Snorm,
	PixelFormatR16UI:          vk.FormatR16Uint,
	PixelFormatR16I:           vk.FormatR16Sint,
	PixelFormatRG16:           vk.FormatR16g16Unorm,
	PixelFormatRG16F:          vk.FormatR16g16Sfloat,
	PixelFormatRG16UI:         vk.FormatR16g16Uint,
	PixelFormatRG16I:          vk.FormatR16g16Sint,
	PixelFormatRG16S:          vk.FormatR16g16Snorm,
	PixelFormatRGB32F:         vk.FormatR32g32b32Sfloat,
	PixelFormatRGBA8SRGB:      vk.FormatR8g8b8a8Srgb,
	PixelFormatRG8U:           vk.FormatR8g8Unorm,
	PixelFormatRG8S:           vk.FormatR8g8Snorm,
	PixelFormatRG32UI:         vk.FormatR32g32Uint,
	PixelFormatR32UI:          vk.FormatR32Uint,
	PixelFormatASTC2D8X8:      vk.FormatAstc8x8UnormBlock,
	PixelFormatASTC2D8X5:      vk.FormatAstc8x5UnormBlock,
	PixelFormatASTC2D5X4:      vk.FormatAstc5x4UnormBlock,
	PixelFormatBGRA8SRGB:      vk.FormatB8g8r8a8Srgb,
	PixelFormatDXT1SRGB:       vk.FormatBc1RgbaSrgbBlock,
	PixelFormatDXT23SRGB:      vk.FormatBc2SrgbBlock,
	PixelFormatDXT45SRGB:      vk.FormatBc3SrgbBlock,
	PixelFormatBC7USRGB:       vk.FormatBc7SrgbBlock,
	PixelFormatASTC2D4X4SRGB:  vk.FormatAstc4x4SrgbBlock,
	PixelFormatASTC2D8X8SRGB:  vk.FormatAstc8x8SrgbBlock,
	PixelFormatASTC2D8X5SRGB:  vk.FormatAstc8x5SrgbBlock,
	PixelFormatASTC2D5X4SRGB:  vk.FormatAstc5x4SrgbBlock,
	PixelFormatASTC2D5X5:      vk.FormatAstc5x5UnormBlock,
	PixelFormatASTC2D5X5SRGB:  vk.FormatAstc5x5SrgbBlock,
	PixelFormatASTC2D10X8:     vk.FormatAstc10x8UnormBlock,
	PixelFormatASTC2D10X8SRGB: vk.FormatAstc10x8SrgbBlock,
	PixelFormatZ32F:           vk.FormatD32Sfloat,
	PixelFormatZ16:            vk.FormatD16Unorm,
	PixelFormatZ24S8:          vk.FormatD24UnormS8Uint,
	PixelFormatS8Z24:          vk.FormatD24UnormS8Uint,
	PixelFormatZ32FS8:         vk.FormatD32SfloatS8Uint,
}

// VulkanFormat returns the VkFormat for a guest pixel format.
func VulkanFormat(format PixelFormat) vk.Format {
	if hostFormat, ok := vulkanFormatTable[format]; ok {
		return hostFormat
	}
	panic(fmt.Sprintf("SurfaceVulkan: no VkFormat for pixel format %d", format))
}

// VulkanImageViewType returns the VkImageViewType for a surface target.
// Buffer surfaces use buffer views, not image views.
func VulkanImageViewType(target SurfaceTarget) vk.ImageViewType {
	switch target {
	case SurfaceTargetTexture1D:
		return vk.ImageViewType1d
	case SurfaceTargetTexture2D:
		return vk.ImageViewType2d
	case SurfaceTargetTexture3D:
		return vk.ImageViewType3d
	case SurfaceTargetTexture1DArray:
		return vk.ImageViewType1dArray
	case SurfaceTargetTexture2DArray:
		return vk.ImageViewType2dArray
	case SurfaceTargetTextureCubemap:
		return vk.ImageViewTypeCube
	case SurfaceTargetTextureCubeArray:
		return vk.ImageViewTypeCubeArray
	default:
		panic(fmt.Sprintf("SurfaceVulkan: no image view type for target %d", target))
	}
}

// VulkanAspectMask returns the aspect flags matching the surface type.
func VulkanAspectMask(surfaceType SurfaceType) vk.ImageAspectFlags {
	switch surfaceType {
	case SurfaceTypeDepth:
		return vk.ImageAspectFlags(vk.ImageAspectDepthBit)
	case SurfaceTypeDepthStencil:
		return vk.ImageAspectFlags(vk.ImageAspectDepthBit | vk.ImageAspectStencilBit)
	default:
		return vk.ImageAspectFlags(vk.ImageAspectColorBit)
	}
}
