// texture_constants.go - Texture Image Control (TIC) Descriptor Definitions

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/TegraCore

License: GPLv3 or later
*/

/*
texture_constants.go - Texture Image Control (TIC) Descriptor Definitions

The TIC is the 32-byte hardware descriptor the 3D engine reads to sample a
texture: format and per-channel component types, guest address, layout
(pitch-linear vs block-linear plus the GOB stacking exponents), dimensions
and mip count. It is stored in guest memory as 8 little-endian words; this
file models it as the raw words plus bitfield accessors, the same way the
Voodoo core decodes its packed registers.

The TIC does not say whether a sampler treats the texture as an array, so
SamplerEntry carries that disambiguation from shader reflection.

Reference: envytools texture descriptor documentation (Kepler/Maxwell TIC).
*/

package tegracore

// TextureFormat is the 7-bit format field of TIC word 0.
type TextureFormat uint32

const (
	TEX_FORMAT_R32_G32_B32_A32    TextureFormat = 0x01
	TEX_FORMAT_R32_G32_B32        TextureFormat = 0x02
	TEX_FORMAT_R16_G16_B16_A16    TextureFormat = 0x03
	TEX_FORMAT_R32_G32            TextureFormat = 0x04
	TEX_FORMAT_A8R8G8B8           TextureFormat = 0x08
	TEX_FORMAT_A2B10G10R10        TextureFormat = 0x09
	TEX_FORMAT_R16_G16            TextureFormat = 0x0C
	TEX_FORMAT_R32                TextureFormat = 0x0F
	TEX_FORMAT_BC6H_SF16          TextureFormat = 0x10
	TEX_FORMAT_BC6H_UF16          TextureFormat = 0x11
	TEX_FORMAT_A4B4G4R4           TextureFormat = 0x12
	TEX_FORMAT_A1B5G5R5           TextureFormat = 0x14
	TEX_FORMAT_B5G6R5             TextureFormat = 0x15
	TEX_FORMAT_BC7U               TextureFormat = 0x17
	TEX_FORMAT_G8R8               TextureFormat = 0x18
	TEX_FORMAT_R16                TextureFormat = 0x1B
	TEX_FORMAT_R8                 TextureFormat = 0x1D
	TEX_FORMAT_E5B9G9R9_SHAREDEXP TextureFormat = 0x20
	TEX_FORMAT_BF10GF11RF11       TextureFormat = 0x21
	TEX_FORMAT_DXT1               TextureFormat = 0x24
	TEX_FORMAT_DXT23              TextureFormat = 0x25
	TEX_FORMAT_DXT45              TextureFormat = 0x26
	TEX_FORMAT_DXN1               TextureFormat = 0x27
	TEX_FORMAT_DXN2               TextureFormat = 0x28
	TEX_FORMAT_Z24S8              TextureFormat = 0x29
	TEX_FORMAT_X8Z24              TextureFormat = 0x2A
	TEX_FORMAT_S8Z24              TextureFormat = 0x2B
	TEX_FORMAT_ZF32               TextureFormat = 0x2F
	TEX_FORMAT_ZF32_X24S8         TextureFormat = 0x30
	TEX_FORMAT_ASTC_2D_4X4        TextureFormat = 0x40
	TEX_FORMAT_ASTC_2D_5X5        TextureFormat = 0x41
	TEX_FORMAT_ASTC_2D_8X8        TextureFormat = 0x44
	TEX_FORMAT_ASTC_2D_5X4        TextureFormat = 0x50
	TEX_FORMAT_ASTC_2D_10X8       TextureFormat = 0x53
	TEX_FORMAT_ASTC_2D_8X5        TextureFormat = 0x55
)

// TextureComponentType is the 3-bit per-channel numeric type in TIC word 0.
type TextureComponentType uint32

const (
	TEX_COMPONENT_SNORM            TextureComponentType = 1
	TEX_COMPONENT_UNORM            TextureComponentType = 2
	TEX_COMPONENT_SINT             TextureComponentType = 3
	TEX_COMPONENT_UINT             TextureComponentType = 4
	TEX_COMPONENT_SNORM_FORCE_FP16 TextureComponentType = 5
	TEX_COMPONENT_UNORM_FORCE_FP16 TextureComponentType = 6
	TEX_COMPONENT_FLOAT            TextureComponentType = 7
)

// TextureType is the 4-bit shape field of TIC word 4, also used by shader
// reflection to describe sampler instructions.
type TextureType uint32

const (
	TEXTURE_TYPE_1D           TextureType = 0
	TEXTURE_TYPE_2D           TextureType = 1
	TEXTURE_TYPE_3D           TextureType = 2
	TEXTURE_TYPE_CUBEMAP      TextureType = 3
	TEXTURE_TYPE_1D_ARRAY     TextureType = 4
	TEXTURE_TYPE_2D_ARRAY     TextureType = 5
	TEXTURE_TYPE_1D_BUFFER    TextureType = 6
	TEXTURE_TYPE_2D_NO_MIPMAP TextureType = 7
	TEXTURE_TYPE_CUBE_ARRAY   TextureType = 8
)

// TIC header version (word 2 bits 21-23) selects the memory layout family.
const (
	TIC_HV_1D_BUFFER         = 0
	TIC_HV_PITCH_COLOR_KEY   = 1
	TIC_HV_PITCH             = 2
	TIC_HV_BLOCK_LINEAR      = 3
	TIC_HV_BLOCK_LINEAR_CKEY = 4
)

// TICEntry is a raw texture descriptor: 8 words as read from guest memory.
//
// Word layout (bit ranges inclusive):
//
//	w0  0-6 format, 7-9 r_type, 10-12 g_type, 13-15 b_type, 16-18 a_type
//	w1  address low
//	w2  0-15 address high, 21-23 header version
//	w3  0-2 block width exp, 3-5 block height exp, 6-8 block depth exp,
//	    10-12 tile width spacing exp, 28-31 max mip level
//	    (pitch layouts reuse 0-15 as pitch>>5)
//	w4  0-15 width-1, 16 srgb conversion, 23-26 texture type
//	w5  0-15 height-1, 16-29 depth-1
type TICEntry struct {
	Raw [8]uint32
}

func (t TICEntry) Format() TextureFormat {
	return TextureFormat(t.Raw[0] & 0x7F)
}

func (t TICEntry) RType() TextureComponentType {
	return TextureComponentType((t.Raw[0] >> 7) & 0x7)
}

func (t TICEntry) GType() TextureComponentType {
	return TextureComponentType((t.Raw[0] >> 10) & 0x7)
}

func (t TICEntry) BType() TextureComponentType {
	return TextureComponentType((t.Raw[0] >> 13) & 0x7)
}

func (t TICEntry) AType() TextureComponentType {
	return TextureComponentType((t.Raw[0] >> 16) & 0x7)
}

// Address returns the guest address of the texture data.
func (t TICEntry) Address() GPUVAddr {
	return GPUVAddr(t.Raw[1]) | GPUVAddr(t.Raw[2]&0xFFFF)<<32
}

func (t TICEntry) headerVersion() uint32 {
	return (t.Raw[2] >> 21) & 0x7
}

// IsTiled reports whether the texture uses the block-linear layout.
func (t TICEntry) IsTiled() bool {
	hv := t.headerVersion()
	return hv == TIC_HV_BLOCK_LINEAR || hv == TIC_HV_BLOCK_LINEAR_CKEY
}

// IsBuffer reports whether the descriptor addresses a 1D texel buffer.
func (t TICEntry) IsBuffer() bool {
	return t.headerVersion() == TIC_HV_1D_BUFFER
}

// BlockWidth returns the log2 GOB count stacked in X. Only meaningful for
// block-linear descriptors.
func (t TICEntry) BlockWidth() uint32 {
	return t.Raw[3] & 0x7
}

// BlockHeight returns the log2 GOB count stacked in Y.
func (t TICEntry) BlockHeight() uint32 {
	return (t.Raw[3] >> 3) & 0x7
}

// BlockDepth returns the log2 GOB count stacked in Z.
func (t TICEntry) BlockDepth() uint32 {
	return (t.Raw[3] >> 6) & 0x7
}

// TileWidthSpacing returns the log2 tile spacing multiplier.
func (t TICEntry) TileWidthSpacing() uint32 {
	return (t.Raw[3] >> 10) & 0x7
}

// Pitch returns the row stride in bytes for pitch-linear descriptors. The
// hardware stores pitch>>5, so the value is always 32-byte aligned.
func (t TICEntry) Pitch() uint32 {
	return (t.Raw[3] & 0xFFFF) << 5
}

// MaxMipLevel returns the index of the smallest mip level (0 = no mip chain).
func (t TICEntry) MaxMipLevel() uint32 {
	return (t.Raw[3] >> 28) & 0xF
}

func (t TICEntry) Width() uint32 {
	return (t.Raw[4] & 0xFFFF) + 1
}

func (t TICEntry) IsSrgbConversionEnabled() bool {
	return (t.Raw[4]>>16)&0x1 != 0
}

func (t TICEntry) TextureType() TextureType {
	return TextureType((t.Raw[4] >> 23) & 0xF)
}

func (t TICEntry) Height() uint32 {
	return (t.Raw[5] & 0xFFFF) + 1
}

func (t TICEntry) Depth() uint32 {
	return ((t.Raw[5] >> 16) & 0x3FFF) + 1
}

// FullTextureInfo pairs a fetched TIC descriptor with the sampler
// reflection data needed to interpret it.
type FullTextureInfo struct {
	Index uint32
	TIC   TICEntry
	Entry SamplerEntry
}

// SamplerEntry is shader-reflection metadata for one sampler instruction. It
// resolves what the TIC leaves ambiguous: whether the access is arrayed, a
// shadow (depth compare) lookup, or a texel buffer fetch.
type SamplerEntry struct {
	Type     TextureType
	IsArray  bool
	IsShadow bool
	IsBuffer bool
}
