// surface_params_test.go - Test suite for surface layout model and cache identity

package tegracore

import (
	"testing"
)

// =============================================================================
// Construction helpers
// =============================================================================

// tiledTexture2D builds a 64x64 block-linear RGBA8 TIC with a 7-level mip
// chain and 4-GOB block height.
func tiledTexture2D() TICEntry {
	var tic TICEntry
	tic.Raw[0] = uint32(TEX_FORMAT_A8R8G8B8) |
		uint32(TEX_COMPONENT_UNORM)<<7 |
		uint32(TEX_COMPONENT_UNORM)<<10 |
		uint32(TEX_COMPONENT_UNORM)<<13 |
		uint32(TEX_COMPONENT_UNORM)<<16
	tic.Raw[2] = TIC_HV_BLOCK_LINEAR << 21
	tic.Raw[3] = 2<<3 | 6<<28 // block height exp 2, max mip level 6
	tic.Raw[4] = 63 | uint32(TEXTURE_TYPE_2D)<<23
	tic.Raw[5] = 63
	return tic
}

func sampler2D() SamplerEntry {
	return SamplerEntry{Type: TEXTURE_TYPE_2D}
}

func mustPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s did not panic", name)
		}
	}()
	fn()
}

// =============================================================================
// Texture factory
// =============================================================================

func TestSurfaceParams_FromTiledTexture(t *testing.T) {
	p := CreateSurfaceParamsForTexture(tiledTexture2D(), sampler2D())

	if !p.IsTiled {
		t.Error("Expected tiled layout")
	}
	if p.Width != 64 || p.Height != 64 || p.Depth != 1 {
		t.Errorf("Expected 64x64x1, got %dx%dx%d", p.Width, p.Height, p.Depth)
	}
	if p.BlockHeight != 2 || p.BlockWidth != 0 || p.BlockDepth != 0 {
		t.Errorf("Expected block exponents 0/2/0, got %d/%d/%d",
			p.BlockWidth, p.BlockHeight, p.BlockDepth)
	}
	if p.NumLevels != 7 {
		t.Errorf("Expected 7 mip levels, got %d", p.NumLevels)
	}
	if p.PixelFormat != PixelFormatABGR8U {
		t.Errorf("Expected ABGR8U, got %d", p.PixelFormat)
	}
	if p.Target != SurfaceTargetTexture2D {
		t.Errorf("Expected 2D target, got %s", p.TargetName())
	}
	if p.IsLayered {
		t.Error("2D texture must not be layered")
	}
}

func TestSurfaceParams_FromPitchTexture(t *testing.T) {
	var tic TICEntry
	tic.Raw[0] = uint32(TEX_FORMAT_A8R8G8B8) | uint32(TEX_COMPONENT_UNORM)<<7
	tic.Raw[2] = TIC_HV_PITCH << 21
	tic.Raw[3] = 256 >> 5 // pitch stored as pitch/32
	tic.Raw[4] = 63 | uint32(TEXTURE_TYPE_2D)<<23
	tic.Raw[5] = 3
	p := CreateSurfaceParamsForTexture(tic, sampler2D())

	if p.IsTiled {
		t.Error("Expected pitch-linear layout")
	}
	if p.Pitch != 256 {
		t.Errorf("Expected pitch 256, got %d", p.Pitch)
	}
	if p.Width != 64 || p.Height != 4 {
		t.Errorf("Expected 64x4, got %dx%d", p.Width, p.Height)
	}
}

func TestSurfaceParams_CubemapMultipliesDepth(t *testing.T) {
	tic := tiledTexture2D()
	tic.Raw[4] = 63 | uint32(TEXTURE_TYPE_CUBEMAP)<<23
	p := CreateSurfaceParamsForTexture(tic, SamplerEntry{Type: TEXTURE_TYPE_CUBEMAP})

	if p.Target != SurfaceTargetTextureCubemap {
		t.Fatalf("Expected cubemap target, got %s", p.TargetName())
	}
	if p.Depth != 6 {
		t.Errorf("Expected 6 faces, got %d", p.Depth)
	}
	if !p.IsLayered {
		t.Error("Cubemap must be layered")
	}
	if p.GetGuestSizeInBytes() != p.GetGuestLayerSize()*6 {
		t.Error("Cubemap guest size must be 6 layer sizes")
	}
}

func TestSurfaceParams_ArrayDisambiguation(t *testing.T) {
	tic := tiledTexture2D()
	tic.Raw[5] = 63 | 3<<16 // 4 layers

	flat := CreateSurfaceParamsForTexture(tic, SamplerEntry{Type: TEXTURE_TYPE_2D})
	arrayed := CreateSurfaceParamsForTexture(tic, SamplerEntry{Type: TEXTURE_TYPE_2D, IsArray: true})

	if flat.Target != SurfaceTargetTexture2D {
		t.Errorf("Expected 2D without reflection array flag, got %s", flat.TargetName())
	}
	if arrayed.Target != SurfaceTargetTexture2DArray {
		t.Errorf("Expected 2DArray with reflection array flag, got %s", arrayed.TargetName())
	}
	if !arrayed.IsLayered || arrayed.Depth != 4 {
		t.Errorf("Expected 4 layers, got layered=%v depth=%d", arrayed.IsLayered, arrayed.Depth)
	}
}

func TestSurfaceParams_ShadowPromotesDepthFormat(t *testing.T) {
	var tic TICEntry
	tic.Raw[0] = uint32(TEX_FORMAT_R16) | uint32(TEX_COMPONENT_UNORM)<<7
	tic.Raw[2] = TIC_HV_BLOCK_LINEAR << 21
	tic.Raw[4] = 63 | uint32(TEXTURE_TYPE_2D)<<23
	tic.Raw[5] = 63
	p := CreateSurfaceParamsForTexture(tic, SamplerEntry{Type: TEXTURE_TYPE_2D, IsShadow: true})

	if p.PixelFormat != PixelFormatZ16 {
		t.Errorf("Expected Z16 after shadow promotion, got %d", p.PixelFormat)
	}
	if !p.IsPixelFormatZeta() {
		t.Error("Promoted format must be a zeta format")
	}

	tic.Raw[0] = uint32(TEX_FORMAT_R32) | uint32(TEX_COMPONENT_FLOAT)<<7
	p = CreateSurfaceParamsForTexture(tic, SamplerEntry{Type: TEXTURE_TYPE_2D, IsShadow: true})
	if p.PixelFormat != PixelFormatZ32F {
		t.Errorf("Expected Z32F after shadow promotion, got %d", p.PixelFormat)
	}
}

func TestSurfaceParams_BufferTexture(t *testing.T) {
	var tic TICEntry
	tic.Raw[0] = uint32(TEX_FORMAT_R32) | uint32(TEX_COMPONENT_FLOAT)<<7
	tic.Raw[2] = TIC_HV_1D_BUFFER << 21
	tic.Raw[4] = 4095
	p := CreateSurfaceParamsForTexture(tic, SamplerEntry{Type: TEXTURE_TYPE_1D_BUFFER, IsBuffer: true})

	if p.Target != SurfaceTargetTextureBuffer {
		t.Fatalf("Expected buffer target, got %s", p.TargetName())
	}
	if p.Width != 4096 || p.Height != 1 || p.Depth != 1 || p.NumLevels != 1 {
		t.Errorf("Buffer shape wrong: %dx%dx%d levels=%d", p.Width, p.Height, p.Depth, p.NumLevels)
	}
	if p.GetHostSizeInBytes() != 4096*4 {
		t.Errorf("Expected 16384 byte buffer, got %d", p.GetHostSizeInBytes())
	}
}

// =============================================================================
// Register factories
// =============================================================================

func TestSurfaceParams_FromDepthBuffer(t *testing.T) {
	p := CreateSurfaceParamsForDepthBuffer(1280, 720, DEPTH_FORMAT_S8_Z24_UNORM,
		0, 2, 0, MEMORY_LAYOUT_BLOCK_LINEAR)

	if !p.IsTiled {
		t.Error("Expected tiled depth buffer")
	}
	if p.PixelFormat != PixelFormatS8Z24 {
		t.Errorf("Expected S8Z24, got %d", p.PixelFormat)
	}
	if p.Type != SurfaceTypeDepthStencil {
		t.Errorf("Expected depth-stencil type, got %d", p.Type)
	}
	if !p.IsPixelFormatZeta() {
		t.Error("Depth buffer must be zeta")
	}
	if p.Width != 1280 || p.Height != 720 || p.NumLevels != 1 {
		t.Errorf("Unexpected shape %dx%d levels=%d", p.Width, p.Height, p.NumLevels)
	}
}

func TestSurfaceParams_DepthBufferClampsBlockExponents(t *testing.T) {
	p := CreateSurfaceParamsForDepthBuffer(64, 64, DEPTH_FORMAT_Z32_FLOAT,
		9, 9, 9, MEMORY_LAYOUT_BLOCK_LINEAR)
	if p.BlockWidth != MAX_BLOCK_EXPONENT || p.BlockHeight != MAX_BLOCK_EXPONENT ||
		p.BlockDepth != MAX_BLOCK_EXPONENT {
		t.Errorf("Expected exponents clamped to %d, got %d/%d/%d",
			MAX_BLOCK_EXPONENT, p.BlockWidth, p.BlockHeight, p.BlockDepth)
	}
}

func TestSurfaceParams_FromTiledFramebuffer(t *testing.T) {
	m := NewMaxwell3D(NewHeadlessRasterizer(), NewMemoryManager(0x1000))
	base := uint32(MAXWELL3D_RT_BASE)
	m.CallMethod(MethodCall{Method: base + RT_WIDTH, Argument: 512})
	m.CallMethod(MethodCall{Method: base + RT_HEIGHT, Argument: 256})
	m.CallMethod(MethodCall{Method: base + RT_FORMAT, Argument: uint32(RT_FORMAT_RGBA8_UNORM)})
	m.CallMethod(MethodCall{Method: base + RT_TILE_MODE, Argument: 4 << 4}) // block height exp 4

	p := CreateSurfaceParamsForFramebuffer(m, 0)
	if !p.IsTiled {
		t.Error("Expected tiled render target")
	}
	if p.Width != 512 || p.Height != 256 {
		t.Errorf("Expected 512x256, got %dx%d", p.Width, p.Height)
	}
	if p.BlockHeight != 4 {
		t.Errorf("Expected block height exponent 4, got %d", p.BlockHeight)
	}
	if p.PixelFormat != PixelFormatABGR8U {
		t.Errorf("Expected ABGR8U, got %d", p.PixelFormat)
	}
}

func TestSurfaceParams_FromPitchFramebuffer(t *testing.T) {
	m := NewMaxwell3D(NewHeadlessRasterizer(), NewMemoryManager(0x1000))
	base := uint32(MAXWELL3D_RT_BASE + MAXWELL3D_RT_STRIDE) // slot 1
	m.CallMethod(MethodCall{Method: base + RT_WIDTH, Argument: 256})
	m.CallMethod(MethodCall{Method: base + RT_HEIGHT, Argument: 32})
	m.CallMethod(MethodCall{Method: base + RT_FORMAT, Argument: uint32(RT_FORMAT_RGBA8_UNORM)})
	m.CallMethod(MethodCall{Method: base + RT_TILE_MODE, Argument: 1 << 12}) // pitch layout

	p := CreateSurfaceParamsForFramebuffer(m, 1)
	if p.IsTiled {
		t.Error("Expected pitch-linear render target")
	}
	// Pitch-linear RTs store the pitch in the width register.
	if p.Pitch != 256 {
		t.Errorf("Expected pitch 256, got %d", p.Pitch)
	}
	if p.Width != 64 {
		t.Errorf("Expected width 256/4 = 64, got %d", p.Width)
	}
}

func TestSurfaceParams_FromFermiCopySurface(t *testing.T) {
	src := Fermi2DSurface{
		Format:      RT_FORMAT_RGBA8_UNORM,
		Linear:      false,
		BlockHeight: 2,
		Width:       64,
		Height:      64,
		Depth:       1,
	}
	p := CreateSurfaceParamsForFermiCopySurface(src)
	if !p.IsTiled || p.BlockHeight != 2 {
		t.Errorf("Expected tiled with block height 2, got tiled=%v bh=%d", p.IsTiled, p.BlockHeight)
	}
	if p.NumLevels != 1 || p.Target != SurfaceTargetTexture2D {
		t.Errorf("Copy surfaces are single-level 2D, got levels=%d target=%s",
			p.NumLevels, p.TargetName())
	}
}

// =============================================================================
// Mip geometry
// =============================================================================

func TestSurfaceParams_MipDimensions(t *testing.T) {
	p := CreateSurfaceParamsForTexture(tiledTexture2D(), sampler2D())

	widths := []uint32{64, 32, 16, 8, 4, 2, 1}
	for level, want := range widths {
		if got := p.GetMipWidth(uint32(level)); got != want {
			t.Errorf("Level %d: expected width %d, got %d", level, want, got)
		}
		if got := p.GetMipHeight(uint32(level)); got != want {
			t.Errorf("Level %d: expected height %d, got %d", level, want, got)
		}
	}
}

func TestSurfaceParams_MipDimensionsFloorAtOne(t *testing.T) {
	tic := tiledTexture2D()
	tic.Raw[5] = 7 // height 8: level 6 would shift past zero
	p := CreateSurfaceParamsForTexture(tic, sampler2D())

	if got := p.GetMipHeight(6); got != 1 {
		t.Errorf("Expected height floor of 1, got %d", got)
	}
}

func TestSurfaceParams_LayerCountDoesNotMip(t *testing.T) {
	tic := tiledTexture2D()
	tic.Raw[5] = 63 | 7<<16 // 8 layers
	p := CreateSurfaceParamsForTexture(tic, SamplerEntry{Type: TEXTURE_TYPE_2D, IsArray: true})

	for level := uint32(0); level < p.NumLevels; level++ {
		if got := p.GetMipDepth(level); got != 8 {
			t.Errorf("Level %d: expected 8 layers, got %d", level, got)
		}
	}
}

func TestSurfaceParams_MipBlockHeightShrinks(t *testing.T) {
	p := CreateSurfaceParamsForTexture(tiledTexture2D(), sampler2D())

	if got := p.GetMipBlockHeight(0); got != 2 {
		t.Fatalf("Level 0 must keep the base exponent, got %d", got)
	}
	// 16 rows need log2ceil(16)-3 = 1 GOB doubling.
	if got := p.GetMipBlockHeight(2); got != 1 {
		t.Errorf("Level 2: expected exponent 1, got %d", got)
	}
	// 8 rows fit one GOB.
	if got := p.GetMipBlockHeight(3); got != 0 {
		t.Errorf("Level 3: expected exponent 0, got %d", got)
	}
	// Exponents never grow back along the chain.
	prev := p.GetMipBlockHeight(0)
	for level := uint32(1); level < p.NumLevels; level++ {
		cur := p.GetMipBlockHeight(level)
		if cur > prev {
			t.Errorf("Block height exponent grew at level %d: %d > %d", level, cur, prev)
		}
		prev = cur
	}
}

func TestSurfaceParams_MipBlockDepth(t *testing.T) {
	var tic TICEntry
	tic.Raw[0] = uint32(TEX_FORMAT_A8R8G8B8) | uint32(TEX_COMPONENT_UNORM)<<7
	tic.Raw[2] = TIC_HV_BLOCK_LINEAR << 21
	tic.Raw[3] = 5<<6 | 5<<28 // block depth exp 5, 6 levels
	tic.Raw[4] = 63 | uint32(TEXTURE_TYPE_3D)<<23
	tic.Raw[5] = 63 | 63<<16 // 64 deep
	p := CreateSurfaceParamsForTexture(tic, SamplerEntry{Type: TEXTURE_TYPE_3D})

	if got := p.GetMipBlockDepth(0); got != 5 {
		t.Fatalf("Level 0 must keep the base exponent, got %d", got)
	}
	for level := uint32(1); level < p.NumLevels; level++ {
		if got := p.GetMipBlockDepth(level); got > 5 {
			t.Errorf("Level %d: exponent %d above hardware cap", level, got)
		}
	}
}

func TestSurfaceParams_LayeredBlockDepthIsZero(t *testing.T) {
	tic := tiledTexture2D()
	tic.Raw[5] = 63 | 7<<16
	p := CreateSurfaceParamsForTexture(tic, SamplerEntry{Type: TEXTURE_TYPE_2D, IsArray: true})

	for level := uint32(1); level < p.NumLevels; level++ {
		if got := p.GetMipBlockDepth(level); got != 0 {
			t.Errorf("Level %d: layered surfaces never stack GOBs in Z, got %d", level, got)
		}
	}
}

func TestSurfaceParams_MipLevelOutOfRangePanics(t *testing.T) {
	p := CreateSurfaceParamsForTexture(tiledTexture2D(), sampler2D())
	mustPanic(t, "GetMipWidth", func() { p.GetMipWidth(p.NumLevels) })
	mustPanic(t, "GetGuestMipmapSize", func() { p.GetGuestMipmapSize(p.NumLevels) })
	mustPanic(t, "GetHostMipmapLevelOffset", func() { p.GetHostMipmapLevelOffset(99) })
}

// =============================================================================
// Sizes and offsets
// =============================================================================

func TestSurfaceParams_GuestMipmapSizes(t *testing.T) {
	p := CreateSurfaceParamsForTexture(tiledTexture2D(), sampler2D())

	// 64x64 RGBA8, block height exponent 2 (32-row blocks):
	// L0 rows align to 32, row bytes align to 64.
	want := []uint64{16384, 4096, 1024, 512, 512, 512, 512}
	for level, size := range want {
		if got := p.GetGuestMipmapSize(uint32(level)); got != size {
			t.Errorf("Level %d: expected guest size %d, got %d", level, size, got)
		}
	}
}

func TestSurfaceParams_HostMipmapSizes(t *testing.T) {
	p := CreateSurfaceParamsForTexture(tiledTexture2D(), sampler2D())

	// Host layout is tightly packed linear.
	want := []uint64{16384, 4096, 1024, 256, 64, 16, 4}
	for level, size := range want {
		if got := p.GetHostMipmapSize(uint32(level)); got != size {
			t.Errorf("Level %d: expected host size %d, got %d", level, size, got)
		}
	}
}

func TestSurfaceParams_OffsetsArePrefixSums(t *testing.T) {
	p := CreateSurfaceParamsForTexture(tiledTexture2D(), sampler2D())

	var guest, host uint64
	for level := uint32(0); level < p.NumLevels; level++ {
		if got := p.GetGuestMipmapLevelOffset(level); got != guest {
			t.Errorf("Level %d: expected guest offset %d, got %d", level, guest, got)
		}
		if got := p.GetHostMipmapLevelOffset(level); got != host {
			t.Errorf("Level %d: expected host offset %d, got %d", level, host, got)
		}
		guest += p.GetGuestMipmapSize(level)
		host += p.GetHostMipmapSize(level)
	}
}

func TestSurfaceParams_SizeDecomposition(t *testing.T) {
	p := CreateSurfaceParamsForTexture(tiledTexture2D(), sampler2D())

	var sum uint64
	for level := uint32(0); level < p.NumLevels; level++ {
		sum += p.GetGuestMipmapSize(level)
	}
	if p.GetGuestLayerSize() != sum {
		t.Errorf("Layer size %d != mip sum %d", p.GetGuestLayerSize(), sum)
	}
	if p.GetGuestSizeInBytes() != sum {
		t.Errorf("Single-layer guest size %d != layer size %d", p.GetGuestSizeInBytes(), sum)
	}
}

func TestSurfaceParams_HostLayerSizeFromBaseLevel(t *testing.T) {
	p := CreateSurfaceParamsForTexture(tiledTexture2D(), sampler2D())

	if got := p.GetHostLayerSize(0); got != 16384+4096+1024+256+64+16+4 {
		t.Errorf("Full chain host size wrong: %d", got)
	}
	if got := p.GetHostLayerSize(5); got != 16+4 {
		t.Errorf("Tail chain host size wrong: %d", got)
	}
	if p.GetHostSizeInBytes() != p.GetHostLayerSize(0) {
		t.Error("Single-layer host size must equal the full chain")
	}
}

func TestSurfaceParams_SingleLevelDegenerate(t *testing.T) {
	p := CreateSurfaceParamsForDepthBuffer(64, 64, DEPTH_FORMAT_Z16_UNORM,
		0, 0, 0, MEMORY_LAYOUT_BLOCK_LINEAR)

	if p.GetGuestMipmapLevelOffset(0) != 0 || p.GetHostMipmapLevelOffset(0) != 0 {
		t.Error("Level 0 offsets must be zero")
	}
	if p.GetGuestLayerSize() != p.GetGuestMipmapSize(0) {
		t.Error("Single-level layer size must equal the level size")
	}
}

func TestSurfaceParams_PitchLinearGuestSize(t *testing.T) {
	p := CreateSurfaceParamsForFermiCopySurface(Fermi2DSurface{
		Format: RT_FORMAT_RGBA8_UNORM,
		Linear: true,
		Pitch:  256,
		Width:  64,
		Height: 4,
	})

	// Guest rows stride by the pitch even though 64*4 = 256 here too.
	if got := p.GetGuestSizeInBytes(); got != 1024 {
		t.Errorf("Expected 1024 guest bytes, got %d", got)
	}
	if got := p.GetHostSizeInBytes(); got != 1024 {
		t.Errorf("Expected 1024 host bytes, got %d", got)
	}
}

func TestSurfaceParams_PitchWiderThanRow(t *testing.T) {
	p := CreateSurfaceParamsForFermiCopySurface(Fermi2DSurface{
		Format: RT_FORMAT_RGBA8_UNORM,
		Linear: true,
		Pitch:  512,
		Width:  64,
		Height: 4,
	})

	if got := p.GetGuestSizeInBytes(); got != 512*4 {
		t.Errorf("Guest size must honour the pitch, got %d", got)
	}
	if got := p.GetHostSizeInBytes(); got != 64*4*4 {
		t.Errorf("Host size must stay tight, got %d", got)
	}
}

func TestSurfaceParams_CompressedMipSizes(t *testing.T) {
	var tic TICEntry
	tic.Raw[0] = uint32(TEX_FORMAT_DXT1) | uint32(TEX_COMPONENT_UNORM)<<7
	tic.Raw[2] = TIC_HV_BLOCK_LINEAR << 21
	tic.Raw[4] = 63 | uint32(TEXTURE_TYPE_2D)<<23
	tic.Raw[5] = 63
	p := CreateSurfaceParamsForTexture(tic, sampler2D())

	// 64x64 DXT1 is 16x16 blocks of 8 bytes: 128 row bytes, 16 block rows.
	// Row bytes align to 64, block rows align to 8 GOB rows.
	if got := p.GetGuestMipmapSize(0); got != 128*16 {
		t.Errorf("Expected 2048 guest bytes, got %d", got)
	}
	if got := p.GetHostMipmapSize(0); got != 128*16 {
		t.Errorf("Expected 2048 host bytes, got %d", got)
	}
}

func TestSurfaceParams_ASTCHostSizeIsDecodedRGBA8(t *testing.T) {
	var tic TICEntry
	tic.Raw[0] = uint32(TEX_FORMAT_ASTC_2D_4X4) | uint32(TEX_COMPONENT_UNORM)<<7
	tic.Raw[2] = TIC_HV_BLOCK_LINEAR << 21
	tic.Raw[4] = 36 | uint32(TEXTURE_TYPE_2D)<<23 // width 37
	tic.Raw[5] = 19                               // height 20
	p := CreateSurfaceParamsForTexture(tic, sampler2D())

	if !IsPixelFormatASTC(p.PixelFormat) {
		t.Fatal("Expected an ASTC format")
	}
	// align(37,4) * align(20,4) * 4 bytes
	if got := p.GetHostSizeInBytes(); got != 40*20*4 {
		t.Errorf("Expected 3200 host bytes, got %d", got)
	}
}

func TestSurfaceParams_BlockAlignedWidth(t *testing.T) {
	p := CreateSurfaceParamsForDepthBuffer(100, 100, DEPTH_FORMAT_S8_Z24_UNORM,
		0, 2, 0, MEMORY_LAYOUT_BLOCK_LINEAR)

	// 4 bytes per pixel: align width to 64/4 = 16 pixels.
	if got := p.GetBlockAlignedWidth(); got != 112 {
		t.Errorf("Expected aligned width 112, got %d", got)
	}
}

func TestSurfaceParams_BlockAlignedWidthNonPowerOfTwoDivisor(t *testing.T) {
	// RGB32F is 12 bytes per pixel, so widths align to 64/12 = 5 pixels.
	var tic TICEntry
	tic.Raw[0] = uint32(TEX_FORMAT_R32_G32_B32) | uint32(TEX_COMPONENT_FLOAT)<<7
	tic.Raw[2] = TIC_HV_BLOCK_LINEAR << 21
	tic.Raw[4] = 99 | uint32(TEXTURE_TYPE_2D)<<23 // width 100
	tic.Raw[5] = 49                               // height 50
	p := CreateSurfaceParamsForTexture(tic, sampler2D())

	if p.GetBytesPerPixel() != 12 {
		t.Fatalf("Expected 12 bytes per pixel, got %d", p.GetBytesPerPixel())
	}
	if got := p.GetBlockAlignedWidth(); got != 100 {
		t.Errorf("Expected aligned width 100, got %d", got)
	}
	p.Width = 101
	if got := p.GetBlockAlignedWidth(); got != 105 {
		t.Errorf("Expected aligned width 105, got %d", got)
	}
}

func TestSurfaceParams_ASTCHostSizeWithNonPowerOfTwoBlock(t *testing.T) {
	var tic TICEntry
	tic.Raw[0] = uint32(TEX_FORMAT_ASTC_2D_8X5) | uint32(TEX_COMPONENT_UNORM)<<7
	tic.Raw[2] = TIC_HV_BLOCK_LINEAR << 21
	tic.Raw[4] = 36 | uint32(TEXTURE_TYPE_2D)<<23 // width 37
	tic.Raw[5] = 19                               // height 20
	p := CreateSurfaceParamsForTexture(tic, sampler2D())

	// align(37,8) * align(20,5) * 4 bytes
	if got := p.GetHostSizeInBytes(); got != 40*20*4 {
		t.Errorf("Expected 3200 host bytes, got %d", got)
	}
}

// =============================================================================
// Identity
// =============================================================================

func TestSurfaceParams_HashDeterministic(t *testing.T) {
	a := CreateSurfaceParamsForTexture(tiledTexture2D(), sampler2D())
	b := CreateSurfaceParamsForTexture(tiledTexture2D(), sampler2D())

	if !a.Equal(b) {
		t.Fatal("Identical register state must build equal params")
	}
	if a.Hash() != b.Hash() {
		t.Error("Equal params must hash identically")
	}
	if a.Hash() != a.Hash() {
		t.Error("Hash must be stable across calls")
	}
}

func TestSurfaceParams_HashSeparatesFields(t *testing.T) {
	base := CreateSurfaceParamsForTexture(tiledTexture2D(), sampler2D())

	variants := []SurfaceParams{base, base, base, base, base}
	variants[1].Width = 128
	variants[2].SrgbConversion = true
	variants[3].NumLevels = 1
	variants[4].Target = SurfaceTargetTexture2DArray

	seen := map[uint64]int{}
	for i, v := range variants {
		if prev, dup := seen[v.Hash()]; dup {
			t.Errorf("Variants %d and %d collide", prev, i)
		}
		seen[v.Hash()] = i
	}
	for i := 1; i < len(variants); i++ {
		if variants[i].Equal(base) {
			t.Errorf("Variant %d must not equal base", i)
		}
	}
}
