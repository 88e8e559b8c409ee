// engine_fermi2d.go - Fermi 2D Copy Engine Register File

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/TegraCore

License: GPLv3 or later
*/

/*
engine_fermi2d.go - Fermi 2D Copy Engine Register File (FERMI_TWOD_A)

The 2D engine performs surface-to-surface blits with its own source and
destination descriptors, independent of the 3D pipeline's state. Register
writes accumulate in a shadow array; writing the final blit coordinate
triggers the copy, mirroring how the Voodoo core launches a triangle on its
command register write.

The engine itself moves no pixels: it derives SurfaceParams for both sides
and offers the copy to the rasterizer backend, which owns the actual data.
*/

package tegracore

import "fmt"

const (
	FERMI2D_REG_COUNT = 0x258

	// Destination surface descriptor, 10 words.
	FERMI2D_DST_FORMAT       = 0x80
	FERMI2D_DST_LINEAR       = 0x81
	FERMI2D_DST_BLOCK_SIZE   = 0x82
	FERMI2D_DST_DEPTH        = 0x83
	FERMI2D_DST_LAYER        = 0x84
	FERMI2D_DST_PITCH        = 0x85
	FERMI2D_DST_WIDTH        = 0x86
	FERMI2D_DST_HEIGHT       = 0x87
	FERMI2D_DST_ADDRESS_HIGH = 0x88
	FERMI2D_DST_ADDRESS_LOW  = 0x89

	// Source surface descriptor, 10 words.
	FERMI2D_SRC_FORMAT       = 0x8C
	FERMI2D_SRC_LINEAR       = 0x8D
	FERMI2D_SRC_BLOCK_SIZE   = 0x8E
	FERMI2D_SRC_DEPTH        = 0x8F
	FERMI2D_SRC_LAYER        = 0x90
	FERMI2D_SRC_PITCH        = 0x91
	FERMI2D_SRC_WIDTH        = 0x92
	FERMI2D_SRC_HEIGHT       = 0x93
	FERMI2D_SRC_ADDRESS_HIGH = 0x94
	FERMI2D_SRC_ADDRESS_LOW  = 0x95

	// Writing the source Y coordinate launches the blit.
	FERMI2D_BLIT_SRC_Y = 0x237
)

// Fermi2DSurface is one decoded 2D engine surface descriptor.
type Fermi2DSurface struct {
	Format      RenderTargetFormat
	Linear      bool
	BlockWidth  uint32 // log2 GOBs in X
	BlockHeight uint32 // log2 GOBs in Y
	BlockDepth  uint32 // log2 GOBs in Z
	Depth       uint32
	Layer       uint32
	Pitch       uint32
	Width       uint32
	Height      uint32
	Address     GPUVAddr
}

// Fermi2D is the 2D copy engine register file.
type Fermi2D struct {
	regs [FERMI2D_REG_COUNT]uint32

	rasterizer RasterizerInterface

	// Copies the rasterizer declined; left for a guest-memory fallback path.
	unacceleratedCopies int
}

func NewFermi2D(rasterizer RasterizerInterface) *Fermi2D {
	return &Fermi2D{rasterizer: rasterizer}
}

// CallMethod writes one method argument and launches a blit when the
// trigger register is written.
func (f *Fermi2D) CallMethod(call MethodCall) {
	if call.Method >= FERMI2D_REG_COUNT {
		panic(fmt.Sprintf("Fermi2D: method 0x%04X out of range", call.Method))
	}
	f.regs[call.Method] = call.Argument

	if call.Method == FERMI2D_BLIT_SRC_Y {
		f.handleSurfaceCopy()
	}
}

func (f *Fermi2D) decodeSurface(base uint32) Fermi2DSurface {
	blockSize := f.regs[base+2]
	return Fermi2DSurface{
		Format:      RenderTargetFormat(f.regs[base+0]),
		Linear:      f.regs[base+1]&0x1 != 0,
		BlockWidth:  blockSize & 0xF,
		BlockHeight: (blockSize >> 4) & 0xF,
		BlockDepth:  (blockSize >> 8) & 0xF,
		Depth:       f.regs[base+3],
		Layer:       f.regs[base+4],
		Pitch:       f.regs[base+5],
		Width:       f.regs[base+6],
		Height:      f.regs[base+7],
		Address:     GPUVAddr(f.regs[base+9]) | GPUVAddr(f.regs[base+8])<<32,
	}
}

// SrcSurface returns the decoded source descriptor.
func (f *Fermi2D) SrcSurface() Fermi2DSurface {
	return f.decodeSurface(FERMI2D_SRC_FORMAT)
}

// DstSurface returns the decoded destination descriptor.
func (f *Fermi2D) DstSurface() Fermi2DSurface {
	return f.decodeSurface(FERMI2D_DST_FORMAT)
}

func (f *Fermi2D) handleSurfaceCopy() {
	src := f.SrcSurface()
	dst := f.DstSurface()

	if !f.rasterizer.AccelerateSurfaceCopy(src, dst) {
		f.unacceleratedCopies++
		fmt.Printf("Warning: Fermi2D unaccelerated surface copy 0x%08X -> 0x%08X (%s -> %s)\n",
			src.Address, dst.Address,
			CreateSurfaceParamsForFermiCopySurface(src).TargetName(),
			CreateSurfaceParamsForFermiCopySurface(dst).TargetName())
	}
}

// UnacceleratedCopies reports how many blits the rasterizer declined.
func (f *Fermi2D) UnacceleratedCopies() int {
	return f.unacceleratedCopies
}
