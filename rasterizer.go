// rasterizer.go - Rasterizer backend interface

package tegracore

// RasterizerInterface is the contract between the register engines and the
// host rendering backend. Engines notify the rasterizer of memory regions
// whose cached resources must be written back or dropped, and offer it
// accelerated paths for surface copies.
type RasterizerInterface interface {
	// FlushRegion writes any cached resources overlapping the region back to
	// guest memory.
	FlushRegion(addr GPUVAddr, size uint64)

	// InvalidateRegion drops any cached resources overlapping the region.
	InvalidateRegion(addr GPUVAddr, size uint64)

	// FlushAndInvalidateRegion writes back and then drops cached resources
	// overlapping the region.
	FlushAndInvalidateRegion(addr GPUVAddr, size uint64)

	// AccelerateSurfaceCopy attempts a host-side copy between two 2D engine
	// surfaces. Returning false means the caller must fall back to a guest
	// memory copy.
	AccelerateSurfaceCopy(src, dst Fermi2DSurface) bool

	// TickFrame signals that a frame boundary passed.
	TickFrame()
}

// HeadlessRasterizer is a no-op backend that records what it was asked to
// do. It backs tests and headless operation the same way the headless video
// and audio backends do elsewhere in the engine family.
type HeadlessRasterizer struct {
	FlushCount        int
	InvalidateCount   int
	SurfaceCopyCount  int
	FrameCount        int
	AcceleratesCopies bool

	LastSrc Fermi2DSurface
	LastDst Fermi2DSurface
}

func NewHeadlessRasterizer() *HeadlessRasterizer {
	return &HeadlessRasterizer{AcceleratesCopies: true}
}

func (r *HeadlessRasterizer) FlushRegion(addr GPUVAddr, size uint64) {
	r.FlushCount++
}

func (r *HeadlessRasterizer) InvalidateRegion(addr GPUVAddr, size uint64) {
	r.InvalidateCount++
}

func (r *HeadlessRasterizer) FlushAndInvalidateRegion(addr GPUVAddr, size uint64) {
	r.FlushCount++
	r.InvalidateCount++
}

func (r *HeadlessRasterizer) AccelerateSurfaceCopy(src, dst Fermi2DSurface) bool {
	r.SurfaceCopyCount++
	r.LastSrc = src
	r.LastDst = dst
	return r.AcceleratesCopies
}

func (r *HeadlessRasterizer) TickFrame() {
	r.FrameCount++
}
