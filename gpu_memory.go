// gpu_memory.go - Guest GPU address space

package tegracore

import (
	"encoding/binary"
	"fmt"
)

// GPUVAddr is an address in the GPU's virtual address space.
type GPUVAddr = uint64

// MemoryManager models the GPU-visible guest memory used by semaphore
// operations and descriptor fetches. Out-of-range accesses warn and read as
// zero rather than faulting, matching how the system bus treats unmapped
// addresses.
type MemoryManager struct {
	backing []byte
}

func NewMemoryManager(size uint64) *MemoryManager {
	return &MemoryManager{backing: make([]byte, size)}
}

func (m *MemoryManager) inRange(addr GPUVAddr, size uint64) bool {
	return addr+size <= uint64(len(m.backing)) && addr+size >= addr
}

func (m *MemoryManager) ReadU32(addr GPUVAddr) uint32 {
	if !m.inRange(addr, 4) {
		fmt.Printf("Warning: GPU read32 from out-of-bounds address 0x%08X\n", addr)
		return 0
	}
	return binary.LittleEndian.Uint32(m.backing[addr:])
}

func (m *MemoryManager) WriteU32(addr GPUVAddr, value uint32) {
	if !m.inRange(addr, 4) {
		fmt.Printf("Warning: GPU write32 to out-of-bounds address 0x%08X\n", addr)
		return
	}
	binary.LittleEndian.PutUint32(m.backing[addr:], value)
}

func (m *MemoryManager) ReadU64(addr GPUVAddr) uint64 {
	if !m.inRange(addr, 8) {
		fmt.Printf("Warning: GPU read64 from out-of-bounds address 0x%08X\n", addr)
		return 0
	}
	return binary.LittleEndian.Uint64(m.backing[addr:])
}

func (m *MemoryManager) WriteU64(addr GPUVAddr, value uint64) {
	if !m.inRange(addr, 8) {
		fmt.Printf("Warning: GPU write64 to out-of-bounds address 0x%08X\n", addr)
		return
	}
	binary.LittleEndian.PutUint64(m.backing[addr:], value)
}

// WriteBlock copies data into guest memory.
func (m *MemoryManager) WriteBlock(addr GPUVAddr, data []byte) {
	if !m.inRange(addr, uint64(len(data))) {
		fmt.Printf("Warning: GPU block write to out-of-bounds address 0x%08X (%d bytes)\n",
			addr, len(data))
		return
	}
	copy(m.backing[addr:], data)
}

// ReadBlock copies data out of guest memory.
func (m *MemoryManager) ReadBlock(addr GPUVAddr, size uint64) []byte {
	if !m.inRange(addr, size) {
		fmt.Printf("Warning: GPU block read from out-of-bounds address 0x%08X (%d bytes)\n",
			addr, size)
		return make([]byte, size)
	}
	out := make([]byte, size)
	copy(out, m.backing[addr:])
	return out
}

// Size returns the extent of the managed address space.
func (m *MemoryManager) Size() uint64 {
	return uint64(len(m.backing))
}
