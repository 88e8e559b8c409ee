// gpu.go - GPU Command Processor Front-End

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/TegraCore

License: GPLv3 or later
*/

/*
gpu.go - GPU Command Processor Front-End

The front-end receives (method, argument, subchannel) triplets and routes
them: methods below the puller limit are handled by the GPU itself (object
binding, semaphores, fences), everything else goes to the engine bound to
the subchannel. This mirrors the Voodoo core's register state machine, but
with the subchannel indirection the Tegra command processor uses.

Semaphores operate on guest memory through the memory manager; WriteLong
stores a {sequence, zero, timestamp} block, the acquire family compares the
word at the semaphore address. Syncpoints are monotonically increasing
counters the CPU side can wait on.
*/

package tegracore

import (
	"fmt"
	"sync"
	"time"
)

// MethodCall is one decoded command processor entry.
type MethodCall struct {
	Method     uint32
	Argument   uint32
	Subchannel uint32
}

// Engine is anything dispatchable from a subchannel.
type Engine interface {
	CallMethod(call MethodCall)
}

// GPU is the command processor front-end and engine container.
type GPU struct {
	memoryManager *MemoryManager
	rasterizer    RasterizerInterface
	maxwell3d     *Maxwell3D
	fermi2d       *Fermi2D

	regs         [PULLER_REG_COUNT]uint32
	boundEngines [NUM_SUBCHANNELS]EngineID

	syncMutex      sync.Mutex
	syncCond       *sync.Cond
	syncpoints     [NUM_SYNCPOINTS]uint32
	syncptWaitlist [NUM_SYNCPOINTS][]uint32

	// Pending semaphore acquire state, exposed for the command scheduler.
	acquireActive bool
	acquireMode   bool // false: equal, true: greater-equal
	acquireValue  uint32

	started time.Time
}

func NewGPU(rasterizer RasterizerInterface, memoryManager *MemoryManager) *GPU {
	g := &GPU{
		memoryManager: memoryManager,
		rasterizer:    rasterizer,
		maxwell3d:     NewMaxwell3D(rasterizer, memoryManager),
		fermi2d:       NewFermi2D(rasterizer),
		started:       time.Now(),
	}
	g.syncCond = sync.NewCond(&g.syncMutex)
	return g
}

// Maxwell3D returns the 3D engine.
func (g *GPU) Maxwell3D() *Maxwell3D {
	return g.maxwell3d
}

// Fermi2D returns the 2D copy engine.
func (g *GPU) Fermi2D() *Fermi2D {
	return g.fermi2d
}

// MemoryManager returns the guest memory manager.
func (g *GPU) MemoryManager() *MemoryManager {
	return g.memoryManager
}

// CallMethod routes one method call to the puller or the bound engine.
func (g *GPU) CallMethod(call MethodCall) {
	if call.Subchannel >= NUM_SUBCHANNELS {
		panic(fmt.Sprintf("GPU: subchannel %d out of range", call.Subchannel))
	}
	if call.Method >= PULLER_METHOD_LIMIT {
		g.callEngineMethod(call)
	} else {
		g.callPullerMethod(call)
	}
}

func (g *GPU) callEngineMethod(call MethodCall) {
	switch g.boundEngines[call.Subchannel] {
	case ENGINE_FERMI_TWOD_A:
		g.fermi2d.CallMethod(call)
	case ENGINE_MAXWELL_B:
		g.maxwell3d.CallMethod(call)
	default:
		fmt.Printf("Warning: GPU method 0x%04X for unbound engine 0x%04X on subchannel %d\n",
			call.Method, uint32(g.boundEngines[call.Subchannel]), call.Subchannel)
	}
}

func (g *GPU) callPullerMethod(call MethodCall) {
	g.regs[call.Method] = call.Argument

	switch call.Method {
	case PULLER_BIND_OBJECT:
		g.boundEngines[call.Subchannel] = EngineID(call.Argument)
	case PULLER_NOP, PULLER_SEMAPHORE_ADDR_HI, PULLER_SEMAPHORE_ADDR_LO,
		PULLER_SEMAPHORE_SEQ, PULLER_NOTIFY_INTR, PULLER_WRCACHE_FLUSH,
		PULLER_REF_CNT, PULLER_FENCE_VALUE, PULLER_FENCE_ACTION,
		PULLER_YIELD:
		// State writes with no side effect.
	case PULLER_SEMAPHORE_TRIGGER:
		g.processSemaphoreTrigger()
	case PULLER_SEMAPHORE_ACQUIRE:
		g.processSemaphoreAcquire()
	case PULLER_SEMAPHORE_RELEASE:
		g.processSemaphoreRelease()
	default:
		fmt.Printf("Warning: GPU puller method 0x%02X not implemented\n", call.Method)
	}
}

// BoundEngine reports which engine class a subchannel is bound to.
func (g *GPU) BoundEngine(subchannel uint32) EngineID {
	if subchannel >= NUM_SUBCHANNELS {
		panic(fmt.Sprintf("GPU: subchannel %d out of range", subchannel))
	}
	return g.boundEngines[subchannel]
}

func (g *GPU) semaphoreAddress() GPUVAddr {
	return GPUVAddr(g.regs[PULLER_SEMAPHORE_ADDR_LO]) |
		GPUVAddr(g.regs[PULLER_SEMAPHORE_ADDR_HI])<<32
}

func (g *GPU) processSemaphoreTrigger() {
	op := g.regs[PULLER_SEMAPHORE_TRIGGER] & 0xF
	sequence := g.regs[PULLER_SEMAPHORE_SEQ]
	addr := g.semaphoreAddress()

	if op == SEMAPHORE_OP_WRITE_LONG {
		// {sequence, zeros, timestamp} block, 16 bytes.
		g.memoryManager.WriteU32(addr, sequence)
		g.memoryManager.WriteU32(addr+4, 0)
		g.memoryManager.WriteU64(addr+8, g.GetTicks())
		return
	}

	word := g.memoryManager.ReadU32(addr)
	satisfied := (op == SEMAPHORE_OP_ACQUIRE_EQUAL && word == sequence) ||
		(op == SEMAPHORE_OP_ACQUIRE_GEQUAL && int32(word-sequence) >= 0) ||
		(op == SEMAPHORE_OP_ACQUIRE_MASK && word&sequence != 0)
	if satisfied {
		return
	}
	g.acquireValue = sequence
	switch op {
	case SEMAPHORE_OP_ACQUIRE_EQUAL:
		g.acquireActive = true
		g.acquireMode = false
	case SEMAPHORE_OP_ACQUIRE_GEQUAL:
		g.acquireActive = true
		g.acquireMode = true
	default:
		fmt.Printf("Warning: GPU semaphore operation 0x%X not implemented\n", op)
	}
}

func (g *GPU) processSemaphoreRelease() {
	g.memoryManager.WriteU32(g.semaphoreAddress(), g.regs[PULLER_SEMAPHORE_RELEASE])
}

func (g *GPU) processSemaphoreAcquire() {
	value := g.regs[PULLER_SEMAPHORE_ACQUIRE]
	if g.memoryManager.ReadU32(g.semaphoreAddress()) != value {
		g.acquireActive = true
		g.acquireMode = false
		g.acquireValue = value
	}
}

// AcquirePending reports whether a semaphore acquire is blocking the channel
// and the value it waits for.
func (g *GPU) AcquirePending() (bool, uint32) {
	return g.acquireActive, g.acquireValue
}

// =============================================================================
// Syncpoints
// =============================================================================

// IncrementSyncPoint bumps a syncpoint and wakes waiters.
func (g *GPU) IncrementSyncPoint(id uint32) {
	if id >= NUM_SYNCPOINTS {
		panic(fmt.Sprintf("GPU: syncpoint %d out of range", id))
	}
	g.syncMutex.Lock()
	g.syncpoints[id]++
	value := g.syncpoints[id]
	remaining := g.syncptWaitlist[id][:0]
	for _, threshold := range g.syncptWaitlist[id] {
		if value < threshold {
			remaining = append(remaining, threshold)
		}
	}
	g.syncptWaitlist[id] = remaining
	g.syncMutex.Unlock()
	g.syncCond.Broadcast()
}

// SyncPointValue returns a syncpoint's current value.
func (g *GPU) SyncPointValue(id uint32) uint32 {
	if id >= NUM_SYNCPOINTS {
		panic(fmt.Sprintf("GPU: syncpoint %d out of range", id))
	}
	g.syncMutex.Lock()
	defer g.syncMutex.Unlock()
	return g.syncpoints[id]
}

// WaitFence blocks until the syncpoint reaches value.
func (g *GPU) WaitFence(id uint32, value uint32) {
	if id >= NUM_SYNCPOINTS {
		panic(fmt.Sprintf("GPU: syncpoint %d out of range", id))
	}
	g.syncMutex.Lock()
	for g.syncpoints[id] < value {
		g.syncCond.Wait()
	}
	g.syncMutex.Unlock()
}

// RegisterSyncptInterrupt records an interrupt threshold for a syncpoint.
// Duplicate thresholds are ignored.
func (g *GPU) RegisterSyncptInterrupt(id uint32, value uint32) {
	if id >= NUM_SYNCPOINTS {
		panic(fmt.Sprintf("GPU: syncpoint %d out of range", id))
	}
	g.syncMutex.Lock()
	defer g.syncMutex.Unlock()
	for _, threshold := range g.syncptWaitlist[id] {
		if threshold == value {
			return
		}
	}
	g.syncptWaitlist[id] = append(g.syncptWaitlist[id], value)
}

// CancelSyncptInterrupt removes a previously registered threshold. Returns
// false if it was not present (already fired or never registered).
func (g *GPU) CancelSyncptInterrupt(id uint32, value uint32) bool {
	if id >= NUM_SYNCPOINTS {
		panic(fmt.Sprintf("GPU: syncpoint %d out of range", id))
	}
	g.syncMutex.Lock()
	defer g.syncMutex.Unlock()
	for i, threshold := range g.syncptWaitlist[id] {
		if threshold == value {
			g.syncptWaitlist[id] = append(g.syncptWaitlist[id][:i], g.syncptWaitlist[id][i+1:]...)
			return true
		}
	}
	return false
}

// GetTicks returns the GPU tick counter. The hardware clock reports in
// units of 384/625 nanoseconds.
func (g *GPU) GetTicks() uint64 {
	const (
		gpuTicksNum = 384
		gpuTicksDen = 625
	)
	nanoseconds := uint64(time.Since(g.started).Nanoseconds())
	quotient := nanoseconds / gpuTicksDen
	remainder := nanoseconds % gpuTicksDen
	return quotient*gpuTicksNum + remainder*gpuTicksNum/gpuTicksDen
}
