package sim

import (
	"hash/fnv"
	"math/rand"
	"sort"
)

// SimulationKey is the master seed of a workload generation. Equal keys and
// equal generator settings yield identical process sets.
type SimulationKey int64

// NewSimulationKey wraps a --seed value.
func NewSimulationKey(seed int64) SimulationKey {
	return SimulationKey(seed)
}

// Random streams drawn during process generation.
const (
	// SubsystemWorkload draws arrivals, bursts and priorities from the master seed itself.
	SubsystemWorkload = "workload"
	// SubsystemIO draws the I/O decision, offset and duration of each process,
	// so toggling I/O generation leaves the other draws untouched.
	SubsystemIO = "io"
)

// PartitionedRNG hands out one independent *rand.Rand per named stream.
// Not safe for concurrent use.
type PartitionedRNG struct {
	key     SimulationKey
	streams map[string]*rand.Rand
}

// NewPartitionedRNG creates a PartitionedRNG with no streams opened yet.
func NewPartitionedRNG(key SimulationKey) *PartitionedRNG {
	return &PartitionedRNG{key: key, streams: map[string]*rand.Rand{}}
}

// ForSubsystem returns the stream for name, opening it on first use. Repeated
// calls return the same instance so draws continue where they left off.
func (p *PartitionedRNG) ForSubsystem(name string) *rand.Rand {
	rng, ok := p.streams[name]
	if !ok {
		rng = rand.New(rand.NewSource(p.SeedFor(name)))
		p.streams[name] = rng
	}
	return rng
}

// SeedFor is the seed a stream is opened with: the master seed for
// SubsystemWorkload, the master seed XOR the FNV-1a hash of name otherwise.
func (p *PartitionedRNG) SeedFor(name string) int64 {
	if name == SubsystemWorkload {
		return int64(p.key)
	}
	h := fnv.New64a()
	h.Write([]byte(name))
	return int64(p.key) ^ int64(h.Sum64())
}

// Key returns the master seed.
func (p *PartitionedRNG) Key() SimulationKey {
	return p.key
}

// Opened lists the streams drawn from so far, sorted by name.
func (p *PartitionedRNG) Opened() []string {
	names := make([]string, 0, len(p.streams))
	for name := range p.streams {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
