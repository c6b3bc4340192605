// control/config.go
// Author: momentics <momentics@gmail.com>
//
// Ring configuration: YAML/map loading, validation and construction.

package control

import (
	"fmt"
	"math"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/elastic/go-ucfg"
	"github.com/elastic/go-ucfg/yaml"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/momentics/hioload-ring/api"
	"github.com/momentics/hioload-ring/internal/ringmath"
	"github.com/momentics/hioload-ring/pool"
	"github.com/momentics/hioload-ring/ring"
)

// Allocator kinds accepted in ring.allocator.
const (
	AllocatorHeap   = "heap"
	AllocatorMmap   = "mmap"
	AllocatorPooled = "pooled"
)

const defaultCapacity = "64KiB"

// RingConfig describes one ring.
type RingConfig struct {
	// Capacity accepts plain byte counts or humanized sizes such as "64KiB".
	Capacity   string `config:"capacity"`
	PowerOfTwo bool   `config:"power_of_two"`
	Allocator  string `config:"allocator"`
	HugePages  bool   `config:"hugepages"`
	// PoolDepth bounds idle regions kept by the pooled allocator.
	PoolDepth int `config:"pool_depth"`
}

// Config is the root configuration document.
type Config struct {
	Ring RingConfig `config:"ring"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Ring: RingConfig{
			Capacity:   defaultCapacity,
			PowerOfTwo: true,
			Allocator:  AllocatorHeap,
			PoolDepth:  64,
		},
	}
}

var configOpts = []ucfg.Option{ucfg.PathSep(".")}

// LoadYAML unpacks a YAML document on top of DefaultConfig.
func LoadYAML(data []byte) (Config, error) {
	raw, err := yaml.NewConfig(data, configOpts...)
	if err != nil {
		return Config{}, errors.Wrap(err, "parse config")
	}
	return unpack(raw)
}

// LoadFile reads and unpacks a YAML file on top of DefaultConfig.
func LoadFile(path string) (Config, error) {
	raw, err := yaml.NewConfigWithFile(path, configOpts...)
	if err != nil {
		return Config{}, errors.Wrapf(err, "read config %s", path)
	}
	return unpack(raw)
}

// FromMap unpacks a nested map, e.g. {"ring": {"capacity": "1MiB"}}, or a
// flat dotted one such as {"ring.capacity": 4096}.
func FromMap(m map[string]any) (Config, error) {
	raw, err := ucfg.NewFrom(m, configOpts...)
	if err != nil {
		return Config{}, errors.Wrap(err, "build config")
	}
	return unpack(raw)
}

func unpack(raw *ucfg.Config) (Config, error) {
	cfg := DefaultConfig()
	if err := raw.Unpack(&cfg, configOpts...); err != nil {
		return Config{}, errors.Wrap(err, "unpack config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// CapacityBytes parses Capacity.
func (c RingConfig) CapacityBytes() (int, error) {
	n, err := humanize.ParseBytes(strings.TrimSpace(c.Capacity))
	if err != nil {
		return 0, errors.Wrapf(err, "ring.capacity %q", c.Capacity)
	}
	if n == 0 || n > math.MaxInt32 {
		return 0, fmt.Errorf("ring.capacity %q out of range", c.Capacity)
	}
	return int(n), nil
}

// Validate reports every problem in the configuration at once.
func (c Config) Validate() error {
	var result *multierror.Error
	if _, err := c.Ring.CapacityBytes(); err != nil {
		result = multierror.Append(result, err)
	}
	switch c.Ring.Allocator {
	case AllocatorHeap, AllocatorMmap, AllocatorPooled:
	default:
		result = multierror.Append(result,
			fmt.Errorf("ring.allocator %q: want %s, %s or %s",
				c.Ring.Allocator, AllocatorHeap, AllocatorMmap, AllocatorPooled))
	}
	if c.Ring.HugePages && c.Ring.Allocator == AllocatorHeap {
		result = multierror.Append(result,
			fmt.Errorf("ring.hugepages requires the %s or %s allocator", AllocatorMmap, AllocatorPooled))
	}
	if c.Ring.PoolDepth < 0 {
		result = multierror.Append(result, fmt.Errorf("ring.pool_depth %d is negative", c.Ring.PoolDepth))
	}
	return result.ErrorOrNil()
}

// NewAllocator builds the storage allocator named by the configuration.
func (c Config) NewAllocator(log *zap.Logger) (api.Allocator, error) {
	if log == nil {
		log = zap.NewNop()
	}
	switch c.Ring.Allocator {
	case AllocatorHeap:
		return pool.NewHeapAllocator(), nil
	case AllocatorMmap:
		return pool.NewMmapAllocator(c.Ring.HugePages, log), nil
	case AllocatorPooled:
		size, err := c.Ring.CapacityBytes()
		if err != nil {
			return nil, err
		}
		var backing api.Allocator = pool.NewHeapAllocator()
		if c.Ring.HugePages {
			backing = pool.NewMmapAllocator(true, log)
		}
		return pool.NewStoragePool(c.effectiveCapacity(size), c.Ring.PoolDepth, backing), nil
	}
	return nil, api.NewError(api.ErrCodeInvalidArgument, "unknown allocator").
		WithContext("allocator", c.Ring.Allocator)
}

// NewRing validates the configuration and builds a ring that owns its storage.
func (c Config) NewRing(log *zap.Logger) (*ring.RingBuffer, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	size, _ := c.Ring.CapacityBytes()
	alloc, err := c.NewAllocator(log)
	if err != nil {
		return nil, err
	}
	return ring.New(size,
		ring.WithPowerOfTwo(c.Ring.PowerOfTwo),
		ring.WithAllocator(alloc),
		ring.WithLogger(log),
	)
}

// effectiveCapacity is the size a ring built from c will request from its
// allocator.
func (c Config) effectiveCapacity(size int) int {
	if c.Ring.PowerOfTwo {
		return ringmath.RoundDownPow2(size)
	}
	return size
}
