package renderer

import "github.com/jpeterson-dev/wray/pkg/core"

// Config is the renderer's own default implementation of core.Config,
// populated from CLI flags or set directly by callers and otherwise left
// at conservative defaults.
type Config struct {
	MaxRecursionDepth int
	ThreshVal         float64
	NumThreads        int
	Block             int
	Samples           int
	AAThresh          float64
	UseKD             bool
	KDMaxDepth        int
	KDLeafSize        int
	Cube              core.CubeMap
	Logger            core.Logger
}

// DefaultConfig returns sensible defaults matching the values the
// source ships with.
func DefaultConfig() *Config {
	return &Config{
		MaxRecursionDepth: 5,
		ThreshVal:         0.001,
		NumThreads:        1,
		Block:             8,
		Samples:           0,
		AAThresh:          0.1,
		UseKD:             true,
		KDMaxDepth:        20,
		KDLeafSize:        8,
	}
}

func (c *Config) Depth() int           { return c.MaxRecursionDepth }
func (c *Config) Threshold() float64   { return c.ThreshVal }
func (c *Config) Threads() int         { return c.NumThreads }
func (c *Config) BlockSize() int       { return c.Block }
func (c *Config) SuperSamples() int    { return c.Samples }
func (c *Config) AAThreshold() float64 { return c.AAThresh }
func (c *Config) KDSwitch() bool       { return c.UseKD }
func (c *Config) MaxDepth() int        { return c.KDMaxDepth }
func (c *Config) LeafSize() int        { return c.KDLeafSize }
func (c *Config) GetCubeMap() core.CubeMap { return c.Cube }

func (c *Config) Alert(msg string) {
	if c.Logger != nil {
		c.Logger.Printf("%s", msg)
	}
}
