package config

import "slices"

// Model names the selection algorithm of a category. It is the value of the
// "model" key in the YAML document.
type Model string

const (
	ModelEven      Model = "even"
	ModelGaussian  Model = "gaussian"
	ModelInventory Model = "inventory"
	ModelLru       Model = "lru"
	ModelLottery   Model = "lottery"
	ModelWeighted  Model = "weighted"
)

// Defaults applied to fields missing from the YAML document.
const (
	DefaultStddevScalingFactor = 3.0
	DefaultWeight              = 1
	DefaultTickets             = 1
	DefaultReset               = 0
)

// Category is a pickable list of choices plus the bookkeeping its model needs.
// The set of implementations is closed: *Even, *Gaussian, *Inventory, *Lru,
// *Lottery and *Weighted.
type Category interface {
	Model() Model
	// Len reports how many choices the category holds.
	Len() int
	// Clone returns a deep copy.
	Clone() Category

	sealed()
}

// Even picks every choice with the same probability.
type Even struct {
	Choices []string
}

// Gaussian prefers choices near the front of the list. An accepted choice
// moves to the back. The standard deviation is len(Choices) divided by
// StddevScalingFactor.
type Gaussian struct {
	StddevScalingFactor float64
	Choices             []string
}

// Inventory draws by ticket count and spends one ticket per accepted pick.
type Inventory struct {
	Choices []InventoryChoice
}

// Lru offers the least recently used choice first. The front of Choices is
// the oldest entry.
type Lru struct {
	Choices []string
}

// Lottery draws by ticket count. Each accepted pick gives every choice its
// Weight in new tickets, then resets the winner to its Reset value.
type Lottery struct {
	Choices []LotteryChoice
}

// Weighted is a plain weighted distribution.
type Weighted struct {
	Choices []WeightedChoice
}

type InventoryChoice struct {
	Name    string `yaml:"name"`
	Tickets uint64 `yaml:"tickets"`
}

type LotteryChoice struct {
	Name string `yaml:"name"`
	// Reset is the ticket count the choice gets after it wins.
	Reset uint64 `yaml:"reset"`
	// Tickets is the current draw weight.
	Tickets uint64 `yaml:"tickets"`
	// Weight is added to Tickets after every pick.
	Weight uint64 `yaml:"weight"`
}

type WeightedChoice struct {
	Name   string `yaml:"name"`
	Weight uint64 `yaml:"weight"`
}

func (*Even) Model() Model      { return ModelEven }
func (*Gaussian) Model() Model  { return ModelGaussian }
func (*Inventory) Model() Model { return ModelInventory }
func (*Lru) Model() Model       { return ModelLru }
func (*Lottery) Model() Model   { return ModelLottery }
func (*Weighted) Model() Model  { return ModelWeighted }

func (c *Even) Len() int      { return len(c.Choices) }
func (c *Gaussian) Len() int  { return len(c.Choices) }
func (c *Inventory) Len() int { return len(c.Choices) }
func (c *Lru) Len() int       { return len(c.Choices) }
func (c *Lottery) Len() int   { return len(c.Choices) }
func (c *Weighted) Len() int  { return len(c.Choices) }

func (c *Even) Clone() Category { return &Even{Choices: slices.Clone(c.Choices)} }
func (c *Gaussian) Clone() Category {
	return &Gaussian{StddevScalingFactor: c.StddevScalingFactor, Choices: slices.Clone(c.Choices)}
}
func (c *Inventory) Clone() Category { return &Inventory{Choices: slices.Clone(c.Choices)} }
func (c *Lru) Clone() Category       { return &Lru{Choices: slices.Clone(c.Choices)} }
func (c *Lottery) Clone() Category   { return &Lottery{Choices: slices.Clone(c.Choices)} }
func (c *Weighted) Clone() Category  { return &Weighted{Choices: slices.Clone(c.Choices)} }

func (*Even) sealed()      {}
func (*Gaussian) sealed()  {}
func (*Inventory) sealed() {}
func (*Lru) sealed()       {}
func (*Lottery) sealed()   {}
func (*Weighted) sealed()  {}

// Config maps category names to categories. It remembers insertion order so
// that a load/save cycle writes categories back in the order they were read.
type Config struct {
	names      []string
	categories map[string]Category
}

// New returns an empty Config.
func New() *Config {
	return &Config{categories: make(map[string]Category)}
}

// Get returns the named category.
func (c *Config) Get(name string) (Category, bool) {
	cat, ok := c.categories[name]
	return cat, ok
}

// Set adds or replaces a category. New names are appended to the order.
func (c *Config) Set(name string, cat Category) {
	if c.categories == nil {
		c.categories = make(map[string]Category)
	}
	if _, ok := c.categories[name]; !ok {
		c.names = append(c.names, name)
	}
	c.categories[name] = cat
}

// Names returns category names in document order.
func (c *Config) Names() []string { return slices.Clone(c.names) }

func (c *Config) Len() int { return len(c.names) }
