package config

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"gopkg.in/yaml.v3"
)

// ErrSchema marks documents that parse as YAML but do not match the category
// schema: unknown or missing fields, unknown models, duplicate names.
var ErrSchema = errors.New("config schema violation")

// Load decodes a category mapping. An empty document yields an empty Config.
func Load(r io.Reader) (*Config, error) {
	cfg := New()
	if err := yaml.NewDecoder(r).Decode(cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return New(), nil
		}
		return nil, err
	}
	return cfg, nil
}

// Encode writes cfg as YAML, categories in document order.
func Encode(w io.Writer, cfg *Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return err
	}
	return enc.Close()
}

// per-model document shapes; field order here is the order written on save
type evenDoc struct {
	Model   Model    `yaml:"model"`
	Choices []string `yaml:"choices"`
}

type gaussianDoc struct {
	Model               Model    `yaml:"model"`
	StddevScalingFactor float64  `yaml:"stddev_scaling_factor"`
	Choices             []string `yaml:"choices"`
}

type inventoryDoc struct {
	Model   Model             `yaml:"model"`
	Choices []InventoryChoice `yaml:"choices"`
}

type lotteryDoc struct {
	Model   Model           `yaml:"model"`
	Choices []LotteryChoice `yaml:"choices"`
}

type weightedDoc struct {
	Model   Model            `yaml:"model"`
	Choices []WeightedChoice `yaml:"choices"`
}

func (c *Config) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return schemaError(node, "top level must map category names to categories")
	}
	c.names = nil
	c.categories = make(map[string]Category, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		if _, dup := c.categories[key.Value]; dup {
			return schemaError(key, fmt.Sprintf("duplicate category %q", key.Value))
		}
		cat, err := decodeCategory(value)
		if err != nil {
			return fmt.Errorf("category %q: %w", key.Value, err)
		}
		c.Set(key.Value, cat)
	}
	return nil
}

func (c *Config) MarshalYAML() (any, error) {
	out := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, name := range c.names {
		var key, value yaml.Node
		key.SetString(name)
		if err := value.Encode(c.categories[name]); err != nil {
			return nil, fmt.Errorf("category %q: %w", name, err)
		}
		out.Content = append(out.Content, &key, &value)
	}
	return out, nil
}

func decodeCategory(node *yaml.Node) (Category, error) {
	node = resolveAlias(node)
	if node.Kind != yaml.MappingNode {
		return nil, schemaError(node, "category must be a mapping")
	}
	model, ok := lookup(node, "model")
	if !ok {
		return nil, schemaError(node, `missing field "model"`)
	}

	switch Model(model.Value) {
	case ModelEven, ModelLru:
		if err := checkFields(node, "category", []string{"model", "choices"}, "choices"); err != nil {
			return nil, err
		}
		var doc evenDoc
		if err := node.Decode(&doc); err != nil {
			return nil, err
		}
		if Model(model.Value) == ModelLru {
			return &Lru{Choices: doc.Choices}, nil
		}
		return &Even{Choices: doc.Choices}, nil

	case ModelGaussian:
		if err := checkFields(node, "category", []string{"model", "stddev_scaling_factor", "choices"}, "choices"); err != nil {
			return nil, err
		}
		doc := gaussianDoc{StddevScalingFactor: DefaultStddevScalingFactor}
		if err := node.Decode(&doc); err != nil {
			return nil, err
		}
		return &Gaussian{StddevScalingFactor: doc.StddevScalingFactor, Choices: doc.Choices}, nil

	case ModelInventory:
		if err := checkFields(node, "category", []string{"model", "choices"}, "choices"); err != nil {
			return nil, err
		}
		var doc inventoryDoc
		if err := node.Decode(&doc); err != nil {
			return nil, err
		}
		return &Inventory{Choices: doc.Choices}, nil

	case ModelLottery:
		if err := checkFields(node, "category", []string{"model", "choices"}, "choices"); err != nil {
			return nil, err
		}
		var doc lotteryDoc
		if err := node.Decode(&doc); err != nil {
			return nil, err
		}
		return &Lottery{Choices: doc.Choices}, nil

	case ModelWeighted:
		if err := checkFields(node, "category", []string{"model", "choices"}, "choices"); err != nil {
			return nil, err
		}
		var doc weightedDoc
		if err := node.Decode(&doc); err != nil {
			return nil, err
		}
		return &Weighted{Choices: doc.Choices}, nil
	}
	return nil, schemaError(model, fmt.Sprintf("unknown model %q", model.Value))
}

func (c *Even) MarshalYAML() (any, error) {
	return evenDoc{Model: ModelEven, Choices: c.Choices}, nil
}

func (c *Lru) MarshalYAML() (any, error) {
	return evenDoc{Model: ModelLru, Choices: c.Choices}, nil
}

func (c *Gaussian) MarshalYAML() (any, error) {
	return gaussianDoc{Model: ModelGaussian, StddevScalingFactor: c.StddevScalingFactor, Choices: c.Choices}, nil
}

func (c *Inventory) MarshalYAML() (any, error) {
	return inventoryDoc{Model: ModelInventory, Choices: c.Choices}, nil
}

func (c *Lottery) MarshalYAML() (any, error) {
	return lotteryDoc{Model: ModelLottery, Choices: c.Choices}, nil
}

func (c *Weighted) MarshalYAML() (any, error) {
	return weightedDoc{Model: ModelWeighted, Choices: c.Choices}, nil
}

func (c *InventoryChoice) UnmarshalYAML(node *yaml.Node) error {
	if err := checkFields(node, "inventory choice", []string{"name", "tickets"}, "name"); err != nil {
		return err
	}
	type plain InventoryChoice
	v := plain{Tickets: DefaultTickets}
	if err := node.Decode(&v); err != nil {
		return err
	}
	*c = InventoryChoice(v)
	return nil
}

func (c *LotteryChoice) UnmarshalYAML(node *yaml.Node) error {
	if err := checkFields(node, "lottery choice", []string{"name", "reset", "tickets", "weight"}, "name"); err != nil {
		return err
	}
	type plain LotteryChoice
	v := plain{Reset: DefaultReset, Tickets: DefaultTickets, Weight: DefaultWeight}
	if err := node.Decode(&v); err != nil {
		return err
	}
	*c = LotteryChoice(v)
	return nil
}

func (c *WeightedChoice) UnmarshalYAML(node *yaml.Node) error {
	if err := checkFields(node, "weighted choice", []string{"name", "weight"}, "name"); err != nil {
		return err
	}
	type plain WeightedChoice
	v := plain{Weight: DefaultWeight}
	if err := node.Decode(&v); err != nil {
		return err
	}
	*c = WeightedChoice(v)
	return nil
}

// checkFields enforces the closed schema on a mapping node.
func checkFields(node *yaml.Node, what string, allowed []string, required ...string) error {
	node = resolveAlias(node)
	if node.Kind != yaml.MappingNode {
		return schemaError(node, what+" must be a mapping")
	}
	seen := make(map[string]bool, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i]
		if !slices.Contains(allowed, key.Value) {
			return schemaError(key, fmt.Sprintf("unknown field %q in %s, expected one of %v", key.Value, what, allowed))
		}
		if seen[key.Value] {
			return schemaError(key, fmt.Sprintf("duplicate field %q in %s", key.Value, what))
		}
		seen[key.Value] = true
	}
	for _, field := range required {
		if !seen[field] {
			return schemaError(node, fmt.Sprintf("%s is missing field %q", what, field))
		}
	}
	return nil
}

func lookup(node *yaml.Node, key string) (*yaml.Node, bool) {
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1], true
		}
	}
	return nil, false
}

func resolveAlias(node *yaml.Node) *yaml.Node {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	return node
}

func schemaError(node *yaml.Node, msg string) error {
	return fmt.Errorf("%w: line %d: %s", ErrSchema, node.Line, msg)
}
