package codec

import (
	"fmt"
	"io"

	"notesgraph/internal/domain"

	"gopkg.in/yaml.v3"
)

// YAMLCodec handles YAML import/export using the same keys as the JSON format
type YAMLCodec struct{}

// NewYAMLCodec creates a new YAML codec
func NewYAMLCodec() *YAMLCodec {
	return &YAMLCodec{}
}

// Format returns the codec format identifier
func (c *YAMLCodec) Format() string {
	return "yaml"
}

// yamlDataset represents the YAML structure for a dataset
type yamlDataset struct {
	Nodes []*yamlNode `yaml:"nodes"`
	Links []yamlLink  `yaml:"links"`
}

type yamlNode struct {
	ID          string   `yaml:"id"`
	Title       string   `yaml:"title,omitempty"`
	Description string   `yaml:"description,omitempty"`
	Tags        []string `yaml:"tags,omitempty"`
	Color       string   `yaml:"color,omitempty"`
	URL         string   `yaml:"url,omitempty"`
}

type yamlLink struct {
	Source string   `yaml:"source"`
	Target string   `yaml:"target"`
	Weight *float64 `yaml:"weight,omitempty"`
}

// Parse imports a dataset from YAML
func (c *YAMLCodec) Parse(r io.Reader) (*domain.Dataset, error) {
	var yd yamlDataset
	decoder := yaml.NewDecoder(r)
	if err := decoder.Decode(&yd); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	ds := &domain.Dataset{}

	// Convert nodes
	if yd.Nodes != nil {
		ds.Nodes = make([]*domain.Node, 0, len(yd.Nodes))
		for _, yn := range yd.Nodes {
			if yn == nil {
				ds.Nodes = append(ds.Nodes, nil)
				continue
			}
			ds.Nodes = append(ds.Nodes, &domain.Node{
				ID:          yn.ID,
				Title:       yn.Title,
				Description: yn.Description,
				Tags:        yn.Tags,
				Color:       yn.Color,
				URL:         yn.URL,
			})
		}
	}

	// Convert links
	if yd.Links != nil {
		ds.Links = make([]domain.Link, 0, len(yd.Links))
		for _, yl := range yd.Links {
			ds.Links = append(ds.Links, domain.Link{
				Source: yl.Source,
				Target: yl.Target,
				Weight: yl.Weight,
			})
		}
	}

	return ds, nil
}

// Export exports a dataset to YAML
func (c *YAMLCodec) Export(ds *domain.Dataset, w io.Writer) error {
	yd := yamlDataset{
		Nodes: make([]*yamlNode, 0, len(ds.Nodes)),
		Links: make([]yamlLink, 0, len(ds.Links)),
	}

	for _, n := range ds.Nodes {
		if n == nil {
			continue
		}
		yd.Nodes = append(yd.Nodes, &yamlNode{
			ID:          n.ID,
			Title:       n.Title,
			Description: n.Description,
			Tags:        n.Tags,
			Color:       n.Color,
			URL:         n.URL,
		})
	}

	for _, l := range ds.Links {
		yd.Links = append(yd.Links, yamlLink{
			Source: l.Source,
			Target: l.Target,
			Weight: l.Weight,
		})
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	defer encoder.Close()

	if err := encoder.Encode(&yd); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}

	return nil
}
