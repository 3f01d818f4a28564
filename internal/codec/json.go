package codec

import (
	"encoding/json"
	"fmt"
	"io"

	"notesgraph/internal/domain"
)

// JSONCodec handles JSON import/export
type JSONCodec struct{}

// NewJSONCodec creates a new JSON codec
func NewJSONCodec() *JSONCodec {
	return &JSONCodec{}
}

// Format returns the codec format identifier
func (c *JSONCodec) Format() string {
	return "json"
}

// jsonNode keeps simulation state out of the wire format
type jsonNode struct {
	ID          string   `json:"id"`
	Title       string   `json:"title,omitempty"`
	Description string   `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Color       string   `json:"color,omitempty"`
	URL         string   `json:"url,omitempty"`
}

type jsonDataset struct {
	Nodes []*jsonNode   `json:"nodes"`
	Links []domain.Link `json:"links"`
}

// Parse imports a dataset from JSON. Missing arrays stay nil so validation
// can tell them apart from empty ones.
func (c *JSONCodec) Parse(r io.Reader) (*domain.Dataset, error) {
	var jd jsonDataset
	decoder := json.NewDecoder(r)
	if err := decoder.Decode(&jd); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	ds := &domain.Dataset{Links: jd.Links}
	if jd.Nodes != nil {
		ds.Nodes = make([]*domain.Node, 0, len(jd.Nodes))
		for _, jn := range jd.Nodes {
			if jn == nil {
				ds.Nodes = append(ds.Nodes, nil)
				continue
			}
			ds.Nodes = append(ds.Nodes, &domain.Node{
				ID:          jn.ID,
				Title:       jn.Title,
				Description: jn.Description,
				Tags:        jn.Tags,
				Color:       jn.Color,
				URL:         jn.URL,
			})
		}
	}

	return ds, nil
}

// Export exports a dataset to JSON
func (c *JSONCodec) Export(ds *domain.Dataset, w io.Writer) error {
	jd := jsonDataset{
		Nodes: make([]*jsonNode, 0, len(ds.Nodes)),
		Links: make([]domain.Link, 0, len(ds.Links)),
	}
	for _, n := range ds.Nodes {
		if n == nil {
			continue
		}
		jd.Nodes = append(jd.Nodes, &jsonNode{
			ID:          n.ID,
			Title:       n.Title,
			Description: n.Description,
			Tags:        n.Tags,
			Color:       n.Color,
			URL:         n.URL,
		})
	}
	jd.Links = append(jd.Links, ds.Links...)

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(jd); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	return nil
}
