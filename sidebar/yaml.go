package sidebar

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// The YAML codec round-trips fully-normalized sidebar trees using an explicit
// "type" discriminant on every node. The one shorthand it accepts is a bare
// string, which denotes a Doc with that id; unlike category shorthand or
// autogenerated entries, expanding it needs no context.

// SidebarsFromYAML decodes a sidebar mapping.
func SidebarsFromYAML(data []byte) (Sidebars, error) {
	var s Sidebars
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return s, nil
}

// ItemsFromYAML decodes a single sidebar's item sequence.
func ItemsFromYAML(data []byte) ([]Item, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, err
	}
	if len(node.Content) == 0 {
		return nil, nil
	}
	return decodeItems(node.Content[0])
}

// ItemsToYAML encodes a sidebar's item sequence.
func ItemsToYAML(items []Item) ([]byte, error) {
	return yaml.Marshal(items)
}

// UnmarshalYAML decodes the sidebar-name -> items mapping.
func (s *Sidebars) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: sidebars must be a mapping of sidebar name to items", value.Line)
	}
	out := make(Sidebars, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		var name string
		if err := value.Content[i].Decode(&name); err != nil {
			return fmt.Errorf("line %d: sidebar name: %w", value.Content[i].Line, err)
		}
		items, err := decodeItems(value.Content[i+1])
		if err != nil {
			return fmt.Errorf("sidebar %q: %w", name, err)
		}
		out[name] = items
	}
	*s = out
	return nil
}

func decodeItems(node *yaml.Node) ([]Item, error) {
	if node.Kind == yaml.ScalarNode && node.Tag == "!!null" {
		return nil, nil
	}
	if node.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("line %d: sidebar items must be a sequence", node.Line)
	}
	if len(node.Content) == 0 {
		return nil, nil
	}
	items := make([]Item, 0, len(node.Content))
	for _, child := range node.Content {
		item, err := decodeItem(child)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func decodeItem(node *yaml.Node) (Item, error) {
	// Bare string shorthand for a doc id.
	if node.Kind == yaml.ScalarNode {
		var id string
		if err := node.Decode(&id); err != nil {
			return nil, fmt.Errorf("line %d: sidebar item: %w", node.Line, err)
		}
		if id == "" {
			return nil, fmt.Errorf("line %d: sidebar doc shorthand must not be empty", node.Line)
		}
		return Doc{ID: id}, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: sidebar item must be a string or a mapping", node.Line)
	}

	var head struct {
		Type ItemKind `yaml:"type"`
	}
	if err := node.Decode(&head); err != nil {
		return nil, fmt.Errorf("line %d: sidebar item: %w", node.Line, err)
	}

	switch head.Type {
	case KindDoc, KindRef:
		var raw struct {
			ID    string `yaml:"id"`
			Label string `yaml:"label"`
		}
		if err := node.Decode(&raw); err != nil {
			return nil, fmt.Errorf("line %d: %s item: %w", node.Line, head.Type, err)
		}
		if raw.ID == "" {
			return nil, fmt.Errorf("line %d: %s item requires an id", node.Line, head.Type)
		}
		if head.Type == KindRef {
			return Ref{ID: raw.ID, Label: raw.Label}, nil
		}
		return Doc{ID: raw.ID, Label: raw.Label}, nil

	case KindLink:
		var raw struct {
			Href  string `yaml:"href"`
			Label string `yaml:"label"`
		}
		if err := node.Decode(&raw); err != nil {
			return nil, fmt.Errorf("line %d: link item: %w", node.Line, err)
		}
		if raw.Href == "" {
			return nil, fmt.Errorf("line %d: link item requires an href", node.Line)
		}
		return Link{Href: raw.Href, Label: raw.Label}, nil

	case KindCategory:
		var raw struct {
			Label string    `yaml:"label"`
			Items yaml.Node `yaml:"items"`
			Link  yaml.Node `yaml:"link"`
		}
		if err := node.Decode(&raw); err != nil {
			return nil, fmt.Errorf("line %d: category item: %w", node.Line, err)
		}
		cat := Category{Label: raw.Label}
		if !raw.Items.IsZero() {
			items, err := decodeItems(&raw.Items)
			if err != nil {
				return nil, fmt.Errorf("category %q: %w", raw.Label, err)
			}
			cat.Items = items
		}
		if !raw.Link.IsZero() {
			link, err := decodeCategoryLink(&raw.Link)
			if err != nil {
				return nil, fmt.Errorf("category %q: %w", raw.Label, err)
			}
			cat.Link = link
		}
		return cat, nil

	case "":
		return nil, fmt.Errorf("line %d: sidebar item is missing a type", node.Line)
	default:
		return nil, fmt.Errorf("line %d: unknown sidebar item type %q", node.Line, head.Type)
	}
}

func decodeCategoryLink(node *yaml.Node) (CategoryLink, error) {
	var raw struct {
		Type      CategoryLinkKind `yaml:"type"`
		ID        string           `yaml:"id"`
		Permalink string           `yaml:"permalink"`
	}
	if err := node.Decode(&raw); err != nil {
		return nil, fmt.Errorf("line %d: category link: %w", node.Line, err)
	}
	switch raw.Type {
	case LinkKindDoc:
		if raw.ID == "" {
			return nil, fmt.Errorf("line %d: doc category link requires an id", node.Line)
		}
		return DocLink{ID: raw.ID}, nil
	case LinkKindGeneratedIndex:
		if raw.Permalink == "" {
			return nil, fmt.Errorf("line %d: generated-index category link requires a permalink", node.Line)
		}
		return GeneratedIndexLink{Permalink: raw.Permalink}, nil
	case "":
		return nil, fmt.Errorf("line %d: category link is missing a type", node.Line)
	default:
		return nil, fmt.Errorf("line %d: unknown category link type %q", node.Line, raw.Type)
	}
}

// MarshalYAML encodes the item with its "type" discriminant.
func (d Doc) MarshalYAML() (interface{}, error) {
	return struct {
		Type  ItemKind `yaml:"type"`
		ID    string   `yaml:"id"`
		Label string   `yaml:"label,omitempty"`
	}{KindDoc, d.ID, d.Label}, nil
}

func (r Ref) MarshalYAML() (interface{}, error) {
	return struct {
		Type  ItemKind `yaml:"type"`
		ID    string   `yaml:"id"`
		Label string   `yaml:"label,omitempty"`
	}{KindRef, r.ID, r.Label}, nil
}

func (l Link) MarshalYAML() (interface{}, error) {
	return struct {
		Type  ItemKind `yaml:"type"`
		Href  string   `yaml:"href"`
		Label string   `yaml:"label"`
	}{KindLink, l.Href, l.Label}, nil
}

func (c Category) MarshalYAML() (interface{}, error) {
	return struct {
		Type  ItemKind     `yaml:"type"`
		Label string       `yaml:"label"`
		Items []Item       `yaml:"items"`
		Link  CategoryLink `yaml:"link,omitempty"`
	}{KindCategory, c.Label, c.Items, c.Link}, nil
}

func (l DocLink) MarshalYAML() (interface{}, error) {
	return struct {
		Type CategoryLinkKind `yaml:"type"`
		ID   string           `yaml:"id"`
	}{LinkKindDoc, l.ID}, nil
}

func (g GeneratedIndexLink) MarshalYAML() (interface{}, error) {
	return struct {
		Type      CategoryLinkKind `yaml:"type"`
		Permalink string           `yaml:"permalink"`
	}{LinkKindGeneratedIndex, g.Permalink}, nil
}
