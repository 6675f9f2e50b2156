package model

// FlatElement is an element with a path breadcrumb instead of children.
type FlatElement struct {
	ID         int64  `yaml:"i"            json:"i"`
	Type       string `yaml:"t"            json:"t"`
	Layout     string `yaml:"l,omitempty"  json:"l,omitempty"`
	Name       string `yaml:"n,omitempty"  json:"n,omitempty"`
	Window     int64  `yaml:"w,omitempty"  json:"w,omitempty"`
	Bounds     [4]int `yaml:"b"            json:"b"`
	Focused    bool   `yaml:"f,omitempty"  json:"f,omitempty"`
	Fullscreen bool   `yaml:"fs,omitempty" json:"fs,omitempty"`
	Floating   bool   `yaml:"fl,omitempty" json:"fl,omitempty"`
	Path       string `yaml:"p,omitempty"  json:"p,omitempty"`
}

// FlattenElements converts a tree of elements into a flat list.
// Each element gets a path string showing its ancestors joined with " > ".
// Outputs and workspaces appear by name, other containers by layout.
func FlattenElements(elements []Element) []FlatElement {
	var result []FlatElement
	for _, el := range elements {
		flattenRecursive(el, "", &result)
	}
	return result
}

func flattenRecursive(el Element, parentPath string, result *[]FlatElement) {
	currentPath := segment(el)
	if parentPath != "" {
		currentPath = parentPath + " > " + currentPath
	}

	*result = append(*result, FlatElement{
		ID:         el.ID,
		Type:       el.Type,
		Layout:     el.Layout,
		Name:       el.Name,
		Window:     el.Window,
		Bounds:     el.Bounds,
		Focused:    el.Focused,
		Fullscreen: el.Fullscreen,
		Floating:   el.Floating,
		Path:       currentPath,
	})

	for _, child := range el.Children {
		flattenRecursive(child, currentPath, result)
	}
}

func segment(el Element) string {
	switch {
	case (el.Type == "output" || el.Type == "workspace") && el.Name != "":
		return el.Type + ":" + el.Name
	case el.Layout != "":
		return el.Layout
	default:
		return el.Type
	}
}
