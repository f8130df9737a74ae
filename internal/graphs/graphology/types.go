package graphology

type NodeAttributes struct {
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Size      float64 `json:"size"`
	Label     string  `json:"label"`
	Color     string  `json:"color"`
	Community int     `json:"community"`
}

type Node struct {
	Key        string         `json:"key"`
	Attributes NodeAttributes `json:"attributes"`
}

type EdgeAttributes struct {
	Size   float64 `json:"size"`
	Weight float64 `json:"weight"`
}

type Edge struct {
	Key        string         `json:"key"`
	Source     string         `json:"source"`
	Target     string         `json:"target"`
	Attributes EdgeAttributes `json:"attributes"`
}

type GraphAttributes struct {
	Threshold float64 `json:"threshold"`
}

type Options struct {
	Type       string `json:"type"`
	Multi      bool   `json:"multi"`
	AllowLoops bool   `json:"allowSelfLoops"`
}

// SerializedGraph is graphology's import/export format.
type SerializedGraph struct {
	Attributes GraphAttributes `json:"attributes"`
	Options    Options         `json:"options"`
	Nodes      []Node          `json:"nodes"`
	Edges      []Edge          `json:"edges"`
}
