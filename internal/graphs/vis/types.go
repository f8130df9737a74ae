package vis

// nodeData is a vis.js node. Positions are fixed, the network has physics off.
type nodeData struct {
	ID    int     `json:"id"`
	Label string  `json:"label"`
	Title string  `json:"title"`
	Group int     `json:"group"`
	Color string  `json:"color"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
}

// edgeData is a vis.js edge; value drives the edge width through scaling.
type edgeData struct {
	From  int     `json:"from"`
	To    int     `json:"to"`
	Value float64 `json:"value"`
	Title string  `json:"title"`
}
