package graphs

import (
	"encoding/json"
	"os"

	"github.com/psidex/simgraph/internal/simgraph"
)

// JSON defines a FileRenderer that writes the document as indented JSON. This is the
// format downstream visualisation reads.
type JSON struct{}

var _ FileRenderer = JSON{}

func (JSON) RenderToFile(doc *simgraph.Document, filename string) (string, error) {
	filename = filename + ".json"

	jsonData, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", err
	}

	file, err := os.Create(filename)
	if err != nil {
		return "", err
	}
	defer file.Close()

	_, err = file.Write(jsonData)
	if err != nil {
		return "", err
	}

	return filename, nil
}
