// Package tutorial registers a short introductory level pack defined in YAML.
package tutorial

import (
	_ "embed"

	"github.com/vovakirdan/tui-platformer/internal/phase"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

// Name is the registry key of this pack.
const Name = "tutorial"

//go:embed tutorial.yaml
var tutorialYAML []byte

// Catalog parses the embedded pack. Panics if the embedded file is broken,
// which can only happen at build time.
func Catalog() phase.Catalog {
	cat, err := phase.Parse(tutorialYAML)
	if err != nil {
		panic(err)
	}
	return cat
}

func init() {
	registry.Register(Name, Catalog)
}
