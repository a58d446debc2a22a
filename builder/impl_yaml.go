// SPDX-License-Identifier: MIT
// Package: minpath/builder
//
// impl_yaml.go - FromYAML constructor.
//
// Document shape (YAML or JSON):
//
//	vertices: [A, B, C, Z]   # optional; lists isolated vertices
//	edges:
//	  - {from: A, to: B, weight: 4}
//	  - {from: B, to: C, weight: 1}
//
// Vertices are added first in document order, then edges in document order.

package builder

import (
	"fmt"

	"github.com/ghodss/yaml"

	"github.com/katalvlaran/minpath/core"
)

const methodFromYAML = "FromYAML"

// Document is the decoded form accepted by FromYAML.
type Document struct {
	Vertices []string       `json:"vertices,omitempty"`
	Edges    []WeightedEdge `json:"edges"`
}

// ParseDocument decodes a YAML or JSON graph document.
func ParseDocument(doc []byte) (*Document, error) {
	var d Document
	if err := yaml.Unmarshal(doc, &d); err != nil {
		return nil, fmt.Errorf("%s: %w: %v", methodFromYAML, ErrBadDocument, err)
	}

	return &d, nil
}

// FromYAML returns a Constructor that decodes doc and applies its vertices
// and edges. Decoding happens when the constructor runs, so a bad document
// surfaces from BuildGraph as ErrBadDocument.
func FromYAML(doc []byte) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		d, err := ParseDocument(doc)
		if err != nil {
			return err
		}
		for i, id := range d.Vertices {
			if err = g.AddVertex(id); err != nil {
				return fmt.Errorf("%s: vertices[%d]: %w: %w", methodFromYAML, i, ErrBadDocument, err)
			}
		}
		for i, e := range d.Edges {
			if _, err = g.AddEdge(e.From, e.To, e.Weight); err != nil {
				return fmt.Errorf("%s: edges[%d] %s—%s: %w: %w", methodFromYAML, i, e.From, e.To, ErrBadDocument, err)
			}
		}

		return nil
	}
}
