package ner

import (
	"fmt"

	"github.com/jdkato/prose/v2"
)

// EntityRecognizer yields the surface text of every named entity found in a
// document, in document order. Lets tests stub the model pass.
type EntityRecognizer interface {
	Entities(text string) ([]string, error)
}

// ProseRecognizer backs EntityRecognizer with the prose NLP pipeline.
// Stateless and safe for concurrent use.
type ProseRecognizer struct{}

func NewProseRecognizer() ProseRecognizer {
	return ProseRecognizer{}
}

func (ProseRecognizer) Entities(text string) ([]string, error) {
	doc, err := prose.NewDocument(text)
	if err != nil {
		return nil, fmt.Errorf("ner: build document: %w", err)
	}
	ents := doc.Entities()
	out := make([]string, 0, len(ents))
	for _, e := range ents {
		out = append(out, e.Text)
	}
	return out, nil
}
