// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Corpus is the nested training corpus document: a list of data entries,
// each holding a list of paragraphs with question-answer annotations.
type Corpus struct {
	// Version is the corpus format version (e.g. "v2.0"). Informational only.
	Version string `json:"version,omitempty"`

	// Data lists the top-level corpus entries in document order.
	Data []CorpusEntry `json:"data"`
}

// CorpusEntry is one top-level entry in the corpus document.
type CorpusEntry struct {
	// Title is the entry title. Paragraphs carry their own titles; this
	// one is not used for extraction.
	Title string `json:"title,omitempty"`

	// Paragraphs lists the passages belonging to this entry.
	Paragraphs []Paragraph `json:"paragraphs"`
}

// Paragraph is a unit of corpus text: a titled passage body with its
// question-answer entries.
type Paragraph struct {
	// Title is the passage title. Required for extraction.
	Title string `json:"title"`

	// Context is the passage body text. Required for extraction.
	Context string `json:"context"`

	// QAs lists the question-answer entries for this passage.
	QAs []QA `json:"qas"`
}

// QA is a single question-answer entry attached to a paragraph.
type QA struct {
	// ID identifies the entry within the corpus.
	ID string `json:"id,omitempty"`

	// Question is the benchmark question text.
	Question string `json:"question"`

	// Answers lists the annotated answers, if any.
	Answers []Answer `json:"answers,omitempty"`
}

// Answer is an annotated answer span within a paragraph's context.
type Answer struct {
	// Text is the answer text.
	Text string `json:"text"`

	// AnswerStart is the byte offset of the answer within the context.
	AnswerStart int `json:"answer_start"`
}

// Card pairs a passage title with a benchmark question. Cards are the
// test-case fixtures consumed by the benchmark harness.
type Card struct {
	// Title is the original (unsanitized) passage title.
	Title string `json:"title" yaml:"title"`

	// Question is the first question associated with the passage. May be empty.
	Question string `json:"question" yaml:"question"`
}
