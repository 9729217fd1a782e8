package model

// Transcription is the paragraph/sentence structure returned by a transcription service.
type Transcription struct {
	Paragraphs []Paragraph
}

type Paragraph struct {
	Sentences []Sentence
}

type Sentence struct {
	Text  string
	Start float64
	End   float64
}

// NewTranscription builds a Transcription from plain sentence texts, one slice per paragraph.
func NewTranscription(paragraphs ...[]string) *Transcription {
	t := &Transcription{Paragraphs: make([]Paragraph, 0, len(paragraphs))}
	for _, sentences := range paragraphs {
		p := Paragraph{Sentences: make([]Sentence, 0, len(sentences))}
		for _, text := range sentences {
			p.Sentences = append(p.Sentences, Sentence{Text: text})
		}
		t.Paragraphs = append(t.Paragraphs, p)
	}
	return t
}

// SentenceCount returns the number of sentences across all paragraphs.
func (t *Transcription) SentenceCount() int {
	if t == nil {
		return 0
	}
	n := 0
	for _, p := range t.Paragraphs {
		n += len(p.Sentences)
	}
	return n
}
