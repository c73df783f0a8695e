package assets

import (
	_ "embed"
	"fmt"
	"io"
	"time"
)

const vocabularyTemplateName = "vocabulary.md.go.tmpl"

//go:embed templates/vocabulary.md.go.tmpl
var fallbackVocabularyTemplate string

// VocabularyTemplate is the top-level data structure for vocabulary templates
type VocabularyTemplate struct {
	Title string
	Date  time.Time
	Words []VocabularyWord
}

// VocabularyWord is a saved word with the meanings found for it
type VocabularyWord struct {
	Spelling        string
	Score           int
	LastPracticedAt time.Time
	Meanings        []VocabularyMeaning
}

type VocabularyMeaning struct {
	PartOfSpeech string
	Definitions  []VocabularyDefinition
	Synonyms     []string
	Antonyms     []string
}

type VocabularyDefinition struct {
	Text     string
	Example  string
	Synonyms []string
	Antonyms []string
}

func WriteVocabulary(output io.Writer, templatePath string, templateData VocabularyTemplate) error {
	tmpl, err := parseTemplateWithFallback(templatePath, vocabularyTemplateName, fallbackVocabularyTemplate)
	if err != nil {
		return fmt.Errorf("parseTemplateWithFallback() > %w", err)
	}
	if err := tmpl.Execute(output, templateData); err != nil {
		return fmt.Errorf("tmpl.Execute() > %w", err)
	}
	return nil
}
