package datasync

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/at-ishikawa/lexiquiz/internal/vocabulary"
)

// VocabularyFileName is the file YAMLVocabularySink writes, and the one import reads by default.
const VocabularyFileName = "vocabulary.yml"

// YAMLVocabularySink writes saved words to a YAML file.
type YAMLVocabularySink struct {
	outputDir string
}

// NewYAMLVocabularySink creates a new YAMLVocabularySink.
func NewYAMLVocabularySink(outputDir string) *YAMLVocabularySink {
	return &YAMLVocabularySink{outputDir: outputDir}
}

// WriteAll writes the words to vocabulary.yml and returns its path.
func (s *YAMLVocabularySink) WriteAll(records []vocabulary.Record) (string, error) {
	if err := os.MkdirAll(s.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	path := filepath.Join(s.outputDir, VocabularyFileName)
	if err := writeYAML(path, ToVocabularyWords(records)); err != nil {
		return "", fmt.Errorf("write %s: %w", VocabularyFileName, err)
	}
	return path, nil
}

func writeYAML(path string, data interface{}) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	enc := yaml.NewEncoder(f)
	defer func() { _ = enc.Close() }()
	return enc.Encode(data)
}
