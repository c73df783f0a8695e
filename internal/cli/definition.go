package cli

import (
	"fmt"
	"strings"

	"github.com/at-ishikawa/lexiquiz/internal/lexicon"
)

// PrintEntry shows every meaning of the entry grouped by part of speech.
func (cli *InteractiveQuizCLI) PrintEntry(entry lexicon.Entry) {
	_, _ = fmt.Fprintf(cli.stdoutWriter, "Showing definition for '%s':\n", cli.bold.Sprint(entry.Word))
	for _, meaning := range entry.Meanings {
		_, _ = fmt.Fprintf(cli.stdoutWriter, "    %s:\n", cli.italic.Sprint(meaning.PartOfSpeech))
		for _, definition := range meaning.Definitions {
			_, _ = fmt.Fprintf(cli.stdoutWriter, "        %s\n", definition.Text)
			if definition.Example != "" {
				_, _ = fmt.Fprintf(cli.stdoutWriter, "          example: %s\n", definition.Example)
			}
			if len(definition.Synonyms) > 0 {
				_, _ = fmt.Fprintf(cli.stdoutWriter, "          synonyms: %s\n", strings.Join(definition.Synonyms, ", "))
			}
			if len(definition.Antonyms) > 0 {
				_, _ = fmt.Fprintf(cli.stdoutWriter, "          antonyms: %s\n", strings.Join(definition.Antonyms, ", "))
			}
		}
		if len(meaning.Synonyms) > 0 {
			_, _ = fmt.Fprintf(cli.stdoutWriter, "      synonyms: %s\n", strings.Join(meaning.Synonyms, ", "))
		}
		if len(meaning.Antonyms) > 0 {
			_, _ = fmt.Fprintf(cli.stdoutWriter, "      antonyms: %s\n", strings.Join(meaning.Antonyms, ", "))
		}
	}
}
