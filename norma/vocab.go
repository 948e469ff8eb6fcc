package norma

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// LoadVocabulary reads a yaml keyword file and merges it over the defaults.
// Lists present in the file replace the default list wholesale; absent lists
// keep their defaults. An empty path returns the defaults untouched.
func LoadVocabulary(path string) (Vocabulary, error) {
	vocab := DefaultVocabulary()
	if path == "" {
		return vocab, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return vocab, errors.Wrap(err, "could not read vocabulary file")
	}

	var override Vocabulary
	if err := yaml.Unmarshal(data, &override); err != nil {
		return vocab, errors.Wrap(err, "could not parse vocabulary file")
	}

	if len(override.Penalty) > 0 {
		vocab.Penalty = override.Penalty
	}
	if len(override.Paragraph) > 0 {
		vocab.Paragraph = override.Paragraph
	}
	if len(override.Article) > 0 {
		vocab.Article = override.Article
	}
	if len(override.Part) > 0 {
		vocab.Part = override.Part
	}
	if len(override.Book) > 0 {
		vocab.Book = override.Book
	}
	if len(override.Title) > 0 {
		vocab.Title = override.Title
	}
	if len(override.Chapter) > 0 {
		vocab.Chapter = override.Chapter
	}
	if len(override.Section) > 0 {
		vocab.Section = override.Section
	}
	if len(override.Subsection) > 0 {
		vocab.Subsection = override.Subsection
	}
	return vocab, nil
}
