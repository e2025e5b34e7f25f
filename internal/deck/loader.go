package deck

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"
)

// Card is a single question loaded from a deck file.
type Card struct {
	Prompt  string   `yaml:"question"`
	Options []string `yaml:"options"`
	Answer  string   `yaml:"answer"`
	Topic   string   `yaml:"-"`
	Source  string   `yaml:"-"`
}

var separatorRe = regexp.MustCompile(`(?m)^-{3,}[ \t]*$`)

// LoadCards loads cards from a list of paths (files or directories).
func LoadCards(paths []string) ([]Card, error) {
	var cards []Card

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("failed to access path %s: %w", path, err)
		}

		if !info.IsDir() {
			c, err := loadFile(path)
			if err != nil {
				return nil, err
			}
			cards = append(cards, c...)
			continue
		}

		files, err := os.ReadDir(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read dir %s: %w", path, err)
		}
		for _, entry := range files {
			if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
				continue
			}
			c, err := loadFile(filepath.Join(path, entry.Name()))
			if err != nil {
				return nil, err
			}
			cards = append(cards, c...)
		}
	}

	return cards, nil
}

// GroupByTopic returns the cards of each topic in load order.
func GroupByTopic(cards []Card) map[string][]Card {
	topics := make(map[string][]Card)
	for _, c := range cards {
		topics[c.Topic] = append(topics[c.Topic], c)
	}
	return topics
}

func loadFile(path string) ([]Card, error) {
	var (
		cards []Card
		err   error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		cards, err = loadYAML(path)
	default:
		cards, err = loadText(path)
	}
	if err != nil {
		return nil, err
	}

	topic := TopicFromPath(path)
	for i := range cards {
		cards[i].Topic = topic
		cards[i].Source = path
		if err := cards[i].validate(); err != nil {
			return nil, fmt.Errorf("%s card #%d: %w", path, i+1, err)
		}
	}
	return cards, nil
}

func loadYAML(path string) ([]Card, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	var cards []Card
	if err := yaml.Unmarshal(data, &cards); err != nil {
		return nil, fmt.Errorf("failed to decode deck %s: %w", path, err)
	}
	return cards, nil
}

func loadText(path string) ([]Card, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", path, err)
	}
	defer file.Close()

	var contentBuilder strings.Builder
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		contentBuilder.WriteString(scanner.Text() + "\n")
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan file %s: %w", path, err)
	}

	var cards []Card
	for _, part := range separatorRe.Split(contentBuilder.String(), -1) {
		trimmed := strings.TrimSpace(part)
		if len(trimmed) == 0 {
			continue
		}
		cards = append(cards, parseCard(trimmed))
	}
	return cards, nil
}

// parseCard reads a prompt line followed by one option per line.
// The correct option is prefixed with "* ".
func parseCard(text string) Card {
	var c Card
	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if i == 0 {
			c.Prompt = line
			continue
		}
		if rest, ok := strings.CutPrefix(line, "* "); ok {
			rest = strings.TrimSpace(rest)
			if c.Answer != "" {
				// Two marked options; validate rejects it.
				c.Answer = "\x00"
			} else {
				c.Answer = rest
			}
			c.Options = append(c.Options, rest)
			continue
		}
		c.Options = append(c.Options, line)
	}
	return c
}

func (c Card) validate() error {
	if c.Prompt == "" {
		return fmt.Errorf("missing question")
	}
	if len(c.Options) < 2 {
		return fmt.Errorf("need at least two options, got %d", len(c.Options))
	}
	matches := 0
	for _, o := range c.Options {
		if o == c.Answer {
			matches++
		}
	}
	if matches != 1 {
		return fmt.Errorf("need exactly one correct option")
	}
	return nil
}

// TopicFromPath derives a game type name from a deck file name,
// e.g. "worldCapitals2.txt" becomes "World Capitals 2".
func TopicFromPath(path string) string {
	base := filepath.Base(path)
	return titleCaseToTitle(strings.TrimSuffix(base, filepath.Ext(base)))
}

func capitalize(word string) string {
	if len(word) == 0 {
		return word
	}
	r := []rune(word)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

func titleCaseToTitle(input string) string {
	var result strings.Builder
	lastCharType := 0 // 0: none, 1: letter, 2: digit
	runes := []rune(input)

	for i, r := range runes {
		if r == '_' || r == '-' {
			result.WriteRune(' ')
			lastCharType = 0
			continue
		}

		currentCharType := 0
		if unicode.IsLetter(r) {
			currentCharType = 1
		} else if unicode.IsDigit(r) {
			currentCharType = 2
		}

		if i > 0 && ((lastCharType == 1 && currentCharType == 2) || (lastCharType == 2 && currentCharType == 1) || (unicode.IsUpper(r) && unicode.IsLower(runes[i-1]))) {
			result.WriteRune(' ')
		}
		result.WriteRune(r)
		lastCharType = currentCharType
	}

	// Capitalize each word
	words := strings.Fields(result.String())
	for i, word := range words {
		words[i] = capitalize(word)
	}

	return strings.Join(words, " ")
}
