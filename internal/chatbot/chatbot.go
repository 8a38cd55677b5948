// Package chatbot answers sleep questions from a fixed knowledge base using
// exact question lookup followed by ordered keyword rules.
package chatbot

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed knowledge.yaml
var defaultKnowledgeYAML []byte

var ErrInvalidKnowledge = errors.New("invalid chatbot knowledge base")

type MatchKind string

const (
	MatchExact    MatchKind = "exact"
	MatchKeyword  MatchKind = "keyword"
	MatchFallback MatchKind = "fallback"
)

type Entry struct {
	Question    string   `yaml:"question"`
	Answer      string   `yaml:"answer"`
	Suggestions []string `yaml:"suggestions"`
}

type Rule struct {
	Name   string     `yaml:"name"`
	AllOf  [][]string `yaml:"all_of"`
	Target string     `yaml:"target"`
}

func (r Rule) matches(lower string) bool {
	for _, group := range r.AllOf {
		hit := false
		for _, kw := range group {
			if strings.Contains(lower, kw) {
				hit = true
				break
			}
		}
		if !hit {
			return false
		}
	}
	return true
}

// Reply is the answer chosen for a message.
type Reply struct {
	Answer      string
	Suggestions []string
	Match       MatchKind
	Rule        string
}

type KnowledgeBase struct {
	Entries  []Entry `yaml:"entries"`
	Rules    []Rule  `yaml:"rules"`
	Fallback Entry   `yaml:"fallback"`

	byQuestion map[string]Entry
}

func Default() (*KnowledgeBase, error) {
	return Parse(defaultKnowledgeYAML)
}

// Load reads a knowledge base from path, or the embedded one when path is empty.
func Load(path string) (*KnowledgeBase, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read chatbot knowledge: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*KnowledgeBase, error) {
	var kb KnowledgeBase
	if err := yaml.Unmarshal(data, &kb); err != nil {
		return nil, fmt.Errorf("failed to parse chatbot knowledge: %w", err)
	}

	kb.byQuestion = make(map[string]Entry, len(kb.Entries))
	for _, e := range kb.Entries {
		if e.Question == "" || e.Answer == "" {
			return nil, fmt.Errorf("%w: entry without question or answer", ErrInvalidKnowledge)
		}
		kb.byQuestion[e.Question] = e
	}
	if kb.Fallback.Answer == "" {
		return nil, fmt.Errorf("%w: missing fallback answer", ErrInvalidKnowledge)
	}

	for i, r := range kb.Rules {
		if _, ok := kb.byQuestion[r.Target]; !ok {
			return nil, fmt.Errorf("%w: rule %q targets unknown question %q", ErrInvalidKnowledge, r.Name, r.Target)
		}
		if len(r.AllOf) == 0 {
			return nil, fmt.Errorf("%w: rule %q has no keywords", ErrInvalidKnowledge, r.Name)
		}
		for g, group := range r.AllOf {
			if len(group) == 0 {
				return nil, fmt.Errorf("%w: rule %q has an empty keyword group", ErrInvalidKnowledge, r.Name)
			}
			for k, kw := range group {
				kb.Rules[i].AllOf[g][k] = strings.ToLower(kw)
			}
		}
	}
	return &kb, nil
}

// Respond never fails: unmatched messages get the fallback entry.
func (kb *KnowledgeBase) Respond(message string) Reply {
	if e, ok := kb.byQuestion[message]; ok {
		return newReply(e, MatchExact, "")
	}

	lower := strings.ToLower(message)
	for _, r := range kb.Rules {
		if r.matches(lower) {
			return newReply(kb.byQuestion[r.Target], MatchKeyword, r.Name)
		}
	}
	return newReply(kb.Fallback, MatchFallback, "")
}

// Questions lists the known questions in file order.
func (kb *KnowledgeBase) Questions() []string {
	out := make([]string, len(kb.Entries))
	for i, e := range kb.Entries {
		out[i] = e.Question
	}
	return out
}

func newReply(e Entry, kind MatchKind, rule string) Reply {
	suggestions := make([]string, len(e.Suggestions))
	copy(suggestions, e.Suggestions)
	return Reply{
		Answer:      e.Answer,
		Suggestions: suggestions,
		Match:       kind,
		Rule:        rule,
	}
}
