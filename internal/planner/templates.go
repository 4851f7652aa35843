package planner

import (
	"sort"
	"strings"
	"sync"

	"github.com/kozaktomas/content-planner/internal/ai"
)

// TemplateStore keeps user-defined prompt templates for the current session.
// In-memory only; templates do not survive a restart.
type TemplateStore struct {
	mu        sync.RWMutex
	templates map[string]string
}

func NewTemplateStore() *TemplateStore {
	return &TemplateStore{
		templates: make(map[string]string),
	}
}

// Save stores or replaces a template under a name.
func (s *TemplateStore) Save(name, body string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return &ai.Error{Kind: ai.KindValidation, Message: "template name is required"}
	}
	if strings.TrimSpace(body) == "" {
		return &ai.Error{Kind: ai.KindValidation, Message: "template body is required"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.templates[name] = body
	return nil
}

// Get returns a template body by name.
func (s *TemplateStore) Get(name string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	body, ok := s.templates[name]
	return body, ok
}

// Delete removes a template, reporting whether it existed.
func (s *TemplateStore) Delete(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.templates[name]; !ok {
		return false
	}
	delete(s.templates, name)
	return true
}

// List returns template names in sorted order.
func (s *TemplateStore) List() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.templates))
	for name := range s.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
