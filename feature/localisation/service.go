package localisation

import (
	"strings"
	"sync/atomic"
)

// Service resolves localization keys to display text.
type Service struct {
	texts  map[string]string
	misses atomic.Int64
}

// New creates a Service from key/text pairs. Keys are matched
// case-insensitively and may be given with or without the leading '@'.
func New(texts map[string]string) *Service {
	s := &Service{texts: make(map[string]string, len(texts))}
	for k, v := range texts {
		s.texts[normalizeKey(k)] = v
	}
	return s
}

// Lookup returns the text for key. An unknown key is returned unchanged and
// increments the miss counter.
func (s *Service) Lookup(key string) string {
	if text, ok := s.texts[normalizeKey(key)]; ok {
		return text
	}
	s.misses.Add(1)
	return key
}

// Text resolves value when it is a localization reference ("@key") and
// returns it unchanged otherwise.
func (s *Service) Text(value string) string {
	if !strings.HasPrefix(value, "@") {
		return value
	}
	return s.Lookup(value)
}

// Misses returns how many lookups did not find their key.
func (s *Service) Misses() int64 {
	return s.misses.Load()
}

// Len returns the number of known keys.
func (s *Service) Len() int {
	return len(s.texts)
}

func normalizeKey(key string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(key), "@"))
}
