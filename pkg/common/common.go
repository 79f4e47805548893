package common

// DescriptionMarkdown simply allows for getting markdown text.
type DescriptionMarkdown interface {
	DescriptionMarkdown() string
}

// State is a shared state for an entire generation run.
// Runs are sequential, it is not safe for concurrent use.
type State struct {
	written   map[string][]string
	processed []string
}

// Record stores the paths written for an identifier.
func (s *State) Record(identifier string, paths []string) {
	if s.written == nil {
		s.written = make(map[string][]string)
	}

	if _, ok := s.written[identifier]; !ok {
		s.processed = append(s.processed, identifier)
	}

	s.written[identifier] = append(s.written[identifier], paths...)
}

// Processed returns the identifiers in the order they were recorded.
func (s *State) Processed() []string {
	return append([]string(nil), s.processed...)
}

// Written returns the paths written for the identifier.
func (s *State) Written(identifier string) []string {
	return append([]string(nil), s.written[identifier]...)
}

// ContextKey is a custom key type for contexts
type ContextKey string

// Context key values
const (
	ContextState ContextKey = "state"
)

// StateFrom returns the state stored in the context values, if any.
func StateFrom(value interface{}) *State {
	s, _ := value.(*State)
	return s
}
