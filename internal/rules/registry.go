package rules

// Registry holds rules in evaluation order
type Registry struct {
	rules []Rule
}

// NewRegistry creates a new rule registry
func NewRegistry() *Registry {
	return &Registry{
		rules: make([]Rule, 0),
	}
}

// Register appends a rule; registration order is evaluation order
func (r *Registry) Register(rule Rule) {
	r.rules = append(r.rules, rule)
}

// Rules returns all registered rules in evaluation order
func (r *Registry) Rules() []Rule {
	return r.rules
}

// Get returns a rule by name
func (r *Registry) Get(name string) Rule {
	for _, rule := range r.rules {
		if rule.Name() == name {
			return rule
		}
	}
	return nil
}

var defaultRegistry = newDefaultRegistry()

// DefaultRegistry returns the shared registry of built-in rules. It is
// never mutated after package init and is safe for concurrent use.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

func newDefaultRegistry() *Registry {
	r := NewRegistry()

	// Order is part of the output: recommendations follow it
	r.Register(&ComplexityRule{})
	r.Register(&NestingRule{})
	r.Register(&CommentDensityRule{})
	r.Register(&LargeBlockRule{})
	r.Register(&EffortRule{})

	return r
}
