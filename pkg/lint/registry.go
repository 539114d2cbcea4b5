package lint

import "sync"

// globalRegistry is the single global registry for all lint rules.
var globalRegistry = &Registry{
	byCode: make(map[string]Rule),
}

// Registry stores registered lint rules for discovery. Registration order
// is preserved: hosts iterate rule sets in the order rules registered, and
// diagnostics are grouped per rule in that order.
type Registry struct {
	mu     sync.RWMutex
	order  []string
	byCode map[string]Rule
}

// Register adds a rule definition to the global registry.
// Call this from init() functions in rule packages.
func Register(def RuleDef) {
	RegisterRule(WrapRuleDef(def))
}

// RegisterRule adds a rule to the global registry. Re-registering a code
// replaces the rule but keeps its original position.
func RegisterRule(rule Rule) {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	code := rule.Code()
	if _, exists := globalRegistry.byCode[code]; !exists {
		globalRegistry.order = append(globalRegistry.order, code)
	}
	globalRegistry.byCode[code] = rule
}

// All returns all registered rules in registration order.
func All() []Rule {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()

	rules := make([]Rule, 0, len(globalRegistry.order))
	for _, code := range globalRegistry.order {
		rules = append(rules, globalRegistry.byCode[code])
	}
	return rules
}

// GetByCode returns a rule by its code.
func GetByCode(code string) (Rule, bool) {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	rule, ok := globalRegistry.byCode[code]
	return rule, ok
}

// GetByTag returns all rules carrying the tag, in registration order.
func GetByTag(tag string) []Rule {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()

	var rules []Rule
	for _, code := range globalRegistry.order {
		rule := globalRegistry.byCode[code]
		for _, t := range rule.Tags() {
			if t == tag {
				rules = append(rules, rule)
				break
			}
		}
	}
	return rules
}

// Codes returns all registered rule codes in registration order.
func Codes() []string {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	codes := make([]string, len(globalRegistry.order))
	copy(codes, globalRegistry.order)
	return codes
}

// AllRules returns metadata for all registered rules in registration order.
func AllRules() []RuleInfo {
	rules := All()
	infos := make([]RuleInfo, 0, len(rules))
	for _, rule := range rules {
		infos = append(infos, GetRuleInfo(rule))
	}
	return infos
}

// Count returns the number of registered rules.
func Count() int {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	return len(globalRegistry.order)
}

// Clear removes all registered rules. Used for testing.
func Clear() {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	globalRegistry.order = nil
	globalRegistry.byCode = make(map[string]Rule)
}
