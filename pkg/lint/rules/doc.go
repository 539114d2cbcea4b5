// Package rules contains the built-in lint rules. Importing the package
// registers every rule with the global registry:
//
//	import _ "github.com/dlint-dev/dlint/pkg/lint/rules"
package rules
