// Package triggers groups the built-in triggers. Each subpackage registers
// its trigger with the default registry when imported.
package triggers
