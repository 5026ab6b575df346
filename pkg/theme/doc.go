// Package theme provides the shadcn color tokens, sizing metrics and
// per-component defaults, plus a YAML loader for custom themes.
//
// Install a theme for a context with Use; widgets read it with Of and
// the XxxThemeOf accessors.
package theme
