// Package orchestrator wires panel configuration, renderers and link helpers
// into a single Generate call. Defaults cover the common case (vanilla
// renderer, embedded templates, translations taken from the loaded panel
// documents) while every collaborator can be injected.
package orchestrator
