// Package generation hosts the course-generation pipeline: provider
// selection, the typed generation operations built from the prompt
// generators, the four-stage course orchestrator and the lesson
// continuation engine.
package generation
