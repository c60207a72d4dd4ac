// Package terminal drives a match from a tcell screen
//
// Input decodes keys and mouse clicks into engine intents, HUD draws a
// snapshot scaled onto the cell grid, and App runs the frame loop that ties
// both to an engine. None of it mutates match state directly.
package terminal
