package tui

// StatusMsg updates the status bar text
type StatusMsg string
