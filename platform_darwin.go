package main

// Registers the macOS accessibility backend.
import _ "github.com/mj1618/selection-lens/internal/platform/darwin"
