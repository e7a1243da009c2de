//go:build raylib

package main

import (
	"runtime"

	// Register the window backend
	_ "github.com/vovakirdan/tui-snake/internal/platform/raylib"
)

func init() {
	// raylib must stay on the main thread
	runtime.LockOSThread()
}
