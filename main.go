package main

import (
	"github.com/easyfocus/easyfocus/cmd"

	// Backends register themselves with internal/platform.
	_ "github.com/easyfocus/easyfocus/internal/platform/i3ipc"
	_ "github.com/easyfocus/easyfocus/internal/platform/tty"
	_ "github.com/easyfocus/easyfocus/internal/platform/x11"
)

func main() {
	cmd.Execute()
}
