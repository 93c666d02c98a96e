package main

import (
	"github.com/mj1618/winzorder/cmd"

	_ "github.com/mj1618/winzorder/internal/platform/win32"
)

func main() {
	cmd.Execute()
}
