package main

import (
	"context"

	"go.llib.dev/frameless/pkg/cli"
)

func main() {
	cli.Main(context.Background(), Mux())
}
