package main

import (
	"context"

	"github.com/datahubtools/payplan/cmd"
)

func main() {
	ctx := context.Background()
	cmd.Execute(ctx)
}
