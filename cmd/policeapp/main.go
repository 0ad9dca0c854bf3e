package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/iqbal-singh-1/ideathon/cmd/policeapp/app"
)

func main() {
	if err := app.NewRootCommand().ExecuteContext(context.Background()); err != nil {
		if !errors.Is(err, app.ErrFlowFailed) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
