package main

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"

	"GoFuzzy/cmd/gofuzzy/commands"
	"GoFuzzy/internal/logger"
)

func main() {
	err := commands.NewRootCommand().Execute()
	logger.Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		for _, hint := range errors.GetAllHints(err) {
			fmt.Fprintln(os.Stderr, "Hint:", hint)
		}
		os.Exit(1)
	}
}
