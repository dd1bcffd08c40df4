package main

import (
	"os"

	"github.com/knowscroll/contentgov/app"
)

func main() {
	app.SetAddressPrefixes()
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
