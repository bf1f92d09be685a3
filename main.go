package main

import (
	"os"

	"github.com/festa-familia/festa-admin/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
