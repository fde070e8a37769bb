package main

import (
	"os"

	flags "github.com/jessevdk/go-flags"
)

type options struct {
	Serve   ServeCommand   `command:"serve" description:"Serve the assignment and permission services over gRPC"`
	Migrate MigrateCommand `command:"migrate" description:"Apply or roll back the MySQL schema migrations"`
}

func main() {
	parser := flags.NewParser(&options{}, flags.Default)
	parser.NamespaceDelimiter = "-"

	if _, err := parser.Parse(); err != nil {
		os.Exit(1)
	}
}
