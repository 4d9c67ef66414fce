// Command schemagen-cli generates, refines and inspects JSON Schema documents
// from the command line.
//
// Usage:
//
//	schemagen-cli generate "User profile with name and email"
//	schemagen-cli refine --from schema.json "Add integration step \"crm\""
//	schemagen-cli validate schema.json
//	schemagen-cli steps schema.json --check crm
//	schemagen-cli models
//
// generate and refine read the same configuration as the schemagen server.
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, errorStyle.Sprint(err))
		}
		os.Exit(1)
	}
}
