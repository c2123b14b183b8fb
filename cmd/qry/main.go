// Command qry runs ad-hoc queries over YAML or JSON lists of objects.
//
//	qry --where 'age>=18' --order-by=-age --take 3 people.yaml
//	qry fields people.yaml
//	qry stats age people.yaml
package main

import (
	"context"
	"os"

	"github.com/amp-labs/amp-query/internal/cli"
)

func main() {
	os.Exit(cli.Execute(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
