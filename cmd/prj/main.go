package main

import (
	"fmt"
	"os"

	"github.com/hbjs97/prj/internal/args"
	"github.com/hbjs97/prj/internal/cli"
)

func main() {
	app := cli.NewApp()
	cmd := app.NewRootCmd()
	cmd.SetArgs(args.Normalize(os.Args[1:]))

	err := cmd.Execute()
	code := cli.MapExitCode(err)
	if app.Verbose {
		fmt.Fprintf(os.Stderr, "prj: 종료 코드: %d\n", code)
	}
	os.Exit(int(code))
}
