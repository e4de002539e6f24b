package main

import (
	"github.com/spf13/cobra"

	"github.com/zostay/go-contenttree/tools/contenttree/cmd"
)

func main() {
	err := cmd.Execute()
	cobra.CheckErr(err)
}
