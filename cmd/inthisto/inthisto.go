package main

import (
	"os"

	"github.com/andrew-torda/datason/pkg/common"
	"github.com/andrew-torda/datason/pkg/inthisto"
)

func main() {
	err := inthisto.Main(os.Args[1:], os.Stdout)
	os.Exit(common.Finish("inthisto", err))
}
