package main

import (
	"os"

	"github.com/andrew-torda/datason/pkg/common"
	"github.com/andrew-torda/datason/pkg/inthisto2d"
)

func main() {
	err := inthisto2d.Main(os.Args[1:], os.Stdout)
	os.Exit(common.Finish("inthisto2d", err))
}
