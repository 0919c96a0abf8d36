package main

import (
	"os"

	"github.com/andrew-torda/datason/pkg/common"
	"github.com/andrew-torda/datason/pkg/fastastats"
)

func main() {
	err := fastastats.Main(os.Args[1:], os.Stdout)
	os.Exit(common.Finish("fastastats", err))
}
