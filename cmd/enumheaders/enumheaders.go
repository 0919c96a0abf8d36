package main

import (
	"os"

	"github.com/andrew-torda/datason/pkg/common"
	"github.com/andrew-torda/datason/pkg/enumheaders"
)

func main() {
	err := enumheaders.Main(os.Args[1:], os.Stdout)
	os.Exit(common.Finish("enum_headers", err))
}
