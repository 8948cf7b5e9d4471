package main

import (
	"github.com/reusee/dscope"

	"github.com/reusee/siglab/sigplay"
)

type Module struct {
	dscope.Module
	Play sigplay.Module
}
