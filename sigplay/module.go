package sigplay

import (
	"github.com/reusee/dscope"

	"github.com/reusee/siglab/debugs"
	"github.com/reusee/siglab/logs"
	"github.com/reusee/siglab/sigconfigs"
)

type Module struct {
	dscope.Module
	Logs    logs.Module
	Configs sigconfigs.Module
	Debugs  debugs.Module
}
