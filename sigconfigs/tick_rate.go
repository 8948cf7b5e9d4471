package sigconfigs

import (
	"github.com/reusee/siglab/cmds"
	"github.com/reusee/siglab/configs"
	"github.com/reusee/siglab/vars"
)

// TickRate is evaluation steps per second of simulated time.
type TickRate float64

var tickRateFlag = cmds.Var[float64]("-tick-rate")

func (Module) TickRate(
	loader configs.Loader,
) TickRate {
	return TickRate(vars.FirstNonZero(
		*tickRateFlag,
		configs.First[float64](loader, "tick_rate"),
		60,
	))
}
