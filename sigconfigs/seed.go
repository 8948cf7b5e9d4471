package sigconfigs

import (
	"github.com/reusee/siglab/cmds"
	"github.com/reusee/siglab/configs"
	"github.com/reusee/siglab/vars"
)

// Seed seeds the random number generator shared by Random nodes. Zero
// keeps runs reproducible across restarts.
type Seed int64

var seedFlag = cmds.Var[int64]("-seed")

func (Module) Seed(
	loader configs.Loader,
) Seed {
	return Seed(vars.FirstNonZero(
		*seedFlag,
		configs.First[int64](loader, "seed"),
	))
}
