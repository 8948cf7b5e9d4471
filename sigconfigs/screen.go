package sigconfigs

import (
	"github.com/reusee/siglab/cmds"
	"github.com/reusee/siglab/configs"
	"github.com/reusee/siglab/vars"
)

type (
	ScreenWidth  int
	ScreenHeight int
)

var (
	screenWidthFlag  = cmds.Var[int]("-screen-width")
	screenHeightFlag = cmds.Var[int]("-screen-height")
)

func (Module) ScreenWidth(
	loader configs.Loader,
) ScreenWidth {
	return ScreenWidth(vars.FirstNonZero(
		*screenWidthFlag,
		configs.First[int](loader, "screen_width"),
		128,
	))
}

func (Module) ScreenHeight(
	loader configs.Loader,
) ScreenHeight {
	return ScreenHeight(vars.FirstNonZero(
		*screenHeightFlag,
		configs.First[int](loader, "screen_height"),
		96,
	))
}
