package sigplay

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/stretchr/testify/require"

	"github.com/reusee/siglab/cmds"
	"github.com/reusee/siglab/logs"
	"github.com/reusee/siglab/sig"
)

func writeScript(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.sig")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestPlayerStep(t *testing.T) {
	dscope.New(new(Module)).Call(func(
		p *Player,
	) {
		path := writeScript(t, `
			var a = 1 + 2;
		`)
		err := p.LoadScript(path)
		require.NoError(t, err)
		p.Step(t.Context())
		require.Equal(t, int64(1), p.Tick())
	})
}

func TestCompileErrorKeepsOldGraph(t *testing.T) {
	dscope.New(new(Module)).Call(func(
		p *Player,
	) {
		good := writeScript(t, `var a = 1;`)
		require.NoError(t, p.LoadScript(good))
		old := p.Graph()

		bad := writeScript(t, `var a = (1;`)
		err := p.LoadScript(bad)
		require.Error(t, err)
		require.Same(t, old, p.Graph())
	})
}

func TestBeepLogged(t *testing.T) {
	buf := new(bytes.Buffer)
	dscope.New(new(Module)).Fork(
		dscope.Provide(logs.Writer(buf)),
	).Call(func(
		p *Player,
	) {
		path := writeScript(t, `beep(60, 0.5);`)
		require.NoError(t, p.LoadScript(path))

		p.Step(t.Context())
		out := buf.String()
		require.Contains(t, out, "beep")
		require.Contains(t, out, "tick=1")

		// trigger held high: no second edge, no second beep
		buf.Reset()
		p.Step(t.Context())
		require.NotContains(t, buf.String(), "msg=beep")
	})
}

func TestScriptedInput(t *testing.T) {
	dscope.New(new(Module)).Fork(
		dscope.Provide(InputSource(func() (s sig.InputState) {
			s.PointerX = 0.25
			return
		})),
	).Call(func(
		p *Player,
	) {
		pointer := p.Graph().Pointer()
		p.Step(t.Context())
		require.Equal(t, sig.Signal(0.25), pointer.Out(0))
	})
}

func TestRunTickLimit(t *testing.T) {
	cmds.Execute([]string{"-ticks", "3"})
	defer cmds.Execute([]string{"-ticks."})

	dscope.New(new(Module)).Call(func(
		p *Player,
	) {
		path := writeScript(t, `var a = 1;`)
		err := p.Run(context.Background(), path)
		require.NoError(t, err)
		require.Equal(t, int64(3), p.Tick())
	})
}

func TestSaveAndLoadGraph(t *testing.T) {
	dscope.New(new(Module)).Call(func(
		p *Player,
	) {
		script := writeScript(t, `var a = 1 + 2;`)
		require.NoError(t, p.LoadScript(script))
		n := len(p.Graph().Nodes())

		saved := filepath.Join(t.TempDir(), "graph.sig")
		require.NoError(t, p.SaveGraph(saved))
		require.NoError(t, p.LoadGraph(saved))
		require.Equal(t, n, len(p.Graph().Nodes()))
	})
}

func TestRunMissingScript(t *testing.T) {
	dscope.New(new(Module)).Call(func(
		p *Player,
	) {
		err := p.Run(context.Background(), filepath.Join(t.TempDir(), "nope.sig"))
		require.Error(t, err)
		require.True(t, strings.Contains(err.Error(), "no such file") || os.IsNotExist(err))
	})
}
