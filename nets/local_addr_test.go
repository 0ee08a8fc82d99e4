package nets

import (
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/aimaker/configs"
	"github.com/reusee/aimaker/logs"
	"github.com/reusee/aimaker/modes"
)

func TestIsLocalAddr(t *testing.T) {
	dscope.New(
		modes.ForTest(t),
		new(Module),
		dscope.Provide(configs.NewLoader(nil, "")),
	).Fork(
		dscope.Provide(logs.FileSinkPath(t.TempDir()+"/test.log")),
	).Call(func(
		isLocalAddr IsLocalAddr,
	) {
		yes, err := isLocalAddr("127.0.0.1:10000")
		if err != nil {
			t.Fatal(err)
		}
		if !yes {
			t.Fatal()
		}
	})
}
