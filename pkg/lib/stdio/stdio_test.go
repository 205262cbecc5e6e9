package stdio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shoenig/test/must"
)

func TestResolve_Modes(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	must.NoError(t, err)
	defer f.Close()

	cases := []struct {
		name   string
		stdio  Stdio
		stream Stream
		want   *os.File
	}{
		{name: "null stdin", stdio: Null(), stream: Stdin, want: nil},
		{name: "null stdout", stdio: Null(), stream: Stdout, want: nil},
		{name: "zero value", stdio: Stdio{}, stream: Stderr, want: nil},
		{name: "inherit stdin", stdio: Inherit(), stream: Stdin, want: os.Stdin},
		{name: "inherit stdout", stdio: Inherit(), stream: Stdout, want: os.Stdout},
		{name: "inherit stderr", stdio: Inherit(), stream: Stderr, want: os.Stderr},
		{name: "redirect", stdio: Redirect(f), stream: Stdout, want: f},
		{name: "redirect nil", stdio: Redirect(nil), stream: Stdout, want: nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			must.EqOp(t, tc.want, tc.stdio.Resolve(tc.stream))
		})
	}
}

func TestRedirectNil_IsNull(t *testing.T) {
	s := Redirect(nil)
	must.EqOp(t, ModeNull, s.Mode())
	must.Nil(t, s.File())
}

func TestInherit_FollowsCurrentParentStream(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "stdout"))
	must.NoError(t, err)
	defer f.Close()

	orig := os.Stdout
	os.Stdout = f
	defer func() { os.Stdout = orig }()

	must.EqOp(t, f, Inherit().Resolve(Stdout))
}

func TestConfig_Resolve(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "err"))
	must.NoError(t, err)
	defer f.Close()

	var zero Config
	r := zero.Resolve()
	must.Nil(t, r.Stdin)
	must.Nil(t, r.Stdout)
	must.Nil(t, r.Stderr)

	r = Config{Stdin: Null(), Stdout: Inherit(), Stderr: Redirect(f)}.Resolve()
	must.Nil(t, r.Stdin)
	must.EqOp(t, os.Stdout, r.Stdout)
	must.EqOp(t, f, r.Stderr)
}

func TestStrings(t *testing.T) {
	must.Eq(t, "null", ModeNull.String())
	must.Eq(t, "inherit", ModeInherit.String())
	must.Eq(t, "redirect", ModeRedirect.String())
	must.Eq(t, "stdin", Stdin.String())
	must.Eq(t, "stdout", Stdout.String())
	must.Eq(t, "stderr", Stderr.String())
}
