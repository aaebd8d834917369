package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
)

func newTestApp(t *testing.T) (*app, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var out, errOut bytes.Buffer
	a := &app{
		stdout: &out,
		stderr: &errOut,
		exit:   func(int) {},
		logger: func(bool) (*zap.Logger, error) {
			return zaptest.NewLogger(t), nil
		},
	}
	return a, &out, &errOut
}

func TestNumeric(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "degrees",
			args: []string{"numeric", "--axes", "zyx", "--angles", "30,15,10", "--degrees", "--precision", "3"},
			want: []string{"ZYX", "  0.837  -0.453   0.308\n", "  0.483   0.875  -0.023\n", " -0.259   0.168   0.951\n"},
		},
		{
			name: "numbered axes",
			args: []string{"numeric", "--axes", "321", "--angles", "30,15,10", "-d", "--precision", "3"},
			want: []string{"ZYX", "  0.837  -0.453   0.308\n"},
		},
		{
			name: "transpose",
			args: []string{"numeric", "--axes", "zyx", "--angles", "30,15,10", "-d", "--precision", "3", "--transpose"},
			want: []string{"ZYX^T", "  0.837   0.483  -0.259\n"},
		},
		{
			name: "radians",
			args: []string{"numeric", "--axes", "z", "--angles", "0", "--precision", "2"},
			want: []string{"Z", "  1.00   0.00   0.00\n", "  0.00   1.00   0.00\n", "  0.00   0.00   1.00\n"},
		},
		{
			name: "check",
			args: []string{"numeric", "--axes", "zxz", "--angles=-120,45,200", "-d", "--check"},
			want: []string{"orthogonal:", "yes", "det: 1.000000"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, out, errOut := newTestApp(t)
			require.Equal(t, 0, a.run(tt.args), errOut.String())
			for _, w := range tt.want {
				assert.Contains(t, out.String(), w)
			}
		})
	}
}

func TestSymbolic(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "plain",
			args: []string{"symbolic", "--axes", "zyx", "--angles", "psi,theta,phi"},
			want: []string{"ZYX", "cos(psi)*cos(theta)", "-sin(theta)"},
		},
		{
			name: "latex",
			args: []string{"symbolic", "--axes", "z", "--angles", "psi", "--latex"},
			want: []string{"\\begin{bmatrix}\n\\cos{\\psi} & -\\sin{\\psi} & 0 \\\\\n"},
		},
		{
			name: "color",
			args: []string{"symbolic", "--axes", "x", "--angles", "phi", "--color", "--style", "github"},
			want: []string{"bmatrix", "phi"},
		},
		{
			name: "check",
			args: []string{"symbolic", "--axes", "zyx", "--angles", "psi,theta,phi", "--check", "--simplify"},
			want: []string{"orthogonal:", "yes"},
		},
		{
			name: "transpose",
			args: []string{"symbolic", "--axes", "z", "--angles", "psi", "-t"},
			want: []string{"Z^T", "cos(psi)   sin(psi)  0\n"},
		},
		{
			name: "eval",
			args: []string{"symbolic", "--axes", "zyx", "--angles", "psi,theta,phi", "--eval", "psi=30,theta=15,phi=10", "--precision", "3"},
			want: []string{"ZYX at phi=10 psi=30 theta=15", "  0.837  -0.453   0.308\n"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, out, errOut := newTestApp(t)
			require.Equal(t, 0, a.run(tt.args), errOut.String())
			for _, w := range tt.want {
				assert.Contains(t, out.String(), w)
			}
		})
	}
}

func TestFailures(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "length", args: []string{"numeric", "--axes", "zyx", "--angles", "1,2"}, want: "axis and angle counts differ"},
		{name: "axis", args: []string{"numeric", "--axes", "zwx", "--angles", "1,2,3"}, want: "invalid rotation axis"},
		{name: "angle", args: []string{"symbolic", "--axes", "zyx", "--angles", "psi,2theta,phi"}, want: "invalid rotation angle"},
		{name: "unbound", args: []string{"symbolic", "--axes", "zy", "--angles", "psi,theta", "--eval", "psi=30"}, want: "unbound symbol"},
		{name: "no command", args: nil, want: "error"},
		{name: "missing file", args: []string{"run", "no-such-file.yaml"}, want: "error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, _, errOut := newTestApp(t)
			assert.Equal(t, 1, a.run(tt.args))
			assert.Contains(t, errOut.String(), tt.want)
		})
	}
}

func TestRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "batch.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
precision: 3
degrees: true
sequences:
  - name: aircraft
    axes: zyx
    angles: [30, 15, 10]
  - name: general
    axes: "321"
    symbols: [psi, theta, phi]
    transpose: true
`), 0o644))

	a, out, errOut := newTestApp(t)
	require.Equal(t, 0, a.run([]string{"run", "--check", path}), errOut.String())
	assert.Contains(t, out.String(), "aircraft ZYX")
	assert.Contains(t, out.String(), "  0.837  -0.453   0.308\n")
	assert.Contains(t, out.String(), "general ZYX^T")
	assert.Contains(t, out.String(), "cos(psi)*cos(theta)")
	assert.Contains(t, out.String(), "orthogonal:")
}

func TestRunInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "batch.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sequences: [{name: a, axes: zyx, angles: [1]}]\n"), 0o644))

	a, _, errOut := newTestApp(t)
	assert.Equal(t, 1, a.run([]string{"run", path}))
	assert.Contains(t, errOut.String(), "axis and angle counts differ")
}

func TestRepl(t *testing.T) {
	lines := []string{"help", "num zyx 30 15 10", "exit", "num x 1"}
	a, out, errOut := newTestApp(t)
	a.lines = func() (string, error) {
		if len(lines) == 0 {
			return "", io.EOF
		}
		l := lines[0]
		lines = lines[1:]
		return l, nil
	}
	require.Equal(t, 0, a.run([]string{"repl"}), errOut.String())
	assert.Contains(t, out.String(), "commands:")
	assert.Contains(t, out.String(), "  0.836516  -0.453482   0.307563\n")
	assert.Contains(t, out.String(), "exiting")
	assert.Equal(t, []string{"num x 1"}, lines, "input after exit is not read")
}

func TestNewLogger(t *testing.T) {
	for _, debug := range []bool{false, true} {
		log, err := newLogger(debug)
		require.NoError(t, err)
		assert.Equal(t, debug, log.Core().Enabled(zap.DebugLevel))
	}
}
