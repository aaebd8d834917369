package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"zappem.net/pub/math/dcm/rotation"
	"zappem.net/pub/math/dcm/terms"
)

func TestSplit(t *testing.T) {
	vs := []struct {
		line string
		want []string
	}{
		{line: "", want: nil},
		{line: "   # just a comment", want: nil},
		{line: "#", want: nil},
		{line: "check# no space", want: []string{"check"}},
		{line: "num zyx 30, 15 , -10 # aircraft", want: []string{"num", "zyx", "30", "15", "-10"}},
		{line: "sym 321 psi theta2 phi", want: []string{"sym", "321", "psi", "theta2", "phi"}},
		{line: "eval psi=30 theta = -15.5", want: []string{"eval", "psi", "=", "30", "theta", "=", "-15.5"}},
	}
	for i, v := range vs {
		if diff := cmp.Diff(v.want, split(v.line)); diff != "" {
			t.Errorf("[%d] split(%q) mismatch (-want +got):\n%s", i, v.line, diff)
		}
	}
}

func TestSession(t *testing.T) {
	s := &session{log: zap.NewNop(), precision: 6}
	var out bytes.Buffer
	run := func(line string) string {
		t.Helper()
		out.Reset()
		require.NoError(t, s.exec(line, &out), line)
		return out.String()
	}

	err := s.exec("check", &out)
	assert.ErrorContains(t, err, "no matrix yet")

	got := run("sym 321 psi theta phi")
	assert.Contains(t, got, "ZYX")
	assert.Contains(t, got, "cos(psi)*cos(theta)")

	assert.Contains(t, run("latex"), `\begin{bmatrix}`)
	assert.Contains(t, run("check"), "orthogonal:")

	got = run("eval psi=30 theta=15 phi=10")
	assert.Contains(t, got, "ZYX at phi=10 psi=30 theta=15")
	assert.Contains(t, got, "  0.836516  -0.453482   0.307563\n")
	require.NotNil(t, s.sym, "eval keeps the symbolic matrix")

	before := s.sym
	assert.Contains(t, run("inv"), "ZYX^T")
	assert.True(t, s.sym.Equal(before.Transpose(), (*terms.Exp).Equals))
	assert.Contains(t, run("inv"), "ZYX\n")
	assert.True(t, s.sym.Equal(before, (*terms.Exp).Equals))

	assert.Contains(t, run("simp"), "ZYX")

	got = run("num x 90")
	assert.Contains(t, got, "  0.000000  -1.000000\n")
	assert.Nil(t, s.sym)
	assert.Contains(t, run("check"), "det: 1.000000")
	assert.Contains(t, run("inv"), "X^T")

	assert.Contains(t, run("help"), "commands:")
	assert.Empty(t, run("# nothing"))
}

func TestSessionErrors(t *testing.T) {
	s := &session{log: zap.NewNop()}
	var out bytes.Buffer
	tests := []struct {
		line string
		is   error
		msg  string
	}{
		{line: "bogus", msg: "unknown command"},
		{line: "num", msg: "usage"},
		{line: "num zz 1", is: rotation.ErrLengthMismatch},
		{line: "num q 1", is: rotation.ErrInvalidAxis},
		{line: "num x abc", msg: "invalid angle"},
		{line: "sym xy a 2", is: rotation.ErrInvalidAngle},
		{line: "exit", is: errExit},
		{line: "quit", is: errExit},
	}
	for _, tt := range tests {
		err := s.exec(tt.line, &out)
		require.Error(t, err, tt.line)
		if tt.is != nil {
			assert.ErrorIs(t, err, tt.is, tt.line)
		}
		if tt.msg != "" {
			assert.ErrorContains(t, err, tt.msg, tt.line)
		}
	}

	require.NoError(t, s.exec("num x 1", &out))
	for _, line := range []string{"simp", "latex", "eval a=1"} {
		assert.ErrorContains(t, s.exec(line, &out), "not symbolic", line)
	}

	require.NoError(t, s.exec("sym zy a b", &out))
	assert.ErrorContains(t, s.exec("eval a 1", &out), "usage")
	assert.ErrorContains(t, s.exec("eval a=x", &out), "invalid angle")
	err := s.exec("eval a=1", &out)
	assert.True(t, errors.Is(err, terms.ErrUnbound), "got %v", err)
}

func TestLoop(t *testing.T) {
	lines := []string{"bogus", "num y 0"}
	next := func() (string, error) {
		if len(lines) == 0 {
			return "", errors.New("terminal gone")
		}
		l := lines[0]
		lines = lines[1:]
		return l, nil
	}
	var out bytes.Buffer
	s := &session{log: zap.NewNop(), precision: 1}
	err := s.loop(next, &out)
	assert.ErrorContains(t, err, "unable to recover")
	assert.Contains(t, out.String(), `unknown command "bogus"`)
	assert.Contains(t, out.String(), "  1.0   0.0   0.0\n")
}
