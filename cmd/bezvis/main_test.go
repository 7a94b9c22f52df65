package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/casteljau"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePoints(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pts, err := parsePoints(" -1,-1  0,0.5 1,-1 ")
	require.NoError(t, err)
	assert.Equal(t, []casteljau.Pair{casteljau.P(-1, -1), casteljau.P(0, 0.5), casteljau.P(1, -1)}, pts)
	pts, err = parsePoints("")
	require.NoError(t, err)
	assert.Empty(t, pts)
	for _, bad := range []string{"1", "1,x", "a,1", "NaN,0"} {
		_, err = parsePoints(bad)
		assert.ErrorIs(t, err, ErrBadPoint, bad)
	}
}

func TestParseSize(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	w, h, err := parseSize("640x480")
	require.NoError(t, err)
	assert.Equal(t, 640, w)
	assert.Equal(t, 480, h)
	for _, bad := range []string{"640", "ax480", "640xb"} {
		_, _, err = parseSize(bad)
		assert.Error(t, err, bad)
	}
}

func TestRun(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	out := filepath.Join(t.TempDir(), "curve.png")
	require.NoError(t, run("-1,-1 0,1 1,-1", 0.5, 0.05, "h]x", "120x90", out))
	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
	assert.Error(t, run("-1,-1", 0.5, 0.05, "", "0x90", out))
}
