package main

import (
	"testing"

	"github.com/npillmayer/letterconnect"
	"github.com/npillmayer/letterconnect/internal/termout"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "letterconnect")
	defer teardown()
	//
	op, err := parseCommand(":hex")
	require.NoError(t, err)
	assert.Equal(t, Op{code: MODE, arg: "hex"}, op)
	op, err = parseCommand(":describe U+FEFB U+FEFC")
	require.NoError(t, err)
	assert.Equal(t, Op{code: DESCRIBE, arg: "U+FEFB U+FEFC"}, op)
	op, err = parseCommand(":Q")
	require.NoError(t, err)
	assert.Equal(t, QUIT, op.code)
	_, err = parseCommand(":")
	assert.Error(t, err)
	_, err = parseCommand(":frobnicate")
	assert.Error(t, err)
}

func TestExecuteSettings(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "letterconnect")
	defer teardown()
	//
	intp := NewIntp(letterconnect.New(nil))
	assert.Equal(t, termout.Plain, intp.mode)
	assert.False(t, intp.execute(Op{code: MODE, arg: "explain"}))
	assert.Equal(t, termout.Explain, intp.mode)
	assert.False(t, intp.execute(Op{code: MODE, arg: "nonsense"}))
	assert.Equal(t, termout.Explain, intp.mode, "invalid mode must not change settings")
	assert.False(t, intp.execute(Op{code: WARN}))
	assert.True(t, intp.warn)
	assert.False(t, intp.execute(Op{code: WARN, arg: "off"}))
	assert.False(t, intp.warn)
	assert.Equal(t, "( mode=explain warn=false )", intp.String())
	assert.True(t, intp.execute(Op{code: QUIT}))
}
