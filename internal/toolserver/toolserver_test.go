package toolserver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/standardbeagle/lci/internal/query"
	"github.com/standardbeagle/lci/internal/store"
)

func TestNewRegistersServer(t *testing.T) {
	st := store.New(1)
	svc := query.New(st, nil, nil, "")

	s := New(svc, t.TempDir())
	require.NotNil(t, s, "New should return a non-nil Server")
	assert.NotNil(t, s.mcp, "Server should hold a constructed mcp.Server")
	assert.Equal(t, svc, s.svc, "Server should keep the query.Service it was built with")
}

func TestStartRejectsUnimplementedTransports(t *testing.T) {
	st := store.New(1)
	svc := query.New(st, nil, nil, "")
	s := New(svc, t.TempDir())

	err := s.Start(nil, Config{Mode: ModeHTTP})
	assert.Error(t, err, "http transport is not implemented and should report an error")

	err = s.Start(nil, Config{Mode: "bogus"})
	assert.Error(t, err, "an unknown mode should report an error")
}

func TestParsePositionalArgsBindsPrimaryField(t *testing.T) {
	args, err := ParsePositionalArgs("name", []string{"Parser"})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"name": "Parser"}, args)
}

func TestParsePositionalArgsPromotesTypes(t *testing.T) {
	args, err := ParsePositionalArgs("symbol_name", []string{"Indexer", "max_depth:2", "threshold:0.75", "recursive:true", "lang:rust"})
	require.NoError(t, err)

	assert.Equal(t, "Indexer", args["symbol_name"])
	assert.Equal(t, int64(2), args["max_depth"])
	assert.Equal(t, 0.75, args["threshold"])
	assert.Equal(t, true, args["recursive"])
	assert.Equal(t, "rust", args["lang"])
}

func TestParsePositionalArgsRejectsMalformedPair(t *testing.T) {
	_, err := ParsePositionalArgs("name", []string{"Parser", "noKeyValueSeparator"})
	assert.Error(t, err, "a non key:value argument should be rejected")
}

func TestParseSymbolKindRoundTrips(t *testing.T) {
	for _, name := range []string{"function", "struct", "interface", "type_alias"} {
		kind, ok := parseSymbolKind(name)
		require.True(t, ok, "expected %q to parse", name)
		assert.Equal(t, name, kind.String())
	}

	_, ok := parseSymbolKind("not_a_kind")
	assert.False(t, ok)
}
