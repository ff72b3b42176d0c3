package appsync

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeInputWrapsScalars(t *testing.T) {
	raw := json.RawMessage(`{"displayName":"Acme","industries":"fintech","revenueModel":["b2b"]}`)

	out, err := normalizeInput(raw)
	require.NoError(t, err)

	var m map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(out, &m))
	assert.JSONEq(t, `["fintech"]`, string(m["industries"]))
	assert.JSONEq(t, `["b2b"]`, string(m["revenueModel"]))
	assert.JSONEq(t, `"Acme"`, string(m["displayName"]))
}

func TestNormalizeInputLeavesArraysAndNulls(t *testing.T) {
	raw := json.RawMessage(`{"industries":["fintech"],"supportType":null}`)

	out, err := normalizeInput(raw)
	require.NoError(t, err)
	// Nothing to rewrite, the raw payload comes back unchanged.
	assert.Equal(t, string(raw), string(out))
}

func TestNormalizeInputEmpty(t *testing.T) {
	out, err := normalizeInput(nil)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestNormalizeInputNonListFieldUntouched(t *testing.T) {
	raw := json.RawMessage(`{"description":"plain string"}`)

	out, err := normalizeInput(raw)
	require.NoError(t, err)
	assert.Equal(t, string(raw), string(out))
}

func TestNormalizeInputMalformed(t *testing.T) {
	_, err := normalizeInput(json.RawMessage(`[1,2]`))
	assert.Error(t, err)
}
