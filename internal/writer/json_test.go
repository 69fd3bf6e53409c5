package writer

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONWriter_Write(t *testing.T) {
	result := sampleResult()

	var buf bytes.Buffer
	w := &JSONWriter{Indent: true}
	require.NoError(t, w.Write(&buf, result))

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	txns, ok := decoded["transactions"].([]interface{})
	require.True(t, ok)
	assert.Len(t, txns, 2)

	summary, ok := decoded["summary"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "GENERIC_TEXT", summary["issuer"])
	assert.Equal(t, float64(2), summary["total"])
}
