package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type testRecord struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

func newSQLiteBridge(t *testing.T) *SQLiteBridge {
	t.Helper()

	path := filepath.Join(t.TempDir(), "state.db")
	bridge, err := OpenSQLite(path, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { bridge.Close() })

	return bridge
}

func TestSQLiteBridge_ReadWrite(t *testing.T) {
	bridge := newSQLiteBridge(t)

	t.Run("Missing key", func(t *testing.T) {
		value, ok := bridge.Read("missing")
		assert.False(t, ok)
		assert.Nil(t, value)
	})

	t.Run("Round trip", func(t *testing.T) {
		require.NoError(t, bridge.Write("greeting", []byte(`"hello"`)))

		value, ok := bridge.Read("greeting")
		require.True(t, ok)
		assert.Equal(t, `"hello"`, string(value))
	})

	t.Run("Overwrite", func(t *testing.T) {
		require.NoError(t, bridge.Write("counter", []byte(`1`)))
		require.NoError(t, bridge.Write("counter", []byte(`2`)))

		value, ok := bridge.Read("counter")
		require.True(t, ok)
		assert.Equal(t, `2`, string(value))
	})

	t.Run("Remove", func(t *testing.T) {
		require.NoError(t, bridge.Write("doomed", []byte(`true`)))
		require.NoError(t, bridge.Remove("doomed"))

		_, ok := bridge.Read("doomed")
		assert.False(t, ok)
	})
}

func TestMemoryBridge_ReadWrite(t *testing.T) {
	bridge := NewMemoryBridge()

	t.Run("Missing key", func(t *testing.T) {
		_, ok := bridge.Read("missing")
		assert.False(t, ok)
	})

	t.Run("Round trip", func(t *testing.T) {
		require.NoError(t, bridge.Write("key", []byte(`{"a":1}`)))

		value, ok := bridge.Read("key")
		require.True(t, ok)
		assert.Equal(t, `{"a":1}`, string(value))
	})

	t.Run("Remove", func(t *testing.T) {
		require.NoError(t, bridge.Write("doomed", []byte(`1`)))
		require.NoError(t, bridge.Remove("doomed"))

		_, ok := bridge.Read("doomed")
		assert.False(t, ok)
	})
}

func TestLoadSave(t *testing.T) {
	bridge := NewMemoryBridge()

	t.Run("Round trip preserves value", func(t *testing.T) {
		record := testRecord{Name: "INV-2024-001", Amount: 5000}
		require.NoError(t, Save(bridge, "record", record))

		loaded := Load(bridge, "record", testRecord{})
		assert.Equal(t, record, loaded)
	})

	t.Run("Missing key returns default", func(t *testing.T) {
		def := testRecord{Name: "default", Amount: 1}
		loaded := Load(bridge, "absent", def)
		assert.Equal(t, def, loaded)
	})

	t.Run("Malformed payload returns default", func(t *testing.T) {
		require.NoError(t, bridge.Write("broken", []byte(`{not json`)))

		def := testRecord{Name: "default"}
		loaded := Load(bridge, "broken", def)
		assert.Equal(t, def, loaded)
	})

	t.Run("List round trip", func(t *testing.T) {
		records := []testRecord{{Name: "a", Amount: 1}, {Name: "b", Amount: 2}}
		require.NoError(t, Save(bridge, "records", records))

		loaded := Load(bridge, "records", []testRecord(nil))
		assert.Equal(t, records, loaded)
	})
}
