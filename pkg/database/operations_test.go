package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openMemory(t *testing.T) *Store {
	t.Helper()
	s, err := Open(SQLiteDriver, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStoreGetSet(t *testing.T) {
	s := openMemory(t)

	_, ok, err := s.Get("tasks")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set("tasks", "[]"))
	require.NoError(t, s.Set("tasks", `[{"id":1}]`))
	require.NoError(t, s.Set("streak", "3"))

	v, ok, err := s.Get("tasks")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":1}]`, v)

	v, ok, err = s.Get("streak")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "3", v)
}

func TestRebind(t *testing.T) {
	q := "INSERT INTO kv_store (key, value) VALUES (?, ?)"
	assert.Equal(t, q, Rebind(SQLiteDriver, q))
	assert.Equal(t, "INSERT INTO kv_store (key, value) VALUES ($1, $2)", Rebind(PostgresDriver, q))
}

func TestConnectDBUnknownDriver(t *testing.T) {
	_, err := ConnectDB(Driver("mysql"), "x")
	assert.Error(t, err)
}
