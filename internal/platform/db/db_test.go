package db

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpenSQLiteMemory(t *testing.T) {
	conn, err := Open(DriverSQLite, ":memory:")
	require.NoError(t, err)
	defer conn.Close()

	var one int
	require.NoError(t, conn.QueryRow("SELECT 1").Scan(&one))
	require.Equal(t, 1, one)
}

func TestOpenUnsupportedDriver(t *testing.T) {
	_, err := Open("oracle", "whatever")
	require.ErrorContains(t, err, "unsupported driver")
}
