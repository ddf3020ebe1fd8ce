package obs

import (
	"bytes"
	"context"
	"errors"
	"log"
	"testing"

	"github.com/stretchr/testify/require"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	prevOut, prevFlags := log.Writer(), log.Flags()
	log.SetOutput(&buf)
	log.SetFlags(0)
	t.Cleanup(func() {
		log.SetOutput(prevOut)
		log.SetFlags(prevFlags)
	})
	return &buf
}

func TestTimeLogsOperation(t *testing.T) {
	buf := captureLog(t)

	ctx := WithRequestID(context.Background(), "abc")
	func() (err error) {
		defer Time(ctx, "solver.Solve", "n", 5, "algorithm", "exact")(&err)
		return nil
	}()

	require.Contains(t, buf.String(), "req_id=abc op=solver.Solve n=5 algorithm=exact dur=")
	require.NotContains(t, buf.String(), "err=")
}

func TestTimeLogsError(t *testing.T) {
	buf := captureLog(t)

	func() (err error) {
		defer Time(context.Background(), "matrix.Build")(&err)
		return errors.New("boom")
	}()

	require.Contains(t, buf.String(), "req_id=- op=matrix.Build dur=")
	require.Contains(t, buf.String(), "err=boom")
}
