package main

import (
	"bytes"
	"log"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFlushHeldLogsReachesOperator(t *testing.T) {
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	var held, console bytes.Buffer
	log.SetOutput(&held)
	log.Printf("view: failed to load FAQ: %v", "connection refused")
	require.Zero(t, console.Len())

	flushHeldLogs(&held, &console)
	require.Contains(t, console.String(), "view: failed to load FAQ: connection refused")
	require.Zero(t, held.Len())

	log.Print("after exit")
	require.Contains(t, console.String(), "after exit")
}
