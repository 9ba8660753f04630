package main

import (
	"bytes"
	"room-bot/internal"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrintBanner(t *testing.T) {
	req := require.New(t)
	out := &bytes.Buffer{}

	printBanner(out, internal.Config{TriggerWord: "knock", HelperName: "Bruce LEE"})

	req.Contains(out.String(), "magic word 'knock'")
	req.Contains(out.String(), "Bruce LEE")
}
