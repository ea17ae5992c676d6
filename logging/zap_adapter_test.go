// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/luxfi/sets/logging"
)

func TestZapAdapterFormats(t *testing.T) {
	require := require.New(t)

	core, logs := observer.New(zapcore.DebugLevel)
	adapter := logging.NewZapAdapter(zap.New(core))

	adapter.Debug("added %d", 3)
	adapter.Info("size %d of %d", 1, 2)
	adapter.Warn("slow path")
	adapter.Error("boom: %v", "cause")

	entries := logs.All()
	require.Len(entries, 4)

	require.Equal(zapcore.DebugLevel, entries[0].Level)
	require.Equal("added 3", entries[0].Message)

	require.Equal(zapcore.InfoLevel, entries[1].Level)
	require.Equal("size 1 of 2", entries[1].Message)

	require.Equal(zapcore.WarnLevel, entries[2].Level)
	require.Equal("slow path", entries[2].Message)

	require.Equal(zapcore.ErrorLevel, entries[3].Level)
	require.Equal("boom: cause", entries[3].Message)
}

func TestNoLogDiscards(t *testing.T) {
	logging.NoLogger.Debug("x %d", 1)
	logging.NoLogger.Info("x")
	logging.NoLogger.Warn("x")
	logging.NoLogger.Error("x")
}
