// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import "go.uber.org/zap"

// ZapAdapter adapts zap.Logger to the Logger interface
type ZapAdapter struct {
	log *zap.SugaredLogger
}

// NewZapAdapter creates a new ZapAdapter
func NewZapAdapter(logger *zap.Logger) Logger {
	return &ZapAdapter{log: logger.Sugar()}
}

func (z *ZapAdapter) Debug(format string, args ...interface{}) {
	z.log.Debugf(format, args...)
}

func (z *ZapAdapter) Info(format string, args ...interface{}) {
	z.log.Infof(format, args...)
}

func (z *ZapAdapter) Warn(format string, args ...interface{}) {
	z.log.Warnf(format, args...)
}

func (z *ZapAdapter) Error(format string, args ...interface{}) {
	z.log.Errorf(format, args...)
}
