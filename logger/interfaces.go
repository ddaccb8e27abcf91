// Copyright 2023 The STMPS Authors
// SPDX-License-Identifier: GPL-3.0-only

package logger

type LoggerInterface interface {
	Print(s string)
	Printf(s string, as ...interface{})
	PrintError(source string, err error)

	Debugf(s string, as ...interface{})
	Warnf(s string, as ...interface{})
	Errorf(s string, as ...interface{})
}
