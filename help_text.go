// Copyright 2023 The STMPS Authors
// SPDX-License-Identifier: GPL-3.0-only

package main

const helpScreen = `
:     open the command prompt
?     show/close this help
ESC   close help, leave the prompt
Q     quit
`
