// SPDX-License-Identifier: MIT

// Command qcirc runs the example circuits of the qcircuit module.
//
//	qcirc paper [--method auto|soh|sv]
//	qcirc grover --qubits 3 --marked 5
//	qcirc shor --number 15
//	qcirc gates
//
// Global flags --log-level and --seed (or QCIRC_LOG_LEVEL, QCIRC_SEED)
// control logging and make measurements reproducible.
package main

import (
	"os"

	"github.com/charmbracelet/log"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "qcirc"})
	if err := newApp(logger).Run(os.Args); err != nil {
		logger.Fatal("qcirc failed", "err", err)
	}
}
