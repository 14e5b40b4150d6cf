package program

import (
	"context"
	"log"
	"os"
	"os/signal"
	"runtime"
	"sync/atomic"
	"syscall"
	"time"
)

var terminationSignals = []os.Signal{
	os.Interrupt,
	syscall.SIGTERM,
}

// terminateWithSignal terminates the current process by sending a
// signal to itself.
func terminateWithSignal(currentPID int, terminationSignal os.Signal) {
	if runtime.GOOS == "windows" {
		// On Windows, process.Signal() is not supported so
		// immediately exit.
		os.Exit(1)
	}

	// Clear the signal handler and raise the original signal once
	// again. That way we shut down under the original
	// circumstances.
	signal.Reset(terminationSignal)
	process, err := os.FindProcess(currentPID)
	if err != nil {
		panic(err)
	}
	if err := process.Signal(terminationSignal); err != nil {
		panic(err)
	}

	// process.Signal() does not guarantee that the signal is
	// delivered to the same thread. Fall back to calling os.Exit()
	// if we don't get terminated via signal delivery.
	// https://github.com/golang/go/issues/19326
	time.Sleep(time.Second)
	os.Exit(1)
}

// RunMain runs a program that supports graceful termination. The
// program terminates if one of the following cases occurs:
//
//   - The routine and all of its siblings have terminated. In that
//     case the program terminates with exit code 0.
//
//   - One of the routines fails with a non-nil error. In that case the
//     program terminates with exit code 1.
//
//   - The program receives SIGINT or SIGTERM. In that case the
//     routines are canceled, and the program terminates with that
//     signal once they have completed.
func RunMain(routine Routine) {
	currentPID := os.Getpid()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var receivedSignal atomic.Value
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, terminationSignals...)
	go func() {
		s := <-signalChan
		log.Printf("Received %#v signal. Initiating graceful shutdown.", s.String())
		receivedSignal.Store(s)
		cancel()
	}()

	err := Run(ctx, routine)
	if s, ok := receivedSignal.Load().(os.Signal); ok {
		terminateWithSignal(currentPID, s)
	}
	if err != nil {
		log.Print("Fatal error: ", err)
		os.Exit(1)
	}
}
