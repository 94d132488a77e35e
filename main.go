/*
This is an example of application that will use the
engine package to test things out
*/
package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spaghettifunk/ombra/engine"
	"github.com/spaghettifunk/ombra/testbed"
)

func main() {
	config, err := engine.LoadApplicationConfig("ombra.toml")
	if err != nil {
		config = engine.DefaultApplicationConfig()
	}

	tb := testbed.NewTestGame(config)

	eng, err := engine.New(tb)
	if err != nil {
		panic(err)
	}

	if err := eng.Initialize(); err != nil {
		panic(err)
	}

	// signal channel to capture system calls
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)

	// start shutdown goroutine
	go func() {
		// capture sigterm and other system call here
		<-sigCh
		_ = eng.Shutdown()
	}()

	// run engine
	if err := eng.Run(); err != nil {
		panic(err)
	}
}
