package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"

	"github.com/heathj/interact/interact"
)

func main() {
	os.Exit(run())
}

func run() int {
	script := flag.String("script", "", "path to a .yaml or .toml interaction script")
	debug := flag.Bool("debug", false, "log every dispatched event")
	flag.Parse()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if *debug {
		log.SetLevel(logrus.DebugLevel)
	}

	if *script == "" {
		fmt.Fprintln(os.Stderr, "usage: interact -script <file>")
		flag.PrintDefaults()
		return 2
	}

	s, err := interact.LoadScript(*script)
	if err != nil {
		log.WithError(err).Error("loading script")
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	trace, err := interact.RunScript(ctx, s, interact.WithLogger(log.WithField("script", *script)))
	for _, e := range trace {
		fmt.Println(e)
	}
	if err != nil {
		log.WithError(err).Error("script failed")
		return 1
	}
	return 0
}
