package main

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	utillog "github.com/Azure/PartnerMonitor-RP/pkg/util/log"
)

var (
	gitCommit = "unknown"
)

func usage() {
	fmt.Fprint(flag.CommandLine.Output(), "usage:\n")
	fmt.Fprintf(flag.CommandLine.Output(), "       %s rp\n", os.Args[0])
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()

	ctx := context.Background()
	log := utillog.GetLogger()
	cfg := viper.GetViper()
	cfg.AutomaticEnv()

	log.Printf("starting, git commit %s", gitCommit)

	var err error
	switch strings.ToLower(flag.Arg(0)) {
	case "rp":
		checkArgs(1)
		err = rp(ctx, log, cfg)
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		log.Fatal(err)
	}
}

func checkArgs(required int) {
	if len(flag.Args()) != required {
		usage()
		os.Exit(2)
	}
}
