package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fetchrobotics/rosgo/ros"

	"github.com/make87/ros-minimal-client/client"
	"github.com/make87/ros-minimal-client/config"
	"github.com/make87/ros-minimal-client/endpoint"
	"github.com/make87/ros-minimal-client/logger"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "client config file (YAML)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load configuration", err)
		return 1
	}

	if level, err := logger.ParseLevel(cfg.Log.Level); err == nil {
		logger.SetGlobalLevel(level)
	} else {
		logger.Warnf("%v, staying at INFO", err)
	}
	logger.SetGlobalJSONFormat(cfg.Log.Format == "json")
	logger.SetGlobalNodeName(cfg.Node.Name)

	res := endpoint.Resolve(cfg.Endpoint.Name, cfg.Endpoint.Default)
	if res.Resolved() {
		logger.Infof("resolved endpoint %s to %s", cfg.Endpoint.Name, res.Value)
	}

	node, err := ros.NewNode(cfg.Node.Name, os.Args)
	if err != nil {
		logger.Error("failed to initialize node", err)
		return 1
	}
	defer node.Shutdown()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c := client.New(client.NewCaller(node, res.Value), cfg.Request.Attempts)
	defer c.Shutdown()

	interval := time.Duration(cfg.WaitIntervalSeconds) * time.Second
	if err := c.WaitReady(ctx, interval); err != nil {
		logger.Error("client interrupted while waiting for service to appear", err)
		return 1
	}

	sum, err := c.AddTwoInts(ctx, cfg.Request.A, cfg.Request.B)
	if err != nil {
		logger.Error("service call failed", err)
		return 1
	}

	fmt.Printf("result of %d + %d = %d\n", cfg.Request.A, cfg.Request.B, sum)
	return 0
}
