package main

import (
	"flag"
	"time"

	"github.com/xxxsen/davgate/config"
	"github.com/xxxsen/davgate/davclient"
	"github.com/xxxsen/davgate/server"

	"github.com/xxxsen/common/logger"
	"go.uber.org/zap"
)

var file = flag.String("config", "./config.json", "config file path")

func main() {
	flag.Parse()

	c, err := config.Parse(*file)
	if err != nil {
		panic(err)
	}
	logitem := c.LogInfo
	logger := logger.Init(logitem.File, logitem.Level, int(logitem.FileCount), int(logitem.FileSize), int(logitem.KeepDays), logitem.Console)
	logger.Info("recv config", zap.String("bind", c.Bind))
	logger.Info("-- cors feature", zap.Bool("enable", c.CORS.Enable), zap.Strings("origins", c.CORS.Origins))
	logger.Info("-- upstream config", zap.Int64("timeout_sec", c.Upstream.TimeoutSec),
		zap.Int("max_idle_conns", c.Upstream.MaxIdleConns), zap.Bool("insecure_skip_verify", c.Upstream.InsecureSkipVerify))
	cli := davclient.New(
		davclient.WithTimeout(time.Duration(c.Upstream.TimeoutSec)*time.Second),
		davclient.WithMaxIdleConns(c.Upstream.MaxIdleConns),
		davclient.WithInsecureSkipVerify(c.Upstream.InsecureSkipVerify),
	)
	svr, err := server.New(c.Bind,
		server.WithClient(cli),
		server.WithCORS(c.CORS.Enable, c.CORS.Origins),
	)
	if err != nil {
		logger.Fatal("init server fail", zap.Error(err))
	}
	logger.Info("init server succ, start it...")
	if err := svr.Run(); err != nil {
		logger.Fatal("run server fail", zap.Error(err))
	}
}
