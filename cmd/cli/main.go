package main

import (
	"context"
	"os"

	"github.com/dmitrijs2005/accountkeeper/internal/buildinfo"
	"github.com/dmitrijs2005/accountkeeper/internal/cli"
	"github.com/dmitrijs2005/accountkeeper/internal/config"
	"github.com/dmitrijs2005/accountkeeper/internal/logx"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logx.NewLogger(cfg.Env)

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		logger.Fatalf("%v", err)
	}
	defer app.Close()

	app.Run(ctx)
}
