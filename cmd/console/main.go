package main

import (
	"context"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/userconsole/internal/buildinfo"
	"github.com/dmitrijs2005/userconsole/internal/client/cli"
	"github.com/dmitrijs2005/userconsole/internal/client/config"
	"github.com/dmitrijs2005/userconsole/internal/filex"
	"github.com/dmitrijs2005/userconsole/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	// the TUI owns the terminal, so its logs go next to the state file
	var logOut io.Writer = os.Stderr
	if cfg.UI == config.UITUI {
		path := filepath.Join(filepath.Dir(cfg.StatePath), "console.log")
		if err := filex.EnsureParentDir(path); err != nil {
			log.Fatalf("%v", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			log.Fatalf("%v", err)
		}
		defer f.Close()
		logOut = f
	}

	logger, err := logging.New(cfg.LogBackend, cfg.LogLevel, logOut)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := app.Run(ctx); err != nil {
		log.Printf("%v", err)
	}

}
