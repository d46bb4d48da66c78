// Command inkpost runs the blog and contact-relay API server.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/inkpost/inkpost/internal/app/bootstrap"
)

func main() {
	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "inkpost:", err)
		os.Exit(1)
	}

	logger, err := bootstrap.NewLogger(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "inkpost: failed to build logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := bootstrap.Run(cfg, logger); err != nil {
		logger.Error("server terminated", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}
