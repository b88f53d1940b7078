package cmd

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/genemuffin/genemuffind/core"
	"github.com/genemuffin/genemuffind/repo"
	"github.com/genemuffin/genemuffind/version"
	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("CMD")

// Start is the main entry point for genemuffind. The options to this
// command are the same as the GeneMuffin node config options.
type Start struct {
	repo.Config
}

// Execute starts the GeneMuffin node.
func (x *Start) Execute(args []string) error {
	cfg, _, err := repo.LoadConfig()
	if err != nil {
		return err
	}

	n, err := core.NewNode(cfg)
	if err != nil {
		return err
	}
	printSplashScreen()
	log.Infof("Gateway listening on %s", cfg.GatewayAddr)
	n.Start()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	for range c {
		log.Info("GeneMuffin shutting down...")
		n.Stop()
		os.Exit(1)
	}

	return nil
}

func printSplashScreen() {
	blue := color.New(color.FgBlue)
	white := color.New(color.FgWhite)

	for i, l := range []string{
		`  ________                       `,
		`_____       _____  _____.__       `,
		` /  _____/  ____   ____   ____  `,
		`/     \  __ _/ ____\/ ____\|__| ____  `,
		`/   \  ____/ __ \ /    \_/ __ \`,
		`/  \ /  \  |  \   __\\   __\|  |/    \ `,
		`\    \_\  \  ___/|   |  \  ___/`,
		`/    Y    \  |  /|  |   |  |  |  |   |  \`,
		` \______  /\___  >___|  /\___  >`,
		`\____|__  /____/ |__|   |__|  |__|___|  /`,
		`        \/     \/     \/     \/       `,
		`\/                                    \/`,
	} {
		if i%2 == 0 {
			if _, err := white.Printf(l); err != nil {
				log.Debug(err)
				return
			}
			continue
		}
		if _, err := blue.Println(l); err != nil {
			log.Debug(err)
			return
		}
	}

	blue.DisableColor()
	white.DisableColor()
	fmt.Println("")
	fmt.Printf("\ngenemuffind v%s\n", version.String())
}
