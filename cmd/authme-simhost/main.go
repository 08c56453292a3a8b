package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/venus98/AuthMeReloaded/internal/infra/buildinfo"
	"github.com/venus98/AuthMeReloaded/internal/infra/shutdown"
	"github.com/venus98/AuthMeReloaded/internal/plugin"
	"github.com/venus98/AuthMeReloaded/internal/settings"
	"github.com/venus98/AuthMeReloaded/pkg/hostapi"
	"github.com/venus98/AuthMeReloaded/pkg/hostapi/hosttest"
)

// simServer is a host fake that can fire its own shutdown hooks.
type simServer interface {
	hostapi.Server
	FireShutdown()
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:    "authme-simhost",
		Usage:   "simulated game-server host for the AuthMe extension",
		Version: buildinfo.String(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
				EnvVars: []string{"AUTHME_CONFIG"},
			},
			&cli.IntFlag{
				Name:  "authenticated",
				Usage: "Number of players that log in before shutdown",
				Value: 2,
			},
			&cli.IntFlag{
				Name:  "limbo",
				Usage: "Number of players left in limbo before shutdown",
				Value: 1,
			},
			&cli.IntFlag{
				Name:  "npcs",
				Usage: "Number of automation actors on the roster",
				Value: 1,
			},
			&cli.StringFlag{
				Name:  "shape",
				Usage: "Online-player accessor shape: modern, legacy, junk",
				Value: "modern",
			},
			&cli.BoolFlag{
				Name:  "wait",
				Usage: "Stay up until SIGINT/SIGTERM instead of shutting down immediately",
			},
		},
		Action: run,
	}
}

func run(c *cli.Context) error {
	roster := buildRoster(c.Int("authenticated"), c.Int("limbo"), c.Int("npcs"))
	server, err := buildServer(c.String("shape"), roster)
	if err != nil {
		return err
	}

	opts := []plugin.Option{}
	if path := c.String("config"); path != "" {
		opts = append(opts, plugin.WithConfigFile(path))
	} else {
		opts = append(opts, plugin.WithSettings(settings.Default()))
	}

	ext, err := plugin.New(server, opts...)
	if err != nil {
		return fmt.Errorf("assemble extension: %w", err)
	}
	if err := ext.Enable(); err != nil {
		return fmt.Errorf("enable extension: %w", err)
	}

	ctx := context.Background()
	authenticated := c.Int("authenticated")
	for i, p := range roster {
		if p.HasMetadata(hostapi.MetadataNPC) {
			continue
		}
		if err := ext.HandleJoin(p); err != nil {
			return fmt.Errorf("join %s: %w", p.Name(), err)
		}
		if i < authenticated {
			if err := ext.HandleLogin(ctx, p); err != nil {
				return fmt.Errorf("login %s: %w", p.Name(), err)
			}
		}
	}

	fmt.Printf("simhost up: %d on roster, %d authenticated, accessor shape %q\n",
		len(roster), authenticated, c.String("shape"))

	h := shutdown.NewHandler(10 * time.Second)
	h.OnShutdown(func(context.Context) error {
		server.FireShutdown()
		return ext.Disable()
	})

	if !c.Bool("wait") {
		h.Trigger()
	}
	return h.Wait()
}

// buildRoster lays out authenticated players first so the login loop
// can address them by index.
func buildRoster(authenticated, limbo, npcs int) []hostapi.Player {
	roster := make([]hostapi.Player, 0, authenticated+limbo+npcs)
	for i := 0; i < authenticated; i++ {
		roster = append(roster, hosttest.NewPlayer(fmt.Sprintf("Hero%d", i+1)))
	}
	for i := 0; i < limbo; i++ {
		roster = append(roster, hosttest.NewPlayer(fmt.Sprintf("Guest%d", i+1)))
	}
	for i := 0; i < npcs; i++ {
		roster = append(roster, hosttest.NewNPC(fmt.Sprintf("npc%d", i+1)))
	}
	return roster
}

func buildServer(shape string, roster []hostapi.Player) (simServer, error) {
	switch shape {
	case "modern":
		return hosttest.NewModernServer(roster...), nil
	case "legacy":
		return hosttest.NewLegacySliceServer(roster...), nil
	case "junk":
		s := &hosttest.JunkServer{}
		s.Players = roster
		return s, nil
	default:
		return nil, fmt.Errorf("unknown accessor shape %q", shape)
	}
}
