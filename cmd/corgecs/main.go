package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/zeusync/corgecs/internal/config"
	"github.com/zeusync/corgecs/internal/injector"
	"github.com/zeusync/corgecs/pkg/ecs"
	"github.com/zeusync/corgecs/pkg/signals"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	creatures := flag.Int("creatures", 3, "number of creatures to spawn")
	ticks := flag.Int("ticks", 2, "number of regeneration ticks to broadcast")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, *configPath, *creatures, *ticks); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, configPath string, creatures, ticks int) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	world, err := injector.InitializeWorld(cfg)
	if err != nil {
		return err
	}
	logger := world.Logger()
	defer func() { _ = logger.Sync() }()

	spawned := make([]*ecs.Entity, 0, creatures)
	for i := range creatures {
		e := world.CreateEntity().
			WithComponent(&Health{HP: 30, Max: 30}).
			WithComponent(&Armor{Defense: i}).
			WithComponent(&Regeneration{PerTick: 2})
		if i%2 == 1 {
			e.WithComponent(&Armor{Defense: 1})
		}
		spawned = append(spawned, e)
	}

	for _, e := range spawned {
		hit := Attack(e, 12)
		logger.Info("creature hit", zap.Stringer("entity", e.ID()), zap.Int("damage", hit))
	}

	for range ticks {
		if err := ecs.Broadcast(ctx, world, Tick{}); err != nil {
			return fmt.Errorf("broadcast tick: %w", err)
		}
	}

	regen := ecs.GetEntitySystem[RegenerationSystem](world)
	logger.Info("regeneration system", zap.Int("members", regen.Len()))

	for _, e := range spawned {
		hp := ecs.RaiseRequest[QueryHealth, int](e, QueryHealth{})
		summary := signals.Map(hp, func(v int) string { return fmt.Sprintf("%d HP", v) })
		logger.Info("creature status",
			zap.Stringer("entity", e.ID()),
			zap.Strings("health", summary.Values()),
			zap.Uint64("handlers_run", e.Metrics().Delivered),
		)
	}
	return nil
}
