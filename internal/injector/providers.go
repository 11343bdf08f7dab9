package injector

import (
	"go.uber.org/zap"

	"github.com/zeusync/corgecs/internal/config"
	"github.com/zeusync/corgecs/pkg/ecs"
)

// ProvideWorld creates a world configured by cfg.
func ProvideWorld(cfg *config.Config, logger *zap.Logger) (*ecs.World, error) {
	opts, err := cfg.WorldOptions(logger)
	if err != nil {
		return nil, err
	}
	return ecs.NewWorld(opts...), nil
}
