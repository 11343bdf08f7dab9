//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package injector

import (
	"github.com/google/wire"

	"github.com/zeusync/corgecs/internal/config"
	"github.com/zeusync/corgecs/internal/core/observability/log"
	"github.com/zeusync/corgecs/pkg/ecs"
)

func InitializeWorld(cfg *config.Config) (*ecs.World, error) {
	wire.Build(log.Provide, ProvideWorld)
	return nil, nil
}
