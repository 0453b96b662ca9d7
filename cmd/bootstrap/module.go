package bootstrap

import (
	"hotel-backoffice/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	PMSModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.SyncModule,
	components.HandlerModule,
	SchedulerModule,
)
