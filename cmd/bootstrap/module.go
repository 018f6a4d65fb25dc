package bootstrap

import (
	"commerce-order-core/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	MetricsModule,
	DBModule,
	components.PersistenceModule,
	components.MessagingModule,
	components.UseCaseModule,
	components.HandlerModule,
)
