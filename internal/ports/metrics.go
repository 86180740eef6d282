package ports

import "context"

// DashboardMetrics records domain events as telemetry.
// Implemented by platform/telemetry; called by application services.
type DashboardMetrics interface {
	// RecordMutation counts a successful write to entity ("task", "budget",
	// "view") with the given operation name.
	RecordMutation(ctx context.Context, entity, operation string)

	// RecordLevelUp counts a user reaching level.
	RecordLevelUp(ctx context.Context, level int64)
}
