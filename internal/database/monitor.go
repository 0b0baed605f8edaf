package database

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/event"
)

// commandLogger turns driver command events into log lines.
//
// verbose logs every command start and completion at debug; otherwise only
// slow and failed commands are logged.
type commandLogger struct {
	logger    *zerolog.Logger
	threshold time.Duration
	verbose   bool
}

// NewCommandMonitor returns a driver command monitor backed by logger.
// A zero threshold disables slow command warnings.
func NewCommandMonitor(logger *zerolog.Logger, threshold time.Duration, verbose bool) *event.CommandMonitor {
	cl := &commandLogger{
		logger:    logger,
		threshold: threshold,
		verbose:   verbose,
	}

	return &event.CommandMonitor{
		Started:   cl.started,
		Succeeded: cl.succeeded,
		Failed:    cl.failed,
	}
}

func (cl *commandLogger) started(_ context.Context, evt *event.CommandStartedEvent) {
	if !cl.verbose {
		return
	}

	cl.logger.Debug().
		Str("command", evt.CommandName).
		Str("database", evt.DatabaseName).
		Int64("request_id", evt.RequestID).
		Str("collection", commandTarget(evt.Command)).
		Int("body_bytes", len(evt.Command)).
		Msg("mongo command started")
}

func (cl *commandLogger) succeeded(_ context.Context, evt *event.CommandSucceededEvent) {
	if cl.isSlow(evt.Duration) {
		cl.logger.Warn().
			Str("command", evt.CommandName).
			Int64("request_id", evt.RequestID).
			Dur("duration", evt.Duration).
			Dur("threshold", cl.threshold).
			Msg("slow mongo command")
		return
	}

	if cl.verbose {
		cl.logger.Debug().
			Str("command", evt.CommandName).
			Int64("request_id", evt.RequestID).
			Dur("duration", evt.Duration).
			Msg("mongo command succeeded")
	}
}

func (cl *commandLogger) failed(_ context.Context, evt *event.CommandFailedEvent) {
	cl.logger.Warn().
		Str("command", evt.CommandName).
		Int64("request_id", evt.RequestID).
		Dur("duration", evt.Duration).
		Str("failure", evt.Failure).
		Msg("mongo command failed")
}

func (cl *commandLogger) isSlow(d time.Duration) bool {
	return cl.threshold > 0 && d >= cl.threshold
}

// commandTarget returns the collection a command addresses, which is the
// value of its first element ({find: "employees", ...}). Documents are not
// logged since they carry employee data.
func commandTarget(cmd bson.Raw) string {
	elem, err := cmd.IndexErr(0)
	if err != nil {
		return ""
	}
	target, _ := elem.Value().StringValueOK()
	return target
}
