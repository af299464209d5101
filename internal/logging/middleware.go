package logging

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/sirupsen/logrus"
)

// Middleware logs a start/complete pair for every request and stashes a fresh
// LogData in the context so handlers and services can attach timings and
// fields to the completion line.
func Middleware(log *logrus.Logger) func(ctx huma.Context, next func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		logData := NewLogData(log)
		logData.AddData("method", ctx.Method())
		logData.AddData("path", ctx.URL().Path)

		log.WithFields(logrus.Fields{
			"method": ctx.Method(),
			"path":   ctx.URL().Path,
		}).Info("Handler.Start")

		endTimer := logData.AddTiming("durationMs")
		ctx = huma.WithValue(ctx, contextKey{}, logData)
		next(ctx)
		endTimer()

		logData.AddData("status", ctx.Status())
		logData.Log().Info("Handler.Complete")
	}
}
