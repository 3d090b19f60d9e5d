package utils

import (
	. "github.com/Luismorlan/choirmux/utils/dotenv"
	. "github.com/Luismorlan/choirmux/utils/flag"
	Logger "github.com/Luismorlan/choirmux/utils/log"
	"github.com/sirupsen/logrus"
	"gopkg.in/DataDog/dd-trace-go.v1/ddtrace/tracer"
)

func ddEnv() string {
	if IsProdEnv() {
		return "production"
	}
	return "development"
}

// StartTracer starts the Datadog tracer for the current service.
func StartTracer() {
	tracer.Start(
		tracer.WithService(*ServiceName),
		tracer.WithEnv(ddEnv()),
	)

	Logger.Log.WithFields(
		logrus.Fields{"service": *ServiceName, "is_development": *IsDevelopment},
	).Info("tracer initialized")
}

// Stop tracer, OK to be closed multiple times
func CloseTracer() {
	// Datadog tracer
	tracer.Stop()
}
