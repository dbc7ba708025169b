// Package logger provides structured logging for convodyn using zerolog.
//
// It supports JSON and console output, log level configuration, and
// component-scoped loggers with structured fields.
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "json"
//
// # Usage
//
//	log := logger.NewDefault("convodyn").WithComponent("analyzer")
//	log.Info("conversation analyzed", logger.Fields(
//	    logger.FieldConversationID, id,
//	    logger.FieldTurns, len(turns),
//	))
package logger
