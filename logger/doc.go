// Package logger provides structured logging for iterkit using zerolog.
//
// Library code never configures logging on its own: it asks the named
// registry for a component logger and logs at debug level. Applications
// (such as cmd/iterctl) call Init once with a Config to pick level,
// format and output.
//
// # Configuration
//
//	logging:
//	  level: "debug"
//	  format: "json"
//
// # Usage
//
//	log := logger.Get("itertools")
//	log.Debug("tee block allocated", logger.Fields("block", 3))
package logger
