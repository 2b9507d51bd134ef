// Package logging builds the structured slog logger used by the camp command
// and the node factory.
//
// The output format is selected by configuration:
//
//	json:    one JSON object per line
//	text:    key=value pairs
//	console: key=value pairs without the time attribute, for interactive use
//
// Example:
//
//	logger, err := logging.New(logging.Config{Level: "debug", Format: "text"})
//	if err != nil {
//	    return err
//	}
//	logger.Debug("constructed node", "kind", "punop")
package logging
