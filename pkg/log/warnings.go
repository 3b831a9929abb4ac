package log

import (
	"io"

	"github.com/rs/zerolog"

	olserrors "github.com/olskit/olskit/pkg/errors"
)

// UseZerologWarnings routes library warnings (for example the
// UndefinedMetricWarning raised for R² on a constant response) through a
// zerolog console logger writing to w. Warning types that implement
// zerolog.LogObjectMarshaler are emitted with their structured fields.
func UseZerologWarnings(w io.Writer) {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: w}).With().Timestamp().Logger()
	olserrors.SetZerologWarnFunc(func(warning error) {
		if obj, ok := warning.(zerolog.LogObjectMarshaler); ok {
			logger.Warn().Object("warning", obj).Msg(warning.Error())
			return
		}
		logger.Warn().Err(warning).Msg("estimator warning")
	})
}
