// Package main demonstrates usage of the scg-widerror package.
package main

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/next-trace/scg-widerror/widerror"
)

func main() {
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()

	// Root cause as reported by a storage layer, built through the
	// namespace route.
	cause := widerror.E(0, widerror.DefaultMessage("row not found"),
		widerror.WithNamespace(20001, 17),
		widerror.WithName("order_row_missing"),
		widerror.WithKind(widerror.KindNotFound),
		widerror.WithScope(widerror.ScopeServerside),
		widerror.WithRetryMode(widerror.RetryDenied),
	)

	// Service-level record wrapping the cause, with an i18n message for
	// the caller-facing text and a legacy system mapping code.
	e := widerror.E(0, widerror.I18nMessage("order.not_found"),
		widerror.WithNamespace(20001, 3),
		widerror.WithName("order_not_found"),
		widerror.WithKind(widerror.KindNotFound),
		widerror.WithPassThroughMode(widerror.PassThroughShould),
		widerror.WithMappingCode(-404),
		widerror.WithCause(cause),
	)

	log.Error().
		Uint32("code", e.Code()).
		Str("name", e.Name()).
		Uint32("namespace", e.Namespace()).
		Str("kind", e.Kind().String()).
		Int("http_status", e.Kind().HTTPStatus()).
		Msg(e.Error())

	wire, err := widerror.Marshal(e)
	if err != nil {
		log.Fatal().Err(err).Msg("marshal failed")
	}
	log.Info().RawJSON("record", wire).Msg("wire form")

	back, err := widerror.Unmarshal(wire)
	if err != nil {
		log.Fatal().Err(err).Msg("unmarshal failed")
	}
	log.Info().Bool("round_trip_equal", e.Equal(back)).Send()
}
