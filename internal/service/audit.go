package service

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

// AuditLog receives the human-readable activity trail. Implementations
// must never fail the calling operation; recording is fire-and-forget.
type AuditLog interface {
	Record(format string, args ...interface{})
}

type auditLog struct{}

func NewAuditLog() AuditLog {
	return &auditLog{}
}

func (a *auditLog) Record(format string, args ...interface{}) {
	log.Info().Str("channel", "activity").Msg(fmt.Sprintf(format, args...))
}
