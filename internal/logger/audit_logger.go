// Package logger provides audit logging.
package logger

import (
	"time"

	"github.com/sirupsen/logrus"
)

// AuditLogger provides a dedicated audit trail for ledger mutations.
type AuditLogger struct {
	*logrus.Entry
}

// NewAuditLogger creates a new audit logger.
func NewAuditLogger(baseLogger *logrus.Logger) *AuditLogger {
	return &AuditLogger{
		Entry: baseLogger.WithField("component", "audit"),
	}
}

// LogBetPlacement logs a bet placement event.
func (al *AuditLogger) LogBetPlacement(betID, fighter, opponent, book string, stake float64, americanOdds int, timestamp time.Time) {
	al.WithFields(logrus.Fields{
		"bet_id":    betID,
		"fighter":   fighter,
		"opponent":  opponent,
		"book":      book,
		"stake":     stake,
		"odds":      americanOdds,
		"timestamp": timestamp.Unix(),
	}).Info("Bet placement recorded")
}

// LogBetSettlement logs a bet settlement event.
func (al *AuditLogger) LogBetSettlement(betID, outcome string, stake, resultAmount float64) {
	al.WithFields(logrus.Fields{
		"bet_id":        betID,
		"outcome":       outcome,
		"stake":         stake,
		"result_amount": resultAmount,
	}).Info("Bet settlement recorded")
}

// LogBetCorrection logs a manual edit to a bet's fields.
func (al *AuditLogger) LogBetCorrection(betID string, changedFields []string) {
	al.WithFields(logrus.Fields{
		"bet_id":         betID,
		"changed_fields": changedFields,
	}).Info("Bet correction recorded")
}

// LogBetDeletion logs a bet removal.
func (al *AuditLogger) LogBetDeletion(betID string) {
	al.WithField("bet_id", betID).Info("Bet deletion recorded")
}
