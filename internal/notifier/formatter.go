package notifier

import (
	"fmt"
	"time"
)

// Subject builds the email subject line for a report generated at now.
func Subject(now time.Time) string {
	return fmt.Sprintf("Daily Market Dashboard — %s", now.Format("Jan 02, 2006"))
}

// Body builds the plain-text email body summarizing the covered instruments.
func Body(now time.Time) string {
	return fmt.Sprintf(
		"Good morning!\n\n"+
			"Attached is your daily market dashboard for %s.\n\n"+
			"Covers: SPY, QQQ, IGV, 11 S&P sector ETFs, BTC, ETH, "+
			"US Treasury yields, Japan 10Y, Gold & Silver.\n\n"+
			"— Auto-generated at %s SGT",
		now.Format("Monday, January 02, 2006"),
		now.Format("03:04 PM"),
	)
}

// AttachmentName builds the date-stamped PDF attachment filename.
func AttachmentName(now time.Time) string {
	return fmt.Sprintf("Market_Dashboard_%s.pdf", now.Format("20060102"))
}
