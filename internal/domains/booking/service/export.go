package service

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"nirvanica/internal/domains/booking/model"
	"nirvanica/internal/domains/booking/model/dto"
	"nirvanica/shared/constant"
	"nirvanica/shared/timezone"
)

var csvHeader = []string{
	"Booking ID",
	"Guest Name",
	"Email",
	"Phone",
	"Check-in",
	"Check-out",
	"Room Type",
	"Guests",
	"Status",
	"Total Amount",
	"Created At",
}

// ExportCSV renders the full ledger as a CSV attachment named after today's
// date. When S3 archival is enabled a copy is uploaded in the background;
// the response never waits on the upload.
func (l *ledgerImpl) ExportCSV(ctx context.Context) dto.CSVExport {
	ctx, scope := l.otel.NewScope(ctx, scopeName, scopeName+".ExportCSV")
	defer scope.End()

	l.mu.RLock()
	records := model.CloneAll(l.records)
	l.mu.RUnlock()

	var sb strings.Builder
	sb.WriteString(strings.Join(csvHeader, ","))

	for i := range records {
		sb.WriteByte('\n')
		sb.WriteString(strings.Join(csvRow(&records[i]), ","))
	}

	export := dto.CSVExport{
		FileName: exportFileName(timezone.Now()),
		Content:  []byte(sb.String()),
	}

	if l.config.External.S3.Enable {
		go l.archiveExport(context.WithoutCancel(ctx), export)
	}

	return export
}

// csvRow renders one ledger entry. The guest name is always quoted since it
// is the one field that routinely carries commas in free text.
func csvRow(record *model.BookingRecord) []string {
	return []string{
		record.ID,
		`"` + record.GuestName() + `"`,
		record.Email,
		record.Phone,
		timezone.Format(record.CheckIn, constant.CalendarFormat),
		timezone.Format(record.CheckOut, constant.CalendarFormat),
		record.RoomTypeLabel(),
		strconv.Itoa(record.TotalGuests),
		record.Status,
		strconv.FormatFloat(record.TotalAmount, 'f', -1, 64),
		timezone.Format(record.CreatedAt, constant.DateFormat),
	}
}

func exportFileName(day time.Time) string {
	return "bookings-" + timezone.Format(day, constant.CalendarFormat) + ".csv"
}

// archiveExport uploads the rendered CSV and then drops the previous day's
// archive, so the bucket only ever holds the latest export.
func (l *ledgerImpl) archiveExport(ctx context.Context, export dto.CSVExport) {
	directory := l.config.External.S3.ExportDirectory

	key, err := l.s3.UploadBytes(
		ctx,
		directory,
		export.FileName,
		constant.ContentTypeCSV,
		export.Content,
	)
	if err != nil {
		log.Error().Err(err).Str("fileName", export.FileName).Msg("Failed to archive booking export")

		return
	}

	log.Info().Str("key", key).Msg("Booking export archived")

	previous := exportFileName(timezone.Now().AddDate(0, 0, -1))
	if err = l.s3.DeleteObject(ctx, directory, previous); err != nil {
		log.Error().Err(err).Str("fileName", previous).Msg("Failed to prune previous booking export")
	}
}
