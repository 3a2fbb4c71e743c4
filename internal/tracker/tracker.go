// Package tracker orchestrates the extraction pipeline: it takes one inbound
// message (typed text, a batch of lines, or a receipt image), runs it through
// the oracle and the extraction passes, validates each candidate, and appends
// the surviving records to the persistence sink.
package tracker

import (
	"context"
	"strings"
	"time"

	"fauzan/catat-duit/internal/amount"
	"fauzan/catat-duit/internal/categorizer"
	"fauzan/catat-duit/internal/dateutils"
	"fauzan/catat-duit/internal/extractor"
	"fauzan/catat-duit/internal/logging"
	"fauzan/catat-duit/internal/models"
	"fauzan/catat-duit/internal/oracle"
	"fauzan/catat-duit/internal/parsererror"
	"fauzan/catat-duit/internal/segmenter"
	"fauzan/catat-duit/internal/sheets"
	"fauzan/catat-duit/internal/validation"
)

// Result is the outcome of processing one inbound message. Records holds the
// candidates that passed validation and were persisted, in document order.
// Reply is the user-facing confirmation text. Rejected counts candidates that
// were extracted but failed validation.
type Result struct {
	Records  []models.Record
	Reply    string
	Rejected int
}

// Tracker wires the pipeline's collaborators together. Construct one per
// process with New; all methods are safe for serial reuse. Carry-forward
// state lives in a per-call Batch, never on the Tracker itself.
type Tracker struct {
	oracle      oracle.Client
	sink        sheets.Sink
	categorizer *categorizer.Categorizer
	logger      logging.Logger
	clock       func() time.Time
}

// New creates a Tracker with the given collaborators. A nil logger falls
// back to the default logger.
func New(client oracle.Client, sink sheets.Sink, cat *categorizer.Categorizer, logger logging.Logger) *Tracker {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Tracker{
		oracle:      client,
		sink:        sink,
		categorizer: cat,
		logger:      logger,
		clock:       time.Now,
	}
}

// ParseText handles a single typed transaction. It never consults the
// oracle: the amount comes from the local Rupiah patterns, the category from
// keyword classification, and the timestamp is the current wall clock in WIB.
func (t *Tracker) ParseText(ctx context.Context, text string) (*Result, error) {
	tokens := categorizer.Tokenize(text)
	record := models.Record{
		Date:        t.clock().In(dateutils.WIB()).Format(dateutils.DateLayoutCanonical),
		Description: strings.Join(tokens, " "),
		Amount:      amount.Normalize(text),
		Category:    t.categorizer.ClassifyTokens(tokens),
		Source:      models.SourceManual,
	}

	result := &Result{}
	if err := validation.Validate(&record); err != nil {
		t.logger.Warn("rejecting manual entry",
			logging.Field{Key: logging.FieldOperation, Value: "text"},
			logging.Field{Key: logging.FieldReason, Value: err.Error()})
		result.Rejected = 1
		return result, nil
	}

	if err := t.persist(ctx, &record); err != nil {
		return nil, err
	}
	result.Records = append(result.Records, record)
	result.Reply = summarize(result.Records)
	return result, nil
}

// ParseBatch handles a multi-line expense message. Each non-empty line goes
// through the oracle's structuring prompt independently; the extracted dates
// share one carry-forward scope in line order. A line whose structured reply
// fails validation is counted as rejected and does not disturb its siblings.
// Nothing reaches the sink until every line's oracle call has succeeded, so
// an oracle failure midway never leaves earlier rows behind.
func (t *Tracker) ParseBatch(ctx context.Context, text string) (*Result, error) {
	lines := segmenter.SplitLines(text)
	batch := segmenter.NewBatch(t.clock())
	result := &Result{}

	for _, line := range lines {
		reply, err := t.oracle.Generate(ctx, oracle.BatchLinePrompt+line)
		if err != nil {
			return nil, &parsererror.OracleError{Operation: "batch", Err: err}
		}
		if strings.TrimSpace(reply) == "" {
			t.logger.Warn("oracle returned nothing for line",
				logging.Field{Key: logging.FieldOperation, Value: "batch"},
				logging.Field{Key: logging.FieldChunk, Value: line})
			result.Rejected++
			continue
		}

		fields := extractor.Extract(reply)
		record := models.Record{
			Date:        batch.Resolve(fields.Date),
			Description: fields.Description,
			Amount:      fields.Amount,
			Category:    fields.Category,
			Source:      models.SourceBatch,
		}
		if err := validation.Validate(&record); err != nil {
			t.logger.Warn("rejecting batch line",
				logging.Field{Key: logging.FieldOperation, Value: "batch"},
				logging.Field{Key: logging.FieldChunk, Value: line},
				logging.Field{Key: logging.FieldReason, Value: err.Error()})
			result.Rejected++
			continue
		}
		result.Records = append(result.Records, record)
	}

	for i := range result.Records {
		if err := t.persist(ctx, &result.Records[i]); err != nil {
			return nil, err
		}
	}

	t.logger.Info("batch processed",
		logging.Field{Key: logging.FieldCount, Value: len(result.Records)},
		logging.Field{Key: logging.FieldRejected, Value: result.Rejected})
	result.Reply = summarize(result.Records)
	return result, nil
}

// ParseReceipt handles a receipt image. The oracle's vision reply is split on
// blank lines into one candidate per transaction; candidates share one
// carry-forward scope in paragraph order. An empty or whitespace-only reply
// yields ErrOracleEmpty.
func (t *Tracker) ParseReceipt(ctx context.Context, image []byte, mime string) (*Result, error) {
	reply, err := t.oracle.GenerateVision(ctx, oracle.ReceiptPrompt, image, mime)
	if err != nil {
		return nil, &parsererror.OracleError{Operation: "receipt", Err: err}
	}
	if strings.TrimSpace(reply) == "" {
		return nil, &parsererror.OracleError{Operation: "receipt", Err: parsererror.ErrOracleEmpty}
	}

	chunks := segmenter.SplitParagraphs(reply)
	batch := segmenter.NewBatch(t.clock())
	result := &Result{}

	for _, chunk := range chunks {
		fields := extractor.Extract(chunk)
		record := models.Record{
			Date:        batch.Resolve(fields.Date),
			Description: fields.Description,
			Amount:      fields.Amount,
			Category:    fields.Category,
			Source:      models.SourceReceipt,
		}
		if err := validation.Validate(&record); err != nil {
			t.logger.Warn("rejecting receipt candidate",
				logging.Field{Key: logging.FieldOperation, Value: "receipt"},
				logging.Field{Key: logging.FieldReason, Value: err.Error()})
			result.Rejected++
			continue
		}
		if err := t.persist(ctx, &record); err != nil {
			return nil, err
		}
		result.Records = append(result.Records, record)
	}

	t.logger.Info("receipt processed",
		logging.Field{Key: logging.FieldCount, Value: len(result.Records)},
		logging.Field{Key: logging.FieldRejected, Value: result.Rejected})
	result.Reply = summarize(result.Records)
	return result, nil
}

func (t *Tracker) persist(ctx context.Context, record *models.Record) error {
	if err := t.sink.Append(ctx, record.Year(), record.Row()); err != nil {
		t.logger.WithError(err).Error("append to sink failed",
			logging.Field{Key: logging.FieldYear, Value: record.Year()})
		return err
	}
	t.logger.Debug("record persisted",
		logging.Field{Key: logging.FieldYear, Value: record.Year()},
		logging.Field{Key: logging.FieldSource, Value: string(record.Source)},
		logging.Field{Key: logging.FieldAmount, Value: record.Amount},
		logging.Field{Key: logging.FieldDate, Value: record.Date})
	return nil
}

// summarize renders the confirmation text for the persisted records, one
// labeled block per record.
func summarize(records []models.Record) string {
	if len(records) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("Tercatat:")
	for _, r := range records {
		b.WriteString("\n- Deskripsi: ")
		b.WriteString(r.Description)
		b.WriteString("\n- Jumlah: ")
		b.WriteString(amount.FormatRupiah(r.Amount))
		b.WriteString("\n- Kategori: ")
		b.WriteString(r.Category)
		b.WriteString("\n- Tanggal: ")
		b.WriteString(r.Date)
	}
	return b.String()
}
