package warehouse

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"cloud.google.com/go/bigquery"
	"github.com/rs/zerolog"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"

	"github.com/zxc72608/bigquery/internal/query"
)

// BigQuery runs statements as BigQuery standard SQL jobs. The underlying
// client is safe for concurrent use.
type BigQuery struct {
	client    *bigquery.Client
	projectID string
	datasetID string
	logger    zerolog.Logger
}

// NewBigQuery creates a BigQuery client for cfg.ProjectID.
func NewBigQuery(ctx context.Context, cfg Config, logger zerolog.Logger) (*BigQuery, error) {
	if cfg.ProjectID == "" {
		return nil, fmt.Errorf("bigquery project id is required")
	}
	if cfg.DatasetID == "" {
		return nil, fmt.Errorf("bigquery dataset id is required")
	}

	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	client, err := bigquery.NewClient(ctx, cfg.ProjectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create BigQuery client: %w", err)
	}
	if cfg.Location != "" {
		client.Location = cfg.Location
	}

	return &BigQuery{
		client:    client,
		projectID: cfg.ProjectID,
		datasetID: cfg.DatasetID,
		logger:    logger.With().Str("component", "bigquery").Logger(),
	}, nil
}

// TableRef returns `project.dataset.table`.
func (b *BigQuery) TableRef(table string) string {
	return bigQueryTableRef(b.projectID, b.datasetID, table)
}

func bigQueryTableRef(projectID, datasetID, table string) string {
	return fmt.Sprintf("`%s.%s.%s`", projectID, datasetID, table)
}

// Query runs stmt with its arguments bound as positional parameters.
func (b *BigQuery) Query(ctx context.Context, stmt query.Statement, maxRows int) ([]Row, error) {
	start := time.Now()

	q := b.client.Query(stmt.SQL)
	q.Parameters = make([]bigquery.QueryParameter, len(stmt.Args))
	for i, arg := range stmt.Args {
		q.Parameters[i] = bigquery.QueryParameter{Value: arg}
	}

	it, err := q.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to run query: %w", err)
	}

	rows := make([]Row, 0)
	for maxRows <= 0 || len(rows) < maxRows {
		var values []bigquery.Value
		err := it.Next(&values)
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row: %w", err)
		}

		row := make(Row, len(values))
		for i, v := range values {
			row[i] = Column{Name: it.Schema[i].Name, Value: bigQueryValue(v)}
		}
		rows = append(rows, row)
	}

	b.logger.Debug().
		Str("sql", stmt.String()).
		Int("rows", len(rows)).
		Dur("duration", time.Since(start)).
		Msg("Query completed")

	return rows, nil
}

// Close closes the BigQuery client.
func (b *BigQuery) Close() error {
	return b.client.Close()
}

// bigQueryValue converts values that do not encode to JSON as plain scalars.
func bigQueryValue(v bigquery.Value) any {
	switch val := v.(type) {
	case *big.Rat:
		if val == nil {
			return nil
		}
		return bigquery.NumericString(val)
	case []bigquery.Value:
		out := make([]any, len(val))
		for i, elem := range val {
			out[i] = bigQueryValue(elem)
		}
		return out
	default:
		return val
	}
}
