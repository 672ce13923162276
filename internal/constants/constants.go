// Package constants defines shared configuration constants.
package constants

var (
	ConfigFile = "config.yaml"

	DefaultDir = ".bqquery"

	// DefaultProjectID is the warehouse project the service was first deployed against.
	DefaultProjectID = "bigquery-477702"

	// DefaultDatasetID is the dataset holding the client and employee tables.
	DefaultDatasetID = "bq_sam"

	DefaultDuckDBPath = ""

	// DefaultSelectColumns is the projection used for every filter query.
	DefaultSelectColumns = "*"
)
