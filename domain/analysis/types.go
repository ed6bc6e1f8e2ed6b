package analysis

// Required input columns.
const (
	ColumnCategory = "category"
	ColumnValue    = "value"
)

// CategoryStat is one aggregated row: the summary statistics for a single
// distinct category. Std uses the sample (n-1) convention and is NaN for a
// category with exactly one sample.
type CategoryStat struct {
	Category string  `json:"category"`
	Mean     float64 `json:"avg_value"`
	Std      float64 `json:"std_value"`
	Count    int     `json:"count"`
}

// Results holds the outcome of one analysis run. Immutable once built.
type Results struct {
	// HighVariance is the subset of aggregated rows whose standard
	// deviation exceeded threshold * mean, in aggregated-table order.
	HighVariance []CategoryStat `json:"high_variance_categories"`

	// TotalSamples is the sum of Count over all aggregated rows, flagged
	// or not.
	TotalSamples int `json:"total_samples"`

	// AnomalyRate is flagged categories over all categories, in [0,1].
	// NaN when the aggregated table was empty.
	AnomalyRate float64 `json:"anomaly_rate"`
}

// Chart is the handle returned after a chart has been rendered and saved.
type Chart struct {
	Path string `json:"path"`
	Bars int    `json:"bars"`
}
