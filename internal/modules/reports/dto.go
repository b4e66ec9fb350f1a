package reports

import (
	"bytes"
	"encoding/json"
	"time"
)

// Metric is one labelled summary value. Metrics keep insertion order
// because both the JSON contract and the export layout depend on it.
type Metric struct {
	Key   string
	Value any
}

type Metrics []Metric

func (m *Metrics) Add(key string, value any) {
	*m = append(*m, Metric{Key: key, Value: value})
}

// Get returns the value for key, nil when absent.
func (m Metrics) Get(key string) any {
	for _, metric := range m {
		if metric.Key == key {
			return metric.Value
		}
	}
	return nil
}

func (m Metrics) MarshalJSON() ([]byte, error) {
	return marshalOrdered(func(yield func(string, any)) {
		for _, metric := range m {
			yield(metric.Key, metric.Value)
		}
	})
}

// Cell is one column of a detail row.
type Cell struct {
	Key   string
	Value any
}

// Row is one line item of a report's tabular section, with stable column
// order.
type Row []Cell

func (r *Row) Set(key string, value any) {
	*r = append(*r, Cell{Key: key, Value: value})
}

// Columns returns the row's column names in order.
func (r Row) Columns() []string {
	cols := make([]string, 0, len(r))
	for _, cell := range r {
		cols = append(cols, cell.Key)
	}
	return cols
}

// Get returns the value for the column, nil when absent.
func (r Row) Get(key string) any {
	for _, cell := range r {
		if cell.Key == key {
			return cell.Value
		}
	}
	return nil
}

func (r Row) MarshalJSON() ([]byte, error) {
	return marshalOrdered(func(yield func(string, any)) {
		for _, cell := range r {
			yield(cell.Key, cell.Value)
		}
	})
}

type Detail []Row

// Report is the uniform envelope wrapping one category's metrics and
// detail for transport or export. Created per request, never persisted.
type Report struct {
	Category    Category  `json:"categoria"`
	Title       string    `json:"titulo"`
	PeriodStart time.Time `json:"-"`
	PeriodEnd   time.Time `json:"-"`
	Metrics     Metrics   `json:"metricas"`
	Detail      Detail    `json:"detalle"`
	GeneratedAt time.Time `json:"-"`
}

func (r Report) MarshalJSON() ([]byte, error) {
	type alias struct {
		Category    Category `json:"categoria"`
		Title       string   `json:"titulo"`
		PeriodStart string   `json:"periodo_inicio"`
		PeriodEnd   string   `json:"periodo_fin"`
		Metrics     Metrics  `json:"metricas"`
		Detail      Detail   `json:"detalle"`
		GeneratedAt string   `json:"fecha_generacion"`
	}
	return json.Marshal(alias{
		Category:    r.Category,
		Title:       r.Title,
		PeriodStart: r.PeriodStart.Format("2006-01-02"),
		PeriodEnd:   r.PeriodEnd.Format("2006-01-02"),
		Metrics:     r.Metrics,
		Detail:      r.Detail,
		GeneratedAt: r.GeneratedAt.Format(time.RFC3339),
	})
}

// marshalOrdered writes a JSON object preserving the caller's key order,
// which encoding/json maps would not.
func marshalOrdered(pairs func(yield func(string, any))) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	var marshalErr error
	first := true
	pairs(func(key string, value any) {
		if marshalErr != nil {
			return
		}
		if !first {
			buf.WriteByte(',')
		}
		first = false

		k, err := json.Marshal(key)
		if err != nil {
			marshalErr = err
			return
		}
		buf.Write(k)
		buf.WriteByte(':')

		v, err := json.Marshal(value)
		if err != nil {
			marshalErr = err
			return
		}
		buf.Write(v)
	})
	if marshalErr != nil {
		return nil, marshalErr
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}
