package pipeline

import (
	"sort"
	"strings"

	"github.com/kurochkinivan/equipment_reporter/internal/domain"
)

const (
	ColumnEquipmentType = "equipment_type"
	ColumnStatus        = "status"

	costSubstring = "cost"
)

// Aggregate computes the summary of a normalized table. It never fails: columns
// that are not numeric are left out of the averages.
func Aggregate(table *domain.Table) *domain.Summary {
	summary := &domain.Summary{
		TotalCount:                table.Len(),
		Averages:                  domain.Averages{},
		EquipmentTypeDistribution: distribution(table, ColumnEquipmentType),
		StatusDistribution:        distribution(table, ColumnStatus),
	}

	var (
		cost      float64
		costFound bool
	)

	for j, column := range table.Columns {
		if !column.Kind.Numeric() {
			continue
		}

		avg, ok := mean(table, j)
		if !ok {
			continue
		}

		summary.Averages.Set(column.Name, avg)

		if !costFound && strings.Contains(strings.ToLower(column.Name), costSubstring) {
			cost, costFound = avg, true
		}
	}

	summary.Averages.Set(domain.CostKey, cost)

	return summary
}

func mean(table *domain.Table, j int) (float64, bool) {
	values := make([]float64, 0, table.Len())
	for _, row := range table.Rows {
		switch v := row[j].(type) {
		case int64:
			values = append(values, float64(v))
		case float64:
			values = append(values, v)
		}
	}

	if len(values) == 0 {
		return 0, false
	}

	return pairwiseSum(values) / float64(len(values)), true
}

// pairwiseSum adds values in 8-wide partial sums, splitting into halves above 128 values.
func pairwiseSum(values []float64) float64 {
	const blockSize = 128

	n := len(values)
	switch {
	case n < 8:
		var sum float64
		for _, v := range values {
			sum += v
		}
		return sum

	case n <= blockSize:
		var r [8]float64
		copy(r[:], values[:8])

		i := 8
		for ; i < n-n%8; i += 8 {
			for k := range r {
				r[k] += values[i+k]
			}
		}

		sum := ((r[0] + r[1]) + (r[2] + r[3])) + ((r[4] + r[5]) + (r[6] + r[7]))
		for ; i < n; i++ {
			sum += values[i]
		}
		return sum

	default:
		half := n / 2
		half -= half % 8
		return pairwiseSum(values[:half]) + pairwiseSum(values[half:])
	}
}

// distribution counts the source text of the named column, most frequent
// first. Equal counts keep the order in which the values were first seen.
func distribution(table *domain.Table, name string) domain.Distribution {
	counts := domain.Distribution{}

	j := table.Index(name)
	if j < 0 {
		return counts
	}

	index := make(map[string]int)
	for i := range table.Rows {
		value := table.Text(i, j)

		i, ok := index[value]
		if !ok {
			i = len(counts)
			index[value] = i
			counts = append(counts, domain.Entry[int]{Key: value})
		}
		counts[i].Value++
	}

	sort.SliceStable(counts, func(a, b int) bool {
		return counts[a].Value > counts[b].Value
	})

	return counts
}
