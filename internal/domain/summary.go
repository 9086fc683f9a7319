package domain

// Averages maps a numeric column name to its mean, in source column order.
type Averages = OrderedMap[float64]

// Distribution maps a category value to its frequency, most frequent first.
type Distribution = OrderedMap[int]

// CostKey is always present in Summary.Averages.
const CostKey = "cost"

type Summary struct {
	TotalCount                int          `json:"total_count"`
	Averages                  Averages     `json:"averages"`
	EquipmentTypeDistribution Distribution `json:"equipment_type_distribution"`
	StatusDistribution        Distribution `json:"status_distribution"`
}

func (s *Summary) AverageCost() float64 {
	cost, _ := s.Averages.Get(CostKey)
	return cost
}
