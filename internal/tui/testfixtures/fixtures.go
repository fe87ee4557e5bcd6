package testfixtures

// Scenario is a complete wizard run with its expected display values.
type Scenario struct {
	Name          string
	Weights       []string
	Marks         []string
	Total         string
	Contributions []string
}

// Scenarios returns end-to-end runs shared by wizard, CLI and tool tests.
func Scenarios() []Scenario {
	return []Scenario{
		{
			Name:          "two components",
			Weights:       []string{"60", "40"},
			Marks:         []string{"80", "90"},
			Total:         "84.00",
			Contributions: []string{"48.00", "36.00"},
		},
		{
			Name:          "single component",
			Weights:       []string{"100"},
			Marks:         []string{"75"},
			Total:         "75.00",
			Contributions: []string{"75.00"},
		},
		{
			Name:          "uneven thirds",
			Weights:       []string{"33.33", "33.33", "33.34"},
			Marks:         []string{"100", "0", "50"},
			Total:         "50.00",
			Contributions: []string{"33.33", "0.00", "16.67"},
		},
		{
			Name:          "five components",
			Weights:       []string{"10", "15", "20", "25", "30"},
			Marks:         []string{"70", "60", "55", "80", "90"},
			Total:         "74.00",
			Contributions: []string{"7.00", "9.00", "11.00", "20.00", "27.00"},
		},
	}
}
