package view

import "strconv"

// FormatSalary renders a salary range as a USD string with no decimals:
//
//	FormatSalary(80000, 120000) => "$80,000 - $120,000"
//	FormatSalary(80000, nil)    => "$80,000+"
//	FormatSalary(nil, 120000)   => "Up to $120,000"
//	FormatSalary(nil, nil)      => "—"
func FormatSalary(min, max *int64) string {
	switch {
	case min != nil && max != nil:
		return usd(*min) + " - " + usd(*max)
	case min != nil:
		return usd(*min) + "+"
	case max != nil:
		return "Up to " + usd(*max)
	default:
		return "—"
	}
}

// usd formats a whole-dollar amount with comma-grouped thousands.
func usd(n int64) string {
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	digits := strconv.FormatInt(n, 10)
	var out []byte
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, d)
	}
	return sign + "$" + string(out)
}
