package profile

// Upstream encodes gender and enrollment status as small integers. The
// mappings below mirror what the academic office publishes.

func GenderLabel(code int) string {
	if code == 0 {
		return "Male"
	}
	return "Female"
}

var statusLabels = map[int]string{
	0: "Enrolled",
	1: "On leave",
	2: "Suspended",
	3: "Dropped out",
	4: "Graduated",
}

func StatusLabel(code int) string {
	if label, ok := statusLabels[code]; ok {
		return label
	}
	return "Unknown"
}
