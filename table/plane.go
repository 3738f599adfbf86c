package table

// PlaneCount is the number of records falling in one Unicode plane.
type PlaneCount struct {
	Plane int
	Name  string
	Count int
}

const planes = 17

var planeNames = map[int]string{
	0:  "Basic Multilingual Plane",
	1:  "Supplementary Multilingual Plane",
	2:  "Supplementary Ideographic Plane",
	3:  "Tertiary Ideographic Plane",
	14: "Supplementary Special-purpose Plane",
	15: "Supplementary Private Use Area-A",
	16: "Supplementary Private Use Area-B",
}

// Plane returns the Unicode plane of cp.
func Plane(cp int) int {
	return cp >> 16
}

// PlaneName returns the name of plane p, or "Unassigned" for planes 4 to 13.
func PlaneName(p int) string {
	if name, ok := planeNames[p]; ok {
		return name
	}
	return "Unassigned"
}

// CountByPlane counts records per plane. Planes without records are omitted
// and the result is ordered by plane.
func CountByPlane(records []Record) []PlaneCount {
	var counts [planes]int
	for _, r := range records {
		if p := Plane(r.CodePoint); p >= 0 && p < planes {
			counts[p]++
		}
	}

	var result []PlaneCount
	for p, n := range counts {
		if n == 0 {
			continue
		}
		result = append(result, PlaneCount{Plane: p, Name: PlaneName(p), Count: n})
	}
	return result
}
