package timeseries

import "covid_dashboard/internal/models"

// Point is a single (date, count) sample in the shape chart widgets expect.
type Point struct {
	X string `json:"x"` // date, models.DateLayout
	Y int64  `json:"y"`
}

// Projection splits a series into two parallel point sequences.
type Projection struct {
	Confirmed []Point `json:"confirmed"`
	Deaths    []Point `json:"deaths"`
}

// Project maps each record to a confirmed point and a deaths point, preserving order.
func Project(series models.CountrySeries) Projection {
	p := Projection{
		Confirmed: make([]Point, 0, len(series)),
		Deaths:    make([]Point, 0, len(series)),
	}
	for _, rec := range series {
		x := rec.Date.Format(models.DateLayout)
		p.Confirmed = append(p.Confirmed, Point{X: x, Y: rec.Confirmed})
		p.Deaths = append(p.Deaths, Point{X: x, Y: rec.Deaths})
	}
	return p
}

// Labels returns the x values of pts in order.
func Labels(pts []Point) []string {
	out := make([]string, len(pts))
	for i, pt := range pts {
		out[i] = pt.X
	}
	return out
}
