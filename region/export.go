package region

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
)

// Exporter serializes a region to a flat text file: a fixed set of
// header lines, a column header and one comma-separated line per point.
// Pixel coordinates are written 1-based, the display convention; the
// projected coordinate columns appear only when the region carries
// geo-referencing metadata.
type Exporter struct {
	region     *RegionOfInterest
	projection string
	log        *slog.Logger
}

// NewExporter prepares an exporter for the region. The projection
// description is derived once, here; replacing the region's map info
// afterwards does not update it.
func NewExporter(region *RegionOfInterest) *Exporter {
	projection := ""
	if m := region.MapInfo(); m != nil {
		projection = m.ProjectionDescription()
	}
	return &Exporter{
		region:     region,
		projection: projection,
		log:        slog.Default(),
	}
}

// Save writes the region to the file at path, creating or truncating
// it. The write is sequential with no atomic rename; on error the file
// is left in whatever state the failed write produced. includeBands is
// accepted for format compatibility but currently has no effect.
func (e *Exporter) Save(path string, includeBands bool) error {
	e.log.Debug("saving region", "region", e.region.ID(), "destination", path)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create region file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := e.Write(w, includeBands); err != nil {
		return err
	}
	return w.Flush()
}

// Write writes the region to w in the same format Save produces.
func (e *Exporter) Write(w io.Writer, includeBands bool) error {
	r := e.region
	hasCoordinates := r.MapInfo() != nil

	header := "sample,line"
	if hasCoordinates {
		header += ",x_coordinate,y_coordinate"
	}

	_, err := fmt.Fprintf(w, "name:%s\ndescription:%s\nimage width:%d\nimage height:%d\nprojection:%s\ndata:\n%s\n",
		r.DisplayName(), r.ImageName(), r.ImageWidth(), r.ImageHeight(), e.projection, header)
	if err != nil {
		return fmt.Errorf("failed to write region header: %w", err)
	}

	for r.Reset(); r.Next(); {
		if hasCoordinates {
			x, _ := r.XCoordinate()
			y, _ := r.YCoordinate()
			_, err = fmt.Fprintf(w, "%d,%d,%s,%s\n", r.XPoint()+1, r.YPoint()+1,
				formatCoordinate(x), formatCoordinate(y))
		} else {
			_, err = fmt.Fprintf(w, "%d,%d\n", r.XPoint()+1, r.YPoint()+1)
		}
		if err != nil {
			return fmt.Errorf("failed to write region point: %w", err)
		}
	}
	return nil
}

// formatCoordinate renders a projected coordinate with the fewest digits
// that round-trip the value.
func formatCoordinate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
