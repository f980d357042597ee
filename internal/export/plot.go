package export

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/san-kum/quakesim/internal/response"
	"github.com/san-kum/quakesim/internal/spectrum"
)

func savePNG(p *plot.Plot, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	c := vgimg.NewWith(
		vgimg.UseWH(8*vg.Inch, 5*vg.Inch),
		vgimg.UseDPI(150),
	)
	dc := draw.New(c)
	p.Draw(dc)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	defer bw.Flush()

	png := vgimg.PngCanvas{Canvas: c}
	_, err = png.WriteTo(bw)
	return err
}

// TrackPNG plots one sampled track against time.
func TrackPNG(path, title, yLabel string, dt float64, track []float64) error {
	if len(track) == 0 {
		return fmt.Errorf("nothing to plot")
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "time (s)"
	p.Y.Label.Text = yLabel
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, len(track))
	for i, v := range track {
		pts[i].X = float64(i) * dt
		pts[i].Y = v
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(1.5)
	p.Add(line)

	return savePNG(p, path)
}

// HistoryPNGs writes one plot per response track under dir, named
// <base>_disp.png and so on, and returns the paths it wrote.
func HistoryPNGs(dir, base string, h *response.History) ([]string, error) {
	tracks := []struct {
		suffix, title, label string
		data                 []float64
	}{
		{"disp", "Relative displacement", "u (m)", h.Disp},
		{"vel", "Relative velocity", "v (m/s)", h.Vel},
		{"accel", "Absolute acceleration", "a (m/s^2)", h.Accel},
		{"force", "Restoring force", "f (N)", h.Force},
	}

	paths := make([]string, 0, len(tracks))
	for _, tr := range tracks {
		path := filepath.Join(dir, fmt.Sprintf("%s_%s.png", base, tr.suffix))
		if err := TrackPNG(path, tr.title, tr.label, h.Dt, tr.data); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// SpectrumPNG plots pseudo-acceleration against period on a log period axis.
func SpectrumPNG(path string, points []spectrum.Point) error {
	if len(points) == 0 {
		return fmt.Errorf("nothing to plot")
	}

	p := plot.New()
	p.Title.Text = "Response spectrum"
	p.X.Label.Text = "period (s)"
	p.Y.Label.Text = "PSa (m/s^2)"
	p.X.Scale = plot.LogScale{}
	p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, len(points))
	for i, pt := range points {
		pts[i].X = pt.Period
		pts[i].Y = pt.PSa
	}
	if err := plotutil.AddLines(p, "pseudo-acceleration", pts); err != nil {
		return err
	}

	return savePNG(p, path)
}
