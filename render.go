package hexsketch

import (
	"bufio"
	"fmt"
	"html"
	"io"
	"os"
	"strconv"
	"strings"

	svg "github.com/ajstarks/svgo"
	"github.com/klauspost/compress/gzip"
)

// Render writes path as an SVG document: a solid background, the polyline,
// and a border drawn on top.
func Render(w io.Writer, cfg Config, path Path) error {
	bw := bufio.NewWriter(w)
	width, height := cfg.Canvas.Width, cfg.Canvas.Height
	style := cfg.Style

	canvas := svg.New(bw)
	canvas.Startview(width, height, 0, 0, width, height)
	canvas.Rect(0, 0, width, height,
		attr("fill", style.Background),
		attr("fill-opacity", "1"))
	canvas.Path(path.Data(),
		attr("fill", "none"),
		attr("stroke", style.Stroke),
		attr("stroke-width", strconv.Itoa(style.StrokeWidth)),
		attr("stroke-opacity", strconv.FormatFloat(style.StrokeOpacity, 'f', -1, 64)))
	canvas.Rect(0, 0, width, height,
		attr("fill-opacity", "0"),
		attr("stroke", style.Border),
		attr("stroke-width", strconv.Itoa(style.BorderWidth())))
	canvas.End()

	// bufio keeps the first write error, svgo itself drops them.
	return bw.Flush()
}

// attr escapes value, style strings come straight from user config.
func attr(name, value string) string {
	return name + `="` + html.EscapeString(value) + `"`
}

// Save renders into filename. A ".svgz" suffix gzips the document.
func Save(filename string, cfg Config, path Path) (err error) {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()

	if !strings.HasSuffix(filename, ".svgz") {
		return Render(f, cfg, path)
	}

	zw, err := gzip.NewWriterLevel(f, gzip.BestCompression)
	if err != nil {
		return fmt.Errorf("gzip %s: %w", filename, err)
	}
	if err := Render(zw, cfg, path); err != nil {
		zw.Close()
		return err
	}
	return zw.Close()
}
