package export

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// WriteSVG writes svg to path, gzip-compressed when compress is set or the
// path ends in .gz (the .svgz convention also applies).
func WriteSVG(path, svg string, compress bool) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if compress || strings.HasSuffix(path, ".gz") || strings.HasSuffix(path, ".svgz") {
		if err := writeGzip(f, svg); err != nil {
			return fmt.Errorf("export %s: %w", path, err)
		}
		return f.Close()
	}

	if _, err := io.WriteString(f, svg); err != nil {
		return fmt.Errorf("export %s: %w", path, err)
	}
	return f.Close()
}

func writeGzip(w io.Writer, svg string) error {
	zw, err := gzip.NewWriterLevel(w, gzip.BestCompression)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(zw, svg); err != nil {
		zw.Close()
		return err
	}
	return zw.Close()
}
