package records

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/yungbote/mindpulse-backend/internal/domain/wellbeing"
	"github.com/yungbote/mindpulse-backend/internal/platform/logger"
)

const (
	DefaultPath     = "data/mental_health_data.csv"
	DefaultSeedPath = "attached_assets/Final.csv"
)

var sampleRows = [][]string{
	{"2023-05-09", "0.03", "0.08", "0.04", "0.85", "u00", "21", "22971", "1093.8", "5829", "61", "556.53", "139.13", "329.72", "590.7", "5", "272.8", "118.14", "8", "2", "7.83", "1.5", "6.5", "2", "1", "1.67", "715.67", "65.4", "25"},
	{"2023-05-10", "0.02", "0.09", "0.03", "0.86", "u00", "23", "23000", "1000", "5000", "50", "500", "120", "300", "600", "5", "280", "120", "7", "2", "7.5", "1.5", "6", "2", "2", "1.67", "720", "70", "26"},
	{"2023-05-11", "0.04", "0.1", "0.02", "0.84", "u00", "25", "24000", "960", "5100", "52", "520", "125", "310", "580", "4", "290", "145", "8", "1", "7.67", "1.67", "6.5", "1", "1", "1.33", "700", "60", "24"},
}

// SampleCSV renders the minimal three-day dataset for user u00.
func SampleCSV() []byte {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write(wellbeing.Columns)
	_ = w.WriteAll(sampleRows)
	return buf.Bytes()
}

// EnsureCSV makes sure path exists. An existing file is left alone; otherwise seedPath is
// copied when present, else the sample dataset is written. It reports whether it wrote.
func EnsureCSV(log *logger.Logger, path, seedPath string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("stat %s: %w", path, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("create data dir: %w", err)
	}

	if seedPath != "" {
		copied, err := copyFile(seedPath, path)
		if err != nil {
			return false, err
		}
		if copied {
			log.Info("Copied seed dataset", "from", seedPath, "to", path)
			return true, nil
		}
	}

	if err := os.WriteFile(path, SampleCSV(), 0o644); err != nil {
		return false, fmt.Errorf("write sample csv: %w", err)
	}
	log.Info("Created sample dataset", "path", path, "rows", len(sampleRows))
	return true, nil
}

func copyFile(src, dst string) (bool, error) {
	in, err := os.Open(src)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("open seed csv: %w", err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return false, fmt.Errorf("create %s: %w", dst, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return false, fmt.Errorf("copy seed csv: %w", err)
	}
	if err := out.Close(); err != nil {
		return false, fmt.Errorf("close %s: %w", dst, err)
	}
	return true, nil
}
