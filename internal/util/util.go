package util

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
)

// Fingerprint identifies a dataset by content.
type Fingerprint struct {
	Checksum string // hex SHA256
	Size     int64
}

// FingerprintReader hashes everything read from r.
func FingerprintReader(r io.Reader) (Fingerprint, error) {
	h := sha256.New()

	n, err := io.Copy(h, r)
	if err != nil {
		return Fingerprint{}, errors.Wrap(err, "failed to calculate checksum")
	}

	return Fingerprint{Checksum: hex.EncodeToString(h.Sum(nil)), Size: n}, nil
}

// FingerprintFile fingerprints the file at path.
func FingerprintFile(path string) (Fingerprint, error) {
	file, err := os.Open(path)
	if err != nil {
		return Fingerprint{}, errors.Wrap(err, "failed to open file")
	}
	defer file.Close()

	return FingerprintReader(file)
}

// FormatBytes formats bytes into human readable format.
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	const units = "KMGTPEZY"
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit && exp < len(units)-1; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), units[exp])
}

// FormatDuration formats a session duration, keeping milliseconds below one second.
func FormatDuration(duration time.Duration) string {
	if duration < time.Second {
		return fmt.Sprintf("%dms", duration.Milliseconds())
	}

	duration = duration.Round(time.Second)

	if duration < time.Minute {
		return fmt.Sprintf("%ds", int(duration.Seconds()))
	}

	if duration < time.Hour {
		return fmt.Sprintf("%dm%ds", int(duration.Minutes()), int(duration.Seconds())%60)
	}

	return fmt.Sprintf("%dh%dm", int(duration.Hours()), int(duration.Minutes())%60)
}
