package dataset

import (
	"crypto/md5"
	"encoding/hex"
	"io"
	"os"
	"strings"
)

const chunkSize = 1024 * 1024

// CheckIntegrity reports whether path is a regular file whose MD5 digest matches sum.
func CheckIntegrity(path string, sum string) bool {
	if s, err := os.Stat(path); err != nil || !s.Mode().IsRegular() {
		return false
	}

	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	h := md5.New()
	if _, err := io.CopyBuffer(h, f, make([]byte, chunkSize)); err != nil {
		return false
	}

	return hex.EncodeToString(h.Sum(nil)) == strings.ToLower(sum)
}
