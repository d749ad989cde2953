package dataset

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/jedib0t/go-pretty/v6/progress"
)

var (
	apiClient = resty.New()
)

// EnsureDownloaded makes sure dir/filename exists and matches the MD5 sum,
// downloading it from url otherwise. A failed https download is retried once
// over http.
func EnsureDownloaded(ctx context.Context, pw progress.Writer, url string, dir string, filename string, sum string) (string, error) {
	dir, err := ExpandUser(dir)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	path := filepath.Join(dir, filename)
	if CheckIntegrity(path, sum) {
		log.Printf("using downloaded and verified file: %s", path)
		return path, nil
	}

	log.Printf("downloading %s to %s", url, path)
	if err := download(ctx, pw, url, path); err != nil {
		if !strings.HasPrefix(url, "https:") {
			return "", err
		}
		url = "http:" + strings.TrimPrefix(url, "https:")
		log.Printf("failed download (%v), trying https -> http instead: downloading %s to %s", err, url, path)
		if err := download(ctx, pw, url, path); err != nil {
			return "", err
		}
	}

	if !CheckIntegrity(path, sum) {
		return "", fmt.Errorf("%w: %s", ErrChecksumMismatch, path)
	}

	return path, nil
}

func download(ctx context.Context, pw progress.Writer, url string, path string) error {
	resp, err := apiClient.R().SetContext(ctx).SetDoNotParseResponse(true).Get(url)
	if err != nil {
		return err
	}
	body := resp.RawBody()
	defer body.Close()

	if resp.IsError() {
		return fmt.Errorf("error response: %v", resp.Status())
	}

	var tracker *progress.Tracker
	if pw != nil {
		tracker = &progress.Tracker{
			Message: fmt.Sprintf("Downloading %s", filepath.Base(path)),
			Total:   max(resp.RawResponse.ContentLength, 0),
			Units:   progress.UnitsBytes,
		}
		pw.AppendTracker(tracker)
		tracker.Start()
	}

	tmp := path + ".part"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}

	var w io.Writer = f
	if tracker != nil {
		w = &trackingWriter{w: f, tracker: tracker}
	}

	if _, err := io.Copy(w, body); err != nil {
		f.Close()
		os.Remove(tmp)
		if tracker != nil {
			tracker.MarkAsErrored()
		}
		return err
	} else if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}

	if tracker != nil {
		tracker.MarkAsDone()
	}

	return os.Rename(tmp, path)
}

type trackingWriter struct {
	w       io.Writer
	tracker *progress.Tracker
}

func (t *trackingWriter) Write(p []byte) (int, error) {
	n, err := t.w.Write(p)
	t.tracker.Increment(int64(n))
	return n, err
}
