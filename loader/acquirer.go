package loader

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"time"

	kelari "github.com/agsn10/kelari-api-documentation-sub001"
	"github.com/agsn10/kelari-api-documentation-sub001/kelarierrors"
)

// defaultHTTPTimeout bounds URL acquisition when no custom client is set.
const defaultHTTPTimeout = 30 * time.Second

// Acquirer resolves a Location into a raw byte stream. The zero value is
// usable; nil fields fall back to the documented defaults. Acquisition
// never retries: a failure surfaces immediately and retry policy, if any,
// belongs to the caller.
type Acquirer struct {
	// HTTPClient serves KindURL locations. Nil means a default client with
	// a 30 second timeout. Callers needing different timeout or TLS
	// behavior configure their own client here.
	HTTPClient *http.Client
	// UserAgent is sent with every HTTP request. Empty means
	// kelari.UserAgent().
	UserAgent string
	// Bundled is the lookup root for KindBundled locations. Nil means no
	// bundled resources exist and every bundled lookup reports not found.
	Bundled fs.FS
}

// NewAcquirer returns an Acquirer with the default HTTP client and
// User-Agent and no bundled resources.
func NewAcquirer() *Acquirer {
	return &Acquirer{
		HTTPClient: &http.Client{Timeout: defaultHTTPTimeout},
		UserAgent:  kelari.UserAgent(),
	}
}

// Open resolves loc into a byte stream. The caller owns the returned reader
// and must close it. Absent resources surface as *kelarierrors.NotFoundError,
// transport and filesystem failures as *kelarierrors.IOError.
func (a *Acquirer) Open(loc Location) (io.ReadCloser, error) {
	switch loc.Kind {
	case KindURL:
		return a.openURL(loc.Value)
	case KindFile:
		return a.openFile(loc.Value)
	case KindBundled:
		return a.openBundled(loc.Value)
	default:
		return nil, &kelarierrors.IOError{
			Location: loc.Value,
			Op:       "open",
			Message:  fmt.Sprintf("unknown source kind %q", loc.Kind),
		}
	}
}

func (a *Acquirer) openURL(urlStr string) (io.ReadCloser, error) {
	req, err := http.NewRequest(http.MethodGet, urlStr, nil)
	if err != nil {
		return nil, &kelarierrors.IOError{Location: urlStr, Op: "get", Message: "failed to create request", Cause: err}
	}

	userAgent := a.UserAgent
	if userAgent == "" {
		userAgent = kelari.UserAgent()
	}
	req.Header.Set("User-Agent", userAgent)

	client := a.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: defaultHTTPTimeout}
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, &kelarierrors.IOError{Location: urlStr, Op: "get", Cause: err}
	}
	if resp.StatusCode == http.StatusNotFound {
		_ = resp.Body.Close()
		return nil, &kelarierrors.NotFoundError{Location: urlStr, Kind: string(KindURL)}
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		_ = resp.Body.Close()
		return nil, &kelarierrors.IOError{
			Location: urlStr,
			Op:       "get",
			Message:  fmt.Sprintf("HTTP %d: %s", resp.StatusCode, resp.Status),
		}
	}
	return resp.Body, nil
}

func (a *Acquirer) openFile(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &kelarierrors.NotFoundError{Location: path, Kind: string(KindFile), Cause: err}
		}
		return nil, &kelarierrors.IOError{Location: path, Op: "open", Cause: err}
	}
	return f, nil
}

func (a *Acquirer) openBundled(name string) (io.ReadCloser, error) {
	if a.Bundled == nil {
		return nil, &kelarierrors.NotFoundError{Location: name, Kind: string(KindBundled)}
	}
	f, err := a.Bundled.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &kelarierrors.NotFoundError{Location: name, Kind: string(KindBundled), Cause: err}
		}
		return nil, &kelarierrors.IOError{Location: name, Op: "open bundled", Cause: err}
	}
	return f, nil
}
