package htmlcheck

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/foomo/htmlcheck/vo"
	"golang.org/x/net/html/charset"
)

// Acquirer loads documents from files or urls
type Acquirer struct {
	client *http.Client
	agent  string
	robots bool
}

// NewAcquirer with robots set, urls are only fetched, when robots.txt allows it
func NewAcquirer(client *http.Client, agent string, robots bool) *Acquirer {
	if client == nil {
		client = http.DefaultClient
	}
	return &Acquirer{
		client: client,
		agent:  agent,
		robots: robots,
	}
}

// Acquire returns the raw bytes of the document described by source
func (a *Acquirer) Acquire(ctx context.Context, source vo.Source) (htmlBytes []byte, err error) {
	switch source.Mode {
	case vo.ModeFile:
		return readFile(source.Location)
	case vo.ModeURL:
		return a.fetch(ctx, source.Location)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownMode, source.Mode)
	}
}

func readFile(filename string) (htmlBytes []byte, err error) {
	return os.ReadFile(filename)
}

// fetch supports the file:// scheme
func (a *Acquirer) fetch(ctx context.Context, documentURL string) (htmlBytes []byte, err error) {
	if strings.HasPrefix(documentURL, "file://") {
		return readFileURL(documentURL)
	}
	if a.robots {
		allowed, errRobots := robotsAllow(ctx, a.client, documentURL, a.agent)
		if errRobots != nil {
			return nil, &FetchError{URL: documentURL, Err: errRobots}
		}
		if !allowed {
			return nil, fmt.Errorf("%w: %s for agent %q", ErrRobotsDisallowed, documentURL, a.agent)
		}
	}
	req, errRequest := http.NewRequestWithContext(ctx, http.MethodGet, documentURL, nil)
	if errRequest != nil {
		return nil, &FetchError{URL: documentURL, Err: errRequest}
	}
	req.Header.Set("User-Agent", a.agent)
	resp, errGet := a.client.Do(req)
	if errGet != nil {
		return nil, &FetchError{URL: documentURL, Err: errGet}
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{URL: documentURL, StatusCode: resp.StatusCode, Status: resp.Status}
	}
	bodyBytes, errRead := io.ReadAll(resp.Body)
	if errRead != nil {
		return nil, &FetchError{URL: documentURL, StatusCode: resp.StatusCode, Status: resp.Status, Err: errRead}
	}
	htmlBytes, errDecode := decodeBody(bodyBytes, resp.Header.Get("Content-Type"))
	if errDecode != nil {
		return nil, &FetchError{URL: documentURL, StatusCode: resp.StatusCode, Status: resp.Status, Err: errDecode}
	}
	return htmlBytes, nil
}

func readFileURL(fileURL string) (htmlBytes []byte, err error) {
	u, errParse := url.Parse(fileURL)
	if errParse != nil {
		return nil, errParse
	}
	if u.Host != "" && u.Host != "localhost" {
		return nil, fmt.Errorf("file url %s: host %q is not supported", fileURL, u.Host)
	}
	return readFile(u.Path)
}

// decodeBody transcodes to utf-8, when a bom, the content type or a meta tag
// declares the charset. Undeclared bodies, that are valid utf-8, are kept.
func decodeBody(body []byte, contentType string) (htmlBytes []byte, err error) {
	enc, _, certain := charset.DetermineEncoding(body, contentType)
	if !certain && utf8.Valid(body) && !metaDeclaresCharset(body) {
		return body, nil
	}
	return enc.NewDecoder().Bytes(body)
}

// metaDeclaresCharset tells if the charset of body comes from a meta tag.
// Without one, DetermineEncoding falls back to utf-8 for a valid non ascii
// prefix, a leading "é" turns every guess into utf-8.
func metaDeclaresCharset(body []byte) bool {
	const prefixLength = 1000
	prefix := body
	if len(prefix) > prefixLength {
		prefix = prefix[:prefixLength]
	}
	_, name, _ := charset.DetermineEncoding(append([]byte("é"), prefix...), "")
	return name != "utf-8"
}
