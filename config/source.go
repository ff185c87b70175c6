package config

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// A config source is either a local file or a document fetched over
// http/https.
type source struct {
	io.ReadCloser
	location *url.URL
}

func (s *source) String() string {
	return s.location.String()
}

// Open a config source. Windows-style separators are accepted for local
// paths. The caller must close the returned source.
func openSource(location string) (*source, error) {
	loc, err := url.Parse(strings.Replace(location, `\`, `/`, -1))
	if err != nil {
		return nil, err
	}

	var reader io.ReadCloser
	switch loc.Scheme {
	case "":
		reader, err = os.Open(filepath.Clean(loc.Path))
		if err != nil {
			return nil, err
		}
	case "http", "https":
		resp, err := http.Get(loc.String())
		if err != nil {
			return nil, fmt.Errorf("could not fetch '%s': %s", loc.String(), err)
		}
		if resp.StatusCode >= 400 {
			resp.Body.Close()
			return nil, fmt.Errorf("could not fetch '%s': status %d", loc.String(), resp.StatusCode)
		}
		reader = resp.Body
	default:
		return nil, fmt.Errorf("unsupported scheme '%s'", loc.Scheme)
	}

	return &source{
		ReadCloser: reader,
		location:   loc,
	}, nil
}
